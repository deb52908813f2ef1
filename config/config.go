package config

import (
	"fmt"
	"sync"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
	"github.com/rs/zerolog/log"
)

const (
	ProviderBedrock   = "bedrock"
	ProviderAnthropic = "anthropic"
)

type Config struct {
	Server struct {
		Env      string `envconfig:"ENV"       default:"production"`
		LogLevel string `envconfig:"LOG_LEVEL" default:"info"`
		Port     string `envconfig:"PORT"      default:"8080"`
		Host     string `envconfig:"HOST"      default:"0.0.0.0"`
		Shutdown struct {
			CleanupPeriodSeconds int64 `envconfig:"CLEANUP_PERIOD_SECONDS" default:"2"`
			GracePeriodSeconds   int64 `envconfig:"GRACE_PERIOD_SECONDS"   default:"5"`
		} `envconfig:"SHUTDOWN"`
	} `envconfig:"SERVER"`

	App struct {
		Name       string `envconfig:"APP_NAME"    default:"hauliday-assistant"`
		Timezone   string `envconfig:"TIMEZONE"    default:"America/Los_Angeles"`
		BookingURL string `envconfig:"BOOKING_URL" default:"https://hauliday.com/book"`
		CORS       struct {
			AllowCredentials bool     `envconfig:"ALLOW_CREDENTIALS"`
			AllowedHeaders   []string `envconfig:"ALLOWED_HEADERS"`
			AllowedMethods   []string `envconfig:"ALLOWED_METHODS"`
			AllowedOrigins   []string `envconfig:"ALLOWED_ORIGINS"`
			Enable           bool     `envconfig:"ENABLE"`
			MaxAgeSeconds    int      `envconfig:"MAX_AGE_SECONDS"`
		} `envconfig:"CORS"`
		Conversation struct {
			IntentName  string `envconfig:"INTENT_NAME"  default:"RentalQueryIntent"`
			MaxFailures int    `envconfig:"MAX_FAILURES" default:"3"`
		} `envconfig:"CONVERSATION"`
	} `envconfig:"APP"`

	AWS struct {
		Region          string `envconfig:"REGION"            default:"us-west-2"`
		AccessKeyID     string `envconfig:"ACCESS_KEY_ID"`
		SecretAccessKey string `envconfig:"SECRET_ACCESS_KEY"`
		SessionToken    string `envconfig:"SESSION_TOKEN"`
	} `envconfig:"AWS"`

	Bedrock struct {
		Provider         string  `envconfig:"PROVIDER"          default:"bedrock"`
		ModelID          string  `envconfig:"MODEL_ID"          default:"anthropic.claude-3-sonnet-20240229-v1:0"`
		KnowledgeBaseID  string  `envconfig:"KNOWLEDGE_BASE_ID"`
		DataSourceID     string  `envconfig:"DATA_SOURCE_ID"`
		MaxTokens        int32   `envconfig:"MAX_TOKENS"        default:"512"`
		Temperature      float32 `envconfig:"TEMPERATURE"       default:"0.3"`
		RetrievalResults int32   `envconfig:"RETRIEVAL_RESULTS" default:"3"`
	} `envconfig:"BEDROCK"`

	Anthropic struct {
		APIKey string `envconfig:"API_KEY"`
		Model  string `envconfig:"MODEL"   default:"claude-3-5-sonnet-latest"`
	} `envconfig:"ANTHROPIC"`

	DynamoDB struct {
		TableName      string `envconfig:"DYNAMODB_TABLE_NAME" default:"hauliday_reservations"`
		EquipmentIndex string `envconfig:"EQUIPMENT_INDEX"`
	} `envconfig:"DYNAMODB"`

	S3 struct {
		BucketName string `envconfig:"BUCKET_NAME"`
		Prefix     string `envconfig:"PREFIX"      default:"knowledge-base"`
	} `envconfig:"S3"`

	Lex struct {
		BotID     string `envconfig:"LEX_BOT_ID"`
		AliasName string `envconfig:"LEX_ALIAS_NAME" default:"TestBotAlias"`
		AliasID   string `envconfig:"LEX_BOT_ALIAS_ID" default:"TSTALIASID"`
		LocaleID  string `envconfig:"LOCALE_ID"      default:"en_US"`
	} `envconfig:"LEX"`

	Lambda struct {
		ARN          string `envconfig:"LAMBDA_ARN"`
		FunctionName string `envconfig:"LAMBDA_FUNCTION_NAME" default:"call-center-rental-query"`
	} `envconfig:"LAMBDA"`

	Connect struct {
		InstanceID string `envconfig:"CONNECT_INSTANCE_ID"`
	} `envconfig:"CONNECT"`

	OpenSearch struct {
		CollectionEndpoint string `envconfig:"COLLECTION_ENDPOINT"`
		IndexName          string `envconfig:"INDEX_NAME" default:"bedrock-knowledge-base-default-index"`
	} `envconfig:"OPENSEARCH"`

	External struct {
		Otel struct {
			Endpoint string `envconfig:"ENDPOINT"`
		} `envconfig:"OTEL"`
	}
}

// ModelARN is the foundation model ARN used by knowledge base generation.
func (c *Config) ModelARN() string {
	return fmt.Sprintf("arn:aws:bedrock:%s::foundation-model/%s", c.AWS.Region, c.Bedrock.ModelID)
}

var (
	conf        Config
	once        sync.Once
	initialized bool
)

// Load reads the environment into a fresh Config without touching the process-wide instance.
func Load() (*Config, error) {
	var cfg Config

	if err := envconfig.Process("", &cfg); err != nil {
		return nil, fmt.Errorf("failed to process environment variables: %w", err)
	}

	return &cfg, nil
}

func Init() error {
	var err error

	once.Do(func() {
		err = godotenv.Load(".env")
		if err != nil {
			log.Debug().Err(err).Msg("Could not load .env file, continuing with existing environment variables")
		} else {
			log.Info().Msg("Successfully loaded variables from .env file into environment")
		}

		var loaded *Config

		loaded, err = Load()
		if err != nil {
			log.Fatal().Err(err).Msg("Failed to process environment variables")
		}

		conf = *loaded
		initialized = true

		log.Info().Msg("Service configuration initialized successfully")
	})

	if err != nil {
		return fmt.Errorf("loading configuration: %w", err)
	}

	return nil
}

func Get() *Config {
	if !initialized {
		if err := Init(); err != nil {
			log.Fatal().Err(err).Msg("Failed to initialize configuration")
		}
	}

	return &conf
}
