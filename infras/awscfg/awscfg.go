package awscfg

import (
	"context"
	"hauliday/config"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsConfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/rs/zerolog/log"
)

// New loads the shared AWS configuration. Static keys from the environment take precedence over
// the default chain so local runs can target a sandbox account; inside Lambda the role is used.
func New(cfg *config.Config) aws.Config {
	options := []func(*awsConfig.LoadOptions) error{
		awsConfig.WithRegion(cfg.AWS.Region),
	}

	if cfg.AWS.AccessKeyID != "" && cfg.AWS.SecretAccessKey != "" {
		staticProvider := credentials.NewStaticCredentialsProvider(
			cfg.AWS.AccessKeyID,
			cfg.AWS.SecretAccessKey,
			cfg.AWS.SessionToken,
		)

		options = append(options, awsConfig.WithCredentialsProvider(staticProvider))
	}

	awsCfg, err := awsConfig.LoadDefaultConfig(context.TODO(), options...)
	if err != nil {
		log.Err(err).Msg("Error loading AWS configuration")
	}

	log.Debug().Str("region", awsCfg.Region).Msg("AWS configuration loaded")

	return awsCfg
}
