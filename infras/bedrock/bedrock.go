package bedrock

//go:generate go run go.uber.org/mock/mockgen -source=./bedrock.go -destination=./mocks/bedrock_mock.go -package=mocks

import (
	"context"
	"errors"
	"fmt"
	"hauliday/config"
	"hauliday/infras/llm"
	"hauliday/infras/otel"
	"hauliday/shared/constant"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/bedrockagent"
	agentTypes "github.com/aws/aws-sdk-go-v2/service/bedrockagent/types"
	"github.com/aws/aws-sdk-go-v2/service/bedrockagentruntime"
	agentRuntimeTypes "github.com/aws/aws-sdk-go-v2/service/bedrockagentruntime/types"
	"github.com/aws/aws-sdk-go-v2/service/bedrockruntime"
	runtimeTypes "github.com/aws/aws-sdk-go-v2/service/bedrockruntime/types"
	"github.com/rs/zerolog/log"
)

const (
	otelAttrModelID         = "bedrock.model_id"
	otelAttrKnowledgeBaseID = "bedrock.knowledge_base_id"
	otelAttrMessageCount    = "bedrock.message_count"
	otelAttrResultCount     = "bedrock.result_count"
)

var ErrKnowledgeBaseNotConfigured = errors.New("knowledge base id is not configured")

// Passage is one chunk returned by a knowledge base retrieval.
type Passage struct {
	Text   string
	Source string
	Score  float64
}

// IngestionJob is the observable state of a knowledge base ingestion job.
type IngestionJob struct {
	ID             string
	Status         string
	Scanned        int64
	Indexed        int64
	Failed         int64
	FailureReasons []string
}

const (
	IngestionStatusStarting   = string(agentTypes.IngestionJobStatusStarting)
	IngestionStatusInProgress = string(agentTypes.IngestionJobStatusInProgress)
	IngestionStatusComplete   = string(agentTypes.IngestionJobStatusComplete)
	IngestionStatusFailed     = string(agentTypes.IngestionJobStatusFailed)
)

type Bedrock interface {
	llm.Generator
	Retrieve(ctx context.Context, query string, limit int32) ([]Passage, error)
	RetrieveAndGenerate(ctx context.Context, query string) (string, error)
}

type Ingestion interface {
	StartIngestionJob(ctx context.Context, knowledgeBaseID, dataSourceID string) (IngestionJob, error)
	GetIngestionJob(ctx context.Context, knowledgeBaseID, dataSourceID, jobID string) (IngestionJob, error)
}

type bedrockImpl struct {
	runtime      RuntimeAPI
	agentRuntime AgentRuntimeAPI
	cfg          *config.Config
	otel         otel.Otel
}

func New(cfg *config.Config, awsCfg aws.Config, otel otel.Otel) Bedrock {
	return NewWithClients(bedrockruntime.NewFromConfig(awsCfg), bedrockagentruntime.NewFromConfig(awsCfg), cfg, otel)
}

func NewWithClients(runtime RuntimeAPI, agentRuntime AgentRuntimeAPI, cfg *config.Config, otel otel.Otel) Bedrock {
	return &bedrockImpl{
		runtime:      runtime,
		agentRuntime: agentRuntime,
		cfg:          cfg,
		otel:         otel,
	}
}

// Generate implements llm.Generator with the Converse API.
func (b *bedrockImpl) Generate(ctx context.Context, req llm.Request) (reply string, err error) {
	ctx, scope := b.otel.NewScope(ctx, constant.OtelBedrockScopeName, constant.OtelBedrockScopeName+".Generate")
	defer scope.End()
	defer scope.TraceIfError(&err)

	scope.SetAttributes(map[string]any{
		otelAttrModelID:      b.cfg.Bedrock.ModelID,
		otelAttrMessageCount: len(req.Messages),
	})

	input := &bedrockruntime.ConverseInput{
		ModelId:  aws.String(b.cfg.Bedrock.ModelID),
		Messages: toConverseMessages(req.Messages),
		InferenceConfig: &runtimeTypes.InferenceConfiguration{
			MaxTokens:   aws.Int32(b.cfg.Bedrock.MaxTokens),
			Temperature: aws.Float32(b.cfg.Bedrock.Temperature),
		},
	}

	if req.System != "" {
		input.System = []runtimeTypes.SystemContentBlock{
			&runtimeTypes.SystemContentBlockMemberText{Value: req.System},
		}
	}

	out, err := b.runtime.Converse(ctx, input)
	if err != nil {
		return constant.Empty, fmt.Errorf("failed to converse with bedrock: %w", err)
	}

	reply = firstText(out)
	if reply == constant.Empty {
		return constant.Empty, llm.ErrEmptyResponse
	}

	log.Debug().Int("length", len(reply)).Msg("bedrock reply received")

	return reply, nil
}

func (b *bedrockImpl) Retrieve(ctx context.Context, query string, limit int32) (passages []Passage, err error) {
	ctx, scope := b.otel.NewScope(ctx, constant.OtelBedrockScopeName, constant.OtelBedrockScopeName+".Retrieve")
	defer scope.End()
	defer scope.TraceIfError(&err)

	knowledgeBaseID := b.cfg.Bedrock.KnowledgeBaseID
	if knowledgeBaseID == constant.Empty {
		return nil, ErrKnowledgeBaseNotConfigured
	}

	scope.SetAttribute(otelAttrKnowledgeBaseID, knowledgeBaseID)

	out, err := b.agentRuntime.Retrieve(ctx, &bedrockagentruntime.RetrieveInput{
		KnowledgeBaseId: aws.String(knowledgeBaseID),
		RetrievalQuery:  &agentRuntimeTypes.KnowledgeBaseQuery{Text: aws.String(query)},
		RetrievalConfiguration: &agentRuntimeTypes.KnowledgeBaseRetrievalConfiguration{
			VectorSearchConfiguration: &agentRuntimeTypes.KnowledgeBaseVectorSearchConfiguration{
				NumberOfResults: aws.Int32(limit),
			},
		},
	})
	if err != nil {
		return nil, fmt.Errorf("failed to retrieve from knowledge base: %w", err)
	}

	for _, result := range out.RetrievalResults {
		if result.Content == nil || strings.TrimSpace(aws.ToString(result.Content.Text)) == constant.Empty {
			continue
		}

		passage := Passage{
			Text:  aws.ToString(result.Content.Text),
			Score: aws.ToFloat64(result.Score),
		}

		if result.Location != nil && result.Location.S3Location != nil {
			passage.Source = aws.ToString(result.Location.S3Location.Uri)
		}

		passages = append(passages, passage)
	}

	scope.SetAttribute(otelAttrResultCount, len(passages))

	return passages, nil
}

func (b *bedrockImpl) RetrieveAndGenerate(ctx context.Context, query string) (answer string, err error) {
	ctx, scope := b.otel.NewScope(ctx, constant.OtelBedrockScopeName, constant.OtelBedrockScopeName+".RetrieveAndGenerate")
	defer scope.End()
	defer scope.TraceIfError(&err)

	knowledgeBaseID := b.cfg.Bedrock.KnowledgeBaseID
	if knowledgeBaseID == constant.Empty {
		return constant.Empty, ErrKnowledgeBaseNotConfigured
	}

	scope.SetAttributes(map[string]any{
		otelAttrKnowledgeBaseID: knowledgeBaseID,
		otelAttrModelID:         b.cfg.Bedrock.ModelID,
	})

	out, err := b.agentRuntime.RetrieveAndGenerate(ctx, &bedrockagentruntime.RetrieveAndGenerateInput{
		Input: &agentRuntimeTypes.RetrieveAndGenerateInput{Text: aws.String(query)},
		RetrieveAndGenerateConfiguration: &agentRuntimeTypes.RetrieveAndGenerateConfiguration{
			Type: agentRuntimeTypes.RetrieveAndGenerateTypeKnowledgeBase,
			KnowledgeBaseConfiguration: &agentRuntimeTypes.KnowledgeBaseRetrieveAndGenerateConfiguration{
				KnowledgeBaseId: aws.String(knowledgeBaseID),
				ModelArn:        aws.String(b.cfg.ModelARN()),
			},
		},
	})
	if err != nil {
		return constant.Empty, fmt.Errorf("failed to query knowledge base: %w", err)
	}

	if out.Output == nil || strings.TrimSpace(aws.ToString(out.Output.Text)) == constant.Empty {
		return constant.Empty, llm.ErrEmptyResponse
	}

	return aws.ToString(out.Output.Text), nil
}

type ingestionImpl struct {
	agent AgentAPI
	otel  otel.Otel
}

func NewIngestion(awsCfg aws.Config, otel otel.Otel) Ingestion {
	return NewIngestionWithClient(bedrockagent.NewFromConfig(awsCfg), otel)
}

func NewIngestionWithClient(agent AgentAPI, otel otel.Otel) Ingestion {
	return &ingestionImpl{
		agent: agent,
		otel:  otel,
	}
}

func (i *ingestionImpl) StartIngestionJob(ctx context.Context, knowledgeBaseID, dataSourceID string) (job IngestionJob, err error) {
	ctx, scope := i.otel.NewScope(ctx, constant.OtelBedrockScopeName, constant.OtelBedrockScopeName+".StartIngestionJob")
	defer scope.End()
	defer scope.TraceIfError(&err)

	out, err := i.agent.StartIngestionJob(ctx, &bedrockagent.StartIngestionJobInput{
		KnowledgeBaseId: aws.String(knowledgeBaseID),
		DataSourceId:    aws.String(dataSourceID),
	})
	if err != nil {
		return job, fmt.Errorf("failed to start ingestion job: %w", err)
	}

	return fromIngestionJob(out.IngestionJob), nil
}

func (i *ingestionImpl) GetIngestionJob(ctx context.Context, knowledgeBaseID, dataSourceID, jobID string) (job IngestionJob, err error) {
	ctx, scope := i.otel.NewScope(ctx, constant.OtelBedrockScopeName, constant.OtelBedrockScopeName+".GetIngestionJob")
	defer scope.End()
	defer scope.TraceIfError(&err)

	out, err := i.agent.GetIngestionJob(ctx, &bedrockagent.GetIngestionJobInput{
		KnowledgeBaseId: aws.String(knowledgeBaseID),
		DataSourceId:    aws.String(dataSourceID),
		IngestionJobId:  aws.String(jobID),
	})
	if err != nil {
		return job, fmt.Errorf("failed to get ingestion job: %w", err)
	}

	return fromIngestionJob(out.IngestionJob), nil
}

func fromIngestionJob(job *agentTypes.IngestionJob) IngestionJob {
	if job == nil {
		return IngestionJob{}
	}

	res := IngestionJob{
		ID:             aws.ToString(job.IngestionJobId),
		Status:         string(job.Status),
		FailureReasons: job.FailureReasons,
	}

	if job.Statistics != nil {
		res.Scanned = aws.ToInt64(job.Statistics.NumberOfDocumentsScanned)
		res.Indexed = aws.ToInt64(job.Statistics.NumberOfNewDocumentsIndexed)
		res.Failed = aws.ToInt64(job.Statistics.NumberOfDocumentsFailed)
	}

	return res
}

func toConverseMessages(messages []llm.Message) []runtimeTypes.Message {
	res := make([]runtimeTypes.Message, 0, len(messages))

	for _, msg := range messages {
		role := runtimeTypes.ConversationRoleUser
		if msg.Role == llm.RoleAssistant {
			role = runtimeTypes.ConversationRoleAssistant
		}

		res = append(res, runtimeTypes.Message{
			Role:    role,
			Content: []runtimeTypes.ContentBlock{&runtimeTypes.ContentBlockMemberText{Value: msg.Content}},
		})
	}

	return res
}

func firstText(out *bedrockruntime.ConverseOutput) string {
	if out == nil {
		return constant.Empty
	}

	msg, ok := out.Output.(*runtimeTypes.ConverseOutputMemberMessage)
	if !ok {
		return constant.Empty
	}

	for _, block := range msg.Value.Content {
		if text, ok := block.(*runtimeTypes.ContentBlockMemberText); ok && strings.TrimSpace(text.Value) != constant.Empty {
			return text.Value
		}
	}

	return constant.Empty
}
