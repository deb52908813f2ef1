package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=../mocks/service_mock.go -package=mocks

import (
	"context"
	"fmt"
	"hauliday/config"
	"hauliday/infras/bedrock"
	"hauliday/infras/otel"
	"hauliday/shared/constant"
	"hauliday/shared/failure"
	"hauliday/shared/logger"
	"hauliday/shared/metrics"
)

const collaboratorKnowledgeBase = "knowledge_base"

type Knowledge interface {
	// Answer generates a grounded answer from the knowledge base.
	Answer(ctx context.Context, question string) (string, error)
	// Passages returns excerpts relevant to the question; failures yield none.
	Passages(ctx context.Context, query string) []string
}

type serviceImpl struct {
	bedrock bedrock.Bedrock
	cfg     *config.Config
	otel    otel.Otel
}

func New(bedrock bedrock.Bedrock, cfg *config.Config, otel otel.Otel) Knowledge {
	return &serviceImpl{
		bedrock: bedrock,
		cfg:     cfg,
		otel:    otel,
	}
}

func (s *serviceImpl) Answer(ctx context.Context, question string) (answer string, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Knowledge.Answer")
	defer scope.End()
	defer scope.TraceIfError(&err)

	answer, err = s.bedrock.RetrieveAndGenerate(ctx, question)
	if err != nil {
		metrics.IncCollaboratorFailure(collaboratorKnowledgeBase)

		return constant.Empty, fmt.Errorf("failed to answer from knowledge base: %w", failure.Unavailable("knowledge base", err))
	}

	return answer, nil
}

func (s *serviceImpl) Passages(ctx context.Context, query string) []string {
	if s.cfg.Bedrock.KnowledgeBaseID == constant.Empty || s.cfg.Bedrock.RetrievalResults <= 0 {
		return nil
	}

	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Knowledge.Passages")
	defer scope.End()

	passages, err := s.bedrock.Retrieve(ctx, query, s.cfg.Bedrock.RetrievalResults)
	if err != nil {
		scope.TraceError(err)
		logger.Ctx(ctx).Warn().Err(err).Msg("knowledge base retrieval failed, continuing without excerpts")
		metrics.IncCollaboratorFailure(collaboratorKnowledgeBase)

		return nil
	}

	res := make([]string, 0, len(passages))
	for _, passage := range passages {
		res = append(res, passage.Text)
	}

	return res
}
