package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=../mocks/service_mock.go -package=mocks

import (
	"context"
	"fmt"
	"hauliday/infras/llm"
	"hauliday/infras/otel"
	"hauliday/internal/domains/catalog"
	"hauliday/internal/domains/conversation/model"
	"hauliday/shared/constant"
	"hauliday/shared/logger"
	"hauliday/shared/metrics"
	"hauliday/shared/timezone"
	"strings"
)

// FallbackReply is returned when the generator cannot produce a reply.
const FallbackReply = "I'm sorry, I'm having trouble processing your request right now. Please try again later."

const (
	otelAttrHistoryLen = "conversation.history_length"
	otelAttrPassages   = "conversation.passages"

	collaboratorGenerator = "generator"
)

type Reply struct {
	Text   string
	Failed bool
}

// Grounding supplies optional knowledge base excerpts for a question.
type Grounding interface {
	Passages(ctx context.Context, query string) []string
}

type Conversation interface {
	Reply(ctx context.Context, utterance string, history model.History) (Reply, model.History)
}

type serviceImpl struct {
	generator llm.Generator
	catalog   *catalog.Catalog
	grounding Grounding
	otel      otel.Otel
}

// New builds the orchestrator. grounding may be nil.
func New(generator llm.Generator, catalog *catalog.Catalog, grounding Grounding, otel otel.Otel) Conversation {
	return &serviceImpl{
		generator: generator,
		catalog:   catalog,
		grounding: grounding,
		otel:      otel,
	}
}

func (s *serviceImpl) Reply(ctx context.Context, utterance string, history model.History) (res Reply, updated model.History) {
	var err error

	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Conversation.Reply")
	defer scope.End()
	defer scope.TraceIfError(&err)

	scope.SetAttribute(otelAttrHistoryLen, len(history))

	var passages []string
	if s.grounding != nil {
		passages = s.grounding.Passages(ctx, utterance)
	}

	scope.SetAttribute(otelAttrPassages, len(passages))

	now := timezone.Now()

	system, err := renderSystemPrompt(promptData{
		Today:    now.Format("Monday, January 2, 2006"),
		TodayISO: now.Format(constant.DateFormat),
		Catalog:  s.catalog.Describe(),
		Passages: passages,
	})
	if err != nil {
		logger.Ctx(ctx).Error().Err(err).Msg("failed to render system prompt")

		return Reply{Text: FallbackReply, Failed: true}, history
	}

	text, err := s.generator.Generate(ctx, llm.Request{
		System:   system,
		Messages: toMessages(history, utterance),
	})
	if err != nil {
		err = fmt.Errorf("failed to generate reply: %w", err)
		logger.Ctx(ctx).Error().Err(err).Msg("generator failed, using fallback reply")
		metrics.IncCollaboratorFailure(collaboratorGenerator)

		return Reply{Text: FallbackReply, Failed: true}, history
	}

	updated = history.Append(
		model.Turn{Role: model.RoleUser, Content: utterance},
		model.Turn{Role: model.RoleAssistant, Content: text},
	)

	return Reply{Text: text}, updated
}

// toMessages converts history plus the new utterance into generator messages. The request must
// start with a user turn and alternate roles, so leading assistant turns are dropped and
// consecutive same-role turns are merged.
func toMessages(history model.History, utterance string) []llm.Message {
	turns := append(history[:len(history):len(history)], model.Turn{Role: model.RoleUser, Content: utterance})
	res := make([]llm.Message, 0, len(turns))

	for _, turn := range turns {
		if len(res) == 0 && turn.Role != model.RoleUser {
			continue
		}

		if strings.TrimSpace(turn.Content) == "" {
			continue
		}

		if n := len(res); n > 0 && res[n-1].Role == turn.Role {
			res[n-1].Content += "\n" + turn.Content

			continue
		}

		res = append(res, llm.Message{Role: turn.Role, Content: turn.Content})
	}

	return res
}
