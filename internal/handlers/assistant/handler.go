package assistant

import (
	"context"
	"encoding/json"
	"fmt"
	"hauliday/config"
	"hauliday/infras/otel"
	"hauliday/internal/domains/conversation"
	"hauliday/internal/domains/conversation/model"
	conversationService "hauliday/internal/domains/conversation/service"
	"hauliday/internal/domains/directive"
	knowledgeService "hauliday/internal/domains/knowledge/service"
	"hauliday/internal/domains/topic"
	"hauliday/shared/constant"
	"hauliday/shared/logger"
	"hauliday/shared/metrics"
	"maps"
	"runtime/debug"
	"strconv"

	"github.com/aws/aws-lambda-go/lambdacontext"
	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

// IntentKnowledgeQuery is answered straight from the knowledge base.
const IntentKnowledgeQuery = "KnowledgeQueryIntent"

const (
	RepeatMessage = "I'm sorry, I didn't catch that. Could you please repeat your question about our equipment rentals?"
	GiveUpMessage = "I'm sorry, I'm still having trouble understanding you. " +
		"Please try again later or visit our website to book equipment. Goodbye!"
	RedirectMessage = "I can help with questions about our equipment rental services, such as our cotton candy machine " +
		"and rooftop cargo carrier, including prices, availability, and reservations. What would you like to know?"
	KnowledgeFailureMessage = "I'm sorry, I couldn't find information about that in our knowledge base. " +
		"Could you try rephrasing your question?"
	ApologyMessage = "I'm sorry, something went wrong on our end. Please try again in a moment."
)

const (
	outcomeAnswered   = "answered"
	outcomeClosed     = "closed"
	outcomeRedirected = "redirected"
	outcomeNoInput    = "no_input"
	outcomeGaveUp     = "gave_up"
	outcomeFallback   = "fallback"
	outcomeKnowledge  = "knowledge"
	outcomePanic      = "panic"

	otelAttrChannel = "assistant.channel"
	otelAttrIntent  = "assistant.intent"
)

type Handler struct {
	conversation conversationService.Conversation
	directives   directive.Processor
	knowledge    knowledgeService.Knowledge
	cfg          *config.Config
	otel         otel.Otel
}

func New(
	conversation conversationService.Conversation,
	directives directive.Processor,
	knowledge knowledgeService.Knowledge,
	cfg *config.Config,
	otel otel.Otel,
) Handler {
	return Handler{
		conversation: conversation,
		directives:   directives,
		knowledge:    knowledge,
		cfg:          cfg,
		otel:         otel,
	}
}

// Handle runs one turn of the pipeline. It never returns an error for a caller-visible
// problem; faults are turned into an apology so the caller always hears something.
func (handler *Handler) Handle(ctx context.Context, raw json.RawMessage) (res any, err error) {
	ctx, scope := handler.otel.NewScope(ctx, constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".Handle")
	defer scope.End()

	kind := KindLex

	defer func() {
		if r := recover(); r != nil {
			scope.TraceError(fmt.Errorf("panic: %v", r))
			log.Error().Str("panic", fmt.Sprint(r)).Str("stack", string(debug.Stack())).Msg("recovered from panic in assistant handler")
			metrics.IncTurn(kind.String(), outcomePanic)

			res, err = apology(kind), nil
		}
	}()

	event := ParseEvent(raw)
	kind = event.Kind

	scope.SetAttribute(otelAttrChannel, kind.String())

	if kind == KindTelephony {
		ctx = logger.WithRequest(ctx, requestID(ctx), event.Telephony.Details.ContactData.ContactID)

		return handler.handleTelephony(ctx, event), nil
	}

	ctx = logger.WithRequest(ctx, requestID(ctx), event.Lex.SessionID)

	scope.SetAttribute(otelAttrIntent, event.Lex.IntentName())

	return handler.handleLex(ctx, event), nil
}

func (handler *Handler) handleLex(ctx context.Context, event Event) LexResponse {
	lex := event.Lex

	attrs := make(map[string]string, len(lex.SessionState.SessionAttributes)+2)
	maps.Copy(attrs, lex.SessionState.SessionAttributes)

	intentName := lex.IntentName()
	if intentName == constant.Empty {
		intentName = handler.cfg.App.Conversation.IntentName
	}

	utterance, ok := Extract(event)
	if !ok {
		return handler.noInput(ctx, intentName, attrs)
	}

	logger.Ctx(ctx).Info().Str("intent", intentName).Str("utterance", utterance).Msg("processing utterance")

	if intentName == IntentKnowledgeQuery {
		return handler.answerFromKnowledge(ctx, utterance, intentName, attrs)
	}

	closing := conversation.IsClosing(utterance)

	if !closing && !topic.Validate(utterance) {
		metrics.IncTurn(KindLex.String(), outcomeRedirected)

		return FormatLex(RedirectMessage, StateInProgress, intentName, attrs)
	}

	history, err := model.DecodeHistory(attrs[constant.SessionAttrConversationHistory])
	if err != nil {
		logger.Ctx(ctx).Warn().Err(err).Msg("ignoring unreadable conversation history")
	}

	reply, updated := handler.conversation.Reply(ctx, utterance, history)
	if reply.Failed {
		metrics.IncTurn(KindLex.String(), outcomeFallback)

		return FormatLex(reply.Text, StateInProgress, intentName, attrs)
	}

	text := handler.directives.Process(ctx, reply.Text)

	attrs[constant.SessionAttrConversationHistory] = updated.Encode()
	attrs[constant.SessionAttrFailureCount] = "0"

	if closing {
		metrics.IncTurn(KindLex.String(), outcomeClosed)

		return FormatLex(text, StateFulfilled, intentName, attrs)
	}

	metrics.IncTurn(KindLex.String(), outcomeAnswered)

	return FormatLex(text, StateInProgress, intentName, attrs)
}

func (handler *Handler) noInput(ctx context.Context, intentName string, attrs map[string]string) LexResponse {
	count, err := strconv.Atoi(attrs[constant.SessionAttrFailureCount])
	if err != nil || count < 0 {
		count = 0
	}

	count++
	attrs[constant.SessionAttrFailureCount] = strconv.Itoa(count)

	logger.Ctx(ctx).Info().Int("failure_count", count).Msg("no utterance found in event")

	if count >= handler.cfg.App.Conversation.MaxFailures {
		metrics.IncTurn(KindLex.String(), outcomeGaveUp)

		return FormatLex(GiveUpMessage, StateFailed, intentName, attrs)
	}

	metrics.IncTurn(KindLex.String(), outcomeNoInput)

	return FormatLex(RepeatMessage, StateInProgress, intentName, attrs)
}

func (handler *Handler) answerFromKnowledge(ctx context.Context, question, intentName string, attrs map[string]string) LexResponse {
	answer, err := handler.knowledge.Answer(ctx, question)
	if err != nil {
		logger.Ctx(ctx).Error().Err(err).Msg("failed to answer knowledge query")
		metrics.IncTurn(KindLex.String(), outcomeFallback)

		return FormatLex(KnowledgeFailureMessage, StateFailed, intentName, attrs)
	}

	attrs[constant.SessionAttrFailureCount] = "0"

	metrics.IncTurn(KindLex.String(), outcomeKnowledge)

	return FormatLex(answer, StateFulfilled, intentName, attrs)
}

// handleTelephony answers a single contact flow prompt. No state is carried between prompts.
func (handler *Handler) handleTelephony(ctx context.Context, event Event) any {
	utterance, ok := Extract(event)
	if !ok {
		metrics.IncTurn(KindTelephony.String(), outcomeNoInput)

		return FormatTelephony(RepeatMessage)
	}

	if !conversation.IsClosing(utterance) && !topic.Validate(utterance) {
		metrics.IncTurn(KindTelephony.String(), outcomeRedirected)

		return FormatTelephony(RedirectMessage)
	}

	reply, _ := handler.conversation.Reply(ctx, utterance, nil)
	if reply.Failed {
		metrics.IncTurn(KindTelephony.String(), outcomeFallback)

		return FormatTelephony(reply.Text)
	}

	metrics.IncTurn(KindTelephony.String(), outcomeAnswered)

	return FormatTelephony(handler.directives.Process(ctx, reply.Text))
}

func apology(kind Kind) any {
	if kind == KindTelephony {
		return FormatTelephony(ApologyMessage)
	}

	return FormatLex(ApologyMessage, StateFailed, DefaultIntentName, nil)
}

// requestID prefers the Lambda request id, then one set by the HTTP middleware.
func requestID(ctx context.Context) string {
	if lc, ok := lambdacontext.FromContext(ctx); ok && lc.AwsRequestID != constant.Empty {
		return lc.AwsRequestID
	}

	if id, ok := ctx.Value(constant.ContextKeyRequestID).(string); ok && id != constant.Empty {
		return id
	}

	return uuid.NewString()
}
