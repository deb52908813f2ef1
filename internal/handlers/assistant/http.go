package assistant

import (
	"hauliday/shared/constant"
	"hauliday/shared/failure"
	"hauliday/transport/http/response"
	"io"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
)

const maxEventBytes = 1 << 20

func (handler *Handler) Router(router chi.Router) {
	router.Post("/events", handler.HandleEvent)
}

// HandleEvent accepts a raw Lex or Connect event and returns exactly what the Lambda would.
func (handler *Handler) HandleEvent(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".HandleEvent")
	defer scope.End()

	body, err := io.ReadAll(io.LimitReader(request.Body, maxEventBytes))
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to read event body")

		response.WithError(writer, request, failure.BadRequest(err))

		return
	}

	if len(body) == 0 {
		response.WithError(writer, request, failure.EmptyEventError)

		return
	}

	res, err := handler.Handle(ctx, body)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to handle event")

		response.WithError(writer, request, err)

		return
	}

	response.WithEvent(writer, res)
}
