//go:build wireinject
// +build wireinject

package di

import (
	"hauliday/config"
	"hauliday/infras/awscfg"
	"hauliday/infras/bedrock"
	"hauliday/infras/dynamodb"
	"hauliday/infras/otel"
	"hauliday/internal/domains/catalog"
	"hauliday/internal/domains/directive"
	assistantHandler "hauliday/internal/handlers/assistant"
	"hauliday/transport/http"
	"hauliday/transport/http/middleware"
	"hauliday/transport/http/router"

	conversationService "hauliday/internal/domains/conversation/service"
	knowledgeService "hauliday/internal/domains/knowledge/service"
	reservationRepository "hauliday/internal/domains/reservation/repository"
	reservationService "hauliday/internal/domains/reservation/service"

	"github.com/google/wire"
)

var configurations = wire.NewSet(
	config.Get,
)

var infrastructures = wire.NewSet(
	otel.New,
	awscfg.New,
	bedrock.New,
	dynamodb.New,
	ProvideGenerator,
)

var middlewares = wire.NewSet(
	middleware.NewAppMiddleware,
)

var reservationDomain = wire.NewSet(
	reservationRepository.New,
	reservationService.New,
)

var conversationDomain = wire.NewSet(
	catalog.MustLoad,
	knowledgeService.New,
	wire.Bind(new(conversationService.Grounding), new(knowledgeService.Knowledge)),
	conversationService.New,
	directive.New,
)

var domains = wire.NewSet(
	reservationDomain,
	conversationDomain,
)

var routing = wire.NewSet(
	wire.Struct(new(router.DomainHandlers), "*"),
	assistantHandler.New,
	router.New,
)

func InitializeAssistant() *Assistant {
	wire.Build(
		configurations,
		infrastructures,
		domains,
		assistantHandler.New,
		wire.Struct(new(Assistant), "*"),
	)

	return &Assistant{}
}

func InitializeDevServer() *http.HTTP {
	wire.Build(
		configurations,
		infrastructures,
		middlewares,
		domains,
		routing,
		http.New,
	)

	return &http.HTTP{}
}
