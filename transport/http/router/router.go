package router

import (
	"hauliday/internal/handlers/assistant"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

type DomainHandlers struct {
	Assistant assistant.Handler
}

type Router struct {
	DomainHandlers DomainHandlers
}

func (r *Router) SetupRoutes(router chi.Router) {
	router.Handle("/metrics", promhttp.Handler())

	router.Route("/v1", func(routerGroup chi.Router) {
		r.DomainHandlers.Assistant.Router(routerGroup)
	})
}

func New(domainHandlers DomainHandlers) Router {
	return Router{
		DomainHandlers: domainHandlers,
	}
}
