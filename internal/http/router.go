package http

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	httpSwagger "github.com/swaggo/http-swagger/v2"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"

	_ "github.com/rogerio-castellano/electronics-catalog-proxy/docs"
	"github.com/rogerio-castellano/electronics-catalog-proxy/internal/http/handlers"
)

func NewRouter(s *handlers.Server, logger *slog.Logger) http.Handler {
	r := chi.NewRouter()
	r.Use(RequestIDMiddleware)
	r.Use(LoggingMiddleware(logger))
	r.Use(middleware.Recoverer)

	r.Get("/step1", s.Step1Handler)
	r.Get("/step2", s.Step2Handler)
	r.Get("/step3", s.Step3Handler)
	r.Get("/step4", s.Step4Handler)

	r.Get("/healthz", s.HealthHandler)
	r.Get("/swagger/*", httpSwagger.Handler(httpSwagger.URL("/swagger/doc.json")))

	return otelhttp.NewHandler(r, "catalog-proxy")
}
