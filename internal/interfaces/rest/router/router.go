// Package router assembles the HTTP stack served by the transaction service.
package router

import (
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/DanielPopoola/anet-transactions/internal/interfaces/rest"
	"github.com/DanielPopoola/anet-transactions/internal/interfaces/rest/handlers"
	"github.com/DanielPopoola/anet-transactions/internal/interfaces/rest/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
)

type Options struct {
	Logger         *slog.Logger
	RequestTimeout time.Duration
	Registerer     prometheus.Registerer
	Gatherer       prometheus.Gatherer
	ServiceName    string
}

// New wires handlers, schema validation and the middleware chain. Outermost
// first: tracing, timeout, logging, recovery, validation, metrics, mux.
func New(service handlers.TransactionService, opts Options) (http.Handler, error) {
	if opts.Logger == nil {
		opts.Logger = slog.Default()
	}
	if opts.Registerer == nil {
		opts.Registerer = prometheus.DefaultRegisterer
	}
	if opts.Gatherer == nil {
		opts.Gatherer = prometheus.DefaultGatherer
	}

	mux := http.NewServeMux()
	handlers.NewHandlers(service, opts.Logger).RegisterRoutes(mux)
	mux.Handle("GET /metrics", promhttp.HandlerFor(opts.Gatherer, promhttp.HandlerOpts{}))

	doc, err := rest.LoadOpenAPI()
	if err != nil {
		return nil, err
	}
	validateRequests, err := middleware.OpenAPIValidator(doc, opts.Logger)
	if err != nil {
		return nil, fmt.Errorf("build request validator: %w", err)
	}

	handler := middleware.Metrics(opts.Registerer)(mux)
	handler = validateRequests(handler)
	handler = middleware.Recovery(opts.Logger)(handler)
	handler = middleware.Logging(opts.Logger)(handler)
	if opts.RequestTimeout > 0 {
		handler = middleware.Timeout(opts.RequestTimeout)(handler)
	}
	if opts.ServiceName != "" {
		handler = otelhttp.NewHandler(handler, opts.ServiceName)
	}

	return handler, nil
}
