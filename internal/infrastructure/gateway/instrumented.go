package gateway

import (
	"context"
	"time"

	"github.com/DanielPopoola/anet-transactions/internal/application"
	"github.com/DanielPopoola/anet-transactions/internal/domain"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const (
	opCreateTransaction     = "create_transaction"
	opGetTransactionDetails = "get_transaction_details"

	resultOk             = "ok"
	resultError          = "error"
	resultEmpty          = "empty"
	resultTransportError = "transport_error"
)

// InstrumentedClient records request counts and latency for every gateway call.
type InstrumentedClient struct {
	inner    application.GatewayClient
	requests *prometheus.CounterVec
	latency  *prometheus.HistogramVec
}

var _ application.GatewayClient = (*InstrumentedClient)(nil)

func NewInstrumentedClient(inner application.GatewayClient, reg prometheus.Registerer) *InstrumentedClient {
	factory := promauto.With(reg)
	return &InstrumentedClient{
		inner: inner,
		requests: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: "anet",
			Subsystem: "gateway",
			Name:      "requests_total",
			Help:      "Gateway calls by operation and result.",
		}, []string{"operation", "result"}),
		latency: factory.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: "anet",
			Subsystem: "gateway",
			Name:      "request_duration_seconds",
			Help:      "Gateway call latency.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"operation"}),
	}
}

func (c *InstrumentedClient) CreateTransaction(ctx context.Context, req domain.TransactionRequest) (*domain.CreateTransactionResponse, error) {
	start := time.Now()
	resp, err := c.inner.CreateTransaction(ctx, req)
	c.latency.WithLabelValues(opCreateTransaction).Observe(time.Since(start).Seconds())

	result := resultOk
	switch {
	case err != nil:
		result = resultTransportError
	case resp == nil:
		result = resultEmpty
	case resp.Messages.ResultCode != domain.ResultCodeOk:
		result = resultError
	}
	c.requests.WithLabelValues(opCreateTransaction, result).Inc()

	return resp, err
}

func (c *InstrumentedClient) GetTransactionDetails(ctx context.Context, transID string) (*domain.TransactionDetails, error) {
	start := time.Now()
	details, err := c.inner.GetTransactionDetails(ctx, transID)
	c.latency.WithLabelValues(opGetTransactionDetails).Observe(time.Since(start).Seconds())

	result := resultOk
	switch {
	case err != nil:
		result = resultError
		if _, ok := application.IsTransportError(err); ok {
			result = resultTransportError
		}
	case details == nil:
		result = resultEmpty
	}
	c.requests.WithLabelValues(opGetTransactionDetails, result).Inc()

	return details, err
}
