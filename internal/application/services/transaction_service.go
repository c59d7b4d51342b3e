package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/DanielPopoola/anet-transactions/internal/application"
	"github.com/DanielPopoola/anet-transactions/internal/domain"
	"github.com/go-playground/validator"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

const tracerName = "github.com/DanielPopoola/anet-transactions/internal/application/services"

// TransactionService drives intents through the gateway and reports canonical results.
// It holds no per-call state and is safe for concurrent use.
type TransactionService struct {
	client   application.GatewayClient
	builder  *RequestBuilder
	validate *validator.Validate
	logger   *slog.Logger
	tracer   trace.Tracer
}

func NewTransactionService(client application.GatewayClient, logger *slog.Logger) *TransactionService {
	return NewTransactionServiceWithClock(client, logger, time.Now)
}

func NewTransactionServiceWithClock(client application.GatewayClient, logger *slog.Logger, now func() time.Time) *TransactionService {
	if logger == nil {
		logger = slog.Default()
	}
	return &TransactionService{
		client:   client,
		builder:  NewRequestBuilder(now),
		validate: validator.New(),
		logger:   logger,
		tracer:   otel.Tracer(tracerName),
	}
}

func (s *TransactionService) execute(ctx context.Context, intent domain.PaymentIntent, op domain.OperationKind) (*domain.Approval, error) {
	if err := s.validateIntent(intent, op); err != nil {
		return nil, err
	}

	req, err := s.builder.Build(intent, op)
	if err != nil {
		s.logger.Error("cannot build transaction request", "operation", op, "error", err)
		return nil, err
	}

	logger := s.logger.With("operation", op, "ref_id", req.RefID, "ref_trans_id", req.RefTransID)

	resp, err := s.client.CreateTransaction(ctx, req)
	if err != nil {
		logger.Error("gateway call failed", "error", err)
		return nil, fmt.Errorf("%s transaction: %w", op, err)
	}

	approval, err := Normalize(resp)
	if err != nil {
		logger.Warn("transaction not approved",
			"category", application.CategorizeError(err),
			"error", err,
		)
		return nil, err
	}

	logger.Info("transaction approved",
		"trans_id", approval.TransactionID,
		"response_code", approval.ResponseCode,
	)
	return approval, nil
}

func (s *TransactionService) validateIntent(intent domain.PaymentIntent, op domain.OperationKind) error {
	if _, ok := op.TransactionType(); !ok {
		s.logger.Error("unsupported operation requested", "operation", op)
		return domain.NewInvalidOperationError(op)
	}

	if err := s.validate.StructPartial(intent, op.RequiredFields()...); err != nil {
		return domain.NewInvalidIntentError(err)
	}
	return nil
}

func (s *TransactionService) startSpan(ctx context.Context, name string, attrs ...attribute.KeyValue) (context.Context, trace.Span) {
	return s.tracer.Start(ctx, "TransactionService."+name, trace.WithAttributes(attrs...))
}

func endSpan(span trace.Span, err error) {
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
	}
	span.End()
}
