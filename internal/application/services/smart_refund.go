package services

import (
	"context"

	"github.com/DanielPopoola/anet-transactions/internal/domain"
	"go.opentelemetry.io/otel/attribute"
)

// SmartRefund looks the prior transaction up and refunds it when settled, otherwise
// voids it. Nothing is submitted when the lookup finds no transaction.
func (s *TransactionService) SmartRefund(ctx context.Context, intent domain.PaymentIntent) (approval *domain.Approval, err error) {
	ctx, span := s.startSpan(ctx, "SmartRefund", attribute.String("ref_trans_id", intent.TransactionID))
	defer func() { endSpan(span, err) }()

	details, err := s.Lookup(ctx, intent.TransactionID)
	if err != nil {
		return nil, err
	}

	op := domain.OperationVoid
	if domain.IsSettled(details.Status) {
		op = domain.OperationRefund
	}

	s.logger.Info("smart refund resolved operation",
		"trans_id", details.TransID,
		"status", details.Status,
		"operation", op,
	)
	span.SetAttributes(attribute.String("operation", string(op)))

	return s.execute(ctx, intent, op)
}
