package services

import (
	"context"

	"github.com/DanielPopoola/anet-transactions/internal/domain"
	"go.opentelemetry.io/otel/attribute"
)

// Void cancels a transaction that has not settled yet
func (s *TransactionService) Void(ctx context.Context, intent domain.PaymentIntent) (approval *domain.Approval, err error) {
	ctx, span := s.startSpan(ctx, "Void", attribute.String("ref_trans_id", intent.TransactionID))
	defer func() { endSpan(span, err) }()

	return s.execute(ctx, intent, domain.OperationVoid)
}
