package services

import (
	"context"

	"github.com/DanielPopoola/anet-transactions/internal/domain"
	"go.opentelemetry.io/otel/attribute"
)

// Refund returns funds for a settled transaction. The card is re-supplied because the
// gateway matches it against the original transaction.
func (s *TransactionService) Refund(ctx context.Context, intent domain.PaymentIntent) (approval *domain.Approval, err error) {
	ctx, span := s.startSpan(ctx, "Refund", attribute.String("ref_trans_id", intent.TransactionID))
	defer func() { endSpan(span, err) }()

	return s.execute(ctx, intent, domain.OperationRefund)
}
