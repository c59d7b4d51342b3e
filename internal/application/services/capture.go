package services

import (
	"context"

	"github.com/DanielPopoola/anet-transactions/internal/domain"
	"go.opentelemetry.io/otel/attribute"
)

// Capture authorizes and captures funds for a new transaction in one step.
func (s *TransactionService) Capture(ctx context.Context, intent domain.PaymentIntent) (approval *domain.Approval, err error) {
	ctx, span := s.startSpan(ctx, "Capture", attribute.String("invoice_id", intent.InvoiceID))
	defer func() { endSpan(span, err) }()

	return s.execute(ctx, intent, domain.OperationCapture)
}
