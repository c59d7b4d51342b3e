package services

import (
	"context"
	"fmt"

	"github.com/DanielPopoola/anet-transactions/internal/domain"
	"go.opentelemetry.io/otel/attribute"
)

// Lookup fetches the gateway's current record of a transaction. A transaction the
// gateway does not know yields a TRANSACTION_NOT_FOUND failure.
func (s *TransactionService) Lookup(ctx context.Context, transID string) (details *domain.TransactionDetails, err error) {
	ctx, span := s.startSpan(ctx, "Lookup", attribute.String("trans_id", transID))
	defer func() { endSpan(span, err) }()

	if err := s.validate.Var(transID, "required"); err != nil {
		return nil, domain.NewInvalidIntentError(fmt.Errorf("transaction id: %w", err))
	}

	details, err = s.client.GetTransactionDetails(ctx, transID)
	if err != nil {
		s.logger.Error("transaction lookup failed", "trans_id", transID, "error", err)
		return nil, fmt.Errorf("lookup transaction %s: %w", transID, err)
	}
	if details == nil {
		return nil, domain.NewTransactionNotFoundError(transID)
	}
	if !details.Status.IsKnown() {
		s.logger.Warn("gateway reported unknown status", "trans_id", transID, "status", details.Status)
		return nil, domain.NewUnknownStatusError(string(details.Status))
	}

	span.SetAttributes(attribute.String("status", string(details.Status)))
	return details, nil
}
