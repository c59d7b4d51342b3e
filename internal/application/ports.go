package application

import (
	"context"

	"github.com/DanielPopoola/anet-transactions/internal/domain"
)

// GatewayClient is the port for the external card-processing gateway.
type GatewayClient interface {
	// CreateTransaction submits a capture, refund or void. A nil response with a nil
	// error means the gateway returned nothing.
	CreateTransaction(ctx context.Context, req domain.TransactionRequest) (*domain.CreateTransactionResponse, error)

	// GetTransactionDetails returns nil, nil when the gateway holds no such transaction.
	GetTransactionDetails(ctx context.Context, transID string) (*domain.TransactionDetails, error)
}
