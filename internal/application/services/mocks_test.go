package services_test

import (
	"context"

	"github.com/DanielPopoola/anet-transactions/internal/domain"
	"github.com/stretchr/testify/mock"
)

// MockGatewayClient
type MockGatewayClient struct {
	mock.Mock
}

func (m *MockGatewayClient) CreateTransaction(ctx context.Context, req domain.TransactionRequest) (*domain.CreateTransactionResponse, error) {
	args := m.Called(ctx, req)
	resp, _ := args.Get(0).(*domain.CreateTransactionResponse)
	return resp, args.Error(1)
}

func (m *MockGatewayClient) GetTransactionDetails(ctx context.Context, transID string) (*domain.TransactionDetails, error) {
	args := m.Called(ctx, transID)
	details, _ := args.Get(0).(*domain.TransactionDetails)
	return details, args.Error(1)
}

func approvedResponse(transID string) *domain.CreateTransactionResponse {
	return &domain.CreateTransactionResponse{
		RefID:    "ref1792152000",
		Messages: okMessages(),
		TransactionResponse: &domain.TransactionResponse{
			ResponseCode: "1",
			AuthCode:     "QWE123",
			TransID:      transID,
			AccountType:  "Visa",
			Messages:     []domain.TransactionMessage{{Code: "1", Description: "This transaction has been approved."}},
		},
	}
}

func requestOfType(txType domain.TransactionType) any {
	return mock.MatchedBy(func(req domain.TransactionRequest) bool {
		return req.Type == txType
	})
}
