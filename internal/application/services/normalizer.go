package services

import (
	"fmt"

	"github.com/DanielPopoola/anet-transactions/internal/domain"
)

// Normalize collapses a create-transaction response into an Approval or a
// *domain.TransactionFailure. The checks run in a fixed order: a top-level success can
// still carry no transaction data, and that case must fail before any field is read.
func Normalize(resp *domain.CreateTransactionResponse) (*domain.Approval, error) {
	if resp == nil {
		return nil, domain.NewNoResponseError()
	}

	txResp := resp.TransactionResponse

	if resp.Messages.ResultCode != domain.ResultCodeOk {
		if txResp != nil && len(txResp.Errors) > 0 {
			first := txResp.Errors[0]
			return nil, domain.NewGatewayTransactionError(first.ErrorCode, first.ErrorText)
		}
		if len(resp.Messages.Message) > 0 {
			first := resp.Messages.Message[0]
			return nil, domain.NewGatewayRejectedError(first.Code, first.Text)
		}
		return nil, domain.NewGatewayRejectedError("", fmt.Sprintf("gateway returned result code %q", resp.Messages.ResultCode))
	}

	if txResp == nil {
		return nil, domain.NewDegenerateResponseError()
	}

	if len(txResp.Messages) == 0 {
		if len(txResp.Errors) > 0 {
			first := txResp.Errors[0]
			return nil, domain.NewGatewayTransactionError(first.ErrorCode, first.ErrorText)
		}
		return nil, domain.NewDegenerateResponseError()
	}

	return &domain.Approval{
		TransactionID:      txResp.TransID,
		ResponseCode:       txResp.ResponseCode,
		AuthCode:           txResp.AuthCode,
		MessageCode:        txResp.Messages[0].Code,
		MessageDescription: txResp.Messages[0].Description,
		AccountType:        txResp.AccountType,
	}, nil
}
