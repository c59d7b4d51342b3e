package rest

import (
	"time"

	"github.com/DanielPopoola/anet-transactions/internal/domain"
)

type TransactionRequest struct {
	TransactionID string   `json:"transaction_id,omitempty"`
	AmountCents   int64    `json:"amount_cents,omitempty"`
	Card          *Card    `json:"card,omitempty"`
	Billing       *Billing `json:"billing,omitempty"`
	InvoiceID     string   `json:"invoice_id,omitempty"`
	Description   string   `json:"description,omitempty"`
	Email         string   `json:"email,omitempty"`
}

type Card struct {
	Number     string `json:"number,omitempty"`
	Expiration string `json:"expiration,omitempty"`
	CVV        string `json:"cvv,omitempty"`
}

type Billing struct {
	FirstName string `json:"first_name,omitempty"`
	LastName  string `json:"last_name,omitempty"`
	Address   string `json:"address,omitempty"`
	City      string `json:"city,omitempty"`
	State     string `json:"state,omitempty"`
	Zip       string `json:"zip,omitempty"`
	Country   string `json:"country,omitempty"`
}

type ApprovalResponse struct {
	TransactionID      string `json:"transaction_id"`
	ResponseCode       string `json:"response_code"`
	AuthCode           string `json:"auth_code,omitempty"`
	MessageCode        string `json:"message_code"`
	MessageDescription string `json:"message_description"`
	AccountType        string `json:"account_type,omitempty"`
}

type TransactionDetailsResponse struct {
	TransactionID     string     `json:"transaction_id"`
	RefTransactionID  string     `json:"ref_transaction_id,omitempty"`
	Type              string     `json:"type"`
	Status            string     `json:"status"`
	ResponseCode      string     `json:"response_code"`
	AuthCode          string     `json:"auth_code,omitempty"`
	AuthAmountCents   int64      `json:"auth_amount_cents"`
	SettleAmountCents int64      `json:"settle_amount_cents"`
	SubmittedAt       *time.Time `json:"submitted_at,omitempty"`
	InvoiceNumber     string     `json:"invoice_number,omitempty"`
	Description       string     `json:"description,omitempty"`
	AccountType       string     `json:"account_type,omitempty"`
	AccountNumber     string     `json:"account_number,omitempty"`
	Settled           bool       `json:"settled"`
	Refundable        Refundable `json:"refundable"`
}

type Refundable struct {
	Full    bool `json:"full"`
	Partial bool `json:"partial"`
	Custom  bool `json:"custom"`
}

func (req TransactionRequest) ToIntent() domain.PaymentIntent {
	intent := domain.PaymentIntent{
		AmountCents:   req.AmountCents,
		InvoiceID:     req.InvoiceID,
		Description:   req.Description,
		Email:         req.Email,
		TransactionID: req.TransactionID,
	}

	if req.Card != nil {
		intent.CardNumber = req.Card.Number
		intent.CardExpiration = req.Card.Expiration
		intent.CardCVV = req.Card.CVV
	}
	if req.Billing != nil {
		intent.FirstName = req.Billing.FirstName
		intent.LastName = req.Billing.LastName
		intent.BillingAddress = req.Billing.Address
		intent.BillingCity = req.Billing.City
		intent.BillingState = req.Billing.State
		intent.BillingZip = req.Billing.Zip
		intent.BillingCountry = req.Billing.Country
	}

	return intent
}

func ToApprovalResponse(a *domain.Approval) ApprovalResponse {
	return ApprovalResponse{
		TransactionID:      a.TransactionID,
		ResponseCode:       a.ResponseCode,
		AuthCode:           a.AuthCode,
		MessageCode:        a.MessageCode,
		MessageDescription: a.MessageDescription,
		AccountType:        a.AccountType,
	}
}

func ToDetailsResponse(d *domain.TransactionDetails) TransactionDetailsResponse {
	resp := TransactionDetailsResponse{
		TransactionID:     d.TransID,
		RefTransactionID:  d.RefTransID,
		Type:              d.Type,
		Status:            d.Status.String(),
		ResponseCode:      d.ResponseCode,
		AuthCode:          d.AuthCode,
		AuthAmountCents:   d.AuthAmountCents,
		SettleAmountCents: d.SettleAmountCents,
		InvoiceNumber:     d.InvoiceNumber,
		Description:       d.Description,
		AccountType:       d.AccountType,
		AccountNumber:     d.AccountNumber,
		Settled:           domain.IsSettled(d.Status),
		Refundable: Refundable{
			Full:    domain.IsPossibleFullRefund(d.Status),
			Partial: domain.IsPossiblePartialRefund(d.Status),
			Custom:  domain.IsPossibleCustomRefund(d.Status),
		},
	}

	if !d.SubmittedAt.IsZero() {
		submitted := d.SubmittedAt
		resp.SubmittedAt = &submitted
	}

	return resp
}
