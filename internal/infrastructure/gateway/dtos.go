package gateway

import (
	"encoding/json"
	"fmt"
	"math"
	"time"

	"github.com/DanielPopoola/anet-transactions/internal/domain"
)

// The gateway validates JSON against an ordered schema, so field order in these
// structs follows the schema and must not be rearranged.

type merchantAuthentication struct {
	Name           string `json:"name"`
	TransactionKey string `json:"transactionKey"`
}

type createTransactionEnvelope struct {
	Request createTransactionRequest `json:"createTransactionRequest"`
}

type createTransactionRequest struct {
	MerchantAuthentication merchantAuthentication `json:"merchantAuthentication"`
	RefID                  string                 `json:"refId,omitempty"`
	TransactionRequest     transactionRequest     `json:"transactionRequest"`
}

type transactionRequest struct {
	TransactionType     string               `json:"transactionType"`
	Amount              string               `json:"amount,omitempty"`
	Payment             *paymentType         `json:"payment,omitempty"`
	RefTransID          string               `json:"refTransId,omitempty"`
	Order               *orderType           `json:"order,omitempty"`
	Customer            *customerType        `json:"customer,omitempty"`
	BillTo              *billToType          `json:"billTo,omitempty"`
	TransactionSettings *transactionSettings `json:"transactionSettings,omitempty"`
}

type paymentType struct {
	CreditCard creditCardType `json:"creditCard"`
}

type creditCardType struct {
	CardNumber     string `json:"cardNumber"`
	ExpirationDate string `json:"expirationDate"`
	CardCode       string `json:"cardCode,omitempty"`
	CardType       string `json:"cardType,omitempty"`
}

type orderType struct {
	InvoiceNumber string `json:"invoiceNumber,omitempty"`
	Description   string `json:"description,omitempty"`
}

type customerType struct {
	Type  string `json:"type,omitempty"`
	ID    string `json:"id,omitempty"`
	Email string `json:"email,omitempty"`
}

type billToType struct {
	FirstName string `json:"firstName,omitempty"`
	LastName  string `json:"lastName,omitempty"`
	Address   string `json:"address,omitempty"`
	City      string `json:"city,omitempty"`
	State     string `json:"state,omitempty"`
	Zip       string `json:"zip,omitempty"`
	Country   string `json:"country,omitempty"`
}

type transactionSettings struct {
	Setting []settingType `json:"setting"`
}

type settingType struct {
	SettingName  string `json:"settingName"`
	SettingValue string `json:"settingValue"`
}

type getTransactionDetailsEnvelope struct {
	Request getTransactionDetailsRequest `json:"getTransactionDetailsRequest"`
}

type getTransactionDetailsRequest struct {
	MerchantAuthentication merchantAuthentication `json:"merchantAuthentication"`
	TransID                string                 `json:"transId"`
}

type getTransactionDetailsResponse struct {
	Transaction *transactionDetailsType `json:"transaction"`
	Messages    domain.Messages         `json:"messages"`
}

type transactionDetailsType struct {
	TransID           string       `json:"transId"`
	RefTransID        string       `json:"refTransId"`
	SubmitTimeUTC     string       `json:"submitTimeUTC"`
	TransactionType   string       `json:"transactionType"`
	TransactionStatus string       `json:"transactionStatus"`
	ResponseCode      json.Number  `json:"responseCode"`
	AuthCode          string       `json:"authCode"`
	AuthAmount        json.Number  `json:"authAmount"`
	SettleAmount      json.Number  `json:"settleAmount"`
	Order             *orderType   `json:"order"`
	Payment           *paymentType `json:"payment"`
}

func toWireRequest(auth merchantAuthentication, req domain.TransactionRequest) createTransactionEnvelope {
	tx := transactionRequest{
		TransactionType: string(req.Type),
		RefTransID:      req.RefTransID,
	}

	if req.AmountCents > 0 {
		tx.Amount = formatAmount(req.AmountCents)
	}
	if req.CreditCard != nil {
		tx.Payment = &paymentType{CreditCard: creditCardType{
			CardNumber:     req.CreditCard.CardNumber,
			ExpirationDate: req.CreditCard.ExpirationDate,
			CardCode:       req.CreditCard.CardCode,
		}}
	}
	if req.Order != nil {
		tx.Order = &orderType{
			InvoiceNumber: req.Order.InvoiceNumber,
			Description:   req.Order.Description,
		}
	}
	if req.Customer != nil {
		tx.Customer = &customerType{
			Type:  req.Customer.Type,
			ID:    req.Customer.ID,
			Email: req.Customer.Email,
		}
	}
	if req.BillTo != nil {
		tx.BillTo = &billToType{
			FirstName: req.BillTo.FirstName,
			LastName:  req.BillTo.LastName,
			Address:   req.BillTo.Address,
			City:      req.BillTo.City,
			State:     req.BillTo.State,
			Zip:       req.BillTo.Zip,
			Country:   req.BillTo.Country,
		}
	}
	if len(req.Settings) > 0 {
		settings := &transactionSettings{Setting: make([]settingType, 0, len(req.Settings))}
		for _, s := range req.Settings {
			settings.Setting = append(settings.Setting, settingType{SettingName: s.Name, SettingValue: s.Value})
		}
		tx.TransactionSettings = settings
	}

	return createTransactionEnvelope{Request: createTransactionRequest{
		MerchantAuthentication: auth,
		RefID:                  req.RefID,
		TransactionRequest:     tx,
	}}
}

func toDomainDetails(w *transactionDetailsType) (*domain.TransactionDetails, error) {
	status, err := domain.ParseTransactionStatus(w.TransactionStatus)
	if err != nil {
		return nil, err
	}

	authAmount, err := amountToCents(w.AuthAmount)
	if err != nil {
		return nil, fmt.Errorf("auth amount: %w", err)
	}
	settleAmount, err := amountToCents(w.SettleAmount)
	if err != nil {
		return nil, fmt.Errorf("settle amount: %w", err)
	}

	details := &domain.TransactionDetails{
		TransID:           w.TransID,
		RefTransID:        w.RefTransID,
		Type:              w.TransactionType,
		Status:            status,
		ResponseCode:      w.ResponseCode.String(),
		AuthCode:          w.AuthCode,
		AuthAmountCents:   authAmount,
		SettleAmountCents: settleAmount,
	}

	if submitted, err := time.Parse(time.RFC3339Nano, w.SubmitTimeUTC); err == nil {
		details.SubmittedAt = submitted
	}
	if w.Order != nil {
		details.InvoiceNumber = w.Order.InvoiceNumber
		details.Description = w.Order.Description
	}
	if w.Payment != nil {
		details.AccountNumber = w.Payment.CreditCard.CardNumber
		details.AccountType = w.Payment.CreditCard.CardType
	}

	return details, nil
}

func formatAmount(cents int64) string {
	return fmt.Sprintf("%d.%02d", cents/100, cents%100)
}

func amountToCents(n json.Number) (int64, error) {
	if n == "" {
		return 0, nil
	}
	f, err := n.Float64()
	if err != nil {
		return 0, err
	}
	return int64(math.Round(f * 100)), nil
}
