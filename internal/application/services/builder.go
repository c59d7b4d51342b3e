package services

import (
	"fmt"
	"strings"
	"time"

	"github.com/DanielPopoola/anet-transactions/internal/domain"
)

const (
	customerType           = "individual"
	customerID             = "999999"
	duplicateWindowSetting = "duplicateWindow"
	duplicateWindowSeconds = "60"
	zipLength              = 5
)

// RequestBuilder turns a payment intent into the request description for one operation.
type RequestBuilder struct {
	now func() time.Time
}

func NewRequestBuilder(now func() time.Time) *RequestBuilder {
	if now == nil {
		now = time.Now
	}
	return &RequestBuilder{now: now}
}

// Build returns only the fields the operation sends; anything else on the intent is ignored.
func (b *RequestBuilder) Build(intent domain.PaymentIntent, op domain.OperationKind) (domain.TransactionRequest, error) {
	txType, ok := op.TransactionType()
	if !ok {
		return domain.TransactionRequest{}, domain.NewInvalidOperationError(op)
	}

	req := domain.TransactionRequest{
		RefID: b.refID(),
		Type:  txType,
	}

	switch op {
	case domain.OperationCapture:
		req.AmountCents = intent.AmountCents
		req.CreditCard = creditCard(intent)
		req.Order = &domain.Order{
			InvoiceNumber: intent.InvoiceID,
			Description:   intent.Description,
		}
		req.Customer = &domain.Customer{
			Type:  customerType,
			ID:    customerID,
			Email: intent.Email,
		}
		req.BillTo = &domain.BillingAddress{
			FirstName: intent.FirstName,
			LastName:  intent.LastName,
			Address:   intent.BillingAddress,
			City:      intent.BillingCity,
			State:     intent.BillingState,
			Zip:       FormatZip(intent.BillingZip),
			Country:   intent.BillingCountry,
		}
		req.Settings = []domain.Setting{
			{Name: duplicateWindowSetting, Value: duplicateWindowSeconds},
		}
	case domain.OperationRefund:
		req.RefTransID = intent.TransactionID
		req.AmountCents = intent.AmountCents
		req.CreditCard = creditCard(intent)
	case domain.OperationVoid:
		req.RefTransID = intent.TransactionID
	}

	return req, nil
}

// refID is a hint for the gateway's duplicate detection, not a uniqueness guarantee.
func (b *RequestBuilder) refID() string {
	return fmt.Sprintf("ref%d", b.now().Unix())
}

func creditCard(intent domain.PaymentIntent) *domain.CreditCard {
	card := &domain.CreditCard{
		CardNumber:     intent.CardNumber,
		ExpirationDate: intent.CardExpiration,
	}
	if intent.CardCVV != "" {
		card.CardCode = intent.CardCVV
	}
	return card
}

// FormatZip reads the leading digits of zip as a number and renders its last five
// digits zero-padded: "1234" becomes "01234", "123456" becomes "23456",
// "12345-6789" becomes "12345" and a zip with no leading digits becomes "00000".
func FormatZip(zip string) string {
	zip = strings.TrimSpace(zip)
	end := 0
	for end < len(zip) && zip[end] >= '0' && zip[end] <= '9' {
		end++
	}
	digits := zip[:end]

	if len(digits) > zipLength {
		return digits[len(digits)-zipLength:]
	}
	return strings.Repeat("0", zipLength-len(digits)) + digits
}
