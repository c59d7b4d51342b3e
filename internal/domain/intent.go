package domain

// OperationKind is the local intent a caller asks the gateway to carry out
type OperationKind string

const (
	OperationCapture OperationKind = "capture"
	OperationRefund  OperationKind = "refund"
	OperationVoid    OperationKind = "void"
)

// TransactionType is the gateway's name for a create-transaction request.
type TransactionType string

const (
	TransactionTypeAuthCapture TransactionType = "authCaptureTransaction"
	TransactionTypeRefund      TransactionType = "refundTransaction"
	TransactionTypeVoid        TransactionType = "voidTransaction"
)

// TransactionType maps the operation to the gateway transaction type.
// The second value is false for operations the gateway does not know.
func (k OperationKind) TransactionType() (TransactionType, bool) {
	switch k {
	case OperationCapture:
		return TransactionTypeAuthCapture, true
	case OperationRefund:
		return TransactionTypeRefund, true
	case OperationVoid:
		return TransactionTypeVoid, true
	}
	return "", false
}

// RequiredFields names the PaymentIntent fields an operation cannot be built without.
func (k OperationKind) RequiredFields() []string {
	switch k {
	case OperationCapture:
		return []string{
			"AmountCents", "CardNumber", "CardExpiration",
			"FirstName", "LastName", "BillingAddress", "BillingCity",
			"BillingState", "BillingZip", "BillingCountry",
		}
	case OperationRefund:
		return []string{"TransactionID", "AmountCents", "CardNumber", "CardExpiration"}
	case OperationVoid:
		return []string{"TransactionID"}
	}
	return nil
}

// PaymentIntent is the caller-owned description of a payment. It is only ever read.
type PaymentIntent struct {
	AmountCents int64 `validate:"gt=0"`

	CardNumber     string `validate:"required"`
	CardExpiration string `validate:"required"`
	CardCVV        string

	FirstName      string `validate:"required"`
	LastName       string `validate:"required"`
	BillingAddress string `validate:"required"`
	BillingCity    string `validate:"required"`
	BillingState   string `validate:"required"`
	BillingZip     string `validate:"required"`
	BillingCountry string `validate:"required"`

	InvoiceID   string
	Description string
	Email       string `validate:"omitempty,email"`

	// TransactionID references the prior transaction for refund, void and lookup.
	TransactionID string `validate:"required"`
}
