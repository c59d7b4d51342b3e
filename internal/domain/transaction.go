package domain

import "time"

// TransactionRequest describes a create-transaction call. Optional sections are nil when
// the operation does not send them.
type TransactionRequest struct {
	RefID       string
	Type        TransactionType
	AmountCents int64
	RefTransID  string
	CreditCard  *CreditCard
	Order       *Order
	BillTo      *BillingAddress
	Customer    *Customer
	Settings    []Setting
}

type CreditCard struct {
	CardNumber     string
	ExpirationDate string
	CardCode       string
}

type Order struct {
	InvoiceNumber string
	Description   string
}

type BillingAddress struct {
	FirstName string
	LastName  string
	Address   string
	City      string
	State     string
	Zip       string
	Country   string
}

type Customer struct {
	Type  string
	ID    string
	Email string
}

type Setting struct {
	Name  string
	Value string
}

// Gateway result codes
const (
	ResultCodeOk    = "Ok"
	ResultCodeError = "Error"
)

// CreateTransactionResponse is the gateway's reply to a create-transaction call.
type CreateTransactionResponse struct {
	RefID               string               `json:"refId"`
	Messages            Messages             `json:"messages"`
	TransactionResponse *TransactionResponse `json:"transactionResponse"`
}

type Messages struct {
	ResultCode string    `json:"resultCode"`
	Message    []Message `json:"message"`
}

type Message struct {
	Code string `json:"code"`
	Text string `json:"text"`
}

type TransactionResponse struct {
	ResponseCode  string                `json:"responseCode"`
	AuthCode      string                `json:"authCode"`
	TransID       string                `json:"transId"`
	RefTransID    string                `json:"refTransID"`
	AccountNumber string                `json:"accountNumber"`
	AccountType   string                `json:"accountType"`
	Messages      []TransactionMessage  `json:"messages"`
	Errors        []TransactionErrorMsg `json:"errors"`
}

type TransactionMessage struct {
	Code        string `json:"code"`
	Description string `json:"description"`
}

type TransactionErrorMsg struct {
	ErrorCode string `json:"errorCode"`
	ErrorText string `json:"errorText"`
}

// Approval is the success side of a canonical result.
type Approval struct {
	TransactionID      string
	ResponseCode       string
	AuthCode           string
	MessageCode        string
	MessageDescription string
	AccountType        string
}

// TransactionDetails is the gateway's record of an existing transaction.
type TransactionDetails struct {
	TransID           string
	RefTransID        string
	Type              string
	Status            TransactionStatus
	ResponseCode      string
	AuthCode          string
	AuthAmountCents   int64
	SettleAmountCents int64
	SubmittedAt       time.Time
	InvoiceNumber     string
	Description       string
	AccountType       string
	AccountNumber     string
}
