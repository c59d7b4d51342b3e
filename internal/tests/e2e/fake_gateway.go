package e2e

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strconv"
	"strings"
	"sync"

	"github.com/DanielPopoola/anet-transactions/internal/domain"
	"github.com/DanielPopoola/anet-transactions/internal/tests/e2e/testdata"
)

const bom = "\xEF\xBB\xBF"

type fakeTransaction struct {
	id     string
	txType string
	status domain.TransactionStatus
	amount string
	card   string
}

// FakeGateway imitates the parts of the Authorize.Net JSON API the service uses.
type FakeGateway struct {
	*httptest.Server

	mu           sync.Mutex
	nextID       int64
	transactions map[string]*fakeTransaction
	requests     []string
}

func NewFakeGateway() *FakeGateway {
	g := &FakeGateway{
		nextID:       60000000001,
		transactions: make(map[string]*fakeTransaction),
	}
	g.Server = httptest.NewServer(http.HandlerFunc(g.serve))
	return g
}

// Settle moves a captured transaction into the settled state.
func (g *FakeGateway) Settle(id string) {
	g.mu.Lock()
	defer g.mu.Unlock()
	if tx, ok := g.transactions[id]; ok {
		tx.status = domain.StatusSettledSuccessfully
	}
}

// Requests returns the transaction types submitted so far, in order.
func (g *FakeGateway) Requests() []string {
	g.mu.Lock()
	defer g.mu.Unlock()
	return append([]string(nil), g.requests...)
}

func (g *FakeGateway) serve(w http.ResponseWriter, r *http.Request) {
	var envelope map[string]json.RawMessage
	if err := json.NewDecoder(r.Body).Decode(&envelope); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	var resp any
	switch {
	case envelope["createTransactionRequest"] != nil:
		resp = g.createTransaction(envelope["createTransactionRequest"])
	case envelope["getTransactionDetailsRequest"] != nil:
		resp = g.transactionDetails(envelope["getTransactionDetailsRequest"])
	default:
		http.Error(w, "unsupported request", http.StatusBadRequest)
		return
	}

	body, _ := json.Marshal(resp)
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	_, _ = w.Write(append([]byte(bom), body...))
}

type createRequest struct {
	RefID              string          `json:"refId"`
	TransactionRequest transactionBody `json:"transactionRequest"`
}

type transactionBody struct {
	TransactionType string `json:"transactionType"`
	Amount          string `json:"amount"`
	RefTransID      string `json:"refTransId"`
	Payment         *struct {
		CreditCard struct {
			CardNumber string `json:"cardNumber"`
		} `json:"creditCard"`
	} `json:"payment"`
	BillTo *struct {
		Zip string `json:"zip"`
	} `json:"billTo"`
}

func (g *FakeGateway) createTransaction(raw json.RawMessage) map[string]any {
	var req createRequest
	if err := json.Unmarshal(raw, &req); err != nil {
		return failure("E00003", err.Error(), nil)
	}
	tx := req.TransactionRequest

	g.mu.Lock()
	defer g.mu.Unlock()
	g.requests = append(g.requests, tx.TransactionType)

	switch tx.TransactionType {
	case string(domain.TransactionTypeAuthCapture):
		if tx.BillTo != nil && tx.BillTo.Zip == testdata.DeclineZip {
			return failure("E00027", "The transaction was unsuccessful.", map[string]any{
				"responseCode": "2",
				"transId":      "0",
				"errors":       []map[string]string{{"errorCode": "2", "errorText": "This transaction has been declined."}},
			})
		}
		id := g.newTransaction(tx.TransactionType, domain.StatusCapturedPendingSettlement, tx.Amount, lastFour(tx))
		return approved(req.RefID, id, "", lastFour(tx))

	case string(domain.TransactionTypeRefund):
		prior, ok := g.transactions[tx.RefTransID]
		if !ok || !domain.IsSettled(prior.status) {
			return failure("E00027", "The transaction was unsuccessful.", map[string]any{
				"responseCode": "3",
				"transId":      "0",
				"errors": []map[string]string{{
					"errorCode": "54",
					"errorText": "The referenced transaction does not meet the criteria for issuing a credit.",
				}},
			})
		}
		id := g.newTransaction(tx.TransactionType, domain.StatusRefundPendingSettlement, tx.Amount, prior.card)
		return approved(req.RefID, id, tx.RefTransID, prior.card)

	case string(domain.TransactionTypeVoid):
		prior, ok := g.transactions[tx.RefTransID]
		if !ok {
			return failure("E00027", "The transaction was unsuccessful.", map[string]any{
				"responseCode": "3",
				"transId":      "0",
				"errors":       []map[string]string{{"errorCode": "16", "errorText": "The transaction cannot be found."}},
			})
		}
		prior.status = domain.StatusVoided
		return approved(req.RefID, prior.id, prior.id, prior.card)
	}

	return failure("E00003", fmt.Sprintf("unknown transaction type %q", tx.TransactionType), nil)
}

func (g *FakeGateway) transactionDetails(raw json.RawMessage) map[string]any {
	var req struct {
		TransID string `json:"transId"`
	}
	_ = json.Unmarshal(raw, &req)

	g.mu.Lock()
	defer g.mu.Unlock()

	tx, ok := g.transactions[req.TransID]
	if !ok {
		return failure("E00040", "The record cannot be found.", nil)
	}

	return map[string]any{
		"transaction": map[string]any{
			"transId":           tx.id,
			"submitTimeUTC":     "2026-10-15T18:04:11.373Z",
			"transactionType":   tx.txType,
			"transactionStatus": string(tx.status),
			"responseCode":      1,
			"authCode":          "QWE123",
			"authAmount":        json.Number(tx.amount),
			"settleAmount":      json.Number(tx.amount),
			"payment": map[string]any{
				"creditCard": map[string]string{"cardNumber": tx.card, "expirationDate": "XXXX", "cardType": "Visa"},
			},
		},
		"messages": map[string]any{
			"resultCode": "Ok",
			"message":    []map[string]string{{"code": "I00001", "text": "Successful."}},
		},
	}
}

// newTransaction must be called with mu held.
func (g *FakeGateway) newTransaction(txType string, status domain.TransactionStatus, amount, card string) string {
	id := strconv.FormatInt(g.nextID, 10)
	g.nextID++
	g.transactions[id] = &fakeTransaction{id: id, txType: txType, status: status, amount: amount, card: card}
	return id
}

func lastFour(tx transactionBody) string {
	if tx.Payment == nil {
		return ""
	}
	number := tx.Payment.CreditCard.CardNumber
	if len(number) < 4 {
		return number
	}
	return "XXXX" + number[len(number)-4:]
}

func approved(refID, transID, refTransID, account string) map[string]any {
	return map[string]any{
		"transactionResponse": map[string]any{
			"responseCode":  "1",
			"authCode":      "QWE123",
			"transId":       transID,
			"refTransID":    refTransID,
			"accountNumber": account,
			"accountType":   cardType(account),
			"messages":      []map[string]string{{"code": "1", "description": "This transaction has been approved."}},
		},
		"refId": refID,
		"messages": map[string]any{
			"resultCode": "Ok",
			"message":    []map[string]string{{"code": "I00001", "text": "Successful."}},
		},
	}
}

func failure(code, text string, transactionResponse map[string]any) map[string]any {
	resp := map[string]any{
		"messages": map[string]any{
			"resultCode": "Error",
			"message":    []map[string]string{{"code": code, "text": text}},
		},
	}
	if transactionResponse != nil {
		resp["transactionResponse"] = transactionResponse
	}
	return resp
}

func cardType(account string) string {
	if strings.HasSuffix(account, "0015") {
		return "MasterCard"
	}
	return "Visa"
}
