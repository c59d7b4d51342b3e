package handlers_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/DanielPopoola/anet-transactions/internal/application"
	"github.com/DanielPopoola/anet-transactions/internal/domain"
	"github.com/DanielPopoola/anet-transactions/internal/interfaces/rest"
	"github.com/DanielPopoola/anet-transactions/internal/interfaces/rest/handlers"
	"github.com/DanielPopoola/anet-transactions/internal/interfaces/rest/middleware"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type mockService struct {
	captureFn     func(ctx context.Context, intent domain.PaymentIntent) (*domain.Approval, error)
	refundFn      func(ctx context.Context, intent domain.PaymentIntent) (*domain.Approval, error)
	voidFn        func(ctx context.Context, intent domain.PaymentIntent) (*domain.Approval, error)
	smartRefundFn func(ctx context.Context, intent domain.PaymentIntent) (*domain.Approval, error)
	lookupFn      func(ctx context.Context, transID string) (*domain.TransactionDetails, error)
}

func (m *mockService) Capture(ctx context.Context, intent domain.PaymentIntent) (*domain.Approval, error) {
	return m.captureFn(ctx, intent)
}

func (m *mockService) Refund(ctx context.Context, intent domain.PaymentIntent) (*domain.Approval, error) {
	return m.refundFn(ctx, intent)
}

func (m *mockService) Void(ctx context.Context, intent domain.PaymentIntent) (*domain.Approval, error) {
	return m.voidFn(ctx, intent)
}

func (m *mockService) SmartRefund(ctx context.Context, intent domain.PaymentIntent) (*domain.Approval, error) {
	return m.smartRefundFn(ctx, intent)
}

func (m *mockService) Lookup(ctx context.Context, transID string) (*domain.TransactionDetails, error) {
	return m.lookupFn(ctx, transID)
}

// newServer wires the handlers behind schema validation, as main does.
func newServer(t *testing.T, svc *mockService) http.Handler {
	t.Helper()
	mux := http.NewServeMux()
	handlers.NewHandlers(svc, nil).RegisterRoutes(mux)

	doc, err := rest.LoadOpenAPI()
	require.NoError(t, err)
	validate, err := middleware.OpenAPIValidator(doc, nil)
	require.NoError(t, err)

	return validate(mux)
}

func postJSON(t *testing.T, h http.Handler, path string, body any) (*httptest.ResponseRecorder, rest.APIResponse) {
	t.Helper()
	payload, err := json.Marshal(body)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, req)

	var resp rest.APIResponse
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
	return rr, resp
}

func captureBody() rest.TransactionRequest {
	return rest.TransactionRequest{
		AmountCents: 12550,
		Card:        &rest.Card{Number: "4111111111111111", Expiration: "2030-12", CVV: "123"},
		Billing: &rest.Billing{
			FirstName: "Ellen",
			LastName:  "Johnson",
			Address:   "14 Main Street",
			City:      "Pecan Springs",
			State:     "TX",
			Zip:       "44628",
			Country:   "US",
		},
		InvoiceID: "INV-1001",
	}
}

func approval(id string) *domain.Approval {
	return &domain.Approval{
		TransactionID:      id,
		ResponseCode:       "1",
		AuthCode:           "QWE123",
		MessageCode:        "1",
		MessageDescription: "This transaction has been approved.",
		AccountType:        "Visa",
	}
}

func TestHandleCapture_Success(t *testing.T) {
	var got domain.PaymentIntent
	svc := &mockService{
		captureFn: func(ctx context.Context, intent domain.PaymentIntent) (*domain.Approval, error) {
			got = intent
			return approval("60012345678"), nil
		},
	}

	rr, resp := postJSON(t, newServer(t, svc), "/v1/transactions/capture", captureBody())

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.True(t, resp.Success)
	assert.Equal(t, "60012345678", resp.Data.(map[string]any)["transaction_id"])
	assert.Equal(t, int64(12550), got.AmountCents)
	assert.Equal(t, "4111111111111111", got.CardNumber)
	assert.Equal(t, "123", got.CardCVV)
	assert.Equal(t, "44628", got.BillingZip)
	assert.Equal(t, "INV-1001", got.InvoiceID)
}

func TestHandleCapture_Declined(t *testing.T) {
	svc := &mockService{
		captureFn: func(ctx context.Context, intent domain.PaymentIntent) (*domain.Approval, error) {
			return nil, domain.NewGatewayTransactionError("2", "This transaction has been declined.")
		},
	}

	rr, resp := postJSON(t, newServer(t, svc), "/v1/transactions/capture", captureBody())

	assert.Equal(t, http.StatusPaymentRequired, rr.Code)
	assert.False(t, resp.Success)
	require.NotNil(t, resp.Error)
	assert.Equal(t, "2", resp.Error.Code)
	assert.Contains(t, resp.Error.Message, "This transaction has been declined.")
}

func TestHandleCapture_SchemaViolations(t *testing.T) {
	svc := &mockService{
		captureFn: func(ctx context.Context, intent domain.PaymentIntent) (*domain.Approval, error) {
			t.Fatal("service must not be called")
			return nil, nil
		},
	}
	server := newServer(t, svc)

	missingCard := captureBody()
	missingCard.Card = nil

	negative := captureBody()
	negative.AmountCents = -5

	for name, body := range map[string]rest.TransactionRequest{
		"missing card":    missingCard,
		"negative amount": negative,
	} {
		t.Run(name, func(t *testing.T) {
			rr, resp := postJSON(t, server, "/v1/transactions/capture", body)

			assert.Equal(t, http.StatusBadRequest, rr.Code)
			assert.Equal(t, application.ErrCodeInvalidInput, resp.Error.Code)
		})
	}
}

func TestHandleVoid_PassesTransactionID(t *testing.T) {
	svc := &mockService{
		voidFn: func(ctx context.Context, intent domain.PaymentIntent) (*domain.Approval, error) {
			assert.Equal(t, domain.PaymentIntent{TransactionID: "60012345678"}, intent)
			return approval("60012345678"), nil
		},
	}

	rr, resp := postJSON(t, newServer(t, svc), "/v1/transactions/void", rest.TransactionRequest{TransactionID: "60012345678"})

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.True(t, resp.Success)
}

func TestHandleRefund_RequiresTransactionID(t *testing.T) {
	svc := &mockService{}
	body := captureBody()

	rr, _ := postJSON(t, newServer(t, svc), "/v1/transactions/refund", body)

	assert.Equal(t, http.StatusBadRequest, rr.Code)
}

func TestHandleSmartRefund_NotFound(t *testing.T) {
	svc := &mockService{
		smartRefundFn: func(ctx context.Context, intent domain.PaymentIntent) (*domain.Approval, error) {
			return nil, domain.NewTransactionNotFoundError(intent.TransactionID)
		},
	}

	rr, resp := postJSON(t, newServer(t, svc), "/v1/transactions/smart-refund", rest.TransactionRequest{TransactionID: "404"})

	assert.Equal(t, http.StatusNotFound, rr.Code)
	assert.Equal(t, domain.ErrCodeTransactionNotExist, resp.Error.Code)
}

func TestHandleSmartRefund_TransportFailure(t *testing.T) {
	svc := &mockService{
		smartRefundFn: func(ctx context.Context, intent domain.PaymentIntent) (*domain.Approval, error) {
			return nil, &application.TransportError{StatusCode: http.StatusServiceUnavailable, Body: "down"}
		},
	}

	rr, resp := postJSON(t, newServer(t, svc), "/v1/transactions/smart-refund", rest.TransactionRequest{TransactionID: "1"})

	assert.Equal(t, http.StatusBadGateway, rr.Code)
	assert.Equal(t, "GATEWAY_UNAVAILABLE", resp.Error.Code)
}

func TestHandleGetTransaction(t *testing.T) {
	svc := &mockService{
		lookupFn: func(ctx context.Context, transID string) (*domain.TransactionDetails, error) {
			return &domain.TransactionDetails{
				TransID:           transID,
				Type:              "authCaptureTransaction",
				Status:            domain.StatusSettledSuccessfully,
				ResponseCode:      "1",
				AuthAmountCents:   12550,
				SettleAmountCents: 12550,
				SubmittedAt:       time.Date(2026, 10, 15, 18, 4, 11, 0, time.UTC),
			}, nil
		},
	}

	req := httptest.NewRequest(http.MethodGet, "/v1/transactions/60012345678", nil)
	rr := httptest.NewRecorder()
	newServer(t, svc).ServeHTTP(rr, req)

	require.Equal(t, http.StatusOK, rr.Code)

	var resp struct {
		Success bool                            `json:"success"`
		Data    rest.TransactionDetailsResponse `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
	assert.Equal(t, "60012345678", resp.Data.TransactionID)
	assert.Equal(t, "settledSuccessfully", resp.Data.Status)
	assert.True(t, resp.Data.Settled)
	assert.Equal(t, rest.Refundable{Full: true, Partial: true, Custom: true}, resp.Data.Refundable)
	require.NotNil(t, resp.Data.SubmittedAt)
}

func TestHandleGetTransaction_RejectsNonNumericID(t *testing.T) {
	svc := &mockService{}

	req := httptest.NewRequest(http.MethodGet, "/v1/transactions/abc", nil)
	rr := httptest.NewRecorder()
	newServer(t, svc).ServeHTTP(rr, req)

	assert.Equal(t, http.StatusBadRequest, rr.Code)
}

func TestHandleGetTransaction_UnknownStatus(t *testing.T) {
	svc := &mockService{
		lookupFn: func(ctx context.Context, transID string) (*domain.TransactionDetails, error) {
			return nil, domain.NewUnknownStatusError("partiallySettled")
		},
	}

	req := httptest.NewRequest(http.MethodGet, "/v1/transactions/7", nil)
	rr := httptest.NewRecorder()
	newServer(t, svc).ServeHTTP(rr, req)

	assert.Equal(t, http.StatusBadGateway, rr.Code)
}

func TestHandleHealth(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/healthz", nil)
	rr := httptest.NewRecorder()
	newServer(t, &mockService{}).ServeHTTP(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.JSONEq(t, `{"success":true,"data":{"status":"ok"}}`, rr.Body.String())
}
