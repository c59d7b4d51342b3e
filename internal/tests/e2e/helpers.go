package e2e

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"testing"
	"time"

	"github.com/DanielPopoola/anet-transactions/internal/interfaces/rest"
	"github.com/DanielPopoola/anet-transactions/internal/tests/e2e/testdata"
	"github.com/stretchr/testify/require"
)

// TestClient wraps HTTP calls to the transaction service
type TestClient struct {
	baseURL    string
	httpClient *http.Client
}

func NewTestClient(baseURL string) *TestClient {
	return &TestClient{
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: 10 * time.Second,
		},
	}
}

// Result is a decoded service response.
type Result struct {
	Status int
	Body   []byte
	Error  *rest.APIError
}

func (r Result) Approval(t *testing.T) rest.ApprovalResponse {
	t.Helper()
	var resp struct {
		Data rest.ApprovalResponse `json:"data"`
	}
	require.NoError(t, json.Unmarshal(r.Body, &resp))
	return resp.Data
}

func (r Result) Details(t *testing.T) rest.TransactionDetailsResponse {
	t.Helper()
	var resp struct {
		Data rest.TransactionDetailsResponse `json:"data"`
	}
	require.NoError(t, json.Unmarshal(r.Body, &resp))
	return resp.Data
}

func (c *TestClient) Capture(t *testing.T, req rest.TransactionRequest) Result {
	return c.post(t, "/v1/transactions/capture", req)
}

func (c *TestClient) Refund(t *testing.T, req rest.TransactionRequest) Result {
	return c.post(t, "/v1/transactions/refund", req)
}

func (c *TestClient) Void(t *testing.T, transactionID string) Result {
	return c.post(t, "/v1/transactions/void", rest.TransactionRequest{TransactionID: transactionID})
}

func (c *TestClient) SmartRefund(t *testing.T, req rest.TransactionRequest) Result {
	return c.post(t, "/v1/transactions/smart-refund", req)
}

func (c *TestClient) Lookup(t *testing.T, transactionID string) Result {
	return c.do(t, http.MethodGet, "/v1/transactions/"+transactionID, nil)
}

func (c *TestClient) Metrics(t *testing.T) string {
	return string(c.do(t, http.MethodGet, "/metrics", nil).Body)
}

func (c *TestClient) post(t *testing.T, path string, req rest.TransactionRequest) Result {
	body, err := json.Marshal(req)
	require.NoError(t, err)
	return c.do(t, http.MethodPost, path, body)
}

func (c *TestClient) do(t *testing.T, method, path string, body []byte) Result {
	t.Helper()

	httpReq, err := http.NewRequest(method, c.baseURL+path, bytes.NewReader(body))
	require.NoError(t, err)
	if body != nil {
		httpReq.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.httpClient.Do(httpReq)
	require.NoError(t, err)
	defer resp.Body.Close()

	bodyBytes, err := io.ReadAll(resp.Body)
	require.NoError(t, err)

	result := Result{Status: resp.StatusCode, Body: bodyBytes}
	if resp.StatusCode >= 400 && resp.Header.Get("Content-Type") == "application/json" {
		var errResp rest.APIResponse
		require.NoError(t, json.Unmarshal(bodyBytes, &errResp))
		result.Error = errResp.Error
	}
	return result
}

func chargeRequest(card testdata.TestCard, zip string, amountCents int64) rest.TransactionRequest {
	return rest.TransactionRequest{
		AmountCents: amountCents,
		Card: &rest.Card{
			Number:     card.CardNumber,
			Expiration: card.Expiration,
			CVV:        card.CVV,
		},
		Billing: &rest.Billing{
			FirstName: "Ellen",
			LastName:  "Johnson",
			Address:   "14 Main Street",
			City:      "Pecan Springs",
			State:     "TX",
			Zip:       zip,
			Country:   "US",
		},
		InvoiceID:   "INV-1001",
		Description: "Golf shirts",
		Email:       "ellen@example.com",
	}
}

func refundRequest(card testdata.TestCard, transactionID string, amountCents int64) rest.TransactionRequest {
	return rest.TransactionRequest{
		TransactionID: transactionID,
		AmountCents:   amountCents,
		Card: &rest.Card{
			Number:     card.CardNumber,
			Expiration: card.Expiration,
		},
	}
}
