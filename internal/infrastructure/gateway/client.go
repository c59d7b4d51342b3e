// Package gateway talks to the Authorize.Net JSON API.
package gateway

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"

	"github.com/DanielPopoola/anet-transactions/internal/application"
	"github.com/DanielPopoola/anet-transactions/internal/config"
	"github.com/DanielPopoola/anet-transactions/internal/domain"
)

const (
	ProductionEndpoint = "https://api.authorize.net/xml/v1/request.api"
	SandboxEndpoint    = "https://apitest.authorize.net/xml/v1/request.api"

	maxResponseBytes = 1 << 20
)

var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

type HTTPClient struct {
	endpoint   string
	auth       merchantAuthentication
	httpClient *http.Client
	logger     *slog.Logger
}

var _ application.GatewayClient = (*HTTPClient)(nil)

// ResolveEndpoint picks the production endpoint for the production environment and the
// sandbox otherwise. A non-empty override wins.
func ResolveEndpoint(env, override string) string {
	if override != "" {
		return override
	}
	if env == config.EnvProduction {
		return ProductionEndpoint
	}
	return SandboxEndpoint
}

func NewHTTPClient(cfg config.GatewayConfig, env string, logger *slog.Logger) *HTTPClient {
	if logger == nil {
		logger = slog.Default()
	}
	endpoint := ResolveEndpoint(env, cfg.Endpoint)
	return &HTTPClient{
		endpoint: endpoint,
		auth: merchantAuthentication{
			Name:           cfg.LoginID,
			TransactionKey: cfg.TransactionKey,
		},
		httpClient: &http.Client{
			Timeout: cfg.Timeout,
		},
		logger: logger.With("component", "gateway", "endpoint", endpoint),
	}
}

func (c *HTTPClient) Endpoint() string {
	return c.endpoint
}

func (c *HTTPClient) CreateTransaction(ctx context.Context, req domain.TransactionRequest) (*domain.CreateTransactionResponse, error) {
	return post[domain.CreateTransactionResponse](c, ctx, toWireRequest(c.auth, req))
}

func (c *HTTPClient) GetTransactionDetails(ctx context.Context, transID string) (*domain.TransactionDetails, error) {
	body := getTransactionDetailsEnvelope{Request: getTransactionDetailsRequest{
		MerchantAuthentication: c.auth,
		TransID:                transID,
	}}

	resp, err := post[getTransactionDetailsResponse](c, ctx, body)
	if err != nil {
		return nil, err
	}
	if resp == nil || resp.Transaction == nil {
		if resp != nil && len(resp.Messages.Message) > 0 {
			c.logger.Debug("transaction details not returned",
				"trans_id", transID,
				"result_code", resp.Messages.ResultCode,
				"message_code", resp.Messages.Message[0].Code,
			)
		}
		return nil, nil
	}

	return toDomainDetails(resp.Transaction)
}

// post returns nil, nil when the gateway answers with an empty body.
func post[Resp any](c *HTTPClient, ctx context.Context, reqBody any) (*Resp, error) {
	jsonData, err := json.Marshal(reqBody)
	if err != nil {
		return nil, fmt.Errorf("error marshalling json: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, bytes.NewReader(jsonData))
	if err != nil {
		return nil, fmt.Errorf("error creating request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return nil, &application.TransportError{Err: fmt.Errorf("error making request: %w", err)}
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBytes))
	if err != nil {
		return nil, &application.TransportError{StatusCode: resp.StatusCode, Err: fmt.Errorf("error reading response: %w", err)}
	}

	if resp.StatusCode != http.StatusOK {
		return nil, &application.TransportError{
			StatusCode: resp.StatusCode,
			Body:       string(body),
		}
	}

	body = bytes.TrimSpace(bytes.TrimPrefix(body, utf8BOM))
	if len(body) == 0 {
		return nil, nil
	}

	var gatewayResp Resp
	if err := json.Unmarshal(body, &gatewayResp); err != nil {
		return nil, &application.TransportError{
			StatusCode: resp.StatusCode,
			Err:        fmt.Errorf("error decoding json response: %w", err),
		}
	}

	return &gatewayResp, nil
}
