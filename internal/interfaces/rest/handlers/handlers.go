package handlers

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"

	"github.com/DanielPopoola/anet-transactions/internal/application"
	"github.com/DanielPopoola/anet-transactions/internal/domain"
	"github.com/DanielPopoola/anet-transactions/internal/interfaces/rest"
)

const maxBodyBytes = 64 << 10

type TransactionService interface {
	Capture(ctx context.Context, intent domain.PaymentIntent) (*domain.Approval, error)
	Refund(ctx context.Context, intent domain.PaymentIntent) (*domain.Approval, error)
	Void(ctx context.Context, intent domain.PaymentIntent) (*domain.Approval, error)
	SmartRefund(ctx context.Context, intent domain.PaymentIntent) (*domain.Approval, error)
	Lookup(ctx context.Context, transID string) (*domain.TransactionDetails, error)
}

type Handlers struct {
	service TransactionService
	logger  *slog.Logger
}

func NewHandlers(service TransactionService, logger *slog.Logger) *Handlers {
	if logger == nil {
		logger = slog.Default()
	}
	return &Handlers{
		service: service,
		logger:  logger,
	}
}

func (h *Handlers) RegisterRoutes(mux *http.ServeMux) {
	mux.HandleFunc("POST /v1/transactions/capture", h.HandleCapture)
	mux.HandleFunc("POST /v1/transactions/refund", h.HandleRefund)
	mux.HandleFunc("POST /v1/transactions/void", h.HandleVoid)
	mux.HandleFunc("POST /v1/transactions/smart-refund", h.HandleSmartRefund)
	mux.HandleFunc("GET /v1/transactions/{transactionId}", h.HandleGetTransaction)
	mux.HandleFunc("GET /healthz", h.HandleHealth)
	mux.HandleFunc("GET /openapi.yaml", h.HandleOpenAPI)
}

type operation func(ctx context.Context, intent domain.PaymentIntent) (*domain.Approval, error)

// handleOperation decodes the request body, runs op and writes the approval.
func (h *Handlers) handleOperation(w http.ResponseWriter, r *http.Request, op operation) {
	req, err := decodeTransactionRequest(r)
	if err != nil {
		rest.WriteError(w, err, h.logger)
		return
	}

	approval, err := op(r.Context(), req.ToIntent())
	if err != nil {
		rest.WriteError(w, err, h.logger)
		return
	}

	rest.WriteJSON(w, http.StatusOK, rest.ToApprovalResponse(approval))
}

func decodeTransactionRequest(r *http.Request) (rest.TransactionRequest, error) {
	var req rest.TransactionRequest

	body, err := io.ReadAll(io.LimitReader(r.Body, maxBodyBytes))
	if err != nil {
		return req, application.NewInvalidInputError(fmt.Errorf("read body: %w", err))
	}
	if err := json.Unmarshal(body, &req); err != nil {
		return req, application.NewInvalidInputError(fmt.Errorf("decode body: %w", err))
	}
	return req, nil
}
