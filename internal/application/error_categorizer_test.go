package application_test

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/DanielPopoola/anet-transactions/internal/application"
	"github.com/DanielPopoola/anet-transactions/internal/domain"
	"github.com/stretchr/testify/assert"
)

func TestErrorMapping(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		category application.ErrorCategory
		status   int
		code     string
	}{
		{
			name:     "gateway rejection keeps gateway code",
			err:      domain.NewGatewayRejectedError("E00027", "The transaction was unsuccessful."),
			category: application.CategoryDeclined,
			status:   http.StatusPaymentRequired,
			code:     "E00027",
		},
		{
			name:     "transaction error keeps gateway code",
			err:      domain.NewGatewayTransactionError("2", "This transaction has been declined."),
			category: application.CategoryDeclined,
			status:   http.StatusPaymentRequired,
			code:     "2",
		},
		{
			name:     "no response",
			err:      domain.NewNoResponseError(),
			category: application.CategoryGateway,
			status:   http.StatusBadGateway,
			code:     domain.ErrCodeNoResponseReturned,
		},
		{
			name:     "degenerate response falls back to kind",
			err:      domain.NewDegenerateResponseError(),
			category: application.CategoryGateway,
			status:   http.StatusBadGateway,
			code:     string(domain.KindDegenerateResponse),
		},
		{
			name:     "wrapped not found",
			err:      fmt.Errorf("smart refund: %w", domain.NewTransactionNotFoundError("1")),
			category: application.CategoryNotFound,
			status:   http.StatusNotFound,
			code:     domain.ErrCodeTransactionNotExist,
		},
		{
			name:     "invalid intent",
			err:      domain.NewInvalidIntentError(errors.New("missing")),
			category: application.CategoryClientError,
			status:   http.StatusBadRequest,
			code:     domain.ErrCodeInvalidIntent,
		},
		{
			name:     "invalid operation is a programming error",
			err:      domain.NewInvalidOperationError("authOnly"),
			category: application.CategoryProgramming,
			status:   http.StatusInternalServerError,
			code:     domain.ErrCodeInvalidOperation,
		},
		{
			name:     "transport error",
			err:      &application.TransportError{StatusCode: http.StatusServiceUnavailable, Body: "down"},
			category: application.CategoryGateway,
			status:   http.StatusBadGateway,
			code:     "GATEWAY_UNAVAILABLE",
		},
		{
			name:     "deadline",
			err:      fmt.Errorf("call: %w", context.DeadlineExceeded),
			category: application.CategoryTransient,
			status:   http.StatusRequestTimeout,
			code:     application.ErrCodeTimeout,
		},
		{
			name:     "invalid input",
			err:      application.NewInvalidInputError(errors.New("bad json")),
			category: application.CategoryClientError,
			status:   http.StatusBadRequest,
			code:     application.ErrCodeInvalidInput,
		},
		{
			name:     "unknown error",
			err:      errors.New("boom"),
			category: application.CategoryInfrastructure,
			status:   http.StatusInternalServerError,
			code:     application.ErrCodeInternal,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.category, application.CategorizeError(tt.err))
			assert.Equal(t, tt.status, application.ToHTTPStatus(tt.err))
			assert.Equal(t, tt.code, application.ToErrorCode(tt.err))
		})
	}
}

func TestToHTTPStatus_Nil(t *testing.T) {
	assert.Equal(t, http.StatusOK, application.ToHTTPStatus(nil))
	assert.Equal(t, application.ErrorCategory(""), application.CategorizeError(nil))
}
