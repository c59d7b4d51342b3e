package application

import (
	"context"
	"errors"
	"net/http"

	"github.com/DanielPopoola/anet-transactions/internal/domain"
)

// ErrorCategory represents the nature of an error for logging and API mapping
type ErrorCategory string

const (
	CategoryDeclined       ErrorCategory = "DECLINED"
	CategoryGateway        ErrorCategory = "GATEWAY"
	CategoryClientError    ErrorCategory = "CLIENT_ERROR"
	CategoryNotFound       ErrorCategory = "NOT_FOUND"
	CategoryProgramming    ErrorCategory = "PROGRAMMING"
	CategoryTransient      ErrorCategory = "TRANSIENT"
	CategoryInfrastructure ErrorCategory = "INFRASTRUCTURE"
)

// CategorizeError determines the error category for logging and HTTP mapping
func CategorizeError(err error) ErrorCategory {
	if err == nil {
		return ""
	}

	if errors.Is(err, context.DeadlineExceeded) || errors.Is(err, context.Canceled) {
		return CategoryTransient
	}

	if failure, ok := domain.AsFailure(err); ok {
		switch failure.Kind {
		case domain.KindGatewayRejected, domain.KindGatewayTransactionError:
			return CategoryDeclined
		case domain.KindNoResponseReturned, domain.KindDegenerateResponse, domain.KindUnknownStatus:
			return CategoryGateway
		case domain.KindInvalidIntent:
			return CategoryClientError
		case domain.KindTransactionNotFound:
			return CategoryNotFound
		case domain.KindInvalidOperation:
			return CategoryProgramming
		}
	}

	if svcErr, ok := IsServiceError(err); ok {
		switch svcErr.Code {
		case ErrCodeInvalidInput:
			return CategoryClientError
		case ErrCodeTimeout:
			return CategoryTransient
		}
		return CategoryInfrastructure
	}

	if _, ok := IsTransportError(err); ok {
		return CategoryGateway
	}

	return CategoryInfrastructure
}

// ToHTTPStatus maps error to appropriate HTTP status code
func ToHTTPStatus(err error) int {
	if err == nil {
		return http.StatusOK
	}

	if svcErr, ok := IsServiceError(err); ok {
		return svcErr.HTTPStatus
	}

	switch CategorizeError(err) {
	case CategoryDeclined:
		return http.StatusPaymentRequired
	case CategoryGateway:
		return http.StatusBadGateway
	case CategoryClientError:
		return http.StatusBadRequest
	case CategoryNotFound:
		return http.StatusNotFound
	case CategoryTransient:
		return http.StatusRequestTimeout
	}

	return http.StatusInternalServerError
}

// ToErrorCode returns the code reported to API clients. Gateway codes pass through
// unchanged.
func ToErrorCode(err error) string {
	if svcErr, ok := IsServiceError(err); ok {
		return svcErr.Code
	}

	if failure, ok := domain.AsFailure(err); ok {
		if failure.Code != "" {
			return failure.Code
		}
		return string(failure.Kind)
	}

	if _, ok := IsTransportError(err); ok {
		return "GATEWAY_UNAVAILABLE"
	}

	if errors.Is(err, context.DeadlineExceeded) || errors.Is(err, context.Canceled) {
		return ErrCodeTimeout
	}

	return ErrCodeInternal
}
