// Package domain holds the transaction vocabulary shared by the orchestrator and the
// gateway adapter: statuses, payment intents, request descriptions and results.
package domain

import "slices"

// TransactionStatus is the gateway-reported state of a transaction
type TransactionStatus string

const (
	StatusAuthorizedPendingCapture   TransactionStatus = "authorizedPendingCapture"
	StatusCapturedPendingSettlement  TransactionStatus = "capturedPendingSettlement"
	StatusCommunicationError         TransactionStatus = "communicationError"
	StatusRefundSettledSuccessfully  TransactionStatus = "refundSettledSuccessfully"
	StatusRefundPendingSettlement    TransactionStatus = "refundPendingSettlement"
	StatusApprovedReview             TransactionStatus = "approvedReview"
	StatusDeclined                   TransactionStatus = "declined"
	StatusCouldNotVoid               TransactionStatus = "couldNotVoid"
	StatusExpired                    TransactionStatus = "expired"
	StatusGeneralError               TransactionStatus = "generalError"
	StatusPendingFinalSettlement     TransactionStatus = "pendingFinalSettlement"
	StatusPendingSettlement          TransactionStatus = "pendingSettlement"
	StatusFailedReview               TransactionStatus = "failedReview"
	StatusSettledSuccessfully        TransactionStatus = "settledSuccessfully"
	StatusSettlementError            TransactionStatus = "settlementError"
	StatusUnderReview                TransactionStatus = "underReview"
	StatusUpdatingSettlement         TransactionStatus = "updatingSettlement"
	StatusVoided                     TransactionStatus = "voided"
	StatusFDSPendingReview           TransactionStatus = "FDSPendingReview"
	StatusFDSAuthorizedPendingReview TransactionStatus = "FDSAuthorizedPendingReview"
	StatusReturnedItem               TransactionStatus = "returnedItem"
	StatusChargeback                 TransactionStatus = "chargeback"
	StatusChargebackReversal         TransactionStatus = "chargebackReversal"
	StatusAuthorizedPendingRelease   TransactionStatus = "authorizedPendingRelease"
)

// AllStatuses lists every status the gateway can report, in gateway documentation order.
var AllStatuses = []TransactionStatus{
	StatusAuthorizedPendingCapture,
	StatusCapturedPendingSettlement,
	StatusCommunicationError,
	StatusRefundSettledSuccessfully,
	StatusRefundPendingSettlement,
	StatusApprovedReview,
	StatusDeclined,
	StatusCouldNotVoid,
	StatusExpired,
	StatusGeneralError,
	StatusPendingFinalSettlement,
	StatusPendingSettlement,
	StatusFailedReview,
	StatusSettledSuccessfully,
	StatusSettlementError,
	StatusUnderReview,
	StatusUpdatingSettlement,
	StatusVoided,
	StatusFDSPendingReview,
	StatusFDSAuthorizedPendingReview,
	StatusReturnedItem,
	StatusChargeback,
	StatusChargebackReversal,
	StatusAuthorizedPendingRelease,
}

// ParseTransactionStatus converts a raw gateway value into a TransactionStatus.
// Values outside the vocabulary are rejected with an UNKNOWN_STATUS failure.
func ParseTransactionStatus(raw string) (TransactionStatus, error) {
	s := TransactionStatus(raw)
	if !s.IsKnown() {
		return "", NewUnknownStatusError(raw)
	}
	return s, nil
}

func (s TransactionStatus) IsKnown() bool {
	return slices.Contains(AllStatuses, s)
}

func (s TransactionStatus) String() string {
	return string(s)
}

// IsPossibleFullRefund reports whether the full amount of a transaction in this status
// can still be returned to the customer.
func IsPossibleFullRefund(s TransactionStatus) bool {
	return isOneOf(s, StatusCapturedPendingSettlement, StatusSettledSuccessfully)
}

func IsPossiblePartialRefund(s TransactionStatus) bool {
	return isOneOf(s, StatusSettledSuccessfully)
}

// IsPossibleCustomRefund currently matches IsPossiblePartialRefund.
func IsPossibleCustomRefund(s TransactionStatus) bool {
	return isOneOf(s, StatusSettledSuccessfully)
}

// IsSettled reports whether the settlement batch has finalized the captured funds.
func IsSettled(s TransactionStatus) bool {
	return isOneOf(s, StatusSettledSuccessfully)
}

func isOneOf(s TransactionStatus, allowed ...TransactionStatus) bool {
	return slices.Contains(allowed, s)
}
