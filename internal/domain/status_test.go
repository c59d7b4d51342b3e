package domain_test

import (
	"testing"

	"github.com/DanielPopoola/anet-transactions/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIsPossibleFullRefund(t *testing.T) {
	allowed := map[domain.TransactionStatus]bool{
		domain.StatusCapturedPendingSettlement: true,
		domain.StatusSettledSuccessfully:       true,
	}

	for _, status := range domain.AllStatuses {
		t.Run(string(status), func(t *testing.T) {
			assert.Equal(t, allowed[status], domain.IsPossibleFullRefund(status))
		})
	}
}

func TestSettledOnlyPredicates(t *testing.T) {
	predicates := map[string]func(domain.TransactionStatus) bool{
		"partial refund": domain.IsPossiblePartialRefund,
		"custom refund":  domain.IsPossibleCustomRefund,
		"settled":        domain.IsSettled,
	}

	for name, predicate := range predicates {
		t.Run(name, func(t *testing.T) {
			for _, status := range domain.AllStatuses {
				want := status == domain.StatusSettledSuccessfully
				assert.Equal(t, want, predicate(status), "status %s", status)
			}
		})
	}
}

func TestPredicates_UnknownStatusIsDenied(t *testing.T) {
	for _, raw := range []string{"", "SettledSuccessfully", "settled", "refunded"} {
		status := domain.TransactionStatus(raw)

		assert.False(t, domain.IsPossibleFullRefund(status))
		assert.False(t, domain.IsPossiblePartialRefund(status))
		assert.False(t, domain.IsPossibleCustomRefund(status))
		assert.False(t, domain.IsSettled(status))
	}
}

func TestParseTransactionStatus(t *testing.T) {
	t.Run("accepts every vocabulary member", func(t *testing.T) {
		for _, status := range domain.AllStatuses {
			parsed, err := domain.ParseTransactionStatus(string(status))
			require.NoError(t, err)
			assert.Equal(t, status, parsed)
		}
	})

	t.Run("rejects values outside the vocabulary", func(t *testing.T) {
		parsed, err := domain.ParseTransactionStatus("settledPartially")

		require.Error(t, err)
		assert.Empty(t, parsed)
		assert.True(t, domain.IsFailureKind(err, domain.KindUnknownStatus))
	})

	t.Run("is case sensitive", func(t *testing.T) {
		_, err := domain.ParseTransactionStatus("SETTLEDSUCCESSFULLY")
		assert.True(t, domain.IsFailureKind(err, domain.KindUnknownStatus))
	})
}

func TestAllStatuses_IsTheClosedVocabulary(t *testing.T) {
	assert.Len(t, domain.AllStatuses, 24)

	seen := make(map[domain.TransactionStatus]struct{}, len(domain.AllStatuses))
	for _, s := range domain.AllStatuses {
		_, dup := seen[s]
		assert.False(t, dup, "duplicate status %s", s)
		seen[s] = struct{}{}
	}
}
