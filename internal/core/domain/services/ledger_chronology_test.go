package services_test

import (
	"testing"
	"time"

	"handmade/internal/core/domain/model/kernel"
	"handmade/internal/core/domain/model/statuschange"
	"handmade/internal/core/domain/services"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func latestRecord(t *testing.T, changeTime time.Time) *statuschange.StatusChange {
	t.Helper()
	record, err := statuschange.NewStatusChange(
		kernel.NewUUID(), kernel.NewUUID(), "Shipped", changeTime, "seller-42", time.Now().UTC())
	require.NoError(t, err)
	return record
}

func TestLedgerChronology_EnsureAppendAfter_EmptyHistory_AcceptsAnyTime(t *testing.T) {
	chronology := services.NewLedgerChronology()

	err := chronology.EnsureAppendAfter(time.Now().UTC().Add(-24*time.Hour), nil)

	assert.NoError(t, err)
}

func TestLedgerChronology_EnsureAppendAfter_AfterLatest_Accepts(t *testing.T) {
	latestTime := time.Now().UTC().Add(-time.Hour)
	latest := latestRecord(t, latestTime)
	chronology := services.NewLedgerChronology()

	err := chronology.EnsureAppendAfter(latestTime.Add(time.Minute), latest)

	assert.NoError(t, err)
}

func TestLedgerChronology_EnsureAppendAfter_NotAfterLatest_Rejects(t *testing.T) {
	latestTime := time.Now().UTC().Add(-time.Hour)

	tests := map[string]time.Time{
		"equal to latest":  latestTime,
		"before latest":    latestTime.Add(-time.Minute),
		"long before head": latestTime.Add(-24 * time.Hour),
	}

	for name, candidate := range tests {
		t.Run(name, func(t *testing.T) {
			latest := latestRecord(t, latestTime)
			chronology := services.NewLedgerChronology()

			err := chronology.EnsureAppendAfter(candidate, latest)

			require.Error(t, err)
			assert.ErrorIs(t, err, services.ErrChangeTimeOutOfOrder)
		})
	}
}

func TestLedgerChronology_EnsureAppendAfter_NotConstructedLatest_ReturnsError(t *testing.T) {
	chronology := services.NewLedgerChronology()

	err := chronology.EnsureAppendAfter(time.Now().UTC(), &statuschange.StatusChange{})

	require.Error(t, err)
	assert.ErrorIs(t, err, statuschange.ErrStatusChangeIsNotConstructed)
}
