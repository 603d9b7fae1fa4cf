package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewReservationRequest(t *testing.T) {
	valid := struct {
		branchID     int64
		customerName string
		phone        string
		partySize    int
		arrivalDate  string
		arrivalTime  string
	}{
		branchID:     1,
		customerName: "Aigerim",
		phone:        "7071234567",
		partySize:    4,
		arrivalDate:  "2026-09-15",
		arrivalTime:  "19:30:00",
	}

	t.Run("should build a request from valid fields", func(t *testing.T) {
		req, err := NewReservationRequest(valid.branchID, valid.customerName, valid.phone,
			valid.partySize, valid.arrivalDate, valid.arrivalTime, "window seat")
		require.NoError(t, err)

		assert.Equal(t, int64(1), req.BranchID)
		assert.Equal(t, "Aigerim", req.CustomerName)
		assert.Equal(t, 4, req.PartySize)
		assert.Equal(t, "window seat", req.Notes)
		assert.Equal(t, time.Date(2026, time.September, 15, 19, 30, 0, 0, time.UTC), req.ArrivalAt)
	})

	testCases := map[string]struct {
		mutate func(branchID *int64, name, phone *string, partySize *int, date, clock *string)
	}{
		"should reject zero branch id": {
			mutate: func(branchID *int64, _, _ *string, _ *int, _, _ *string) { *branchID = 0 },
		},
		"should reject empty customer name": {
			mutate: func(_ *int64, name, _ *string, _ *int, _, _ *string) { *name = "" },
		},
		"should reject customer name over 100 characters": {
			mutate: func(_ *int64, name, _ *string, _ *int, _, _ *string) {
				long := make([]byte, 101)
				for i := range long {
					long[i] = 'a'
				}
				*name = string(long)
			},
		},
		"should reject a short phone number": {
			mutate: func(_ *int64, _, phone *string, _ *int, _, _ *string) { *phone = "70712345" },
		},
		"should reject a phone number with letters": {
			mutate: func(_ *int64, _, phone *string, _ *int, _, _ *string) { *phone = "70712345ab" },
		},
		"should reject zero party size": {
			mutate: func(_ *int64, _, _ *string, partySize *int, _, _ *string) { *partySize = 0 },
		},
		"should reject a malformed arrival date": {
			mutate: func(_ *int64, _, _ *string, _ *int, date, _ *string) { *date = "15.09.2026" },
		},
		"should reject a malformed arrival time": {
			mutate: func(_ *int64, _, _ *string, _ *int, _, clock *string) { *clock = "7pm" },
		},
	}

	for name, tc := range testCases {
		t.Run(name, func(t *testing.T) {
			branchID, customerName, phone := valid.branchID, valid.customerName, valid.phone
			partySize, date, clock := valid.partySize, valid.arrivalDate, valid.arrivalTime
			tc.mutate(&branchID, &customerName, &phone, &partySize, &date, &clock)

			_, err := NewReservationRequest(branchID, customerName, phone, partySize, date, clock, "")
			require.Error(t, err)
			assert.Equal(t, KindInvalidArgument, KindOf(err))
		})
	}
}

func TestHoldWindowBounds(t *testing.T) {
	arrival := time.Date(2026, time.September, 15, 19, 30, 0, 0, time.UTC)
	window := HoldWindow{Before: 15 * time.Minute, After: 30 * time.Minute}

	from, to := window.Bounds(arrival)
	assert.Equal(t, arrival.Add(-15*time.Minute), from)
	assert.Equal(t, arrival.Add(30*time.Minute), to)
}
