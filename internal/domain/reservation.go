package domain

import (
	"regexp"
	"time"
)

type ReservationStatus string

const (
	ReservationPending   ReservationStatus = "pending"
	ReservationSeated    ReservationStatus = "seated"
	ReservationReleased  ReservationStatus = "released"
	ReservationCancelled ReservationStatus = "cancelled"
)

// ReservationSlip is a confirmed table hold for a customer at a branch.
// TableNumber is assigned atomically at creation and is never zero for
// a persisted slip.
type ReservationSlip struct {
	ID           int64
	BranchID     int64
	CustomerName string
	Phone        string
	PartySize    int
	ArrivalAt    time.Time
	Notes        string
	TableNumber  int
	Status       ReservationStatus
	CreatedAt    time.Time
}

// HoldWindow is the span around an arrival time during which a table is
// considered occupied by a reservation.
type HoldWindow struct {
	Before time.Duration
	After  time.Duration
}

func (w HoldWindow) Bounds(arrival time.Time) (time.Time, time.Time) {
	return arrival.Add(-w.Before), arrival.Add(w.After)
}

// Phone numbers are fixed ten-digit strings, matching the booking form.
var phoneRegex = regexp.MustCompile(`^\d{10}$`)

const (
	arrivalDateLayout = "2006-01-02"
	arrivalTimeLayout = "15:04:05"
)

// ReservationRequest is a validated reservation command. Build it with
// NewReservationRequest; a zero value is not usable.
type ReservationRequest struct {
	BranchID     int64
	CustomerName string
	Phone        string
	PartySize    int
	ArrivalAt    time.Time
	Notes        string
}

// NewReservationRequest validates the raw booking fields and combines
// arrival date and time into a single instant.
func NewReservationRequest(branchID int64, customerName, phone string, partySize int, arrivalDate, arrivalTime, notes string) (*ReservationRequest, error) {
	if branchID < 1 {
		return nil, InvalidArgument("branch id is required")
	}
	if customerName == "" {
		return nil, InvalidArgument("customer name is required")
	}
	if len(customerName) > 100 {
		return nil, InvalidArgument("customer name must not exceed 100 characters")
	}
	if !phoneRegex.MatchString(phone) {
		return nil, InvalidArgument("phone number must be exactly 10 digits")
	}
	if partySize < 1 {
		return nil, InvalidArgument("party size must be at least 1")
	}

	date, err := time.Parse(arrivalDateLayout, arrivalDate)
	if err != nil {
		return nil, InvalidArgument("arrival date must be in YYYY-MM-DD format")
	}
	clock, err := time.Parse(arrivalTimeLayout, arrivalTime)
	if err != nil {
		return nil, InvalidArgument("arrival time must be in HH:MM:SS format")
	}

	arrivalAt := time.Date(date.Year(), date.Month(), date.Day(),
		clock.Hour(), clock.Minute(), clock.Second(), 0, time.UTC)

	return &ReservationRequest{
		BranchID:     branchID,
		CustomerName: customerName,
		Phone:        phone,
		PartySize:    partySize,
		ArrivalAt:    arrivalAt,
		Notes:        notes,
	}, nil
}
