package http

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"restaurant-reservations/internal/domain"
	"restaurant-reservations/internal/interfaces"
)

type nopLogger struct{}

func (nopLogger) Info(string, string, string, map[string]interface{})         {}
func (nopLogger) Debug(string, string, string, map[string]interface{})        {}
func (nopLogger) Error(string, string, string, map[string]interface{}, error) {}

type fakeReservationService struct {
	slip *domain.ReservationSlip
	err  error
	cmd  interfaces.CreateReservationCommand
}

func (f *fakeReservationService) Create(_ context.Context, cmd interfaces.CreateReservationCommand) (*domain.ReservationSlip, error) {
	f.cmd = cmd
	if f.err != nil {
		return nil, f.err
	}
	return f.slip, nil
}

func TestCreateReservationHandler(t *testing.T) {
	validBody := `{
		"branch_id": 1,
		"cus_name": "Aigerim",
		"phone_number": "7071234567",
		"guests_number": 4,
		"arrival_date": "2026-09-15",
		"arrival_time": "19:30:00",
		"notes": "window seat"
	}`

	testCases := map[string]struct {
		method         string
		body           string
		serviceSlip    *domain.ReservationSlip
		serviceErr     error
		expectedStatus int
		verify         func(t *testing.T, rec *httptest.ResponseRecorder)
	}{
		"should create a reservation": {
			method:         http.MethodPost,
			body:           validBody,
			serviceSlip:    &domain.ReservationSlip{ID: 12, TableNumber: 3},
			expectedStatus: http.StatusCreated,
			verify: func(t *testing.T, rec *httptest.ResponseRecorder) {
				var resp CreateReservationResponse
				require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
				assert.Equal(t, int64(12), resp.ReservationSlipID)
				assert.Equal(t, 3, resp.TableNumber)
			},
		},
		"should reject a non-POST method": {
			method:         http.MethodGet,
			body:           validBody,
			expectedStatus: http.StatusMethodNotAllowed,
		},
		"should reject an unknown field": {
			method:         http.MethodPost,
			body:           `{"branch_id": 1, "surprise": true}`,
			expectedStatus: http.StatusBadRequest,
		},
		"should map invalid argument to 400": {
			method:         http.MethodPost,
			body:           validBody,
			serviceErr:     domain.InvalidArgument("phone number must be exactly 10 digits"),
			expectedStatus: http.StatusBadRequest,
		},
		"should map an unknown branch to 404": {
			method:         http.MethodPost,
			body:           validBody,
			serviceErr:     domain.NotFound("branch"),
			expectedStatus: http.StatusNotFound,
			verify: func(t *testing.T, rec *httptest.ResponseRecorder) {
				var resp ErrorResponse
				require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
				assert.Equal(t, "branch", resp.Entity)
			},
		},
		"should map a full house to 409": {
			method:         http.MethodPost,
			body:           validBody,
			serviceErr:     domain.Unavailable("no table available for the requested time"),
			expectedStatus: http.StatusConflict,
		},
		"should mask internal errors": {
			method:         http.MethodPost,
			body:           validBody,
			serviceErr:     domain.Internal("failed to begin transaction", assert.AnError),
			expectedStatus: http.StatusInternalServerError,
			verify: func(t *testing.T, rec *httptest.ResponseRecorder) {
				assert.NotContains(t, rec.Body.String(), assert.AnError.Error())
			},
		},
	}

	for name, tc := range testCases {
		t.Run(name, func(t *testing.T) {
			service := &fakeReservationService{slip: tc.serviceSlip, err: tc.serviceErr}
			handler := NewReservationHandler(service, nopLogger{})

			req := httptest.NewRequest(tc.method, "/reservations", strings.NewReader(tc.body))
			rec := httptest.NewRecorder()
			handler.CreateReservation(rec, req)

			assert.Equal(t, tc.expectedStatus, rec.Code)
			if tc.verify != nil {
				tc.verify(t, rec)
			}
		})
	}
}

func TestCreateReservationMapsWireFields(t *testing.T) {
	service := &fakeReservationService{slip: &domain.ReservationSlip{ID: 1, TableNumber: 1}}
	handler := NewReservationHandler(service, nopLogger{})

	body := `{"branch_id": 2, "cus_name": "Dana", "phone_number": "7017654321",
		"guests_number": 2, "arrival_date": "2026-10-01", "arrival_time": "12:00:00"}`
	req := httptest.NewRequest(http.MethodPost, "/reservations", strings.NewReader(body))
	rec := httptest.NewRecorder()
	handler.CreateReservation(rec, req)

	require.Equal(t, http.StatusCreated, rec.Code)
	assert.Equal(t, int64(2), service.cmd.BranchID)
	assert.Equal(t, "Dana", service.cmd.CustomerName)
	assert.Equal(t, "7017654321", service.cmd.Phone)
	assert.Equal(t, 2, service.cmd.PartySize)
	assert.Equal(t, "2026-10-01", service.cmd.ArrivalDate)
	assert.Equal(t, "12:00:00", service.cmd.ArrivalTime)
}
