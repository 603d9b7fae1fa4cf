package http

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"restaurant-reservations/internal/config"
)

const testSecret = "unit-test-secret"
const testIssuer = "restaurant-reservations"

func signToken(t *testing.T, secret string, claims StaffClaims) string {
	t.Helper()
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
	require.NoError(t, err)
	return token
}

func staffClaims(staffID int64, isAdmin bool) StaffClaims {
	return StaffClaims{
		StaffID: staffID,
		IsAdmin: isAdmin,
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    testIssuer,
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
	}
}

func TestAuthMiddleware(t *testing.T) {
	testCases := map[string]struct {
		authorization  string
		expectedStatus int
	}{
		"should pass a valid token": {
			authorization:  "Bearer " + tokenFor(t, staffClaims(5, false)),
			expectedStatus: http.StatusOK,
		},
		"should reject a missing header": {
			authorization:  "",
			expectedStatus: http.StatusUnauthorized,
		},
		"should reject a malformed header": {
			authorization:  "Token abc",
			expectedStatus: http.StatusUnauthorized,
		},
		"should reject a token signed with the wrong secret": {
			authorization: "Bearer " + func() string {
				token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, staffClaims(5, false)).
					SignedString([]byte("other-secret"))
				require.NoError(t, err)
				return token
			}(),
			expectedStatus: http.StatusUnauthorized,
		},
		"should reject an expired token": {
			authorization: "Bearer " + tokenFor(t, StaffClaims{
				StaffID: 5,
				RegisteredClaims: jwt.RegisteredClaims{
					Issuer:    testIssuer,
					ExpiresAt: jwt.NewNumericDate(time.Now().Add(-time.Hour)),
				},
			}),
			expectedStatus: http.StatusUnauthorized,
		},
		"should reject a wrong issuer": {
			authorization: "Bearer " + tokenFor(t, StaffClaims{
				StaffID: 5,
				RegisteredClaims: jwt.RegisteredClaims{
					Issuer:    "someone-else",
					ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
				},
			}),
			expectedStatus: http.StatusUnauthorized,
		},
		"should reject a token without staff_id": {
			authorization: "Bearer " + tokenFor(t, StaffClaims{
				RegisteredClaims: jwt.RegisteredClaims{
					Issuer:    testIssuer,
					ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
				},
			}),
			expectedStatus: http.StatusUnauthorized,
		},
	}

	for name, tc := range testCases {
		t.Run(name, func(t *testing.T) {
			middleware := NewAuthMiddleware(config.AuthConfig{Secret: testSecret, Issuer: testIssuer})

			var gotStaffID int64
			next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				gotStaffID, _ = StaffIDFromContext(r.Context())
				w.WriteHeader(http.StatusOK)
			})

			req := httptest.NewRequest(http.MethodGet, "/orders/1", nil)
			if tc.authorization != "" {
				req.Header.Set("Authorization", tc.authorization)
			}
			rec := httptest.NewRecorder()
			middleware.Handler(next).ServeHTTP(rec, req)

			assert.Equal(t, tc.expectedStatus, rec.Code)
			if tc.expectedStatus == http.StatusOK {
				assert.Equal(t, int64(5), gotStaffID)
			}
		})
	}
}

func tokenFor(t *testing.T, claims StaffClaims) string {
	return signToken(t, testSecret, claims)
}

func TestRequireAdmin(t *testing.T) {
	middleware := NewAuthMiddleware(config.AuthConfig{Secret: testSecret, Issuer: testIssuer})
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	})
	handler := middleware.Handler(RequireAdmin(next))

	t.Run("should block a non-admin staff member", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/menu", nil)
		req.Header.Set("Authorization", "Bearer "+tokenFor(t, staffClaims(5, false)))
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("should pass an admin", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/menu", nil)
		req.Header.Set("Authorization", "Bearer "+tokenFor(t, staffClaims(5, true)))
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusNoContent, rec.Code)
	})
}
