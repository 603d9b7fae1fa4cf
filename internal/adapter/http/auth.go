package http

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/golang-jwt/jwt/v5"

	"restaurant-reservations/internal/config"
)

type contextKey string

const (
	staffIDContextKey contextKey = "staff_id"
	isAdminContextKey contextKey = "is_admin"
)

// StaffClaims is the verified caller identity the core trusts: which
// staff member is acting and whether they hold the admin flag.
type StaffClaims struct {
	StaffID int64 `json:"staff_id"`
	IsAdmin bool  `json:"is_admin"`
	jwt.RegisteredClaims
}

type AuthMiddleware struct {
	secret []byte
	issuer string
}

func NewAuthMiddleware(cfg config.AuthConfig) *AuthMiddleware {
	return &AuthMiddleware{
		secret: []byte(cfg.Secret),
		issuer: cfg.Issuer,
	}
}

func (m *AuthMiddleware) Handler(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		claims, err := m.verify(r)
		if err != nil {
			writeJSON(w, http.StatusUnauthorized, ErrorResponse{Error: "unauthorized"})
			return
		}

		ctx := context.WithValue(r.Context(), staffIDContextKey, claims.StaffID)
		ctx = context.WithValue(ctx, isAdminContextKey, claims.IsAdmin)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

func (m *AuthMiddleware) verify(r *http.Request) (*StaffClaims, error) {
	tokenString, err := extractBearerToken(r)
	if err != nil {
		return nil, err
	}

	claims := &StaffClaims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (any, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return m.secret, nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to parse token: %w", err)
	}
	if !token.Valid {
		return nil, errors.New("invalid token")
	}
	if m.issuer != "" && claims.Issuer != m.issuer {
		return nil, fmt.Errorf("invalid issuer: got %s, want %s", claims.Issuer, m.issuer)
	}
	if claims.StaffID < 1 {
		return nil, errors.New("missing staff_id claim")
	}

	return claims, nil
}

func extractBearerToken(r *http.Request) (string, error) {
	header := r.Header.Get("Authorization")
	if header == "" {
		return "", errors.New("missing authorization header")
	}

	parts := strings.SplitN(header, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") {
		return "", errors.New("malformed authorization header")
	}
	return parts[1], nil
}

// RequireAdmin gates menu administration behind the admin flag.
func RequireAdmin(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !IsAdminFromContext(r.Context()) {
			writeJSON(w, http.StatusUnauthorized, ErrorResponse{
				Error: "you are not authorized as admin to access this resource",
			})
			return
		}
		next.ServeHTTP(w, r)
	})
}

func StaffIDFromContext(ctx context.Context) (int64, bool) {
	id, ok := ctx.Value(staffIDContextKey).(int64)
	return id, ok
}

func IsAdminFromContext(ctx context.Context) bool {
	isAdmin, _ := ctx.Value(isAdminContextKey).(bool)
	return isAdmin
}
