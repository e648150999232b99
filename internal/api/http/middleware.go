package http

import (
	"context"
	"errors"
	"net"
	"net/http"
	"strings"
	"time"

	"farmrent-backend/internal/domain"
	"farmrent-backend/internal/logger"
	"farmrent-backend/internal/security"
)

type contextKey string

const accountKey contextKey = "account-id"

// AccountFromContext returns the account the auth middleware verified.
func AccountFromContext(ctx context.Context) (domain.AccountID, bool) {
	id, ok := ctx.Value(accountKey).(domain.AccountID)
	return id, ok && !id.IsZero()
}

func withAccount(ctx context.Context, id domain.AccountID) context.Context {
	return context.WithValue(ctx, accountKey, id)
}

// AuthMiddleware requires a valid bearer access token and stores its subject in the request context.
func AuthMiddleware(tm security.TokenManager) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			header := r.Header.Get("Authorization")
			if len(header) <= 7 || !strings.EqualFold(header[:7], "Bearer ") {
				writeJSON(w, http.StatusUnauthorized, errorResponse{Error: "Unauthenticated", Message: "authorization token is not provided"})
				return
			}
			claims, err := tm.ValidateToken(strings.TrimSpace(header[7:]))
			if err != nil {
				code := http.StatusUnauthorized
				if errors.Is(err, security.ErrWrongTokenType) {
					code = http.StatusForbidden
				}
				writeJSON(w, code, errorResponse{Error: "Unauthenticated", Message: err.Error()})
				return
			}
			next.ServeHTTP(w, r.WithContext(withAccount(r.Context(), claims.AccountID())))
		})
	}
}

type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(code int) {
	r.status = code
	r.ResponseWriter.WriteHeader(code)
}

// LoggingMiddleware logs method, path, status and duration of every request.
func LoggingMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
		next.ServeHTTP(rec, r)
		logger.HTTPRequest(r.Method, r.URL.Path, rec.status, time.Since(start), "remote", clientIP(r))
	})
}

// clientIP prefers the first X-Forwarded-For hop over the socket peer.
func clientIP(r *http.Request) string {
	if fwd := r.Header.Get("X-Forwarded-For"); fwd != "" {
		first := strings.TrimSpace(strings.Split(fwd, ",")[0])
		if first != "" {
			return first
		}
	}
	if realIP := strings.TrimSpace(r.Header.Get("X-Real-IP")); realIP != "" {
		return realIP
	}
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}
