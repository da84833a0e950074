package internal

import (
	"context"
	"encoding/json"
	"net/http"

	"itam-dashboard/internal/session"

	"github.com/google/uuid"
)

// contextKey is a custom type for context keys to avoid collisions
type contextKey string

const (
	// SessionKey is the context key for the authenticated session
	SessionKey contextKey = "session"
	// RequestIDKey is the context key for the request ID
	RequestIDKey contextKey = "requestID"
)

// LoginURL is where clients are pointed when no usable session exists.
const LoginURL = "/login"

// ErrorResponse represents a standardized error response
type ErrorResponse struct {
	Error    string `json:"error"`
	Code     string `json:"code"`
	LoginURL string `json:"login_url,omitempty"`
}

// SessionFromContext extracts the session from the request context.
func SessionFromContext(ctx context.Context) *session.Session {
	if s, ok := ctx.Value(SessionKey).(*session.Session); ok {
		return s
	}
	return nil
}

// RequestIDFromContext extracts the request ID from the request context.
func RequestIDFromContext(ctx context.Context) string {
	if v, ok := ctx.Value(RequestIDKey).(string); ok {
		return v
	}
	return ""
}

// RequestIDMiddleware tags every request with a unique ID, echoed in
// the X-Request-ID header. Inventory responses repeat it so a client
// that changed filters mid-flight can discard results carrying a stale
// tag instead of racing the newer state.
func RequestIDMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := r.Header.Get("X-Request-ID")
		if id == "" {
			id = uuid.NewString()
		}
		w.Header().Set("X-Request-ID", id)
		ctx := context.WithValue(r.Context(), RequestIDKey, id)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// sessionMiddleware reconstructs the session from the request cookies
// and rejects requests that carry none.
func (s *Server) sessionMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		sess, ok := session.FromRequest(r)
		if !ok {
			sendErrorResponse(w, "Authentication required", "NO_SESSION", LoginURL, http.StatusUnauthorized)
			return
		}
		ctx := context.WithValue(r.Context(), SessionKey, sess)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// sessionExpired is the single place the 401-from-CMS policy lives:
// whichever call tripped it, the cookies are cleared and the client is
// pointed back at the login entry point.
func (s *Server) sessionExpired(w http.ResponseWriter) {
	session.Clear(w)
	sendErrorResponse(w, "Session expired", "SESSION_EXPIRED", LoginURL, http.StatusUnauthorized)
}

// sendErrorResponse sends a standardized error response
func sendErrorResponse(w http.ResponseWriter, message, code, loginURL string, statusCode int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	response := ErrorResponse{
		Error:    message,
		Code:     code,
		LoginURL: loginURL,
	}
	if err := json.NewEncoder(w).Encode(response); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}
