package internal

import (
	"encoding/json"
	"errors"
	"net/http"

	"itam-dashboard/internal/cms"
	"itam-dashboard/internal/session"
)

type loginRequest struct {
	Identifier string `json:"identifier"`
	Password   string `json:"password"`
}

// loginUser proxies the credentials to the CMS auth endpoint and, on
// success, persists the session cookies.
func (s *Server) loginUser(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	// Validate request
	if req.Identifier == "" || req.Password == "" {
		http.Error(w, "Identifier and password are required", http.StatusBadRequest)
		return
	}

	auth, err := s.CMS.Login(r.Context(), req.Identifier, req.Password)
	if err != nil {
		var authErr *cms.AuthError
		if errors.As(err, &authErr) {
			// Recoverable: the message is meant for inline display.
			sendErrorResponse(w, authErr.Message, "INVALID_CREDENTIALS", "", http.StatusUnauthorized)
			return
		}
		sendErrorResponse(w, "Login failed", "CMS_UNAVAILABLE", "", http.StatusBadGateway)
		return
	}

	sess := session.Session{Token: auth.JWT, User: auth.User}
	session.Write(w, sess, s.Config.SessionTTL)

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(sess)
}

// logoutUser clears the session cookies. It never fails.
func (s *Server) logoutUser(w http.ResponseWriter, _ *http.Request) {
	session.Clear(w)
	w.WriteHeader(http.StatusNoContent)
}

// currentSession returns the session reconstructed from the cookies.
func (s *Server) currentSession(w http.ResponseWriter, r *http.Request) {
	sess := SessionFromContext(r.Context())
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(sess)
}
