// Package session persists the authenticated session in a pair of
// cookies, the way the original dashboard kept them browser-side. The
// CMS remains the source of truth for token validity; this layer only
// filters out entries that cannot possibly be a session.
package session

import (
	"encoding/base64"
	"encoding/json"
	"net/http"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"itam-dashboard/internal/cms"
)

const (
	// TokenCookie holds the opaque bearer token.
	TokenCookie = "token"
	// UserCookie holds the serialized user identity.
	UserCookie = "user"
)

// Session is the authenticated state: exactly one exists at a time.
type Session struct {
	Token string   `json:"token"`
	User  cms.User `json:"user"`
}

// Write persists the session as the token and user cookies, both
// expiring together after ttl.
func Write(w http.ResponseWriter, s Session, ttl time.Duration) {
	userJSON, err := json.Marshal(s.User)
	if err != nil {
		// cms.User marshals unconditionally; keep the signature simple.
		userJSON = []byte("{}")
	}

	setCookie(w, TokenCookie, s.Token, ttl)
	setCookie(w, UserCookie, base64.URLEncoding.EncodeToString(userJSON), ttl)
}

// Clear removes both cookies unconditionally. It never fails.
func Clear(w http.ResponseWriter) {
	expireCookie(w, TokenCookie)
	expireCookie(w, UserCookie)
}

// FromRequest reconstructs the session from the request's cookies.
// The token must at least parse as a JWT (unverified; the CMS decides
// real validity) and the user cookie must decode. Anything else counts
// as no session.
func FromRequest(r *http.Request) (*Session, bool) {
	tokenCookie, err := r.Cookie(TokenCookie)
	if err != nil || tokenCookie.Value == "" {
		return nil, false
	}
	token := tokenCookie.Value

	if _, _, err := jwt.NewParser().ParseUnverified(token, jwt.MapClaims{}); err != nil {
		return nil, false
	}

	userCookie, err := r.Cookie(UserCookie)
	if err != nil {
		return nil, false
	}
	raw, err := base64.URLEncoding.DecodeString(userCookie.Value)
	if err != nil {
		return nil, false
	}
	var user cms.User
	if err := json.Unmarshal(raw, &user); err != nil {
		return nil, false
	}

	return &Session{Token: token, User: user}, true
}

func setCookie(w http.ResponseWriter, name, value string, ttl time.Duration) {
	http.SetCookie(w, &http.Cookie{
		Name:     name,
		Value:    value,
		Path:     "/",
		Expires:  time.Now().Add(ttl),
		MaxAge:   int(ttl.Seconds()),
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
}

func expireCookie(w http.ResponseWriter, name string) {
	http.SetCookie(w, &http.Cookie{
		Name:     name,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
}
