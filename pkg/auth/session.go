// Package auth holds the admin session: a single logged-in flag plus
// flash messages, carried in a signed cookie.
package auth

import (
	"crypto/subtle"
	"net/http"
	"strings"

	"github.com/gorilla/sessions"
	"github.com/labstack/echo-contrib/session"
	"github.com/labstack/echo/v4"
	"golang.org/x/crypto/bcrypt"
)

const (
	sessionName = "bintrack_session"
	loggedInKey = "admin_logged_in"
)

// NewStore builds the cookie store every session rides in.
func NewStore(secret string, secure bool) *sessions.CookieStore {
	store := sessions.NewCookieStore([]byte(secret))
	store.Options = &sessions.Options{
		Path:     "/",
		MaxAge:   7 * 24 * 60 * 60,
		HttpOnly: true,
		Secure:   secure,
		SameSite: http.SameSiteLaxMode,
	}
	return store
}

// Middleware attaches the store to every request.
func Middleware(store sessions.Store) echo.MiddlewareFunc {
	return session.Middleware(store)
}

func current(c echo.Context) *sessions.Session {
	// Get returns a fresh session even when cookie decoding fails.
	s, _ := session.Get(sessionName, c)
	return s
}

// IsLoggedIn reports whether the request carries an admin session.
func IsLoggedIn(c echo.Context) bool {
	v, ok := current(c).Values[loggedInKey].(bool)
	return ok && v
}

// Login marks the session as an admin session.
func Login(c echo.Context) error {
	s := current(c)
	s.Values[loggedInKey] = true
	return s.Save(c.Request(), c.Response())
}

// Logout clears the admin flag but keeps the session alive so a
// goodbye flash can still reach the next page.
func Logout(c echo.Context) error {
	s := current(c)
	delete(s.Values, loggedInKey)
	return s.Save(c.Request(), c.Response())
}

// Flash queues a one-shot message for the next rendered page.
func Flash(c echo.Context, msg string) {
	s := current(c)
	s.AddFlash(msg)
	_ = s.Save(c.Request(), c.Response())
}

// Flashes drains the queued messages.
func Flashes(c echo.Context) []string {
	s := current(c)
	raw := s.Flashes()
	if len(raw) == 0 {
		return nil
	}
	out := make([]string, 0, len(raw))
	for _, f := range raw {
		if m, ok := f.(string); ok {
			out = append(out, m)
		}
	}
	_ = s.Save(c.Request(), c.Response())
	return out
}

// CheckCredentials compares a submitted username and password against
// the configured admin pair. The configured password may be plain text
// or a bcrypt hash.
func CheckCredentials(gotUser, gotPass, wantUser, wantPass string) bool {
	userOK := subtle.ConstantTimeCompare([]byte(gotUser), []byte(wantUser)) == 1

	var passOK bool
	if isBcryptHash(wantPass) {
		passOK = bcrypt.CompareHashAndPassword([]byte(wantPass), []byte(gotPass)) == nil
	} else {
		passOK = subtle.ConstantTimeCompare([]byte(gotPass), []byte(wantPass)) == 1
	}
	return userOK && passOK
}

func isBcryptHash(s string) bool {
	return strings.HasPrefix(s, "$2a$") ||
		strings.HasPrefix(s, "$2b$") ||
		strings.HasPrefix(s, "$2y$")
}
