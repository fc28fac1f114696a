// Package session issues and revokes the cookie that carries the
// authenticated identity. The cookie value is the user's id in decimal;
// there is no server-side session table.
package session

import (
	"net/http"
	"strconv"
	"time"
)

const (
	CookieName = "session"
	TTL        = 7 * 24 * time.Hour
)

// Issue sets the session cookie for the given user id.
func Issue(w http.ResponseWriter, userID int64, secure bool) {
	http.SetCookie(w, &http.Cookie{
		Name:     CookieName,
		Value:    strconv.FormatInt(userID, 10),
		Path:     "/",
		MaxAge:   int(TTL.Seconds()),
		HttpOnly: true,
		Secure:   secure,
		SameSite: http.SameSiteLaxMode,
	})
}

// Revoke clears the session cookie with an epoch expiry so the browser
// overwrites the one set at login. Flags match Issue.
func Revoke(w http.ResponseWriter, secure bool) {
	http.SetCookie(w, &http.Cookie{
		Name:     CookieName,
		Value:    "",
		Path:     "/",
		Expires:  time.Unix(0, 0),
		HttpOnly: true,
		Secure:   secure,
		SameSite: http.SameSiteLaxMode,
	})
}

// Value returns the raw session cookie value. An absent cookie or an empty
// value both report false; an empty value is never a valid identity.
func Value(r *http.Request) (string, bool) {
	cookie, err := r.Cookie(CookieName)
	if err != nil || cookie.Value == "" {
		return "", false
	}
	return cookie.Value, true
}

// UserID parses a session cookie value into a user id.
func UserID(value string) (int64, bool) {
	id, err := strconv.ParseInt(value, 10, 64)
	if err != nil || id <= 0 {
		return 0, false
	}
	return id, true
}
