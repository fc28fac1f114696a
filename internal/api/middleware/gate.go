// Package middleware carries the per-request access control gate.
package middleware

import (
	"net/http"
	"strings"

	"github.com/harsha/nutrition-dashboard/internal/session"
)

// Routes that require a session, matched by prefix.
var protectedPrefixes = []string{"/dashboard"}

// Routes that make no sense with a session, matched exactly.
var authPaths = []string{"/", "/login", "/register"}

// Decision is the outcome of the gate: proceed when Redirect is empty,
// otherwise redirect to the named target.
type Decision struct {
	Redirect string
}

// Decide classifies a request by path and session cookie value alone. It is
// a total function: any combination not covered by the two redirect rules
// proceeds unmodified. Authentication here is cookie presence, nothing more.
func Decide(path, cookieValue string) Decision {
	isAuthenticated := cookieValue != ""

	if isAuthenticated {
		for _, p := range authPaths {
			if path == p {
				return Decision{Redirect: "/dashboard"}
			}
		}
		return Decision{}
	}

	for _, prefix := range protectedPrefixes {
		if strings.HasPrefix(path, prefix) {
			return Decision{Redirect: "/"}
		}
	}
	return Decision{}
}

// Gate applies Decide before any handler runs. A missing or malformed
// cookie is simply "not authenticated"; the gate has no error path.
func Gate(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		value, _ := session.Value(r)

		if d := Decide(r.URL.Path, value); d.Redirect != "" {
			http.Redirect(w, r, d.Redirect, http.StatusFound)
			return
		}

		next.ServeHTTP(w, r)
	})
}
