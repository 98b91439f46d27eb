// Package guard gates page navigation on the session cookie before any
// protected page runs.
package guard

import (
	"net/http"
	"net/url"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
)

// DefaultCookieName is the session cookie read by the guard.
const DefaultCookieName = "token"

// Decide returns where a navigation to u should be redirected, given whether
// a session cookie is present. It keeps no state between calls.
func Decide(u *url.URL, hasSession bool) (string, bool) {
	switch Classify(u.Path) {
	case Protected:
		if hasSession {
			return "", false
		}
		return RouteSignIn + "?" + url.Values{"next": {u.RequestURI()}}.Encode(), true
	case AuthPage:
		if !hasSession {
			return "", false
		}
		return RouteDashboard, true
	default:
		return "", false
	}
}

// HasSession reports whether the request carries a non-empty session cookie.
func HasSession(r *http.Request, cookieName string) bool {
	cookie, err := r.Cookie(cookieName)
	return err == nil && cookie.Value != ""
}

// Middleware redirects unauthenticated requests away from protected paths and
// authenticated requests away from the auth pages. Public paths pass
// untouched.
func Middleware(cookieName string, log zerolog.Logger) gin.HandlerFunc {
	if cookieName == "" {
		cookieName = DefaultCookieName
	}

	return func(c *gin.Context) {
		if Classify(c.Request.URL.Path) == Public {
			c.Next()
			return
		}

		target, redirect := Decide(c.Request.URL, HasSession(c.Request, cookieName))
		if !redirect {
			c.Next()
			return
		}

		log.Debug().
			Str("path", c.Request.URL.Path).
			Str("target", target).
			Msg("Route guard redirect")
		c.Redirect(redirectStatus(c.Request.Method), target)
		c.Abort()
	}
}

// redirectStatus keeps the method for page loads and turns anything else,
// such as a form post, into a GET of the target.
func redirectStatus(method string) int {
	if method == http.MethodGet || method == http.MethodHead {
		return http.StatusTemporaryRedirect
	}
	return http.StatusSeeOther
}
