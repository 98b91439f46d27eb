package server

import (
	"net/http"
	"sync"

	"github.com/gin-gonic/gin"

	"github.com/hotelsuite/hotelsuite/internal/apiclient"
	"github.com/hotelsuite/hotelsuite/internal/guard"
	"github.com/hotelsuite/hotelsuite/internal/hotel"
	"github.com/hotelsuite/hotelsuite/internal/session"
)

// apiFor builds a request-scoped API whose session store is seeded from the
// session cookie. A 401 from any call ends the session: the cookie is cleared
// and the browser is sent to sign-in.
func (s *Server) apiFor(c *gin.Context) *hotel.API {
	seed := map[string]string{}
	if token, err := c.Cookie(s.config.Web.SessionCookie); err == nil && token != "" {
		seed[session.TokenKey] = token
	}
	store := session.NewStore(session.NewMemoryStorage(seed), session.WithLogger(s.logger))

	// Parallel fetches may all see the 401; only the first one navigates.
	var once sync.Once
	client := apiclient.New(s.config.API.BaseURL, store,
		apiclient.WithHTTPClient(s.httpClient),
		apiclient.WithTimeout(s.config.API.Timeout),
		apiclient.WithLogger(s.logger),
		apiclient.WithOnUnauthorized(func() {
			once.Do(func() { s.endSession(c) })
		}),
	)
	return hotel.New(client, s.logger)
}

// setSessionCookie stores the token for navigation-time checks. The cookie
// lives for the browser session only.
func (s *Server) setSessionCookie(c *gin.Context, token string) {
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(s.config.Web.SessionCookie, token, 0, "/", "", s.config.Web.CookieSecure, true)
}

func (s *Server) clearSessionCookie(c *gin.Context) {
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(s.config.Web.SessionCookie, "", -1, "/", "", s.config.Web.CookieSecure, true)
}

func (s *Server) endSession(c *gin.Context) {
	s.clearSessionCookie(c)
	c.Redirect(http.StatusSeeOther, guard.RouteSignIn)
	c.Abort()
}
