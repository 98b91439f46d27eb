package guard

import (
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClassify(t *testing.T) {
	tests := map[string]Class{
		"/admin":           Protected,
		"/admin/dashboard": Protected,
		"/admin/rooms/12":  Protected,
		"/auth/signin":     AuthPage,
		"/auth":            AuthPage,
		"/":                Public,
		"/gallery":         Public,
		"/administrator":   Public,
		"/authors":         Public,
		"/pending":         Public,
	}
	for path, want := range tests {
		assert.Equal(t, want, Classify(path), path)
	}
}

func TestDecide(t *testing.T) {
	tests := []struct {
		name       string
		target     string
		hasSession bool
		want       string
		redirect   bool
	}{
		{"protected without session", "/admin/dashboard", false, "/auth/signin?next=%2Fadmin%2Fdashboard", true},
		{"protected keeps query", "/admin/rooms?page=2", false, "/auth/signin?next=%2Fadmin%2Frooms%3Fpage%3D2", true},
		{"protected with session", "/admin/dashboard", true, "", false},
		{"auth page with session", "/auth/signin", true, "/admin/dashboard", true},
		{"auth page without session", "/auth/signin", false, "", false},
		{"public without session", "/gallery", false, "", false},
		{"public with session", "/gallery", true, "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			u, err := url.Parse(tt.target)
			require.NoError(t, err)

			got, redirect := Decide(u, tt.hasSession)
			assert.Equal(t, tt.redirect, redirect)
			assert.Equal(t, tt.want, got)
		})
	}
}

func newGuardedRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(Middleware(DefaultCookieName, zerolog.Nop()))
	ok := func(c *gin.Context) { c.String(http.StatusOK, "page") }
	r.GET("/admin/dashboard", ok)
	r.GET("/auth/signin", ok)
	r.POST("/auth/signin", ok)
	r.GET("/gallery", ok)
	return r
}

func TestMiddleware(t *testing.T) {
	router := newGuardedRouter()

	tests := []struct {
		name     string
		path     string
		cookie   string
		status   int
		location string
	}{
		{"protected without cookie", "/admin/dashboard", "", http.StatusTemporaryRedirect, "/auth/signin?next=%2Fadmin%2Fdashboard"},
		{"protected with cookie", "/admin/dashboard", "abc123", http.StatusOK, ""},
		{"auth page with cookie", "/auth/signin", "abc123", http.StatusTemporaryRedirect, "/admin/dashboard"},
		{"auth page without cookie", "/auth/signin", "", http.StatusOK, ""},
		{"public without cookie", "/gallery", "", http.StatusOK, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, tt.path, nil)
			if tt.cookie != "" {
				req.AddCookie(&http.Cookie{Name: DefaultCookieName, Value: tt.cookie})
			}
			w := httptest.NewRecorder()
			router.ServeHTTP(w, req)

			assert.Equal(t, tt.status, w.Code)
			assert.Equal(t, tt.location, w.Header().Get("Location"))
			if tt.status == http.StatusOK {
				assert.Equal(t, "page", w.Body.String())
			}
		})
	}
}

func TestMiddleware_EmptyCookieIsNoSession(t *testing.T) {
	router := newGuardedRouter()

	req := httptest.NewRequest(http.MethodGet, "/admin/dashboard", nil)
	req.AddCookie(&http.Cookie{Name: DefaultCookieName, Value: ""})
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusTemporaryRedirect, w.Code)
}

func TestMiddleware_FormPostRedirectsWithSeeOther(t *testing.T) {
	router := newGuardedRouter()

	req := httptest.NewRequest(http.MethodPost, "/auth/signin", nil)
	req.AddCookie(&http.Cookie{Name: DefaultCookieName, Value: "abc123"})
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusSeeOther, w.Code)
	assert.Equal(t, "/admin/dashboard", w.Header().Get("Location"))
}

func TestRedirectStatus(t *testing.T) {
	assert.Equal(t, http.StatusTemporaryRedirect, redirectStatus(http.MethodGet))
	assert.Equal(t, http.StatusTemporaryRedirect, redirectStatus(http.MethodHead))
	assert.Equal(t, http.StatusSeeOther, redirectStatus(http.MethodPost))
	assert.Equal(t, http.StatusSeeOther, redirectStatus(http.MethodDelete))
}
