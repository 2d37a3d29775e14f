package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"bintrack/pkg/auth"
)

func newGatedApp(t *testing.T) *echo.Echo {
	t.Helper()
	e := echo.New()
	e.Use(auth.Middleware(auth.NewStore("test-secret", false)))
	e.GET("/admin_login", func(c echo.Context) error {
		require.NoError(t, auth.Login(c))
		return c.NoContent(http.StatusOK)
	})
	gated := e.Group("", RequireLogin())
	gated.GET("/", func(c echo.Context) error {
		return c.String(http.StatusOK, "dashboard")
	})
	return e
}

func TestRequireLoginRedirectsAnonymous(t *testing.T) {
	e := newGatedApp(t)

	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

	assert.Equal(t, http.StatusSeeOther, rec.Code)
	assert.Equal(t, "/admin_login", rec.Header().Get("Location"))
}

func TestRequireLoginPassesSession(t *testing.T) {
	e := newGatedApp(t)

	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/admin_login", nil))
	cookies := rec.Result().Cookies()
	require.NotEmpty(t, cookies)

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	for _, ck := range cookies {
		req.AddCookie(ck)
	}
	rec = httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "dashboard", rec.Body.String())
}
