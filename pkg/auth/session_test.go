package auth

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func TestCheckCredentialsPlain(t *testing.T) {
	assert.True(t, CheckCredentials("JD", "letmein", "JD", "letmein"))
	assert.False(t, CheckCredentials("JD", "wrong", "JD", "letmein"))
	assert.False(t, CheckCredentials("someone", "letmein", "JD", "letmein"))
	assert.False(t, CheckCredentials("", "", "JD", "letmein"))
}

func TestCheckCredentialsBcrypt(t *testing.T) {
	hash, err := bcrypt.GenerateFromPassword([]byte("letmein"), bcrypt.MinCost)
	require.NoError(t, err)

	assert.True(t, CheckCredentials("JD", "letmein", "JD", string(hash)))
	assert.False(t, CheckCredentials("JD", "wrong", "JD", string(hash)))
}

func newSessionApp(t *testing.T) *echo.Echo {
	t.Helper()
	e := echo.New()
	e.Use(Middleware(NewStore("test-secret", false)))
	e.GET("/login", func(c echo.Context) error {
		require.NoError(t, Login(c))
		return c.NoContent(http.StatusOK)
	})
	e.GET("/logout", func(c echo.Context) error {
		require.NoError(t, Logout(c))
		return c.NoContent(http.StatusOK)
	})
	e.GET("/check", func(c echo.Context) error {
		if IsLoggedIn(c) {
			return c.String(http.StatusOK, "in")
		}
		return c.String(http.StatusOK, "out")
	})
	e.GET("/flash", func(c echo.Context) error {
		Flash(c, "hello")
		return c.NoContent(http.StatusOK)
	})
	e.GET("/flashes", func(c echo.Context) error {
		return c.JSON(http.StatusOK, Flashes(c))
	})
	return e
}

func get(e *echo.Echo, path string, cookies []*http.Cookie) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, path, nil)
	for _, ck := range cookies {
		req.AddCookie(ck)
	}
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}

func TestSessionRoundTrip(t *testing.T) {
	e := newSessionApp(t)

	rec := get(e, "/check", nil)
	assert.Equal(t, "out", rec.Body.String())

	rec = get(e, "/login", nil)
	cookies := rec.Result().Cookies()
	require.NotEmpty(t, cookies)

	rec = get(e, "/check", cookies)
	assert.Equal(t, "in", rec.Body.String())

	rec = get(e, "/logout", cookies)
	cookies = rec.Result().Cookies()

	rec = get(e, "/check", cookies)
	assert.Equal(t, "out", rec.Body.String())
}

func TestFlashesDrainOnce(t *testing.T) {
	e := newSessionApp(t)

	rec := get(e, "/flash", nil)
	cookies := rec.Result().Cookies()
	require.NotEmpty(t, cookies)

	rec = get(e, "/flashes", cookies)
	assert.Contains(t, rec.Body.String(), "hello")

	rec = get(e, "/flashes", rec.Result().Cookies())
	assert.NotContains(t, rec.Body.String(), "hello")
}

func TestTamperedCookieIsAnonymous(t *testing.T) {
	e := newSessionApp(t)

	rec := get(e, "/login", nil)
	cookies := rec.Result().Cookies()
	require.NotEmpty(t, cookies)
	cookies[0].Value = "garbage"

	rec = get(e, "/check", cookies)
	assert.Equal(t, "out", rec.Body.String())
}
