package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"hiremind-api/internal/config"
)

func sessionTestConfig() *config.Config {
	cfg := &config.Config{}
	cfg.Session.Secret = "test-secret"
	cfg.Session.CookieName = "hiremind_session"
	return cfg
}

func runSession(t *testing.T, cfg *config.Config, req *http.Request) (*httptest.ResponseRecorder, string) {
	t.Helper()
	e := echo.New()
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	var captured string
	handler := Session(cfg)(func(c echo.Context) error {
		captured = SessionID(c)
		return c.NoContent(http.StatusOK)
	})
	require.NoError(t, handler(c))
	return rec, captured
}

func TestSessionAssignsCookieOnFirstRequest(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec, sessionID := runSession(t, sessionTestConfig(), req)

	require.NotEmpty(t, sessionID)

	cookies := rec.Result().Cookies()
	require.Len(t, cookies, 1)
	assert.Equal(t, "hiremind_session", cookies[0].Name)
	assert.True(t, cookies[0].HttpOnly)
	assert.Contains(t, cookies[0].Value, sessionID+".")
}

func TestSessionReusesValidCookie(t *testing.T) {
	cfg := sessionTestConfig()

	first := httptest.NewRequest(http.MethodGet, "/", nil)
	rec, firstID := runSession(t, cfg, first)
	cookie := rec.Result().Cookies()[0]

	second := httptest.NewRequest(http.MethodGet, "/", nil)
	second.AddCookie(cookie)
	rec2, secondID := runSession(t, cfg, second)

	assert.Equal(t, firstID, secondID)
	assert.Empty(t, rec2.Result().Cookies(), "no new cookie should be issued for a valid session")
}

func TestSessionRejectsTamperedCookie(t *testing.T) {
	cfg := sessionTestConfig()

	first := httptest.NewRequest(http.MethodGet, "/", nil)
	rec, firstID := runSession(t, cfg, first)
	cookie := rec.Result().Cookies()[0]
	cookie.Value = "forged-session-id." + cookie.Value[len(firstID)+1:]

	second := httptest.NewRequest(http.MethodGet, "/", nil)
	second.AddCookie(cookie)
	rec2, secondID := runSession(t, cfg, second)

	assert.NotEqual(t, "forged-session-id", secondID)
	assert.NotEmpty(t, rec2.Result().Cookies(), "a fresh session cookie should replace the tampered one")
}

func TestSessionEmptySecretUsesRandomProcessKey(t *testing.T) {
	cfg := sessionTestConfig()
	cfg.Session.Secret = ""

	first := httptest.NewRequest(http.MethodGet, "/", nil)
	rec, firstID := runSession(t, cfg, first)
	require.NotEmpty(t, firstID)
	cookie := rec.Result().Cookies()[0]

	// Cookies signed with the fallback key must not verify against an empty
	// key, otherwise they would be forgeable.
	assert.Empty(t, verifySessionCookie(cookie.Value, nil))

	// The key is shared process-wide, so a second middleware instance accepts
	// the cookie.
	second := httptest.NewRequest(http.MethodGet, "/", nil)
	second.AddCookie(cookie)
	_, secondID := runSession(t, cfg, second)
	assert.Equal(t, firstID, secondID)
}

func TestSessionRejectsUnsignedCookie(t *testing.T) {
	cfg := sessionTestConfig()

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.AddCookie(&http.Cookie{Name: "hiremind_session", Value: "bare-value-no-signature"})
	_, sessionID := runSession(t, cfg, req)

	assert.NotEqual(t, "bare-value-no-signature", sessionID)
	assert.NotEmpty(t, sessionID)
}
