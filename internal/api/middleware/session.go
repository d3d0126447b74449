package middleware

import (
	"crypto/hmac"
	"crypto/rand"
	"crypto/sha256"
	"encoding/hex"
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/labstack/echo/v4"

	"hiremind-api/internal/config"
	"hiremind-api/internal/logging"
	"hiremind-api/pkg/utils"
)

// SessionContextKey is the echo context key holding the request's session ID
const SessionContextKey = "session_id"

// Session assigns each client a signed session cookie and exposes the
// session ID on the request context. The cookie value is "<id>.<signature>";
// a bad or missing signature gets a fresh session rather than an error, so
// tampering only costs the client their own stored resume.
func Session(cfg *config.Config) echo.MiddlewareFunc {
	secret := sessionSecret(cfg)
	cookieName := cfg.Session.CookieName
	ttl := cfg.Session.TTL
	if ttl <= 0 {
		ttl = 24 * time.Hour
	}

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			sessionID := ""
			if cookie, err := c.Cookie(cookieName); err == nil {
				sessionID = verifySessionCookie(cookie.Value, secret)
			}

			if sessionID == "" {
				sessionID = utils.GenerateSessionID()
				c.SetCookie(&http.Cookie{
					Name:     cookieName,
					Value:    signSessionID(sessionID, secret),
					Path:     "/",
					MaxAge:   int(ttl.Seconds()),
					HttpOnly: true,
					SameSite: http.SameSiteLaxMode,
				})
			}

			c.Set(SessionContextKey, sessionID)
			return next(c)
		}
	}
}

// SessionID returns the session ID assigned by the Session middleware
func SessionID(c echo.Context) string {
	if id, ok := c.Get(SessionContextKey).(string); ok {
		return id
	}
	return ""
}

var fallbackSecret struct {
	once sync.Once
	key  []byte
}

// sessionSecret returns the configured signing key, or a random per-process
// key when none is set. An empty HMAC key would make cookies forgeable; the
// random key keeps them unforgeable at the cost of sessions not surviving a
// restart.
func sessionSecret(cfg *config.Config) []byte {
	if cfg.Session.Secret != "" {
		return []byte(cfg.Session.Secret)
	}

	fallbackSecret.once.Do(func() {
		fallbackSecret.key = make([]byte, 32)
		if _, err := rand.Read(fallbackSecret.key); err != nil {
			panic("failed to generate session signing key: " + err.Error())
		}
		logging.GetGlobalLogger().Warn("SESSION_SECRET is not set, signing session cookies with a random per-process key; sessions will not survive restarts")
	})
	return fallbackSecret.key
}

func signSessionID(sessionID string, secret []byte) string {
	mac := hmac.New(sha256.New, secret)
	mac.Write([]byte(sessionID))
	return sessionID + "." + hex.EncodeToString(mac.Sum(nil))
}

func verifySessionCookie(value string, secret []byte) string {
	sessionID, signature, found := strings.Cut(value, ".")
	if !found || sessionID == "" {
		return ""
	}

	mac := hmac.New(sha256.New, secret)
	mac.Write([]byte(sessionID))
	expected := hex.EncodeToString(mac.Sum(nil))
	if !hmac.Equal([]byte(signature), []byte(expected)) {
		return ""
	}
	return sessionID
}
