package helpers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

// refreshCookiePath scopes the refresh token cookie to the auth routes
// so it is never sent with ordinary API calls.
const refreshCookiePath = "/api/auth"

const refreshCookieName = "refresh_token"

// CookieManager writes the HTTP-only refresh token cookie. The access
// token never touches a cookie; clients carry it in the Authorization
// header.
type CookieManager struct {
	Domain string
	Secure bool
	MaxAge time.Duration
}

func NewCookieManager(domain string, secure bool, maxAge time.Duration) *CookieManager {
	return &CookieManager{Domain: domain, Secure: secure, MaxAge: maxAge}
}

func (m *CookieManager) SetRefreshToken(c *gin.Context, token string) {
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(refreshCookieName, token, int(m.MaxAge.Seconds()), refreshCookiePath, m.Domain, m.Secure, true)
}

func (m *CookieManager) RefreshToken(c *gin.Context) (string, error) {
	return c.Cookie(refreshCookieName)
}

func (m *CookieManager) Clear(c *gin.Context) {
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(refreshCookieName, "", -1, refreshCookiePath, m.Domain, m.Secure, true)
}
