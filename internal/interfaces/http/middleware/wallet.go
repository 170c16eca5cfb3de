package middleware

import (
	"net/http"
	"net/url"
	"strings"

	domainerrors "formly.backend/internal/domain/errors"
	"formly.backend/internal/interfaces/http/response"
	"formly.backend/pkg/walletsession"
	"github.com/gin-gonic/gin"
)

// WalletAddressKey is the gin context key the verified address is stored
// under.
const WalletAddressKey = "wallet_address"

// RequireWallet gates routes behind a verified wallet session. The token is
// taken from the session cookie or a Bearer header. Browser page loads get a
// 303 to connectPath carrying the original URL as callbackUrl so the wallet
// connect screen can send the creator back; API callers get a 401.
func RequireWallet(sessions *walletsession.Service, connectPath string) gin.HandlerFunc {
	return func(c *gin.Context) {
		token := sessionToken(c)
		if token != "" {
			if address, err := sessions.Verify(token); err == nil {
				c.Set(WalletAddressKey, address)
				c.Next()
				return
			}
		}

		if wantsHTML(c) {
			callback := url.QueryEscape(c.Request.URL.RequestURI())
			c.Redirect(http.StatusSeeOther, connectPath+"?callbackUrl="+callback)
			c.Abort()
			return
		}

		response.Error(c, domainerrors.Unauthorized("Conecta tu wallet para continuar"))
		c.Abort()
	}
}

// GetWalletAddress returns the verified address set by RequireWallet.
func GetWalletAddress(c *gin.Context) (string, bool) {
	v, ok := c.Get(WalletAddressKey)
	if !ok {
		return "", false
	}
	address, ok := v.(string)
	return address, ok && address != ""
}

func sessionToken(c *gin.Context) string {
	if cookie, err := c.Cookie(walletsession.CookieName); err == nil && cookie != "" {
		return cookie
	}
	auth := c.GetHeader("Authorization")
	if strings.HasPrefix(auth, "Bearer ") {
		return strings.TrimPrefix(auth, "Bearer ")
	}
	return ""
}

func wantsHTML(c *gin.Context) bool {
	return c.Request.Method == http.MethodGet &&
		strings.Contains(c.GetHeader("Accept"), "text/html")
}
