package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"formly.backend/pkg/walletsession"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testAddress = "GDQP2KPQGKIHYJGXNUIYOMHARUARCA7DJT5FO2FFOOKY3B2WSQHG4W37"

func walletRouter(sessions *walletsession.Service) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/dashboard/creator", RequireWallet(sessions, "/connect"), func(c *gin.Context) {
		address, ok := GetWalletAddress(c)
		if !ok {
			c.Status(http.StatusInternalServerError)
			return
		}
		c.JSON(http.StatusOK, gin.H{"address": address})
	})
	return r
}

func TestRequireWallet_CookieSession(t *testing.T) {
	sessions := walletsession.NewService("secret", time.Minute)
	token, err := sessions.Issue(testAddress)
	require.NoError(t, err)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/dashboard/creator", nil)
	req.AddCookie(&http.Cookie{Name: walletsession.CookieName, Value: token})
	walletRouter(sessions).ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), testAddress)
}

func TestRequireWallet_BearerSession(t *testing.T) {
	sessions := walletsession.NewService("secret", time.Minute)
	token, err := sessions.Issue(testAddress)
	require.NoError(t, err)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/dashboard/creator", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	walletRouter(sessions).ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestRequireWallet_BrowserRedirectsWithCallback(t *testing.T) {
	sessions := walletsession.NewService("secret", time.Minute)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/dashboard/creator?step=rewards", nil)
	req.Header.Set("Accept", "text/html,application/xhtml+xml")
	walletRouter(sessions).ServeHTTP(w, req)

	assert.Equal(t, http.StatusSeeOther, w.Code)
	assert.Equal(t, "/connect?callbackUrl=%2Fdashboard%2Fcreator%3Fstep%3Drewards", w.Header().Get("Location"))
}

func TestRequireWallet_APICallerGets401(t *testing.T) {
	sessions := walletsession.NewService("secret", time.Minute)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/dashboard/creator", nil)
	walletRouter(sessions).ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Body.String(), "Conecta tu wallet")
}

func TestRequireWallet_ExpiredTokenRejected(t *testing.T) {
	sessions := walletsession.NewService("secret", -time.Second)
	token, err := sessions.Issue(testAddress)
	require.NoError(t, err)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/dashboard/creator", nil)
	req.AddCookie(&http.Cookie{Name: walletsession.CookieName, Value: token})
	walletRouter(sessions).ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestGetWalletAddress_Unset(t *testing.T) {
	gin.SetMode(gin.TestMode)
	c, _ := gin.CreateTestContext(httptest.NewRecorder())

	_, ok := GetWalletAddress(c)
	assert.False(t, ok)
}
