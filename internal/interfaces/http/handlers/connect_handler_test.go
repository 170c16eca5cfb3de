package handlers

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"formly.backend/internal/interfaces/http/middleware"
	"formly.backend/pkg/walletsession"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testAddress = "GDQP2KPQGKIHYJGXNUIYOMHARUARCA7DJT5FO2FFOOKY3B2WSQHG4W37"

func connectRouter(sessions *walletsession.Service) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	h := NewConnectHandler(sessions)
	r.POST("/api/connect", h.Connect)
	r.DELETE("/api/connect", h.Disconnect)
	r.GET("/api/me", middleware.RequireWallet(sessions, "/connect"), h.Me)
	return r
}

func sessionCookie(t *testing.T, w *httptest.ResponseRecorder) *http.Cookie {
	t.Helper()
	for _, cookie := range w.Result().Cookies() {
		if cookie.Name == walletsession.CookieName {
			return cookie
		}
	}
	t.Fatalf("no %s cookie set", walletsession.CookieName)
	return nil
}

func TestConnect_SetsCookieAndDefaultRedirect(t *testing.T) {
	sessions := walletsession.NewService("secret", time.Hour)
	r := connectRouter(sessions)

	w := doJSON(t, r, http.MethodPost, "/api/connect", gin.H{"address": testAddress})
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"redirectTo":"/dashboard/creator"`)

	cookie := sessionCookie(t, w)
	address, err := sessions.Verify(cookie.Value)
	require.NoError(t, err)
	assert.Equal(t, testAddress, address)
	assert.True(t, cookie.HttpOnly)
}

func TestConnect_HonorsCallbackURL(t *testing.T) {
	sessions := walletsession.NewService("secret", time.Hour)
	r := connectRouter(sessions)

	w := doJSON(t, r, http.MethodPost, "/api/connect", gin.H{
		"address":     testAddress,
		"callbackUrl": "%2Fdashboard%2Fcreator%3Fstep%3Drewards",
	})
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"redirectTo":"/dashboard/creator?step=rewards"`)
}

func TestConnect_RejectsExternalCallback(t *testing.T) {
	sessions := walletsession.NewService("secret", time.Hour)
	r := connectRouter(sessions)

	w := doJSON(t, r, http.MethodPost, "/api/connect", gin.H{
		"address":     testAddress,
		"callbackUrl": "https://evil.example/phish",
	})
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"redirectTo":"/dashboard/creator"`)
}

func TestConnect_RequiresAddress(t *testing.T) {
	r := connectRouter(walletsession.NewService("secret", time.Hour))

	w := doJSON(t, r, http.MethodPost, "/api/connect", gin.H{"address": "  "})
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "Address requerida")
}

func TestDisconnect_ClearsCookie(t *testing.T) {
	r := connectRouter(walletsession.NewService("secret", time.Hour))

	w := doJSON(t, r, http.MethodDelete, "/api/connect", nil)
	require.Equal(t, http.StatusOK, w.Code)

	cookie := sessionCookie(t, w)
	assert.Empty(t, cookie.Value)
	assert.Less(t, cookie.MaxAge, 0)
}

func TestMe_RoundTrip(t *testing.T) {
	sessions := walletsession.NewService("secret", time.Hour)
	r := connectRouter(sessions)

	w := doJSON(t, r, http.MethodPost, "/api/connect", gin.H{"address": testAddress})
	require.Equal(t, http.StatusOK, w.Code)
	cookie := sessionCookie(t, w)

	req := httptest.NewRequest(http.MethodGet, "/api/me", nil)
	req.AddCookie(cookie)
	w = httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), testAddress)

	// without a session the same route refuses
	w = httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/me", nil))
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}
