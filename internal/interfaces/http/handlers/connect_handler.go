package handlers

import (
	"net/http"
	"net/url"
	"strings"

	domainerrors "formly.backend/internal/domain/errors"
	"formly.backend/internal/interfaces/http/middleware"
	"formly.backend/internal/interfaces/http/response"
	"formly.backend/pkg/walletsession"
	"github.com/gin-gonic/gin"
)

// DefaultPostConnectPath is where a fresh session lands without a callback.
const DefaultPostConnectPath = "/dashboard/creator"

// ConnectHandler handles wallet session endpoints
type ConnectHandler struct {
	sessions *walletsession.Service
}

// NewConnectHandler creates a new connect handler
func NewConnectHandler(sessions *walletsession.Service) *ConnectHandler {
	return &ConnectHandler{sessions: sessions}
}

type connectRequest struct {
	Address     string `json:"address"`
	CallbackURL string `json:"callbackUrl"`
}

// Connect opens a wallet session and tells the client where to go next
// POST /api/connect
func (h *ConnectHandler) Connect(c *gin.Context) {
	var input connectRequest
	if err := c.ShouldBindJSON(&input); err != nil {
		response.Error(c, domainerrors.BadRequest("Datos inválidos"))
		return
	}
	if strings.TrimSpace(input.Address) == "" {
		response.Error(c, domainerrors.BadRequest("Address requerida"))
		return
	}

	token, err := h.sessions.Issue(input.Address)
	if err != nil {
		response.Error(c, domainerrors.InternalError("Error al iniciar sesión", err))
		return
	}

	maxAge := int(h.sessions.Expiry().Seconds())
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(walletsession.CookieName, token, maxAge, "/", "", false, true)

	redirectTo := DefaultPostConnectPath
	if input.CallbackURL != "" {
		if decoded, err := url.QueryUnescape(input.CallbackURL); err == nil && strings.HasPrefix(decoded, "/") {
			redirectTo = decoded
		}
	}

	response.Success(c, http.StatusOK, gin.H{
		"address":    input.Address,
		"redirectTo": redirectTo,
	})
}

// Disconnect clears the wallet session cookie
// DELETE /api/connect
func (h *ConnectHandler) Disconnect(c *gin.Context) {
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(walletsession.CookieName, "", -1, "/", "", false, true)
	response.Success(c, http.StatusOK, gin.H{"message": "Sesión cerrada"})
}

// Me returns the connected wallet address
// GET /api/me
func (h *ConnectHandler) Me(c *gin.Context) {
	address, ok := middleware.GetWalletAddress(c)
	if !ok {
		response.Error(c, domainerrors.Unauthorized("Conecta tu wallet para continuar"))
		return
	}
	response.Success(c, http.StatusOK, gin.H{"address": address})
}
