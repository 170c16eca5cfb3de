package main

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"formly.backend/internal/interfaces/http/handlers"
)

type routeDeps struct {
	formHandler    *handlers.FormHandler
	connectHandler *handlers.ConnectHandler
	requireWallet  gin.HandlerFunc
}

func registerAPIRoutes(r *gin.Engine, d routeDeps) {
	api := r.Group("/api")
	{
		// Wallet session routes (public)
		api.POST("/connect", d.connectHandler.Connect)
		api.DELETE("/connect", d.connectHandler.Disconnect)
		api.GET("/me", d.requireWallet, d.connectHandler.Me)

		// Form routes (protected)
		forms := api.Group("/forms")
		forms.Use(d.requireWallet)
		{
			forms.POST("", d.formHandler.CreateForm)
			forms.GET("", d.formHandler.ListForms)
			forms.GET("/:id", d.formHandler.GetForm)
			forms.PUT("/:id", d.formHandler.UpdateForm)
			forms.DELETE("/:id", d.formHandler.DeleteForm)
		}
	}
}

func applyCORSMiddleware(r *gin.Engine) {
	r.Use(func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", "http://localhost:3000")
		c.Writer.Header().Set("Access-Control-Allow-Credentials", "true")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization, X-Request-ID")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")

		if c.Request.Method == http.MethodOptions {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}

		c.Next()
	})
}

func registerHealthRoute(r *gin.Engine) {
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "healthy"})
	})
}

func registerMetricsRoute(r *gin.Engine) {
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))
}
