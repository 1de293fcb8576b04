package main

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"denance.backend/internal/interfaces/http/handlers"
	"denance.backend/internal/interfaces/http/middleware"
)

type routeDeps struct {
	authHandler       *handlers.AuthHandler
	profileHandler    *handlers.ProfileHandler
	withdrawalHandler *handlers.WithdrawalHandler
	purchaseHandler   *handlers.PurchaseHandler
	viewHandler       *handlers.ViewHandler
	adminHandler      *handlers.AdminHandler
	authMiddleware    gin.HandlerFunc
}

func applyCORSMiddleware(r *gin.Engine) {
	r.Use(func(c *gin.Context) {
		origin := c.GetHeader("Origin")
		if origin != "" {
			c.Header("Access-Control-Allow-Origin", origin)
			c.Header("Access-Control-Allow-Credentials", "true")
			c.Header("Access-Control-Allow-Headers", "Authorization, Content-Type, Idempotency-Key, X-Request-ID")
			c.Header("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
		}
		if c.Request.Method == http.MethodOptions {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}
		c.Next()
	})
}

func registerHealthRoute(r *gin.Engine) {
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":  "ok",
			"service": "denance-backend",
			"version": "0.1.0",
		})
	})
}

func registerMetricsRoute(r *gin.Engine) {
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))
}

func registerAPIV1Routes(r *gin.Engine, d routeDeps) {
	v1 := r.Group("/api/v1")
	{
		// Auth routes (public)
		auth := v1.Group("/auth")
		{
			auth.POST("/register", d.authHandler.Register)
			auth.POST("/login", d.authHandler.Login)
			auth.POST("/refresh", d.authHandler.RefreshToken)
			auth.POST("/logout", d.authHandler.Logout)
			auth.GET("/me", d.authMiddleware, d.authHandler.GetMe)
		}

		// Profile routes (protected)
		profile := v1.Group("/profile")
		profile.Use(d.authMiddleware)
		{
			profile.GET("", d.profileHandler.GetProfile)
			profile.POST("/refresh", d.profileHandler.ClaimRefresh)
		}

		// Withdrawal routes (protected)
		withdrawals := v1.Group("/withdrawals")
		withdrawals.Use(d.authMiddleware)
		{
			withdrawals.POST("", middleware.IdempotencyMiddleware(), d.withdrawalHandler.Submit)
			withdrawals.GET("", d.withdrawalHandler.History)
		}

		// Activation purchase routes (protected)
		v1.GET("/payment-details", d.authMiddleware, d.purchaseHandler.GetPaymentDetails)
		purchases := v1.Group("/activation-purchases")
		purchases.Use(d.authMiddleware)
		{
			purchases.POST("", middleware.IdempotencyMiddleware(), d.purchaseHandler.Submit)
			purchases.GET("", d.purchaseHandler.List)
		}

		// View state machine routes (protected)
		view := v1.Group("/view")
		view.Use(d.authMiddleware)
		{
			view.GET("", d.viewHandler.Current)
			view.POST("/events", d.viewHandler.ApplyEvent)
			view.DELETE("", d.viewHandler.Reset)
		}

		// Admin routes (protected)
		admin := v1.Group("/admin")
		admin.Use(d.authMiddleware, middleware.RequireAdmin())
		{
			admin.PUT("/activation-code", d.adminHandler.ReassignActivationCode)
		}
	}
}
