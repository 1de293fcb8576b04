package main

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"denance.backend/internal/interfaces/http/handlers"
)

func TestRegisterAPIV1Routes(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()

	deps := routeDeps{
		authHandler:       handlers.NewAuthHandler(nil, nil, nil),
		profileHandler:    handlers.NewProfileHandler(nil, nil),
		withdrawalHandler: handlers.NewWithdrawalHandler(nil, nil),
		purchaseHandler:   handlers.NewPurchaseHandler(nil),
		viewHandler:       handlers.NewViewHandler(nil),
		adminHandler:      handlers.NewAdminHandler(nil),
		authMiddleware:    func(c *gin.Context) { c.Next() },
	}
	registerAPIV1Routes(r, deps)

	registered := make(map[string]bool)
	for _, route := range r.Routes() {
		registered[route.Method+" "+route.Path] = true
	}

	expected := []string{
		http.MethodPost + " /api/v1/auth/register",
		http.MethodPost + " /api/v1/auth/login",
		http.MethodPost + " /api/v1/auth/refresh",
		http.MethodPost + " /api/v1/auth/logout",
		http.MethodGet + " /api/v1/auth/me",
		http.MethodGet + " /api/v1/profile",
		http.MethodPost + " /api/v1/profile/refresh",
		http.MethodPost + " /api/v1/withdrawals",
		http.MethodGet + " /api/v1/withdrawals",
		http.MethodGet + " /api/v1/payment-details",
		http.MethodPost + " /api/v1/activation-purchases",
		http.MethodGet + " /api/v1/activation-purchases",
		http.MethodGet + " /api/v1/view",
		http.MethodPost + " /api/v1/view/events",
		http.MethodDelete + " /api/v1/view",
		http.MethodPut + " /api/v1/admin/activation-code",
	}
	for _, route := range expected {
		assert.True(t, registered[route], fmt.Sprintf("route %s not registered", route))
	}
}
