package handlers

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"denance.backend/internal/domain/entities"
	domainerrors "denance.backend/internal/domain/errors"
	"denance.backend/internal/interfaces/http/middleware"
	"denance.backend/internal/interfaces/http/response"
	"denance.backend/pkg/jwt"
	"denance.backend/pkg/redis"
	"denance.backend/pkg/utils"
)

type AuthService interface {
	Register(ctx context.Context, input *entities.RegisterInput) (*entities.Profile, error)
	Login(ctx context.Context, input *entities.LoginInput) (*entities.Profile, *jwt.TokenPair, error)
	RefreshToken(ctx context.Context, refreshToken string) (*jwt.TokenPair, error)
	Me(ctx context.Context, userID uuid.UUID) (*entities.Profile, error)
}

// ViewResetter drops a user's view state. View state belongs to a single
// login session, so login and logout both clear it and the next read
// starts at the dashboard.
type ViewResetter interface {
	Reset(ctx context.Context, userID uuid.UUID) error
}

// AuthHandler handles authentication endpoints
type AuthHandler struct {
	authUsecase  AuthService
	sessionStore *redis.SessionStore
	views        ViewResetter
}

// NewAuthHandler creates a new auth handler
func NewAuthHandler(authUsecase AuthService, sessionStore *redis.SessionStore, views ViewResetter) *AuthHandler {
	return &AuthHandler{
		authUsecase:  authUsecase,
		sessionStore: sessionStore,
		views:        views,
	}
}

// Register handles user registration
// POST /api/v1/auth/register
func (h *AuthHandler) Register(c *gin.Context) {
	var input entities.RegisterInput

	if err := c.ShouldBindJSON(&input); err != nil {
		response.Error(c, domainerrors.BadRequest(err.Error()))
		return
	}

	profile, err := h.authUsecase.Register(c.Request.Context(), &input)
	if err != nil {
		if err == domainerrors.ErrAlreadyExists {
			response.Error(c, domainerrors.Conflict("Email already registered"))
			return
		}
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusCreated, gin.H{
		"message": "Registration successful",
		"profile": profile,
	})
}

// Login handles user login
// POST /api/v1/auth/login
func (h *AuthHandler) Login(c *gin.Context) {
	var input entities.LoginInput

	if err := c.ShouldBindJSON(&input); err != nil {
		response.Error(c, domainerrors.BadRequest(err.Error()))
		return
	}

	profile, tokenPair, err := h.authUsecase.Login(c.Request.Context(), &input)
	if err != nil {
		if err == domainerrors.ErrInvalidCredentials {
			response.Error(c, domainerrors.Unauthorized("Invalid email or password"))
			return
		}
		response.Error(c, err)
		return
	}

	// A new login session starts at the dashboard, whatever the previous
	// session was doing when it ended.
	if h.views != nil {
		_ = h.views.Reset(c.Request.Context(), profile.UserID)
	}

	authResponse := entities.AuthResponse{
		AccessToken:  tokenPair.AccessToken,
		RefreshToken: tokenPair.RefreshToken,
		Profile:      profile,
	}

	if input.UseSession && h.sessionStore != nil {
		sessionID := utils.NewSessionID()
		err := h.sessionStore.CreateSession(c.Request.Context(), sessionID, &redis.SessionData{
			UserID:       profile.UserID.String(),
			AccessToken:  tokenPair.AccessToken,
			RefreshToken: tokenPair.RefreshToken,
		}, 7*24*time.Hour)
		if err != nil {
			response.Error(c, domainerrors.InternalError(err))
			return
		}
		authResponse.SessionID = sessionID
		c.SetCookie("session_id", sessionID, 3600*24*7, "/", "", false, true)
	}

	// Set tokens in cookies
	c.SetCookie("token", tokenPair.AccessToken, 3600*24, "/", "", false, true)
	c.SetCookie("refresh_token", tokenPair.RefreshToken, 3600*24*7, "/", "", false, true)

	response.Success(c, http.StatusOK, authResponse)
}

// RefreshToken handles token refresh
// POST /api/v1/auth/refresh
func (h *AuthHandler) RefreshToken(c *gin.Context) {
	var refreshToken string

	if c.Request.ContentLength > 0 {
		var input struct {
			RefreshToken string `json:"refreshToken"`
		}
		if err := c.ShouldBindJSON(&input); err == nil {
			refreshToken = input.RefreshToken
		}
	}

	// Fallback to cookie if not in body
	if refreshToken == "" {
		if cookie, err := c.Cookie("refresh_token"); err == nil {
			refreshToken = cookie
		}
	}

	if refreshToken == "" {
		response.Error(c, domainerrors.BadRequest("Refresh token is required"))
		return
	}

	tokenPair, err := h.authUsecase.RefreshToken(c.Request.Context(), refreshToken)
	if err != nil {
		response.Error(c, domainerrors.Unauthorized("Invalid or expired refresh token"))
		return
	}

	c.SetCookie("token", tokenPair.AccessToken, 3600*24, "/", "", false, true)
	c.SetCookie("refresh_token", tokenPair.RefreshToken, 3600*24*7, "/", "", false, true)

	response.Success(c, http.StatusOK, gin.H{
		"accessToken":  tokenPair.AccessToken,
		"refreshToken": tokenPair.RefreshToken,
	})
}

// Logout clears cookies, drops the server-side session if one exists, and
// discards the session's view state
// POST /api/v1/auth/logout
func (h *AuthHandler) Logout(c *gin.Context) {
	if sessionID, err := c.Cookie("session_id"); err == nil && sessionID != "" && h.sessionStore != nil {
		if data, err := h.sessionStore.GetSession(c.Request.Context(), sessionID); err == nil {
			h.resetViewState(c, data.UserID)
		}
		_ = h.sessionStore.DeleteSession(c.Request.Context(), sessionID)
	}

	// Cookie-only logins carry no server-side session; if an upstream
	// middleware identified the caller, clear their view state too.
	if userID, ok := middleware.GetUserID(c); ok && h.views != nil {
		_ = h.views.Reset(c.Request.Context(), userID)
	}

	c.SetCookie("token", "", -1, "/", "", false, true)
	c.SetCookie("refresh_token", "", -1, "/", "", false, true)
	c.SetCookie("session_id", "", -1, "/", "", false, true)

	response.Success(c, http.StatusOK, gin.H{
		"message": "Logged out",
	})
}

func (h *AuthHandler) resetViewState(c *gin.Context, userID string) {
	if h.views == nil {
		return
	}
	if uid, err := uuid.Parse(userID); err == nil {
		_ = h.views.Reset(c.Request.Context(), uid)
	}
}

// GetMe returns current authenticated user's profile
// GET /api/v1/auth/me
func (h *AuthHandler) GetMe(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		response.Error(c, domainerrors.Unauthorized("User not authenticated"))
		return
	}

	profile, err := h.authUsecase.Me(c.Request.Context(), userID)
	if err != nil {
		if err == domainerrors.ErrNotFound {
			response.Error(c, domainerrors.NotFound("Profile not found"))
			return
		}
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{
		"profile": profile,
	})
}
