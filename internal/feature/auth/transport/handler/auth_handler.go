// Package handler provides the HTTP handlers for the auth feature.
package handler

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"estate_backend/internal/feature/auth/domain/entity"
	"estate_backend/internal/feature/auth/transport/http/dto"
	jwtmw "estate_backend/internal/platform/jwt"
)

// AuthUsecase defines the usecase for authentication operations.
// Following Go convention: interfaces are defined by the consumer (handler),
// not the provider (usecase).
type AuthUsecase interface {
	// Signup registers a new user with the given credentials.
	Signup(ctx context.Context, email, password, name string) (*entity.User, error)
	// Login authenticates a user, returning a JWT token and session.
	Login(ctx context.Context, email, password string) (string, *entity.Session, error)
	// Logout revokes the given session.
	Logout(ctx context.Context, sessionID string) error
	// CurrentUser returns the account for an authenticated user id.
	CurrentUser(ctx context.Context, userID string) (*entity.User, error)
}

// AuthHandler processes HTTP requests for authentication operations.
type AuthHandler struct {
	auth AuthUsecase
}

// NewAuthHandler creates a new AuthHandler instance.
func NewAuthHandler(auth AuthUsecase) *AuthHandler {
	return &AuthHandler{auth: auth}
}

// Signup handles the user registration endpoint.
// - binds the request JSON into SignupReq, 400 on validation failure
// - 409 when the user cannot be created (duplicate email etc.)
// - 201 with the created account on success
func (h *AuthHandler) Signup(c *gin.Context) {
	var req dto.SignupReq
	if err := c.ShouldBindJSON(&req); err != nil {
		slog.Warn("signup validation failed", "error", err, "remote_addr", c.ClientIP())
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid request"})
		return
	}
	user, err := h.auth.Signup(c.Request.Context(), req.Email, req.Password, req.Name)
	if err != nil {
		// The real error stays in the logs to prevent user enumeration.
		slog.Warn("signup failed", "error", err, "email", req.Email, "remote_addr", c.ClientIP())
		c.JSON(http.StatusConflict, dto.ErrorResponse{Error: "signup failed"})
		return
	}
	slog.Info("user signup successful", "user_id", user.ID, "remote_addr", c.ClientIP())
	c.JSON(http.StatusCreated, user)
}

// Login handles the user login endpoint.
// - binds the request JSON into LoginReq, 400 on validation failure
// - 401 on authentication failure
// - 200 with JWT token and session id on success
func (h *AuthHandler) Login(c *gin.Context) {
	var req dto.LoginReq
	if err := c.ShouldBindJSON(&req); err != nil {
		slog.Warn("login validation failed", "error", err, "remote_addr", c.ClientIP())
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid request"})
		return
	}
	token, session, err := h.auth.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		slog.Warn("login failed", "error", err, "email", req.Email, "remote_addr", c.ClientIP())
		c.JSON(http.StatusUnauthorized, dto.ErrorResponse{Error: "invalid email or password"})
		return
	}
	slog.Info("user login successful", "user_id", session.UserID, "remote_addr", c.ClientIP())
	c.JSON(http.StatusOK, dto.TokenResponse{Token: token, SessionID: session.ID})
}

// Logout revokes the caller's session. Unknown sessions still yield 200;
// the end state is the same.
func (h *AuthHandler) Logout(c *gin.Context) {
	var req dto.LogoutReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid request"})
		return
	}
	if err := h.auth.Logout(c.Request.Context(), req.SessionID); err != nil {
		slog.Error("logout failed", "error", err, "remote_addr", c.ClientIP())
		c.JSON(http.StatusInternalServerError, dto.ErrorResponse{Error: "logout failed"})
		return
	}
	c.JSON(http.StatusOK, dto.MessageResponse{Message: "ok"})
}

// Me returns the authenticated caller's account.
func (h *AuthHandler) Me(c *gin.Context) {
	userID := c.GetString(jwtmw.ContextUserID)
	user, err := h.auth.CurrentUser(c.Request.Context(), userID)
	if err != nil {
		slog.Warn("current user lookup failed", "error", err, "user_id", userID)
		c.JSON(http.StatusNotFound, dto.ErrorResponse{Error: "user not found"})
		return
	}
	c.JSON(http.StatusOK, user)
}
