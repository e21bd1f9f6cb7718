// Package handler provides the HTTP handlers for the portfolio feature.
package handler

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"estate_backend/internal/feature/portfolio/domain/entity"
	"estate_backend/internal/feature/portfolio/transport/http/dto"
	"estate_backend/internal/feature/portfolio/usecase"
	jwtmw "estate_backend/internal/platform/jwt"
)

// LedgerUsecase defines the usecase for portfolio operations.
// Following Go convention: interfaces are defined by the consumer (handler),
// not the provider (usecase).
type LedgerUsecase interface {
	GetPortfolio(ctx context.Context, userID string) (*entity.Portfolio, error)
	GuestPortfolio(ctx context.Context) (*entity.Portfolio, error)
	Buy(ctx context.Context, userID, propertyID string, amountMMK float64) error
	Sell(ctx context.Context, userID, propertyID string, amountMMK float64) error
	ApplyMarketDelta(ctx context.Context, deltaPct float64) error
}

// SimulationLimiter bounds how often manual market simulations may run.
type SimulationLimiter interface {
	Allow() bool
}

// PortfolioHandler processes HTTP requests for portfolio operations.
type PortfolioHandler struct {
	uc      LedgerUsecase
	limiter SimulationLimiter
}

// NewPortfolioHandler creates a new PortfolioHandler.
func NewPortfolioHandler(uc LedgerUsecase, limiter SimulationLimiter) *PortfolioHandler {
	return &PortfolioHandler{uc: uc, limiter: limiter}
}

// Get returns the authenticated caller's portfolio, creating it on first
// access.
func (h *PortfolioHandler) Get(c *gin.Context) {
	userID := c.GetString(jwtmw.ContextUserID)
	p, err := h.uc.GetPortfolio(c.Request.Context(), userID)
	if err != nil {
		slog.Error("get portfolio failed", "error", err, "user_id", userID)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load portfolio"})
		return
	}
	c.JSON(http.StatusOK, p)
}

// Guest returns the public market overview for unauthenticated callers.
func (h *PortfolioHandler) Guest(c *gin.Context) {
	p, err := h.uc.GuestPortfolio(c.Request.Context())
	if err != nil {
		slog.Error("guest portfolio failed", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load demo data"})
		return
	}
	c.JSON(http.StatusOK, p)
}

// Buy executes a buy for the authenticated caller. The response is the
// boolean success flag the UI consumes; rule violations and storage
// failures look the same to the client.
func (h *PortfolioHandler) Buy(c *gin.Context) {
	h.trade(c, h.uc.Buy)
}

// Sell executes a sell for the authenticated caller.
func (h *PortfolioHandler) Sell(c *gin.Context) {
	h.trade(c, h.uc.Sell)
}

// trade binds the request and runs a trade operation, mapping the outcome
// onto the success-flag contract.
func (h *PortfolioHandler) trade(c *gin.Context, op func(ctx context.Context, userID, propertyID string, amountMMK float64) error) {
	var req dto.TradeReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.TradeResponse{Success: false})
		return
	}

	userID := c.GetString(jwtmw.ContextUserID)
	if err := op(c.Request.Context(), userID, req.PropertyID, req.AmountMMK); err != nil {
		if usecase.IsValidationError(err) {
			slog.Info("trade rejected", "user_id", userID, "property_id", req.PropertyID, "error", err)
			c.JSON(http.StatusUnprocessableEntity, dto.TradeResponse{Success: false})
			return
		}
		slog.Error("trade failed", "user_id", userID, "property_id", req.PropertyID, "error", err)
		c.JSON(http.StatusInternalServerError, dto.TradeResponse{Success: false})
		return
	}
	c.JSON(http.StatusOK, dto.TradeResponse{Success: true})
}

// Simulate applies a uniform market delta across the catalog and every
// portfolio. Rate limited; sweeps are full-table and not meant to be
// hammered.
func (h *PortfolioHandler) Simulate(c *gin.Context) {
	if h.limiter != nil && !h.limiter.Allow() {
		c.JSON(http.StatusTooManyRequests, dto.TradeResponse{Success: false})
		return
	}

	var req dto.SimulateReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.TradeResponse{Success: false})
		return
	}

	if err := h.uc.ApplyMarketDelta(c.Request.Context(), req.DeltaPct); err != nil {
		slog.Error("market simulation failed", "delta_pct", req.DeltaPct, "error", err)
		c.JSON(http.StatusInternalServerError, dto.TradeResponse{Success: false})
		return
	}
	slog.Info("market simulation applied", "delta_pct", req.DeltaPct)
	c.JSON(http.StatusOK, dto.TradeResponse{Success: true})
}
