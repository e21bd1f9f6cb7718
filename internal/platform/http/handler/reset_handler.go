package handler

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
)

// DataResetter restores a store to its bundled seed state.
type DataResetter interface {
	Reset(ctx context.Context) error
}

// ResetHandler wipes stored collections back to the seed data. It exists
// for demos and development; resets are not part of the product surface.
type ResetHandler struct {
	resetters []DataResetter
}

// NewResetHandler creates a ResetHandler over the given stores.
func NewResetHandler(resetters ...DataResetter) *ResetHandler {
	return &ResetHandler{resetters: resetters}
}

// Reset clears every registered store. A partial reset reports failure but
// does not roll back; the stores are independent blobs with no atomicity
// across keys.
func (h *ResetHandler) Reset(c *gin.Context) {
	for _, r := range h.resetters {
		if err := r.Reset(c.Request.Context()); err != nil {
			slog.Error("data reset failed", "error", err)
			c.JSON(http.StatusInternalServerError, gin.H{"success": false})
			return
		}
	}
	slog.Info("all data reset to seed state")
	c.JSON(http.StatusOK, gin.H{"success": true})
}
