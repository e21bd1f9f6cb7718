// Package handler provides the HTTP handlers for the catalog feature.
package handler

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"estate_backend/internal/feature/catalog/domain/entity"
	"estate_backend/internal/feature/catalog/transport/http/dto"
	"estate_backend/internal/feature/catalog/usecase"
)

// CatalogUsecase defines the usecase for catalog operations.
// Following Go convention: interfaces are defined by the consumer (handler),
// not the provider (usecase).
type CatalogUsecase interface {
	ListProperties(ctx context.Context) ([]entity.Property, error)
	GetProperty(ctx context.Context, id string) (entity.Property, error)
	CreateProperty(ctx context.Context, p entity.Property) (entity.Property, error)
	UpdateProperty(ctx context.Context, id string, p entity.Property) error
	DeleteProperty(ctx context.Context, id string) error
}

// PropertyHandler processes HTTP requests for the property catalog.
type PropertyHandler struct {
	uc CatalogUsecase
}

// NewPropertyHandler creates a new PropertyHandler.
func NewPropertyHandler(uc CatalogUsecase) *PropertyHandler {
	return &PropertyHandler{uc: uc}
}

// List returns the combined catalog, static entries first.
func (h *PropertyHandler) List(c *gin.Context) {
	properties, err := h.uc.ListProperties(c.Request.Context())
	if err != nil {
		slog.Error("list properties failed", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load properties"})
		return
	}
	c.JSON(http.StatusOK, properties)
}

// Get returns a single property by id.
func (h *PropertyHandler) Get(c *gin.Context) {
	property, err := h.uc.GetProperty(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, usecase.ErrPropertyNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "property not found"})
			return
		}
		slog.Error("get property failed", "error", err, "property_id", c.Param("id"))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load property"})
		return
	}
	c.JSON(http.StatusOK, property)
}

// Create stores a new dynamic property and returns it with its id set.
func (h *PropertyHandler) Create(c *gin.Context) {
	var req dto.PropertyReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}
	property, err := h.uc.CreateProperty(c.Request.Context(), req.ToEntity())
	if err != nil {
		if errors.Is(err, usecase.ErrInvalidProperty) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid property"})
			return
		}
		slog.Error("create property failed", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to create property"})
		return
	}
	slog.Info("property created", "property_id", property.ID, "name", property.Name)
	c.JSON(http.StatusCreated, property)
}

// Update replaces a dynamic property. Seed-origin ids are rejected.
func (h *PropertyHandler) Update(c *gin.Context) {
	var req dto.PropertyReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}
	id := c.Param("id")
	if err := h.uc.UpdateProperty(c.Request.Context(), id, req.ToEntity()); err != nil {
		h.writeMutationError(c, "update", id, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true})
}

// Delete removes a dynamic property. Seed-origin ids are rejected.
func (h *PropertyHandler) Delete(c *gin.Context) {
	id := c.Param("id")
	if err := h.uc.DeleteProperty(c.Request.Context(), id); err != nil {
		h.writeMutationError(c, "delete", id, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true})
}

// writeMutationError maps catalog mutation failures onto the API contract:
// callers only learn that the operation failed, not why the storage broke.
func (h *PropertyHandler) writeMutationError(c *gin.Context, op, id string, err error) {
	switch {
	case errors.Is(err, usecase.ErrPropertyNotFound):
		c.JSON(http.StatusNotFound, gin.H{"success": false, "error": "property not found"})
	case errors.Is(err, usecase.ErrStaticProperty):
		c.JSON(http.StatusForbidden, gin.H{"success": false, "error": "static property is read-only"})
	case errors.Is(err, usecase.ErrInvalidProperty):
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "invalid property"})
	default:
		slog.Error("property mutation failed", "op", op, "property_id", id, "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "operation failed"})
	}
}
