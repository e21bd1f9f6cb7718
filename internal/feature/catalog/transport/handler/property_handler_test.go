package handler

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"estate_backend/internal/feature/catalog/domain/entity"
	"estate_backend/internal/feature/catalog/usecase"
)

type mockCatalogUsecase struct {
	ListPropertiesFunc func(ctx context.Context) ([]entity.Property, error)
	GetPropertyFunc    func(ctx context.Context, id string) (entity.Property, error)
	CreatePropertyFunc func(ctx context.Context, p entity.Property) (entity.Property, error)
	UpdatePropertyFunc func(ctx context.Context, id string, p entity.Property) error
	DeletePropertyFunc func(ctx context.Context, id string) error
}

func (m *mockCatalogUsecase) ListProperties(ctx context.Context) ([]entity.Property, error) {
	return m.ListPropertiesFunc(ctx)
}

func (m *mockCatalogUsecase) GetProperty(ctx context.Context, id string) (entity.Property, error) {
	return m.GetPropertyFunc(ctx, id)
}

func (m *mockCatalogUsecase) CreateProperty(ctx context.Context, p entity.Property) (entity.Property, error) {
	return m.CreatePropertyFunc(ctx, p)
}

func (m *mockCatalogUsecase) UpdateProperty(ctx context.Context, id string, p entity.Property) error {
	return m.UpdatePropertyFunc(ctx, id, p)
}

func (m *mockCatalogUsecase) DeleteProperty(ctx context.Context, id string) error {
	return m.DeletePropertyFunc(ctx, id)
}

func setupRouter(h *PropertyHandler) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/properties", h.List)
	r.GET("/properties/:id", h.Get)
	r.POST("/admin/properties", h.Create)
	r.PUT("/admin/properties/:id", h.Update)
	r.DELETE("/admin/properties/:id", h.Delete)
	return r
}

const validPropertyBody = `{"name":"New Mall","currentValueMMK":500000000,"sharePriceMMK":5000}`

func TestPropertyHandler_List(t *testing.T) {
	t.Parallel()

	h := NewPropertyHandler(&mockCatalogUsecase{
		ListPropertiesFunc: func(ctx context.Context) ([]entity.Property, error) {
			return []entity.Property{
				{ID: "prop-a", Name: "Golden Valley Residences"},
				{ID: "prop-b", Name: "Pearl Tower"},
			}, nil
		},
	})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/properties", nil)
	setupRouter(h).ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "prop-a")
	assert.Contains(t, w.Body.String(), "Pearl Tower")
}

func TestPropertyHandler_Get(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		id         string
		err        error
		wantStatus int
	}{
		{name: "found", id: "prop-a", wantStatus: http.StatusOK},
		{name: "not found", id: "prop-x", err: usecase.ErrPropertyNotFound, wantStatus: http.StatusNotFound},
		{name: "storage failure", id: "prop-a", err: errors.New("store unavailable"), wantStatus: http.StatusInternalServerError},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			h := NewPropertyHandler(&mockCatalogUsecase{
				GetPropertyFunc: func(ctx context.Context, id string) (entity.Property, error) {
					if tt.err != nil {
						return entity.Property{}, tt.err
					}
					return entity.Property{ID: id, Name: "Golden Valley Residences"}, nil
				},
			})

			w := httptest.NewRecorder()
			req := httptest.NewRequest(http.MethodGet, "/properties/"+tt.id, nil)
			setupRouter(h).ServeHTTP(w, req)

			assert.Equal(t, tt.wantStatus, w.Code)
		})
	}
}

func TestPropertyHandler_Create(t *testing.T) {
	t.Parallel()

	h := NewPropertyHandler(&mockCatalogUsecase{
		CreatePropertyFunc: func(ctx context.Context, p entity.Property) (entity.Property, error) {
			p.ID = "prop-new"
			return p, nil
		},
	})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/admin/properties", strings.NewReader(validPropertyBody))
	req.Header.Set("Content-Type", "application/json")
	setupRouter(h).ServeHTTP(w, req)

	require.Equal(t, http.StatusCreated, w.Code)
	assert.Contains(t, w.Body.String(), `"id":"prop-new"`)
	assert.Contains(t, w.Body.String(), `"name":"New Mall"`)
}

func TestPropertyHandler_Create_BadRequests(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		body string
	}{
		{name: "malformed json", body: `{"name":}`},
		{name: "missing name", body: `{"currentValueMMK":1,"sharePriceMMK":1}`},
		{name: "zero value", body: `{"name":"x","currentValueMMK":0,"sharePriceMMK":1}`},
		{name: "negative share price", body: `{"name":"x","currentValueMMK":1,"sharePriceMMK":-1}`},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			h := NewPropertyHandler(&mockCatalogUsecase{
				CreatePropertyFunc: func(ctx context.Context, p entity.Property) (entity.Property, error) {
					t.Fatal("usecase should not be called")
					return entity.Property{}, nil
				},
			})

			w := httptest.NewRecorder()
			req := httptest.NewRequest(http.MethodPost, "/admin/properties", strings.NewReader(tt.body))
			req.Header.Set("Content-Type", "application/json")
			setupRouter(h).ServeHTTP(w, req)

			assert.Equal(t, http.StatusBadRequest, w.Code)
		})
	}
}

func TestPropertyHandler_Update(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		err        error
		wantStatus int
	}{
		{name: "success", wantStatus: http.StatusOK},
		{name: "static property is read-only", err: usecase.ErrStaticProperty, wantStatus: http.StatusForbidden},
		{name: "not found", err: usecase.ErrPropertyNotFound, wantStatus: http.StatusNotFound},
		{name: "invalid payload", err: usecase.ErrInvalidProperty, wantStatus: http.StatusBadRequest},
		{name: "storage failure", err: errors.New("store unavailable"), wantStatus: http.StatusInternalServerError},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			h := NewPropertyHandler(&mockCatalogUsecase{
				UpdatePropertyFunc: func(ctx context.Context, id string, p entity.Property) error {
					assert.Equal(t, "prop-1", id)
					return tt.err
				},
			})

			w := httptest.NewRecorder()
			req := httptest.NewRequest(http.MethodPut, "/admin/properties/prop-1", strings.NewReader(validPropertyBody))
			req.Header.Set("Content-Type", "application/json")
			setupRouter(h).ServeHTTP(w, req)

			assert.Equal(t, tt.wantStatus, w.Code)
			if tt.err != nil {
				assert.Contains(t, w.Body.String(), `"success":false`)
			}
		})
	}
}

func TestPropertyHandler_Delete(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		err        error
		wantStatus int
	}{
		{name: "success", wantStatus: http.StatusOK},
		{name: "static property is read-only", err: usecase.ErrStaticProperty, wantStatus: http.StatusForbidden},
		{name: "not found", err: usecase.ErrPropertyNotFound, wantStatus: http.StatusNotFound},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			h := NewPropertyHandler(&mockCatalogUsecase{
				DeletePropertyFunc: func(ctx context.Context, id string) error {
					return tt.err
				},
			})

			w := httptest.NewRecorder()
			req := httptest.NewRequest(http.MethodDelete, "/admin/properties/prop-1", nil)
			setupRouter(h).ServeHTTP(w, req)

			assert.Equal(t, tt.wantStatus, w.Code)
		})
	}
}
