package client_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/Triyambak-CA/client-dashboard/internal/client"
	clienterrors "github.com/Triyambak-CA/client-dashboard/internal/client/errors"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeClientService struct {
	createFn     func(ctx context.Context, req client.CreateClientRequest) (client.ClientResponse, error)
	getAllFn     func(ctx context.Context, filter client.ListFilter) ([]client.ClientListItem, error)
	getByIDFn    func(ctx context.Context, id uuid.UUID) (client.ClientResponse, error)
	updateFn     func(ctx context.Context, id uuid.UUID, req client.UpdateClientRequest) (client.ClientResponse, error)
	deactivateFn func(ctx context.Context, id uuid.UUID) error
}

func (f *fakeClientService) Create(ctx context.Context, req client.CreateClientRequest) (client.ClientResponse, error) {
	return f.createFn(ctx, req)
}

func (f *fakeClientService) GetAll(ctx context.Context, filter client.ListFilter) ([]client.ClientListItem, error) {
	return f.getAllFn(ctx, filter)
}

func (f *fakeClientService) GetByID(ctx context.Context, id uuid.UUID) (client.ClientResponse, error) {
	return f.getByIDFn(ctx, id)
}

func (f *fakeClientService) Update(ctx context.Context, id uuid.UUID, req client.UpdateClientRequest) (client.ClientResponse, error) {
	return f.updateFn(ctx, id, req)
}

func (f *fakeClientService) Deactivate(ctx context.Context, id uuid.UUID) error {
	return f.deactivateFn(ctx, id)
}

func setupClientRouter(svc client.Service) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	api := r.Group("")
	client.RegisterRoutes(api, client.NewHandler(svc), func(c *gin.Context) { c.Next() })
	return r
}

func TestClientHandler_Create(t *testing.T) {
	t.Run("valid body returns 201", func(t *testing.T) {
		svc := &fakeClientService{
			createFn: func(_ context.Context, req client.CreateClientRequest) (client.ClientResponse, error) {
				return client.ClientResponse{ID: uuid.NewString(), PAN: req.PAN, DisplayName: req.DisplayName}, nil
			},
		}
		router := setupClientRouter(svc)

		body, _ := json.Marshal(map[string]any{
			"pan":          "AAAPL1234C",
			"constitution": "Individual",
			"display_name": "Ravi",
			"legal_name":   "Ravi Kumar",
		})
		req := httptest.NewRequest(http.MethodPost, "/clients", bytes.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusCreated, w.Code)

		var res map[string]any
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &res))
		assert.Equal(t, true, res["ok"])
		assert.Equal(t, "AAAPL1234C", res["data"].(map[string]any)["pan"])
	})

	t.Run("missing required fields returns 400", func(t *testing.T) {
		svc := &fakeClientService{}
		router := setupClientRouter(svc)

		body, _ := json.Marshal(map[string]any{"pan": "AAAPL1234C"})
		req := httptest.NewRequest(http.MethodPost, "/clients", bytes.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("unknown constitution returns 400", func(t *testing.T) {
		svc := &fakeClientService{}
		router := setupClientRouter(svc)

		body, _ := json.Marshal(map[string]any{
			"pan":          "AAAPL1234C",
			"constitution": "Society",
			"display_name": "X",
			"legal_name":   "X",
		})
		req := httptest.NewRequest(http.MethodPost, "/clients", bytes.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("duplicate PAN returns 409", func(t *testing.T) {
		svc := &fakeClientService{
			createFn: func(_ context.Context, _ client.CreateClientRequest) (client.ClientResponse, error) {
				return client.ClientResponse{}, clienterrors.ErrPANExists
			},
		}
		router := setupClientRouter(svc)

		body, _ := json.Marshal(map[string]any{
			"pan":          "AAAPL1234C",
			"constitution": "Individual",
			"display_name": "Ravi",
			"legal_name":   "Ravi Kumar",
		})
		req := httptest.NewRequest(http.MethodPost, "/clients", bytes.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusConflict, w.Code)
	})
}

func TestClientHandler_GetAll(t *testing.T) {
	t.Run("passes query filters through", func(t *testing.T) {
		var got client.ListFilter
		svc := &fakeClientService{
			getAllFn: func(_ context.Context, filter client.ListFilter) ([]client.ClientListItem, error) {
				got = filter
				return []client.ClientListItem{}, nil
			},
		}
		router := setupClientRouter(svc)

		req := httptest.NewRequest(http.MethodGet, "/clients?search=ravi&constitution=Individual&is_active=true&is_direct=false", nil)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "ravi", got.Search)
		assert.Equal(t, "Individual", got.Constitution)
		require.NotNil(t, got.IsActive)
		assert.True(t, *got.IsActive)
		require.NotNil(t, got.IsDirect)
		assert.False(t, *got.IsDirect)
	})
}

func TestClientHandler_GetByID(t *testing.T) {
	t.Run("malformed id returns 400", func(t *testing.T) {
		svc := &fakeClientService{}
		router := setupClientRouter(svc)

		req := httptest.NewRequest(http.MethodGet, "/clients/not-a-uuid", nil)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("unknown id returns 404", func(t *testing.T) {
		svc := &fakeClientService{
			getByIDFn: func(_ context.Context, _ uuid.UUID) (client.ClientResponse, error) {
				return client.ClientResponse{}, clienterrors.ErrClientNotFound
			},
		}
		router := setupClientRouter(svc)

		req := httptest.NewRequest(http.MethodGet, "/clients/"+uuid.NewString(), nil)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}

func TestClientHandler_Deactivate(t *testing.T) {
	t.Run("returns 204 with no body", func(t *testing.T) {
		svc := &fakeClientService{
			deactivateFn: func(_ context.Context, _ uuid.UUID) error { return nil },
		}
		router := setupClientRouter(svc)

		req := httptest.NewRequest(http.MethodDelete, "/clients/"+uuid.NewString(), nil)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusNoContent, w.Code)
		assert.Empty(t, w.Body.String())
	})
}
