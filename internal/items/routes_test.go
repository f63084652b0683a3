package items

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/require"
)

type routeStubService struct{}

func (service *routeStubService) List(ctx context.Context, search string) ([]Item, error) {
	return []Item{}, nil
}

func (service *routeStubService) Create(ctx context.Context, input ItemInput) (Item, error) {
	return Item{ID: 1, Name: input.Name}, nil
}

func (service *routeStubService) Update(ctx context.Context, id int64, input ItemInput) (Item, error) {
	return Item{ID: id, Name: input.Name}, nil
}

func (service *routeStubService) Delete(ctx context.Context, id int64) error {
	return nil
}

func TestRegisterRoutes(t *testing.T) {
	router := chi.NewRouter()
	RegisterRoutes(router, NewHandler(&routeStubService{}))

	tests := []struct {
		name       string
		method     string
		path       string
		body       string
		wantStatus int
	}{
		{
			name:       "get items",
			method:     http.MethodGet,
			path:       "/items",
			wantStatus: http.StatusOK,
		},
		{
			name:       "get items with search",
			method:     http.MethodGet,
			path:       "/items?search=widg",
			wantStatus: http.StatusOK,
		},
		{
			name:       "post items",
			method:     http.MethodPost,
			path:       "/items",
			body:       `{"name":"Widget","quantity":2}`,
			wantStatus: http.StatusCreated,
		},
		{
			name:       "put item",
			method:     http.MethodPut,
			path:       "/items/1",
			body:       `{"name":"Widget","quantity":0}`,
			wantStatus: http.StatusOK,
		},
		{
			name:       "delete item",
			method:     http.MethodDelete,
			path:       "/items/1",
			wantStatus: http.StatusNoContent,
		},
		{
			name:       "patch not registered",
			method:     http.MethodPatch,
			path:       "/items/1",
			body:       `{"name":"Widget"}`,
			wantStatus: http.StatusMethodNotAllowed,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(tt.method, tt.path, strings.NewReader(tt.body))
			if tt.body != "" {
				req.Header.Set("Content-Type", "application/json")
			}
			recorder := httptest.NewRecorder()

			router.ServeHTTP(recorder, req)

			require.Equal(t, tt.wantStatus, recorder.Code)
		})
	}
}
