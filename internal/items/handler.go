package items

import (
	"context"
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/simplestock/simplestock/internal/httpx"
)

// ServiceAPI define lo que el handler necesita.
// Permite testear handlers con stubs sin tocar DB.
type ServiceAPI interface {
	List(ctx context.Context, search string) ([]Item, error)
	Create(ctx context.Context, input ItemInput) (Item, error)
	Update(ctx context.Context, id int64, input ItemInput) (Item, error)
	Delete(ctx context.Context, id int64) error
}

// Handler HTTP para items.
// Solo traduce HTTP <-> dominio (service).
type Handler struct {
	service ServiceAPI
}

// NewHandler crea un handler de items.
func NewHandler(service ServiceAPI) *Handler {
	return &Handler{service: service}
}

// List maneja GET /items con búsqueda opcional por ?search=.
func (handler *Handler) List(writer http.ResponseWriter, request *http.Request) {
	search := request.URL.Query().Get("search")

	list, err := handler.service.List(request.Context(), search)
	if err != nil {
		handler.storageError(writer, request, err, "failed to retrieve items")
		return
	}

	httpx.JSON(writer, http.StatusOK, list)
}

// Create maneja POST /items.
func (handler *Handler) Create(writer http.ResponseWriter, request *http.Request) {
	var input ItemInput
	if err := json.NewDecoder(request.Body).Decode(&input); err != nil {
		httpx.Fail(writer, http.StatusBadRequest, "invalid JSON body")
		return
	}

	item, err := handler.service.Create(request.Context(), input)
	if err != nil {
		if IsValidationError(err) {
			httpx.Fail(writer, http.StatusBadRequest, err.Error())
			return
		}
		handler.storageError(writer, request, err, "failed to add item")
		return
	}

	httpx.JSON(writer, http.StatusCreated, item)
}

// Update maneja PUT /items/{id}. Reemplazo completo, no parcial.
func (handler *Handler) Update(writer http.ResponseWriter, request *http.Request) {
	id, err := parseItemID(request)
	if err != nil {
		httpx.Fail(writer, http.StatusBadRequest, err.Error())
		return
	}

	var input ItemInput
	if err := json.NewDecoder(request.Body).Decode(&input); err != nil {
		httpx.Fail(writer, http.StatusBadRequest, "invalid JSON body")
		return
	}

	item, err := handler.service.Update(request.Context(), id, input)
	if err != nil {
		switch {
		case IsValidationError(err):
			httpx.Fail(writer, http.StatusBadRequest, err.Error())
		case errors.Is(err, ErrorNotFound):
			httpx.Fail(writer, http.StatusNotFound, "item not found")
		default:
			handler.storageError(writer, request, err, "failed to update item")
		}
		return
	}

	httpx.JSON(writer, http.StatusOK, item)
}

// Delete maneja DELETE /items/{id}.
func (handler *Handler) Delete(writer http.ResponseWriter, request *http.Request) {
	id, err := parseItemID(request)
	if err != nil {
		httpx.Fail(writer, http.StatusBadRequest, err.Error())
		return
	}

	if err := handler.service.Delete(request.Context(), id); err != nil {
		switch {
		case errors.Is(err, ErrorNotFound):
			httpx.Fail(writer, http.StatusNotFound, "item not found")
		default:
			handler.storageError(writer, request, err, "failed to delete item")
		}
		return
	}

	// 204 No Content: respuesta vacía.
	writer.WriteHeader(http.StatusNoContent)
}

// storageError loguea la causa real y responde un 500 genérico.
// No filtramos detalles internos al cliente.
func (handler *Handler) storageError(writer http.ResponseWriter, request *http.Request, err error, message string) {
	log.Printf("items: %s (request_id=%s): %v", message, httpx.RequestIDFrom(request), err)
	httpx.Fail(writer, http.StatusInternalServerError, message)
}

// parseItemID valida que el id del path sea un entero positivo.
// El id en DB es bigserial; cualquier otra cosa es un 400, no un 404.
func parseItemID(request *http.Request) (int64, error) {
	raw := chi.URLParam(request, "id")
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		return 0, ErrorInvalidID
	}
	return id, nil
}
