package rest

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"airport-registry-service/internal/domain/entity"
	"airport-registry-service/internal/usecase"
	"airport-registry-service/pkg/apperror"
	"airport-registry-service/pkg/logger"
)

// AirlineHandler wires airline endpoints to the airline service.
type AirlineHandler struct {
	service *usecase.AirlineService
	logger  logger.Logger
}

// NewAirlineHandler constructs an airline handler.
func NewAirlineHandler(service *usecase.AirlineService, logger logger.Logger) *AirlineHandler {
	return &AirlineHandler{
		service: service,
		logger:  logger,
	}
}

// Register mounts airline endpoints on the router.
func (h *AirlineHandler) Register(r chi.Router) {
	r.Route("/airlines", func(r chi.Router) {
		r.Get("/", h.handleList)
		r.Post("/", h.handleCreate)
		r.Get("/name/{name}", h.handleGetByName)
		r.Get("/fiscal-id/{fiscalID}", h.handleGetByFiscalID)
		r.Put("/{id}", h.handleUpdate)
		r.Delete("/{id}", h.handleDelete)
	})
}

func (h *AirlineHandler) handleList(w http.ResponseWriter, r *http.Request) {
	airlines, err := h.service.List(r.Context())
	if err != nil {
		h.logger.Error("Failed to list airlines", "error", err)
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, airlines)
}

func (h *AirlineHandler) handleCreate(w http.ResponseWriter, r *http.Request) {
	var airline entity.Airline
	if !decodeJSON(w, r, &airline) {
		return
	}
	if airline.Status != "" && !airline.Status.Valid() {
		writeError(w, apperror.Validation("invalid airline status"))
		return
	}

	created, err := h.service.Create(r.Context(), &airline)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, created)
}

func (h *AirlineHandler) handleGetByName(w http.ResponseWriter, r *http.Request) {
	airline, err := h.service.GetByName(r.Context(), chi.URLParam(r, "name"))
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, airline)
}

func (h *AirlineHandler) handleGetByFiscalID(w http.ResponseWriter, r *http.Request) {
	airline, err := h.service.GetByFiscalID(r.Context(), chi.URLParam(r, "fiscalID"))
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, airline)
}

func (h *AirlineHandler) handleUpdate(w http.ResponseWriter, r *http.Request) {
	id, ok := parseID(w, r)
	if !ok {
		return
	}

	var airline entity.Airline
	if !decodeJSON(w, r, &airline) {
		return
	}
	if !airline.Status.Valid() {
		writeError(w, apperror.Validation("invalid airline status"))
		return
	}

	updated, err := h.service.Update(r.Context(), id, &airline)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, updated)
}

func (h *AirlineHandler) handleDelete(w http.ResponseWriter, r *http.Request) {
	id, ok := parseID(w, r)
	if !ok {
		return
	}

	if err := h.service.Delete(r.Context(), id); err != nil {
		writeError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// parseID extracts the {id} route parameter, writing a validation fault on
// non-numeric input.
func parseID(w http.ResponseWriter, r *http.Request) (uint, bool) {
	raw := chi.URLParam(r, "id")
	id, err := strconv.ParseUint(raw, 10, 32)
	if err != nil {
		writeError(w, apperror.Validation("invalid id"))
		return 0, false
	}
	return uint(id), true
}
