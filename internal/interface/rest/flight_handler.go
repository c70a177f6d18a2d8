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

// FlightHandler wires flight endpoints to the flight service.
type FlightHandler struct {
	service *usecase.FlightService
	logger  logger.Logger
}

// NewFlightHandler constructs a flight handler.
func NewFlightHandler(service *usecase.FlightService, logger logger.Logger) *FlightHandler {
	return &FlightHandler{
		service: service,
		logger:  logger,
	}
}

// Register mounts flight endpoints on the router.
func (h *FlightHandler) Register(r chi.Router) {
	r.Route("/flights", func(r chi.Router) {
		r.Get("/", h.handleList)
		r.Post("/", h.handleCreate)
		r.Get("/{id}", h.handleGet)
		r.Put("/{id}", h.handleUpdate)
		r.Put("/{id}/start", h.handleStart)
		r.Put("/{id}/cancel", h.handleCancel)
		r.Delete("/{id}", h.handleDelete)
		r.Get("/status/{status}", h.handleListByStatus)
		r.Get("/pilot/{pilotID}", h.handleListByPilot)
		r.Get("/airline/{airlineID}", h.handleListByAirline)
		r.Get("/origin/{code}", h.handleListByOrigin)
		r.Get("/destination/{code}", h.handleListByDestination)
	})
}

func (h *FlightHandler) handleList(w http.ResponseWriter, r *http.Request) {
	flights, err := h.service.List(r.Context())
	if err != nil {
		h.logger.Error("Failed to list flights", "error", err)
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, flights)
}

func (h *FlightHandler) handleCreate(w http.ResponseWriter, r *http.Request) {
	var flight entity.Flight
	if !decodeJSON(w, r, &flight) {
		return
	}

	created, err := h.service.Create(r.Context(), &flight)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, created)
}

func (h *FlightHandler) handleGet(w http.ResponseWriter, r *http.Request) {
	id, ok := parseID(w, r)
	if !ok {
		return
	}

	flight, err := h.service.GetByID(r.Context(), id)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, flight)
}

func (h *FlightHandler) handleUpdate(w http.ResponseWriter, r *http.Request) {
	id, ok := parseID(w, r)
	if !ok {
		return
	}

	var flight entity.Flight
	if !decodeJSON(w, r, &flight) {
		return
	}
	if !flight.Status.Valid() {
		writeError(w, apperror.Validation("invalid flight status"))
		return
	}

	updated, err := h.service.Update(r.Context(), id, &flight)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, updated)
}

func (h *FlightHandler) handleStart(w http.ResponseWriter, r *http.Request) {
	id, ok := parseID(w, r)
	if !ok {
		return
	}

	started, err := h.service.Start(r.Context(), id)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, started)
}

func (h *FlightHandler) handleCancel(w http.ResponseWriter, r *http.Request) {
	id, ok := parseID(w, r)
	if !ok {
		return
	}

	reason := r.URL.Query().Get("reason")

	cancelled, err := h.service.Cancel(r.Context(), id, reason)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, cancelled)
}

func (h *FlightHandler) handleDelete(w http.ResponseWriter, r *http.Request) {
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

func (h *FlightHandler) handleListByStatus(w http.ResponseWriter, r *http.Request) {
	status := entity.FlightStatus(chi.URLParam(r, "status"))

	flights, err := h.service.ListByStatus(r.Context(), status)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, flights)
}

func (h *FlightHandler) handleListByPilot(w http.ResponseWriter, r *http.Request) {
	pilotID, err := strconv.ParseUint(chi.URLParam(r, "pilotID"), 10, 32)
	if err != nil {
		writeError(w, apperror.Validation("invalid pilot id"))
		return
	}

	flights, err := h.service.ListByPilot(r.Context(), uint(pilotID))
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, flights)
}

func (h *FlightHandler) handleListByAirline(w http.ResponseWriter, r *http.Request) {
	airlineID, err := strconv.ParseUint(chi.URLParam(r, "airlineID"), 10, 32)
	if err != nil {
		writeError(w, apperror.Validation("invalid airline id"))
		return
	}

	flights, err := h.service.ListByAirline(r.Context(), uint(airlineID))
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, flights)
}

func (h *FlightHandler) handleListByOrigin(w http.ResponseWriter, r *http.Request) {
	flights, err := h.service.ListByOrigin(r.Context(), chi.URLParam(r, "code"))
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, flights)
}

func (h *FlightHandler) handleListByDestination(w http.ResponseWriter, r *http.Request) {
	flights, err := h.service.ListByDestination(r.Context(), chi.URLParam(r, "code"))
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, flights)
}
