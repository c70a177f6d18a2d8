package rest

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"airport-registry-service/internal/domain/entity"
	"airport-registry-service/internal/usecase"
	"airport-registry-service/pkg/apperror"
	"airport-registry-service/pkg/logger"
)

// PilotHandler wires pilot endpoints to the pilot service.
type PilotHandler struct {
	service *usecase.PilotService
	logger  logger.Logger
}

// NewPilotHandler constructs a pilot handler.
func NewPilotHandler(service *usecase.PilotService, logger logger.Logger) *PilotHandler {
	return &PilotHandler{
		service: service,
		logger:  logger,
	}
}

// Register mounts pilot endpoints on the router.
func (h *PilotHandler) Register(r chi.Router) {
	r.Route("/pilots", func(r chi.Router) {
		r.Get("/", h.handleList)
		r.Post("/", h.handleCreate)
		r.Get("/personal-id/{personalID}", h.handleGetByPersonalID)
		r.Get("/registration/{registration}", h.handleGetByRegistration)
		r.Put("/{id}", h.handleUpdate)
		r.Delete("/{id}", h.handleDelete)
	})
}

func (h *PilotHandler) handleList(w http.ResponseWriter, r *http.Request) {
	pilots, err := h.service.List(r.Context())
	if err != nil {
		h.logger.Error("Failed to list pilots", "error", err)
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, pilots)
}

func (h *PilotHandler) handleCreate(w http.ResponseWriter, r *http.Request) {
	var pilot entity.Pilot
	if !decodeJSON(w, r, &pilot) {
		return
	}
	if pilot.Status != "" && !pilot.Status.Valid() {
		writeError(w, apperror.Validation("invalid pilot status"))
		return
	}

	created, err := h.service.Create(r.Context(), &pilot)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, created)
}

func (h *PilotHandler) handleGetByPersonalID(w http.ResponseWriter, r *http.Request) {
	pilot, err := h.service.GetByPersonalID(r.Context(), chi.URLParam(r, "personalID"))
	if err != nil {
		writeError(w, err)
		return
	}
	// A miss is an empty body, not a fault.
	writeJSON(w, http.StatusOK, pilot)
}

func (h *PilotHandler) handleGetByRegistration(w http.ResponseWriter, r *http.Request) {
	pilot, err := h.service.GetByRegistrationNumber(r.Context(), chi.URLParam(r, "registration"))
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, pilot)
}

func (h *PilotHandler) handleUpdate(w http.ResponseWriter, r *http.Request) {
	id, ok := parseID(w, r)
	if !ok {
		return
	}

	var pilot entity.Pilot
	if !decodeJSON(w, r, &pilot) {
		return
	}
	if !pilot.Status.Valid() {
		writeError(w, apperror.Validation("invalid pilot status"))
		return
	}

	updated, err := h.service.Update(r.Context(), id, &pilot)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, updated)
}

func (h *PilotHandler) handleDelete(w http.ResponseWriter, r *http.Request) {
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
