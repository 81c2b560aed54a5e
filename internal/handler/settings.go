package handler

import (
	"errors"
	"net/http"
	"time"

	"github.com/rosterdesk/shift-planner/backend/internal/timezone"
)

func (h *Handler) GetTimezone(w http.ResponseWriter, r *http.Request) {
	id, err := h.repository.GetTimezone(r.Context())
	if err != nil {
		h.internalServerError(w, r, err)
		return
	}

	info, err := h.timezones.Info(id, time.Now())
	if err != nil {
		h.internalServerError(w, r, err)
		return
	}

	h.writeJSON(w, r, http.StatusOK, info)
}

func (h *Handler) UpdateTimezone(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Timezone string `json:"timezone" validate:"required"`
	}

	if err := h.readJSON(r, &req); err != nil {
		h.unprocessable(w, r, err)
		return
	}
	if err := h.validate.Struct(req); err != nil {
		h.unprocessable(w, r, err)
		return
	}

	id, err := h.repository.SetTimezone(r.Context(), req.Timezone)
	if err != nil {
		switch {
		case errors.Is(err, timezone.ErrUnknownZone):
			h.badRequest(w, r, err)
		default:
			h.internalServerError(w, r, err)
		}
		return
	}

	info, err := h.timezones.Info(id, time.Now())
	if err != nil {
		h.internalServerError(w, r, err)
		return
	}

	h.writeJSON(w, r, http.StatusOK, info)
}

func (h *Handler) GetAvailableTimezones(w http.ResponseWriter, r *http.Request) {
	h.writeJSON(w, r, http.StatusOK, h.timezones.Available())
}
