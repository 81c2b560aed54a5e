package handler

import (
	"errors"
	"net/http"

	"github.com/rosterdesk/shift-planner/backend/internal/scheduling"
	"github.com/rosterdesk/shift-planner/backend/internal/store"
)

type shiftRequest struct {
	WorkerID int64  `json:"worker_id" validate:"required"`
	Start    string `json:"start" validate:"required"`
	End      string `json:"end" validate:"required"`
}

// validateShiftTimes runs the schema-level timestamp checks so that malformed
// shapes are rejected with 422 before any business logic runs. The service
// repeats these checks on its own.
func validateShiftTimes(req *shiftRequest) error {
	startUTC, err := scheduling.ParseTimestamp(req.Start)
	if err != nil {
		return err
	}
	endUTC, err := scheduling.ParseTimestamp(req.End)
	if err != nil {
		return err
	}

	return scheduling.ValidateInterval(startUTC, endUTC)
}

func (h *Handler) readShiftRequest(w http.ResponseWriter, r *http.Request) (*shiftRequest, bool) {
	var req shiftRequest

	if err := h.readJSON(r, &req); err != nil {
		h.unprocessable(w, r, err)
		return nil, false
	}
	if err := h.validate.Struct(req); err != nil {
		h.unprocessable(w, r, err)
		return nil, false
	}
	if err := validateShiftTimes(&req); err != nil {
		h.unprocessable(w, r, err)
		return nil, false
	}

	return &req, true
}

// shiftError maps service failures onto the API error taxonomy: business-rule
// violations are 400, anything else is a server fault. Not-found is handled
// by the callers because the resource name differs per endpoint.
func (h *Handler) shiftError(w http.ResponseWriter, r *http.Request, err error) {
	var parseErr *scheduling.ParseError

	switch {
	case errors.Is(err, scheduling.ErrWorkerNotFound), errors.Is(err, scheduling.ErrShiftOverlap):
		h.badRequest(w, r, err)
	case errors.Is(err, scheduling.ErrInvalidInterval), errors.Is(err, scheduling.ErrDurationExceeded), errors.As(err, &parseErr):
		h.unprocessable(w, r, err)
	default:
		h.internalServerError(w, r, err)
	}
}

func (h *Handler) GetAllShifts(w http.ResponseWriter, r *http.Request) {
	shifts, err := h.shifts.List(r.Context())
	if err != nil {
		h.internalServerError(w, r, err)
		return
	}

	h.writeJSON(w, r, http.StatusOK, shifts)
}

func (h *Handler) CreateShift(w http.ResponseWriter, r *http.Request) {
	req, ok := h.readShiftRequest(w, r)
	if !ok {
		return
	}

	shift, err := h.shifts.Create(r.Context(), req.WorkerID, req.Start, req.End)
	if err != nil {
		h.shiftError(w, r, err)
		return
	}

	h.writeJSON(w, r, http.StatusCreated, shift)
}

func (h *Handler) GetShift(w http.ResponseWriter, r *http.Request) {
	id, err := h.idParam(r)
	if err != nil {
		h.notFound(w, r, "Shift not found")
		return
	}

	shift, err := h.shifts.Get(r.Context(), id)
	if err != nil {
		switch {
		case errors.Is(err, store.ErrNotFound):
			h.notFound(w, r, "Shift not found")
		default:
			h.internalServerError(w, r, err)
		}
		return
	}

	h.writeJSON(w, r, http.StatusOK, shift)
}

func (h *Handler) UpdateShift(w http.ResponseWriter, r *http.Request) {
	id, err := h.idParam(r)
	if err != nil {
		h.notFound(w, r, "Shift not found")
		return
	}

	req, ok := h.readShiftRequest(w, r)
	if !ok {
		return
	}

	shift, err := h.shifts.Update(r.Context(), id, req.WorkerID, req.Start, req.End)
	if err != nil {
		switch {
		case errors.Is(err, store.ErrNotFound):
			h.notFound(w, r, "Shift not found")
		default:
			h.shiftError(w, r, err)
		}
		return
	}

	h.writeJSON(w, r, http.StatusOK, shift)
}

func (h *Handler) DeleteShift(w http.ResponseWriter, r *http.Request) {
	id, err := h.idParam(r)
	if err != nil {
		h.notFound(w, r, "Shift not found")
		return
	}

	if err := h.shifts.Delete(r.Context(), id); err != nil {
		switch {
		case errors.Is(err, store.ErrNotFound):
			h.notFound(w, r, "Shift not found")
		default:
			h.internalServerError(w, r, err)
		}
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
