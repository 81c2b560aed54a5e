package handler

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/rosterdesk/shift-planner/backend/internal/store"
)

func (h *Handler) idParam(r *http.Request) (int64, error) {
	return strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
}

func (h *Handler) GetAllWorkers(w http.ResponseWriter, r *http.Request) {
	workers, err := h.repository.GetAllWorkers(r.Context())
	if err != nil {
		h.internalServerError(w, r, err)
		return
	}

	h.writeJSON(w, r, http.StatusOK, workers)
}

func (h *Handler) CreateWorker(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Name string `json:"name" validate:"required,notblank"`
	}

	if err := h.readJSON(r, &req); err != nil {
		h.unprocessable(w, r, err)
		return
	}
	if err := h.validate.Struct(req); err != nil {
		h.unprocessable(w, r, err)
		return
	}

	worker, err := h.repository.CreateWorker(r.Context(), req.Name)
	if err != nil {
		h.internalServerError(w, r, err)
		return
	}

	h.writeJSON(w, r, http.StatusCreated, worker)
}

func (h *Handler) GetWorker(w http.ResponseWriter, r *http.Request) {
	id, err := h.idParam(r)
	if err != nil {
		h.notFound(w, r, "Worker not found")
		return
	}

	worker, err := h.repository.GetWorker(r.Context(), id)
	if err != nil {
		switch {
		case errors.Is(err, store.ErrNotFound):
			h.notFound(w, r, "Worker not found")
		default:
			h.internalServerError(w, r, err)
		}
		return
	}

	h.writeJSON(w, r, http.StatusOK, worker)
}

func (h *Handler) UpdateWorker(w http.ResponseWriter, r *http.Request) {
	id, err := h.idParam(r)
	if err != nil {
		h.notFound(w, r, "Worker not found")
		return
	}

	var req struct {
		Name string `json:"name" validate:"required,notblank"`
	}

	if err := h.readJSON(r, &req); err != nil {
		h.unprocessable(w, r, err)
		return
	}
	if err := h.validate.Struct(req); err != nil {
		h.unprocessable(w, r, err)
		return
	}

	worker, err := h.repository.UpdateWorker(r.Context(), id, req.Name)
	if err != nil {
		switch {
		case errors.Is(err, store.ErrNotFound):
			h.notFound(w, r, "Worker not found")
		default:
			h.internalServerError(w, r, err)
		}
		return
	}

	h.writeJSON(w, r, http.StatusOK, worker)
}

func (h *Handler) DeleteWorker(w http.ResponseWriter, r *http.Request) {
	id, err := h.idParam(r)
	if err != nil {
		h.notFound(w, r, "Worker not found")
		return
	}

	if err := h.repository.DeleteWorker(r.Context(), id); err != nil {
		switch {
		case errors.Is(err, store.ErrNotFound):
			h.notFound(w, r, "Worker not found")
		default:
			h.internalServerError(w, r, err)
		}
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
