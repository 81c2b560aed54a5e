package handler

import (
	"net/http"
)

const apiVersion = "0.1.0"

func (h *Handler) Root(w http.ResponseWriter, r *http.Request) {
	h.writeJSON(w, r, http.StatusOK, map[string]string{
		"message": "Welcome to Shift Planner API",
		"status":  "running",
		"version": apiVersion,
	})
}

func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	h.writeJSON(w, r, http.StatusOK, map[string]string{"status": "healthy"})
}
