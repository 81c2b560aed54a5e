package handler

import (
	"bytes"
	"encoding/json"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/rosterdesk/shift-planner/backend/internal/config"
	"github.com/rosterdesk/shift-planner/backend/internal/repository"
	"github.com/rosterdesk/shift-planner/backend/internal/scheduling"
	"github.com/rosterdesk/shift-planner/backend/internal/store"
	"github.com/rosterdesk/shift-planner/backend/internal/timezone"

	_ "time/tzdata"
)

func newTestHandler(t *testing.T) *Handler {
	t.Helper()

	timezones := timezone.NewCatalog()
	cfg := &config.Config{}
	repo := repository.NewRepository(cfg, store.NewMemory(), timezones)
	shifts := scheduling.NewService(repo)

	h, err := NewHandler(cfg, repo, shifts, timezones)
	require.NoError(t, err)
	h.RegisterRoutes()

	return h
}

func doJSON(t *testing.T, h *Handler, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}

	req := httptest.NewRequest(method, path, &buf)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	rr := httptest.NewRecorder()
	h.Mux.ServeHTTP(rr, req)

	return rr
}

func doRaw(t *testing.T, h *Handler, method, path string, body []byte) *httptest.ResponseRecorder {
	t.Helper()

	req := httptest.NewRequest(method, path, bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")

	rr := httptest.NewRecorder()
	h.Mux.ServeHTTP(rr, req)

	return rr
}

func decodeBody(t *testing.T, rr *httptest.ResponseRecorder) map[string]any {
	t.Helper()

	body := map[string]any{}
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &body))
	return body
}

func decodeList(t *testing.T, rr *httptest.ResponseRecorder) []any {
	t.Helper()

	var body []any
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &body))
	return body
}
