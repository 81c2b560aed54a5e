package handler

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetTimezone_Default(t *testing.T) {
	h := newTestHandler(t)

	rr := doJSON(t, h, http.MethodGet, "/settings/timezone", nil)
	require.Equal(t, http.StatusOK, rr.Code)

	body := decodeBody(t, rr)
	assert.Equal(t, "UTC", body["timezone"])
	assert.Contains(t, body, "currentLocalTime")
	assert.Contains(t, body, "currentUtcOffset")
	assert.Contains(t, body, "standardUtcOffset")
	assert.Contains(t, body, "hasDayLightSaving")
	assert.Contains(t, body, "isDayLightSavingActive")
}

func TestUpdateTimezone(t *testing.T) {
	h := newTestHandler(t)

	rr := doJSON(t, h, http.MethodPut, "/settings/timezone", map[string]any{"timezone": "Europe/London"})
	require.Equal(t, http.StatusOK, rr.Code)

	body := decodeBody(t, rr)
	assert.Equal(t, "Europe/London", body["timezone"])
	assert.Contains(t, body, "currentLocalTime")
	assert.Contains(t, body, "currentUtcOffset")
}

func TestUpdateTimezone_Invalid(t *testing.T) {
	h := newTestHandler(t)

	rr := doJSON(t, h, http.MethodPut, "/settings/timezone", map[string]any{"timezone": "Invalid/Zone"})
	assert.Equal(t, http.StatusBadRequest, rr.Code)
	assert.Contains(t, decodeBody(t, rr)["detail"], "Invalid timezone identifier")
}

func TestUpdateTimezone_MissingField(t *testing.T) {
	h := newTestHandler(t)

	rr := doJSON(t, h, http.MethodPut, "/settings/timezone", map[string]any{})
	assert.Equal(t, http.StatusUnprocessableEntity, rr.Code)
}

func TestGetTimezone_AfterUpdate(t *testing.T) {
	h := newTestHandler(t)

	rr := doJSON(t, h, http.MethodPut, "/settings/timezone", map[string]any{"timezone": "America/New_York"})
	require.Equal(t, http.StatusOK, rr.Code)

	rr = doJSON(t, h, http.MethodGet, "/settings/timezone", nil)
	require.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, "America/New_York", decodeBody(t, rr)["timezone"])
}

func TestUpdateTimezone_InvalidLeavesStoredValue(t *testing.T) {
	h := newTestHandler(t)

	rr := doJSON(t, h, http.MethodPut, "/settings/timezone", map[string]any{"timezone": "America/New_York"})
	require.Equal(t, http.StatusOK, rr.Code)

	rr = doJSON(t, h, http.MethodPut, "/settings/timezone", map[string]any{"timezone": "Invalid/Zone"})
	require.Equal(t, http.StatusBadRequest, rr.Code)

	rr = doJSON(t, h, http.MethodGet, "/settings/timezone", nil)
	require.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, "America/New_York", decodeBody(t, rr)["timezone"])
}

func TestGetAvailableTimezones(t *testing.T) {
	h := newTestHandler(t)

	rr := doJSON(t, h, http.MethodGet, "/settings/timezones", nil)
	require.Equal(t, http.StatusOK, rr.Code)

	zones := decodeList(t, rr)
	require.NotEmpty(t, zones)
	assert.Contains(t, zones, "UTC")
}

// A shift created in one display timezone must reformat, not move, when the
// display timezone changes.
func TestTimezoneChange_ReformatsShifts(t *testing.T) {
	h := newTestHandler(t)
	workerID := createTestWorker(t, h, "John Doe")

	rr := doJSON(t, h, http.MethodPost, "/shifts", shiftBody(workerID, "2024-02-10T14:00:00Z", "2024-02-10T22:00:00Z"))
	require.Equal(t, http.StatusCreated, rr.Code)
	assert.Equal(t, "2024-02-10T14:00:00+00:00", decodeBody(t, rr)["start"])

	rr = doJSON(t, h, http.MethodPut, "/settings/timezone", map[string]any{"timezone": "America/New_York"})
	require.Equal(t, http.StatusOK, rr.Code)

	rr = doJSON(t, h, http.MethodGet, "/shifts", nil)
	require.Equal(t, http.StatusOK, rr.Code)

	shifts := decodeList(t, rr)
	require.Len(t, shifts, 1)
	shift := shifts[0].(map[string]any)
	assert.Equal(t, "2024-02-10T09:00:00-05:00", shift["start"])
	assert.Equal(t, "2024-02-10T17:00:00-05:00", shift["end"])
	assert.Equal(t, 8.0, shift["duration_hours"])
}
