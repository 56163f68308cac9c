package server

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"medtime/internal/auth"
	"medtime/internal/ledger"
	"medtime/internal/repository/sqlite"
)

func newTestServer(t *testing.T) *Server {
	t.Helper()

	repo, err := sqlite.New(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { repo.Close() })

	log := zap.NewNop()
	store := ledger.New(context.Background(), repo, log)
	authService := auth.NewService(
		auth.NewMemoryDirectory(),
		auth.NewTokenIssuer("test-secret", time.Hour),
		log,
		0,
	)
	return New(store, authService, log)
}

func doJSON(t *testing.T, srv *Server, method, path, token string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()

	var reader *bytes.Reader
	if body != nil {
		data, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(data)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	w := httptest.NewRecorder()
	srv.Engine().ServeHTTP(w, req)
	return w
}

func loginToken(t *testing.T, srv *Server) string {
	t.Helper()

	w := doJSON(t, srv, http.MethodPost, "/api/v1/auth/login", "", map[string]string{
		"email":    "dr.smith@hospital.com",
		"password": "anything",
	})
	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Data struct {
			Token string `json:"token"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.NotEmpty(t, resp.Data.Token)
	return resp.Data.Token
}

func TestHealth(t *testing.T) {
	srv := newTestServer(t)

	w := doJSON(t, srv, http.MethodGet, "/health", "", nil)
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestLoginRejectsUnknownEmail(t *testing.T) {
	srv := newTestServer(t)

	w := doJSON(t, srv, http.MethodPost, "/api/v1/auth/login", "", map[string]string{
		"email":    "nobody@hospital.com",
		"password": "pw",
	})
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Body.String(), "Invalid credentials")
}

func TestLoginBindingError(t *testing.T) {
	srv := newTestServer(t)

	w := doJSON(t, srv, http.MethodPost, "/api/v1/auth/login", "", map[string]string{
		"email": "not-an-email",
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "email")
}

func TestEntriesRequireAuthentication(t *testing.T) {
	srv := newTestServer(t)

	w := doJSON(t, srv, http.MethodGet, "/api/v1/entries", "", nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	w = doJSON(t, srv, http.MethodGet, "/api/v1/entries", "garbage-token", nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestEntriesCRUD(t *testing.T) {
	srv := newTestServer(t)
	token := loginToken(t, srv)

	// seeded demo entry is present
	w := doJSON(t, srv, http.MethodGet, "/api/v1/entries", token, nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "mock-entry-1")

	// add an entry
	w = doJSON(t, srv, http.MethodPost, "/api/v1/entries", token, map[string]string{
		"date":    "2025-03-10",
		"timeIn":  "09:00",
		"timeOut": "17:00",
		"notes":   "ward round",
	})
	require.Equal(t, http.StatusCreated, w.Code)

	var created struct {
		Data struct {
			ID       string `json:"id"`
			Duration int    `json:"duration"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &created))
	assert.Equal(t, 480, created.Data.Duration)

	// patch it
	w = doJSON(t, srv, http.MethodPatch, "/api/v1/entries/"+created.Data.ID, token, map[string]string{
		"timeOut": "17:30",
	})
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"duration":510`)

	// unknown id is 404
	w = doJSON(t, srv, http.MethodPatch, "/api/v1/entries/no-such-id", token, map[string]string{
		"notes": "x",
	})
	assert.Equal(t, http.StatusNotFound, w.Code)

	// invalid patch is 400
	w = doJSON(t, srv, http.MethodPatch, "/api/v1/entries/"+created.Data.ID, token, map[string]string{
		"timeIn": "9am",
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	// delete it
	w = doJSON(t, srv, http.MethodDelete, "/api/v1/entries/"+created.Data.ID, token, nil)
	assert.Equal(t, http.StatusNoContent, w.Code)

	// delete all
	w = doJSON(t, srv, http.MethodDelete, "/api/v1/entries", token, nil)
	assert.Equal(t, http.StatusNoContent, w.Code)

	w = doJSON(t, srv, http.MethodGet, "/api/v1/entries", token, nil)
	assert.NotContains(t, w.Body.String(), "mock-entry-1")
}

func TestTimerEndpoints(t *testing.T) {
	srv := newTestServer(t)
	token := loginToken(t, srv)

	// nothing running initially
	w := doJSON(t, srv, http.MethodGet, "/api/v1/timer", token, nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"active":false`)

	// start
	w = doJSON(t, srv, http.MethodPost, "/api/v1/timer/start", token, nil)
	require.Equal(t, http.StatusCreated, w.Code)

	// second start conflicts
	w = doJSON(t, srv, http.MethodPost, "/api/v1/timer/start", token, nil)
	assert.Equal(t, http.StatusConflict, w.Code)
	assert.Contains(t, w.Body.String(), "already running")

	// stop with notes
	w = doJSON(t, srv, http.MethodPost, "/api/v1/timer/stop", token, map[string]string{
		"notes": "handover ran late",
	})
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "handover ran late")

	// timer is free again
	w = doJSON(t, srv, http.MethodPost, "/api/v1/timer/start", token, nil)
	assert.Equal(t, http.StatusCreated, w.Code)
}

func TestScheduleEndpoints(t *testing.T) {
	srv := newTestServer(t)
	token := loginToken(t, srv)

	w := doJSON(t, srv, http.MethodGet, "/api/v1/schedule", token, nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"regularHoursPerWeek":39`)

	w = doJSON(t, srv, http.MethodPut, "/api/v1/schedule", token, map[string]interface{}{
		"regularHoursPerWeek": 37.5,
	})
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"regularHoursPerWeek":37.5`)

	w = doJSON(t, srv, http.MethodPut, "/api/v1/schedule", token, map[string]interface{}{
		"defaultStartTime": "25:00",
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestWeekStats(t *testing.T) {
	srv := newTestServer(t)
	token := loginToken(t, srv)

	w := doJSON(t, srv, http.MethodGet, "/api/v1/stats/week?date=2025-03-12", token, nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"progress"`)
	assert.Contains(t, w.Body.String(), `"chart"`)

	w = doJSON(t, srv, http.MethodGet, "/api/v1/stats/week?date=bogus", token, nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestReportDownload(t *testing.T) {
	srv := newTestServer(t)
	token := loginToken(t, srv)

	w := doJSON(t, srv, http.MethodGet, "/api/v1/reports/2025-03", token, nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t,
		fmt.Sprintf("attachment; filename=%q", "MedTime-Report-2025-03.html"),
		w.Header().Get("Content-Disposition"))
	assert.Contains(t, w.Body.String(), "MedTime - Annual Time Report")

	w = doJSON(t, srv, http.MethodGet, "/api/v1/reports/bogus", token, nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestGroupEndpoints(t *testing.T) {
	srv := newTestServer(t)
	token := loginToken(t, srv)

	// create
	w := doJSON(t, srv, http.MethodPost, "/api/v1/groups", token, map[string]string{
		"name":       "Night Shift",
		"department": "Cardiology",
		"passcode":   "654321",
	})
	require.Equal(t, http.StatusCreated, w.Code)

	// joining the seeded group again conflicts
	w = doJSON(t, srv, http.MethodPost, "/api/v1/groups/group-1/join", token, map[string]string{
		"passcode": "123456",
	})
	assert.Equal(t, http.StatusConflict, w.Code)

	// leave the seeded group
	w = doJSON(t, srv, http.MethodPost, "/api/v1/groups/group-1/leave", token, nil)
	assert.Equal(t, http.StatusNoContent, w.Code)

	// rejoin with the wrong passcode
	w = doJSON(t, srv, http.MethodPost, "/api/v1/groups/group-1/join", token, map[string]string{
		"passcode": "000000",
	})
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	// delete the seeded group as its creator
	w = doJSON(t, srv, http.MethodDelete, "/api/v1/groups/group-1", token, nil)
	assert.Equal(t, http.StatusNoContent, w.Code)
}

func TestUpdateProfileEndpoint(t *testing.T) {
	srv := newTestServer(t)
	token := loginToken(t, srv)

	w := doJSON(t, srv, http.MethodPut, "/api/v1/profile", token, map[string]string{
		"name": "Dr. S. Smith",
	})
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Dr. S. Smith")
}
