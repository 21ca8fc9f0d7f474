package targethttp

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/salespulse/salespulse/internal/auth"
	"github.com/salespulse/salespulse/internal/platform/httpx"
	"github.com/salespulse/salespulse/internal/targets"
)

type mockService struct {
	cfg       targets.Config
	getErr    error
	updateErr error
	updates   []map[string]any
}

func (m *mockService) Get(ctx context.Context) (targets.Config, error) {
	return m.cfg, m.getErr
}

func (m *mockService) Update(ctx context.Context, input map[string]any) error {
	if m.updateErr != nil {
		return m.updateErr
	}
	m.updates = append(m.updates, input)
	return nil
}

func newTestRouter(svc TargetService) http.Handler {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	handler := NewHandler(logger, svc, auth.NewAllowlistPolicy([]string{"admin@salespulse.io"}))
	r := chi.NewRouter()
	handler.MountRoutes(r)
	return r
}

func doRequest(t *testing.T, h http.Handler, method, path, body, email string) (*httptest.ResponseRecorder, httpx.Envelope) {
	t.Helper()
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	if email != "" {
		req.Header.Set("X-User-Email", email)
	}
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	var envelope httpx.Envelope
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &envelope))
	return rec, envelope
}

func TestGetTargetsSuccess(t *testing.T) {
	svc := &mockService{cfg: targets.Config{MonthlyRevenue: 50000, TargetDeals: 12}}
	router := newTestRouter(svc)

	rec, envelope := doRequest(t, router, http.MethodGet, "/targets", "", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.True(t, envelope.Success)

	data, ok := envelope.Data.(map[string]any)
	require.True(t, ok)
	assert.Equal(t, 50000.0, data["monthlyRevenue"])
	assert.Equal(t, 12.0, data["targetDeals"])
}

func TestGetTargetsFailure(t *testing.T) {
	svc := &mockService{getErr: errors.New("pool closed")}
	router := newTestRouter(svc)

	rec, envelope := doRequest(t, router, http.MethodGet, "/targets", "", "")
	require.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.False(t, envelope.Success)
	assert.Equal(t, "Failed to fetch targets", envelope.Error)
}

func TestUpdateTargetsRequiresAdmin(t *testing.T) {
	svc := &mockService{}
	router := newTestRouter(svc)

	rec, envelope := doRequest(t, router, http.MethodPut, "/targets", `{"monthlyRevenue":5000}`, "intruder@example.com")
	require.Equal(t, http.StatusForbidden, rec.Code)
	assert.False(t, envelope.Success)
	assert.Empty(t, svc.updates)
}

func TestUpdateTargetsSuccess(t *testing.T) {
	svc := &mockService{}
	router := newTestRouter(svc)

	rec, envelope := doRequest(t, router, http.MethodPut, "/targets", `{"monthlyRevenue":5000}`, "admin@salespulse.io")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.True(t, envelope.Success)
	assert.Equal(t, "Targets updated successfully", envelope.Message)
	require.Len(t, svc.updates, 1)
	assert.Equal(t, 5000.0, svc.updates[0]["monthlyRevenue"])
}

func TestUpdateTargetsNoValidFields(t *testing.T) {
	svc := &mockService{updateErr: targets.ErrNoValidFields}
	router := newTestRouter(svc)

	rec, envelope := doRequest(t, router, http.MethodPut, "/targets", `{"bogus":1}`, "admin@salespulse.io")
	require.Equal(t, http.StatusBadRequest, rec.Code)
	assert.False(t, envelope.Success)
	assert.Equal(t, "No valid target fields provided", envelope.Error)
}

func TestUpdateTargetsPersistenceFailure(t *testing.T) {
	svc := &mockService{updateErr: errors.New("write denied")}
	router := newTestRouter(svc)

	rec, envelope := doRequest(t, router, http.MethodPut, "/targets", `{"monthlyRevenue":5000}`, "admin@salespulse.io")
	require.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.False(t, envelope.Success)
	assert.Equal(t, "Failed to update targets", envelope.Error)
}

func TestUpdateTargetsMalformedBody(t *testing.T) {
	svc := &mockService{}
	router := newTestRouter(svc)

	rec, envelope := doRequest(t, router, http.MethodPut, "/targets", `{"monthlyRevenue":`, "admin@salespulse.io")
	require.Equal(t, http.StatusBadRequest, rec.Code)
	assert.False(t, envelope.Success)
	assert.Empty(t, svc.updates)
}
