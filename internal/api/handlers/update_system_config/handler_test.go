package update_system_config

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mkorchagin/bathhouse-booking/internal/service/sysconfig"
)

type stubService struct {
	values map[string]string
}

func (s *stubService) SetValue(_ context.Context, key, value string) error {
	if strings.TrimSpace(value) == "" {
		return sysconfig.ErrInvalidInput
	}
	if _, ok := s.values[key]; !ok {
		return sysconfig.ErrConfigNotFound
	}
	s.values[key] = value
	return nil
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func doRequest(h *Handler, key, body string) *httptest.ResponseRecorder {
	r := httptest.NewRequest(http.MethodPut, "/api/v1/config/"+key, strings.NewReader(body))
	r = mux.SetURLVars(r, map[string]string{"key": key})
	w := httptest.NewRecorder()
	h.Handle(w, r)
	return w
}

func TestHandle(t *testing.T) {
	svc := &stubService{values: map[string]string{"OPEN_HOUR": "9"}}
	h := NewHandler(svc, nopLogger{})

	w := doRequest(h, "OPEN_HOUR", `{"value": "10"}`)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "10", svc.values["OPEN_HOUR"])
}

func TestHandle_KeyNotFound(t *testing.T) {
	h := NewHandler(&stubService{}, nopLogger{})

	w := doRequest(h, "UNKNOWN_KEY", `{"value": "1"}`)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestHandle_InvalidBody(t *testing.T) {
	svc := &stubService{values: map[string]string{"OPEN_HOUR": "9"}}
	h := NewHandler(svc, nopLogger{})

	w := doRequest(h, "OPEN_HOUR", `не json`)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "9", svc.values["OPEN_HOUR"])
}

func TestHandle_EmptyValue(t *testing.T) {
	svc := &stubService{values: map[string]string{"OPEN_HOUR": "9"}}
	h := NewHandler(svc, nopLogger{})

	w := doRequest(h, "OPEN_HOUR", `{"value": ""}`)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "9", svc.values["OPEN_HOUR"])
}
