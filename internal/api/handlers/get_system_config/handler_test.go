package get_system_config

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mkorchagin/bathhouse-booking/internal/service/sysconfig"
)

type stubService struct {
	values map[string]string
}

func (s *stubService) GetValue(_ context.Context, key string) (string, error) {
	if v, ok := s.values[key]; ok {
		return v, nil
	}
	return "", sysconfig.ErrConfigNotFound
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func doRequest(h *Handler, key string) *httptest.ResponseRecorder {
	r := httptest.NewRequest(http.MethodGet, "/api/v1/config/"+key, nil)
	r = mux.SetURLVars(r, map[string]string{"key": key})
	w := httptest.NewRecorder()
	h.Handle(w, r)
	return w
}

func TestHandle(t *testing.T) {
	h := NewHandler(&stubService{values: map[string]string{
		"PAYMENT_INSTRUCTION": "переведите на карту 1234",
	}}, nopLogger{})

	w := doRequest(h, "PAYMENT_INSTRUCTION")

	require.Equal(t, http.StatusOK, w.Code)
	var resp ConfigResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "PAYMENT_INSTRUCTION", resp.Key)
	assert.Equal(t, "переведите на карту 1234", resp.Value)
}

func TestHandle_KeyNotFound(t *testing.T) {
	h := NewHandler(&stubService{}, nopLogger{})

	w := doRequest(h, "UNKNOWN_KEY")

	assert.Equal(t, http.StatusNotFound, w.Code)
}
