package geo_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"shiptrack/internal/adapters/out/geo"
	"shiptrack/internal/core/domain/model/kernel"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHTTPLocationOracle_RequestLocation(t *testing.T) {
	requestID := kernel.NewUUID()
	orderID := kernel.NewUUID()

	var received map[string]string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/locations", r.URL.Path)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
		require.NoError(t, json.NewDecoder(r.Body).Decode(&received))
		w.WriteHeader(http.StatusAccepted)
	}))
	defer server.Close()

	oracle := geo.NewHTTPLocationOracle(server.URL)
	err := oracle.RequestLocation(t.Context(), requestID, orderID)
	require.NoError(t, err)

	assert.Equal(t, requestID.String(), received["request_id"])
	assert.Equal(t, orderID.String(), received["order_id"])
}

func TestHTTPLocationOracle_RequestLocation_Rejected(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer server.Close()

	oracle := geo.NewHTTPLocationOracle(server.URL)
	err := oracle.RequestLocation(t.Context(), kernel.NewUUID(), kernel.NewUUID())
	require.Error(t, err)
}

func TestHTTPLocationOracle_RequestLocation_Unreachable(t *testing.T) {
	oracle := geo.NewHTTPLocationOracle("http://127.0.0.1:1")
	err := oracle.RequestLocation(t.Context(), kernel.NewUUID(), kernel.NewUUID())
	require.Error(t, err)
}
