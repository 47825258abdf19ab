package telemetry

import (
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMetrics(t *testing.T) {
	m := NewMetrics()
	m.ObserveRequest(http.MethodGet, "/api/Products", 200, 10*time.Millisecond)
	m.ObserveRequest(http.MethodGet, "/api/Products", 200, 5*time.Millisecond)
	m.TrackRateLimited()
	m.SetRecords("products", 12)

	srv := httptest.NewServer(m.Handler())
	defer srv.Close()

	resp, err := http.Get(srv.URL)
	require.NoError(t, err)
	defer resp.Body.Close()
	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.Contains(t, string(body), `stockr_http_requests_total{code="200",method="GET",route="/api/Products"} 2`)
	assert.Contains(t, string(body), "stockr_http_rate_limited_total 1")
	assert.Contains(t, string(body), `stockr_store_records{collection="products"} 12`)
}
