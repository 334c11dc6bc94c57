package telemetry

import (
	"net/http/httptest"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewMetricsIndependentRegistries(t *testing.T) {
	m1, reg1 := NewMetrics()
	_, reg2 := NewMetrics()

	m1.WindowsEmitted.Inc()
	m1.MatcherHits.Add(3)

	assert.Equal(t, float64(1), testutil.ToFloat64(m1.WindowsEmitted))
	assert.Equal(t, float64(3), testutil.ToFloat64(m1.MatcherHits))
	assert.NotSame(t, reg1, reg2)
}

func TestHandlerServesPrometheusFormat(t *testing.T) {
	m, reg := NewMetrics()
	m.WindowsEmitted.Inc()

	req := httptest.NewRequest("GET", "/metrics", nil)
	rec := httptest.NewRecorder()
	Handler(reg).ServeHTTP(rec, req)

	require.Equal(t, 200, rec.Code)
	assert.Contains(t, rec.Body.String(), "jst_windows_emitted_total 1")
}
