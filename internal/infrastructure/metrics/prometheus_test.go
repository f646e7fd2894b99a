package metrics_test

import (
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/schlosser-auth/internal/infrastructure/metrics"
)

func TestNew_DeshabilitadoDevuelveNoop(t *testing.T) {
	_, ok := metrics.New(false).(*metrics.Noop)
	assert.True(t, ok)

	_, ok = metrics.New(true).(*metrics.Prometheus)
	assert.True(t, ok)
}

func TestPrometheus_CuentaLoginsPorResultado(t *testing.T) {
	p := metrics.NewPrometheus()

	p.RecordLogin("success", 10*time.Millisecond)
	p.RecordLogin("NotFound", 5*time.Millisecond)
	p.RecordLogin("NotFound", 5*time.Millisecond)

	expected := `
# HELP auth_login_attempts_total Intentos de login por resultado
# TYPE auth_login_attempts_total counter
auth_login_attempts_total{result="NotFound"} 2
auth_login_attempts_total{result="success"} 1
`
	require.NoError(t, testutil.GatherAndCompare(p.Registry(), strings.NewReader(expected), "auth_login_attempts_total"))
}

func TestPrometheus_Handler(t *testing.T) {
	p := metrics.NewPrometheus()
	p.RecordRowFetch("xlsx", false, time.Second)
	p.RecordHTTPRequest(http.MethodPost, "/api/auth", 401, time.Millisecond)

	rec := httptest.NewRecorder()
	p.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	body, err := io.ReadAll(rec.Body)
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, string(body), `auth_user_store_fetch_total{result="error",source="xlsx"} 1`)
	assert.Contains(t, string(body), `http_requests_total{method="POST",route="/api/auth",status="401"} 1`)
}
