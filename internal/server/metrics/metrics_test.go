package metrics

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aka-Steam/REST-vs-RPC-benchmark/internal/common"
)

// counterValue reads glossary_operations_total for one label set.
func counterValue(t *testing.T, reg *prometheus.Registry, transport, operation, outcome string) float64 {
	t.Helper()
	families, err := reg.Gather()
	require.NoError(t, err)
	for _, mf := range families {
		if mf.GetName() != "glossary_operations_total" {
			continue
		}
		for _, m := range mf.GetMetric() {
			labels := map[string]string{}
			for _, lp := range m.GetLabel() {
				labels[lp.GetName()] = lp.GetValue()
			}
			if labels["transport"] == transport && labels["operation"] == operation && labels["outcome"] == outcome {
				return m.GetCounter().GetValue()
			}
		}
	}
	return 0
}

func TestObserve_CountsPerOutcome(t *testing.T) {
	r := New()

	r.Observe(TransportHTTP, "create", common.OutcomeOK, time.Millisecond)
	r.Observe(TransportHTTP, "create", common.OutcomeAlreadyExists, time.Millisecond)
	r.Observe(TransportHTTP, "create", common.OutcomeAlreadyExists, time.Millisecond)
	r.Observe(TransportGRPC, "create", common.OutcomeAlreadyExists, time.Millisecond)

	assert.Equal(t, 1.0, counterValue(t, r.Registry(), "http", "create", "ok"))
	assert.Equal(t, 2.0, counterValue(t, r.Registry(), "http", "create", "already_exists"))
	assert.Equal(t, 1.0, counterValue(t, r.Registry(), "grpc", "create", "already_exists"))
	assert.Equal(t, 0.0, counterValue(t, r.Registry(), "grpc", "delete", "ok"))
}

func TestHandler_Exposition(t *testing.T) {
	r := New()
	r.Observe(TransportGRPC, "list", common.OutcomeOK, 5*time.Millisecond)

	rec := httptest.NewRecorder()
	r.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	body := rec.Body.String()
	assert.Contains(t, body, `glossary_operations_total{operation="list",outcome="ok",transport="grpc"} 1`)
	assert.Contains(t, body, "glossary_operation_duration_seconds_bucket")
	assert.Contains(t, body, "go_goroutines")
}

func TestNew_IndependentRegistries(t *testing.T) {
	a, b := New(), New()
	a.Observe(TransportHTTP, "get", common.OutcomeNotFound, 0)
	assert.Equal(t, 0.0, counterValue(t, b.Registry(), "http", "get", "not_found"))
}
