package auth

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/ferdiebergado/templat/internal/platform/jwt"
	"github.com/prometheus/client_golang/prometheus"
	dto "github.com/prometheus/client_model/go"
)

func counterValue(t *testing.T, c prometheus.Collector) float64 {
	t.Helper()

	metric, ok := c.(prometheus.Metric)
	if !ok {
		t.Fatalf("%T is not a prometheus.Metric", c)
	}

	m := &dto.Metric{}
	if err := metric.Write(m); err != nil {
		t.Fatalf("write counter metric: %v", err)
	}
	return m.GetCounter().GetValue()
}

func TestMetricsRegistered(t *testing.T) {
	recordVerification(verifierLocal, outcomeSuccess)
	remoteLatency.Observe(0.01)
	gateRejectionsTotal.Add(0)

	families, err := prometheus.DefaultGatherer.Gather()
	if err != nil {
		t.Fatalf("prometheus.DefaultGatherer.Gather() = %v, want: nil", err)
	}

	want := map[string]bool{
		"auth_verifications_total":    false,
		"auth_remote_latency_seconds": false,
		"auth_gate_rejections_total":  false,
	}
	for _, mf := range families {
		if _, ok := want[mf.GetName()]; ok {
			want[mf.GetName()] = true
		}
	}

	for name, found := range want {
		if !found {
			t.Errorf("metric %q not found in default registry", name)
		}
	}
}

func TestLocalVerifier_RecordsOutcome(t *testing.T) {
	rejected := verificationsTotal.WithLabelValues(verifierLocal, outcomeRejected)
	before := counterValue(t, rejected)

	signer := &jwt.StubSigner{
		VerifyFunc: func(_ string) (map[string]any, error) {
			return nil, jwt.ErrInvalidToken
		},
	}
	_, _ = NewLocalVerifier(signer).Verify(context.Background(), "token")

	if got := counterValue(t, rejected) - before; got != 1 {
		t.Errorf("rejected verifications delta = %v, want: %v", got, 1)
	}
}

func TestAuthorize_CountsRejections(t *testing.T) {
	before := counterValue(t, gateRejectionsTotal)

	req := httptest.NewRequest(http.MethodGet, "/users", nil)
	req = req.WithContext(NewContextWithIdentity(req.Context(), &Identity{ID: "1", Role: RoleGuest}))
	rec := httptest.NewRecorder()

	Authorize([]Role{RoleAdmin})(http.NotFoundHandler()).ServeHTTP(rec, req)

	if rec.Code != http.StatusForbidden {
		t.Fatalf("rec.Code = %d, want: %d", rec.Code, http.StatusForbidden)
	}
	if got := counterValue(t, gateRejectionsTotal) - before; got != 1 {
		t.Errorf("gate rejections delta = %v, want: %v", got, 1)
	}
}
