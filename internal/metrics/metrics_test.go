package metrics

import (
	"net/http"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
)

func TestObserveCheck(t *testing.T) {
	before := testutil.ToFloat64(checksTotal.WithLabelValues("Fair"))

	ObserveCheck("Fair")
	ObserveCheck("Fair")

	if got := testutil.ToFloat64(checksTotal.WithLabelValues("Fair")) - before; got != 2 {
		t.Errorf("checks_total{strength=Fair} delta = %v, want 2", got)
	}
}

func TestObserveGenerated(t *testing.T) {
	before := testutil.ToFloat64(generatedTotal)

	ObserveGenerated()

	if got := testutil.ToFloat64(generatedTotal) - before; got != 1 {
		t.Errorf("passwords_generated_total delta = %v, want 1", got)
	}
}

func TestObserveRequest(t *testing.T) {
	counter := requestsTotal.WithLabelValues(http.MethodPost, "/api/check", "400")
	before := testutil.ToFloat64(counter)

	ObserveRequest(http.MethodPost, "/api/check", http.StatusBadRequest, 3*time.Millisecond)

	if got := testutil.ToFloat64(counter) - before; got != 1 {
		t.Errorf("requests_total delta = %v, want 1", got)
	}
	if n := testutil.CollectAndCount(requestDuration); n == 0 {
		t.Error("request_duration_seconds has no series after ObserveRequest")
	}
}
