package metrics

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
)

func TestCollectors(t *testing.T) {
	before := testutil.ToFloat64(Recounts.WithLabelValues("room_occupancy"))
	Recounts.WithLabelValues("room_occupancy").Inc()
	if got := testutil.ToFloat64(Recounts.WithLabelValues("room_occupancy")); got != before+1 {
		t.Errorf("expected %v, got %v", before+1, got)
	}

	LowStockFeeds.Set(3)
	if got := testutil.ToFloat64(LowStockFeeds); got != 3 {
		t.Errorf("expected 3, got %v", got)
	}
}

func TestHandler(t *testing.T) {
	FeedConsumed.WithLabelValues("pellet", "kg").Add(2.5)

	rec := httptest.NewRecorder()
	Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "farmledger_feed_consumed_quantity_total") {
		t.Error("expected feed consumption metric in output")
	}
}
