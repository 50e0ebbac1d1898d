package metrics

import (
	"net/http"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/require"
)

func TestRecordOutcome(t *testing.T) {
	before := testutil.ToFloat64(Recommendations.WithLabelValues("scored", "success"))
	RecordOutcome("scored", "success")
	RecordOutcome("scored", "success")
	after := testutil.ToFloat64(Recommendations.WithLabelValues("scored", "success"))
	require.Equal(t, before+2, after)
}

func TestObserveHTTPUnmatchedRoute(t *testing.T) {
	ObserveHTTP(http.MethodGet, "", http.StatusNotFound, 3*time.Millisecond)
	require.GreaterOrEqual(t, testutil.CollectAndCount(HTTPRequestDuration), 1)
}
