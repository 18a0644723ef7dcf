package metrics

import (
	"strings"
	"testing"
	"time"
)

func TestHistogramBucketsAreCumulative(t *testing.T) {
	h := newHistogram([]float64{10, 100})
	h.Observe(5)
	h.Observe(50)
	h.Observe(500)

	snap := h.Snapshot()
	if snap.count != 3 || snap.sum != 555 {
		t.Fatalf("unexpected snapshot %+v", snap)
	}
	if snap.counts[0] != 1 || snap.counts[1] != 1 {
		t.Fatalf("expected one observation per bucket, got %v", snap.counts)
	}
}

func TestRenderIncludesTailorMetrics(t *testing.T) {
	IncTailorStarted()
	ObserveTailorDuration(1500 * time.Millisecond)

	out := Render()
	for _, want := range []string{
		"# TYPE tailor_started_total counter",
		"uploads_total ",
		"cover_letter_failed_total ",
		`tailor_duration_ms_bucket{le="2500"}`,
		`tailor_duration_ms_bucket{le="+Inf"}`,
	} {
		if !strings.Contains(out, want) {
			t.Fatalf("expected %q in output:\n%s", want, out)
		}
	}
}
