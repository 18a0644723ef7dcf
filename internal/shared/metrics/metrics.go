package metrics

import (
	"bytes"
	"fmt"
	"net/http"
	"strconv"
	"sync"
	"sync/atomic"
	"time"

	"github.com/gin-gonic/gin"
)

var (
	uploadsTotal              atomic.Uint64
	tailorStartedTotal        atomic.Uint64
	tailorCompletedTotal      atomic.Uint64
	tailorFailedTotal         atomic.Uint64
	coverLetterCompletedTotal atomic.Uint64
	coverLetterFailedTotal    atomic.Uint64

	tailorDuration = newHistogram([]float64{1000, 2500, 5000, 10000, 20000, 30000, 60000, 120000})
)

func IncUploads()              { uploadsTotal.Add(1) }
func IncTailorStarted()        { tailorStartedTotal.Add(1) }
func IncTailorCompleted()      { tailorCompletedTotal.Add(1) }
func IncTailorFailed()         { tailorFailedTotal.Add(1) }
func IncCoverLetterCompleted() { coverLetterCompletedTotal.Add(1) }
func IncCoverLetterFailed()    { coverLetterFailedTotal.Add(1) }

// ObserveTailorDuration records the wall time of one tailoring run.
func ObserveTailorDuration(d time.Duration) {
	value := float64(d) / float64(time.Millisecond)
	if value < 0 {
		value = 0
	}
	tailorDuration.Observe(value)
}

// Handler exposes metrics in Prometheus text format.
func Handler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Header("Content-Type", "text/plain; version=0.0.4")
		c.String(http.StatusOK, Render())
	}
}

// Render renders metrics in Prometheus text format.
func Render() string {
	var buf bytes.Buffer
	writeCounter(&buf, "uploads_total", "Total resumes uploaded", uploadsTotal.Load())
	writeCounter(&buf, "tailor_started_total", "Total tailoring runs started", tailorStartedTotal.Load())
	writeCounter(&buf, "tailor_completed_total", "Total tailoring runs completed", tailorCompletedTotal.Load())
	writeCounter(&buf, "tailor_failed_total", "Total tailoring runs failed", tailorFailedTotal.Load())
	writeCounter(&buf, "cover_letter_completed_total", "Total cover letters generated", coverLetterCompletedTotal.Load())
	writeCounter(&buf, "cover_letter_failed_total", "Total cover letter runs failed", coverLetterFailedTotal.Load())
	writeHistogram(&buf, "tailor_duration_ms", "Tailoring duration in milliseconds", tailorDuration.Snapshot())
	return buf.String()
}

type histogram struct {
	mu      sync.Mutex
	buckets []float64
	counts  []uint64
	sum     float64
	count   uint64
}

type histogramSnapshot struct {
	buckets []float64
	counts  []uint64
	sum     float64
	count   uint64
}

func newHistogram(buckets []float64) *histogram {
	return &histogram{
		buckets: buckets,
		counts:  make([]uint64, len(buckets)),
	}
}

// Observe counts value in the first bucket that holds it; Render accumulates.
func (h *histogram) Observe(value float64) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.count++
	h.sum += value
	for i, bound := range h.buckets {
		if value <= bound {
			h.counts[i]++
			return
		}
	}
}

func (h *histogram) Snapshot() histogramSnapshot {
	h.mu.Lock()
	defer h.mu.Unlock()
	return histogramSnapshot{
		buckets: append([]float64(nil), h.buckets...),
		counts:  append([]uint64(nil), h.counts...),
		sum:     h.sum,
		count:   h.count,
	}
}

func writeCounter(buf *bytes.Buffer, name, help string, value uint64) {
	fmt.Fprintf(buf, "# HELP %s %s\n", name, help)
	fmt.Fprintf(buf, "# TYPE %s counter\n", name)
	fmt.Fprintf(buf, "%s %d\n", name, value)
}

func writeHistogram(buf *bytes.Buffer, name, help string, snap histogramSnapshot) {
	fmt.Fprintf(buf, "# HELP %s %s\n", name, help)
	fmt.Fprintf(buf, "# TYPE %s histogram\n", name)
	var cumulative uint64
	for i, bound := range snap.buckets {
		cumulative += snap.counts[i]
		fmt.Fprintf(buf, "%s_bucket{le=\"%s\"} %d\n", name, formatFloat(bound), cumulative)
	}
	fmt.Fprintf(buf, "%s_bucket{le=\"+Inf\"} %d\n", name, snap.count)
	fmt.Fprintf(buf, "%s_sum %s\n", name, formatFloat(snap.sum))
	fmt.Fprintf(buf, "%s_count %d\n", name, snap.count)
}

func formatFloat(value float64) string {
	if value == float64(int64(value)) {
		return strconv.FormatInt(int64(value), 10)
	}
	return strconv.FormatFloat(value, 'f', -1, 64)
}
