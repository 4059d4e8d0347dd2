package metrics

import (
	"bytes"
	"fmt"
	"net/http"
	"strconv"
	"sync"
	"sync/atomic"

	"github.com/gin-gonic/gin"
)

var (
	queryReceivedTotal  atomic.Uint64
	queryCompletedTotal atomic.Uint64
	queryFailedTotal    atomic.Uint64
	retrievalDegraded   atomic.Uint64
	enrichmentFallback  atomic.Uint64

	queryDuration = newHistogram([]float64{10, 25, 50, 100, 250, 500, 1000, 2000, 5000, 10000})
)

// IncQueryReceived increments the received counter.
func IncQueryReceived() {
	queryReceivedTotal.Add(1)
}

// IncQueryCompleted increments the completed counter.
func IncQueryCompleted() {
	queryCompletedTotal.Add(1)
}

// IncQueryFailed increments the failed counter.
func IncQueryFailed() {
	queryFailedTotal.Add(1)
}

// IncRetrievalDegraded counts retrievals that fell back to an empty window.
func IncRetrievalDegraded() {
	retrievalDegraded.Add(1)
}

// IncEnrichmentFallback counts enrichment calls that fell back to the canned answer.
func IncEnrichmentFallback() {
	enrichmentFallback.Add(1)
}

// ObserveQueryDurationMs records a query pipeline duration in milliseconds.
func ObserveQueryDurationMs(value float64) {
	if value < 0 {
		value = 0
	}
	queryDuration.Observe(value)
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
	writeCounter(&buf, "query_received_total", "Total queries received", queryReceivedTotal.Load())
	writeCounter(&buf, "query_completed_total", "Total queries completed", queryCompletedTotal.Load())
	writeCounter(&buf, "query_failed_total", "Total queries failed", queryFailedTotal.Load())
	writeCounter(&buf, "retrieval_degraded_total", "Total retrievals degraded to an empty window", retrievalDegraded.Load())
	writeCounter(&buf, "enrichment_fallback_total", "Total enrichment calls that used the canned fallback", enrichmentFallback.Load())
	writeHistogram(&buf, "query_duration_ms", "Query pipeline duration in milliseconds", queryDuration.Snapshot())
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

func (h *histogram) Observe(value float64) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.count++
	h.sum += value
	for i, bound := range h.buckets {
		if value <= bound {
			h.counts[i]++
			break
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
