// Package metrics collects business metrics for the study service.
package metrics

import (
	"fmt"
	"strings"
	"sync"
	"sync/atomic"
	"time"
)

// StudyMetrics tracks query, retrieval, model and indexing activity.
type StudyMetrics struct {
	queriesTotal       uint64
	queriesCacheHits   uint64
	queriesCacheMisses uint64
	queriesErrors      uint64

	retrievalTotal    uint64
	retrievalErrors   uint64
	retrievalDuration float64

	modelCallsTotal    uint64
	modelCallsErrors   uint64
	modelCallsDuration float64

	documentsIndexed uint64
	chunksIndexed    uint64
	indexErrors      uint64

	uploadsTotal  uint64
	uploadsErrors uint64

	startTime  time.Time
	durationMu sync.Mutex
}

var (
	globalMetrics *StudyMetrics
	metricsOnce   sync.Once
)

// Get returns the global metrics instance.
func Get() *StudyMetrics {
	metricsOnce.Do(func() {
		globalMetrics = &StudyMetrics{startTime: time.Now()}
	})
	return globalMetrics
}

// RecordQuery records one question answered or failed.
func (m *StudyMetrics) RecordQuery(cacheHit bool, err error) {
	atomic.AddUint64(&m.queriesTotal, 1)
	if err != nil {
		atomic.AddUint64(&m.queriesErrors, 1)
		return
	}
	if cacheHit {
		atomic.AddUint64(&m.queriesCacheHits, 1)
	} else {
		atomic.AddUint64(&m.queriesCacheMisses, 1)
	}
}

// RecordRetrieval records one vector search.
func (m *StudyMetrics) RecordRetrieval(duration time.Duration, err error) {
	atomic.AddUint64(&m.retrievalTotal, 1)
	if err != nil {
		atomic.AddUint64(&m.retrievalErrors, 1)
		return
	}
	m.durationMu.Lock()
	m.retrievalDuration += duration.Seconds()
	m.durationMu.Unlock()
}

// RecordModelCall records one generation request to the model backend.
func (m *StudyMetrics) RecordModelCall(duration time.Duration, err error) {
	atomic.AddUint64(&m.modelCallsTotal, 1)
	if err != nil {
		atomic.AddUint64(&m.modelCallsErrors, 1)
		return
	}
	m.durationMu.Lock()
	m.modelCallsDuration += duration.Seconds()
	m.durationMu.Unlock()
}

// RecordIndexing records one document indexing pass.
func (m *StudyMetrics) RecordIndexing(documents, chunks int, err error) {
	if err != nil {
		atomic.AddUint64(&m.indexErrors, 1)
		return
	}
	atomic.AddUint64(&m.documentsIndexed, uint64(documents))
	atomic.AddUint64(&m.chunksIndexed, uint64(chunks))
}

// RecordUpload records one upload attempt.
func (m *StudyMetrics) RecordUpload(err error) {
	atomic.AddUint64(&m.uploadsTotal, 1)
	if err != nil {
		atomic.AddUint64(&m.uploadsErrors, 1)
	}
}

// Export renders the metrics in Prometheus text format.
func (m *StudyMetrics) Export(namespace, subsystem string) string {
	var sb strings.Builder
	prefix := namespace
	if subsystem != "" {
		prefix = prefix + "_" + subsystem
	}

	counter := func(name, help string, value uint64) {
		sb.WriteString(fmt.Sprintf("# HELP %s_%s %s\n", prefix, name, help))
		sb.WriteString(fmt.Sprintf("# TYPE %s_%s counter\n", prefix, name))
		sb.WriteString(fmt.Sprintf("%s_%s %d\n\n", prefix, name, value))
	}
	gauge := func(name, help string, value float64) {
		sb.WriteString(fmt.Sprintf("# HELP %s_%s %s\n", prefix, name, help))
		sb.WriteString(fmt.Sprintf("# TYPE %s_%s gauge\n", prefix, name))
		sb.WriteString(fmt.Sprintf("%s_%s %.6f\n\n", prefix, name, value))
	}

	counter("queries_total", "Total number of questions answered.", atomic.LoadUint64(&m.queriesTotal))
	counter("queries_cache_hits_total", "Number of cache hits.", atomic.LoadUint64(&m.queriesCacheHits))
	counter("queries_cache_misses_total", "Number of cache misses.", atomic.LoadUint64(&m.queriesCacheMisses))
	counter("queries_errors_total", "Number of query errors.", atomic.LoadUint64(&m.queriesErrors))

	hits := atomic.LoadUint64(&m.queriesCacheHits)
	misses := atomic.LoadUint64(&m.queriesCacheMisses)
	hitRate := 0.0
	if hits+misses > 0 {
		hitRate = float64(hits) / float64(hits+misses)
	}
	gauge("cache_hit_rate", "Cache hit rate (0-1).", hitRate)

	counter("retrieval_total", "Total number of vector searches.", atomic.LoadUint64(&m.retrievalTotal))
	counter("retrieval_errors_total", "Number of retrieval errors.", atomic.LoadUint64(&m.retrievalErrors))

	m.durationMu.Lock()
	retrievalDuration := m.retrievalDuration
	modelDuration := m.modelCallsDuration
	m.durationMu.Unlock()
	gauge("retrieval_duration_seconds_total", "Total retrieval duration.", retrievalDuration)

	counter("model_calls_total", "Total number of model generation calls.", atomic.LoadUint64(&m.modelCallsTotal))
	counter("model_calls_errors_total", "Number of model call errors.", atomic.LoadUint64(&m.modelCallsErrors))
	gauge("model_calls_duration_seconds_total", "Total model call duration.", modelDuration)

	counter("documents_indexed_total", "Total documents indexed.", atomic.LoadUint64(&m.documentsIndexed))
	counter("chunks_indexed_total", "Total chunks indexed.", atomic.LoadUint64(&m.chunksIndexed))
	counter("index_errors_total", "Number of indexing errors.", atomic.LoadUint64(&m.indexErrors))

	counter("uploads_total", "Total upload attempts.", atomic.LoadUint64(&m.uploadsTotal))
	counter("upload_errors_total", "Number of failed uploads.", atomic.LoadUint64(&m.uploadsErrors))

	gauge("uptime_seconds", "Service uptime in seconds.", time.Since(m.startTime).Seconds())

	return sb.String()
}

// Stats returns the current statistics for the API.
func (m *StudyMetrics) Stats() map[string]interface{} {
	m.durationMu.Lock()
	retrievalDuration := m.retrievalDuration
	modelDuration := m.modelCallsDuration
	m.durationMu.Unlock()

	hits := atomic.LoadUint64(&m.queriesCacheHits)
	misses := atomic.LoadUint64(&m.queriesCacheMisses)
	hitRate := 0.0
	if hits+misses > 0 {
		hitRate = float64(hits) / float64(hits+misses)
	}

	retrievalTotal := atomic.LoadUint64(&m.retrievalTotal)
	avgRetrieval := 0.0
	if retrievalTotal > 0 {
		avgRetrieval = retrievalDuration / float64(retrievalTotal)
	}

	modelTotal := atomic.LoadUint64(&m.modelCallsTotal)
	avgModel := 0.0
	if modelTotal > 0 {
		avgModel = modelDuration / float64(modelTotal)
	}

	return map[string]interface{}{
		"queries": map[string]interface{}{
			"total":          atomic.LoadUint64(&m.queriesTotal),
			"cache_hits":     hits,
			"cache_misses":   misses,
			"cache_hit_rate": hitRate,
			"errors":         atomic.LoadUint64(&m.queriesErrors),
		},
		"retrieval": map[string]interface{}{
			"total":               retrievalTotal,
			"total_duration_secs": retrievalDuration,
			"avg_duration_secs":   avgRetrieval,
			"errors":              atomic.LoadUint64(&m.retrievalErrors),
		},
		"model": map[string]interface{}{
			"calls_total":         modelTotal,
			"total_duration_secs": modelDuration,
			"avg_duration_secs":   avgModel,
			"errors":              atomic.LoadUint64(&m.modelCallsErrors),
		},
		"indexing": map[string]interface{}{
			"documents_indexed": atomic.LoadUint64(&m.documentsIndexed),
			"chunks_indexed":    atomic.LoadUint64(&m.chunksIndexed),
			"errors":            atomic.LoadUint64(&m.indexErrors),
		},
		"uploads": map[string]interface{}{
			"total":  atomic.LoadUint64(&m.uploadsTotal),
			"errors": atomic.LoadUint64(&m.uploadsErrors),
		},
		"uptime_seconds": time.Since(m.startTime).Seconds(),
	}
}

// Reset clears all counters. Test helper.
func (m *StudyMetrics) Reset() {
	atomic.StoreUint64(&m.queriesTotal, 0)
	atomic.StoreUint64(&m.queriesCacheHits, 0)
	atomic.StoreUint64(&m.queriesCacheMisses, 0)
	atomic.StoreUint64(&m.queriesErrors, 0)
	atomic.StoreUint64(&m.retrievalTotal, 0)
	atomic.StoreUint64(&m.retrievalErrors, 0)
	atomic.StoreUint64(&m.modelCallsTotal, 0)
	atomic.StoreUint64(&m.modelCallsErrors, 0)
	atomic.StoreUint64(&m.documentsIndexed, 0)
	atomic.StoreUint64(&m.chunksIndexed, 0)
	atomic.StoreUint64(&m.indexErrors, 0)
	atomic.StoreUint64(&m.uploadsTotal, 0)
	atomic.StoreUint64(&m.uploadsErrors, 0)

	m.durationMu.Lock()
	m.retrievalDuration = 0
	m.modelCallsDuration = 0
	m.startTime = time.Now()
	m.durationMu.Unlock()
}
