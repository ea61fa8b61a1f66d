package metrics

import (
	"errors"
	"strings"
	"testing"
	"time"
)

func TestGetReturnsSingleton(t *testing.T) {
	a := Get()
	b := Get()
	if a != b {
		t.Error("Get() should return the same instance")
	}
}

func TestRecordQuery(t *testing.T) {
	m := Get()
	m.Reset()

	m.RecordQuery(false, nil)
	m.RecordQuery(true, nil)
	m.RecordQuery(false, errors.New("boom"))

	stats := m.Stats()
	queries := stats["queries"].(map[string]interface{})
	if queries["total"].(uint64) != 3 {
		t.Errorf("total = %v, want 3", queries["total"])
	}
	if queries["cache_hits"].(uint64) != 1 {
		t.Errorf("cache_hits = %v, want 1", queries["cache_hits"])
	}
	if queries["errors"].(uint64) != 1 {
		t.Errorf("errors = %v, want 1", queries["errors"])
	}
	if rate := queries["cache_hit_rate"].(float64); rate != 0.5 {
		t.Errorf("cache_hit_rate = %v, want 0.5", rate)
	}
}

func TestRecordRetrievalAndModelCall(t *testing.T) {
	m := Get()
	m.Reset()

	m.RecordRetrieval(100*time.Millisecond, nil)
	m.RecordRetrieval(0, errors.New("down"))
	m.RecordModelCall(200*time.Millisecond, nil)

	stats := m.Stats()
	retrieval := stats["retrieval"].(map[string]interface{})
	if retrieval["total"].(uint64) != 2 {
		t.Errorf("retrieval total = %v, want 2", retrieval["total"])
	}
	if retrieval["errors"].(uint64) != 1 {
		t.Errorf("retrieval errors = %v, want 1", retrieval["errors"])
	}

	modelStats := stats["model"].(map[string]interface{})
	if modelStats["calls_total"].(uint64) != 1 {
		t.Errorf("model calls = %v, want 1", modelStats["calls_total"])
	}
}

func TestRecordIndexing(t *testing.T) {
	m := Get()
	m.Reset()

	m.RecordIndexing(1, 12, nil)
	m.RecordIndexing(0, 0, errors.New("embed failed"))

	stats := m.Stats()
	indexing := stats["indexing"].(map[string]interface{})
	if indexing["documents_indexed"].(uint64) != 1 {
		t.Errorf("documents = %v, want 1", indexing["documents_indexed"])
	}
	if indexing["chunks_indexed"].(uint64) != 12 {
		t.Errorf("chunks = %v, want 12", indexing["chunks_indexed"])
	}
	if indexing["errors"].(uint64) != 1 {
		t.Errorf("errors = %v, want 1", indexing["errors"])
	}
}

func TestExportPrometheusFormat(t *testing.T) {
	m := Get()
	m.Reset()
	m.RecordQuery(false, nil)
	m.RecordUpload(nil)

	out := m.Export("edufy", "study")

	for _, want := range []string{
		"# TYPE edufy_study_queries_total counter",
		"edufy_study_queries_total 1",
		"edufy_study_uploads_total 1",
		"# TYPE edufy_study_cache_hit_rate gauge",
		"edufy_study_uptime_seconds",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("export missing %q", want)
		}
	}
}

func TestExportWithoutSubsystem(t *testing.T) {
	m := Get()
	m.Reset()

	out := m.Export("edufy", "")
	if !strings.Contains(out, "edufy_queries_total") {
		t.Error("export should use the bare namespace prefix")
	}
	if strings.Contains(out, "edufy__") {
		t.Error("export should not produce a double underscore prefix")
	}
}

func TestReset(t *testing.T) {
	m := Get()
	m.RecordQuery(false, nil)
	m.Reset()

	stats := m.Stats()
	queries := stats["queries"].(map[string]interface{})
	if queries["total"].(uint64) != 0 {
		t.Errorf("total after reset = %v, want 0", queries["total"])
	}
}
