package metrics

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewManager_SeparateRegistries(t *testing.T) {
	a := NewManager()
	b := NewManager()
	assert.NotSame(t, a.Registry(), b.Registry())
}

func TestRecordHTTPRequest(t *testing.T) {
	m := NewManager()

	m.RecordHTTPRequest("/ats-score", http.MethodPost, http.StatusOK, 15*time.Millisecond)
	m.RecordHTTPRequest("/ats-score", http.MethodPost, http.StatusOK, 5*time.Millisecond)
	m.RecordHTTPRequest("/match", http.MethodPost, http.StatusBadGateway, time.Second)

	assert.Equal(t, 2.0, testutil.ToFloat64(m.httpRequests.WithLabelValues("/ats-score", "POST", "200")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.httpRequests.WithLabelValues("/match", "POST", "502")))
}

func TestRecordUpstreamCall(t *testing.T) {
	m := NewManager()

	m.RecordUpstreamCall("parse_resume", nil)
	m.RecordUpstreamCall("parse_resume", errors.New("boom"))
	m.RecordUpstreamCall("parse_resume", errors.New("boom"))

	assert.Equal(t, 1.0, testutil.ToFloat64(m.upstreamCalls.WithLabelValues("parse_resume", "ok")))
	assert.Equal(t, 2.0, testutil.ToFloat64(m.upstreamCalls.WithLabelValues("parse_resume", "error")))
}

func TestRecordCacheLookup(t *testing.T) {
	m := NewManager()
	m.RecordCacheLookup(true)
	m.RecordCacheLookup(false)
	m.RecordCacheLookup(false)

	assert.Equal(t, 1.0, testutil.ToFloat64(m.cacheLookups.WithLabelValues("hit")))
	assert.Equal(t, 2.0, testutil.ToFloat64(m.cacheLookups.WithLabelValues("miss")))
}

func TestHandler_ExposesMetrics(t *testing.T) {
	m := NewManager(WithNamespace("test"), WithSubsystem("unit"))
	m.RecordScoring("ats", 2*time.Millisecond)
	m.ObserveScore("ats", 72)

	rec := httptest.NewRecorder()
	m.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	body := rec.Body.String()
	assert.Contains(t, body, "test_unit_scoring_latency_milliseconds")
	assert.Contains(t, body, "test_unit_score_value")
}
