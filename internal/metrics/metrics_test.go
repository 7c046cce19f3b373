package metrics

import (
	"errors"
	"io"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abhisek/precis/internal/llm"
)

func TestObserveLLM_Outcomes(t *testing.T) {
	m := New()

	m.ObserveLLM("reference-summary", time.Second, nil)
	m.ObserveLLM("reference-summary", time.Second, &llm.ErrRateLimit{})
	m.ObserveLLM("summary-feedback", time.Second, &llm.ErrMaxTokensExceeded{})
	m.ObserveLLM("summary-feedback", time.Second, errors.New("boom"))

	assert.Equal(t, 1.0, testutil.ToFloat64(m.llmCalls.WithLabelValues("reference-summary", "ok")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.llmCalls.WithLabelValues("reference-summary", "rate_limited")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.llmCalls.WithLabelValues("summary-feedback", "truncated")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.llmCalls.WithLabelValues("summary-feedback", "error")))
}

func TestObserveAnalysis(t *testing.T) {
	m := New()
	m.ObserveAnalysis("tier1", false)
	m.ObserveAnalysis("tier1", true)
	m.ObserveAnalysis("", false)

	assert.Equal(t, 2.0, testutil.ToFloat64(m.analyses.WithLabelValues("tier1")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.analyses.WithLabelValues("unknown")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.degradedAnalyses))
}

func TestHandler_ExposesCollectors(t *testing.T) {
	m := New()
	m.ObserveHTTP("/api/keywords", "POST", 200, 15*time.Millisecond)
	m.ObserveSurvey("local", nil)

	rec := httptest.NewRecorder()
	m.Handler().ServeHTTP(rec, httptest.NewRequest("GET", "/metrics", nil))
	require.Equal(t, 200, rec.Code)

	body, _ := io.ReadAll(rec.Body)
	assert.Contains(t, string(body), `precis_http_requests_total{method="POST",route="/api/keywords",status="200"} 1`)
	assert.Contains(t, string(body), `precis_survey_submissions_total{destination="local",result="ok"} 1`)
}

func TestNew_IndependentRegistries(t *testing.T) {
	a, b := New(), New()
	a.ObserveSurvey("sheets", errors.New("quota"))
	assert.Equal(t, 0.0, testutil.ToFloat64(b.surveySubmissions.WithLabelValues("sheets", "error")))
}
