package api

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abhisek/precis/internal/curriculum"
	"github.com/abhisek/precis/internal/grade"
	"github.com/abhisek/precis/internal/llm"
	"github.com/abhisek/precis/internal/metrics"
	"github.com/abhisek/precis/internal/store"
	"github.com/abhisek/precis/internal/summarize"
	"github.com/abhisek/precis/internal/survey"
	"github.com/abhisek/precis/internal/vocab"
)

func init() {
	gin.SetMode(gin.TestMode)
}

const passage = `Ocean heat drives storms. Warmer ocean water feeds stronger storms, and ocean heat shifts rainfall over land.`

type testServer struct {
	router  *gin.Engine
	mock    *llm.MockProvider
	store   *store.Store
	metrics *metrics.Metrics
}

func newTestServer(t *testing.T, responses ...llm.MockResponse) *testServer {
	t.Helper()
	cur, err := curriculum.LoadDefault()
	require.NoError(t, err)
	st, err := store.OpenMemory(t.Name())
	require.NoError(t, err)
	t.Cleanup(func() { st.Close() })

	voc := vocab.NewCatalog(
		vocab.NewSet(grade.EraA, "ocean", "heat", "storm"),
		vocab.NewSet(grade.EraB, "ocean", "warm", "rain", "storms"),
	)
	mock := llm.NewMockProvider(responses...)
	m := metrics.New()
	local := survey.NewLocalRecorder(st.SurveyRepo())

	router := NewRouter(Deps{
		Curriculum:   cur,
		Vocab:        voc,
		Generator:    summarize.New(mock, cur, voc, summarize.DefaultConfig()),
		Events:       st.EventRepo(),
		Survey:       local,
		SurveySource: local,
		Metrics:      m,
	})
	return &testServer{router: router, mock: mock, store: st, metrics: m}
}

func (s *testServer) do(t *testing.T, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	s.router.ServeHTTP(w, req)
	return w
}

func decode(t *testing.T, w *httptest.ResponseRecorder, v any) {
	t.Helper()
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), v))
}

func TestHealthz(t *testing.T) {
	s := newTestServer(t)
	w := s.do(t, http.MethodGet, "/healthz", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "ok", w.Body.String())
}

func TestCurriculum(t *testing.T) {
	s := newTestServer(t)

	w := s.do(t, http.MethodGet, "/api/curriculum?grade=tier2&track=general", nil)
	require.Equal(t, http.StatusOK, w.Code)
	var d descriptorView
	decode(t, w, &d)
	assert.Equal(t, "고2_일반선택+진로선택", d.Key)
	assert.Equal(t, "general", d.Track)
	assert.NotEmpty(t, d.Standards)
	assert.Empty(t, d.Rubric)

	w = s.do(t, http.MethodGet, "/api/curriculum?grade=1", nil)
	require.Equal(t, http.StatusOK, w.Code)
	decode(t, w, &d)
	assert.NotEmpty(t, d.Rubric)
	require.NotNil(t, d.Guideline)
}

func TestCurriculum_NotFound(t *testing.T) {
	s := newTestServer(t)

	w := s.do(t, http.MethodGet, "/api/curriculum?grade=tier3", nil)
	require.Equal(t, http.StatusNotFound, w.Code)
	var body struct {
		Error   APIError `json:"error"`
		Key     string   `json:"key"`
		Generic bool     `json:"generic"`
	}
	decode(t, w, &body)
	assert.True(t, body.Generic)
	assert.Equal(t, "not_found", body.Error.Code)
	assert.Equal(t, "고3_", body.Key)
}

func TestCurriculum_ListAndBadGrade(t *testing.T) {
	s := newTestServer(t)

	w := s.do(t, http.MethodGet, "/api/curriculum", nil)
	require.Equal(t, http.StatusOK, w.Code)
	var list struct {
		Descriptors []descriptorView `json:"descriptors"`
	}
	decode(t, w, &list)
	assert.NotEmpty(t, list.Descriptors)

	w = s.do(t, http.MethodGet, "/api/curriculum?grade=tier9", nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestKeywords(t *testing.T) {
	s := newTestServer(t, llm.MockJSON(map[string]any{
		"glosses": []map[string]string{{"word": "ocean", "meaning": "바다"}, {"word": "heat", "meaning": "열"}},
	}))

	w := s.do(t, http.MethodPost, "/api/keywords", map[string]any{"text": passage, "top_n": 2})
	require.Equal(t, http.StatusOK, w.Code)
	var plain struct {
		Keywords []string `json:"keywords"`
	}
	decode(t, w, &plain)
	assert.Equal(t, []string{"ocean", "heat"}, plain.Keywords)
	assert.Equal(t, 0, s.mock.CallCount())

	w = s.do(t, http.MethodPost, "/api/keywords", map[string]any{"text": passage, "top_n": 2, "translate": true})
	require.Equal(t, http.StatusOK, w.Code)
	var glossed struct {
		Glosses map[string]string `json:"glosses"`
	}
	decode(t, w, &glossed)
	assert.Equal(t, map[string]string{"ocean": "바다", "heat": "열"}, glossed.Glosses)
}

func TestKeywords_MissingText(t *testing.T) {
	s := newTestServer(t)
	w := s.do(t, http.MethodPost, "/api/keywords", map[string]any{"top_n": 2})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestKeywords_EmptyText(t *testing.T) {
	s := newTestServer(t)
	w := s.do(t, http.MethodPost, "/api/keywords", map[string]any{"text": ""})
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"keywords":[]}`, w.Body.String())
}

func TestAnalyzeVocabulary_EmptyText(t *testing.T) {
	s := newTestServer(t)
	w := s.do(t, http.MethodPost, "/api/vocabulary/analyze", map[string]any{"text": "", "grade": "고2"})
	require.Equal(t, http.StatusOK, w.Code)

	var body struct {
		Stats vocab.Stats `json:"stats"`
	}
	decode(t, w, &body)
	assert.Equal(t, vocab.Stats{NonTargetExamples: []string{}}, body.Stats)
}

func TestAnalyzeVocabulary_MissingText(t *testing.T) {
	s := newTestServer(t)
	w := s.do(t, http.MethodPost, "/api/vocabulary/analyze", map[string]any{"grade": "고2"})
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "text is required")
}

func TestAnalyzeVocabulary(t *testing.T) {
	s := newTestServer(t)

	w := s.do(t, http.MethodPost, "/api/vocabulary/analyze", map[string]any{"text": "Warm ocean water makes storms stronger.", "grade": "고1"})
	require.Equal(t, http.StatusOK, w.Code)
	var body struct {
		Grade string      `json:"grade"`
		Stats vocab.Stats `json:"stats"`
	}
	decode(t, w, &body)
	assert.Equal(t, "tier1", body.Grade)
	assert.Equal(t, 6, body.Stats.TotalUniqueWords)
	assert.Equal(t, 3, body.Stats.TargetWords)

	w = s.do(t, http.MethodGet, "/metrics", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `precis_vocabulary_analyses_total{grade="tier1"} 1`)
	assert.Contains(t, w.Body.String(), `route="/api/vocabulary/analyze"`)
}

func TestVocabularyReport(t *testing.T) {
	s := newTestServer(t)
	w := s.do(t, http.MethodGet, "/api/vocabulary", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var body struct {
		Degraded bool `json:"degraded"`
		Overlap  struct {
			Common     int `json:"common"`
			TotalUnion int `json:"total_union"`
		} `json:"overlap"`
	}
	decode(t, w, &body)
	assert.Equal(t, 1, body.Overlap.Common)
	assert.Equal(t, 6, body.Overlap.TotalUnion)
}

func TestSummary(t *testing.T) {
	s := newTestServer(t, llm.MockJSON(map[string]string{"summary": "Warmer oceans feed stronger storms."}))

	w := s.do(t, http.MethodPost, "/api/summary", map[string]any{"passage": passage, "grade": "tier1"})
	require.Equal(t, http.StatusOK, w.Code)
	var sum summarize.Summary
	decode(t, w, &sum)
	assert.Equal(t, "Warmer oceans feed stronger storms.", sum.Text)
	assert.Equal(t, 5, sum.WordCount)
	assert.False(t, sum.WithinTarget)
}

func TestSummary_ErrorMapping(t *testing.T) {
	tests := []struct {
		name   string
		resp   llm.MockResponse
		status int
		code   string
	}{
		{"rate limit", llm.MockResponse{Err: &llm.ErrRateLimit{RetryAfter: 3 * time.Second}}, http.StatusTooManyRequests, "rate_limited"},
		{"invalid", llm.MockResponse{Err: &llm.ErrInvalidResponse{}}, http.StatusBadGateway, "invalid_llm_response"},
		{"unavailable", llm.MockResponse{Err: &llm.ErrProviderUnavailable{}}, http.StatusBadGateway, "llm_unavailable"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := newTestServer(t, tt.resp)
			w := s.do(t, http.MethodPost, "/api/summary", map[string]any{"passage": passage, "grade": "tier1"})
			require.Equal(t, tt.status, w.Code)
			var env ErrorEnvelope
			decode(t, w, &env)
			assert.Equal(t, tt.code, env.Error.Code)
		})
	}
}

func TestSummary_BlankPassage(t *testing.T) {
	s := newTestServer(t)
	w := s.do(t, http.MethodPost, "/api/summary", map[string]any{"passage": "   ", "grade": "tier1"})
	require.Equal(t, http.StatusBadRequest, w.Code)
	var env ErrorEnvelope
	decode(t, w, &env)
	assert.Equal(t, "invalid_input", env.Error.Code)
}

func TestFeedback(t *testing.T) {
	s := newTestServer(t, llm.MockJSON(map[string]any{
		"criteria": []map[string]any{
			{"id": "grammar", "score": 4, "comment": "Accurate.", "suggestion": ""},
			{"id": "length", "score": 2, "comment": "Too short.", "suggestion": "Add the cause."},
		},
		"overall":         "Good start.",
		"revised_summary": "Warmer ocean water feeds stronger storms and shifts rainfall patterns over land.",
	}))

	w := s.do(t, http.MethodPost, "/api/feedback", map[string]any{
		"passage": passage,
		"summary": "Warm ocean water makes storms stronger.",
		"grade":   "tier1",
	})
	require.Equal(t, http.StatusOK, w.Code)

	var body struct {
		Feedback     summarize.Feedback `json:"feedback"`
		AverageScore float64            `json:"average_score"`
	}
	decode(t, w, &body)
	assert.Equal(t, 3.0, body.AverageScore)
	assert.Equal(t, 3, body.Feedback.Vocabulary.TargetWords)
	require.Len(t, body.Feedback.Criteria, 2)
	assert.Equal(t, summarize.CriterionGrammar, body.Feedback.Criteria[0].ID)

	events, err := s.store.EventRepo().QueryAnalyses(t.Context(), store.QueryOpts{})
	require.NoError(t, err)
	require.Len(t, events, 1)
	assert.Equal(t, "api", events[0].SourceType)
	assert.Equal(t, 6, events[0].SummaryWords)
}

func TestFeedback_MissingSummary(t *testing.T) {
	s := newTestServer(t)
	w := s.do(t, http.MethodPost, "/api/feedback", map[string]any{"passage": passage, "grade": "tier1"})
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, 0, s.mock.CallCount())
}

func surveyBody(consent bool) map[string]any {
	scores := map[string]int{}
	for _, k := range survey.ItemKeys() {
		scores[k] = 4
	}
	return map[string]any{
		"teacher":       map[string]string{"grade": "고2", "school_type": "자사고", "experience": "11-15년"},
		"usage":         map[string]any{"grade_level": "고2", "completed_summary": true},
		"scores":        scores,
		"feedback_text": "유용했습니다.\n감사합니다.",
		"consent":       consent,
	}
}

func TestSurvey(t *testing.T) {
	s := newTestServer(t)

	w := s.do(t, http.MethodPost, "/api/survey", surveyBody(true))
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	var created struct {
		ParticipantID    string             `json:"participant_id"`
		CategoryAverages map[string]float64 `json:"category_averages"`
	}
	decode(t, w, &created)
	assert.True(t, strings.HasPrefix(created.ParticipantID, "P"))
	assert.Equal(t, 4.0, created.CategoryAverages["SE"])

	w = s.do(t, http.MethodGet, "/api/survey/stats", nil)
	require.Equal(t, http.StatusOK, w.Code)
	var stats survey.Stats
	decode(t, w, &stats)
	assert.Equal(t, 1, stats.Total)
	assert.Equal(t, map[string]int{"자사고": 1}, stats.SchoolTypes)
	assert.Equal(t, 4.0, stats.Averages["AD"])
}

func TestSurvey_Rejects(t *testing.T) {
	s := newTestServer(t)

	w := s.do(t, http.MethodPost, "/api/survey", surveyBody(false))
	require.Equal(t, http.StatusBadRequest, w.Code)
	var env ErrorEnvelope
	decode(t, w, &env)
	assert.Equal(t, "consent_required", env.Error.Code)

	body := surveyBody(true)
	body["scores"].(map[string]int)["PU_1"] = 9
	w = s.do(t, http.MethodPost, "/api/survey", body)
	require.Equal(t, http.StatusBadRequest, w.Code)
	decode(t, w, &env)
	assert.Equal(t, "invalid_survey", env.Error.Code)
	assert.Contains(t, env.Error.Message, "PU_1")
}

func TestUnconfiguredRoutes(t *testing.T) {
	router := NewRouter(Deps{})

	for _, path := range []string{"/api/curriculum", "/api/survey/stats"} {
		w := httptest.NewRecorder()
		router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, path, nil))
		assert.Equal(t, http.StatusServiceUnavailable, w.Code, path)
	}

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	assert.Equal(t, http.StatusNotFound, w.Code)
}
