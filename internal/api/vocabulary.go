package api

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/abhisek/precis/internal/grade"
	"github.com/abhisek/precis/internal/keywords"
	"github.com/abhisek/precis/internal/store"
	"github.com/abhisek/precis/internal/summarize"
	"github.com/abhisek/precis/internal/vocab"
)

const defaultKeywordCount = 5

type reportView struct {
	Era      string `json:"era"`
	Source   string `json:"source"`
	Status   string `json:"status"`
	Encoding string `json:"encoding,omitempty"`
	Words    int    `json:"words"`
	Error    string `json:"error,omitempty"`
}

// GET /api/vocabulary
// Load reports and overlap of the reference lists.
func (h *handler) getVocabulary(c *gin.Context) {
	var reports []reportView
	for _, r := range h.Vocab.Reports() {
		rv := reportView{
			Era:      string(r.Era),
			Source:   r.Source,
			Status:   string(r.Status),
			Encoding: r.Encoding,
			Words:    r.Words,
		}
		if r.Err != nil {
			rv.Error = r.Err.Error()
		}
		reports = append(reports, rv)
	}
	o := h.Vocab.Overlap()
	respondOK(c, gin.H{
		"reports":  reports,
		"degraded": h.Vocab.Degraded(),
		"overlap": gin.H{
			"common":      o.Common,
			"only_era_a":  o.OnlyEraA,
			"only_era_b":  o.OnlyEraB,
			"total_union": o.TotalUnion,
		},
	})
}

// errMissingText rejects bodies without a text field. An empty string is
// valid input and yields zero statistics.
var errMissingText = errors.New("text is required")

type analyzeRequest struct {
	Text  *string `json:"text"`
	Grade string  `json:"grade"`
}

// POST /api/vocabulary/analyze
// An empty or unknown grade scores against the combined list.
func (h *handler) analyzeVocabulary(c *gin.Context) {
	var req analyzeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, "invalid_input", err)
		return
	}
	if req.Text == nil {
		respondError(c, http.StatusBadRequest, "invalid_input", errMissingText)
		return
	}

	g := grade.Unknown
	if req.Grade != "" {
		parsed, err := grade.Parse(req.Grade)
		if err != nil {
			respondError(c, http.StatusBadRequest, "invalid_input", err)
			return
		}
		g = parsed
	}

	stats := h.Vocab.AnalyzeForGrade(*req.Text, g)
	h.observeAnalysis(g, stats)
	respondOK(c, gin.H{"grade": g.String(), "stats": stats})
}

type keywordsRequest struct {
	Text      *string `json:"text"`
	TopN      int     `json:"top_n"`
	Translate bool    `json:"translate"`
}

// POST /api/keywords
func (h *handler) extractKeywords(c *gin.Context) {
	var req keywordsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, "invalid_input", err)
		return
	}
	if req.Text == nil {
		respondError(c, http.StatusBadRequest, "invalid_input", errMissingText)
		return
	}
	if req.TopN <= 0 {
		req.TopN = defaultKeywordCount
	}

	words := keywords.Extract(*req.Text, req.TopN)
	resp := gin.H{"keywords": words}
	if req.Translate {
		if h.Generator == nil {
			respondError(c, http.StatusServiceUnavailable, "unavailable", errUnavailable)
			return
		}
		glosses, err := h.Generator.TranslateKeywords(c.Request.Context(), words)
		if err != nil {
			respondGenerationError(c, err)
			return
		}
		resp["glosses"] = glosses
	}
	respondOK(c, resp)
}

// observeAnalysis counts an analysis by grade.
func (h *handler) observeAnalysis(g grade.Grade, stats vocab.Stats) {
	if h.Metrics != nil {
		h.Metrics.ObserveAnalysis(g.String(), stats.Degraded)
	}
}

// recordAnalysis logs the analysis of a summary that received feedback.
func (h *handler) recordAnalysis(c *gin.Context, in summarize.FeedbackInput, stats vocab.Stats) {
	h.observeAnalysis(in.Grade, stats)
	if h.Events == nil {
		return
	}
	err := h.Events.AppendAnalysis(c.Request.Context(), store.AnalysisEventData{
		Grade:            in.Grade.String(),
		Track:            in.Track.String(),
		SourceType:       "api",
		PassageWords:     summarize.CountWords(in.Passage),
		SummaryWords:     summarize.CountWords(in.TeacherSummary),
		TotalUniqueWords: stats.TotalUniqueWords,
		TargetWords:      stats.TargetWords,
		TargetRatio:      stats.TargetRatio,
		EraARatio:        stats.EraARatio,
		EraBRatio:        stats.EraBRatio,
		Degraded:         stats.Degraded,
		Keywords:         keywords.Extract(in.Passage, defaultKeywordCount),
	})
	if err != nil {
		h.log.Warn("recording analysis failed", "error", err)
	}
}
