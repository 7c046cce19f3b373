package api

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/abhisek/precis/internal/survey"
)

type surveyRequest struct {
	Teacher      survey.TeacherInfo `json:"teacher"`
	Usage        survey.ToolUsage   `json:"usage"`
	Scores       map[string]int     `json:"scores" binding:"required"`
	FeedbackText string             `json:"feedback_text"`
	Consent      bool               `json:"consent"`
}

// POST /api/survey
func (h *handler) submitSurvey(c *gin.Context) {
	if h.Survey == nil {
		respondError(c, http.StatusServiceUnavailable, "unavailable", errUnavailable)
		return
	}
	var req surveyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, "invalid_input", err)
		return
	}

	resp := &survey.Response{
		Teacher:      req.Teacher,
		Usage:        req.Usage,
		Scores:       req.Scores,
		FeedbackText: req.FeedbackText,
		Consent:      req.Consent,
	}
	if err := resp.Validate(); err != nil {
		respondSurveyError(c, err)
		return
	}
	resp.Finalize(time.Now())

	if err := h.Survey.Record(c.Request.Context(), resp); err != nil {
		h.log.Error("recording survey failed", "participant_id", resp.ParticipantID, "error", err)
		respondError(c, http.StatusBadGateway, "record_failed", err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{
		"participant_id":    resp.ParticipantID,
		"timestamp":         resp.Timestamp.Format(survey.TimestampLayout),
		"category_averages": resp.CategoryAverages(),
	})
}

// GET /api/survey/stats
func (h *handler) surveyStats(c *gin.Context) {
	if h.SurveySource == nil {
		respondError(c, http.StatusServiceUnavailable, "unavailable", errUnavailable)
		return
	}
	recs, err := h.SurveySource.Records(c.Request.Context())
	if err != nil {
		respondError(c, http.StatusBadGateway, "source_unavailable", err)
		return
	}
	respondOK(c, survey.Summarize(recs))
}
