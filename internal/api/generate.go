package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/abhisek/precis/internal/summarize"
)

type summaryRequest struct {
	Passage string `json:"passage" binding:"required"`
	Grade   string `json:"grade" binding:"required"`
	Track   string `json:"track"`
}

// POST /api/summary
func (h *handler) summary(c *gin.Context) {
	if h.Generator == nil {
		respondError(c, http.StatusServiceUnavailable, "unavailable", errUnavailable)
		return
	}
	var req summaryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, "invalid_input", err)
		return
	}
	g, t, err := gradeAndTrack(req.Grade, req.Track)
	if err != nil {
		respondError(c, http.StatusBadRequest, "invalid_input", err)
		return
	}

	sum, err := h.Generator.Summarize(c.Request.Context(), summarize.SummaryInput{Passage: req.Passage, Grade: g, Track: t})
	if err != nil {
		respondGenerationError(c, err)
		return
	}
	respondOK(c, sum)
}

type feedbackRequest struct {
	Passage string `json:"passage" binding:"required"`
	Summary string `json:"summary" binding:"required"`
	Grade   string `json:"grade" binding:"required"`
	Track   string `json:"track"`
}

// POST /api/feedback
func (h *handler) feedback(c *gin.Context) {
	if h.Generator == nil {
		respondError(c, http.StatusServiceUnavailable, "unavailable", errUnavailable)
		return
	}
	var req feedbackRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, "invalid_input", err)
		return
	}
	g, t, err := gradeAndTrack(req.Grade, req.Track)
	if err != nil {
		respondError(c, http.StatusBadRequest, "invalid_input", err)
		return
	}

	in := summarize.FeedbackInput{Passage: req.Passage, TeacherSummary: req.Summary, Grade: g, Track: t}
	fb, err := h.Generator.Feedback(c.Request.Context(), in)
	if err != nil {
		respondGenerationError(c, err)
		return
	}
	h.recordAnalysis(c, in, fb.Vocabulary)
	respondOK(c, gin.H{"feedback": fb, "average_score": fb.AverageScore()})
}
