package api

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/abhisek/precis/internal/llm"
	"github.com/abhisek/precis/internal/summarize"
	"github.com/abhisek/precis/internal/survey"
)

type APIError struct {
	Message string `json:"message"`
	Code    string `json:"code,omitempty"`
}

type ErrorEnvelope struct {
	Error APIError `json:"error"`
}

func respondError(c *gin.Context, status int, code string, err error) {
	msg := "unknown error"
	if err != nil {
		msg = err.Error()
	}
	c.JSON(status, ErrorEnvelope{Error: APIError{Message: msg, Code: code}})
}

func respondOK(c *gin.Context, payload any) {
	c.JSON(http.StatusOK, payload)
}

var errUnavailable = errors.New("not configured on this server")

// respondGenerationError maps summarize and provider failures to statuses.
// The error code is the provider outcome.
func respondGenerationError(c *gin.Context, err error) {
	if errors.Is(err, summarize.ErrEmptyPassage) || errors.Is(err, summarize.ErrEmptySummary) {
		respondError(c, http.StatusBadRequest, "invalid_input", err)
		return
	}

	switch llm.Classify(err) {
	case llm.OutcomeRateLimited:
		var rl *llm.ErrRateLimit
		if errors.As(err, &rl) && rl.RetryAfter > 0 {
			c.Header("Retry-After", strconv.Itoa(int(rl.RetryAfter.Seconds())))
		}
		respondError(c, http.StatusTooManyRequests, "rate_limited", err)
	case llm.OutcomeInvalid, llm.OutcomeTruncated:
		respondError(c, http.StatusBadGateway, "invalid_llm_response", err)
	case llm.OutcomeCanceled:
		respondError(c, http.StatusGatewayTimeout, "llm_timeout", err)
	default:
		respondError(c, http.StatusBadGateway, "llm_unavailable", err)
	}
}

func respondSurveyError(c *gin.Context, err error) {
	if errors.Is(err, survey.ErrConsentRequired) {
		respondError(c, http.StatusBadRequest, "consent_required", err)
		return
	}
	respondError(c, http.StatusBadRequest, "invalid_survey", err)
}
