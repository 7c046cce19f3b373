package store

import (
	"context"
	"time"
)

// QueryOpts configures event queries with filtering and pagination.
type QueryOpts struct {
	Limit   int       // max results (0 = unlimited)
	After   int64     // sequence > After
	Before  int64     // sequence < Before
	From    time.Time // timestamp >= From
	To      time.Time // timestamp <= To
	Purpose string    // LLM events only; empty matches all
}

// LLMRequestEventData captures the data for a single LLM request event.
type LLMRequestEventData struct {
	Provider     string
	Model        string
	Purpose      string
	InputTokens  int
	OutputTokens int
	LatencyMs    int64
	Success      bool
	ErrorMessage string
	RequestBody  string
	ResponseBody string
}

// LLMEvent is a stored LLM request.
type LLMEvent struct {
	ID        int
	Sequence  int64
	Timestamp time.Time
	LLMRequestEventData
}

// PurposeUsage aggregates LLM calls by purpose label.
type PurposeUsage struct {
	Purpose      string
	Calls        int
	InputTokens  int
	OutputTokens int
	AvgLatencyMs int64
}

// ModelUsage aggregates LLM calls by model, for cost estimates.
type ModelUsage struct {
	Model        string
	Calls        int
	InputTokens  int
	OutputTokens int
}

// AnalysisEventData records one vocabulary analysis of a teacher summary.
type AnalysisEventData struct {
	Grade            string
	Track            string
	SourceType       string
	PassageWords     int
	SummaryWords     int
	TotalUniqueWords int
	TargetWords      int
	TargetRatio      float64
	EraARatio        float64
	EraBRatio        float64
	Degraded         bool
	Keywords         []string
}

// AnalysisEvent is a stored analysis.
type AnalysisEvent struct {
	ID        int
	Sequence  int64
	Timestamp time.Time
	AnalysisEventData
}

// EventRepo provides append and query access to domain events.
type EventRepo interface {
	// AppendLLMRequest records an LLM API call event.
	AppendLLMRequest(ctx context.Context, data LLMRequestEventData) error

	// QueryLLMEvents returns LLM events, newest first.
	QueryLLMEvents(ctx context.Context, opts QueryOpts) ([]LLMEvent, error)

	// GetLLMEvent returns one event by ID, or nil if it does not exist.
	GetLLMEvent(ctx context.Context, id int) (*LLMEvent, error)

	// LLMUsageByPurpose aggregates token usage per purpose label.
	LLMUsageByPurpose(ctx context.Context) ([]PurposeUsage, error)

	// LLMUsageByModel aggregates token usage per model.
	LLMUsageByModel(ctx context.Context) ([]ModelUsage, error)

	// AppendAnalysis records a vocabulary analysis.
	AppendAnalysis(ctx context.Context, data AnalysisEventData) error

	// QueryAnalyses returns analyses, newest first.
	QueryAnalyses(ctx context.Context, opts QueryOpts) ([]AnalysisEvent, error)
}

// SurveyRecord is one stored survey row. Values are keyed by column header.
type SurveyRecord struct {
	ID            int
	ParticipantID string
	Timestamp     time.Time
	Values        map[string]string
}

// SurveyRepo persists survey responses locally.
type SurveyRepo interface {
	// SaveSurvey stores a response. Saving an existing participant ID
	// replaces its values.
	SaveSurvey(ctx context.Context, rec SurveyRecord) error

	// ListSurveys returns stored responses, oldest first.
	ListSurveys(ctx context.Context, opts QueryOpts) ([]SurveyRecord, error)
}
