package survey

import (
	"encoding/binary"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
)

// ErrConsentRequired is returned when the research consent box is unchecked.
var ErrConsentRequired = errors.New("research consent is required")

// TeacherInfo is the respondent's self-reported background.
type TeacherInfo struct {
	Grade      string `json:"grade"`
	SchoolType string `json:"school_type"`
	Experience string `json:"experience"`
}

// ToolUsage records what the respondent did in the session before the
// survey.
type ToolUsage struct {
	GradeLevel             string `json:"grade_level"`
	SubjectType            string `json:"subject_type"`
	SourceType             string `json:"source_type"`
	CompletedSummary       bool   `json:"completed_summary"`
	ReceivedFeedback       bool   `json:"received_feedback"`
	VocabAnalysisCompleted bool   `json:"vocab_analysis_completed"`
}

// Response is one submitted questionnaire.
type Response struct {
	Timestamp     time.Time      `json:"timestamp"`
	ParticipantID string         `json:"participant_id"`
	Teacher       TeacherInfo    `json:"teacher"`
	Usage         ToolUsage      `json:"usage"`
	Scores        map[string]int `json:"scores"`
	FeedbackText  string         `json:"feedback_text"`
	Consent       bool           `json:"consent"`
}

// NewResponse returns a response with every item at the neutral score.
func NewResponse() *Response {
	scores := make(map[string]int, len(Categories)*ItemsPerCategory)
	for _, k := range ItemKeys() {
		scores[k] = NeutralScore
	}
	return &Response{Scores: scores}
}

// Validate checks consent and that every item has a score in range.
func (r *Response) Validate() error {
	if !r.Consent {
		return ErrConsentRequired
	}

	var errs []string
	known := make(map[string]bool, len(r.Scores))
	for _, k := range ItemKeys() {
		known[k] = true
		v, ok := r.Scores[k]
		switch {
		case !ok:
			errs = append(errs, fmt.Sprintf("%s: not answered", k))
		case v < MinScore || v > MaxScore:
			errs = append(errs, fmt.Sprintf("%s: score %d out of range %d-%d", k, v, MinScore, MaxScore))
		}
	}
	for k := range r.Scores {
		if !known[k] {
			errs = append(errs, fmt.Sprintf("%s: unknown item", k))
		}
	}

	if len(errs) > 0 {
		return fmt.Errorf("survey validation failed:\n  %s", strings.Join(errs, "\n  "))
	}
	return nil
}

// Finalize stamps the response with a time and participant ID, unless it
// already has them.
func (r *Response) Finalize(now time.Time) {
	if r.Timestamp.IsZero() {
		r.Timestamp = now
	}
	if r.ParticipantID == "" {
		r.ParticipantID = NewParticipantID(r.Timestamp)
	}
}

// NewParticipantID builds an anonymous ID of the form
// P<yyyymmdd>_<hhmmss>_<nnn>.
func NewParticipantID(t time.Time) string {
	u := uuid.New()
	suffix := binary.BigEndian.Uint16(u[:2]) % 1000
	return fmt.Sprintf("P%s_%03d", t.Format("20060102_150405"), suffix)
}

// CategoryAverages returns the mean score per category code. Categories
// without any answered item are omitted.
func (r *Response) CategoryAverages() map[string]float64 {
	out := make(map[string]float64, len(Categories))
	for _, c := range Categories {
		sum, n := 0, 0
		for i := 1; i <= ItemsPerCategory; i++ {
			if v, ok := r.Scores[c.ItemKey(i)]; ok {
				sum += v
				n++
			}
		}
		if n > 0 {
			out[c.Code] = float64(sum) / float64(n)
		}
	}
	return out
}

// Headers is the spreadsheet column layout, in order.
var Headers = buildHeaders()

func buildHeaders() []string {
	h := []string{
		"timestamp", "participant_id", "teacher_grade", "school_type", "teaching_experience",
		"tool_grade_level", "tool_subject_type", "tool_source_type",
		"completed_summary", "received_feedback", "vocab_analysis_completed",
	}
	h = append(h, ItemKeys()...)
	return append(h, "feedback_text")
}

// TimestampLayout is how timestamps are written to the sheet.
const TimestampLayout = "2006-01-02T15:04:05.000000"

// Row renders the response in Headers order. Booleans and scores keep their
// types so the sheet stores them as such.
func (r *Response) Row() []any {
	row := []any{
		r.Timestamp.Format(TimestampLayout),
		r.ParticipantID,
		r.Teacher.Grade,
		r.Teacher.SchoolType,
		r.Teacher.Experience,
		r.Usage.GradeLevel,
		r.Usage.SubjectType,
		r.Usage.SourceType,
		r.Usage.CompletedSummary,
		r.Usage.ReceivedFeedback,
		r.Usage.VocabAnalysisCompleted,
	}
	for _, k := range ItemKeys() {
		if v, ok := r.Scores[k]; ok {
			row = append(row, v)
		} else {
			row = append(row, "")
		}
	}
	return append(row, flatten(r.FeedbackText))
}

// Record renders the response as a header-keyed map of strings, the shape
// read back from the sheet.
func (r *Response) Record() map[string]string {
	row := r.Row()
	out := make(map[string]string, len(Headers))
	for i, h := range Headers {
		out[h] = cellString(row[i])
	}
	return out
}

func cellString(v any) string {
	switch x := v.(type) {
	case string:
		return x
	case bool:
		if x {
			return "TRUE"
		}
		return "FALSE"
	case int:
		return strconv.Itoa(x)
	default:
		return fmt.Sprint(x)
	}
}

// flatten replaces line breaks so free text stays in one cell line.
func flatten(s string) string {
	return strings.NewReplacer("\r\n", " ", "\n", " ", "\r", " ").Replace(s)
}
