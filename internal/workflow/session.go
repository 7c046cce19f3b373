// Package workflow drives one teacher through the passage, summary,
// feedback and survey steps.
package workflow

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/abhisek/precis/internal/grade"
	"github.com/abhisek/precis/internal/llm"
	"github.com/abhisek/precis/internal/summarize"
	"github.com/abhisek/precis/internal/survey"
	"github.com/abhisek/precis/internal/vocab"
)

// Stage is where the session currently is.
type Stage int

const (
	StageInput    Stage = iota // Collecting teacher info and the passage
	StageSummary               // Keywords and reference summary ready; teacher writes
	StageFeedback              // Feedback and vocabulary analysis shown
	StageSurvey                // Answering the questionnaire
	StageDone                  // Survey submitted
)

func (s Stage) String() string {
	switch s {
	case StageInput:
		return "input"
	case StageSummary:
		return "summary"
	case StageFeedback:
		return "feedback"
	case StageSurvey:
		return "survey"
	case StageDone:
		return "done"
	default:
		return "unknown"
	}
}

// ErrWrongStage is returned when an operation is not valid at the session's
// current stage.
var ErrWrongStage = errors.New("operation not allowed at this stage")

// Passage is the text the teacher brought plus where it came from.
type Passage struct {
	Text       string
	Grade      grade.Grade
	Track      grade.Track
	SourceType string
	SourceYear string
	ItemInfo   string
}

// Note records a collaborator failure the session carried on past.
type Note struct {
	Step    string
	Message string
}

// Session is the state of one interactive run. It is not safe for
// concurrent use; the TUI owns it.
type Session struct {
	ID        string
	StartedAt time.Time
	Stage     Stage

	Teacher survey.TeacherInfo
	Passage Passage

	Keywords  []string
	Glosses   map[string]string
	Reference *summarize.Summary

	TeacherSummary string
	Vocabulary     *vocab.Stats
	Feedback       *summarize.Feedback

	// Revision is the teacher's edited summary and its analysis.
	Revision      string
	RevisionStats *vocab.Stats

	ParticipantID string
	Notes         []Note
}

// NewSession starts an empty session at the input stage.
func NewSession(now time.Time) *Session {
	return &Session{
		ID:        uuid.NewString(),
		StartedAt: now,
		Stage:     StageInput,
		Glosses:   map[string]string{},
	}
}

func (s *Session) note(step string, err error) {
	s.Notes = append(s.Notes, Note{Step: step, Message: llm.Explain(err)})
}

// NotesFor returns the messages recorded for one step.
func (s *Session) NotesFor(step string) []string {
	var out []string
	for _, n := range s.Notes {
		if n.Step == step {
			out = append(out, n.Message)
		}
	}
	return out
}

// Usage summarizes what the teacher did, for the survey row.
func (s *Session) Usage() survey.ToolUsage {
	return survey.ToolUsage{
		GradeLevel:             s.Passage.Grade.Label(),
		SubjectType:            s.Passage.Track.Label(),
		SourceType:             s.Passage.SourceType,
		CompletedSummary:       strings.TrimSpace(s.TeacherSummary) != "",
		ReceivedFeedback:       s.Feedback != nil,
		VocabAnalysisCompleted: s.Vocabulary != nil,
	}
}

// NewPassage clears everything tied to the passage and returns to input.
// Teacher info is kept.
func (s *Session) NewPassage() {
	teacher := s.Teacher
	*s = Session{
		ID:        s.ID,
		StartedAt: s.StartedAt,
		Stage:     StageInput,
		Teacher:   teacher,
		Glosses:   map[string]string{},
	}
}

// Restart clears the whole session, teacher info included.
func (s *Session) Restart() {
	s.NewPassage()
	s.Teacher = survey.TeacherInfo{}
}
