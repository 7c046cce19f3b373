package workflow

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/abhisek/precis/internal/grade"
	"github.com/abhisek/precis/internal/keywords"
	"github.com/abhisek/precis/internal/logger"
	"github.com/abhisek/precis/internal/store"
	"github.com/abhisek/precis/internal/summarize"
	"github.com/abhisek/precis/internal/survey"
	"github.com/abhisek/precis/internal/vocab"
)

// KeywordCount is how many keywords are shown for a passage.
const KeywordCount = 5

// Step names used in session notes.
const (
	StepGloss    = "gloss"
	StepSummary  = "summary"
	StepFeedback = "feedback"
	StepStore    = "store"
	StepSurvey   = "survey"
)

// Summarizer is the LLM-backed side of the workflow.
type Summarizer interface {
	Summarize(ctx context.Context, in summarize.SummaryInput) (*summarize.Summary, error)
	Feedback(ctx context.Context, in summarize.FeedbackInput) (*summarize.Feedback, error)
	TranslateKeywords(ctx context.Context, words []string) (map[string]string, error)
}

// Deps are the collaborators a Runner uses. Events, Survey and
// ObserveAnalysis are optional.
type Deps struct {
	Summarizer Summarizer
	Vocab      *vocab.Catalog
	Events     store.EventRepo
	Survey     survey.Recorder
	Log        *logger.Logger

	// ObserveAnalysis sees each completed vocabulary analysis.
	ObserveAnalysis func(grade string, degraded bool)

	Now func() time.Time
}

// Runner advances sessions through their stages.
type Runner struct {
	d Deps
}

func NewRunner(d Deps) *Runner {
	if d.Vocab == nil {
		d.Vocab = vocab.NewCatalog(nil, nil)
	}
	if d.Log == nil {
		d.Log = logger.Nop()
	}
	if d.Now == nil {
		d.Now = time.Now
	}
	return &Runner{d: d}
}

// Start opens a new session.
func (r *Runner) Start() *Session {
	return NewSession(r.d.Now())
}

// Prepare takes the teacher info and passage, extracts keywords, then
// fetches glosses and the reference summary concurrently. Collaborator
// failures are recorded as notes; the session still moves to the summary
// stage.
func (r *Runner) Prepare(ctx context.Context, s *Session, teacher survey.TeacherInfo, p Passage) error {
	if s.Stage != StageInput {
		return fmt.Errorf("prepare at %s: %w", s.Stage, ErrWrongStage)
	}
	p.Text = strings.TrimSpace(p.Text)
	if p.Text == "" {
		return summarize.ErrEmptyPassage
	}
	if p.Grade == grade.Unknown {
		return fmt.Errorf("grade is required")
	}
	if !p.Grade.RequiresTrack() {
		p.Track = grade.NoTrack
	}

	s.Teacher = teacher
	s.Passage = p
	s.Keywords = keywords.Extract(p.Text, KeywordCount)

	var (
		glosses map[string]string
		ref     *summarize.Summary
		gerr    error
		serr    error
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		glosses, gerr = r.d.Summarizer.TranslateKeywords(gctx, s.Keywords)
		return nil
	})
	g.Go(func() error {
		ref, serr = r.d.Summarizer.Summarize(gctx, summarize.SummaryInput{
			Passage: p.Text,
			Grade:   p.Grade,
			Track:   p.Track,
		})
		return nil
	})
	_ = g.Wait()

	s.Glosses = map[string]string{}
	if gerr != nil {
		r.d.Log.Warn("keyword gloss failed", "session", s.ID, "error", gerr)
		s.note(StepGloss, gerr)
	} else {
		s.Glosses = glosses
	}
	if serr != nil {
		r.d.Log.Warn("reference summary failed", "session", s.ID, "error", serr)
		s.note(StepSummary, serr)
	} else {
		s.Reference = ref
	}

	s.Stage = StageSummary
	r.d.Log.Info("passage prepared",
		"session", s.ID,
		"grade", p.Grade.String(),
		"keywords", len(s.Keywords),
		"reference", s.Reference != nil,
	)
	return nil
}

// Review analyzes the teacher's summary and asks for feedback on it. The
// vocabulary analysis is always recorded; a feedback failure becomes a note.
func (r *Runner) Review(ctx context.Context, s *Session, teacherSummary string) error {
	if s.Stage != StageSummary && s.Stage != StageFeedback {
		return fmt.Errorf("review at %s: %w", s.Stage, ErrWrongStage)
	}
	teacherSummary = strings.TrimSpace(teacherSummary)
	if teacherSummary == "" {
		return summarize.ErrEmptySummary
	}

	s.TeacherSummary = teacherSummary
	s.Revision, s.RevisionStats = "", nil
	stats := r.d.Vocab.AnalyzeForGrade(teacherSummary, s.Passage.Grade)
	s.Vocabulary = &stats

	fb, err := r.d.Summarizer.Feedback(ctx, summarize.FeedbackInput{
		Passage:        s.Passage.Text,
		TeacherSummary: teacherSummary,
		Grade:          s.Passage.Grade,
		Track:          s.Passage.Track,
	})
	if err != nil {
		r.d.Log.Warn("feedback failed", "session", s.ID, "error", err)
		s.note(StepFeedback, err)
		s.Feedback = nil
	} else {
		s.Feedback = fb
	}

	r.recordAnalysis(ctx, s, stats)
	s.Stage = StageFeedback
	return nil
}

func (r *Runner) recordAnalysis(ctx context.Context, s *Session, stats vocab.Stats) {
	if r.d.ObserveAnalysis != nil {
		r.d.ObserveAnalysis(s.Passage.Grade.String(), stats.Degraded)
	}
	if r.d.Events == nil {
		return
	}
	err := r.d.Events.AppendAnalysis(ctx, store.AnalysisEventData{
		Grade:            s.Passage.Grade.String(),
		Track:            s.Passage.Track.String(),
		SourceType:       s.Passage.SourceType,
		PassageWords:     summarize.CountWords(s.Passage.Text),
		SummaryWords:     summarize.CountWords(s.TeacherSummary),
		TotalUniqueWords: stats.TotalUniqueWords,
		TargetWords:      stats.TargetWords,
		TargetRatio:      stats.TargetRatio,
		EraARatio:        stats.EraARatio,
		EraBRatio:        stats.EraBRatio,
		Degraded:         stats.Degraded,
		Keywords:         s.Keywords,
	})
	if err != nil {
		r.d.Log.Error("recording analysis failed", "session", s.ID, "error", err)
		s.note(StepStore, err)
	}
}

// AnalyzeRevision scores an edited summary without asking for new
// feedback. An empty or unchanged text clears the revision.
func (r *Runner) AnalyzeRevision(s *Session, text string) *vocab.Stats {
	text = strings.TrimSpace(text)
	if text == "" || text == s.TeacherSummary {
		s.Revision, s.RevisionStats = "", nil
		return nil
	}
	stats := r.d.Vocab.AnalyzeForGrade(text, s.Passage.Grade)
	s.Revision, s.RevisionStats = text, &stats
	return &stats
}

// BeginSurvey moves to the questionnaire. Any stage after input may start it
// unless the survey was already submitted.
func (r *Runner) BeginSurvey(s *Session) error {
	if s.Stage == StageInput || s.Stage == StageDone {
		return fmt.Errorf("survey at %s: %w", s.Stage, ErrWrongStage)
	}
	s.Stage = StageSurvey
	return nil
}

// BackToFeedback leaves the survey without submitting.
func (r *Runner) BackToFeedback(s *Session) error {
	if s.Stage != StageSurvey {
		return fmt.Errorf("leave survey at %s: %w", s.Stage, ErrWrongStage)
	}
	if s.TeacherSummary == "" {
		s.Stage = StageSummary
	} else {
		s.Stage = StageFeedback
	}
	return nil
}

// SubmitSurvey fills the response from the session, validates and records
// it. Validation errors leave the session unchanged. A recorder failure is
// noted and returned so the teacher can retry.
func (r *Runner) SubmitSurvey(ctx context.Context, s *Session, resp *survey.Response) error {
	if s.Stage != StageSurvey {
		return fmt.Errorf("submit survey at %s: %w", s.Stage, ErrWrongStage)
	}
	resp.Teacher = s.Teacher
	resp.Usage = s.Usage()
	if err := resp.Validate(); err != nil {
		return err
	}
	resp.Finalize(r.d.Now())

	if r.d.Survey == nil {
		return errors.New("no survey destination configured")
	}
	if err := r.d.Survey.Record(ctx, resp); err != nil {
		r.d.Log.Error("recording survey failed", "session", s.ID, "participant_id", resp.ParticipantID, "error", err)
		s.note(StepSurvey, err)
		return err
	}

	s.ParticipantID = resp.ParticipantID
	s.Stage = StageDone
	r.d.Log.Info("survey submitted", "session", s.ID, "participant_id", resp.ParticipantID)
	return nil
}
