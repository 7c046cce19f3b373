package survey

import (
	"context"
	"fmt"

	"github.com/abhisek/precis/internal/logger"
	"github.com/abhisek/precis/internal/store"
)

// Recorder persists a finalized response.
type Recorder interface {
	Record(ctx context.Context, r *Response) error
}

// Source reads back stored responses as header-keyed records, oldest first.
type Source interface {
	Records(ctx context.Context) ([]map[string]string, error)
}

// LocalRecorder keeps responses in the local store.
type LocalRecorder struct {
	repo store.SurveyRepo
}

func NewLocalRecorder(repo store.SurveyRepo) *LocalRecorder {
	return &LocalRecorder{repo: repo}
}

func (l *LocalRecorder) Record(ctx context.Context, r *Response) error {
	if r.ParticipantID == "" {
		return fmt.Errorf("record survey: response is not finalized")
	}
	return l.repo.SaveSurvey(ctx, store.SurveyRecord{
		ParticipantID: r.ParticipantID,
		Timestamp:     r.Timestamp,
		Values:        r.Record(),
	})
}

func (l *LocalRecorder) Records(ctx context.Context) ([]map[string]string, error) {
	recs, err := l.repo.ListSurveys(ctx, store.QueryOpts{})
	if err != nil {
		return nil, err
	}
	out := make([]map[string]string, len(recs))
	for i, rec := range recs {
		out[i] = rec.Values
	}
	return out, nil
}

// Tee records to a primary destination and mirrors every response locally.
// The primary's error is returned; mirror failures are logged. The local
// store keeps one row per participant ID, so retries after a primary
// failure do not collide in the mirror.
type Tee struct {
	Primary     Recorder
	PrimaryName string
	Mirror      Recorder
	Log         *logger.Logger
	// Observe, when set, sees each destination's outcome.
	Observe func(destination string, err error)
}

func (t *Tee) Record(ctx context.Context, r *Response) error {
	perr := t.Primary.Record(ctx, r)
	t.observe(t.PrimaryName, perr)

	if t.Mirror != nil {
		merr := t.Mirror.Record(ctx, r)
		t.observe("local", merr)
		if merr != nil && t.Log != nil {
			t.Log.Warn("mirroring survey response failed", "participant_id", r.ParticipantID, "error", merr)
		}
	}

	if perr != nil {
		return fmt.Errorf("record survey to %s: %w", t.PrimaryName, perr)
	}
	return nil
}

func (t *Tee) observe(dest string, err error) {
	if t.Observe != nil {
		t.Observe(dest, err)
	}
}
