package store

import (
	"context"
	"fmt"
	"time"

	"github.com/abhisek/precis/ent"
	"github.com/abhisek/precis/ent/predicate"
	"github.com/abhisek/precis/ent/surveyresponse"
)

type surveyRepo struct {
	client *ent.Client
	seq    *sequenceCounter
}

// SaveSurvey inserts the record, or replaces the answers of an existing
// record with the same participant ID. Retrying a submission keeps one row.
func (r *surveyRepo) SaveSurvey(ctx context.Context, rec SurveyRecord) error {
	if rec.ParticipantID == "" {
		return fmt.Errorf("save survey: participant ID is required")
	}

	existing, err := r.client.SurveyResponse.Query().
		Where(surveyresponse.ParticipantIDEQ(rec.ParticipantID)).
		Only(ctx)
	switch {
	case err == nil:
		if err := existing.Update().SetAnswers(rec.Values).Exec(ctx); err != nil {
			return fmt.Errorf("update survey %s: %w", rec.ParticipantID, err)
		}
		return nil
	case !ent.IsNotFound(err):
		return fmt.Errorf("find survey %s: %w", rec.ParticipantID, err)
	}

	seqNum, err := r.seq.Next(ctx)
	if err != nil {
		return err
	}
	ts := rec.Timestamp
	if ts.IsZero() {
		ts = time.Now()
	}

	_, err = r.client.SurveyResponse.Create().
		SetSequence(seqNum).
		SetTimestamp(ts.UTC()).
		SetParticipantID(rec.ParticipantID).
		SetAnswers(rec.Values).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("save survey %s: %w", rec.ParticipantID, err)
	}
	return nil
}

func (r *surveyRepo) ListSurveys(ctx context.Context, opts QueryOpts) ([]SurveyRecord, error) {
	var preds []predicate.SurveyResponse
	if opts.After > 0 {
		preds = append(preds, surveyresponse.SequenceGT(opts.After))
	}
	if opts.Before > 0 {
		preds = append(preds, surveyresponse.SequenceLT(opts.Before))
	}
	if !opts.From.IsZero() {
		preds = append(preds, surveyresponse.TimestampGTE(opts.From.UTC()))
	}
	if !opts.To.IsZero() {
		preds = append(preds, surveyresponse.TimestampLTE(opts.To.UTC()))
	}

	q := r.client.SurveyResponse.Query().
		Where(preds...).
		Order(ent.Asc(surveyresponse.FieldSequence))
	if opts.Limit > 0 {
		q = q.Limit(opts.Limit)
	}

	rows, err := q.All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query surveys: %w", err)
	}
	out := make([]SurveyRecord, 0, len(rows))
	for _, row := range rows {
		out = append(out, SurveyRecord{
			ID:            row.ID,
			ParticipantID: row.ParticipantID,
			Timestamp:     row.Timestamp.UTC(),
			Values:        row.Answers,
		})
	}
	return out, nil
}
