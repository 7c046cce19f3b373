package store

import (
	"context"
	"fmt"

	"github.com/abhisek/precis/ent"
	"github.com/abhisek/precis/ent/analysisevent"
	"github.com/abhisek/precis/ent/predicate"
)

func (r *eventRepo) AppendAnalysis(ctx context.Context, data AnalysisEventData) error {
	seqNum, err := r.seq.Next(ctx)
	if err != nil {
		return err
	}

	create := r.client.AnalysisEvent.Create().
		SetSequence(seqNum).
		SetGrade(data.Grade).
		SetTrack(data.Track).
		SetSourceType(data.SourceType).
		SetPassageWords(data.PassageWords).
		SetSummaryWords(data.SummaryWords).
		SetTotalUniqueWords(data.TotalUniqueWords).
		SetTargetWords(data.TargetWords).
		SetTargetRatio(data.TargetRatio).
		SetEraARatio(data.EraARatio).
		SetEraBRatio(data.EraBRatio).
		SetDegraded(data.Degraded)
	if len(data.Keywords) > 0 {
		create.SetKeywords(data.Keywords)
	}
	if _, err := create.Save(ctx); err != nil {
		return fmt.Errorf("save analysis event: %w", err)
	}
	return nil
}

func (r *eventRepo) QueryAnalyses(ctx context.Context, opts QueryOpts) ([]AnalysisEvent, error) {
	var preds []predicate.AnalysisEvent
	if opts.After > 0 {
		preds = append(preds, analysisevent.SequenceGT(opts.After))
	}
	if opts.Before > 0 {
		preds = append(preds, analysisevent.SequenceLT(opts.Before))
	}
	if !opts.From.IsZero() {
		preds = append(preds, analysisevent.TimestampGTE(opts.From.UTC()))
	}
	if !opts.To.IsZero() {
		preds = append(preds, analysisevent.TimestampLTE(opts.To.UTC()))
	}

	q := r.client.AnalysisEvent.Query().
		Where(preds...).
		Order(ent.Desc(analysisevent.FieldSequence))
	if opts.Limit > 0 {
		q = q.Limit(opts.Limit)
	}

	rows, err := q.All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query analyses: %w", err)
	}
	out := make([]AnalysisEvent, 0, len(rows))
	for _, row := range rows {
		out = append(out, AnalysisEvent{
			ID:        row.ID,
			Sequence:  row.Sequence,
			Timestamp: row.Timestamp.UTC(),
			AnalysisEventData: AnalysisEventData{
				Grade:            row.Grade,
				Track:            row.Track,
				SourceType:       row.SourceType,
				PassageWords:     row.PassageWords,
				SummaryWords:     row.SummaryWords,
				TotalUniqueWords: row.TotalUniqueWords,
				TargetWords:      row.TargetWords,
				TargetRatio:      row.TargetRatio,
				EraARatio:        row.EraARatio,
				EraBRatio:        row.EraBRatio,
				Degraded:         row.Degraded,
				Keywords:         row.Keywords,
			},
		})
	}
	return out, nil
}
