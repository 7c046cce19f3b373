// Package summarize generates reference summaries, keyword glosses and
// feedback on teacher-written summaries through an LLM provider.
package summarize

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/abhisek/precis/internal/curriculum"
	"github.com/abhisek/precis/internal/grade"
	"github.com/abhisek/precis/internal/llm"
	"github.com/abhisek/precis/internal/vocab"
)

// Service turns passages into LLM requests. It holds no per-call state and
// is safe for concurrent use.
type Service struct {
	provider   llm.Provider
	curriculum *curriculum.Catalog
	vocab      *vocab.Catalog
	cfg        Config
}

// New creates a Service. A nil vocabulary catalog behaves as two empty lists.
func New(provider llm.Provider, cur *curriculum.Catalog, voc *vocab.Catalog, cfg Config) *Service {
	if voc == nil {
		voc = vocab.NewCatalog(nil, nil)
	}
	return &Service{provider: provider, curriculum: cur, vocab: voc, cfg: cfg}
}

// resolve looks up curriculum guidance. A miss yields generic guidance
// rather than an error.
func (s *Service) resolve(g grade.Grade, t grade.Track) (guidance, error) {
	out := guidance{label: audienceLabel(g, t)}
	if s.curriculum == nil {
		return out, nil
	}

	d, err := s.curriculum.Resolve(g, t)
	switch {
	case errors.Is(err, curriculum.ErrNotFound):
		return out, nil
	case err != nil:
		return out, err
	}
	out.desc = d
	if w, ok := s.curriculum.Guideline(g); ok {
		out.guide = &w
	}
	return out, nil
}

func audienceLabel(g grade.Grade, t grade.Track) string {
	if g == grade.Unknown {
		return "student"
	}
	if g.RequiresTrack() && t != grade.NoTrack {
		return fmt.Sprintf("%s (%s)", g.Label(), t.Label())
	}
	return g.Label()
}

type summaryOutput struct {
	Summary string `json:"summary"`
}

// Summarize writes a reference summary of the passage for the grade.
func (s *Service) Summarize(ctx context.Context, in SummaryInput) (*Summary, error) {
	if strings.TrimSpace(in.Passage) == "" {
		return nil, ErrEmptyPassage
	}
	g, err := s.resolve(in.Grade, in.Track)
	if err != nil {
		return nil, err
	}

	ctx = llm.WithPurpose(ctx, PurposeSummary)
	req := llm.Request{
		System:      summarySystemPrompt,
		Messages:    llm.UserMessage(buildSummaryUserMessage(in.Passage, g)),
		Schema:      SummarySchema,
		MaxTokens:   s.cfg.SummaryMaxTokens,
		Temperature: s.cfg.SummaryTemperature,
	}

	resp, err := s.provider.Generate(ctx, req)
	if err != nil {
		return nil, fmt.Errorf("reference summary: %w", err)
	}

	var out summaryOutput
	if err := resp.Decode(&out); err != nil {
		return nil, fmt.Errorf("parse summary response: %w", err)
	}

	text := strings.TrimSpace(out.Summary)
	n := CountWords(text)
	return &Summary{
		Text:         text,
		WordCount:    n,
		WithinTarget: WithinTarget(n),
		Generic:      g.generic(),
	}, nil
}

type feedbackOutput struct {
	Criteria []Criterion `json:"criteria"`
	Overall  string      `json:"overall"`
	Revised  string      `json:"revised_summary"`
}

// Feedback reviews the teacher's summary. The vocabulary analysis runs
// locally and is both returned and quoted in the prompt.
func (s *Service) Feedback(ctx context.Context, in FeedbackInput) (*Feedback, error) {
	if strings.TrimSpace(in.TeacherSummary) == "" {
		return nil, ErrEmptySummary
	}
	if strings.TrimSpace(in.Passage) == "" {
		return nil, ErrEmptyPassage
	}
	g, err := s.resolve(in.Grade, in.Track)
	if err != nil {
		return nil, err
	}

	stats := s.vocab.AnalyzeForGrade(in.TeacherSummary, in.Grade)

	ctx = llm.WithPurpose(ctx, PurposeFeedback)
	req := llm.Request{
		System:      feedbackSystemPrompt,
		Messages:    llm.UserMessage(buildFeedbackUserMessage(in, g, stats)),
		Schema:      FeedbackSchema,
		MaxTokens:   s.cfg.FeedbackMaxTokens,
		Temperature: s.cfg.FeedbackTemperature,
	}

	resp, err := s.provider.Generate(ctx, req)
	if err != nil {
		return nil, fmt.Errorf("summary feedback: %w", err)
	}

	var out feedbackOutput
	if err := resp.Decode(&out); err != nil {
		return nil, fmt.Errorf("parse feedback response: %w", err)
	}

	n := CountWords(in.TeacherSummary)
	return &Feedback{
		Criteria:     orderCriteria(out.Criteria),
		Overall:      strings.TrimSpace(out.Overall),
		Revised:      strings.TrimSpace(out.Revised),
		Vocabulary:   stats,
		WordCount:    n,
		WithinTarget: WithinTarget(n),
		Generic:      g.generic(),
	}, nil
}

// orderCriteria keeps the first verdict per known criterion, in display
// order, and fills in names.
func orderCriteria(in []Criterion) []Criterion {
	rank := make(map[CriterionID]int, len(Criteria))
	for i, c := range Criteria {
		rank[c.ID] = i
	}

	seen := make(map[CriterionID]bool, len(in))
	out := make([]Criterion, 0, len(in))
	for _, c := range in {
		if _, ok := rank[c.ID]; !ok || seen[c.ID] {
			continue
		}
		seen[c.ID] = true
		c.Name = CriterionName(c.ID)
		out = append(out, c)
	}
	sort.SliceStable(out, func(i, j int) bool { return rank[out[i].ID] < rank[out[j].ID] })
	return out
}

type glossOutput struct {
	Glosses []struct {
		Word    string `json:"word"`
		Meaning string `json:"meaning"`
	} `json:"glosses"`
}

// TranslateKeywords returns a Korean gloss per word. Only requested words
// appear in the result; words the model skipped are absent.
func (s *Service) TranslateKeywords(ctx context.Context, words []string) (map[string]string, error) {
	out := make(map[string]string, len(words))
	if len(words) == 0 {
		return out, nil
	}

	ctx = llm.WithPurpose(ctx, PurposeGloss)
	req := llm.Request{
		System:      glossSystemPrompt,
		Messages:    llm.UserMessage(buildGlossUserMessage(words)),
		Schema:      GlossSchema,
		MaxTokens:   s.cfg.GlossMaxTokens,
		Temperature: s.cfg.GlossTemperature,
	}

	resp, err := s.provider.Generate(ctx, req)
	if err != nil {
		return nil, fmt.Errorf("keyword gloss: %w", err)
	}

	var parsed glossOutput
	if err := resp.Decode(&parsed); err != nil {
		return nil, fmt.Errorf("parse gloss response: %w", err)
	}

	wanted := make(map[string]string, len(words))
	for _, w := range words {
		wanted[strings.ToLower(w)] = w
	}
	for _, g := range parsed.Glosses {
		w, ok := wanted[strings.ToLower(strings.TrimSpace(g.Word))]
		meaning := strings.TrimSpace(g.Meaning)
		if !ok || meaning == "" {
			continue
		}
		if _, dup := out[w]; !dup {
			out[w] = meaning
		}
	}
	return out, nil
}
