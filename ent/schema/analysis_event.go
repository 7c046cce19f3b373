package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema"
	"entgo.io/ent/schema/field"
)

// AnalysisEvent records the vocabulary analysis of one teacher summary.
type AnalysisEvent struct {
	ent.Schema
}

func (AnalysisEvent) Annotations() []schema.Annotation {
	return []schema.Annotation{entsql.Annotation{Table: "analysis_events"}}
}

func (AnalysisEvent) Mixin() []ent.Mixin {
	return []ent.Mixin{EventMixin{}}
}

func (AnalysisEvent) Fields() []ent.Field {
	return []ent.Field{
		field.String("grade").
			Comment("tier1, tier2 or tier3"),
		field.String("track").
			Default(""),
		field.String("source_type").
			Default("").
			Comment("Where the passage came from, e.g. 수능 or 교과서"),
		field.Int("passage_words").
			Default(0),
		field.Int("summary_words").
			Default(0),
		field.Int("total_unique_words"),
		field.Int("target_words"),
		field.Float("target_ratio").
			Comment("Fraction of unique words in the grade's target list"),
		field.Float("era_a_ratio"),
		field.Float("era_b_ratio"),
		field.Bool("degraded").
			Comment("A word list was missing when the analysis ran"),
		field.Strings("keywords").
			Optional(),
	}
}
