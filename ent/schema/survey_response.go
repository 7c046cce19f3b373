package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema"
	"entgo.io/ent/schema/field"
)

// SurveyResponse keeps a local copy of each submitted research survey.
type SurveyResponse struct {
	ent.Schema
}

func (SurveyResponse) Annotations() []schema.Annotation {
	return []schema.Annotation{entsql.Annotation{Table: "survey_responses"}}
}

func (SurveyResponse) Mixin() []ent.Mixin {
	return []ent.Mixin{EventMixin{}}
}

func (SurveyResponse) Fields() []ent.Field {
	return []ent.Field{
		field.String("participant_id").
			Unique().
			Comment("P<yyyymmdd_hhmmss>_<nnn>"),
		field.JSON("answers", map[string]string{}).
			Comment("Cell values keyed by spreadsheet column header"),
	}
}
