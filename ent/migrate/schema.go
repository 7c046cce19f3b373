// Code generated by ent, DO NOT EDIT.

package migrate

import (
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

var (
	// AnalysisEventsColumns holds the columns for the "analysis_events" table.
	AnalysisEventsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "sequence", Type: field.TypeInt64, Unique: true},
		{Name: "timestamp", Type: field.TypeTime},
		{Name: "grade", Type: field.TypeString},
		{Name: "track", Type: field.TypeString, Default: ""},
		{Name: "source_type", Type: field.TypeString, Default: ""},
		{Name: "passage_words", Type: field.TypeInt, Default: 0},
		{Name: "summary_words", Type: field.TypeInt, Default: 0},
		{Name: "total_unique_words", Type: field.TypeInt},
		{Name: "target_words", Type: field.TypeInt},
		{Name: "target_ratio", Type: field.TypeFloat64},
		{Name: "era_a_ratio", Type: field.TypeFloat64},
		{Name: "era_b_ratio", Type: field.TypeFloat64},
		{Name: "degraded", Type: field.TypeBool},
		{Name: "keywords", Type: field.TypeJSON, Nullable: true},
	}
	// AnalysisEventsTable holds the schema information for the "analysis_events" table.
	AnalysisEventsTable = &schema.Table{
		Name:       "analysis_events",
		Columns:    AnalysisEventsColumns,
		PrimaryKey: []*schema.Column{AnalysisEventsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "analysisevent_timestamp",
				Unique:  false,
				Columns: []*schema.Column{AnalysisEventsColumns[2]},
			},
		},
	}
	// LlmRequestEventsColumns holds the columns for the "llm_request_events" table.
	LlmRequestEventsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "sequence", Type: field.TypeInt64, Unique: true},
		{Name: "timestamp", Type: field.TypeTime},
		{Name: "provider", Type: field.TypeString},
		{Name: "model", Type: field.TypeString},
		{Name: "purpose", Type: field.TypeString},
		{Name: "input_tokens", Type: field.TypeInt, Default: 0},
		{Name: "output_tokens", Type: field.TypeInt, Default: 0},
		{Name: "latency_ms", Type: field.TypeInt64, Default: 0},
		{Name: "success", Type: field.TypeBool},
		{Name: "error_message", Type: field.TypeString, Default: ""},
		{Name: "request_body", Type: field.TypeString, Size: 2147483647, Default: ""},
		{Name: "response_body", Type: field.TypeString, Size: 2147483647, Default: ""},
	}
	// LlmRequestEventsTable holds the schema information for the "llm_request_events" table.
	LlmRequestEventsTable = &schema.Table{
		Name:       "llm_request_events",
		Columns:    LlmRequestEventsColumns,
		PrimaryKey: []*schema.Column{LlmRequestEventsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "llmrequestevent_timestamp",
				Unique:  false,
				Columns: []*schema.Column{LlmRequestEventsColumns[2]},
			},
			{
				Name:    "llmrequestevent_purpose",
				Unique:  false,
				Columns: []*schema.Column{LlmRequestEventsColumns[5]},
			},
		},
	}
	// SurveyResponsesColumns holds the columns for the "survey_responses" table.
	SurveyResponsesColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "sequence", Type: field.TypeInt64, Unique: true},
		{Name: "timestamp", Type: field.TypeTime},
		{Name: "participant_id", Type: field.TypeString, Unique: true},
		{Name: "answers", Type: field.TypeJSON},
	}
	// SurveyResponsesTable holds the schema information for the "survey_responses" table.
	SurveyResponsesTable = &schema.Table{
		Name:       "survey_responses",
		Columns:    SurveyResponsesColumns,
		PrimaryKey: []*schema.Column{SurveyResponsesColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "surveyresponse_timestamp",
				Unique:  false,
				Columns: []*schema.Column{SurveyResponsesColumns[2]},
			},
		},
	}
	// Tables holds all the tables in the schema.
	Tables = []*schema.Table{
		AnalysisEventsTable,
		LlmRequestEventsTable,
		SurveyResponsesTable,
	}
)

func init() {
	AnalysisEventsTable.Annotation = &entsql.Annotation{
		Table: "analysis_events",
	}
	LlmRequestEventsTable.Annotation = &entsql.Annotation{
		Table: "llm_request_events",
	}
	SurveyResponsesTable.Annotation = &entsql.Annotation{
		Table: "survey_responses",
	}
}
