// Code generated by ent, DO NOT EDIT.

package analysisevent

import (
	"time"

	"entgo.io/ent/dialect/sql"
)

const (
	// Label holds the string label denoting the analysisevent type in the database.
	Label = "analysis_event"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldSequence holds the string denoting the sequence field in the database.
	FieldSequence = "sequence"
	// FieldTimestamp holds the string denoting the timestamp field in the database.
	FieldTimestamp = "timestamp"
	// FieldGrade holds the string denoting the grade field in the database.
	FieldGrade = "grade"
	// FieldTrack holds the string denoting the track field in the database.
	FieldTrack = "track"
	// FieldSourceType holds the string denoting the source_type field in the database.
	FieldSourceType = "source_type"
	// FieldPassageWords holds the string denoting the passage_words field in the database.
	FieldPassageWords = "passage_words"
	// FieldSummaryWords holds the string denoting the summary_words field in the database.
	FieldSummaryWords = "summary_words"
	// FieldTotalUniqueWords holds the string denoting the total_unique_words field in the database.
	FieldTotalUniqueWords = "total_unique_words"
	// FieldTargetWords holds the string denoting the target_words field in the database.
	FieldTargetWords = "target_words"
	// FieldTargetRatio holds the string denoting the target_ratio field in the database.
	FieldTargetRatio = "target_ratio"
	// FieldEraARatio holds the string denoting the era_a_ratio field in the database.
	FieldEraARatio = "era_a_ratio"
	// FieldEraBRatio holds the string denoting the era_b_ratio field in the database.
	FieldEraBRatio = "era_b_ratio"
	// FieldDegraded holds the string denoting the degraded field in the database.
	FieldDegraded = "degraded"
	// FieldKeywords holds the string denoting the keywords field in the database.
	FieldKeywords = "keywords"
	// Table holds the table name of the analysisevent in the database.
	Table = "analysis_events"
)

// Columns holds all SQL columns for analysisevent fields.
var Columns = []string{
	FieldID,
	FieldSequence,
	FieldTimestamp,
	FieldGrade,
	FieldTrack,
	FieldSourceType,
	FieldPassageWords,
	FieldSummaryWords,
	FieldTotalUniqueWords,
	FieldTargetWords,
	FieldTargetRatio,
	FieldEraARatio,
	FieldEraBRatio,
	FieldDegraded,
	FieldKeywords,
}

// ValidColumn reports if the column name is valid (part of the table columns).
func ValidColumn(column string) bool {
	for i := range Columns {
		if column == Columns[i] {
			return true
		}
	}
	return false
}

var (
	// DefaultTimestamp holds the default value on creation for the "timestamp" field.
	DefaultTimestamp func() time.Time
	// DefaultTrack holds the default value on creation for the "track" field.
	DefaultTrack string
	// DefaultSourceType holds the default value on creation for the "source_type" field.
	DefaultSourceType string
	// DefaultPassageWords holds the default value on creation for the "passage_words" field.
	DefaultPassageWords int
	// DefaultSummaryWords holds the default value on creation for the "summary_words" field.
	DefaultSummaryWords int
)

// OrderOption defines the ordering options for the AnalysisEvent queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// BySequence orders the results by the sequence field.
func BySequence(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSequence, opts...).ToFunc()
}

// ByTimestamp orders the results by the timestamp field.
func ByTimestamp(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTimestamp, opts...).ToFunc()
}

// ByGrade orders the results by the grade field.
func ByGrade(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldGrade, opts...).ToFunc()
}

// ByTrack orders the results by the track field.
func ByTrack(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTrack, opts...).ToFunc()
}

// BySourceType orders the results by the source_type field.
func BySourceType(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSourceType, opts...).ToFunc()
}

// ByPassageWords orders the results by the passage_words field.
func ByPassageWords(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldPassageWords, opts...).ToFunc()
}

// BySummaryWords orders the results by the summary_words field.
func BySummaryWords(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSummaryWords, opts...).ToFunc()
}

// ByTotalUniqueWords orders the results by the total_unique_words field.
func ByTotalUniqueWords(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTotalUniqueWords, opts...).ToFunc()
}

// ByTargetWords orders the results by the target_words field.
func ByTargetWords(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTargetWords, opts...).ToFunc()
}

// ByTargetRatio orders the results by the target_ratio field.
func ByTargetRatio(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTargetRatio, opts...).ToFunc()
}

// ByEraARatio orders the results by the era_a_ratio field.
func ByEraARatio(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldEraARatio, opts...).ToFunc()
}

// ByEraBRatio orders the results by the era_b_ratio field.
func ByEraBRatio(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldEraBRatio, opts...).ToFunc()
}

// ByDegraded orders the results by the degraded field.
func ByDegraded(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldDegraded, opts...).ToFunc()
}
