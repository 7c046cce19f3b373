// Code generated by ent, DO NOT EDIT.

package ent

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/abhisek/precis/ent/analysisevent"
)

// AnalysisEvent is the model entity for the AnalysisEvent schema.
type AnalysisEvent struct {
	config `json:"-"`
	// ID of the ent.
	ID int `json:"id,omitempty"`
	// Global sequence number shared by all tables
	Sequence int64 `json:"sequence,omitempty"`
	// UTC time the row was written
	Timestamp time.Time `json:"timestamp,omitempty"`
	// tier1, tier2 or tier3
	Grade string `json:"grade,omitempty"`
	// Track holds the value of the "track" field.
	Track string `json:"track,omitempty"`
	// Where the passage came from, e.g. 수능 or 교과서
	SourceType string `json:"source_type,omitempty"`
	// PassageWords holds the value of the "passage_words" field.
	PassageWords int `json:"passage_words,omitempty"`
	// SummaryWords holds the value of the "summary_words" field.
	SummaryWords int `json:"summary_words,omitempty"`
	// TotalUniqueWords holds the value of the "total_unique_words" field.
	TotalUniqueWords int `json:"total_unique_words,omitempty"`
	// TargetWords holds the value of the "target_words" field.
	TargetWords int `json:"target_words,omitempty"`
	// Fraction of unique words in the grade's target list
	TargetRatio float64 `json:"target_ratio,omitempty"`
	// EraARatio holds the value of the "era_a_ratio" field.
	EraARatio float64 `json:"era_a_ratio,omitempty"`
	// EraBRatio holds the value of the "era_b_ratio" field.
	EraBRatio float64 `json:"era_b_ratio,omitempty"`
	// A word list was missing when the analysis ran
	Degraded bool `json:"degraded,omitempty"`
	// Keywords holds the value of the "keywords" field.
	Keywords     []string `json:"keywords,omitempty"`
	selectValues sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*AnalysisEvent) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case analysisevent.FieldKeywords:
			values[i] = new([]byte)
		case analysisevent.FieldDegraded:
			values[i] = new(sql.NullBool)
		case analysisevent.FieldTargetRatio, analysisevent.FieldEraARatio, analysisevent.FieldEraBRatio:
			values[i] = new(sql.NullFloat64)
		case analysisevent.FieldID, analysisevent.FieldSequence, analysisevent.FieldPassageWords, analysisevent.FieldSummaryWords, analysisevent.FieldTotalUniqueWords, analysisevent.FieldTargetWords:
			values[i] = new(sql.NullInt64)
		case analysisevent.FieldGrade, analysisevent.FieldTrack, analysisevent.FieldSourceType:
			values[i] = new(sql.NullString)
		case analysisevent.FieldTimestamp:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the AnalysisEvent fields.
func (_m *AnalysisEvent) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case analysisevent.FieldID:
			value, ok := values[i].(*sql.NullInt64)
			if !ok {
				return fmt.Errorf("unexpected type %T for field id", value)
			}
			_m.ID = int(value.Int64)
		case analysisevent.FieldSequence:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field sequence", values[i])
			} else if value.Valid {
				_m.Sequence = value.Int64
			}
		case analysisevent.FieldTimestamp:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field timestamp", values[i])
			} else if value.Valid {
				_m.Timestamp = value.Time
			}
		case analysisevent.FieldGrade:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field grade", values[i])
			} else if value.Valid {
				_m.Grade = value.String
			}
		case analysisevent.FieldTrack:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field track", values[i])
			} else if value.Valid {
				_m.Track = value.String
			}
		case analysisevent.FieldSourceType:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field source_type", values[i])
			} else if value.Valid {
				_m.SourceType = value.String
			}
		case analysisevent.FieldPassageWords:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field passage_words", values[i])
			} else if value.Valid {
				_m.PassageWords = int(value.Int64)
			}
		case analysisevent.FieldSummaryWords:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field summary_words", values[i])
			} else if value.Valid {
				_m.SummaryWords = int(value.Int64)
			}
		case analysisevent.FieldTotalUniqueWords:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field total_unique_words", values[i])
			} else if value.Valid {
				_m.TotalUniqueWords = int(value.Int64)
			}
		case analysisevent.FieldTargetWords:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field target_words", values[i])
			} else if value.Valid {
				_m.TargetWords = int(value.Int64)
			}
		case analysisevent.FieldTargetRatio:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field target_ratio", values[i])
			} else if value.Valid {
				_m.TargetRatio = value.Float64
			}
		case analysisevent.FieldEraARatio:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field era_a_ratio", values[i])
			} else if value.Valid {
				_m.EraARatio = value.Float64
			}
		case analysisevent.FieldEraBRatio:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field era_b_ratio", values[i])
			} else if value.Valid {
				_m.EraBRatio = value.Float64
			}
		case analysisevent.FieldDegraded:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field degraded", values[i])
			} else if value.Valid {
				_m.Degraded = value.Bool
			}
		case analysisevent.FieldKeywords:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field keywords", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.Keywords); err != nil {
					return fmt.Errorf("unmarshal field keywords: %w", err)
				}
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the AnalysisEvent.
// This includes values selected through modifiers, order, etc.
func (_m *AnalysisEvent) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this AnalysisEvent.
// Note that you need to call AnalysisEvent.Unwrap() before calling this method if this AnalysisEvent
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *AnalysisEvent) Update() *AnalysisEventUpdateOne {
	return NewAnalysisEventClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the AnalysisEvent entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *AnalysisEvent) Unwrap() *AnalysisEvent {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: AnalysisEvent is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *AnalysisEvent) String() string {
	var builder strings.Builder
	builder.WriteString("AnalysisEvent(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("sequence=")
	builder.WriteString(fmt.Sprintf("%v", _m.Sequence))
	builder.WriteString(", ")
	builder.WriteString("timestamp=")
	builder.WriteString(_m.Timestamp.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("grade=")
	builder.WriteString(_m.Grade)
	builder.WriteString(", ")
	builder.WriteString("track=")
	builder.WriteString(_m.Track)
	builder.WriteString(", ")
	builder.WriteString("source_type=")
	builder.WriteString(_m.SourceType)
	builder.WriteString(", ")
	builder.WriteString("passage_words=")
	builder.WriteString(fmt.Sprintf("%v", _m.PassageWords))
	builder.WriteString(", ")
	builder.WriteString("summary_words=")
	builder.WriteString(fmt.Sprintf("%v", _m.SummaryWords))
	builder.WriteString(", ")
	builder.WriteString("total_unique_words=")
	builder.WriteString(fmt.Sprintf("%v", _m.TotalUniqueWords))
	builder.WriteString(", ")
	builder.WriteString("target_words=")
	builder.WriteString(fmt.Sprintf("%v", _m.TargetWords))
	builder.WriteString(", ")
	builder.WriteString("target_ratio=")
	builder.WriteString(fmt.Sprintf("%v", _m.TargetRatio))
	builder.WriteString(", ")
	builder.WriteString("era_a_ratio=")
	builder.WriteString(fmt.Sprintf("%v", _m.EraARatio))
	builder.WriteString(", ")
	builder.WriteString("era_b_ratio=")
	builder.WriteString(fmt.Sprintf("%v", _m.EraBRatio))
	builder.WriteString(", ")
	builder.WriteString("degraded=")
	builder.WriteString(fmt.Sprintf("%v", _m.Degraded))
	builder.WriteString(", ")
	builder.WriteString("keywords=")
	builder.WriteString(fmt.Sprintf("%v", _m.Keywords))
	builder.WriteByte(')')
	return builder.String()
}

// AnalysisEvents is a parsable slice of AnalysisEvent.
type AnalysisEvents []*AnalysisEvent
