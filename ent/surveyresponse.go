// Code generated by ent, DO NOT EDIT.

package ent

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/abhisek/precis/ent/surveyresponse"
)

// SurveyResponse is the model entity for the SurveyResponse schema.
type SurveyResponse struct {
	config `json:"-"`
	// ID of the ent.
	ID int `json:"id,omitempty"`
	// Global sequence number shared by all tables
	Sequence int64 `json:"sequence,omitempty"`
	// UTC time the row was written
	Timestamp time.Time `json:"timestamp,omitempty"`
	// P<yyyymmdd_hhmmss>_<nnn>
	ParticipantID string `json:"participant_id,omitempty"`
	// Cell values keyed by spreadsheet column header
	Answers      map[string]string `json:"answers,omitempty"`
	selectValues sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*SurveyResponse) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case surveyresponse.FieldAnswers:
			values[i] = new([]byte)
		case surveyresponse.FieldID, surveyresponse.FieldSequence:
			values[i] = new(sql.NullInt64)
		case surveyresponse.FieldParticipantID:
			values[i] = new(sql.NullString)
		case surveyresponse.FieldTimestamp:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the SurveyResponse fields.
func (_m *SurveyResponse) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case surveyresponse.FieldID:
			value, ok := values[i].(*sql.NullInt64)
			if !ok {
				return fmt.Errorf("unexpected type %T for field id", value)
			}
			_m.ID = int(value.Int64)
		case surveyresponse.FieldSequence:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field sequence", values[i])
			} else if value.Valid {
				_m.Sequence = value.Int64
			}
		case surveyresponse.FieldTimestamp:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field timestamp", values[i])
			} else if value.Valid {
				_m.Timestamp = value.Time
			}
		case surveyresponse.FieldParticipantID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field participant_id", values[i])
			} else if value.Valid {
				_m.ParticipantID = value.String
			}
		case surveyresponse.FieldAnswers:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field answers", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.Answers); err != nil {
					return fmt.Errorf("unmarshal field answers: %w", err)
				}
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the SurveyResponse.
// This includes values selected through modifiers, order, etc.
func (_m *SurveyResponse) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this SurveyResponse.
// Note that you need to call SurveyResponse.Unwrap() before calling this method if this SurveyResponse
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *SurveyResponse) Update() *SurveyResponseUpdateOne {
	return NewSurveyResponseClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the SurveyResponse entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *SurveyResponse) Unwrap() *SurveyResponse {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: SurveyResponse is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *SurveyResponse) String() string {
	var builder strings.Builder
	builder.WriteString("SurveyResponse(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("sequence=")
	builder.WriteString(fmt.Sprintf("%v", _m.Sequence))
	builder.WriteString(", ")
	builder.WriteString("timestamp=")
	builder.WriteString(_m.Timestamp.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("participant_id=")
	builder.WriteString(_m.ParticipantID)
	builder.WriteString(", ")
	builder.WriteString("answers=")
	builder.WriteString(fmt.Sprintf("%v", _m.Answers))
	builder.WriteByte(')')
	return builder.String()
}

// SurveyResponses is a parsable slice of SurveyResponse.
type SurveyResponses []*SurveyResponse
