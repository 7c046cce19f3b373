package store

import (
	"testing"

	"entgo.io/ent"
	"entgo.io/ent/dialect/entsql"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abhisek/precis/ent/schema"
)

func entColumns(s ent.Interface) (string, []string) {
	var table string
	for _, a := range s.Annotations() {
		if ea, ok := a.(entsql.Annotation); ok {
			table = ea.Table
		}
	}
	cols := []string{"id"}
	for _, m := range s.Mixin() {
		for _, f := range m.Fields() {
			cols = append(cols, f.Descriptor().Name)
		}
	}
	for _, f := range s.Fields() {
		cols = append(cols, f.Descriptor().Name)
	}
	return table, cols
}

func TestAutoMigrateCreatesTables(t *testing.T) {
	s := openTestStore(t)

	for _, def := range []ent.Interface{
		schema.LLMRequestEvent{},
		schema.AnalysisEvent{},
		schema.SurveyResponse{},
	} {
		table, want := entColumns(def)
		require.NotEmpty(t, table)

		rows, err := s.DB().Query("SELECT name FROM pragma_table_info(?)", table)
		require.NoError(t, err)
		var got []string
		for rows.Next() {
			var name string
			require.NoError(t, rows.Scan(&name))
			got = append(got, name)
		}
		require.NoError(t, rows.Close())

		assert.ElementsMatch(t, want, got, "table %s", table)
	}
}
