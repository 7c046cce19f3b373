package sheets

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	gsheets "google.golang.org/api/sheets/v4"

	"github.com/abhisek/precis/internal/survey"
)

// fakeBackend keeps worksheets in memory, keyed by title.
type fakeBackend struct {
	title    string
	order    []string
	ids      map[string]int64
	rows     map[string][][]any
	nextID   int64
	formats  []*gsheets.RepeatCellRequest
	failNext error
}

func newFakeBackend(title string) *fakeBackend {
	return &fakeBackend{title: title, ids: map[string]int64{}, rows: map[string][][]any{}, nextID: 100}
}

func (f *fakeBackend) addSheet(title string, rows ...[]any) {
	f.nextID++
	f.ids[title] = f.nextID
	f.order = append(f.order, title)
	f.rows[title] = rows
}

func (f *fakeBackend) fail() error {
	err := f.failNext
	f.failNext = nil
	return err
}

func (f *fakeBackend) Spreadsheet(_ context.Context, id string) (*gsheets.Spreadsheet, error) {
	if err := f.fail(); err != nil {
		return nil, err
	}
	ss := &gsheets.Spreadsheet{SpreadsheetId: id, Properties: &gsheets.SpreadsheetProperties{Title: f.title}}
	for _, t := range f.order {
		ss.Sheets = append(ss.Sheets, &gsheets.Sheet{Properties: &gsheets.SheetProperties{SheetId: f.ids[t], Title: t}})
	}
	return ss, nil
}

func (f *fakeBackend) BatchUpdate(_ context.Context, _ string, req *gsheets.BatchUpdateSpreadsheetRequest) (*gsheets.BatchUpdateSpreadsheetResponse, error) {
	if err := f.fail(); err != nil {
		return nil, err
	}
	resp := &gsheets.BatchUpdateSpreadsheetResponse{}
	for _, r := range req.Requests {
		reply := &gsheets.Response{}
		switch {
		case r.AddSheet != nil:
			f.addSheet(r.AddSheet.Properties.Title)
			reply.AddSheet = &gsheets.AddSheetResponse{Properties: &gsheets.SheetProperties{
				SheetId: f.ids[r.AddSheet.Properties.Title],
				Title:   r.AddSheet.Properties.Title,
			}}
		case r.UpdateSheetProperties != nil:
			p := r.UpdateSheetProperties.Properties
			for i, t := range f.order {
				if f.ids[t] == p.SheetId {
					f.order[i] = p.Title
					f.ids[p.Title] = p.SheetId
					f.rows[p.Title] = f.rows[t]
					delete(f.ids, t)
					delete(f.rows, t)
				}
			}
		case r.RepeatCell != nil:
			f.formats = append(f.formats, r.RepeatCell)
		}
		resp.Replies = append(resp.Replies, reply)
	}
	return resp, nil
}

func sheetOf(rng string) string {
	name, _, _ := strings.Cut(rng, "!")
	return strings.ReplaceAll(strings.Trim(name, "'"), "''", "'")
}

func (f *fakeBackend) Values(_ context.Context, _ string, rng string) ([][]any, error) {
	if err := f.fail(); err != nil {
		return nil, err
	}
	rows := f.rows[sheetOf(rng)]
	if strings.HasSuffix(rng, "!1:1") && len(rows) > 0 {
		return rows[:1], nil
	}
	return rows, nil
}

func (f *fakeBackend) Append(_ context.Context, _ string, rng string, row []any) error {
	if err := f.fail(); err != nil {
		return err
	}
	name := sheetOf(rng)
	f.rows[name] = append(f.rows[name], row)
	return nil
}

func (f *fakeBackend) Update(_ context.Context, _ string, rng string, rows [][]any) error {
	if err := f.fail(); err != nil {
		return err
	}
	name := sheetOf(rng)
	existing := f.rows[name]
	for i, r := range rows {
		if i < len(existing) {
			existing[i] = r
		} else {
			existing = append(existing, r)
		}
	}
	f.rows[name] = existing
	return nil
}

func headerRow() []any {
	out := make([]any, len(survey.Headers))
	for i, h := range survey.Headers {
		out[i] = h
	}
	return out
}

func finalizedResponse() *survey.Response {
	r := survey.NewResponse()
	r.Consent = true
	r.Teacher.SchoolType = "일반고"
	r.Usage.GradeLevel = "고1"
	r.Usage.CompletedSummary = true
	r.Scores["PU_1"] = 5
	r.Finalize(time.Date(2025, 5, 1, 10, 0, 0, 0, time.UTC))
	return r
}

func TestEnsureWorksheet_Creates(t *testing.T) {
	fb := newFakeBackend("Survey")
	c := NewWithBackend(fb, "sheet-id", "TAM_Survey", nil)

	require.NoError(t, c.EnsureWorksheet(context.Background()))

	require.Contains(t, fb.rows, "TAM_Survey")
	require.Len(t, fb.rows["TAM_Survey"], 1)
	assert.Equal(t, headerRow(), fb.rows["TAM_Survey"][0])

	require.Len(t, fb.formats, 1)
	f := fb.formats[0]
	assert.Equal(t, fb.ids["TAM_Survey"], f.Range.SheetId)
	assert.Equal(t, int64(1), f.Range.EndRowIndex)
	assert.True(t, f.Cell.UserEnteredFormat.TextFormat.Bold)
	assert.Equal(t, "CENTER", f.Cell.UserEnteredFormat.HorizontalAlignment)
	assert.Equal(t, 0.8, f.Cell.UserEnteredFormat.BackgroundColor.Red)
}

func TestEnsureWorksheet_KeepsMatchingHeader(t *testing.T) {
	fb := newFakeBackend("Survey")
	fb.addSheet("TAM_Survey", headerRow(), []any{"old row"})
	c := NewWithBackend(fb, "sheet-id", "TAM_Survey", nil)

	require.NoError(t, c.EnsureWorksheet(context.Background()))
	assert.Equal(t, []string{"TAM_Survey"}, fb.order)
	assert.Len(t, fb.rows["TAM_Survey"], 2)
	assert.Empty(t, fb.formats)
}

func TestEnsureWorksheet_BacksUpOutdatedHeader(t *testing.T) {
	fb := newFakeBackend("Survey")
	fb.addSheet("TAM_Survey", []any{"timestamp", "score"}, []any{"t1", "4"})
	c := NewWithBackend(fb, "sheet-id", "TAM_Survey", nil)
	c.now = func() time.Time { return time.Date(2025, 4, 2, 13, 5, 9, 0, time.UTC) }

	require.NoError(t, c.EnsureWorksheet(context.Background()))

	assert.Equal(t, []string{"TAM_Survey_Backup_20250402_130509", "TAM_Survey"}, fb.order)
	assert.Len(t, fb.rows["TAM_Survey_Backup_20250402_130509"], 2, "old data moves with the backup")
	assert.Equal(t, [][]any{headerRow()}, fb.rows["TAM_Survey"])
}

func TestEnsureWorksheet_OnlyOnce(t *testing.T) {
	fb := newFakeBackend("Survey")
	c := NewWithBackend(fb, "sheet-id", "TAM_Survey", nil)
	ctx := context.Background()

	require.NoError(t, c.EnsureWorksheet(ctx))
	fb.failNext = errors.New("should not be called")
	require.NoError(t, c.EnsureWorksheet(ctx))
}

func TestRecordAndRecords(t *testing.T) {
	fb := newFakeBackend("Survey")
	c := NewWithBackend(fb, "sheet-id", "TAM_Survey", nil)
	ctx := context.Background()

	recs, err := c.Records(ctx)
	require.NoError(t, err)
	assert.Empty(t, recs, "no worksheet yet")

	r := finalizedResponse()
	require.NoError(t, c.Record(ctx, r))

	recs, err = c.Records(ctx)
	require.NoError(t, err)
	require.Len(t, recs, 1)
	assert.Equal(t, r.ParticipantID, recs[0]["participant_id"])
	assert.Equal(t, "TRUE", recs[0]["completed_summary"])
	assert.Equal(t, "5", recs[0]["PU_1"])

	stats := survey.Summarize(recs)
	assert.Equal(t, 1, stats.Total)
	assert.Equal(t, map[string]int{"일반고": 1}, stats.SchoolTypes)
}

func TestRecord_RequiresFinalized(t *testing.T) {
	c := NewWithBackend(newFakeBackend("Survey"), "sheet-id", "TAM_Survey", nil)
	assert.Error(t, c.Record(context.Background(), survey.NewResponse()))
}

func TestAppendRow_WrongWidth(t *testing.T) {
	c := NewWithBackend(newFakeBackend("Survey"), "sheet-id", "TAM_Survey", nil)
	err := c.AppendRow(context.Background(), []any{"too", "short"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "want 37")
}

func TestRecords_ShortRows(t *testing.T) {
	fb := newFakeBackend("Survey")
	fb.addSheet("TAM_Survey", []any{"timestamp", "school_type", "PU_1"}, []any{"t1"})
	c := NewWithBackend(fb, "sheet-id", "TAM_Survey", nil)

	recs, err := c.Records(context.Background())
	require.NoError(t, err)
	require.Len(t, recs, 1)
	assert.Equal(t, map[string]string{"timestamp": "t1", "school_type": "", "PU_1": ""}, recs[0])
}

func TestCheck(t *testing.T) {
	fb := newFakeBackend("연구 설문")
	fb.addSheet("Sheet1")
	c := NewWithBackend(fb, "sheet-id", "TAM_Survey", nil)
	ctx := context.Background()

	d, err := c.Check(ctx)
	require.NoError(t, err)
	assert.Equal(t, "연구 설문", d.Title)
	assert.Equal(t, []string{"Sheet1"}, d.Worksheets)
	assert.False(t, d.HasSurvey)

	require.NoError(t, c.Record(ctx, finalizedResponse()))
	d, err = c.Check(ctx)
	require.NoError(t, err)
	assert.True(t, d.HasSurvey)
	assert.Equal(t, 1, d.Records)
}

func TestCheck_Unreachable(t *testing.T) {
	fb := newFakeBackend("Survey")
	fb.failNext = errors.New("permission denied")
	c := NewWithBackend(fb, "sheet-id", "TAM_Survey", nil)

	_, err := c.Check(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "permission denied")
}

func TestQuoteRange(t *testing.T) {
	assert.Equal(t, "'TAM_Survey'!A1", quoteRange("TAM_Survey", "A1"))
	assert.Equal(t, "'Teacher''s'", quoteRange("Teacher's", ""))
}
