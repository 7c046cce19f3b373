// Package sheets records survey responses in a Google Sheets worksheet.
package sheets

import (
	"context"
	"fmt"
	"slices"
	"strings"
	"sync"
	"time"

	gsheets "google.golang.org/api/sheets/v4"

	"github.com/abhisek/precis/internal/config"
	"github.com/abhisek/precis/internal/logger"
	"github.com/abhisek/precis/internal/survey"
)

const (
	backupPrefix = "TAM_Survey_Backup"
	sheetRows    = 1000
)

// headerTint is the header row background.
var headerTint = &gsheets.Color{Red: 0.8, Green: 0.9, Blue: 1.0}

// Client reads and writes the survey worksheet of one spreadsheet.
type Client struct {
	backend       Backend
	spreadsheetID string
	worksheet     string
	log           *logger.Logger
	now           func() time.Time

	mu    sync.Mutex
	ready bool
}

// New connects to the spreadsheet named in cfg.
func New(ctx context.Context, cfg config.SheetsConfig, log *logger.Logger) (*Client, error) {
	if missing := cfg.Missing(); len(missing) > 0 {
		return nil, fmt.Errorf("sheets not configured: missing %s", strings.Join(missing, ", "))
	}
	b, err := NewBackend(ctx, cfg)
	if err != nil {
		return nil, err
	}
	return NewWithBackend(b, cfg.SpreadsheetID, cfg.Worksheet, log), nil
}

// NewWithBackend builds a client over an existing backend.
func NewWithBackend(b Backend, spreadsheetID, worksheet string, log *logger.Logger) *Client {
	if log == nil {
		log = logger.Nop()
	}
	return &Client{
		backend:       b,
		spreadsheetID: spreadsheetID,
		worksheet:     worksheet,
		log:           log.With("component", "sheets", "worksheet", worksheet),
		now:           time.Now,
	}
}

// EnsureWorksheet makes sure the survey worksheet exists with the current
// header row. A worksheet whose header differs is renamed to a timestamped
// backup and a fresh one is created.
func (c *Client) EnsureWorksheet(ctx context.Context) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.ready {
		return nil
	}

	ss, err := c.backend.Spreadsheet(ctx, c.spreadsheetID)
	if err != nil {
		return fmt.Errorf("open spreadsheet: %w", err)
	}

	if props := findSheet(ss, c.worksheet); props != nil {
		header, err := c.backend.Values(ctx, c.spreadsheetID, quoteRange(c.worksheet, "1:1"))
		if err != nil {
			return fmt.Errorf("read header: %w", err)
		}
		if len(header) > 0 && slices.Equal(cellStrings(header[0]), survey.Headers) {
			c.ready = true
			return nil
		}
		if err := c.backup(ctx, props); err != nil {
			return err
		}
	}

	if err := c.create(ctx); err != nil {
		return err
	}
	c.ready = true
	return nil
}

func (c *Client) backup(ctx context.Context, props *gsheets.SheetProperties) error {
	name := fmt.Sprintf("%s_%s", backupPrefix, c.now().Format("20060102_150405"))
	_, err := c.backend.BatchUpdate(ctx, c.spreadsheetID, &gsheets.BatchUpdateSpreadsheetRequest{
		Requests: []*gsheets.Request{{
			UpdateSheetProperties: &gsheets.UpdateSheetPropertiesRequest{
				Properties: &gsheets.SheetProperties{
					SheetId:         props.SheetId,
					Title:           name,
					ForceSendFields: []string{"SheetId"},
				},
				Fields:     "title",
			},
		}},
	})
	if err != nil {
		return fmt.Errorf("rename outdated worksheet: %w", err)
	}
	c.log.Warn("worksheet header is outdated, kept as backup", "backup", name)
	return nil
}

func (c *Client) create(ctx context.Context) error {
	resp, err := c.backend.BatchUpdate(ctx, c.spreadsheetID, &gsheets.BatchUpdateSpreadsheetRequest{
		Requests: []*gsheets.Request{{
			AddSheet: &gsheets.AddSheetRequest{
				Properties: &gsheets.SheetProperties{
					Title: c.worksheet,
					GridProperties: &gsheets.GridProperties{
						RowCount:    sheetRows,
						ColumnCount: int64(len(survey.Headers)),
					},
				},
			},
		}},
	})
	if err != nil {
		return fmt.Errorf("add worksheet: %w", err)
	}

	header := make([]any, len(survey.Headers))
	for i, h := range survey.Headers {
		header[i] = h
	}
	if err := c.backend.Update(ctx, c.spreadsheetID, quoteRange(c.worksheet, "A1"), [][]any{header}); err != nil {
		return fmt.Errorf("write header: %w", err)
	}

	if resp == nil || len(resp.Replies) == 0 || resp.Replies[0].AddSheet == nil {
		c.log.Warn("add worksheet reply missing, header left unformatted")
		return nil
	}
	sheetID := resp.Replies[0].AddSheet.Properties.SheetId
	if _, err := c.backend.BatchUpdate(ctx, c.spreadsheetID, headerFormat(sheetID)); err != nil {
		// Formatting is cosmetic; the worksheet is usable without it.
		c.log.Warn("formatting header row failed", "error", err)
	}
	c.log.Info("created survey worksheet")
	return nil
}

func headerFormat(sheetID int64) *gsheets.BatchUpdateSpreadsheetRequest {
	return &gsheets.BatchUpdateSpreadsheetRequest{
		Requests: []*gsheets.Request{{
			RepeatCell: &gsheets.RepeatCellRequest{
				Range: &gsheets.GridRange{
					SheetId:          sheetID,
					StartRowIndex:    0,
					EndRowIndex:      1,
					StartColumnIndex: 0,
					EndColumnIndex:   int64(len(survey.Headers)),
					ForceSendFields:  []string{"SheetId", "StartRowIndex", "StartColumnIndex"},
				},
				Cell: &gsheets.CellData{
					UserEnteredFormat: &gsheets.CellFormat{
						BackgroundColor:     headerTint,
						HorizontalAlignment: "CENTER",
						TextFormat:          &gsheets.TextFormat{Bold: true, FontSize: 10},
					},
				},
				Fields: "userEnteredFormat(backgroundColor,textFormat,horizontalAlignment)",
			},
		}},
	}
}

// AppendRow adds one row below the existing data.
func (c *Client) AppendRow(ctx context.Context, row []any) error {
	if len(row) != len(survey.Headers) {
		return fmt.Errorf("row has %d cells, want %d", len(row), len(survey.Headers))
	}
	if err := c.EnsureWorksheet(ctx); err != nil {
		return err
	}
	if err := c.backend.Append(ctx, c.spreadsheetID, quoteRange(c.worksheet, "A1"), row); err != nil {
		return fmt.Errorf("append row: %w", err)
	}
	return nil
}

// Record appends a finalized survey response.
func (c *Client) Record(ctx context.Context, r *survey.Response) error {
	if r.ParticipantID == "" {
		return fmt.Errorf("record survey: response is not finalized")
	}
	return c.AppendRow(ctx, r.Row())
}

// Records returns every data row keyed by the worksheet's header row.
// A missing worksheet yields no records.
func (c *Client) Records(ctx context.Context) ([]map[string]string, error) {
	ss, err := c.backend.Spreadsheet(ctx, c.spreadsheetID)
	if err != nil {
		return nil, fmt.Errorf("open spreadsheet: %w", err)
	}
	if findSheet(ss, c.worksheet) == nil {
		return nil, nil
	}
	return c.records(ctx)
}

func (c *Client) records(ctx context.Context) ([]map[string]string, error) {
	rows, err := c.backend.Values(ctx, c.spreadsheetID, quoteRange(c.worksheet, ""))
	if err != nil {
		return nil, fmt.Errorf("read worksheet: %w", err)
	}
	if len(rows) < 2 {
		return nil, nil
	}

	header := cellStrings(rows[0])
	out := make([]map[string]string, 0, len(rows)-1)
	for _, row := range rows[1:] {
		cells := cellStrings(row)
		rec := make(map[string]string, len(header))
		for i, h := range header {
			if h == "" {
				continue
			}
			if i < len(cells) {
				rec[h] = cells[i]
			} else {
				rec[h] = ""
			}
		}
		out = append(out, rec)
	}
	return out, nil
}

// Diagnostics describes what Check found.
type Diagnostics struct {
	Title      string   `json:"title"`
	Worksheets []string `json:"worksheets"`
	HasSurvey  bool     `json:"has_survey_worksheet"`
	Records    int      `json:"records"`
}

// Check opens the spreadsheet and reports what it contains without changing
// anything.
func (c *Client) Check(ctx context.Context) (*Diagnostics, error) {
	ss, err := c.backend.Spreadsheet(ctx, c.spreadsheetID)
	if err != nil {
		return nil, fmt.Errorf("open spreadsheet: %w", err)
	}

	d := &Diagnostics{}
	if ss.Properties != nil {
		d.Title = ss.Properties.Title
	}
	for _, s := range ss.Sheets {
		if s.Properties != nil {
			d.Worksheets = append(d.Worksheets, s.Properties.Title)
		}
	}
	if findSheet(ss, c.worksheet) == nil {
		return d, nil
	}

	d.HasSurvey = true
	recs, err := c.records(ctx)
	if err != nil {
		return d, err
	}
	d.Records = len(recs)
	return d, nil
}

func findSheet(ss *gsheets.Spreadsheet, title string) *gsheets.SheetProperties {
	for _, s := range ss.Sheets {
		if s.Properties != nil && s.Properties.Title == title {
			return s.Properties
		}
	}
	return nil
}

// quoteRange builds an A1 range on the named worksheet. An empty cells
// part selects the whole worksheet.
func quoteRange(sheet, cells string) string {
	q := "'" + strings.ReplaceAll(sheet, "'", "''") + "'"
	if cells == "" {
		return q
	}
	return q + "!" + cells
}

func cellStrings(row []any) []string {
	out := make([]string, len(row))
	for i, v := range row {
		switch x := v.(type) {
		case string:
			out[i] = x
		case bool:
			if x {
				out[i] = "TRUE"
			} else {
				out[i] = "FALSE"
			}
		case nil:
		default:
			out[i] = fmt.Sprint(x)
		}
	}
	return out
}
