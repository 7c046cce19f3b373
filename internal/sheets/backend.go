package sheets

import (
	"context"
	"fmt"

	"google.golang.org/api/option"
	gsheets "google.golang.org/api/sheets/v4"

	"github.com/abhisek/precis/internal/config"
)

// Backend is the part of the Sheets API the client uses.
type Backend interface {
	Spreadsheet(ctx context.Context, id string) (*gsheets.Spreadsheet, error)
	BatchUpdate(ctx context.Context, id string, req *gsheets.BatchUpdateSpreadsheetRequest) (*gsheets.BatchUpdateSpreadsheetResponse, error)
	Values(ctx context.Context, id, rng string) ([][]any, error)
	Append(ctx context.Context, id, rng string, row []any) error
	Update(ctx context.Context, id, rng string, rows [][]any) error
}

// apiBackend talks to the real service.
type apiBackend struct {
	svc *gsheets.Service
}

// NewBackend authenticates with the configured service account key.
func NewBackend(ctx context.Context, cfg config.SheetsConfig) (Backend, error) {
	opts := []option.ClientOption{option.WithScopes(gsheets.SpreadsheetsScope)}
	switch {
	case cfg.CredentialsJSON != "":
		opts = append(opts, option.WithCredentialsJSON([]byte(cfg.CredentialsJSON)))
	case cfg.CredentialsFile != "":
		opts = append(opts, option.WithCredentialsFile(cfg.CredentialsFile))
	default:
		return nil, fmt.Errorf("sheets credentials are not configured")
	}

	svc, err := gsheets.NewService(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("create sheets service: %w", err)
	}
	return &apiBackend{svc: svc}, nil
}

func (b *apiBackend) Spreadsheet(ctx context.Context, id string) (*gsheets.Spreadsheet, error) {
	return b.svc.Spreadsheets.Get(id).Context(ctx).Do()
}

func (b *apiBackend) BatchUpdate(ctx context.Context, id string, req *gsheets.BatchUpdateSpreadsheetRequest) (*gsheets.BatchUpdateSpreadsheetResponse, error) {
	return b.svc.Spreadsheets.BatchUpdate(id, req).Context(ctx).Do()
}

func (b *apiBackend) Values(ctx context.Context, id, rng string) ([][]any, error) {
	vr, err := b.svc.Spreadsheets.Values.Get(id, rng).Context(ctx).Do()
	if err != nil {
		return nil, err
	}
	return vr.Values, nil
}

func (b *apiBackend) Append(ctx context.Context, id, rng string, row []any) error {
	_, err := b.svc.Spreadsheets.Values.Append(id, rng, &gsheets.ValueRange{Values: [][]any{row}}).
		ValueInputOption("RAW").
		InsertDataOption("INSERT_ROWS").
		Context(ctx).
		Do()
	return err
}

func (b *apiBackend) Update(ctx context.Context, id, rng string, rows [][]any) error {
	_, err := b.svc.Spreadsheets.Values.Update(id, rng, &gsheets.ValueRange{Values: rows}).
		ValueInputOption("RAW").
		Context(ctx).
		Do()
	return err
}
