package store

import (
	"context"
	"fmt"
	"log"
	"strings"
	"sync"

	"google.golang.org/api/drive/v3"
	"google.golang.org/api/option"
	"google.golang.org/api/sheets/v4"
)

const (
	spreadsheetMimeType = "application/vnd.google-apps.spreadsheet"
	ledgerSheetTitle    = "Sheet1"
	chartSheetTitle     = "Chart"
)

// Scopes are the OAuth scopes the Sheets store needs.
var Scopes = []string{
	sheets.SpreadsheetsScope,
	drive.DriveScope,
}

// SheetsStore implements Store and Decorator on Google Sheets, using Drive
// for naming, sharing, deletion and folder placement.
type SheetsStore struct {
	sheets   *sheets.Service
	drive    *drive.Service
	folderID string
	retry    RetryConfig

	// spreadsheet id -> sheet id of the ledger tab
	sheetIDs sync.Map
}

// NewSheetsStore creates a Sheets-backed store. folderID may be empty, in
// which case MoveToFolder is a no-op.
func NewSheetsStore(ctx context.Context, folderID string, opts ...option.ClientOption) (*SheetsStore, error) {
	opts = append([]option.ClientOption{option.WithScopes(Scopes...)}, opts...)

	sheetsService, err := sheets.NewService(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("create sheets service: %w", err)
	}
	driveService, err := drive.NewService(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("create drive service: %w", err)
	}

	return &SheetsStore{
		sheets:   sheetsService,
		drive:    driveService,
		folderID: folderID,
		retry:    DefaultRetryConfig,
	}, nil
}

// do runs a single API call under the retry policy.
func (s *SheetsStore) do(ctx context.Context, op string, fn func(ctx context.Context) error) error {
	_, err := WithRetry(ctx, s.retry, func(ctx context.Context) (struct{}, error) {
		return struct{}{}, classify(op, fn(ctx))
	})
	return err
}

// Document operations

// CreateDocument creates a spreadsheet whose first tab is the ledger tab.
func (s *SheetsStore) CreateDocument(ctx context.Context, name string) (*Document, error) {
	var created *sheets.Spreadsheet
	err := s.do(ctx, "spreadsheets.create", func(ctx context.Context) error {
		var err error
		created, err = s.sheets.Spreadsheets.Create(&sheets.Spreadsheet{
			Properties: &sheets.SpreadsheetProperties{Title: name},
			Sheets: []*sheets.Sheet{
				{Properties: &sheets.SheetProperties{Title: ledgerSheetTitle}},
			},
		}).Context(ctx).Do()
		return err
	})
	if err != nil {
		return nil, err
	}
	if len(created.Sheets) > 0 && created.Sheets[0].Properties != nil {
		s.sheetIDs.Store(created.SpreadsheetId, created.Sheets[0].Properties.SheetId)
	}
	log.Printf("[Sheets] Created spreadsheet %s (%s)", created.SpreadsheetId, name)
	return &Document{ID: created.SpreadsheetId, Name: name}, nil
}

func (s *SheetsStore) FindDocument(ctx context.Context, name string) (*Document, error) {
	docs, err := s.ListDocuments(ctx, name)
	if err != nil {
		return nil, err
	}
	if len(docs) == 0 {
		return nil, ErrNotFound
	}
	return docs[0], nil
}

func (s *SheetsStore) OpenDocument(ctx context.Context, id string) (*Document, error) {
	var file *drive.File
	err := s.do(ctx, "files.get", func(ctx context.Context) error {
		var err error
		file, err = s.drive.Files.Get(id).Fields("id, name, trashed").Context(ctx).Do()
		return err
	})
	if err != nil {
		return nil, err
	}
	if file.Trashed {
		return nil, fmt.Errorf("open %s: %w", id, ErrNotFound)
	}
	return &Document{ID: file.Id, Name: file.Name}, nil
}

// ListDocuments returns the non-trashed spreadsheets with the given name.
// An empty name lists every spreadsheet visible to the credentials.
func (s *SheetsStore) ListDocuments(ctx context.Context, name string) ([]*Document, error) {
	q := fmt.Sprintf("mimeType = '%s' and trashed = false", spreadsheetMimeType)
	if name != "" {
		q += fmt.Sprintf(" and name = '%s'", escapeQuery(name))
	}

	var docs []*Document
	var pageToken string
	for {
		var list *drive.FileList
		err := s.do(ctx, "files.list", func(ctx context.Context) error {
			call := s.drive.Files.List().Q(q).Fields("nextPageToken, files(id, name)").Context(ctx)
			if pageToken != "" {
				call = call.PageToken(pageToken)
			}
			var err error
			list, err = call.Do()
			return err
		})
		if err != nil {
			return nil, err
		}
		for _, f := range list.Files {
			docs = append(docs, &Document{ID: f.Id, Name: f.Name})
		}
		if list.NextPageToken == "" {
			break
		}
		pageToken = list.NextPageToken
	}
	return docs, nil
}

func (s *SheetsStore) DeleteDocument(ctx context.Context, id string) error {
	err := s.do(ctx, "files.delete", func(ctx context.Context) error {
		return s.drive.Files.Delete(id).Context(ctx).Do()
	})
	if err != nil {
		return err
	}
	s.sheetIDs.Delete(id)
	return nil
}

// ShareDocument grants read access to anyone with the link.
func (s *SheetsStore) ShareDocument(ctx context.Context, id string) error {
	return s.do(ctx, "permissions.create", func(ctx context.Context) error {
		_, err := s.drive.Permissions.Create(id, &drive.Permission{
			Type: "anyone",
			Role: "reader",
		}).Context(ctx).Do()
		return err
	})
}

func (s *SheetsStore) DocumentURL(id string) string {
	return fmt.Sprintf("https://docs.google.com/spreadsheets/d/%s/edit", id)
}

// Row operations

func (s *SheetsStore) ReadRows(ctx context.Context, id string) ([][]string, error) {
	var vr *sheets.ValueRange
	err := s.do(ctx, "values.get", func(ctx context.Context) error {
		var err error
		vr, err = s.sheets.Spreadsheets.Values.Get(id, ledgerSheetTitle).
			ValueRenderOption("FORMATTED_VALUE").Context(ctx).Do()
		return err
	})
	if err != nil {
		return nil, err
	}
	return valuesToRows(vr.Values), nil
}

func (s *SheetsStore) AppendRow(ctx context.Context, id string, cells []string) error {
	return s.do(ctx, "values.append", func(ctx context.Context) error {
		_, err := s.sheets.Spreadsheets.Values.Append(id, ledgerSheetTitle+"!A:D", &sheets.ValueRange{
			Values: rowsToValues([][]string{cells}),
		}).ValueInputOption("RAW").InsertDataOption("INSERT_ROWS").Context(ctx).Do()
		return err
	})
}

func (s *SheetsStore) InsertRow(ctx context.Context, id string, index int, cells []string) error {
	sheetID, err := s.sheetID(ctx, id)
	if err != nil {
		return err
	}
	err = s.batchUpdate(ctx, id, "insert row", &sheets.Request{
		InsertDimension: &sheets.InsertDimensionRequest{
			Range:             rowRange(sheetID, index),
			InheritFromBefore: index > 0,
		},
	})
	if err != nil {
		return err
	}
	return s.UpdateRow(ctx, id, index, cells)
}

func (s *SheetsStore) UpdateRow(ctx context.Context, id string, index int, cells []string) error {
	if len(cells) == 0 {
		return nil
	}
	rng := fmt.Sprintf("%s!%s:%s", ledgerSheetTitle, cellRef(index, 0), cellRef(index, len(cells)-1))
	return s.updateValues(ctx, id, rng, "RAW", [][]string{cells})
}

func (s *SheetsStore) UpdateCell(ctx context.Context, id string, row, col int, value string) error {
	rng := fmt.Sprintf("%s!%s", ledgerSheetTitle, cellRef(row, col))
	return s.updateValues(ctx, id, rng, "RAW", [][]string{{value}})
}

func (s *SheetsStore) DeleteRow(ctx context.Context, id string, index int) error {
	sheetID, err := s.sheetID(ctx, id)
	if err != nil {
		return err
	}
	return s.batchUpdate(ctx, id, "delete row", &sheets.Request{
		DeleteDimension: &sheets.DeleteDimensionRequest{Range: rowRange(sheetID, index)},
	})
}

func (s *SheetsStore) Resize(ctx context.Context, id string, rows, cols int) error {
	sheetID, err := s.sheetID(ctx, id)
	if err != nil {
		return err
	}
	return s.batchUpdate(ctx, id, "resize", &sheets.Request{
		UpdateSheetProperties: &sheets.UpdateSheetPropertiesRequest{
			Properties: &sheets.SheetProperties{
				SheetId:         sheetID,
				GridProperties:  &sheets.GridProperties{RowCount: int64(rows), ColumnCount: int64(cols)},
				ForceSendFields: []string{"SheetId"},
			},
			Fields: "gridProperties(rowCount,columnCount)",
		},
	})
}

// Decorator operations

// AddSummaryChart adds a "Chart" tab that groups ledger amounts by category
// with a QUERY formula and plots them as a column chart.
func (s *SheetsStore) AddSummaryChart(ctx context.Context, id string) error {
	var resp *sheets.BatchUpdateSpreadsheetResponse
	err := s.do(ctx, "add chart sheet", func(ctx context.Context) error {
		var err error
		resp, err = s.sheets.Spreadsheets.BatchUpdate(id, &sheets.BatchUpdateSpreadsheetRequest{
			Requests: []*sheets.Request{{
				AddSheet: &sheets.AddSheetRequest{
					Properties: &sheets.SheetProperties{
						Title:          chartSheetTitle,
						GridProperties: &sheets.GridProperties{RowCount: 20, ColumnCount: 5},
					},
				},
			}},
		}).Context(ctx).Do()
		return err
	})
	if err != nil {
		return err
	}
	if len(resp.Replies) == 0 || resp.Replies[0].AddSheet == nil {
		return &Error{Code: CodeUnknown, Op: "add chart sheet", Cause: fmt.Errorf("no sheet in reply")}
	}
	chartSheetID := resp.Replies[0].AddSheet.Properties.SheetId

	if err := s.updateValues(ctx, id, chartSheetTitle+"!A1:B1", "RAW", [][]string{{"Category", "Total"}}); err != nil {
		return err
	}
	formula := fmt.Sprintf(`=QUERY(%s!B2:C, "select B, sum(C) where C is not null group by B label sum(C) 'Total'")`, ledgerSheetTitle)
	if err := s.updateValues(ctx, id, chartSheetTitle+"!A2", "USER_ENTERED", [][]string{{formula}}); err != nil {
		return err
	}

	column := func(start int64) *sheets.ChartData {
		return &sheets.ChartData{
			SourceRange: &sheets.ChartSourceRange{
				Sources: []*sheets.GridRange{{
					SheetId:          chartSheetID,
					StartRowIndex:    1,
					EndRowIndex:      20,
					StartColumnIndex: start,
					EndColumnIndex:   start + 1,
					ForceSendFields:  []string{"SheetId", "StartColumnIndex"},
				}},
			},
		}
	}

	return s.batchUpdate(ctx, id, "add chart", &sheets.Request{
		AddChart: &sheets.AddChartRequest{
			Chart: &sheets.EmbeddedChart{
				Spec: &sheets.ChartSpec{
					Title: "Expense Summary by Category",
					BasicChart: &sheets.BasicChartSpec{
						ChartType:      "COLUMN",
						LegendPosition: "BOTTOM_LEGEND",
						Axis: []*sheets.BasicChartAxis{
							{Position: "BOTTOM_AXIS", Title: "Category"},
							{Position: "LEFT_AXIS", Title: "Amount"},
						},
						Domains: []*sheets.BasicChartDomain{{Domain: column(0)}},
						Series:  []*sheets.BasicChartSeries{{Series: column(1)}},
					},
				},
				Position: &sheets.EmbeddedObjectPosition{
					OverlayPosition: &sheets.OverlayPosition{
						AnchorCell: &sheets.GridCoordinate{
							SheetId:         chartSheetID,
							RowIndex:        4,
							ColumnIndex:     2,
							ForceSendFields: []string{"SheetId"},
						},
					},
				},
			},
		},
	})
}

// MoveToFolder re-parents the document from the Drive root into the
// configured folder.
func (s *SheetsStore) MoveToFolder(ctx context.Context, id string) error {
	if s.folderID == "" {
		return nil
	}
	return s.do(ctx, "files.update", func(ctx context.Context) error {
		_, err := s.drive.Files.Update(id, &drive.File{}).
			AddParents(s.folderID).
			RemoveParents("root").
			Fields("id, parents").
			Context(ctx).Do()
		return err
	})
}

// helpers

func (s *SheetsStore) batchUpdate(ctx context.Context, id, op string, reqs ...*sheets.Request) error {
	return s.do(ctx, op, func(ctx context.Context) error {
		_, err := s.sheets.Spreadsheets.BatchUpdate(id, &sheets.BatchUpdateSpreadsheetRequest{
			Requests: reqs,
		}).Context(ctx).Do()
		return err
	})
}

func (s *SheetsStore) updateValues(ctx context.Context, id, rng, inputOption string, rows [][]string) error {
	return s.do(ctx, "values.update", func(ctx context.Context) error {
		_, err := s.sheets.Spreadsheets.Values.Update(id, rng, &sheets.ValueRange{
			Values: rowsToValues(rows),
		}).ValueInputOption(inputOption).Context(ctx).Do()
		return err
	})
}

// sheetID resolves the numeric id of the ledger tab, caching per spreadsheet.
func (s *SheetsStore) sheetID(ctx context.Context, id string) (int64, error) {
	if v, ok := s.sheetIDs.Load(id); ok {
		return v.(int64), nil
	}

	var ss *sheets.Spreadsheet
	err := s.do(ctx, "spreadsheets.get", func(ctx context.Context) error {
		var err error
		ss, err = s.sheets.Spreadsheets.Get(id).Fields("sheets(properties(sheetId,title))").Context(ctx).Do()
		return err
	})
	if err != nil {
		return 0, err
	}
	sheetID, ok := ledgerSheetID(ss.Sheets)
	if !ok {
		return 0, &Error{Code: CodeNotFound, Op: "spreadsheets.get", Cause: fmt.Errorf("spreadsheet %s has no sheets", id)}
	}
	s.sheetIDs.Store(id, sheetID)
	return sheetID, nil
}

// ledgerSheetID picks the tab titled Sheet1, falling back to the first tab.
func ledgerSheetID(tabs []*sheets.Sheet) (int64, bool) {
	var first *sheets.SheetProperties
	for _, tab := range tabs {
		if tab.Properties == nil {
			continue
		}
		if first == nil {
			first = tab.Properties
		}
		if tab.Properties.Title == ledgerSheetTitle {
			return tab.Properties.SheetId, true
		}
	}
	if first == nil {
		return 0, false
	}
	return first.SheetId, true
}

func rowRange(sheetID int64, index int) *sheets.DimensionRange {
	return &sheets.DimensionRange{
		SheetId:         sheetID,
		Dimension:       "ROWS",
		StartIndex:      int64(index),
		EndIndex:        int64(index) + 1,
		ForceSendFields: []string{"SheetId", "StartIndex"},
	}
}

// cellRef converts zero-based coordinates to A1 notation.
func cellRef(row, col int) string {
	return fmt.Sprintf("%s%d", columnName(col), row+1)
}

func columnName(col int) string {
	name := ""
	for col >= 0 {
		name = string(rune('A'+col%26)) + name
		col = col/26 - 1
	}
	return name
}

func valuesToRows(values [][]interface{}) [][]string {
	rows := make([][]string, len(values))
	for i, row := range values {
		cells := make([]string, len(row))
		for j, v := range row {
			if v != nil {
				cells[j] = fmt.Sprint(v)
			}
		}
		rows[i] = cells
	}
	return rows
}

func rowsToValues(rows [][]string) [][]interface{} {
	values := make([][]interface{}, len(rows))
	for i, row := range rows {
		cells := make([]interface{}, len(row))
		for j, v := range row {
			cells[j] = v
		}
		values[i] = cells
	}
	return values
}

func escapeQuery(s string) string {
	s = strings.ReplaceAll(s, `\`, `\\`)
	return strings.ReplaceAll(s, `'`, `\'`)
}
