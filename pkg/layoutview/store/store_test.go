package store

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/ukaji3/layoutview-go/pkg/layoutview/models"
)

func setupTestDB(t *testing.T) *DB {
	t.Helper()

	database, err := Open(filepath.Join(t.TempDir(), "results.db"))
	if err != nil {
		t.Fatalf("failed to create test database: %v", err)
	}
	t.Cleanup(func() { _ = database.Close() })
	return database
}

func testSheets() []models.ClassifiedSheet {
	first := "ID"
	return []models.ClassifiedSheet{
		{
			SheetStatistics: models.SheetStatistics{
				SheetName:               "Records",
				Bounds:                  models.Bounds{EndRow: 10, EndCol: 3},
				TotalCells:              44,
				DataCells:               44,
				Density:                 1,
				Visible:                 models.Visible,
				FirstRowFirstColContent: &first,
				ColumnDataTypes: []models.ColumnTypeProfile{
					{ColumnIndex: 0, NumericCount: 10, TextCount: 1, TotalCount: 11, NumericTypeRatio: 10.0 / 11},
				},
				DataTypeMix:        0.43,
				RowTypeConsistency: 0.25,
				AspectRatio:        2.75,
			},
			SheetType:            models.SheetTypeData,
			ClassificationReason: "near-total occupancy",
		},
		{
			SheetStatistics: models.SheetStatistics{
				SheetName:       "Form",
				Bounds:          models.Bounds{EndRow: 18, EndCol: 1},
				TotalCells:      38,
				DataCells:       20,
				Density:         20.0 / 38,
				Visible:         models.Visible,
				ColumnDataTypes: []models.ColumnTypeProfile{},
				AspectRatio:     9.5,
			},
			SheetType:            models.SheetTypeForm,
			ClassificationReason: "tall narrow key/value layout",
		},
	}
}

func TestSaveRunAndList(t *testing.T) {
	database := setupTestDB(t)
	ctx := context.Background()

	run := RunRecord{
		RunID:     "abc12345",
		Path:      "/data/book.xlsx",
		StartedAt: time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC),
		Duration:  1500 * time.Millisecond,
	}
	id, err := database.SaveRun(ctx, run, testSheets())
	if err != nil {
		t.Fatalf("SaveRun failed: %v", err)
	}
	if id <= 0 {
		t.Errorf("SaveRun id = %d, expected positive", id)
	}

	got, err := database.ListSheetResults(ctx, id)
	if err != nil {
		t.Fatalf("ListSheetResults failed: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("expected 2 sheets, got %d", len(got))
	}

	want := testSheets()
	if got[0].SheetName != "Records" || got[1].SheetName != "Form" {
		t.Errorf("order = %s, %s", got[0].SheetName, got[1].SheetName)
	}
	if got[0].Bounds != want[0].Bounds || got[0].Density != want[0].Density {
		t.Errorf("Records = %+v", got[0].SheetStatistics)
	}
	if got[0].FirstRowFirstColContent == nil || *got[0].FirstRowFirstColContent != "ID" {
		t.Errorf("first corner = %v, expected ID", got[0].FirstRowFirstColContent)
	}
	if got[0].LastRowFirstColContent != nil {
		t.Errorf("last corner = %v, expected nil", *got[0].LastRowFirstColContent)
	}
	if len(got[0].ColumnDataTypes) != 1 || got[0].ColumnDataTypes[0] != want[0].ColumnDataTypes[0] {
		t.Errorf("columns = %+v", got[0].ColumnDataTypes)
	}
	if got[1].SheetType != models.SheetTypeForm || got[1].Visible != models.Visible {
		t.Errorf("Form = %s/%s", got[1].SheetType, got[1].Visible)
	}
	if len(got[1].ColumnDataTypes) != 0 {
		t.Errorf("Form columns = %+v, expected none", got[1].ColumnDataTypes)
	}
}

func TestSaveRunEmpty(t *testing.T) {
	database := setupTestDB(t)
	ctx := context.Background()

	id, err := database.SaveRun(ctx, RunRecord{RunID: "r1", Path: "empty.xlsx", StartedAt: time.Now()}, nil)
	if err != nil {
		t.Fatalf("SaveRun failed: %v", err)
	}

	got, err := database.ListSheetResults(ctx, id)
	if err != nil {
		t.Fatalf("ListSheetResults failed: %v", err)
	}
	if got == nil || len(got) != 0 {
		t.Errorf("ListSheetResults = %v, expected empty slice", got)
	}
}

func TestCountRuns(t *testing.T) {
	database := setupTestDB(t)
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		if _, err := database.SaveRun(ctx, RunRecord{RunID: "r", Path: "a.xlsx", StartedAt: time.Now()}, testSheets()); err != nil {
			t.Fatalf("SaveRun failed: %v", err)
		}
	}
	if _, err := database.SaveRun(ctx, RunRecord{RunID: "r", Path: "b.xlsx", StartedAt: time.Now()}, nil); err != nil {
		t.Fatalf("SaveRun failed: %v", err)
	}

	n, err := database.CountRuns(ctx, "a.xlsx")
	if err != nil {
		t.Fatalf("CountRuns failed: %v", err)
	}
	if n != 3 {
		t.Errorf("CountRuns(a.xlsx) = %d, expected 3", n)
	}
}

func TestOpenExistingDatabase(t *testing.T) {
	path := filepath.Join(t.TempDir(), "results.db")

	first, err := Open(path)
	if err != nil {
		t.Fatalf("Open failed: %v", err)
	}
	id, err := first.SaveRun(context.Background(), RunRecord{RunID: "r", Path: "a.xlsx", StartedAt: time.Now()}, testSheets())
	if err != nil {
		t.Fatalf("SaveRun failed: %v", err)
	}
	_ = first.Close()

	second, err := Open(path)
	if err != nil {
		t.Fatalf("reopen failed: %v", err)
	}
	defer second.Close()

	got, err := second.ListSheetResults(context.Background(), id)
	if err != nil || len(got) != 2 {
		t.Errorf("ListSheetResults after reopen = %d sheets, %v", len(got), err)
	}
	if second.Path() != path {
		t.Errorf("Path() = %q, expected %q", second.Path(), path)
	}
}
