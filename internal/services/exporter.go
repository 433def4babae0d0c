package services

import (
	"context"
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"

	"expensetracker/internal/core"
	"expensetracker/internal/storage"
)

// DefaultExportPath is where ExportFile writes when no path is given.
const DefaultExportPath = "expense_report.csv"

// ExportHeader is the fixed column order of the CSV report.
var ExportHeader = []string{"ID", "Date", "Category", "Amount", "Description"}

// Exporter serializes the ledger as RFC 4180 CSV.
type Exporter struct {
	store       storage.Store
	defaultPath string
}

func NewExporter(store storage.Store, defaultPath string) *Exporter {
	if defaultPath == "" {
		defaultPath = DefaultExportPath
	}
	return &Exporter{store: store, defaultPath: defaultPath}
}

// Write emits the header and one record per expense in id order. It returns
// the number of expense rows written.
func (x *Exporter) Write(ctx context.Context, w io.Writer) (int, error) {
	expenses, err := x.store.SelectAll(ctx)
	if err != nil {
		return 0, fmt.Errorf("load expenses: %w", err)
	}

	cw := csv.NewWriter(w)
	if err := cw.Write(ExportHeader); err != nil {
		return 0, core.NewStorageError("write csv header", err)
	}
	for _, e := range expenses {
		record := []string{
			strconv.FormatInt(e.ID, 10),
			e.Date,
			e.Category,
			strconv.FormatFloat(e.Amount, 'f', -1, 64),
			e.Description,
		}
		if err := cw.Write(record); err != nil {
			return 0, core.NewStorageError(fmt.Sprintf("write expense %d", e.ID), err)
		}
	}
	cw.Flush()
	if err := cw.Error(); err != nil {
		return 0, core.NewStorageError("flush csv", err)
	}
	return len(expenses), nil
}

// ExportFile writes the report to path, or to the default path when path is
// empty, and returns the path used and the row count. The report is built in
// a temporary file beside the target and renamed over it, so a failed export
// leaves any previous report untouched. File system failures are reported as
// storage errors.
func (x *Exporter) ExportFile(ctx context.Context, path string) (string, int, error) {
	if path == "" {
		path = x.defaultPath
	}

	tmp, err := os.CreateTemp(filepath.Dir(path), "."+filepath.Base(path)+".*.tmp")
	if err != nil {
		return path, 0, core.NewStorageError("create export file", err)
	}
	tmpPath := tmp.Name()
	committed := false
	defer func() {
		if !committed {
			tmp.Close()
			os.Remove(tmpPath)
		}
	}()

	n, err := x.Write(ctx, tmp)
	if err != nil {
		return path, 0, err
	}
	if err := tmp.Close(); err != nil {
		return path, 0, core.NewStorageError("close export file", err)
	}
	// CreateTemp uses 0600; reports are ordinary user files.
	if err := os.Chmod(tmpPath, 0o644); err != nil {
		return path, 0, core.NewStorageError("chmod export file", err)
	}
	if err := os.Rename(tmpPath, path); err != nil {
		return path, 0, core.NewStorageError("replace export file", err)
	}
	committed = true
	return path, n, nil
}
