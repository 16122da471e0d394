package checklist

import (
	"encoding/csv"
	"fmt"
	"io"

	"github.com/austrich-ai/austrich/internal/model"
)

// ExportHeader is the column header row for checklist exports.
var ExportHeader = []string{"Item", "Status", "Evidence", "Timestamp"}

const exportPlaceholder = "-"

// ExportRows materializes the checklist as tabular rows: display label,
// status, evidence-or-placeholder, timestamp-or-placeholder.
func ExportRows(items []model.ChecklistItem) [][]string {
	rows := make([][]string, 0, len(items))
	for _, item := range items {
		evidence := exportPlaceholder
		if item.HasEvidence() {
			evidence = *item.Evidence
		}

		timestamp := exportPlaceholder
		if item.HasTimestamp() {
			timestamp = *item.Timestamp
			if item.TimestampEnd != nil && *item.TimestampEnd != "" {
				timestamp = fmt.Sprintf("%s - %s", timestamp, *item.TimestampEnd)
			}
		}

		rows = append(rows, []string{
			item.DisplayLabel(),
			string(item.Status),
			evidence,
			timestamp,
		})
	}
	return rows
}

// WriteCSV writes the checklist to w as CSV, header first. Fields containing
// delimiters or quotes are escaped so a re-parse recovers them exactly.
func WriteCSV(w io.Writer, items []model.ChecklistItem) error {
	cw := csv.NewWriter(w)

	if err := cw.Write(ExportHeader); err != nil {
		return fmt.Errorf("failed to write header: %w", err)
	}

	for _, row := range ExportRows(items) {
		if err := cw.Write(row); err != nil {
			return fmt.Errorf("failed to write row: %w", err)
		}
	}

	cw.Flush()
	if err := cw.Error(); err != nil {
		return fmt.Errorf("failed to flush CSV: %w", err)
	}

	return nil
}
