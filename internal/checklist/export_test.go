package checklist

import (
	"bytes"
	"encoding/csv"
	"strings"
	"testing"

	"github.com/austrich-ai/austrich/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func strPtr(s string) *string { return &s }

func TestExportRows(t *testing.T) {
	items := []model.ChecklistItem{
		{
			Item:      "Asked about pain characteristics (OPQRST)",
			Status:    model.StatusYes,
			Evidence:  strPtr("Where exactly does it hurt?"),
			Timestamp: strPtr("00:01:12"),
		},
		{
			Item:   "Checked capillary refill",
			Status: model.StatusNo,
		},
		{
			Item:         "Auscultated heart",
			Status:       model.StatusNotSure,
			Evidence:     strPtr("Let me listen to your heart."),
			Timestamp:    strPtr("00:04:02"),
			TimestampEnd: strPtr("00:04:40"),
		},
	}

	rows := ExportRows(items)
	require.Len(t, rows, 3)

	assert.Equal(t, []string{"Asked about pain characteristics", "Yes", "Where exactly does it hurt?", "00:01:12"}, rows[0])
	assert.Equal(t, []string{"Checked capillary refill", "No", "-", "-"}, rows[1])
	assert.Equal(t, []string{"Auscultated heart", "Not Sure", "Let me listen to your heart.", "00:04:02 - 00:04:40"}, rows[2])
}

func TestWriteCSV_RoundTripsSpecialCharacters(t *testing.T) {
	evidence := `He said, "hello"`
	items := []model.ChecklistItem{
		{
			Item:     "Greeted patient, introduced self",
			Status:   model.StatusYes,
			Evidence: &evidence,
		},
	}

	var buf bytes.Buffer
	require.NoError(t, WriteCSV(&buf, items))

	// The quoted cell escapes the embedded quotes.
	assert.Contains(t, buf.String(), `"He said, ""hello"""`)

	// Re-parsing recovers the original fields exactly.
	records, err := csv.NewReader(strings.NewReader(buf.String())).ReadAll()
	require.NoError(t, err)
	require.Len(t, records, 2)
	assert.Equal(t, ExportHeader, records[0])
	assert.Equal(t, []string{"Greeted patient, introduced self", "Yes", evidence, "-"}, records[1])
}

func TestWriteCSV_EmptyChecklist(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteCSV(&buf, nil))

	records, err := csv.NewReader(strings.NewReader(buf.String())).ReadAll()
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, ExportHeader, records[0])
}
