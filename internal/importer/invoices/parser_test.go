package invoices

import (
	"bytes"
	"testing"
	"time"

	"github.com/SscSPs/liq_planning_app/internal/apperrors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func workbook(t *testing.T, rows [][]any) *bytes.Buffer {
	t.Helper()
	f := excelize.NewFile()
	defer f.Close()
	for i, row := range rows {
		cellRef, err := excelize.CoordinatesToCellName(1, i+1)
		require.NoError(t, err)
		require.NoError(t, f.SetSheetRow("Sheet1", cellRef, &row))
	}
	var buf bytes.Buffer
	require.NoError(t, f.Write(&buf))
	return &buf
}

func TestParse(t *testing.T) {
	buf := workbook(t, [][]any{
		{"Rechnung", ColumnCustomer, ColumnCustomerNumber, ColumnDueDate, ColumnGross},
		{"R-1", "Muster AG", 1001, time.Date(2025, 3, 15, 0, 0, 0, 0, time.UTC), 1250.5},
		{"R-2", "Beispiel GmbH", "K-7", "31.03.2025", "CHF 2'000.00"},
		{},
		{"R-3", "Kaputt AG", 1003, "irgendwann", 10},
		{"R-4", "Ohne Betrag", 1004, "2025-04-01", ""},
	})

	rows, err := Parse(buf)
	require.NoError(t, err)
	require.Len(t, rows, 4)

	assert.NoError(t, rows[0].Err)
	assert.Equal(t, 2, rows[0].Line)
	assert.Equal(t, time.Date(2025, 3, 15, 0, 0, 0, 0, time.UTC), rows[0].DueDate)
	assert.Equal(t, "Muster AG 1001", rows[0].Details())
	assert.Equal(t, "1250.5", rows[0].Gross.String())

	assert.NoError(t, rows[1].Err)
	assert.Equal(t, time.Date(2025, 3, 31, 0, 0, 0, 0, time.UTC), rows[1].DueDate)
	assert.Equal(t, "Beispiel GmbH K-7", rows[1].Details())
	assert.Equal(t, "2000", rows[1].Gross.String())

	assert.ErrorIs(t, rows[2].Err, apperrors.ErrParse)
	assert.Equal(t, 5, rows[2].Line, "blank rows keep line numbering")
	assert.ErrorIs(t, rows[3].Err, apperrors.ErrParse)
}

func TestParse_MissingColumn(t *testing.T) {
	buf := workbook(t, [][]any{{ColumnCustomer, ColumnGross}, {"Muster AG", 10}})
	_, err := Parse(buf)
	assert.ErrorIs(t, err, apperrors.ErrValidation)
}

func TestParse_NotAWorkbook(t *testing.T) {
	_, err := Parse(bytes.NewBufferString("Kunde;Brutto\n"))
	assert.ErrorIs(t, err, apperrors.ErrValidation)
}

func TestParseDueDate(t *testing.T) {
	got, err := parseDueDate("45731")
	require.NoError(t, err)
	assert.Equal(t, time.Date(2025, 3, 15, 0, 0, 0, 0, time.UTC), got)

	got, err = parseDueDate("20250305")
	require.NoError(t, err)
	assert.Equal(t, time.Date(2025, 3, 5, 0, 0, 0, 0, time.UTC), got)
}
