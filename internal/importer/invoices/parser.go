// Package invoices reads the outstanding-invoice spreadsheet exported by the
// billing tool. Every row becomes an expected incoming payment.
package invoices

import (
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/SscSPs/liq_planning_app/internal/apperrors"
	"github.com/SscSPs/liq_planning_app/internal/core/domain"
	"github.com/SscSPs/liq_planning_app/internal/utils/chf"
	"github.com/shopspring/decimal"
	"github.com/xuri/excelize/v2"
)

// Column headers expected in the first row of the first sheet.
const (
	ColumnDueDate        = "Zahlbar bis"
	ColumnCustomer       = "Kunde"
	ColumnCustomerNumber = "Kundennummer"
	ColumnGross          = "Brutto"
)

// Row is one invoice line. Err is set when the due date or amount could not
// be read; the other fields are then best effort.
type Row struct {
	Line           int
	DueDate        time.Time
	Customer       string
	CustomerNumber string
	Gross          decimal.Decimal
	Err            error
}

// Details is the booking text used for the invoice, "<customer> <number>".
func (r Row) Details() string {
	return strings.TrimSpace(r.Customer + " " + r.CustomerNumber)
}

// Parse reads the first sheet of an .xlsx workbook.
func Parse(r io.Reader) ([]Row, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return nil, fmt.Errorf("%w: open invoice workbook: %v", apperrors.ErrValidation, err)
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, apperrors.NewValidationError("invoice workbook has no sheets")
	}
	raw, err := f.GetRows(sheets[0], excelize.Options{RawCellValue: true})
	if err != nil {
		return nil, fmt.Errorf("read invoice sheet %s: %w", sheets[0], err)
	}
	if len(raw) == 0 {
		return nil, nil
	}

	cols, err := headerIndex(raw[0])
	if err != nil {
		return nil, err
	}

	var rows []Row
	for i, cells := range raw[1:] {
		if blank(cells) {
			continue
		}
		row := Row{
			Line:           i + 2,
			Customer:       cell(cells, cols[ColumnCustomer]),
			CustomerNumber: cell(cells, cols[ColumnCustomerNumber]),
		}
		row.DueDate, row.Err = parseDueDate(cell(cells, cols[ColumnDueDate]))
		if row.Err == nil {
			row.Gross, row.Err = chf.ParseAmount(cell(cells, cols[ColumnGross]))
		}
		rows = append(rows, row)
	}
	return rows, nil
}

func headerIndex(header []string) (map[string]int, error) {
	cols := make(map[string]int, 4)
	for i, h := range header {
		cols[strings.TrimSpace(h)] = i
	}
	for _, required := range []string{ColumnDueDate, ColumnCustomer, ColumnCustomerNumber, ColumnGross} {
		if _, ok := cols[required]; !ok {
			return nil, apperrors.NewValidationError(fmt.Sprintf("invoice sheet is missing column %q", required))
		}
	}
	return cols, nil
}

// maxSerial keeps compact dates like "20250305" from being read as a serial day count.
const maxSerial = 100000

// parseDueDate accepts an Excel serial date or any text chf.ParseDate understands.
func parseDueDate(s string) (time.Time, error) {
	if serial, err := strconv.ParseFloat(s, 64); err == nil && serial > 0 && serial < maxSerial {
		t, err := excelize.ExcelDateToTime(serial, false)
		if err != nil {
			return time.Time{}, apperrors.NewParseError("date", s)
		}
		return domain.DateOnly(t), nil
	}
	return chf.ParseDate(s)
}

func cell(cells []string, i int) string {
	if i < len(cells) {
		return strings.TrimSpace(cells[i])
	}
	return ""
}

func blank(cells []string) bool {
	for _, c := range cells {
		if strings.TrimSpace(c) != "" {
			return false
		}
	}
	return true
}
