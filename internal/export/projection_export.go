// Package export renders a computed projection as a downloadable document.
package export

import (
	"bytes"
	"fmt"
	"time"

	"github.com/SscSPs/liq_planning_app/internal/core/domain"
	"github.com/SscSPs/liq_planning_app/internal/utils/chf"
	"github.com/jung-kurt/gofpdf"
	"github.com/xuri/excelize/v2"
)

// Format is a supported export document type.
type Format string

const (
	FormatXLSX Format = "xlsx"
	FormatPDF  Format = "pdf"
)

// ContentType returns the MIME type of the format.
func (f Format) ContentType() string {
	switch f {
	case FormatPDF:
		return "application/pdf"
	default:
		return "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
	}
}

// Meta describes the export header.
type Meta struct {
	Title       string
	RangeStart  time.Time
	RangeEnd    time.Time
	GeneratedAt time.Time
}

// Render dispatches to the renderer for format.
func Render(format Format, meta Meta, p domain.Projection, summary []domain.MonthlySummaryRow) ([]byte, error) {
	switch format {
	case FormatXLSX:
		return BuildProjectionXLSX(meta, p, summary)
	case FormatPDF:
		return BuildProjectionPDF(meta, p)
	default:
		return nil, fmt.Errorf("unsupported export format %q", format)
	}
}

// BuildProjectionXLSX writes a "Planung" sheet with one row per booking and a
// "Monate" sheet with the monthly summary. Amounts are written as numbers.
func BuildProjectionXLSX(meta Meta, p domain.Projection, summary []domain.MonthlySummaryRow) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	ledgerSheet := "Planung"
	monthSheet := "Monate"
	if err := f.SetSheetName("Sheet1", ledgerSheet); err != nil {
		return nil, err
	}
	if _, err := f.NewSheet(monthSheet); err != nil {
		return nil, err
	}

	_ = f.SetCellValue(ledgerSheet, "A1", meta.Title)
	_ = f.SetCellValue(ledgerSheet, "A2", fmt.Sprintf("%s - %s", chf.FormatDate(meta.RangeStart), chf.FormatDate(meta.RangeEnd)))
	_ = f.SetCellValue(ledgerSheet, "A3", "Startsaldo")
	_ = f.SetCellValue(ledgerSheet, "B3", p.StartBalance.InexactFloat64())
	_ = f.SetCellValue(ledgerSheet, "C3", "Endsaldo")
	_ = f.SetCellValue(ledgerSheet, "D3", p.FinalBalance.InexactFloat64())

	header := []any{"Datum", "Details", "Richtung", "Kategorie", "Betrag", "Saldo", "Markierung"}
	if err := f.SetSheetRow(ledgerSheet, "A5", &header); err != nil {
		return nil, err
	}
	for i, e := range p.Entries {
		row := []any{
			chf.FormatDate(e.Date),
			e.Details,
			string(e.Direction),
			string(e.Category),
			e.SignedAmount.InexactFloat64(),
			e.Balance.InexactFloat64(),
			e.Marker,
		}
		if err := f.SetSheetRow(ledgerSheet, fmt.Sprintf("A%d", i+6), &row); err != nil {
			return nil, err
		}
	}

	monthHeader := []any{"Monat", "Eingänge", "Ausgänge", "Netto", "Saldo Monatsende"}
	if err := f.SetSheetRow(monthSheet, "A1", &monthHeader); err != nil {
		return nil, err
	}
	for i, m := range summary {
		row := []any{
			m.Month.Format("2006-01"),
			m.Incoming.InexactFloat64(),
			m.Outgoing.InexactFloat64(),
			m.Net.InexactFloat64(),
			m.ClosingBalance.InexactFloat64(),
		}
		if err := f.SetSheetRow(monthSheet, fmt.Sprintf("A%d", i+2), &row); err != nil {
			return nil, err
		}
	}

	var buf bytes.Buffer
	if err := f.Write(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// pdfMarkers replaces the emoji markers, which the core PDF fonts cannot draw.
var pdfMarkers = map[domain.Category]string{
	domain.CategoryFixedCost:  "FK",
	domain.CategoryPayroll:    "LO",
	domain.CategorySimulation: "SIM",
}

// BuildProjectionPDF renders the projection as an A4 landscape table.
func BuildProjectionPDF(meta Meta, p domain.Projection) ([]byte, error) {
	pdf := gofpdf.New("L", "mm", "A4", "")
	tr := pdf.UnicodeTranslatorFromDescriptor("")
	pdf.SetFont("Arial", "", 12)
	pdf.AddPage()

	pdf.Cell(0, 8, tr(meta.Title))
	pdf.Ln(10)
	pdf.SetFont("Arial", "", 10)
	pdf.Cell(0, 6, fmt.Sprintf("Zeitraum: %s - %s", chf.FormatDate(meta.RangeStart), chf.FormatDate(meta.RangeEnd)))
	pdf.Ln(5)
	pdf.Cell(0, 6, fmt.Sprintf("Erstellt: %s", meta.GeneratedAt.Format("02.01.2006 15:04")))
	pdf.Ln(5)
	pdf.Cell(0, 6, tr(fmt.Sprintf("Startsaldo: %s   Endsaldo: %s", chf.FormatAmount(p.StartBalance), chf.FormatAmount(p.FinalBalance))))
	pdf.Ln(8)

	widths := []float64{25, 120, 30, 40, 40, 20}
	headers := []string{"Datum", "Details", "Kategorie", "Betrag", "Saldo", ""}
	pdf.SetFont("Arial", "B", 10)
	for i, h := range headers {
		pdf.CellFormat(widths[i], 6, h, "1", 0, "C", false, 0, "")
	}
	pdf.Ln(-1)

	pdf.SetFont("Arial", "", 9)
	for _, e := range p.Entries {
		marker := pdfMarkers[e.Category]
		if e.Modified {
			marker = "*" + marker
		}
		pdf.CellFormat(widths[0], 6, chf.FormatDate(e.Date), "1", 0, "C", false, 0, "")
		pdf.CellFormat(widths[1], 6, tr(truncate(e.Details, 70)), "1", 0, "L", false, 0, "")
		pdf.CellFormat(widths[2], 6, string(e.Category), "1", 0, "C", false, 0, "")
		pdf.CellFormat(widths[3], 6, chf.FormatAmount(e.SignedAmount), "1", 0, "R", false, 0, "")
		pdf.CellFormat(widths[4], 6, chf.FormatAmount(e.Balance), "1", 0, "R", false, 0, "")
		pdf.CellFormat(widths[5], 6, marker, "1", 0, "C", false, 0, "")
		pdf.Ln(-1)
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func truncate(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n-1]) + "…"
}
