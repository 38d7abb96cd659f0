package dto

import "github.com/SscSPs/liq_planning_app/internal/core/domain"

// ImportRequest carries the raw inputs of one import run.
// StatementHTML is the pasted e-banking table; Invoices is an optional .xlsx.
type ImportRequest struct {
	StatementHTML string
	Invoices      []byte
	InvoicesName  string
}

// ImportReportResponse defines the data returned after an import.
type ImportReportResponse struct {
	Parsed      int `json:"parsed"`
	Imported    int `json:"imported"`
	Ignored     int `json:"ignored"`
	Invalid     int `json:"invalid"`
	Duplicates  int `json:"duplicates"`
	Rescheduled int `json:"rescheduled"`
	Skipped     int `json:"skipped"`
}

// ToImportReportResponse converts a domain.ImportReport to ImportReportResponse DTO
func ToImportReportResponse(r *domain.ImportReport) ImportReportResponse {
	return ImportReportResponse{
		Parsed:      r.Parsed,
		Imported:    r.Imported,
		Ignored:     r.Ignored,
		Invalid:     r.Invalid,
		Duplicates:  r.Duplicates,
		Rescheduled: r.Rescheduled,
		Skipped:     r.Skipped(),
	}
}
