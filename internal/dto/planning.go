package dto

import (
	"github.com/SscSPs/liq_planning_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// ProjectionParams defines query parameters for a projection.
// From defaults to today and To to today plus the configured horizon.
// Amount bounds compare against the absolute booking amount.
type ProjectionParams struct {
	From               string `form:"from"`
	To                 string `form:"to"`
	StartBalance       string `form:"startBalance"`
	IncludeFixedCosts  *bool  `form:"includeFixedCosts"`
	IncludePayroll     *bool  `form:"includePayroll"`
	IncludeSimulations *bool  `form:"includeSimulations"`
	Search             string `form:"search"`
	MinAmount          string `form:"minAmount"`
	MaxAmount          string `form:"maxAmount"`
	Sort               string `form:"sort"`
	Format             string `form:"format"`
}

// ProjectedBookingResponse is one row of the projection table.
type ProjectedBookingResponse struct {
	BookingResponse
	Balance  decimal.Decimal `json:"balance"`
	Marker   string          `json:"marker"`
	Position int             `json:"position"`
}

// ProjectionResponse defines the data returned for a projection.
type ProjectionResponse struct {
	From         string                     `json:"from"`
	To           string                     `json:"to"`
	StartBalance decimal.Decimal            `json:"startBalance"`
	FinalBalance decimal.Decimal            `json:"finalBalance"`
	LowestPoint  *DailyBalanceResponse      `json:"lowestPoint,omitempty"`
	Counts       map[string]int             `json:"counts"`
	Entries      []ProjectedBookingResponse `json:"entries"`
}

// MonthlySummaryResponse is one month of the summary.
type MonthlySummaryResponse struct {
	Month          string          `json:"month"`
	Incoming       decimal.Decimal `json:"incoming"`
	Outgoing       decimal.Decimal `json:"outgoing"`
	Net            decimal.Decimal `json:"net"`
	ClosingBalance decimal.Decimal `json:"closingBalance"`
}

// DailyBalanceResponse is the closing balance of a day.
type DailyBalanceResponse struct {
	Date    string          `json:"date"`
	Balance decimal.Decimal `json:"balance"`
}

// SummaryResponse combines the monthly and daily aggregation of a projection.
type SummaryResponse struct {
	From         string                   `json:"from"`
	To           string                   `json:"to"`
	StartBalance decimal.Decimal          `json:"startBalance"`
	FinalBalance decimal.Decimal          `json:"finalBalance"`
	Months       []MonthlySummaryResponse `json:"months"`
	Daily        []DailyBalanceResponse   `json:"daily"`
}

// ToProjectionResponse converts a domain.Projection to ProjectionResponse DTO
func ToProjectionResponse(from, to string, p domain.Projection, lowest *domain.DailyBalance) ProjectionResponse {
	res := ProjectionResponse{
		From:         from,
		To:           to,
		StartBalance: p.StartBalance,
		FinalBalance: p.FinalBalance,
		Counts:       make(map[string]int, len(p.Counts)),
		Entries:      make([]ProjectedBookingResponse, len(p.Entries)),
	}
	for c, n := range p.Counts {
		res.Counts[string(c)] = n
	}
	for i := range p.Entries {
		e := &p.Entries[i]
		res.Entries[i] = ProjectedBookingResponse{
			BookingResponse: ToBookingResponse(&e.Booking),
			Balance:         e.Balance,
			Marker:          e.Marker,
			Position:        e.Position,
		}
	}
	if lowest != nil {
		res.LowestPoint = &DailyBalanceResponse{Date: isoDate(lowest.Date), Balance: lowest.Balance}
	}
	return res
}

// ToSummaryResponse converts monthly and daily aggregates to SummaryResponse DTO
func ToSummaryResponse(from, to string, p domain.Projection, months []domain.MonthlySummaryRow, daily []domain.DailyBalance) SummaryResponse {
	res := SummaryResponse{
		From:         from,
		To:           to,
		StartBalance: p.StartBalance,
		FinalBalance: p.FinalBalance,
		Months:       make([]MonthlySummaryResponse, len(months)),
		Daily:        make([]DailyBalanceResponse, len(daily)),
	}
	for i, m := range months {
		res.Months[i] = MonthlySummaryResponse{
			Month:          m.Month.Format("2006-01"),
			Incoming:       m.Incoming,
			Outgoing:       m.Outgoing,
			Net:            m.Net,
			ClosingBalance: m.ClosingBalance,
		}
	}
	for i, d := range daily {
		res.Daily[i] = DailyBalanceResponse{Date: isoDate(d.Date), Balance: d.Balance}
	}
	return res
}
