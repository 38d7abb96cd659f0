package dto

import (
	"time"

	"github.com/SscSPs/liq_planning_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// BookingRequest carries the editable fields of a booking.
// Date accepts ISO (2025-03-01) and Swiss (01.03.2025) formats.
type BookingRequest struct {
	Date      string          `json:"date" binding:"required"`
	Details   string          `json:"details" binding:"required,max=500"`
	Amount    decimal.Decimal `json:"amount"`
	Direction string          `json:"direction" binding:"required,direction"`
}

// BatchBookingItem is one row of a batch edit.
type BatchBookingItem struct {
	ID string `json:"id" binding:"required"`
	BookingRequest
}

// BatchUpdateBookingsRequest edits several bookings at once.
type BatchUpdateBookingsRequest struct {
	Items []BatchBookingItem `json:"items" binding:"required,min=1,max=1000,dive"`
}

// BatchUpdateResult reports the outcome of one batch row.
type BatchUpdateResult struct {
	ID    string `json:"id"`
	Error string `json:"error,omitempty"`
}

// BatchUpdateBookingsResponse holds per-row results of a batch edit.
type BatchUpdateBookingsResponse struct {
	Updated int                 `json:"updated"`
	Failed  int                 `json:"failed"`
	Results []BatchUpdateResult `json:"results"`
}

// ListBookingsParams defines query parameters for listing bookings.
type ListBookingsParams struct {
	From         string `form:"from"`
	To           string `form:"to"`
	ModifiedOnly bool   `form:"modifiedOnly"`
	Limit        int    `form:"limit,default=100"`
	NextToken    string `form:"nextToken"`
}

// BookingResponse defines the data returned for a booking.
type BookingResponse struct {
	ID            string          `json:"id"`
	Date          string          `json:"date"`
	Details       string          `json:"details"`
	Amount        decimal.Decimal `json:"amount"`
	SignedAmount  decimal.Decimal `json:"signedAmount"`
	Direction     string          `json:"direction"`
	Category      string          `json:"category"`
	Modified      bool            `json:"modified"`
	SourceID      string          `json:"sourceId,omitempty"`
	NominalDate   string          `json:"nominalDate,omitempty"`
	CreatedAt     time.Time       `json:"createdAt"`
	CreatedBy     string          `json:"createdBy"`
	LastUpdatedAt time.Time       `json:"lastUpdatedAt"`
	LastUpdatedBy string          `json:"lastUpdatedBy"`
}

// ListBookingsResponse wraps a page of bookings.
type ListBookingsResponse struct {
	Bookings  []BookingResponse `json:"bookings"`
	NextToken string            `json:"nextToken,omitempty"`
}

// ToBookingResponse converts a domain.Booking to BookingResponse DTO
func ToBookingResponse(b *domain.Booking) BookingResponse {
	res := BookingResponse{
		ID:            b.ID,
		Date:          isoDate(b.Date),
		Details:       b.Details,
		Amount:        b.Amount,
		SignedAmount:  b.SignedAmount(),
		Direction:     string(b.Direction),
		Category:      string(b.Category),
		Modified:      b.Modified,
		SourceID:      b.SourceID,
		CreatedAt:     b.CreatedAt,
		CreatedBy:     b.CreatedBy,
		LastUpdatedAt: b.LastUpdatedAt,
		LastUpdatedBy: b.LastUpdatedBy,
	}
	if b.NominalDate != nil {
		res.NominalDate = isoDate(*b.NominalDate)
	}
	return res
}

// ToBookingResponses converts a slice of domain.Booking to []BookingResponse.
func ToBookingResponses(bookings []domain.Booking) []BookingResponse {
	res := make([]BookingResponse, len(bookings))
	for i := range bookings {
		res[i] = ToBookingResponse(&bookings[i])
	}
	return res
}

func isoDate(t time.Time) string {
	return t.Format("2006-01-02")
}

func isoDatePtr(t *time.Time) *string {
	if t == nil {
		return nil
	}
	s := isoDate(*t)
	return &s
}
