package pgsql

import (
	"testing"
	"time"

	"github.com/SscSPs/liq_planning_app/internal/core/domain"
	"github.com/stretchr/testify/assert"
)

func TestBookingWhere(t *testing.T) {
	from := time.Date(2025, 1, 1, 13, 0, 0, 0, time.UTC)
	to := time.Date(2025, 3, 31, 0, 0, 0, 0, time.UTC)

	w := bookingWhere(domain.BookingFilter{From: &from, To: &to, ModifiedOnly: true, OwnerID: "u1"})
	assert.Equal(t, " WHERE date >= $1 AND date <= $2 AND modified AND created_by = $3", w.String())
	assert.Equal(t, []any{time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC), to, "u1"}, w.args)
	assert.Equal(t, "$4", w.next())
}

func TestWhereBuilder_Empty(t *testing.T) {
	w := bookingWhere(domain.BookingFilter{})
	assert.Equal(t, "", w.String())
	assert.Equal(t, "$1", w.next())
}
