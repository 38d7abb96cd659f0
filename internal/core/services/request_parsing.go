package services

import (
	"strings"
	"time"

	"github.com/SscSPs/liq_planning_app/internal/apperrors"
	"github.com/SscSPs/liq_planning_app/internal/utils/chf"
	"github.com/shopspring/decimal"
)

// parseOptionalDate parses s with the Swiss date rules, returning nil for blank input.
func parseOptionalDate(s *string) (*time.Time, error) {
	if s == nil || strings.TrimSpace(*s) == "" {
		return nil, nil
	}
	t, err := chf.ParseDate(*s)
	if err != nil {
		return nil, err
	}
	return &t, nil
}

// parseOptionalAmount parses s with the CHF amount rules, returning nil for blank input.
func parseOptionalAmount(s string) (*decimal.Decimal, error) {
	if strings.TrimSpace(s) == "" {
		return nil, nil
	}
	d, err := chf.ParseAmount(s)
	if err != nil {
		return nil, err
	}
	return &d, nil
}

func requireNonNegative(what string, d decimal.Decimal) error {
	if d.IsNegative() {
		return apperrors.NewValidationError(what + " must not be negative")
	}
	return nil
}
