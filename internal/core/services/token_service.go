package services

import (
	"strings"
	"time"

	"github.com/SscSPs/liq_planning_app/internal/apperrors"
	portssvc "github.com/SscSPs/liq_planning_app/internal/core/ports/services"
	"github.com/SscSPs/liq_planning_app/internal/utils"
)

type tokenService struct {
	secret string
	expiry time.Duration
	issuer string
}

// NewTokenService creates the service minting session tokens for the auth gate
func NewTokenService(secret string, expiry time.Duration, issuer string) portssvc.TokenSvc {
	return &tokenService{secret: secret, expiry: expiry, issuer: issuer}
}

var _ portssvc.TokenSvc = (*tokenService)(nil)

// IssueToken returns a signed token for userID and its lifetime in seconds.
func (s *tokenService) IssueToken(userID string) (string, int64, error) {
	if strings.TrimSpace(userID) == "" {
		return "", 0, apperrors.NewValidationError("user id is required")
	}
	token, err := utils.GenerateJWT(userID, s.secret, s.expiry, s.issuer)
	if err != nil {
		return "", 0, err
	}
	return token, int64(s.expiry.Seconds()), nil
}
