package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/SscSPs/liq_planning_app/internal/apperrors"
	"github.com/SscSPs/liq_planning_app/internal/core/services"
	"github.com/SscSPs/liq_planning_app/internal/utils"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAdminService_ResetDisabled(t *testing.T) {
	repo := new(MockAdminRepository)
	svc := services.NewAdminService(repo, false)

	err := svc.Reset(context.Background(), "user-1")

	assert.ErrorIs(t, err, apperrors.ErrForbidden)
	repo.AssertNotCalled(t, "ResetAll")
}

func TestAdminService_ResetEnabled(t *testing.T) {
	ctx := context.Background()
	repo := new(MockAdminRepository)
	repo.On("ResetAll", ctx).Return(nil).Once()
	repo.On("Ping", ctx).Return(nil).Once()
	svc := services.NewAdminService(repo, true)

	require.NoError(t, svc.Reset(ctx, "user-1"))
	require.NoError(t, svc.Health(ctx))
	repo.AssertExpectations(t)
}

func TestTokenService_IssueToken(t *testing.T) {
	svc := services.NewTokenService("secret", time.Hour, "liq")

	token, expiresIn, err := svc.IssueToken("user-1")
	require.NoError(t, err)
	assert.Equal(t, int64(3600), expiresIn)

	claims, err := utils.ParseAndValidateJWT(token, "secret", "liq")
	require.NoError(t, err)
	assert.Equal(t, "user-1", claims.Subject)

	_, _, err = svc.IssueToken("  ")
	assert.ErrorIs(t, err, apperrors.ErrValidation)
}
