package services

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/SscSPs/liq_planning_app/internal/apperrors"
	portsrepo "github.com/SscSPs/liq_planning_app/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/liq_planning_app/internal/core/ports/services"
)

type adminService struct {
	BaseService
	adminRepo  portsrepo.AdminRepository
	allowReset bool
}

// NewAdminService creates the maintenance service. Reset is refused unless allowReset is set.
func NewAdminService(repo portsrepo.AdminRepository, allowReset bool, options ...ServiceOption) portssvc.AdminSvc {
	return &adminService{
		BaseService: newBaseService(options...),
		adminRepo:   repo,
		allowReset:  allowReset,
	}
}

var _ portssvc.AdminSvc = (*adminService)(nil)

func (s *adminService) Reset(ctx context.Context, userID string) error {
	if !s.allowReset {
		s.LogInfo(ctx, "Reset refused, not enabled", slog.String("user_id", userID))
		return apperrors.NewAppError(http.StatusForbidden, "data reset is disabled", apperrors.ErrForbidden)
	}
	if err := s.adminRepo.ResetAll(ctx); err != nil {
		s.LogError(ctx, err, "Failed to reset planner data")
		return err
	}
	s.LogInfo(ctx, "Planner data reset", slog.String("user_id", userID))
	return nil
}

func (s *adminService) Health(ctx context.Context) error {
	return s.adminRepo.Ping(ctx)
}
