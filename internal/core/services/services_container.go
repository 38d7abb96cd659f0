package services

import (
	"github.com/SscSPs/liq_planning_app/internal/core/ports/repositories"
	"github.com/SscSPs/liq_planning_app/internal/core/ports/services"
	"github.com/SscSPs/liq_planning_app/internal/importer/rules"
	"github.com/SscSPs/liq_planning_app/internal/platform/config"
)

// NewServiceContainer creates a new service container with all services initialized
func NewServiceContainer(cfg *config.Config, repos repositories.RepositoryProvider, importRules rules.Rules) *services.ServiceContainer {
	scope := WithLedgerScope(cfg.LedgerScope)

	return &services.ServiceContainer{
		Booking:    NewBookingService(repos.BookingRepo, scope),
		FixedCost:  NewFixedCostService(repos.FixedCostRepo, scope),
		Employee:   NewEmployeeService(repos.EmployeeRepo, scope),
		Simulation: NewSimulationService(repos.SimulationRepo, scope),
		Planning: NewPlanningService(PlanningRepos{
			Bookings:    repos.BookingRepo,
			FixedCosts:  repos.FixedCostRepo,
			Employees:   repos.EmployeeRepo,
			Simulations: repos.SimulationRepo,
		}, cfg.DefaultHorizonDays, scope),
		Import: NewImportService(repos.BookingRepo, importRules, cfg.ImportOverdueToTomorrow, scope),
		Admin:  NewAdminService(repos.AdminRepo, cfg.AllowReset),
		Token:  NewTokenService(cfg.JWTSecret, cfg.JWTExpiryDuration, cfg.JWTIssuer),
	}
}
