package services_test

import (
	"context"
	"testing"

	"github.com/SscSPs/liq_planning_app/internal/apperrors"
	"github.com/SscSPs/liq_planning_app/internal/core/domain"
	portssvc "github.com/SscSPs/liq_planning_app/internal/core/ports/services"
	"github.com/SscSPs/liq_planning_app/internal/core/services"
	"github.com/SscSPs/liq_planning_app/internal/dto"
	"github.com/SscSPs/liq_planning_app/internal/platform/config"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

type SimulationServiceTestSuite struct {
	suite.Suite
	mockRepo *MockSimulationRepository
	service  portssvc.SimulationSvcFacade
	ctx      context.Context
}

func (suite *SimulationServiceTestSuite) SetupTest() {
	suite.mockRepo = new(MockSimulationRepository)
	suite.service = services.NewSimulationService(suite.mockRepo,
		services.WithClock(clock), services.WithLedgerScope(config.LedgerScopeUser))
	suite.ctx = context.Background()
}

func (suite *SimulationServiceTestSuite) TestReplaceSimulations_Success() {
	req := dto.ReplaceSimulationsRequest{Items: []dto.SimulationRequest{
		{Date: "01.04.2025", Details: "Neuer Server", Amount: decimal.NewFromInt(8000), Direction: string(domain.Outgoing)},
		{Date: "15.04.2025", Details: "Grossauftrag", Amount: decimal.NewFromInt(20000), Direction: string(domain.Incoming)},
	}}
	suite.mockRepo.On("ReplaceSimulations", suite.ctx, "user-1", mock.MatchedBy(func(sims []domain.Simulation) bool {
		return len(sims) == 2 && sims[0].ID != sims[1].ID && sims[1].Direction == domain.Incoming
	})).Return(nil).Once()

	sims, err := suite.service.ReplaceSimulations(suite.ctx, req, "user-1")

	suite.Require().NoError(err)
	suite.Len(sims, 2)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *SimulationServiceTestSuite) TestReplaceSimulations_InvalidItemKeepsScenario() {
	req := dto.ReplaceSimulationsRequest{Items: []dto.SimulationRequest{
		{Date: "01.04.2025", Details: "ok", Amount: decimal.NewFromInt(1), Direction: string(domain.Outgoing)},
		{Date: "irgendwann", Details: "kaputt", Amount: decimal.NewFromInt(1), Direction: string(domain.Outgoing)},
	}}

	_, err := suite.service.ReplaceSimulations(suite.ctx, req, "user-1")

	suite.ErrorIs(err, apperrors.ErrParse)
	suite.ErrorContains(err, "simulation 2")
	suite.mockRepo.AssertNotCalled(suite.T(), "ReplaceSimulations", mock.Anything, mock.Anything, mock.Anything)
}

func (suite *SimulationServiceTestSuite) TestReplaceSimulations_EmptyClears() {
	suite.mockRepo.On("ReplaceSimulations", suite.ctx, "user-1", []domain.Simulation{}).Return(nil).Once()

	sims, err := suite.service.ReplaceSimulations(suite.ctx, dto.ReplaceSimulationsRequest{}, "user-1")

	suite.Require().NoError(err)
	suite.Empty(sims)
}

func (suite *SimulationServiceTestSuite) TestUpdateSimulation_ScopedToOwner() {
	suite.mockRepo.On("FindSimulationByID", suite.ctx, "s1", "user-2").Return(nil, apperrors.NewNotFoundError("simulation not found")).Once()

	_, err := suite.service.UpdateSimulation(suite.ctx, "s1", dto.SimulationRequest{}, "user-2")

	suite.ErrorIs(err, apperrors.ErrNotFound)
}

func TestSimulationServiceTestSuite(t *testing.T) {
	suite.Run(t, new(SimulationServiceTestSuite))
}
