package services_test

import (
	"context"
	"testing"

	"github.com/SscSPs/liq_planning_app/internal/apperrors"
	"github.com/SscSPs/liq_planning_app/internal/core/domain"
	portssvc "github.com/SscSPs/liq_planning_app/internal/core/ports/services"
	"github.com/SscSPs/liq_planning_app/internal/core/services"
	"github.com/SscSPs/liq_planning_app/internal/dto"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

type FixedCostServiceTestSuite struct {
	suite.Suite
	mockRepo *MockFixedCostRepository
	service  portssvc.FixedCostSvcFacade
	ctx      context.Context
}

func (suite *FixedCostServiceTestSuite) SetupTest() {
	suite.mockRepo = new(MockFixedCostRepository)
	suite.service = services.NewFixedCostService(suite.mockRepo, services.WithClock(clock))
	suite.ctx = context.Background()
}

func (suite *FixedCostServiceTestSuite) rent() *domain.FixedCost {
	return &domain.FixedCost{
		ID:     "fc1",
		Name:   "Miete",
		Amount: decimal.NewFromInt(1000),
		Rhythm: domain.RhythmMonthly,
		Start:  day(2025, 1, 1),
	}
}

func (suite *FixedCostServiceTestSuite) TestCreateFixedCost_Success() {
	end := "31.12.2025"
	req := dto.FixedCostRequest{Name: "Versicherung", Amount: decimal.NewFromInt(1200), Rhythm: string(domain.RhythmAnnual), Start: "01.01.2025", End: &end}

	suite.mockRepo.On("SaveFixedCost", suite.ctx, mock.MatchedBy(func(f domain.FixedCost) bool {
		return f.ID != "" && f.Rhythm == domain.RhythmAnnual && f.End != nil && f.End.Equal(day(2025, 12, 31))
	})).Return(nil).Once()

	cost, err := suite.service.CreateFixedCost(suite.ctx, req, "user-1")

	suite.Require().NoError(err)
	suite.Equal("Versicherung", cost.Name)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *FixedCostServiceTestSuite) TestCreateFixedCost_EndBeforeStart() {
	end := "2024-12-31"
	req := dto.FixedCostRequest{Name: "Leasing", Amount: decimal.NewFromInt(300), Rhythm: string(domain.RhythmMonthly), Start: "2025-01-01", End: &end}

	_, err := suite.service.CreateFixedCost(suite.ctx, req, "user-1")

	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.mockRepo.AssertNotCalled(suite.T(), "SaveFixedCost", mock.Anything, mock.Anything)
}

func (suite *FixedCostServiceTestSuite) TestStopFixedCost_EndsToday() {
	suite.mockRepo.On("FindFixedCostByID", suite.ctx, "fc1", "").Return(suite.rent(), nil).Once()
	suite.mockRepo.On("SaveFixedCost", suite.ctx, mock.MatchedBy(func(f domain.FixedCost) bool {
		return f.End != nil && f.End.Equal(day(2025, 3, 10))
	})).Return(nil).Once()

	cost, err := suite.service.StopFixedCost(suite.ctx, "fc1", "user-1")

	suite.Require().NoError(err)
	suite.Equal(day(2025, 3, 10), *cost.End)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *FixedCostServiceTestSuite) TestStopFixedCost_NotStartedYet() {
	future := suite.rent()
	future.Start = day(2025, 6, 1)
	suite.mockRepo.On("FindFixedCostByID", suite.ctx, "fc1", "").Return(future, nil).Once()

	_, err := suite.service.StopFixedCost(suite.ctx, "fc1", "user-1")

	suite.ErrorIs(err, apperrors.ErrValidation)
}

func (suite *FixedCostServiceTestSuite) TestMonthlyTotal() {
	ended := day(2025, 2, 1)
	suite.mockRepo.On("ListFixedCosts", suite.ctx, "").Return([]domain.FixedCost{
		*suite.rent(),
		{ID: "fc2", Name: "Versicherung", Amount: decimal.NewFromInt(1200), Rhythm: domain.RhythmAnnual, Start: day(2024, 1, 1)},
		{ID: "fc3", Name: "Alt", Amount: decimal.NewFromInt(999), Rhythm: domain.RhythmMonthly, Start: day(2024, 1, 1), End: &ended},
	}, nil).Once()

	total, err := suite.service.MonthlyTotal(suite.ctx, "user-1")

	suite.Require().NoError(err)
	suite.True(total.Equal(decimal.NewFromInt(1100)), total.String())
}

func (suite *FixedCostServiceTestSuite) TestDeleteFixedCost_NotFound() {
	suite.mockRepo.On("DeleteFixedCost", suite.ctx, "nope", "").Return(apperrors.ErrNotFound).Once()

	err := suite.service.DeleteFixedCost(suite.ctx, "nope", "user-1")

	suite.ErrorIs(err, apperrors.ErrNotFound)
}

func TestFixedCostServiceTestSuite(t *testing.T) {
	suite.Run(t, new(FixedCostServiceTestSuite))
}
