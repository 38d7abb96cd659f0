package services_test

import (
	"context"
	"time"

	"github.com/SscSPs/liq_planning_app/internal/core/domain"
	"github.com/SscSPs/liq_planning_app/internal/utils/pagination"
	"github.com/stretchr/testify/mock"
)

// fixedNow is a Monday; all service tests run against it.
var fixedNow = time.Date(2025, 3, 10, 9, 30, 0, 0, time.UTC)

func clock() time.Time { return fixedNow }

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// --- Mock BookingRepository ---
type MockBookingRepository struct {
	mock.Mock
}

func (m *MockBookingRepository) FindBookingByID(ctx context.Context, bookingID, ownerID string) (*domain.Booking, error) {
	args := m.Called(ctx, bookingID, ownerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Booking), args.Error(1)
}

func (m *MockBookingRepository) ListBookings(ctx context.Context, filter domain.BookingFilter) ([]domain.Booking, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Booking), args.Error(1)
}

func (m *MockBookingRepository) ListBookingsPage(ctx context.Context, filter domain.BookingFilter, after *pagination.Cursor, limit int) ([]domain.Booking, *pagination.Cursor, error) {
	args := m.Called(ctx, filter, after, limit)
	var bookings []domain.Booking
	if args.Get(0) != nil {
		bookings = args.Get(0).([]domain.Booking)
	}
	var next *pagination.Cursor
	if args.Get(1) != nil {
		next = args.Get(1).(*pagination.Cursor)
	}
	return bookings, next, args.Error(2)
}

func (m *MockBookingRepository) SaveBookings(ctx context.Context, bookings []domain.Booking) error {
	args := m.Called(ctx, bookings)
	return args.Error(0)
}

func (m *MockBookingRepository) UpdateBooking(ctx context.Context, booking domain.Booking) error {
	args := m.Called(ctx, booking)
	return args.Error(0)
}

func (m *MockBookingRepository) DeleteBooking(ctx context.Context, bookingID, ownerID string) error {
	args := m.Called(ctx, bookingID, ownerID)
	return args.Error(0)
}

// --- Mock FixedCostRepository ---
type MockFixedCostRepository struct {
	mock.Mock
}

func (m *MockFixedCostRepository) FindFixedCostByID(ctx context.Context, fixedCostID, ownerID string) (*domain.FixedCost, error) {
	args := m.Called(ctx, fixedCostID, ownerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.FixedCost), args.Error(1)
}

func (m *MockFixedCostRepository) ListFixedCosts(ctx context.Context, ownerID string) ([]domain.FixedCost, error) {
	args := m.Called(ctx, ownerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.FixedCost), args.Error(1)
}

func (m *MockFixedCostRepository) SaveFixedCost(ctx context.Context, cost domain.FixedCost) error {
	args := m.Called(ctx, cost)
	return args.Error(0)
}

func (m *MockFixedCostRepository) DeleteFixedCost(ctx context.Context, fixedCostID, ownerID string) error {
	args := m.Called(ctx, fixedCostID, ownerID)
	return args.Error(0)
}

// --- Mock EmployeeRepository ---
type MockEmployeeRepository struct {
	mock.Mock
}

func (m *MockEmployeeRepository) FindEmployeeByID(ctx context.Context, employeeID, ownerID string) (*domain.Employee, error) {
	args := m.Called(ctx, employeeID, ownerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Employee), args.Error(1)
}

func (m *MockEmployeeRepository) ListEmployees(ctx context.Context, ownerID string) ([]domain.Employee, error) {
	args := m.Called(ctx, ownerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Employee), args.Error(1)
}

func (m *MockEmployeeRepository) SaveEmployee(ctx context.Context, employee domain.Employee) error {
	args := m.Called(ctx, employee)
	return args.Error(0)
}

func (m *MockEmployeeRepository) DeleteEmployee(ctx context.Context, employeeID, ownerID string) error {
	args := m.Called(ctx, employeeID, ownerID)
	return args.Error(0)
}

// --- Mock SimulationRepository ---
type MockSimulationRepository struct {
	mock.Mock
}

func (m *MockSimulationRepository) FindSimulationByID(ctx context.Context, simulationID, ownerID string) (*domain.Simulation, error) {
	args := m.Called(ctx, simulationID, ownerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Simulation), args.Error(1)
}

func (m *MockSimulationRepository) ListSimulations(ctx context.Context, ownerID string) ([]domain.Simulation, error) {
	args := m.Called(ctx, ownerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Simulation), args.Error(1)
}

func (m *MockSimulationRepository) SaveSimulation(ctx context.Context, simulation domain.Simulation) error {
	args := m.Called(ctx, simulation)
	return args.Error(0)
}

func (m *MockSimulationRepository) DeleteSimulation(ctx context.Context, simulationID, ownerID string) error {
	args := m.Called(ctx, simulationID, ownerID)
	return args.Error(0)
}

func (m *MockSimulationRepository) ReplaceSimulations(ctx context.Context, ownerID string, simulations []domain.Simulation) error {
	args := m.Called(ctx, ownerID, simulations)
	return args.Error(0)
}

// --- Mock AdminRepository ---
type MockAdminRepository struct {
	mock.Mock
}

func (m *MockAdminRepository) ResetAll(ctx context.Context) error {
	return m.Called(ctx).Error(0)
}

func (m *MockAdminRepository) Ping(ctx context.Context) error {
	return m.Called(ctx).Error(0)
}
