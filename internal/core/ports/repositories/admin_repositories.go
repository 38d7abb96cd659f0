package repositories

import "context"

// AdminRepository performs maintenance operations spanning all tables
type AdminRepository interface {
	// ResetAll empties every planner table in one transaction.
	ResetAll(ctx context.Context) error

	// Ping checks store connectivity.
	Ping(ctx context.Context) error
}
