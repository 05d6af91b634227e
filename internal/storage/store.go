// Package storage provides abstractions for persistent data storage.
package storage

import (
	"context"

	"github.com/mmynk/kasrt/internal/models"
)

// Store defines the interface for ledger storage operations.
// This abstraction allows swapping storage backends (SQLite, PostgreSQL, etc.)
// without changing the service layer.
//
// Get/Update/Delete return models.ErrNotFound (possibly wrapped) when the
// targeted record does not exist.
type Store interface {
	// Residents. List is ordered by name ascending.
	CreateResident(ctx context.Context, r *models.Resident) error
	GetResident(ctx context.Context, id string) (*models.Resident, error)
	UpdateResident(ctx context.Context, r *models.Resident) error
	DeleteResident(ctx context.Context, id string) error
	ListResidents(ctx context.Context) ([]*models.Resident, error)

	// Payments. List is ordered by date descending, most recent first.
	CreatePayment(ctx context.Context, p *models.Payment) error
	GetPayment(ctx context.Context, id string) (*models.Payment, error)
	UpdatePayment(ctx context.Context, p *models.Payment) error
	DeletePayment(ctx context.Context, id string) error
	ListPayments(ctx context.Context) ([]*models.Payment, error)

	// Expenses. List is ordered by date descending, most recent first.
	CreateExpense(ctx context.Context, e *models.Expense) error
	GetExpense(ctx context.Context, id string) (*models.Expense, error)
	UpdateExpense(ctx context.Context, e *models.Expense) error
	DeleteExpense(ctx context.Context, id string) error
	ListExpenses(ctx context.Context) ([]*models.Expense, error)

	// Settings. The singleton row always exists; GetSettings never reports
	// not-found and UpdateSettings replaces the whole row.
	GetSettings(ctx context.Context) (*models.Settings, error)
	UpdateSettings(ctx context.Context, s *models.Settings) error

	// Users are provisioned by the seed step and read at login.
	CreateUser(ctx context.Context, u *models.User) error
	GetUserByUsername(ctx context.Context, username string) (*models.User, error)

	// Close releases any resources held by the store.
	Close() error
}
