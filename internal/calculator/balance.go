// Package calculator derives views of the ledger from source records.
// Nothing here mutates state or caches results; callers pass a full
// snapshot and get a value back.
package calculator

import (
	"github.com/mmynk/kasrt/internal/models"
)

// Summary is the dashboard projection of the ledger.
type Summary struct {
	InitialCash   models.Amount `json:"initial_cash"`
	TotalPayments models.Amount `json:"total_payments"`
	TotalExpenses models.Amount `json:"total_expenses"`
	CurrentCash   models.Amount `json:"current_cash"`

	// LowBalance flags that current cash is below the configured warning
	// threshold. Display only, never enforced.
	LowBalance bool `json:"low_balance"`
}

// Balance computes the current cash position:
//
//	initial_cash + sum(payments) - sum(expenses)
//
// The sums are commutative, so the result is independent of record order.
func Balance(settings *models.Settings, payments []*models.Payment, expenses []*models.Expense) models.Amount {
	balance := settings.InitialCash
	for _, p := range payments {
		balance += p.Amount
	}
	for _, e := range expenses {
		balance -= e.Amount
	}
	return balance
}

// Summarize builds the full summary projection from a ledger snapshot.
func Summarize(settings *models.Settings, payments []*models.Payment, expenses []*models.Expense) Summary {
	var totalPayments, totalExpenses models.Amount
	for _, p := range payments {
		totalPayments += p.Amount
	}
	for _, e := range expenses {
		totalExpenses += e.Amount
	}

	current := settings.InitialCash + totalPayments - totalExpenses
	return Summary{
		InitialCash:   settings.InitialCash,
		TotalPayments: totalPayments,
		TotalExpenses: totalExpenses,
		CurrentCash:   current,
		LowBalance:    current < settings.WarningThreshold,
	}
}

// Recent returns the first n entries of a most-recent-first sequence.
// It never allocates; callers must not mutate the returned slice.
func Recent[T any](entries []T, n int) []T {
	if n < 0 {
		n = 0
	}
	if n > len(entries) {
		n = len(entries)
	}
	return entries[:n]
}
