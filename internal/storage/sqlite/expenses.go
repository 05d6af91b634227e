package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/mmynk/kasrt/internal/models"
)

// CreateExpense persists a new expense, assigning an ID if not set.
func (s *SQLiteStore) CreateExpense(ctx context.Context, e *models.Expense) error {
	if e.ID == "" {
		e.ID = uuid.New().String()
	}

	var note interface{}
	if e.Note != "" {
		note = e.Note
	}

	_, err := s.db.ExecContext(ctx,
		`INSERT INTO expenses (id, date, amount, note, created_at) VALUES (?, ?, ?, ?, ?)`,
		e.ID, e.Date, e.Amount.Cents(), note, time.Now().Unix(),
	)
	if err != nil {
		return fmt.Errorf("failed to insert expense: %w", err)
	}

	return nil
}

// GetExpense retrieves an expense by ID.
func (s *SQLiteStore) GetExpense(ctx context.Context, id string) (*models.Expense, error) {
	e := &models.Expense{}
	var note sql.NullString
	var cents int64

	err := s.db.QueryRowContext(ctx,
		`SELECT id, date, amount, note FROM expenses WHERE id = ?`, id,
	).Scan(&e.ID, &e.Date, &cents, &note)

	if err == sql.ErrNoRows {
		return nil, fmt.Errorf("expense %s: %w", id, models.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get expense: %w", err)
	}

	e.Amount = models.Amount(cents)
	if note.Valid {
		e.Note = note.String
	}

	return e, nil
}

// UpdateExpense replaces the stored row for the expense's ID.
func (s *SQLiteStore) UpdateExpense(ctx context.Context, e *models.Expense) error {
	var note interface{}
	if e.Note != "" {
		note = e.Note
	}

	res, err := s.db.ExecContext(ctx,
		`UPDATE expenses SET date = ?, amount = ?, note = ? WHERE id = ?`,
		e.Date, e.Amount.Cents(), note, e.ID,
	)
	if err != nil {
		return fmt.Errorf("failed to update expense: %w", err)
	}

	return requireRow(res, "expense", e.ID)
}

// DeleteExpense removes an expense.
func (s *SQLiteStore) DeleteExpense(ctx context.Context, id string) error {
	res, err := s.db.ExecContext(ctx, `DELETE FROM expenses WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("failed to delete expense: %w", err)
	}

	return requireRow(res, "expense", id)
}

// ListExpenses retrieves all expenses, most recent date first. Same-day
// entries are ordered by insertion time, newest first.
func (s *SQLiteStore) ListExpenses(ctx context.Context) ([]*models.Expense, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, date, amount, note FROM expenses ORDER BY date DESC, created_at DESC`,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list expenses: %w", err)
	}
	defer rows.Close()

	var expenses []*models.Expense
	for rows.Next() {
		e := &models.Expense{}
		var note sql.NullString
		var cents int64
		if err := rows.Scan(&e.ID, &e.Date, &cents, &note); err != nil {
			return nil, fmt.Errorf("failed to scan expense: %w", err)
		}
		e.Amount = models.Amount(cents)
		if note.Valid {
			e.Note = note.String
		}
		expenses = append(expenses, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating expenses: %w", err)
	}

	return expenses, nil
}
