package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/mmynk/kasrt/internal/models"
)

// CreatePayment persists a new payment, assigning an ID if not set.
func (s *SQLiteStore) CreatePayment(ctx context.Context, p *models.Payment) error {
	if p.ID == "" {
		p.ID = uuid.New().String()
	}

	var note interface{}
	if p.Note != "" {
		note = p.Note
	}

	_, err := s.db.ExecContext(ctx,
		`INSERT INTO payments (id, resident_id, date, type, amount, note, created_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?)`,
		p.ID, p.ResidentID, p.Date, string(p.Type), p.Amount.Cents(), note, time.Now().Unix(),
	)
	if err != nil {
		return fmt.Errorf("failed to insert payment: %w", err)
	}

	return nil
}

// GetPayment retrieves a payment by ID.
func (s *SQLiteStore) GetPayment(ctx context.Context, id string) (*models.Payment, error) {
	p := &models.Payment{}
	var note sql.NullString
	var cents int64
	var typ string

	err := s.db.QueryRowContext(ctx,
		`SELECT id, resident_id, date, type, amount, note FROM payments WHERE id = ?`, id,
	).Scan(&p.ID, &p.ResidentID, &p.Date, &typ, &cents, &note)

	if err == sql.ErrNoRows {
		return nil, fmt.Errorf("payment %s: %w", id, models.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get payment: %w", err)
	}

	p.Type = models.PaymentType(typ)
	p.Amount = models.Amount(cents)
	if note.Valid {
		p.Note = note.String
	}

	return p, nil
}

// UpdatePayment replaces the stored row for the payment's ID.
func (s *SQLiteStore) UpdatePayment(ctx context.Context, p *models.Payment) error {
	var note interface{}
	if p.Note != "" {
		note = p.Note
	}

	res, err := s.db.ExecContext(ctx,
		`UPDATE payments SET resident_id = ?, date = ?, type = ?, amount = ?, note = ? WHERE id = ?`,
		p.ResidentID, p.Date, string(p.Type), p.Amount.Cents(), note, p.ID,
	)
	if err != nil {
		return fmt.Errorf("failed to update payment: %w", err)
	}

	return requireRow(res, "payment", p.ID)
}

// DeletePayment removes a payment.
func (s *SQLiteStore) DeletePayment(ctx context.Context, id string) error {
	res, err := s.db.ExecContext(ctx, `DELETE FROM payments WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("failed to delete payment: %w", err)
	}

	return requireRow(res, "payment", id)
}

// ListPayments retrieves all payments, most recent date first. Same-day
// entries are ordered by insertion time, newest first.
func (s *SQLiteStore) ListPayments(ctx context.Context) ([]*models.Payment, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, resident_id, date, type, amount, note
		 FROM payments ORDER BY date DESC, created_at DESC`,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list payments: %w", err)
	}
	defer rows.Close()

	var payments []*models.Payment
	for rows.Next() {
		p := &models.Payment{}
		var note sql.NullString
		var cents int64
		var typ string
		if err := rows.Scan(&p.ID, &p.ResidentID, &p.Date, &typ, &cents, &note); err != nil {
			return nil, fmt.Errorf("failed to scan payment: %w", err)
		}
		p.Type = models.PaymentType(typ)
		p.Amount = models.Amount(cents)
		if note.Valid {
			p.Note = note.String
		}
		payments = append(payments, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating payments: %w", err)
	}

	return payments, nil
}
