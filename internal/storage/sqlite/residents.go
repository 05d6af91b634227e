package sqlite

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/google/uuid"

	"github.com/mmynk/kasrt/internal/models"
)

// CreateResident persists a new resident, assigning an ID if not set.
func (s *SQLiteStore) CreateResident(ctx context.Context, r *models.Resident) error {
	if r.ID == "" {
		r.ID = uuid.New().String()
	}

	_, err := s.db.ExecContext(ctx,
		`INSERT INTO residents (id, name, address, phone) VALUES (?, ?, ?, ?)`,
		r.ID, r.Name, r.Address, r.Phone,
	)
	if err != nil {
		return fmt.Errorf("failed to insert resident: %w", err)
	}

	return nil
}

// GetResident retrieves a resident by ID.
func (s *SQLiteStore) GetResident(ctx context.Context, id string) (*models.Resident, error) {
	r := &models.Resident{}
	err := s.db.QueryRowContext(ctx,
		`SELECT id, name, address, phone FROM residents WHERE id = ?`, id,
	).Scan(&r.ID, &r.Name, &r.Address, &r.Phone)

	if err == sql.ErrNoRows {
		return nil, fmt.Errorf("resident %s: %w", id, models.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get resident: %w", err)
	}

	return r, nil
}

// UpdateResident replaces the stored row for the resident's ID.
func (s *SQLiteStore) UpdateResident(ctx context.Context, r *models.Resident) error {
	res, err := s.db.ExecContext(ctx,
		`UPDATE residents SET name = ?, address = ?, phone = ? WHERE id = ?`,
		r.Name, r.Address, r.Phone, r.ID,
	)
	if err != nil {
		return fmt.Errorf("failed to update resident: %w", err)
	}

	return requireRow(res, "resident", r.ID)
}

// DeleteResident removes a resident. Payments referencing it are left in
// place (no cascade).
func (s *SQLiteStore) DeleteResident(ctx context.Context, id string) error {
	res, err := s.db.ExecContext(ctx, `DELETE FROM residents WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("failed to delete resident: %w", err)
	}

	return requireRow(res, "resident", id)
}

// ListResidents retrieves all residents ordered by name ascending.
func (s *SQLiteStore) ListResidents(ctx context.Context) ([]*models.Resident, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, name, address, phone FROM residents ORDER BY name ASC`,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list residents: %w", err)
	}
	defer rows.Close()

	var residents []*models.Resident
	for rows.Next() {
		r := &models.Resident{}
		if err := rows.Scan(&r.ID, &r.Name, &r.Address, &r.Phone); err != nil {
			return nil, fmt.Errorf("failed to scan resident: %w", err)
		}
		residents = append(residents, r)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating residents: %w", err)
	}

	return residents, nil
}

// requireRow converts a zero-row write into models.ErrNotFound.
func requireRow(res sql.Result, kind, id string) error {
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to read rows affected: %w", err)
	}
	if n == 0 {
		return fmt.Errorf("%s %s: %w", kind, id, models.ErrNotFound)
	}
	return nil
}
