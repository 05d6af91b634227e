package sqlite

import (
	"context"
	"fmt"

	"github.com/mmynk/kasrt/internal/models"
)

// GetSettings retrieves the singleton settings row. The row is seeded at
// migration time, so this always succeeds on a healthy database.
func (s *SQLiteStore) GetSettings(ctx context.Context) (*models.Settings, error) {
	var initial, threshold int64
	err := s.db.QueryRowContext(ctx,
		`SELECT initial_cash, warning_threshold FROM settings WHERE id = 1`,
	).Scan(&initial, &threshold)
	if err != nil {
		return nil, fmt.Errorf("failed to get settings: %w", err)
	}

	return &models.Settings{
		InitialCash:      models.Amount(initial),
		WarningThreshold: models.Amount(threshold),
	}, nil
}

// UpdateSettings replaces the singleton settings row. Last write wins; the
// row is never inserted or deleted here.
func (s *SQLiteStore) UpdateSettings(ctx context.Context, set *models.Settings) error {
	_, err := s.db.ExecContext(ctx,
		`UPDATE settings SET initial_cash = ?, warning_threshold = ? WHERE id = 1`,
		set.InitialCash.Cents(), set.WarningThreshold.Cents(),
	)
	if err != nil {
		return fmt.Errorf("failed to update settings: %w", err)
	}

	return nil
}
