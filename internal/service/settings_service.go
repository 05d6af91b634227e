package service

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/mmynk/kasrt/internal/models"
	"github.com/mmynk/kasrt/internal/storage"
)

// SettingsService reads and writes the singleton ledger settings.
type SettingsService struct {
	store storage.Store
}

// NewSettingsService creates a new SettingsService with the given storage backend.
func NewSettingsService(store storage.Store) *SettingsService {
	return &SettingsService{store: store}
}

// Get returns the settings row. It always succeeds on a healthy store.
func (s *SettingsService) Get(ctx context.Context) (*models.Settings, error) {
	return s.store.GetSettings(ctx)
}

// Update replaces the settings row. Fields absent from the request are
// written as zero; negative or non-numeric values never get this far
// because Amount parsing rejects them.
func (s *SettingsService) Update(ctx context.Context, in models.SettingsUpdate) error {
	resolved := in.Resolve()
	if err := s.store.UpdateSettings(ctx, &resolved); err != nil {
		return fmt.Errorf("update settings: %w", err)
	}

	slog.Info("settings updated",
		"initial_cash", resolved.InitialCash,
		"warning_threshold", resolved.WarningThreshold,
	)
	return nil
}
