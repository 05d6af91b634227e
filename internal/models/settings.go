package models

// Settings is the singleton ledger configuration. Exactly one row exists at
// all times; it is seeded when the store opens and only ever updated.
type Settings struct {
	// InitialCash is the opening balance the ledger starts from.
	InitialCash Amount `json:"initial_cash"`

	// WarningThreshold is a balance floor used for display alerting only.
	// It is never enforced as a hard limit on operations.
	WarningThreshold Amount `json:"warning_threshold"`
}

// SettingsUpdate carries a settings write. Absent fields are written as
// zero, matching the established contract of the settings endpoint.
type SettingsUpdate struct {
	InitialCash      *Amount `json:"initial_cash"`
	WarningThreshold *Amount `json:"warning_threshold"`
}

// Resolve converts the partial update into a full settings row.
func (u SettingsUpdate) Resolve() Settings {
	var s Settings
	if u.InitialCash != nil {
		s.InitialCash = *u.InitialCash
	}
	if u.WarningThreshold != nil {
		s.WarningThreshold = *u.WarningThreshold
	}
	return s
}
