package driving

import "github.com/mOrsExtension/LUBA-Headnotes/internal/core/domain"

// SettingsService manages extraction settings.
type SettingsService interface {
	// Get returns the stored settings with defaults filled in.
	Get() (*domain.Settings, error)

	// Save validates and persists settings.
	Save(settings *domain.Settings) error

	// GetDefaults returns default settings.
	GetDefaults() domain.Settings
}
