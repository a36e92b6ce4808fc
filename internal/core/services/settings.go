package services

import (
	"fmt"

	"github.com/mOrsExtension/LUBA-Headnotes/internal/core/domain"
	"github.com/mOrsExtension/LUBA-Headnotes/internal/core/ports/driven"
	"github.com/mOrsExtension/LUBA-Headnotes/internal/core/ports/driving"
)

// Ensure SettingsService implements the interface.
var _ driving.SettingsService = (*SettingsService)(nil)

// Config keys for settings storage.
const (
	KeyWorkers       = "extract.workers"
	KeyCitationScope = "extract.citation_scope"
	KeyScanners      = "extract.scanners"
	KeyOutputDir     = "output.dir"
	KeyMetaFile      = "output.meta_file"
	KeyDBDir         = "storage.db_dir"
)

// SettingsService reads and writes extraction settings through a ConfigStore.
type SettingsService struct {
	configStore driven.ConfigStore
}

// NewSettingsService creates a new settings service.
func NewSettingsService(configStore driven.ConfigStore) *SettingsService {
	return &SettingsService{configStore: configStore}
}

// Get returns the stored settings. Missing or unusable values fall back
// to the defaults.
func (s *SettingsService) Get() (*domain.Settings, error) {
	defaults := domain.DefaultSettings()

	settings := &domain.Settings{
		Workers:       s.getInt(KeyWorkers, defaults.Workers),
		CitationScope: s.getScope(defaults.CitationScope),
		Scanners:      s.getStringSlice(KeyScanners, defaults.Scanners),
		OutputDir:     s.getString(KeyOutputDir, defaults.OutputDir),
		MetaFile:      s.getString(KeyMetaFile, defaults.MetaFile),
		DBDir:         s.configStore.GetString(KeyDBDir), // empty selects the default location
	}
	return settings, nil
}

// Save validates and persists settings.
func (s *SettingsService) Save(settings *domain.Settings) error {
	if err := settings.Validate(); err != nil {
		return err
	}

	values := []struct {
		key   string
		value any
	}{
		{KeyWorkers, settings.Workers},
		{KeyCitationScope, settings.CitationScope.String()},
		{KeyScanners, settings.Scanners},
		{KeyOutputDir, settings.OutputDir},
		{KeyMetaFile, settings.MetaFile},
		{KeyDBDir, settings.DBDir},
	}
	for _, v := range values {
		if err := s.configStore.Set(v.key, v.value); err != nil {
			return fmt.Errorf("save %s: %w", v.key, err)
		}
	}
	return nil
}

// GetDefaults returns default settings.
func (s *SettingsService) GetDefaults() domain.Settings {
	return domain.DefaultSettings()
}

func (s *SettingsService) getString(key, defaultVal string) string {
	val := s.configStore.GetString(key)
	if val == "" {
		return defaultVal
	}
	return val
}

func (s *SettingsService) getInt(key string, defaultVal int) int {
	val := s.configStore.GetInt(key)
	if val < 1 {
		return defaultVal
	}
	return val
}

func (s *SettingsService) getStringSlice(key string, defaultVal []string) []string {
	if _, exists := s.configStore.Get(key); !exists {
		return defaultVal
	}
	return s.configStore.GetStringSlice(key)
}

func (s *SettingsService) getScope(defaultVal domain.CitationScope) domain.CitationScope {
	scope := domain.CitationScope(s.configStore.GetString(KeyCitationScope))
	if !scope.IsValid() {
		return defaultVal
	}
	return scope
}
