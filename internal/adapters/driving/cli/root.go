// Package cli implements the headnotes command line.
package cli

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/mOrsExtension/LUBA-Headnotes/internal/adapters/driven/config/file"
	"github.com/mOrsExtension/LUBA-Headnotes/internal/core/domain"
	"github.com/mOrsExtension/LUBA-Headnotes/internal/core/ports/driven"
	"github.com/mOrsExtension/LUBA-Headnotes/internal/core/ports/driving"
	"github.com/mOrsExtension/LUBA-Headnotes/internal/core/services"
	"github.com/mOrsExtension/LUBA-Headnotes/internal/logger"
	"github.com/mOrsExtension/LUBA-Headnotes/internal/readers"
)

// version is set at build time via SetVersion.
var version = "dev"

// Global flags.
var (
	verbose   bool
	configDir string
)

// Services shared by the commands. They are created on first use unless
// injected beforehand.
var (
	settingsService driving.SettingsService
	readerRegistry  driven.ReaderRegistry
)

// Clock and run ID source, replaced in tests.
var (
	now      = time.Now
	newRunID = uuid.NewString
)

var rootCmd = &cobra.Command{
	Use:   "headnotes",
	Short: "Extract LUBA headnotes into structured JSON",
	Long: `headnotes reads a LUBA headnote digest (DOCX, Markdown or plain text),
splits it into numbered headnotes and extracts the topic, case name,
citation, year and cited ORS, OAR and court cases of each one.

Results are written as JSON and stored in a local SQLite database
that the list command can query.`,
	PersistentPreRun: func(_ *cobra.Command, _ []string) {
		logger.SetVerbose(verbose)
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "print debug output to stderr")
	rootCmd.PersistentFlags().StringVar(&configDir, "config", "", "configuration directory (default ~/.headnotes)")
}

// SetVersion sets the version reported by the version command.
func SetVersion(v string) {
	version = v
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

// loadSettings returns the configured settings, opening the config
// store on first use.
func loadSettings() (*domain.Settings, error) {
	if settingsService == nil {
		store, err := file.NewConfigStore(configDir)
		if err != nil {
			return nil, fmt.Errorf("load config: %w", err)
		}
		logger.Debug("config: %s", store.Path())
		settingsService = services.NewSettingsService(store)
	}
	settings, err := settingsService.Get()
	if err != nil {
		return nil, fmt.Errorf("failed to get settings: %w", err)
	}
	return settings, nil
}

// documentReaders returns the reader registry, creating the default one
// on first use.
func documentReaders() driven.ReaderRegistry {
	if readerRegistry == nil {
		readerRegistry = readers.Defaults()
	}
	return readerRegistry
}
