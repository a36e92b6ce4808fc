package cli

import (
	"bufio"
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/mOrsExtension/LUBA-Headnotes/internal/core/domain"
)

var settingsCmd = &cobra.Command{
	Use:   "settings",
	Short: "Manage application settings",
	Long: `View and configure extraction and output settings.

Settings are stored in config.toml inside the configuration directory
(~/.headnotes unless --config is given). Flags on parse and watch
override them for a single run.`,
	RunE: runSettingsShow,
}

var settingsShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show current settings",
	RunE:  runSettingsShow,
}

var settingsSetCmd = &cobra.Command{
	Use:   "set <key> <value>",
	Short: "Change one setting",
	Long: `Change one setting and save it.

Available keys:
  workers    - concurrent extraction workers (at least 1)
  scope      - text scanned for cross references: summary or raw_text
  scanners   - comma-separated scanners: ors, oar, case (empty disables)
  output-dir - directory for JSON output
  meta-file  - metadata file name (empty disables)
  db-dir     - directory holding the headnotes database`,
	Args: cobra.ExactArgs(2),
	RunE: runSettingsSet,
}

var settingsWizardCmd = &cobra.Command{
	Use:   "wizard",
	Short: "Interactive setup wizard",
	Long:  `Run an interactive wizard to configure the main settings step by step.`,
	RunE:  runSettingsWizard,
}

var settingsResetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Restore default settings",
	RunE:  runSettingsReset,
}

func init() {
	settingsCmd.AddCommand(settingsShowCmd)
	settingsCmd.AddCommand(settingsSetCmd)
	settingsCmd.AddCommand(settingsWizardCmd)
	settingsCmd.AddCommand(settingsResetCmd)
	rootCmd.AddCommand(settingsCmd)
}

func runSettingsShow(cmd *cobra.Command, _ []string) error {
	settings, err := loadSettings()
	if err != nil {
		return err
	}

	cmd.Println("Current Settings")
	cmd.Println("================")
	cmd.Println()

	cmd.Println("[Extract]")
	cmd.Printf("  Workers: %d\n", settings.Workers)
	cmd.Printf("  Citation scope: %s\n", settings.CitationScope)
	cmd.Printf("  Scanners: %s\n", orNone(strings.Join(settings.Scanners, ", ")))
	cmd.Println()

	cmd.Println("[Output]")
	cmd.Printf("  Directory: %s\n", settings.OutputDir)
	cmd.Printf("  Metadata file: %s\n", orNone(settings.MetaFile))
	cmd.Println()

	cmd.Println("[Storage]")
	dbDir := settings.DBDir
	if dbDir == "" {
		dbDir = "(default)"
	}
	cmd.Printf("  Database directory: %s\n", dbDir)

	return nil
}

func runSettingsSet(cmd *cobra.Command, args []string) error {
	settings, err := loadSettings()
	if err != nil {
		return err
	}
	if err := applySetting(settings, args[0], args[1]); err != nil {
		return err
	}
	if err := settingsService.Save(settings); err != nil {
		return fmt.Errorf("failed to save settings: %w", err)
	}
	cmd.Printf("%s set to: %s\n", args[0], args[1])
	return nil
}

func runSettingsReset(cmd *cobra.Command, _ []string) error {
	if _, err := loadSettings(); err != nil {
		return err
	}
	defaults := settingsService.GetDefaults()
	if err := settingsService.Save(&defaults); err != nil {
		return fmt.Errorf("failed to save settings: %w", err)
	}
	cmd.Println("Settings restored to defaults.")
	return nil
}

// applySetting updates one field of s from its command line form.
func applySetting(s *domain.Settings, key, value string) error {
	switch key {
	case "workers":
		n, err := strconv.Atoi(value)
		if err != nil {
			return fmt.Errorf("%w: workers must be a number, got %q", domain.ErrInvalidInput, value)
		}
		s.Workers = n
	case "scope":
		s.CitationScope = domain.CitationScope(value)
	case "scanners":
		s.Scanners = splitList(value)
	case "output-dir":
		s.OutputDir = value
	case "meta-file":
		s.MetaFile = value
	case "db-dir":
		s.DBDir = value
	default:
		return fmt.Errorf("%w: unknown setting %q", domain.ErrInvalidInput, key)
	}
	return s.Validate()
}

func runSettingsWizard(cmd *cobra.Command, _ []string) error {
	settings, err := loadSettings()
	if err != nil {
		return err
	}

	cmd.Println("Headnotes Settings Wizard")
	cmd.Println("=========================")
	cmd.Println()

	reader := bufio.NewReader(cmd.InOrStdin())

	// Step 1: Workers
	cmd.Println("Step 1: Extraction Workers")
	cmd.Println("--------------------------")
	cmd.Printf("Enter number of workers [%d]: ", settings.Workers)
	settings.Workers = parseChoice(readLine(reader), 64, settings.Workers)
	cmd.Println()

	// Step 2: Citation scope
	cmd.Println("Step 2: Citation Scope")
	cmd.Println("----------------------")
	scopes := []domain.CitationScope{domain.ScopeSummary, domain.ScopeRawText}
	current := 1
	for i, scope := range scopes {
		if scope == settings.CitationScope {
			current = i + 1
		}
		cmd.Printf("  %d. %s\n", i+1, scope)
	}
	cmd.Printf("\nEnter choice [%d]: ", current)
	settings.CitationScope = scopes[parseChoice(readLine(reader), len(scopes), current)-1]
	cmd.Println()

	// Step 3: Output directory
	cmd.Println("Step 3: Output Directory")
	cmd.Println("------------------------")
	cmd.Printf("Enter directory [%s]: ", settings.OutputDir)
	if dir := readLine(reader); dir != "" {
		settings.OutputDir = dir
	}
	cmd.Println()

	if err := settingsService.Save(settings); err != nil {
		return fmt.Errorf("failed to save settings: %w", err)
	}

	cmd.Println("Configuration Complete!")
	cmd.Println("=======================")
	cmd.Println("All settings are valid and saved.")
	return nil
}

// Helper functions.

//nolint:errcheck // CLI helper, error ignored for UX
func readLine(reader *bufio.Reader) string {
	input, _ := reader.ReadString('\n')
	return strings.TrimSpace(input)
}

func parseChoice(input string, maxVal, defaultVal int) int {
	if input == "" {
		return defaultVal
	}
	val, err := strconv.Atoi(input)
	if err != nil || val < 1 || val > maxVal {
		return defaultVal
	}
	return val
}

// splitList splits a comma-separated value, dropping blanks.
func splitList(value string) []string {
	out := []string{}
	for _, part := range strings.Split(value, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}

func orNone(s string) string {
	if s == "" {
		return "(none)"
	}
	return s
}
