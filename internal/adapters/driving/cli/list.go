package cli

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/mOrsExtension/LUBA-Headnotes/internal/adapters/driven/storage/sqlite"
	"github.com/mOrsExtension/LUBA-Headnotes/internal/core/domain"
	"github.com/mOrsExtension/LUBA-Headnotes/internal/core/ports/driving"
	"github.com/mOrsExtension/LUBA-Headnotes/internal/core/services"
)

var (
	listFilter domain.RecordFilter
	listDBDir  string
	listJSON   bool
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List stored headnotes",
	Long: `Lists headnotes stored by previous parse runs. By default only the
latest run is listed; use --run to select another.

Topic and case name filters match case-insensitive substrings.`,
	Args: cobra.NoArgs,
	RunE: runList,
}

var (
	showRunID string
	showDBDir string
)

var showCmd = &cobra.Command{
	Use:   "show <headnote>",
	Short: "Show one stored headnote as JSON",
	Args:  cobra.ExactArgs(1),
	RunE:  runShow,
}

func init() {
	f := listCmd.Flags()
	f.StringVar(&listFilter.Topic, "topic", "", "filter by topic")
	f.IntVar(&listFilter.Year, "year", 0, "filter by decision year")
	f.StringVar(&listFilter.CaseName, "case", "", "filter by case name")
	f.BoolVar(&listFilter.WarningsOnly, "warnings", false, "only headnotes with possible errors")
	f.IntVarP(&listFilter.Limit, "limit", "n", 0, "maximum number of headnotes (0 = all)")
	f.StringVar(&listFilter.RunID, "run", "", "run ID (default latest run)")
	f.StringVar(&listDBDir, "db", "", "directory holding the headnotes database (default from config)")
	f.BoolVar(&listJSON, "json", false, "output headnotes as JSON")
	rootCmd.AddCommand(listCmd)

	showCmd.Flags().StringVar(&showRunID, "run", "", "run ID (default latest run)")
	showCmd.Flags().StringVar(&showDBDir, "db", "", "directory holding the headnotes database (default from config)")
	rootCmd.AddCommand(showCmd)
}

// openQueryService opens the database for read commands. dbDir is used
// when the --db flag was given.
func openQueryService(cmd *cobra.Command, dbDir string) (driving.HeadnoteService, func() error, error) {
	settings, err := loadSettings()
	if err != nil {
		return nil, nil, err
	}
	dir := settings.DBDir
	if cmd.Flags().Changed("db") {
		dir = dbDir
	}
	db, err := sqlite.NewStore(dir)
	if err != nil {
		return nil, nil, fmt.Errorf("open database: %w", err)
	}
	return services.NewHeadnoteService(nil, nil, db.HeadnoteStore(), 1), db.Close, nil
}

func runList(cmd *cobra.Command, _ []string) error {
	cmd.SilenceUsage = true
	svc, closeFn, err := openQueryService(cmd, listDBDir)
	if err != nil {
		return err
	}
	defer closeFn() //nolint:errcheck // read-only

	records, err := svc.List(context.Background(), listFilter)
	if err != nil {
		return fmt.Errorf("list failed: %w", err)
	}

	if listJSON {
		return outputJSON(cmd, records)
	}
	return outputRecordTable(cmd, records)
}

func runShow(cmd *cobra.Command, args []string) error {
	cmd.SilenceUsage = true
	svc, closeFn, err := openQueryService(cmd, showDBDir)
	if err != nil {
		return err
	}
	defer closeFn() //nolint:errcheck // read-only

	rec, err := svc.Get(context.Background(), showRunID, args[0])
	if err != nil {
		return fmt.Errorf("headnote %s: %w", args[0], err)
	}
	return outputJSON(cmd, rec)
}

func outputJSON(cmd *cobra.Command, v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal headnotes: %w", err)
	}
	cmd.Println(string(data))
	return nil
}

func outputRecordTable(cmd *cobra.Command, records []domain.HeadnoteRecord) error {
	if len(records) == 0 {
		cmd.Println("No headnotes found.")
		return nil
	}

	st := stylesFor(cmd.OutOrStdout())
	for i := range records {
		rec := &records[i]
		year := ""
		if rec.Year != nil {
			year = strconv.Itoa(*rec.Year)
		}
		// Format: N  Topic / Case, Citation (Year)
		cmd.Printf("%s %s\n", st.Title.Render(fmt.Sprintf("%-10s", rec.Headnote)), rec.Topic)
		if rec.CaseName != "" {
			cmd.Printf("           %s\n", st.Label.Render(fmt.Sprintf("%s, %s (%s)", rec.CaseName, rec.Citation, year)))
		}
		for _, w := range rec.ErrorList {
			cmd.Printf("           %s\n", st.Warning.Render("! "+w))
		}
	}
	cmd.Println()
	cmd.Printf("%d headnote(s)\n", len(records))
	return nil
}
