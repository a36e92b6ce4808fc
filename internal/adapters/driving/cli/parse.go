package cli

import (
	"github.com/spf13/cobra"
)

var parseOpts runOptions

var parseCmd = &cobra.Command{
	Use:   "parse <file>",
	Short: "Extract headnotes from a document",
	Long: `Reads a headnote digest, extracts every numbered headnote and writes
the records and run metadata as JSON.

Supported formats are DOCX, Markdown and plain text. Flags override the
values in the configuration file for this run only.`,
	Example: `  headnotes parse headnotes.docx
  headnotes parse headnotes.docx --out records.json --no-db
  headnotes parse headnotes.docx --scope raw_text --workers 8`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cmd.SilenceUsage = true
		return runParse(cmd.Context(), cmd, args[0], &parseOpts)
	},
}

func init() {
	parseOpts.register(parseCmd)
	rootCmd.AddCommand(parseCmd)
}
