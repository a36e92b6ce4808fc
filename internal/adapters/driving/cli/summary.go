package cli

import (
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"

	"github.com/mOrsExtension/LUBA-Headnotes/internal/core/domain"
)

// zeroHeadnotesMessage is printed when a document yields no records.
const zeroHeadnotesMessage = "Zero headnotes successfully parsed. Check your DOCX file format."

// printSummary writes the end-of-run statistics with right-aligned labels.
func printSummary(w io.Writer, st *Styles, stats domain.Stats) {
	if stats.Total == 0 {
		fmt.Fprintln(w, st.Error.Render(zeroHeadnotesMessage))
		return
	}

	row := func(label string, value any, style lipgloss.Style) {
		fmt.Fprintf(w, "%s %s\n", st.Label.Render(fmt.Sprintf("%22s", label+":")), style.Render(fmt.Sprint(value)))
	}

	fmt.Fprintln(w)
	fmt.Fprintln(w, st.Title.Render("Summary:"))
	if stats.HasYears() {
		row("Years", fmt.Sprintf("%d - %d", stats.MinYear, stats.MaxYear), st.Value)
	}
	row("Total headnotes", stats.Topics, st.Value)
	row("Unique headnotes", stats.UniqueTopics, st.Value)
	row("ORS citations found", stats.ORSCites, st.Value)
	row("OAR citations found", stats.OARCites, st.Value)
	row("Court case citations", stats.CaseCites, st.Value)
	if stats.PossibleErrors > 0 {
		row("Possible errors", stats.PossibleErrors, st.Warning)
	}
	if stats.Failures > 0 {
		row("Parsing failures", stats.Failures, st.Error)
	}
}
