package cli

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/mOrsExtension/LUBA-Headnotes/internal/core/domain"
)

func TestPrintSummary(t *testing.T) {
	buf := new(bytes.Buffer)
	stats := domain.Stats{
		Total:        3,
		Topics:       3,
		UniqueTopics: 2,
		Years:        3,
		MinYear:      1999,
		MaxYear:      2021,
		ORSCites:     4,
		OARCites:     1,
		CaseCites:    2,
	}

	printSummary(buf, PlainStyles(), stats)

	want := "\nSummary:\n" +
		"                Years: 1999 - 2021\n" +
		"      Total headnotes: 3\n" +
		"     Unique headnotes: 2\n" +
		"  ORS citations found: 4\n" +
		"  OAR citations found: 1\n" +
		" Court case citations: 2\n"
	assert.Equal(t, want, buf.String())
}

func TestPrintSummary_NoYears(t *testing.T) {
	buf := new(bytes.Buffer)

	printSummary(buf, PlainStyles(), domain.Stats{Total: 1, Topics: 1, UniqueTopics: 1})

	assert.NotContains(t, buf.String(), "Years")
	assert.Contains(t, buf.String(), "Total headnotes: 1")
}

func TestPrintSummary_YearZero(t *testing.T) {
	buf := new(bytes.Buffer)

	printSummary(buf, PlainStyles(), domain.Stats{Total: 1, Years: 1})

	assert.Contains(t, buf.String(), "                Years: 0 - 0\n")
}

func TestPrintSummary_ErrorsAndFailures(t *testing.T) {
	buf := new(bytes.Buffer)

	printSummary(buf, PlainStyles(), domain.Stats{Total: 2, PossibleErrors: 3, Failures: 1})

	assert.Contains(t, buf.String(), "      Possible errors: 3\n")
	assert.Contains(t, buf.String(), "     Parsing failures: 1\n")
}

func TestPrintSummary_ZeroHeadnotes(t *testing.T) {
	buf := new(bytes.Buffer)

	printSummary(buf, PlainStyles(), domain.Stats{Failures: 2})

	assert.Equal(t, zeroHeadnotesMessage+"\n", buf.String())
}

func TestStylesFor_NonTerminalIsPlain(t *testing.T) {
	st := stylesFor(new(bytes.Buffer))

	assert.Equal(t, "1.2", st.Title.Render("1.2"))
	assert.Equal(t, "! warning", st.Warning.Render("! warning"))
}

func TestNewStyles_NilTheme(t *testing.T) {
	assert.NotNil(t, NewStyles(nil))
}

func TestDefaultTheme_ColorsAreDistinct(t *testing.T) {
	theme := DefaultTheme()

	seen := make(map[string]bool)
	for _, c := range []string{string(theme.Primary), string(theme.Muted), string(theme.Success), string(theme.Warning), string(theme.Error)} {
		assert.False(t, seen[c], "duplicate colour: %s", c)
		seen[c] = true
	}
}
