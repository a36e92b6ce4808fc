package citations

import (
	"regexp"
	"sort"

	"github.com/mOrsExtension/LUBA-Headnotes/internal/core/ports/driven"
)

// Scanner names used in configuration.
const (
	NameORS  = "ors"
	NameOAR  = "oar"
	NameCase = "case"
)

// Patterns capture the citation in group 1. Each ends in \D, standing in
// for a lookahead: the citation must be followed by a non-digit, and that
// character is consumed. Every pattern starts with a digit, so consuming
// one non-digit never hides a following match.
const (
	// ORSPattern matches statute sections like "197.835" or "215A.010".
	ORSPattern = `(\d{1,3}[A-C]?\.\d{3,4})\D`

	// OARPattern matches rules like "660-010-0030".
	OARPattern = `(\d{3}-\d{2,4}-\d{2,4})\D`

	// CasePattern matches reporter citations like "50 Or LUBA 12",
	// "123 Or App 45" or "300 Or 1".
	CasePattern = `(\d{1,3}[\s\p{Z}]Or[\s\p{Z}](?:App|LUBA)?[\s\p{Z}]?\d{1,4})\D`
)

// Ensure Scanner implements the interface.
var _ driven.CitationScanner = (*Scanner)(nil)

// Scanner finds every match of one compiled citation pattern.
type Scanner struct {
	name    string
	pattern *regexp.Regexp
}

// New creates a scanner from a pattern whose first group is the citation.
func New(name, pattern string) (*Scanner, error) {
	re, err := regexp.Compile(pattern)
	if err != nil {
		return nil, err
	}
	return &Scanner{name: name, pattern: re}, nil
}

// NewORS creates the ORS statute scanner.
func NewORS() *Scanner {
	return &Scanner{name: NameORS, pattern: regexp.MustCompile(ORSPattern)}
}

// NewOAR creates the OAR rule scanner.
func NewOAR() *Scanner {
	return &Scanner{name: NameOAR, pattern: regexp.MustCompile(OARPattern)}
}

// NewCase creates the reported case scanner.
func NewCase() *Scanner {
	return &Scanner{name: NameCase, pattern: regexp.MustCompile(CasePattern)}
}

// Name returns the scanner name.
func (s *Scanner) Name() string {
	return s.name
}

// Pattern returns the source of the compiled pattern.
func (s *Scanner) Pattern() string {
	return s.pattern.String()
}

// Scan returns the distinct citations in text, sorted.
func (s *Scanner) Scan(text string) []string {
	seen := make(map[string]struct{})
	for _, m := range s.pattern.FindAllStringSubmatch(text, -1) {
		cite := m[0]
		if len(m) > 1 {
			cite = m[1]
		}
		seen[cite] = struct{}{}
	}

	cites := make([]string, 0, len(seen))
	for cite := range seen {
		cites = append(cites, cite)
	}
	sort.Strings(cites)
	return cites
}
