package citations

import (
	"fmt"

	"github.com/mOrsExtension/LUBA-Headnotes/internal/core/ports/driven"
)

// RegisterDefaults registers all built-in scanners with the registry.
// Call this during application initialisation to enable standard scanners.
func RegisterDefaults(r *Registry) {
	r.Register(NameORS, patternBuilder(NameORS, ORSPattern))
	r.Register(NameOAR, patternBuilder(NameOAR, OARPattern))
	r.Register(NameCase, patternBuilder(NameCase, CasePattern))
}

// Defaults returns the ORS, OAR and case scanners with their standard patterns.
func Defaults() []driven.CitationScanner {
	return []driven.CitationScanner{NewORS(), NewOAR(), NewCase()}
}

// patternBuilder returns a builder for a pattern scanner.
// Supported config keys:
//   - pattern (string): replacement pattern; group 1 must capture the citation
func patternBuilder(name, defaultPattern string) BuilderFunc {
	return func(cfg map[string]any) (driven.CitationScanner, error) {
		pattern := defaultPattern
		if p := getStringFromConfig(cfg, "pattern"); p != "" {
			pattern = p
		}

		s, err := New(name, pattern)
		if err != nil {
			return nil, fmt.Errorf("scanner %s: invalid pattern: %w", name, err)
		}
		return s, nil
	}
}

// getStringFromConfig safely extracts a string from generic config map.
func getStringFromConfig(cfg map[string]any, key string) string {
	if cfg == nil {
		return ""
	}
	s, _ := cfg[key].(string)
	return s
}
