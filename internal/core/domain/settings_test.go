package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCitationScope_IsValid(t *testing.T) {
	tests := []struct {
		name     string
		scope    CitationScope
		expected bool
	}{
		{name: "summary is valid", scope: ScopeSummary, expected: true},
		{name: "raw_text is valid", scope: ScopeRawText, expected: true},
		{name: "empty string is invalid", scope: CitationScope(""), expected: false},
		{name: "unknown scope is invalid", scope: CitationScope("everything"), expected: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.scope.IsValid())
		})
	}
}

func TestDefaultSettings(t *testing.T) {
	s := DefaultSettings()

	assert.Equal(t, DefaultWorkers, s.Workers)
	assert.Equal(t, ScopeSummary, s.CitationScope)
	assert.Equal(t, []string{"ors", "oar", "case"}, s.Scanners)
	assert.Equal(t, DefaultMetaFile, s.MetaFile)
	require.NoError(t, s.Validate())
}

func TestDefaultSettings_ScannersAreCopied(t *testing.T) {
	s := DefaultSettings()
	s.Scanners[0] = "changed"

	assert.Equal(t, "ors", DefaultScanners[0])
}

func TestSettings_Validate(t *testing.T) {
	tests := []struct {
		name    string
		modify  func(*Settings)
		wantErr bool
	}{
		{name: "defaults", modify: func(*Settings) {}, wantErr: false},
		{name: "single worker", modify: func(s *Settings) { s.Workers = 1 }, wantErr: false},
		{name: "zero workers", modify: func(s *Settings) { s.Workers = 0 }, wantErr: true},
		{name: "raw text scope", modify: func(s *Settings) { s.CitationScope = ScopeRawText }, wantErr: false},
		{name: "bad scope", modify: func(s *Settings) { s.CitationScope = "nope" }, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := DefaultSettings()
			tt.modify(&s)
			err := s.Validate()
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrInvalidInput)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
