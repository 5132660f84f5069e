// Package masking scrubs secrets from failure log excerpts and replay
// bundles before they are persisted or served.
package masking

import (
	"log/slog"
	"strings"
)

// placeholderMark is the common prefix of every masking placeholder. A
// match that already carries it was produced by an earlier rule and is
// left alone, so one rule never rewrites another's output.
const placeholderMark = "__MASKED_"

// Service applies secret masking to build output. Created once at
// application startup (singleton). Thread-safe and stateless aside from
// compiled patterns.
type Service struct {
	patterns []*CompiledPattern
	maskers  []Masker
}

// NewService creates a masking service with compiled patterns and
// registered code-based maskers.
func NewService() *Service {
	s := &Service{
		patterns: compilePatterns(),
		maskers:  []Masker{&DotenvMasker{}},
	}

	slog.Info("Masking service initialized",
		"compiled_patterns", len(s.patterns),
		"code_maskers", len(s.maskers))

	return s
}

// MaskString scrubs secrets from content. Code-based maskers run first
// (structural awareness), then the regex patterns sweep the rest.
func (s *Service) MaskString(content string) string {
	if content == "" {
		return content
	}

	masked := content
	for _, m := range s.maskers {
		if m.AppliesTo(masked) {
			masked = m.Mask(masked)
		}
	}
	for _, p := range s.patterns {
		pattern := p
		masked = pattern.Regex.ReplaceAllStringFunc(masked, func(m string) string {
			if strings.Contains(m, placeholderMark) {
				return m
			}
			return pattern.Regex.ReplaceAllString(m, pattern.Replacement)
		})
	}
	return masked
}

// MaskBytes scrubs secrets from a byte payload
func (s *Service) MaskBytes(content []byte) []byte {
	if len(content) == 0 {
		return content
	}
	return []byte(s.MaskString(string(content)))
}
