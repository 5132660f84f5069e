package masking

import (
	"regexp"
	"strings"
)

// Masker is a code-based masking rule for content that needs structural
// awareness beyond a single regex sweep.
type Masker interface {
	// Name returns the unique identifier for this masker
	Name() string
	// AppliesTo performs a lightweight check on whether this masker should process the data
	AppliesTo(data string) bool
	// Mask applies the masking logic, returning original data on parse errors
	Mask(data string) string
}

// MaskedEnvValue is the replacement string for masked dotenv values.
const MaskedEnvValue = "__MASKED_ENV_VALUE__"

var (
	envLinePattern      = regexp.MustCompile(`(?m)^(export\s+)?([A-Z][A-Z0-9_]*)=(.*)$`)
	sensitiveEnvPattern = regexp.MustCompile(`(?i)(secret|token|password|passwd|credential|api_?key|private)`)
)

// DotenvMasker masks values of sensitive-looking variables in dotenv-style
// output (env dumps, .env files echoed into build logs). Non-sensitive
// variables pass through untouched.
type DotenvMasker struct{}

// Name returns the unique identifier for this masker.
func (m *DotenvMasker) Name() string { return "dotenv" }

// AppliesTo performs a lightweight check on whether this masker should process the data.
func (m *DotenvMasker) AppliesTo(data string) bool {
	if !strings.Contains(data, "=") {
		return false
	}
	return envLinePattern.MatchString(data)
}

// Mask replaces the value of every sensitive-looking assignment.
func (m *DotenvMasker) Mask(data string) string {
	return envLinePattern.ReplaceAllStringFunc(data, func(line string) string {
		sub := envLinePattern.FindStringSubmatch(line)
		if sub == nil {
			return line
		}
		export, name, value := sub[1], sub[2], sub[3]
		if value == "" || !sensitiveEnvPattern.MatchString(name) {
			return line
		}
		return export + name + "=" + MaskedEnvValue
	})
}
