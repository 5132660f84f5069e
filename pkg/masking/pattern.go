package masking

import (
	"log/slog"
	"regexp"
)

// Pattern is a regex-based masking rule
type Pattern struct {
	Pattern     string
	Replacement string
	Description string
}

// CompiledPattern holds a pre-compiled regex pattern with its replacement.
type CompiledPattern struct {
	Name        string
	Regex       *regexp.Regexp
	Replacement string
	Description string
}

// builtinPatterns returns the regex rules applied to every log excerpt and
// replay bundle before persistence. Calibrated for build/eval tool output:
// env dumps, connection strings, cloud credentials, key material.
// Key-value rules capture the key and separator so masking preserves the
// surrounding structure and stays idempotent.
func builtinPatterns() map[string]Pattern {
	return map[string]Pattern{
		"api_key": {
			Pattern:     `(?i)([A-Za-z0-9_\-]*(?:api[_-]?key|apikey)["']?\s*[:=]\s*["']?)([A-Za-z0-9_\-]{20,})`,
			Replacement: `${1}__MASKED_API_KEY__`,
			Description: "API keys",
		},
		"password": {
			Pattern:     `(?i)([A-Za-z0-9_\-]*(?:password|pwd|passwd)["']?\s*[:=]\s*["']?)([^"'\s\n]{6,})`,
			Replacement: `${1}__MASKED_PASSWORD__`,
			Description: "Passwords",
		},
		"token": {
			Pattern:     `(?i)([A-Za-z0-9_\-]*(?:token|bearer|jwt)["']?\s*[:=]\s*["']?)([A-Za-z0-9_\-\.]{20,})`,
			Replacement: `${1}__MASKED_TOKEN__`,
			Description: "Access tokens",
		},
		"secret_key": {
			Pattern:     `(?i)([A-Za-z0-9_\-]*secret[_-]?key["']?\s*[:=]\s*["']?)([A-Za-z0-9_\-\.]{20,})`,
			Replacement: `${1}__MASKED_SECRET_KEY__`,
			Description: "Secret keys",
		},
		"private_key_block": {
			Pattern:     `(?s)-----BEGIN [A-Z ]+-----.*?-----END [A-Z ]+-----`,
			Replacement: `__MASKED_KEY_MATERIAL__`,
			Description: "PEM blocks (keys, certificates)",
		},
		"connection_string": {
			Pattern:     `(?i)\b([a-z][a-z0-9+]*)://([^:/\s]+):([^@/\s]+)@`,
			Replacement: `$1://$2:__MASKED_PASSWORD__@`,
			Description: "Credentials embedded in connection URLs",
		},
		"aws_access_key": {
			Pattern:     `\bAKIA[A-Z0-9]{16}\b`,
			Replacement: `__MASKED_AWS_KEY__`,
			Description: "AWS access key IDs",
		},
		"aws_secret_key": {
			Pattern:     `(?i)(aws[_-]?secret[_-]?access[_-]?key["']?\s*[:=]\s*["']?)([A-Za-z0-9/+=]{40})`,
			Replacement: `${1}__MASKED_AWS_SECRET__`,
			Description: "AWS secret keys",
		},
		"github_token": {
			Pattern:     `\bgh[pousr]_[A-Za-z0-9_]{36,255}\b`,
			Replacement: `__MASKED_GITHUB_TOKEN__`,
			Description: "GitHub tokens",
		},
		"ssh_key": {
			Pattern:     `ssh-(?:rsa|dss|ed25519|ecdsa)\s+[A-Za-z0-9+/=]+`,
			Replacement: `__MASKED_SSH_KEY__`,
			Description: "SSH public keys",
		},
	}
}

// compilePatterns compiles the builtin rules. Invalid patterns are logged
// and skipped rather than failing startup.
func compilePatterns() []*CompiledPattern {
	raw := builtinPatterns()
	compiled := make([]*CompiledPattern, 0, len(raw))
	for name, p := range raw {
		re, err := regexp.Compile(p.Pattern)
		if err != nil {
			slog.Error("Failed to compile masking pattern, skipping",
				"pattern", name, "error", err)
			continue
		}
		compiled = append(compiled, &CompiledPattern{
			Name:        name,
			Regex:       re,
			Replacement: p.Replacement,
			Description: p.Description,
		})
	}
	return compiled
}
