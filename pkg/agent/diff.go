package agent

import (
	"bufio"
	"strings"
)

// DiffPaths extracts the touched file paths from a unified diff, in order
// of first appearance. Paths are taken from +++ headers, with the b/
// prefix stripped; /dev/null (deletions) falls back to the --- side.
func DiffPaths(diff string) []string {
	var paths []string
	seen := make(map[string]bool)

	var lastMinus string
	scanner := bufio.NewScanner(strings.NewReader(diff))
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for scanner.Scan() {
		line := scanner.Text()
		switch {
		case strings.HasPrefix(line, "--- "):
			lastMinus = stripDiffPrefix(strings.TrimPrefix(line, "--- "))
		case strings.HasPrefix(line, "+++ "):
			path := stripDiffPrefix(strings.TrimPrefix(line, "+++ "))
			if path == "" {
				path = lastMinus
			}
			if path != "" && !seen[path] {
				seen[path] = true
				paths = append(paths, path)
			}
		}
	}
	return paths
}

// HasBinaryHunks reports whether the diff carries git binary patches.
func HasBinaryHunks(diff string) bool {
	return strings.Contains(diff, "GIT binary patch") ||
		strings.Contains(diff, "Binary files ")
}

// stripDiffPrefix drops the a/ or b/ prefix and maps /dev/null to empty.
func stripDiffPrefix(path string) string {
	path = strings.TrimSpace(path)
	// Timestamps after a tab are not part of the path.
	if i := strings.IndexByte(path, '\t'); i >= 0 {
		path = path[:i]
	}
	if path == "/dev/null" {
		return ""
	}
	path = strings.TrimPrefix(path, "a/")
	path = strings.TrimPrefix(path, "b/")
	return path
}
