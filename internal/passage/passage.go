package passage

import "strings"

// Split breaks a raw transcript into passages: one per line, trimmed, with
// blank lines dropped. Malformed or empty input yields an empty slice, never
// an error; downstream assessors own their insufficient-data policies.
func Split(text string) []string {
	lines := strings.Split(text, "\n")
	out := make([]string, 0, len(lines))
	for _, line := range lines {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		out = append(out, line)
	}
	return out
}
