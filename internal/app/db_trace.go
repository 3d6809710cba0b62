package app

import "strings"

// Span payloads carry at most this many bytes of SQL text.
const maxTracedQueryLength = 512

func formatDBQueryForTrace(query string) string {
	normalized := strings.Join(strings.Fields(query), " ")
	if len(normalized) > maxTracedQueryLength {
		return normalized[:maxTracedQueryLength] + "..."
	}
	return normalized
}
