package service

// Truncate shortens s to limit characters followed by "...".
// Strings of at most limit characters are returned unchanged.
func Truncate(s string, limit int) string {
	if limit < 0 {
		limit = 0
	}
	runes := []rune(s)
	if len(runes) <= limit {
		return s
	}
	return string(runes[:limit]) + "..."
}

func orDefault(s, def string) string {
	if s == "" {
		return def
	}
	return s
}
