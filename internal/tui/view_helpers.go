package tui

func valueOrDash(v string) string {
	if v == "" {
		return "-"
	}
	return v
}

// fitText truncates on rune boundaries so multibyte names never render as
// broken UTF-8.
func fitText(v string, max int) string {
	runes := []rune(v)
	if max <= 0 || len(runes) <= max {
		return v
	}
	if max <= 3 {
		return string(runes[:max])
	}
	return string(runes[:max-3]) + "..."
}
