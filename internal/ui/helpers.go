package ui

// truncate shortens a string to max runes with ellipsis. Rune slicing keeps
// multi-byte path and status text valid UTF-8.
func truncate(s string, max int) string {
	if max <= 0 {
		return ""
	}
	r := []rune(s)
	if len(r) <= max {
		return s
	}
	if max <= 3 {
		return string(r[:max])
	}
	return string(r[:max-3]) + "..."
}

// truncateMiddle shortens a string in the middle, preserving start and end.
// Used for filesystem paths where the tail matters most.
func truncateMiddle(s string, max int) string {
	if max <= 0 {
		return ""
	}
	r := []rune(s)
	if len(r) <= max {
		return s
	}
	if max <= 5 {
		return string(r[:max])
	}
	endLen := (max - 3) * 2 / 3
	startLen := max - 3 - endLen
	return string(r[:startLen]) + "..." + string(r[len(r)-endLen:])
}
