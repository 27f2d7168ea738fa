package schedule

// Overlaps reports whether two half-open [start, end) windows intersect.
// Times are zero-padded "HH:MM" strings, so lexicographic comparison matches
// chronological order. Windows that merely touch at an endpoint do not
// overlap, and a zero-width window never overlaps anything.
func Overlaps(aStart, aEnd, bStart, bEnd string) bool {
	return aStart < bEnd && aEnd > bStart
}
