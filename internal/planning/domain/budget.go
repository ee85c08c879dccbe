package domain

// AvailableMinutes converts user-entered hours and minutes, less any busy
// calendar minutes, into a planning budget. Negative inputs count as zero
// and the result is never negative.
func AvailableMinutes(hours, minutes, busyMinutes int) int {
	total := max(0, hours)*60 + max(0, minutes) - max(0, busyMinutes)
	return max(0, total)
}
