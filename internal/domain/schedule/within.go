package schedule

// WithinWorkingHours reports whether a booking starting at startHM and
// running durationMin minutes fits the stored working window for date.
// Absent or non-working dates never contain a booking.
func WithinWorkingHours(hours WorkingHoursMap, date, startHM string, durationMin int) bool {
	day, ok := hours.Get(date)
	if !ok || !day.Working {
		return false
	}

	workStart, err := parseHM(day.Start)
	if err != nil {
		return false
	}
	workEnd, err := parseHM(day.End)
	if err != nil {
		return false
	}

	start, err := parseHM(startHM)
	if err != nil {
		return false
	}

	return start >= workStart && start+durationMin <= workEnd
}
