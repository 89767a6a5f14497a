package schedule

// SlotStepMinutes is the fixed slot granularity.
const SlotStepMinutes = 30

// TimeSlot is one candidate start time. Available is always true at
// this layer; callers with a booking store flip it for overlaps.
type TimeSlot struct {
	Time      string `json:"time"`
	Available bool   `json:"available"`
}

// SlotBuckets partitions a day's slots by period. Buckets are always
// present (possibly empty) and slots within each are ascending.
type SlotBuckets struct {
	Morning []TimeSlot `json:"morning"`
	Day     []TimeSlot `json:"day"`
	Evening []TimeSlot `json:"evening"`
}

func emptyBuckets() SlotBuckets {
	return SlotBuckets{
		Morning: []TimeSlot{},
		Day:     []TimeSlot{},
		Evening: []TimeSlot{},
	}
}

// Empty reports whether no slot was generated at all, the caller's cue
// to show a no-availability message.
func (b SlotBuckets) Empty() bool {
	return len(b.Morning) == 0 && len(b.Day) == 0 && len(b.Evening) == 0
}

// All returns the buckets flattened in chronological order.
func (b SlotBuckets) All() []TimeSlot {
	out := make([]TimeSlot, 0, len(b.Morning)+len(b.Day)+len(b.Evening))
	out = append(out, b.Morning...)
	out = append(out, b.Day...)
	out = append(out, b.Evening...)
	return out
}

// GenerateSlots produces every bookable start time for one date.
// A date with no stored record, a non-working day, or unparseable
// hours all degrade to empty buckets; there is no error path.
// durationMin is carried for the caller's context only and never
// excludes a slot whose end would overrun closing time.
func GenerateSlots(hours WorkingHoursMap, date string, durationMin int) SlotBuckets {
	buckets := emptyBuckets()

	day, ok := hours.Get(date)
	if !ok || !day.Working {
		return buckets
	}

	start, err := parseHM(day.Start)
	if err != nil {
		return buckets
	}
	end, err := parseHM(day.End)
	if err != nil {
		return buckets
	}

	for m := start; m < end; m += SlotStepMinutes {
		slot := TimeSlot{Time: formatHM(m), Available: true}

		switch hour := m / 60; {
		case hour < 12:
			buckets.Morning = append(buckets.Morning, slot)
		case hour < 18:
			buckets.Day = append(buckets.Day, slot)
		default:
			buckets.Evening = append(buckets.Evening, slot)
		}
	}

	return buckets
}
