package schedule

import "testing"

func workingDay(start, end string) WorkingDay {
	return WorkingDay{Start: start, End: end, Working: true}
}

func TestGenerateSlots_AbsentDate(t *testing.T) {
	hours := NewWorkingHoursMap()

	buckets := GenerateSlots(hours, "2026-03-02", 60)

	if !buckets.Empty() {
		t.Fatalf("expected empty buckets for absent date, got %+v", buckets)
	}
	if buckets.Morning == nil || buckets.Day == nil || buckets.Evening == nil {
		t.Fatalf("expected non-nil empty buckets, got %+v", buckets)
	}
}

func TestGenerateSlots_NonWorkingDay(t *testing.T) {
	hours := NewWorkingHoursMap()
	hours.Set("2026-03-02", WorkingDay{Start: "09:00", End: "20:00", Working: false})

	buckets := GenerateSlots(hours, "2026-03-02", 60)

	if !buckets.Empty() {
		t.Fatalf("expected empty buckets for day off, got %+v", buckets)
	}
}

func TestGenerateSlots_DefaultDayCount(t *testing.T) {
	hours := NewWorkingHoursMap()
	hours.Set("2026-03-02", workingDay("09:00", "20:00"))

	buckets := GenerateSlots(hours, "2026-03-02", 60)
	all := buckets.All()

	if len(all) != 22 {
		t.Fatalf("expected 22 slots for 09:00-20:00, got %d", len(all))
	}
	if all[0].Time != "09:00" {
		t.Fatalf("expected first slot 09:00, got %s", all[0].Time)
	}
	if all[len(all)-1].Time != "19:30" {
		t.Fatalf("expected last slot 19:30, got %s", all[len(all)-1].Time)
	}
	for _, s := range all {
		if !s.Available {
			t.Fatalf("expected every generated slot available, got %+v", s)
		}
	}
}

func TestGenerateSlots_BucketBoundaries(t *testing.T) {
	hours := NewWorkingHoursMap()
	hours.Set("2026-03-02", workingDay("09:00", "20:00"))

	buckets := GenerateSlots(hours, "2026-03-02", 30)

	inBucket := func(bucket []TimeSlot, at string) bool {
		for _, s := range bucket {
			if s.Time == at {
				return true
			}
		}
		return false
	}

	if !inBucket(buckets.Morning, "11:30") {
		t.Fatalf("expected 11:30 in morning bucket")
	}
	if !inBucket(buckets.Day, "12:00") {
		t.Fatalf("expected 12:00 in day bucket")
	}
	if !inBucket(buckets.Day, "17:30") {
		t.Fatalf("expected 17:30 in day bucket")
	}
	if !inBucket(buckets.Evening, "18:00") {
		t.Fatalf("expected 18:00 in evening bucket")
	}
	if inBucket(buckets.Morning, "12:00") || inBucket(buckets.Evening, "17:30") {
		t.Fatalf("boundary slot landed in the wrong bucket: %+v", buckets)
	}
}

func TestGenerateSlots_Ascending(t *testing.T) {
	hours := NewWorkingHoursMap()
	hours.Set("2026-03-02", workingDay("10:00", "19:00"))

	buckets := GenerateSlots(hours, "2026-03-02", 45)

	for _, bucket := range [][]TimeSlot{buckets.Morning, buckets.Day, buckets.Evening} {
		for i := 1; i < len(bucket); i++ {
			if bucket[i-1].Time >= bucket[i].Time {
				t.Fatalf("slots out of order: %s before %s", bucket[i-1].Time, bucket[i].Time)
			}
		}
	}
}

func TestGenerateSlots_DurationDoesNotTrimClosing(t *testing.T) {
	hours := NewWorkingHoursMap()
	hours.Set("2026-03-02", workingDay("18:00", "20:00"))

	// A 90-minute service still sees the 19:30 slot; overrun past
	// closing is not this layer's concern.
	buckets := GenerateSlots(hours, "2026-03-02", 90)

	if len(buckets.Evening) != 4 {
		t.Fatalf("expected 4 evening slots, got %d", len(buckets.Evening))
	}
	if buckets.Evening[3].Time != "19:30" {
		t.Fatalf("expected last slot 19:30, got %s", buckets.Evening[3].Time)
	}
}

func TestGenerateSlots_MalformedHours(t *testing.T) {
	hours := NewWorkingHoursMap()
	hours.Set("2026-03-02", workingDay("late", "20:00"))

	if buckets := GenerateSlots(hours, "2026-03-02", 30); !buckets.Empty() {
		t.Fatalf("expected empty buckets for malformed hours, got %+v", buckets)
	}
}
