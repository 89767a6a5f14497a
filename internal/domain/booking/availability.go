package booking

import (
	"time"

	"github.com/Expertman131/beauty-track-sub001/internal/domain/schedule"
)

// AvailabilityInput identifies one (staff, service, date) availability
// query. BranchID is the explicitly requested branch and
// ActiveBranchID the caller's branch context; zero means unset. Both
// are passed explicitly so the core stays free of ambient state.
type AvailabilityInput struct {
	StaffID        uint
	ServiceID      uint
	BranchID       uint
	ActiveBranchID uint
	Date           time.Time
}

// AvailabilityResult carries the three slot buckets plus an optional
// informational message (branch mismatch, no availability). A failed
// gate is not an error: the result is empty and displayable as-is.
type AvailabilityResult struct {
	Date    string               `json:"date"`
	StaffID uint                 `json:"staff_id"`
	Slots   schedule.SlotBuckets `json:"slots"`
	Message string               `json:"message,omitempty"`
}
