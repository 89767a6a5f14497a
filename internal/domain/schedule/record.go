package schedule

import (
	"fmt"
	"time"

	"github.com/Expertman131/beauty-track-sub001/internal/httperr"
)

// DateLayout is the key format of a WorkingHoursMap.
const DateLayout = "2006-01-02"

// WorkingDay is one staff member's hours for a single calendar date.
// Start/End are "HH:MM". When Working is false the times are retained
// but ignored by slot generation, so toggling the day back on restores
// the previous hours.
type WorkingDay struct {
	Start   string `json:"start"`
	End     string `json:"end"`
	Working bool   `json:"is_working_day"`
}

// WorkingHoursMap holds one staff member's per-date configuration,
// keyed by "YYYY-MM-DD". Dates without an entry have no stored
// configuration; how that reads depends on the consumer (the editor
// shows the default template, the slot generator yields no slots).
type WorkingHoursMap map[string]WorkingDay

func NewWorkingHoursMap() WorkingHoursMap {
	return make(WorkingHoursMap)
}

func (m WorkingHoursMap) Get(date string) (WorkingDay, bool) {
	d, ok := m[date]
	return d, ok
}

func (m WorkingHoursMap) Set(date string, d WorkingDay) {
	m[date] = d
}

// Clone returns an independent copy, used to snapshot editor state.
func (m WorkingHoursMap) Clone() WorkingHoursMap {
	out := make(WorkingHoursMap, len(m))
	for k, v := range m {
		out[k] = v
	}
	return out
}

// parseHM converts "HH:MM" to minutes since midnight.
func parseHM(hm string) (int, error) {
	t, err := time.Parse("15:04", hm)
	if err != nil {
		return 0, err
	}
	return t.Hour()*60 + t.Minute(), nil
}

func formatHM(minutes int) string {
	minutes = ((minutes % (24 * 60)) + 24*60) % (24 * 60)
	return fmt.Sprintf("%02d:%02d", minutes/60, minutes%60)
}

// Validate rejects a working day whose times do not parse or whose end
// is not after its start. Non-working days keep whatever times they
// carry, so only the Working case is checked.
func Validate(d WorkingDay) error {
	if !d.Working {
		return nil
	}

	start, err := parseHM(d.Start)
	if err != nil {
		return httperr.ErrBusiness("invalid_start_time")
	}

	end, err := parseHM(d.End)
	if err != nil {
		return httperr.ErrBusiness("invalid_end_time")
	}

	if end <= start {
		return httperr.ErrBusiness("end_before_start")
	}

	return nil
}
