package schedule

import (
	"time"

	"github.com/Expertman131/beauty-track-sub001/internal/httperr"
)

// Editor is one in-progress editing session over a staff member's
// hours. Draft holds the currently selected date's unsaved record;
// nothing touches Hours until SaveCurrentDay or Commit. Discarding the
// editor without Commit discards the draft.
type Editor struct {
	Date  string
	Draft WorkingDay
	Hours WorkingHoursMap
}

// NewEditor opens an editing session on date. An unconfigured date is
// presented as the default template, never as closed.
func NewEditor(date string, hours WorkingHoursMap) (*Editor, error) {
	if _, err := time.Parse(DateLayout, date); err != nil {
		return nil, httperr.ErrBusiness("invalid_date")
	}

	if hours == nil {
		hours = NewWorkingHoursMap()
	}

	draft, ok := hours.Get(date)
	if !ok {
		draft = DefaultDay()
	}

	return &Editor{
		Date:  date,
		Draft: draft,
		Hours: hours,
	}, nil
}

// ApplyTemplate replaces the draft with the named template's values.
func (e *Editor) ApplyTemplate(name Template) error {
	d, err := ApplyTemplate(name)
	if err != nil {
		return err
	}
	e.Draft = d
	return nil
}

// SaveCurrentDay validates the draft and writes it for the selected
// date. The draft stays in place so further edits keep working.
func (e *Editor) SaveCurrentDay() error {
	if err := Validate(e.Draft); err != nil {
		return err
	}
	e.Hours.Set(e.Date, e.Draft)
	return nil
}

// ApplyToWeek writes the draft into all seven dates of the
// Monday-start week containing the selected date, overwriting any
// existing per-day configuration. Destructive by design; confirmation
// is a UI concern.
func (e *Editor) ApplyToWeek() error {
	if err := Validate(e.Draft); err != nil {
		return err
	}

	week, err := WeekDates(e.Date)
	if err != nil {
		return err
	}

	for _, date := range week {
		e.Hours.Set(date, e.Draft)
	}
	return nil
}

// Commit saves the current day first, then returns the map snapshot
// for persistence. Saving last prevents the in-progress day from being
// silently dropped when the operator closes the editor.
func (e *Editor) Commit() (WorkingHoursMap, error) {
	if err := e.SaveCurrentDay(); err != nil {
		return nil, err
	}
	return e.Hours.Clone(), nil
}

// WeekDates returns Monday..Sunday of the week containing anchor.
// time.Weekday counts Sunday as 0, so a Sunday anchor maps to the
// Monday six days earlier.
func WeekDates(anchor string) ([]string, error) {
	t, err := time.Parse(DateLayout, anchor)
	if err != nil {
		return nil, httperr.ErrBusiness("invalid_date")
	}

	offset := (int(t.Weekday()) + 6) % 7
	monday := t.AddDate(0, 0, -offset)

	dates := make([]string, 7)
	for i := 0; i < 7; i++ {
		dates[i] = monday.AddDate(0, 0, i).Format(DateLayout)
	}
	return dates, nil
}
