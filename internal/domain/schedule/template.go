package schedule

import "github.com/Expertman131/beauty-track-sub001/internal/httperr"

// Named working-hours presets the editor offers for one-click setup.
type Template string

const (
	TemplateDefault Template = "default"
	TemplateMorning Template = "morning"
	TemplateEvening Template = "evening"
	TemplateShort   Template = "short"
	TemplateDayOff  Template = "day_off"
)

// The day-off preset keeps the default hours so switching the day back
// to working restores something sensible.
var templates = map[Template]WorkingDay{
	TemplateDefault: {Start: "09:00", End: "20:00", Working: true},
	TemplateMorning: {Start: "08:00", End: "14:00", Working: true},
	TemplateEvening: {Start: "14:00", End: "22:00", Working: true},
	TemplateShort:   {Start: "10:00", End: "16:00", Working: true},
	TemplateDayOff:  {Start: "09:00", End: "20:00", Working: false},
}

// ApplyTemplate returns the fixed record for a named template.
// It is a pure lookup; the result still has to be saved by the editor.
func ApplyTemplate(name Template) (WorkingDay, error) {
	d, ok := templates[name]
	if !ok {
		return WorkingDay{}, httperr.ErrBusiness("unknown_template")
	}
	return d, nil
}

// DefaultDay is what an unconfigured date looks like in the editor.
func DefaultDay() WorkingDay {
	return templates[TemplateDefault]
}
