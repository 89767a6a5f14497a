package schedule

import (
	"context"

	domain "github.com/Expertman131/beauty-track-sub001/internal/domain/booking"
	core "github.com/Expertman131/beauty-track-sub001/internal/domain/schedule"
)

type ApplyTemplate struct {
	repo domain.Repository
	save *SaveSchedule
}

func NewApplyTemplate(repo domain.Repository, save *SaveSchedule) *ApplyTemplate {
	return &ApplyTemplate{repo: repo, save: save}
}

// Execute runs one template operation through an editor session:
// load the stored hours, apply the named template to the given date,
// optionally propagate it across the containing week, then commit.
// Commit saves the edited day before snapshotting, so the operation
// can never drop the day it was aimed at.
func (uc *ApplyTemplate) Execute(
	ctx context.Context,
	branchID uint,
	userID uint,
	staffID uint,
	date string,
	template core.Template,
	applyToWeek bool,
) (core.WorkingHoursMap, error) {

	hours, err := uc.repo.LoadWorkingHours(ctx, staffID)
	if err != nil {
		return nil, err
	}

	ed, err := core.NewEditor(date, hours)
	if err != nil {
		return nil, err
	}

	if err := ed.ApplyTemplate(template); err != nil {
		return nil, err
	}

	if applyToWeek {
		if err := ed.ApplyToWeek(); err != nil {
			return nil, err
		}
	}

	snapshot, err := ed.Commit()
	if err != nil {
		return nil, err
	}

	if err := uc.save.Execute(ctx, branchID, userID, staffID, snapshot); err != nil {
		return nil, err
	}

	return snapshot, nil
}
