package schedule

import (
	"context"

	"github.com/Expertman131/beauty-track-sub001/internal/audit"
	"github.com/Expertman131/beauty-track-sub001/internal/cache"
	domain "github.com/Expertman131/beauty-track-sub001/internal/domain/booking"
	core "github.com/Expertman131/beauty-track-sub001/internal/domain/schedule"
	"github.com/Expertman131/beauty-track-sub001/internal/httperr"
)

type SaveSchedule struct {
	repo  domain.Repository
	audit *audit.Dispatcher
	cache *cache.Cache
}

func NewSaveSchedule(
	repo domain.Repository,
	audit *audit.Dispatcher,
	c *cache.Cache,
) *SaveSchedule {
	return &SaveSchedule{
		repo:  repo,
		audit: audit,
		cache: c,
	}
}

// Execute persists a committed WorkingHoursMap snapshot for one staff
// member, replacing whatever per-date configuration existed before.
func (uc *SaveSchedule) Execute(
	ctx context.Context,
	branchID uint,
	userID uint,
	staffID uint,
	hours core.WorkingHoursMap,
) error {

	staff, err := uc.repo.GetStaff(ctx, staffID)
	if err != nil {
		return httperr.ErrBusiness("staff_not_found")
	}
	if staff.BranchID != 0 && staff.BranchID != branchID {
		return httperr.ErrBusiness("staff_not_in_branch")
	}

	for _, day := range hours {
		if err := core.Validate(day); err != nil {
			return err
		}
	}

	if err := uc.repo.ReplaceWorkingHours(ctx, staffID, hours); err != nil {
		return err
	}

	uc.cache.BumpStaff(ctx, staffID)

	uc.audit.Dispatch(audit.Event{
		BranchID: branchID,
		UserID:   &userID,
		Action:   "schedule_saved",
		Entity:   "staff",
		EntityID: &staffID,
		Metadata: map[string]any{"days": len(hours)},
	})

	return nil
}
