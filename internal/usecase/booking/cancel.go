package booking

import (
	"context"

	"github.com/Expertman131/beauty-track-sub001/internal/audit"
	"github.com/Expertman131/beauty-track-sub001/internal/cache"
	domain "github.com/Expertman131/beauty-track-sub001/internal/domain/booking"
	"github.com/Expertman131/beauty-track-sub001/internal/httperr"
	"github.com/Expertman131/beauty-track-sub001/internal/models"
	"github.com/Expertman131/beauty-track-sub001/internal/timezone"
)

type CancelBooking struct {
	repo  domain.Repository
	audit *audit.Dispatcher
	cache *cache.Cache
}

func NewCancelBooking(
	repo domain.Repository,
	audit *audit.Dispatcher,
	c *cache.Cache,
) *CancelBooking {
	return &CancelBooking{
		repo:  repo,
		audit: audit,
		cache: c,
	}
}

func (uc *CancelBooking) Execute(
	ctx context.Context,
	branchID uint,
	userID uint,
	bookingID uint,
) (*models.Booking, error) {

	branch, err := uc.repo.GetBranchByID(ctx, branchID)
	if err != nil {
		return nil, err
	}

	b, err := uc.repo.GetBookingForBranch(ctx, bookingID, branchID)
	if err != nil {
		return nil, httperr.ErrBusiness("booking_not_found")
	}

	now := timezone.NowIn(branch.Timezone)
	if err := domain.Cancel(b, now); err != nil {
		return nil, err
	}

	if err := uc.repo.UpdateBooking(ctx, b); err != nil {
		return nil, err
	}

	// Cancelling frees slots, so cached availability is stale.
	uc.cache.BumpStaff(ctx, b.StaffID)

	uc.audit.Dispatch(audit.Event{
		BranchID: branchID,
		UserID:   &userID,
		Action:   "booking_cancelled",
		Entity:   "booking",
		EntityID: &b.ID,
	})

	return b, nil
}
