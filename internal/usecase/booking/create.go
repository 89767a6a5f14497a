package booking

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/Expertman131/beauty-track-sub001/internal/audit"
	"github.com/Expertman131/beauty-track-sub001/internal/cache"
	domain "github.com/Expertman131/beauty-track-sub001/internal/domain/booking"
	"github.com/Expertman131/beauty-track-sub001/internal/domain/schedule"
	"github.com/Expertman131/beauty-track-sub001/internal/httperr"
	"github.com/Expertman131/beauty-track-sub001/internal/models"
	"github.com/Expertman131/beauty-track-sub001/internal/timezone"
)

// ======================================================
// INPUT
// ======================================================

type CreateBookingInput struct {
	BranchID uint
	StaffID  uint

	// UserID is nil for public self-service bookings.
	UserID *uint

	ClientName  string
	ClientPhone string
	ClientEmail string

	ServiceIDs []uint

	Date  string
	Time  string
	Notes string
}

// ======================================================
// USE CASE
// ======================================================

type CreateBooking struct {
	repo  domain.Repository
	audit *audit.Dispatcher
	cache *cache.Cache
}

func NewCreateBooking(
	repo domain.Repository,
	audit *audit.Dispatcher,
	c *cache.Cache,
) *CreateBooking {
	return &CreateBooking{
		repo:  repo,
		audit: audit,
		cache: c,
	}
}

// ======================================================
// EXECUTE
// ======================================================

func (uc *CreateBooking) Execute(
	ctx context.Context,
	in CreateBookingInput,
) (*models.Booking, error) {

	if len(in.ServiceIDs) == 0 {
		return nil, httperr.ErrBusiness("no_services_selected")
	}

	branch, err := uc.repo.GetBranchByID(ctx, in.BranchID)
	if err != nil {
		return nil, err
	}

	staff, err := uc.repo.GetStaff(ctx, in.StaffID)
	if err != nil {
		return nil, httperr.ErrBusiness("staff_not_found")
	}
	if !schedule.BranchMatches(in.BranchID, 0, staff.BranchID) {
		return nil, httperr.ErrBusiness("staff_different_branch")
	}

	// --------------------------------------------------
	// Totals over the selected services
	// --------------------------------------------------
	services, err := uc.repo.GetServices(ctx, in.BranchID, in.ServiceIDs)
	if err != nil {
		return nil, err
	}

	totalDuration := schedule.TotalDuration(services)
	if totalDuration <= 0 {
		return nil, httperr.ErrBusiness("invalid_duration")
	}
	totalPrice := schedule.TotalPrice(services)

	endHM, err := schedule.EndTime(in.Time, totalDuration)
	if err != nil {
		return nil, err
	}
	// EndTime wraps modulo 24h; a wrapped result means the booking
	// would cross midnight, which is not a modeled case.
	if endHM <= in.Time {
		return nil, httperr.ErrBusiness("crosses_midnight")
	}

	// --------------------------------------------------
	// Date/time in the branch timezone
	// --------------------------------------------------
	start, err := time.ParseInLocation(
		"2006-01-02 15:04",
		in.Date+" "+in.Time,
		timezone.Location(branch.Timezone),
	)
	if err != nil {
		return nil, httperr.ErrBusiness("invalid_date_or_time")
	}

	end := start.Add(time.Duration(totalDuration) * time.Minute)

	// --------------------------------------------------
	// Minimum advance
	// --------------------------------------------------
	minAdvance := branch.MinAdvanceMinutes
	if minAdvance <= 0 {
		minAdvance = 120
	}

	now := timezone.NowIn(branch.Timezone)
	if start.Before(now.Add(time.Duration(minAdvance) * time.Minute)) {
		return nil, httperr.ErrBusiness("too_soon")
	}

	// --------------------------------------------------
	// Working hours containment
	// --------------------------------------------------
	hours, err := uc.repo.LoadWorkingHours(ctx, in.StaffID)
	if err != nil {
		return nil, err
	}
	if !schedule.WithinWorkingHours(hours, in.Date, in.Time, totalDuration) {
		return nil, httperr.ErrBusiness("outside_working_hours")
	}

	// --------------------------------------------------
	// Client (get or create)
	// --------------------------------------------------
	client, err := uc.repo.GetOrCreateClient(
		ctx,
		in.BranchID,
		in.ClientName,
		in.ClientPhone,
		in.ClientEmail,
	)
	if err != nil {
		return nil, err
	}

	// --------------------------------------------------
	// Time conflict
	// --------------------------------------------------
	if err := uc.repo.AssertNoTimeConflict(
		ctx,
		in.StaffID,
		start,
		end,
	); err != nil {
		return nil, err
	}

	// --------------------------------------------------
	// Creation (status centralized in the domain)
	// --------------------------------------------------
	items := make([]models.BookingItem, 0, len(services))
	for _, s := range services {
		items = append(items, models.BookingItem{
			ServiceID:   s.ID,
			Price:       s.Price,
			DurationMin: s.DurationMin,
		})
	}

	b := &models.Booking{
		BranchID:    in.BranchID,
		StaffID:     in.StaffID,
		ClientID:    client.ID,
		Reference:   uuid.NewString(),
		StartTime:   start,
		EndTime:     end,
		DurationMin: totalDuration,
		TotalPrice:  totalPrice,
		Status:      string(domain.StatusScheduled),
		Notes:       in.Notes,
		Items:       items,
	}

	if err := uc.repo.CreateBooking(ctx, b); err != nil {
		return nil, err
	}

	uc.cache.BumpStaff(ctx, in.StaffID)

	uc.audit.Dispatch(audit.Event{
		BranchID: in.BranchID,
		UserID:   in.UserID,
		Action:   "booking_created",
		Entity:   "booking",
		EntityID: &b.ID,
	})

	return b, nil
}
