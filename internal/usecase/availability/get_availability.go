package availability

import (
	"context"
	"time"

	"github.com/Expertman131/beauty-track-sub001/internal/cache"
	domain "github.com/Expertman131/beauty-track-sub001/internal/domain/booking"
	"github.com/Expertman131/beauty-track-sub001/internal/domain/schedule"
	"github.com/Expertman131/beauty-track-sub001/internal/httperr"
)

const msgNoAvailability = "no available times for this date"

type GetAvailability struct {
	repo  domain.Repository
	cache *cache.Cache
}

func NewGetAvailability(repo domain.Repository, c *cache.Cache) *GetAvailability {
	return &GetAvailability{repo: repo, cache: c}
}

func (uc *GetAvailability) Execute(
	ctx context.Context,
	in domain.AvailabilityInput,
) (*domain.AvailabilityResult, error) {

	staff, err := uc.repo.GetStaff(ctx, in.StaffID)
	if err != nil {
		return nil, httperr.ErrBusiness("staff_not_found")
	}

	date := in.Date.Format(schedule.DateLayout)

	res := &domain.AvailabilityResult{
		Date:    date,
		StaffID: staff.ID,
		Slots:   schedule.GenerateSlots(nil, date, 0),
	}

	// Branch gate first: a mismatch short-circuits with empty buckets
	// and a message, never an error.
	if !schedule.BranchMatches(in.BranchID, in.ActiveBranchID, staff.BranchID) {
		res.Message = schedule.MsgDifferentBranch
		return res, nil
	}

	serviceBranch := schedule.EffectiveBranch(in.BranchID, in.ActiveBranchID)
	if serviceBranch == 0 {
		serviceBranch = staff.BranchID
	}

	service, err := uc.repo.GetService(ctx, serviceBranch, in.ServiceID)
	if err != nil {
		return nil, httperr.ErrBusiness("service_not_found")
	}

	key := uc.cache.AvailabilityKey(
		ctx,
		in.StaffID,
		in.ServiceID,
		in.BranchID,
		in.ActiveBranchID,
		date,
	)
	if uc.cache.GetAvailability(ctx, key, res) {
		return res, nil
	}

	hours, err := uc.repo.LoadWorkingHours(ctx, in.StaffID)
	if err != nil {
		return nil, err
	}

	res.Slots = schedule.GenerateSlots(hours, date, service.DurationMin)

	if res.Slots.Empty() {
		res.Message = msgNoAvailability
		uc.cache.SetAvailability(ctx, key, res)
		return res, nil
	}

	if err := uc.markBookedSlots(ctx, in, res, service.DurationMin); err != nil {
		return nil, err
	}

	uc.cache.SetAvailability(ctx, key, res)
	return res, nil
}

// markBookedSlots flips Available to false for every slot overlapping
// a scheduled booking. The slot generator itself never consults the
// booking store; this layer owns that cross-check.
func (uc *GetAvailability) markBookedSlots(
	ctx context.Context,
	in domain.AvailabilityInput,
	res *domain.AvailabilityResult,
	durationMin int,
) error {

	loc := in.Date.Location()
	dayStart := time.Date(
		in.Date.Year(), in.Date.Month(), in.Date.Day(),
		0, 0, 0, 0,
		loc,
	)
	dayEnd := dayStart.Add(24 * time.Hour)

	bookings, err := uc.repo.ListBookingsForDay(ctx, in.StaffID, dayStart, dayEnd)
	if err != nil {
		return err
	}
	if len(bookings) == 0 {
		return nil
	}

	slotDuration := time.Duration(durationMin) * time.Minute
	bkIdx := 0

	markBucket := func(bucket []schedule.TimeSlot) {
		for i := range bucket {
			hm, err := time.Parse("15:04", bucket[i].Time)
			if err != nil {
				continue
			}

			slotStart := time.Date(
				in.Date.Year(), in.Date.Month(), in.Date.Day(),
				hm.Hour(), hm.Minute(), 0, 0,
				loc,
			)
			slotEnd := slotStart.Add(slotDuration)

			// skip bookings that ended before this slot
			for bkIdx < len(bookings) && !bookings[bkIdx].EndTime.After(slotStart) {
				bkIdx++
			}

			if bkIdx < len(bookings) {
				bk := bookings[bkIdx]
				if slotStart.Before(bk.EndTime) && slotEnd.After(bk.StartTime) {
					bucket[i].Available = false
				}
			}
		}
	}

	// Buckets are chronological, so one pass over the sorted bookings
	// covers all three.
	markBucket(res.Slots.Morning)
	markBucket(res.Slots.Day)
	markBucket(res.Slots.Evening)

	return nil
}
