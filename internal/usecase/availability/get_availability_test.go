package availability

import (
	"context"
	"errors"
	"testing"
	"time"

	domain "github.com/Expertman131/beauty-track-sub001/internal/domain/booking"
	"github.com/Expertman131/beauty-track-sub001/internal/domain/schedule"
	"github.com/Expertman131/beauty-track-sub001/internal/models"
)

type mockRepo struct {
	staff    *models.Staff
	service  *models.Service
	hours    schedule.WorkingHoursMap
	bookings []models.Booking
}

func (m *mockRepo) GetBranchByID(ctx context.Context, id uint) (*models.Branch, error) {
	return nil, errors.New("not implemented")
}

func (m *mockRepo) GetBranchBySlug(ctx context.Context, slug string) (*models.Branch, error) {
	return nil, errors.New("not implemented")
}

func (m *mockRepo) GetStaff(ctx context.Context, staffID uint) (*models.Staff, error) {
	if m.staff == nil {
		return nil, errors.New("record not found")
	}
	return m.staff, nil
}

func (m *mockRepo) ListStaffForBranch(ctx context.Context, branchID uint) ([]models.Staff, error) {
	return nil, nil
}

func (m *mockRepo) GetService(ctx context.Context, branchID, serviceID uint) (*models.Service, error) {
	if m.service == nil {
		return nil, errors.New("record not found")
	}
	return m.service, nil
}

func (m *mockRepo) GetServices(ctx context.Context, branchID uint, serviceIDs []uint) ([]models.Service, error) {
	return nil, errors.New("not implemented")
}

func (m *mockRepo) LoadWorkingHours(ctx context.Context, staffID uint) (schedule.WorkingHoursMap, error) {
	if m.hours == nil {
		return schedule.NewWorkingHoursMap(), nil
	}
	return m.hours, nil
}

func (m *mockRepo) ReplaceWorkingHours(ctx context.Context, staffID uint, hours schedule.WorkingHoursMap) error {
	return nil
}

func (m *mockRepo) GetOrCreateClient(ctx context.Context, branchID uint, name, phone, email string) (*models.Client, error) {
	return nil, errors.New("not implemented")
}

func (m *mockRepo) CreateBooking(ctx context.Context, b *models.Booking) error {
	return errors.New("not implemented")
}

func (m *mockRepo) AssertNoTimeConflict(ctx context.Context, staffID uint, start, end time.Time) error {
	return nil
}

func (m *mockRepo) GetBookingForBranch(ctx context.Context, bookingID, branchID uint) (*models.Booking, error) {
	return nil, errors.New("not implemented")
}

func (m *mockRepo) UpdateBooking(ctx context.Context, b *models.Booking) error {
	return errors.New("not implemented")
}

func (m *mockRepo) ListBookingsForDay(ctx context.Context, staffID uint, start, end time.Time) ([]models.Booking, error) {
	return m.bookings, nil
}

func (m *mockRepo) ListBookingsForPeriod(ctx context.Context, staffID uint, start, end time.Time) ([]models.Booking, error) {
	return m.bookings, nil
}

var _ domain.Repository = (*mockRepo)(nil)

func day(t *testing.T, date string) time.Time {
	t.Helper()
	d, err := time.ParseInLocation("2006-01-02", date, time.UTC)
	if err != nil {
		t.Fatalf("bad test date %q: %v", date, err)
	}
	return d
}

func baseInput(t *testing.T) domain.AvailabilityInput {
	return domain.AvailabilityInput{
		StaffID:   1,
		ServiceID: 10,
		Date:      day(t, "2026-03-02"),
	}
}

func TestGetAvailability_StaffNotFound(t *testing.T) {
	uc := NewGetAvailability(&mockRepo{}, nil)

	_, err := uc.Execute(context.Background(), baseInput(t))
	if err == nil {
		t.Fatalf("expected error for unknown staff")
	}
}

func TestGetAvailability_BranchMismatch(t *testing.T) {
	repo := &mockRepo{
		staff:   &models.Staff{ID: 1, BranchID: 2},
		service: &models.Service{ID: 10, DurationMin: 60},
		hours:   schedule.WorkingHoursMap{"2026-03-02": {Start: "09:00", End: "20:00", Working: true}},
	}
	uc := NewGetAvailability(repo, nil)

	in := baseInput(t)
	in.BranchID = 1

	res, err := uc.Execute(context.Background(), in)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if !res.Slots.Empty() {
		t.Fatalf("expected empty slots on branch mismatch, got %+v", res.Slots)
	}
	if res.Message != schedule.MsgDifferentBranch {
		t.Fatalf("expected branch mismatch message, got %q", res.Message)
	}
}

func TestGetAvailability_ActiveBranchContextUsed(t *testing.T) {
	repo := &mockRepo{
		staff:   &models.Staff{ID: 1, BranchID: 2},
		service: &models.Service{ID: 10, DurationMin: 30},
	}
	uc := NewGetAvailability(repo, nil)

	in := baseInput(t)
	in.ActiveBranchID = 1 // no explicit branch, context still gates

	res, err := uc.Execute(context.Background(), in)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if res.Message != schedule.MsgDifferentBranch {
		t.Fatalf("expected mismatch via active context, got %q", res.Message)
	}
}

func TestGetAvailability_NoScheduleForDate(t *testing.T) {
	repo := &mockRepo{
		staff:   &models.Staff{ID: 1, BranchID: 1},
		service: &models.Service{ID: 10, DurationMin: 60},
	}
	uc := NewGetAvailability(repo, nil)

	res, err := uc.Execute(context.Background(), baseInput(t))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if !res.Slots.Empty() {
		t.Fatalf("expected no slots for unconfigured date, got %+v", res.Slots)
	}
	if res.Message == "" {
		t.Fatalf("expected a no-availability message")
	}
}

func TestGetAvailability_FullDay(t *testing.T) {
	repo := &mockRepo{
		staff:   &models.Staff{ID: 1, BranchID: 1},
		service: &models.Service{ID: 10, DurationMin: 60},
		hours: schedule.WorkingHoursMap{
			"2026-03-02": {Start: "09:00", End: "20:00", Working: true},
		},
	}
	uc := NewGetAvailability(repo, nil)

	res, err := uc.Execute(context.Background(), baseInput(t))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	all := res.Slots.All()
	if len(all) != 22 {
		t.Fatalf("expected 22 slots, got %d", len(all))
	}
	if res.Message != "" {
		t.Fatalf("expected no message, got %q", res.Message)
	}
}

func TestGetAvailability_MarksBookedSlots(t *testing.T) {
	booked := func(from, to string) models.Booking {
		start, _ := time.ParseInLocation("2006-01-02 15:04", "2026-03-02 "+from, time.UTC)
		end, _ := time.ParseInLocation("2006-01-02 15:04", "2026-03-02 "+to, time.UTC)
		return models.Booking{StartTime: start, EndTime: end}
	}

	repo := &mockRepo{
		staff:   &models.Staff{ID: 1, BranchID: 1},
		service: &models.Service{ID: 10, DurationMin: 30},
		hours: schedule.WorkingHoursMap{
			"2026-03-02": {Start: "09:00", End: "12:00", Working: true},
		},
		bookings: []models.Booking{booked("10:00", "11:00")},
	}
	uc := NewGetAvailability(repo, nil)

	res, err := uc.Execute(context.Background(), baseInput(t))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	want := map[string]bool{
		"09:00": true,
		"09:30": true,
		"10:00": false,
		"10:30": false,
		"11:00": true,
		"11:30": true,
	}

	for _, s := range res.Slots.Morning {
		exp, ok := want[s.Time]
		if !ok {
			t.Fatalf("unexpected slot %s", s.Time)
		}
		if s.Available != exp {
			t.Fatalf("slot %s: available=%v, want %v", s.Time, s.Available, exp)
		}
	}
}
