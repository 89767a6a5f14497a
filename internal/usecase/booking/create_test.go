package booking

import (
	"context"
	"errors"
	"testing"
	"time"

	domain "github.com/Expertman131/beauty-track-sub001/internal/domain/booking"
	"github.com/Expertman131/beauty-track-sub001/internal/domain/schedule"
	"github.com/Expertman131/beauty-track-sub001/internal/httperr"
	"github.com/Expertman131/beauty-track-sub001/internal/models"
)

type mockRepo struct {
	branch   *models.Branch
	staff    *models.Staff
	services []models.Service
	hours    schedule.WorkingHoursMap

	conflict bool
	created  *models.Booking
	updated  *models.Booking
	stored   *models.Booking
}

func (m *mockRepo) GetBranchByID(ctx context.Context, id uint) (*models.Branch, error) {
	if m.branch == nil {
		return nil, errors.New("record not found")
	}
	return m.branch, nil
}

func (m *mockRepo) GetBranchBySlug(ctx context.Context, slug string) (*models.Branch, error) {
	return m.GetBranchByID(ctx, 0)
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
	return nil, errors.New("not implemented")
}

func (m *mockRepo) GetServices(ctx context.Context, branchID uint, serviceIDs []uint) ([]models.Service, error) {
	if len(m.services) != len(serviceIDs) {
		return nil, httperr.ErrBusiness("service_not_found")
	}
	return m.services, nil
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
	return &models.Client{ID: 7, BranchID: branchID, Name: name, Phone: phone, Email: email}, nil
}

func (m *mockRepo) CreateBooking(ctx context.Context, b *models.Booking) error {
	b.ID = 42
	m.created = b
	return nil
}

func (m *mockRepo) AssertNoTimeConflict(ctx context.Context, staffID uint, start, end time.Time) error {
	if m.conflict {
		return httperr.ErrBusiness("time_conflict")
	}
	return nil
}

func (m *mockRepo) GetBookingForBranch(ctx context.Context, bookingID, branchID uint) (*models.Booking, error) {
	if m.stored == nil {
		return nil, errors.New("record not found")
	}
	return m.stored, nil
}

func (m *mockRepo) UpdateBooking(ctx context.Context, b *models.Booking) error {
	m.updated = b
	return nil
}

func (m *mockRepo) ListBookingsForDay(ctx context.Context, staffID uint, start, end time.Time) ([]models.Booking, error) {
	return nil, nil
}

func (m *mockRepo) ListBookingsForPeriod(ctx context.Context, staffID uint, start, end time.Time) ([]models.Booking, error) {
	return nil, nil
}

var _ domain.Repository = (*mockRepo)(nil)

// A date far enough out that the minimum-advance check can never trip.
const futureDate = "2030-06-03"

func workingRepo() *mockRepo {
	return &mockRepo{
		branch: &models.Branch{ID: 1, Timezone: "UTC", MinAdvanceMinutes: 120},
		staff:  &models.Staff{ID: 2, BranchID: 1},
		services: []models.Service{
			{ID: 10, DurationMin: 60, Price: 3000},
			{ID: 11, DurationMin: 30, Price: 1500},
		},
		hours: schedule.WorkingHoursMap{
			futureDate: {Start: "09:00", End: "20:00", Working: true},
		},
	}
}

func baseInput() CreateBookingInput {
	return CreateBookingInput{
		BranchID:    1,
		StaffID:     2,
		ClientName:  "Anna",
		ClientPhone: "+79990001122",
		ServiceIDs:  []uint{10, 11},
		Date:        futureDate,
		Time:        "10:00",
	}
}

func expectBusiness(t *testing.T, err error, code string) {
	t.Helper()
	if !httperr.IsBusiness(err, code) {
		t.Fatalf("expected business error %q, got %v", code, err)
	}
}

func TestCreateBooking_Success(t *testing.T) {
	repo := workingRepo()
	uc := NewCreateBooking(repo, nil, nil)

	b, err := uc.Execute(context.Background(), baseInput())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if b.TotalPrice != 4500 {
		t.Fatalf("total price = %d, want 4500", b.TotalPrice)
	}
	if b.DurationMin != 90 {
		t.Fatalf("duration = %d, want 90", b.DurationMin)
	}
	if got := b.EndTime.Sub(b.StartTime); got != 90*time.Minute {
		t.Fatalf("end-start = %v, want 90m", got)
	}
	if b.Reference == "" {
		t.Fatalf("expected a reference code")
	}
	if b.Status != string(domain.StatusScheduled) {
		t.Fatalf("status = %q, want scheduled", b.Status)
	}
	if len(b.Items) != 2 {
		t.Fatalf("items = %d, want 2", len(b.Items))
	}
	if repo.created == nil {
		t.Fatalf("booking was not persisted")
	}
}

func TestCreateBooking_NoServices(t *testing.T) {
	uc := NewCreateBooking(workingRepo(), nil, nil)

	in := baseInput()
	in.ServiceIDs = nil

	_, err := uc.Execute(context.Background(), in)
	expectBusiness(t, err, "no_services_selected")
}

func TestCreateBooking_StaffDifferentBranch(t *testing.T) {
	repo := workingRepo()
	repo.staff.BranchID = 9
	uc := NewCreateBooking(repo, nil, nil)

	_, err := uc.Execute(context.Background(), baseInput())
	expectBusiness(t, err, "staff_different_branch")
}

func TestCreateBooking_UnassignedStaffAccepted(t *testing.T) {
	repo := workingRepo()
	repo.staff.BranchID = 0
	uc := NewCreateBooking(repo, nil, nil)

	if _, err := uc.Execute(context.Background(), baseInput()); err != nil {
		t.Fatalf("unexpected error for unassigned staff: %v", err)
	}
}

func TestCreateBooking_OutsideWorkingHours(t *testing.T) {
	uc := NewCreateBooking(workingRepo(), nil, nil)

	in := baseInput()
	in.Time = "19:30" // 90 minutes would run past 20:00

	_, err := uc.Execute(context.Background(), in)
	expectBusiness(t, err, "outside_working_hours")
}

func TestCreateBooking_UnconfiguredDateRejected(t *testing.T) {
	repo := workingRepo()
	repo.hours = nil
	uc := NewCreateBooking(repo, nil, nil)

	_, err := uc.Execute(context.Background(), baseInput())
	expectBusiness(t, err, "outside_working_hours")
}

func TestCreateBooking_TooSoon(t *testing.T) {
	repo := workingRepo()
	uc := NewCreateBooking(repo, nil, nil)

	tomorrow := time.Now().UTC().Add(24 * time.Hour).Format(schedule.DateLayout)
	repo.hours = schedule.WorkingHoursMap{
		tomorrow: {Start: "00:00", End: "23:30", Working: true},
	}
	repo.branch.MinAdvanceMinutes = 48 * 60

	in := baseInput()
	in.Date = tomorrow
	in.Time = "12:00"

	_, err := uc.Execute(context.Background(), in)
	expectBusiness(t, err, "too_soon")
}

func TestCreateBooking_TimeConflict(t *testing.T) {
	repo := workingRepo()
	repo.conflict = true
	uc := NewCreateBooking(repo, nil, nil)

	_, err := uc.Execute(context.Background(), baseInput())
	expectBusiness(t, err, "time_conflict")
}

func TestCreateBooking_CrossesMidnight(t *testing.T) {
	repo := workingRepo()
	repo.hours = schedule.WorkingHoursMap{
		futureDate: {Start: "09:00", End: "23:30", Working: true},
	}
	uc := NewCreateBooking(repo, nil, nil)

	in := baseInput()
	in.Time = "23:00" // 90 minutes wraps past midnight

	_, err := uc.Execute(context.Background(), in)
	expectBusiness(t, err, "crosses_midnight")
}
