package schedule

import (
	"context"
	"errors"
	"testing"
	"time"

	domain "github.com/Expertman131/beauty-track-sub001/internal/domain/booking"
	core "github.com/Expertman131/beauty-track-sub001/internal/domain/schedule"
	"github.com/Expertman131/beauty-track-sub001/internal/models"
)

type mockRepo struct {
	staff *models.Staff
	hours core.WorkingHoursMap

	replaced core.WorkingHoursMap
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
	return nil, errors.New("not implemented")
}

func (m *mockRepo) GetServices(ctx context.Context, branchID uint, serviceIDs []uint) ([]models.Service, error) {
	return nil, errors.New("not implemented")
}

func (m *mockRepo) LoadWorkingHours(ctx context.Context, staffID uint) (core.WorkingHoursMap, error) {
	if m.hours == nil {
		return core.NewWorkingHoursMap(), nil
	}
	return m.hours, nil
}

func (m *mockRepo) ReplaceWorkingHours(ctx context.Context, staffID uint, hours core.WorkingHoursMap) error {
	m.replaced = hours
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
	return nil, nil
}

func (m *mockRepo) ListBookingsForPeriod(ctx context.Context, staffID uint, start, end time.Time) ([]models.Booking, error) {
	return nil, nil
}

var _ domain.Repository = (*mockRepo)(nil)

func newUC(repo *mockRepo) *ApplyTemplate {
	save := NewSaveSchedule(repo, nil, nil)
	return NewApplyTemplate(repo, save)
}

func TestApplyTemplate_SingleDay(t *testing.T) {
	repo := &mockRepo{staff: &models.Staff{ID: 5, BranchID: 1}}
	uc := newUC(repo)

	snapshot, err := uc.Execute(context.Background(), 1, 9, 5, "2026-03-04", core.TemplateMorning, false)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	got, ok := snapshot.Get("2026-03-04")
	if !ok {
		t.Fatalf("expected the edited day in the snapshot")
	}
	if got.Start != "08:00" || got.End != "14:00" || !got.Working {
		t.Fatalf("unexpected record: %+v", got)
	}

	if len(snapshot) != 1 {
		t.Fatalf("expected only the edited day, got %d entries", len(snapshot))
	}
	if repo.replaced == nil {
		t.Fatalf("expected the snapshot to be persisted")
	}
}

func TestApplyTemplate_ToWeekOverwrites(t *testing.T) {
	repo := &mockRepo{
		staff: &models.Staff{ID: 5, BranchID: 1},
		hours: core.WorkingHoursMap{
			// previously configured day inside the window
			"2026-03-06": {Start: "12:00", End: "13:00", Working: true},
			// and one outside it
			"2026-02-20": {Start: "09:00", End: "18:00", Working: true},
		},
	}
	uc := newUC(repo)

	snapshot, err := uc.Execute(context.Background(), 1, 9, 5, "2026-03-04", core.TemplateDayOff, true)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	week := []string{
		"2026-03-02", "2026-03-03", "2026-03-04", "2026-03-05",
		"2026-03-06", "2026-03-07", "2026-03-08",
	}
	for _, date := range week {
		got, ok := snapshot.Get(date)
		if !ok {
			t.Fatalf("expected %s in the snapshot", date)
		}
		if got.Working {
			t.Fatalf("expected %s overwritten with day off, got %+v", date, got)
		}
	}

	outside, ok := snapshot.Get("2026-02-20")
	if !ok || outside.Start != "09:00" {
		t.Fatalf("dates outside the week must be untouched, got %+v ok=%v", outside, ok)
	}
}

func TestApplyTemplate_WrongBranch(t *testing.T) {
	repo := &mockRepo{staff: &models.Staff{ID: 5, BranchID: 2}}
	uc := newUC(repo)

	if _, err := uc.Execute(context.Background(), 1, 9, 5, "2026-03-04", core.TemplateDefault, false); err == nil {
		t.Fatalf("expected error for staff of another branch")
	}
}

func TestApplyTemplate_UnknownTemplate(t *testing.T) {
	repo := &mockRepo{staff: &models.Staff{ID: 5, BranchID: 1}}
	uc := newUC(repo)

	if _, err := uc.Execute(context.Background(), 1, 9, 5, "2026-03-04", "brunch", false); err == nil {
		t.Fatalf("expected error for unknown template")
	}
}
