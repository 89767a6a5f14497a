package repository

import (
	"context"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	domain "github.com/Expertman131/beauty-track-sub001/internal/domain/booking"
	"github.com/Expertman131/beauty-track-sub001/internal/domain/schedule"
	"github.com/Expertman131/beauty-track-sub001/internal/httperr"
	"github.com/Expertman131/beauty-track-sub001/internal/models"
)

type BookingGormRepository struct {
	db *gorm.DB
}

func NewBookingGormRepository(db *gorm.DB) *BookingGormRepository {
	return &BookingGormRepository{db: db}
}

// --------------------------------------------------
// Branch
// --------------------------------------------------

func (r *BookingGormRepository) GetBranchByID(
	ctx context.Context,
	id uint,
) (*models.Branch, error) {

	var branch models.Branch
	if err := r.db.WithContext(ctx).First(&branch, id).Error; err != nil {
		return nil, err
	}
	return &branch, nil
}

func (r *BookingGormRepository) GetBranchBySlug(
	ctx context.Context,
	slug string,
) (*models.Branch, error) {

	var branch models.Branch
	if err := r.db.WithContext(ctx).
		Where("slug = ?", slug).
		First(&branch).Error; err != nil {
		return nil, err
	}
	return &branch, nil
}

// --------------------------------------------------
// Staff
// --------------------------------------------------

func (r *BookingGormRepository) GetStaff(
	ctx context.Context,
	staffID uint,
) (*models.Staff, error) {

	var staff models.Staff
	if err := r.db.WithContext(ctx).First(&staff, staffID).Error; err != nil {
		return nil, err
	}
	return &staff, nil
}

func (r *BookingGormRepository) ListStaffForBranch(
	ctx context.Context,
	branchID uint,
) ([]models.Staff, error) {

	var staff []models.Staff
	if err := r.db.WithContext(ctx).
		Where("branch_id = ? AND active = true", branchID).
		Order("name ASC").
		Find(&staff).Error; err != nil {
		return nil, err
	}
	return staff, nil
}

// --------------------------------------------------
// Service catalog
// --------------------------------------------------

func (r *BookingGormRepository) GetService(
	ctx context.Context,
	branchID uint,
	serviceID uint,
) (*models.Service, error) {

	var service models.Service
	if err := r.db.WithContext(ctx).
		Where("id = ? AND branch_id = ?", serviceID, branchID).
		First(&service).Error; err != nil {
		return nil, err
	}
	return &service, nil
}

func (r *BookingGormRepository) GetServices(
	ctx context.Context,
	branchID uint,
	serviceIDs []uint,
) ([]models.Service, error) {

	var services []models.Service
	if err := r.db.WithContext(ctx).
		Where("id IN ? AND branch_id = ? AND active = true", serviceIDs, branchID).
		Find(&services).Error; err != nil {
		return nil, err
	}

	if len(services) != len(serviceIDs) {
		return nil, httperr.ErrBusiness("service_not_found")
	}

	return services, nil
}

// --------------------------------------------------
// Working hours
// --------------------------------------------------

func (r *BookingGormRepository) LoadWorkingHours(
	ctx context.Context,
	staffID uint,
) (schedule.WorkingHoursMap, error) {

	var days []models.ScheduleDay
	if err := r.db.WithContext(ctx).
		Where("staff_id = ?", staffID).
		Order("date ASC").
		Find(&days).Error; err != nil {
		return nil, err
	}

	hours := schedule.NewWorkingHoursMap()
	for _, d := range days {
		hours.Set(d.Date, schedule.WorkingDay{
			Start:   d.StartTime,
			End:     d.EndTime,
			Working: d.Working,
		})
	}

	return hours, nil
}

// ReplaceWorkingHours swaps the whole per-date configuration in one
// transaction, mirroring how the editor commits a full map snapshot.
func (r *BookingGormRepository) ReplaceWorkingHours(
	ctx context.Context,
	staffID uint,
	hours schedule.WorkingHoursMap,
) error {

	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {

		if err := tx.
			Where("staff_id = ?", staffID).
			Delete(&models.ScheduleDay{}).Error; err != nil {
			return err
		}

		var toCreate []models.ScheduleDay
		for date, day := range hours {
			toCreate = append(toCreate, models.ScheduleDay{
				StaffID:   staffID,
				Date:      date,
				StartTime: day.Start,
				EndTime:   day.End,
				Working:   day.Working,
			})
		}

		if len(toCreate) > 0 {
			if err := tx.Create(&toCreate).Error; err != nil {
				return err
			}
		}

		return nil
	})
}

// --------------------------------------------------
// Client
// --------------------------------------------------

func (r *BookingGormRepository) GetOrCreateClient(
	ctx context.Context,
	branchID uint,
	name string,
	phone string,
	email string,
) (*models.Client, error) {

	var client models.Client
	err := r.db.WithContext(ctx).
		Where("branch_id = ? AND phone = ?", branchID, phone).
		First(&client).Error

	if err == nil {
		return &client, nil
	}

	client = models.Client{
		BranchID: branchID,
		Name:     name,
		Phone:    phone,
		Email:    email,
	}

	if err := r.db.WithContext(ctx).Create(&client).Error; err != nil {
		return nil, err
	}

	return &client, nil
}

// --------------------------------------------------
// Booking (create / conflict)
// --------------------------------------------------

func (r *BookingGormRepository) CreateBooking(
	ctx context.Context,
	b *models.Booking,
) error {
	return r.db.WithContext(ctx).Create(b).Error
}

func (r *BookingGormRepository) AssertNoTimeConflict(
	ctx context.Context,
	staffID uint,
	start time.Time,
	end time.Time,
) error {

	var count int64
	if err := r.db.WithContext(ctx).
		Model(&models.Booking{}).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		Where(
			"staff_id = ? AND status = 'scheduled' AND start_time < ? AND end_time > ?",
			staffID,
			end,
			start,
		).
		Count(&count).Error; err != nil {
		return err
	}

	if count > 0 {
		return httperr.ErrBusiness("time_conflict")
	}

	return nil
}

// --------------------------------------------------
// Booking (state change)
// --------------------------------------------------

func (r *BookingGormRepository) GetBookingForBranch(
	ctx context.Context,
	bookingID uint,
	branchID uint,
) (*models.Booking, error) {

	var b models.Booking
	if err := r.db.WithContext(ctx).
		Where("id = ? AND branch_id = ?", bookingID, branchID).
		First(&b).Error; err != nil {
		return nil, err
	}

	return &b, nil
}

func (r *BookingGormRepository) UpdateBooking(
	ctx context.Context,
	b *models.Booking,
) error {
	return r.db.WithContext(ctx).Save(b).Error
}

// --------------------------------------------------
// Listings
// --------------------------------------------------

func (r *BookingGormRepository) ListBookingsForDay(
	ctx context.Context,
	staffID uint,
	start time.Time,
	end time.Time,
) ([]models.Booking, error) {

	var bookings []models.Booking
	if err := r.db.WithContext(ctx).
		Select("start_time", "end_time").
		Where(
			"staff_id = ? AND status = 'scheduled' AND start_time >= ? AND start_time < ?",
			staffID, start, end,
		).
		Order("start_time ASC").
		Find(&bookings).Error; err != nil {
		return nil, err
	}

	return bookings, nil
}

func (r *BookingGormRepository) ListBookingsForPeriod(
	ctx context.Context,
	staffID uint,
	start time.Time,
	end time.Time,
) ([]models.Booking, error) {

	var bookings []models.Booking

	err := r.db.WithContext(ctx).
		Preload("Client").
		Preload("Staff").
		Preload("Items.Service").
		Where(
			"staff_id = ? AND start_time >= ? AND start_time < ?",
			staffID,
			start,
			end,
		).
		Order("start_time ASC").
		Find(&bookings).Error

	if err != nil {
		return nil, err
	}

	return bookings, nil
}

// Compile-time check
var _ domain.Repository = (*BookingGormRepository)(nil)
