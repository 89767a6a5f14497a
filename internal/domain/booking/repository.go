package booking

import (
	"context"
	"time"

	"github.com/Expertman131/beauty-track-sub001/internal/domain/schedule"
	"github.com/Expertman131/beauty-track-sub001/internal/models"
)

type Repository interface {
	// -------- Branch --------
	GetBranchByID(
		ctx context.Context,
		id uint,
	) (*models.Branch, error)

	GetBranchBySlug(
		ctx context.Context,
		slug string,
	) (*models.Branch, error)

	// -------- Staff --------
	GetStaff(
		ctx context.Context,
		staffID uint,
	) (*models.Staff, error)

	ListStaffForBranch(
		ctx context.Context,
		branchID uint,
	) ([]models.Staff, error)

	// -------- Service catalog --------
	GetService(
		ctx context.Context,
		branchID uint,
		serviceID uint,
	) (*models.Service, error)

	GetServices(
		ctx context.Context,
		branchID uint,
		serviceIDs []uint,
	) ([]models.Service, error)

	// -------- Working hours --------
	LoadWorkingHours(
		ctx context.Context,
		staffID uint,
	) (schedule.WorkingHoursMap, error)

	ReplaceWorkingHours(
		ctx context.Context,
		staffID uint,
		hours schedule.WorkingHoursMap,
	) error

	// -------- Client --------
	GetOrCreateClient(
		ctx context.Context,
		branchID uint,
		name string,
		phone string,
		email string,
	) (*models.Client, error)

	// -------- Booking (create / conflict) --------
	CreateBooking(
		ctx context.Context,
		b *models.Booking,
	) error

	AssertNoTimeConflict(
		ctx context.Context,
		staffID uint,
		start time.Time,
		end time.Time,
	) error

	// -------- Booking (state change) --------
	GetBookingForBranch(
		ctx context.Context,
		bookingID uint,
		branchID uint,
	) (*models.Booking, error)

	UpdateBooking(
		ctx context.Context,
		b *models.Booking,
	) error

	// -------- Listings --------
	ListBookingsForDay(
		ctx context.Context,
		staffID uint,
		start time.Time,
		end time.Time,
	) ([]models.Booking, error)

	ListBookingsForPeriod(
		ctx context.Context,
		staffID uint,
		start time.Time,
		end time.Time,
	) ([]models.Booking, error)
}
