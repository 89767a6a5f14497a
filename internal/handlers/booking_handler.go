package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	domain "github.com/Expertman131/beauty-track-sub001/internal/domain/booking"
	"github.com/Expertman131/beauty-track-sub001/internal/httperr"
	"github.com/Expertman131/beauty-track-sub001/internal/middleware"
	"github.com/Expertman131/beauty-track-sub001/internal/usecase/booking"
	"github.com/Expertman131/beauty-track-sub001/internal/validators"
)

type BookingHandler struct {
	repo     domain.Repository
	create   *booking.CreateBooking
	cancel   *booking.CancelBooking
	complete *booking.CompleteBooking
	list     *booking.ListBookingsByDate
}

func NewBookingHandler(
	repo domain.Repository,
	create *booking.CreateBooking,
	cancel *booking.CancelBooking,
	complete *booking.CompleteBooking,
	list *booking.ListBookingsByDate,
) *BookingHandler {
	return &BookingHandler{
		repo:     repo,
		create:   create,
		cancel:   cancel,
		complete: complete,
		list:     list,
	}
}

// --------- Requests ---------

type CreateBookingRequest struct {
	StaffID     uint   `json:"staff_id" binding:"required"`
	ClientName  string `json:"client_name" binding:"required"`
	ClientPhone string `json:"client_phone" binding:"required"`
	ClientEmail string `json:"client_email"`
	ServiceIDs  []uint `json:"service_ids" binding:"required"`
	Date        string `json:"date" binding:"required"`
	Time        string `json:"time" binding:"required"`
	Notes       string `json:"notes"`
}

func (r *CreateBookingRequest) toInput(branchID uint, userID *uint) booking.CreateBookingInput {
	return booking.CreateBookingInput{
		BranchID:    branchID,
		StaffID:     r.StaffID,
		UserID:      userID,
		ClientName:  r.ClientName,
		ClientPhone: r.ClientPhone,
		ClientEmail: r.ClientEmail,
		ServiceIDs:  r.ServiceIDs,
		Date:        r.Date,
		Time:        r.Time,
		Notes:       r.Notes,
	}
}

// --------- Handlers ---------

// CreatePublic is the self-service booking endpoint; the branch comes
// from the URL slug and no operator is attached to the audit trail.
func (h *BookingHandler) CreatePublic(c *gin.Context) {
	branch, err := h.repo.GetBranchBySlug(c.Request.Context(), c.Param("slug"))
	if err != nil {
		httperr.NotFound(c, "branch_not_found", "Branch not found.")
		return
	}

	h.handleCreate(c, branch.ID, nil)
}

func (h *BookingHandler) Create(c *gin.Context) {
	branchIDVal, _ := c.Get(middleware.ContextBranchID)
	branchID := branchIDVal.(uint)

	userIDVal, _ := c.Get(middleware.ContextUserID)
	userID := userIDVal.(uint)

	h.handleCreate(c, branchID, &userID)
}

func (h *BookingHandler) handleCreate(c *gin.Context, branchID uint, userID *uint) {
	var req CreateBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", err.Error())
		return
	}

	if !validators.IsPhoneValid(req.ClientPhone) {
		httperr.BadRequest(c, "invalid_phone", "Phone number is not valid.")
		return
	}
	if req.ClientEmail != "" && !validators.IsEmailFormatValid(req.ClientEmail) {
		httperr.BadRequest(c, "invalid_email", "Email address is not valid.")
		return
	}

	b, err := h.create.Execute(c.Request.Context(), req.toInput(branchID, userID))
	if err != nil {
		writeUseCaseError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"id":           b.ID,
		"reference":    b.Reference,
		"start_time":   b.StartTime,
		"end_time":     b.EndTime,
		"duration_min": b.DurationMin,
		"total_price":  b.TotalPrice,
		"status":       b.Status,
	})
}

func (h *BookingHandler) bookingIDParam(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		httperr.BadRequest(c, "invalid_booking_id", "Booking id must be numeric.")
		return 0, false
	}
	return uint(id), true
}

func (h *BookingHandler) Cancel(c *gin.Context) {
	branchIDVal, _ := c.Get(middleware.ContextBranchID)
	branchID := branchIDVal.(uint)

	userIDVal, _ := c.Get(middleware.ContextUserID)
	userID := userIDVal.(uint)

	bookingID, ok := h.bookingIDParam(c)
	if !ok {
		return
	}

	b, err := h.cancel.Execute(c.Request.Context(), branchID, userID, bookingID)
	if err != nil {
		writeUseCaseError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"id":     b.ID,
		"status": b.Status,
	})
}

func (h *BookingHandler) Complete(c *gin.Context) {
	branchIDVal, _ := c.Get(middleware.ContextBranchID)
	branchID := branchIDVal.(uint)

	userIDVal, _ := c.Get(middleware.ContextUserID)
	userID := userIDVal.(uint)

	bookingID, ok := h.bookingIDParam(c)
	if !ok {
		return
	}

	b, err := h.complete.Execute(c.Request.Context(), branchID, userID, bookingID)
	if err != nil {
		writeUseCaseError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"id":     b.ID,
		"status": b.Status,
	})
}

// ListByDate returns one staff member's bookings for a calendar day,
// resolved in the branch timezone.
func (h *BookingHandler) ListByDate(c *gin.Context) {
	branchIDVal, _ := c.Get(middleware.ContextBranchID)
	branchID := branchIDVal.(uint)

	staffID, ok := parseUintQuery(c, "staff_id")
	if !ok || staffID == 0 {
		httperr.BadRequest(c, "invalid_staff_id", "staff_id is required and must be numeric.")
		return
	}

	branch, err := h.repo.GetBranchByID(c.Request.Context(), branchID)
	if err != nil {
		httperr.NotFound(c, "branch_not_found", "Branch not found.")
		return
	}

	date, err := parseDateInBranch(branch, c.Query("date"))
	if err != nil {
		httperr.BadRequest(c, "invalid_date", "Date must be YYYY-MM-DD.")
		return
	}

	out, err := h.list.Execute(c.Request.Context(), branchID, staffID, date)
	if err != nil {
		writeUseCaseError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"date":     c.Query("date"),
		"staff_id": staffID,
		"bookings": out,
	})
}
