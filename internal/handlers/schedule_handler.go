package handlers

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	domain "github.com/Expertman131/beauty-track-sub001/internal/domain/booking"
	core "github.com/Expertman131/beauty-track-sub001/internal/domain/schedule"
	"github.com/Expertman131/beauty-track-sub001/internal/httperr"
	"github.com/Expertman131/beauty-track-sub001/internal/middleware"
	"github.com/Expertman131/beauty-track-sub001/internal/models"
	schedule "github.com/Expertman131/beauty-track-sub001/internal/usecase/schedule"
)

type ScheduleHandler struct {
	db            *gorm.DB
	repo          domain.Repository
	save          *schedule.SaveSchedule
	applyTemplate *schedule.ApplyTemplate
}

func NewScheduleHandler(
	db *gorm.DB,
	repo domain.Repository,
	save *schedule.SaveSchedule,
	applyTemplate *schedule.ApplyTemplate,
) *ScheduleHandler {
	return &ScheduleHandler{
		db:            db,
		repo:          repo,
		save:          save,
		applyTemplate: applyTemplate,
	}
}

// --------- Requests / responses ---------

type ScheduleDayView struct {
	Date       string `json:"date"`
	StartTime  string `json:"start_time"`
	EndTime    string `json:"end_time"`
	Working    bool   `json:"is_working_day"`
	Configured bool   `json:"configured"`
}

type ApplyTemplateRequest struct {
	Date        string `json:"date" binding:"required"`
	Template    string `json:"template" binding:"required"`
	ApplyToWeek bool   `json:"apply_to_week"`
}

// --------- Helpers ---------

func (h *ScheduleHandler) staffInBranch(c *gin.Context) (*models.Staff, uint, bool) {
	branchIDVal, _ := c.Get(middleware.ContextBranchID)
	branchID := branchIDVal.(uint)

	staffID, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		httperr.BadRequest(c, "invalid_staff_id", "Staff id must be numeric.")
		return nil, 0, false
	}

	var member models.Staff
	if err := h.db.
		Where("id = ? AND branch_id = ?", staffID, branchID).
		First(&member).Error; err != nil {

		httperr.NotFound(c, "staff_not_found", "Staff member not found.")
		return nil, 0, false
	}

	return &member, branchID, true
}

// --------- Handlers ---------

// GetSchedule returns a date window of the staff member's hours. Dates
// without a stored record come back pre-filled from the default
// template with Configured=false, which is what the editor shows
// before the user saves anything.
func (h *ScheduleHandler) GetSchedule(c *gin.Context) {
	member, branchID, ok := h.staffInBranch(c)
	if !ok {
		return
	}

	var branch models.Branch
	if err := h.db.First(&branch, branchID).Error; err != nil {
		httperr.Internal(c, "failed_to_get_branch", "Failed to load branch data.")
		return
	}
	loc := locationFromBranch(&branch)

	from := time.Now().In(loc)
	if fromStr := c.Query("from"); fromStr != "" {
		parsed, err := time.ParseInLocation(core.DateLayout, fromStr, loc)
		if err != nil {
			httperr.BadRequest(c, "invalid_date", "Date must be YYYY-MM-DD.")
			return
		}
		from = parsed
	}

	days, _ := strconv.Atoi(c.DefaultQuery("days", "7"))
	if days < 1 || days > 31 {
		days = 7
	}

	hours, err := h.repo.LoadWorkingHours(c.Request.Context(), member.ID)
	if err != nil {
		httperr.Internal(c, "failed_to_load_schedule", "Failed to load the schedule.")
		return
	}

	out := make([]ScheduleDayView, 0, days)
	for i := 0; i < days; i++ {
		date := from.AddDate(0, 0, i).Format(core.DateLayout)

		day, configured := hours.Get(date)
		if !configured {
			day = core.DefaultDay()
		}

		out = append(out, ScheduleDayView{
			Date:       date,
			StartTime:  day.Start,
			EndTime:    day.End,
			Working:    day.Working,
			Configured: configured,
		})
	}

	c.JSON(http.StatusOK, gin.H{
		"staff_id": member.ID,
		"days":     out,
	})
}

// SaveSchedule replaces the staff member's stored hours with the
// submitted snapshot.
func (h *ScheduleHandler) SaveSchedule(c *gin.Context) {
	member, branchID, ok := h.staffInBranch(c)
	if !ok {
		return
	}

	userIDVal, _ := c.Get(middleware.ContextUserID)
	userID := userIDVal.(uint)

	var hours core.WorkingHoursMap
	if err := c.ShouldBindJSON(&hours); err != nil {
		httperr.BadRequest(c, "invalid_request", err.Error())
		return
	}

	for date := range hours {
		if _, err := time.Parse(core.DateLayout, date); err != nil {
			httperr.BadRequest(c, "invalid_date", "Schedule keys must be YYYY-MM-DD dates.")
			return
		}
	}

	if err := h.save.Execute(
		c.Request.Context(),
		branchID,
		userID,
		member.ID,
		hours,
	); err != nil {
		writeUseCaseError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"staff_id": member.ID,
		"days":     len(hours),
	})
}

// ApplyTemplate applies a named preset to one date, optionally to the
// whole Monday-to-Sunday week around it, and persists the result.
func (h *ScheduleHandler) ApplyTemplate(c *gin.Context) {
	member, branchID, ok := h.staffInBranch(c)
	if !ok {
		return
	}

	userIDVal, _ := c.Get(middleware.ContextUserID)
	userID := userIDVal.(uint)

	var req ApplyTemplateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", err.Error())
		return
	}

	snapshot, err := h.applyTemplate.Execute(
		c.Request.Context(),
		branchID,
		userID,
		member.ID,
		req.Date,
		core.Template(req.Template),
		req.ApplyToWeek,
	)
	if err != nil {
		writeUseCaseError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"staff_id": member.ID,
		"schedule": snapshot,
	})
}
