package handlers

import (
	"strings"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/Expertman131/beauty-track-sub001/internal/httperr"
	"github.com/Expertman131/beauty-track-sub001/internal/httpresp"
	"github.com/Expertman131/beauty-track-sub001/internal/middleware"
	"github.com/Expertman131/beauty-track-sub001/internal/models"
)

type StaffHandler struct {
	db *gorm.DB
}

func NewStaffHandler(db *gorm.DB) *StaffHandler {
	return &StaffHandler{db: db}
}

type CreateStaffRequest struct {
	Name      string `json:"name" binding:"required"`
	Phone     string `json:"phone"`
	Specialty string `json:"specialty"`
}

type UpdateStaffRequest struct {
	Name      *string `json:"name,omitempty"`
	Phone     *string `json:"phone,omitempty"`
	Specialty *string `json:"specialty,omitempty"`
	Active    *bool   `json:"active,omitempty"`
}

func (h *StaffHandler) List(c *gin.Context) {
	branchIDVal, _ := c.Get(middleware.ContextBranchID)
	branchID := branchIDVal.(uint)

	q := h.db.Where("branch_id = ?", branchID)

	if c.Query("active") == "true" {
		q = q.Where("active = ?", true)
	}

	var staff []models.Staff
	if err := q.
		Order("name ASC").
		Find(&staff).Error; err != nil {

		httperr.Internal(c, "failed_to_list_staff", "Failed to load staff.")
		return
	}

	httpresp.List(c, staff)
}

func (h *StaffHandler) Create(c *gin.Context) {
	branchIDVal, _ := c.Get(middleware.ContextBranchID)
	branchID := branchIDVal.(uint)

	var req CreateStaffRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", err.Error())
		return
	}

	member := models.Staff{
		BranchID:  branchID,
		Name:      strings.TrimSpace(req.Name),
		Phone:     strings.TrimSpace(req.Phone),
		Specialty: strings.TrimSpace(req.Specialty),
		Active:    true,
	}

	if err := h.db.Create(&member).Error; err != nil {
		httperr.Internal(c, "failed_to_create_staff", "Failed to create the staff member.")
		return
	}

	httpresp.Created(c, member)
}

func (h *StaffHandler) Update(c *gin.Context) {
	branchIDVal, _ := c.Get(middleware.ContextBranchID)
	branchID := branchIDVal.(uint)

	id := c.Param("id")

	var member models.Staff
	if err := h.db.
		Where("id = ? AND branch_id = ?", id, branchID).
		First(&member).Error; err != nil {

		if err == gorm.ErrRecordNotFound {
			httperr.NotFound(c, "staff_not_found", "Staff member not found.")
			return
		}
		httperr.Internal(c, "failed_to_get_staff", "Failed to load the staff member.")
		return
	}

	var req UpdateStaffRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", err.Error())
		return
	}

	if req.Name != nil {
		member.Name = strings.TrimSpace(*req.Name)
	}
	if req.Phone != nil {
		member.Phone = strings.TrimSpace(*req.Phone)
	}
	if req.Specialty != nil {
		member.Specialty = strings.TrimSpace(*req.Specialty)
	}
	if req.Active != nil {
		member.Active = *req.Active
	}

	if err := h.db.Save(&member).Error; err != nil {
		httperr.Internal(c, "failed_to_update_staff", "Failed to save the staff member.")
		return
	}

	httpresp.OK(c, member)
}
