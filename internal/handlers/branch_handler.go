package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/Expertman131/beauty-track-sub001/internal/httperr"
	"github.com/Expertman131/beauty-track-sub001/internal/middleware"
	"github.com/Expertman131/beauty-track-sub001/internal/models"
	"github.com/Expertman131/beauty-track-sub001/internal/timezone"
)

type BranchHandler struct {
	db *gorm.DB
}

func NewBranchHandler(db *gorm.DB) *BranchHandler {
	return &BranchHandler{db: db}
}

type UpdateBranchConfigRequest struct {
	Name              *string `json:"name"`
	Phone             *string `json:"phone"`
	Address           *string `json:"address"`
	Timezone          *string `json:"timezone"`
	MinAdvanceMinutes *int    `json:"min_advance_minutes"`
}

func (h *BranchHandler) GetMeBranch(c *gin.Context) {
	branchIDVal, _ := c.Get(middleware.ContextBranchID)
	branchID := branchIDVal.(uint)

	var branch models.Branch
	if err := h.db.First(&branch, branchID).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			httperr.NotFound(c, "branch_not_found", "Branch not found.")
			return
		}
		httperr.Internal(c, "failed_to_get_branch", "Failed to load branch data.")
		return
	}

	c.JSON(http.StatusOK, branch)
}

func (h *BranchHandler) UpdateMeBranch(c *gin.Context) {
	branchIDVal, _ := c.Get(middleware.ContextBranchID)
	branchID := branchIDVal.(uint)

	var branch models.Branch
	if err := h.db.First(&branch, branchID).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			httperr.NotFound(c, "branch_not_found", "Branch not found.")
			return
		}
		httperr.Internal(c, "failed_to_get_branch", "Failed to load branch data.")
		return
	}

	var req UpdateBranchConfigRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Invalid request payload.")
		return
	}

	if req.Name != nil {
		branch.Name = *req.Name
	}
	if req.Phone != nil {
		branch.Phone = *req.Phone
	}
	if req.Address != nil {
		branch.Address = *req.Address
	}
	if req.Timezone != nil {
		if !timezone.IsValid(*req.Timezone) {
			httperr.BadRequest(c, "invalid_timezone", "Unknown timezone identifier.")
			return
		}
		branch.Timezone = *req.Timezone
	}
	if req.MinAdvanceMinutes != nil {
		if *req.MinAdvanceMinutes < 0 {
			httperr.BadRequest(c, "invalid_min_advance", "Minimum advance must be zero or positive (minutes).")
			return
		}
		branch.MinAdvanceMinutes = *req.MinAdvanceMinutes
	}

	if err := h.db.Save(&branch).Error; err != nil {
		httperr.Internal(c, "failed_to_update_branch", "Failed to save branch settings.")
		return
	}

	c.JSON(http.StatusOK, branch)
}
