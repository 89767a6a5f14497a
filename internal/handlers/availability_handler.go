package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	domain "github.com/Expertman131/beauty-track-sub001/internal/domain/booking"
	"github.com/Expertman131/beauty-track-sub001/internal/httperr"
	"github.com/Expertman131/beauty-track-sub001/internal/middleware"
	"github.com/Expertman131/beauty-track-sub001/internal/models"
	"github.com/Expertman131/beauty-track-sub001/internal/usecase/availability"
)

type AvailabilityHandler struct {
	repo domain.Repository
	uc   *availability.GetAvailability
}

func NewAvailabilityHandler(
	repo domain.Repository,
	uc *availability.GetAvailability,
) *AvailabilityHandler {
	return &AvailabilityHandler{repo: repo, uc: uc}
}

func parseUintQuery(c *gin.Context, name string) (uint, bool) {
	raw := c.Query(name)
	if raw == "" {
		return 0, true
	}
	v, err := strconv.ParseUint(raw, 10, 64)
	if err != nil {
		return 0, false
	}
	return uint(v), true
}

// GetPublic serves the self-service booking page: the branch comes
// from the URL slug and there is no authenticated branch context.
func (h *AvailabilityHandler) GetPublic(c *gin.Context) {
	branch, err := h.repo.GetBranchBySlug(c.Request.Context(), c.Param("slug"))
	if err != nil {
		httperr.NotFound(c, "branch_not_found", "Branch not found.")
		return
	}

	h.respond(c, branch, branch.ID, 0)
}

// Get serves operators inside the app; the branch context comes from
// the JWT and an explicit branch_id query can override it.
func (h *AvailabilityHandler) Get(c *gin.Context) {
	branchIDVal, _ := c.Get(middleware.ContextBranchID)
	activeBranchID := branchIDVal.(uint)

	requestedBranchID, ok := parseUintQuery(c, "branch_id")
	if !ok {
		httperr.BadRequest(c, "invalid_branch_id", "branch_id must be numeric.")
		return
	}

	branch, err := h.repo.GetBranchByID(c.Request.Context(), activeBranchID)
	if err != nil {
		httperr.NotFound(c, "branch_not_found", "Branch not found.")
		return
	}

	h.respond(c, branch, requestedBranchID, activeBranchID)
}

func (h *AvailabilityHandler) respond(
	c *gin.Context,
	branch *models.Branch,
	requestedBranchID uint,
	activeBranchID uint,
) {

	staffID, ok := parseUintQuery(c, "staff_id")
	if !ok || staffID == 0 {
		httperr.BadRequest(c, "invalid_staff_id", "staff_id is required and must be numeric.")
		return
	}

	serviceID, ok := parseUintQuery(c, "service_id")
	if !ok || serviceID == 0 {
		httperr.BadRequest(c, "invalid_service_id", "service_id is required and must be numeric.")
		return
	}

	date, err := parseDateInBranch(branch, c.Query("date"))
	if err != nil {
		httperr.BadRequest(c, "invalid_date", "Date must be YYYY-MM-DD.")
		return
	}

	res, err := h.uc.Execute(c.Request.Context(), domain.AvailabilityInput{
		StaffID:        staffID,
		ServiceID:      serviceID,
		BranchID:       requestedBranchID,
		ActiveBranchID: activeBranchID,
		Date:           date,
	})
	if err != nil {
		writeUseCaseError(c, err)
		return
	}

	c.JSON(http.StatusOK, res)
}
