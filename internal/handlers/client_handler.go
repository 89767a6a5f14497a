package handlers

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/Expertman131/beauty-track-sub001/internal/httperr"
	"github.com/Expertman131/beauty-track-sub001/internal/middleware"
	"github.com/Expertman131/beauty-track-sub001/internal/models"
	"github.com/Expertman131/beauty-track-sub001/internal/validators"
)

type ClientHandler struct {
	db *gorm.DB
}

func NewClientHandler(db *gorm.DB) *ClientHandler {
	return &ClientHandler{db: db}
}

type CreateClientRequest struct {
	Name  string `json:"name" binding:"required"`
	Phone string `json:"phone" binding:"required"`
	Email string `json:"email"`
}

func (h *ClientHandler) List(c *gin.Context) {
	branchIDVal, _ := c.Get(middleware.ContextBranchID)
	branchID := branchIDVal.(uint)

	query := strings.ToLower(strings.TrimSpace(c.Query("query")))

	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	if page < 1 {
		page = 1
	}
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "20"))
	if limit < 1 || limit > 100 {
		limit = 20
	}

	q := h.db.Model(&models.Client{}).Where("branch_id = ?", branchID)

	if query != "" {
		like := "%" + query + "%"
		q = q.Where("LOWER(name) LIKE ? OR phone LIKE ? OR LOWER(email) LIKE ?", like, like, like)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		httperr.Internal(c, "failed_to_list_clients", "Failed to load clients.")
		return
	}

	var clients []models.Client
	if err := q.
		Order("name ASC").
		Limit(limit).
		Offset((page - 1) * limit).
		Find(&clients).Error; err != nil {

		httperr.Internal(c, "failed_to_list_clients", "Failed to load clients.")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"clients": clients,
		"total":   total,
		"page":    page,
		"limit":   limit,
	})
}

func (h *ClientHandler) Create(c *gin.Context) {
	branchIDVal, _ := c.Get(middleware.ContextBranchID)
	branchID := branchIDVal.(uint)

	var req CreateClientRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", err.Error())
		return
	}

	if !validators.IsPhoneValid(req.Phone) {
		httperr.BadRequest(c, "invalid_phone", "Phone number is not valid.")
		return
	}

	if req.Email != "" && !validators.IsEmailFormatValid(req.Email) {
		httperr.BadRequest(c, "invalid_email", "Email address is not valid.")
		return
	}

	client := models.Client{
		BranchID: branchID,
		Name:     strings.TrimSpace(req.Name),
		Phone:    strings.TrimSpace(req.Phone),
		Email:    strings.ToLower(strings.TrimSpace(req.Email)),
	}

	if err := h.db.Create(&client).Error; err != nil {
		httperr.Internal(c, "failed_to_create_client", "Failed to create the client.")
		return
	}

	c.JSON(http.StatusCreated, client)
}
