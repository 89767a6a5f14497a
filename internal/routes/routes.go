package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/Expertman131/beauty-track-sub001/internal/audit"
	"github.com/Expertman131/beauty-track-sub001/internal/cache"
	"github.com/Expertman131/beauty-track-sub001/internal/config"
	"github.com/Expertman131/beauty-track-sub001/internal/handlers"
	infraRepo "github.com/Expertman131/beauty-track-sub001/internal/infra/repository"
	"github.com/Expertman131/beauty-track-sub001/internal/middleware"
	ucAvailability "github.com/Expertman131/beauty-track-sub001/internal/usecase/availability"
	ucBooking "github.com/Expertman131/beauty-track-sub001/internal/usecase/booking"
	ucSchedule "github.com/Expertman131/beauty-track-sub001/internal/usecase/schedule"
)

func RegisterRoutes(r *gin.Engine, db *gorm.DB, cfg *config.Config, c *cache.Cache) {

	// ======================================================
	// MIDDLEWARE GLOBAL
	// ======================================================
	r.Use(middleware.CORSMiddleware())

	// ======================================================
	// INFRA (SINGLETONS)
	// ======================================================
	repo := infraRepo.NewBookingGormRepository(db)

	auditLogger := audit.New(db)
	auditDispatcher := audit.NewDispatcher(auditLogger)

	// ======================================================
	// USE CASES
	// ======================================================
	getAvailabilityUC := ucAvailability.NewGetAvailability(repo, c)

	saveScheduleUC := ucSchedule.NewSaveSchedule(repo, auditDispatcher, c)
	applyTemplateUC := ucSchedule.NewApplyTemplate(repo, saveScheduleUC)

	createBookingUC := ucBooking.NewCreateBooking(repo, auditDispatcher, c)
	cancelBookingUC := ucBooking.NewCancelBooking(repo, auditDispatcher, c)
	completeBookingUC := ucBooking.NewCompleteBooking(repo, auditDispatcher)
	listBookingsUC := ucBooking.NewListBookingsByDate(repo)

	// ======================================================
	// HANDLERS
	// ======================================================
	authHandler := handlers.NewAuthHandler(db, cfg)
	meHandler := handlers.NewMeHandler(db)
	branchHandler := handlers.NewBranchHandler(db)

	serviceHandler := handlers.NewServiceHandler(db)
	clientHandler := handlers.NewClientHandler(db)
	staffHandler := handlers.NewStaffHandler(db)

	scheduleHandler := handlers.NewScheduleHandler(db, repo, saveScheduleUC, applyTemplateUC)

	availabilityHandler := handlers.NewAvailabilityHandler(repo, getAvailabilityUC)

	bookingHandler := handlers.NewBookingHandler(
		repo,
		createBookingUC,
		cancelBookingUC,
		completeBookingUC,
		listBookingsUC,
	)

	auditLogsHandler := handlers.NewAuditLogsHandler(db)

	// ======================================================
	// API (JSON)
	// ======================================================
	api := r.Group("/api")
	{
		// ------------------------------
		// PUBLIC API (booking page)
		// ------------------------------
		publicAPI := api.Group("/public")
		{
			publicAPI.GET("/:slug/availability", availabilityHandler.GetPublic)
			publicAPI.POST("/:slug/bookings", bookingHandler.CreatePublic)
		}

		// ------------------------------
		// AUTH
		// ------------------------------
		api.POST("/auth/register", authHandler.Register)
		api.POST("/auth/login", authHandler.Login)

		// ------------------------------
		// PRIVATE API
		// ------------------------------
		secured := api.Group("/")
		secured.Use(middleware.AuthMiddleware(cfg))
		{
			secured.GET("/me", meHandler.GetMe)

			secured.GET("/me/branch", branchHandler.GetMeBranch)
			secured.PATCH("/me/branch", branchHandler.UpdateMeBranch)

			secured.GET("/me/services", serviceHandler.List)
			secured.POST("/me/services", serviceHandler.Create)
			secured.PATCH("/me/services/:id", serviceHandler.Update)

			secured.GET("/me/clients", clientHandler.List)
			secured.POST("/me/clients", clientHandler.Create)

			secured.GET("/me/staff", staffHandler.List)
			secured.POST("/me/staff", staffHandler.Create)
			secured.PATCH("/me/staff/:id", staffHandler.Update)

			// ------------------------------
			// SCHEDULE EDITOR
			// ------------------------------
			secured.GET("/me/staff/:id/schedule", scheduleHandler.GetSchedule)
			secured.PUT("/me/staff/:id/schedule", scheduleHandler.SaveSchedule)
			secured.POST("/me/staff/:id/schedule/template", scheduleHandler.ApplyTemplate)

			secured.GET("/me/availability", availabilityHandler.Get)

			// ------------------------------
			// BOOKINGS
			// ------------------------------
			secured.POST("/me/bookings", bookingHandler.Create)
			secured.GET("/me/bookings", bookingHandler.ListByDate)
			secured.PATCH("/me/bookings/:id/cancel", bookingHandler.Cancel)
			secured.PATCH("/me/bookings/:id/complete", bookingHandler.Complete)

			secured.GET("/me/audit-logs", auditLogsHandler.List)
		}
	}
}
