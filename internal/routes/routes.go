package routes

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/BruksfildServices01/salon-scheduler/internal/audit"
	"github.com/BruksfildServices01/salon-scheduler/internal/config"
	"github.com/BruksfildServices01/salon-scheduler/internal/handlers"
	infraRepo "github.com/BruksfildServices01/salon-scheduler/internal/infra/repository"
	"github.com/BruksfildServices01/salon-scheduler/internal/logger"
	"github.com/BruksfildServices01/salon-scheduler/internal/metrics"
	"github.com/BruksfildServices01/salon-scheduler/internal/middleware"
	"github.com/BruksfildServices01/salon-scheduler/internal/models"
	"github.com/BruksfildServices01/salon-scheduler/internal/realtime"
	ucBooking "github.com/BruksfildServices01/salon-scheduler/internal/usecase/booking"
	ucLeave "github.com/BruksfildServices01/salon-scheduler/internal/usecase/leave"
	ucSlot "github.com/BruksfildServices01/salon-scheduler/internal/usecase/slot"
)

// Infra carries the long-lived collaborators built in main.
type Infra struct {
	Log     *logger.Logger
	Audit   *audit.Dispatcher
	Broker  realtime.Broker
	Metrics *metrics.Metrics
}

func RegisterRoutes(r *gin.Engine, db *gorm.DB, cfg *config.Config, infra Infra) {

	// ======================================================
	// GLOBAL MIDDLEWARE
	// ======================================================
	r.Use(middleware.CORSMiddleware())
	r.Use(infra.Metrics.Middleware())

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	r.GET("/metrics", gin.WrapH(infra.Metrics.Handler()))

	// ======================================================
	// INFRA
	// ======================================================
	tx := infraRepo.NewTxManager(db)
	slotRepo := infraRepo.NewSlotGormRepository(db)
	bookingRepo := infraRepo.NewBookingGormRepository(db)
	leaveRepo := infraRepo.NewLeaveGormRepository(db)
	salonRepo := infraRepo.NewSalonGormRepository(db)

	log := infra.Log

	// ======================================================
	// USE CASES
	// ======================================================
	checkAvailabilityUC := ucLeave.NewCheckAvailability(leaveRepo, salonRepo)
	requestLeaveUC := ucLeave.NewRequestLeave(leaveRepo, salonRepo, infra.Audit, infra.Broker, log)
	decideLeaveUC := ucLeave.NewDecideLeave(leaveRepo, infra.Audit, infra.Broker, infra.Metrics, log)
	listLeavesUC := ucLeave.NewListLeaves(leaveRepo)

	createSlotUC := ucSlot.NewCreateSlot(
		slotRepo,
		salonRepo,
		checkAvailabilityUC,
		tx,
		infra.Audit,
		infra.Broker,
		infra.Metrics,
		log,
	)
	listSlotsUC := ucSlot.NewListSlots(slotRepo, salonRepo)
	toggleSlotUC := ucSlot.NewToggleAvailability(slotRepo, tx, infra.Audit, infra.Broker, log)
	deleteSlotUC := ucSlot.NewDeleteSlot(slotRepo, tx, infra.Audit, infra.Broker, log)

	confirmBookingUC := ucBooking.NewConfirmBooking(
		slotRepo,
		bookingRepo,
		salonRepo,
		tx,
		infra.Audit,
		infra.Broker,
		infra.Metrics,
		log,
	)
	listBookingsUC := ucBooking.NewListBookings(bookingRepo)

	// ======================================================
	// HANDLERS
	// ======================================================
	authHandler := handlers.NewAuthHandler(salonRepo, cfg, log)
	meHandler := handlers.NewMeHandler(salonRepo, log)
	barberHandler := handlers.NewBarberHandler(salonRepo, log)
	slotHandler := handlers.NewSlotHandler(createSlotUC, listSlotsUC, toggleSlotUC, deleteSlotUC, log)
	bookingHandler := handlers.NewBookingHandler(confirmBookingUC, listBookingsUC, log)
	leaveHandler := handlers.NewLeaveHandler(
		requestLeaveUC,
		decideLeaveUC,
		listLeavesUC,
		checkAvailabilityUC,
		infra.Broker,
		log,
	)
	publicHandler := handlers.NewPublicHandler(salonRepo, listSlotsUC, log)
	auditLogsHandler := handlers.NewAuditLogsHandler(db, log)

	limiter := middleware.NewRateLimiter(cfg.RateLimitRPS, cfg.RateLimitBurst)

	staff := middleware.RequireRole(models.RoleOwner, models.RoleBarber)
	owner := middleware.RequireRole(models.RoleOwner)

	// ======================================================
	// API (JSON)
	// ======================================================
	api := r.Group("/api")
	{
		// ------------------------------
		// PUBLIC
		// ------------------------------
		publicAPI := api.Group("/public", limiter.Middleware())
		{
			publicAPI.GET("/:slug", publicHandler.GetSalon)
			publicAPI.GET("/:slug/slots", publicHandler.Slots)
		}

		// ------------------------------
		// AUTH
		// ------------------------------
		authAPI := api.Group("/auth", limiter.Middleware())
		{
			authAPI.POST("/register", authHandler.Register)
			authAPI.POST("/register/customer", authHandler.RegisterCustomer)
			authAPI.POST("/login", authHandler.Login)
		}

		// ------------------------------
		// PRIVATE
		// ------------------------------
		secured := api.Group("/me")
		secured.Use(middleware.AuthMiddleware(cfg))
		{
			secured.GET("", meHandler.GetMe)

			// bookings are open to every signed-in role
			secured.POST("/bookings", bookingHandler.Confirm)
			secured.GET("/bookings", bookingHandler.List)

			salon := secured.Group("", middleware.RequireSalon())
			{
				salon.GET("/salon", staff, meHandler.GetSalon)
				salon.PATCH("/salon", owner, meHandler.UpdateSalon)

				salon.GET("/barbers", staff, barberHandler.List)
				salon.POST("/barbers", owner, barberHandler.Create)

				// ------------------------------
				// SLOTS
				// ------------------------------
				salon.POST("/slots", staff, slotHandler.Create)
				salon.GET("/slots", staff, slotHandler.List)
				salon.PATCH("/slots/:id/toggle", staff, slotHandler.Toggle)
				salon.DELETE("/slots/:id", owner, slotHandler.Delete)

				// ------------------------------
				// LEAVES
				// ------------------------------
				salon.POST("/leaves", staff, leaveHandler.Create)
				salon.GET("/leaves", staff, leaveHandler.List)
				salon.GET("/leaves/live", owner, leaveHandler.Live)
				salon.PATCH("/leaves/:id/approve", owner, leaveHandler.Approve)
				salon.PATCH("/leaves/:id/reject", owner, leaveHandler.Reject)

				salon.GET("/availability", staff, leaveHandler.Availability)

				salon.GET("/audit-logs", owner, auditLogsHandler.List)
			}
		}
	}
}
