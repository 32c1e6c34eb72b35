package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/MikyMack/Blushley-full-sub000/internal/audit"
	"github.com/MikyMack/Blushley-full-sub000/internal/cache"
	"github.com/MikyMack/Blushley-full-sub000/internal/config"
	"github.com/MikyMack/Blushley-full-sub000/internal/events"
	"github.com/MikyMack/Blushley-full-sub000/internal/handlers"
	infraRepo "github.com/MikyMack/Blushley-full-sub000/internal/infra/repository"
	"github.com/MikyMack/Blushley-full-sub000/internal/middleware"
	"github.com/MikyMack/Blushley-full-sub000/internal/storage"
	ucBooking "github.com/MikyMack/Blushley-full-sub000/internal/usecase/booking"
)

type Deps struct {
	DB        *gorm.DB
	Config    *config.Config
	Schedules *cache.ScheduleCache
	Events    *events.Publisher
	Uploader  *storage.Uploader
}

func RegisterRoutes(r *gin.Engine, deps Deps) {

	db := deps.DB
	cfg := deps.Config

	// ======================================================
	// INFRA (SINGLETONS)
	// ======================================================
	bookingRepo := infraRepo.NewBookingGormRepository(db, deps.Schedules)

	auditLogger := audit.New(db)
	auditDispatcher := audit.NewDispatcher(auditLogger)

	// ======================================================
	// USE CASES — BOOKINGS
	// ======================================================
	slotsUC := ucBooking.NewGetAvailableSlots(bookingRepo)

	createBookingUC := ucBooking.NewCreateBooking(
		bookingRepo,
		auditDispatcher,
		deps.Events,
	)

	cancelBookingUC := ucBooking.NewCancelBooking(
		bookingRepo,
		auditDispatcher,
		deps.Events,
	)

	salonActionUC := ucBooking.NewSalonAction(
		bookingRepo,
		auditDispatcher,
		deps.Events,
	)

	listUserBookingsUC := ucBooking.NewListUserBookings(bookingRepo)
	listSalonBookingsUC := ucBooking.NewListSalonBookings(bookingRepo)

	// ======================================================
	// HANDLERS
	// ======================================================
	authHandler := handlers.NewAuthHandler(db, cfg)
	meHandler := handlers.NewMeHandler(db)

	publicHandler := handlers.NewPublicHandler(db, slotsUC)

	bookingHandler := handlers.NewBookingHandler(
		createBookingUC,
		cancelBookingUC,
		listUserBookingsUC,
	)
	addressHandler := handlers.NewAddressHandler(db)

	salonHandler := handlers.NewSalonHandler(db, deps.Uploader)
	scheduleHandler := handlers.NewScheduleHandler(db, deps.Schedules)
	salonServiceHandler := handlers.NewSalonServiceHandler(db, auditDispatcher)
	salonBookingHandler := handlers.NewSalonBookingHandler(
		db,
		listSalonBookingsUC,
		salonActionUC,
	)
	auditLogsHandler := handlers.NewAuditLogsHandler(db)

	productHandler := handlers.NewProductHandler(db, deps.Uploader)

	// ======================================================
	// API (JSON)
	// ======================================================
	api := r.Group("/api")
	{
		// ------------------------------
		// PUBLIC
		// ------------------------------
		publicAPI := api.Group("/public")
		{
			publicAPI.GET("/salons", publicHandler.ListSalons)
			publicAPI.GET("/salons/:slug", publicHandler.GetSalon)
			publicAPI.GET("/salons/:slug/availability", publicHandler.Availability)
			publicAPI.GET("/products", publicHandler.ListProducts)
		}

		// ------------------------------
		// AUTH
		// ------------------------------
		api.POST("/auth/register", authHandler.Register)
		api.POST("/auth/register-salon", authHandler.RegisterSalon)
		api.POST("/auth/login", authHandler.Login)

		// ------------------------------
		// PRIVATE
		// ------------------------------
		secured := api.Group("/")
		secured.Use(middleware.AuthMiddleware(cfg))
		{
			secured.GET("/me", meHandler.Get)
			secured.PATCH("/me", meHandler.Update)

			// ------------------------------
			// CUSTOMER
			// ------------------------------
			secured.GET("/me/addresses", addressHandler.List)
			secured.POST("/me/addresses", addressHandler.Create)
			secured.DELETE("/me/addresses/:id", addressHandler.Delete)

			secured.POST("/me/bookings", bookingHandler.Create)
			secured.GET("/me/bookings", bookingHandler.List)
			secured.PATCH("/me/bookings/:id/cancel", bookingHandler.Cancel)

			// ------------------------------
			// SALON OWNER
			// ------------------------------
			owner := secured.Group("/me/salon")
			owner.Use(middleware.RequireSalon())
			{
				owner.GET("", salonHandler.GetMine)
				owner.PATCH("", salonHandler.UpdateMine)
				owner.POST("/image", salonHandler.UploadImage)

				owner.GET("/schedule", scheduleHandler.Get)
				owner.PUT("/schedule", scheduleHandler.Update)
				owner.PUT("/closed-dates", scheduleHandler.UpdateClosedDates)

				owner.GET("/services", salonServiceHandler.List)
				owner.POST("/services", salonServiceHandler.Create)
				owner.PATCH("/services/:id", salonServiceHandler.Update)

				owner.GET("/bookings", salonBookingHandler.ListByDate)
				owner.PATCH("/bookings/:id/confirm", salonBookingHandler.Confirm)
				owner.PATCH("/bookings/:id/complete", salonBookingHandler.Complete)
				owner.PATCH("/bookings/:id/reject", salonBookingHandler.Reject)
				owner.PATCH("/bookings/:id/cancel", salonBookingHandler.Cancel)

				owner.GET("/audit-logs", auditLogsHandler.List)
			}

			// ------------------------------
			// RESELLER
			// ------------------------------
			reseller := secured.Group("/me/products")
			reseller.Use(middleware.RequireRole("reseller"))
			{
				reseller.GET("", productHandler.ListMine)
				reseller.POST("", productHandler.Create)
				reseller.PATCH("/:id", productHandler.Update)
				reseller.POST("/:id/image", productHandler.UploadImage)
			}
		}
	}
}
