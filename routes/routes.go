package routes

import (
	"stagelink/controllers/artist"
	"stagelink/controllers/auth"
	"stagelink/controllers/booking"
	"stagelink/controllers/event"
	"stagelink/controllers/venue"
	"stagelink/logger"
	"stagelink/middleware"
	userModel "stagelink/models/user"
	"stagelink/services/negotiation"
	"stagelink/services/pitch"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

func SetupRoutes(app *fiber.App, db *gorm.DB) {
	activityLogger := logger.NewActivityLogger(db)
	negotiationService := negotiation.NewService(
		negotiation.NewGormBookingStore(db),
		negotiation.NewGormProfileDirectory(db),
		activityLogger,
	)
	pitchService := pitch.NewService()

	authController := auth.NewAuthController(db, activityLogger)
	bookingController := booking.NewBookingController(db, negotiationService, pitchService)
	artistController := artist.NewArtistController(db, activityLogger)
	venueController := venue.NewVenueController(db, activityLogger)
	eventController := event.NewEventController(db, negotiationService, activityLogger)

	// Start the activity logger processing goroutine
	go activityLogger.ProcessEntries()

	// Index route
	app.Get("/", func(c *fiber.Ctx) error {
		return c.SendString("StageLink API")
	})

	/*=============================================================================
	| Public Routes
	===============================================================================*/
	api := app.Group("/api")
	api.Post("/register", authController.Register)
	api.Post("/login", authController.Login)
	api.Get("/artists/:id/profile", artistController.ShowPublic)
	api.Get("/venues/:id/profile", venueController.ShowPublic)
	api.Get("/events/upcoming", eventController.Upcoming)

	/*=============================================================================
	| Session Routes
	===============================================================================*/
	authGroup := api.Group("/auth").Use(middleware.RequireAuth())
	authGroup.Get("/profile", authController.Profile)
	authGroup.Post("/logout", authController.Logout)

	/*=============================================================================
	| Artist Routes
	===============================================================================*/
	artistGroup := api.Group("/artist").Use(middleware.RequireAuth(), middleware.RequireRole(userModel.RoleArtist, userModel.RoleAdmin))
	artistGroup.Get("/profile", artistController.Show)
	artistGroup.Put("/profile", artistController.Update)
	artistGroup.Get("/stats", artistController.Stats)
	artistGroup.Get("/bookings", bookingController.ArtistIndex)

	/*=============================================================================
	| Venue Routes
	===============================================================================*/
	venueGroup := api.Group("/venue").Use(middleware.RequireAuth(), middleware.RequireRole(userModel.RoleVenue, userModel.RoleAdmin))
	venueGroup.Get("/profile", venueController.Show)
	venueGroup.Put("/profile", venueController.Update)
	venueGroup.Get("/stats", venueController.Stats)
	venueGroup.Get("/bookings", bookingController.VenueIndex)

	/*=============================================================================
	| Booking Routes
	===============================================================================*/
	bookingGroup := api.Group("/booking").Use(middleware.RequireAuth())
	bookingGroup.Post("/create", bookingController.Create)
	bookingGroup.Post("/suggest-pitch", bookingController.SuggestPitch)
	bookingGroup.Get("/:id", bookingController.Show)
	bookingGroup.Post("/:id/action", bookingController.Respond)
	bookingGroup.Post("/:id/event", eventController.CreateFromBooking)
}
