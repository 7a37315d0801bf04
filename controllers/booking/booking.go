package booking

import (
	"errors"
	"strconv"

	"stagelink/logger"
	artistModel "stagelink/models/artist"
	venueModel "stagelink/models/venue"
	"stagelink/services/negotiation"
	"stagelink/services/pitch"
	"stagelink/types"
	bookingTypes "stagelink/types/booking"
	"stagelink/utils"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// BookingController exposes the negotiation engine over HTTP
type BookingController struct {
	DB      *gorm.DB
	Service *negotiation.Service
	Pitch   *pitch.Service
}

func NewBookingController(db *gorm.DB, service *negotiation.Service, pitchService *pitch.Service) *BookingController {
	return &BookingController{DB: db, Service: service, Pitch: pitchService}
}

// negotiationStatus maps the negotiation error taxonomy to HTTP statuses.
func negotiationStatus(err error) (int, string) {
	switch {
	case errors.Is(err, negotiation.ErrValidation):
		return fiber.StatusBadRequest, err.Error()
	case errors.Is(err, negotiation.ErrNotFound):
		return fiber.StatusNotFound, "Booking request, artist, or venue not found"
	case errors.Is(err, negotiation.ErrForbidden):
		return fiber.StatusForbidden, "You are not a party to this booking request"
	case errors.Is(err, negotiation.ErrInvalidState):
		return fiber.StatusConflict, "Booking request has already been processed"
	default:
		return fiber.StatusInternalServerError, "Failed to process booking request"
	}
}

// Create opens a new booking request
func (bc *BookingController) Create(c *fiber.Ctx) error {
	var req bookingTypes.BookingCreateRequest
	if err := c.BodyParser(&req); err != nil {
		logger.Error("Failed to parse booking create request body", err)
		return c.Status(fiber.StatusBadRequest).JSON(types.ApiResponse{
			Message: "Invalid request body",
			Status:  fiber.StatusBadRequest,
		})
	}

	if err := req.Validate(); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(types.ApiResponse{
			Message: err.Error(),
			Status:  fiber.StatusBadRequest,
		})
	}
	if err := utils.ValidateStruct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(types.ApiResponse{
			Message: err.Error(),
			Status:  fiber.StatusBadRequest,
		})
	}

	userID, ok := c.Locals("userID").(uint)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(types.ApiResponse{
			Message: "Invalid user claims",
			Status:  fiber.StatusUnauthorized,
		})
	}

	created, err := bc.Service.Create(c.Context(), userID, negotiation.CreateParams{
		ArtistID:        req.ArtistID,
		VenueID:         req.VenueID,
		ProposedDate:    req.ProposedDate,
		ProposedEndDate: req.ProposedEndDate,
		ProposedFee:     req.ProposedFee,
		Message:         req.Message,
	})
	if err != nil {
		status, msg := negotiationStatus(err)
		if status == fiber.StatusInternalServerError {
			logger.Error("Failed to create booking request", err)
		}
		return c.Status(status).JSON(types.ApiResponse{
			Message: msg,
			Status:  status,
		})
	}

	return c.Status(fiber.StatusCreated).JSON(types.ApiResponse{
		Message: "Booking request created successfully",
		Status:  fiber.StatusCreated,
		Data:    created,
	})
}

// Respond applies accept, reject, or counter_offer to a pending request
func (bc *BookingController) Respond(c *fiber.Ctx) error {
	bookingID, err := strconv.ParseUint(c.Params("id"), 10, 32)
	if err != nil || bookingID == 0 {
		return c.Status(fiber.StatusBadRequest).JSON(types.ApiResponse{
			Message: "Invalid booking ID",
			Status:  fiber.StatusBadRequest,
		})
	}

	var req bookingTypes.BookingActionRequest
	if err := c.BodyParser(&req); err != nil {
		logger.Error("Failed to parse booking action request body", err)
		return c.Status(fiber.StatusBadRequest).JSON(types.ApiResponse{
			Message: "Invalid request body",
			Status:  fiber.StatusBadRequest,
		})
	}

	if err := req.Validate(); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(types.ApiResponse{
			Message: err.Error(),
			Status:  fiber.StatusBadRequest,
		})
	}

	userID, ok := c.Locals("userID").(uint)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(types.ApiResponse{
			Message: "Invalid user claims",
			Status:  fiber.StatusUnauthorized,
		})
	}

	updated, err := bc.Service.Respond(c.Context(), uint(bookingID), userID, req.Action, req.CounterOfferFee, req.CounterOfferMessage)
	if err != nil {
		status, msg := negotiationStatus(err)
		if status == fiber.StatusInternalServerError {
			logger.Error("Failed to respond to booking request", err)
		}
		return c.Status(status).JSON(types.ApiResponse{
			Message: msg,
			Status:  status,
		})
	}

	return c.Status(fiber.StatusOK).JSON(types.ApiResponse{
		Message: "Booking request updated successfully",
		Status:  fiber.StatusOK,
		Data:    updated,
	})
}

// Show returns one booking request to a party
func (bc *BookingController) Show(c *fiber.Ctx) error {
	bookingID, err := strconv.ParseUint(c.Params("id"), 10, 32)
	if err != nil || bookingID == 0 {
		return c.Status(fiber.StatusBadRequest).JSON(types.ApiResponse{
			Message: "Invalid booking ID",
			Status:  fiber.StatusBadRequest,
		})
	}

	userID, ok := c.Locals("userID").(uint)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(types.ApiResponse{
			Message: "Invalid user claims",
			Status:  fiber.StatusUnauthorized,
		})
	}

	req, err := bc.Service.Get(c.Context(), uint(bookingID), userID)
	if err != nil {
		status, msg := negotiationStatus(err)
		if status == fiber.StatusInternalServerError {
			logger.Error("Failed to fetch booking request", err)
		}
		return c.Status(status).JSON(types.ApiResponse{
			Message: msg,
			Status:  status,
		})
	}

	return c.Status(fiber.StatusOK).JSON(types.ApiResponse{
		Message: "Booking request fetched successfully",
		Status:  fiber.StatusOK,
		Data:    req,
	})
}

// ArtistIndex lists all booking requests for the caller's artist profile
func (bc *BookingController) ArtistIndex(c *fiber.Ctx) error {
	userID, ok := c.Locals("userID").(uint)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(types.ApiResponse{
			Message: "Invalid user claims",
			Status:  fiber.StatusUnauthorized,
		})
	}

	var profile artistModel.Artist
	if err := bc.DB.Where("user_id = ?", userID).First(&profile).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(types.ApiResponse{
			Message: "Artist profile not found",
			Status:  fiber.StatusNotFound,
		})
	}

	bookings, err := bc.Service.ListForArtist(c.Context(), profile.ID)
	if err != nil {
		logger.Error("Failed to list artist bookings", err)
		return c.Status(fiber.StatusInternalServerError).JSON(types.ApiResponse{
			Message: "Failed to fetch bookings",
			Status:  fiber.StatusInternalServerError,
		})
	}

	return c.Status(fiber.StatusOK).JSON(types.ApiResponse{
		Message: "Bookings fetched successfully",
		Status:  fiber.StatusOK,
		Data:    bookings,
	})
}

// VenueIndex lists all booking requests for the caller's venue profile
func (bc *BookingController) VenueIndex(c *fiber.Ctx) error {
	userID, ok := c.Locals("userID").(uint)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(types.ApiResponse{
			Message: "Invalid user claims",
			Status:  fiber.StatusUnauthorized,
		})
	}

	var profile venueModel.Venue
	if err := bc.DB.Where("user_id = ?", userID).First(&profile).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(types.ApiResponse{
			Message: "Venue profile not found",
			Status:  fiber.StatusNotFound,
		})
	}

	bookings, err := bc.Service.ListForVenue(c.Context(), profile.ID)
	if err != nil {
		logger.Error("Failed to list venue bookings", err)
		return c.Status(fiber.StatusInternalServerError).JSON(types.ApiResponse{
			Message: "Failed to fetch bookings",
			Status:  fiber.StatusInternalServerError,
		})
	}

	return c.Status(fiber.StatusOK).JSON(types.ApiResponse{
		Message: "Bookings fetched successfully",
		Status:  fiber.StatusOK,
		Data:    bookings,
	})
}
