package booking

import (
	"stagelink/logger"
	artistModel "stagelink/models/artist"
	venueModel "stagelink/models/venue"
	"stagelink/services/pitch"
	"stagelink/types"
	bookingTypes "stagelink/types/booking"
	"stagelink/utils"

	"github.com/gofiber/fiber/v2"
)

// SuggestPitch drafts a booking request message with the Gemini API.
func (bc *BookingController) SuggestPitch(c *fiber.Ctx) error {
	var req bookingTypes.PitchSuggestRequest
	if err := c.BodyParser(&req); err != nil {
		logger.Error("Failed to parse pitch request body", err)
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

	var artist artistModel.Artist
	if err := bc.DB.First(&artist, req.ArtistID).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(types.ApiResponse{
			Message: "Artist profile not found",
			Status:  fiber.StatusNotFound,
		})
	}
	var venue venueModel.Venue
	if err := bc.DB.First(&venue, req.VenueID).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(types.ApiResponse{
			Message: "Venue profile not found",
			Status:  fiber.StatusNotFound,
		})
	}

	suggestion, err := bc.Pitch.Suggest(c.Context(), pitch.Params{
		Artist:       &artist,
		Venue:        &venue,
		ProposedDate: req.ProposedDate,
		ProposedFee:  req.ProposedFee,
	})
	if err != nil {
		logger.Error("Failed to generate pitch suggestion", err)
		return c.Status(fiber.StatusBadGateway).JSON(types.ApiResponse{
			Message: "Failed to generate pitch suggestion",
			Status:  fiber.StatusBadGateway,
		})
	}

	return c.Status(fiber.StatusOK).JSON(types.ApiResponse{
		Message: "Pitch suggestion generated successfully",
		Status:  fiber.StatusOK,
		Data:    suggestion,
	})
}
