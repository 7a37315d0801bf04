package artist

import (
	"errors"
	"strconv"
	"time"

	"stagelink/constants"
	"stagelink/logger"
	artistModel "stagelink/models/artist"
	bookingModel "stagelink/models/booking"
	eventModel "stagelink/models/event"
	userModel "stagelink/models/user"
	"stagelink/types"
	artistTypes "stagelink/types/artist"
	"stagelink/utils"

	"github.com/gofiber/fiber/v2"
	"github.com/jinzhu/now"
	"gorm.io/gorm"
)

// ArtistController handles artist profile and dashboard requests
type ArtistController struct {
	DB       *gorm.DB
	Activity *logger.ActivityLogger
}

func NewArtistController(db *gorm.DB, activityLogger *logger.ActivityLogger) *ArtistController {
	return &ArtistController{DB: db, Activity: activityLogger}
}

func (ac *ArtistController) ownProfile(c *fiber.Ctx) (*artistModel.Artist, error) {
	userID, ok := c.Locals("userID").(uint)
	if !ok {
		return nil, errors.New("invalid user claims")
	}

	var profile artistModel.Artist
	if err := ac.DB.Preload("User").Where("user_id = ?", userID).First(&profile).Error; err != nil {
		return nil, err
	}
	return &profile, nil
}

// Show returns the caller's own artist profile
func (ac *ArtistController) Show(c *fiber.Ctx) error {
	profile, err := ac.ownProfile(c)
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(types.ApiResponse{
			Message: "Artist profile not found",
			Status:  fiber.StatusNotFound,
		})
	}

	return c.Status(fiber.StatusOK).JSON(types.ApiResponse{
		Message: "Artist profile fetched successfully",
		Status:  fiber.StatusOK,
		Data:    profile,
	})
}

// ShowPublic returns any artist profile by id
func (ac *ArtistController) ShowPublic(c *fiber.Ctx) error {
	artistID, err := strconv.ParseUint(c.Params("id"), 10, 32)
	if err != nil || artistID == 0 {
		return c.Status(fiber.StatusBadRequest).JSON(types.ApiResponse{
			Message: "Invalid artist ID",
			Status:  fiber.StatusBadRequest,
		})
	}

	var profile artistModel.Artist
	if err := ac.DB.Preload("User").First(&profile, uint(artistID)).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(types.ApiResponse{
			Message: "Artist profile not found",
			Status:  fiber.StatusNotFound,
		})
	}

	return c.Status(fiber.StatusOK).JSON(types.ApiResponse{
		Message: "Artist profile fetched successfully",
		Status:  fiber.StatusOK,
		Data:    profile,
	})
}

// Update edits the caller's artist profile, creating it on first use
func (ac *ArtistController) Update(c *fiber.Ctx) error {
	var req artistTypes.ArtistProfileUpdateRequest
	if err := c.BodyParser(&req); err != nil {
		logger.Error("Failed to parse artist profile request body", err)
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

	var profile artistModel.Artist
	err := ac.DB.Where("user_id = ?", userID).First(&profile).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		profile = artistModel.Artist{UserID: userID}
	} else if err != nil {
		logger.Error("Database error while loading artist profile", err)
		return c.Status(fiber.StatusInternalServerError).JSON(types.ApiResponse{
			Message: "Database error",
			Status:  fiber.StatusInternalServerError,
		})
	}

	profile.StageName = req.StageName
	profile.Bio = req.Bio
	if req.Genres != nil {
		profile.Genres = userModel.StringList(req.Genres)
	}
	if req.SocialLinks != nil {
		profile.SocialLinks = userModel.StringMap(req.SocialLinks)
	}

	if err := ac.DB.Save(&profile).Error; err != nil {
		logger.Error("Failed to save artist profile", err)
		return c.Status(fiber.StatusInternalServerError).JSON(types.ApiResponse{
			Message: "Failed to update profile",
			Status:  fiber.StatusInternalServerError,
		})
	}

	ac.Activity.RecordWithIP(userID, constants.EntityArtist, profile.ID, "updated artist profile", c.IP())

	return c.Status(fiber.StatusOK).JSON(types.ApiResponse{
		Message: "Artist profile updated successfully",
		Status:  fiber.StatusOK,
		Data:    profile,
	})
}

// Stats returns the artist dashboard counters
func (ac *ArtistController) Stats(c *fiber.Ctx) error {
	profile, err := ac.ownProfile(c)
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(types.ApiResponse{
			Message: "Artist profile not found",
			Status:  fiber.StatusNotFound,
		})
	}

	monthStart := now.BeginningOfMonth()
	monthEnd := now.EndOfMonth()

	var stats artistTypes.ArtistStats
	ac.DB.Model(&bookingModel.BookingRequest{}).
		Where("artist_id = ? AND status = ?", profile.ID, bookingModel.BookingStatusPending).
		Count(&stats.PendingRequests)
	ac.DB.Model(&bookingModel.BookingRequest{}).
		Where("artist_id = ? AND status = ? AND updated_at BETWEEN ? AND ?",
			profile.ID, bookingModel.BookingStatusAccepted, monthStart, monthEnd).
		Count(&stats.AcceptedThisMonth)
	ac.DB.Model(&eventModel.Event{}).
		Where("artist_id = ? AND status = ? AND event_date > ?",
			profile.ID, eventModel.EventStatusPublished, time.Now()).
		Count(&stats.UpcomingEvents)

	return c.Status(fiber.StatusOK).JSON(types.ApiResponse{
		Message: "Artist stats fetched successfully",
		Status:  fiber.StatusOK,
		Data:    stats,
	})
}
