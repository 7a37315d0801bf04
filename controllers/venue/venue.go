package venue

import (
	"errors"
	"strconv"
	"time"

	"stagelink/constants"
	"stagelink/logger"
	bookingModel "stagelink/models/booking"
	eventModel "stagelink/models/event"
	userModel "stagelink/models/user"
	venueModel "stagelink/models/venue"
	"stagelink/types"
	venueTypes "stagelink/types/venue"
	"stagelink/utils"

	"github.com/gofiber/fiber/v2"
	"github.com/jinzhu/now"
	"gorm.io/gorm"
)

// VenueController handles venue profile and dashboard requests
type VenueController struct {
	DB       *gorm.DB
	Activity *logger.ActivityLogger
}

func NewVenueController(db *gorm.DB, activityLogger *logger.ActivityLogger) *VenueController {
	return &VenueController{DB: db, Activity: activityLogger}
}

func (vc *VenueController) ownProfile(c *fiber.Ctx) (*venueModel.Venue, error) {
	userID, ok := c.Locals("userID").(uint)
	if !ok {
		return nil, errors.New("invalid user claims")
	}

	var profile venueModel.Venue
	if err := vc.DB.Preload("User").Where("user_id = ?", userID).First(&profile).Error; err != nil {
		return nil, err
	}
	return &profile, nil
}

// Show returns the caller's own venue profile
func (vc *VenueController) Show(c *fiber.Ctx) error {
	profile, err := vc.ownProfile(c)
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(types.ApiResponse{
			Message: "Venue profile not found",
			Status:  fiber.StatusNotFound,
		})
	}

	return c.Status(fiber.StatusOK).JSON(types.ApiResponse{
		Message: "Venue profile fetched successfully",
		Status:  fiber.StatusOK,
		Data:    profile,
	})
}

// ShowPublic returns any venue profile by id
func (vc *VenueController) ShowPublic(c *fiber.Ctx) error {
	venueID, err := strconv.ParseUint(c.Params("id"), 10, 32)
	if err != nil || venueID == 0 {
		return c.Status(fiber.StatusBadRequest).JSON(types.ApiResponse{
			Message: "Invalid venue ID",
			Status:  fiber.StatusBadRequest,
		})
	}

	var profile venueModel.Venue
	if err := vc.DB.Preload("User").First(&profile, uint(venueID)).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(types.ApiResponse{
			Message: "Venue profile not found",
			Status:  fiber.StatusNotFound,
		})
	}

	return c.Status(fiber.StatusOK).JSON(types.ApiResponse{
		Message: "Venue profile fetched successfully",
		Status:  fiber.StatusOK,
		Data:    profile,
	})
}

// Update edits the caller's venue profile, creating it on first use
func (vc *VenueController) Update(c *fiber.Ctx) error {
	var req venueTypes.VenueProfileUpdateRequest
	if err := c.BodyParser(&req); err != nil {
		logger.Error("Failed to parse venue profile request body", err)
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

	var profile venueModel.Venue
	err := vc.DB.Where("user_id = ?", userID).First(&profile).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		profile = venueModel.Venue{UserID: userID}
	} else if err != nil {
		logger.Error("Database error while loading venue profile", err)
		return c.Status(fiber.StatusInternalServerError).JSON(types.ApiResponse{
			Message: "Database error",
			Status:  fiber.StatusInternalServerError,
		})
	}

	profile.Name = req.Name
	profile.Description = req.Description
	profile.Address = req.Address
	profile.City = req.City
	profile.State = req.State
	profile.Country = req.Country
	profile.PostalCode = req.PostalCode
	profile.Capacity = req.Capacity
	profile.ContactEmail = req.ContactEmail
	profile.ContactPhone = req.ContactPhone
	if req.Amenities != nil {
		profile.Amenities = userModel.StringList(req.Amenities)
	}

	if err := vc.DB.Save(&profile).Error; err != nil {
		logger.Error("Failed to save venue profile", err)
		return c.Status(fiber.StatusInternalServerError).JSON(types.ApiResponse{
			Message: "Failed to update profile",
			Status:  fiber.StatusInternalServerError,
		})
	}

	vc.Activity.RecordWithIP(userID, constants.EntityVenue, profile.ID, "updated venue profile", c.IP())

	return c.Status(fiber.StatusOK).JSON(types.ApiResponse{
		Message: "Venue profile updated successfully",
		Status:  fiber.StatusOK,
		Data:    profile,
	})
}

// Stats returns the venue dashboard counters
func (vc *VenueController) Stats(c *fiber.Ctx) error {
	profile, err := vc.ownProfile(c)
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(types.ApiResponse{
			Message: "Venue profile not found",
			Status:  fiber.StatusNotFound,
		})
	}

	monthStart := now.BeginningOfMonth()
	monthEnd := now.EndOfMonth()

	var stats venueTypes.VenueStats
	vc.DB.Model(&bookingModel.BookingRequest{}).
		Where("venue_id = ? AND status = ?", profile.ID, bookingModel.BookingStatusPending).
		Count(&stats.PendingRequests)
	vc.DB.Model(&bookingModel.BookingRequest{}).
		Where("venue_id = ? AND status = ? AND updated_at BETWEEN ? AND ?",
			profile.ID, bookingModel.BookingStatusAccepted, monthStart, monthEnd).
		Count(&stats.AcceptedThisMonth)
	vc.DB.Model(&eventModel.Event{}).
		Where("venue_id = ? AND status = ? AND event_date > ?",
			profile.ID, eventModel.EventStatusPublished, time.Now()).
		Count(&stats.UpcomingEvents)

	return c.Status(fiber.StatusOK).JSON(types.ApiResponse{
		Message: "Venue stats fetched successfully",
		Status:  fiber.StatusOK,
		Data:    stats,
	})
}
