package event

import (
	"errors"
	"fmt"
	"strconv"
	"time"

	"stagelink/constants"
	"stagelink/logger"
	bookingModel "stagelink/models/booking"
	eventModel "stagelink/models/event"
	userModel "stagelink/models/user"
	"stagelink/services/negotiation"
	"stagelink/types"
	eventTypes "stagelink/types/event"
	"stagelink/utils"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// EventController publishes events out of accepted bookings and serves
// public event listings
type EventController struct {
	DB       *gorm.DB
	Service  *negotiation.Service
	Activity *logger.ActivityLogger
}

func NewEventController(db *gorm.DB, service *negotiation.Service, activityLogger *logger.ActivityLogger) *EventController {
	return &EventController{DB: db, Service: service, Activity: activityLogger}
}

// CreateFromBooking converts an accepted booking request into a published
// event and sets the event back-link on the booking. The back-link write is
// conditioned on the booking still being accepted and unlinked, so double
// publishing loses cleanly.
func (ec *EventController) CreateFromBooking(c *fiber.Ctx) error {
	bookingID, err := strconv.ParseUint(c.Params("id"), 10, 32)
	if err != nil || bookingID == 0 {
		return c.Status(fiber.StatusBadRequest).JSON(types.ApiResponse{
			Message: "Invalid booking ID",
			Status:  fiber.StatusBadRequest,
		})
	}

	var req eventTypes.EventFromBookingRequest
	if err := c.BodyParser(&req); err != nil {
		logger.Error("Failed to parse event request body", err)
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

	// The negotiation service enforces the party check.
	booking, err := ec.Service.Get(c.Context(), uint(bookingID), userID)
	if err != nil {
		switch {
		case errors.Is(err, negotiation.ErrNotFound):
			return c.Status(fiber.StatusNotFound).JSON(types.ApiResponse{
				Message: "Booking request not found",
				Status:  fiber.StatusNotFound,
			})
		case errors.Is(err, negotiation.ErrForbidden):
			return c.Status(fiber.StatusForbidden).JSON(types.ApiResponse{
				Message: "You are not a party to this booking request",
				Status:  fiber.StatusForbidden,
			})
		default:
			logger.Error("Failed to load booking for event", err)
			return c.Status(fiber.StatusInternalServerError).JSON(types.ApiResponse{
				Message: "Failed to publish event",
				Status:  fiber.StatusInternalServerError,
			})
		}
	}

	if booking.Status != bookingModel.BookingStatusAccepted {
		return c.Status(fiber.StatusConflict).JSON(types.ApiResponse{
			Message: "Only accepted booking requests can be published as events",
			Status:  fiber.StatusConflict,
		})
	}
	if booking.EventID != nil {
		return c.Status(fiber.StatusConflict).JSON(types.ApiResponse{
			Message: "Booking request already has an event",
			Status:  fiber.StatusConflict,
		})
	}

	venueID := booking.VenueID
	ev := eventModel.Event{
		ArtistID:       booking.ArtistID,
		VenueID:        &venueID,
		Title:          req.Title,
		Description:    req.Description,
		EventDate:      booking.ProposedDate,
		DoorTime:       req.DoorTime,
		EndTime:        booking.ProposedEndDate,
		Status:         eventModel.EventStatusPublished,
		TicketPrice:    req.TicketPrice,
		TicketCapacity: req.TicketCapacity,
	}
	if req.Genres != nil {
		ev.Genres = userModel.StringList(req.Genres)
	}

	err = ec.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&ev).Error; err != nil {
			return err
		}

		res := tx.Model(&bookingModel.BookingRequest{}).
			Where("id = ? AND status = ? AND event_id IS NULL", booking.ID, bookingModel.BookingStatusAccepted).
			Update("event_id", ev.ID)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return errors.New("booking request changed while publishing")
		}
		return nil
	})
	if err != nil {
		logger.Error("Failed to publish event from booking", err)
		return c.Status(fiber.StatusConflict).JSON(types.ApiResponse{
			Message: "Failed to publish event",
			Status:  fiber.StatusConflict,
		})
	}

	logger.Success(fmt.Sprintf("Event %d published from booking request %d", ev.ID, booking.ID))
	ec.Activity.RecordWithIP(userID, constants.EntityEvent, ev.ID, "published event", c.IP())

	return c.Status(fiber.StatusCreated).JSON(types.ApiResponse{
		Message: "Event published successfully",
		Status:  fiber.StatusCreated,
		Data:    ev,
	})
}

// Upcoming lists published events with a future date
func (ec *EventController) Upcoming(c *fiber.Ctx) error {
	var events []eventModel.Event
	err := ec.DB.
		Preload("Artist").Preload("Venue").
		Where("status = ? AND event_date > ?", eventModel.EventStatusPublished, time.Now()).
		Order("event_date").
		Limit(50).
		Find(&events).Error
	if err != nil {
		logger.Error("Failed to list upcoming events", err)
		return c.Status(fiber.StatusInternalServerError).JSON(types.ApiResponse{
			Message: "Failed to fetch events",
			Status:  fiber.StatusInternalServerError,
		})
	}

	return c.Status(fiber.StatusOK).JSON(types.ApiResponse{
		Message: "Upcoming events fetched successfully",
		Status:  fiber.StatusOK,
		Data:    events,
	})
}
