package handlers

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"brightpath/models"
	"brightpath/services/scheduling"
)

// Illustrative slots served while the calendar integration is unconfigured,
// so the scheduling widget never looks broken during local development or
// disconnected demos.
var mockSlots = []string{"10:00 AM", "11:00 AM", "2:00 PM", "4:00 PM"}

// AppointmentHandler is the boundary between the HTTP payloads and the
// scheduling services. Configured is injected at construction; the request
// path never consults ambient state.
type AppointmentHandler struct {
	Booking      scheduling.BookingService
	Availability scheduling.AvailabilityService
	Configured   bool
	Logger       *zap.Logger
}

func NewAppointmentHandler(booking scheduling.BookingService, availability scheduling.AvailabilityService, configured bool, logger *zap.Logger) *AppointmentHandler {
	return &AppointmentHandler{
		Booking:      booking,
		Availability: availability,
		Configured:   configured,
		Logger:       logger,
	}
}

// CreateAppointment handles POST /api/appointments.
func (h *AppointmentHandler) CreateAppointment(c *gin.Context) {
	var input struct {
		AppointmentDetails *models.AppointmentRequest `json:"appointmentDetails"`
	}
	if err := c.ShouldBindJSON(&input); err != nil || input.AppointmentDetails == nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "appointmentDetails is required"})
		return
	}
	details := *input.AppointmentDetails

	if !h.Configured {
		h.Logger.Info("calendar not configured, returning mock booking response",
			zap.String("email", details.Email))
		c.JSON(http.StatusOK, gin.H{
			"success":            false,
			"error":              "Calendar integration not configured",
			"mockResponse":       true,
			"appointmentDetails": details,
		})
		return
	}

	// The outbound calendar call runs to completion even if the visitor
	// disconnects; its result is simply discarded by the transport.
	result, err := h.Booking.Book(context.Background(), details)
	if err != nil {
		h.Logger.Warn("booking failed", zap.Error(err))
		c.JSON(statusFor(err), result)
		return
	}

	h.Logger.Info("appointment booked",
		zap.String("eventId", result.EventID),
		zap.String("start", result.StartTime))
	c.JSON(http.StatusOK, result)
}

// GetAvailability handles GET /api/appointments/availability.
func (h *AppointmentHandler) GetAvailability(c *gin.Context) {
	date := c.Query("date")

	if !h.Configured {
		resp := models.AvailabilityResponse{Available: true, Configured: false}
		if date != "" {
			resp.MockData = &models.MockDay{
				Date:           date,
				AvailableSlots: mockSlots,
				FormattedDate:  "Tomorrow",
			}
		}
		c.JSON(http.StatusOK, resp)
		return
	}

	if date == "" {
		c.JSON(http.StatusOK, models.AvailabilityResponse{Available: true, Configured: true})
		return
	}

	day, err := h.Availability.Check(context.Background(), date)
	if err != nil {
		h.Logger.Warn("availability check failed", zap.String("date", date), zap.Error(err))
		c.JSON(statusFor(err), models.AvailabilityResponse{
			Available:  false,
			Configured: true,
			Error:      scheduling.ErrorMessage(err),
		})
		return
	}

	c.JSON(http.StatusOK, models.AvailabilityResponse{
		Available:      true,
		Configured:     true,
		Date:           day.Date,
		AvailableSlots: day.AvailableSlots,
		FormattedDate:  day.FormattedDate,
	})
}

// statusFor maps caller mistakes to 400 and provider failures to 502.
func statusFor(err error) int {
	if scheduling.IsValidationError(err) {
		return http.StatusBadRequest
	}
	return http.StatusBadGateway
}
