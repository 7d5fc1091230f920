package handlers

import "github.com/gin-gonic/gin"

// HandlerBundle collects the endpoint handlers handed to route registration.
type HandlerBundle struct {
	// Appointment endpoints.
	CreateAppointmentHandler gin.HandlerFunc
	GetAvailabilityHandler   gin.HandlerFunc

	// Chat endpoint.
	ChatHandler gin.HandlerFunc

	// Contact-form endpoint.
	ContactHandler gin.HandlerFunc
}
