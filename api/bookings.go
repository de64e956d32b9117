package api

import (
	"errors"
	"net/http"

	"flightbooking/internal/domain"
	"flightbooking/internal/service/booking"
	"flightbooking/pkg/logger"
	"flightbooking/pkg/metrics"

	"github.com/gin-gonic/gin"
)

type BookingHandler struct {
	service booking.BookingUseCase
	log     logger.Logger
	metrics *metrics.Metrics
}

type createBookingRequest struct {
	FlightID       int64  `json:"flight_id" binding:"required"`
	PassengerName  string `json:"passenger_name" binding:"required"`
	PassengerEmail string `json:"passenger_email" binding:"required"`
	PassengerPhone string `json:"passenger_phone"`
}

func NewBookingHandler(service booking.BookingUseCase, log logger.Logger, m *metrics.Metrics) *BookingHandler {
	return &BookingHandler{service: service, log: log, metrics: m}
}

func (h *BookingHandler) Register(router *gin.RouterGroup) {
	router.GET("", h.list)
	router.POST("", h.create)
}

func (h *BookingHandler) list(c *gin.Context) {
	bookings, err := h.service.List(c.Request.Context())
	if err != nil {
		h.log.Error("failed to fetch bookings", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error fetching bookings"})
		return
	}
	c.JSON(http.StatusOK, bookings)
}

// create inserts a booking. Every failure path returns exactly one
// response and stops; nothing reaches the store after a 400.
func (h *BookingHandler) create(c *gin.Context) {
	var req createBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Missing required fields"})
		return
	}

	created, err := h.service.CreateBooking(c.Request.Context(), booking.CreateBookingInput{
		FlightID:       req.FlightID,
		PassengerName:  req.PassengerName,
		PassengerEmail: req.PassengerEmail,
		PassengerPhone: req.PassengerPhone,
	})
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrMissingFields):
			c.JSON(http.StatusBadRequest, gin.H{"error": "Missing required fields"})
		case errors.Is(err, domain.ErrFlightNotFound):
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid flight_id: Flight does not exist"})
		default:
			h.log.Error("failed to create booking", "flight_id", req.FlightID, "error", err)
			if h.metrics != nil {
				h.metrics.ErrorsCount.WithLabelValues("create_booking").Inc()
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		}
		return
	}

	if h.metrics != nil {
		h.metrics.BookingsCreated.Inc()
	}
	c.JSON(http.StatusCreated, gin.H{
		"message": "Booking created successfully",
		"booking": created,
	})
}
