package api

import (
	"net/http"

	"flightbooking/internal/service/flights"
	"flightbooking/pkg/logger"

	"github.com/gin-gonic/gin"
)

type FlightHandler struct {
	service flights.FlightUseCase
	log     logger.Logger
}

func NewFlightHandler(service flights.FlightUseCase, log logger.Logger) *FlightHandler {
	return &FlightHandler{service: service, log: log}
}

func (h *FlightHandler) Register(router *gin.RouterGroup) {
	router.GET("", h.list)
}

// list returns every flight; filtering and sorting are the
// presentation layer's job.
func (h *FlightHandler) list(c *gin.Context) {
	flights, err := h.service.List(c.Request.Context())
	if err != nil {
		h.log.Error("failed to fetch flights", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error fetching flights"})
		return
	}
	c.JSON(http.StatusOK, flights)
}
