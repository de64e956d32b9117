package api

import (
	"net/http"

	"flightbooking/internal/service/airports"
	"flightbooking/pkg/logger"

	"github.com/gin-gonic/gin"
)

type AirportHandler struct {
	service airports.AirportUseCase
	log     logger.Logger
}

func NewAirportHandler(service airports.AirportUseCase, log logger.Logger) *AirportHandler {
	return &AirportHandler{service: service, log: log}
}

func (h *AirportHandler) Register(router *gin.RouterGroup) {
	router.GET("", h.list)
}

func (h *AirportHandler) list(c *gin.Context) {
	airports, err := h.service.List(c.Request.Context())
	if err != nil {
		h.log.Error("failed to fetch airports", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error fetching airports"})
		return
	}
	c.JSON(http.StatusOK, airports)
}
