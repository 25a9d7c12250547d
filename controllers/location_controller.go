package controllers

import (
	"net/http"
	"strconv"

	"github.com/12Danish/NextRepBackend-sub000/services"

	"github.com/gin-gonic/gin"
)

type LocationController struct {
	Svc *services.OSMService
}

func NewLocationController(svc *services.OSMService) *LocationController {
	return &LocationController{Svc: svc}
}

func (h *LocationController) GetNearbyGyms(c *gin.Context) {
	lat, err := strconv.ParseFloat(c.Query("lat"), 64)
	if err != nil || lat < -90 || lat > 90 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid lat"})
		return
	}
	lon, err := strconv.ParseFloat(c.Query("lon"), 64)
	if err != nil || lon < -180 || lon > 180 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid lon"})
		return
	}

	radius := 0.0
	if v := c.Query("radius"); v != "" {
		radius, err = strconv.ParseFloat(v, 64)
		if err != nil || radius < 0 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid radius"})
			return
		}
	}

	gyms, err := h.Svc.NearbyGyms(lat, lon, radius)
	if err != nil {
		c.JSON(http.StatusBadGateway, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"gyms": gyms})
}
