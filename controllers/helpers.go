package controllers

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/12Danish/NextRepBackend-sub000/services"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

func userIDFromCtx(c *gin.Context) (uuid.UUID, bool) {
	v, ok := c.Get("userID")
	if !ok {
		return uuid.Nil, false
	}
	id, ok := v.(uuid.UUID)
	return id, ok
}

// parseIDParam validates a path id; malformed ids are a 400, not a 404.
func parseIDParam(c *gin.Context, name string) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param(name))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid " + name})
		return uuid.Nil, false
	}
	return id, true
}

// respondServiceError maps the service error taxonomy to HTTP statuses.
func respondServiceError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, services.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	case errors.Is(err, services.ErrInvalidID),
		errors.Is(err, services.ErrInvalidCategory),
		errors.Is(err, services.ErrInvalidGoalDuration):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
	}
}

// parseRangeQuery reads optional from/to date params (YYYY-MM-DD).
func parseRangeQuery(c *gin.Context) (from, to *time.Time, ok bool) {
	fromStr := c.Query("from")
	toStr := c.Query("to")
	if fromStr == "" || toStr == "" {
		return nil, nil, true
	}

	f, err := time.Parse("2006-01-02", fromStr)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid 'from' date, use YYYY-MM-DD"})
		return nil, nil, false
	}
	t, err := time.Parse("2006-01-02", toStr)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid 'to' date, use YYYY-MM-DD"})
		return nil, nil, false
	}
	t = t.AddDate(0, 0, 1) // inclusive end date
	return &f, &t, true
}

func parseOffsetQuery(c *gin.Context) (int, bool) {
	offsetStr := c.DefaultQuery("offset", "0")
	offset, err := strconv.Atoi(offsetStr)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid offset"})
		return 0, false
	}
	return offset, true
}
