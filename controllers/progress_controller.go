package controllers

import (
	"net/http"
	"time"

	"github.com/12Danish/NextRepBackend-sub000/services"

	"github.com/gin-gonic/gin"
)

type ProgressController struct {
	Progress *services.ProgressService
	Graph    *services.GraphService
}

func NewProgressController(progress *services.ProgressService, graph *services.GraphService) *ProgressController {
	return &ProgressController{Progress: progress, Graph: graph}
}

// ---------- per-goal progress ----------

func (h *ProgressController) GetWeightProgress(c *gin.Context) {
	userID, ok := userIDFromCtx(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}
	goalID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	progress, err := h.Progress.WeightProgress(c.Request.Context(), userID, goalID)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	if progress == nil {
		c.JSON(http.StatusOK, gin.H{"message": "No weight data recorded yet", "progress": gin.H{}})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Weight progress computed", "progress": progress})
}

func (h *ProgressController) GetDietProgress(c *gin.Context) {
	userID, ok := userIDFromCtx(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}
	goalID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	progress, err := h.Progress.DietProgress(c.Request.Context(), userID, goalID)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	if progress == nil {
		c.JSON(http.StatusOK, gin.H{"message": "No tracked meals for this goal yet", "progress": gin.H{}})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Diet progress computed", "progress": progress})
}

func (h *ProgressController) GetSleepProgress(c *gin.Context) {
	userID, ok := userIDFromCtx(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}
	goalID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	progress, err := h.Progress.SleepProgress(c.Request.Context(), userID, goalID)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	if progress == nil {
		c.JSON(http.StatusOK, gin.H{"message": "No sleep logged for this goal", "progress": gin.H{}})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Sleep progress computed", "progress": progress})
}

func (h *ProgressController) GetWorkoutProgress(c *gin.Context) {
	userID, ok := userIDFromCtx(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}
	goalID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	progress, err := h.Progress.WorkoutProgress(c.Request.Context(), userID, goalID)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	if progress == nil {
		c.JSON(http.StatusOK, gin.H{"message": "No tracked workouts for this goal yet", "progress": gin.H{}})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Workout progress computed", "progress": progress})
}

// ---------- graph views ----------

func (h *ProgressController) graphParams(c *gin.Context) (services.ViewType, int, bool) {
	view, err := services.ParseViewType(c.DefaultQuery("view", "week"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return "", 0, false
	}
	offset, ok := parseOffsetQuery(c)
	if !ok {
		return "", 0, false
	}
	return view, offset, true
}

func (h *ProgressController) GetDietGraph(c *gin.Context) {
	userID, ok := userIDFromCtx(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}
	view, offset, ok := h.graphParams(c)
	if !ok {
		return
	}

	days, dateRange, err := h.Graph.DietGraph(c.Request.Context(), userID, view, offset, time.Now())
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Diet graph computed", "data": days, "dateRange": dateRange})
}

func (h *ProgressController) GetWorkoutGraph(c *gin.Context) {
	userID, ok := userIDFromCtx(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}
	view, offset, ok := h.graphParams(c)
	if !ok {
		return
	}

	days, dateRange, err := h.Graph.WorkoutGraph(c.Request.Context(), userID, view, offset, time.Now())
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Workout graph computed", "data": days, "dateRange": dateRange})
}

func (h *ProgressController) GetSleepGraph(c *gin.Context) {
	userID, ok := userIDFromCtx(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}
	view, offset, ok := h.graphParams(c)
	if !ok {
		return
	}

	days, dateRange, err := h.Graph.SleepGraph(c.Request.Context(), userID, view, offset, time.Now())
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Sleep graph computed", "data": days, "dateRange": dateRange})
}
