package controllers

import (
	"net/http"
	"strconv"

	"github.com/12Danish/NextRepBackend-sub000/services"

	"github.com/gin-gonic/gin"
)

type FoodController struct {
	Svc *services.SpoonacularService
}

func NewFoodController(svc *services.SpoonacularService) *FoodController {
	return &FoodController{Svc: svc}
}

func (h *FoodController) SearchFoods(c *gin.Context) {
	query := c.Query("query")
	if query == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "missing 'query' param"})
		return
	}

	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "10"))

	foods, err := h.Svc.SearchFoods(query, limit)
	if err != nil {
		c.JSON(http.StatusBadGateway, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"results": foods})
}

func (h *FoodController) GetFoodNutrition(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid food id"})
		return
	}

	amount, err := strconv.ParseFloat(c.DefaultQuery("amount", "100"), 64)
	if err != nil || amount <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid amount"})
		return
	}

	food, err := h.Svc.IngredientNutrition(id, amount)
	if err != nil {
		c.JSON(http.StatusBadGateway, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, food)
}
