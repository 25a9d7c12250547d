package services

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"time"
)

type SpoonacularService struct {
	apiKey string
	client *http.Client
}

func NewSpoonacularService() *SpoonacularService {
	return &SpoonacularService{
		apiKey: os.Getenv("SPOONACULAR_API_KEY"),
		client: &http.Client{Timeout: 10 * time.Second},
	}
}

type FoodResult struct {
	ID       int     `json:"id"`
	Name     string  `json:"name"`
	Image    string  `json:"image"`
	Calories float64 `json:"calories"`
	Protein  float64 `json:"protein"`
	Fat      float64 `json:"fat"`
	Carbs    float64 `json:"carbs"`
}

type ingredientSearchResponse struct {
	Results []struct {
		ID    int    `json:"id"`
		Name  string `json:"name"`
		Image string `json:"image"`
	} `json:"results"`
}

type ingredientInfoResponse struct {
	Nutrition struct {
		Nutrients []struct {
			Name   string  `json:"name"`
			Amount float64 `json:"amount"`
		} `json:"nutrients"`
	} `json:"nutrition"`
}

// SearchFoods queries the Spoonacular ingredient search endpoint.
func (s *SpoonacularService) SearchFoods(query string, limit int) ([]FoodResult, error) {
	if limit <= 0 {
		limit = 10
	}
	u := fmt.Sprintf(
		"https://api.spoonacular.com/food/ingredients/search?query=%s&number=%d&apiKey=%s",
		url.QueryEscape(query), limit, s.apiKey,
	)

	resp, err := s.client.Get(u)
	if err != nil {
		return nil, fmt.Errorf("failed to call Spoonacular search: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read Spoonacular response: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("spoonacular API error %d: %s", resp.StatusCode, string(body))
	}

	var sr ingredientSearchResponse
	if err := json.Unmarshal(body, &sr); err != nil {
		return nil, fmt.Errorf("failed to parse Spoonacular JSON: %w", err)
	}

	results := make([]FoodResult, 0, len(sr.Results))
	for _, r := range sr.Results {
		results = append(results, FoodResult{ID: r.ID, Name: r.Name, Image: r.Image})
	}
	return results, nil
}

// IngredientNutrition fetches per-amount nutrient values for an ingredient.
func (s *SpoonacularService) IngredientNutrition(id int, amountGrams float64) (*FoodResult, error) {
	u := fmt.Sprintf(
		"https://api.spoonacular.com/food/ingredients/%d/information?amount=%g&unit=grams&apiKey=%s",
		id, amountGrams, s.apiKey,
	)

	resp, err := s.client.Get(u)
	if err != nil {
		return nil, fmt.Errorf("failed to call Spoonacular information: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read Spoonacular response: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("spoonacular API error %d: %s", resp.StatusCode, string(body))
	}

	var ir ingredientInfoResponse
	if err := json.Unmarshal(body, &ir); err != nil {
		return nil, fmt.Errorf("failed to parse Spoonacular JSON: %w", err)
	}

	out := &FoodResult{ID: id}
	for _, n := range ir.Nutrition.Nutrients {
		switch n.Name {
		case "Calories":
			out.Calories = n.Amount
		case "Protein":
			out.Protein = n.Amount
		case "Fat":
			out.Fat = n.Amount
		case "Carbohydrates":
			out.Carbs = n.Amount
		}
	}
	return out, nil
}
