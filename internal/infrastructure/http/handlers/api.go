// Package handlers contains the HTTP handlers for the JSON API.
package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/recipehub/recipehub/internal/domain/units"
	"github.com/recipehub/recipehub/internal/ports/inbound"
	"github.com/recipehub/recipehub/pkg/errors"
)

// APIHandlers bundles the handlers for the /api/v1 surface.
type APIHandlers struct {
	recipeService inbound.RecipeService
	logger        *zap.Logger
}

// NewAPIHandlers creates API handlers backed by the recipe service.
func NewAPIHandlers(recipeService inbound.RecipeService, logger *zap.Logger) *APIHandlers {
	return &APIHandlers{
		recipeService: recipeService,
		logger:        logger.Named("api-handlers"),
	}
}

// APIResponse is the standard response envelope.
type APIResponse struct {
	Success bool        `json:"success"`
	Data    interface{} `json:"data,omitempty"`
	Error   interface{} `json:"error,omitempty"`
	Message string      `json:"message,omitempty"`
}

// recipeRequest is the JSON body accepted by create and replace.
type recipeRequest struct {
	Title        string              `json:"title"`
	Description  string              `json:"description"`
	Instructions string              `json:"instructions"`
	PrepTime     int                 `json:"prepTime"`
	CookTime     int                 `json:"cookTime"`
	Servings     int                 `json:"servings"`
	Category     string              `json:"category"`
	Ingredients  []ingredientRequest `json:"ingredients"`
	Nutrition    *nutritionRequest   `json:"nutrition"`
}

type ingredientRequest struct {
	Name     string  `json:"name"`
	Quantity float64 `json:"quantity"`
	Unit     string  `json:"unit"`
}

type nutritionRequest struct {
	Calories float64 `json:"calories"`
	Protein  float64 `json:"protein"`
	Carbs    float64 `json:"carbs"`
	Fat      float64 `json:"fat"`
	Fiber    float64 `json:"fiber"`
	Sugar    float64 `json:"sugar"`
	Sodium   float64 `json:"sodium"`
}

// ListRecipes handles GET /api/v1/recipes
func (h *APIHandlers) ListRecipes(w http.ResponseWriter, r *http.Request) {
	recipes, err := h.recipeService.ListRecipes(r.Context())
	if err != nil {
		h.respondError(w, r, err)
		return
	}

	h.writeJSON(w, http.StatusOK, APIResponse{
		Success: true,
		Data:    recipes,
	})
}

// GetRecipe handles GET /api/v1/recipes/{id}
func (h *APIHandlers) GetRecipe(w http.ResponseWriter, r *http.Request) {
	recipeID, ok := h.parseRecipeID(w, r)
	if !ok {
		return
	}

	recipe, err := h.recipeService.GetRecipeByID(r.Context(), recipeID)
	if err != nil {
		h.respondError(w, r, err)
		return
	}

	h.writeJSON(w, http.StatusOK, APIResponse{
		Success: true,
		Data:    recipe,
	})
}

// CreateRecipe handles POST /api/v1/recipes
func (h *APIHandlers) CreateRecipe(w http.ResponseWriter, r *http.Request) {
	var req recipeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.respondError(w, r, errors.NewBadRequestError("Invalid JSON body"))
		return
	}

	result, err := h.recipeService.CreateRecipe(r.Context(), inbound.CreateRecipeCommand{
		Title:        req.Title,
		Description:  req.Description,
		Instructions: req.Instructions,
		PrepTime:     req.PrepTime,
		CookTime:     req.CookTime,
		Servings:     req.Servings,
		Category:     req.Category,
		Ingredients:  toIngredientInputs(req.Ingredients),
		Nutrition:    toNutritionInput(req.Nutrition),
	})
	if err != nil {
		h.respondError(w, r, err)
		return
	}

	h.writeJSON(w, http.StatusCreated, APIResponse{
		Success: true,
		Data:    result,
		Message: "Recipe created successfully",
	})
}

// UpdateRecipe handles PUT /api/v1/recipes/{id}
func (h *APIHandlers) UpdateRecipe(w http.ResponseWriter, r *http.Request) {
	recipeID, ok := h.parseRecipeID(w, r)
	if !ok {
		return
	}

	var req recipeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.respondError(w, r, errors.NewBadRequestError("Invalid JSON body"))
		return
	}

	result, err := h.recipeService.ReplaceRecipe(r.Context(), inbound.ReplaceRecipeCommand{
		RecipeID:     recipeID,
		Title:        req.Title,
		Description:  req.Description,
		Instructions: req.Instructions,
		PrepTime:     req.PrepTime,
		CookTime:     req.CookTime,
		Servings:     req.Servings,
		Category:     req.Category,
		Ingredients:  toIngredientInputs(req.Ingredients),
		Nutrition:    toNutritionInput(req.Nutrition),
	})
	if err != nil {
		h.respondError(w, r, err)
		return
	}

	h.writeJSON(w, http.StatusOK, APIResponse{
		Success: true,
		Data:    result,
		Message: "Recipe updated successfully",
	})
}

// DeleteRecipe handles DELETE /api/v1/recipes/{id}
func (h *APIHandlers) DeleteRecipe(w http.ResponseWriter, r *http.Request) {
	recipeID, ok := h.parseRecipeID(w, r)
	if !ok {
		return
	}

	if err := h.recipeService.DeleteRecipe(r.Context(), recipeID); err != nil {
		h.respondError(w, r, err)
		return
	}

	h.writeJSON(w, http.StatusOK, APIResponse{
		Success: true,
		Message: "Recipe deleted successfully",
	})
}

// SearchRecipes handles GET /api/v1/recipes/search?ingredient=
func (h *APIHandlers) SearchRecipes(w http.ResponseWriter, r *http.Request) {
	ingredient := r.URL.Query().Get("ingredient")

	recipes, err := h.recipeService.SearchByIngredient(r.Context(), ingredient)
	if err != nil {
		h.respondError(w, r, err)
		return
	}

	h.writeJSON(w, http.StatusOK, APIResponse{
		Success: true,
		Data:    recipes,
	})
}

// AnalyzeRecipe handles GET /api/v1/recipes/{id}/analysis
func (h *APIHandlers) AnalyzeRecipe(w http.ResponseWriter, r *http.Request) {
	recipeID, ok := h.parseRecipeID(w, r)
	if !ok {
		return
	}

	analysis, err := h.recipeService.AnalyzeRecipe(r.Context(), recipeID)
	if err != nil {
		h.respondError(w, r, err)
		return
	}

	h.writeJSON(w, http.StatusOK, APIResponse{
		Success: true,
		Data:    analysis,
	})
}

// conversionResult mirrors the converter endpoint's response body.
type conversionResult struct {
	From       conversionSide `json:"from"`
	To         conversionSide `json:"to"`
	Conversion string         `json:"conversion"`
}

type conversionSide struct {
	Amount float64 `json:"amount"`
	Unit   string  `json:"unit"`
}

// ConvertUnits handles GET /api/v1/units/convert?from=&to=&amount=
// The amount accepts decimals and common kitchen fractions such as 1/2.
func (h *APIHandlers) ConvertUnits(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	from := query.Get("from")
	to := query.Get("to")
	rawAmount := query.Get("amount")

	if from == "" || to == "" {
		h.respondError(w, r, errors.NewBadRequestError("Both from and to units are required"))
		return
	}

	amount, err := units.ParseQuantity(rawAmount)
	if err != nil {
		h.respondError(w, r, err)
		return
	}
	if amount <= 0 {
		h.respondError(w, r, errors.NewBadRequestError("Valid amount is required"))
		return
	}

	converted, err := units.Convert(amount, from, to)
	if err != nil {
		h.respondError(w, r, err)
		return
	}

	h.writeJSON(w, http.StatusOK, APIResponse{
		Success: true,
		Data: conversionResult{
			From:       conversionSide{Amount: amount, Unit: from},
			To:         conversionSide{Amount: converted, Unit: to},
			Conversion: "success",
		},
	})
}

// SuggestUnits handles GET /api/v1/units/suggestions?category=
func (h *APIHandlers) SuggestUnits(w http.ResponseWriter, r *http.Request) {
	category := r.URL.Query().Get("category")

	suggestions := units.StandardUnits(category)
	if len(suggestions) == 0 {
		h.respondError(w, r, errors.NewBadRequestError("Category must be one of: liquid, dry, count"))
		return
	}

	h.writeJSON(w, http.StatusOK, APIResponse{
		Success: true,
		Data: map[string]interface{}{
			"category": category,
			"units":    suggestions,
		},
	})
}

// substituteResponse is the body for the ingredient substitutes endpoint.
type substituteResponse struct {
	Ingredient  string             `json:"ingredient"`
	Standard    string             `json:"standardName"`
	Substitutes []units.Substitute `json:"substitutes"`
}

// GetSubstitutes handles GET /api/v1/ingredients/substitutes?name=
func (h *APIHandlers) GetSubstitutes(w http.ResponseWriter, r *http.Request) {
	name := r.URL.Query().Get("name")
	if name == "" {
		h.respondError(w, r, errors.NewBadRequestError("Ingredient name is required"))
		return
	}

	standard := units.StandardizeName(name)

	h.writeJSON(w, http.StatusOK, APIResponse{
		Success: true,
		Data: substituteResponse{
			Ingredient:  name,
			Standard:    standard,
			Substitutes: units.GetSubstitutes(standard),
		},
	})
}

// parseRecipeID extracts and validates the {id} route parameter.
func (h *APIHandlers) parseRecipeID(w http.ResponseWriter, r *http.Request) (uuid.UUID, bool) {
	raw := chi.URLParam(r, "id")

	recipeID, err := uuid.Parse(raw)
	if err != nil {
		h.respondError(w, r, errors.NewBadRequestError("Invalid recipe ID"))
		return uuid.Nil, false
	}

	return recipeID, true
}

func (h *APIHandlers) respondError(w http.ResponseWriter, r *http.Request, err error) {
	appErr, ok := err.(*errors.AppError)
	if !ok {
		appErr = errors.NewInternalError("An unexpected error occurred").WithCause(err)
	}

	if appErr.StatusCode() >= http.StatusInternalServerError {
		h.logger.Error("request failed",
			zap.String("path", r.URL.Path),
			zap.Error(err),
		)
	}

	h.writeJSON(w, appErr.StatusCode(), APIResponse{
		Success: false,
		Error:   errors.ToErrorResponse(appErr, requestID(r)).Error,
	})
}

func (h *APIHandlers) writeJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	if err := json.NewEncoder(w).Encode(payload); err != nil {
		h.logger.Error("failed to encode response", zap.Error(err))
	}
}

func requestID(r *http.Request) string {
	return chimiddleware.GetReqID(r.Context())
}

func toIngredientInputs(reqs []ingredientRequest) []inbound.IngredientInput {
	inputs := make([]inbound.IngredientInput, len(reqs))
	for i, req := range reqs {
		inputs[i] = inbound.IngredientInput{
			Name:     req.Name,
			Quantity: req.Quantity,
			Unit:     req.Unit,
		}
	}
	return inputs
}

func toNutritionInput(req *nutritionRequest) *inbound.NutritionInput {
	if req == nil {
		return nil
	}
	return &inbound.NutritionInput{
		Calories: req.Calories,
		Protein:  req.Protein,
		Carbs:    req.Carbs,
		Fat:      req.Fat,
		Fiber:    req.Fiber,
		Sugar:    req.Sugar,
		Sodium:   req.Sodium,
	}
}
