package integration

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"go.uber.org/zap"

	apprecipe "github.com/recipehub/recipehub/internal/application/recipe"
	"github.com/recipehub/recipehub/internal/infrastructure/config"
	"github.com/recipehub/recipehub/internal/infrastructure/http/apiserver"
	gormrepo "github.com/recipehub/recipehub/internal/infrastructure/persistence/gorm"
	"github.com/recipehub/recipehub/test/testutils"
)

// RecipeAPITestSuite exercises the full stack from router to database.
type RecipeAPITestSuite struct {
	suite.Suite
	server *httptest.Server
}

func (suite *RecipeAPITestSuite) SetupTest() {
	db := testutils.SetupTestDatabase(suite.T())

	cfg := &config.Config{
		App: config.AppConfig{
			Name:        "recipehub-test",
			Version:     "test",
			Environment: "test",
		},
		Server: config.ServerConfig{
			Host:           "127.0.0.1",
			Port:           0,
			ReadTimeout:    5 * time.Second,
			WriteTimeout:   5 * time.Second,
			IdleTimeout:    5 * time.Second,
			MaxHeaderBytes: 1 << 20,
			EnableCORS:     true,
		},
	}

	repo := gormrepo.NewRecipeRepository(db)
	service := apprecipe.NewRecipeService(repo, zap.NewNop())
	apiServer := apiserver.NewServer(cfg, zap.NewNop(), service, db)

	suite.server = httptest.NewServer(apiServer.Router())
	suite.T().Cleanup(suite.server.Close)
}

func (suite *RecipeAPITestSuite) request(method, path string, body interface{}) (*http.Response, map[string]interface{}) {
	var payload []byte
	if body != nil {
		var err error
		payload, err = json.Marshal(body)
		require.NoError(suite.T(), err)
	}

	req, err := http.NewRequest(method, suite.server.URL+path, bytes.NewReader(payload))
	require.NoError(suite.T(), err)
	req.Header.Set("Content-Type", "application/json")

	resp, err := suite.server.Client().Do(req)
	require.NoError(suite.T(), err)
	defer resp.Body.Close()

	var decoded map[string]interface{}
	require.NoError(suite.T(), json.NewDecoder(resp.Body).Decode(&decoded))
	return resp, decoded
}

func validRecipePayload(title string) map[string]interface{} {
	return map[string]interface{}{
		"title":        title,
		"description":  "A quick weeknight dinner",
		"instructions": "Heat the oil, cook the vegetables, season well, and serve over rice.",
		"prepTime":     10,
		"cookTime":     20,
		"servings":     4,
		"category":     "dinner",
		"ingredients": []map[string]interface{}{
			{"name": "broccoli", "quantity": 2, "unit": "cups"},
			{"name": "peanuts", "quantity": 0.5, "unit": "cup"},
		},
		"nutrition": map[string]interface{}{
			"calories": 320,
			"protein":  12,
			"carbs":    40,
			"fat":      9,
			"fiber":    6,
			"sugar":    8,
			"sodium":   520,
		},
	}
}

func (suite *RecipeAPITestSuite) createRecipe(title string) string {
	resp, body := suite.request(http.MethodPost, "/api/v1/recipes", validRecipePayload(title))
	require.Equal(suite.T(), http.StatusCreated, resp.StatusCode)

	data := body["data"].(map[string]interface{})
	recipe := data["recipe"].(map[string]interface{})
	return recipe["id"].(string)
}

func (suite *RecipeAPITestSuite) TestRecipeLifecycle() {
	// Create
	resp, body := suite.request(http.MethodPost, "/api/v1/recipes", validRecipePayload("Veggie Stir Fry"))
	require.Equal(suite.T(), http.StatusCreated, resp.StatusCode)
	assert.Equal(suite.T(), true, body["success"])

	data := body["data"].(map[string]interface{})
	created := data["recipe"].(map[string]interface{})
	recipeID := created["id"].(string)
	assert.Equal(suite.T(), "Veggie Stir Fry", created["title"])
	assert.Equal(suite.T(), float64(30), created["totalTime"])
	assert.Equal(suite.T(), "Easy", created["difficulty"])

	advisories := data["advisories"].(map[string]interface{})
	allergens := advisories["allergens"].([]interface{})
	assert.Contains(suite.T(), allergens, "peanuts")
	assert.Contains(suite.T(), allergens, "nuts")

	// Read back
	resp, body = suite.request(http.MethodGet, "/api/v1/recipes/"+recipeID, nil)
	require.Equal(suite.T(), http.StatusOK, resp.StatusCode)
	fetched := body["data"].(map[string]interface{})
	assert.Equal(suite.T(), recipeID, fetched["id"])
	assert.Len(suite.T(), fetched["ingredients"], 2)

	nutrition := fetched["nutrition"].(map[string]interface{})
	assert.Equal(suite.T(), float64(320), nutrition["calories"])
	assert.NotNil(suite.T(), nutrition["healthScore"])

	// Replace
	update := validRecipePayload("Veggie Stir Fry Deluxe")
	update["cookTime"] = 45
	resp, body = suite.request(http.MethodPut, "/api/v1/recipes/"+recipeID, update)
	require.Equal(suite.T(), http.StatusOK, resp.StatusCode)
	data = body["data"].(map[string]interface{})
	replaced := data["recipe"].(map[string]interface{})
	assert.Equal(suite.T(), "Veggie Stir Fry Deluxe", replaced["title"])
	assert.Equal(suite.T(), float64(55), replaced["totalTime"])
	assert.Equal(suite.T(), "Medium", replaced["difficulty"])

	// Delete
	resp, _ = suite.request(http.MethodDelete, "/api/v1/recipes/"+recipeID, nil)
	require.Equal(suite.T(), http.StatusOK, resp.StatusCode)

	resp, _ = suite.request(http.MethodGet, "/api/v1/recipes/"+recipeID, nil)
	assert.Equal(suite.T(), http.StatusNotFound, resp.StatusCode)
}

func (suite *RecipeAPITestSuite) TestValidationFailureReturnsAllMessages() {
	payload := map[string]interface{}{
		"title":        "",
		"instructions": "Stir.",
		"prepTime":     -5,
		"ingredients": []map[string]interface{}{
			{"name": "x", "quantity": 0, "unit": "handful"},
		},
	}

	resp, body := suite.request(http.MethodPost, "/api/v1/recipes", payload)

	require.Equal(suite.T(), http.StatusBadRequest, resp.StatusCode)
	assert.Equal(suite.T(), false, body["success"])

	errPayload := body["error"].(map[string]interface{})
	assert.Equal(suite.T(), "VALIDATION_FAILED", errPayload["code"])
	details := errPayload["details"].(string)
	assert.Contains(suite.T(), details, "Recipe title is required")
	assert.Contains(suite.T(), details, "Instructions must be at least 10 characters long")
	assert.Contains(suite.T(), details, "Prep time cannot be negative")
	assert.Contains(suite.T(), details, "Ingredient name must be at least 2 characters long")
	assert.Contains(suite.T(), details, "Ingredient quantity must be greater than 0")

	// Nothing persisted
	resp, body = suite.request(http.MethodGet, "/api/v1/recipes", nil)
	require.Equal(suite.T(), http.StatusOK, resp.StatusCode)
	assert.Empty(suite.T(), body["data"])
}

func (suite *RecipeAPITestSuite) TestUnrecognizedUnitIsAdvisory() {
	payload := validRecipePayload("Seasoned Rice")
	payload["ingredients"] = []map[string]interface{}{
		{"name": "rice", "quantity": 2, "unit": "cups"},
		{"name": "saffron", "quantity": 1, "unit": "pinch"},
	}

	resp, body := suite.request(http.MethodPost, "/api/v1/recipes", payload)

	require.Equal(suite.T(), http.StatusCreated, resp.StatusCode)
	data := body["data"].(map[string]interface{})
	advisories := data["advisories"].(map[string]interface{})
	units := advisories["unrecognizedUnits"].([]interface{})
	assert.Equal(suite.T(), []interface{}{"Invalid unit: pinch"}, units)
}

func (suite *RecipeAPITestSuite) TestListNewestFirst() {
	first := suite.createRecipe("First Recipe")
	time.Sleep(10 * time.Millisecond)
	second := suite.createRecipe("Second Recipe")

	resp, body := suite.request(http.MethodGet, "/api/v1/recipes", nil)

	require.Equal(suite.T(), http.StatusOK, resp.StatusCode)
	data := body["data"].([]interface{})
	require.Len(suite.T(), data, 2)
	assert.Equal(suite.T(), second, data[0].(map[string]interface{})["id"])
	assert.Equal(suite.T(), first, data[1].(map[string]interface{})["id"])
}

func (suite *RecipeAPITestSuite) TestSearchByIngredient() {
	suite.createRecipe("Broccoli Bowl")

	resp, body := suite.request(http.MethodGet, "/api/v1/recipes/search?ingredient=broccoli", nil)
	require.Equal(suite.T(), http.StatusOK, resp.StatusCode)
	assert.Len(suite.T(), body["data"], 1)

	resp, body = suite.request(http.MethodGet, "/api/v1/recipes/search?ingredient=anchovy", nil)
	require.Equal(suite.T(), http.StatusOK, resp.StatusCode)
	assert.Empty(suite.T(), body["data"])

	resp, body = suite.request(http.MethodGet, "/api/v1/recipes/search?ingredient=o", nil)
	require.Equal(suite.T(), http.StatusOK, resp.StatusCode)
	assert.Len(suite.T(), body["data"], 1)

	resp, _ = suite.request(http.MethodGet, "/api/v1/recipes/search", nil)
	assert.Equal(suite.T(), http.StatusBadRequest, resp.StatusCode)
}

func (suite *RecipeAPITestSuite) TestAnalyzeRecipe() {
	recipeID := suite.createRecipe("Analyzed Bowl")

	resp, body := suite.request(http.MethodGet, fmt.Sprintf("/api/v1/recipes/%s/analysis", recipeID), nil)

	require.Equal(suite.T(), http.StatusOK, resp.StatusCode)
	data := body["data"].(map[string]interface{})
	assert.Equal(suite.T(), recipeID, data["recipeId"])

	nutrition := data["nutrition"].(map[string]interface{})
	dailyValues := nutrition["dailyValues"].(map[string]interface{})
	assert.Equal(suite.T(), float64(16), dailyValues["calories"])
	assert.NotNil(suite.T(), nutrition["healthScore"])
}

func (suite *RecipeAPITestSuite) TestUnitEndpoints() {
	resp, body := suite.request(http.MethodGet, "/api/v1/units/convert?from=cup&to=tbsp&amount=2", nil)
	require.Equal(suite.T(), http.StatusOK, resp.StatusCode)
	data := body["data"].(map[string]interface{})
	to := data["to"].(map[string]interface{})
	assert.Equal(suite.T(), float64(32), to["amount"])

	resp, body = suite.request(http.MethodGet, "/api/v1/units/suggestions?category=dry", nil)
	require.Equal(suite.T(), http.StatusOK, resp.StatusCode)
	data = body["data"].(map[string]interface{})
	assert.Contains(suite.T(), data["units"], "g")

	resp, body = suite.request(http.MethodGet, "/api/v1/ingredients/substitutes?name=milk", nil)
	require.Equal(suite.T(), http.StatusOK, resp.StatusCode)
	data = body["data"].(map[string]interface{})
	assert.NotEmpty(suite.T(), data["substitutes"])
}

func (suite *RecipeAPITestSuite) TestRejectsNonJSONBody() {
	req, err := http.NewRequest(http.MethodPost, suite.server.URL+"/api/v1/recipes", bytes.NewReader([]byte("title=x")))
	require.NoError(suite.T(), err)
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := suite.server.Client().Do(req)
	require.NoError(suite.T(), err)
	defer resp.Body.Close()

	assert.Equal(suite.T(), http.StatusUnsupportedMediaType, resp.StatusCode)
}

func (suite *RecipeAPITestSuite) TestHealthEndpoints() {
	resp, err := suite.server.Client().Get(suite.server.URL + "/health")
	require.NoError(suite.T(), err)
	defer resp.Body.Close()
	assert.Equal(suite.T(), http.StatusOK, resp.StatusCode)

	resp, err = suite.server.Client().Get(suite.server.URL + "/ready")
	require.NoError(suite.T(), err)
	defer resp.Body.Close()
	assert.Equal(suite.T(), http.StatusOK, resp.StatusCode)
}

func TestRecipeAPITestSuite(t *testing.T) {
	suite.Run(t, new(RecipeAPITestSuite))
}
