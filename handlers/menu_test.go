package handlers_test

import (
	"encoding/json"
	"net/http"
	"testing"
	"time"

	"homecook-api/models"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func createMenu(t *testing.T, r *gin.Engine, token string, overrides map[string]interface{}) models.Menu {
	t.Helper()
	body := map[string]interface{}{
		"title":             "Dal Makhani",
		"description":       "Slow-cooked lentils",
		"price":             10.0,
		"category":          "dinner",
		"cuisine":           "indian",
		"preparationTime":   45,
		"availableDate":     time.Now().Format(time.RFC3339),
		"availableQuantity": 10,
	}
	for k, v := range overrides {
		body[k] = v
	}

	w, env := doJSON(t, r, http.MethodPost, "/api/menus", token, body)
	require.Equal(t, http.StatusCreated, w.Code, "create menu: %s", w.Body.String())

	var menu models.Menu
	require.NoError(t, json.Unmarshal(env.Data, &menu))
	return menu
}

func TestCreateMenuEndpoint(t *testing.T) {
	t.Run("chef publishes an item", func(t *testing.T) {
		r := setupAPI(t)
		token := registerChef(t, r, "Marco")

		menu := createMenu(t, r, token, nil)

		assert.Equal(t, "Dal Makhani", menu.Title)
		assert.True(t, menu.IsAvailable)
		assert.Equal(t, 10, menu.AvailableQuantity)
	})

	t.Run("plain users are forbidden by role middleware", func(t *testing.T) {
		r := setupAPI(t)
		token := registerUser(t, r, "Asha")

		w, _ := doJSON(t, r, http.MethodPost, "/api/menus", token, map[string]interface{}{})
		assert.Equal(t, http.StatusForbidden, w.Code)
	})

	t.Run("invalid category is rejected", func(t *testing.T) {
		r := setupAPI(t)
		token := registerChef(t, r, "Marco")

		w, _ := doJSON(t, r, http.MethodPost, "/api/menus", token, map[string]interface{}{
			"title":             "Mystery",
			"description":       "?",
			"price":             5.0,
			"category":          "midnight-snack",
			"cuisine":           "fusion",
			"preparationTime":   10,
			"availableDate":     time.Now().Format(time.RFC3339),
			"availableQuantity": 1,
		})
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestListMenus(t *testing.T) {
	t.Run("returns only today's available items", func(t *testing.T) {
		r := setupAPI(t)
		token := registerChef(t, r, "Marco")

		createMenu(t, r, token, map[string]interface{}{"title": "Today Special"})
		createMenu(t, r, token, map[string]interface{}{
			"title":         "Tomorrow Special",
			"availableDate": time.Now().AddDate(0, 0, 2).Format(time.RFC3339),
		})

		w, env := doJSON(t, r, http.MethodGet, "/api/menus", "", nil)

		require.Equal(t, http.StatusOK, w.Code)
		var menus []models.Menu
		require.NoError(t, json.Unmarshal(env.Data, &menus))
		require.Len(t, menus, 1)
		assert.Equal(t, "Today Special", menus[0].Title)
	})

	t.Run("filters by cuisine, category and dietary flags", func(t *testing.T) {
		r := setupAPI(t)
		token := registerChef(t, r, "Marco")

		createMenu(t, r, token, map[string]interface{}{
			"title": "Veggie Bowl", "cuisine": "thai",
			"dietaryInfo": map[string]bool{"vegetarian": true, "glutenFree": true},
		})
		createMenu(t, r, token, map[string]interface{}{
			"title": "Beef Noodles", "cuisine": "thai",
		})
		createMenu(t, r, token, map[string]interface{}{
			"title": "Croissant", "cuisine": "french", "category": "breakfast",
		})

		_, env := doJSON(t, r, http.MethodGet, "/api/menus?cuisine=thai", "", nil)
		require.NotNil(t, env.Count)
		assert.Equal(t, 2, *env.Count)

		_, env = doJSON(t, r, http.MethodGet, "/api/menus?cuisine=thai&vegetarian=true", "", nil)
		assert.Equal(t, 1, *env.Count)

		_, env = doJSON(t, r, http.MethodGet, "/api/menus?category=breakfast", "", nil)
		assert.Equal(t, 1, *env.Count)

		_, env = doJSON(t, r, http.MethodGet, "/api/menus?glutenFree=true", "", nil)
		assert.Equal(t, 1, *env.Count)
	})

	t.Run("hidden items are excluded", func(t *testing.T) {
		r := setupAPI(t)
		token := registerChef(t, r, "Marco")
		createMenu(t, r, token, nil)

		w, _ := doJSON(t, r, http.MethodPut, "/api/menus/1", token, map[string]interface{}{
			"isAvailable": false,
		})
		require.Equal(t, http.StatusOK, w.Code)

		_, env := doJSON(t, r, http.MethodGet, "/api/menus", "", nil)
		require.NotNil(t, env.Count)
		assert.Equal(t, 0, *env.Count)
	})
}

func TestUpdateMenuEndpoint(t *testing.T) {
	t.Run("owner edits a subset of fields", func(t *testing.T) {
		r := setupAPI(t)
		token := registerChef(t, r, "Marco")
		createMenu(t, r, token, nil)

		w, env := doJSON(t, r, http.MethodPut, "/api/menus/1", token, map[string]interface{}{
			"price": 12.5,
		})

		require.Equal(t, http.StatusOK, w.Code)
		var menu models.Menu
		require.NoError(t, json.Unmarshal(env.Data, &menu))
		assert.Equal(t, 12.5, menu.Price)
		assert.Equal(t, "Dal Makhani", menu.Title)
	})

	t.Run("another chef cannot edit it", func(t *testing.T) {
		r := setupAPI(t)
		owner := registerChef(t, r, "Marco")
		createMenu(t, r, owner, nil)
		intruder := registerChef(t, r, "Yuki")

		w, _ := doJSON(t, r, http.MethodPut, "/api/menus/1", intruder, map[string]interface{}{
			"price": 1.0,
		})
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})
}

func TestDeleteMenuEndpoint(t *testing.T) {
	r := setupAPI(t)
	token := registerChef(t, r, "Marco")
	createMenu(t, r, token, nil)

	w, _ := doJSON(t, r, http.MethodDelete, "/api/menus/1", token, nil)
	require.Equal(t, http.StatusOK, w.Code)

	w, _ = doJSON(t, r, http.MethodGet, "/api/menus/1", "", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestGetChefMenus(t *testing.T) {
	r := setupAPI(t)
	token := registerChef(t, r, "Marco")
	createMenu(t, r, token, map[string]interface{}{"title": "Today"})
	createMenu(t, r, token, map[string]interface{}{
		"title":         "Next Week",
		"availableDate": time.Now().AddDate(0, 0, 7).Format(time.RFC3339),
	})

	// Without a date filter both items show
	_, env := doJSON(t, r, http.MethodGet, "/api/chefs/1/menus", "", nil)
	require.NotNil(t, env.Count)
	assert.Equal(t, 2, *env.Count)

	// With a date filter only the matching day shows
	day := time.Now().AddDate(0, 0, 7).Format("2006-01-02")
	_, env = doJSON(t, r, http.MethodGet, "/api/chefs/1/menus?date="+day, "", nil)
	require.NotNil(t, env.Count)
	assert.Equal(t, 1, *env.Count)
}
