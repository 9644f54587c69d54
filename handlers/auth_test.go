package handlers_test

import (
	"encoding/json"
	"net/http"
	"testing"

	"homecook-api/config"
	"homecook-api/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegister(t *testing.T) {
	t.Run("creates a user and returns a token", func(t *testing.T) {
		r := setupAPI(t)

		w, env := doJSON(t, r, http.MethodPost, "/api/auth/register", "", map[string]interface{}{
			"name":     "Asha",
			"email":    "asha@example.com",
			"password": "secret123",
		})

		require.Equal(t, http.StatusCreated, w.Code)
		assert.True(t, env.Success)
		assert.NotEmpty(t, env.Token)
		assert.Equal(t, "user", env.User["role"])
	})

	t.Run("chef registration creates the profile", func(t *testing.T) {
		r := setupAPI(t)
		registerChef(t, r, "Marco")

		var chef models.Chef
		require.NoError(t, config.DB.Joins("User").Where("\"User\".email = ?", "marco@example.com").First(&chef).Error)
		assert.Equal(t, "I cook at home", chef.Bio)
		assert.Equal(t, 5.0, chef.Rating)
		assert.Zero(t, chef.RatingsCount)
		assert.True(t, chef.DeliveryOptions.Delivery)
		assert.True(t, chef.DeliveryOptions.Pickup)
	})

	t.Run("duplicate email conflicts", func(t *testing.T) {
		r := setupAPI(t)
		registerUser(t, r, "Asha")

		w, env := doJSON(t, r, http.MethodPost, "/api/auth/register", "", map[string]interface{}{
			"name":     "Asha Again",
			"email":    "asha@example.com",
			"password": "secret123",
		})

		assert.Equal(t, http.StatusConflict, w.Code)
		assert.False(t, env.Success)
		assert.Equal(t, "Email already registered", env.Message)
	})

	t.Run("short password is rejected", func(t *testing.T) {
		r := setupAPI(t)

		w, _ := doJSON(t, r, http.MethodPost, "/api/auth/register", "", map[string]interface{}{
			"name":     "Asha",
			"email":    "asha@example.com",
			"password": "abc",
		})
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestLogin(t *testing.T) {
	t.Run("valid credentials return a token", func(t *testing.T) {
		r := setupAPI(t)
		registerUser(t, r, "Asha")

		w, env := doJSON(t, r, http.MethodPost, "/api/auth/login", "", map[string]interface{}{
			"email":    "asha@example.com",
			"password": "secret123",
		})

		require.Equal(t, http.StatusOK, w.Code)
		assert.NotEmpty(t, env.Token)
	})

	t.Run("wrong password is unauthorized", func(t *testing.T) {
		r := setupAPI(t)
		registerUser(t, r, "Asha")

		w, env := doJSON(t, r, http.MethodPost, "/api/auth/login", "", map[string]interface{}{
			"email":    "asha@example.com",
			"password": "wrongpass",
		})

		assert.Equal(t, http.StatusUnauthorized, w.Code)
		assert.Equal(t, "Invalid credentials", env.Message)
	})

	t.Run("unknown email is unauthorized", func(t *testing.T) {
		r := setupAPI(t)

		w, _ := doJSON(t, r, http.MethodPost, "/api/auth/login", "", map[string]interface{}{
			"email":    "ghost@example.com",
			"password": "secret123",
		})
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})
}

func TestGetMe(t *testing.T) {
	t.Run("returns the account, with chef profile for chefs", func(t *testing.T) {
		r := setupAPI(t)
		token := registerChef(t, r, "Marco")

		w, env := doJSON(t, r, http.MethodGet, "/api/auth/me", token, nil)

		require.Equal(t, http.StatusOK, w.Code)
		var data struct {
			User        models.User  `json:"user"`
			ChefProfile *models.Chef `json:"chefProfile"`
		}
		require.NoError(t, json.Unmarshal(env.Data, &data))
		assert.Equal(t, "Marco", data.User.Name)
		require.NotNil(t, data.ChefProfile)
		assert.Equal(t, "I cook at home", data.ChefProfile.Bio)
	})

	t.Run("requires a token", func(t *testing.T) {
		r := setupAPI(t)

		w, _ := doJSON(t, r, http.MethodGet, "/api/auth/me", "", nil)
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("rejects a garbage token", func(t *testing.T) {
		r := setupAPI(t)

		w, _ := doJSON(t, r, http.MethodGet, "/api/auth/me", "not-a-jwt", nil)
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})
}
