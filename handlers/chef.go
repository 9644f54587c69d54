package handlers

import (
	"math"
	"net/http"
	"strconv"
	"time"

	"homecook-api/config"
	"homecook-api/middleware"
	"homecook-api/models"

	"github.com/gin-gonic/gin"
)

// earthRadiusKm converts the distance query into a great-circle angle.
const earthRadiusKm = 6378.0

// ListChefs returns all chef profiles (public)
func ListChefs(c *gin.Context) {
	var chefs []models.Chef
	config.DB.Preload("User").Find(&chefs)
	respondList(c, len(chefs), chefs)
}

// NearbyChefs returns active chefs whose account location lies within the
// requested radius (kilometers) of the given point
func NearbyChefs(c *gin.Context) {
	latStr := c.Query("lat")
	lngStr := c.Query("lng")
	if latStr == "" || lngStr == "" {
		fail(c, http.StatusBadRequest, "Please provide latitude and longitude")
		return
	}
	lat, latErr := strconv.ParseFloat(latStr, 64)
	lng, lngErr := strconv.ParseFloat(lngStr, 64)
	if latErr != nil || lngErr != nil {
		fail(c, http.StatusBadRequest, "Invalid latitude or longitude")
		return
	}
	distance := 10.0
	if d := c.Query("distance"); d != "" {
		parsed, err := strconv.ParseFloat(d, 64)
		if err != nil || parsed <= 0 {
			fail(c, http.StatusBadRequest, "Invalid distance")
			return
		}
		distance = parsed
	}

	// sqlite has no geo operator, so the containment check runs in Go over
	// chef accounts that actually carry coordinates.
	var users []models.User
	config.DB.
		Where("role = ? AND latitude IS NOT NULL AND longitude IS NOT NULL", models.RoleChef).
		Find(&users)

	var userIDs []uint
	for _, u := range users {
		if haversineKm(lat, lng, *u.Latitude, *u.Longitude) <= distance {
			userIDs = append(userIDs, u.ID)
		}
	}

	var chefs []models.Chef
	if len(userIDs) > 0 {
		config.DB.Preload("User").
			Where("user_id IN ? AND is_active = ?", userIDs, true).
			Find(&chefs)
	}
	respondList(c, len(chefs), chefs)
}

// haversineKm is the great-circle distance between two points in kilometers
func haversineKm(lat1, lng1, lat2, lng2 float64) float64 {
	const degToRad = math.Pi / 180
	dLat := (lat2 - lat1) * degToRad
	dLng := (lng2 - lng1) * degToRad
	a := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(lat1*degToRad)*math.Cos(lat2*degToRad)*math.Sin(dLng/2)*math.Sin(dLng/2)
	return 2 * earthRadiusKm * math.Asin(math.Sqrt(a))
}

// GetChef returns a single chef profile with their menus (public)
func GetChef(c *gin.Context) {
	var chef models.Chef
	if err := config.DB.Preload("User").Preload("Menus").First(&chef, c.Param("id")).Error; err != nil {
		fail(c, http.StatusNotFound, "Chef not found with id "+c.Param("id"))
		return
	}
	respond(c, http.StatusOK, chef)
}

// UpdateChefRequest is the explicit allowlist of mutable profile fields.
// Pointer fields distinguish "not sent" from zero values.
type UpdateChefRequest struct {
	Bio             *string   `json:"bio"`
	Specialties     *[]string `json:"specialties"`
	ProfileImage    *string   `json:"profileImage"`
	IsActive        *bool     `json:"isActive"`
	ServiceRadius   *float64  `json:"serviceRadius" binding:"omitempty,gt=0"`
	DeliveryOptions *struct {
		Delivery *bool `json:"delivery"`
		Pickup   *bool `json:"pickup"`
	} `json:"deliveryOptions"`
}

// UpdateChef updates a chef profile (owner or admin only)
func UpdateChef(c *gin.Context) {
	var chef models.Chef
	if err := config.DB.First(&chef, c.Param("id")).Error; err != nil {
		fail(c, http.StatusNotFound, "Chef not found with id "+c.Param("id"))
		return
	}

	userID := middleware.GetUserID(c)
	if chef.UserID != userID && middleware.GetRole(c) != models.RoleAdmin {
		fail(c, http.StatusUnauthorized, "Not authorized to update this profile")
		return
	}

	var req UpdateChefRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		fail(c, http.StatusBadRequest, err.Error())
		return
	}

	if req.Bio != nil {
		chef.Bio = *req.Bio
	}
	if req.Specialties != nil {
		chef.Specialties = *req.Specialties
	}
	if req.ProfileImage != nil {
		chef.ProfileImage = *req.ProfileImage
	}
	if req.IsActive != nil {
		chef.IsActive = *req.IsActive
	}
	if req.ServiceRadius != nil {
		chef.ServiceRadius = *req.ServiceRadius
	}
	if req.DeliveryOptions != nil {
		if req.DeliveryOptions.Delivery != nil {
			chef.DeliveryOptions.Delivery = *req.DeliveryOptions.Delivery
		}
		if req.DeliveryOptions.Pickup != nil {
			chef.DeliveryOptions.Pickup = *req.DeliveryOptions.Pickup
		}
	}

	if err := config.DB.Save(&chef).Error; err != nil {
		fail(c, http.StatusInternalServerError, "Failed to update chef")
		return
	}
	respond(c, http.StatusOK, chef)
}

// GetChefMenus returns a chef's available menu items, optionally for one day
func GetChefMenus(c *gin.Context) {
	query := config.DB.Where("chef_id = ? AND is_available = ?", c.Param("id"), true)

	if date := c.Query("date"); date != "" {
		day, err := time.Parse("2006-01-02", date)
		if err != nil {
			fail(c, http.StatusBadRequest, "Invalid date, expected YYYY-MM-DD")
			return
		}
		query = query.Where("available_date >= ? AND available_date < ?", day, day.AddDate(0, 0, 1))
	}

	var menus []models.Menu
	query.Find(&menus)
	respondList(c, len(menus), menus)
}
