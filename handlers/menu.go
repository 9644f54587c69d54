package handlers

import (
	"net/http"
	"time"

	"homecook-api/config"
	"homecook-api/middleware"
	"homecook-api/models"

	"github.com/gin-gonic/gin"
)

// ListMenus returns items available today, with optional filters (public)
func ListMenus(c *gin.Context) {
	today := time.Now().Truncate(24 * time.Hour)
	tomorrow := today.AddDate(0, 0, 1)

	query := config.DB.Preload("Chef.User").
		Where("is_available = ?", true).
		Where("available_date >= ? AND available_date < ?", today, tomorrow)

	if cuisine := c.Query("cuisine"); cuisine != "" {
		query = query.Where("cuisine = ?", cuisine)
	}
	if category := c.Query("category"); category != "" {
		query = query.Where("category = ?", category)
	}
	if c.Query("vegetarian") == "true" {
		query = query.Where("dietary_vegetarian = ?", true)
	}
	if c.Query("vegan") == "true" {
		query = query.Where("dietary_vegan = ?", true)
	}
	if c.Query("glutenFree") == "true" {
		query = query.Where("dietary_gluten_free = ?", true)
	}

	var menus []models.Menu
	query.Find(&menus)
	respondList(c, len(menus), menus)
}

// GetMenu returns a single menu item with its chef (public)
func GetMenu(c *gin.Context) {
	var menu models.Menu
	if err := config.DB.Preload("Chef.User").First(&menu, c.Param("id")).Error; err != nil {
		fail(c, http.StatusNotFound, "Menu not found with id "+c.Param("id"))
		return
	}
	respond(c, http.StatusOK, menu)
}

type CreateMenuRequest struct {
	Title             string             `json:"title" binding:"required,max=100"`
	Description       string             `json:"description" binding:"required"`
	Image             string             `json:"image"`
	Price             float64            `json:"price" binding:"required,gt=0"`
	Category          string             `json:"category" binding:"required,oneof=breakfast lunch dinner snacks dessert beverage other"`
	Cuisine           string             `json:"cuisine" binding:"required"`
	DietaryInfo       models.DietaryInfo `json:"dietaryInfo"`
	Ingredients       []string           `json:"ingredients"`
	PreparationTime   int                `json:"preparationTime" binding:"required,gt=0"`
	AvailableDate     time.Time          `json:"availableDate" binding:"required"`
	AvailableQuantity int                `json:"availableQuantity" binding:"required,gt=0"`
}

// CreateMenu publishes a new menu item under the caller's chef profile
func CreateMenu(c *gin.Context) {
	chef, ok := requireChefProfile(c)
	if !ok {
		return
	}

	var req CreateMenuRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		fail(c, http.StatusBadRequest, err.Error())
		return
	}

	menu := models.Menu{
		ChefID:            chef.ID,
		Title:             req.Title,
		Description:       req.Description,
		Image:             req.Image,
		Price:             req.Price,
		Category:          req.Category,
		Cuisine:           req.Cuisine,
		DietaryInfo:       req.DietaryInfo,
		Ingredients:       req.Ingredients,
		PreparationTime:   req.PreparationTime,
		AvailableDate:     req.AvailableDate,
		AvailableQuantity: req.AvailableQuantity,
		IsAvailable:       true,
	}
	if err := config.DB.Create(&menu).Error; err != nil {
		fail(c, http.StatusInternalServerError, "Failed to create menu item")
		return
	}
	respond(c, http.StatusCreated, menu)
}

// UpdateMenuRequest allows partial edits; pointer fields distinguish
// "not sent" from zero values.
type UpdateMenuRequest struct {
	Title             *string             `json:"title" binding:"omitempty,max=100"`
	Description       *string             `json:"description"`
	Image             *string             `json:"image"`
	Price             *float64            `json:"price" binding:"omitempty,gt=0"`
	Category          *string             `json:"category" binding:"omitempty,oneof=breakfast lunch dinner snacks dessert beverage other"`
	Cuisine           *string             `json:"cuisine"`
	DietaryInfo       *models.DietaryInfo `json:"dietaryInfo"`
	Ingredients       *[]string           `json:"ingredients"`
	PreparationTime   *int                `json:"preparationTime" binding:"omitempty,gt=0"`
	AvailableDate     *time.Time          `json:"availableDate"`
	AvailableQuantity *int                `json:"availableQuantity" binding:"omitempty,gte=0"`
	IsAvailable       *bool               `json:"isAvailable"`
}

// UpdateMenu edits a menu item (owning chef only)
func UpdateMenu(c *gin.Context) {
	menu, _, ok := requireOwnedMenu(c)
	if !ok {
		return
	}

	var req UpdateMenuRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		fail(c, http.StatusBadRequest, err.Error())
		return
	}

	if req.Title != nil {
		menu.Title = *req.Title
	}
	if req.Description != nil {
		menu.Description = *req.Description
	}
	if req.Image != nil {
		menu.Image = *req.Image
	}
	if req.Price != nil {
		menu.Price = *req.Price
	}
	if req.Category != nil {
		menu.Category = *req.Category
	}
	if req.Cuisine != nil {
		menu.Cuisine = *req.Cuisine
	}
	if req.DietaryInfo != nil {
		menu.DietaryInfo = *req.DietaryInfo
	}
	if req.Ingredients != nil {
		menu.Ingredients = *req.Ingredients
	}
	if req.PreparationTime != nil {
		menu.PreparationTime = *req.PreparationTime
	}
	if req.AvailableDate != nil {
		menu.AvailableDate = *req.AvailableDate
	}
	if req.AvailableQuantity != nil {
		menu.AvailableQuantity = *req.AvailableQuantity
	}
	if req.IsAvailable != nil {
		menu.IsAvailable = *req.IsAvailable
	}

	if err := config.DB.Save(menu).Error; err != nil {
		fail(c, http.StatusInternalServerError, "Failed to update menu item")
		return
	}
	respond(c, http.StatusOK, menu)
}

// DeleteMenu removes a menu item (owning chef only)
func DeleteMenu(c *gin.Context) {
	menu, _, ok := requireOwnedMenu(c)
	if !ok {
		return
	}
	if err := config.DB.Delete(menu).Error; err != nil {
		fail(c, http.StatusInternalServerError, "Failed to delete menu item")
		return
	}
	respond(c, http.StatusOK, gin.H{})
}

// requireChefProfile resolves the caller's chef profile, answering 403 when
// the account has none.
func requireChefProfile(c *gin.Context) (*models.Chef, bool) {
	userID := middleware.GetUserID(c)
	var chef models.Chef
	if err := config.DB.Where("user_id = ?", userID).First(&chef).Error; err != nil {
		fail(c, http.StatusForbidden, "Only chefs can manage menu items")
		return nil, false
	}
	return &chef, true
}

// requireOwnedMenu loads the menu item from the path and checks the caller's
// chef profile owns it.
func requireOwnedMenu(c *gin.Context) (*models.Menu, *models.Chef, bool) {
	var menu models.Menu
	if err := config.DB.First(&menu, c.Param("id")).Error; err != nil {
		fail(c, http.StatusNotFound, "Menu not found with id "+c.Param("id"))
		return nil, nil, false
	}
	chef, ok := requireChefProfile(c)
	if !ok {
		return nil, nil, false
	}
	if menu.ChefID != chef.ID {
		fail(c, http.StatusUnauthorized, "Not authorized to modify this menu item")
		return nil, nil, false
	}
	return &menu, chef, true
}
