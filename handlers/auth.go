package handlers

import (
	"net/http"

	"homecook-api/config"
	"homecook-api/middleware"
	"homecook-api/models"

	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type RegisterRequest struct {
	Name        string          `json:"name" binding:"required"`
	Email       string          `json:"email" binding:"required,email"`
	Password    string          `json:"password" binding:"required,min=6"`
	Phone       string          `json:"phone"`
	Role        models.UserRole `json:"role" binding:"omitempty,oneof=user chef admin"`
	Address     string          `json:"address"`
	City        string          `json:"city"`
	State       string          `json:"state"`
	Zipcode     string          `json:"zipcode"`
	Latitude    *float64        `json:"latitude"`
	Longitude   *float64        `json:"longitude"`
	Bio         string          `json:"bio"`
	Specialties []string        `json:"specialties"`
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// Register creates a new account. Registering with the chef role also
// creates the chef profile in the same transaction.
func Register(c *gin.Context) {
	var req RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		fail(c, http.StatusBadRequest, err.Error())
		return
	}

	role := req.Role
	if role == "" {
		role = models.RoleUser
	}

	var existing models.User
	if result := config.DB.Where("email = ?", req.Email).First(&existing); result.Error == nil {
		fail(c, http.StatusConflict, "Email already registered")
		return
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		fail(c, http.StatusInternalServerError, "Failed to hash password")
		return
	}

	user := models.User{
		Name:         req.Name,
		Email:        req.Email,
		PasswordHash: string(hash),
		Role:         role,
		Phone:        req.Phone,
		Address:      req.Address,
		City:         req.City,
		State:        req.State,
		Zipcode:      req.Zipcode,
		Latitude:     req.Latitude,
		Longitude:    req.Longitude,
	}

	err = config.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&user).Error; err != nil {
			return err
		}
		if role == models.RoleChef {
			return tx.Create(&models.Chef{
				UserID:          user.ID,
				Bio:             req.Bio,
				Specialties:     req.Specialties,
				DeliveryOptions: models.DeliveryOptions{Delivery: true, Pickup: true},
			}).Error
		}
		return nil
	})
	if err != nil {
		fail(c, http.StatusInternalServerError, "Failed to create account")
		return
	}

	sendTokenResponse(c, http.StatusCreated, &user)
}

// Login authenticates a user and returns a JWT
func Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		fail(c, http.StatusBadRequest, "Please provide an email and password")
		return
	}

	var user models.User
	if err := config.DB.Where("email = ?", req.Email).First(&user).Error; err != nil {
		fail(c, http.StatusUnauthorized, "Invalid credentials")
		return
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)); err != nil {
		fail(c, http.StatusUnauthorized, "Invalid credentials")
		return
	}

	sendTokenResponse(c, http.StatusOK, &user)
}

// GetMe returns the authenticated account, plus the chef profile for chefs
func GetMe(c *gin.Context) {
	userID := middleware.GetUserID(c)
	var user models.User
	if err := config.DB.First(&user, userID).Error; err != nil {
		fail(c, http.StatusNotFound, "User not found")
		return
	}

	data := gin.H{"user": user}
	if user.Role == models.RoleChef {
		var chef models.Chef
		if err := config.DB.Where("user_id = ?", user.ID).First(&chef).Error; err == nil {
			data["chefProfile"] = chef
		}
	}
	respond(c, http.StatusOK, data)
}

// Logout is stateless — token invalidation is the client's job
func Logout(c *gin.Context) {
	respond(c, http.StatusOK, gin.H{})
}

func sendTokenResponse(c *gin.Context, status int, user *models.User) {
	token, err := middleware.GenerateToken(user)
	if err != nil {
		fail(c, http.StatusInternalServerError, "Failed to generate token")
		return
	}
	c.JSON(status, gin.H{
		"success": true,
		"token":   token,
		"user": gin.H{
			"id":    user.ID,
			"name":  user.Name,
			"email": user.Email,
			"role":  user.Role,
		},
	})
}
