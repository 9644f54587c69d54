package handlers

import (
	"net/http"
	"strconv"

	"homecook-api/config"
	"homecook-api/middleware"
	"homecook-api/models"
	"homecook-api/orders"
	"homecook-api/statemachine"

	"github.com/gin-gonic/gin"
)

type CreateOrderRequest struct {
	Items []struct {
		Menu     uint `json:"menu" binding:"required"`
		Quantity int  `json:"quantity" binding:"required,min=1"`
	} `json:"items" binding:"required,min=1"`
	DeliveryAddress      models.DeliveryAddress `json:"deliveryAddress" binding:"required"`
	DeliveryOption       models.DeliveryOption  `json:"deliveryOption" binding:"omitempty,oneof=delivery pickup"`
	DeliveryInstructions string                 `json:"deliveryInstructions"`
	PaymentMethod        string                 `json:"paymentMethod" binding:"required,oneof=card cash"`
}

type UpdateOrderStatusRequest struct {
	Status models.OrderStatus `json:"status" binding:"required"`
}

type ReviewOrderRequest struct {
	Rating int    `json:"rating" binding:"required,min=1,max=5"`
	Review string `json:"review"`
}

// CreateOrder places an order for the authenticated user
func CreateOrder(c *gin.Context) {
	var req CreateOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		fail(c, http.StatusBadRequest, err.Error())
		return
	}

	in := orders.CreateInput{
		UserID:               middleware.GetUserID(c),
		DeliveryAddress:      req.DeliveryAddress,
		DeliveryOption:       req.DeliveryOption,
		DeliveryInstructions: req.DeliveryInstructions,
		PaymentMethod:        req.PaymentMethod,
	}
	for _, item := range req.Items {
		in.Items = append(in.Items, orders.CartLine{MenuID: item.Menu, Quantity: item.Quantity})
	}

	order, err := orders.NewEngine(config.DB).Create(in)
	if err != nil {
		respondErr(c, err)
		return
	}
	respond(c, http.StatusCreated, order)
}

// ListOrders returns the caller's orders, scoped by role: users see their
// purchases, chefs see their fulfilments, admins see everything
func ListOrders(c *gin.Context) {
	userID := middleware.GetUserID(c)

	query := config.DB.Preload("Items.Menu").Preload("User").Preload("Chef.User")

	switch middleware.GetRole(c) {
	case models.RoleUser:
		query = query.Where("user_id = ?", userID)
	case models.RoleChef:
		var chef models.Chef
		if err := config.DB.Where("user_id = ?", userID).First(&chef).Error; err != nil {
			fail(c, http.StatusNotFound, "Chef profile not found")
			return
		}
		query = query.Where("chef_id = ?", chef.ID)
	case models.RoleAdmin:
		// no scoping
	}

	var all []models.Order
	query.Order("created_at desc").Find(&all)
	respondList(c, len(all), all)
}

// GetOrder returns one order; only the purchaser, the fulfilling chef, or an
// admin may view it
func GetOrder(c *gin.Context) {
	var order models.Order
	err := config.DB.
		Preload("Items.Menu").
		Preload("StatusUpdates").
		Preload("User").
		Preload("Chef.User").
		First(&order, c.Param("id")).Error
	if err != nil {
		fail(c, http.StatusNotFound, "Order not found with id "+c.Param("id"))
		return
	}

	userID := middleware.GetUserID(c)
	if middleware.GetRole(c) != models.RoleAdmin &&
		order.UserID != userID &&
		order.Chef.UserID != userID {
		fail(c, http.StatusUnauthorized, "Not authorized to access this order")
		return
	}
	respond(c, http.StatusOK, order)
}

// UpdateOrderStatus moves an order along its lifecycle (chef or admin)
func UpdateOrderStatus(c *gin.Context) {
	orderID, ok := orderIDParam(c)
	if !ok {
		return
	}

	var req UpdateOrderStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		fail(c, http.StatusBadRequest, "Please provide a status")
		return
	}

	order, err := orders.NewEngine(config.DB).
		UpdateStatus(orderID, middleware.GetUserID(c), middleware.GetRole(c), req.Status)
	if err != nil {
		respondErr(c, err)
		return
	}
	respond(c, http.StatusOK, order)
}

// ReviewOrder records the purchaser's rating of a delivered order
func ReviewOrder(c *gin.Context) {
	orderID, ok := orderIDParam(c)
	if !ok {
		return
	}

	var req ReviewOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		fail(c, http.StatusBadRequest, "Please provide a rating between 1 and 5")
		return
	}

	order, err := orders.NewEngine(config.DB).
		AddReview(orderID, middleware.GetUserID(c), req.Rating, req.Review)
	if err != nil {
		respondErr(c, err)
		return
	}
	respond(c, http.StatusOK, order)
}

// GetOrderLifecycle exposes the status state machine (public, for docs)
func GetOrderLifecycle(c *gin.Context) {
	respond(c, http.StatusOK, gin.H{
		"transitions": statemachine.GetAllTransitions(),
		"terminalStates": []models.OrderStatus{
			models.StatusDelivered, models.StatusCancelled,
		},
	})
}

func orderIDParam(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		fail(c, http.StatusNotFound, "Order not found with id "+c.Param("id"))
		return 0, false
	}
	return uint(id), true
}
