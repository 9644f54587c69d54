// Package orders implements the order engine: cart validation and pricing,
// order creation with its stock decrement, lifecycle transitions, and the
// post-delivery review step. All multi-write operations run inside a single
// database transaction so an order and its side effects succeed or fail
// together.
package orders

import (
	"errors"
	"time"

	"homecook-api/errs"
	"homecook-api/models"
	"homecook-api/statemachine"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// DeliveryLeadTime is added to the clock when an order goes out for delivery.
const DeliveryLeadTime = 30 * time.Minute

type Engine struct {
	db *gorm.DB
}

func NewEngine(db *gorm.DB) *Engine {
	return &Engine{db: db}
}

// CartLine is one requested (menu item, quantity) pair.
type CartLine struct {
	MenuID   uint
	Quantity int
}

// CreateInput is the validated command to place an order.
type CreateInput struct {
	UserID               uint
	Items                []CartLine
	DeliveryAddress      models.DeliveryAddress
	DeliveryOption       models.DeliveryOption
	DeliveryInstructions string
	PaymentMethod        string
}

// Create validates the cart, snapshots prices, computes totals and persists
// the order together with its stock decrements. Insufficient stock on any
// line aborts the whole transaction: no order row, no decrement.
func (e *Engine) Create(in CreateInput) (*models.Order, error) {
	if len(in.Items) == 0 {
		return nil, errs.Validation("Please add items to your order")
	}
	for _, line := range in.Items {
		if line.Quantity < 1 {
			return nil, errs.Validation("Item quantity must be at least 1")
		}
	}
	option := in.DeliveryOption
	if option == "" {
		option = models.DeliveryOptionDelivery
	}
	if option != models.DeliveryOptionDelivery && option != models.DeliveryOptionPickup {
		return nil, errs.Validation("Delivery option must be 'delivery' or 'pickup'")
	}
	if in.PaymentMethod != models.PaymentMethodCard && in.PaymentMethod != models.PaymentMethodCash {
		return nil, errs.Validation("Payment method must be 'card' or 'cash'")
	}

	var order models.Order
	err := e.db.Transaction(func(tx *gorm.DB) error {
		menuIDs := make([]uint, 0, len(in.Items))
		for _, line := range in.Items {
			menuIDs = append(menuIDs, line.MenuID)
		}

		var menus []models.Menu
		if err := tx.Where("id IN ?", menuIDs).Find(&menus).Error; err != nil {
			return err
		}
		if len(menus) != len(in.Items) {
			return errs.Validation("Some menu items are not available")
		}
		menusByID := make(map[uint]models.Menu, len(menus))
		for _, m := range menus {
			if !m.IsAvailable {
				return errs.Validation("Menu item '%s' is not available", m.Title)
			}
			menusByID[m.ID] = m
		}

		chefID := menus[0].ChefID
		for _, m := range menus {
			if m.ChefID != chefID {
				return errs.Validation("All items must be from the same chef")
			}
		}

		var chef models.Chef
		if err := tx.First(&chef, chefID).Error; err != nil {
			return err
		}

		lines := make([]QuoteLine, 0, len(in.Items))
		for _, line := range in.Items {
			m := menusByID[line.MenuID]
			lines = append(lines, QuoteLine{
				MenuID:   m.ID,
				Title:    m.Title,
				Quantity: line.Quantity,
				Price:    m.Price,
			})
		}
		quote := BuildQuote(lines, option, chef.DeliveryOptions.Delivery)

		now := time.Now()
		order = models.Order{
			OrderNumber:          uuid.NewString(),
			UserID:               in.UserID,
			ChefID:               chef.ID,
			DeliveryAddress:      in.DeliveryAddress,
			DeliveryOption:       option,
			DeliveryInstructions: in.DeliveryInstructions,
			Status:               models.StatusPending,
			Subtotal:             quote.Subtotal,
			Tax:                  quote.Tax,
			DeliveryFee:          quote.DeliveryFee,
			Total:                quote.Total,
			PaymentMethod:        in.PaymentMethod,
			PaymentStatus:        models.PaymentStatusPending,
			StatusUpdates: []models.OrderStatusUpdate{
				{Status: models.StatusPending, Timestamp: now},
			},
		}
		for _, l := range quote.Lines {
			order.Items = append(order.Items, models.OrderItem{
				MenuID:   l.MenuID,
				Quantity: l.Quantity,
				Price:    l.Price,
				Title:    l.Title,
			})
		}
		if err := tx.Create(&order).Error; err != nil {
			return err
		}

		// Guarded decrement: refuses to oversell and serializes against
		// concurrent orders on the same item.
		for _, l := range quote.Lines {
			res := tx.Model(&models.Menu{}).
				Where("id = ? AND available_quantity >= ?", l.MenuID, l.Quantity).
				UpdateColumn("available_quantity", gorm.Expr("available_quantity - ?", l.Quantity))
			if res.Error != nil {
				return res.Error
			}
			if res.RowsAffected == 0 {
				return errs.Validation("Not enough quantity of '%s' available", l.Title)
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return e.load(order.ID)
}

// UpdateStatus moves an order along the lifecycle. Only an admin or the chef
// fulfilling the order may transition it; the move must be in the state
// machine's adjacency table. The write is guarded on the previous status so
// concurrent transitions cannot both win.
func (e *Engine) UpdateStatus(orderID, actorUserID uint, actorRole models.UserRole, next models.OrderStatus) (*models.Order, error) {
	order, err := e.get(orderID)
	if err != nil {
		return nil, err
	}
	if err := e.authorizeFulfiller(order, actorUserID, actorRole); err != nil {
		return nil, err
	}
	if err := statemachine.CanTransition(order.Status, next); err != nil {
		return nil, errs.Validation("%s", err.Error())
	}

	now := time.Now()
	err = e.db.Transaction(func(tx *gorm.DB) error {
		updates := map[string]interface{}{"status": next}
		if next == models.StatusOutForDelivery {
			updates["estimated_delivery_time"] = now.Add(DeliveryLeadTime)
		}
		res := tx.Model(&models.Order{}).
			Where("id = ? AND status = ?", order.ID, order.Status).
			Updates(updates)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return errs.Conflict("Order status changed concurrently, please retry")
		}
		return tx.Create(&models.OrderStatusUpdate{
			OrderID:   order.ID,
			Status:    next,
			Timestamp: now,
		}).Error
	})
	if err != nil {
		return nil, err
	}
	return e.load(order.ID)
}

// AddReview records the purchaser's one-time rating of a delivered order and
// folds it into the chef's running average. A second review is rejected so
// the average is never double-counted.
func (e *Engine) AddReview(orderID, actorUserID uint, rating int, review string) (*models.Order, error) {
	order, err := e.get(orderID)
	if err != nil {
		return nil, err
	}
	if order.UserID != actorUserID {
		return nil, errs.Authorization("Not authorized to review this order")
	}
	if order.Status != models.StatusDelivered {
		return nil, errs.Validation("Can only review delivered orders")
	}
	if rating < 1 || rating > 5 {
		return nil, errs.Validation("Rating must be between 1 and 5")
	}
	if order.Rating != nil {
		return nil, errs.Conflict("Order has already been reviewed")
	}

	err = e.db.Transaction(func(tx *gorm.DB) error {
		res := tx.Model(&models.Order{}).
			Where("id = ? AND rating IS NULL", order.ID).
			Updates(map[string]interface{}{"rating": rating, "review": review})
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return errs.Conflict("Order has already been reviewed")
		}

		var chef models.Chef
		if err := tx.First(&chef, order.ChefID).Error; err != nil {
			return err
		}
		// Profiles start at the default rating with a zero count, so the
		// first review replaces the default exactly.
		newCount := chef.RatingsCount + 1
		newRating := float64(rating)
		if chef.RatingsCount > 0 {
			newRating = (chef.Rating*float64(chef.RatingsCount) + float64(rating)) / float64(newCount)
		}
		return tx.Model(&chef).Updates(map[string]interface{}{
			"rating":        newRating,
			"ratings_count": newCount,
		}).Error
	})
	if err != nil {
		return nil, err
	}
	return e.load(order.ID)
}

func (e *Engine) get(orderID uint) (*models.Order, error) {
	var order models.Order
	if err := e.db.First(&order, orderID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NotFound("Order not found with id %d", orderID)
		}
		return nil, err
	}
	return &order, nil
}

func (e *Engine) load(orderID uint) (*models.Order, error) {
	var order models.Order
	err := e.db.
		Preload("Items").
		Preload("StatusUpdates").
		First(&order, orderID).Error
	if err != nil {
		return nil, err
	}
	return &order, nil
}

func (e *Engine) authorizeFulfiller(order *models.Order, userID uint, role models.UserRole) error {
	if role == models.RoleAdmin {
		return nil
	}
	if role == models.RoleChef {
		var chef models.Chef
		if err := e.db.Where("user_id = ?", userID).First(&chef).Error; err == nil && chef.ID == order.ChefID {
			return nil
		}
	}
	return errs.Authorization("Not authorized to update this order")
}
