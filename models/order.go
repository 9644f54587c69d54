package models

import "time"

// OrderStatus represents all possible states of a marketplace order
type OrderStatus string

const (
	StatusPending        OrderStatus = "pending"
	StatusConfirmed      OrderStatus = "confirmed"
	StatusPreparing      OrderStatus = "preparing"
	StatusReady          OrderStatus = "ready"
	StatusOutForDelivery OrderStatus = "out_for_delivery"
	StatusDelivered      OrderStatus = "delivered"
	StatusCancelled      OrderStatus = "cancelled"
)

// DeliveryOption is how an order is fulfilled
type DeliveryOption string

const (
	DeliveryOptionDelivery DeliveryOption = "delivery"
	DeliveryOptionPickup   DeliveryOption = "pickup"
)

// Payment is handled out of band, only its state is recorded here
const (
	PaymentMethodCard = "card"
	PaymentMethodCash = "cash"

	PaymentStatusPending = "pending"
	PaymentStatusPaid    = "paid"
	PaymentStatusFailed  = "failed"
)

type DeliveryAddress struct {
	Address string `json:"address"`
	City    string `json:"city"`
	State   string `json:"state"`
	Zipcode string `json:"zipcode"`
}

type Order struct {
	ID                    uint                `json:"id" gorm:"primaryKey"`
	OrderNumber           string              `json:"orderNumber" gorm:"uniqueIndex;not null"`
	UserID                uint                `json:"userId" gorm:"not null;index"`
	User                  User                `json:"user,omitempty" gorm:"foreignKey:UserID"`
	ChefID                uint                `json:"chefId" gorm:"not null;index"`
	Chef                  Chef                `json:"chef,omitempty" gorm:"foreignKey:ChefID"`
	Items                 []OrderItem         `json:"items,omitempty" gorm:"foreignKey:OrderID"`
	DeliveryAddress       DeliveryAddress     `json:"deliveryAddress" gorm:"embedded;embeddedPrefix:delivery_"`
	DeliveryOption        DeliveryOption      `json:"deliveryOption" gorm:"not null;default:'delivery'"`
	DeliveryInstructions  string              `json:"deliveryInstructions"`
	Status                OrderStatus         `json:"status" gorm:"not null;default:'pending';index"`
	StatusUpdates         []OrderStatusUpdate `json:"statusUpdates,omitempty" gorm:"foreignKey:OrderID"`
	EstimatedDeliveryTime *time.Time          `json:"estimatedDeliveryTime"`
	Subtotal              float64             `json:"subtotal" gorm:"not null"`
	Tax                   float64             `json:"tax" gorm:"not null"`
	DeliveryFee           float64             `json:"deliveryFee" gorm:"default:0"`
	Total                 float64             `json:"total" gorm:"not null"`
	PaymentMethod         string              `json:"paymentMethod" gorm:"not null"`
	PaymentStatus         string              `json:"paymentStatus" gorm:"not null;default:'pending'"`
	Rating                *int                `json:"rating"`
	Review                string              `json:"review"`
	CreatedAt             time.Time           `json:"createdAt"`
	UpdatedAt             time.Time           `json:"updatedAt"`
}

// OrderItem is an immutable line snapshot: price and title are captured at
// order time and never track later menu edits.
type OrderItem struct {
	ID       uint    `json:"id" gorm:"primaryKey"`
	OrderID  uint    `json:"orderId" gorm:"not null;index"`
	MenuID   uint    `json:"menu" gorm:"not null"`
	Menu     Menu    `json:"menuItem,omitempty" gorm:"foreignKey:MenuID"`
	Quantity int     `json:"quantity" gorm:"not null"`
	Price    float64 `json:"price" gorm:"not null"`
	Title    string  `json:"title"`
}

// OrderStatusUpdate is one entry of an order's append-only status history
type OrderStatusUpdate struct {
	ID        uint        `json:"id" gorm:"primaryKey"`
	OrderID   uint        `json:"orderId" gorm:"not null;index"`
	Status    OrderStatus `json:"status" gorm:"not null"`
	Timestamp time.Time   `json:"timestamp"`
}
