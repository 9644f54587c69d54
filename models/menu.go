package models

import "time"

// Menu categories accepted at the boundary.
const (
	CategoryBreakfast = "breakfast"
	CategoryLunch     = "lunch"
	CategoryDinner    = "dinner"
	CategorySnacks    = "snacks"
	CategoryDessert   = "dessert"
	CategoryBeverage  = "beverage"
	CategoryOther     = "other"
)

type DietaryInfo struct {
	Vegetarian bool `json:"vegetarian" gorm:"default:false"`
	Vegan      bool `json:"vegan" gorm:"default:false"`
	GlutenFree bool `json:"glutenFree" gorm:"default:false"`
	DairyFree  bool `json:"dairyFree" gorm:"default:false"`
	NutFree    bool `json:"nutFree" gorm:"default:false"`
}

// Menu is a dated, priced, quantity-bounded offering published by a chef.
type Menu struct {
	ID                uint        `json:"id" gorm:"primaryKey"`
	ChefID            uint        `json:"chefId" gorm:"not null;index:idx_menus_chef_date"`
	Chef              Chef        `json:"chef,omitempty" gorm:"foreignKey:ChefID"`
	Title             string      `json:"title" gorm:"not null"`
	Description       string      `json:"description"`
	Image             string      `json:"image"`
	Price             float64     `json:"price" gorm:"not null"`
	Category          string      `json:"category" gorm:"not null"`
	Cuisine           string      `json:"cuisine" gorm:"not null"`
	DietaryInfo       DietaryInfo `json:"dietaryInfo" gorm:"embedded;embeddedPrefix:dietary_"`
	Ingredients       []string    `json:"ingredients" gorm:"serializer:json"`
	PreparationTime   int         `json:"preparationTime"` // minutes
	AvailableDate     time.Time   `json:"availableDate" gorm:"index:idx_menus_chef_date"`
	AvailableQuantity int         `json:"availableQuantity"`
	IsAvailable       bool        `json:"isAvailable" gorm:"default:true"`
	CreatedAt         time.Time   `json:"createdAt"`
	UpdatedAt         time.Time   `json:"updatedAt"`
}
