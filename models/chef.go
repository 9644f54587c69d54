package models

import "time"

// DeliveryOptions records which fulfilment methods a chef offers. No column
// defaults: an explicit false must survive the insert.
type DeliveryOptions struct {
	Delivery bool `json:"delivery"`
	Pickup   bool `json:"pickup"`
}

// Chef is the one-to-one profile extension of a chef-role user.
// Rating is the running arithmetic mean of all order reviews; profiles
// start at 5 with a zero count and the first review replaces the default.
type Chef struct {
	ID              uint            `json:"id" gorm:"primaryKey"`
	UserID          uint            `json:"userId" gorm:"uniqueIndex;not null"`
	User            User            `json:"user,omitempty" gorm:"foreignKey:UserID"`
	Bio             string          `json:"bio"`
	Specialties     []string        `json:"specialties" gorm:"serializer:json"`
	ProfileImage    string          `json:"profileImage"`
	Rating          float64         `json:"rating" gorm:"default:5"`
	RatingsCount    int             `json:"ratingsCount" gorm:"default:0"`
	IsVerified      bool            `json:"isVerified" gorm:"default:false"`
	IsActive        bool            `json:"isActive" gorm:"default:true"`
	DeliveryOptions DeliveryOptions `json:"deliveryOptions" gorm:"embedded;embeddedPrefix:offers_"`
	ServiceRadius   float64         `json:"serviceRadius" gorm:"default:10"` // kilometers
	Menus           []Menu          `json:"menus,omitempty" gorm:"foreignKey:ChefID"`
	CreatedAt       time.Time       `json:"createdAt"`
	UpdatedAt       time.Time       `json:"updatedAt"`
}
