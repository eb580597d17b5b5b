package models

import (
	"errors"
	"time"

	"gorm.io/gorm"
)

// ErrNotRestaurantOwner is returned by the persistence hook when a
// restaurant write names an owner whose role is not restaurant_owner.
var ErrNotRestaurantOwner = errors.New("restaurant owner must have the restaurant_owner role")

type Location struct {
	ID   uint   `json:"id" gorm:"primaryKey"`
	Name string `json:"name" gorm:"not null"`
}

type Category struct {
	ID   uint   `json:"id" gorm:"primaryKey"`
	Name string `json:"name" gorm:"not null"`
}

type Restaurant struct {
	ID            uint       `json:"id" gorm:"primaryKey"`
	OwnerID       uint       `json:"owner_id" gorm:"uniqueIndex;not null"`
	Owner         User       `json:"owner,omitempty" gorm:"foreignKey:OwnerID;constraint:OnDelete:CASCADE"`
	Name          string     `json:"name" gorm:"not null"`
	FeaturedImage string     `json:"featured_image"`
	Rating        *float64   `json:"rating"`
	LocationID    uint       `json:"location_id" gorm:"not null"`
	Location      Location   `json:"location,omitempty" gorm:"foreignKey:LocationID;constraint:OnDelete:CASCADE"`
	Outlet        string     `json:"outlet"`
	Email         string     `json:"email"`
	Address       string     `json:"address"`
	PhoneNumber   string     `json:"phone_number"`
	WorkingDays   string     `json:"working_days"` // JSON-encoded weekly schedule
	Categories    []Category `json:"categories,omitempty" gorm:"many2many:restaurant_categories"`
	OpeningTime   string     `json:"opening_time"`
	ClosingTime   string     `json:"closing_time"`
	OfferText     string     `json:"offer_text"`
	DeliveryTime  string     `json:"delivery_time"`
	FoodItems     []FoodItem `json:"food_items,omitempty" gorm:"foreignKey:RestaurantID;constraint:OnDelete:CASCADE"`
	CreatedAt     time.Time  `json:"created_at"`
	UpdatedAt     time.Time  `json:"updated_at"`
}

// BeforeSave rejects any restaurant write whose owner does not hold the
// restaurant_owner role. The check lives here rather than in handler
// validation so every code path that persists a restaurant is covered.
func (r *Restaurant) BeforeSave(tx *gorm.DB) error {
	var owner User
	if err := tx.First(&owner, r.OwnerID).Error; err != nil {
		return ErrNotRestaurantOwner
	}
	if owner.Role != RoleRestaurantOwner {
		return ErrNotRestaurantOwner
	}
	return nil
}

// FoodType distinguishes vegetarian and non-vegetarian items.
type FoodType string

const (
	FoodTypeVeg    FoodType = "veg"
	FoodTypeNonVeg FoodType = "non-veg"
)

type FoodItem struct {
	ID           uint       `json:"id" gorm:"primaryKey"`
	RestaurantID uint       `json:"restaurant_id" gorm:"not null"`
	Restaurant   Restaurant `json:"-" gorm:"foreignKey:RestaurantID;constraint:OnDelete:CASCADE"`
	Image        string     `json:"image"`
	Name         string     `json:"name" gorm:"not null"`
	Description  string     `json:"description"`
	Price        float64    `json:"price" gorm:"not null"`
	FoodType     FoodType   `json:"food_type" gorm:"not null;default:'non-veg'"`
	Rating       *float64   `json:"rating"`
	Categories   []Category `json:"categories,omitempty" gorm:"many2many:food_item_categories"`
	IsAvailable  bool       `json:"is_available" gorm:"default:true"`
	CreatedAt    time.Time  `json:"created_at"`
	UpdatedAt    time.Time  `json:"updated_at"`
}
