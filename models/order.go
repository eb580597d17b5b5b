package models

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// OrderStatus represents all possible states of an order
type OrderStatus string

const (
	StatusPending    OrderStatus = "PENDING"
	StatusProcessing OrderStatus = "PROCESSING"
	StatusCompleted  OrderStatus = "COMPLETED"
	StatusCancelled  OrderStatus = "CANCELLED"
)

// ValidStatus reports whether s is one of the four status tokens.
func ValidStatus(s OrderStatus) bool {
	switch s {
	case StatusPending, StatusProcessing, StatusCompleted, StatusCancelled:
		return true
	}
	return false
}

// OrderCodePrefix starts every generated order code.
const OrderCodePrefix = "ORD-"

// NewOrderCode generates a human-readable order code: the fixed prefix
// followed by eight upper-case hex characters of a random UUID. The
// unique index on orders.order_code is the authority on collisions.
func NewOrderCode() string {
	hex := strings.ReplaceAll(uuid.NewString(), "-", "")
	return OrderCodePrefix + strings.ToUpper(hex[:8])
}

type Order struct {
	ID               uint        `json:"id" gorm:"primaryKey"`
	OrderCode        string      `json:"order_code" gorm:"uniqueIndex;size:15"`
	UserID           uint        `json:"user_id" gorm:"not null"`
	User             User        `json:"user,omitempty" gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`
	RestaurantID     uint        `json:"restaurant_id" gorm:"not null"`
	Restaurant       Restaurant  `json:"restaurant,omitempty" gorm:"foreignKey:RestaurantID;constraint:OnDelete:CASCADE"`
	TotalPrice       float64     `json:"total_price" gorm:"default:0"`
	CustomerLocation string      `json:"customer_location" gorm:"not null"`
	CustomerPhone    string      `json:"customer_phone" gorm:"not null"`
	Status           OrderStatus `json:"status" gorm:"not null;default:'PENDING'"`
	IsDeleted        bool        `json:"is_deleted" gorm:"default:false"`
	OrderItems       []OrderItem `json:"order_items,omitempty" gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE"`
	CreatedAt        time.Time   `json:"created_at"`
}

// BeforeCreate assigns an order code when none is set. The code is
// immutable afterwards.
func (o *Order) BeforeCreate(tx *gorm.DB) error {
	if o.OrderCode == "" {
		o.OrderCode = NewOrderCode()
	}
	return nil
}

type OrderItem struct {
	ID         uint     `json:"id" gorm:"primaryKey"`
	OrderID    uint     `json:"order_id" gorm:"not null"`
	FoodItemID uint     `json:"food_item_id" gorm:"not null"`
	FoodItem   FoodItem `json:"food_item,omitempty" gorm:"foreignKey:FoodItemID;constraint:OnDelete:CASCADE"`
	Quantity   int      `json:"quantity" gorm:"not null;default:1"`
}
