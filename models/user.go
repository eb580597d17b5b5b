package models

import (
	"time"
)

// UserRole defines allowed roles in the system
type UserRole string

const (
	RoleAdmin           UserRole = "admin"
	RoleCustomer        UserRole = "customer"
	RoleRestaurantOwner UserRole = "restaurant_owner"
)

// ValidRole reports whether r is one of the three known role tags.
func ValidRole(r UserRole) bool {
	switch r {
	case RoleAdmin, RoleCustomer, RoleRestaurantOwner:
		return true
	}
	return false
}

type User struct {
	ID           uint      `json:"id" gorm:"primaryKey"`
	Name         string    `json:"name" gorm:"not null"`
	Email        string    `json:"email" gorm:"uniqueIndex;not null"`
	PasswordHash string    `json:"-" gorm:"not null"`
	Role         UserRole  `json:"role" gorm:"not null;default:'customer'"`
	Phone        string    `json:"phone"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}
