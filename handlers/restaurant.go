package handlers

import (
	"errors"
	"net/http"

	"food-marketplace-api/config"
	"food-marketplace-api/middleware"
	"food-marketplace-api/models"

	"github.com/gin-gonic/gin"
)

// ── Restaurant Management ────────────────────────────────────────────────────

type CreateRestaurantRequest struct {
	Name          string   `json:"name" binding:"required"`
	FeaturedImage string   `json:"featured_image"`
	LocationID    uint     `json:"location" binding:"required"`
	Outlet        string   `json:"outlet"`
	Email         string   `json:"email" binding:"omitempty,email"`
	Address       string   `json:"address" binding:"required"`
	PhoneNumber   string   `json:"phone_number" binding:"omitempty,phone"`
	WorkingDays   string   `json:"working_days"`
	CategoryIDs   []uint   `json:"categories"`
	OpeningTime   string   `json:"opening_time" binding:"required"`
	ClosingTime   string   `json:"closing_time" binding:"required"`
	OfferText     string   `json:"offer_text"`
	DeliveryTime  string   `json:"delivery_time"`
	Rating        *float64 `json:"rating"`
}

func loadCategories(ids []uint) ([]models.Category, error) {
	if len(ids) == 0 {
		return nil, nil
	}
	var categories []models.Category
	if err := config.DB.Find(&categories, ids).Error; err != nil {
		return nil, err
	}
	if len(categories) != len(ids) {
		return nil, errors.New("one or more categories are invalid")
	}
	return categories, nil
}

// CreateRestaurant lets a restaurant_owner user create their restaurant.
// The owner-role invariant is re-checked in the model's BeforeSave hook
// right before commit.
func CreateRestaurant(c *gin.Context) {
	ownerID := middleware.GetUserID(c)
	var req CreateRestaurantRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	var location models.Location
	if err := config.DB.First(&location, req.LocationID).Error; err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid location ID"})
		return
	}

	categories, err := loadCategories(req.CategoryIDs)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	var existing models.Restaurant
	if res := config.DB.Where("owner_id = ?", ownerID).First(&existing); res.Error == nil {
		c.JSON(http.StatusConflict, gin.H{"error": "You already own a restaurant"})
		return
	}

	restaurant := models.Restaurant{
		OwnerID:       ownerID,
		Name:          req.Name,
		FeaturedImage: req.FeaturedImage,
		Rating:        req.Rating,
		LocationID:    location.ID,
		Outlet:        req.Outlet,
		Email:         req.Email,
		Address:       req.Address,
		PhoneNumber:   req.PhoneNumber,
		WorkingDays:   req.WorkingDays,
		Categories:    categories,
		OpeningTime:   req.OpeningTime,
		ClosingTime:   req.ClosingTime,
		OfferText:     req.OfferText,
		DeliveryTime:  req.DeliveryTime,
	}
	if err := config.DB.Create(&restaurant).Error; err != nil {
		if errors.Is(err, models.ErrNotRestaurantOwner) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create restaurant"})
		return
	}

	config.DB.Preload("Location").Preload("Categories").First(&restaurant, restaurant.ID)
	c.JSON(http.StatusCreated, gin.H{
		"message": "Restaurant created successfully.",
		"data":    NewRestaurantResponse(c.Request, &restaurant),
	})
}

// GetMyRestaurant fetches the restaurant owned by the logged-in user
func GetMyRestaurant(c *gin.Context) {
	ownerID := middleware.GetUserID(c)
	var restaurant models.Restaurant
	err := config.DB.
		Preload("Location").
		Preload("Categories").
		Preload("FoodItems").
		Preload("FoodItems.Categories").
		Where("owner_id = ?", ownerID).
		First(&restaurant).Error
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "No restaurant found for your account"})
		return
	}
	resp := NewRestaurantResponse(c.Request, &restaurant)
	resp.FoodMenu = NewFoodItemResponses(c.Request, restaurant.FoodItems)
	c.JSON(http.StatusOK, gin.H{"data": resp})
}

// UpdateRestaurant updates restaurant details for the owner
func UpdateRestaurant(c *gin.Context) {
	ownerID := middleware.GetUserID(c)
	var restaurant models.Restaurant
	if err := config.DB.Where("owner_id = ?", ownerID).First(&restaurant).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Restaurant not found"})
		return
	}
	var req map[string]interface{}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	// Only allow safe fields
	allowed := map[string]bool{
		"name": true, "featured_image": true, "outlet": true, "email": true,
		"address": true, "phone_number": true, "working_days": true,
		"opening_time": true, "closing_time": true, "offer_text": true,
		"delivery_time": true,
	}
	update := map[string]interface{}{}
	for k, v := range req {
		if allowed[k] {
			update[k] = v
		}
	}
	if err := config.DB.Model(&restaurant).Updates(update).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update restaurant"})
		return
	}
	config.DB.Preload("Location").Preload("Categories").First(&restaurant, restaurant.ID)
	c.JSON(http.StatusOK, gin.H{
		"message": "Restaurant updated",
		"data":    NewRestaurantResponse(c.Request, &restaurant),
	})
}

// ── Menu Management ─────────────────────────────────────────────────────────

type CreateFoodItemRequest struct {
	Name        string          `json:"name" binding:"required"`
	Description string          `json:"description"`
	Image       string          `json:"image"`
	Price       float64         `json:"price" binding:"required,gt=0"`
	FoodType    models.FoodType `json:"food_type" binding:"omitempty,oneof=veg non-veg"`
	CategoryIDs []uint          `json:"categories"`
	Rating      *float64        `json:"rating"`
}

// AddFoodItem adds a new item to the owner's menu
func AddFoodItem(c *gin.Context) {
	ownerID := middleware.GetUserID(c)
	var restaurant models.Restaurant
	if err := config.DB.Where("owner_id = ?", ownerID).First(&restaurant).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Create a restaurant first before adding menu items"})
		return
	}

	var req CreateFoodItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	categories, err := loadCategories(req.CategoryIDs)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	foodType := req.FoodType
	if foodType == "" {
		foodType = models.FoodTypeNonVeg
	}

	item := models.FoodItem{
		RestaurantID: restaurant.ID,
		Name:         req.Name,
		Description:  req.Description,
		Image:        req.Image,
		Price:        req.Price,
		FoodType:     foodType,
		Rating:       req.Rating,
		Categories:   categories,
		IsAvailable:  true,
	}
	if err := config.DB.Create(&item).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to add menu item"})
		return
	}
	config.DB.Preload("Categories").First(&item, item.ID)
	c.JSON(http.StatusCreated, gin.H{
		"message": "Menu item added",
		"data":    NewFoodItemResponse(c.Request, &item),
	})
}

// ownedFoodItem loads a food item and verifies the caller owns its restaurant.
func ownedFoodItem(c *gin.Context, ownerID uint) (*models.FoodItem, bool) {
	var item models.FoodItem
	if err := config.DB.First(&item, c.Param("itemId")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Menu item not found"})
		return nil, false
	}
	var restaurant models.Restaurant
	if err := config.DB.Where("id = ? AND owner_id = ?", item.RestaurantID, ownerID).First(&restaurant).Error; err != nil {
		c.JSON(http.StatusForbidden, gin.H{"error": "You don't own this menu item"})
		return nil, false
	}
	return &item, true
}

// UpdateFoodItem updates a menu item (only by the owner)
func UpdateFoodItem(c *gin.Context) {
	ownerID := middleware.GetUserID(c)
	item, ok := ownedFoodItem(c, ownerID)
	if !ok {
		return
	}

	var req map[string]interface{}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	allowed := map[string]bool{
		"name": true, "description": true, "image": true, "price": true,
		"food_type": true, "is_available": true, "rating": true,
	}
	update := map[string]interface{}{}
	for k, v := range req {
		if allowed[k] {
			update[k] = v
		}
	}
	if err := config.DB.Model(item).Updates(update).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update menu item"})
		return
	}
	config.DB.Preload("Categories").First(item, item.ID)
	c.JSON(http.StatusOK, gin.H{
		"message": "Menu item updated",
		"data":    NewFoodItemResponse(c.Request, item),
	})
}

// DeleteFoodItem removes a menu item
func DeleteFoodItem(c *gin.Context) {
	ownerID := middleware.GetUserID(c)
	item, ok := ownedFoodItem(c, ownerID)
	if !ok {
		return
	}
	config.DB.Delete(item)
	c.JSON(http.StatusOK, gin.H{"message": "Menu item deleted"})
}
