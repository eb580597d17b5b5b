package handlers

import (
	"net/http"
	"strconv"

	"food-marketplace-api/config"
	"food-marketplace-api/models"

	"github.com/gin-gonic/gin"
)

const defaultPageSize = 10

func pageParams(c *gin.Context) (limit, offset int) {
	limit, _ = strconv.Atoi(c.DefaultQuery("limit", strconv.Itoa(defaultPageSize)))
	if limit < 1 || limit > 100 {
		limit = defaultPageSize
	}
	offset, _ = strconv.Atoi(c.DefaultQuery("offset", "0"))
	if offset < 0 {
		offset = 0
	}
	return limit, offset
}

// ListRestaurants returns all restaurants (public), paginated, with an
// optional name search.
func ListRestaurants(c *gin.Context) {
	countQuery := config.DB.Model(&models.Restaurant{})
	listQuery := config.DB.Preload("Location").Preload("Categories")
	if q := c.Query("q"); q != "" {
		countQuery = countQuery.Where("name LIKE ?", "%"+q+"%")
		listQuery = listQuery.Where("name LIKE ?", "%"+q+"%")
	}

	var count int64
	countQuery.Count(&count)

	var restaurants []models.Restaurant
	limit, offset := pageParams(c)
	listQuery.Order("id").Limit(limit).Offset(offset).Find(&restaurants)

	c.JSON(http.StatusOK, gin.H{
		"count": count,
		"data":  NewRestaurantResponses(c.Request, restaurants),
	})
}

// GetRestaurant returns a single restaurant with its menu. Only items
// marked available are surfaced to customers.
func GetRestaurant(c *gin.Context) {
	var restaurant models.Restaurant
	err := config.DB.
		Preload("Location").
		Preload("Categories").
		Preload("FoodItems", "is_available = ?", true).
		Preload("FoodItems.Categories").
		First(&restaurant, c.Param("id")).Error
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Restaurant not found"})
		return
	}

	resp := NewRestaurantResponse(c.Request, &restaurant)
	resp.FoodMenu = NewFoodItemResponses(c.Request, restaurant.FoodItems)
	c.JSON(http.StatusOK, gin.H{"data": resp})
}

// ListFoodItems returns every available food item (public)
func ListFoodItems(c *gin.Context) {
	var items []models.FoodItem
	config.DB.Preload("Categories").Where("is_available = ?", true).Find(&items)
	c.JSON(http.StatusOK, gin.H{"data": NewFoodItemResponses(c.Request, items)})
}

// GetFoodItem returns a single available food item (public)
func GetFoodItem(c *gin.Context) {
	var item models.FoodItem
	err := config.DB.Preload("Categories").
		Where("is_available = ?", true).
		First(&item, c.Param("id")).Error
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Food item not found"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": NewFoodItemResponse(c.Request, &item)})
}

// ListLocations returns all delivery locations (public)
func ListLocations(c *gin.Context) {
	var locations []models.Location
	config.DB.Order("id").Find(&locations)
	c.JSON(http.StatusOK, gin.H{"data": locations})
}

// ListCategories returns all food categories (public)
func ListCategories(c *gin.Context) {
	var categories []models.Category
	config.DB.Order("id").Find(&categories)
	c.JSON(http.StatusOK, gin.H{"data": categories})
}
