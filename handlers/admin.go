package handlers

import (
	"net/http"
	"strconv"

	"food-marketplace-api/config"
	"food-marketplace-api/models"

	"github.com/gin-gonic/gin"
)

func uintQuery(c *gin.Context, key string) uint {
	v, _ := strconv.ParseUint(c.Query(key), 10, 32)
	return uint(v)
}

// AdminGetAllOrders returns every order, soft-deleted included, with
// filters and a revenue summary — admin only.
func AdminGetAllOrders(c *gin.Context) {
	list, err := orders.ListAll(c.Query("status"), uintQuery(c, "user_id"), uintQuery(c, "restaurant_id"))
	if err != nil {
		respondServiceError(c, err)
		return
	}

	summary := map[string]int{}
	var totalRevenue float64
	for _, o := range list {
		summary[string(o.Status)]++
		if o.Status == models.StatusCompleted {
			totalRevenue += o.TotalPrice
		}
	}

	c.JSON(http.StatusOK, gin.H{
		"order_summary": summary,
		"total_revenue": totalRevenue,
		"count":         len(list),
		"orders":        NewOrderResponses(c.Request, list),
	})
}

// AdminForceOrderStatus lets admin override any order state (emergency use)
func AdminForceOrderStatus(c *gin.Context) {
	orderID, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid order id"})
		return
	}

	var req struct {
		Status models.OrderStatus `json:"status" binding:"required"`
		Reason string             `json:"reason"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	order, err := orders.ForceStatus(uint(orderID), req.Status)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"message": "Order status force-updated by admin",
		"reason":  req.Reason,
		"order":   NewOrderResponse(c.Request, order),
	})
}

// AdminGetAllUsers returns all users — admin only
func AdminGetAllUsers(c *gin.Context) {
	var users []models.User
	query := config.DB
	if role := c.Query("role"); role != "" {
		query = query.Where("role = ?", role)
	}
	query.Find(&users)
	c.JSON(http.StatusOK, gin.H{"count": len(users), "users": users})
}

// AdminGetAllRestaurants returns all restaurants — admin only
func AdminGetAllRestaurants(c *gin.Context) {
	var restaurants []models.Restaurant
	config.DB.Preload("Location").Preload("Categories").Find(&restaurants)
	c.JSON(http.StatusOK, gin.H{
		"count": len(restaurants),
		"data":  NewRestaurantResponses(c.Request, restaurants),
	})
}
