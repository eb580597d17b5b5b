package handlers

import (
	"net/http"
	"strconv"

	"food-marketplace-api/middleware"
	"food-marketplace-api/models"

	"github.com/gin-gonic/gin"
)

// ListOrders is the owner-aware general view: callers who own a
// restaurant see that restaurant's orders; everyone else gets an
// empty list.
func ListOrders(c *gin.Context) {
	callerID := middleware.GetUserID(c)
	list, err := orders.ListForOwner(callerID)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"count":  len(list),
		"orders": NewOrderResponses(c.Request, list),
	})
}

// GetRestaurantOrders returns all orders for the owner's restaurant,
// with per-status counts for the dashboard.
func GetRestaurantOrders(c *gin.Context) {
	ownerID := middleware.GetUserID(c)

	restaurant, list, err := orders.ListForRestaurant(ownerID, c.Query("status"))
	if err != nil {
		respondServiceError(c, err)
		return
	}

	summary := map[string]int{}
	for _, o := range list {
		summary[string(o.Status)]++
	}

	c.JSON(http.StatusOK, gin.H{
		"restaurant":    restaurant.Name,
		"order_summary": summary,
		"count":         len(list),
		"orders":        NewOrderResponses(c.Request, list),
	})
}

type UpdateOrderStatusRequest struct {
	Status models.OrderStatus `json:"status" binding:"required"`
}

// UpdateOrderStatus moves an order through its lifecycle. Only the
// owner of the order's restaurant may call this; the transition table
// decides which moves are legal.
func UpdateOrderStatus(c *gin.Context) {
	ownerID := middleware.GetUserID(c)

	orderID, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid order id"})
		return
	}

	var req UpdateOrderStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	order, err := orders.UpdateStatus(ownerID, uint(orderID), req.Status)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, NewOrderResponse(c.Request, order))
}
