package handlers

import (
	"net/http"
	"strconv"

	"food-marketplace-api/middleware"
	"food-marketplace-api/services"

	"github.com/gin-gonic/gin"
)

type PlaceOrderRequest struct {
	RestaurantID     uint   `json:"restaurant" binding:"required"`
	CustomerLocation string `json:"customer_location" binding:"required"`
	CustomerPhone    string `json:"customer_phone" binding:"required,phone"`
	OrderItems       []struct {
		MenuItem uint `json:"menu_item" binding:"required"`
		Quantity int  `json:"quantity" binding:"required,min=1"`
	} `json:"order_items" binding:"required,min=1"`
}

// PlaceOrder creates a new order for the logged-in customer
func PlaceOrder(c *gin.Context) {
	userID := middleware.GetUserID(c)

	var req PlaceOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	in := services.CreateOrderInput{
		RestaurantID:     req.RestaurantID,
		CustomerLocation: req.CustomerLocation,
		CustomerPhone:    req.CustomerPhone,
	}
	for _, item := range req.OrderItems {
		in.Items = append(in.Items, services.OrderItemInput{
			FoodItemID: item.MenuItem,
			Quantity:   item.Quantity,
		})
	}

	order, err := orders.Create(userID, in)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, NewOrderResponse(c.Request, order))
}

// GetMyOrders returns the logged-in customer's orders, excluding
// soft-deleted ones.
func GetMyOrders(c *gin.Context) {
	userID := middleware.GetUserID(c)
	list, err := orders.ListForPurchaser(userID)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"count":  len(list),
		"orders": NewOrderResponses(c.Request, list),
	})
}

// GetOrderDetail returns a single order visible to the caller: the
// purchaser, the owning restaurant's owner, or an admin.
func GetOrderDetail(c *gin.Context) {
	userID := middleware.GetUserID(c)
	role := middleware.GetRole(c)

	orderID, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid order id"})
		return
	}

	order, err := orders.GetForCaller(uint(orderID), userID, role)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, NewOrderResponse(c.Request, order))
}

// DeleteOrder soft-deletes the purchaser's order. The row stays in the
// store; repeated deletes succeed with the same result.
func DeleteOrder(c *gin.Context) {
	userID := middleware.GetUserID(c)

	orderID, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid order id"})
		return
	}

	if err := orders.SoftDelete(userID, uint(orderID)); err != nil {
		respondServiceError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
