package handlers

import (
	"net/http"
	"time"

	"food-marketplace-api/models"
	"food-marketplace-api/storage"
)

// Wire shapes mirror the API's nested representations: line items carry
// the referenced food item's display fields, images are resolved to
// URLs, lookup references are flattened to names.

type FoodItemSummary struct {
	ID    uint    `json:"id"`
	Name  string  `json:"name"`
	Price float64 `json:"price"`
	Image *string `json:"image"`
}

type OrderItemResponse struct {
	ID       uint            `json:"id"`
	MenuItem FoodItemSummary `json:"menu_item"`
	Quantity int             `json:"quantity"`
}

type RestaurantSummary struct {
	ID   uint   `json:"id"`
	Name string `json:"name"`
}

type OrderResponse struct {
	ID               uint                `json:"id"`
	OrderCode        string              `json:"order_code"`
	Restaurant       RestaurantSummary   `json:"restaurant"`
	TotalPrice       float64             `json:"total_price"`
	Status           models.OrderStatus  `json:"status"`
	CreatedAt        time.Time           `json:"created_at"`
	OrderItems       []OrderItemResponse `json:"order_items"`
	User             string              `json:"user"`
	CustomerLocation string              `json:"customer_location"`
	CustomerPhone    string              `json:"customer_phone"`
	IsDeleted        bool                `json:"is_deleted"`
}

func imageURL(r *http.Request, path string) *string {
	resolved := storage.ResolveImageURL(r, path)
	if resolved == "" {
		return nil
	}
	return &resolved
}

func NewOrderResponse(r *http.Request, o *models.Order) OrderResponse {
	items := make([]OrderItemResponse, 0, len(o.OrderItems))
	for _, item := range o.OrderItems {
		items = append(items, OrderItemResponse{
			ID: item.ID,
			MenuItem: FoodItemSummary{
				ID:    item.FoodItem.ID,
				Name:  item.FoodItem.Name,
				Price: item.FoodItem.Price,
				Image: imageURL(r, item.FoodItem.Image),
			},
			Quantity: item.Quantity,
		})
	}
	return OrderResponse{
		ID:               o.ID,
		OrderCode:        o.OrderCode,
		Restaurant:       RestaurantSummary{ID: o.Restaurant.ID, Name: o.Restaurant.Name},
		TotalPrice:       o.TotalPrice,
		Status:           o.Status,
		CreatedAt:        o.CreatedAt,
		OrderItems:       items,
		User:             o.User.Name,
		CustomerLocation: o.CustomerLocation,
		CustomerPhone:    o.CustomerPhone,
		IsDeleted:        o.IsDeleted,
	}
}

func NewOrderResponses(r *http.Request, orders []models.Order) []OrderResponse {
	out := make([]OrderResponse, 0, len(orders))
	for i := range orders {
		out = append(out, NewOrderResponse(r, &orders[i]))
	}
	return out
}

type FoodItemResponse struct {
	ID           uint            `json:"id"`
	RestaurantID uint            `json:"restaurant_id"`
	Image        *string         `json:"image"`
	Name         string          `json:"name"`
	Description  string          `json:"description"`
	Price        float64         `json:"price"`
	FoodType     models.FoodType `json:"food_type"`
	Rating       *float64        `json:"rating"`
	Categories   []string        `json:"categories"`
	IsAvailable  bool            `json:"is_available"`
}

func NewFoodItemResponse(r *http.Request, f *models.FoodItem) FoodItemResponse {
	return FoodItemResponse{
		ID:           f.ID,
		RestaurantID: f.RestaurantID,
		Image:        imageURL(r, f.Image),
		Name:         f.Name,
		Description:  f.Description,
		Price:        f.Price,
		FoodType:     f.FoodType,
		Rating:       f.Rating,
		Categories:   categoryNames(f.Categories),
		IsAvailable:  f.IsAvailable,
	}
}

func NewFoodItemResponses(r *http.Request, items []models.FoodItem) []FoodItemResponse {
	out := make([]FoodItemResponse, 0, len(items))
	for i := range items {
		out = append(out, NewFoodItemResponse(r, &items[i]))
	}
	return out
}

type RestaurantResponse struct {
	ID            uint               `json:"id"`
	OwnerID       uint               `json:"owner_id"`
	Name          string             `json:"name"`
	FeaturedImage *string            `json:"featured_image"`
	Rating        *float64           `json:"rating"`
	Location      string             `json:"location"`
	Outlet        string             `json:"outlet"`
	Email         string             `json:"email"`
	Address       string             `json:"address"`
	PhoneNumber   string             `json:"phone_number"`
	WorkingDays   string             `json:"working_days"`
	Categories    []string           `json:"categories"`
	OpeningTime   string             `json:"opening_time"`
	ClosingTime   string             `json:"closing_time"`
	OfferText     string             `json:"offer_text"`
	DeliveryTime  string             `json:"delivery_time"`
	FoodMenu      []FoodItemResponse `json:"food_menu,omitempty"`
}

func NewRestaurantResponse(r *http.Request, rest *models.Restaurant) RestaurantResponse {
	return RestaurantResponse{
		ID:            rest.ID,
		OwnerID:       rest.OwnerID,
		Name:          rest.Name,
		FeaturedImage: imageURL(r, rest.FeaturedImage),
		Rating:        rest.Rating,
		Location:      rest.Location.Name,
		Outlet:        rest.Outlet,
		Email:         rest.Email,
		Address:       rest.Address,
		PhoneNumber:   rest.PhoneNumber,
		WorkingDays:   rest.WorkingDays,
		Categories:    categoryNames(rest.Categories),
		OpeningTime:   rest.OpeningTime,
		ClosingTime:   rest.ClosingTime,
		OfferText:     rest.OfferText,
		DeliveryTime:  rest.DeliveryTime,
	}
}

func NewRestaurantResponses(r *http.Request, restaurants []models.Restaurant) []RestaurantResponse {
	out := make([]RestaurantResponse, 0, len(restaurants))
	for i := range restaurants {
		out = append(out, NewRestaurantResponse(r, &restaurants[i]))
	}
	return out
}

func categoryNames(categories []models.Category) []string {
	names := make([]string, 0, len(categories))
	for _, c := range categories {
		names = append(names, c.Name)
	}
	return names
}
