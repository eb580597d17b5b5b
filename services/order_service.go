package services

import (
	"errors"
	"log/slog"

	"food-marketplace-api/models"
	"food-marketplace-api/statemachine"

	"gorm.io/gorm"
)

// orderCodeAttempts bounds the retry loop on order-code collisions.
const orderCodeAttempts = 3

// OrderService owns the order aggregate: creation with price
// snapshotting, scoped listings, the status state machine, and soft
// deletion. Handlers stay thin and call into here.
type OrderService struct {
	DB  *gorm.DB
	Log *slog.Logger
}

func NewOrderService(db *gorm.DB, log *slog.Logger) *OrderService {
	return &OrderService{DB: db, Log: log}
}

type OrderItemInput struct {
	FoodItemID uint
	Quantity   int
}

type CreateOrderInput struct {
	RestaurantID     uint
	Items            []OrderItemInput
	CustomerLocation string
	CustomerPhone    string
}

// Create validates the cart and persists one Order plus its OrderItems
// in a single transaction. The total is computed server-side from the
// current item prices, so a failure on any line leaves nothing behind.
func (s *OrderService) Create(userID uint, in CreateOrderInput) (*models.Order, error) {
	if len(in.Items) == 0 {
		return nil, fieldErrorf("order_items", "at least one item is required")
	}
	for _, item := range in.Items {
		if item.Quantity < 1 {
			return nil, fieldErrorf("quantity", "must be a positive integer")
		}
	}

	var restaurant models.Restaurant
	if err := s.DB.First(&restaurant, in.RestaurantID).Error; err != nil {
		return nil, fieldErrorf("restaurant", "invalid restaurant ID")
	}

	var orderItems []models.OrderItem
	var total float64
	for _, item := range in.Items {
		var foodItem models.FoodItem
		if err := s.DB.First(&foodItem, item.FoodItemID).Error; err != nil {
			return nil, fieldErrorf("menu_item", "invalid food item ID %d", item.FoodItemID)
		}
		if foodItem.RestaurantID != restaurant.ID {
			return nil, fieldErrorf("menu_item", "food item %d does not belong to this restaurant", foodItem.ID)
		}
		if !foodItem.IsAvailable {
			return nil, fieldErrorf("menu_item", "food item '%s' is not available", foodItem.Name)
		}
		total += foodItem.Price * float64(item.Quantity)
		orderItems = append(orderItems, models.OrderItem{
			FoodItemID: foodItem.ID,
			Quantity:   item.Quantity,
		})
	}

	// The unique index on order_code is the collision authority; a
	// duplicate aborts the transaction and we retry with a fresh code.
	var created models.Order
	for attempt := 0; ; attempt++ {
		// Fresh item values each attempt: a failed insert may have
		// stamped IDs onto the previous batch.
		items := make([]models.OrderItem, len(orderItems))
		copy(items, orderItems)

		order := models.Order{
			UserID:           userID,
			RestaurantID:     restaurant.ID,
			TotalPrice:       total,
			CustomerLocation: in.CustomerLocation,
			CustomerPhone:    in.CustomerPhone,
			Status:           models.StatusPending,
			OrderItems:       items,
		}
		err := s.DB.Transaction(func(tx *gorm.DB) error {
			return tx.Create(&order).Error
		})
		if err == nil {
			created = order
			break
		}
		if isDuplicate(err) && attempt < orderCodeAttempts-1 {
			s.Log.Warn("order code collision, retrying", "attempt", attempt+1)
			continue
		}
		if isDuplicate(err) {
			return nil, ErrConflict
		}
		return nil, err
	}

	s.Log.Info("order created",
		"order_code", created.OrderCode, "user_id", userID,
		"restaurant_id", restaurant.ID, "total_price", created.TotalPrice)
	return s.Get(created.ID)
}

// Get loads a single order with its nested associations.
func (s *OrderService) Get(orderID uint) (*models.Order, error) {
	var order models.Order
	err := s.DB.
		Preload("OrderItems.FoodItem").
		Preload("Restaurant").
		Preload("User").
		First(&order, orderID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &order, nil
}

// GetForCaller loads an order and enforces read visibility: the
// purchaser, the owning restaurant's owner, and admins may see it.
func (s *OrderService) GetForCaller(orderID, callerID uint, role models.UserRole) (*models.Order, error) {
	order, err := s.Get(orderID)
	if err != nil {
		return nil, err
	}
	if role == models.RoleAdmin || order.UserID == callerID {
		return order, nil
	}
	var restaurant models.Restaurant
	if err := s.DB.Where("owner_id = ?", callerID).First(&restaurant).Error; err == nil &&
		restaurant.ID == order.RestaurantID {
		return order, nil
	}
	return nil, ErrForbidden
}

// ListForPurchaser returns the caller's own orders, soft-deleted rows
// excluded, newest first.
func (s *OrderService) ListForPurchaser(userID uint) ([]models.Order, error) {
	var orders []models.Order
	err := s.DB.
		Preload("OrderItems.FoodItem").
		Preload("Restaurant").
		Preload("User").
		Where("user_id = ? AND is_deleted = ?", userID, false).
		Order("created_at desc").
		Find(&orders).Error
	return orders, err
}

// ListForOwner is the owner-aware general view: callers who own a
// restaurant get that restaurant's orders; everyone else gets an empty
// list. Soft-deleted rows are excluded here too.
func (s *OrderService) ListForOwner(callerID uint) ([]models.Order, error) {
	var restaurant models.Restaurant
	if err := s.DB.Where("owner_id = ?", callerID).First(&restaurant).Error; err != nil {
		return []models.Order{}, nil
	}
	return s.listForRestaurant(restaurant.ID, "")
}

// ListForRestaurant returns the orders of the caller's owned
// restaurant, optionally filtered by status. Callers without a
// restaurant get ErrNotFound.
func (s *OrderService) ListForRestaurant(ownerID uint, status string) (*models.Restaurant, []models.Order, error) {
	var restaurant models.Restaurant
	if err := s.DB.Where("owner_id = ?", ownerID).First(&restaurant).Error; err != nil {
		return nil, nil, ErrNotFound
	}
	orders, err := s.listForRestaurant(restaurant.ID, status)
	return &restaurant, orders, err
}

func (s *OrderService) listForRestaurant(restaurantID uint, status string) ([]models.Order, error) {
	var orders []models.Order
	query := s.DB.
		Preload("OrderItems.FoodItem").
		Preload("Restaurant").
		Preload("User").
		Where("restaurant_id = ? AND is_deleted = ?", restaurantID, false)
	if status != "" {
		query = query.Where("status = ?", status)
	}
	err := query.Order("created_at desc").Find(&orders).Error
	return orders, err
}

// ListAll is the admin view: every order, soft-deleted included, with
// optional status/customer/restaurant filters.
func (s *OrderService) ListAll(status string, userID, restaurantID uint) ([]models.Order, error) {
	var orders []models.Order
	query := s.DB.
		Preload("OrderItems.FoodItem").
		Preload("Restaurant").
		Preload("User")
	if status != "" {
		query = query.Where("status = ?", status)
	}
	if userID != 0 {
		query = query.Where("user_id = ?", userID)
	}
	if restaurantID != 0 {
		query = query.Where("restaurant_id = ?", restaurantID)
	}
	err := query.Order("created_at desc").Find(&orders).Error
	return orders, err
}

// UpdateStatus moves an order to the requested status. Only the owner
// of the order's restaurant may do this; the transition must be in the
// state machine table; the write compare-and-swaps on the current
// status so a concurrent update surfaces as ErrConflict.
func (s *OrderService) UpdateStatus(ownerID, orderID uint, next models.OrderStatus) (*models.Order, error) {
	var order models.Order
	if err := s.DB.First(&order, orderID).Error; err != nil {
		return nil, ErrNotFound
	}

	var restaurant models.Restaurant
	if err := s.DB.Where("owner_id = ?", ownerID).First(&restaurant).Error; err != nil {
		return nil, ErrForbidden
	}
	if order.RestaurantID != restaurant.ID {
		return nil, ErrForbidden
	}

	if !models.ValidStatus(next) {
		return nil, fieldErrorf("status", "invalid status choice")
	}
	if err := statemachine.CanTransition(order.Status, next); err != nil {
		return nil, &FieldError{Field: "status", Reason: err.Error()}
	}

	res := s.DB.Model(&models.Order{}).
		Where("id = ? AND status = ?", order.ID, order.Status).
		Update("status", next)
	if res.Error != nil {
		return nil, res.Error
	}
	if res.RowsAffected == 0 {
		return nil, ErrConflict
	}

	s.Log.Info("order status updated",
		"order_code", order.OrderCode, "from", order.Status, "to", next, "by", ownerID)
	return s.Get(order.ID)
}

// ForceStatus is the admin override: any of the four tokens may be
// written regardless of the transition table.
func (s *OrderService) ForceStatus(orderID uint, next models.OrderStatus) (*models.Order, error) {
	if !models.ValidStatus(next) {
		return nil, fieldErrorf("status", "invalid status choice")
	}
	var order models.Order
	if err := s.DB.First(&order, orderID).Error; err != nil {
		return nil, ErrNotFound
	}
	if err := s.DB.Model(&order).Update("status", next).Error; err != nil {
		return nil, err
	}
	s.Log.Warn("order status force-updated",
		"order_code", order.OrderCode, "from", order.Status, "to", next)
	return s.Get(order.ID)
}

// SoftDelete marks the purchaser's order deleted. The row stays; a
// second delete is a no-op success.
func (s *OrderService) SoftDelete(userID, orderID uint) error {
	var order models.Order
	if err := s.DB.First(&order, orderID).Error; err != nil {
		return ErrNotFound
	}
	if order.UserID != userID {
		return ErrForbidden
	}
	if order.IsDeleted {
		return nil
	}
	return s.DB.Model(&order).Update("is_deleted", true).Error
}
