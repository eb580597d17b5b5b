package handlers

import (
	"errors"
	"log/slog"
	"net/http"
	"regexp"

	"food-marketplace-api/config"
	"food-marketplace-api/services"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

var orders *services.OrderService

// Init wires the handler package to the shared database and logger.
// Must run after config.InitDB.
func Init(log *slog.Logger) {
	orders = services.NewOrderService(config.DB, log)
}

var phonePattern = regexp.MustCompile(`^\+?[0-9]{7,15}$`)

// RegisterValidators installs custom binding rules on gin's validator.
func RegisterValidators() {
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		v.RegisterValidation("phone", func(fl validator.FieldLevel) bool {
			return phonePattern.MatchString(fl.Field().String())
		})
	}
}

// respondServiceError maps service-layer errors onto HTTP statuses.
func respondServiceError(c *gin.Context, err error) {
	var fieldErr *services.FieldError
	switch {
	case errors.As(err, &fieldErr):
		c.JSON(http.StatusBadRequest, gin.H{"error": fieldErr.Reason, "field": fieldErr.Field})
	case errors.Is(err, services.ErrValidation):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.Is(err, services.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "Resource not found"})
	case errors.Is(err, services.ErrForbidden):
		c.JSON(http.StatusForbidden, gin.H{"error": "You are not authorized to perform this action"})
	case errors.Is(err, services.ErrConflict):
		c.JSON(http.StatusConflict, gin.H{"error": "Conflicting update, please retry"})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
	}
}
