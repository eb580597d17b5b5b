package models

import (
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewOrderCodeFormat(t *testing.T) {
	t.Parallel()

	pattern := regexp.MustCompile(`^ORD-[0-9A-F]{8}$`)
	seen := map[string]bool{}
	for i := 0; i < 100; i++ {
		code := NewOrderCode()
		require.Regexp(t, pattern, code)
		assert.False(t, seen[code], "duplicate code %s", code)
		seen[code] = true
	}
}

func TestValidStatus(t *testing.T) {
	t.Parallel()

	for _, s := range []OrderStatus{StatusPending, StatusProcessing, StatusCompleted, StatusCancelled} {
		assert.True(t, ValidStatus(s))
	}
	assert.False(t, ValidStatus("SHIPPED"))
	assert.False(t, ValidStatus("pending"))
	assert.False(t, ValidStatus(""))
}

func TestValidRole(t *testing.T) {
	t.Parallel()

	for _, r := range []UserRole{RoleAdmin, RoleCustomer, RoleRestaurantOwner} {
		assert.True(t, ValidRole(r))
	}
	assert.False(t, ValidRole("driver"))
	assert.False(t, ValidRole(""))
}
