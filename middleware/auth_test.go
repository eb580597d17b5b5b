package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"food-marketplace-api/config"
	"food-marketplace-api/models"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newAuthRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/whoami", AuthRequired(), func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"user_id": GetUserID(c), "role": GetRole(c)})
	})
	r.GET("/owners-only", AuthRequired(), RoleRequired(models.RoleRestaurantOwner), func(c *gin.Context) {
		c.Status(http.StatusOK)
	})
	return r
}

func TestTokenRoundTrip(t *testing.T) {
	config.JWTSecret = []byte("test-secret")
	r := newAuthRouter()

	user := models.User{ID: 42, Email: "ravi@example.com", Role: models.RoleRestaurantOwner}
	token, err := GenerateToken(&user)
	require.NoError(t, err)

	req := httptest.NewRequest("GET", "/whoami", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"user_id":42`)
	assert.Contains(t, rec.Body.String(), `"role":"restaurant_owner"`)
}

func TestAuthRequiredRejectsBadTokens(t *testing.T) {
	config.JWTSecret = []byte("test-secret")
	r := newAuthRouter()

	tests := []struct {
		name   string
		header string
	}{
		{name: "missing header", header: ""},
		{name: "not bearer", header: "Basic abc"},
		{name: "garbage token", header: "Bearer not.a.token"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest("GET", "/whoami", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			rec := httptest.NewRecorder()
			r.ServeHTTP(rec, req)
			assert.Equal(t, http.StatusUnauthorized, rec.Code)
		})
	}
}

func TestRoleRequired(t *testing.T) {
	config.JWTSecret = []byte("test-secret")
	r := newAuthRouter()

	owner := models.User{ID: 1, Email: "o@example.com", Role: models.RoleRestaurantOwner}
	customer := models.User{ID: 2, Email: "c@example.com", Role: models.RoleCustomer}

	ownerToken, err := GenerateToken(&owner)
	require.NoError(t, err)
	customerToken, err := GenerateToken(&customer)
	require.NoError(t, err)

	req := httptest.NewRequest("GET", "/owners-only", nil)
	req.Header.Set("Authorization", "Bearer "+ownerToken)
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusOK, rec.Code)

	req = httptest.NewRequest("GET", "/owners-only", nil)
	req.Header.Set("Authorization", "Bearer "+customerToken)
	rec = httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusForbidden, rec.Code)
}
