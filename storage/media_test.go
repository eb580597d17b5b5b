package storage

import (
	"net/http/httptest"
	"testing"

	"food-marketplace-api/config"

	"github.com/stretchr/testify/assert"
)

func TestResolveImageURL(t *testing.T) {
	config.MediaBaseURL = "http://cdn.example.com/"

	req := httptest.NewRequest("GET", "http://api.example.com/api/v1/restaurants", nil)

	tests := []struct {
		name string
		path string
		want string
	}{
		{name: "empty path", path: "", want: ""},
		{name: "absolute http passes through", path: "http://elsewhere.com/a.jpg", want: "http://elsewhere.com/a.jpg"},
		{name: "absolute https passes through", path: "https://elsewhere.com/a.jpg", want: "https://elsewhere.com/a.jpg"},
		{name: "relative uses request host", path: "/media/food/a.jpg", want: "http://api.example.com/media/food/a.jpg"},
		{name: "missing leading slash added", path: "media/food/a.jpg", want: "http://api.example.com/media/food/a.jpg"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ResolveImageURL(req, tt.path))
		})
	}
}

func TestResolveImageURLWithoutRequest(t *testing.T) {
	config.MediaBaseURL = "http://cdn.example.com/"

	assert.Equal(t, "http://cdn.example.com/media/a.jpg", ResolveImageURL(nil, "/media/a.jpg"))
	assert.Equal(t, "", ResolveImageURL(nil, ""))
}
