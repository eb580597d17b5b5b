package storage

import (
	"net/http"
	"strings"

	"food-marketplace-api/config"
)

// ResolveImageURL turns a stored image path into a fetchable URL.
// Absolute URLs pass through untouched. Relative paths are prefixed
// with the request's scheme and host when a request is available,
// otherwise with the configured media base URL. An empty path resolves
// to an empty string so serializers can emit null.
func ResolveImageURL(r *http.Request, path string) string {
	if path == "" {
		return ""
	}
	if strings.HasPrefix(path, "http://") || strings.HasPrefix(path, "https://") {
		return path
	}
	if !strings.HasPrefix(path, "/") {
		path = "/" + path
	}
	if r != nil && r.Host != "" {
		scheme := "http"
		if r.TLS != nil {
			scheme = "https"
		}
		return scheme + "://" + r.Host + path
	}
	return strings.TrimSuffix(config.MediaBaseURL, "/") + path
}
