// Package controllers translates HTTP requests into store operations and
// shapes the JSON responses.
package controllers

import (
	"net/http"
	"strconv"
)

const defaultPerPage = 10

// queryInt reads an integer query parameter, falling back when absent or
// unparseable.
func queryInt(r *http.Request, key string, fallback int) int {
	raw := r.URL.Query().Get(key)
	if raw == "" {
		return fallback
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		return fallback
	}
	return n
}
