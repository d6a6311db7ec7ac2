package handler

import (
	"net/http"
	"strconv"
)

// pathInt extracts a positive integer path parameter.
func pathInt(r *http.Request, name string) (int, bool) {
	value, err := strconv.Atoi(r.PathValue(name))
	if err != nil || value <= 0 {
		return 0, false
	}
	return value, true
}

// pagination reads the skip/limit query parameters, defaulting to 0/100 and
// capping limit at 1000.
func pagination(r *http.Request) (skip, limit int) {
	skip, limit = 0, 100
	if v, err := strconv.Atoi(r.URL.Query().Get("skip")); err == nil && v >= 0 {
		skip = v
	}
	if v, err := strconv.Atoi(r.URL.Query().Get("limit")); err == nil && v >= 1 && v <= 1000 {
		limit = v
	}
	return skip, limit
}
