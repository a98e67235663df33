package utils

import (
	"net/http"
	"strconv"

	"go.mongodb.org/mongo-driver/bson"
)

type PageOptions struct {
	Page  int64
	Limit int64
}

func (p PageOptions) Skip() int64 {
	return (p.Page - 1) * p.Limit
}

// ParsePagination reads page/limit query params with a per-endpoint default
// and cap on limit.
func ParsePagination(r *http.Request, defaultLimit, maxLimit int64) PageOptions {
	q := r.URL.Query()

	page, _ := strconv.ParseInt(q.Get("page"), 10, 64)
	if page < 1 {
		page = 1
	}

	limit, _ := strconv.ParseInt(q.Get("limit"), 10, 64)
	if limit < 1 {
		limit = defaultLimit
	}
	if limit > maxLimit {
		limit = maxLimit
	}

	return PageOptions{Page: page, Limit: limit}
}

// ParseSort builds a Mongo sort document from sortBy/order query params,
// restricted to the allowed field set.
func ParseSort(r *http.Request, defaultField, defaultOrder string, allowed []string) bson.D {
	q := r.URL.Query()

	field := q.Get("sortBy")
	if !contains(allowed, field) {
		field = defaultField
	}

	dir := q.Get("order")
	if dir != "asc" && dir != "desc" {
		dir = defaultOrder
	}

	order := -1
	if dir == "asc" {
		order = 1
	}

	return bson.D{{Key: field, Value: order}}
}

// TotalPages computes the page count the way the original API reports it.
func TotalPages(total, limit int64) int64 {
	if limit <= 0 {
		return 0
	}
	pages := total / limit
	if total%limit != 0 {
		pages++
	}
	return pages
}

func contains(slice []string, value string) bool {
	for _, v := range slice {
		if v == value {
			return true
		}
	}
	return false
}
