package utils

import (
	"net/http"

	"tabu/globals"
	"tabu/models"
)

// CurrentUser returns the authenticated user placed in the request context
// by the auth middleware, or nil on unauthenticated requests.
func CurrentUser(r *http.Request) *models.User {
	user, ok := r.Context().Value(globals.UserKey).(*models.User)
	if !ok {
		return nil
	}
	return user
}
