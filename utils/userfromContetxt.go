package utils

import (
	"net/http"

	"chefreel/globals"
)

// GetUserIDFromRequest returns the user id placed in the request context by
// the auth middleware, or "" when there is none.
func GetUserIDFromRequest(r *http.Request) string {
	id, ok := r.Context().Value(globals.UserIDKey).(string)
	if !ok {
		return ""
	}
	return id
}

// UserIDOr is GetUserIDFromRequest with a fallback for anonymous requests.
func UserIDOr(r *http.Request, fallback string) string {
	if id := GetUserIDFromRequest(r); id != "" {
		return id
	}
	return fallback
}
