package handlers

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"dayplan/middleware"
)

// requestUserID pulls the verified identity for the request. Every resource
// handler takes ownership scope from here, never from the request body.
func requestUserID(w http.ResponseWriter, r *http.Request) (int64, bool) {
	userID, ok := middleware.UserID(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "Unauthorized")
		return 0, false
	}
	return userID, true
}

func pathID(w http.ResponseWriter, r *http.Request) (int64, bool) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil || id <= 0 {
		writeError(w, http.StatusBadRequest, "invalid id")
		return 0, false
	}
	return id, true
}
