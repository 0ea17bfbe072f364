package api

import (
	"errors"
	"net/http"

	"github.com/ospreyr/shotmark/internal/auth"
)

// Login handles POST /api/auth/login. On success it returns the identity;
// the client keeps it itself, no session is stored server-side.
func (h *Handler) Login(idp auth.Provider) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req LoginRequest
		if !decode(w, r, &req) {
			return
		}
		identity, err := idp.Login(req.Username, req.Password)
		if err != nil {
			if errors.Is(err, auth.ErrInvalidCredentials) {
				writeJSON(w, http.StatusUnauthorized, errorBody("invalid credentials"))
				return
			}
			writeStoreError(w, "login", err)
			return
		}
		writeJSON(w, http.StatusOK, identity)
	}
}
