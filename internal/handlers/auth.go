package handlers

import (
	"encoding/json"
	"net/http"

	"movierec/internal/container"
)

type signupRequest struct {
	UserID   string `json:"user_id"`
	Password string `json:"password"`
	Name     string `json:"name"`
}

type loginRequest struct {
	UserID   string `json:"user_id"`
	Password string `json:"password"`
}

func Signup(c *container.Container) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			writeError(w, http.StatusMethodNotAllowed, "method not allowed")
			return
		}

		var req signupRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeError(w, http.StatusBadRequest, "invalid request body")
			return
		}
		if req.UserID == "" || req.Password == "" || req.Name == "" {
			writeError(w, http.StatusUnprocessableEntity, "user_id, password and name are required")
			return
		}

		user, err := c.UserService.Signup(r.Context(), req.UserID, req.Password, req.Name)
		if err != nil {
			writeDomainError(c, w, err)
			return
		}
		writeJSON(w, http.StatusCreated, user)
	}
}

func Login(c *container.Container) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			writeError(w, http.StatusMethodNotAllowed, "method not allowed")
			return
		}

		var req loginRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeError(w, http.StatusBadRequest, "invalid request body")
			return
		}

		user, err := c.UserService.Login(r.Context(), req.UserID, req.Password)
		if err != nil {
			writeDomainError(c, w, err)
			return
		}
		writeJSON(w, http.StatusOK, user)
	}
}
