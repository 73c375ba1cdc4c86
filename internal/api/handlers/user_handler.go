package handlers

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/isdelr/accounts-api/internal/apperr"
	"github.com/isdelr/accounts-api/internal/auth"
	"github.com/isdelr/accounts-api/internal/models"
	"github.com/isdelr/accounts-api/internal/services"
	"github.com/isdelr/accounts-api/internal/validation"
)

// MediaTypeSimple selects the reduced user projection (id and name only)
// when named in the Accept header.
const MediaTypeSimple = "application/vnd.accounts.simple+json"

// UserHandler handles HTTP requests for user management.
type UserHandler struct {
	service services.UserServiceProvider
	tokens  *auth.TokenIssuer
}

// NewUserHandler creates a new UserHandler.
func NewUserHandler(service services.UserServiceProvider, tokens *auth.TokenIssuer) *UserHandler {
	return &UserHandler{service: service, tokens: tokens}
}

// decodeJSON decodes a request body strictly: unknown fields are rejected.
func decodeJSON(r *http.Request, dst any) error {
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	if err := dec.Decode(dst); err != nil {
		return apperr.Validation("Invalid request body")
	}
	return nil
}

// userProjection selects the response shape from the Accept header.
func userProjection(r *http.Request, user models.User) models.UserResponse {
	if strings.Contains(r.Header.Get("Accept"), MediaTypeSimple) {
		return models.NewSimpleUserResponse(user)
	}
	return models.NewUserResponse(user)
}

// Create handles new account registration and issues an auth token.
func (h *UserHandler) Create(w http.ResponseWriter, r *http.Request) {
	var input models.CreateUserInput
	if err := decodeJSON(r, &input); err != nil {
		respondError(w, r, err)
		return
	}

	user, err := h.service.CreateUser(input)
	if err != nil {
		respondError(w, r, err)
		return
	}

	token, err := h.tokens.Generate(user)
	if err != nil {
		respondError(w, r, err)
		return
	}

	respondJSON(w, http.StatusCreated, envelope{
		Data:    userProjection(r, user),
		Message: "User created successfully",
		Token:   token,
	})
}

// Login handles user authentication and token issuance.
func (h *UserHandler) Login(w http.ResponseWriter, r *http.Request) {
	var input models.LoginInput
	if err := decodeJSON(r, &input); err != nil {
		respondError(w, r, err)
		return
	}

	user, err := h.service.LoginUser(input)
	if err != nil {
		respondError(w, r, err)
		return
	}

	token, err := h.tokens.Generate(user)
	if err != nil {
		respondError(w, r, err)
		return
	}

	respondJSON(w, http.StatusOK, envelope{
		Data:    userProjection(r, user),
		Message: "Login successful",
		Token:   token,
	})
}

// Get handles retrieving a user by their ID.
func (h *UserHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := validation.ParseID(chi.URLParam(r, "id"))
	if err != nil {
		respondError(w, r, err)
		return
	}

	user, err := h.service.GetUser(id)
	if err != nil {
		respondError(w, r, err)
		return
	}

	respondJSON(w, http.StatusOK, envelope{
		Data:    userProjection(r, user),
		Message: "User retrieved successfully",
	})
}

// GetAll handles listing every user account.
func (h *UserHandler) GetAll(w http.ResponseWriter, r *http.Request) {
	users, err := h.service.GetAllUsers()
	if err != nil {
		respondError(w, r, err)
		return
	}

	responses := make([]models.UserResponse, 0, len(users))
	for _, user := range users {
		responses = append(responses, userProjection(r, user))
	}

	respondJSON(w, http.StatusOK, envelope{
		Data:    responses,
		Message: "Users retrieved successfully",
	})
}

// Update handles a partial update of a user's fields.
func (h *UserHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := validation.ParseID(chi.URLParam(r, "id"))
	if err != nil {
		respondError(w, r, err)
		return
	}

	var input models.UpdateUserInput
	if err := decodeJSON(r, &input); err != nil {
		respondError(w, r, err)
		return
	}

	user, err := h.service.UpdateUser(id, input)
	if err != nil {
		respondError(w, r, err)
		return
	}

	respondJSON(w, http.StatusOK, envelope{
		Data:    userProjection(r, user),
		Message: "User updated successfully",
	})
}

// Delete handles the permanent deletion of a user account.
func (h *UserHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := validation.ParseID(chi.URLParam(r, "id"))
	if err != nil {
		respondError(w, r, err)
		return
	}

	if err := h.service.DeleteUser(id); err != nil {
		respondError(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
