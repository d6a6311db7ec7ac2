package handler

import (
	"encoding/json"
	"isidro-api/common"
	"isidro-api/logger"
	"isidro-api/model"
	"isidro-api/service"
	"net/http"
)

type UserHandler struct {
	service *service.UserService
}

func NewUserHandler(service *service.UserService) *UserHandler {
	return &UserHandler{service: service}
}

// Register godoc
// @Summary      Register a new user
// @Tags         users
// @Accept       json
// @Produce      json
// @Param        user body model.RegisterRequest true "New user"
// @Success      201  {object}  model.User
// @Failure      400  {object}  common.AppError "Email already registered"
// @Router       /users [post]
func (h *UserHandler) Register(w http.ResponseWriter, r *http.Request) *common.AppError {
	var req model.RegisterRequest
	if err := common.ValidateAndDecode(r, &req); err != nil {
		return err
	}

	user, err := h.service.RegisterUser(req)
	if err != nil {
		if err == service.ErrEmailAlreadyExists {
			return common.NewAppError(http.StatusBadRequest, err.Error(), nil)
		}
		return common.NewAppError(http.StatusInternalServerError, "Could not create user", err)
	}

	logger.Log.WithField("user_id", user.ID).Info("User registered")

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(user)
	return nil
}

// ListUsers godoc
// @Summary      List users
// @Tags         users
// @Produce      json
// @Security     BearerAuth
// @Param        skip  query int false "Rows to skip"
// @Param        limit query int false "Max rows to return"
// @Success      200  {array}   model.User
// @Failure      401  {object}  common.AppError
// @Router       /users [get]
func (h *UserHandler) ListUsers(w http.ResponseWriter, r *http.Request) *common.AppError {
	skip, limit := pagination(r)

	users, err := h.service.ListUsers(skip, limit)
	if err != nil {
		return common.NewAppError(http.StatusInternalServerError, "Could not retrieve users", err)
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(users)
	return nil
}

// GetUser godoc
// @Summary      Get a user profile
// @Description  Users may only read their own profile.
// @Tags         users
// @Produce      json
// @Security     BearerAuth
// @Param        userId path int true "User ID"
// @Success      200  {object}  model.User
// @Failure      403  {object}  common.AppError
// @Failure      404  {object}  common.AppError
// @Router       /users/{userId} [get]
func (h *UserHandler) GetUser(w http.ResponseWriter, r *http.Request) *common.AppError {
	currentUserID, ok := r.Context().Value(UserIDKey).(int)
	if !ok {
		return common.NewAppError(http.StatusUnauthorized, "Invalid user ID in token", nil)
	}
	userID, ok := pathInt(r, "userId")
	if !ok {
		return common.NewAppError(http.StatusBadRequest, "Invalid user ID in URL path", nil)
	}
	if userID != currentUserID {
		return common.NewAppError(http.StatusForbidden, "You can only access your own information", nil)
	}

	user, err := h.service.GetUser(userID)
	if err != nil {
		if err == service.ErrUserNotFound {
			return common.NewAppError(http.StatusNotFound, err.Error(), nil)
		}
		return common.NewAppError(http.StatusInternalServerError, "Could not retrieve user", err)
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(user)
	return nil
}

// UpdateUser godoc
// @Summary      Update a user profile
// @Description  Users may only update their own profile. A non-empty password is re-hashed.
// @Tags         users
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        userId path int true "User ID"
// @Param        user body model.UpdateUserRequest true "Fields to update"
// @Success      200  {object}  model.User
// @Failure      400  {object}  common.AppError "Email already registered"
// @Failure      403  {object}  common.AppError
// @Failure      404  {object}  common.AppError
// @Router       /users/{userId} [put]
func (h *UserHandler) UpdateUser(w http.ResponseWriter, r *http.Request) *common.AppError {
	currentUserID, ok := r.Context().Value(UserIDKey).(int)
	if !ok {
		return common.NewAppError(http.StatusUnauthorized, "Invalid user ID in token", nil)
	}
	userID, ok := pathInt(r, "userId")
	if !ok {
		return common.NewAppError(http.StatusBadRequest, "Invalid user ID in URL path", nil)
	}
	if userID != currentUserID {
		return common.NewAppError(http.StatusForbidden, "You can only update your own information", nil)
	}

	var req model.UpdateUserRequest
	if err := common.ValidateAndDecode(r, &req); err != nil {
		return err
	}

	user, err := h.service.UpdateUser(userID, req)
	if err != nil {
		if err == service.ErrUserNotFound {
			return common.NewAppError(http.StatusNotFound, err.Error(), nil)
		}
		if err == service.ErrEmailAlreadyExists {
			return common.NewAppError(http.StatusBadRequest, err.Error(), nil)
		}
		return common.NewAppError(http.StatusInternalServerError, "Could not update user", err)
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(user)
	return nil
}

// DeleteUser godoc
// @Summary      Delete a user and everything they own
// @Tags         users
// @Security     BearerAuth
// @Param        userId path int true "User ID"
// @Success      204  "No Content"
// @Failure      403  {object}  common.AppError
// @Failure      404  {object}  common.AppError
// @Router       /users/{userId} [delete]
func (h *UserHandler) DeleteUser(w http.ResponseWriter, r *http.Request) *common.AppError {
	currentUserID, ok := r.Context().Value(UserIDKey).(int)
	if !ok {
		return common.NewAppError(http.StatusUnauthorized, "Invalid user ID in token", nil)
	}
	userID, ok := pathInt(r, "userId")
	if !ok {
		return common.NewAppError(http.StatusBadRequest, "Invalid user ID in URL path", nil)
	}
	if userID != currentUserID {
		return common.NewAppError(http.StatusForbidden, "You can only delete your own account", nil)
	}

	if err := h.service.DeleteUser(r.Context(), userID); err != nil {
		if err == service.ErrUserNotFound {
			return common.NewAppError(http.StatusNotFound, err.Error(), nil)
		}
		return common.NewAppError(http.StatusInternalServerError, "Could not delete user", err)
	}

	w.WriteHeader(http.StatusNoContent)
	return nil
}
