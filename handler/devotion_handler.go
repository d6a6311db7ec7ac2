package handler

import (
	"database/sql"
	"encoding/json"
	"isidro-api/common"
	"isidro-api/model"
	"isidro-api/service"
	"net/http"
)

type DevotionHandler struct {
	service *service.DevotionService
}

func NewDevotionHandler(service *service.DevotionService) *DevotionHandler {
	return &DevotionHandler{service: service}
}

// Create godoc
// @Summary      Log a devotion for the current user
// @Tags         devotions
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        userId path int true "User ID"
// @Param        devotion body model.DevotionRequest true "Devotion entry"
// @Success      201  {object}  model.Devotion
// @Failure      403  {object}  common.AppError
// @Router       /api/devotions/{userId} [post]
func (h *DevotionHandler) Create(w http.ResponseWriter, r *http.Request) *common.AppError {
	userID, appErr := ownPathUser(r)
	if appErr != nil {
		return appErr
	}

	var req model.DevotionRequest
	if err := common.ValidateAndDecode(r, &req); err != nil {
		return err
	}

	devotion, err := h.service.CreateDevotion(r.Context(), userID, req)
	if err != nil {
		return common.NewAppError(http.StatusInternalServerError, "Could not create devotion", err)
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(devotion)
	return nil
}

// List godoc
// @Summary      List the current user's devotions
// @Tags         devotions
// @Produce      json
// @Security     BearerAuth
// @Param        userId path int true "User ID"
// @Param        skip  query int false "Rows to skip"
// @Param        limit query int false "Max rows to return"
// @Success      200  {array}   model.Devotion
// @Failure      403  {object}  common.AppError
// @Router       /api/devotions/{userId} [get]
func (h *DevotionHandler) List(w http.ResponseWriter, r *http.Request) *common.AppError {
	userID, appErr := ownPathUser(r)
	if appErr != nil {
		return appErr
	}
	skip, limit := pagination(r)

	devotions, err := h.service.ListDevotionsForUser(r.Context(), userID, skip, limit)
	if err != nil {
		return common.NewAppError(http.StatusInternalServerError, "Could not retrieve devotions", err)
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(devotions)
	return nil
}

// Get godoc
// @Summary      Get one of the current user's devotions
// @Tags         devotions
// @Produce      json
// @Security     BearerAuth
// @Param        userId path int true "User ID"
// @Param        devotionId path int true "Devotion ID"
// @Success      200  {object}  model.Devotion
// @Failure      403  {object}  common.AppError
// @Failure      404  {object}  common.AppError
// @Router       /api/devotions/{userId}/{devotionId} [get]
func (h *DevotionHandler) Get(w http.ResponseWriter, r *http.Request) *common.AppError {
	userID, appErr := ownPathUser(r)
	if appErr != nil {
		return appErr
	}
	devotionID, ok := pathInt(r, "devotionId")
	if !ok {
		return common.NewAppError(http.StatusBadRequest, "Invalid devotion ID in URL path", nil)
	}

	devotion, err := h.service.GetDevotion(userID, devotionID)
	if err != nil {
		if err == sql.ErrNoRows {
			return common.NewAppError(http.StatusNotFound, "Devotion not found", nil)
		}
		return common.NewAppError(http.StatusInternalServerError, "Could not retrieve devotion", err)
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(devotion)
	return nil
}

// Update godoc
// @Summary      Update one of the current user's devotions
// @Tags         devotions
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        userId path int true "User ID"
// @Param        devotionId path int true "Devotion ID"
// @Param        devotion body model.DevotionRequest true "Devotion entry"
// @Success      200  {object}  model.Devotion
// @Failure      403  {object}  common.AppError
// @Failure      404  {object}  common.AppError
// @Router       /api/devotions/{userId}/{devotionId} [put]
func (h *DevotionHandler) Update(w http.ResponseWriter, r *http.Request) *common.AppError {
	userID, appErr := ownPathUser(r)
	if appErr != nil {
		return appErr
	}
	devotionID, ok := pathInt(r, "devotionId")
	if !ok {
		return common.NewAppError(http.StatusBadRequest, "Invalid devotion ID in URL path", nil)
	}

	var req model.DevotionRequest
	if err := common.ValidateAndDecode(r, &req); err != nil {
		return err
	}

	devotion, err := h.service.UpdateDevotion(r.Context(), userID, devotionID, req)
	if err != nil {
		if err == sql.ErrNoRows {
			return common.NewAppError(http.StatusNotFound, "Devotion not found", nil)
		}
		return common.NewAppError(http.StatusInternalServerError, "Could not update devotion", err)
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(devotion)
	return nil
}

// Delete godoc
// @Summary      Delete one of the current user's devotions
// @Tags         devotions
// @Security     BearerAuth
// @Param        userId path int true "User ID"
// @Param        devotionId path int true "Devotion ID"
// @Success      204  "No Content"
// @Failure      403  {object}  common.AppError
// @Failure      404  {object}  common.AppError
// @Router       /api/devotions/{userId}/{devotionId} [delete]
func (h *DevotionHandler) Delete(w http.ResponseWriter, r *http.Request) *common.AppError {
	userID, appErr := ownPathUser(r)
	if appErr != nil {
		return appErr
	}
	devotionID, ok := pathInt(r, "devotionId")
	if !ok {
		return common.NewAppError(http.StatusBadRequest, "Invalid devotion ID in URL path", nil)
	}

	if err := h.service.DeleteDevotion(r.Context(), userID, devotionID); err != nil {
		if err == sql.ErrNoRows {
			return common.NewAppError(http.StatusNotFound, "Devotion not found", nil)
		}
		return common.NewAppError(http.StatusInternalServerError, "Could not delete devotion", err)
	}

	w.WriteHeader(http.StatusNoContent)
	return nil
}
