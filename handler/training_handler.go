package handler

import (
	"database/sql"
	"encoding/json"
	"isidro-api/common"
	"isidro-api/model"
	"isidro-api/repository"
	"net/http"
)

type TrainingHandler struct {
	repo         *repository.TrainingRepository
	categoryRepo *repository.TrainingCategoryRepository
}

func NewTrainingHandler(repo *repository.TrainingRepository, categoryRepo *repository.TrainingCategoryRepository) *TrainingHandler {
	return &TrainingHandler{repo: repo, categoryRepo: categoryRepo}
}

// Create godoc
// @Summary      Enroll the current user in a training
// @Tags         trainings
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        userId path int true "User ID"
// @Param        training body model.TrainingRequest true "Training enrollment"
// @Success      201  {object}  model.Training
// @Failure      403  {object}  common.AppError
// @Failure      404  {object}  common.AppError "Training category not found"
// @Router       /api/trainings/{userId} [post]
func (h *TrainingHandler) Create(w http.ResponseWriter, r *http.Request) *common.AppError {
	userID, appErr := ownPathUser(r)
	if appErr != nil {
		return appErr
	}

	var req model.TrainingRequest
	if err := common.ValidateAndDecode(r, &req); err != nil {
		return err
	}

	if _, err := h.categoryRepo.GetByID(req.CategoryID); err != nil {
		if err == sql.ErrNoRows {
			return common.NewAppError(http.StatusNotFound, "Training category not found", nil)
		}
		return common.NewAppError(http.StatusInternalServerError, "Could not look up training category", err)
	}

	training := &model.Training{
		UserID:        userID,
		CategoryID:    req.CategoryID,
		Title:         req.Title,
		Status:        req.Status,
		DateStarted:   req.DateStarted,
		DateCompleted: req.DateCompleted,
	}
	if err := h.repo.Create(training); err != nil {
		return common.NewAppError(http.StatusInternalServerError, "Could not create training", err)
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(training)
	return nil
}

// List godoc
// @Summary      List the current user's trainings
// @Tags         trainings
// @Produce      json
// @Security     BearerAuth
// @Param        userId path int true "User ID"
// @Param        skip  query int false "Rows to skip"
// @Param        limit query int false "Max rows to return"
// @Success      200  {array}   model.Training
// @Failure      403  {object}  common.AppError
// @Router       /api/trainings/{userId} [get]
func (h *TrainingHandler) List(w http.ResponseWriter, r *http.Request) *common.AppError {
	userID, appErr := ownPathUser(r)
	if appErr != nil {
		return appErr
	}
	skip, limit := pagination(r)

	trainings, err := h.repo.GetByUserID(userID, skip, limit)
	if err != nil {
		return common.NewAppError(http.StatusInternalServerError, "Could not retrieve trainings", err)
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(trainings)
	return nil
}

// Get godoc
// @Summary      Get one of the current user's trainings
// @Tags         trainings
// @Produce      json
// @Security     BearerAuth
// @Param        userId path int true "User ID"
// @Param        trainingId path int true "Training ID"
// @Success      200  {object}  model.Training
// @Failure      403  {object}  common.AppError
// @Failure      404  {object}  common.AppError
// @Router       /api/trainings/{userId}/{trainingId} [get]
func (h *TrainingHandler) Get(w http.ResponseWriter, r *http.Request) *common.AppError {
	userID, appErr := ownPathUser(r)
	if appErr != nil {
		return appErr
	}
	trainingID, ok := pathInt(r, "trainingId")
	if !ok {
		return common.NewAppError(http.StatusBadRequest, "Invalid training ID in URL path", nil)
	}

	training, err := h.repo.GetByID(userID, trainingID)
	if err != nil {
		if err == sql.ErrNoRows {
			return common.NewAppError(http.StatusNotFound, "Training not found", nil)
		}
		return common.NewAppError(http.StatusInternalServerError, "Could not retrieve training", err)
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(training)
	return nil
}

// Update godoc
// @Summary      Update one of the current user's trainings
// @Tags         trainings
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        userId path int true "User ID"
// @Param        trainingId path int true "Training ID"
// @Param        training body model.TrainingRequest true "Training enrollment"
// @Success      200  {object}  model.Training
// @Failure      403  {object}  common.AppError
// @Failure      404  {object}  common.AppError
// @Router       /api/trainings/{userId}/{trainingId} [put]
func (h *TrainingHandler) Update(w http.ResponseWriter, r *http.Request) *common.AppError {
	userID, appErr := ownPathUser(r)
	if appErr != nil {
		return appErr
	}
	trainingID, ok := pathInt(r, "trainingId")
	if !ok {
		return common.NewAppError(http.StatusBadRequest, "Invalid training ID in URL path", nil)
	}

	var req model.TrainingRequest
	if err := common.ValidateAndDecode(r, &req); err != nil {
		return err
	}

	training := &model.Training{
		ID:            trainingID,
		UserID:        userID,
		CategoryID:    req.CategoryID,
		Title:         req.Title,
		Status:        req.Status,
		DateStarted:   req.DateStarted,
		DateCompleted: req.DateCompleted,
	}
	if err := h.repo.Update(training); err != nil {
		if err == sql.ErrNoRows {
			return common.NewAppError(http.StatusNotFound, "Training not found", nil)
		}
		return common.NewAppError(http.StatusInternalServerError, "Could not update training", err)
	}

	updated, err := h.repo.GetByID(userID, trainingID)
	if err != nil {
		return common.NewAppError(http.StatusInternalServerError, "Could not retrieve training", err)
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(updated)
	return nil
}

// Delete godoc
// @Summary      Delete one of the current user's trainings
// @Tags         trainings
// @Security     BearerAuth
// @Param        userId path int true "User ID"
// @Param        trainingId path int true "Training ID"
// @Success      204  "No Content"
// @Failure      403  {object}  common.AppError
// @Failure      404  {object}  common.AppError
// @Router       /api/trainings/{userId}/{trainingId} [delete]
func (h *TrainingHandler) Delete(w http.ResponseWriter, r *http.Request) *common.AppError {
	userID, appErr := ownPathUser(r)
	if appErr != nil {
		return appErr
	}
	trainingID, ok := pathInt(r, "trainingId")
	if !ok {
		return common.NewAppError(http.StatusBadRequest, "Invalid training ID in URL path", nil)
	}

	if err := h.repo.Delete(userID, trainingID); err != nil {
		if err == sql.ErrNoRows {
			return common.NewAppError(http.StatusNotFound, "Training not found", nil)
		}
		return common.NewAppError(http.StatusInternalServerError, "Could not delete training", err)
	}

	w.WriteHeader(http.StatusNoContent)
	return nil
}
