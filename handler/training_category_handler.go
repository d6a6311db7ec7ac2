package handler

import (
	"database/sql"
	"encoding/json"
	"isidro-api/common"
	"isidro-api/model"
	"isidro-api/repository"
	"net/http"
)

// TrainingCategoryHandler serves the shared training category directory.
// Any authenticated user may read and write.
type TrainingCategoryHandler struct {
	repo *repository.TrainingCategoryRepository
}

func NewTrainingCategoryHandler(repo *repository.TrainingCategoryRepository) *TrainingCategoryHandler {
	return &TrainingCategoryHandler{repo: repo}
}

// Create godoc
// @Summary      Create a training category
// @Tags         training-categories
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        category body model.TrainingCategoryRequest true "Training category"
// @Success      201  {object}  model.TrainingCategory
// @Router       /api/training-categories [post]
func (h *TrainingCategoryHandler) Create(w http.ResponseWriter, r *http.Request) *common.AppError {
	var req model.TrainingCategoryRequest
	if err := common.ValidateAndDecode(r, &req); err != nil {
		return err
	}

	category := &model.TrainingCategory{Name: req.Name, Type: req.Type}
	if err := h.repo.Create(category); err != nil {
		return common.NewAppError(http.StatusInternalServerError, "Could not create training category", err)
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(category)
	return nil
}

// List godoc
// @Summary      List training categories
// @Tags         training-categories
// @Produce      json
// @Security     BearerAuth
// @Param        skip  query int false "Rows to skip"
// @Param        limit query int false "Max rows to return"
// @Success      200  {array}   model.TrainingCategory
// @Router       /api/training-categories [get]
func (h *TrainingCategoryHandler) List(w http.ResponseWriter, r *http.Request) *common.AppError {
	skip, limit := pagination(r)

	categories, err := h.repo.GetAll(skip, limit)
	if err != nil {
		return common.NewAppError(http.StatusInternalServerError, "Could not retrieve training categories", err)
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(categories)
	return nil
}

// Get godoc
// @Summary      Get a training category
// @Tags         training-categories
// @Produce      json
// @Security     BearerAuth
// @Param        categoryId path int true "Category ID"
// @Success      200  {object}  model.TrainingCategory
// @Failure      404  {object}  common.AppError
// @Router       /api/training-categories/{categoryId} [get]
func (h *TrainingCategoryHandler) Get(w http.ResponseWriter, r *http.Request) *common.AppError {
	categoryID, ok := pathInt(r, "categoryId")
	if !ok {
		return common.NewAppError(http.StatusBadRequest, "Invalid category ID in URL path", nil)
	}

	category, err := h.repo.GetByID(categoryID)
	if err != nil {
		if err == sql.ErrNoRows {
			return common.NewAppError(http.StatusNotFound, "Training category not found", nil)
		}
		return common.NewAppError(http.StatusInternalServerError, "Could not retrieve training category", err)
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(category)
	return nil
}

// Update godoc
// @Summary      Update a training category
// @Tags         training-categories
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        categoryId path int true "Category ID"
// @Param        category body model.TrainingCategoryRequest true "Training category"
// @Success      200  {object}  model.TrainingCategory
// @Failure      404  {object}  common.AppError
// @Router       /api/training-categories/{categoryId} [put]
func (h *TrainingCategoryHandler) Update(w http.ResponseWriter, r *http.Request) *common.AppError {
	categoryID, ok := pathInt(r, "categoryId")
	if !ok {
		return common.NewAppError(http.StatusBadRequest, "Invalid category ID in URL path", nil)
	}

	var req model.TrainingCategoryRequest
	if err := common.ValidateAndDecode(r, &req); err != nil {
		return err
	}

	category := &model.TrainingCategory{ID: categoryID, Name: req.Name, Type: req.Type}
	if err := h.repo.Update(category); err != nil {
		if err == sql.ErrNoRows {
			return common.NewAppError(http.StatusNotFound, "Training category not found", nil)
		}
		return common.NewAppError(http.StatusInternalServerError, "Could not update training category", err)
	}

	updated, err := h.repo.GetByID(categoryID)
	if err != nil {
		return common.NewAppError(http.StatusInternalServerError, "Could not retrieve training category", err)
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(updated)
	return nil
}

// Delete godoc
// @Summary      Delete a training category
// @Tags         training-categories
// @Security     BearerAuth
// @Param        categoryId path int true "Category ID"
// @Success      204  "No Content"
// @Failure      404  {object}  common.AppError
// @Router       /api/training-categories/{categoryId} [delete]
func (h *TrainingCategoryHandler) Delete(w http.ResponseWriter, r *http.Request) *common.AppError {
	categoryID, ok := pathInt(r, "categoryId")
	if !ok {
		return common.NewAppError(http.StatusBadRequest, "Invalid category ID in URL path", nil)
	}

	if err := h.repo.Delete(categoryID); err != nil {
		if err == sql.ErrNoRows {
			return common.NewAppError(http.StatusNotFound, "Training category not found", nil)
		}
		return common.NewAppError(http.StatusInternalServerError, "Could not delete training category", err)
	}

	w.WriteHeader(http.StatusNoContent)
	return nil
}
