package handler

import (
	"database/sql"
	"encoding/json"
	"isidro-api/common"
	"isidro-api/model"
	"isidro-api/repository"
	"net/http"
)

// DiscipleInfoHandler serves the one-row-per-user disciple information
// resource, owner-only like personal information.
type DiscipleInfoHandler struct {
	repo     *repository.DiscipleInfoRepository
	userRepo repository.IUserRepository
}

func NewDiscipleInfoHandler(repo *repository.DiscipleInfoRepository, userRepo repository.IUserRepository) *DiscipleInfoHandler {
	return &DiscipleInfoHandler{repo: repo, userRepo: userRepo}
}

// Create godoc
// @Summary      Create disciple information for the current user
// @Tags         disciple-information
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        userId path int true "User ID"
// @Param        info body model.DiscipleInformationRequest true "Disciple information"
// @Success      201  {object}  model.DiscipleInformation
// @Failure      400  {object}  common.AppError "Disciple information already exists"
// @Failure      403  {object}  common.AppError
// @Failure      404  {object}  common.AppError "User not found"
// @Router       /api/disciple-info/{userId} [post]
func (h *DiscipleInfoHandler) Create(w http.ResponseWriter, r *http.Request) *common.AppError {
	userID, appErr := ownPathUser(r)
	if appErr != nil {
		return appErr
	}

	var req model.DiscipleInformationRequest
	if err := common.ValidateAndDecode(r, &req); err != nil {
		return err
	}

	if _, err := h.userRepo.GetUserByID(userID); err != nil {
		if err == sql.ErrNoRows {
			return common.NewAppError(http.StatusNotFound, "User not found", nil)
		}
		return common.NewAppError(http.StatusInternalServerError, "Could not look up user", err)
	}

	if _, err := h.repo.GetByUserID(userID); err == nil {
		return common.NewAppError(http.StatusBadRequest, "Disciple information already exists for this user", nil)
	}

	info := &model.DiscipleInformation{
		UserID:            userID,
		DisciplerName:     req.DisciplerName,
		ConsolidationDate: req.ConsolidationDate,
		WaterBaptized:     req.WaterBaptized,
		SpiritFilled:      req.SpiritFilled,
		CellGroup:         req.CellGroup,
	}
	if err := h.repo.Create(info); err != nil {
		return common.NewAppError(http.StatusInternalServerError, "Could not create disciple information", err)
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(info)
	return nil
}

// Get godoc
// @Summary      Get disciple information for the current user
// @Tags         disciple-information
// @Produce      json
// @Security     BearerAuth
// @Param        userId path int true "User ID"
// @Success      200  {object}  model.DiscipleInformation
// @Failure      403  {object}  common.AppError
// @Failure      404  {object}  common.AppError
// @Router       /api/disciple-info/{userId} [get]
func (h *DiscipleInfoHandler) Get(w http.ResponseWriter, r *http.Request) *common.AppError {
	userID, appErr := ownPathUser(r)
	if appErr != nil {
		return appErr
	}

	info, err := h.repo.GetByUserID(userID)
	if err != nil {
		if err == sql.ErrNoRows {
			return common.NewAppError(http.StatusNotFound, "Disciple information not found", nil)
		}
		return common.NewAppError(http.StatusInternalServerError, "Could not retrieve disciple information", err)
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(info)
	return nil
}

// Update godoc
// @Summary      Update disciple information for the current user
// @Tags         disciple-information
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        userId path int true "User ID"
// @Param        info body model.DiscipleInformationRequest true "Disciple information"
// @Success      200  {object}  model.DiscipleInformation
// @Failure      403  {object}  common.AppError
// @Failure      404  {object}  common.AppError
// @Router       /api/disciple-info/{userId} [put]
func (h *DiscipleInfoHandler) Update(w http.ResponseWriter, r *http.Request) *common.AppError {
	userID, appErr := ownPathUser(r)
	if appErr != nil {
		return appErr
	}

	var req model.DiscipleInformationRequest
	if err := common.ValidateAndDecode(r, &req); err != nil {
		return err
	}

	info := &model.DiscipleInformation{
		UserID:            userID,
		DisciplerName:     req.DisciplerName,
		ConsolidationDate: req.ConsolidationDate,
		WaterBaptized:     req.WaterBaptized,
		SpiritFilled:      req.SpiritFilled,
		CellGroup:         req.CellGroup,
	}
	if err := h.repo.Update(info); err != nil {
		if err == sql.ErrNoRows {
			return common.NewAppError(http.StatusNotFound, "Disciple information not found", nil)
		}
		return common.NewAppError(http.StatusInternalServerError, "Could not update disciple information", err)
	}

	updated, err := h.repo.GetByUserID(userID)
	if err != nil {
		return common.NewAppError(http.StatusInternalServerError, "Could not retrieve disciple information", err)
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(updated)
	return nil
}

// Delete godoc
// @Summary      Delete disciple information for the current user
// @Tags         disciple-information
// @Security     BearerAuth
// @Param        userId path int true "User ID"
// @Success      204  "No Content"
// @Failure      403  {object}  common.AppError
// @Failure      404  {object}  common.AppError
// @Router       /api/disciple-info/{userId} [delete]
func (h *DiscipleInfoHandler) Delete(w http.ResponseWriter, r *http.Request) *common.AppError {
	userID, appErr := ownPathUser(r)
	if appErr != nil {
		return appErr
	}

	if err := h.repo.DeleteByUserID(userID); err != nil {
		if err == sql.ErrNoRows {
			return common.NewAppError(http.StatusNotFound, "Disciple information not found", nil)
		}
		return common.NewAppError(http.StatusInternalServerError, "Could not delete disciple information", err)
	}

	w.WriteHeader(http.StatusNoContent)
	return nil
}
