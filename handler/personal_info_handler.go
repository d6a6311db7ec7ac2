package handler

import (
	"database/sql"
	"encoding/json"
	"isidro-api/common"
	"isidro-api/model"
	"isidro-api/repository"
	"net/http"
)

// PersonalInfoHandler serves the one-row-per-user personal information
// resource. All operations are restricted to the owning user.
type PersonalInfoHandler struct {
	repo     *repository.PersonalInfoRepository
	userRepo repository.IUserRepository
}

func NewPersonalInfoHandler(repo *repository.PersonalInfoRepository, userRepo repository.IUserRepository) *PersonalInfoHandler {
	return &PersonalInfoHandler{repo: repo, userRepo: userRepo}
}

// ownPathUser resolves the {userId} path parameter and enforces that it is
// the authenticated user.
func ownPathUser(r *http.Request) (int, *common.AppError) {
	currentUserID, ok := r.Context().Value(UserIDKey).(int)
	if !ok {
		return 0, common.NewAppError(http.StatusUnauthorized, "Invalid user ID in token", nil)
	}
	userID, ok := pathInt(r, "userId")
	if !ok {
		return 0, common.NewAppError(http.StatusBadRequest, "Invalid user ID in URL path", nil)
	}
	if userID != currentUserID {
		return 0, common.NewAppError(http.StatusForbidden, "You can only access your own information", nil)
	}
	return userID, nil
}

// Create godoc
// @Summary      Create personal information for the current user
// @Tags         personal-information
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        userId path int true "User ID"
// @Param        info body model.PersonalInformationRequest true "Personal information"
// @Success      201  {object}  model.PersonalInformation
// @Failure      400  {object}  common.AppError "Personal information already exists"
// @Failure      403  {object}  common.AppError
// @Failure      404  {object}  common.AppError "User not found"
// @Router       /api/personal-info/{userId} [post]
func (h *PersonalInfoHandler) Create(w http.ResponseWriter, r *http.Request) *common.AppError {
	userID, appErr := ownPathUser(r)
	if appErr != nil {
		return appErr
	}

	var req model.PersonalInformationRequest
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
		return common.NewAppError(http.StatusBadRequest, "Personal information already exists for this user", nil)
	}

	info := &model.PersonalInformation{
		UserID:        userID,
		Nickname:      req.Nickname,
		BirthDate:     req.BirthDate,
		Gender:        req.Gender,
		CivilStatus:   req.CivilStatus,
		Address:       req.Address,
		ContactNumber: req.ContactNumber,
	}
	if err := h.repo.Create(info); err != nil {
		return common.NewAppError(http.StatusInternalServerError, "Could not create personal information", err)
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(info)
	return nil
}

// Get godoc
// @Summary      Get personal information for the current user
// @Tags         personal-information
// @Produce      json
// @Security     BearerAuth
// @Param        userId path int true "User ID"
// @Success      200  {object}  model.PersonalInformation
// @Failure      403  {object}  common.AppError
// @Failure      404  {object}  common.AppError
// @Router       /api/personal-info/{userId} [get]
func (h *PersonalInfoHandler) Get(w http.ResponseWriter, r *http.Request) *common.AppError {
	userID, appErr := ownPathUser(r)
	if appErr != nil {
		return appErr
	}

	info, err := h.repo.GetByUserID(userID)
	if err != nil {
		if err == sql.ErrNoRows {
			return common.NewAppError(http.StatusNotFound, "Personal information not found", nil)
		}
		return common.NewAppError(http.StatusInternalServerError, "Could not retrieve personal information", err)
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(info)
	return nil
}

// Update godoc
// @Summary      Update personal information for the current user
// @Tags         personal-information
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        userId path int true "User ID"
// @Param        info body model.PersonalInformationRequest true "Personal information"
// @Success      200  {object}  model.PersonalInformation
// @Failure      403  {object}  common.AppError
// @Failure      404  {object}  common.AppError
// @Router       /api/personal-info/{userId} [put]
func (h *PersonalInfoHandler) Update(w http.ResponseWriter, r *http.Request) *common.AppError {
	userID, appErr := ownPathUser(r)
	if appErr != nil {
		return appErr
	}

	var req model.PersonalInformationRequest
	if err := common.ValidateAndDecode(r, &req); err != nil {
		return err
	}

	info := &model.PersonalInformation{
		UserID:        userID,
		Nickname:      req.Nickname,
		BirthDate:     req.BirthDate,
		Gender:        req.Gender,
		CivilStatus:   req.CivilStatus,
		Address:       req.Address,
		ContactNumber: req.ContactNumber,
	}
	if err := h.repo.Update(info); err != nil {
		if err == sql.ErrNoRows {
			return common.NewAppError(http.StatusNotFound, "Personal information not found", nil)
		}
		return common.NewAppError(http.StatusInternalServerError, "Could not update personal information", err)
	}

	updated, err := h.repo.GetByUserID(userID)
	if err != nil {
		return common.NewAppError(http.StatusInternalServerError, "Could not retrieve personal information", err)
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(updated)
	return nil
}

// Delete godoc
// @Summary      Delete personal information for the current user
// @Tags         personal-information
// @Security     BearerAuth
// @Param        userId path int true "User ID"
// @Success      204  "No Content"
// @Failure      403  {object}  common.AppError
// @Failure      404  {object}  common.AppError
// @Router       /api/personal-info/{userId} [delete]
func (h *PersonalInfoHandler) Delete(w http.ResponseWriter, r *http.Request) *common.AppError {
	userID, appErr := ownPathUser(r)
	if appErr != nil {
		return appErr
	}

	if err := h.repo.DeleteByUserID(userID); err != nil {
		if err == sql.ErrNoRows {
			return common.NewAppError(http.StatusNotFound, "Personal information not found", nil)
		}
		return common.NewAppError(http.StatusInternalServerError, "Could not delete personal information", err)
	}

	w.WriteHeader(http.StatusNoContent)
	return nil
}
