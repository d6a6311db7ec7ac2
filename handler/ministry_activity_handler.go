package handler

import (
	"database/sql"
	"encoding/json"
	"isidro-api/common"
	"isidro-api/model"
	"isidro-api/repository"
	"net/http"
)

// MinistryActivityHandler serves ministry activities. Reading is open to any
// authenticated user; only the organizer may update or delete an activity.
type MinistryActivityHandler struct {
	repo *repository.MinistryActivityRepository
}

func NewMinistryActivityHandler(repo *repository.MinistryActivityRepository) *MinistryActivityHandler {
	return &MinistryActivityHandler{repo: repo}
}

func activityFromRequest(req model.MinistryActivityRequest) *model.MinistryActivity {
	return &model.MinistryActivity{
		Title:        req.Title,
		Date:         req.Date,
		IsRegular:    req.IsRegular,
		Place:        req.Place,
		OutreachID:   req.OutreachID,
		ScheduleType: req.ScheduleType,
		Weekdays:     req.Weekdays,
		MonthlyDates: req.MonthlyDates,
		YearlyDates:  req.YearlyDates,
		StartTime:    req.StartTime,
		EndTime:      req.EndTime,
	}
}

// Create godoc
// @Summary      Create a ministry activity
// @Description  The current user becomes the organizer.
// @Tags         ministry-activities
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        activity body model.MinistryActivityRequest true "Ministry activity"
// @Success      201  {object}  model.MinistryActivity
// @Router       /api/ministry-activities [post]
func (h *MinistryActivityHandler) Create(w http.ResponseWriter, r *http.Request) *common.AppError {
	userID, ok := r.Context().Value(UserIDKey).(int)
	if !ok {
		return common.NewAppError(http.StatusUnauthorized, "Invalid user ID in token", nil)
	}

	var req model.MinistryActivityRequest
	if err := common.ValidateAndDecode(r, &req); err != nil {
		return err
	}

	activity := activityFromRequest(req)
	activity.OrganizerID = userID
	if err := h.repo.Create(activity); err != nil {
		return common.NewAppError(http.StatusInternalServerError, "Could not create ministry activity", err)
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(activity)
	return nil
}

// List godoc
// @Summary      List ministry activities
// @Tags         ministry-activities
// @Produce      json
// @Security     BearerAuth
// @Param        skip  query int false "Rows to skip"
// @Param        limit query int false "Max rows to return"
// @Success      200  {array}   model.MinistryActivity
// @Router       /api/ministry-activities [get]
func (h *MinistryActivityHandler) List(w http.ResponseWriter, r *http.Request) *common.AppError {
	skip, limit := pagination(r)

	activities, err := h.repo.GetAll(skip, limit)
	if err != nil {
		return common.NewAppError(http.StatusInternalServerError, "Could not retrieve ministry activities", err)
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(activities)
	return nil
}

// Get godoc
// @Summary      Get a ministry activity
// @Tags         ministry-activities
// @Produce      json
// @Security     BearerAuth
// @Param        activityId path int true "Activity ID"
// @Success      200  {object}  model.MinistryActivity
// @Failure      404  {object}  common.AppError
// @Router       /api/ministry-activities/{activityId} [get]
func (h *MinistryActivityHandler) Get(w http.ResponseWriter, r *http.Request) *common.AppError {
	activityID, ok := pathInt(r, "activityId")
	if !ok {
		return common.NewAppError(http.StatusBadRequest, "Invalid activity ID in URL path", nil)
	}

	activity, err := h.repo.GetByID(activityID)
	if err != nil {
		if err == sql.ErrNoRows {
			return common.NewAppError(http.StatusNotFound, "Activity not found", nil)
		}
		return common.NewAppError(http.StatusInternalServerError, "Could not retrieve ministry activity", err)
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(activity)
	return nil
}

// Update godoc
// @Summary      Update a ministry activity
// @Description  Only the organizer may update an activity.
// @Tags         ministry-activities
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        activityId path int true "Activity ID"
// @Param        activity body model.MinistryActivityRequest true "Ministry activity"
// @Success      200  {object}  model.MinistryActivity
// @Failure      403  {object}  common.AppError "Only organizer can update this activity"
// @Failure      404  {object}  common.AppError
// @Router       /api/ministry-activities/{activityId} [put]
func (h *MinistryActivityHandler) Update(w http.ResponseWriter, r *http.Request) *common.AppError {
	userID, ok := r.Context().Value(UserIDKey).(int)
	if !ok {
		return common.NewAppError(http.StatusUnauthorized, "Invalid user ID in token", nil)
	}
	activityID, ok := pathInt(r, "activityId")
	if !ok {
		return common.NewAppError(http.StatusBadRequest, "Invalid activity ID in URL path", nil)
	}

	current, err := h.repo.GetByID(activityID)
	if err != nil {
		if err == sql.ErrNoRows {
			return common.NewAppError(http.StatusNotFound, "Activity not found", nil)
		}
		return common.NewAppError(http.StatusInternalServerError, "Could not retrieve ministry activity", err)
	}
	if current.OrganizerID != userID {
		return common.NewAppError(http.StatusForbidden, "Only organizer can update this activity", nil)
	}

	var req model.MinistryActivityRequest
	if appErr := common.ValidateAndDecode(r, &req); appErr != nil {
		return appErr
	}

	activity := activityFromRequest(req)
	activity.ID = activityID
	activity.OrganizerID = current.OrganizerID
	if err := h.repo.Update(activity); err != nil {
		if err == sql.ErrNoRows {
			return common.NewAppError(http.StatusNotFound, "Activity not found", nil)
		}
		return common.NewAppError(http.StatusInternalServerError, "Could not update ministry activity", err)
	}

	updated, err := h.repo.GetByID(activityID)
	if err != nil {
		return common.NewAppError(http.StatusInternalServerError, "Could not retrieve ministry activity", err)
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(updated)
	return nil
}

// Delete godoc
// @Summary      Delete a ministry activity
// @Description  Only the organizer may delete an activity.
// @Tags         ministry-activities
// @Security     BearerAuth
// @Param        activityId path int true "Activity ID"
// @Success      204  "No Content"
// @Failure      403  {object}  common.AppError "Only organizer can delete this activity"
// @Failure      404  {object}  common.AppError
// @Router       /api/ministry-activities/{activityId} [delete]
func (h *MinistryActivityHandler) Delete(w http.ResponseWriter, r *http.Request) *common.AppError {
	userID, ok := r.Context().Value(UserIDKey).(int)
	if !ok {
		return common.NewAppError(http.StatusUnauthorized, "Invalid user ID in token", nil)
	}
	activityID, ok := pathInt(r, "activityId")
	if !ok {
		return common.NewAppError(http.StatusBadRequest, "Invalid activity ID in URL path", nil)
	}

	current, err := h.repo.GetByID(activityID)
	if err != nil {
		if err == sql.ErrNoRows {
			return common.NewAppError(http.StatusNotFound, "Activity not found", nil)
		}
		return common.NewAppError(http.StatusInternalServerError, "Could not retrieve ministry activity", err)
	}
	if current.OrganizerID != userID {
		return common.NewAppError(http.StatusForbidden, "Only organizer can delete this activity", nil)
	}

	if err := h.repo.Delete(activityID); err != nil {
		return common.NewAppError(http.StatusInternalServerError, "Could not delete ministry activity", err)
	}

	w.WriteHeader(http.StatusNoContent)
	return nil
}
