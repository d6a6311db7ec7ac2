package handler

import (
	"database/sql"
	"encoding/json"
	"isidro-api/common"
	"isidro-api/model"
	"isidro-api/repository"
	"net/http"
)

// AttendanceHandler serves attendance records. Rows are always owned by the
// user who created them; no path user id is involved.
type AttendanceHandler struct {
	repo *repository.AttendanceRepository
}

func NewAttendanceHandler(repo *repository.AttendanceRepository) *AttendanceHandler {
	return &AttendanceHandler{repo: repo}
}

// Create godoc
// @Summary      Record attendance for the current user
// @Tags         attendance
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        attendance body model.AttendanceRequest true "Attendance record"
// @Success      201  {object}  model.Attendance
// @Router       /api/attendance [post]
func (h *AttendanceHandler) Create(w http.ResponseWriter, r *http.Request) *common.AppError {
	userID, ok := r.Context().Value(UserIDKey).(int)
	if !ok {
		return common.NewAppError(http.StatusUnauthorized, "Invalid user ID in token", nil)
	}

	var req model.AttendanceRequest
	if err := common.ValidateAndDecode(r, &req); err != nil {
		return err
	}

	attendance := &model.Attendance{
		UserID:             userID,
		Date:               req.Date,
		TimeIn:             req.TimeIn,
		IsPresent:          req.IsPresent,
		MinistryActivityID: req.MinistryActivityID,
		MinistryType:       req.MinistryType,
		TrainingID:         req.TrainingID,
	}
	if err := h.repo.Create(attendance); err != nil {
		return common.NewAppError(http.StatusInternalServerError, "Could not create attendance record", err)
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(attendance)
	return nil
}

// List godoc
// @Summary      List the current user's attendance records
// @Tags         attendance
// @Produce      json
// @Security     BearerAuth
// @Param        skip  query int false "Rows to skip"
// @Param        limit query int false "Max rows to return"
// @Success      200  {array}   model.Attendance
// @Router       /api/attendance [get]
func (h *AttendanceHandler) List(w http.ResponseWriter, r *http.Request) *common.AppError {
	userID, ok := r.Context().Value(UserIDKey).(int)
	if !ok {
		return common.NewAppError(http.StatusUnauthorized, "Invalid user ID in token", nil)
	}
	skip, limit := pagination(r)

	records, err := h.repo.GetByUserID(userID, skip, limit)
	if err != nil {
		return common.NewAppError(http.StatusInternalServerError, "Could not retrieve attendance records", err)
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(records)
	return nil
}

// Get godoc
// @Summary      Get one of the current user's attendance records
// @Tags         attendance
// @Produce      json
// @Security     BearerAuth
// @Param        attendanceId path int true "Attendance ID"
// @Success      200  {object}  model.Attendance
// @Failure      404  {object}  common.AppError
// @Router       /api/attendance/{attendanceId} [get]
func (h *AttendanceHandler) Get(w http.ResponseWriter, r *http.Request) *common.AppError {
	userID, ok := r.Context().Value(UserIDKey).(int)
	if !ok {
		return common.NewAppError(http.StatusUnauthorized, "Invalid user ID in token", nil)
	}
	attendanceID, ok := pathInt(r, "attendanceId")
	if !ok {
		return common.NewAppError(http.StatusBadRequest, "Invalid attendance ID in URL path", nil)
	}

	attendance, err := h.repo.GetByID(userID, attendanceID)
	if err != nil {
		if err == sql.ErrNoRows {
			return common.NewAppError(http.StatusNotFound, "Attendance record not found", nil)
		}
		return common.NewAppError(http.StatusInternalServerError, "Could not retrieve attendance record", err)
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(attendance)
	return nil
}

// Update godoc
// @Summary      Update one of the current user's attendance records
// @Tags         attendance
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        attendanceId path int true "Attendance ID"
// @Param        attendance body model.AttendanceRequest true "Attendance record"
// @Success      200  {object}  model.Attendance
// @Failure      404  {object}  common.AppError
// @Router       /api/attendance/{attendanceId} [put]
func (h *AttendanceHandler) Update(w http.ResponseWriter, r *http.Request) *common.AppError {
	userID, ok := r.Context().Value(UserIDKey).(int)
	if !ok {
		return common.NewAppError(http.StatusUnauthorized, "Invalid user ID in token", nil)
	}
	attendanceID, ok := pathInt(r, "attendanceId")
	if !ok {
		return common.NewAppError(http.StatusBadRequest, "Invalid attendance ID in URL path", nil)
	}

	var req model.AttendanceRequest
	if err := common.ValidateAndDecode(r, &req); err != nil {
		return err
	}

	attendance := &model.Attendance{
		ID:                 attendanceID,
		UserID:             userID,
		Date:               req.Date,
		TimeIn:             req.TimeIn,
		IsPresent:          req.IsPresent,
		MinistryActivityID: req.MinistryActivityID,
		MinistryType:       req.MinistryType,
		TrainingID:         req.TrainingID,
	}
	if err := h.repo.Update(attendance); err != nil {
		if err == sql.ErrNoRows {
			return common.NewAppError(http.StatusNotFound, "Attendance record not found", nil)
		}
		return common.NewAppError(http.StatusInternalServerError, "Could not update attendance record", err)
	}

	updated, err := h.repo.GetByID(userID, attendanceID)
	if err != nil {
		return common.NewAppError(http.StatusInternalServerError, "Could not retrieve attendance record", err)
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(updated)
	return nil
}

// Delete godoc
// @Summary      Delete one of the current user's attendance records
// @Tags         attendance
// @Security     BearerAuth
// @Param        attendanceId path int true "Attendance ID"
// @Success      204  "No Content"
// @Failure      404  {object}  common.AppError
// @Router       /api/attendance/{attendanceId} [delete]
func (h *AttendanceHandler) Delete(w http.ResponseWriter, r *http.Request) *common.AppError {
	userID, ok := r.Context().Value(UserIDKey).(int)
	if !ok {
		return common.NewAppError(http.StatusUnauthorized, "Invalid user ID in token", nil)
	}
	attendanceID, ok := pathInt(r, "attendanceId")
	if !ok {
		return common.NewAppError(http.StatusBadRequest, "Invalid attendance ID in URL path", nil)
	}

	if err := h.repo.Delete(userID, attendanceID); err != nil {
		if err == sql.ErrNoRows {
			return common.NewAppError(http.StatusNotFound, "Attendance record not found", nil)
		}
		return common.NewAppError(http.StatusInternalServerError, "Could not delete attendance record", err)
	}

	w.WriteHeader(http.StatusNoContent)
	return nil
}
