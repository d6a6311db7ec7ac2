package handler

import (
	"database/sql"
	"encoding/json"
	"isidro-api/common"
	"isidro-api/model"
	"isidro-api/repository"
	"net/http"
)

// OutreachHandler serves the shared outreach program directory.
type OutreachHandler struct {
	repo *repository.OutreachRepository
}

func NewOutreachHandler(repo *repository.OutreachRepository) *OutreachHandler {
	return &OutreachHandler{repo: repo}
}

// Create godoc
// @Summary      Create an outreach program
// @Tags         outreach
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        outreach body model.OutreachRequest true "Outreach program"
// @Success      201  {object}  model.Outreach
// @Router       /api/outreach [post]
func (h *OutreachHandler) Create(w http.ResponseWriter, r *http.Request) *common.AppError {
	var req model.OutreachRequest
	if err := common.ValidateAndDecode(r, &req); err != nil {
		return err
	}

	outreach := &model.Outreach{
		Name:           req.Name,
		AssignedPastor: req.AssignedPastor,
		Location:       req.Location,
		YearStart:      req.YearStart,
	}
	if err := h.repo.Create(outreach); err != nil {
		return common.NewAppError(http.StatusInternalServerError, "Could not create outreach program", err)
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(outreach)
	return nil
}

// List godoc
// @Summary      List outreach programs
// @Tags         outreach
// @Produce      json
// @Security     BearerAuth
// @Param        skip  query int false "Rows to skip"
// @Param        limit query int false "Max rows to return"
// @Success      200  {array}   model.Outreach
// @Router       /api/outreach [get]
func (h *OutreachHandler) List(w http.ResponseWriter, r *http.Request) *common.AppError {
	skip, limit := pagination(r)

	outreaches, err := h.repo.GetAll(skip, limit)
	if err != nil {
		return common.NewAppError(http.StatusInternalServerError, "Could not retrieve outreach programs", err)
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(outreaches)
	return nil
}

// Get godoc
// @Summary      Get an outreach program
// @Tags         outreach
// @Produce      json
// @Security     BearerAuth
// @Param        outreachId path int true "Outreach ID"
// @Success      200  {object}  model.Outreach
// @Failure      404  {object}  common.AppError
// @Router       /api/outreach/{outreachId} [get]
func (h *OutreachHandler) Get(w http.ResponseWriter, r *http.Request) *common.AppError {
	outreachID, ok := pathInt(r, "outreachId")
	if !ok {
		return common.NewAppError(http.StatusBadRequest, "Invalid outreach ID in URL path", nil)
	}

	outreach, err := h.repo.GetByID(outreachID)
	if err != nil {
		if err == sql.ErrNoRows {
			return common.NewAppError(http.StatusNotFound, "Outreach program not found", nil)
		}
		return common.NewAppError(http.StatusInternalServerError, "Could not retrieve outreach program", err)
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(outreach)
	return nil
}

// Update godoc
// @Summary      Update an outreach program
// @Tags         outreach
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        outreachId path int true "Outreach ID"
// @Param        outreach body model.OutreachRequest true "Outreach program"
// @Success      200  {object}  model.Outreach
// @Failure      404  {object}  common.AppError
// @Router       /api/outreach/{outreachId} [put]
func (h *OutreachHandler) Update(w http.ResponseWriter, r *http.Request) *common.AppError {
	outreachID, ok := pathInt(r, "outreachId")
	if !ok {
		return common.NewAppError(http.StatusBadRequest, "Invalid outreach ID in URL path", nil)
	}

	var req model.OutreachRequest
	if err := common.ValidateAndDecode(r, &req); err != nil {
		return err
	}

	outreach := &model.Outreach{
		ID:             outreachID,
		Name:           req.Name,
		AssignedPastor: req.AssignedPastor,
		Location:       req.Location,
		YearStart:      req.YearStart,
	}
	if err := h.repo.Update(outreach); err != nil {
		if err == sql.ErrNoRows {
			return common.NewAppError(http.StatusNotFound, "Outreach program not found", nil)
		}
		return common.NewAppError(http.StatusInternalServerError, "Could not update outreach program", err)
	}

	updated, err := h.repo.GetByID(outreachID)
	if err != nil {
		return common.NewAppError(http.StatusInternalServerError, "Could not retrieve outreach program", err)
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(updated)
	return nil
}

// Delete godoc
// @Summary      Delete an outreach program
// @Tags         outreach
// @Security     BearerAuth
// @Param        outreachId path int true "Outreach ID"
// @Success      204  "No Content"
// @Failure      404  {object}  common.AppError
// @Router       /api/outreach/{outreachId} [delete]
func (h *OutreachHandler) Delete(w http.ResponseWriter, r *http.Request) *common.AppError {
	outreachID, ok := pathInt(r, "outreachId")
	if !ok {
		return common.NewAppError(http.StatusBadRequest, "Invalid outreach ID in URL path", nil)
	}

	if err := h.repo.Delete(outreachID); err != nil {
		if err == sql.ErrNoRows {
			return common.NewAppError(http.StatusNotFound, "Outreach program not found", nil)
		}
		return common.NewAppError(http.StatusInternalServerError, "Could not delete outreach program", err)
	}

	w.WriteHeader(http.StatusNoContent)
	return nil
}
