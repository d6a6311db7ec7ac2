package model

import "time"

// DiscipleInformation records a user's discipleship journey. One row per user.
type DiscipleInformation struct {
	ID                int        `json:"id"`
	UserID            int        `json:"user_id"`
	DisciplerName     string     `json:"discipler_name"`
	ConsolidationDate *time.Time `json:"consolidation_date,omitempty"`
	WaterBaptized     bool       `json:"water_baptized"`
	SpiritFilled      bool       `json:"spirit_filled"`
	CellGroup         string     `json:"cell_group"`
	CreatedAt         time.Time  `json:"created_at"`
	UpdatedAt         *time.Time `json:"updated_at,omitempty"`
}

type DiscipleInformationRequest struct {
	DisciplerName     string     `json:"discipler_name" validate:"omitempty,max=100"`
	ConsolidationDate *time.Time `json:"consolidation_date"`
	WaterBaptized     bool       `json:"water_baptized"`
	SpiritFilled      bool       `json:"spirit_filled"`
	CellGroup         string     `json:"cell_group" validate:"omitempty,max=100"`
}
