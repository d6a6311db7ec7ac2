package model

import "time"

// PersonalInformation is a one-to-one profile extension of a user.
type PersonalInformation struct {
	ID            int        `json:"id"`
	UserID        int        `json:"user_id"`
	Nickname      string     `json:"nickname"`
	BirthDate     *time.Time `json:"birth_date,omitempty"`
	Gender        string     `json:"gender"`
	CivilStatus   string     `json:"civil_status"`
	Address       string     `json:"address"`
	ContactNumber string     `json:"contact_number"`
	CreatedAt     time.Time  `json:"created_at"`
	UpdatedAt     *time.Time `json:"updated_at,omitempty"`
}

type PersonalInformationRequest struct {
	Nickname      string     `json:"nickname" validate:"omitempty,max=50"`
	BirthDate     *time.Time `json:"birth_date"`
	Gender        string     `json:"gender" validate:"omitempty,oneof=male female"`
	CivilStatus   string     `json:"civil_status" validate:"omitempty,max=30"`
	Address       string     `json:"address" validate:"omitempty,max=255"`
	ContactNumber string     `json:"contact_number" validate:"omitempty,max=30"`
}
