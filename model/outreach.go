package model

import "time"

// Outreach is a church outreach program. Outreaches are a shared directory:
// any authenticated user may read or modify them.
type Outreach struct {
	ID             int        `json:"id"`
	Name           string     `json:"name"`
	AssignedPastor string     `json:"assigned_pastor"`
	Location       string     `json:"location"`
	YearStart      int        `json:"year_start"`
	CreatedAt      time.Time  `json:"created_at"`
	UpdatedAt      *time.Time `json:"updated_at,omitempty"`
}

type OutreachRequest struct {
	Name           string `json:"name" validate:"required,max=150"`
	AssignedPastor string `json:"assigned_pastor" validate:"omitempty,max=100"`
	Location       string `json:"location" validate:"omitempty,max=255"`
	YearStart      int    `json:"year_start" validate:"omitempty,gte=1900,lte=2100"`
}
