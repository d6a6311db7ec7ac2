package model

import "time"

// Attendance records a user's presence at a ministry activity or training.
type Attendance struct {
	ID                 int        `json:"id"`
	UserID             int        `json:"user_id"`
	Date               time.Time  `json:"date"`
	TimeIn             string     `json:"time_in"`
	IsPresent          bool       `json:"is_present"`
	MinistryActivityID *int64     `json:"ministry_activity_id,omitempty"`
	MinistryType       string     `json:"ministry_type"`
	TrainingID         *int64     `json:"training_id,omitempty"`
	CreatedAt          time.Time  `json:"created_at"`
	UpdatedAt          *time.Time `json:"updated_at,omitempty"`
}

type AttendanceRequest struct {
	Date               time.Time `json:"date" validate:"required"`
	TimeIn             string    `json:"time_in" validate:"omitempty,max=10"`
	IsPresent          bool      `json:"is_present"`
	MinistryActivityID *int64    `json:"ministry_activity_id" validate:"omitempty,gt=0"`
	MinistryType       string    `json:"ministry_type" validate:"omitempty,max=50"`
	TrainingID         *int64    `json:"training_id" validate:"omitempty,gt=0"`
}
