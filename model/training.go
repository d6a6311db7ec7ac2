package model

import "time"

// TrainingCategory groups trainings (e.g. leadership, doctrine).
type TrainingCategory struct {
	ID        int       `json:"id"`
	Name      string    `json:"name"`
	Type      string    `json:"type"`
	CreatedAt time.Time `json:"created_at"`
}

type TrainingCategoryRequest struct {
	Name string `json:"name" validate:"required,max=100"`
	Type string `json:"type" validate:"required,max=50"`
}

// Training is a user's enrollment in a training course.
type Training struct {
	ID            int        `json:"id"`
	UserID        int        `json:"user_id"`
	CategoryID    int        `json:"category_id"`
	Title         string     `json:"title"`
	Status        string     `json:"status"`
	DateStarted   *time.Time `json:"date_started,omitempty"`
	DateCompleted *time.Time `json:"date_completed,omitempty"`
	CreatedAt     time.Time  `json:"created_at"`
	UpdatedAt     *time.Time `json:"updated_at,omitempty"`
}

type TrainingRequest struct {
	CategoryID    int        `json:"category_id" validate:"required,gt=0"`
	Title         string     `json:"title" validate:"required,max=150"`
	Status        string     `json:"status" validate:"required,oneof=enrolled ongoing completed dropped"`
	DateStarted   *time.Time `json:"date_started"`
	DateCompleted *time.Time `json:"date_completed"`
}
