package model

import "time"

// Devotion is a personal devotional log entry.
type Devotion struct {
	ID        int        `json:"id"`
	UserID    int        `json:"user_id"`
	Date      time.Time  `json:"date"`
	Scripture string     `json:"scripture"`
	Insight   string     `json:"insight"`
	Prayer    string     `json:"prayer"`
	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt *time.Time `json:"updated_at,omitempty"`
}

type DevotionRequest struct {
	Date      time.Time `json:"date" validate:"required"`
	Scripture string    `json:"scripture" validate:"required,max=255"`
	Insight   string    `json:"insight"`
	Prayer    string    `json:"prayer"`
}
