package model

import (
	"time"

	"github.com/lib/pq"
)

// MinistryActivity is a church event or regular ministry gathering. The user
// who creates an activity becomes its organizer and is the only one allowed
// to modify or delete it.
type MinistryActivity struct {
	ID           int            `json:"id"`
	Title        string         `json:"title"`
	Date         *time.Time     `json:"date,omitempty"`
	IsRegular    bool           `json:"is_regular"`
	OrganizerID  int            `json:"organizer_id"`
	Place        string         `json:"place"`
	OutreachID   *int64         `json:"outreach_id,omitempty"`
	ScheduleType string         `json:"schedule_type"`
	Weekdays     pq.StringArray `json:"weekdays" swaggertype:"array,string"`
	MonthlyDates pq.Int64Array  `json:"monthly_dates" swaggertype:"array,integer"`
	YearlyDates  pq.StringArray `json:"yearly_dates" swaggertype:"array,string"`
	StartTime    string         `json:"start_time"`
	EndTime      string         `json:"end_time"`
	CreatedAt    time.Time      `json:"created_at"`
	UpdatedAt    *time.Time     `json:"updated_at,omitempty"`
}

type MinistryActivityRequest struct {
	Title        string     `json:"title" validate:"required,max=150"`
	Date         *time.Time `json:"date"`
	IsRegular    bool       `json:"is_regular"`
	Place        string     `json:"place" validate:"omitempty,max=255"`
	OutreachID   *int64     `json:"outreach_id" validate:"omitempty,gt=0"`
	ScheduleType string     `json:"schedule_type" validate:"omitempty,oneof=once weekly monthly yearly"`
	Weekdays     []string   `json:"weekdays" validate:"dive,oneof=monday tuesday wednesday thursday friday saturday sunday"`
	MonthlyDates []int64    `json:"monthly_dates" validate:"dive,gte=1,lte=31"`
	YearlyDates  []string   `json:"yearly_dates"`
	StartTime    string     `json:"start_time" validate:"omitempty,max=10"`
	EndTime      string     `json:"end_time" validate:"omitempty,max=10"`
}
