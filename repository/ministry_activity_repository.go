package repository

import (
	"database/sql"
	"isidro-api/logger"
	"isidro-api/model"

	"github.com/lib/pq"
	"github.com/sirupsen/logrus"
)

type MinistryActivityRepository struct {
	DB *sql.DB
}

func NewMinistryActivityRepository(db *sql.DB) *MinistryActivityRepository {
	return &MinistryActivityRepository{DB: db}
}

func (r *MinistryActivityRepository) Create(activity *model.MinistryActivity) error {
	log := logger.Log.WithFields(logrus.Fields{
		"organizer_id": activity.OrganizerID,
		"title":        activity.Title,
	})
	log.Info("Executing query to create ministry activity")

	query := `INSERT INTO ministry_activities
		(title, date, is_regular, organizer_id, place, outreach_id, schedule_type, weekdays, monthly_dates, yearly_dates, start_time, end_time)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12) RETURNING id, created_at`
	err := r.DB.QueryRow(query, activity.Title, activity.Date, activity.IsRegular, activity.OrganizerID,
		activity.Place, activity.OutreachID, activity.ScheduleType,
		pq.Array(activity.Weekdays), pq.Array(activity.MonthlyDates), pq.Array(activity.YearlyDates),
		activity.StartTime, activity.EndTime).Scan(&activity.ID, &activity.CreatedAt)
	if err != nil {
		log.WithError(err).Error("Failed to execute create ministry activity query")
		return err
	}
	return nil
}

func (r *MinistryActivityRepository) GetAll(skip, limit int) ([]*model.MinistryActivity, error) {
	log := logger.Log.WithFields(logrus.Fields{"skip": skip, "limit": limit})
	log.Info("Executing query to list ministry activities")

	query := `SELECT id, title, date, is_regular, organizer_id, place, outreach_id, schedule_type,
		weekdays, monthly_dates, yearly_dates, start_time, end_time, created_at, updated_at
		FROM ministry_activities ORDER BY id OFFSET $1 LIMIT $2`
	rows, err := r.DB.Query(query, skip, limit)
	if err != nil {
		log.WithError(err).Error("Failed to execute list ministry activities query")
		return nil, err
	}
	defer rows.Close()

	var activities []*model.MinistryActivity
	for rows.Next() {
		a, err := scanMinistryActivity(rows)
		if err != nil {
			log.WithError(err).Error("Failed to scan ministry activity row")
			return nil, err
		}
		activities = append(activities, a)
	}
	return activities, rows.Err()
}

func (r *MinistryActivityRepository) GetByID(id int) (*model.MinistryActivity, error) {
	query := `SELECT id, title, date, is_regular, organizer_id, place, outreach_id, schedule_type,
		weekdays, monthly_dates, yearly_dates, start_time, end_time, created_at, updated_at
		FROM ministry_activities WHERE id = $1`
	row := r.DB.QueryRow(query, id)
	return scanMinistryActivity(row)
}

func (r *MinistryActivityRepository) Update(activity *model.MinistryActivity) error {
	log := logger.Log.WithField("activity_id", activity.ID)
	log.Info("Executing query to update ministry activity")

	query := `UPDATE ministry_activities SET title = $1, date = $2, is_regular = $3, place = $4,
		outreach_id = $5, schedule_type = $6, weekdays = $7, monthly_dates = $8, yearly_dates = $9,
		start_time = $10, end_time = $11, updated_at = NOW() WHERE id = $12 RETURNING updated_at`
	err := r.DB.QueryRow(query, activity.Title, activity.Date, activity.IsRegular, activity.Place,
		activity.OutreachID, activity.ScheduleType, pq.Array(activity.Weekdays),
		pq.Array(activity.MonthlyDates), pq.Array(activity.YearlyDates),
		activity.StartTime, activity.EndTime, activity.ID).Scan(&activity.UpdatedAt)
	if err != nil {
		if err != sql.ErrNoRows {
			log.WithError(err).Error("Failed to execute update ministry activity query")
		}
		return err
	}
	return nil
}

func (r *MinistryActivityRepository) Delete(id int) error {
	log := logger.Log.WithField("activity_id", id)
	log.Info("Executing query to delete ministry activity")

	res, err := r.DB.Exec(`DELETE FROM ministry_activities WHERE id = $1`, id)
	if err != nil {
		log.WithError(err).Error("Failed to execute delete ministry activity query")
		return err
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return sql.ErrNoRows
	}
	return nil
}

// scanner covers both *sql.Row and *sql.Rows.
type scanner interface {
	Scan(dest ...interface{}) error
}

func scanMinistryActivity(s scanner) (*model.MinistryActivity, error) {
	a := &model.MinistryActivity{}
	err := s.Scan(&a.ID, &a.Title, &a.Date, &a.IsRegular, &a.OrganizerID, &a.Place, &a.OutreachID,
		&a.ScheduleType, &a.Weekdays, &a.MonthlyDates, &a.YearlyDates,
		&a.StartTime, &a.EndTime, &a.CreatedAt, &a.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return a, nil
}
