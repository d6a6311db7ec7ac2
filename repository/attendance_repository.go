package repository

import (
	"database/sql"
	"isidro-api/logger"
	"isidro-api/model"

	"github.com/sirupsen/logrus"
)

type AttendanceRepository struct {
	DB *sql.DB
}

func NewAttendanceRepository(db *sql.DB) *AttendanceRepository {
	return &AttendanceRepository{DB: db}
}

func (r *AttendanceRepository) Create(attendance *model.Attendance) error {
	log := logger.Log.WithFields(logrus.Fields{"user_id": attendance.UserID, "date": attendance.Date})
	log.Info("Executing query to create attendance record")

	query := `INSERT INTO attendance (user_id, date, time_in, is_present, ministry_activity_id, ministry_type, training_id)
		VALUES ($1, $2, $3, $4, $5, $6, $7) RETURNING id, created_at`
	err := r.DB.QueryRow(query, attendance.UserID, attendance.Date, attendance.TimeIn, attendance.IsPresent,
		attendance.MinistryActivityID, attendance.MinistryType, attendance.TrainingID).
		Scan(&attendance.ID, &attendance.CreatedAt)
	if err != nil {
		log.WithError(err).Error("Failed to execute create attendance query")
		return err
	}
	return nil
}

func (r *AttendanceRepository) GetByUserID(userID, skip, limit int) ([]*model.Attendance, error) {
	log := logger.Log.WithField("user_id", userID)
	log.Info("Executing query to list attendance records for user")

	query := `SELECT id, user_id, date, time_in, is_present, ministry_activity_id, ministry_type, training_id, created_at, updated_at
		FROM attendance WHERE user_id = $1 ORDER BY date DESC OFFSET $2 LIMIT $3`
	rows, err := r.DB.Query(query, userID, skip, limit)
	if err != nil {
		log.WithError(err).Error("Failed to execute list attendance query")
		return nil, err
	}
	defer rows.Close()

	var records []*model.Attendance
	for rows.Next() {
		var a model.Attendance
		if err := rows.Scan(&a.ID, &a.UserID, &a.Date, &a.TimeIn, &a.IsPresent,
			&a.MinistryActivityID, &a.MinistryType, &a.TrainingID, &a.CreatedAt, &a.UpdatedAt); err != nil {
			log.WithError(err).Error("Failed to scan attendance row")
			return nil, err
		}
		records = append(records, &a)
	}
	return records, rows.Err()
}

func (r *AttendanceRepository) GetByID(userID, attendanceID int) (*model.Attendance, error) {
	a := &model.Attendance{}
	query := `SELECT id, user_id, date, time_in, is_present, ministry_activity_id, ministry_type, training_id, created_at, updated_at
		FROM attendance WHERE id = $1 AND user_id = $2`
	err := r.DB.QueryRow(query, attendanceID, userID).Scan(&a.ID, &a.UserID, &a.Date, &a.TimeIn, &a.IsPresent,
		&a.MinistryActivityID, &a.MinistryType, &a.TrainingID, &a.CreatedAt, &a.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return a, nil
}

func (r *AttendanceRepository) Update(attendance *model.Attendance) error {
	log := logger.Log.WithFields(logrus.Fields{"user_id": attendance.UserID, "attendance_id": attendance.ID})
	log.Info("Executing query to update attendance record")

	query := `UPDATE attendance SET date = $1, time_in = $2, is_present = $3, ministry_activity_id = $4,
		ministry_type = $5, training_id = $6, updated_at = NOW() WHERE id = $7 AND user_id = $8 RETURNING updated_at`
	err := r.DB.QueryRow(query, attendance.Date, attendance.TimeIn, attendance.IsPresent,
		attendance.MinistryActivityID, attendance.MinistryType, attendance.TrainingID,
		attendance.ID, attendance.UserID).Scan(&attendance.UpdatedAt)
	if err != nil {
		if err != sql.ErrNoRows {
			log.WithError(err).Error("Failed to execute update attendance query")
		}
		return err
	}
	return nil
}

func (r *AttendanceRepository) Delete(userID, attendanceID int) error {
	log := logger.Log.WithFields(logrus.Fields{"user_id": userID, "attendance_id": attendanceID})
	log.Info("Executing query to delete attendance record")

	res, err := r.DB.Exec(`DELETE FROM attendance WHERE id = $1 AND user_id = $2`, attendanceID, userID)
	if err != nil {
		log.WithError(err).Error("Failed to execute delete attendance query")
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
