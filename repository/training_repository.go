package repository

import (
	"database/sql"
	"isidro-api/logger"
	"isidro-api/model"

	"github.com/sirupsen/logrus"
)

type TrainingRepository struct {
	DB *sql.DB
}

func NewTrainingRepository(db *sql.DB) *TrainingRepository {
	return &TrainingRepository{DB: db}
}

func (r *TrainingRepository) Create(training *model.Training) error {
	log := logger.Log.WithFields(logrus.Fields{"user_id": training.UserID, "category_id": training.CategoryID})
	log.Info("Executing query to create training")

	query := `INSERT INTO trainings (user_id, category_id, title, status, date_started, date_completed)
		VALUES ($1, $2, $3, $4, $5, $6) RETURNING id, created_at`
	err := r.DB.QueryRow(query, training.UserID, training.CategoryID, training.Title, training.Status,
		training.DateStarted, training.DateCompleted).Scan(&training.ID, &training.CreatedAt)
	if err != nil {
		log.WithError(err).Error("Failed to execute create training query")
		return err
	}
	return nil
}

func (r *TrainingRepository) GetByUserID(userID, skip, limit int) ([]*model.Training, error) {
	log := logger.Log.WithField("user_id", userID)
	log.Info("Executing query to list trainings for user")

	query := `SELECT id, user_id, category_id, title, status, date_started, date_completed, created_at, updated_at
		FROM trainings WHERE user_id = $1 ORDER BY id OFFSET $2 LIMIT $3`
	rows, err := r.DB.Query(query, userID, skip, limit)
	if err != nil {
		log.WithError(err).Error("Failed to execute list trainings query")
		return nil, err
	}
	defer rows.Close()

	var trainings []*model.Training
	for rows.Next() {
		var t model.Training
		if err := rows.Scan(&t.ID, &t.UserID, &t.CategoryID, &t.Title, &t.Status,
			&t.DateStarted, &t.DateCompleted, &t.CreatedAt, &t.UpdatedAt); err != nil {
			log.WithError(err).Error("Failed to scan training row")
			return nil, err
		}
		trainings = append(trainings, &t)
	}
	return trainings, rows.Err()
}

func (r *TrainingRepository) GetByID(userID, trainingID int) (*model.Training, error) {
	t := &model.Training{}
	query := `SELECT id, user_id, category_id, title, status, date_started, date_completed, created_at, updated_at
		FROM trainings WHERE id = $1 AND user_id = $2`
	err := r.DB.QueryRow(query, trainingID, userID).Scan(&t.ID, &t.UserID, &t.CategoryID, &t.Title, &t.Status,
		&t.DateStarted, &t.DateCompleted, &t.CreatedAt, &t.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return t, nil
}

func (r *TrainingRepository) Update(training *model.Training) error {
	log := logger.Log.WithFields(logrus.Fields{"user_id": training.UserID, "training_id": training.ID})
	log.Info("Executing query to update training")

	query := `UPDATE trainings SET category_id = $1, title = $2, status = $3, date_started = $4,
		date_completed = $5, updated_at = NOW() WHERE id = $6 AND user_id = $7 RETURNING updated_at`
	err := r.DB.QueryRow(query, training.CategoryID, training.Title, training.Status, training.DateStarted,
		training.DateCompleted, training.ID, training.UserID).Scan(&training.UpdatedAt)
	if err != nil {
		if err != sql.ErrNoRows {
			log.WithError(err).Error("Failed to execute update training query")
		}
		return err
	}
	return nil
}

func (r *TrainingRepository) Delete(userID, trainingID int) error {
	log := logger.Log.WithFields(logrus.Fields{"user_id": userID, "training_id": trainingID})
	log.Info("Executing query to delete training")

	res, err := r.DB.Exec(`DELETE FROM trainings WHERE id = $1 AND user_id = $2`, trainingID, userID)
	if err != nil {
		log.WithError(err).Error("Failed to execute delete training query")
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
