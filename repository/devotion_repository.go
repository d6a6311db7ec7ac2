package repository

import (
	"database/sql"
	"isidro-api/logger"
	"isidro-api/model"

	"github.com/sirupsen/logrus"
)

// IDevotionRepository defines the contract for devotion database operations.
type IDevotionRepository interface {
	Create(devotion *model.Devotion) error
	GetByUserID(userID, skip, limit int) ([]*model.Devotion, error)
	GetByID(userID, devotionID int) (*model.Devotion, error)
	Update(devotion *model.Devotion) error
	Delete(userID, devotionID int) error
}

// DevotionRepository implements IDevotionRepository.
type DevotionRepository struct {
	DB *sql.DB
}

func NewDevotionRepository(db *sql.DB) *DevotionRepository {
	return &DevotionRepository{DB: db}
}

func (r *DevotionRepository) Create(devotion *model.Devotion) error {
	log := logger.Log.WithField("user_id", devotion.UserID)
	log.Info("Executing query to create devotion")

	query := `INSERT INTO devotions (user_id, date, scripture, insight, prayer)
		VALUES ($1, $2, $3, $4, $5) RETURNING id, created_at`
	err := r.DB.QueryRow(query, devotion.UserID, devotion.Date, devotion.Scripture, devotion.Insight, devotion.Prayer).
		Scan(&devotion.ID, &devotion.CreatedAt)
	if err != nil {
		log.WithError(err).Error("Failed to execute create devotion query")
		return err
	}
	return nil
}

func (r *DevotionRepository) GetByUserID(userID, skip, limit int) ([]*model.Devotion, error) {
	log := logger.Log.WithFields(logrus.Fields{"user_id": userID, "skip": skip, "limit": limit})
	log.Info("Executing query to list devotions for user")

	query := `SELECT id, user_id, date, scripture, insight, prayer, created_at, updated_at
		FROM devotions WHERE user_id = $1 ORDER BY date DESC OFFSET $2 LIMIT $3`
	rows, err := r.DB.Query(query, userID, skip, limit)
	if err != nil {
		log.WithError(err).Error("Failed to execute list devotions query")
		return nil, err
	}
	defer rows.Close()

	var devotions []*model.Devotion
	for rows.Next() {
		var d model.Devotion
		if err := rows.Scan(&d.ID, &d.UserID, &d.Date, &d.Scripture, &d.Insight, &d.Prayer, &d.CreatedAt, &d.UpdatedAt); err != nil {
			log.WithError(err).Error("Failed to scan devotion row")
			return nil, err
		}
		devotions = append(devotions, &d)
	}
	return devotions, rows.Err()
}

func (r *DevotionRepository) GetByID(userID, devotionID int) (*model.Devotion, error) {
	d := &model.Devotion{}
	query := `SELECT id, user_id, date, scripture, insight, prayer, created_at, updated_at
		FROM devotions WHERE id = $1 AND user_id = $2`
	err := r.DB.QueryRow(query, devotionID, userID).
		Scan(&d.ID, &d.UserID, &d.Date, &d.Scripture, &d.Insight, &d.Prayer, &d.CreatedAt, &d.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return d, nil
}

func (r *DevotionRepository) Update(devotion *model.Devotion) error {
	log := logger.Log.WithFields(logrus.Fields{"user_id": devotion.UserID, "devotion_id": devotion.ID})
	log.Info("Executing query to update devotion")

	query := `UPDATE devotions SET date = $1, scripture = $2, insight = $3, prayer = $4, updated_at = NOW()
		WHERE id = $5 AND user_id = $6 RETURNING updated_at`
	err := r.DB.QueryRow(query, devotion.Date, devotion.Scripture, devotion.Insight, devotion.Prayer,
		devotion.ID, devotion.UserID).Scan(&devotion.UpdatedAt)
	if err != nil {
		if err != sql.ErrNoRows {
			log.WithError(err).Error("Failed to execute update devotion query")
		}
		return err
	}
	return nil
}

func (r *DevotionRepository) Delete(userID, devotionID int) error {
	log := logger.Log.WithFields(logrus.Fields{"user_id": userID, "devotion_id": devotionID})
	log.Info("Executing query to delete devotion")

	res, err := r.DB.Exec(`DELETE FROM devotions WHERE id = $1 AND user_id = $2`, devotionID, userID)
	if err != nil {
		log.WithError(err).Error("Failed to execute delete devotion query")
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
