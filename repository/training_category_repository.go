package repository

import (
	"database/sql"
	"isidro-api/logger"
	"isidro-api/model"
)

type TrainingCategoryRepository struct {
	DB *sql.DB
}

func NewTrainingCategoryRepository(db *sql.DB) *TrainingCategoryRepository {
	return &TrainingCategoryRepository{DB: db}
}

func (r *TrainingCategoryRepository) Create(category *model.TrainingCategory) error {
	log := logger.Log.WithField("name", category.Name)
	log.Info("Executing query to create training category")

	query := `INSERT INTO training_categories (name, type) VALUES ($1, $2) RETURNING id, created_at`
	err := r.DB.QueryRow(query, category.Name, category.Type).Scan(&category.ID, &category.CreatedAt)
	if err != nil {
		log.WithError(err).Error("Failed to execute create training category query")
		return err
	}
	return nil
}

func (r *TrainingCategoryRepository) GetAll(skip, limit int) ([]*model.TrainingCategory, error) {
	query := `SELECT id, name, type, created_at FROM training_categories ORDER BY id OFFSET $1 LIMIT $2`
	rows, err := r.DB.Query(query, skip, limit)
	if err != nil {
		logger.Log.WithError(err).Error("Failed to execute list training categories query")
		return nil, err
	}
	defer rows.Close()

	var categories []*model.TrainingCategory
	for rows.Next() {
		var c model.TrainingCategory
		if err := rows.Scan(&c.ID, &c.Name, &c.Type, &c.CreatedAt); err != nil {
			return nil, err
		}
		categories = append(categories, &c)
	}
	return categories, rows.Err()
}

func (r *TrainingCategoryRepository) GetByID(id int) (*model.TrainingCategory, error) {
	c := &model.TrainingCategory{}
	query := `SELECT id, name, type, created_at FROM training_categories WHERE id = $1`
	err := r.DB.QueryRow(query, id).Scan(&c.ID, &c.Name, &c.Type, &c.CreatedAt)
	if err != nil {
		return nil, err
	}
	return c, nil
}

func (r *TrainingCategoryRepository) Update(category *model.TrainingCategory) error {
	res, err := r.DB.Exec(`UPDATE training_categories SET name = $1, type = $2 WHERE id = $3`,
		category.Name, category.Type, category.ID)
	if err != nil {
		logger.Log.WithError(err).Error("Failed to execute update training category query")
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

func (r *TrainingCategoryRepository) Delete(id int) error {
	res, err := r.DB.Exec(`DELETE FROM training_categories WHERE id = $1`, id)
	if err != nil {
		logger.Log.WithError(err).Error("Failed to execute delete training category query")
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
