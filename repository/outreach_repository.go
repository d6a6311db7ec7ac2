package repository

import (
	"database/sql"
	"isidro-api/logger"
	"isidro-api/model"
)

type OutreachRepository struct {
	DB *sql.DB
}

func NewOutreachRepository(db *sql.DB) *OutreachRepository {
	return &OutreachRepository{DB: db}
}

func (r *OutreachRepository) Create(outreach *model.Outreach) error {
	log := logger.Log.WithField("name", outreach.Name)
	log.Info("Executing query to create outreach program")

	query := `INSERT INTO outreaches (name, assigned_pastor, location, year_start)
		VALUES ($1, $2, $3, $4) RETURNING id, created_at`
	err := r.DB.QueryRow(query, outreach.Name, outreach.AssignedPastor, outreach.Location, outreach.YearStart).
		Scan(&outreach.ID, &outreach.CreatedAt)
	if err != nil {
		log.WithError(err).Error("Failed to execute create outreach query")
		return err
	}
	return nil
}

func (r *OutreachRepository) GetAll(skip, limit int) ([]*model.Outreach, error) {
	query := `SELECT id, name, assigned_pastor, location, year_start, created_at, updated_at
		FROM outreaches ORDER BY id OFFSET $1 LIMIT $2`
	rows, err := r.DB.Query(query, skip, limit)
	if err != nil {
		logger.Log.WithError(err).Error("Failed to execute list outreaches query")
		return nil, err
	}
	defer rows.Close()

	var outreaches []*model.Outreach
	for rows.Next() {
		var o model.Outreach
		if err := rows.Scan(&o.ID, &o.Name, &o.AssignedPastor, &o.Location, &o.YearStart, &o.CreatedAt, &o.UpdatedAt); err != nil {
			return nil, err
		}
		outreaches = append(outreaches, &o)
	}
	return outreaches, rows.Err()
}

func (r *OutreachRepository) GetByID(id int) (*model.Outreach, error) {
	o := &model.Outreach{}
	query := `SELECT id, name, assigned_pastor, location, year_start, created_at, updated_at
		FROM outreaches WHERE id = $1`
	err := r.DB.QueryRow(query, id).Scan(&o.ID, &o.Name, &o.AssignedPastor, &o.Location, &o.YearStart, &o.CreatedAt, &o.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return o, nil
}

func (r *OutreachRepository) Update(outreach *model.Outreach) error {
	log := logger.Log.WithField("outreach_id", outreach.ID)
	log.Info("Executing query to update outreach program")

	query := `UPDATE outreaches SET name = $1, assigned_pastor = $2, location = $3, year_start = $4,
		updated_at = NOW() WHERE id = $5 RETURNING updated_at`
	err := r.DB.QueryRow(query, outreach.Name, outreach.AssignedPastor, outreach.Location,
		outreach.YearStart, outreach.ID).Scan(&outreach.UpdatedAt)
	if err != nil {
		if err != sql.ErrNoRows {
			log.WithError(err).Error("Failed to execute update outreach query")
		}
		return err
	}
	return nil
}

func (r *OutreachRepository) Delete(id int) error {
	log := logger.Log.WithField("outreach_id", id)
	log.Info("Executing query to delete outreach program")

	res, err := r.DB.Exec(`DELETE FROM outreaches WHERE id = $1`, id)
	if err != nil {
		log.WithError(err).Error("Failed to execute delete outreach query")
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
