package repository

import (
	"database/sql"
	"isidro-api/logger"
	"isidro-api/model"
)

type DiscipleInfoRepository struct {
	DB *sql.DB
}

func NewDiscipleInfoRepository(db *sql.DB) *DiscipleInfoRepository {
	return &DiscipleInfoRepository{DB: db}
}

func (r *DiscipleInfoRepository) Create(info *model.DiscipleInformation) error {
	log := logger.Log.WithField("user_id", info.UserID)
	log.Info("Executing query to create disciple information")

	query := `INSERT INTO disciple_information (user_id, discipler_name, consolidation_date, water_baptized, spirit_filled, cell_group)
		VALUES ($1, $2, $3, $4, $5, $6) RETURNING id, created_at`
	err := r.DB.QueryRow(query, info.UserID, info.DisciplerName, info.ConsolidationDate,
		info.WaterBaptized, info.SpiritFilled, info.CellGroup).Scan(&info.ID, &info.CreatedAt)
	if err != nil {
		log.WithError(err).Error("Failed to execute create disciple information query")
		return err
	}
	return nil
}

func (r *DiscipleInfoRepository) GetByUserID(userID int) (*model.DiscipleInformation, error) {
	info := &model.DiscipleInformation{}
	query := `SELECT id, user_id, discipler_name, consolidation_date, water_baptized, spirit_filled, cell_group, created_at, updated_at
		FROM disciple_information WHERE user_id = $1`
	err := r.DB.QueryRow(query, userID).Scan(&info.ID, &info.UserID, &info.DisciplerName, &info.ConsolidationDate,
		&info.WaterBaptized, &info.SpiritFilled, &info.CellGroup, &info.CreatedAt, &info.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return info, nil
}

func (r *DiscipleInfoRepository) Update(info *model.DiscipleInformation) error {
	log := logger.Log.WithField("user_id", info.UserID)
	log.Info("Executing query to update disciple information")

	query := `UPDATE disciple_information SET discipler_name = $1, consolidation_date = $2, water_baptized = $3,
		spirit_filled = $4, cell_group = $5, updated_at = NOW() WHERE user_id = $6 RETURNING updated_at`
	err := r.DB.QueryRow(query, info.DisciplerName, info.ConsolidationDate, info.WaterBaptized,
		info.SpiritFilled, info.CellGroup, info.UserID).Scan(&info.UpdatedAt)
	if err != nil {
		if err != sql.ErrNoRows {
			log.WithError(err).Error("Failed to execute update disciple information query")
		}
		return err
	}
	return nil
}

func (r *DiscipleInfoRepository) DeleteByUserID(userID int) error {
	log := logger.Log.WithField("user_id", userID)
	log.Info("Executing query to delete disciple information")

	res, err := r.DB.Exec(`DELETE FROM disciple_information WHERE user_id = $1`, userID)
	if err != nil {
		log.WithError(err).Error("Failed to execute delete disciple information query")
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
