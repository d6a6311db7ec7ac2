package repository

import (
	"database/sql"
	"isidro-api/logger"
	"isidro-api/model"
)

type PersonalInfoRepository struct {
	DB *sql.DB
}

func NewPersonalInfoRepository(db *sql.DB) *PersonalInfoRepository {
	return &PersonalInfoRepository{DB: db}
}

func (r *PersonalInfoRepository) Create(info *model.PersonalInformation) error {
	log := logger.Log.WithField("user_id", info.UserID)
	log.Info("Executing query to create personal information")

	query := `INSERT INTO personal_information (user_id, nickname, birth_date, gender, civil_status, address, contact_number)
		VALUES ($1, $2, $3, $4, $5, $6, $7) RETURNING id, created_at`
	err := r.DB.QueryRow(query, info.UserID, info.Nickname, info.BirthDate, info.Gender, info.CivilStatus, info.Address, info.ContactNumber).
		Scan(&info.ID, &info.CreatedAt)
	if err != nil {
		log.WithError(err).Error("Failed to execute create personal information query")
		return err
	}
	return nil
}

func (r *PersonalInfoRepository) GetByUserID(userID int) (*model.PersonalInformation, error) {
	info := &model.PersonalInformation{}
	query := `SELECT id, user_id, nickname, birth_date, gender, civil_status, address, contact_number, created_at, updated_at
		FROM personal_information WHERE user_id = $1`
	err := r.DB.QueryRow(query, userID).Scan(&info.ID, &info.UserID, &info.Nickname, &info.BirthDate,
		&info.Gender, &info.CivilStatus, &info.Address, &info.ContactNumber, &info.CreatedAt, &info.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return info, nil
}

func (r *PersonalInfoRepository) Update(info *model.PersonalInformation) error {
	log := logger.Log.WithField("user_id", info.UserID)
	log.Info("Executing query to update personal information")

	query := `UPDATE personal_information SET nickname = $1, birth_date = $2, gender = $3, civil_status = $4,
		address = $5, contact_number = $6, updated_at = NOW() WHERE user_id = $7 RETURNING updated_at`
	err := r.DB.QueryRow(query, info.Nickname, info.BirthDate, info.Gender, info.CivilStatus,
		info.Address, info.ContactNumber, info.UserID).Scan(&info.UpdatedAt)
	if err != nil {
		if err != sql.ErrNoRows {
			log.WithError(err).Error("Failed to execute update personal information query")
		}
		return err
	}
	return nil
}

func (r *PersonalInfoRepository) DeleteByUserID(userID int) error {
	log := logger.Log.WithField("user_id", userID)
	log.Info("Executing query to delete personal information")

	res, err := r.DB.Exec(`DELETE FROM personal_information WHERE user_id = $1`, userID)
	if err != nil {
		log.WithError(err).Error("Failed to execute delete personal information query")
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
