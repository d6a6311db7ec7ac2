package repository

import (
	"database/sql"
	"isidro-api/logger"
	"isidro-api/model"

	"github.com/sirupsen/logrus"
)

// IUserRepository defines the contract for user database operations.
type IUserRepository interface {
	CreateUser(user *model.User) error
	GetUserByEmail(email string) (*model.User, error)
	GetUserByID(id int) (*model.User, error)
	GetAllUsers(skip, limit int) ([]*model.User, error)
	UpdateUser(user *model.User) error
	DeleteUserData(tx *sql.Tx, userID int) error
	DeleteUser(tx *sql.Tx, userID int) error
}

// UserRepository implements IUserRepository on top of Postgres.
type UserRepository struct {
	DB *sql.DB
}

func NewUserRepository(db *sql.DB) *UserRepository {
	return &UserRepository{DB: db}
}

func (r *UserRepository) CreateUser(user *model.User) error {
	query := `INSERT INTO users (name, email, password) VALUES ($1, $2, $3) RETURNING id, created_at`
	return r.DB.QueryRow(query, user.Name, user.Email, user.Password).Scan(&user.ID, &user.CreatedAt)
}

func (r *UserRepository) GetUserByEmail(email string) (*model.User, error) {
	user := &model.User{}
	query := `SELECT id, name, email, password, created_at, updated_at FROM users WHERE email=$1`
	err := r.DB.QueryRow(query, email).Scan(&user.ID, &user.Name, &user.Email, &user.Password, &user.CreatedAt, &user.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return user, nil
}

func (r *UserRepository) GetUserByID(id int) (*model.User, error) {
	user := &model.User{}
	query := `SELECT id, name, email, password, created_at, updated_at FROM users WHERE id=$1`
	err := r.DB.QueryRow(query, id).Scan(&user.ID, &user.Name, &user.Email, &user.Password, &user.CreatedAt, &user.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return user, nil
}

func (r *UserRepository) GetAllUsers(skip, limit int) ([]*model.User, error) {
	log := logger.Log.WithFields(logrus.Fields{"skip": skip, "limit": limit})
	log.Info("Executing query to list users")

	query := `SELECT id, name, email, password, created_at, updated_at FROM users ORDER BY id OFFSET $1 LIMIT $2`
	rows, err := r.DB.Query(query, skip, limit)
	if err != nil {
		log.WithError(err).Error("Failed to execute list users query")
		return nil, err
	}
	defer rows.Close()

	var users []*model.User
	for rows.Next() {
		var u model.User
		if err := rows.Scan(&u.ID, &u.Name, &u.Email, &u.Password, &u.CreatedAt, &u.UpdatedAt); err != nil {
			log.WithError(err).Error("Failed to scan user row")
			return nil, err
		}
		users = append(users, &u)
	}
	return users, rows.Err()
}

func (r *UserRepository) UpdateUser(user *model.User) error {
	log := logger.Log.WithField("user_id", user.ID)
	log.Info("Executing query to update user")

	query := `UPDATE users SET name = $1, email = $2, password = $3, updated_at = NOW() WHERE id = $4 RETURNING updated_at`
	err := r.DB.QueryRow(query, user.Name, user.Email, user.Password, user.ID).Scan(&user.UpdatedAt)
	if err != nil {
		if err != sql.ErrNoRows {
			log.WithError(err).Error("Failed to execute update user query")
		}
		return err
	}
	return nil
}

// DeleteUserData removes every row owned by the user from the dependent
// tables. It runs inside the caller's transaction so a failed user delete
// leaves the dependents untouched.
func (r *UserRepository) DeleteUserData(tx *sql.Tx, userID int) error {
	log := logger.Log.WithField("user_id", userID)
	log.Info("Executing queries to delete user-owned rows")

	for _, table := range []string{"attendance", "devotions", "trainings", "disciple_information", "personal_information"} {
		if _, err := tx.Exec(`DELETE FROM `+table+` WHERE user_id = $1`, userID); err != nil {
			log.WithError(err).WithField("table", table).Error("Failed to delete user-owned rows")
			return err
		}
	}
	return nil
}

// DeleteUser removes the user row itself. Returns sql.ErrNoRows when the
// user does not exist.
func (r *UserRepository) DeleteUser(tx *sql.Tx, userID int) error {
	log := logger.Log.WithField("user_id", userID)
	log.Info("Executing query to delete user")

	res, err := tx.Exec(`DELETE FROM users WHERE id = $1`, userID)
	if err != nil {
		log.WithError(err).Error("Failed to execute delete user query")
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
