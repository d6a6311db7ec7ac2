// file: repository/user_repository_test.go

package repository

import (
	"database/sql"
	"isidro-api/logger"
	"isidro-api/model"
	"os"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
)

func TestMain(m *testing.M) {
	logger.Init()
	os.Exit(m.Run())
}

func TestUserRepository_CreateUser(t *testing.T) {
	db, dbMock, err := sqlmock.New()
	assert.NoError(t, err)
	defer db.Close()

	repo := NewUserRepository(db)
	now := time.Now()

	dbMock.ExpectQuery(regexp.QuoteMeta(`INSERT INTO users (name, email, password) VALUES ($1, $2, $3) RETURNING id, created_at`)).
		WithArgs("Juan", "juan@example.com", "$2a$12$hash").
		WillReturnRows(sqlmock.NewRows([]string{"id", "created_at"}).AddRow(1, now))

	user := &model.User{Name: "Juan", Email: "juan@example.com", Password: "$2a$12$hash"}
	err = repo.CreateUser(user)

	assert.NoError(t, err)
	assert.Equal(t, 1, user.ID)
	assert.Equal(t, now, user.CreatedAt)
	assert.NoError(t, dbMock.ExpectationsWereMet())
}

func TestUserRepository_GetUserByEmail(t *testing.T) {
	db, dbMock, err := sqlmock.New()
	assert.NoError(t, err)
	defer db.Close()

	repo := NewUserRepository(db)
	now := time.Now()

	t.Run("found", func(t *testing.T) {
		rows := sqlmock.NewRows([]string{"id", "name", "email", "password", "created_at", "updated_at"}).
			AddRow(2, "Maria", "maria@example.com", "$2a$12$hash", now, nil)
		dbMock.ExpectQuery(regexp.QuoteMeta(`SELECT id, name, email, password, created_at, updated_at FROM users WHERE email=$1`)).
			WithArgs("maria@example.com").
			WillReturnRows(rows)

		user, err := repo.GetUserByEmail("maria@example.com")

		assert.NoError(t, err)
		assert.Equal(t, 2, user.ID)
		assert.Nil(t, user.UpdatedAt)
	})

	t.Run("not found", func(t *testing.T) {
		dbMock.ExpectQuery(regexp.QuoteMeta(`SELECT id, name, email, password, created_at, updated_at FROM users WHERE email=$1`)).
			WithArgs("nobody@example.com").
			WillReturnError(sql.ErrNoRows)

		_, err := repo.GetUserByEmail("nobody@example.com")
		assert.ErrorIs(t, err, sql.ErrNoRows)
	})

	assert.NoError(t, dbMock.ExpectationsWereMet())
}

func TestUserRepository_GetAllUsers(t *testing.T) {
	db, dbMock, err := sqlmock.New()
	assert.NoError(t, err)
	defer db.Close()

	repo := NewUserRepository(db)
	now := time.Now()

	rows := sqlmock.NewRows([]string{"id", "name", "email", "password", "created_at", "updated_at"}).
		AddRow(1, "Juan", "juan@example.com", "h1", now, nil).
		AddRow(2, "Maria", "maria@example.com", "h2", now, nil)
	dbMock.ExpectQuery(regexp.QuoteMeta(`SELECT id, name, email, password, created_at, updated_at FROM users ORDER BY id OFFSET $1 LIMIT $2`)).
		WithArgs(10, 50).
		WillReturnRows(rows)

	users, err := repo.GetAllUsers(10, 50)

	assert.NoError(t, err)
	assert.Len(t, users, 2)
	assert.Equal(t, "Maria", users[1].Name)
	assert.NoError(t, dbMock.ExpectationsWereMet())
}

func TestUserRepository_DeleteUser(t *testing.T) {
	db, dbMock, err := sqlmock.New()
	assert.NoError(t, err)
	defer db.Close()

	repo := NewUserRepository(db)

	t.Run("success", func(t *testing.T) {
		dbMock.ExpectBegin()
		dbMock.ExpectExec(regexp.QuoteMeta(`DELETE FROM users WHERE id = $1`)).
			WithArgs(7).
			WillReturnResult(sqlmock.NewResult(0, 1))

		tx, err := db.Begin()
		assert.NoError(t, err)

		err = repo.DeleteUser(tx, 7)
		assert.NoError(t, err)
	})

	t.Run("missing user", func(t *testing.T) {
		dbMock.ExpectBegin()
		dbMock.ExpectExec(regexp.QuoteMeta(`DELETE FROM users WHERE id = $1`)).
			WithArgs(99).
			WillReturnResult(sqlmock.NewResult(0, 0))

		tx, err := db.Begin()
		assert.NoError(t, err)

		err = repo.DeleteUser(tx, 99)
		assert.ErrorIs(t, err, sql.ErrNoRows)
	})

	assert.NoError(t, dbMock.ExpectationsWereMet())
}

// TestUserRepository_DeleteUserData checks that every dependent table is
// swept before the user row goes away.
func TestUserRepository_DeleteUserData(t *testing.T) {
	db, dbMock, err := sqlmock.New()
	assert.NoError(t, err)
	defer db.Close()

	repo := NewUserRepository(db)

	dbMock.ExpectBegin()
	for _, table := range []string{"attendance", "devotions", "trainings", "disciple_information", "personal_information"} {
		dbMock.ExpectExec(regexp.QuoteMeta(`DELETE FROM ` + table + ` WHERE user_id = $1`)).
			WithArgs(7).
			WillReturnResult(sqlmock.NewResult(0, 2))
	}

	tx, err := db.Begin()
	assert.NoError(t, err)

	err = repo.DeleteUserData(tx, 7)
	assert.NoError(t, err)
	assert.NoError(t, dbMock.ExpectationsWereMet())
}
