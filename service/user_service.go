package service

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"isidro-api/logger"
	"isidro-api/model"
	"isidro-api/repository"
)

var (
	ErrUserNotFound       = errors.New("user not found")
	ErrEmailAlreadyExists = errors.New("email already registered")
)

// UserService handles user-related business logic: registration, profile
// updates, and the transactional removal of a user with everything they own.
type UserService struct {
	db       *sql.DB
	userRepo repository.IUserRepository
	auth     *AuthService
}

func NewUserService(db *sql.DB, userRepo repository.IUserRepository, auth *AuthService) *UserService {
	return &UserService{db: db, userRepo: userRepo, auth: auth}
}

// RegisterUser hashes the password and creates the user. Duplicate emails
// are rejected before the insert so the common case surfaces a clean error
// rather than a constraint violation.
func (s *UserService) RegisterUser(req model.RegisterRequest) (*model.User, error) {
	if _, err := s.userRepo.GetUserByEmail(req.Email); err == nil {
		return nil, ErrEmailAlreadyExists
	}

	hashedPassword, err := s.auth.HashPassword(req.Password)
	if err != nil {
		return nil, err
	}

	user := &model.User{
		Name:     req.Name,
		Email:    req.Email,
		Password: hashedPassword,
	}

	if err := s.userRepo.CreateUser(user); err != nil {
		return nil, err
	}
	return user, nil
}

func (s *UserService) GetUser(userID int) (*model.User, error) {
	user, err := s.userRepo.GetUserByID(userID)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	return user, nil
}

func (s *UserService) ListUsers(skip, limit int) ([]*model.User, error) {
	return s.userRepo.GetAllUsers(skip, limit)
}

// UpdateUser applies a partial profile update. A non-empty password is
// re-hashed; empty fields keep their current value. An email change is
// rejected when the new address already belongs to another account.
func (s *UserService) UpdateUser(userID int, req model.UpdateUserRequest) (*model.User, error) {
	user, err := s.userRepo.GetUserByID(userID)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, ErrUserNotFound
		}
		return nil, err
	}

	if req.Name != "" {
		user.Name = req.Name
	}
	if req.Email != "" && req.Email != user.Email {
		if _, err := s.userRepo.GetUserByEmail(req.Email); err == nil {
			return nil, ErrEmailAlreadyExists
		}
		user.Email = req.Email
	}
	if req.Password != "" {
		hashed, err := s.auth.HashPassword(req.Password)
		if err != nil {
			return nil, err
		}
		user.Password = hashed
	}

	if err := s.userRepo.UpdateUser(user); err != nil {
		return nil, err
	}
	return user, nil
}

// DeleteUser removes the user and every row they own in a single database
// transaction.
func (s *UserService) DeleteUser(ctx context.Context, userID int) error {
	log := logger.Log.WithField("user_id", userID)
	log.Info("Starting transactional user delete")

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("could not begin transaction: %w", err)
	}
	defer tx.Rollback()

	if err := s.userRepo.DeleteUserData(tx, userID); err != nil {
		return err
	}

	if err := s.userRepo.DeleteUser(tx, userID); err != nil {
		if err == sql.ErrNoRows {
			return ErrUserNotFound
		}
		return err
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("could not commit transaction: %w", err)
	}

	log.Info("User deleted")
	return nil
}
