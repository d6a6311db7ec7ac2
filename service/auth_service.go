package service

import (
	"errors"
	"isidro-api/logger"
	"isidro-api/model"
	"isidro-api/repository"

	"golang.org/x/crypto/bcrypt"
)

// bcryptCost is the bcrypt work factor. Deliberately expensive; callers must
// tolerate the latency of a full hash computation.
const bcryptCost = 12

// ErrInvalidCredentials covers both "no such user" and "wrong password" so
// the login endpoint cannot be used to enumerate registered emails.
var ErrInvalidCredentials = errors.New("invalid email or password")

// AuthService handles credential hashing and the login check.
type AuthService struct {
	userRepo repository.IUserRepository
}

func NewAuthService(userRepo repository.IUserRepository) *AuthService {
	return &AuthService{userRepo: userRepo}
}

// HashPassword hashes a plaintext password with a fresh random salt. Hashing
// the same password twice yields different strings.
func (s *AuthService) HashPassword(password string) (string, error) {
	bytes, err := bcrypt.GenerateFromPassword([]byte(password), bcryptCost)
	if err != nil {
		logger.Log.WithError(err).Error("Failed to hash password")
		return "", err
	}
	return string(bytes), nil
}

// CheckPasswordHash reports whether password matches the stored hash. It is
// false on any mismatch, including a malformed stored hash; it never panics.
func (s *AuthService) CheckPasswordHash(password, hash string) bool {
	err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(password))
	return err == nil
}

// Login looks the user up by email and verifies the password. Both failure
// paths return ErrInvalidCredentials; only the server log records which one
// it was.
func (s *AuthService) Login(email, password string) (*model.User, error) {
	user, err := s.userRepo.GetUserByEmail(email)
	if err != nil {
		logger.Log.WithField("email", email).Info("Login attempt for unknown email")
		return nil, ErrInvalidCredentials
	}

	if !s.CheckPasswordHash(password, user.Password) {
		logger.Log.WithField("user_id", user.ID).Info("Login attempt with wrong password")
		return nil, ErrInvalidCredentials
	}

	return user, nil
}
