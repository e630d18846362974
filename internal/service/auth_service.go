package service

import (
	"errors"
	"os"
	"time"

	"balneario/internal/repository"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"
)

type AuthService interface {
	Login(email, password string) (string, error)
	CreateAccount(email, password string, establishmentID int) error
}

type authService struct {
	repo repository.UserAuthRepository
}

func NewAuthService(repo repository.UserAuthRepository) AuthService {
	return &authService{repo: repo}
}

// Login verifies the password and issues a JWT scoped to the account's
// establishment. Every authenticated endpoint operates on that
// establishment only.
func (s *authService) Login(email, password string) (string, error) {
	account, err := s.repo.GetByEmail(email)
	if err != nil {
		return "", err
	}
	if account == nil {
		return "", errors.New("invalid credentials")
	}

	err = bcrypt.CompareHashAndPassword([]byte(account.PasswordHash), []byte(password))
	if err != nil {
		return "", errors.New("invalid credentials")
	}

	secret := os.Getenv("JWT_SECRET")
	if secret == "" {
		return "", errors.New("JWT_SECRET not set")
	}

	claims := jwt.MapClaims{
		"user_id":          account.ID,
		"email":            account.Email,
		"establishment_id": account.EstablishmentID,
		"exp":              time.Now().Add(time.Hour * 12).Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(secret))
}

func (s *authService) CreateAccount(email, password string, establishmentID int) error {
	if email == "" || password == "" {
		return errors.New("email and password cannot be empty")
	}
	if establishmentID <= 0 {
		return errors.New("establishment_id must be positive")
	}
	return s.repo.CreateAccount(email, password, establishmentID)
}
