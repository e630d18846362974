package repository

import (
	"database/sql"
	"errors"

	"balneario/internal/db"
	"golang.org/x/crypto/bcrypt"
)

type UserAuthRepository interface {
	GetByEmail(email string) (*db.UserAccount, error)
	CreateAccount(email, password string, establishmentID int) error
}

type userAuthRepository struct {
	db *sql.DB
}

func NewUserAuthRepository(database *sql.DB) UserAuthRepository {
	return &userAuthRepository{db: database}
}

func (r *userAuthRepository) GetByEmail(email string) (*db.UserAccount, error) {
	var account db.UserAccount
	err := r.db.QueryRow(
		"SELECT id, email, password_hash, establishment_id FROM user_accounts WHERE email = $1", email).
		Scan(&account.ID, &account.Email, &account.PasswordHash, &account.EstablishmentID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return &account, nil
}

func (r *userAuthRepository) CreateAccount(email, password string, establishmentID int) error {
	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	query := "INSERT INTO user_accounts (email, password_hash, establishment_id) VALUES ($1, $2, $3)"
	_, err = r.db.Exec(query, email, hashedPassword, establishmentID)
	if err != nil {
		return err
	}

	return nil
}
