package database

import (
	"errors"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type UserStore struct {
	db *gorm.DB
}

func NewUserStore(db *gorm.DB) *UserStore {
	return &UserStore{db: db}
}

// Create inserts a user with a bcrypt hash of the given password.
func (s *UserStore) Create(email, password string) (*User, error) {
	passwordHash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	user := User{Email: email, PasswordHash: passwordHash}
	if result := s.db.Create(&user); result.Error != nil {
		return nil, result.Error
	}
	return &user, nil
}

// DeleteByEmail removes the user with the given email along with their
// notes. A missing user is tolerated so the seed binary can run against a
// fresh database.
func (s *UserStore) DeleteByEmail(email string) error {
	var user User
	result := s.db.Where("email = ?", email).First(&user)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil
		}
		return result.Error
	}

	if err := s.db.Unscoped().Where("user_id = ?", user.ID).Delete(&Note{}).Error; err != nil {
		return err
	}
	return s.db.Unscoped().Delete(&user).Error
}

// VerifyCredentials checks email and password and returns the matching
// user, or nil when either is wrong.
func (s *UserStore) VerifyCredentials(email, password string) (*User, error) {
	var user User
	result := s.db.Where("email = ?", email).First(&user)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, result.Error
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return nil, nil
	}
	return &user, nil
}

// SetSessionToken stores a fresh session token on the user row.
func (s *UserStore) SetSessionToken(user *User, token string) error {
	user.SessionToken = token
	return s.db.Save(user).Error
}

// GetBySessionToken resolves a session cookie value back to its user, or
// nil when the token matches nobody.
func (s *UserStore) GetBySessionToken(token string) (*User, error) {
	var user User
	result := s.db.Where(&User{SessionToken: token}).First(&user)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, result.Error
	}
	return &user, nil
}

// CreateNote attaches a fixture note to a user. Only the seed binary calls
// this.
func (s *UserStore) CreateNote(user *User, title, body string) error {
	note := Note{Title: title, Body: body, UserID: user.ID}
	return s.db.Create(&note).Error
}
