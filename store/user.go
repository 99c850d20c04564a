package store

import (
	"errors"
	"time"

	"go-climate-backend/models"

	"gorm.io/gorm"
)

type UserStore struct {
	db *gorm.DB
}

func NewUserStore(db *gorm.DB) *UserStore {
	return &UserStore{db: db}
}

// ListAll returns every user in storage order.
func (s *UserStore) ListAll() ([]models.User, error) {
	var users []models.User
	err := s.db.Order("id").Find(&users).Error
	return users, err
}

// FindByEmail returns the user with the given email, or ErrNotFound.
// The match is exact and case-sensitive.
func (s *UserStore) FindByEmail(email string) (models.User, error) {
	var user models.User
	err := s.db.Where("email = ?", email).First(&user).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return user, ErrNotFound
	}
	return user, err
}

// Insert persists a new user, returning ErrEmailTaken if the email is
// already registered. The pre-check alone cannot exclude a concurrent
// insert of the same email, so the unique index on users.email is the
// authority; its violation maps to the same error.
func (s *UserStore) Insert(user models.User) (models.User, error) {
	if _, err := s.FindByEmail(user.Email); err == nil {
		return user, ErrEmailTaken
	} else if !errors.Is(err, ErrNotFound) {
		return user, err
	}

	if user.DateJoined.IsZero() {
		user.DateJoined = time.Now().UTC()
	}

	if err := s.db.Create(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return user, ErrEmailTaken
		}
		return user, err
	}
	return user, nil
}
