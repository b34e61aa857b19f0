package services

import (
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"sigmaquiz/apierror"
	"sigmaquiz/models"
)

// ErrUserNotFound is returned whenever a user lookup by id comes up empty.
var ErrUserNotFound = apierror.NotFound("User with this id does not exist")

type UserService struct {
	db *gorm.DB
}

func NewUserService(db *gorm.DB) *UserService {
	return &UserService{db: db}
}

func (s *UserService) ListUsers() ([]models.User, error) {
	var users []models.User
	err := s.db.Order("created_at").Find(&users).Error
	return users, err
}

func (s *UserService) GetUser(id string) (*models.User, error) {
	userID, err := uuid.Parse(id)
	if err != nil {
		return nil, ErrUserNotFound
	}

	var user models.User
	if err := s.db.First(&user, "id = ?", userID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	return &user, nil
}

func (s *UserService) DeleteUser(id string) error {
	user, err := s.GetUser(id)
	if err != nil {
		return err
	}
	return s.db.Delete(user).Error
}
