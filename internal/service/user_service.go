package service

import (
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/learnhub-app/learnhub-backend/internal/apperr"
	"github.com/learnhub-app/learnhub-backend/internal/models"
)

type UserService struct {
	userRepo   UserStore
	courseRepo CourseStore
}

func NewUserService(userRepo UserStore, courseRepo CourseStore) *UserService {
	return &UserService{
		userRepo:   userRepo,
		courseRepo: courseRepo,
	}
}

func (s *UserService) GetProfile(userID uint) (*models.User, error) {
	user, err := s.userRepo.GetByID(userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: user %d", apperr.ErrNotFound, userID)
		}
		return nil, err
	}
	return user, nil
}

// GetMyLearning lists the courses in the user's entitlement set.
func (s *UserService) GetMyLearning(userID uint) ([]models.Course, error) {
	courseIDs, err := s.userRepo.GetEntitledCourseIDs(userID)
	if err != nil {
		return nil, err
	}
	return s.courseRepo.GetByIDs(courseIDs)
}
