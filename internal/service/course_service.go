package service

import (
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/learnhub-app/learnhub-backend/internal/apperr"
	"github.com/learnhub-app/learnhub-backend/internal/models"
)

type CourseService struct {
	courseRepo CourseStore
}

func NewCourseService(courseRepo CourseStore) *CourseService {
	return &CourseService{
		courseRepo: courseRepo,
	}
}

func (s *CourseService) GetPublishedCourses() ([]models.Course, error) {
	return s.courseRepo.GetPublished()
}

// GetCourseDetail is the public catalog view: lecture list with video
// URLs withheld unless the lecture is preview-free.
func (s *CourseService) GetCourseDetail(courseID uint) (*models.Course, error) {
	course, err := s.courseRepo.GetByID(courseID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: course %d", apperr.ErrNotFound, courseID)
		}
		return nil, err
	}

	for i := range course.Lectures {
		if !course.Lectures[i].IsPreviewFree {
			course.Lectures[i].VideoURL = ""
		}
	}

	return course, nil
}
