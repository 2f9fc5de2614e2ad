package repository

import (
	"github.com/learnhub-app/learnhub-backend/internal/models"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type CourseRepository struct {
	db *gorm.DB
}

func NewCourseRepository(db *gorm.DB) *CourseRepository {
	return &CourseRepository{
		db: db,
	}
}

func (r *CourseRepository) GetByID(id uint) (*models.Course, error) {
	var course models.Course
	err := r.db.Preload("Lectures", func(db *gorm.DB) *gorm.DB {
		return db.Order("lectures.position ASC")
	}).First(&course, id).Error
	return &course, err
}

func (r *CourseRepository) GetPublished() ([]models.Course, error) {
	var courses []models.Course
	err := r.db.Where("is_published = ?", true).
		Order("created_at DESC").
		Find(&courses).Error
	return courses, err
}

func (r *CourseRepository) GetByIDs(ids []uint) ([]models.Course, error) {
	var courses []models.Course
	if len(ids) == 0 {
		return courses, nil
	}
	err := r.db.Where("id IN ?", ids).Find(&courses).Error
	return courses, err
}

// UnlockLectures flips is_preview_free for every lecture of the course.
// One UPDATE, already-true rows unaffected, so webhook retries are
// harmless.
func (r *CourseRepository) UnlockLectures(courseID uint) error {
	return r.db.Model(&models.Lecture{}).
		Where("course_id = ?", courseID).
		Update("is_preview_free", true).Error
}

// AddEnrolledStudent inserts into the course's enrolled-students set,
// ignoring duplicates.
func (r *CourseRepository) AddEnrolledStudent(courseID, userID uint) error {
	enrollment := models.CourseEnrollment{
		CourseID: courseID,
		UserID:   userID,
	}
	return r.db.Clauses(clause.OnConflict{DoNothing: true}).Create(&enrollment).Error
}

func (r *CourseRepository) CountEnrolledStudents(courseID uint) (int64, error) {
	var count int64
	err := r.db.Model(&models.CourseEnrollment{}).
		Where("course_id = ?", courseID).
		Count(&count).Error
	return count, err
}
