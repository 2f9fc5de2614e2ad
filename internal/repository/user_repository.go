package repository

import (
	"github.com/learnhub-app/learnhub-backend/internal/models"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type UserRepository struct {
	db *gorm.DB
}

func NewUserRepository(db *gorm.DB) *UserRepository {
	return &UserRepository{
		db: db,
	}
}

func (r *UserRepository) Create(user *models.User) error {
	return r.db.Create(user).Error
}

func (r *UserRepository) GetByID(id uint) (*models.User, error) {
	var user models.User
	err := r.db.First(&user, id).Error
	return &user, err
}

func (r *UserRepository) GetByEmail(email string) (*models.User, error) {
	var user models.User
	err := r.db.Where("email = ?", email).First(&user).Error
	return &user, err
}

func (r *UserRepository) Update(user *models.User) error {
	return r.db.Save(user).Error
}

// AddEntitlement inserts into the user's entitlement set. Duplicate
// inserts are swallowed by the unique index so concurrent webhook
// retries cannot double-enroll.
func (r *UserRepository) AddEntitlement(userID, courseID uint) error {
	entitlement := models.Entitlement{
		UserID:   userID,
		CourseID: courseID,
	}
	return r.db.Clauses(clause.OnConflict{DoNothing: true}).Create(&entitlement).Error
}

func (r *UserRepository) HasEntitlement(userID, courseID uint) (bool, error) {
	var count int64
	err := r.db.Model(&models.Entitlement{}).
		Where("user_id = ? AND course_id = ?", userID, courseID).
		Count(&count).Error
	return count > 0, err
}

func (r *UserRepository) GetEntitledCourseIDs(userID uint) ([]uint, error) {
	var courseIDs []uint
	err := r.db.Model(&models.Entitlement{}).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Pluck("course_id", &courseIDs).Error
	return courseIDs, err
}
