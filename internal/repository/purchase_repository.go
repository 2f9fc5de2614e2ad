package repository

import (
	"github.com/learnhub-app/learnhub-backend/internal/models"
	"gorm.io/gorm"
)

type PurchaseRepository struct {
	db *gorm.DB
}

func NewPurchaseRepository(db *gorm.DB) *PurchaseRepository {
	return &PurchaseRepository{
		db: db,
	}
}

func (r *PurchaseRepository) Create(purchase *models.CoursePurchase) error {
	return r.db.Create(purchase).Error
}

func (r *PurchaseRepository) GetBySessionID(sessionID string) (*models.CoursePurchase, error) {
	var purchase models.CoursePurchase
	err := r.db.Where("payment_session_id = ?", sessionID).First(&purchase).Error
	return &purchase, err
}

func (r *PurchaseRepository) GetByUserAndSession(userID uint, sessionID string) (*models.CoursePurchase, error) {
	var purchase models.CoursePurchase
	err := r.db.Where("payment_session_id = ? AND user_id = ?", sessionID, userID).
		First(&purchase).Error
	return &purchase, err
}

func (r *PurchaseRepository) GetCompletedByUserAndCourse(userID, courseID uint) (*models.CoursePurchase, error) {
	var purchase models.CoursePurchase
	err := r.db.Where("user_id = ? AND course_id = ? AND status = ?",
		userID, courseID, models.PurchaseStatusCompleted).
		First(&purchase).Error
	return &purchase, err
}

// MarkCompleted flips a pending ledger row to completed and records the
// authoritative paid amount in one conditional UPDATE keyed by the
// unique session id. Returns the number of rows changed: zero means the
// row was already terminal, which callers treat as an idempotent retry.
func (r *PurchaseRepository) MarkCompleted(sessionID string, amount float64) (int64, error) {
	result := r.db.Model(&models.CoursePurchase{}).
		Where("payment_session_id = ? AND status = ?", sessionID, models.PurchaseStatusPending).
		Updates(map[string]interface{}{
			"amount": amount,
			"status": models.PurchaseStatusCompleted,
		})
	return result.RowsAffected, result.Error
}

func (r *PurchaseRepository) GetCompleted() ([]models.CoursePurchase, error) {
	var purchases []models.CoursePurchase
	err := r.db.Where("status = ?", models.PurchaseStatusCompleted).
		Order("created_at DESC").
		Find(&purchases).Error
	return purchases, err
}

func (r *PurchaseRepository) GetUserPurchaseHistory(userID uint) ([]models.CoursePurchase, error) {
	var purchases []models.CoursePurchase
	err := r.db.Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&purchases).Error
	return purchases, err
}
