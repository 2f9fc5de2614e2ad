package service

import (
	"github.com/learnhub-app/learnhub-backend/internal/models"
)

// Store interfaces consumed by the services. The GORM repositories in
// internal/repository satisfy them; tests substitute in-memory fakes.

type PurchaseStore interface {
	Create(purchase *models.CoursePurchase) error
	GetBySessionID(sessionID string) (*models.CoursePurchase, error)
	GetByUserAndSession(userID uint, sessionID string) (*models.CoursePurchase, error)
	GetCompletedByUserAndCourse(userID, courseID uint) (*models.CoursePurchase, error)
	MarkCompleted(sessionID string, amount float64) (int64, error)
	GetCompleted() ([]models.CoursePurchase, error)
	GetUserPurchaseHistory(userID uint) ([]models.CoursePurchase, error)
}

type CourseStore interface {
	GetByID(id uint) (*models.Course, error)
	GetPublished() ([]models.Course, error)
	GetByIDs(ids []uint) ([]models.Course, error)
	UnlockLectures(courseID uint) error
	AddEnrolledStudent(courseID, userID uint) error
}

type UserStore interface {
	GetByID(id uint) (*models.User, error)
	GetByEmail(email string) (*models.User, error)
	Create(user *models.User) error
	AddEntitlement(userID, courseID uint) error
	HasEntitlement(userID, courseID uint) (bool, error)
	GetEntitledCourseIDs(userID uint) ([]uint, error)
}

// CheckoutGateway opens external payment sessions.
type CheckoutGateway interface {
	CreateCheckoutSession(course *models.Course, userID uint, reference string) (*models.CheckoutSession, error)
}

// ReceiptSender delivers purchase receipts. Best-effort: reconciliation
// never fails because of it.
type ReceiptSender interface {
	SendPurchaseReceipt(toEmail, fullName string, course *models.Course, amount float64) error
}
