package service

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/stripe/stripe-go/v74"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/learnhub-app/learnhub-backend/internal/apperr"
	"github.com/learnhub-app/learnhub-backend/internal/models"
)

// PaymentService owns the purchase ledger: it opens checkout sessions
// (pending rows) and reconciles asynchronous provider events into
// completed purchases plus their entitlement side effects.
type PaymentService struct {
	gateway      CheckoutGateway
	purchaseRepo PurchaseStore
	courseRepo   CourseStore
	userRepo     UserStore
	emailService ReceiptSender
	logger       *zap.Logger
}

func NewPaymentService(gateway CheckoutGateway, purchaseRepo PurchaseStore, courseRepo CourseStore, userRepo UserStore, emailService ReceiptSender, logger *zap.Logger) *PaymentService {
	return &PaymentService{
		gateway:      gateway,
		purchaseRepo: purchaseRepo,
		courseRepo:   courseRepo,
		userRepo:     userRepo,
		emailService: emailService,
		logger:       logger,
	}
}

// CreateCheckoutSession validates the course, opens an external payment
// session and only then persists the pending ledger row keyed by the
// session id. If the provider call fails nothing is persisted, so a
// retry can never hit a duplicate session key.
func (s *PaymentService) CreateCheckoutSession(userID, courseID uint) (*models.CheckoutSession, error) {
	if courseID == 0 {
		return nil, fmt.Errorf("%w: course id is required", apperr.ErrValidation)
	}

	course, err := s.courseRepo.GetByID(courseID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: course %d", apperr.ErrNotFound, courseID)
		}
		return nil, err
	}
	if !course.IsPublished || course.Price <= 0 {
		return nil, fmt.Errorf("%w: course %d is not purchasable", apperr.ErrValidation, courseID)
	}

	reference := uuid.NewString()

	session, err := s.gateway.CreateCheckoutSession(course, userID, reference)
	if err != nil {
		return nil, err
	}

	purchase := &models.CoursePurchase{
		UserID:           userID,
		CourseID:         courseID,
		Amount:           course.Price,
		Currency:         course.Currency,
		Status:           models.PurchaseStatusPending,
		PaymentSessionID: session.ID,
		Reference:        reference,
	}

	if err := s.purchaseRepo.Create(purchase); err != nil {
		return nil, err
	}

	s.logger.Info("checkout session created",
		zap.Uint("user_id", userID),
		zap.Uint("course_id", courseID),
		zap.String("session_id", session.ID),
	)

	return session, nil
}

// HandleWebhookEvent reconciles a verified provider event against the
// ledger. Only checkout.session.completed mutates state; every other
// kind is acknowledged and ignored. The whole path is idempotent: the
// status flip is a conditional update and the side effects are set-adds
// and flag-sets, so provider redeliveries are harmless.
func (s *PaymentService) HandleWebhookEvent(event *stripe.Event) (string, error) {
	eventType := string(event.Type)

	if eventType != "checkout.session.completed" {
		s.logger.Debug("ignoring webhook event", zap.String("event_type", eventType))
		return eventType, nil
	}

	var session stripe.CheckoutSession
	if err := json.Unmarshal(event.Data.Raw, &session); err != nil {
		return eventType, fmt.Errorf("decode checkout session: %w", err)
	}

	purchase, err := s.purchaseRepo.GetBySessionID(session.ID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			// Anomaly: the provider confirmed a session we never opened.
			s.logger.Warn("webhook for unknown payment session",
				zap.String("session_id", session.ID),
				zap.String("event_id", event.ID),
			)
			return eventType, fmt.Errorf("%w: purchase for session %s", apperr.ErrNotFound, session.ID)
		}
		return eventType, err
	}

	// Authoritative paid amount arrives in minor units.
	paidAmount := float64(session.AmountTotal) / 100

	rows, err := s.purchaseRepo.MarkCompleted(session.ID, paidAmount)
	if err != nil {
		return eventType, err
	}
	firstCompletion := rows > 0
	if !firstCompletion {
		s.logger.Info("webhook retry for completed purchase",
			zap.String("session_id", session.ID),
			zap.Uint("purchase_id", purchase.ID),
		)
	}

	// Side effects run on every delivery. Each one is idempotent, so a
	// retry after a partial failure re-applies the missing steps without
	// duplicating the ones that succeeded.
	if err := s.courseRepo.UnlockLectures(purchase.CourseID); err != nil {
		return eventType, fmt.Errorf("unlock lectures: %w", err)
	}
	if err := s.userRepo.AddEntitlement(purchase.UserID, purchase.CourseID); err != nil {
		return eventType, fmt.Errorf("add entitlement: %w", err)
	}
	if err := s.courseRepo.AddEnrolledStudent(purchase.CourseID, purchase.UserID); err != nil {
		return eventType, fmt.Errorf("add enrolled student: %w", err)
	}

	s.logger.Info("purchase reconciled",
		zap.String("session_id", session.ID),
		zap.Uint("user_id", purchase.UserID),
		zap.Uint("course_id", purchase.CourseID),
		zap.Float64("amount", paidAmount),
		zap.Bool("first_completion", firstCompletion),
	)

	if firstCompletion {
		s.sendReceipt(purchase.UserID, purchase.CourseID, paidAmount)
	}

	return eventType, nil
}

func (s *PaymentService) sendReceipt(userID, courseID uint, amount float64) {
	user, err := s.userRepo.GetByID(userID)
	if err != nil {
		s.logger.Warn("receipt skipped, user lookup failed", zap.Uint("user_id", userID), zap.Error(err))
		return
	}
	course, err := s.courseRepo.GetByID(courseID)
	if err != nil {
		s.logger.Warn("receipt skipped, course lookup failed", zap.Uint("course_id", courseID), zap.Error(err))
		return
	}
	// Best effort, already logged by the sender.
	_ = s.emailService.SendPurchaseReceipt(user.Email, user.FullName, course, amount)
}

// CheckPaymentStatus reports the ledger status of the caller's own
// checkout session, for post-redirect polling.
func (s *PaymentService) CheckPaymentStatus(userID uint, sessionID string) (*models.PaymentStatusResponse, error) {
	if sessionID == "" {
		return nil, fmt.Errorf("%w: session id is required", apperr.ErrValidation)
	}

	purchase, err := s.purchaseRepo.GetByUserAndSession(userID, sessionID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: purchase for session %s", apperr.ErrNotFound, sessionID)
		}
		return nil, err
	}

	return &models.PaymentStatusResponse{
		Status:   purchase.Status,
		CourseID: purchase.CourseID,
		Amount:   purchase.Amount,
		Created:  purchase.CreatedAt,
	}, nil
}

func (s *PaymentService) GetCompletedPurchases() ([]models.CoursePurchase, error) {
	return s.purchaseRepo.GetCompleted()
}

func (s *PaymentService) GetUserPurchaseHistory(userID uint) ([]models.CoursePurchase, error) {
	return s.purchaseRepo.GetUserPurchaseHistory(userID)
}
