package service_test

import (
	"fmt"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/learnhub-app/learnhub-backend/internal/models"
)

func newTestLogger() *zap.Logger {
	return zap.NewNop()
}

// ---- purchase store ----

type fakePurchaseStore struct {
	bySession map[string]*models.CoursePurchase
	nextID    uint

	createErr error
	markErr   error
}

func newFakePurchaseStore() *fakePurchaseStore {
	return &fakePurchaseStore{bySession: make(map[string]*models.CoursePurchase)}
}

func (f *fakePurchaseStore) Create(p *models.CoursePurchase) error {
	if f.createErr != nil {
		return f.createErr
	}
	if _, exists := f.bySession[p.PaymentSessionID]; exists {
		return fmt.Errorf("duplicate key: payment_session_id %s", p.PaymentSessionID)
	}
	f.nextID++
	p.ID = f.nextID
	cp := *p
	f.bySession[p.PaymentSessionID] = &cp
	return nil
}

func (f *fakePurchaseStore) GetBySessionID(sessionID string) (*models.CoursePurchase, error) {
	p, ok := f.bySession[sessionID]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	cp := *p
	return &cp, nil
}

func (f *fakePurchaseStore) GetByUserAndSession(userID uint, sessionID string) (*models.CoursePurchase, error) {
	p, ok := f.bySession[sessionID]
	if !ok || p.UserID != userID {
		return nil, gorm.ErrRecordNotFound
	}
	cp := *p
	return &cp, nil
}

func (f *fakePurchaseStore) GetCompletedByUserAndCourse(userID, courseID uint) (*models.CoursePurchase, error) {
	for _, p := range f.bySession {
		if p.UserID == userID && p.CourseID == courseID && p.Status == models.PurchaseStatusCompleted {
			cp := *p
			return &cp, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (f *fakePurchaseStore) MarkCompleted(sessionID string, amount float64) (int64, error) {
	if f.markErr != nil {
		return 0, f.markErr
	}
	p, ok := f.bySession[sessionID]
	if !ok || p.Status != models.PurchaseStatusPending {
		return 0, nil
	}
	p.Amount = amount
	p.Status = models.PurchaseStatusCompleted
	return 1, nil
}

func (f *fakePurchaseStore) GetCompleted() ([]models.CoursePurchase, error) {
	var result []models.CoursePurchase
	for _, p := range f.bySession {
		if p.Status == models.PurchaseStatusCompleted {
			result = append(result, *p)
		}
	}
	return result, nil
}

func (f *fakePurchaseStore) GetUserPurchaseHistory(userID uint) ([]models.CoursePurchase, error) {
	var result []models.CoursePurchase
	for _, p := range f.bySession {
		if p.UserID == userID {
			result = append(result, *p)
		}
	}
	return result, nil
}

// ---- course store ----

type fakeCourseStore struct {
	courses  map[uint]*models.Course
	enrolled map[uint]map[uint]bool

	unlockCalls int
	unlockErr   error
	enrollErr   error
}

func newFakeCourseStore() *fakeCourseStore {
	return &fakeCourseStore{
		courses:  make(map[uint]*models.Course),
		enrolled: make(map[uint]map[uint]bool),
	}
}

func (f *fakeCourseStore) GetByID(id uint) (*models.Course, error) {
	c, ok := f.courses[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	cc := *c
	cc.Lectures = append([]models.Lecture(nil), c.Lectures...)
	return &cc, nil
}

func (f *fakeCourseStore) GetPublished() ([]models.Course, error) {
	var result []models.Course
	for _, c := range f.courses {
		if c.IsPublished {
			result = append(result, *c)
		}
	}
	return result, nil
}

func (f *fakeCourseStore) GetByIDs(ids []uint) ([]models.Course, error) {
	var result []models.Course
	for _, id := range ids {
		if c, ok := f.courses[id]; ok {
			result = append(result, *c)
		}
	}
	return result, nil
}

func (f *fakeCourseStore) UnlockLectures(courseID uint) error {
	if f.unlockErr != nil {
		return f.unlockErr
	}
	f.unlockCalls++
	c, ok := f.courses[courseID]
	if !ok {
		return nil
	}
	for i := range c.Lectures {
		c.Lectures[i].IsPreviewFree = true
	}
	return nil
}

func (f *fakeCourseStore) AddEnrolledStudent(courseID, userID uint) error {
	if f.enrollErr != nil {
		return f.enrollErr
	}
	if f.enrolled[courseID] == nil {
		f.enrolled[courseID] = make(map[uint]bool)
	}
	f.enrolled[courseID][userID] = true
	return nil
}

// ---- user store ----

type fakeUserStore struct {
	users        map[uint]*models.User
	entitlements map[uint]map[uint]bool

	entitleErr error
}

func newFakeUserStore() *fakeUserStore {
	return &fakeUserStore{
		users:        make(map[uint]*models.User),
		entitlements: make(map[uint]map[uint]bool),
	}
}

func (f *fakeUserStore) GetByID(id uint) (*models.User, error) {
	u, ok := f.users[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	uu := *u
	return &uu, nil
}

func (f *fakeUserStore) GetByEmail(email string) (*models.User, error) {
	for _, u := range f.users {
		if u.Email == email {
			uu := *u
			return &uu, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeUserStore) Create(user *models.User) error {
	user.ID = uint(len(f.users) + 1)
	uu := *user
	f.users[user.ID] = &uu
	return nil
}

func (f *fakeUserStore) AddEntitlement(userID, courseID uint) error {
	if f.entitleErr != nil {
		return f.entitleErr
	}
	if f.entitlements[userID] == nil {
		f.entitlements[userID] = make(map[uint]bool)
	}
	f.entitlements[userID][courseID] = true
	return nil
}

func (f *fakeUserStore) HasEntitlement(userID, courseID uint) (bool, error) {
	return f.entitlements[userID][courseID], nil
}

func (f *fakeUserStore) GetEntitledCourseIDs(userID uint) ([]uint, error) {
	var ids []uint
	for courseID := range f.entitlements[userID] {
		ids = append(ids, courseID)
	}
	return ids, nil
}

// ---- checkout gateway ----

type fakeCheckoutGateway struct {
	sessionID string
	err       error

	calls         int
	lastReference string
}

func (f *fakeCheckoutGateway) CreateCheckoutSession(course *models.Course, userID uint, reference string) (*models.CheckoutSession, error) {
	f.calls++
	f.lastReference = reference
	if f.err != nil {
		return nil, f.err
	}
	return &models.CheckoutSession{
		ID:  f.sessionID,
		URL: "https://checkout.stripe.example/pay/" + f.sessionID,
	}, nil
}

// ---- receipt sender ----

type fakeReceiptSender struct {
	sent int
	err  error
}

func (f *fakeReceiptSender) SendPurchaseReceipt(toEmail, fullName string, course *models.Course, amount float64) error {
	f.sent++
	return f.err
}
