package service_test

import (
	"errors"
	"testing"

	"github.com/learnhub-app/learnhub-backend/internal/apperr"
	"github.com/learnhub-app/learnhub-backend/internal/models"
	"github.com/learnhub-app/learnhub-backend/internal/service"
)

type accessDeps struct {
	purchases *fakePurchaseStore
	courses   *fakeCourseStore
	users     *fakeUserStore
	svc       *service.AccessService
}

func newAccessDeps() *accessDeps {
	deps := &accessDeps{
		purchases: newFakePurchaseStore(),
		courses:   newFakeCourseStore(),
		users:     newFakeUserStore(),
	}
	deps.svc = service.NewAccessService(deps.purchases, deps.courses, deps.users, newTestLogger())
	return deps
}

func (d *accessDeps) addCompletedPurchase(userID, courseID uint) {
	d.purchases.Create(&models.CoursePurchase{
		UserID:           userID,
		CourseID:         courseID,
		Status:           models.PurchaseStatusCompleted,
		PaymentSessionID: "sess_done",
	})
}

func TestResolve(t *testing.T) {
	const (
		userID   = 7
		courseID = 10
	)

	t.Run("completed ledger row alone grants access", func(t *testing.T) {
		deps := newAccessDeps()
		deps.addCompletedPurchase(userID, courseID)

		status, err := deps.svc.Resolve(userID, courseID, false)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !status.Purchased || status.Reason != models.AccessReasonLedger || status.Recheck {
			t.Errorf("unexpected status: %+v", status)
		}
	})

	t.Run("entitlement set alone grants access", func(t *testing.T) {
		deps := newAccessDeps()
		deps.users.AddEntitlement(userID, courseID)

		status, err := deps.svc.Resolve(userID, courseID, false)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !status.Purchased || status.Reason != models.AccessReasonEntitlement {
			t.Errorf("unexpected status: %+v", status)
		}
	})

	t.Run("pending ledger row does not grant access", func(t *testing.T) {
		deps := newAccessDeps()
		deps.purchases.Create(&models.CoursePurchase{
			UserID:           userID,
			CourseID:         courseID,
			Status:           models.PurchaseStatusPending,
			PaymentSessionID: "sess_pending",
		})

		status, err := deps.svc.Resolve(userID, courseID, false)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if status.Purchased {
			t.Errorf("pending purchase granted access: %+v", status)
		}
	})

	t.Run("client hint alone grants access but demands a recheck", func(t *testing.T) {
		deps := newAccessDeps()

		status, err := deps.svc.Resolve(userID, courseID, true)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !status.Purchased || status.Reason != models.AccessReasonClientHint || !status.Recheck {
			t.Errorf("unexpected status: %+v", status)
		}
	})

	t.Run("authoritative sources win over the hint", func(t *testing.T) {
		deps := newAccessDeps()
		deps.addCompletedPurchase(userID, courseID)

		status, err := deps.svc.Resolve(userID, courseID, true)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if status.Reason != models.AccessReasonLedger || status.Recheck {
			t.Errorf("hint outranked the ledger: %+v", status)
		}
	})

	t.Run("no source grants nothing", func(t *testing.T) {
		deps := newAccessDeps()

		status, err := deps.svc.Resolve(userID, courseID, false)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if status.Purchased || status.Reason != models.AccessReasonNone {
			t.Errorf("unexpected status: %+v", status)
		}
	})
}

func TestCourseDetailWithStatus(t *testing.T) {
	const (
		userID   = 7
		courseID = 10
	)

	seed := func(deps *accessDeps) {
		deps.courses.courses[courseID] = &models.Course{
			ID:          courseID,
			Title:       "Go for Backend Developers",
			IsPublished: true,
			Lectures: []models.Lecture{
				{ID: 1, Title: "Intro", VideoURL: "https://cdn.example/v/1", IsPreviewFree: true},
				{ID: 2, Title: "Setup", VideoURL: "https://cdn.example/v/2"},
			},
		}
	}

	t.Run("non-purchaser gets preview lectures only", func(t *testing.T) {
		deps := newAccessDeps()
		seed(deps)

		detail, err := deps.svc.CourseDetailWithStatus(userID, courseID)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if detail.Purchased {
			t.Error("purchased=true without any source")
		}
		if detail.Course.Lectures[0].VideoURL == "" {
			t.Error("preview lecture URL withheld")
		}
		if detail.Course.Lectures[1].VideoURL != "" {
			t.Error("locked lecture URL leaked")
		}
	})

	t.Run("purchaser gets every video URL", func(t *testing.T) {
		deps := newAccessDeps()
		seed(deps)
		deps.addCompletedPurchase(userID, courseID)

		detail, err := deps.svc.CourseDetailWithStatus(userID, courseID)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !detail.Purchased {
			t.Error("purchased=false with completed ledger row")
		}
		for _, lecture := range detail.Course.Lectures {
			if lecture.VideoURL == "" {
				t.Errorf("lecture %q URL withheld from purchaser", lecture.Title)
			}
		}
	})

	t.Run("unknown course is not found", func(t *testing.T) {
		deps := newAccessDeps()

		_, err := deps.svc.CourseDetailWithStatus(userID, 404)
		if !errors.Is(err, apperr.ErrNotFound) {
			t.Fatalf("err = %v, want ErrNotFound", err)
		}
	})
}
