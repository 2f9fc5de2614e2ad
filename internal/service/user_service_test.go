package service_test

import (
	"testing"

	"github.com/learnhub-app/learnhub-backend/internal/models"
	"github.com/learnhub-app/learnhub-backend/internal/service"
)

func TestGetMyLearning(t *testing.T) {
	users := newFakeUserStore()
	courses := newFakeCourseStore()
	svc := service.NewUserService(users, courses)

	courses.courses[10] = &models.Course{ID: 10, Title: "Go for Backend Developers", IsPublished: true}
	courses.courses[11] = &models.Course{ID: 11, Title: "React from Zero", IsPublished: true}

	t.Run("empty entitlement set gives an empty list", func(t *testing.T) {
		result, err := svc.GetMyLearning(7)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(result) != 0 {
			t.Errorf("got %d courses, want 0", len(result))
		}
	})

	t.Run("lists exactly the entitled courses", func(t *testing.T) {
		users.AddEntitlement(7, 10)
		// Duplicate add keeps set semantics.
		users.AddEntitlement(7, 10)

		result, err := svc.GetMyLearning(7)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(result) != 1 || result[0].ID != 10 {
			t.Errorf("unexpected my-learning set: %+v", result)
		}
	})
}
