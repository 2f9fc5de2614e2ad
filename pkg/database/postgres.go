package database

import (
	"log"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/learnhub-app/learnhub-backend/internal/models"
)

func NewDatabase(databaseURL string) *gorm.DB {
	if databaseURL == "" {
		log.Fatal("DATABASE_URL is not set")
	}

	db, err := gorm.Open(postgres.Open(databaseURL), &gorm.Config{})
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	return db
}

func RunMigrations(db *gorm.DB) error {
	return db.AutoMigrate(
		&models.User{},
		&models.Course{},
		&models.Lecture{},
		&models.CoursePurchase{},
		&models.Entitlement{},
		&models.CourseEnrollment{},
	)
}

// SeedCourses inserts a small published catalog when missing so a fresh
// instance has something to sell.
func SeedCourses(db *gorm.DB) error {
	courses := []models.Course{
		{
			Title:       "Go for Backend Developers",
			Subtitle:    "HTTP services, databases and deployment",
			Category:    "Programming",
			Level:       "intermediate",
			Price:       1999,
			Currency:    "inr",
			CreatorID:   1,
			IsPublished: true,
			Lectures: []models.Lecture{
				{Title: "Course introduction", Position: 1, IsPreviewFree: true},
				{Title: "Setting up the project", Position: 2},
				{Title: "Routing and middleware", Position: 3},
				{Title: "Talking to Postgres", Position: 4},
			},
		},
		{
			Title:       "React from Zero",
			Subtitle:    "Components, hooks and state management",
			Category:    "Programming",
			Level:       "beginner",
			Price:       1499,
			Currency:    "inr",
			CreatorID:   1,
			IsPublished: true,
			Lectures: []models.Lecture{
				{Title: "Why React", Position: 1, IsPreviewFree: true},
				{Title: "Your first component", Position: 2},
				{Title: "Hooks in practice", Position: 3},
			},
		},
	}

	for _, course := range courses {
		var count int64
		db.Model(&models.Course{}).Where("title = ?", course.Title).Count(&count)
		if count == 0 {
			if err := db.Create(&course).Error; err != nil {
				return err
			}
		}
	}

	return nil
}
