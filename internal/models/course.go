package models

import (
	"time"
)

type Course struct {
	ID           uint      `json:"id" gorm:"primaryKey"`
	Title        string    `json:"title" gorm:"not null"`
	Subtitle     string    `json:"subtitle"`
	Description  string    `json:"description"`
	Category     string    `json:"category"`
	Level        string    `json:"level" gorm:"default:'beginner'"`
	Price        float64   `json:"price" gorm:"not null"`
	Currency     string    `json:"currency" gorm:"not null;default:'inr'"`
	ThumbnailURL string    `json:"thumbnail_url"`
	CreatorID    uint      `json:"creator_id" gorm:"not null;index"`
	IsPublished  bool      `json:"is_published" gorm:"default:false"`
	Lectures     []Lecture `json:"lectures,omitempty"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

type Lecture struct {
	ID            uint      `json:"id" gorm:"primaryKey"`
	CourseID      uint      `json:"course_id" gorm:"not null;index"`
	Title         string    `json:"title" gorm:"not null"`
	VideoURL      string    `json:"video_url,omitempty"`
	Duration      int       `json:"duration" gorm:"default:0"`
	Position      int       `json:"position" gorm:"default:0"`
	IsPreviewFree bool      `json:"is_preview_free" gorm:"default:false"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

// CourseEnrollment is one element of a course's enrolled-students set.
// Like Entitlement it is append-only with set semantics via the
// composite unique index.
type CourseEnrollment struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	CourseID  uint      `json:"course_id" gorm:"not null;uniqueIndex:idx_enrollment_course_user"`
	UserID    uint      `json:"user_id" gorm:"not null;uniqueIndex:idx_enrollment_course_user"`
	CreatedAt time.Time `json:"created_at"`
}
