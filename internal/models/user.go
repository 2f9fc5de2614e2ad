package models

import (
	"time"
)

const (
	RoleStudent    = "student"
	RoleInstructor = "instructor"
)

type User struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	FullName  string    `json:"full_name" gorm:"not null"`
	Email     string    `json:"email" gorm:"unique;not null"`
	Password  string    `json:"-" gorm:"not null"`
	Role      string    `json:"role" gorm:"not null;default:'student'"`
	PhotoURL  string    `json:"photo_url"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Entitlement is one element of a user's entitlement set: the courses the
// user may access ("my learning"). Rows are only ever added by
// reconciliation, never removed. The composite unique index gives the set
// its no-duplicates guarantee.
type Entitlement struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	UserID    uint      `json:"user_id" gorm:"not null;uniqueIndex:idx_entitlement_user_course"`
	CourseID  uint      `json:"course_id" gorm:"not null;uniqueIndex:idx_entitlement_user_course"`
	CreatedAt time.Time `json:"created_at"`
}
