package models

import "time"

const (
	PurchaseStatusPending   = "pending"
	PurchaseStatusCompleted = "completed"
	PurchaseStatusFailed    = "failed"
)

// CoursePurchase is the purchase ledger: one row per checkout attempt.
// PaymentSessionID is the provider's checkout session id and the join
// key between the ledger and the asynchronous webhook confirmation.
// A (user, course) pair may accumulate rows over retries; the unique
// session id guarantees each attempt reconciles at most once.
type CoursePurchase struct {
	ID               uint      `json:"id" gorm:"primaryKey"`
	UserID           uint      `json:"user_id" gorm:"not null;index:idx_purchase_user_course"`
	CourseID         uint      `json:"course_id" gorm:"not null;index:idx_purchase_user_course"`
	Amount           float64   `json:"amount" gorm:"not null"`
	Currency         string    `json:"currency" gorm:"not null;default:'inr'"`
	Status           string    `json:"status" gorm:"not null;default:'pending';index"`
	PaymentSessionID string    `json:"payment_session_id" gorm:"unique;not null"`
	Reference        string    `json:"reference" gorm:"not null"`
	CreatedAt        time.Time `json:"created_at"`
	UpdatedAt        time.Time `json:"updated_at"`
}

type CreateCheckoutSessionRequest struct {
	CourseID uint `json:"course_id" validate:"required"`
}

type CheckoutSession struct {
	ID  string `json:"session_id"`
	URL string `json:"url"`
}

type PaymentStatusResponse struct {
	Status   string    `json:"status"`
	CourseID uint      `json:"course_id"`
	Amount   float64   `json:"amount"`
	Created  time.Time `json:"created_at"`
}

// Access reason codes returned by the access resolver, ordered by trust:
// the ledger and the entitlement set are authoritative, the client hint
// only bridges propagation delay after a payment redirect.
const (
	AccessReasonLedger      = "ledger"
	AccessReasonEntitlement = "entitlement"
	AccessReasonClientHint  = "client_hint"
	AccessReasonNone        = "none"
)

type AccessStatus struct {
	Purchased bool   `json:"purchased"`
	Reason    string `json:"reason"`
	Recheck   bool   `json:"recheck"`
}

type CourseDetailWithStatus struct {
	Course    Course `json:"course"`
	Purchased bool   `json:"purchased"`
}
