package payment

import (
	"fmt"

	"github.com/stripe/stripe-go/v74"
	"github.com/stripe/stripe-go/v74/checkout/session"
	"github.com/stripe/stripe-go/v74/webhook"

	"github.com/learnhub-app/learnhub-backend/internal/apperr"
	"github.com/learnhub-app/learnhub-backend/internal/models"
)

type StripeService struct {
	secretKey     string
	webhookSecret string
	frontendURL   string
}

func NewStripeService(secretKey, webhookSecret, frontendURL string) *StripeService {
	stripe.Key = secretKey
	return &StripeService{
		secretKey:     secretKey,
		webhookSecret: webhookSecret,
		frontendURL:   frontendURL,
	}
}

// CreateCheckoutSession opens a payment session for a single course.
// The success URL embeds the course id, Stripe's session placeholder and
// our correlation reference so the client can poll payment status after
// the redirect.
func (s *StripeService) CreateCheckoutSession(course *models.Course, userID uint, reference string) (*models.CheckoutSession, error) {
	successURL := fmt.Sprintf(
		"%s/course-detail/%d?purchase_success=true&session_id={CHECKOUT_SESSION_ID}&ref=%s",
		s.frontendURL, course.ID, reference,
	)
	cancelURL := fmt.Sprintf("%s/course-detail/%d", s.frontendURL, course.ID)

	params := &stripe.CheckoutSessionParams{
		PaymentMethodTypes: stripe.StringSlice([]string{
			"card",
		}),
		Mode: stripe.String(string(stripe.CheckoutSessionModePayment)),
		LineItems: []*stripe.CheckoutSessionLineItemParams{
			{
				PriceData: &stripe.CheckoutSessionLineItemPriceDataParams{
					Currency: stripe.String(course.Currency),
					ProductData: &stripe.CheckoutSessionLineItemPriceDataProductDataParams{
						Name:        stripe.String(course.Title),
						Description: stripe.String(course.Subtitle),
					},
					UnitAmount: stripe.Int64(int64(course.Price * 100)),
				},
				Quantity: stripe.Int64(1),
			},
		},
		SuccessURL: stripe.String(successURL),
		CancelURL:  stripe.String(cancelURL),
	}

	params.AddMetadata("course_id", fmt.Sprintf("%d", course.ID))
	params.AddMetadata("user_id", fmt.Sprintf("%d", userID))

	sess, err := session.New(params)
	if err != nil {
		return nil, fmt.Errorf("%w: create checkout session: %v", apperr.ErrExternalService, err)
	}

	return &models.CheckoutSession{
		ID:  sess.ID,
		URL: sess.URL,
	}, nil
}

// VerifyWebhookEvent authenticates a raw webhook delivery against the
// endpoint secret injected at construction. An unconfigured secret is
// treated the same as a bad signature: reject without processing.
func (s *StripeService) VerifyWebhookEvent(payload []byte, signatureHeader string) (stripe.Event, error) {
	if s.webhookSecret == "" {
		return stripe.Event{}, fmt.Errorf("%w: webhook secret not configured", apperr.ErrAuthenticity)
	}
	if signatureHeader == "" {
		return stripe.Event{}, fmt.Errorf("%w: missing signature header", apperr.ErrAuthenticity)
	}

	event, err := webhook.ConstructEventWithOptions(payload, signatureHeader, s.webhookSecret,
		webhook.ConstructEventOptions{
			IgnoreAPIVersionMismatch: true,
		})
	if err != nil {
		return stripe.Event{}, fmt.Errorf("%w: %v", apperr.ErrAuthenticity, err)
	}

	return event, nil
}
