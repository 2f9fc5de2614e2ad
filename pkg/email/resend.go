package email

import (
	"fmt"
	"time"

	"github.com/resendlabs/resend-go"
	"go.uber.org/zap"

	"github.com/learnhub-app/learnhub-backend/internal/models"
)

type EmailService struct {
	client   *resend.Client
	from     string
	fromName string
	logger   *zap.Logger
}

func NewEmailService(apiKey, from, fromName string, logger *zap.Logger) *EmailService {
	return &EmailService{
		client:   resend.NewClient(apiKey),
		from:     from,
		fromName: fromName,
		logger:   logger,
	}
}

// SendPurchaseReceipt mails a receipt for a completed course purchase.
// Callers treat failures as non-fatal.
func (s *EmailService) SendPurchaseReceipt(toEmail, fullName string, course *models.Course, amount float64) error {
	html := fmt.Sprintf(`
		<h2>Thanks for your purchase, %s!</h2>
		<p>You now have full access to <strong>%s</strong>.</p>
		<p>Amount paid: %.2f %s</p>
		<p>Head over to My Learning to start watching.</p>
		<p style="color:#888">LearnHub · %d</p>`,
		fullName, course.Title, amount, course.Currency, time.Now().Year(),
	)

	params := &resend.SendEmailRequest{
		From:    s.fromName + " <" + s.from + ">",
		To:      []string{toEmail},
		Subject: "Your LearnHub receipt: " + course.Title,
		Html:    html,
	}

	resp, err := s.client.Emails.Send(params)
	if err != nil {
		s.logger.Warn("failed to send purchase receipt",
			zap.String("email", toEmail),
			zap.Uint("course_id", course.ID),
			zap.Error(err),
		)
		return err
	}

	s.logger.Info("purchase receipt sent",
		zap.String("email", toEmail),
		zap.Uint("course_id", course.ID),
		zap.String("message_id", resp.Id),
	)
	return nil
}
