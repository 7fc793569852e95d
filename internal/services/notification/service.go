// Package notification sends transactional email through SendGrid. Delivery
// is best-effort; callers log failures and move on.
package notification

import (
	"context"
	"fmt"
	"log"

	sendgrid "github.com/sendgrid/sendgrid-go"
	"github.com/sendgrid/sendgrid-go/helpers/mail"

	"renthub/internal/models"
	"renthub/internal/repositories"
)

// Service defines the notifications the platform sends.
type Service interface {
	SendBookingConfirmation(ctx context.Context, userID uint, booking *models.Booking) error
	SendReferralReward(ctx context.Context, userID uint, amount float64) error
}

type service struct {
	users     repositories.UserRepository
	apiKey    string
	fromEmail string
	fromName  string
}

// NewService creates a SendGrid-backed notification service. An empty API key
// disables delivery; sends are logged and dropped.
func NewService(users repositories.UserRepository, apiKey, fromEmail, fromName string) Service {
	return &service{
		users:     users,
		apiKey:    apiKey,
		fromEmail: fromEmail,
		fromName:  fromName,
	}
}

func (s *service) SendBookingConfirmation(ctx context.Context, userID uint, booking *models.Booking) error {
	subject := fmt.Sprintf("Booking confirmed: %s", booking.Reference)
	plainText := fmt.Sprintf(
		"Your booking %s is confirmed. Total %.2f EUR, of which %.2f EUR was covered by your wallet.",
		booking.Reference, booking.Total, booking.WalletUsed,
	)
	htmlContent := fmt.Sprintf(`
		<html>
			<body>
				<h2>Booking confirmed</h2>
				<p>Your booking <strong>%s</strong> is confirmed.</p>
				<p>Total: <strong>%.2f EUR</strong> (wallet: %.2f EUR, card: %.2f EUR)</p>
			</body>
		</html>
	`, booking.Reference, booking.Total, booking.WalletUsed, booking.CardCharged)

	return s.send(userID, subject, plainText, htmlContent)
}

func (s *service) SendReferralReward(ctx context.Context, userID uint, amount float64) error {
	subject := "You earned referral credit"
	plainText := fmt.Sprintf("A friend you referred completed their first booking. %.2f EUR of referral credit was added to your wallet.", amount)
	htmlContent := fmt.Sprintf(`
		<html>
			<body>
				<h2>Referral reward</h2>
				<p>A friend you referred completed their first booking.</p>
				<p><strong>%.2f EUR</strong> of referral credit was added to your wallet.</p>
			</body>
		</html>
	`, amount)

	return s.send(userID, subject, plainText, htmlContent)
}

func (s *service) send(userID uint, subject, plainText, htmlContent string) error {
	user, err := s.users.GetByID(userID)
	if err != nil {
		return err
	}

	if s.apiKey == "" {
		log.Printf("email delivery disabled, dropping %q for %s", subject, user.Email)
		return nil
	}

	from := mail.NewEmail(s.fromName, s.fromEmail)
	recipient := mail.NewEmail(user.Name, user.Email)
	message := mail.NewSingleEmail(from, subject, recipient, plainText, htmlContent)

	client := sendgrid.NewSendClient(s.apiKey)
	response, err := client.Send(message)
	if err != nil {
		return fmt.Errorf("failed to send email: %w", err)
	}
	if response.StatusCode >= 400 {
		return fmt.Errorf("sendgrid error: status %d, body: %s", response.StatusCode, response.Body)
	}
	return nil
}
