package sendgrid

import (
	"context"
	"fmt"

	"github.com/josumamgar-gif/App-Aqualan/internal/models"
	sg "github.com/sendgrid/sendgrid-go"
	"github.com/sendgrid/sendgrid-go/helpers/mail"
)

type EmailService interface {
	Send(ctx context.Context, req *models.EmailNotificationRequest) error
	GetSendGridClient() *sg.Client
}

type emailService struct {
	client    *sg.Client
	fromEmail string
	fromName  string
}

func NewEmailService(apiKey string, fromEmail string, fromName string) EmailService {
	return &emailService{client: sg.NewSendClient(apiKey), fromEmail: fromEmail, fromName: fromName}
}

// Send implements EmailService.
func (e *emailService) Send(ctx context.Context, req *models.EmailNotificationRequest) error {

	from := mail.NewEmail(e.fromName, e.fromEmail)
	to := mail.NewEmail(req.ToName, req.To)

	message := mail.NewV3Mail()
	message.SetFrom(from)

	personalization := mail.NewPersonalization()
	personalization.AddTos(to)
	personalization.Subject = req.Subject
	message.AddPersonalizations(personalization)

	message.AddContent(mail.NewContent("text/plain", req.Content))
	if req.HTMLContent != "" {
		message.AddContent(mail.NewContent("text/html", req.HTMLContent))
	}

	response, err := e.client.SendWithContext(ctx, message)
	if err != nil {
		return fmt.Errorf("failed to send email: %w", err)
	}

	if response.StatusCode >= 400 {
		return fmt.Errorf("failed to send email, status code: %d", response.StatusCode)
	}

	return nil
}

// GetSendGridClient provides access to the internal sendgrid.Client.
func (e *emailService) GetSendGridClient() *sg.Client {
	return e.client
}
