package service

import (
	"context"
	"fmt"
	"html"
	"log/slog"
	"strings"

	"github.com/josumamgar-gif/App-Aqualan/internal/api/middleware"
	"github.com/josumamgar-gif/App-Aqualan/internal/models"
	"github.com/josumamgar-gif/App-Aqualan/pkg/sendgrid"
)

// Notifier tells the customer their order was received.
type Notifier interface {
	OrderPlaced(ctx context.Context, order models.Order, deliveryMessage string) error
}

type emailNotifier struct {
	emailService sendgrid.EmailService
}

func NewEmailNotifier(emailService sendgrid.EmailService) Notifier {
	return &emailNotifier{emailService: emailService}
}

func (n *emailNotifier) OrderPlaced(ctx context.Context, order models.Order, deliveryMessage string) error {

	if strings.TrimSpace(order.CustomerEmail) == "" {
		return nil
	}

	req := &models.EmailNotificationRequest{
		To:          order.CustomerEmail,
		ToName:      order.CustomerName,
		Subject:     fmt.Sprintf("Pedido recibido (%s)", order.ID),
		Content:     orderText(order, deliveryMessage),
		HTMLContent: orderHTML(order, deliveryMessage),
	}

	if err := n.emailService.Send(ctx, req); err != nil {
		return fmt.Errorf("failed to send order confirmation: %w", err)
	}

	middleware.LoggerFromContext(ctx).Info("Order confirmation sent", slog.String("orderId", order.ID))

	return nil
}

func orderText(order models.Order, deliveryMessage string) string {
	var b strings.Builder

	fmt.Fprintf(&b, "Hola %s,\n\nHemos recibido tu pedido %s.\n\n", order.CustomerName, order.ID)
	for _, it := range order.Items {
		fmt.Fprintf(&b, "- %d x %s\n", it.Quantity, it.ProductName)
	}
	if order.Total != nil {
		fmt.Fprintf(&b, "\nTotal: %.2f €\n", *order.Total)
	}
	fmt.Fprintf(&b, "\n%s\n", deliveryMessage)

	return b.String()
}

func orderHTML(order models.Order, deliveryMessage string) string {
	var b strings.Builder

	fmt.Fprintf(&b, "<p>Hola %s,</p><p>Hemos recibido tu pedido <strong>%s</strong>.</p><ul>",
		html.EscapeString(order.CustomerName), html.EscapeString(order.ID))
	for _, it := range order.Items {
		fmt.Fprintf(&b, "<li>%d x %s</li>", it.Quantity, html.EscapeString(it.ProductName))
	}
	b.WriteString("</ul>")
	if order.Total != nil {
		fmt.Fprintf(&b, "<p>Total: %.2f €</p>", *order.Total)
	}
	fmt.Fprintf(&b, "<p>%s</p>", html.EscapeString(deliveryMessage))

	return b.String()
}

type noopNotifier struct{}

// NewNoopNotifier is used when no SendGrid key is configured.
func NewNoopNotifier() Notifier {
	return noopNotifier{}
}

func (noopNotifier) OrderPlaced(context.Context, models.Order, string) error {
	return nil
}
