package sendgrid_test

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/josumamgar-gif/App-Aqualan/internal/models"
	sendgrid_client "github.com/josumamgar-gif/App-Aqualan/pkg/sendgrid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewEmailService(t *testing.T) {
	service := sendgrid_client.NewEmailService("test-api-key", "pedidos@aqualan.es", "Aqualan")

	assert.NotNil(t, service)
	assert.NotNil(t, service.GetSendGridClient())
}

type sendgridV3Payload struct {
	Personalizations []struct {
		To      []map[string]string `json:"to"`
		Subject string              `json:"subject"`
	} `json:"personalizations"`
	From    map[string]string `json:"from"`
	Content []struct {
		Type  string `json:"type"`
		Value string `json:"value"`
	} `json:"content"`
}

func TestEmailService_Send(t *testing.T) {
	apiKey := "SG.test-api-key"
	fromEmail := "pedidos@aqualan.es"
	fromName := "Aqualan"
	ctx := t.Context()

	tests := []struct {
		name          string
		req           *models.EmailNotificationRequest
		status        int
		expectedError string
		checkPayload  func(t *testing.T, payload sendgridV3Payload)
	}{
		{
			name: "Success - Order Confirmation",
			req: &models.EmailNotificationRequest{
				To:          "ane@example.com",
				ToName:      "Ane",
				Subject:     "Pedido recibido",
				Content:     "Tu pedido llegará el viernes 07/03/2025",
				HTMLContent: "<p>Tu pedido llegará el viernes 07/03/2025</p>",
			},
			status: http.StatusAccepted,
			checkPayload: func(t *testing.T, p sendgridV3Payload) {
				require.Len(t, p.Personalizations, 1)
				pers := p.Personalizations[0]
				require.Len(t, pers.To, 1)
				assert.Equal(t, "ane@example.com", pers.To[0]["email"])
				assert.Equal(t, "Ane", pers.To[0]["name"])
				assert.Equal(t, "Pedido recibido", pers.Subject)

				assert.Equal(t, fromEmail, p.From["email"])
				assert.Equal(t, fromName, p.From["name"])

				require.Len(t, p.Content, 2)
				assert.Equal(t, "text/plain", p.Content[0].Type)
				assert.Equal(t, "text/html", p.Content[1].Type)
			},
		},
		{
			name: "Success - Plain Text Only",
			req: &models.EmailNotificationRequest{
				To:      "ane@example.com",
				Subject: "Pedido recibido",
				Content: "Te contactaremos para confirmar la fecha de entrega.",
			},
			status: http.StatusAccepted,
			checkPayload: func(t *testing.T, p sendgridV3Payload) {
				require.Len(t, p.Content, 1)
				assert.Equal(t, "text/plain", p.Content[0].Type)
			},
		},
		{
			name: "Failure - SendGrid API Error (4xx)",
			req: &models.EmailNotificationRequest{
				To:      "bad@example.com",
				Subject: "Pedido recibido",
				Content: "Content",
			},
			status:        http.StatusBadRequest,
			expectedError: "failed to send email, status code: 400",
		},
		{
			name: "Failure - SendGrid API Error (5xx)",
			req: &models.EmailNotificationRequest{
				To:      "ane@example.com",
				Subject: "Pedido recibido",
				Content: "Content",
			},
			status:        http.StatusInternalServerError,
			expectedError: "failed to send email, status code: 500",
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			// Arrange
			var payload sendgridV3Payload

			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				assert.Equal(t, http.MethodPost, r.Method)
				assert.Equal(t, "Bearer "+apiKey, r.Header.Get("Authorization"))

				body, err := io.ReadAll(r.Body)
				require.NoError(t, err)
				require.NoError(t, json.Unmarshal(body, &payload))

				w.WriteHeader(tc.status)
			}))
			defer server.Close()

			service := sendgrid_client.NewEmailService(apiKey, fromEmail, fromName)
			service.GetSendGridClient().Request.BaseURL = server.URL

			// Act
			err := service.Send(ctx, tc.req)

			// Assert
			if tc.expectedError == "" {
				assert.NoError(t, err)
			} else {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tc.expectedError)
			}

			if tc.checkPayload != nil {
				tc.checkPayload(t, payload)
			}
		})
	}

	t.Run("Failure - Network Error", func(t *testing.T) {
		// Arrange
		server := httptest.NewServer(http.NotFoundHandler())
		service := sendgrid_client.NewEmailService(apiKey, fromEmail, fromName)
		service.GetSendGridClient().Request.BaseURL = server.URL
		server.Close()

		// Act
		err := service.Send(ctx, &models.EmailNotificationRequest{To: "ane@example.com", Subject: "x", Content: "y"})

		// Assert
		require.Error(t, err)
		assert.Contains(t, err.Error(), "failed to send email")
	})
}
