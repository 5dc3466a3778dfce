package mocks

import (
	"context"

	"github.com/josumamgar-gif/App-Aqualan/internal/models"
	sg "github.com/sendgrid/sendgrid-go"
	"github.com/stretchr/testify/mock"
)

type EmailService struct {
	mock.Mock
}

func (m *EmailService) Send(ctx context.Context, req *models.EmailNotificationRequest) error {
	ret := m.Called(ctx, req)
	return ret.Error(0)
}

func (m *EmailService) GetSendGridClient() *sg.Client {
	ret := m.Called()

	var r0 *sg.Client
	if v, ok := ret.Get(0).(*sg.Client); ok {
		r0 = v
	}
	return r0
}
