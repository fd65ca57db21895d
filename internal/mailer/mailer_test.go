package mailer

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/AnDrELuIzzz/RealStateNeeds/internal/property/domain"
)

// MockMailer stands in for the real SMTP delivery
type MockMailer struct {
	WasCalled bool
	LastEmail string
}

func (m *MockMailer) SendPropertyCreatedEmail(toEmail string, property *domain.Property) error {
	m.WasCalled = true
	m.LastEmail = toEmail
	return nil // emulate a successful delivery
}

func TestSendPropertyCreatedEmail_Mock(t *testing.T) {
	property, err := domain.NewProperty("Rua Tabor, 40, Ipiranga", 9000.00)
	require.NoError(t, err)

	mock := &MockMailer{}
	err = mock.SendPropertyCreatedEmail("audit@example.com", property)

	assert.NoError(t, err)
	assert.True(t, mock.WasCalled)
	assert.Equal(t, "audit@example.com", mock.LastEmail)
}
