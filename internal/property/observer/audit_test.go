package observer

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/AnDrELuIzzz/RealStateNeeds/internal/platform/logger"
)

func TestAuditListener_PriceChangeDirection(t *testing.T) {
	var buf bytes.Buffer
	listener := NewAuditListener(logger.NewLoggerWithOutput(&buf))

	property := mustProperty(t, 9000)
	listener.OnPriceChanged(property, 9000, 10000)
	assert.Contains(t, buf.String(), "INCREASE")

	buf.Reset()
	listener.OnPriceChanged(property, 10000, 9000)
	assert.Contains(t, buf.String(), "DECREASE")
}

func TestAuditListener_CreateAndRemove(t *testing.T) {
	var buf bytes.Buffer
	listener := NewAuditListener(logger.NewLoggerWithOutput(&buf))

	property := mustProperty(t, 9000)
	listener.OnPropertyCreated(property)
	listener.OnPropertyRemoved(property)

	assert.Contains(t, buf.String(), property.ID)
	assert.Contains(t, buf.String(), "registered")
	assert.Contains(t, buf.String(), "removed")
}
