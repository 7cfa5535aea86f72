package notification

import (
	"context"
	"testing"

	"storefront/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewNotificationService_Disabled(t *testing.T) {
	svc, err := NewNotificationService(context.Background(), &config.Config{})

	require.NoError(t, err)
	assert.Nil(t, svc)
}
