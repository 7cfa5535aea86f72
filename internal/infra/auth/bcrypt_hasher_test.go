package auth

import (
	"testing"

	"storefront/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func TestBcryptHasher_HashAndCheck(t *testing.T) {
	hasher := NewBcryptHasher(&config.Config{Auth: &config.AuthConfig{BcryptCost: bcrypt.MinCost}})

	hash, err := hasher.Hash("4321")
	require.NoError(t, err)
	assert.NotEqual(t, "4321", hash)

	assert.True(t, hasher.Check("4321", hash))
	assert.False(t, hasher.Check("1234", hash))
	assert.False(t, hasher.Check("4321", "not-a-hash"))
}

func TestBcryptHasher_Cost(t *testing.T) {
	tests := []struct {
		name string
		cfg  *config.Config
		want int
	}{
		{"configured", &config.Config{Auth: &config.AuthConfig{BcryptCost: 5}}, 5},
		{"missing section", &config.Config{}, bcrypt.DefaultCost},
		{"out of range", &config.Config{Auth: &config.AuthConfig{BcryptCost: 99}}, bcrypt.DefaultCost},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			hasher := NewBcryptHasher(tt.cfg).(*bcryptHasher)
			assert.Equal(t, tt.want, hasher.cost)
		})
	}
}

func TestBcryptHasher_SaltsEveryHash(t *testing.T) {
	hasher := NewBcryptHasher(&config.Config{Auth: &config.AuthConfig{BcryptCost: bcrypt.MinCost}})

	first, err := hasher.Hash("0000")
	require.NoError(t, err)
	second, err := hasher.Hash("0000")
	require.NoError(t, err)

	assert.NotEqual(t, first, second)
}
