package utils_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mconrado/fast-ecommerce-back/models"
	"github.com/mconrado/fast-ecommerce-back/utils"
)

func TestPasswordHashing(t *testing.T) {
	hash, err := utils.HashPassword("s3cret-pass")
	require.NoError(t, err)
	require.NotEmpty(t, hash)

	ok, err := utils.VerifyPassword(hash, "s3cret-pass")
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = utils.VerifyPassword(hash, "wrong-pass")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestTokenRoundTrip(t *testing.T) {
	user := &models.User{ID: 42, Email: "a@b.com", Role: "customer"}

	token, err := utils.GenerateToken("test-secret", time.Hour, user)
	require.NoError(t, err)

	claims, err := utils.ValidateToken("test-secret", token)
	require.NoError(t, err)
	assert.Equal(t, 42, claims.UserID)
	assert.Equal(t, "a@b.com", claims.Email)
	assert.Equal(t, "customer", claims.Role)

	_, err = utils.ValidateToken("other-secret", token)
	assert.Error(t, err)
}
