package utils_test

import (
	"testing"

	"github.com/12Danish/NextRepBackend-sub000/utils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHashPasswordRoundTrip(t *testing.T) {
	hash, err := utils.HashPassword("s3cret-pass")
	require.NoError(t, err)
	assert.NotEqual(t, "s3cret-pass", hash)

	assert.True(t, utils.CheckPasswordHash("s3cret-pass", hash))
	assert.False(t, utils.CheckPasswordHash("wrong-pass", hash))
}

func TestGenerateRandomToken(t *testing.T) {
	a := utils.GenerateRandomToken(32)
	b := utils.GenerateRandomToken(32)

	assert.Len(t, a, 32)
	assert.NotEqual(t, a, b)
}
