package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestImageExtension(t *testing.T) {
	assert.Equal(t, ".jpg", imageExtension("image/jpeg"))
	assert.Equal(t, ".jpg", imageExtension("image/jpg"))
	assert.Equal(t, ".png", imageExtension("image/png"))
	assert.Equal(t, ".webp", imageExtension("image/webp"))
}
