package validator

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsValidFileSizeBoundaries(t *testing.T) {
	assert.False(t, IsValidFileSize(0))
	assert.False(t, IsValidFileSize(-1))
	assert.True(t, IsValidFileSize(1))
	assert.True(t, IsValidFileSize(MaxFileSize))
	assert.False(t, IsValidFileSize(MaxFileSize+1))
}

func TestIsAllowedFileType(t *testing.T) {
	assert.True(t, IsAllowedFileType("application/pdf"))
	assert.True(t, IsAllowedFileType("image/png"))
	assert.False(t, IsAllowedFileType("application/x-msdownload"))
	assert.False(t, IsAllowedFileType("text/html"))
	assert.False(t, IsAllowedFileType(""))
}
