package configserver

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestUserErrorMatchesSentinelOfSameKind(t *testing.T) {
	conflict := alreadyExists(DefaultName)
	wrapped := fmt.Errorf("create: %w", conflict)

	assert.True(t, errors.Is(wrapped, ErrResourceConflict))
	assert.False(t, errors.Is(wrapped, ErrResourceNotFound))
	assert.False(t, errors.Is(wrapped, ErrInvalidArgument))
	assert.True(t, errors.Is(wrapped, alreadyExists(DefaultName)))
	assert.False(t, errors.Is(wrapped, alreadyExists("other")))
}

func TestErrorKindString(t *testing.T) {
	assert.Equal(t, "ResourceConflict", KindResourceConflict.String())
	assert.Equal(t, "ResourceNotFound", KindResourceNotFound.String())
	assert.Equal(t, "InvalidArgument", KindInvalidArgument.String())
	assert.Equal(t, "Unknown", ErrorKind(0).String())
}
