package ulid

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewULID_IsValidAndUnique(t *testing.T) {
	t.Parallel()

	first := NewULID()
	second := NewULID()

	assert.Len(t, first, 26)
	assert.True(t, Valid(first))
	assert.NotEqual(t, first, second)
}

func TestValid_RejectsGarbage(t *testing.T) {
	t.Parallel()

	assert.False(t, Valid(""))
	assert.False(t, Valid("not-a-ulid"))
}
