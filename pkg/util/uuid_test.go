package util

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestHashUUID(t *testing.T) {
	type layout struct {
		W, H int
	}
	a := HashUUID(layout{4, 4})
	assert.NotEqual(t, uuid.Nil, a)
	assert.Equal(t, a, HashUUID(layout{4, 4}))
	assert.NotEqual(t, a, HashUUID(layout{4, 8}))
	assert.Equal(t, uuid.Nil, HashUUID(func() {}))
}

func TestDigest(t *testing.T) {
	assert.Equal(t, "d41d8cd98f00b204e9800998ecf8427e", Digest(nil))
	assert.Len(t, Digest([]byte{1, 2, 3}), 32)
}
