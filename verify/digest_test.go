package verify

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDigestDeterministic(t *testing.T) {
	content := []byte("hello vox world")

	first := Digest(content)
	second := Digest(content)
	assert.Equal(t, first, second)

	// 0x 前缀 + 64 位小写十六进制
	require.Len(t, first, 66)
	assert.True(t, strings.HasPrefix(first, "0x"))
	assert.Equal(t, strings.ToLower(first), first)
}

func TestDigestBitFlip(t *testing.T) {
	content := []byte("hello vox world")
	flipped := make([]byte, len(content))
	copy(flipped, content)
	flipped[0] ^= 0x01

	assert.NotEqual(t, Digest(content), Digest(flipped))
}

func TestDigestHashMatchesDigest(t *testing.T) {
	content := []byte("some bytes")
	assert.Equal(t, Digest(content), DigestHash(content).Hex())
}
