// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

import (
	"encoding/hex"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type failingReader struct{}

func (failingReader) Read([]byte) (int, error) {
	return 0, errors.New("entropy exhausted")
}

func TestSHA256Hasher_RoundTrip(t *testing.T) {
	hasher := NewSHA256Hasher()

	passwords := []string{"testpass123", "", " ", "пароль", "a very long password with spaces and symbols !@#$%^&*()"}
	for _, password := range passwords {
		t.Run(password, func(t *testing.T) {
			stored, err := hasher.Hash(password)
			require.NoError(t, err)

			assert.True(t, hasher.Verify(password, stored))
			assert.False(t, hasher.Verify(password+"x", stored))
		})
	}
}

func TestSHA256Hasher_DifferentPasswordsDoNotMatch(t *testing.T) {
	hasher := NewSHA256Hasher()

	stored, err := hasher.Hash("testpass123")
	require.NoError(t, err)

	assert.False(t, hasher.Verify("wrongpassword", stored))
	assert.False(t, hasher.Verify("Testpass123", stored))
}

func TestSHA256Hasher_SaltIsUnique(t *testing.T) {
	hasher := NewSHA256Hasher()

	first, err := hasher.Hash("same-password")
	require.NoError(t, err)
	second, err := hasher.Hash("same-password")
	require.NoError(t, err)

	assert.NotEqual(t, first, second)
	assert.NotEqual(t, first[:SaltHexLength], second[:SaltHexLength])
}

func TestSHA256Hasher_StoredFormat(t *testing.T) {
	stored, err := NewSHA256Hasher().Hash("testpass123")
	require.NoError(t, err)

	// 16 bytes of salt + 32 bytes of digest, both hex encoded
	assert.Len(t, stored, SaltHexLength+64)
	_, err = hex.DecodeString(stored)
	assert.NoError(t, err)
	assert.NotContains(t, stored, "testpass123")
}

// TestSHA256Hasher_KnownVector checks compatibility with hashes produced by
// the same scheme elsewhere: sha256("00112233445566778899aabbccddeeff" + "testpass123").
func TestSHA256Hasher_KnownVector(t *testing.T) {
	const stored = "00112233445566778899aabbccddeeff" +
		"c069420d68d2f0f685ebacae05bedf2c4e0a478056a7ffa109fa092834d64310"

	hasher := NewSHA256Hasher()
	assert.True(t, hasher.Verify("testpass123", stored))
	assert.False(t, hasher.Verify("testpass124", stored))
}

func TestSHA256Hasher_VerifyFailsClosed(t *testing.T) {
	hasher := NewSHA256Hasher()

	tests := []struct {
		name   string
		stored string
	}{
		{name: "empty", stored: ""},
		{name: "shorter than salt", stored: "abc"},
		{name: "exactly salt", stored: strings.Repeat("a", SaltHexLength)},
		{name: "garbage", stored: strings.Repeat("z", 200)},
		{name: "plaintext stored", stored: "testpass123"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.NotPanics(t, func() {
				assert.False(t, hasher.Verify("testpass123", tt.stored))
			})
		})
	}
}

func TestSHA256Hasher_RandomSourceFailure(t *testing.T) {
	hasher := &sha256Hasher{random: failingReader{}}

	stored, err := hasher.Hash("testpass123")

	assert.ErrorIs(t, err, ErrSaltGeneration)
	assert.Empty(t, stored)
}
