package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBcryptHashService_HashAndVerify(t *testing.T) {
	svc := NewBcryptHashService()

	hash, err := svc.Hash("abc123")
	require.NoError(t, err)
	assert.NotEqual(t, "abc123", hash)
	assert.Contains(t, hash, "$2a$")

	ok, err := svc.Verify("abc123", hash)
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestBcryptHashService_WrongPassword(t *testing.T) {
	svc := NewBcryptHashService()

	hash, err := svc.Hash("abc123")
	require.NoError(t, err)

	ok, err := svc.Verify("def456", hash)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestBcryptHashService_UniqueSalts(t *testing.T) {
	svc := NewBcryptHashService()

	h1, err := svc.Hash("abc123")
	require.NoError(t, err)
	h2, err := svc.Hash("abc123")
	require.NoError(t, err)

	assert.NotEqual(t, h1, h2)
}

func TestBcryptHashService_MalformedHash(t *testing.T) {
	svc := NewBcryptHashService()

	_, err := svc.Verify("abc123", "not-a-bcrypt-hash")
	assert.Error(t, err)
}
