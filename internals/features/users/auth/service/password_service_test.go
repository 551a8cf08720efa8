package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHashAndComparePassword(t *testing.T) {
	hashed, err := HashPassword("RahasiaBanget1")
	require.NoError(t, err)
	assert.NotEqual(t, "RahasiaBanget1", hashed)

	assert.True(t, ComparePassword(hashed, "RahasiaBanget1"))
	assert.False(t, ComparePassword(hashed, "salah"))
}

func TestIsStrongPassword(t *testing.T) {
	assert.True(t, IsStrongPassword("Password1"))
	assert.False(t, IsStrongPassword("password1"), "tanpa huruf besar")
	assert.False(t, IsStrongPassword("Password"), "tanpa angka")
}
