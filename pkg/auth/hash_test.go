package auth

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHashAndComparePassword(t *testing.T) {
	s := &HashService{}

	hash, err := s.HashPassword("secreto123")
	assert.NoError(t, err)
	assert.NotEqual(t, "secreto123", hash)

	assert.True(t, s.ComparePassword(hash, "secreto123"))
	assert.False(t, s.ComparePassword(hash, "otra-clave"))
}

func TestHashPassword_Empty(t *testing.T) {
	s := &HashService{}

	_, err := s.HashPassword("")
	assert.Error(t, err)
}

func TestHashPassword_DemasiadoLarga(t *testing.T) {
	s := &HashService{}

	_, err := s.HashPassword(strings.Repeat("a", largoMaxPassword+1))
	assert.Error(t, err)
}
