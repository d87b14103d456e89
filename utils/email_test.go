package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsEmailValid(t *testing.T) {
	t.Parallel()

	valid := []string{
		"a@b.co",
		"hardi@example.com",
		"user.name+tag@example.co.uk",
		"UPPER_case-99@sub.domain.io",
	}
	for _, email := range valid {
		assert.True(t, IsEmailValid(email), email)
	}

	invalid := []string{
		"",
		"bad",
		"not-an-email",
		"a@b",
		"@example.com",
		"a@.com",
		"a b@example.com",
		"a@example.c",
		"a@example.",
	}
	for _, email := range invalid {
		assert.False(t, IsEmailValid(email), email)
	}
}
