package validation

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidateEmail(t *testing.T) {
	valid := []string{"a@b.co", "user.name+tag@example.com", "x@sub.domain.org"}
	for _, email := range valid {
		assert.NoError(t, ValidateEmail(email), email)
	}

	invalid := []string{"", "   ", "plain", "missing@tld", "two@@example.com", "spaces in@example.com"}
	for _, email := range invalid {
		assert.Error(t, ValidateEmail(email), email)
	}
}

func TestValidatePassword(t *testing.T) {
	assert.Error(t, ValidatePassword(""))
	assert.Error(t, ValidatePassword("12345"))
	assert.NoError(t, ValidatePassword("123456"))
	assert.NoError(t, ValidatePassword(strings.Repeat("x", 100)))
	assert.Error(t, ValidatePassword(strings.Repeat("x", 101)))
}

func TestValidateName(t *testing.T) {
	assert.NoError(t, ValidateName(""), "empty name falls back to a derived default")
	assert.NoError(t, ValidateName("   "))
	assert.Error(t, ValidateName("x"))
	assert.NoError(t, ValidateName("Jo"))
	assert.NoError(t, ValidateName(strings.Repeat("n", 50)))
	assert.Error(t, ValidateName(strings.Repeat("n", 51)))
}

func TestValidateTitle(t *testing.T) {
	assert.Error(t, ValidateTitle(""))
	assert.Error(t, ValidateTitle("   "))
	assert.NoError(t, ValidateTitle("A Title"))
	assert.NoError(t, ValidateTitle(strings.Repeat("t", MaxTitleLength)))
	assert.Error(t, ValidateTitle(strings.Repeat("t", MaxTitleLength+1)))

	// length is judged after trimming
	assert.NoError(t, ValidateTitle("  "+strings.Repeat("t", MaxTitleLength)+"  "))
}
