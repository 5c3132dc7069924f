package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidName(t *testing.T) {
	assert.False(t, ValidName(""))
	assert.False(t, ValidName(" J "))
	assert.True(t, ValidName("Jo"))
	assert.True(t, ValidName("  Jo Smith "))
	assert.True(t, ValidName("李雷"))
}

func TestValidEmail(t *testing.T) {
	valid := []string{"jo@example.com", "a.b+c@sub.domain.org"}
	invalid := []string{"", "jo", "jo@example", "jo@@example.com", "jo smith@example.com", "@example.com", " jo@example.com"}
	for _, v := range valid {
		assert.True(t, ValidEmail(v), v)
	}
	for _, v := range invalid {
		assert.False(t, ValidEmail(v), v)
	}
}

func TestValidEmailRejectsUnicodeSpaces(t *testing.T) {
	for _, v := range []string{
		"jo\u00a0x@example.com",
		"jo@exa\u2003mple.com",
		"jo@example.c\u3000om",
		"\ufeffjo@example.com",
		"jo\u2028@example.com",
		"jo\v@example.com",
	} {
		assert.False(t, ValidEmail(v), "%q", v)
	}
	assert.True(t, ValidEmail("李雷@例子.中国"))
}

func TestQualityOfLifeInRange(t *testing.T) {
	assert.True(t, QualityOfLifeInRange(0))
	assert.True(t, QualityOfLifeInRange(6))
	assert.False(t, QualityOfLifeInRange(7))
	assert.False(t, QualityOfLifeInRange(-1))
}

func TestFirstName(t *testing.T) {
	assert.Equal(t, "Jo", FirstName("Jo Smith"))
	assert.Equal(t, "Jo", FirstName("  Jo   Smith"))
	assert.Equal(t, "", FirstName("   "))
}
