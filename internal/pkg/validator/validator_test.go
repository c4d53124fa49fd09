package validator

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsEmpty(t *testing.T) {
	assert.True(t, IsEmpty(""))
	assert.True(t, IsEmpty("   "))
	assert.True(t, IsEmpty("\t\n"))
	assert.False(t, IsEmpty("x"))
	assert.False(t, IsEmpty("  x  "))
}

func TestIsValidEmail(t *testing.T) {
	valid := []string{
		"ava@example.com",
		"first.last+tag@sub.domain.io",
		"UPPER@EXAMPLE.ORG",
	}
	for _, email := range valid {
		assert.True(t, IsValidEmail(email), email)
	}

	invalid := []string{
		"",
		"plain",
		"missing@tld",
		"@example.com",
		"spaces in@example.com",
	}
	for _, email := range invalid {
		assert.False(t, IsValidEmail(email), email)
	}
}

func TestIsValidDate(t *testing.T) {
	d, ok := IsValidDate("2026-03-02")
	assert.True(t, ok)
	assert.Equal(t, 2026, d.Year())

	_, ok = IsValidDate("02-03-2026")
	assert.False(t, ok)
	_, ok = IsValidDate("2026-13-01")
	assert.False(t, ok)
	_, ok = IsValidDate("")
	assert.False(t, ok)
}

func TestIsClockFormat(t *testing.T) {
	assert.True(t, IsClockFormat("9:00"))
	assert.True(t, IsClockFormat("09:00"))
	assert.True(t, IsClockFormat(" 18:30 "))

	// Only shape is checked here; range checks live in settings.ParseClock.
	assert.True(t, IsClockFormat("99:99"))

	assert.False(t, IsClockFormat("9"))
	assert.False(t, IsClockFormat("9:5"))
	assert.False(t, IsClockFormat("noon"))
	assert.False(t, IsClockFormat("09:00:00"))
}

func TestValidationErrorsToMap(t *testing.T) {
	errs := ValidationErrors{
		{Field: "email", Message: "invalid email address"},
		{Field: "password", Message: "password is required"},
	}

	m := errs.ToMap()
	assert.Len(t, m, 2)
	assert.Equal(t, "invalid email address", m["email"])
	assert.Contains(t, errs.Error(), "password: password is required")
}

func TestIsInSlice(t *testing.T) {
	statuses := []string{"Pending", "Approved", "Rejected"}
	assert.True(t, IsInSlice("Pending", statuses))
	assert.False(t, IsInSlice("pending", statuses))
	assert.False(t, IsInSlice("", statuses))
}
