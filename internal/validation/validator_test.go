package validation

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPhone(t *testing.T) {
	tests := []struct {
		phone string
		valid bool
	}{
		{"08012345678", true},
		{"07098765432", true},
		{"08123456789", true},
		{"09011112222", true},
		{"09155554444", true},
		{"06012345678", false},
		{"0801234567", false},
		{"080123456789", false},
		{"+2348012345678", false},
		{"", false},
	}

	for _, tt := range tests {
		t.Run(tt.phone, func(t *testing.T) {
			v := New()
			v.Phone("phone", tt.phone)
			assert.Equal(t, tt.valid, v.Valid())
		})
	}
}

func TestEmail(t *testing.T) {
	v := New()
	v.Email("email", "ada@example.com")
	assert.True(t, v.Valid())

	v = New()
	v.Email("email", "not-an-email")
	assert.False(t, v.Valid())
	assert.Equal(t, "please provide a valid email", v.First())
}

func TestRequired(t *testing.T) {
	v := New()
	v.Required("name", "  ")
	assert.False(t, v.Valid())
	assert.Equal(t, "please provide name", v.Errors["name"])
}

func TestMinLength(t *testing.T) {
	v := New()
	v.MinLength("password", "12345", 6)
	assert.False(t, v.Valid())

	v = New()
	v.MinLength("password", "123456", 6)
	assert.True(t, v.Valid())
}

func TestPositive(t *testing.T) {
	v := New()
	v.Positive("amount", 0)
	assert.False(t, v.Valid())

	v = New()
	v.Positive("amount", 100)
	assert.True(t, v.Valid())
}

func TestFirstKeepsEarliestError(t *testing.T) {
	v := New()
	v.AddError("email", "first message")
	v.AddError("email", "second message")
	assert.Equal(t, "first message", v.Errors["email"])
}
