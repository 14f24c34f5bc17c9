package validator

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestIsValidPhone(t *testing.T) {
	tests := []struct {
		phone string
		want  bool
	}{
		{"5551234567", true},
		{"155512345678901", true},
		{"555123456", false},
		{"1555123456789012", false},
		{"555-123-4567", false},
		{"(555)1234567", false},
		{"", false},
		{"phone", false},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, IsValidPhone(tt.phone), "phone %q", tt.phone)
	}
}

func TestValidateStructPhoneTag(t *testing.T) {
	type req struct {
		Phone string `validate:"required,phone"`
	}

	assert.Empty(t, ValidateStruct(req{Phone: "5551234567"}))

	errs := ValidateStruct(req{Phone: "abc"})
	assert.NotEmpty(t, errs)
	assert.Equal(t, "phone", errs[0].Tag)
}

func TestValidateStructUUIDRequired(t *testing.T) {
	type req struct {
		ItemID uuid.UUID `validate:"uuid_required"`
	}

	assert.Empty(t, ValidateStruct(req{ItemID: uuid.New()}))

	errs := ValidateStruct(req{ItemID: uuid.Nil})
	assert.NotEmpty(t, errs)
	assert.Equal(t, "uuid_required", errs[0].Tag)
}
