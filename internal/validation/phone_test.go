package validation

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsValidPhoneNumber(t *testing.T) {
	tests := []struct {
		phone string
		want  bool
	}{
		{"+33612345678", true},
		{"+1 234 567 8900", true},
		{"+1 (234) 567-8900", true},
		{"06.12.34.56.78", false}, // leading zero
		{"612345678", false},      // 9 digits
		{"12345", false},
		{"abc1234567", false},
		{"+0612345678", false},
		{"+1234567890123456", false}, // longer than E.164
		{"", false},
	}

	for _, tt := range tests {
		t.Run(tt.phone, func(t *testing.T) {
			assert.Equal(t, tt.want, IsValidPhoneNumber(tt.phone))
		})
	}
}

func TestCleanPhoneNumber(t *testing.T) {
	assert.Equal(t, "+12345678900", CleanPhoneNumber("+1 (234) 567-89.00"))
}
