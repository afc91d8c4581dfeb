package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidateMSISDN(t *testing.T) {
	testCases := []struct {
		name      string
		input     string
		expected  string
		expectErr bool
	}{
		{
			name:     "Local Format With Leading Zero",
			input:    "0712345678",
			expected: "254712345678",
		},
		{
			name:     "International Format",
			input:    "254712345678",
			expected: "254712345678",
		},
		{
			name:     "Plus Prefix",
			input:    "+254712345678",
			expected: "254712345678",
		},
		{
			name:     "Spaces And Dashes Stripped",
			input:    "0712-345 678",
			expected: "254712345678",
		},
		{
			name:      "Too Short",
			input:     "071234",
			expectErr: true,
		},
		{
			name:      "Unsupported Prefix",
			input:     "0782345678",
			expectErr: true,
		},
		{
			name:      "Empty",
			input:     "",
			expectErr: true,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			valid, formatted, err := ValidateMSISDN(tc.input)
			if tc.expectErr {
				assert.Error(t, err)
				assert.False(t, valid)
				return
			}
			assert.NoError(t, err)
			assert.True(t, valid)
			assert.Equal(t, tc.expected, formatted)
		})
	}
}
