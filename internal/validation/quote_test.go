package validation

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateQuote(t *testing.T) {
	tests := []struct {
		name     string
		text     string
		category string
		errMsg   string
		wantErr  bool
	}{
		{
			name:     "valid quote",
			text:     "Stay hungry, stay foolish.",
			category: "Life",
		},
		{
			name:     "valid quote with surrounding spaces",
			text:     "  padded  ",
			category: " Work ",
		},
		{
			name:     "invalid - empty text",
			text:     "",
			category: "Life",
			wantErr:  true,
			errMsg:   "text cannot be empty",
		},
		{
			name:     "invalid - whitespace text",
			text:     " \t\n",
			category: "Life",
			wantErr:  true,
			errMsg:   "text cannot be empty",
		},
		{
			name:     "invalid - empty category",
			text:     "Some text",
			category: "",
			wantErr:  true,
			errMsg:   "category cannot be empty",
		},
		{
			name:    "invalid - both empty reports text first",
			wantErr: true,
			errMsg:  "text cannot be empty",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateQuote(tt.text, tt.category)
			if tt.wantErr {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.errMsg)
				return
			}
			assert.NoError(t, err)
		})
	}
}
