package contents

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseSelection(t *testing.T) {
	tests := []struct {
		name     string
		token    string
		expected Selection
		hasErr   bool
	}{
		{"all token", "all", All(), false},
		{"zero maps to all", "0", All(), false},
		{"positive integer", "10", Top(10), false},
		{"negative", "-1", Selection{}, true},
		{"non-numeric", "ten", Selection{}, true},
		{"empty", "", Selection{}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sel, err := ParseSelection(tt.token)
			if tt.hasErr {
				var invalid *InvalidSelectionError
				require.ErrorAs(t, err, &invalid)
				assert.Equal(t, tt.token, invalid.Token)
			} else {
				require.NoError(t, err)
				assert.Equal(t, tt.expected, sel)
			}
		})
	}
}

func TestSelectionDistinguishesZeroFromAll(t *testing.T) {
	assert.True(t, All().IsAll())
	assert.False(t, Top(0).IsAll())
	assert.Equal(t, 0, Top(0).limit(5))
	assert.Equal(t, 5, All().limit(5))
	assert.Equal(t, 3, Top(3).limit(5))
	assert.Equal(t, 5, Top(9).limit(5))
}
