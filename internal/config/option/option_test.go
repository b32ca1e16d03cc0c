package option

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsSelectionInclusive(t *testing.T) {
	tests := []struct {
		name string
		r    Reader
		want bool
	}{
		{"nil reader", nil, true},
		{"unset", Map{}, true},
		{"inclusive", Map{Selection: SelectionInclusive}, true},
		{"exclusive", Map{Selection: SelectionExclusive}, false},
		{"exclusive mixed case", Map{Selection: " Exclusive "}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, IsSelectionInclusive(tt.r))
		})
	}
}

func TestValidSelection(t *testing.T) {
	assert.True(t, ValidSelection("inclusive"))
	assert.True(t, ValidSelection("EXCLUSIVE"))
	assert.False(t, ValidSelection("old"))
	assert.False(t, ValidSelection(""))
}
