package selection

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "github.com/backmassage/splitmux/internal/errors"
)

func allowed(w Whitelist, total int) []int {
	var out []int
	for n := 1; n <= total; n++ {
		if w.Allows(n) {
			out = append(out, n)
		}
	}
	return out
}

func TestParse_Allowed(t *testing.T) {
	tests := []struct {
		name  string
		expr  string
		total int
		want  []int
	}{
		{"mixed indices and range", "1,3,5-7", 10, []int{1, 3, 5, 6, 7}},
		{"whitespace around tokens", " 2 , 4-5 ", 6, []int{2, 4, 5}},
		{"range first then index", "5-7,1", 10, []int{1, 5, 6, 7}},
		{"single-chapter range", "4-4", 4, []int{4}},
		{"full range", "1-3", 3, []int{1, 2, 3}},
		{"overlapping selectors", "2-4,3", 5, []int{2, 3, 4}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w, err := Parse(tt.expr, tt.total)
			require.NoError(t, err)
			assert.Equal(t, tt.want, allowed(w, tt.total))
		})
	}
}

func TestParse_Invalid(t *testing.T) {
	tests := []struct {
		name string
		expr string
	}{
		{"zero index", "0"},
		{"index above total", "11"},
		{"reversed range", "7-5"},
		{"range above total", "5-11"},
		{"range from zero", "0-3"},
		{"negative", "-1"},
		{"word", "first"},
		{"empty token", "1,,2"},
		{"open range", "3-"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w, err := Parse(tt.expr, 10)
			assert.Nil(t, w)
			assert.ErrorIs(t, err, apperrors.ErrValidation)
		})
	}
}

func TestParse_Empty(t *testing.T) {
	w, err := Parse("  ", 5)
	require.NoError(t, err)
	assert.Nil(t, w)
	assert.Equal(t, []int{1, 2, 3, 4, 5}, allowed(w, 5))
}

func TestParse_Variants(t *testing.T) {
	w, err := Parse("1,3,5-7", 10)
	require.NoError(t, err)
	assert.Equal(t, Whitelist{Index(1), Index(3), Range(5, 7)}, w)
}

func TestAllows_ScansEverySelector(t *testing.T) {
	w := Whitelist{Range(1, 2), Index(9)}
	assert.True(t, w.Allows(9))
	assert.False(t, w.Allows(5))
}
