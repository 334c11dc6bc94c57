package breakpoint

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	tests := []struct {
		name    string
		lo, hi  int
		wantErr bool
	}{
		{"ordinary span", 2, 5, false},
		{"insertion point", 3, 3, false},
		{"negative lo", -1, 2, true},
		{"inverted", 5, 2, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			bp, err := New(tt.lo, tt.hi)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.hi-tt.lo, bp.Span())
		})
	}
}

func TestSlice(t *testing.T) {
	s := "ACGTACGT"
	bp := Breakpoint{Lo: 2, Hi: 6}
	assert.Equal(t, "GTAC", Slice(s, bp))
}

func TestOverlaps(t *testing.T) {
	a := Breakpoint{Lo: 2, Hi: 6}
	tests := []struct {
		name string
		b    Breakpoint
		want bool
	}{
		{"disjoint before", Breakpoint{0, 2}, false},
		{"disjoint after", Breakpoint{6, 8}, false},
		{"overlapping", Breakpoint{4, 8}, true},
		{"contained", Breakpoint{3, 4}, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, a.Overlaps(tt.b))
		})
	}
}

func TestValidate(t *testing.T) {
	bp := Breakpoint{Lo: 2, Hi: 6}
	require.NoError(t, bp.Validate(6))
	require.Error(t, bp.Validate(5))
}
