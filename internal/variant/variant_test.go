package variant

import (
	"testing"

	"github.com/jjtimmons/jst/internal/breakpoint"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewRejectsEmptyEdit(t *testing.T) {
	_, err := New(breakpoint.Breakpoint{Lo: 3, Hi: 3}, "", breakpoint.NewCoverage(2))
	require.Error(t, err)
}

func TestKind(t *testing.T) {
	cov := breakpoint.NewCoverage(2)
	tests := []struct {
		name string
		bp   breakpoint.Breakpoint
		alt  string
		want Kind
	}{
		{"insertion", breakpoint.Breakpoint{Lo: 3, Hi: 3}, "AAA", Insertion},
		{"deletion", breakpoint.Breakpoint{Lo: 3, Hi: 6}, "", Deletion},
		{"substitution", breakpoint.Breakpoint{Lo: 3, Hi: 6}, "GG", Substitution},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v, err := New(tt.bp, tt.alt, cov)
			require.NoError(t, err)
			assert.Equal(t, tt.want, v.Kind())
		})
	}
}
