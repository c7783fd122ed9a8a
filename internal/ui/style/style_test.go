package style_test

import (
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"github.com/stretchr/testify/assert"
	"go.trai.ch/vdep/internal/ui/style"
)

func TestSummary(t *testing.T) {
	lipgloss.SetColorProfile(termenv.Ascii)

	tests := []struct {
		name    string
		written int
		want    string
	}{
		{name: "none", written: 0, want: "✓ 0 virtual dependencies installed into .vdep"},
		{name: "one", written: 1, want: "✓ 1 virtual dependency installed into .vdep"},
		{name: "many", written: 12, want: "✓ 12 virtual dependencies installed into .vdep"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, style.Summary(tt.written, ".vdep"))
		})
	}
}
