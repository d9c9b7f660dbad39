package textutil

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTruncate(t *testing.T) {
	tests := []struct {
		in    string
		limit int
		want  string
	}{
		{"ProdMast", 20, "ProdMast"},
		{"ProdMast", 8, "ProdMast"},
		{"ProdMast", 5, "Prod…"},
		{"ProdMast", 1, "…"},
		{"ProdMast", 0, ""},
		{"製造業の管理", 5, "製造…"},
	}
	for _, tt := range tests {
		got := Truncate(tt.in, tt.limit)
		assert.Equal(t, tt.want, got, "Truncate(%q, %d)", tt.in, tt.limit)
		assert.LessOrEqual(t, Width(got), max(tt.limit, 0))
	}
}

func TestPad(t *testing.T) {
	assert.Equal(t, "ab   ", PadRight("ab", 5))
	assert.Equal(t, "   ab", PadLeft("ab", 5))
	assert.Equal(t, "ab…", PadRight("abcdef", 3))
	assert.Equal(t, 6, Width(PadRight("製造", 6)))
}

func TestCenter(t *testing.T) {
	assert.Equal(t, "  ok   ", Center("ok", 7))
	assert.Equal(t, "ok", Center("ok", 2))
}

func TestWrap(t *testing.T) {
	lines := Wrap("Stop guessing. Start knowing. ProdMast gives you granular visibility.", 20)
	assert.Equal(t, []string{
		"Stop guessing. Start",
		"knowing. ProdMast",
		"gives you granular",
		"visibility.",
	}, lines)
	for _, l := range lines {
		assert.LessOrEqual(t, Width(l), 20)
	}
	assert.Nil(t, Wrap("anything", 0))
	assert.Equal(t, []string{"abc…"}, Wrap("abcdefgh", 4))
}
