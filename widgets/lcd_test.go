package widgets

import (
	"testing"

	"mt32-panel/theme"
)

func TestGlyphSubstitution(t *testing.T) {
	th := theme.New(theme.Default())

	cases := []struct {
		in   byte
		want rune
	}{
		{'A', 'A'},
		{' ', ' '},
		{0x01, th.Symbols.Block},
		{0x02, '|'},
		{0x00, ' '},
		{0x1F, ' '},
		{0x7F, ' '},
		{0xFF, ' '},
	}
	for _, tc := range cases {
		if got := glyph(tc.in, th); got != tc.want {
			t.Errorf("glyph(%#x) = %q, want %q", tc.in, got, tc.want)
		}
	}
}
