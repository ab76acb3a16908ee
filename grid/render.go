package grid

import (
	"io"
	"strings"
)

// Glyphs of the diagnostic dump.
const (
	GlyphPath = 'x'
	GlyphWall = '-'
	GlyphOpen = '.'
)

// String renders the grid one row per line, one glyph per cell:
// 'x' on path, '-' wall, '.' otherwise. OnPath wins over IsWall.
// Every row, including the last, ends with '\n'.
func (g *Grid) String() string {
	var sb strings.Builder
	sb.Grow((g.width + 1) * g.height)
	for i := range g.cells {
		sb.WriteByte(glyph(&g.cells[i]))
		if (i+1)%g.width == 0 {
			sb.WriteByte('\n')
		}
	}

	return sb.String()
}

// WriteTo writes the String dump to w.
func (g *Grid) WriteTo(w io.Writer) (int64, error) {
	n, err := io.WriteString(w, g.String())

	return int64(n), err
}

func glyph(c *Cell) byte {
	switch {
	case c.OnPath:
		return GlyphPath
	case c.IsWall:
		return GlyphWall
	default:
		return GlyphOpen
	}
}
