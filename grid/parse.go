package grid

import (
	"bufio"
	"fmt"
	"io"
	"strings"
	"unicode/utf8"
)

// Parse builds a grid from rows written in the dump alphabet: '-' is a wall,
// '.' and 'x' are open cells. OnPath is not restored from 'x'; a parsed grid
// is always in the freshly reset state.
//
// Returns ErrEmptyGrid if there are no rows or the first row is empty,
// ErrNonRectangular if row lengths differ, ErrBadGlyph on any other rune.
// Complexity: O(W×H).
func Parse(rows []string) (*Grid, error) {
	if len(rows) == 0 {
		return nil, fmt.Errorf("%w: no rows", ErrEmptyGrid)
	}
	w := utf8.RuneCountInString(rows[0])
	for y, row := range rows {
		if n := utf8.RuneCountInString(row); n != w {
			return nil, fmt.Errorf("%w: row %d has %d cells, row 0 has %d", ErrNonRectangular, y, n, w)
		}
	}
	g, err := New(w, len(rows))
	if err != nil {
		return nil, err
	}
	for y, row := range rows {
		x := 0
		for _, r := range row {
			switch r {
			case GlyphWall:
				g.cells[g.index(Coordinate{X: x, Y: y})].IsWall = true
			case GlyphOpen, GlyphPath:
			default:
				return nil, fmt.Errorf("%w: %q at (%d,%d)", ErrBadGlyph, r, x, y)
			}
			x++
		}
	}

	return g, nil
}

// Read parses a dump from r. Blank lines and surrounding whitespace are
// skipped, so a String dump with its trailing newline reads back unchanged.
func Read(r io.Reader) (*Grid, error) {
	var rows []string
	sc := bufio.NewScanner(r)
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if line == "" {
			continue
		}
		rows = append(rows, line)
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("grid: read dump: %w", err)
	}

	return Parse(rows)
}
