package main

import (
	"bytes"
	"io"
	"log/slog"
	"math/rand"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/gridpath/grid"
)

// writeMap stores rows as a dump file and returns its path.
func writeMap(t *testing.T, rows ...string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "board.txt")
	require.NoError(t, os.WriteFile(path, []byte(strings.Join(rows, "\n")+"\n"), 0o600))

	return path
}

func TestRun_MapWithEndpoints(t *testing.T) {
	path := writeMap(t,
		".-...",
		".-.-.",
		"...-.",
	)
	var out, errOut bytes.Buffer
	err := run([]string{"-map", path, "-start", "0,0", "-dest", "4,0"}, &out, &errOut)
	require.NoError(t, err)

	assert.Equal(t, ".-xxx\nx-x-.\nxxx-.\n", out.String())
	assert.Contains(t, errOut.String(), "path found")
	assert.Contains(t, errOut.String(), "length=8")
}

func TestRun_NoPathIsNotAnError(t *testing.T) {
	path := writeMap(t,
		"..-..",
		"..-..",
	)
	var out, errOut bytes.Buffer
	err := run([]string{"-map", path, "-start", "0,0", "-dest", "4,1"}, &out, &errOut)
	require.NoError(t, err)

	assert.Equal(t, "..-..\n..-..\n", out.String())
	assert.Contains(t, errOut.String(), "level=WARN")
	assert.Contains(t, errOut.String(), "no path")
}

func TestRun_OutOfBounds(t *testing.T) {
	path := writeMap(t, "...")
	err := run([]string{"-map", path, "-start", "0,0", "-dest", "9,9"}, io.Discard, io.Discard)
	require.ErrorIs(t, err, grid.ErrOutOfBounds)
}

func TestRun_MissingMap(t *testing.T) {
	err := run([]string{"-map", filepath.Join(t.TempDir(), "absent.txt")}, io.Discard, io.Discard)
	require.ErrorIs(t, err, os.ErrNotExist)
}

func TestRun_InvalidWalls(t *testing.T) {
	err := run([]string{"-walls", "150", "-seed", "1"}, io.Discard, io.Discard)
	require.ErrorIs(t, err, grid.ErrInvalidPercent)
}

func TestRunBatch_GeneratedPicksReachablePair(t *testing.T) {
	cfg := config{width: 12, height: 8, walls: 30, level: slog.LevelInfo}
	for seed := int64(1); seed <= 10; seed++ {
		var out, logs bytes.Buffer
		logger := slog.New(slog.NewTextHandler(&logs, nil))
		err := runBatch(cfg, rand.New(rand.NewSource(seed)), &out, logger)
		require.NoError(t, err, "seed %d", seed)

		assert.Equal(t, 8, strings.Count(out.String(), "\n"), "seed %d", seed)
		assert.Contains(t, logs.String(), "path found", "seed %d", seed)
	}
}

func TestPickEndpoints(t *testing.T) {
	g, err := grid.Parse([]string{
		"..-...",
		"..-...",
	})
	require.NoError(t, err)
	rng := rand.New(rand.NewSource(3))

	// Neither given: both from the larger right-hand region.
	for i := 0; i < 20; i++ {
		s, d, err := pickEndpoints(g, config{}, rng)
		require.NoError(t, err)
		assert.GreaterOrEqual(t, s.X, 3)
		assert.GreaterOrEqual(t, d.X, 3)
	}

	// Start given on the left: destination follows it.
	left := grid.Coordinate{X: 0, Y: 1}
	for i := 0; i < 20; i++ {
		s, d, err := pickEndpoints(g, config{start: &left}, rng)
		require.NoError(t, err)
		assert.Equal(t, left, s)
		ok, err := g.Connected(s, d)
		require.NoError(t, err)
		assert.True(t, ok)
	}

	// Both given: used verbatim.
	a, b := grid.Coordinate{X: 0, Y: 0}, grid.Coordinate{X: 5, Y: 1}
	s, d, err := pickEndpoints(g, config{start: &a, dest: &b}, rng)
	require.NoError(t, err)
	assert.Equal(t, a, s)
	assert.Equal(t, b, d)

	// Anchor on a wall leaves nothing to pick from.
	wall := grid.Coordinate{X: 2, Y: 0}
	_, _, err = pickEndpoints(g, config{dest: &wall}, rng)
	require.ErrorIs(t, err, errNoOpenCell)
}

func TestPickEndpoints_AllWalls(t *testing.T) {
	g, err := grid.Parse([]string{"---"})
	require.NoError(t, err)
	_, _, err = pickEndpoints(g, config{}, rand.New(rand.NewSource(1)))
	require.ErrorIs(t, err, errNoOpenCell)
}
