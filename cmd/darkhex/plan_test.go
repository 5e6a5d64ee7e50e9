package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/gorgonia/darkhex/game"
	"github.com/gorgonia/darkhex/retro"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadPlan(t *testing.T) {
	dir := t.TempDir()

	p, err := loadPlan(filepath.Join(dir, "missing.yaml"))
	require.NoError(t, err)
	assert.Equal(t, defaultPlan(), p)

	fn := filepath.Join(dir, "darkhex.yaml")
	doc := `debug: true
runs:
  - {rows: 2, cols: 3, visible: white, workers: 2}
  - {rows: 0, cols: 3}
`
	require.NoError(t, os.WriteFile(fn, []byte(doc), 0644))
	p, err = loadPlan(fn)
	require.NoError(t, err)
	assert.True(t, p.Debug)
	require.Len(t, p.Runs, 2)

	conf, err := p.Runs[0].config()
	require.NoError(t, err)
	assert.Equal(t, 2, conf.Rows)
	assert.Equal(t, 3, conf.Cols)
	assert.Equal(t, game.Player(game.White), conf.Visible)
	assert.Equal(t, 2, conf.Workers)

	_, err = p.Runs[1].config()
	assert.ErrorIs(t, err, retro.ErrInvalidConfiguration)

	_, err = run{Rows: 2, Cols: 2, Visible: "red"}.config()
	assert.Error(t, err)

	require.NoError(t, os.WriteFile(fn, []byte("runs: [oops"), 0644))
	_, err = loadPlan(fn)
	assert.Error(t, err)
}
