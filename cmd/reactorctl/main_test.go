package main

import (
	"bytes"
	"context"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"go-reactor-sim/internal/persist"
)

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	root := newRootCmd()
	root.SetOut(&out)
	root.SetErr(&out)
	root.SetArgs(args)
	err := root.Execute()
	return out.String(), err
}

func TestRunPrintsWorld(t *testing.T) {
	out, err := execute(t, "run", "--ticks", "120", "--reactors", "2", "--store", filepath.Join(t.TempDir(), "s.db"))
	require.NoError(t, err)

	assert.Contains(t, out, "tick 120")
	assert.Contains(t, out, "overheats 0  explosions 0")
	assert.Contains(t, out, "EFFICIENCY")
	assert.Equal(t, 2, strings.Count(out, "enabled"), "two reactors listed")
}

func TestRunRejectsNegativeTicks(t *testing.T) {
	_, err := execute(t, "run", "--ticks", "-1")
	assert.Error(t, err)
}

func TestRunTooManyReactors(t *testing.T) {
	_, err := execute(t, "run", "--ticks", "1", "--reactors", "500")
	assert.ErrorContains(t, err, "map fits only")
}

func TestSaveLifecycle(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "saves", "s.db")

	out, err := execute(t, "run", "--ticks", "30", "--save", "first", "--store", dbPath)
	require.NoError(t, err)
	require.Contains(t, out, "saved first as ")

	store, err := persist.OpenStore(context.Background(), dbPath, zap.NewNop())
	require.NoError(t, err)
	saves, err := store.List(context.Background())
	require.NoError(t, err)
	require.NoError(t, store.Close())
	require.Len(t, saves, 1)
	id := saves[0].ID

	out, err = execute(t, "saves", "list", "--store", dbPath)
	require.NoError(t, err)
	assert.Contains(t, out, id)
	assert.Contains(t, out, "first")

	out, err = execute(t, "saves", "show", id, "--store", dbPath)
	require.NoError(t, err)
	assert.Contains(t, out, `"first" revision 1, 1 records`)
	assert.Contains(t, out, "tick 30")

	out, err = execute(t, "run", "--ticks", "10", "--load", id, "--store", dbPath)
	require.NoError(t, err)
	assert.Contains(t, out, "tick 40", "a loaded run continues the tick count")

	out, err = execute(t, "saves", "delete", id, "--store", dbPath)
	require.NoError(t, err)
	assert.Contains(t, out, "deleted "+id)

	_, err = execute(t, "saves", "show", id, "--store", dbPath)
	assert.ErrorIs(t, err, persist.ErrSaveNotFound)

	out, err = execute(t, "saves", "list", "--store", dbPath)
	require.NoError(t, err)
	assert.Contains(t, out, "no saves")
}

func TestLayout(t *testing.T) {
	out, err := execute(t, "layout", "--capacity", "6", "--gap", "1", "--from", "0")
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, lines, 1+12, "header plus capacity+padding rows")
	assert.Contains(t, lines[0], "INDEX")
	assert.Contains(t, lines[1], "-0.500")
	assert.Contains(t, lines[1], "0.866")
}

func TestSweepKeepsSeedOrder(t *testing.T) {
	out, err := execute(t, "sweep", "--seeds", "3", "--seed", "10", "--ticks", "150", "--jobs", "2")
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, lines, 4)
	assert.Contains(t, lines[0], "SEED")
	for i, seed := range []string{"10", "11", "12"} {
		fields := strings.Fields(lines[i+1])
		require.NotEmpty(t, fields)
		assert.Equal(t, seed, fields[0])
		assert.Equal(t, "0", fields[2], "supplied reactors do not explode")
	}
}

func TestSweepRejectsBadFlags(t *testing.T) {
	_, err := execute(t, "sweep", "--seeds", "0")
	assert.Error(t, err)
	_, err = execute(t, "sweep", "--ticks", "1", "--reactors", "500")
	assert.ErrorContains(t, err, "map fits only")
}
