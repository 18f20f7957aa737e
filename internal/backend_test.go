package internal

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/markusressel/plant2go/internal/persistence"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRunDaemon_CycleLimit(t *testing.T) {
	// GIVEN
	dir := t.TempDir()
	config := createFixedConfig(2.0, 7.0)
	config.Cycles = 2
	config.DbPath = filepath.Join(dir, "db", "plant2go.db")
	config.Log.Path = filepath.Join(dir, "events.log")
	registry := prometheus.NewRegistry()

	// WHEN
	err := runDaemon(config, registry, registry)

	// THEN
	require.NoError(t, err)

	exported, err := os.ReadFile(config.Log.Path)
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSpace(string(exported)), "\n")
	assert.Contains(t, lines[len(lines)-1], "System stopped")
	assert.Equal(t, 2, strings.Count(string(exported), "Sensor pressure (Pressure) out of range"))

	stored, err := persistence.NewPersistence(config.DbPath).LoadEvents(context.Background())
	require.NoError(t, err)
	assert.Len(t, stored, len(lines))
}

func TestRunDaemon_Statistics(t *testing.T) {
	// GIVEN
	dir := t.TempDir()
	config := createFixedConfig(2.0, 3.0)
	config.Cycles = 1
	config.DbPath = filepath.Join(dir, "plant2go.db")
	config.Statistics.Enabled = true
	config.Statistics.Port = 19000
	registry := prometheus.NewRegistry()

	// WHEN
	err := runDaemon(config, registry, registry)

	// THEN
	require.NoError(t, err)
	count, err := testutil.GatherAndCount(registry, "plant2go_supervisor_cycles_total")
	require.NoError(t, err)
	assert.Equal(t, 1, count)
}

func TestRunDaemon_InvalidDbPath(t *testing.T) {
	// GIVEN
	dir := t.TempDir()
	blocker := filepath.Join(dir, "file")
	require.NoError(t, os.WriteFile(blocker, []byte{}, 0644))
	config := createFixedConfig(2.0, 3.0)
	config.Cycles = 1
	config.DbPath = filepath.Join(blocker, "db", "plant2go.db")

	// WHEN
	err := runDaemon(config, prometheus.NewRegistry(), prometheus.NewRegistry())

	// THEN
	assert.Error(t, err)
}
