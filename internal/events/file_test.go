package events

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFileSink_Overwrite(t *testing.T) {
	// GIVEN
	path := filepath.Join(t.TempDir(), "plant2go.log")
	l := NewLog(WithClock(fixedClock(time.Date(2026, 10, 17, 8, 0, 0, 0, time.UTC))))
	l.Record("System started")
	l.Record("Pump adjusted")
	sink := NewFileSink(path, FileModeOverwrite)
	require.NoError(t, l.Export(context.Background(), sink))

	// WHEN
	err := l.Export(context.Background(), sink)

	// THEN
	assert.NoError(t, err)
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t,
		"[2026-10-17 08:00:00.000] System started\n"+
			"[2026-10-17 08:00:01.000] Pump adjusted\n",
		string(data))
}

func TestFileSink_Append(t *testing.T) {
	// GIVEN
	path := filepath.Join(t.TempDir(), "plant2go.log")
	l := NewLog(WithClock(fixedClock(time.Date(2026, 10, 17, 8, 0, 0, 0, time.UTC))))
	sink := NewFileSink(path, FileModeAppend)
	l.Record("System started")
	require.NoError(t, l.Flush(context.Background(), sink))

	// WHEN
	l.Record("System stopped")
	err := l.Flush(context.Background(), sink)

	// THEN
	assert.NoError(t, err)
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t,
		"[2026-10-17 08:00:00.000] System started\n"+
			"[2026-10-17 08:00:01.000] System stopped\n",
		string(data))
}

func TestFileSink_Overwrite_FlushKeepsEarlierRecords(t *testing.T) {
	// GIVEN
	path := filepath.Join(t.TempDir(), "plant2go.log")
	l := NewLog(WithClock(fixedClock(time.Date(2026, 10, 17, 8, 0, 0, 0, time.UTC))))
	sink := NewFileSink(path, FileModeOverwrite)
	l.Record("System started")
	l.Record("Pump adjusted")
	require.NoError(t, l.Flush(context.Background(), sink))

	// WHEN
	l.Record("System stopped")
	err := l.Flush(context.Background(), sink)

	// THEN
	assert.NoError(t, err)
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t,
		"[2026-10-17 08:00:00.000] System started\n"+
			"[2026-10-17 08:00:01.000] Pump adjusted\n"+
			"[2026-10-17 08:00:02.000] System stopped\n",
		string(data))
}

func TestFileSink_Replaces(t *testing.T) {
	assert.True(t, NewFileSink("a", FileModeOverwrite).Replaces())
	assert.True(t, NewFileSink("a", "").Replaces())
	assert.False(t, NewFileSink("a", FileModeAppend).Replaces())
}

func TestFileSink_Unreachable(t *testing.T) {
	// GIVEN
	dir := t.TempDir()
	blocker := filepath.Join(dir, "blocker")
	require.NoError(t, os.WriteFile(blocker, []byte("x"), 0644))
	l := NewLog()
	l.Record("System started")
	sink := NewFileSink(filepath.Join(blocker, "plant2go.log"), FileModeOverwrite)

	// WHEN
	err := l.Export(context.Background(), sink)

	// THEN
	assert.ErrorIs(t, err, ErrSinkUnavailable)
}

func TestFileSink_UnsupportedMode(t *testing.T) {
	// GIVEN
	sink := NewFileSink(filepath.Join(t.TempDir(), "plant2go.log"), FileMode("rotate"))

	// WHEN
	err := sink.Write(context.Background(), []Record{{Message: "x"}})

	// THEN
	assert.Error(t, err)
}
