package settings

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadMissingFileYieldsDefaults(t *testing.T) {
	s := NewStore(t.TempDir())
	assert.Equal(t, Defaults(), s.Load())
}

func TestLoadCorruptFileYieldsDefaults(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, FileName), []byte("{oops"), 0644))

	s := NewStore(dir)
	assert.Equal(t, Defaults(), s.Load())
}

func TestLoadMergesMissingKeys(t *testing.T) {
	dir := t.TempDir()
	doc := `{"auto_open_last_bank": false, "zoom_factor": 2.0}`
	require.NoError(t, os.WriteFile(filepath.Join(dir, FileName), []byte(doc), 0644))

	s := NewStore(dir)
	gs := s.Load()
	assert.False(t, gs.AutoOpenLastBank)
	assert.Equal(t, 2.0, gs.ZoomFactor)
	// Absent keys fall back to defaults
	assert.Equal(t, Defaults().BaseFontSize, gs.BaseFontSize)
	assert.Equal(t, Defaults().HistoryTimeFormat, gs.HistoryTimeFormat)
}

func TestSaveLoadRoundTrip(t *testing.T) {
	s := NewStore(t.TempDir())

	gs := Defaults()
	gs.LastOpenedBank = "savings"
	gs.BaseFontSize = 14
	require.NoError(t, s.Save(gs))

	assert.Equal(t, gs, s.Load())
}

func TestSaveWritesNullForNoLastOpened(t *testing.T) {
	s := NewStore(t.TempDir())
	require.NoError(t, s.Save(Defaults()))

	data, err := os.ReadFile(s.Path())
	require.NoError(t, err)
	assert.Contains(t, string(data), `"last_opened_bank": null`)
}

func TestSetLastOpened(t *testing.T) {
	s := NewStore(t.TempDir())
	require.NoError(t, s.SetLastOpened("holiday"))
	assert.Equal(t, "holiday", s.Load().LastOpenedBank)
}

func TestClearLastOpenedIf(t *testing.T) {
	s := NewStore(t.TempDir())
	require.NoError(t, s.SetLastOpened("holiday"))

	// A different name is left alone
	require.NoError(t, s.ClearLastOpenedIf("other"))
	assert.Equal(t, "holiday", s.Load().LastOpenedBank)

	// The matching name is cleared
	require.NoError(t, s.ClearLastOpenedIf("holiday"))
	assert.Equal(t, "", s.Load().LastOpenedBank)
}
