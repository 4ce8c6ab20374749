package encourage

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writePack(t *testing.T, dir, name, content string) string {
	t.Helper()
	require.NoError(t, os.MkdirAll(dir, 0755))
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestParsePack(t *testing.T) {
	dir := t.TempDir()
	pack := writePack(t, dir, "lines.hl", `plain line
tag*tagged line

  another*with spaces
`)

	lines, err := ParsePack(pack)
	require.NoError(t, err)
	assert.Equal(t, []string{"plain line", "tagged line", "with spaces"}, lines)
}

func TestParsePackMissingFile(t *testing.T) {
	_, err := ParsePack(filepath.Join(t.TempDir(), "nope.hl"))
	assert.Error(t, err)
}

func TestCustomMissingOrCorrupt(t *testing.T) {
	dir := t.TempDir()
	lib := NewLibrary(dir)
	assert.Empty(t, lib.Custom())

	require.NoError(t, os.WriteFile(filepath.Join(dir, CustomFileName), []byte("{oops"), 0644))
	assert.Empty(t, lib.Custom())
}

func TestAddDeduplicates(t *testing.T) {
	lib := NewLibrary(t.TempDir())

	require.NoError(t, lib.Add("keep going"))
	require.NoError(t, lib.Add("keep going"))
	require.NoError(t, lib.Add("  "))

	assert.Equal(t, []string{"keep going"}, lib.Custom())
}

func TestRandomDrawsFromDefaultsAndCustom(t *testing.T) {
	lib := NewLibrary(t.TempDir())
	require.NoError(t, lib.Add("custom line"))

	valid := map[string]struct{}{"custom line": {}}
	for _, line := range lib.Defaults() {
		valid[line] = struct{}{}
	}
	for i := 0; i < 50; i++ {
		_, ok := valid[lib.Random()]
		require.True(t, ok)
	}
}

func TestImportMergesAndDeduplicates(t *testing.T) {
	dir := t.TempDir()
	lib := NewLibrary(dir)
	require.NoError(t, lib.SaveCustom([]string{"existing"}))

	pack := writePack(t, dir, "new.hl", "existing\nfresh one\nfresh two\nfresh one\n")
	added, err := lib.Import(pack)
	require.NoError(t, err)
	assert.Equal(t, 2, added)
	assert.Equal(t, []string{"existing", "fresh one", "fresh two"}, lib.Custom())
}

func TestImportEmptyPackFails(t *testing.T) {
	dir := t.TempDir()
	lib := NewLibrary(dir)

	pack := writePack(t, dir, "empty.hl", "\n\n")
	_, err := lib.Import(pack)
	assert.Error(t, err)
}

func TestListPacks(t *testing.T) {
	dir := t.TempDir()
	lib := NewLibrary(dir)

	names, err := lib.ListPacks()
	require.NoError(t, err)
	assert.Empty(t, names)

	packDir := filepath.Join(dir, PackDirName)
	writePack(t, packDir, "festival.hl", "line\n")
	writePack(t, packDir, "notes.txt", "not a pack\n")

	names, err = lib.ListPacks()
	require.NoError(t, err)
	assert.Equal(t, []string{"festival"}, names)
}

func TestDiscoverCopiesNewPacks(t *testing.T) {
	dataDir := t.TempDir()
	lib := NewLibrary(dataDir)

	searchDir := t.TempDir()
	writePack(t, searchDir, "found.hl", "a line\n")
	// Already installed packs are skipped
	writePack(t, filepath.Join(dataDir, PackDirName), "installed.hl", "old\n")
	writePack(t, searchDir, "installed.hl", "different content\n")

	copied, err := lib.Discover([]string{searchDir, filepath.Join(searchDir, "missing-subdir")})
	require.NoError(t, err)
	assert.Equal(t, 1, copied)

	names, err := lib.ListPacks()
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{"found", "installed"}, names)

	// The installed pack kept its original content
	data, err := os.ReadFile(filepath.Join(dataDir, PackDirName, "installed.hl"))
	require.NoError(t, err)
	assert.Equal(t, "old\n", string(data))
}
