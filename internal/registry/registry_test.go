package registry

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"baiyun/piggyvault/internal/bankerror"
	"baiyun/piggyvault/internal/models"
	"baiyun/piggyvault/internal/store"
)

func newTestRegistry(t *testing.T) (*AccountRegistry, *store.AccountStore) {
	t.Helper()
	st := store.NewAccountStore(t.TempDir(), store.DefaultMaxBackups)
	return NewAccountRegistry(st), st
}

func TestCreateAndList(t *testing.T) {
	reg, st := newTestRegistry(t)

	name, err := reg.Create("savings")
	require.NoError(t, err)
	assert.Equal(t, "savings", name)

	// A fresh empty record is on disk
	assert.True(t, models.NewAccountRecord().Equal(st.Load("savings")))

	names, err := reg.List()
	require.NoError(t, err)
	assert.Equal(t, []string{"savings"}, names)
	assert.True(t, reg.Exists("savings"))
}

func TestCreateInvalidNames(t *testing.T) {
	reg, _ := newTestRegistry(t)

	for _, name := range []string{"", "a/b", `a\b`, "a*b", "a?b", "a:b", `a"b`, "a<b", "a>b", "a|b"} {
		_, err := reg.Create(name)
		var invalid *bankerror.InvalidNameError
		assert.True(t, errors.As(err, &invalid), "name %q", name)
	}
}

func TestCreateDuplicate(t *testing.T) {
	reg, _ := newTestRegistry(t)

	_, err := reg.Create("savings")
	require.NoError(t, err)

	_, err = reg.Create("savings")
	var exists *bankerror.AlreadyExistsError
	require.True(t, errors.As(err, &exists))
}

func TestListIgnoresDirectoriesWithoutRecord(t *testing.T) {
	reg, st := newTestRegistry(t)

	_, err := reg.Create("real")
	require.NoError(t, err)
	// A stray directory without data.json is not an account
	require.NoError(t, os.MkdirAll(filepath.Join(st.Root(), "stray"), 0755))
	// Neither is a stray file
	require.NoError(t, os.WriteFile(filepath.Join(st.Root(), "notes.txt"), []byte("x"), 0644))

	names, err := reg.List()
	require.NoError(t, err)
	assert.Equal(t, []string{"real"}, names)
	assert.False(t, reg.Exists("stray"))
}

func TestListEmptyRoot(t *testing.T) {
	reg, _ := newTestRegistry(t)
	names, err := reg.List()
	require.NoError(t, err)
	assert.Empty(t, names)
}

func TestDelete(t *testing.T) {
	reg, st := newTestRegistry(t)

	_, err := reg.Create("doomed")
	require.NoError(t, err)
	require.NoError(t, st.Save("doomed", models.NewAccountRecord()))

	require.NoError(t, reg.Delete("doomed"))
	assert.False(t, reg.Exists("doomed"))
	// Backups are gone with the directory
	_, err = os.Stat(st.AccountDir("doomed"))
	assert.True(t, os.IsNotExist(err))
}

func TestDeleteNotFound(t *testing.T) {
	reg, _ := newTestRegistry(t)

	err := reg.Delete("missing")
	var notFound *bankerror.NotFoundError
	require.True(t, errors.As(err, &notFound))
}
