// pkg/profiles/profiles_test.go
// TEST TYPE: Unit Test
// DEPENDENCIES: Memory FS
// PURPOSE: Test profile enumeration and skip-set handling

package profiles_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/scourtool/scour/pkg/errors"
	"github.com/scourtool/scour/pkg/profiles"
	"github.com/scourtool/scour/pkg/testutil"
)

func TestList_SkipsPseudoProfiles(t *testing.T) {
	fsys := testutil.NewMemoryFS()
	for _, name := range []string{"Alice", "Bob", "Default", "Public"} {
		require.NoError(t, fsys.MkdirAll("/Users/"+name, 0755))
	}

	found, err := profiles.List(fsys, "/Users", []string{"Default", "Public"})
	require.NoError(t, err)

	require.Len(t, found, 2)
	assert.Equal(t, "Alice", found[0].Name)
	assert.Equal(t, "/Users/Alice", found[0].Root)
	assert.Equal(t, "Bob", found[1].Name)
	assert.Equal(t, "/Users/Bob", found[1].Root)
}

func TestList_SkipIsCaseInsensitive(t *testing.T) {
	fsys := testutil.NewMemoryFS()
	require.NoError(t, fsys.MkdirAll("/Users/PUBLIC", 0755))
	require.NoError(t, fsys.MkdirAll("/Users/Carol", 0755))

	found, err := profiles.List(fsys, "/Users", []string{"Public"})
	require.NoError(t, err)

	require.Len(t, found, 1)
	assert.Equal(t, "Carol", found[0].Name)
}

func TestList_IgnoresFiles(t *testing.T) {
	fsys := testutil.NewMemoryFS()
	require.NoError(t, fsys.MkdirAll("/Users/Alice", 0755))
	require.NoError(t, fsys.WriteFile("/Users/desktop.ini", nil, 0644))

	found, err := profiles.List(fsys, "/Users", nil)
	require.NoError(t, err)

	require.Len(t, found, 1)
	assert.Equal(t, "Alice", found[0].Name)
}

func TestList_MissingRootIsStructural(t *testing.T) {
	fsys := testutil.NewMemoryFS()

	_, err := profiles.List(fsys, "/Users", nil)

	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrProfilesRoot))
}

func TestList_RootNotADirectory(t *testing.T) {
	fsys := testutil.NewMemoryFS()
	require.NoError(t, fsys.WriteFile("/Users", nil, 0644))

	_, err := profiles.List(fsys, "/Users", nil)

	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrProfilesRoot))
}
