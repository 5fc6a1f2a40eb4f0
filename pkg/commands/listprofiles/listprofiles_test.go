// pkg/commands/listprofiles/listprofiles_test.go
// TEST TYPE: Business Logic Integration
// DEPENDENCIES: Memory FS
// PURPOSE: Test profile preflight listing with hive presence

package listprofiles_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/scourtool/scour/pkg/commands/listprofiles"
	"github.com/scourtool/scour/pkg/config"
	"github.com/scourtool/scour/pkg/errors"
	"github.com/scourtool/scour/pkg/testutil"
)

func fixtureConfig() *config.Config {
	return &config.Config{
		Profiles: config.ProfilesConfig{
			Root:     "/Users",
			Skip:     []string{"Public"},
			HiveFile: "NTUSER.DAT",
		},
	}
}

func TestList_ReportsHivePresence(t *testing.T) {
	fsys := testutil.NewMemoryFS()
	require.NoError(t, fsys.WriteFile("/Users/Alice/NTUSER.DAT", nil, 0644))
	require.NoError(t, fsys.MkdirAll("/Users/Bob", 0755))
	require.NoError(t, fsys.MkdirAll("/Users/Public", 0755))

	infos, err := listprofiles.List(listprofiles.Options{Config: fixtureConfig(), FS: fsys})
	require.NoError(t, err)

	require.Len(t, infos, 2)
	assert.Equal(t, "Alice", infos[0].Name)
	assert.True(t, infos[0].HasHive)
	assert.Equal(t, "Bob", infos[1].Name)
	assert.False(t, infos[1].HasHive)
}

func TestList_MissingRoot(t *testing.T) {
	_, err := listprofiles.List(listprofiles.Options{Config: fixtureConfig(), FS: testutil.NewMemoryFS()})

	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrProfilesRoot))
}
