// pkg/shortcuts/shortcuts_test.go
// TEST TYPE: Unit Test
// DEPENDENCIES: Memory FS
// PURPOSE: Test pattern matching, deletion ordering, and missing-dir handling

package shortcuts_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/scourtool/scour/pkg/shortcuts"
	"github.com/scourtool/scour/pkg/testutil"
	"github.com/scourtool/scour/pkg/types"
)

func TestScan_MissingBaseDir(t *testing.T) {
	fsys := testutil.NewMemoryFS()
	patterns := []string{"Widget*.lnk", "Widget*.url"}

	results := shortcuts.Scan(fsys, "/Users/alice/Desktop", patterns)

	require.Len(t, results, len(patterns))
	for _, res := range results {
		assert.Equal(t, types.StatusNotFound, res.Outcome.Status)
		assert.Equal(t, types.KindShortcut, res.Kind)
	}
}

func TestScan_DeletesMatchesRecursively(t *testing.T) {
	fsys := testutil.NewMemoryFS()
	require.NoError(t, fsys.WriteFile("/desktop/Widget Editor.lnk", nil, 0644))
	require.NoError(t, fsys.WriteFile("/desktop/tools/Widget Updater.lnk", nil, 0644))
	require.NoError(t, fsys.WriteFile("/desktop/Notepad.lnk", nil, 0644))

	results := shortcuts.Scan(fsys, "/desktop", []string{"Widget*.lnk"})

	require.Len(t, results, 2)
	// Lexical path order
	assert.Equal(t, "/desktop/Widget Editor.lnk", results[0].Target)
	assert.Equal(t, "/desktop/tools/Widget Updater.lnk", results[1].Target)
	for _, res := range results {
		assert.Equal(t, types.StatusRemoved, res.Outcome.Status)
	}
	assert.False(t, fsys.Exists("/desktop/Widget Editor.lnk"))
	assert.False(t, fsys.Exists("/desktop/tools/Widget Updater.lnk"))
	assert.True(t, fsys.Exists("/desktop/Notepad.lnk"), "non-matching files stay")
}

func TestScan_CaseInsensitiveMatch(t *testing.T) {
	fsys := testutil.NewMemoryFS()
	require.NoError(t, fsys.WriteFile("/desktop/WIDGET EDITOR.LNK", nil, 0644))

	results := shortcuts.Scan(fsys, "/desktop", []string{"widget*.lnk"})

	require.Len(t, results, 1)
	assert.Equal(t, types.StatusRemoved, results[0].Outcome.Status)
}

func TestScan_NoMatchesYieldsNotFoundPerPattern(t *testing.T) {
	fsys := testutil.NewMemoryFS()
	require.NoError(t, fsys.WriteFile("/desktop/Notepad.lnk", nil, 0644))

	results := shortcuts.Scan(fsys, "/desktop", []string{"Widget*.lnk"})

	require.Len(t, results, 1)
	assert.Equal(t, types.StatusNotFound, results[0].Outcome.Status)
}

func TestScan_DeletionFailureDoesNotStopSiblings(t *testing.T) {
	fsys := testutil.NewMemoryFS()
	require.NoError(t, fsys.WriteFile("/desktop/Widget A.lnk", nil, 0644))
	require.NoError(t, fsys.WriteFile("/desktop/Widget B.lnk", nil, 0644))
	fsys.InjectError("/desktop/Widget A.lnk", errors.New("access is denied"))

	results := shortcuts.Scan(fsys, "/desktop", []string{"Widget*.lnk"})

	require.Len(t, results, 2)
	assert.Equal(t, types.StatusFailed, results[0].Outcome.Status)
	assert.Equal(t, types.StatusRemoved, results[1].Outcome.Status)
	assert.False(t, fsys.Exists("/desktop/Widget B.lnk"))
}
