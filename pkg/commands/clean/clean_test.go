// pkg/commands/clean/clean_test.go
// TEST TYPE: Business Logic Integration
// DEPENDENCIES: Memory FS, Fake Registry, Fake HiveMounter, Fake PackageManager
// PURPOSE: Test pipeline ordering, stage isolation, and report aggregation

package clean_test

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/scourtool/scour/pkg/commands/clean"
	"github.com/scourtool/scour/pkg/config"
	scourerr "github.com/scourtool/scour/pkg/errors"
	"github.com/scourtool/scour/pkg/testutil"
	"github.com/scourtool/scour/pkg/types"
)

func fixtureConfig() *config.Config {
	return &config.Config{
		Profiles: config.ProfilesConfig{
			Root:     "/Users",
			Skip:     []string{"Default", "Public"},
			HiveFile: "NTUSER.DAT",
		},
		Paths: config.PathsConfig{
			Data: []string{"AppData/Local/Widget", "AppData/Roaming/Widget"},
		},
		Shortcuts: config.ShortcutsConfig{
			Patterns:         []string{"Widget*.lnk"},
			ProfileLocations: []string{"Desktop"},
			SharedLocations:  []string{"/Public/Desktop"},
		},
		Registry: config.RegistryConfig{
			MachineKeys: []string{`HKLM\SOFTWARE\Widget`},
			UserSubkeys: []string{`Software\Widget`},
			MountPrefix: "scour",
		},
		Packages: config.PackagesConfig{
			Patterns: []string{"Widget*"},
		},
	}
}

func fixtureFS(t *testing.T) *testutil.MemoryFS {
	t.Helper()
	fsys := testutil.NewMemoryFS()
	// Alice: data, shortcut, and hive all present.
	require.NoError(t, fsys.MkdirAll("/Users/Alice/AppData/Local/Widget", 0755))
	require.NoError(t, fsys.WriteFile("/Users/Alice/Desktop/Widget Editor.lnk", nil, 0644))
	require.NoError(t, fsys.WriteFile("/Users/Alice/NTUSER.DAT", nil, 0644))
	// Bob: no hive file, only a data folder.
	require.NoError(t, fsys.MkdirAll("/Users/Bob/AppData/Roaming/Widget", 0755))
	// Pseudo-profiles that must be skipped.
	require.NoError(t, fsys.MkdirAll("/Users/Default", 0755))
	require.NoError(t, fsys.MkdirAll("/Users/Public", 0755))
	// Shared shortcut location.
	require.NoError(t, fsys.WriteFile("/Public/Desktop/Widget Editor.lnk", nil, 0644))
	return fsys
}

func kindResults(report *types.RunReport, kind types.TargetKind) []types.TargetResult {
	var out []types.TargetResult
	for _, res := range report.Results {
		if res.Kind == kind {
			out = append(out, res)
		}
	}
	return out
}

func TestRun_FullPipeline(t *testing.T) {
	fsys := fixtureFS(t)
	reg := testutil.NewFakeRegistry(`HKLM\SOFTWARE\Widget`)
	reg.SeedUnderAnyMount(`Software\Widget`)
	mounter := testutil.NewFakeHiveMounter()
	pm := testutil.NewFakePackageManager(
		types.PackageRecord{Name: "Widget Editor 4.2", IdentifyingCode: "{AAAA}"},
		types.PackageRecord{Name: "Notepad++", IdentifyingCode: "{BBBB}"},
	)

	report, err := clean.Run(clean.Options{
		Config:   fixtureConfig(),
		FS:       fsys,
		Registry: reg,
		Mounter:  mounter,
		Packages: pm,
	})
	require.NoError(t, err)

	// Packages: only the matching one.
	pkgResults := kindResults(report, types.KindPackage)
	require.Len(t, pkgResults, 1)
	assert.Equal(t, "Widget Editor 4.2", pkgResults[0].Target)
	assert.Equal(t, types.StatusRemoved, pkgResults[0].Outcome.Status)

	// Machine key removed.
	keyResults := kindResults(report, types.KindMachineKey)
	require.Len(t, keyResults, 1)
	assert.Equal(t, types.StatusRemoved, keyResults[0].Outcome.Status)

	// Data paths: two per profile, mixed outcomes.
	dataResults := kindResults(report, types.KindDataPath)
	require.Len(t, dataResults, 4)
	byProfile := map[string][]types.Outcome{}
	for _, res := range dataResults {
		byProfile[res.Profile] = append(byProfile[res.Profile], res.Outcome)
	}
	assert.Equal(t, types.StatusRemoved, byProfile["Alice"][0].Status)
	assert.Equal(t, types.StatusNotFound, byProfile["Alice"][1].Status)
	assert.Equal(t, types.StatusNotFound, byProfile["Bob"][0].Status)
	assert.Equal(t, types.StatusRemoved, byProfile["Bob"][1].Status)
	assert.False(t, fsys.Exists("/Users/Alice/AppData/Local/Widget"))
	assert.False(t, fsys.Exists("/Users/Bob/AppData/Roaming/Widget"))

	// Alice's hive was cleaned and detached; Bob got a warning instead.
	subkeyResults := kindResults(report, types.KindUserSubkey)
	require.Len(t, subkeyResults, 1)
	assert.Equal(t, "Alice", subkeyResults[0].Profile)
	assert.Equal(t, types.StatusRemoved, subkeyResults[0].Outcome.Status)
	assert.Empty(t, mounter.AttachedMounts(), "no hive may stay mounted")
	require.Len(t, report.Warnings, 1)
	assert.Contains(t, report.Warnings[0], "Bob")
	assert.Contains(t, report.Warnings[0], "missing")

	// Shortcuts: Alice desktop, Bob desktop (absent), shared location.
	shortcutResults := kindResults(report, types.KindShortcut)
	require.Len(t, shortcutResults, 3)
	assert.False(t, fsys.Exists("/Users/Alice/Desktop/Widget Editor.lnk"))
	assert.False(t, fsys.Exists("/Public/Desktop/Widget Editor.lnk"))

	// Summary counts line up with results.
	summary := report.Summary()
	assert.Equal(t, 1, summary[types.KindPackage].Removed)
	assert.Equal(t, 2, summary[types.KindDataPath].Removed)
	assert.Equal(t, 2, summary[types.KindDataPath].NotFound)
	assert.Equal(t, 0, report.FailedCount())
}

func TestRun_MissingProfilesRootIsStructural(t *testing.T) {
	report, err := clean.Run(clean.Options{
		Config:   fixtureConfig(),
		FS:       testutil.NewMemoryFS(),
		Registry: testutil.NewFakeRegistry(),
		Mounter:  testutil.NewFakeHiveMounter(),
		Packages: testutil.NewFakePackageManager(),
	})

	require.Error(t, err)
	assert.Nil(t, report)
	assert.True(t, scourerr.IsErrorCode(err, scourerr.ErrProfilesRoot))
}

func TestRun_FailedTargetDoesNotStopLaterStages(t *testing.T) {
	fsys := fixtureFS(t)
	reg := testutil.NewFakeRegistry(`HKLM\SOFTWARE\Widget`)
	reg.InjectError(`HKLM\SOFTWARE\Widget`, errors.New("access is denied"))
	mounter := testutil.NewFakeHiveMounter()

	report, err := clean.Run(clean.Options{
		Config:   fixtureConfig(),
		FS:       fsys,
		Registry: reg,
		Mounter:  mounter,
		Packages: testutil.NewFakePackageManager(),
	})
	require.NoError(t, err)

	keyResults := kindResults(report, types.KindMachineKey)
	require.Len(t, keyResults, 1)
	assert.Equal(t, types.StatusFailed, keyResults[0].Outcome.Status)

	// Later stages still ran to completion.
	assert.NotEmpty(t, kindResults(report, types.KindDataPath))
	assert.NotEmpty(t, kindResults(report, types.KindShortcut))
	assert.False(t, fsys.Exists("/Users/Alice/AppData/Local/Widget"))
}

func TestRun_PackageEnumerationFailureIsAWarning(t *testing.T) {
	fsys := fixtureFS(t)
	pm := testutil.NewFakePackageManager()
	pm.ListErr = errors.New("inventory unavailable")

	report, err := clean.Run(clean.Options{
		Config:   fixtureConfig(),
		FS:       fsys,
		Registry: testutil.NewFakeRegistry(),
		Mounter:  testutil.NewFakeHiveMounter(),
		Packages: pm,
	})
	require.NoError(t, err)

	assert.Empty(t, kindResults(report, types.KindPackage))
	found := false
	for _, warning := range report.Warnings {
		if strings.Contains(warning, "package inventory") {
			found = true
		}
	}
	assert.True(t, found, "enumeration failure surfaces as a warning")
}

func TestRun_NoPackagePatternsSkipsStage(t *testing.T) {
	fsys := fixtureFS(t)
	cfg := fixtureConfig()
	cfg.Packages.Patterns = nil
	pm := testutil.NewFakePackageManager()
	pm.ListErr = errors.New("must not be called")

	report, err := clean.Run(clean.Options{
		Config:   cfg,
		FS:       fsys,
		Registry: testutil.NewFakeRegistry(),
		Mounter:  testutil.NewFakeHiveMounter(),
		Packages: pm,
	})
	require.NoError(t, err)

	assert.Empty(t, kindResults(report, types.KindPackage))
	for _, warning := range report.Warnings {
		assert.NotContains(t, warning, "package inventory")
	}
}

func TestRun_DryRunDeletesNothing(t *testing.T) {
	fsys := fixtureFS(t)
	reg := testutil.NewFakeRegistry(`HKLM\SOFTWARE\Widget`)
	mounter := testutil.NewFakeHiveMounter()
	pm := testutil.NewFakePackageManager(
		types.PackageRecord{Name: "Widget Editor 4.2", IdentifyingCode: "{AAAA}"},
	)

	report, err := clean.Run(clean.Options{
		Config:   fixtureConfig(),
		FS:       fsys,
		Registry: reg,
		Mounter:  mounter,
		Packages: pm,
		DryRun:   true,
	})
	require.NoError(t, err)

	// Everything still present on the host.
	assert.True(t, fsys.Exists("/Users/Alice/AppData/Local/Widget"))
	assert.True(t, fsys.Exists("/Users/Alice/Desktop/Widget Editor.lnk"))
	assert.True(t, fsys.Exists("/Public/Desktop/Widget Editor.lnk"))
	assert.Contains(t, reg.Keys(), `hklm\software\widget`)
	assert.Empty(t, pm.Uninstalled)

	// Dry run never mounts a hive.
	assert.Empty(t, mounter.Events)
	assert.Empty(t, kindResults(report, types.KindUserSubkey))
}
