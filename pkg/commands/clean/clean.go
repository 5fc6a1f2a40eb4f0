// Package clean implements the full cleanup run: packages, machine
// registry keys, every user profile's data paths, shortcuts, and
// offline hive, then the shared shortcut locations. Stages always run
// to completion; a failed target is recorded, never fatal.
package clean

import (
	"os"

	"github.com/scourtool/scour/pkg/config"
	"github.com/scourtool/scour/pkg/filesystem"
	"github.com/scourtool/scour/pkg/hive"
	"github.com/scourtool/scour/pkg/logging"
	"github.com/scourtool/scour/pkg/packages"
	"github.com/scourtool/scour/pkg/profiles"
	"github.com/scourtool/scour/pkg/remove"
	"github.com/scourtool/scour/pkg/shortcuts"
	"github.com/scourtool/scour/pkg/types"
	"github.com/scourtool/scour/pkg/winreg"
)

// Options defines the inputs for a cleanup run. The collaborator fields
// default to the live host implementations when nil; tests inject fakes.
type Options struct {
	// Config carries every target list. Required.
	Config *config.Config
	// FS is the filesystem collaborator.
	FS types.FS
	// Registry is the live-registry collaborator.
	Registry types.Registry
	// Mounter attaches and detaches offline hives.
	Mounter types.HiveMounter
	// Packages is the installed-package inventory collaborator.
	Packages types.PackageManager
	// DryRun probes targets but performs no deletion or uninstall.
	DryRun bool
}

// Run executes the fixed cleanup pipeline and returns the run report.
// The only errors returned are structural (unreadable profiles root);
// everything else is a per-target outcome inside the report.
func Run(opts Options) (*types.RunReport, error) {
	logger := logging.GetLogger("commands.clean")
	cfg := opts.Config

	fsys := opts.FS
	if fsys == nil {
		fsys = filesystem.NewOS()
	}
	reg := opts.Registry
	if reg == nil {
		reg = winreg.New()
	}
	mounter := opts.Mounter
	if mounter == nil {
		mounter = winreg.NewMounter()
	}
	pkgs := opts.Packages
	if pkgs == nil {
		pkgs = packages.NewManager()
	}

	if opts.DryRun {
		logger.Info().Msg("Dry run: nothing will be deleted")
		fsys = &dryFS{FS: fsys}
		reg = &dryRegistry{Registry: reg}
		pkgs = &dryPackages{PackageManager: pkgs}
	}

	report := &types.RunReport{}

	// Stage 1: installed packages. Skipped entirely when no patterns
	// are configured.
	if len(cfg.Packages.Patterns) > 0 {
		logger.Info().Strs("patterns", cfg.Packages.Patterns).Msg("Uninstalling matching packages")
		results, err := packages.UninstallMatching(pkgs, cfg.Packages.Patterns)
		if err != nil {
			report.Warnf("package inventory unavailable: %v", err)
		}
		for _, res := range results {
			report.Add(res)
		}
	}

	// Stage 2: machine-wide registry keys.
	logger.Info().Int("keys", len(cfg.Registry.MachineKeys)).Msg("Cleaning machine registry keys")
	for _, res := range winreg.CleanMachineKeys(reg, cfg.Registry.MachineKeys) {
		report.Add(res)
	}

	// Stage 3: per-profile artifacts. An unreadable profiles root is
	// the one structural failure that aborts the run.
	found, err := profiles.List(fsys, cfg.Profiles.Root, cfg.Profiles.Skip)
	if err != nil {
		return nil, err
	}

	hiveMgr := hive.NewManager(mounter, reg, cfg.Registry.MountPrefix)
	for _, profile := range found {
		cleanProfile(report, fsys, hiveMgr, cfg, profile, opts.DryRun)
	}

	// Stage 4: shared shortcut locations.
	for _, loc := range cfg.Shortcuts.SharedLocations {
		for _, res := range shortcuts.Scan(fsys, loc, cfg.Shortcuts.Patterns) {
			report.Add(res)
		}
	}

	summary := report.Summary()
	logger.Info().
		Int("targets", len(report.Results)).
		Int("failed", report.FailedCount()).
		Int("warnings", len(report.Warnings)).
		Msg("Cleanup run complete")
	for kind, counts := range summary {
		logger.Debug().
			Str("kind", string(kind)).
			Int("removed", counts.Removed).
			Int("notFound", counts.NotFound).
			Int("failed", counts.Failed).
			Msg("Outcome counts")
	}

	return report, nil
}

func cleanProfile(report *types.RunReport, fsys types.FS, hiveMgr *hive.Manager, cfg *config.Config, profile types.UserProfile, dryRun bool) {
	logger := logging.GetLogger("commands.clean")
	logger.Info().Str("profile", profile.Name).Msg("Cleaning profile")

	for _, rel := range cfg.Paths.Data {
		path := profile.Join(rel)
		report.Add(types.TargetResult{
			Kind:    types.KindDataPath,
			Target:  path,
			Profile: profile.Name,
			Outcome: remove.Path(fsys, path),
		})
	}

	for _, rel := range cfg.Shortcuts.ProfileLocations {
		for _, res := range shortcuts.Scan(fsys, profile.Join(rel), cfg.Shortcuts.Patterns) {
			res.Profile = profile.Name
			report.Add(res)
		}
	}

	hivePath := profile.Join(cfg.Profiles.HiveFile)
	if _, err := fsys.Stat(hivePath); err != nil {
		if os.IsNotExist(err) {
			logger.Warn().Str("profile", profile.Name).Str("hive", hivePath).Msg("Profile has no hive file, skipping registry cleanup")
			report.Warnf("profile %s: hive file %s missing, registry cleanup skipped", profile.Name, hivePath)
			return
		}
		report.Warnf("profile %s: cannot stat hive file %s: %v", profile.Name, hivePath, err)
		return
	}

	if dryRun {
		// Mounting mutates host state, so a dry run never attaches.
		logger.Info().Str("profile", profile.Name).Msg("Dry run: skipping hive mount")
		report.Warnf("profile %s: dry run, hive cleanup not attempted", profile.Name)
		return
	}

	for _, res := range hiveMgr.CleanUserHive(hivePath, cfg.Registry.UserSubkeys) {
		res.Profile = profile.Name
		report.Add(res)
	}
}

// dryFS probes but never deletes.
type dryFS struct {
	types.FS
}

func (d *dryFS) Remove(name string) error { return nil }

func (d *dryFS) RemoveAll(path string) error { return nil }

// dryRegistry probes but never deletes.
type dryRegistry struct {
	types.Registry
}

func (d *dryRegistry) DeleteKey(path string) error { return nil }

// dryPackages enumerates but never uninstalls.
type dryPackages struct {
	types.PackageManager
}

func (d *dryPackages) Uninstall(rec types.PackageRecord) (int, error) { return 0, nil }
