// Package packages uninstalls installed packages whose names match
// configured glob patterns. Enumeration and uninstall go through the
// types.PackageManager collaborator; the Windows implementation reads
// the registry uninstall inventory and invokes msiexec.
package packages

import (
	"path/filepath"
	"strings"

	"github.com/rs/zerolog"

	"github.com/scourtool/scour/pkg/logging"
	"github.com/scourtool/scour/pkg/types"
)

// UninstallMatching enumerates the installed-package inventory, filters
// it by name glob (a package matches when any pattern matches,
// case-insensitively), and uninstalls each match. A zero exit code is
// Removed, a non-zero code or invocation error is Failed; one package's
// failure never stops the rest. When enumeration itself fails the
// result set is empty and the error is returned so the caller can
// record it as a run warning.
func UninstallMatching(pm types.PackageManager, patterns []string) ([]types.TargetResult, error) {
	logger := logging.GetLogger("packages")

	inventory, err := pm.List()
	if err != nil {
		logger.Warn().Err(err).Msg("Failed to enumerate installed packages")
		return nil, err
	}
	logger.Debug().Int("count", len(inventory)).Msg("Enumerated installed packages")

	var results []types.TargetResult
	for _, rec := range inventory {
		if !matchesAny(rec.Name, patterns) {
			continue
		}
		results = append(results, types.TargetResult{
			Kind:    types.KindPackage,
			Target:  rec.Name,
			Outcome: uninstall(pm, rec, logger),
		})
	}

	logger.Info().Int("matched", len(results)).Msg("Package uninstall stage complete")
	return results, nil
}

func uninstall(pm types.PackageManager, rec types.PackageRecord, logger zerolog.Logger) types.Outcome {
	code, err := pm.Uninstall(rec)
	if err != nil {
		logger.Warn().Err(err).Str("package", rec.Name).Msg("Uninstall invocation failed")
		return types.Failed(err)
	}
	if code != 0 {
		logger.Warn().Int("exitCode", code).Str("package", rec.Name).Msg("Uninstall returned non-zero")
		return types.Failedf("uninstall exited with code %d", code)
	}
	logger.Info().Str("package", rec.Name).Str("code", rec.IdentifyingCode).Msg("Uninstalled package")
	return types.Removed()
}

func matchesAny(name string, patterns []string) bool {
	for _, pattern := range patterns {
		if ok, err := filepath.Match(strings.ToLower(pattern), strings.ToLower(name)); err == nil && ok {
			return true
		}
	}
	return false
}
