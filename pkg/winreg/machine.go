// Package winreg cleans registry state. The platform-neutral entry
// points operate on types.Registry and types.HiveMounter; the Windows
// implementations live behind build tags so the rest of the module
// builds and tests everywhere.
package winreg

import (
	"github.com/scourtool/scour/pkg/logging"
	"github.com/scourtool/scour/pkg/types"
)

// CleanMachineKeys deletes each machine-scope key in keys. Keys that do
// not exist are NotFound; a permission failure on one key is reported
// as Failed and never stops the remaining keys.
func CleanMachineKeys(reg types.Registry, keys []string) []types.TargetResult {
	logger := logging.GetLogger("winreg")
	results := make([]types.TargetResult, 0, len(keys))

	for _, key := range keys {
		results = append(results, types.TargetResult{
			Kind:    types.KindMachineKey,
			Target:  key,
			Outcome: DeleteKey(reg, key),
		})
	}

	logger.Info().Int("count", len(keys)).Msg("Machine registry cleanup complete")
	return results
}

// DeleteKey probes and recursively deletes a single registry key,
// converting errors to outcomes at this boundary.
func DeleteKey(reg types.Registry, key string) types.Outcome {
	logger := logging.GetLogger("winreg")

	exists, err := reg.KeyExists(key)
	if err != nil {
		logger.Warn().Err(err).Str("key", key).Msg("Failed to probe registry key")
		return types.Failed(err)
	}
	if !exists {
		logger.Debug().Str("key", key).Msg("Registry key not present")
		return types.NotFound()
	}

	if err := reg.DeleteKey(key); err != nil {
		logger.Warn().Err(err).Str("key", key).Msg("Failed to delete registry key")
		return types.Failed(err)
	}

	logger.Info().Str("key", key).Msg("Removed registry key")
	return types.Removed()
}
