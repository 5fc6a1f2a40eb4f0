// Package hive cleans per-user registry state for users who are not
// logged in, by mounting their offline hive file under a temporary name
// beneath HKEY_USERS, deleting the configured subkeys, and unmounting.
//
// The one invariant this package exists to enforce: a hive that was
// successfully attached is always detached before CleanUserHive
// returns, on every exit path. A leaked mount blocks all future hive
// operations on that profile and can only be recovered manually.
package hive

import (
	"github.com/google/uuid"

	"github.com/scourtool/scour/pkg/logging"
	"github.com/scourtool/scour/pkg/types"
	"github.com/scourtool/scour/pkg/winreg"
)

// Manager mounts hives and deletes subkeys through injected host
// collaborators, so the mount/detach pairing is verifiable in tests.
type Manager struct {
	mounter types.HiveMounter
	reg     types.Registry
	prefix  string
}

// NewManager returns a Manager using the given collaborators. prefix
// namespaces this tool's mount names under HKEY_USERS.
func NewManager(mounter types.HiveMounter, reg types.Registry, prefix string) *Manager {
	return &Manager{mounter: mounter, reg: reg, prefix: prefix}
}

// mountName generates a fresh mount namespace name. The random v4 UUID
// suffix makes collisions within a process lifetime negligible, and
// stays collision-free if runs are ever parallelized across profiles.
func (m *Manager) mountName() string {
	return m.prefix + "-" + uuid.NewString()
}

// CleanUserHive attaches the hive file, deletes each subkey (relative
// to the hive root) from it, and detaches. When the attach itself fails
// (locked or corrupt hive, user still logged in) every subkey reports
// Failed with the attach reason and no detach is attempted, since
// nothing was mounted. Subkey failures never skip the detach.
func (m *Manager) CleanUserHive(hiveFile string, subkeys []string) []types.TargetResult {
	logger := logging.GetLogger("hive")
	name := m.mountName()

	if err := m.mounter.Attach(hiveFile, name); err != nil {
		logger.Warn().Err(err).Str("hive", hiveFile).Str("mount", name).Msg("Failed to attach hive")
		results := make([]types.TargetResult, 0, len(subkeys))
		for _, subkey := range subkeys {
			results = append(results, types.TargetResult{
				Kind:    types.KindUserSubkey,
				Target:  subkey,
				Outcome: types.Failedf("hive attach failed: %v", err),
			})
		}
		return results
	}
	logger.Debug().Str("hive", hiveFile).Str("mount", name).Msg("Attached hive")

	// Detach must run no matter how subkey deletion goes. A detach
	// failure is logged but does not alter the collected outcomes.
	defer func() {
		if err := m.mounter.Detach(name); err != nil {
			logger.Error().Err(err).Str("mount", name).Msg("Failed to detach hive")
			return
		}
		logger.Debug().Str("mount", name).Msg("Detached hive")
	}()

	results := make([]types.TargetResult, 0, len(subkeys))
	for _, subkey := range subkeys {
		path := `HKU\` + name + `\` + subkey
		results = append(results, types.TargetResult{
			Kind:    types.KindUserSubkey,
			Target:  subkey,
			Outcome: winreg.DeleteKey(m.reg, path),
		})
	}

	return results
}
