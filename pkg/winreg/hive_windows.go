//go:build windows

package winreg

import (
	"os/exec"
	"strings"

	"github.com/scourtool/scour/pkg/errors"
	"github.com/scourtool/scour/pkg/types"
)

// regMounter attaches offline hive files with reg.exe, which is the
// supported way to reach RegLoadKey without direct syscalls. Both calls
// are synchronous; stderr is folded into the returned error so attach
// failures (profile logged in, corrupt hive) are diagnosable.
type regMounter struct{}

// NewMounter returns the reg.exe-backed hive mounter.
func NewMounter() types.HiveMounter {
	return &regMounter{}
}

func (m *regMounter) Attach(hiveFile, mountName string) error {
	out, err := exec.Command("reg.exe", "load", `HKU\`+mountName, hiveFile).CombinedOutput()
	if err != nil {
		return errors.Wrapf(err, errors.ErrHiveAttach, "reg load failed: %s", strings.TrimSpace(string(out))).
			WithDetail("hive", hiveFile).
			WithDetail("mount", mountName)
	}
	return nil
}

func (m *regMounter) Detach(mountName string) error {
	out, err := exec.Command("reg.exe", "unload", `HKU\`+mountName).CombinedOutput()
	if err != nil {
		return errors.Wrapf(err, errors.ErrHiveDetach, "reg unload failed: %s", strings.TrimSpace(string(out))).
			WithDetail("mount", mountName)
	}
	return nil
}
