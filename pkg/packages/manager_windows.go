//go:build windows

package packages

import (
	"os"
	"os/exec"
	"path/filepath"
	"strings"

	"golang.org/x/sys/windows/registry"

	"github.com/scourtool/scour/pkg/errors"
	"github.com/scourtool/scour/pkg/types"
)

// uninstallRoots are the registry locations that together hold the
// machine's installed-application inventory (64-bit, 32-bit on 64-bit).
var uninstallRoots = []string{
	`SOFTWARE\Microsoft\Windows\CurrentVersion\Uninstall`,
	`SOFTWARE\WOW6432Node\Microsoft\Windows\CurrentVersion\Uninstall`,
}

// msiManager implements types.PackageManager against the Windows
// uninstall inventory and msiexec.
type msiManager struct{}

// NewManager returns the live Windows package manager.
func NewManager() types.PackageManager {
	return &msiManager{}
}

func (m *msiManager) List() ([]types.PackageRecord, error) {
	var records []types.PackageRecord
	var lastErr error
	opened := 0

	for _, root := range uninstallRoots {
		k, err := registry.OpenKey(registry.LOCAL_MACHINE, root, registry.READ)
		if err != nil {
			lastErr = err
			continue
		}
		opened++

		names, err := k.ReadSubKeyNames(-1)
		if err != nil {
			lastErr = err
			_ = k.Close()
			continue
		}

		for _, name := range names {
			sub, err := registry.OpenKey(registry.LOCAL_MACHINE, root+`\`+name, registry.QUERY_VALUE)
			if err != nil {
				continue
			}
			display, _, err := sub.GetStringValue("DisplayName")
			_ = sub.Close()
			if err != nil || display == "" {
				continue
			}
			records = append(records, types.PackageRecord{
				Name: display,
				// The subkey name is the MSI product code for
				// msiexec-managed packages.
				IdentifyingCode: name,
			})
		}
		_ = k.Close()
	}

	if opened == 0 {
		return nil, errors.Wrap(lastErr, errors.ErrInvocation, "cannot read uninstall inventory")
	}
	return records, nil
}

func (m *msiManager) Uninstall(rec types.PackageRecord) (int, error) {
	msiexec := filepath.Join(os.Getenv("WINDIR"), "system32", "msiexec.exe")
	cmd := exec.Command(msiexec, "/x", rec.IdentifyingCode, "/qn", "/norestart")
	out, err := cmd.CombinedOutput()
	if err != nil {
		if exitErr, ok := err.(*exec.ExitError); ok {
			return exitErr.ExitCode(), nil
		}
		return -1, errors.Wrapf(err, errors.ErrInvocation, "msiexec failed: %s", strings.TrimSpace(string(out))).
			WithDetail("package", rec.Name)
	}
	return 0, nil
}
