//go:build windows

package winreg

import (
	"strings"

	"golang.org/x/sys/windows/registry"

	"github.com/scourtool/scour/pkg/errors"
	"github.com/scourtool/scour/pkg/types"
)

// liveRegistry implements types.Registry against the real Windows
// registry via golang.org/x/sys.
type liveRegistry struct{}

// New returns the live registry implementation.
func New() types.Registry {
	return &liveRegistry{}
}

// splitPath separates the root hive designator from the subkey path.
func splitPath(path string) (registry.Key, string, error) {
	rootName, rest, _ := strings.Cut(path, `\`)
	switch strings.ToUpper(rootName) {
	case "HKLM", "HKEY_LOCAL_MACHINE":
		return registry.LOCAL_MACHINE, rest, nil
	case "HKCU", "HKEY_CURRENT_USER":
		return registry.CURRENT_USER, rest, nil
	case "HKU", "HKEY_USERS":
		return registry.USERS, rest, nil
	case "HKCR", "HKEY_CLASSES_ROOT":
		return registry.CLASSES_ROOT, rest, nil
	default:
		return 0, "", errors.Newf(errors.ErrInvalidInput, "unknown registry root %q", rootName)
	}
}

func (r *liveRegistry) KeyExists(path string) (bool, error) {
	root, sub, err := splitPath(path)
	if err != nil {
		return false, err
	}

	k, err := registry.OpenKey(root, sub, registry.QUERY_VALUE)
	if err != nil {
		if err == registry.ErrNotExist {
			return false, nil
		}
		return false, errors.Wrap(err, errors.ErrAccessDenied, "cannot open registry key").
			WithDetail("key", path)
	}
	defer func() { _ = k.Close() }()
	return true, nil
}

func (r *liveRegistry) DeleteKey(path string) error {
	root, sub, err := splitPath(path)
	if err != nil {
		return err
	}
	return deleteKeyRecursive(root, sub)
}

// deleteKeyRecursive removes a key and all of its subkeys. The registry
// API only deletes empty keys, so children go first.
func deleteKeyRecursive(root registry.Key, sub string) error {
	k, err := registry.OpenKey(root, sub, registry.READ)
	if err != nil {
		return err
	}

	names, err := k.ReadSubKeyNames(-1)
	closeErr := k.Close()
	if err != nil {
		return err
	}
	if closeErr != nil {
		return closeErr
	}

	for _, name := range names {
		if err := deleteKeyRecursive(root, sub+`\`+name); err != nil {
			return err
		}
	}

	return registry.DeleteKey(root, sub)
}
