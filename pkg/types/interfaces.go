package types

import "io/fs"

// FS is the filesystem surface scour needs. It is deliberately small:
// components probe and delete, nothing else. filesystem.NewOS provides
// the real implementation; testutil.MemoryFS the in-memory one.
type FS interface {
	Stat(name string) (fs.FileInfo, error)
	ReadDir(name string) ([]fs.DirEntry, error)
	Remove(name string) error
	RemoveAll(path string) error
}

// Registry is the live registry surface. Key paths are fully rooted
// strings using backslash separators, e.g. `HKLM\SOFTWARE\Widget` or
// `HKU\scour-<uuid>\Software\Widget` for a mounted hive.
type Registry interface {
	// KeyExists probes a key without modifying it.
	KeyExists(path string) (bool, error)
	// DeleteKey removes a key and everything under it. Deleting a key
	// that does not exist is an error; callers probe first.
	DeleteKey(path string) error
}

// HiveMounter attaches an offline registry hive file at a temporary
// name under HKEY_USERS and detaches it again. Both calls are
// synchronous and return structured errors rather than ignored exit
// codes, so detach-on-all-paths can be verified in tests.
type HiveMounter interface {
	Attach(hiveFile, mountName string) error
	Detach(mountName string) error
}

// PackageRecord is one entry of the installed-package inventory.
// IdentifyingCode is whatever the host package system needs to address
// the package for uninstall (an MSI product code on Windows).
type PackageRecord struct {
	Name            string
	IdentifyingCode string
}

// PackageManager enumerates installed packages and uninstalls them.
type PackageManager interface {
	// List returns the installed-package inventory. A total enumeration
	// failure is returned as an error; callers degrade to an empty set.
	List() ([]PackageRecord, error)
	// Uninstall invokes the package's uninstall action and returns its
	// exit code. A non-nil error means the action could not be invoked
	// at all.
	Uninstall(rec PackageRecord) (int, error)
}
