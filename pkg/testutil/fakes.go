package testutil

import (
	"sort"
	"strings"

	"github.com/scourtool/scour/pkg/types"
)

// FakeRegistry implements types.Registry over an in-memory key set.
// Key paths are the same fully rooted strings the live registry takes.
type FakeRegistry struct {
	keys      map[string]struct{}
	errorKeys map[string]error
	// InjectAllErr, when set, makes every probe and delete fail.
	InjectAllErr error
	Deleted      []string
	// wildcardSubkeys are relative subkeys that exist under any
	// HKU\<mount> prefix, for hive tests that cannot predict the
	// generated mount name.
	wildcardSubkeys map[string]struct{}
	normalizer      func(string) string
}

// NewFakeRegistry returns a FakeRegistry pre-populated with keys.
func NewFakeRegistry(keys ...string) *FakeRegistry {
	r := &FakeRegistry{
		keys:            make(map[string]struct{}),
		errorKeys:       make(map[string]error),
		wildcardSubkeys: make(map[string]struct{}),
		normalizer: func(k string) string {
			return strings.ToLower(k)
		},
	}
	for _, k := range keys {
		r.AddKey(k)
	}
	return r
}

// AddKey marks a key (and implicitly its subtree root) as existing.
func (r *FakeRegistry) AddKey(key string) {
	r.keys[r.normalizer(key)] = struct{}{}
}

// InjectError makes both probe and delete fail for a key.
func (r *FakeRegistry) InjectError(key string, err error) {
	r.errorKeys[r.normalizer(key)] = err
}

// SeedUnderAnyMount marks relative subkeys as existing under every
// HKU\<mount> prefix, so hive tests do not need to know the generated
// mount name.
func (r *FakeRegistry) SeedUnderAnyMount(subkeys ...string) {
	for _, subkey := range subkeys {
		r.wildcardSubkeys[r.normalizer(subkey)] = struct{}{}
	}
}

// mountTail strips an HKU\<mount>\ prefix, returning the relative
// subkey and true when path points under a mounted hive.
func (r *FakeRegistry) mountTail(path string) (string, bool) {
	key := r.normalizer(path)
	if !strings.HasPrefix(key, `hku\`) {
		return "", false
	}
	rest := strings.TrimPrefix(key, `hku\`)
	_, tail, found := strings.Cut(rest, `\`)
	if !found {
		return "", false
	}
	return tail, true
}

// Keys returns the remaining keys, sorted. Assertion helper.
func (r *FakeRegistry) Keys() []string {
	var out []string
	for k := range r.keys {
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}

func (r *FakeRegistry) KeyExists(path string) (bool, error) {
	key := r.normalizer(path)
	if r.InjectAllErr != nil {
		return false, r.InjectAllErr
	}
	if err, ok := r.errorKeys[key]; ok {
		return false, err
	}
	if tail, ok := r.mountTail(path); ok {
		if _, seeded := r.wildcardSubkeys[tail]; seeded {
			return true, nil
		}
	}
	_, ok := r.keys[key]
	return ok, nil
}

func (r *FakeRegistry) DeleteKey(path string) error {
	key := r.normalizer(path)
	if r.InjectAllErr != nil {
		return r.InjectAllErr
	}
	if err, ok := r.errorKeys[key]; ok {
		return err
	}
	if tail, ok := r.mountTail(path); ok {
		if _, seeded := r.wildcardSubkeys[tail]; seeded {
			delete(r.wildcardSubkeys, tail)
			r.Deleted = append(r.Deleted, path)
			return nil
		}
	}
	if _, ok := r.keys[key]; !ok {
		return &keyNotExistError{path: path}
	}
	// Recursive: the subtree goes with the key.
	for existing := range r.keys {
		if existing == key || strings.HasPrefix(existing, key+`\`) {
			delete(r.keys, existing)
		}
	}
	r.Deleted = append(r.Deleted, path)
	return nil
}

type keyNotExistError struct{ path string }

func (e *keyNotExistError) Error() string {
	return "registry key does not exist: " + e.path
}

// MountEvent records one Attach or Detach call on the FakeHiveMounter.
type MountEvent struct {
	Op        string // "attach" or "detach"
	HiveFile  string // empty for detach
	MountName string
}

// FakeHiveMounter implements types.HiveMounter and records every call,
// so tests can assert the attach/detach pairing and name uniqueness.
type FakeHiveMounter struct {
	AttachErr error
	DetachErr error

	Events   []MountEvent
	attached map[string]bool
}

func NewFakeHiveMounter() *FakeHiveMounter {
	return &FakeHiveMounter{attached: make(map[string]bool)}
}

func (m *FakeHiveMounter) Attach(hiveFile, mountName string) error {
	if m.AttachErr != nil {
		return m.AttachErr
	}
	m.Events = append(m.Events, MountEvent{Op: "attach", HiveFile: hiveFile, MountName: mountName})
	m.attached[mountName] = true
	return nil
}

func (m *FakeHiveMounter) Detach(mountName string) error {
	m.Events = append(m.Events, MountEvent{Op: "detach", MountName: mountName})
	if m.DetachErr != nil {
		return m.DetachErr
	}
	delete(m.attached, mountName)
	return nil
}

// AttachedMounts returns the mount names still attached. Empty after a
// correct run.
func (m *FakeHiveMounter) AttachedMounts() []string {
	var out []string
	for name, on := range m.attached {
		if on {
			out = append(out, name)
		}
	}
	sort.Strings(out)
	return out
}

// AttachNames returns every mount name ever attached, in order.
func (m *FakeHiveMounter) AttachNames() []string {
	var out []string
	for _, ev := range m.Events {
		if ev.Op == "attach" {
			out = append(out, ev.MountName)
		}
	}
	return out
}

// FakePackageManager implements types.PackageManager over a fixed
// inventory. ExitCodes maps identifying code to the uninstall exit
// code; InvokeErrs maps identifying code to an invocation error.
type FakePackageManager struct {
	Inventory  []types.PackageRecord
	ListErr    error
	ExitCodes  map[string]int
	InvokeErrs map[string]error

	Uninstalled []string
}

func NewFakePackageManager(inventory ...types.PackageRecord) *FakePackageManager {
	return &FakePackageManager{
		Inventory:  inventory,
		ExitCodes:  make(map[string]int),
		InvokeErrs: make(map[string]error),
	}
}

func (m *FakePackageManager) List() ([]types.PackageRecord, error) {
	if m.ListErr != nil {
		return nil, m.ListErr
	}
	return m.Inventory, nil
}

func (m *FakePackageManager) Uninstall(rec types.PackageRecord) (int, error) {
	if err, ok := m.InvokeErrs[rec.IdentifyingCode]; ok {
		return -1, err
	}
	m.Uninstalled = append(m.Uninstalled, rec.IdentifyingCode)
	return m.ExitCodes[rec.IdentifyingCode], nil
}
