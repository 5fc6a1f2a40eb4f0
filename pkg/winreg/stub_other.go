//go:build !windows

package winreg

import (
	"github.com/scourtool/scour/pkg/errors"
	"github.com/scourtool/scour/pkg/types"
)

// The live registry only exists on Windows. The stubs keep the module
// compiling elsewhere; tests substitute fakes from pkg/testutil.

type stubRegistry struct{}

// New returns a registry implementation that rejects every call.
func New() types.Registry {
	return &stubRegistry{}
}

func (r *stubRegistry) KeyExists(path string) (bool, error) {
	return false, errors.New(errors.ErrUnsupported, "registry access requires windows")
}

func (r *stubRegistry) DeleteKey(path string) error {
	return errors.New(errors.ErrUnsupported, "registry access requires windows")
}

type stubMounter struct{}

// NewMounter returns a hive mounter that rejects every call.
func NewMounter() types.HiveMounter {
	return &stubMounter{}
}

func (m *stubMounter) Attach(hiveFile, mountName string) error {
	return errors.New(errors.ErrUnsupported, "hive mounting requires windows")
}

func (m *stubMounter) Detach(mountName string) error {
	return errors.New(errors.ErrUnsupported, "hive mounting requires windows")
}
