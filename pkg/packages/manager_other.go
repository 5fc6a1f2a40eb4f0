//go:build !windows

package packages

import (
	"github.com/scourtool/scour/pkg/errors"
	"github.com/scourtool/scour/pkg/types"
)

type stubManager struct{}

// NewManager returns a package manager that rejects every call; tests
// substitute fakes from pkg/testutil.
func NewManager() types.PackageManager {
	return &stubManager{}
}

func (m *stubManager) List() ([]types.PackageRecord, error) {
	return nil, errors.New(errors.ErrUnsupported, "package inventory requires windows")
}

func (m *stubManager) Uninstall(rec types.PackageRecord) (int, error) {
	return -1, errors.New(errors.ErrUnsupported, "package uninstall requires windows")
}
