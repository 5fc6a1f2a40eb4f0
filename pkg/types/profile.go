package types

import "path/filepath"

// UserProfile is one candidate user directory under the profiles root.
// Immutable; scoped to a single run.
type UserProfile struct {
	Name string
	Root string
}

// Join resolves a relative path under the profile's root directory.
func (p UserProfile) Join(rel string) string {
	return filepath.Join(p.Root, filepath.FromSlash(rel))
}
