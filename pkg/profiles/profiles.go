// Package profiles enumerates candidate user profiles under the
// profiles root, excluding well-known non-user pseudo-profiles such as
// Default and Public.
package profiles

import (
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/scourtool/scour/pkg/errors"
	"github.com/scourtool/scour/pkg/logging"
	"github.com/scourtool/scour/pkg/types"
)

// List returns the immediate subdirectories of root that are not in the
// skip set, sorted by name. Skip matching is case-insensitive since the
// host filesystem is. An unreadable root is the one structural failure
// that aborts a whole run, so it is returned as an error rather than
// converted to an outcome.
func List(fsys types.FS, root string, skip []string) ([]types.UserProfile, error) {
	logger := logging.GetLogger("profiles")

	info, err := fsys.Stat(root)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.Wrap(err, errors.ErrProfilesRoot, "profiles root does not exist").
				WithDetail("path", root)
		}
		return nil, errors.Wrap(err, errors.ErrProfilesRoot, "cannot access profiles root").
			WithDetail("path", root)
	}
	if !info.IsDir() {
		return nil, errors.New(errors.ErrProfilesRoot, "profiles root is not a directory").
			WithDetail("path", root)
	}

	entries, err := fsys.ReadDir(root)
	if err != nil {
		return nil, errors.Wrap(err, errors.ErrProfilesRoot, "cannot read profiles root").
			WithDetail("path", root)
	}

	skipSet := make(map[string]struct{}, len(skip))
	for _, name := range skip {
		skipSet[strings.ToLower(name)] = struct{}{}
	}

	var found []types.UserProfile
	for _, entry := range entries {
		if !entry.IsDir() {
			continue
		}
		name := entry.Name()
		if _, skipped := skipSet[strings.ToLower(name)]; skipped {
			logger.Trace().Str("name", name).Msg("Skipping pseudo-profile")
			continue
		}
		found = append(found, types.UserProfile{
			Name: name,
			Root: filepath.Join(root, name),
		})
	}

	sort.Slice(found, func(i, j int) bool { return found[i].Name < found[j].Name })

	logger.Info().Int("count", len(found)).Str("root", root).Msg("Enumerated user profiles")
	return found, nil
}
