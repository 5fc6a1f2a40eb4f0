// Package listprofiles backs the `scour profiles` preflight command:
// it shows which profiles a cleanup run would touch and whether each
// has an offline hive to clean.
package listprofiles

import (
	"github.com/scourtool/scour/pkg/config"
	"github.com/scourtool/scour/pkg/filesystem"
	"github.com/scourtool/scour/pkg/logging"
	"github.com/scourtool/scour/pkg/profiles"
	"github.com/scourtool/scour/pkg/types"
)

// Options defines the inputs for the profiles listing.
type Options struct {
	Config *config.Config
	FS     types.FS
}

// ProfileInfo is one enumerated profile plus hive presence.
type ProfileInfo struct {
	types.UserProfile
	HasHive bool
}

// List enumerates profiles the same way a cleanup run would.
func List(opts Options) ([]ProfileInfo, error) {
	logger := logging.GetLogger("commands.profiles")

	fsys := opts.FS
	if fsys == nil {
		fsys = filesystem.NewOS()
	}

	found, err := profiles.List(fsys, opts.Config.Profiles.Root, opts.Config.Profiles.Skip)
	if err != nil {
		return nil, err
	}

	infos := make([]ProfileInfo, 0, len(found))
	for _, profile := range found {
		_, statErr := fsys.Stat(profile.Join(opts.Config.Profiles.HiveFile))
		infos = append(infos, ProfileInfo{
			UserProfile: profile,
			HasHive:     statErr == nil,
		})
	}

	logger.Debug().Int("count", len(infos)).Msg("Profile listing complete")
	return infos, nil
}
