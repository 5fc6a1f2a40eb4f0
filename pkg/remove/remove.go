// Package remove deletes filesystem paths idempotently. A path that is
// already gone is a NotFound outcome, not an error; a deletion failure
// becomes a Failed outcome at this boundary so one stubborn target never
// aborts the rest of a run.
package remove

import (
	"os"

	"github.com/scourtool/scour/pkg/logging"
	"github.com/scourtool/scour/pkg/types"
)

// Path removes the file or directory tree at path.
func Path(fsys types.FS, path string) types.Outcome {
	logger := logging.GetLogger("remove")

	if _, err := fsys.Stat(path); err != nil {
		if os.IsNotExist(err) {
			logger.Debug().Str("path", path).Msg("Path not present")
			return types.NotFound()
		}
		// Stat failed for some other reason (permissions, dangling
		// mount). Still try the delete; RemoveAll reports its own error.
		logger.Debug().Err(err).Str("path", path).Msg("Stat failed, attempting removal anyway")
	}

	if err := fsys.RemoveAll(path); err != nil {
		logger.Warn().Err(err).Str("path", path).Msg("Failed to remove path")
		return types.Failed(err)
	}

	logger.Info().Str("path", path).Msg("Removed path")
	return types.Removed()
}
