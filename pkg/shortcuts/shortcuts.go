// Package shortcuts finds and deletes shortcut files by name pattern.
// Patterns are matched case-insensitively against the file base name
// with filepath.Match wildcard semantics. The walk is depth-first in
// lexical order so fixtures produce stable result ordering.
package shortcuts

import (
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/rs/zerolog"

	"github.com/scourtool/scour/pkg/logging"
	"github.com/scourtool/scour/pkg/types"
)

// Scan recursively searches baseDir for files matching each pattern and
// force-deletes every match. A missing or unreadable baseDir is normal:
// it yields one NotFound result per pattern and never an error. A
// pattern that matches nothing also yields a single NotFound result, so
// every configured target produces exactly one line of output.
func Scan(fsys types.FS, baseDir string, patterns []string) []types.TargetResult {
	logger := logging.GetLogger("shortcuts")
	results := make([]types.TargetResult, 0, len(patterns))

	files, err := listFiles(fsys, baseDir)
	if err != nil {
		logger.Debug().Err(err).Str("dir", baseDir).Msg("Shortcut location not readable")
		for _, pattern := range patterns {
			results = append(results, types.TargetResult{
				Kind:    types.KindShortcut,
				Target:  filepath.Join(baseDir, pattern),
				Outcome: types.NotFound(),
			})
		}
		return results
	}

	for _, pattern := range patterns {
		matched := false
		for _, file := range files {
			ok, matchErr := filepath.Match(strings.ToLower(pattern), strings.ToLower(filepath.Base(file)))
			if matchErr != nil || !ok {
				continue
			}
			matched = true
			results = append(results, types.TargetResult{
				Kind:    types.KindShortcut,
				Target:  file,
				Outcome: deleteShortcut(fsys, file, logger),
			})
		}
		if !matched {
			logger.Debug().Str("dir", baseDir).Str("pattern", pattern).Msg("No shortcuts matched")
			results = append(results, types.TargetResult{
				Kind:    types.KindShortcut,
				Target:  filepath.Join(baseDir, pattern),
				Outcome: types.NotFound(),
			})
		}
	}

	return results
}

func deleteShortcut(fsys types.FS, file string, logger zerolog.Logger) types.Outcome {
	if err := fsys.Remove(file); err != nil {
		if os.IsNotExist(err) {
			return types.NotFound()
		}
		logger.Warn().Err(err).Str("file", file).Msg("Failed to remove shortcut")
		return types.Failed(err)
	}
	logger.Info().Str("file", file).Msg("Removed shortcut")
	return types.Removed()
}

// listFiles collects every regular file under dir, sorted by path.
func listFiles(fsys types.FS, dir string) ([]string, error) {
	entries, err := fsys.ReadDir(dir)
	if err != nil {
		return nil, err
	}

	var files []string
	for _, entry := range entries {
		full := filepath.Join(dir, entry.Name())
		if entry.IsDir() {
			sub, err := listFiles(fsys, full)
			if err != nil {
				// Unreadable subdirectory; the rest of the tree is
				// still scanned.
				continue
			}
			files = append(files, sub...)
			continue
		}
		files = append(files, full)
	}

	sort.Strings(files)
	return files, nil
}
