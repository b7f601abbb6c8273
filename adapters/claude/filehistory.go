package claude

import (
	"io/fs"
	"os"
	"path/filepath"
	"sort"

	"clx/logging"
	"clx/paths"
)

// ListFileHistory maps each session id to the sorted relative paths recorded
// under file-history/<sessionId>/. Sessions with no files are omitted.
func (r *Reader) ListFileHistory() (map[string][]string, error) {
	fhDir := paths.FileHistoryDir(r.claudeDir)

	entries, err := os.ReadDir(fhDir)
	if err != nil {
		if !os.IsNotExist(err) {
			logging.Logger.Warn("Failed to read file-history directory", "path", fhDir, "error", err)
		}
		return nil, nil
	}

	result := make(map[string][]string)

	for _, entry := range entries {
		if !entry.IsDir() {
			continue
		}

		sessionDir := filepath.Join(fhDir, entry.Name())
		var files []string

		walkErr := filepath.WalkDir(sessionDir, func(path string, d fs.DirEntry, err error) error {
			if err != nil {
				return nil // keep walking past unreadable entries
			}
			if d.IsDir() {
				return nil
			}
			rel, relErr := filepath.Rel(sessionDir, path)
			if relErr != nil {
				return nil
			}
			files = append(files, rel)
			return nil
		})
		if walkErr != nil {
			continue
		}

		if len(files) > 0 {
			sort.Strings(files)
			result[entry.Name()] = files
		}
	}

	return result, nil
}
