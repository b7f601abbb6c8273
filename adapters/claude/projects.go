package claude

import (
	"os"
	"path/filepath"
	"sort"
	"strings"

	"clx/domain"
	"clx/logging"
	"clx/paths"
)

// DiscoverProjects scans the projects directory and builds one Project per
// subdirectory, each holding session stubs derived from its *.jsonl files.
// First/prompt data is filled in later by reconciliation against history.
func (r *Reader) DiscoverProjects() ([]domain.Project, error) {
	projectsDir := paths.ProjectsDir(r.claudeDir)

	entries, err := os.ReadDir(projectsDir)
	if err != nil {
		if !os.IsNotExist(err) {
			logging.Logger.Warn("Failed to read projects directory", "path", projectsDir, "error", err)
		}
		return nil, nil
	}

	var projects []domain.Project

	for _, entry := range entries {
		if !entry.IsDir() {
			continue
		}

		dirName := entry.Name()
		dirPath := filepath.Join(projectsDir, dirName)
		display := domain.DecodeProjectDirName(dirName, r.homeDir)

		transcripts, err := filepath.Glob(filepath.Join(dirPath, "*.jsonl"))
		if err != nil {
			continue
		}

		var sessions []domain.Session
		var totalSize int64

		for _, transcript := range transcripts {
			info, err := os.Stat(transcript)
			if err != nil {
				continue
			}

			totalSize += info.Size()
			sessions = append(sessions, domain.Session{
				SessionID:          strings.TrimSuffix(filepath.Base(transcript), ".jsonl"),
				ProjectDisplayName: display,
				ProjectDirName:     dirName,
				LastActivity:       info.ModTime().UTC(),
				TranscriptPath:     transcript,
				TranscriptSize:     info.Size(),
			})
		}

		sort.SliceStable(sessions, func(i, j int) bool {
			return sessions[i].LastActivity.After(sessions[j].LastActivity)
		})

		projects = append(projects, domain.Project{
			DirName:      dirName,
			Path:         dirPath,
			DisplayName:  display,
			Sessions:     sessions,
			TotalSize:    totalSize,
			SessionCount: len(sessions),
		})
	}

	sort.SliceStable(projects, func(i, j int) bool {
		return projects[i].TotalSize > projects[j].TotalSize
	})

	logging.Logger.Debug("Discovered projects", "count", len(projects))
	return projects, nil
}
