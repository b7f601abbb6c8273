// Package claude reads the on-disk data tree produced by Claude Code and
// decodes it into typed domain entities. All decoders are defensive: a
// missing file is an empty dataset and a malformed record is skipped, never
// an error surfaced to the caller.
package claude

import (
	"os"
	"path/filepath"

	"clx/paths"
)

// Reader decodes the Claude data directory. It holds no mutable state and is
// safe to share once constructed.
type Reader struct {
	claudeDir        string
	homeDir          string
	globalConfigPath string
}

// NewReader creates a Reader over the default Claude directory
func NewReader() *Reader {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		homeDir = "."
	}
	return &Reader{
		claudeDir:        paths.ClaudeDir(),
		homeDir:          homeDir,
		globalConfigPath: paths.GlobalConfigPath(),
	}
}

// NewReaderWithDir creates a Reader over custom directories (for testing)
func NewReaderWithDir(claudeDir, homeDir string) *Reader {
	return &Reader{
		claudeDir:        claudeDir,
		homeDir:          homeDir,
		globalConfigPath: filepath.Join(homeDir, ".claude.json"),
	}
}

// ClaudeDir returns the directory this Reader scans
func (r *Reader) ClaudeDir() string {
	return r.claudeDir
}
