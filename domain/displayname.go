package domain

import "strings"

// DecodeProjectDirName inverts the encoding Claude Code applies to project
// directory names, where the project's absolute path has its separators
// replaced by "-" and a hidden (dot-prefixed) segment becomes a double "-".
//
// The rules are applied in order:
//  1. strip a leading "-" (the encoded root separator)
//  2. "<home>-Projects-<rest>" collapses to the bare "<rest>"
//  3. exactly "<home>" becomes "~/"
//  4. "<home>--<rest>" becomes "~/.<rest>" (double separator = dot segment)
//  5. "<home>-<rest>" becomes "~/<rest>"
//  6. anything else is returned as-is
//
// The encoding is lossy: a directory whose real name contains "-" is
// indistinguishable from a path separator, so the decoded form is a best
// effort display name, never a reconstructable path.
func DecodeProjectDirName(encoded, homeDir string) string {
	homeEnc := strings.TrimPrefix(strings.ReplaceAll(homeDir, "/", "-"), "-")
	name := strings.TrimPrefix(encoded, "-")

	var display string
	switch {
	case homeEnc != "" && strings.HasPrefix(name, homeEnc+"-Projects-"):
		display = strings.TrimPrefix(name, homeEnc+"-Projects-")
	case homeEnc != "" && name == homeEnc:
		display = "~/"
	case homeEnc != "" && strings.HasPrefix(name, homeEnc+"--"):
		display = "~/." + strings.TrimPrefix(name, homeEnc+"--")
	case homeEnc != "" && strings.HasPrefix(name, homeEnc+"-"):
		display = "~/" + strings.TrimPrefix(name, homeEnc+"-")
	default:
		display = name
	}

	if display == "" {
		return encoded
	}
	return display
}

// ShortProjectPath shortens a real (slash-separated) project path for display:
// "<home>/Projects/x" becomes "x", "<home>/y" becomes "~/y".
func ShortProjectPath(path, homeDir string) string {
	if homeDir == "" {
		return path
	}
	if rest, ok := strings.CutPrefix(path, homeDir+"/Projects/"); ok {
		return rest
	}
	if rest, ok := strings.CutPrefix(path, homeDir+"/"); ok {
		return "~/" + rest
	}
	if path == homeDir {
		return "~"
	}
	return path
}
