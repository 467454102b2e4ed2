package classpath

import (
	"os"
	"path/filepath"
	"strings"

	"lscp/internal/model"
)

// EnvVar is the environment variable the classpath is read from when the
// caller does not supply one explicitly.
const EnvVar = "CLASSPATH"

// SessionClasspath returns the classpath of the current session.
func SessionClasspath() string {
	return os.Getenv(EnvVar)
}

// BuildRoots turns classpath strings into the ordered root list a Locator
// searches. Both arguments are platform list-separated; override entries
// come first in the result so they win every lookup. The override is
// explicit configuration handed in by the caller, never ambient process
// state read here.
func BuildRoots(classpath, override string) []model.Root {
	var roots []model.Root
	for _, p := range filepath.SplitList(override) {
		if p == "" {
			continue
		}
		p = expandTilde(p)
		roots = append(roots, model.Root{Value: p, Kind: classify(p), FromOverride: true})
	}
	for _, p := range filepath.SplitList(classpath) {
		if p == "" {
			continue
		}
		p = expandTilde(p)
		roots = append(roots, model.Root{Value: p, Kind: classify(p)})
	}
	return roots
}

// classify decides whether a classpath entry is a directory root or an
// archive root. Jar and zip suffixes mean archive; everything else is
// treated as a directory and its existence is resolved at analysis time.
func classify(p string) model.RootKind {
	ext := strings.ToLower(filepath.Ext(p))
	if ext == ".jar" || ext == ".zip" {
		return model.KindArchive
	}
	return model.KindDirectory
}

// expandTilde expands ~ to the user's home directory
func expandTilde(path string) string {
	if strings.HasPrefix(path, "~/") {
		home, err := os.UserHomeDir()
		if err == nil {
			return filepath.Join(home, path[2:])
		}
	} else if path == "~" {
		home, err := os.UserHomeDir()
		if err == nil {
			return home
		}
	}
	return path
}
