// Package naming converts between dotted namespace names and the relative
// source paths they live at on the classpath.
//
// The two textual forms differ in three ways: namespaces use dots where
// paths use the OS separator, namespaces use dashes where paths use
// underscores, and paths carry the source suffix. Every function here is
// pure and passes empty input through unchanged, so callers can chain
// conversions through optional lookups without guarding each step.
package naming

import (
	"fmt"
	"os"
	"strings"
)

// SourceSuffix is the file suffix appended to a converted namespace name.
const SourceSuffix = ".clj"

// SuffixError reports a path that does not end with the expected suffix.
// It indicates a caller contract violation, so unlike missing-file
// conditions it is never swallowed.
type SuffixError struct {
	Path   string
	Suffix string
}

func (e *SuffixError) Error() string {
	return fmt.Sprintf("path %q does not end with %q", e.Path, e.Suffix)
}

// DashesToUnderscores replaces every dash with an underscore.
func DashesToUnderscores(s string) string {
	return strings.ReplaceAll(s, "-", "_")
}

// UnderscoresToDashes replaces every underscore with a dash.
func UnderscoresToDashes(s string) string {
	return strings.ReplaceAll(s, "_", "-")
}

// SlashesToDots replaces every slash or backslash with a dot.
//
// Because both separators map to the same dot, converting a mixed-separator
// path to dots and back is not guaranteed to reproduce the original bytes.
// That asymmetry is inherent to the mapping, not a defect.
func SlashesToDots(s string) string {
	s = strings.ReplaceAll(s, "/", ".")
	return strings.ReplaceAll(s, "\\", ".")
}

// DotsToSlashes replaces every dot with the platform path separator.
func DotsToSlashes(s string) string {
	return strings.ReplaceAll(s, ".", string(os.PathSeparator))
}

// NameToPath converts a namespace name (e.g., "com.acme.my-util") to the
// relative source path it would occupy on the classpath
// (e.g., "com/acme/my_util.clj").
//
// An empty name converts to an empty path with no suffix appended. Callers
// use the empty string as a "no namespace" sentinel and appending a suffix
// would destroy it.
func NameToPath(name string) string {
	converted := DashesToUnderscores(name)
	if converted == "" {
		return converted
	}
	return DotsToSlashes(converted) + SourceSuffix
}

// PathToName converts a relative source path back to a namespace name,
// stripping the given suffix. A path that does not carry the suffix
// returns a *SuffixError; an empty path passes through unchanged.
func PathToName(path, suffix string) (string, error) {
	if path == "" {
		return path, nil
	}
	if !strings.HasSuffix(path, suffix) {
		return "", &SuffixError{Path: path, Suffix: suffix}
	}
	stripped := strings.TrimSuffix(path, suffix)
	return UnderscoresToDashes(SlashesToDots(stripped)), nil
}

// PathForQuery interprets a user-supplied query as either a namespace
// name or a relative resource path. A dotted query with no separator and
// no source suffix reads as a namespace and is converted; everything else
// is already a path.
func PathForQuery(q string) string {
	if strings.ContainsAny(q, `/\`) || strings.HasSuffix(q, SourceSuffix) || !strings.Contains(q, ".") {
		return q
	}
	return NameToPath(q)
}

// NamespaceForPath reverse-engineers a namespace name from a discovered
// source file. When searchRoot is non-empty it is stripped from the front
// of fullPath first; otherwise the full path is used as-is. The remaining
// path is tokenized on both separators, each token's underscores become
// dashes, the tokens are joined with dots, and the trailing source suffix
// is dropped.
func NamespaceForPath(searchRoot, fullPath string) string {
	if fullPath == "" {
		return fullPath
	}
	rel := fullPath
	if searchRoot != "" {
		rel = strings.TrimPrefix(rel, searchRoot)
	}
	tokens := strings.FieldsFunc(rel, func(r rune) bool {
		return r == '/' || r == '\\'
	})
	for i, t := range tokens {
		tokens[i] = UnderscoresToDashes(t)
	}
	joined := strings.Join(tokens, ".")
	return strings.TrimSuffix(joined, SourceSuffix)
}
