package model

// Version is the released version of lscp, used by --version and the
// update check.
const Version = "0.4.1"

// RootKind says whether a classpath root is a plain directory or a
// zip-compatible archive (jar).
type RootKind int

const (
	KindDirectory RootKind = iota
	KindArchive
)

func (k RootKind) String() string {
	if k == KindArchive {
		return "archive"
	}
	return "directory"
}

// Root represents a single entry on the classpath search path.
type Root struct {
	Value        string   // The path (e.g., /home/me/lib/core.jar or target/classes)
	Kind         RootKind // Directory or archive
	FromOverride bool     // True if this root came from the override path (searched first)

	// Analysis results
	Missing     bool     // Path does not exist on disk
	Unreadable  bool     // Path exists but cannot be read (permissions)
	EntryCount  int      // Direct children (directory) or total entries (archive)
	Shadows     []string // Resources this root provides that an earlier root already provides
	IsDuplicate bool     // True if this is a duplicate entry
	DuplicateOf int      // Index of the original entry if this is a duplicate
	Remediation string   // Advice on how to fix/remove if duplicate
}

// Match records one root that provides a queried resource.
type Match struct {
	Index    int    // Index of the root in the classpath
	Root     string // The root's path
	Shadowed bool   // True if an earlier root already provides the resource
}

// Report contains the processed data from a classpath analysis.
type Report struct {
	Roots       []Root
	Diagnostics []string
}
