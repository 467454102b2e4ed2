// Package classpath locates resources across an ordered search path of
// directories and zip-compatible archives, and analyzes that search path
// for duplicates, missing roots and shadowed resources.
package classpath

import (
	"archive/zip"
	"io"
	"os"
	"path/filepath"
	"strings"

	"lscp/internal/model"
)

// Locator finds resources across the ordered roots of a classpath.
// It holds no state beyond the read-only root list: every lookup
// recomputes from the filesystem, so concurrent reads need no locking.
type Locator struct {
	roots []model.Root
}

// NewLocator builds a Locator over the given roots. The slice order is the
// search order; callers that want override roots searched first put them
// at the front (see BuildRoots).
func NewLocator(roots []model.Root) *Locator {
	return &Locator{roots: roots}
}

// Roots returns the ordered root list the locator searches.
func (l *Locator) Roots() []model.Root {
	return l.roots
}

// normalizeRel strips leading separators so a caller-supplied path can
// never escape to an absolute lookup.
func normalizeRel(rel string) string {
	return strings.TrimLeft(rel, `/\`)
}

// Exists reports whether any root provides the resource. Directory roots
// match when root/rel exists on disk; archive roots match when an entry is
// equal to rel or nested under it. Scanning stops at the first match.
func (l *Locator) Exists(rel string) bool {
	rel = normalizeRel(rel)
	if rel == "" {
		return false
	}
	for _, root := range l.roots {
		switch root.Kind {
		case model.KindDirectory:
			// Any stat failure (missing root, permission denied in a
			// sandboxed host) means this root contributes nothing.
			if _, err := os.Stat(filepath.Join(root.Value, filepath.FromSlash(rel))); err == nil {
				return true
			}
		case model.KindArchive:
			if archiveContains(root.Value, rel) {
				return true
			}
		}
	}
	return false
}

// FindFirst opens the resource from the first directory root that has it,
// in search order. The caller owns closing the stream. Archive roots are
// enumerated by name only and never opened as resource streams here.
func (l *Locator) FindFirst(rel string) (io.ReadCloser, bool) {
	rel = normalizeRel(rel)
	if rel == "" {
		return nil, false
	}
	for _, root := range l.roots {
		if root.Kind != model.KindDirectory {
			continue
		}
		f, ok := openFileAt(root.Value, rel)
		if ok {
			return f, true
		}
	}
	return nil, false
}

// FindAll opens the resource from every directory root that has it, in
// search order. The caller owns closing every returned stream.
func (l *Locator) FindAll(rel string) []io.ReadCloser {
	rel = normalizeRel(rel)
	if rel == "" {
		return nil
	}
	var streams []io.ReadCloser
	for _, root := range l.roots {
		if root.Kind != model.KindDirectory {
			continue
		}
		if f, ok := openFileAt(root.Value, rel); ok {
			streams = append(streams, f)
		}
	}
	return streams
}

// openFileAt opens root/rel if it is a readable regular file. Missing or
// unreadable roots are skipped, not errors: search-path membership does
// not imply every root is valid at query time.
func openFileAt(root, rel string) (io.ReadCloser, bool) {
	f, err := os.Open(filepath.Join(root, filepath.FromSlash(rel)))
	if err != nil {
		return nil, false
	}
	info, err := f.Stat()
	if err != nil || info.IsDir() {
		f.Close()
		return nil, false
	}
	return f, true
}

// ChildNames lists the direct children of a logical directory across every
// root. Directory roots contribute their filesystem children; archive
// roots contribute the immediate child segment of every entry nested under
// relDir. The set container dedupes archive entries that share a child
// segment; a name provided by both a directory and an archive collapses
// into one member as well.
func (l *Locator) ChildNames(relDir string) map[string]struct{} {
	relDir = strings.TrimSuffix(normalizeRel(relDir), "/")
	names := make(map[string]struct{})
	for _, root := range l.roots {
		switch root.Kind {
		case model.KindDirectory:
			entries, err := os.ReadDir(filepath.Join(root.Value, filepath.FromSlash(relDir)))
			if err != nil {
				continue
			}
			for _, e := range entries {
				names[e.Name()] = struct{}{}
			}
		case model.KindArchive:
			archiveChildren(root.Value, relDir, names)
		}
	}
	return names
}

// archiveContains reports whether the archive has an entry equal to rel or
// nested under it. An archive that cannot be opened contributes nothing.
func archiveContains(archivePath, rel string) bool {
	r, err := zip.OpenReader(archivePath)
	if err != nil {
		return false
	}
	defer r.Close()

	prefix := rel + "/"
	for _, f := range r.File {
		if f.Name == rel || strings.HasPrefix(f.Name, prefix) {
			return true
		}
	}
	return false
}

// archiveChildren adds the immediate child segment of every archive entry
// nested under parent into names. Archive namespaces are flat, so a single
// deep entry like "pkg/foo/a/b.txt" stands in for the whole "foo" subtree;
// taking the segment up to the next slash collapses it to one directory
// level, mirroring a directory listing.
func archiveChildren(archivePath, parent string, names map[string]struct{}) {
	r, err := zip.OpenReader(archivePath)
	if err != nil {
		return
	}
	defer r.Close()

	for _, f := range r.File {
		rest := f.Name
		if parent != "" {
			if !strings.HasPrefix(f.Name, parent+"/") {
				continue
			}
			// Skip past the parent and its separator.
			rest = f.Name[len(parent)+1:]
		}
		child := rest
		if idx := strings.Index(rest, "/"); idx > 0 {
			child = rest[:idx]
		}
		if child == "" {
			continue
		}
		names[child] = struct{}{}
	}
}
