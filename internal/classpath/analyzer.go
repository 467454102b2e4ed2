package classpath

import (
	"archive/zip"
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"lscp/internal/model"
)

// Analyzer inspects a classpath root list and produces a Report.
type Analyzer struct{}

func NewAnalyzer() *Analyzer {
	return &Analyzer{}
}

// Analyze resolves the status of every root (missing, unreadable, entry
// count), flags duplicate entries, and records which top-level names a
// root provides that an earlier root already provides.
func (a *Analyzer) Analyze(roots []model.Root) model.Report {
	entries := make([]model.Root, len(roots))
	copy(entries, roots)

	for i := range entries {
		inspectRoot(&entries[i])
	}

	// Post-process for Duplicates
	seen := make(map[string]int) // value -> index
	for i, e := range entries {
		if firstIdx, ok := seen[e.Value]; ok {
			entries[i].IsDuplicate = true
			entries[i].DuplicateOf = firstIdx

			// Advice
			entries[i].Remediation = fmt.Sprintf(
				"Duplicate of entry %d. The earlier entry wins every lookup; remove this one from the classpath.",
				firstIdx+1,
			)
		} else {
			seen[e.Value] = i
		}
	}

	// Shadowing: which top-level names of this root were already provided
	// by an earlier root. Only the first provider of a name is reachable
	// through single-resource lookups.
	provided := make(map[string]struct{})
	for i := range entries {
		if entries[i].Missing || entries[i].Unreadable {
			continue
		}
		names := topLevelNames(entries[i])
		var shadowed []string
		for name := range names {
			if _, ok := provided[name]; ok {
				shadowed = append(shadowed, name)
			} else {
				provided[name] = struct{}{}
			}
		}
		sort.Strings(shadowed)
		entries[i].Shadows = shadowed
	}

	return model.Report{
		Roots:       entries,
		Diagnostics: diagnose(entries),
	}
}

// Which returns every root that provides the resource, in search order.
// The first match is the one lookups see; every later match is marked
// shadowed.
func (a *Analyzer) Which(roots []model.Root, rel string) []model.Match {
	rel = normalizeRel(rel)
	if rel == "" {
		return nil
	}
	var matches []model.Match
	for i, root := range roots {
		var found bool
		switch root.Kind {
		case model.KindDirectory:
			_, err := os.Stat(filepath.Join(root.Value, filepath.FromSlash(rel)))
			found = err == nil
		case model.KindArchive:
			found = archiveContains(root.Value, rel)
		}
		if found {
			matches = append(matches, model.Match{
				Index:    i,
				Root:     root.Value,
				Shadowed: len(matches) > 0,
			})
		}
	}
	return matches
}

// inspectRoot fills in the status fields of a root in place.
func inspectRoot(root *model.Root) {
	switch root.Kind {
	case model.KindDirectory:
		info, err := os.Stat(root.Value)
		if err != nil {
			if os.IsNotExist(err) {
				root.Missing = true
			} else {
				// Permission denied (or any other stat failure) means the
				// root is skipped at lookup time, same as missing.
				root.Unreadable = true
			}
			return
		}
		if !info.IsDir() {
			// A plain file on the classpath without an archive suffix
			// contributes nothing to directory lookups.
			root.Unreadable = true
			return
		}
		children, err := os.ReadDir(root.Value)
		if err != nil {
			root.Unreadable = true
			return
		}
		root.EntryCount = len(children)
	case model.KindArchive:
		r, err := zip.OpenReader(root.Value)
		if err != nil {
			if os.IsNotExist(err) {
				root.Missing = true
			} else {
				root.Unreadable = true
			}
			return
		}
		defer r.Close()
		root.EntryCount = len(r.File)
	}
}

// topLevelNames returns the direct child names a root provides.
func topLevelNames(root model.Root) map[string]struct{} {
	names := make(map[string]struct{})
	switch root.Kind {
	case model.KindDirectory:
		entries, err := os.ReadDir(root.Value)
		if err != nil {
			return names
		}
		for _, e := range entries {
			names[e.Name()] = struct{}{}
		}
	case model.KindArchive:
		archiveChildren(root.Value, "", names)
	}
	return names
}

// diagnose summarizes classpath problems as human-readable lines.
func diagnose(entries []model.Root) []string {
	var diags []string
	var missing, unreadable, duplicates, shadowing int
	for _, e := range entries {
		if e.Missing {
			missing++
		}
		if e.Unreadable {
			unreadable++
		}
		if e.IsDuplicate {
			duplicates++
		}
		if len(e.Shadows) > 0 {
			shadowing++
		}
	}
	if len(entries) == 0 {
		diags = append(diags, "Classpath is empty: every lookup will fail.")
	}
	if missing > 0 {
		diags = append(diags, fmt.Sprintf("%d classpath entr%s point nowhere (missing on disk).", missing, plural(missing, "y", "ies")))
	}
	if unreadable > 0 {
		diags = append(diags, fmt.Sprintf("%d classpath entr%s cannot be read and will be skipped.", unreadable, plural(unreadable, "y", "ies")))
	}
	if duplicates > 0 {
		diags = append(diags, fmt.Sprintf("%d duplicate entr%s found; duplicates never win a lookup.", duplicates, plural(duplicates, "y", "ies")))
	}
	if shadowing > 0 {
		diags = append(diags, fmt.Sprintf("%d entr%s provide names already provided earlier on the classpath.", shadowing, plural(shadowing, "y", "ies")))
	}
	return diags
}

func plural(n int, one, many string) string {
	if n == 1 {
		return one
	}
	return many
}
