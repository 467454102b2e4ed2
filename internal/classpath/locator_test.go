package classpath

import (
	"archive/zip"
	"io"
	"os"
	"path/filepath"
	"testing"

	"lscp/internal/model"
)

func writeFile(t *testing.T, root, rel, content string) {
	t.Helper()
	path := filepath.Join(root, filepath.FromSlash(rel))
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
}

func writeArchive(t *testing.T, dir, name string, entries map[string]string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	f, err := os.Create(path)
	if err != nil {
		t.Fatal(err)
	}
	zw := zip.NewWriter(f)
	for entry, content := range entries {
		w, err := zw.Create(entry)
		if err != nil {
			t.Fatal(err)
		}
		if _, err := w.Write([]byte(content)); err != nil {
			t.Fatal(err)
		}
	}
	if err := zw.Close(); err != nil {
		t.Fatal(err)
	}
	if err := f.Close(); err != nil {
		t.Fatal(err)
	}
	return path
}

func dirRoot(path string) model.Root {
	return model.Root{Value: path, Kind: model.KindDirectory}
}

func archiveRoot(path string) model.Root {
	return model.Root{Value: path, Kind: model.KindArchive}
}

func TestExistsDirectoryRoot(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	writeFile(t, dir, "config/app.conf", "x=1")

	loc := NewLocator([]model.Root{dirRoot(dir)})
	if !loc.Exists("config/app.conf") {
		t.Error("Exists() = false, want true for present file")
	}
	if loc.Exists("config/missing.conf") {
		t.Error("Exists() = true, want false for absent file")
	}
}

func TestExistsArchiveRoot(t *testing.T) {
	t.Parallel()

	jar := writeArchive(t, t.TempDir(), "lib.jar", map[string]string{
		"com/acme/core.clj": "(ns com.acme.core)",
	})

	loc := NewLocator([]model.Root{archiveRoot(jar)})
	if !loc.Exists("com/acme/core.clj") {
		t.Error("Exists() = false, want true for exact archive entry")
	}
	if !loc.Exists("com/acme") {
		t.Error("Exists() = false, want true for nested archive prefix")
	}
	if loc.Exists("org/other") {
		t.Error("Exists() = true, want false for absent archive entry")
	}
}

func TestExistsEmptyClasspath(t *testing.T) {
	t.Parallel()

	loc := NewLocator(nil)
	if loc.Exists("anything") {
		t.Error("Exists() = true on empty classpath, want false")
	}
}

func TestExistsInaccessibleRoots(t *testing.T) {
	t.Parallel()

	loc := NewLocator([]model.Root{
		dirRoot("/nonexistent/alpha"),
		archiveRoot("/nonexistent/beta.jar"),
	})
	if loc.Exists("config/app.conf") {
		t.Error("Exists() = true with only inaccessible roots, want false")
	}
}

func TestExistsStripsLeadingSeparators(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	writeFile(t, dir, "config/app.conf", "x=1")

	loc := NewLocator([]model.Root{dirRoot(dir)})
	if !loc.Exists("/config/app.conf") {
		t.Error("Exists() should strip a leading slash before lookup")
	}
	if !loc.Exists(`\config/app.conf`) {
		t.Error("Exists() should strip a leading backslash before lookup")
	}
}

func TestFindFirstSkipsMissingRoots(t *testing.T) {
	t.Parallel()

	dirB := t.TempDir()
	writeFile(t, dirB, "config/app.conf", "from-b")

	loc := NewLocator([]model.Root{
		dirRoot(filepath.Join(t.TempDir(), "missing")),
		dirRoot(dirB),
	})

	rc, ok := loc.FindFirst("config/app.conf")
	if !ok {
		t.Fatal("FindFirst() ok = false, want true")
	}
	defer rc.Close()

	data, err := io.ReadAll(rc)
	if err != nil {
		t.Fatal(err)
	}
	if string(data) != "from-b" {
		t.Errorf("FindFirst() read %q, want %q", data, "from-b")
	}
}

func TestFindFirstOrder(t *testing.T) {
	t.Parallel()

	dirA := t.TempDir()
	dirB := t.TempDir()
	writeFile(t, dirA, "res.txt", "first")
	writeFile(t, dirB, "res.txt", "second")

	loc := NewLocator([]model.Root{dirRoot(dirA), dirRoot(dirB)})
	rc, ok := loc.FindFirst("res.txt")
	if !ok {
		t.Fatal("FindFirst() ok = false, want true")
	}
	defer rc.Close()

	data, _ := io.ReadAll(rc)
	if string(data) != "first" {
		t.Errorf("FindFirst() read %q, want the earliest root to win", data)
	}
}

func TestFindFirstIgnoresArchives(t *testing.T) {
	t.Parallel()

	jar := writeArchive(t, t.TempDir(), "lib.jar", map[string]string{
		"res.txt": "inside jar",
	})

	loc := NewLocator([]model.Root{archiveRoot(jar)})
	if _, ok := loc.FindFirst("res.txt"); ok {
		t.Error("FindFirst() should not open archive entries as streams")
	}
}

func TestFindAll(t *testing.T) {
	t.Parallel()

	dirA := t.TempDir()
	dirB := t.TempDir()
	dirC := t.TempDir() // does not contain the resource
	writeFile(t, dirA, "logback.xml", "a")
	writeFile(t, dirB, "logback.xml", "b")

	loc := NewLocator([]model.Root{dirRoot(dirA), dirRoot(dirC), dirRoot(dirB)})
	streams := loc.FindAll("logback.xml")
	if len(streams) != 2 {
		t.Fatalf("FindAll() returned %d streams, want 2", len(streams))
	}
	var contents []string
	for _, rc := range streams {
		data, err := io.ReadAll(rc)
		if err != nil {
			t.Fatal(err)
		}
		rc.Close()
		contents = append(contents, string(data))
	}
	if contents[0] != "a" || contents[1] != "b" {
		t.Errorf("FindAll() order = %v, want search-path order [a b]", contents)
	}
}

func TestChildNamesDirectoryRoots(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	writeFile(t, dir, "pkg/alpha.clj", "")
	writeFile(t, dir, "pkg/beta.clj", "")
	writeFile(t, dir, "pkg/sub/gamma.clj", "")

	loc := NewLocator([]model.Root{dirRoot(dir)})
	names := loc.ChildNames("pkg")
	want := []string{"alpha.clj", "beta.clj", "sub"}
	if len(names) != len(want) {
		t.Fatalf("ChildNames() = %v, want %v", names, want)
	}
	for _, w := range want {
		if _, ok := names[w]; !ok {
			t.Errorf("ChildNames() missing %q", w)
		}
	}
}

func TestChildNamesArchiveDedup(t *testing.T) {
	t.Parallel()

	// Two nested entries sharing the immediate child segment "foo" must
	// yield "foo" exactly once.
	jar := writeArchive(t, t.TempDir(), "lib.jar", map[string]string{
		"pkg/foo/a.txt": "",
		"pkg/foo/b.txt": "",
		"pkg/bar.txt":   "",
	})

	loc := NewLocator([]model.Root{archiveRoot(jar)})
	names := loc.ChildNames("pkg")
	if len(names) != 2 {
		t.Fatalf("ChildNames() = %v, want exactly {foo, bar.txt}", names)
	}
	if _, ok := names["foo"]; !ok {
		t.Error("ChildNames() missing collapsed child \"foo\"")
	}
	if _, ok := names["bar.txt"]; !ok {
		t.Error("ChildNames() missing direct child \"bar.txt\"")
	}
}

func TestChildNamesDeepArchiveEntryCollapses(t *testing.T) {
	t.Parallel()

	jar := writeArchive(t, t.TempDir(), "lib.jar", map[string]string{
		"pkg/foo/a/b/c.txt": "",
	})

	loc := NewLocator([]model.Root{archiveRoot(jar)})
	names := loc.ChildNames("pkg")
	if _, ok := names["foo"]; !ok || len(names) != 1 {
		t.Errorf("ChildNames() = %v, want a deep entry collapsed to its immediate child", names)
	}
}

func TestChildNamesMergesSources(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	writeFile(t, dir, "pkg/local.clj", "")
	jar := writeArchive(t, t.TempDir(), "lib.jar", map[string]string{
		"pkg/jarred.clj": "",
		"pkg/local.clj":  "",
	})

	loc := NewLocator([]model.Root{dirRoot(dir), archiveRoot(jar)})
	names := loc.ChildNames("pkg")
	if len(names) != 2 {
		t.Fatalf("ChildNames() = %v, want union {local.clj, jarred.clj}", names)
	}
}

func TestChildNamesTrailingSlash(t *testing.T) {
	t.Parallel()

	jar := writeArchive(t, t.TempDir(), "lib.jar", map[string]string{
		"pkg/a.txt": "",
	})

	loc := NewLocator([]model.Root{archiveRoot(jar)})
	if names := loc.ChildNames("pkg/"); len(names) != 1 {
		t.Errorf("ChildNames(\"pkg/\") = %v, want trailing slash normalized away", names)
	}
}

func TestChildNamesTopLevel(t *testing.T) {
	t.Parallel()

	jar := writeArchive(t, t.TempDir(), "lib.jar", map[string]string{
		"com/acme/core.clj": "",
		"META-INF/MANIFEST": "",
	})

	loc := NewLocator([]model.Root{archiveRoot(jar)})
	names := loc.ChildNames("")
	if len(names) != 2 {
		t.Fatalf("ChildNames(\"\") = %v, want {com, META-INF}", names)
	}
	if _, ok := names["com"]; !ok {
		t.Error("ChildNames(\"\") missing \"com\"")
	}
}
