package naming

import (
	"errors"
	"os"
	"strings"
	"testing"
)

func TestDashesToUnderscores(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in   string
		want string
	}{
		{"my-cool-lib", "my_cool_lib"},
		{"nodashes", "nodashes"},
		{"", ""},
		{"--", "__"},
	}
	for _, tt := range tests {
		if got := DashesToUnderscores(tt.in); got != tt.want {
			t.Errorf("DashesToUnderscores(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestUnderscoresToDashes(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in   string
		want string
	}{
		{"my_cool_lib", "my-cool-lib"},
		{"plain", "plain"},
		{"", ""},
	}
	for _, tt := range tests {
		if got := UnderscoresToDashes(tt.in); got != tt.want {
			t.Errorf("UnderscoresToDashes(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestSlashesToDots(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in   string
		want string
	}{
		{"com/acme/widget", "com.acme.widget"},
		{`com\acme\widget`, "com.acme.widget"},
		{`com/acme\widget`, "com.acme.widget"},
		{"", ""},
	}
	for _, tt := range tests {
		if got := SlashesToDots(tt.in); got != tt.want {
			t.Errorf("SlashesToDots(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestDotsToSlashes(t *testing.T) {
	t.Parallel()

	sep := string(os.PathSeparator)
	got := DotsToSlashes("com.acme.widget")
	want := strings.Join([]string{"com", "acme", "widget"}, sep)
	if got != want {
		t.Errorf("DotsToSlashes() = %q, want %q", got, want)
	}
	if got := DotsToSlashes(""); got != "" {
		t.Errorf("DotsToSlashes(\"\") = %q, want \"\"", got)
	}
}

func TestNameToPath(t *testing.T) {
	t.Parallel()

	sep := string(os.PathSeparator)
	tests := []struct {
		name string
		want string
	}{
		{"com.acme.my-util", "com" + sep + "acme" + sep + "my_util" + SourceSuffix},
		{"core", "core" + SourceSuffix},
		// Empty is a sentinel: no suffix gets appended.
		{"", ""},
	}
	for _, tt := range tests {
		if got := NameToPath(tt.name); got != tt.want {
			t.Errorf("NameToPath(%q) = %q, want %q", tt.name, got, tt.want)
		}
	}
}

func TestPathToName(t *testing.T) {
	t.Parallel()

	got, err := PathToName("com/acme_util/widget.clj", ".clj")
	if err != nil {
		t.Fatalf("PathToName() error = %v", err)
	}
	// Underscore-to-dash conversion applies to every path segment.
	if want := "com.acme-util.widget"; got != want {
		t.Errorf("PathToName() = %q, want %q", got, want)
	}
}

func TestPathToNameEmptyInput(t *testing.T) {
	t.Parallel()

	got, err := PathToName("", ".clj")
	if err != nil {
		t.Fatalf("PathToName(\"\") error = %v", err)
	}
	if got != "" {
		t.Errorf("PathToName(\"\") = %q, want \"\"", got)
	}
}

func TestPathToNameBadSuffix(t *testing.T) {
	t.Parallel()

	_, err := PathToName("com/acme/widget.txt", ".clj")
	if err == nil {
		t.Fatal("PathToName() expected error for wrong suffix, got nil")
	}
	var se *SuffixError
	if !errors.As(err, &se) {
		t.Fatalf("PathToName() error type = %T, want *SuffixError", err)
	}
	if se.Suffix != ".clj" {
		t.Errorf("SuffixError.Suffix = %q, want %q", se.Suffix, ".clj")
	}
}

func TestRoundTrip(t *testing.T) {
	t.Parallel()

	// For names built from letters, digits and dashes, converting to a
	// path and back must reproduce the name exactly.
	names := []string{
		"core",
		"com.acme.widget",
		"com.acme-util.widget2",
		"a.b-c.d-e-f",
	}
	for _, n := range names {
		got, err := PathToName(NameToPath(n), SourceSuffix)
		if err != nil {
			t.Fatalf("round trip of %q: %v", n, err)
		}
		if got != n {
			t.Errorf("round trip of %q = %q", n, got)
		}
	}
}

func TestSeparatorNormalizationStable(t *testing.T) {
	t.Parallel()

	// Mixed separators collapse on the first pass (both map to dots), so
	// the original bytes are not recoverable. After that first pass the
	// conversion is stable under repetition.
	mixed := `a/b\c.d`
	once := DotsToSlashes(SlashesToDots(mixed))
	twice := DotsToSlashes(SlashesToDots(once))
	if once != twice {
		t.Errorf("conversion not stable: %q then %q", once, twice)
	}
}

func TestPathForQuery(t *testing.T) {
	t.Parallel()

	sep := string(os.PathSeparator)
	tests := []struct {
		in   string
		want string
	}{
		{"com.acme.my-util", "com" + sep + "acme" + sep + "my_util" + SourceSuffix},
		{"com/acme/core.clj", "com/acme/core.clj"},
		{"core.clj", "core.clj"},
		{"README", "README"},
		{"", ""},
	}
	for _, tt := range tests {
		if got := PathForQuery(tt.in); got != tt.want {
			t.Errorf("PathForQuery(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestNamespaceForPath(t *testing.T) {
	t.Parallel()

	tests := []struct {
		root string
		path string
		want string
	}{
		{"/proj/src", "/proj/src/com/acme_util/widget.clj", "com.acme-util.widget"},
		{"", "com/acme/core.clj", "com.acme.core"},
		{"", `com\acme\core.clj`, "com.acme.core"},
		{"", "", ""},
	}
	for _, tt := range tests {
		if got := NamespaceForPath(tt.root, tt.path); got != tt.want {
			t.Errorf("NamespaceForPath(%q, %q) = %q, want %q", tt.root, tt.path, got, tt.want)
		}
	}
}
