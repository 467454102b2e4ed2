package main

import (
	"encoding/json"
	"fmt"
	"os"

	"lscp/internal/classpath"
	"lscp/internal/model"
	"lscp/internal/naming"
	"lscp/internal/tui"
	"lscp/internal/web"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"
	"github.com/spf13/pflag"
	"github.com/tcnksm/go-latest"
)

func checkUpdate(currentVer string) {
	githubTag := &latest.GithubTag{
		Owner:      "waffletower",
		Repository: "lscp",
	}

	res, err := latest.Check(githubTag, currentVer)
	if err != nil {
		return // Silently fail
	}

	if res.Outdated {
		fmt.Printf("\n✨ A new version is available: %s (you have %s)\n", res.Current, currentVer)
		fmt.Println("👉 Download it from https://github.com/waffletower/lscp/releases")
	} else if pflag.Lookup("update").Changed {
		fmt.Printf("✅ You are using the latest version: %s\n", currentVer)
	}
}

func main() {
	pflag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: lscp [options]\n\n")
		fmt.Fprintf(os.Stderr, "lscp is a tool for analyzing and debugging a JVM-style classpath.\n")
		fmt.Fprintf(os.Stderr, "It shows every classpath entry (directories and jar/zip archives),\n")
		fmt.Fprintf(os.Stderr, "flags duplicates and missing entries, and answers which entry\n")
		fmt.Fprintf(os.Stderr, "actually provides a given resource or namespace.\n\n")
		fmt.Fprintf(os.Stderr, "Options:\n")
		pflag.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nExamples:\n")
		fmt.Fprintf(os.Stderr, "  lscp                       # Start TUI mode (reads $CLASSPATH)\n")
		fmt.Fprintf(os.Stderr, "  lscp --report              # Print diagnostic report to stdout\n")
		fmt.Fprintf(os.Stderr, "  lscp -r -o r.txt           # Save report to file\n")
		fmt.Fprintf(os.Stderr, "  lscp --json                # Output analysis as JSON\n")
		fmt.Fprintf(os.Stderr, "  lscp --which com.acme.core # Which entry provides a namespace\n")
	}

	jsonFlag := pflag.BoolP("json", "j", false, "Output raw analysis data as JSON")
	reportFlag := pflag.BoolP("report", "r", false, "Generate a detailed diagnostic report (CLI mode)")
	outputFlag := pflag.StringP("output", "o", "", "Save report to the specified file (combined with --report)")
	verboseFlag := pflag.BoolP("verbose", "v", false, "Include shadowed names and advice in the report")
	webFlag := pflag.BoolP("web", "w", false, "Start Web Mode on http://localhost:8080")
	whichFlag := pflag.String("which", "", "Show every classpath entry providing a resource or namespace")
	classpathFlag := pflag.String("classpath", "", "Classpath to inspect (default: $CLASSPATH)")
	overrideFlag := pflag.String("override", "", "Extra entries searched before the classpath")
	versionFlag := pflag.BoolP("version", "V", false, "Print version information")
	updateFlag := pflag.BoolP("update", "u", false, "Check for latest version")
	helpFlag := pflag.BoolP("help", "h", false, "Show this help message")
	pflag.Parse()

	if *helpFlag {
		pflag.Usage()
		return
	}

	if *versionFlag {
		fmt.Printf("lscp version %s\n", model.Version)
		return
	}

	if *updateFlag {
		checkUpdate(model.Version)
		return
	}

	cp := *classpathFlag
	if cp == "" {
		cp = classpath.SessionClasspath()
	}

	if *webFlag {
		srv := web.NewServer(cp, *overrideFlag)
		if err := srv.Start("8080"); err != nil {
			log.Fatal("web server failed", "err", err)
		}
		return
	}

	if *whichFlag != "" {
		runWhichMode(cp, *overrideFlag, *whichFlag)
		return
	}

	if *reportFlag {
		runReportMode(cp, *overrideFlag, *outputFlag, *verboseFlag)
		return
	}

	if *jsonFlag {
		runJsonMode(cp, *overrideFlag)
		return
	}

	// Default: TUI
	runTuiMode(cp, *overrideFlag)
}

func analyze(cp, override string) model.Report {
	roots := classpath.BuildRoots(cp, override)
	return classpath.NewAnalyzer().Analyze(roots)
}

func runReportMode(cp, override, outputFile string, verbose bool) {
	report := classpath.GenerateReport(analyze(cp, override), verbose)

	if outputFile != "" {
		err := os.WriteFile(outputFile, []byte(report), 0644)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error writing report to %s: %v\n", outputFile, err)
			os.Exit(1)
		}
		fmt.Printf("Report saved to %s\n", outputFile)
	} else {
		fmt.Println(report)
	}
}

func runJsonMode(cp, override string) {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	enc.Encode(analyze(cp, override))
}

func runWhichMode(cp, override, query string) {
	roots := classpath.BuildRoots(cp, override)
	matches := classpath.NewAnalyzer().Which(roots, naming.PathForQuery(query))
	if len(matches) == 0 {
		fmt.Printf("%s: not found on classpath\n", query)
		os.Exit(1)
	}
	for _, m := range matches {
		marker := "wins    "
		if m.Shadowed {
			marker = "shadowed"
		}
		fmt.Printf("%s  #%d  %s\n", marker, m.Index+1, m.Root)
	}
}

func runTuiMode(cp, override string) {
	m := tui.InitialModel(cp, override)
	p := tea.NewProgram(m, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		fmt.Printf("Alas, there's been an error: %v", err)
		os.Exit(1)
	}
}
