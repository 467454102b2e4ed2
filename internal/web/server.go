package web

import (
	"embed"
	"encoding/json"
	"io"
	"io/fs"
	"net/http"
	"os"
	"sort"
	"strconv"
	"strings"

	"github.com/charmbracelet/log"

	"lscp/internal/classpath"
	"lscp/internal/model"
	"lscp/internal/naming"
)

//go:embed static/*
var staticFS embed.FS

//go:embed help.md
var helpMD string

// Server exposes the classpath inspector over HTTP. The classpath strings
// are fixed at construction; every request recomputes its answer from the
// filesystem, the same as the CLI modes.
type Server struct {
	classpath string
	override  string
	logger    *log.Logger
}

// NewServer builds a Server for the given classpath strings.
func NewServer(cp, override string) *Server {
	return &Server{
		classpath: cp,
		override:  override,
		logger: log.NewWithOptions(os.Stderr, log.Options{
			Prefix: "lscp-web",
		}),
	}
}

// Start serves until the listener fails.
func (s *Server) Start(port string) error {
	mux := http.NewServeMux()

	// Serve static files
	subFS, _ := fs.Sub(staticFS, "static")
	mux.Handle("/", http.FileServer(http.FS(subFS)))

	// API Endpoints
	mux.HandleFunc("/api/classpath", s.handleClasspath)
	mux.HandleFunc("/api/ls", s.handleLs)
	mux.HandleFunc("/api/which", s.handleWhich)
	mux.HandleFunc("/api/resource", s.handleResource)
	mux.HandleFunc("/api/line-context", s.handleLineContext)
	mux.HandleFunc("/api/help", s.handleHelp)

	s.logger.Info("starting web server", "url", "http://localhost:"+port)
	return http.ListenAndServe(":"+port, mux)
}

func (s *Server) roots() []model.Root {
	return classpath.BuildRoots(s.classpath, s.override)
}

func (s *Server) locator() *classpath.Locator {
	return classpath.NewLocator(s.roots())
}

func (s *Server) handleClasspath(w http.ResponseWriter, r *http.Request) {
	report := classpath.NewAnalyzer().Analyze(s.roots())

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(report)
}

// handleLs lists the direct children of a logical directory across every
// root, merged and sorted.
func (s *Server) handleLs(w http.ResponseWriter, r *http.Request) {
	dir := r.URL.Query().Get("dir")

	names := s.locator().ChildNames(dir)
	sorted := make([]string, 0, len(names))
	for n := range names {
		sorted = append(sorted, n)
	}
	sort.Strings(sorted)

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(sorted)
}

// handleWhich reports every root providing a resource, first match first.
// Accepts either resource= (a relative path) or ns= (a namespace name,
// converted through the codec).
func (s *Server) handleWhich(w http.ResponseWriter, r *http.Request) {
	rel := r.URL.Query().Get("resource")
	if ns := r.URL.Query().Get("ns"); ns != "" {
		rel = naming.NameToPath(ns)
	}
	if rel == "" {
		http.Error(w, "resource or ns is required", 400)
		return
	}

	matches := classpath.NewAnalyzer().Which(s.roots(), rel)

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(matches)
}

// handleResource streams the first match of a resource, directory roots
// only, matching the lookup the tool's consumers would perform.
func (s *Server) handleResource(w http.ResponseWriter, r *http.Request) {
	rel := r.URL.Query().Get("path")
	if rel == "" {
		http.Error(w, "path is required", 400)
		return
	}

	rc, ok := s.locator().FindFirst(rel)
	if !ok {
		http.Error(w, "resource not found on classpath", 404)
		return
	}
	defer rc.Close()

	w.Header().Set("Content-Type", "text/plain")
	if _, err := io.Copy(w, rc); err != nil {
		s.logger.Warn("copying resource", "path", rel, "err", err)
	}
}

func (s *Server) handleLineContext(w http.ResponseWriter, r *http.Request) {
	rel := r.URL.Query().Get("path")
	lineStr := r.URL.Query().Get("line")
	if rel == "" || lineStr == "" {
		http.Error(w, "path and line are required", 400)
		return
	}

	lineNum, err := strconv.Atoi(lineStr)
	if err != nil {
		http.Error(w, "invalid line number", 400)
		return
	}

	rc, ok := s.locator().FindFirst(rel)
	if !ok {
		http.Error(w, "resource not found on classpath", 404)
		return
	}
	defer rc.Close()

	context := model.GetLineContext(rc, lineNum)

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(context)
}

func (s *Server) handleHelp(w http.ResponseWriter, r *http.Request) {
	// Use the embedded help content
	text := strings.ReplaceAll(helpMD, "{{VERSION}}", model.Version)

	w.Header().Set("Content-Type", "text/markdown")
	w.Write([]byte(text))
}
