// Package allowlist implements the scoped, persisted authorization store
// from spec §3/§4.6 (C6): the AllowlistEntry record, the TOML on-disk
// form, and the is_allowed precedence ladder (Deny > Directory > File >
// Task).
//
// Grounded on the teacher's internal/persistence/config.go: a
// process-cached home-directory resolver guarded by a sync.RWMutex
// (GetDetentDir), and a load-mutate-save lifecycle around a single
// on-disk document. Two deliberate departures from the teacher, both
// required by spec.md rather than stylistic: the on-disk format is TOML
// (github.com/BurntSushi/toml) instead of the teacher's JSON, because
// §3/§4.6 fix the allowlist's wire format; and saves go through a
// sibling-temp-file-then-rename (§4.6: "rewritten atomically"), which
// the teacher's SaveGlobal does not do for its own config file.
package allowlist

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/BurntSushi/toml"

	"github.com/aleyan/dela/internal/delaerr"
	"github.com/aleyan/dela/internal/logging"
)

// Scope is the breadth of a persisted authorization record (spec
// Glossary). Once is never persisted and so has no Scope constant.
type Scope int

const (
	ScopeTask Scope = iota
	ScopeFile
	ScopeDirectory
	ScopeDeny
)

func (s Scope) String() string {
	switch s {
	case ScopeTask:
		return "Task"
	case ScopeFile:
		return "File"
	case ScopeDirectory:
		return "Directory"
	case ScopeDeny:
		return "Deny"
	default:
		return "Unknown"
	}
}

// parseScope parses the TOML "scope" string back into a Scope.
func parseScope(s string) (Scope, bool) {
	switch s {
	case "Task":
		return ScopeTask, true
	case "File":
		return ScopeFile, true
	case "Directory":
		return ScopeDirectory, true
	case "Deny":
		return ScopeDeny, true
	default:
		return 0, false
	}
}

// Entry is an AllowlistEntry (spec §3): path is absolute, Tasks is only
// meaningful (and only persisted) when Scope == ScopeTask.
type Entry struct {
	Path  string
	Scope Scope
	Tasks []string
}

// Decision is the outcome of evaluating is_allowed against an Entry set
// (spec §4.6).
type Decision int

const (
	Unknown Decision = iota
	Allow
	Deny
)

// --- on-disk document shape ---

type fileEntry struct {
	Path  string   `toml:"path"`
	Scope string   `toml:"scope"`
	Tasks []string `toml:"tasks,omitempty"`
}

type fileDoc struct {
	Entries []fileEntry `toml:"entries"`
}

// --- home directory resolution ---

var (
	homeDirMu    sync.RWMutex
	cachedDelaDir string
)

// DirName is the fixed directory name under the user's home directory.
const DirName = ".dela"

// FileName is the allowlist's filename within DirName.
const FileName = "allowlist.toml"

// DefaultDir resolves ~/.dela (spec §6), caching the result for the
// lifetime of the process like the teacher's GetDetentDir.
func DefaultDir() (string, error) {
	homeDirMu.RLock()
	cached := cachedDelaDir
	homeDirMu.RUnlock()
	if cached != "" {
		return cached, nil
	}

	homeDirMu.Lock()
	defer homeDirMu.Unlock()
	if cachedDelaDir != "" {
		return cachedDelaDir, nil
	}

	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("resolving home directory: %w", err)
	}
	cachedDelaDir = filepath.Join(home, DirName)
	return cachedDelaDir, nil
}

// Store holds the in-memory, mutable allowlist and the path it is
// persisted to. All mutation goes through Add/Save so concurrent
// writers only ever lose to last-writer-wins, per spec §4.6/§5.
type Store struct {
	mu      sync.Mutex
	path    string
	entries []Entry
}

// Open loads (or initializes) the allowlist file at dir/allowlist.toml.
// A missing file is not an error: it yields an empty Store, matching
// spec §7's "Allowlist read errors fall back to an empty in-memory
// allowlist."
func Open(dir string) (*Store, error) {
	path := filepath.Join(dir, FileName)
	s := &Store{path: path}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return s, nil
		}
		logging.L().Warn("allowlist: read failed, starting empty", "path", path, "err", err)
		return s, nil
	}

	var doc fileDoc
	if _, decErr := toml.Decode(string(data), &doc); decErr != nil {
		logging.L().Warn("allowlist: parse failed, starting empty", "path", path, "err", decErr)
		return s, nil
	}

	for _, fe := range doc.Entries {
		scope, ok := parseScope(fe.Scope)
		if !ok {
			continue
		}
		s.entries = append(s.entries, Entry{Path: fe.Path, Scope: scope, Tasks: fe.Tasks})
	}
	return s, nil
}

// OpenDefault opens the allowlist at the default ~/.dela location
// (spec §6's HOME env var).
func OpenDefault() (*Store, error) {
	dir, err := DefaultDir()
	if err != nil {
		return nil, err
	}
	return Open(dir)
}

// Entries returns a snapshot of the currently loaded entries.
func (s *Store) Entries() []Entry {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]Entry, len(s.entries))
	copy(out, s.entries)
	return out
}

// Decide evaluates is_allowed for a task identified by its definition
// file's absolute path and source_name, per the precedence ladder in
// spec §4.6: Deny > Directory > File > Task.
func (s *Store) Decide(filePath, sourceName string) Decision {
	s.mu.Lock()
	matching := s.matchingEntriesLocked(filePath)
	s.mu.Unlock()

	for _, e := range matching {
		if e.Scope == ScopeDeny {
			return Deny
		}
	}
	for _, e := range matching {
		if e.Scope == ScopeDirectory {
			return Allow
		}
	}
	for _, e := range matching {
		if e.Scope == ScopeFile {
			return Allow
		}
	}
	for _, e := range matching {
		if e.Scope != ScopeTask {
			continue
		}
		for _, t := range e.Tasks {
			if t == sourceName {
				return Allow
			}
		}
	}
	return Unknown
}

// matchingEntriesLocked collects entries whose path is an ancestor of
// filePath (Directory scope) or equals it (File/Task/Deny scope), per
// spec §4.6 step 1. Caller must hold s.mu.
func (s *Store) matchingEntriesLocked(filePath string) []Entry {
	var out []Entry
	for _, e := range s.entries {
		if e.Scope == ScopeDirectory {
			if isAncestorDir(e.Path, filePath) {
				out = append(out, e)
			}
			continue
		}
		if e.Path == filePath {
			out = append(out, e)
		}
	}
	return out
}

func isAncestorDir(dir, filePath string) bool {
	dir = filepath.Clean(dir)
	rel, err := filepath.Rel(dir, filepath.Clean(filePath))
	if err != nil {
		return false
	}
	if rel == "." {
		return false // a directory is not its own ancestor w.r.t. a file path equal to it
	}
	return rel != ".." && !strings.HasPrefix(rel, ".."+string(filepath.Separator))
}

// Add records a new authorization, merging into an existing Task-scope
// entry for the same path when possible (so repeated "allow this task"
// choices don't pile up duplicate entries - spec §8/P5), then persists.
func (s *Store) Add(e Entry) error {
	s.mu.Lock()
	merged := false
	if e.Scope == ScopeTask {
		for i := range s.entries {
			if s.entries[i].Path == e.Path && s.entries[i].Scope == ScopeTask {
				s.entries[i].Tasks = mergeTasks(s.entries[i].Tasks, e.Tasks)
				merged = true
				break
			}
		}
	} else {
		for _, existing := range s.entries {
			if existing.Path == e.Path && existing.Scope == e.Scope {
				merged = true
				break
			}
		}
	}
	if !merged {
		s.entries = append(s.entries, e)
	}
	s.mu.Unlock()

	return s.Save()
}

func mergeTasks(existing, added []string) []string {
	seen := map[string]bool{}
	out := make([]string, 0, len(existing)+len(added))
	for _, t := range existing {
		if !seen[t] {
			seen[t] = true
			out = append(out, t)
		}
	}
	for _, t := range added {
		if !seen[t] {
			seen[t] = true
			out = append(out, t)
		}
	}
	return out
}

// Save rewrites the allowlist file atomically: write to a sibling temp
// file, then rename over the target (spec §4.6).
func (s *Store) Save() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0o700); err != nil {
		return delaerr.Wrap(delaerr.KindIoError, err, "creating %s", dir)
	}

	doc := fileDoc{Entries: make([]fileEntry, 0, len(s.entries))}
	for _, e := range s.entries {
		doc.Entries = append(doc.Entries, fileEntry{Path: e.Path, Scope: e.Scope.String(), Tasks: e.Tasks})
	}

	var buf strings.Builder
	if err := toml.NewEncoder(&buf).Encode(doc); err != nil {
		return delaerr.Wrap(delaerr.KindIoError, err, "encoding allowlist")
	}

	tmp, err := os.CreateTemp(dir, ".allowlist-*.toml.tmp")
	if err != nil {
		return delaerr.Wrap(delaerr.KindIoError, err, "creating temp allowlist file")
	}
	tmpPath := tmp.Name()
	if _, err := tmp.WriteString(buf.String()); err != nil {
		tmp.Close()
		os.Remove(tmpPath)
		return delaerr.Wrap(delaerr.KindIoError, err, "writing temp allowlist file")
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpPath)
		return delaerr.Wrap(delaerr.KindIoError, err, "closing temp allowlist file")
	}
	if err := os.Chmod(tmpPath, 0o600); err != nil {
		os.Remove(tmpPath)
		return delaerr.Wrap(delaerr.KindIoError, err, "chmod temp allowlist file")
	}
	if err := os.Rename(tmpPath, s.path); err != nil {
		os.Remove(tmpPath)
		return delaerr.Wrap(delaerr.KindIoError, err, "renaming allowlist file")
	}
	return nil
}

// EnsureFile creates an empty allowlist.toml (entries = []) at dir if one
// does not already exist, for the `init` subcommand (spec §4.8).
func EnsureFile(dir string) error {
	path := filepath.Join(dir, FileName)
	if _, err := os.Stat(path); err == nil {
		return nil
	}
	s, err := Open(dir)
	if err != nil {
		return err
	}
	return s.Save()
}
