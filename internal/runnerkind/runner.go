// Package runnerkind enumerates the concrete task runners dela knows how to
// invoke, and the family->runner resolution rules from spec §4.2.
package runnerkind

import (
	"os"
	"os/exec"
	"path/filepath"
	"sync"

	"github.com/BurntSushi/toml"
)

func tomlDecode(data []byte, v any) error {
	_, err := toml.Decode(string(data), v)
	return err
}

// Kind is a closed enumeration of the runner programs dela can dispatch to.
type Kind int

const (
	Unknown Kind = iota
	Make
	Npm
	Pnpm
	Yarn
	Bun
	Uv
	Poetry
	Poe
	Task
	Mvn
	Gradle
	Act
	Compose
	Cmake
	Travis
	Just
)

// ShortName returns the stable identifier used both for suffix derivation
// (spec §4.5) and, for every runner but Compose (see probeBinary), PATH
// availability probing (spec §4.2).
func (k Kind) ShortName() string {
	switch k {
	case Make:
		return "make"
	case Npm:
		return "npm"
	case Pnpm:
		return "pnpm"
	case Yarn:
		return "yarn"
	case Bun:
		return "bun"
	case Uv:
		return "uv"
	case Poetry:
		return "poetry"
	case Poe:
		return "poe"
	case Task:
		return "task"
	case Mvn:
		return "mvn"
	case Gradle:
		return "gradle"
	case Act:
		return "act"
	case Compose:
		return "compose"
	case Cmake:
		return "cmake"
	case Travis:
		return "travis"
	case Just:
		return "just"
	default:
		return ""
	}
}

// String implements fmt.Stringer for logging/debug output.
func (k Kind) String() string {
	if s := k.ShortName(); s != "" {
		return s
	}
	return "unknown"
}

// --- Availability probing (spec §4.2: "Probing is cached in-process") ---
//
// Grounded on internal/docker.IsAvailable's exec.LookPath check, trimmed to
// a pure PATH lookup since runners are plain binaries, not daemons, and
// wrapped in the same kind of process-lifetime memoizing cache the teacher
// uses for GetDetentDir (a map guarded by a sync.RWMutex instead of a
// single cached string).
var (
	availabilityMu    sync.RWMutex
	availabilityCache = map[string]bool{}
)

// LookPath is overridable in tests.
var LookPath = exec.LookPath

// probeBinary returns the actual executable name to test on PATH for k.
// For every runner but Compose this is k.ShortName(). docker-compose's
// short-name is "compose" (spec's Data Model/Glossary list it as such,
// for disambiguation suffixes), but the program dela actually invokes is
// "docker compose ..." (spec §4.7), so the binary worth probing is
// "docker" - probing a literal "compose" executable would report
// unavailable on every host that only has the Docker CLI plugin.
func probeBinary(k Kind) string {
	if k == Compose {
		return "docker"
	}
	return k.ShortName()
}

// Available reports whether the runner's probed executable (probeBinary:
// the short-name, or "docker" for Compose) resolves on PATH. The result is
// cached for the lifetime of the process (spec §4.2), keyed by that
// executable name since every Task sharing a runner shares the same answer.
func Available(k Kind) bool {
	name := probeBinary(k)
	if name == "" {
		return false
	}

	availabilityMu.RLock()
	cached, ok := availabilityCache[name]
	availabilityMu.RUnlock()
	if ok {
		return cached
	}

	availabilityMu.Lock()
	defer availabilityMu.Unlock()
	if cached, ok := availabilityCache[name]; ok {
		return cached
	}

	_, err := LookPath(name)
	available := err == nil
	availabilityCache[name] = available
	return available
}

// ResetAvailabilityCache clears the in-process probe cache. Exposed for
// tests that mutate PATH between assertions; production code never calls
// this (spec §4.2 caches for the whole process lifetime).
func ResetAvailabilityCache() {
	availabilityMu.Lock()
	defer availabilityMu.Unlock()
	availabilityCache = map[string]bool{}
}

// --- package.json lockfile sniffing (spec §4.2) ---

// lockfilePriority is the priority order for detecting the intended
// package.json runner from ancillary lockfiles in the same directory.
var lockfilePriority = []struct {
	file string
	kind Kind
}{
	{"bun.lockb", Bun},
	{"pnpm-lock.yaml", Pnpm},
	{"yarn.lock", Yarn},
	{"package-lock.json", Npm},
}

// ResolveNodeRunner sniffs dir for a lockfile to decide which package
// manager a package.json's scripts dispatch through, defaulting to npm
// when no lockfile is present (spec §4.2).
func ResolveNodeRunner(dir string) Kind {
	for _, candidate := range lockfilePriority {
		if fileExists(filepath.Join(dir, candidate.file)) {
			return candidate.kind
		}
	}
	return Npm
}

func fileExists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && !info.IsDir()
}

// --- pyproject.toml runner sniffing (spec §4.2) ---

// ResolvePythonRunner inspects pyproject.toml's content to decide which
// Python task runner its scripts dispatch through: presence of
// [tool.poetry] selects Poetry, presence of [tool.poe.tasks] selects poe,
// otherwise uv (spec §4.2).
func ResolvePythonRunner(data []byte) Kind {
	var doc struct {
		Tool struct {
			Poetry map[string]any `toml:"poetry"`
			Poe    struct {
				Tasks map[string]any `toml:"tasks"`
			} `toml:"poe"`
		} `toml:"tool"`
	}
	if err := tomlDecode(data, &doc); err != nil {
		return Uv
	}
	if doc.Tool.Poetry != nil {
		return Poetry
	}
	if len(doc.Tool.Poe.Tasks) > 0 {
		return Poe
	}
	return Uv
}
