// Package task defines the normalized Task model shared by every component
// downstream of parsing, per spec.md §3.
package task

import "github.com/aleyan/dela/internal/runnerkind"

// Family identifies the definition file format a task was parsed from.
type Family string

const (
	FamilyMakefile      Family = "Makefile"
	FamilyPackageJSON   Family = "PackageJson"
	FamilyPyprojectToml Family = "PyprojectToml"
	FamilyTaskfile      Family = "Taskfile"
	FamilyMavenPom      Family = "MavenPom"
	FamilyGradle        Family = "Gradle"
	FamilyGithubActions Family = "GithubActions"
	FamilyDockerCompose Family = "DockerCompose"
	FamilyCMake         Family = "CMake"
	FamilyTravis        Family = "Travis"
	FamilyJustfile      Family = "Justfile"
)

// ShadowKind distinguishes the two ways a task name can be intercepted
// before it ever reaches dela's command-not-found delegation (spec §4.3).
type ShadowKind int

const (
	NoShadow ShadowKind = iota
	ShellBuiltin
	PathExecutable
)

// Shadow records that a Task's source_name would be captured by the
// active shell before the not-found handler fires.
type Shadow struct {
	Kind ShadowKind
	// Shell is populated when Kind == ShellBuiltin (e.g. "zsh").
	Shell string
	// Path is populated when Kind == PathExecutable (absolute path of the
	// shadowing executable).
	Path string
}

// RawTask is the output of a single definition-file parser (spec §4.1):
// a pure (bytes, path) -> (list<RawTask>, status) function's per-task
// record, before runner resolution, shadow detection or disambiguation.
type RawTask struct {
	SourceName  string
	Family      Family
	Description string
}

// Task is the normalized, addressable unit produced by discovery (spec §3).
type Task struct {
	SourceName       string
	UniqueName       string
	Runner           runnerkind.Kind
	DefinitionFamily Family
	FilePath         string
	Description      string
	Shadow           *Shadow
	RunnerAvailable  bool
}

// Status is the outcome of attempting to resolve and parse one definition
// file (spec §3's DefinitionFile).
type Status int

const (
	Parsed Status = iota
	ParseError
	NotReadable
	NotFound
	NotImplemented
)

func (s Status) String() string {
	switch s {
	case Parsed:
		return "parsed"
	case ParseError:
		return "parse_error"
	case NotReadable:
		return "not_readable"
	case NotFound:
		return "not_found"
	case NotImplemented:
		return "not_implemented"
	default:
		return "unknown"
	}
}

// DefinitionFile is retained on DiscoveredTasks for diagnostic display even
// when zero tasks were extracted from it (spec §3).
type DefinitionFile struct {
	Path    string
	Family  Family
	Status  Status
	Message string // populated when Status is ParseError or NotReadable
}

// DiscoveredTasks is the canonical output of the discovery engine (spec §3/C4).
type DiscoveredTasks struct {
	Tasks  []Task
	Files  []DefinitionFile
	Errors []string
}
