// Package discover implements the discovery engine (spec §4.4/C4):
// enumerate definition files in a directory, fan parsing out to the
// per-format parsers, enrich with runner resolution and shadow
// detection, and hand the result to the disambiguator.
package discover

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/aleyan/dela/internal/disambiguate"
	"github.com/aleyan/dela/internal/parsers"
	"github.com/aleyan/dela/internal/runnerkind"
	"github.com/aleyan/dela/internal/shadow"
	"github.com/aleyan/dela/internal/task"
)

// githubActionsPattern is handled specially: it expands to every
// .yml/.yaml file directly inside .github/workflows, not a single name
// (spec §4.4). Nested workflow directories are not scanned (see spec's
// Open Questions).
const githubActionsPattern = ".github/workflows/*"

// Discover enumerates and parses every supported definition file under
// cwd, then disambiguates the resulting task set (spec §4.4 steps 1-5).
func Discover(cwd string) task.DiscoveredTasks {
	det := shadow.NewDetector()
	return discoverWith(cwd, det)
}

func discoverWith(cwd string, det *shadow.Detector) task.DiscoveredTasks {
	var result task.DiscoveredTasks

	for _, reg := range parsers.Registry {
		if reg.Pattern == githubActionsPattern {
			result.Files = append(result.Files, discoverGithubActions(cwd, &result, det)...)
			continue
		}

		path, status := resolveFile(cwd, reg.Pattern, reg.CaseFold)
		if status == task.NotFound {
			continue // absent definition files are not reported (spec §3)
		}

		df, tasks := parseOne(path, reg.Parser)
		result.Files = append(result.Files, df)
		if df.Status == task.ParseError {
			result.Errors = append(result.Errors, fmt.Sprintf("%s: %s", df.Path, df.Message))
		}
		result.Tasks = append(result.Tasks, enrich(tasks, path, det)...)
	}

	disambiguate.Assign(result.Tasks)
	return result
}

// resolveFile looks for pattern in cwd, case-sensitively first and, if
// caseFold is set, falling back to a case-insensitive directory scan
// (spec §4.4.1: "case-sensitive on Linux, case-insensitive fallback
// permitted").
func resolveFile(cwd, pattern string, caseFold bool) (string, task.Status) {
	exact := filepath.Join(cwd, pattern)
	if info, err := os.Stat(exact); err == nil && !info.IsDir() {
		return exact, task.Parsed
	}
	if !caseFold {
		return "", task.NotFound
	}

	entries, err := os.ReadDir(cwd)
	if err != nil {
		return "", task.NotFound
	}
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		if strings.EqualFold(e.Name(), pattern) {
			return filepath.Join(cwd, e.Name()), task.Parsed
		}
	}
	return "", task.NotFound
}

func parseOne(path string, p parsers.DefinitionParser) (task.DefinitionFile, []task.RawTask) {
	data, err := os.ReadFile(path)
	if err != nil {
		return task.DefinitionFile{
			Path:    path,
			Family:  p.Family(),
			Status:  task.NotReadable,
			Message: err.Error(),
		}, nil
	}

	raw, status, message := p.Parse(data, path)
	raw = dedupeBySourceName(raw)

	return task.DefinitionFile{
		Path:    path,
		Family:  p.Family(),
		Status:  status,
		Message: message,
	}, raw
}

// dedupeBySourceName retains the first RawTask for any source_name
// repeated within the same file (spec §4.4 step 3). Cross-file
// duplicates are intentionally NOT deduplicated here.
func dedupeBySourceName(raw []task.RawTask) []task.RawTask {
	seen := map[string]bool{}
	out := make([]task.RawTask, 0, len(raw))
	for _, r := range raw {
		if seen[r.SourceName] {
			continue
		}
		seen[r.SourceName] = true
		out = append(out, r)
	}
	return out
}

func enrich(raw []task.RawTask, path string, det *shadow.Detector) []task.Task {
	dir := filepath.Dir(path)
	tasks := make([]task.Task, 0, len(raw))
	for _, r := range raw {
		runner := resolveRunner(r.Family, path, dir)
		tasks = append(tasks, task.Task{
			SourceName:       r.SourceName,
			UniqueName:       r.SourceName,
			Runner:           runner,
			DefinitionFamily: r.Family,
			FilePath:         path,
			Description:      r.Description,
			Shadow:           det.Detect(r.SourceName),
			RunnerAvailable:  runnerkind.Available(runner),
		})
	}
	return tasks
}

// resolveRunner is the runner resolver from spec §4.2 (C2).
func resolveRunner(family task.Family, path, dir string) runnerkind.Kind {
	switch family {
	case task.FamilyMakefile:
		return runnerkind.Make
	case task.FamilyMavenPom:
		return runnerkind.Mvn
	case task.FamilyGradle:
		return runnerkind.Gradle
	case task.FamilyGithubActions:
		return runnerkind.Act
	case task.FamilyDockerCompose:
		return runnerkind.Compose
	case task.FamilyCMake:
		return runnerkind.Cmake
	case task.FamilyTravis:
		return runnerkind.Travis
	case task.FamilyJustfile:
		return runnerkind.Just
	case task.FamilyTaskfile:
		return runnerkind.Task
	case task.FamilyPackageJSON:
		return runnerkind.ResolveNodeRunner(dir)
	case task.FamilyPyprojectToml:
		data, err := os.ReadFile(path)
		if err != nil {
			return runnerkind.Uv
		}
		return runnerkind.ResolvePythonRunner(data)
	default:
		return runnerkind.Unknown
	}
}

// discoverGithubActions expands .github/workflows/*.{yml,yaml}, sorted
// for determinism, and parses each as its own definition file (spec
// §4.4). Each workflow contributes at most one Task.
func discoverGithubActions(cwd string, result *task.DiscoveredTasks, det *shadow.Detector) []task.DefinitionFile {
	workflowsDir := filepath.Join(cwd, ".github", "workflows")
	entries, err := os.ReadDir(workflowsDir)
	if err != nil {
		return nil
	}

	var names []string
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		lower := strings.ToLower(e.Name())
		if strings.HasSuffix(lower, ".yml") || strings.HasSuffix(lower, ".yaml") {
			names = append(names, e.Name())
		}
	}
	sort.Strings(names)

	var files []task.DefinitionFile
	ghaParser := githubActionsParser()
	for _, name := range names {
		path := filepath.Join(workflowsDir, name)
		df, tasks := parseOne(path, ghaParser)
		files = append(files, df)
		if df.Status == task.ParseError {
			result.Errors = append(result.Errors, fmt.Sprintf("%s: %s", df.Path, df.Message))
		}
		result.Tasks = append(result.Tasks, enrich(tasks, path, det)...)
	}
	return files
}

func githubActionsParser() parsers.DefinitionParser {
	for _, reg := range parsers.Registry {
		if reg.Pattern == githubActionsPattern {
			return reg.Parser
		}
	}
	panic("discover: githubactions parser not registered")
}
