// Package githubactions parses a single GitHub Actions workflow file into
// a RawTask (spec §4.1). Jobs within a workflow are not enumerated
// individually.
//
// Grounded on the teacher's internal/workflow.ParseWorkflowFile: read the
// file, sanity-check its size and byte content before unmarshalling, then
// decode with github.com/goccy/go-yaml.
package githubactions

import (
	"bytes"
	"path/filepath"
	"strings"

	"github.com/goccy/go-yaml"

	"github.com/aleyan/dela/internal/task"
)

// Parser implements parsers.DefinitionParser for .github/workflows files.
// Unlike every other format, the discovery engine invokes this parser
// once per workflow file it finds in .github/workflows (spec §4.4), so
// Parse always returns at most one RawTask.
type Parser struct{}

func (Parser) Family() task.Family { return task.FamilyGithubActions }

// maxWorkflowSizeBytes mirrors the teacher's defense-in-depth size cap
// before handing untrusted YAML to the parser.
const maxWorkflowSizeBytes = 1 * 1024 * 1024

type workflowDoc struct {
	Name string `yaml:"name"`
}

// Parse emits a single RawTask whose source_name is the workflow's "name"
// field, falling back to the file's stem when absent. Description is
// "<workflow name>" (spec §4.1).
func (p Parser) Parse(data []byte, absPath string) ([]task.RawTask, task.Status, string) {
	if len(data) > maxWorkflowSizeBytes {
		return nil, task.ParseError, "workflow file exceeds maximum size"
	}
	if bytes.Contains(data, []byte{0x00}) {
		return nil, task.ParseError, "workflow file contains null bytes"
	}

	var doc workflowDoc
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, task.ParseError, err.Error()
	}

	name := strings.TrimSpace(doc.Name)
	if name == "" {
		base := filepath.Base(absPath)
		name = strings.TrimSuffix(strings.TrimSuffix(base, ".yml"), ".yaml")
	}

	return []task.RawTask{{
		SourceName:  name,
		Family:      task.FamilyGithubActions,
		Description: name,
	}}, task.Parsed, ""
}
