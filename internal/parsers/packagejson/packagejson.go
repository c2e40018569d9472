// Package packagejson parses package.json's "scripts" table (spec §4.1).
package packagejson

import (
	"bytes"
	"encoding/json"

	"github.com/aleyan/dela/internal/task"
)

// Parser implements parsers.DefinitionParser for package.json scripts.
type Parser struct{}

func (Parser) Family() task.Family { return task.FamilyPackageJSON }

type packageJSON struct {
	Scripts map[string]string `json:"scripts"`
}

// Parse emits one RawTask per key under top-level "scripts", ignoring
// every other field, in declaration order. Malformed JSON is a
// ParseError (spec §4.1).
func (p Parser) Parse(data []byte, _ string) ([]task.RawTask, task.Status, string) {
	var pkg packageJSON
	if err := json.Unmarshal(data, &pkg); err != nil {
		return nil, task.ParseError, err.Error()
	}

	order := scriptKeyOrder(data)
	tasks := make([]task.RawTask, 0, len(order))
	for _, name := range order {
		desc, ok := pkg.Scripts[name]
		if !ok {
			continue
		}
		tasks = append(tasks, task.RawTask{
			SourceName:  name,
			Family:      task.FamilyPackageJSON,
			Description: desc,
		})
	}
	return tasks, task.Parsed, ""
}

// scriptKeyOrder walks the raw token stream to recover the declaration
// order of keys under top-level "scripts", since Go's encoding/json
// discards object key order when unmarshalling into a map.
func scriptKeyOrder(data []byte) []string {
	dec := json.NewDecoder(bytes.NewReader(data))

	depth := 0
	inScripts := false
	scriptsDepth := 0
	var order []string

	for {
		tok, err := dec.Token()
		if err != nil {
			break
		}
		switch v := tok.(type) {
		case json.Delim:
			switch v {
			case '{', '[':
				depth++
			case '}', ']':
				if inScripts && depth == scriptsDepth {
					inScripts = false
				}
				depth--
			}
		case string:
			if !inScripts && depth == 1 && v == "scripts" {
				inScripts = true
				scriptsDepth = depth + 1
				continue
			}
			if inScripts && depth == scriptsDepth {
				order = append(order, v)
				// The following token is this key's value; skip it by
				// reading and discarding if it's a scalar. Nested
				// objects/arrays are not valid script values, so a
				// plain Token() read is sufficient.
				if _, err := dec.Token(); err != nil {
					return order
				}
			}
		}
	}
	return order
}
