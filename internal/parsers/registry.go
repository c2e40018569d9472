package parsers

import (
	"github.com/aleyan/dela/internal/parsers/cmake"
	"github.com/aleyan/dela/internal/parsers/compose"
	"github.com/aleyan/dela/internal/parsers/githubactions"
	"github.com/aleyan/dela/internal/parsers/gradle"
	"github.com/aleyan/dela/internal/parsers/justfile"
	"github.com/aleyan/dela/internal/parsers/makefile"
	"github.com/aleyan/dela/internal/parsers/maven"
	"github.com/aleyan/dela/internal/parsers/packagejson"
	"github.com/aleyan/dela/internal/parsers/pyproject"
	"github.com/aleyan/dela/internal/parsers/taskfile"
	"github.com/aleyan/dela/internal/parsers/travis"
)

// Registry is the static table of known definition-file patterns, in the
// exact resolution order spec §4.4 fixes as the default task ordering.
// The GitHub Actions entry is handled specially by the discovery engine
// (it expands a directory glob rather than a single filename) but is
// listed here too so its parser and position in the order are obvious at
// a glance.
var Registry = []Registration{
	{Pattern: "Makefile", Parser: makefile.Parser{}},
	{Pattern: "package.json", Parser: packagejson.Parser{}},
	{Pattern: "pyproject.toml", Parser: pyproject.Parser{}},
	{Pattern: "Taskfile.yml", Parser: taskfile.Parser{}},
	{Pattern: "pom.xml", Parser: maven.Parser{}},
	{Pattern: "build.gradle", Parser: gradle.Parser{}},
	{Pattern: "build.gradle.kts", Parser: gradle.Parser{}},
	{Pattern: ".github/workflows/*", Parser: githubactions.Parser{}},
	{Pattern: "docker-compose.yml", Parser: compose.Parser{}},
	{Pattern: "compose.yml", Parser: compose.Parser{}},
	{Pattern: "CMakeLists.txt", Parser: cmake.Parser{}},
	{Pattern: ".travis.yml", Parser: travis.Parser{}},
	{Pattern: "Justfile", CaseFold: true, Parser: justfile.Parser{}},
}
