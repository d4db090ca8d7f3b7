package project

import (
	"os"
	"path/filepath"

	"github.com/maxbolgarin/commitgen/internal/model"
)

// marker maps a manifest filename to its ecosystem label
type marker struct {
	filename string
	label    model.ProjectType
}

// markers are checked in fixed priority order, first match wins
var markers = []marker{
	{"package.json", model.ProjectNode},
	{"requirements.txt", model.ProjectPython},
	{"pyproject.toml", model.ProjectPython},
	{"pom.xml", model.ProjectJava},
	{"Cargo.toml", model.ProjectRust},
	{"go.mod", model.ProjectGo},
	{"composer.json", model.ProjectPHP},
}

// Detect inspects the repository root for ecosystem marker files.
// It never fails: absence of all markers yields ProjectUnknown.
func Detect(root string) model.ProjectType {
	for _, m := range markers {
		if _, err := os.Stat(filepath.Join(root, m.filename)); err == nil {
			return m.label
		}
	}
	return model.ProjectUnknown
}
