package hook

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/maxbolgarin/errm"
)

// hookMarker identifies hooks written by this tool, so uninstall never
// removes a foreign prepare-commit-msg hook
const hookMarker = "# commitgen prepare-commit-msg hook"

const hookName = "prepare-commit-msg"

var hookTemplate = `#!/bin/sh
%s

# Only run for regular commits (not merges, rebases, etc.)
case "$2" in
""|message)
    %q message --output "$1"
    ;;
esac
`

// Install writes the prepare-commit-msg hook into the given .git directory.
// The hook shells out to this binary in auto mode.
func Install(gitDir string) (string, error) {
	execPath, err := os.Executable()
	if err != nil {
		return "", errm.Wrap(err, "resolve executable path")
	}

	hooksDir := filepath.Join(gitDir, "hooks")
	if err := os.MkdirAll(hooksDir, 0o755); err != nil {
		return "", errm.Wrap(err, "create hooks directory")
	}

	hookPath := filepath.Join(hooksDir, hookName)
	body := fmt.Sprintf(hookTemplate, hookMarker, execPath)

	if err := os.WriteFile(hookPath, []byte(body), 0o755); err != nil {
		return "", errm.Wrap(err, "write hook file")
	}

	return hookPath, nil
}

// Uninstall removes the hook if it was installed by this tool.
// A foreign hook is left in place and reported via the returned flag.
func Uninstall(gitDir string) (removed bool, err error) {
	hookPath := filepath.Join(gitDir, "hooks", hookName)

	content, err := os.ReadFile(hookPath)
	if os.IsNotExist(err) {
		return false, nil
	}
	if err != nil {
		return false, errm.Wrap(err, "read hook file")
	}

	if !strings.Contains(string(content), hookMarker) {
		return false, nil
	}

	if err := os.Remove(hookPath); err != nil {
		return false, errm.Wrap(err, "remove hook file")
	}
	return true, nil
}

// Installed reports whether our hook is present in the given .git directory
func Installed(gitDir string) bool {
	content, err := os.ReadFile(filepath.Join(gitDir, "hooks", hookName))
	if err != nil {
		return false
	}
	return strings.Contains(string(content), hookMarker)
}
