package hook

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInstallAndUninstall(t *testing.T) {
	gitDir := t.TempDir()

	hookPath, err := Install(gitDir)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(gitDir, "hooks", "prepare-commit-msg"), hookPath)

	content, err := os.ReadFile(hookPath)
	require.NoError(t, err)
	assert.Contains(t, string(content), hookMarker)
	assert.Contains(t, string(content), "message --output")

	info, err := os.Stat(hookPath)
	require.NoError(t, err)
	assert.NotZero(t, info.Mode()&0o111, "hook must be executable")

	assert.True(t, Installed(gitDir))

	removed, err := Uninstall(gitDir)
	require.NoError(t, err)
	assert.True(t, removed)
	assert.NoFileExists(t, hookPath)
}

func TestUninstallMissingHook(t *testing.T) {
	removed, err := Uninstall(t.TempDir())
	require.NoError(t, err)
	assert.False(t, removed)
}

func TestUninstallForeignHookIsKept(t *testing.T) {
	gitDir := t.TempDir()
	hooksDir := filepath.Join(gitDir, "hooks")
	require.NoError(t, os.MkdirAll(hooksDir, 0o755))

	hookPath := filepath.Join(hooksDir, "prepare-commit-msg")
	require.NoError(t, os.WriteFile(hookPath, []byte("#!/bin/sh\necho mine\n"), 0o755))

	removed, err := Uninstall(gitDir)
	require.NoError(t, err)
	assert.False(t, removed, "a foreign hook must never be removed")
	assert.FileExists(t, hookPath)

	assert.False(t, Installed(gitDir))
}
