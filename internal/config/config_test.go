package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/maxbolgarin/commitgen/internal/agent"
	"github.com/maxbolgarin/commitgen/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func clearEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{
		"OPENAI_API_KEY", "GEMINI_API_KEY", "ANTHROPIC_API_KEY",
		"AI_COMMIT_PROVIDER", "AI_COMMIT_API_KEY", "AI_COMMIT_MODEL",
		"AI_COMMIT_MAX_DIFF_LENGTH", "AI_COMMIT_TEMPERATURE",
		"AI_COMMIT_MAX_TOKENS", "AI_COMMIT_PUSH_REMOTE",
	} {
		t.Setenv(key, "")
		require.NoError(t, os.Unsetenv(key))
	}
}

func TestLoadFromEnv(t *testing.T) {
	clearEnv(t)
	t.Setenv("OPENAI_API_KEY", "sk-test")
	t.Setenv("AI_COMMIT_MODEL", "gpt-4")
	t.Setenv("AI_COMMIT_MAX_DIFF_LENGTH", "4000")
	t.Setenv("AI_COMMIT_TEMPERATURE", "0.7")

	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, agent.OpenAI, cfg.Agent.Type)
	assert.Equal(t, "sk-test", cfg.Agent.APIKey)
	assert.Equal(t, "gpt-4", cfg.Agent.Model)
	assert.Equal(t, 4000, cfg.Agent.MaxDiffLength)
	assert.InDelta(t, 0.7, cfg.Agent.Temperature, 0.001)
	assert.Equal(t, "origin", cfg.Git.PushRemote)
}

func TestLoadMissingAPIKeyFailsFast(t *testing.T) {
	clearEnv(t)

	_, err := Load("")
	assert.ErrorIs(t, err, model.ErrMissingAPIKey)
}

func TestLoadProviderSpecificKey(t *testing.T) {
	clearEnv(t)
	t.Setenv("AI_COMMIT_PROVIDER", "gemini")
	t.Setenv("GEMINI_API_KEY", "gm-test")

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, agent.Gemini, cfg.Agent.Type)
	assert.Equal(t, "gm-test", cfg.Agent.APIKey)
}

func TestLoadDefaults(t *testing.T) {
	clearEnv(t)
	t.Setenv("OPENAI_API_KEY", "sk-test")

	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, 8000, cfg.Agent.MaxDiffLength)
	assert.Equal(t, 100, cfg.Agent.MaxTokens)
	assert.InDelta(t, 0.3, cfg.Agent.Temperature, 0.001)
	assert.Equal(t, 30*time.Second, cfg.Agent.Timeout)
}

func TestLoadFromYAMLFile(t *testing.T) {
	clearEnv(t)

	path := filepath.Join(t.TempDir(), "config.yml")
	body := "agent:\n  type: claude\n  api_key: cl-test\n  model: claude-3-5-haiku-20241022\ngit:\n  push_remote: upstream\n"
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, agent.Claude, cfg.Agent.Type)
	assert.Equal(t, "cl-test", cfg.Agent.APIKey)
	assert.Equal(t, "upstream", cfg.Git.PushRemote)
}
