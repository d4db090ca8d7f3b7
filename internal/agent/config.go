package agent

import (
	"slices"
	"time"

	"github.com/maxbolgarin/commitgen/internal/model"
	"github.com/maxbolgarin/erro"
	"github.com/maxbolgarin/lang"
)

const (
	defaultTemperature   = 0.3
	defaultMaxTokens     = 100
	defaultMaxDiffLength = 8000
	defaultTimeout       = 30 * time.Second
	defaultUserAgent     = "commitgen/0.1.0 (https://github.com/maxbolgarin/commitgen)"
)

// AgentType represents the type of AI agent
type AgentType string

// SupportedAgentTypes defines the supported AI agent types
const (
	OpenAI AgentType = "openai"
	Claude AgentType = "claude"
	Gemini AgentType = "gemini"
)

var supportedAgentTypes = []AgentType{OpenAI, Claude, Gemini}

// Config represents AI agent configuration
type Config struct {
	Type        AgentType `yaml:"type" env:"AI_COMMIT_PROVIDER"`
	APIKey      string    `yaml:"api_key" env:"AI_COMMIT_API_KEY"`
	Model       string    `yaml:"model" env:"AI_COMMIT_MODEL"`
	Temperature float32   `yaml:"temperature" env:"AI_COMMIT_TEMPERATURE"`
	MaxTokens   int       `yaml:"max_tokens" env:"AI_COMMIT_MAX_TOKENS"`

	// MaxDiffLength is the character budget for diff text inside the prompt
	MaxDiffLength int `yaml:"max_diff_length" env:"AI_COMMIT_MAX_DIFF_LENGTH"`

	BaseURL   string        `yaml:"base_url" env:"AI_COMMIT_BASE_URL"` // Custom API endpoint (Azure OpenAI, local models, etc.)
	ProxyURL  string        `yaml:"proxy_url" env:"AI_COMMIT_PROXY_URL"`
	Timeout   time.Duration `yaml:"timeout" env:"AI_COMMIT_TIMEOUT"`
	UserAgent string        `yaml:"user_agent" env:"AI_COMMIT_USER_AGENT"`
	IsTest    bool          `yaml:"is_test" env:"AI_COMMIT_IS_TEST"`
}

func (c *Config) PrepareAndValidate() error {
	c.Type = AgentType(lang.Check(string(c.Type), string(OpenAI)))
	if !slices.Contains(supportedAgentTypes, c.Type) {
		return erro.New("invalid agent type: %s", c.Type)
	}
	if c.APIKey == "" {
		return model.ErrMissingAPIKey
	}
	if c.Temperature < 0 || c.Temperature > 1 {
		return erro.New("temperature must be in [0.0, 1.0], got %v", c.Temperature)
	}

	c.Temperature = lang.Check(c.Temperature, defaultTemperature)
	c.MaxTokens = lang.Check(c.MaxTokens, defaultMaxTokens)
	c.MaxDiffLength = lang.Check(c.MaxDiffLength, defaultMaxDiffLength)
	c.Timeout = lang.Check(c.Timeout, defaultTimeout)
	c.UserAgent = lang.Check(c.UserAgent, defaultUserAgent)

	return nil
}
