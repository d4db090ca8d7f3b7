package config

import (
	"os"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
	"github.com/joho/godotenv"
	"github.com/maxbolgarin/commitgen/internal/agent"
	"github.com/maxbolgarin/errm"
)

// Config represents the main application configuration
type Config struct {
	Agent agent.Config `yaml:"agent"`
	Git   GitConfig    `yaml:"git"`
}

// GitConfig represents git interaction configuration
type GitConfig struct {
	PushRemote string `yaml:"push_remote" env:"AI_COMMIT_PUSH_REMOTE"`
}

// Load reads configuration from an optional YAML file, a .env file and
// environment variables, in that order of increasing priority.
func Load(path string) (Config, error) {
	// .env is optional, same as the environment-only setup
	_ = godotenv.Load()

	var cfg Config
	if path != "" {
		if err := cleanenv.ReadConfig(path, &cfg); err != nil {
			return Config{}, errm.Wrap(err, "read config file")
		}
	} else {
		if err := cleanenv.ReadEnv(&cfg); err != nil {
			return Config{}, errm.Wrap(err, "read environment")
		}
	}

	cfg.SetDefaults()
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

// SetDefaults sets default values for configuration
func (c *Config) SetDefaults() {
	if c.Git.PushRemote == "" {
		c.Git.PushRemote = "origin"
	}
	if c.Agent.APIKey == "" {
		c.Agent.APIKey = apiKeyFromEnv(c.Agent.Type)
	}
	if c.Agent.Timeout == 0 {
		c.Agent.Timeout = 30 * time.Second
	}
}

// Validate validates the configuration
func (c *Config) Validate() error {
	return c.Agent.PrepareAndValidate()
}

// apiKeyFromEnv resolves the provider-specific API key variable
func apiKeyFromEnv(agentType agent.AgentType) string {
	switch agentType {
	case agent.Gemini:
		return os.Getenv("GEMINI_API_KEY")
	case agent.Claude:
		return os.Getenv("ANTHROPIC_API_KEY")
	default:
		return os.Getenv("OPENAI_API_KEY")
	}
}
