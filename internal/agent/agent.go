package agent

import (
	"context"

	"github.com/maxbolgarin/cliex"
	"github.com/maxbolgarin/commitgen/internal/agent/claude"
	"github.com/maxbolgarin/commitgen/internal/agent/gemini"
	"github.com/maxbolgarin/commitgen/internal/agent/openai"
	"github.com/maxbolgarin/commitgen/internal/agent/prompts"
	"github.com/maxbolgarin/commitgen/internal/model"
	"github.com/maxbolgarin/commitgen/internal/model/interfaces"
	"github.com/maxbolgarin/errm"
	"github.com/maxbolgarin/logze/v2"
)

var _ interfaces.AIAgent = (*Agent)(nil)

// Agent generates commit messages by sending prompts to a configured LLM backend
type Agent struct {
	cfg    Config
	logger logze.Logger
	pb     *prompts.Builder
	api    interfaces.AgentAPI
}

// New creates a new agent with the backend selected by cfg.Type
func New(ctx context.Context, cfg Config) (*Agent, error) {
	if err := cfg.PrepareAndValidate(); err != nil {
		return nil, err
	}
	cli, err := cliex.NewWithConfig(cliex.Config{
		UserAgent:      cfg.UserAgent,
		ProxyAddress:   cfg.ProxyURL,
		RequestTimeout: cfg.Timeout,
	})
	if err != nil {
		return nil, errm.Wrap(err, "failed to create HTTP client")
	}

	agent := &Agent{
		cfg:    cfg,
		logger: logze.With("component", "agent"),
		pb:     prompts.NewBuilder(cfg.MaxDiffLength),
	}

	modelCfg := model.ModelConfig{
		APIKey:   cfg.APIKey,
		Model:    cfg.Model,
		URL:      cfg.BaseURL,
		ProxyURL: cfg.ProxyURL,
		IsTest:   cfg.IsTest,
	}

	switch cfg.Type {
	case OpenAI:
		agent.api, err = openai.New(ctx, cli, modelCfg)
	case Claude:
		agent.api, err = claude.New(ctx, cli, modelCfg)
	case Gemini:
		agent.api, err = gemini.New(ctx, modelCfg)
	default:
		return nil, errm.Errorf("unsupported agent type: %s", cfg.Type)
	}
	if err != nil {
		return nil, errm.Wrap(err, "failed to create agent")
	}

	return agent, nil
}

// NewWithAPI creates an agent on top of a prepared backend.
// It is the seam for replacing the network call with a deterministic stub.
func NewWithAPI(cfg Config, api interfaces.AgentAPI) (*Agent, error) {
	if err := cfg.PrepareAndValidate(); err != nil {
		return nil, err
	}
	return &Agent{
		cfg:    cfg,
		logger: logze.With("component", "agent"),
		pb:     prompts.NewBuilder(cfg.MaxDiffLength),
		api:    api,
	}, nil
}

// GenerateCommitMessage generates a commit message for the staged diff.
// Every backend failure surfaces as model.ErrCompletionService with a cause.
func (a *Agent) GenerateCommitMessage(ctx context.Context, diff string, files []model.StagedChange, project model.ProjectType) (string, error) {
	prompt := a.pb.BuildCommitPrompt(diff, files, project)

	response, err := a.api.CallAPI(ctx, model.APIRequest{
		Prompt:       prompt.UserPrompt,
		SystemPrompt: prompt.SystemPrompt,
		MaxTokens:    a.cfg.MaxTokens,
		Temperature:  a.cfg.Temperature,
		ResponseType: "text/plain",
	})
	if err != nil {
		return "", errm.Wrap(model.ErrCompletionService, err.Error())
	}

	if response.Content == "" {
		return "", errm.Wrap(model.ErrCompletionService, "empty response from API")
	}

	a.logger.Debug("got completion",
		"prompt_tokens", response.PromptTokens,
		"completion_tokens", response.CompletionTokens,
	)

	return response.Content, nil
}
