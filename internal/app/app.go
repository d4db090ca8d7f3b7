package app

import (
	"context"
	"os"

	"github.com/maxbolgarin/abstract"
	"github.com/maxbolgarin/commitgen/internal/agent"
	"github.com/maxbolgarin/commitgen/internal/committer"
	"github.com/maxbolgarin/commitgen/internal/config"
	"github.com/maxbolgarin/commitgen/internal/git"
	"github.com/maxbolgarin/commitgen/internal/message"
	"github.com/maxbolgarin/commitgen/internal/model"
	"github.com/maxbolgarin/commitgen/internal/model/interfaces"
	"github.com/maxbolgarin/commitgen/internal/project"
	"github.com/maxbolgarin/errm"
	"github.com/maxbolgarin/logze/v2"
)

// Options represents a single pipeline run
type Options struct {
	Mode        model.RunMode
	Push        bool
	AssumeYes   bool
	Diff        string // bypass live diff collection, useful for testing
	MessageFile string // target of auto mode, set by the git hook
}

// App wires the commit message pipeline: collect diff, detect project,
// prompt the model, validate the answer, commit
type App struct {
	agent interfaces.AIAgent

	cfg config.Config
	log logze.Logger
}

// New creates the application with a live AI agent
func New(ctx context.Context, cfg config.Config) (*App, error) {
	ag, err := agent.New(ctx, cfg.Agent)
	if err != nil {
		return nil, errm.Wrap(err, "failed to create AI agent")
	}
	return NewWithAgent(cfg, ag), nil
}

// NewWithAgent creates the application on top of a prepared agent
func NewWithAgent(cfg config.Config, ag interfaces.AIAgent) *App {
	return &App{
		agent: ag,
		cfg:   cfg,
		log:   logze.With("component", "app"),
	}
}

// Generate runs the whole pipeline once.
// Every failure aborts before any repository mutation.
func (a *App) Generate(ctx context.Context, opts Options) error {
	timer := abstract.StartTimer()

	var (
		repo        *git.Client
		files       []model.StagedChange
		diff        string
		projectType = model.ProjectUnknown
		err         error
	)

	if opts.Diff != "" {
		diff = opts.Diff
		if wd, err := os.Getwd(); err == nil {
			projectType = project.Detect(wd)
		}
	} else {
		repo, err = git.New(ctx, ".")
		if err != nil {
			return err
		}

		// the single most important early exit: no staged changes means
		// no API call at all
		files, err = repo.StagedChanges(ctx)
		if err != nil {
			return err
		}
		diff, err = repo.StagedDiff(ctx)
		if err != nil {
			return err
		}

		if root, err := repo.TopLevel(ctx); err == nil {
			projectType = project.Detect(root)
		}
	}

	a.log.Debug("collected staged changes",
		"files", len(files),
		"diff_length", len(diff),
		"project_type", projectType,
	)

	raw, err := a.agent.GenerateCommitMessage(ctx, diff, files, projectType)
	if err != nil {
		return err
	}

	msg, fellBack := message.Parse(raw)
	if fellBack {
		a.log.Warn("model output failed validation, using fallback message", "raw", raw)
	}

	if repo == nil && opts.Mode == model.ModeInteractive {
		return model.ErrNotGitRepository
	}

	comm := committer.New(repo, a.cfg.Git.PushRemote)
	err = comm.Run(ctx, msg, committer.Options{
		Mode:        opts.Mode,
		Push:        opts.Push,
		AssumeYes:   opts.AssumeYes,
		MessageFile: opts.MessageFile,
	})
	if err != nil {
		return err
	}

	a.log.Debug("pipeline finished", "elapsed_time", timer.ElapsedTime().String())

	return nil
}
