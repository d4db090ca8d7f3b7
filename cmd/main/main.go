package main

import (
	"context"
	"fmt"

	"github.com/alecthomas/kingpin/v2"
	"github.com/maxbolgarin/commitgen/internal/app"
	"github.com/maxbolgarin/commitgen/internal/config"
	"github.com/maxbolgarin/commitgen/internal/git"
	"github.com/maxbolgarin/commitgen/internal/hook"
	"github.com/maxbolgarin/commitgen/internal/model"
	"github.com/maxbolgarin/contem"
	"github.com/maxbolgarin/erro"
	"github.com/maxbolgarin/logze/v2"
)

var (
	Version, Branch, Commit, BuildDate string
)

var (
	configPath = kingpin.Flag("config", "path to config file").Short('c').String()
	verbose    = kingpin.Flag("verbose", "enable debug logging").Short('v').Bool()

	runCmd = kingpin.Command("run", "generate a commit message for staged changes and commit").Default()
	dryRun = runCmd.Flag("dry-run", "print the message without committing").Bool()
	push   = runCmd.Flag("push", "push after committing").Bool()
	yes    = runCmd.Flag("yes", "skip the confirmation prompt").Short('y').Bool()
	diff   = runCmd.Flag("diff", "use the provided diff instead of staged changes").String()

	messageCmd = kingpin.Command("message", "generate a message without committing, used by the git hook")
	msgDiff    = messageCmd.Flag("diff", "use the provided diff instead of staged changes").String()
	msgOutput  = messageCmd.Flag("output", "write the message to a file instead of stdout").Short('o').String()

	hookCmd       = kingpin.Command("hook", "manage the prepare-commit-msg hook")
	hookInstall   = hookCmd.Command("install", "install the hook into the current repository")
	hookUninstall = hookCmd.Command("uninstall", "remove the hook if it was installed by commitgen")
)

func main() {
	cmd := kingpin.Parse()

	var err error
	ctx := contem.New(contem.WithLogger(logze.DefaultPtr()), contem.Exit(&err))
	defer ctx.Shutdown()

	err = run(ctx, cmd)
	if err != nil {
		logze.DefaultPtr().Error("cannot run", "error", err)
	}
}

func run(ctx contem.Context, cmd string) error {
	level := logze.LevelInfo
	if *verbose {
		level = logze.LevelDebug
	}
	logze.Init(logze.C().WithConsole().WithLevel(level))

	switch cmd {
	case hookInstall.FullCommand():
		return installHook(ctx)
	case hookUninstall.FullCommand():
		return uninstallHook(ctx)
	}

	cfg, err := config.Load(*configPath)
	if err != nil {
		return erro.Wrap(err, "load config")
	}

	commitgen, err := app.New(ctx, cfg)
	if err != nil {
		return erro.Wrap(err, "create app")
	}

	switch cmd {
	case messageCmd.FullCommand():
		return commitgen.Generate(ctx, app.Options{
			Mode:        model.ModeAuto,
			Diff:        *msgDiff,
			MessageFile: *msgOutput,
		})

	default:
		mode := model.ModeInteractive
		if *dryRun {
			mode = model.ModeDryRun
		}
		return commitgen.Generate(ctx, app.Options{
			Mode:      mode,
			Push:      *push,
			AssumeYes: *yes,
			Diff:      *diff,
		})
	}
}

func installHook(ctx context.Context) error {
	gitDir, err := resolveGitDir(ctx)
	if err != nil {
		return err
	}
	hookPath, err := hook.Install(gitDir)
	if err != nil {
		return erro.Wrap(err, "install hook")
	}
	fmt.Println("Git hook installed:", hookPath)
	return nil
}

func uninstallHook(ctx context.Context) error {
	gitDir, err := resolveGitDir(ctx)
	if err != nil {
		return err
	}
	removed, err := hook.Uninstall(gitDir)
	if err != nil {
		return erro.Wrap(err, "uninstall hook")
	}
	if removed {
		fmt.Println("Git hook uninstalled")
	} else {
		fmt.Println("No commitgen prepare-commit-msg hook found, nothing removed")
	}
	return nil
}

func resolveGitDir(ctx context.Context) (string, error) {
	repo, err := git.New(ctx, ".")
	if err != nil {
		return "", err
	}
	return repo.GitDir(ctx)
}
