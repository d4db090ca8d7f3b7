package committer

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/maxbolgarin/commitgen/internal/model"
	"github.com/maxbolgarin/commitgen/internal/model/interfaces"
	"github.com/maxbolgarin/errm"
	"github.com/maxbolgarin/logze/v2"
)

// Options control how the final message is written
type Options struct {
	Mode        model.RunMode
	Push        bool
	AssumeYes   bool
	MessageFile string // target file in auto mode, used by the git hook
}

// Committer presents the final message and performs the commit.
// A declined confirmation is not an error: the index stays staged.
type Committer struct {
	repo   interfaces.Repository
	remote string

	in  io.Reader
	out io.Writer
	log logze.Logger
}

// New creates a committer talking to the controlling terminal
func New(repo interfaces.Repository, remote string) *Committer {
	return &Committer{
		repo:   repo,
		remote: remote,
		in:     os.Stdin,
		out:    os.Stdout,
		log:    logze.With("component", "committer"),
	}
}

// NewWithIO creates a committer with injected input/output streams
func NewWithIO(repo interfaces.Repository, remote string, in io.Reader, out io.Writer) *Committer {
	c := New(repo, remote)
	c.in = in
	c.out = out
	return c
}

// Run executes the configured run mode for the given message
func (c *Committer) Run(ctx context.Context, msg model.CommitMessage, opts Options) error {
	serialized := msg.String()

	switch opts.Mode {
	case model.ModeDryRun:
		fmt.Fprintf(c.out, "Generated commit message: %s\n", serialized)
		fmt.Fprintln(c.out, "Dry run completed. No commit made")
		return nil

	case model.ModeAuto:
		return c.writeMessage(serialized, opts.MessageFile)

	default:
		return c.commitInteractive(ctx, serialized, opts)
	}
}

// writeMessage writes the message to the commit-message file consumed by
// git's own commit machinery, or to the output stream when no file is given
func (c *Committer) writeMessage(msg, path string) error {
	if path == "" {
		fmt.Fprintln(c.out, msg)
		return nil
	}
	if err := os.WriteFile(path, []byte(msg+"\n"), 0o644); err != nil {
		return errm.Wrap(err, "write commit message file")
	}
	c.log.Debug("commit message written", "file", path)
	return nil
}

func (c *Committer) commitInteractive(ctx context.Context, msg string, opts Options) error {
	fmt.Fprintf(c.out, "Generated commit message: %s\n", msg)

	if !opts.AssumeYes && !c.confirm() {
		fmt.Fprintln(c.out, "Commit cancelled")
		return nil
	}

	if err := c.repo.Commit(ctx, msg); err != nil {
		return errm.Wrap(err, "commit failed")
	}
	fmt.Fprintln(c.out, "Commit successful")

	if opts.Push {
		c.push(ctx)
	}

	return nil
}

// confirm asks for a yes/no answer, defaulting to yes on an empty line
func (c *Committer) confirm() bool {
	fmt.Fprint(c.out, "Commit with this message? [Y/n]: ")

	reader := bufio.NewReader(c.in)
	line, err := reader.ReadString('\n')
	if err != nil && line == "" {
		return false
	}

	answer := strings.ToLower(strings.TrimSpace(line))
	return answer == "" || answer == "y" || answer == "yes"
}

// push is best-effort: a failure is reported but the already-completed
// commit is never rolled back
func (c *Committer) push(ctx context.Context) {
	branch, err := c.repo.CurrentBranch(ctx)
	if err != nil {
		c.log.Err(err, "cannot resolve branch for push")
		fmt.Fprintln(c.out, "Push failed")
		return
	}

	fmt.Fprintf(c.out, "Pushing to %s/%s...\n", c.remote, branch)
	if err := c.repo.Push(ctx, c.remote, branch); err != nil {
		c.log.Err(err, "push failed", "remote", c.remote, "branch", branch)
		fmt.Fprintln(c.out, "Push failed")
		return
	}
	fmt.Fprintln(c.out, "Push successful")
}
