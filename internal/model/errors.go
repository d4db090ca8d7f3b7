package model

import "errors"

var (
	ErrNotGitRepository  = errors.New("not a git repository")
	ErrNoStagedChanges   = errors.New("no staged changes")
	ErrMissingAPIKey     = errors.New("API key is required")
	ErrCompletionService = errors.New("completion service error")
)
