package model

import (
	"strings"
	"time"
)

// ChangeKind represents the kind of a staged file change
type ChangeKind string

const (
	ChangeAdded    ChangeKind = "added"
	ChangeModified ChangeKind = "modified"
	ChangeDeleted  ChangeKind = "deleted"
	ChangeRenamed  ChangeKind = "renamed"
)

// StagedChange represents a single file staged in the git index
type StagedChange struct {
	Path string
	Kind ChangeKind
}

// ProjectType is a coarse ecosystem label used to enrich the prompt
type ProjectType string

const (
	ProjectNode    ProjectType = "node"
	ProjectPython  ProjectType = "python"
	ProjectJava    ProjectType = "java"
	ProjectRust    ProjectType = "rust"
	ProjectGo      ProjectType = "go"
	ProjectPHP     ProjectType = "php"
	ProjectUnknown ProjectType = "unknown"
)

// CommitType is a conventional commit type tag
type CommitType string

// Supported conventional commit types
const (
	TypeFeat     CommitType = "feat"
	TypeFix      CommitType = "fix"
	TypeDocs     CommitType = "docs"
	TypeRefactor CommitType = "refactor"
	TypeTest     CommitType = "test"
	TypeChore    CommitType = "chore"
	TypeStyle    CommitType = "style"
	TypePerf     CommitType = "perf"
	TypeBuild    CommitType = "build"
	TypeCI       CommitType = "ci"
)

// CommitTypes lists all supported commit types
var CommitTypes = []CommitType{
	TypeFeat, TypeFix, TypeDocs, TypeRefactor, TypeTest,
	TypeChore, TypeStyle, TypePerf, TypeBuild, TypeCI,
}

// CommitMessage represents a parsed conventional commit message
type CommitMessage struct {
	Type        CommitType
	Scope       string
	Description string
}

// String serializes the message to "type(scope): description" form
func (m CommitMessage) String() string {
	var b strings.Builder
	b.WriteString(string(m.Type))
	if m.Scope != "" {
		b.WriteString("(")
		b.WriteString(m.Scope)
		b.WriteString(")")
	}
	b.WriteString(": ")
	b.WriteString(m.Description)
	return b.String()
}

// RunMode governs whether and how the final commit is written
type RunMode string

const (
	ModeDryRun      RunMode = "dry-run"
	ModeInteractive RunMode = "interactive"
	ModeAuto        RunMode = "auto"
)

// ModelConfig represents model-specific configuration
type ModelConfig struct {
	APIKey   string
	Model    string
	URL      string
	ProxyURL string
	IsTest   bool
}

// APIRequest represents a request to an LLM API
type APIRequest struct {
	Prompt       string
	SystemPrompt string
	MaxTokens    int
	Temperature  float32
	URL          string
	ResponseType string
}

// APIResponse represents a response from an LLM API
type APIResponse struct {
	CreateTime       time.Time
	Content          string
	PromptTokens     int
	CompletionTokens int
	TotalTokens      int
}

// Prompt represents a structured prompt for LLM
type Prompt struct {
	SystemPrompt string
	UserPrompt   string
}
