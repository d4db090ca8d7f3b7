package message

import (
	"regexp"
	"strings"
	"unicode"

	"github.com/maxbolgarin/commitgen/internal/model"
)

// Fallback is the deterministic message used when the model output cannot
// be normalized into a conventional commit.
var Fallback = model.CommitMessage{
	Type:        model.TypeChore,
	Description: "update files",
}

var commitRe = regexp.MustCompile(
	`^(feat|fix|docs|refactor|test|chore|style|perf|build|ci)(\(([^)]+)\))?: (.+)$`)

// Parse normalizes raw completion text into a conventional commit message.
// The second result reports whether the fallback was used.
//
// Only the first non-empty line is used: when the model emits several
// candidates the rest are dropped, which keeps the output deterministic
// and single-line.
func Parse(raw string) (model.CommitMessage, bool) {
	line := firstLine(raw)
	line = stripDecorations(line)
	line = lowerTypeTag(line)

	m := commitRe.FindStringSubmatch(line)
	if m == nil {
		return Fallback, true
	}

	return model.CommitMessage{
		Type:        model.CommitType(m[1]),
		Scope:       m[3],
		Description: normalizeDescription(m[4]),
	}, false
}

// firstLine returns the first non-empty line, skipping markdown fence lines
func firstLine(raw string) string {
	for _, line := range strings.Split(raw, "\n") {
		line = strings.TrimSpace(line)
		if line == "" || strings.HasPrefix(line, "```") {
			continue
		}
		return line
	}
	return ""
}

// stripDecorations removes surrounding quotes, backticks and a leading label
func stripDecorations(line string) string {
	line = strings.Trim(line, "\"'`")
	line = strings.TrimSpace(line)

	lower := strings.ToLower(line)
	for _, label := range []string{"commit message:", "commit:"} {
		if strings.HasPrefix(lower, label) {
			line = strings.TrimSpace(line[len(label):])
			line = strings.Trim(line, "\"'`")
			break
		}
	}
	return line
}

// lowerTypeTag lower-cases the type token when it matches a known type
// case-insensitively, so "Feat: ..." still parses
func lowerTypeTag(line string) string {
	end := strings.IndexAny(line, "(:")
	if end <= 0 {
		return line
	}
	tag := strings.ToLower(line[:end])
	for _, t := range model.CommitTypes {
		if tag == string(t) {
			return tag + line[end:]
		}
	}
	return line
}

// normalizeDescription applies best-effort invariants: lower-case first
// letter, no trailing period. The text itself is never truncated.
func normalizeDescription(desc string) string {
	desc = strings.TrimSpace(desc)
	desc = strings.TrimSuffix(desc, ".")

	// leave acronyms like "HTTP timeout" alone
	runes := []rune(desc)
	if len(runes) > 1 && unicode.IsUpper(runes[0]) && unicode.IsLower(runes[1]) {
		runes[0] = unicode.ToLower(runes[0])
	}
	return string(runes)
}
