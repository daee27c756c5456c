// Package interpreter maps raw terminal input to canned responses.
package interpreter

import "strings"

// Category selects how a response line is styled.
type Category string

const (
	CategoryInfo     Category = "INFO"
	CategoryAnalysis Category = "ANALYSIS"
	CategoryReport   Category = "REPORT"
	CategoryError    Category = "ERROR"
	CategorySpecial  Category = "SPECIAL"
	CategoryInput    Category = "INPUT"
	CategorySuccess  Category = "SUCCESS"
)

func (c Category) String() string {
	return string(c)
}

// Marked reports whether lines of this category get the alert marker.
func (c Category) Marked() bool {
	return c == CategoryError || c == CategorySpecial
}

// Response is produced fresh for every dispatch and never mutated.
type Response struct {
	Text     string
	Category Category
}

// IsClear reports whether the response asks for the output log to be truncated
// instead of a line being appended.
func (r Response) IsClear() bool {
	return r.Category == CategorySpecial && r.Text == ""
}

// Command holds the input as typed and its normalized form.
type Command struct {
	Raw        string
	Normalized string
}

// NewCommand uppercases and trims raw input, keeping the original alongside.
func NewCommand(raw string) Command {
	return Command{
		Raw:        raw,
		Normalized: strings.ToUpper(strings.TrimSpace(raw)),
	}
}

// Interpret runs the rules in priority order and returns the first match.
// Callers are expected to drop blank input before calling.
func Interpret(raw string) Response {
	cmd := NewCommand(raw)
	for _, rule := range rules {
		if resp, ok := rule.Apply(cmd); ok {
			return resp
		}
	}
	return Unrecognized(cmd.Raw)
}
