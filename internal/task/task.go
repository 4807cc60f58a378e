package task

import (
	"errors"
	"fmt"
	"strings"
)

// Task identifies the text transformation a caller asks for.
type Task string

const (
	Summarize      Task = "summarize"
	Translate      Task = "translate"
	CorrectGrammar Task = "correct-grammar"
	Expand         Task = "expand"
	ChangeTone     Task = "change-tone"
)

const (
	DefaultLanguage = "spanish"
	DefaultTone     = "formal"
)

// ErrUnsupportedTask is returned for task values outside the known set.
var ErrUnsupportedTask = errors.New("unsupported task")

// Params holds the per-task selections. Only translate reads Language and
// only change-tone reads Tone.
type Params struct {
	Language string `json:"language,omitempty"`
	Tone     string `json:"tone,omitempty"`
}

// All lists the tasks in display order.
var All = []Task{Summarize, Translate, CorrectGrammar, Expand, ChangeTone}

var aliases = map[string]Task{
	"summarization": Summarize,
	"translation":   Translate,
	"grammar":       CorrectGrammar,
	"expansion":     Expand,
	"tone":          ChangeTone,
}

// ParseTask maps a canonical name or a dashboard tab id onto a Task.
func ParseTask(s string) (Task, error) {
	name := strings.ToLower(strings.TrimSpace(s))
	for _, t := range All {
		if string(t) == name {
			return t, nil
		}
	}
	if t, ok := aliases[name]; ok {
		return t, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnsupportedTask, s)
}

// Valid reports whether t is one of the five known tasks.
func (t Task) Valid() bool {
	_, ok := templates[t]
	return ok
}

// Resolved returns p with defaults applied for task t. Translate without a
// language falls back to DefaultLanguage, change-tone without a tone to
// DefaultTone. Fields the task does not read are cleared.
func (p Params) Resolved(t Task) Params {
	var out Params
	switch t {
	case Translate:
		out.Language = normalize(p.Language)
		if out.Language == "" {
			out.Language = DefaultLanguage
		}
	case ChangeTone:
		out.Tone = normalize(p.Tone)
		if out.Tone == "" {
			out.Tone = DefaultTone
		}
	}
	return out
}

func normalize(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}
