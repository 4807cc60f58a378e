package task

import "fmt"

// template builds the instruction for one task. The text is always appended
// after a blank line so the model sees the instruction first.
type template func(p Params) string

var templates = map[Task]template{
	Summarize: func(Params) string {
		return "Please provide a clear and concise summary of the following text. Focus on the main points and key information:"
	},
	Translate: func(p Params) string {
		return fmt.Sprintf("Translate the following text to %s. Maintain the original meaning and tone:", p.Language)
	},
	CorrectGrammar: func(Params) string {
		return "Please correct any grammar and spelling mistakes in the following text. Return only the corrected version:"
	},
	Expand: func(Params) string {
		return "Please expand the following text into a more detailed and comprehensive version. Add relevant context, examples, and explanations while maintaining the original meaning:"
	},
	ChangeTone: func(p Params) string {
		return fmt.Sprintf("Please rewrite the following text in a %s tone. Maintain the original meaning but adjust the style accordingly:", p.Tone)
	},
}

// Render produces the instruction sent upstream for task t. It is a pure
// function of its arguments; defaults from Params.Resolved are applied.
func Render(t Task, p Params, text string) (string, error) {
	tmpl, ok := templates[t]
	if !ok {
		return "", fmt.Errorf("%w: %q", ErrUnsupportedTask, string(t))
	}
	return tmpl(p.Resolved(t)) + "\n\n" + text, nil
}
