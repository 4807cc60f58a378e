package task

// Option is a selectable value with its display label.
type Option struct {
	Value string `json:"value"`
	Label string `json:"label"`
}

// Info describes one task for selector UIs.
type Info struct {
	ID       Task   `json:"id"`
	Label    string `json:"label"`
	Requires string `json:"requires,omitempty"`
}

// CatalogInfo is served via GET /api/tasks.
type CatalogInfo struct {
	Tasks           []Info   `json:"tasks"`
	Languages       []Option `json:"languages"`
	Tones           []Option `json:"tones"`
	DefaultLanguage string   `json:"default_language"`
	DefaultTone     string   `json:"default_tone"`
}

var Languages = []Option{
	{Value: "spanish", Label: "Spanish"},
	{Value: "french", Label: "French"},
	{Value: "german", Label: "German"},
	{Value: "italian", Label: "Italian"},
	{Value: "portuguese", Label: "Portuguese"},
	{Value: "chinese", Label: "Chinese"},
	{Value: "japanese", Label: "Japanese"},
	{Value: "korean", Label: "Korean"},
}

var Tones = []Option{
	{Value: "formal", Label: "Formal"},
	{Value: "casual", Label: "Casual"},
	{Value: "professional", Label: "Professional"},
	{Value: "creative", Label: "Creative"},
	{Value: "friendly", Label: "Friendly"},
	{Value: "persuasive", Label: "Persuasive"},
}

var labels = map[Task]string{
	Summarize:      "Summarize",
	Translate:      "Translate",
	CorrectGrammar: "Grammar",
	Expand:         "Expand",
	ChangeTone:     "Tone",
}

// Label returns the display label for t, or the raw value when unknown.
func (t Task) Label() string {
	if l, ok := labels[t]; ok {
		return l
	}
	return string(t)
}

// Catalog returns every task together with the language and tone choices.
func Catalog() CatalogInfo {
	tasks := make([]Info, 0, len(All))
	for _, t := range All {
		info := Info{ID: t, Label: t.Label()}
		switch t {
		case Translate:
			info.Requires = "language"
		case ChangeTone:
			info.Requires = "tone"
		}
		tasks = append(tasks, info)
	}
	return CatalogInfo{
		Tasks:           tasks,
		Languages:       Languages,
		Tones:           Tones,
		DefaultLanguage: DefaultLanguage,
		DefaultTone:     DefaultTone,
	}
}
