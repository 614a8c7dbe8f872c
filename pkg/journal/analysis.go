package journal

// Analysis is the structured reflection returned by the AI collaborator for
// a single entry. It is transient: applied to the editor's mood/tags and
// then discarded, never persisted.
type Analysis struct {
	Summary   string   `json:"summary"`
	Sentiment string   `json:"sentiment"`
	Advice    string   `json:"advice"`
	Keywords  []string `json:"keywords"`
}

// Complete reports whether every field the response schema requires is
// present. Partial analyses are rejected by the caller.
func (a *Analysis) Complete() bool {
	return a.Summary != "" && a.Sentiment != "" && a.Advice != "" && len(a.Keywords) > 0
}
