// Package journal defines the core MindScribe types and the pure helpers
// shared by the UI and the CLI commands.
package journal

import (
	"fmt"
	"strings"
)

// Mood is a closed-set emotional tag on an entry. The zero value means the
// mood was never set, which is distinct from MoodNeutral.
type Mood string

const (
	MoodUnset   Mood = ""
	MoodHappy   Mood = "happy"
	MoodNeutral Mood = "neutral"
	MoodExcited Mood = "excited"
	MoodSad     Mood = "sad"
	MoodAnxious Mood = "anxious"
)

// AllMoods returns the settable moods in editor display order.
func AllMoods() []Mood {
	return []Mood{
		MoodNeutral,
		MoodHappy,
		MoodExcited,
		MoodSad,
		MoodAnxious,
	}
}

// ParseMood converts a string to a Mood. Empty input is MoodUnset; unknown
// values return an error alongside MoodUnset so callers can drop bad rows
// without failing a whole load.
func ParseMood(raw string) (Mood, error) {
	m := Mood(strings.ToLower(strings.TrimSpace(raw)))
	if m == MoodUnset {
		return MoodUnset, nil
	}
	for _, candidate := range AllMoods() {
		if candidate == m {
			return candidate, nil
		}
	}
	return MoodUnset, fmt.Errorf("journal: unknown mood %q", raw)
}

func (m Mood) String() string {
	return string(m)
}

// Emoji returns the editor glyph for the mood.
func (m Mood) Emoji() string {
	switch m {
	case MoodHappy:
		return "😊"
	case MoodExcited:
		return "🤩"
	case MoodSad:
		return "😔"
	case MoodAnxious:
		return "😰"
	case MoodNeutral:
		return "😐"
	}
	return ""
}

// SuggestMood maps a free-text sentiment from the analysis collaborator onto
// the closed mood set with a case-insensitive substring match. The match
// order is fixed (happy/joy, sad, anx, excit) so ambiguous sentiments like
// "anxious but excited" resolve the same way every time; anything else is
// neutral.
func SuggestMood(sentiment string) Mood {
	s := strings.ToLower(sentiment)
	switch {
	case strings.Contains(s, "happy") || strings.Contains(s, "joy"):
		return MoodHappy
	case strings.Contains(s, "sad"):
		return MoodSad
	case strings.Contains(s, "anx"):
		return MoodAnxious
	case strings.Contains(s, "excit"):
		return MoodExcited
	default:
		return MoodNeutral
	}
}
