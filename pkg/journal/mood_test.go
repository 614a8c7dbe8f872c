package journal

import "testing"

func TestParseMood(t *testing.T) {
	tests := []struct {
		in      string
		want    Mood
		wantErr bool
	}{
		{"happy", MoodHappy, false},
		{" Anxious ", MoodAnxious, false},
		{"", MoodUnset, false},
		{"ecstatic", MoodUnset, true},
	}
	for _, tc := range tests {
		got, err := ParseMood(tc.in)
		if (err != nil) != tc.wantErr {
			t.Fatalf("ParseMood(%q) error = %v, wantErr %v", tc.in, err, tc.wantErr)
		}
		if got != tc.want {
			t.Fatalf("ParseMood(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestSuggestMood(t *testing.T) {
	tests := []struct {
		sentiment string
		want      Mood
	}{
		{"Joyful", MoodHappy},
		{"quietly happy", MoodHappy},
		{"Sad and tired", MoodSad},
		{"Anxious", MoodAnxious},
		{"Excited!", MoodExcited},
		{"Hopeful", MoodNeutral},
		{"", MoodNeutral},
		// ambiguous sentiments resolve by fixed match order
		{"anxious but excited", MoodAnxious},
	}
	for _, tc := range tests {
		if got := SuggestMood(tc.sentiment); got != tc.want {
			t.Fatalf("SuggestMood(%q) = %q, want %q", tc.sentiment, got, tc.want)
		}
	}
}
