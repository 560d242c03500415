package tokenizer

import "testing"

func TestRegexCounter(t *testing.T) {
	tests := []struct {
		name string
		text string
		want int
	}{
		{"empty", "", 1},
		{"single word", "hello", 1},
		{"words", "one two three", 3},
		{"surrounding whitespace trimmed", "  padded  ", 1},
	}
	c := RegexCounter{}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := c.Count(tt.text); got != tt.want {
				t.Errorf("Count(%q) = %d, want %d", tt.text, got, tt.want)
			}
		})
	}
}

func TestRegexCounter_PunctuationSplits(t *testing.T) {
	c := RegexCounter{}
	if got := c.Count("foo"); got >= c.Count("foo(bar)") {
		t.Errorf("punctuation should increase the count: %d vs %d", got, c.Count("foo(bar)"))
	}
}

func TestNew_UnknownEncodingFallsBack(t *testing.T) {
	c := New("no-such-encoding", nil)
	if _, ok := c.(RegexCounter); !ok {
		t.Errorf("unknown encoding should fall back to RegexCounter, got %T", c)
	}
	if got := c.Count("one two"); got != 2 {
		t.Errorf("fallback Count = %d, want 2", got)
	}
}
