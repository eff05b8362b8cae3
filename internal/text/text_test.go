package text

import (
	"reflect"
	"testing"

	"github.com/vortex/docx-compare/internal/model"
)

func paragraphWithText(s string) *model.Paragraph {
	p := model.NewParagraph()
	p.AddRun(s, model.RunFormatting{})
	return p
}

func TestTokenizeWords(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want []string
	}{
		{"simple", "Hello world", []string{"Hello", "world"}},
		{"extra whitespace", "  Hello   world  ", []string{"Hello", "world"}},
		{"tabs and newlines", "a\tb\nc", []string{"a", "b", "c"}},
		{"empty", "", nil},
		{"whitespace only", "   ", nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := TokenizeWords(tt.in)
			if len(got) == 0 && len(tt.want) == 0 {
				return
			}
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("TokenizeWords(%q) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}

func TestNormalizedText(t *testing.T) {
	p := paragraphWithText("  Hello   world  ")
	if got := NormalizedText(p); got != "Hello world" {
		t.Errorf("NormalizedText() = %q, want %q", got, "Hello world")
	}
}

func TestJoinWords(t *testing.T) {
	if got := JoinWords([]string{"foo", "bar", "baz"}); got != "foo bar baz" {
		t.Errorf("JoinWords() = %q", got)
	}
}
