package textutil

import (
	"strings"
	"testing"
)

func TestSanitizeTerminalTextLeavesSafeInput(t *testing.T) {
	input := "safe-file.txt"
	if got := SanitizeTerminalText(input); got != input {
		t.Fatalf("expected %q to remain untouched, got %q", input, got)
	}
}

func TestSanitizeTerminalTextReplacesControlSequences(t *testing.T) {
	input := "bad\x1b[31m\npath\tend"
	got := SanitizeTerminalText(input)
	if got != "bad?[31m path end" {
		t.Fatalf("expected sanitized string \"bad?[31m path end\", got %q", got)
	}
	if containsControl(got) {
		t.Fatalf("sanitized text should not contain control characters: %q", got)
	}
}

func TestSanitizeTerminalTextLabelsInvisibleRunes(t *testing.T) {
	input := "a" + string(rune(0x202E)) + "b" + string(rune(0x200B)) + "c"
	got := SanitizeTerminalText(input)
	if strings.ContainsRune(got, 0x202E) || strings.ContainsRune(got, 0x200B) {
		t.Fatalf("sanitize left formatting runes in output: %q", got)
	}
	if got != "a⟪RLO⟫b⟪ZWSP⟫c" {
		t.Fatalf("expected formatting runes to be labeled, got %q", got)
	}
}

func containsControl(s string) bool {
	for _, r := range s {
		if r < 0x20 || r == 0x7f {
			return true
		}
	}
	return false
}
