package render

import (
	"strings"
	"testing"
)

// measure where each rune is 10px wide
func runeMeasure(s string) float64 {
	return float64(len([]rune(s))) * 10
}

func TestWrapTextFits(t *testing.T) {
	lines := WrapText("hello world", 200, runeMeasure)
	if len(lines) != 1 || lines[0] != "hello world" {
		t.Errorf("expected single untouched line, got %q", lines)
	}
}

func TestWrapTextWordBoundaries(t *testing.T) {
	lines := WrapText("aaa bbb ccc ddd", 70, runeMeasure)
	want := []string{"aaa bbb", "ccc ddd"}
	if len(lines) != len(want) {
		t.Fatalf("expected %d lines, got %q", len(want), lines)
	}
	for i := range want {
		if lines[i] != want[i] {
			t.Errorf("line %d = %q, want %q", i, lines[i], want[i])
		}
	}
}

func TestWrapTextOversizedToken(t *testing.T) {
	word := strings.Repeat("x", 25)
	lines := WrapText(word+" tail", 100, runeMeasure)
	if len(lines) < 3 {
		t.Fatalf("expected the 250px token split plus tail, got %q", lines)
	}
	for i, line := range lines {
		if runeMeasure(line) > 100 {
			t.Errorf("line %d exceeds max width: %q", i, line)
		}
	}
	if lines[len(lines)-1] != "xxxxx tail" {
		t.Errorf("expected tail packed after broken token, got %q", lines[len(lines)-1])
	}
}

func TestWrapTextCJK(t *testing.T) {
	text := strings.Repeat("字", 12)
	lines := WrapText(text, 50, runeMeasure)
	if len(lines) != 3 {
		t.Fatalf("expected 3 lines of 5 runes, got %d: %q", len(lines), lines)
	}
	for i, line := range lines {
		if runeMeasure(line) > 50 {
			t.Errorf("line %d exceeds max width: %q", i, line)
		}
	}
	if joined := strings.Join(lines, ""); joined != text {
		t.Errorf("character wrap lost content: %q", joined)
	}
}

func TestWrapTextEmpty(t *testing.T) {
	lines := WrapText("", 100, runeMeasure)
	if len(lines) != 1 || lines[0] != "" {
		t.Errorf("empty input must yield one empty line, got %q", lines)
	}
}
