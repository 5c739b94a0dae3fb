package subtitle

import (
	"errors"
	"testing"
)

func TestParseSRT(t *testing.T) {
	src := `1
00:00:01,000 --> 00:00:04,000
Hello

2
00:00:05,500 --> 00:00:08,200
This is a test.
With multiple lines.
`
	items, err := ParseSRT(src)
	if err != nil {
		t.Fatalf("ParseSRT failed: %v", err)
	}
	if len(items) != 2 {
		t.Fatalf("expected 2 items, got %d", len(items))
	}

	if items[0].Start != 1 {
		t.Errorf("item 0: expected start 1, got %v", items[0].Start)
	}
	if items[0].Duration != 3 {
		t.Errorf("item 0: expected duration 3, got %v", items[0].Duration)
	}
	if items[0].Text != "Hello" {
		t.Errorf("item 0: expected %q, got %q", "Hello", items[0].Text)
	}

	if items[1].Text != "This is a test.\nWith multiple lines." {
		t.Errorf("item 1: unexpected text %q", items[1].Text)
	}
	if got := items[1].Start; got != 5.5 {
		t.Errorf("item 1: expected start 5.5, got %v", got)
	}
}

func TestParseSRTSkipsMalformedBlock(t *testing.T) {
	src := `1
00:00:01,000 --> 00:00:02,000
First

2
not a timestamp line
Orphaned text

3
00:00:05,000 --> 00:00:06,000
Third
`
	items, err := ParseSRT(src)
	if err != nil {
		t.Fatalf("ParseSRT failed: %v", err)
	}
	if len(items) != 2 {
		t.Fatalf("expected malformed block to be skipped, got %d items", len(items))
	}
	if items[1].Text != "Third" {
		t.Errorf("expected %q after skipped block, got %q", "Third", items[1].Text)
	}
}

func TestParseVTT(t *testing.T) {
	src := `WEBVTT

NOTE this comment
spans two lines

intro-cue
00:00:01.000 --> 00:00:03.500
<v Roger>Hello there</v>

00:01:00.000 --> 00:01:02.000
Second cue
`
	items, err := ParseVTT(src)
	if err != nil {
		t.Fatalf("ParseVTT failed: %v", err)
	}
	if len(items) != 2 {
		t.Fatalf("expected 2 items, got %d", len(items))
	}
	if items[0].Text != "Hello there" {
		t.Errorf("expected tags stripped, got %q", items[0].Text)
	}
	if items[0].Start != 1 || items[0].Duration != 2.5 {
		t.Errorf("unexpected timing: start %v duration %v", items[0].Start, items[0].Duration)
	}
	if items[1].Start != 60 {
		t.Errorf("expected start 60, got %v", items[1].Start)
	}
}

func TestParseJSONAliases(t *testing.T) {
	src := `[
		{"start": 1.5, "duration": 2, "text": "first", "translation": "primero"},
		{"startTime": 4, "dur": 1, "content": "second", "trans": "segundo"},
		"bare string"
	]`
	items, err := ParseJSON(src)
	if err != nil {
		t.Fatalf("ParseJSON failed: %v", err)
	}
	if len(items) != 3 {
		t.Fatalf("expected 3 items, got %d", len(items))
	}
	if items[0].Start != 1.5 || items[0].Translation != "primero" {
		t.Errorf("unexpected item 0: %+v", items[0])
	}
	if items[1].Start != 4 || items[1].Text != "second" || items[1].Translation != "segundo" {
		t.Errorf("aliases not honored: %+v", items[1])
	}
	if items[2].Text != "bare string" {
		t.Errorf("unexpected item 2: %+v", items[2])
	}
}

func TestParseJSONMalformed(t *testing.T) {
	cases := []struct {
		name string
		src  string
	}{
		{"truncated", `[{"text": "a"`},
		{"not an array", `{"text": "a"}`},
		{"bad element", `[{"text": "ok"}, 42]`},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := ParseJSON(tc.src)
			if err == nil {
				t.Fatal("expected error, got nil")
			}
			if !errors.Is(err, ErrMalformedInput) {
				t.Errorf("expected ErrMalformedInput, got %v", err)
			}
		})
	}
}

func TestParsePlain(t *testing.T) {
	items, err := ParsePlain("first line\n\nsecond line\n")
	if err != nil {
		t.Fatalf("ParsePlain failed: %v", err)
	}
	if len(items) != 2 {
		t.Fatalf("expected 2 items, got %d", len(items))
	}
	if items[0].Start != 0 || items[1].Start != 3 {
		t.Errorf("expected synthetic starts 0 and 3, got %v and %v",
			items[0].Start, items[1].Start)
	}
}

func TestDetect(t *testing.T) {
	cases := []struct {
		src  string
		want Format
	}{
		{"WEBVTT\n\n00:00:01.000 --> 00:00:02.000\nhi\n", FormatVTT},
		{"1\n00:00:01,000 --> 00:00:02,000\nhi\n", FormatSRT},
		{`[{"text":"hi"}]`, FormatJSON},
		{"just a line\nanother\n", FormatPlain},
	}
	for _, tc := range cases {
		if got := Detect(tc.src); got != tc.want {
			t.Errorf("Detect(%q...) = %s, want %s", tc.src[:10], got, tc.want)
		}
	}
}

func TestAtAndWindow(t *testing.T) {
	items := []Item{
		{Start: 0, Text: "a"},
		{Start: 5, Text: "b"},
		{Start: 10, Text: "c"},
	}

	it, ok := At(items, 7)
	if !ok || it.Text != "b" {
		t.Errorf("At(7) = %+v, %v; want item b", it, ok)
	}
	it, _ = At(items, -1)
	if it.Text != "a" {
		t.Errorf("At before track start should clamp to first item, got %q", it.Text)
	}
	if _, ok := At(nil, 0); ok {
		t.Error("At on empty track should report not found")
	}

	win := Window(items, 5, 2)
	if len(win) != 2 || win[0].Text != "b" || win[1].Text != "c" {
		t.Errorf("Window(5, 2) = %+v", win)
	}
	if win := Window(items, 10, 5); len(win) != 1 {
		t.Errorf("Window should clamp at track end, got %d items", len(win))
	}
}
