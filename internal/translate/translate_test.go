package translate

import (
	"context"
	"fmt"
	"strings"
	"testing"

	"github.com/snapvo/snapvo/internal/subtitle"
)

func TestBuildPrompt(t *testing.T) {
	opts := Options{TargetLanguage: "spanish"}
	cues := []Cue{{Index: 0, Text: "hello"}}

	prompt := buildPrompt(opts, cues)
	for _, want := range []string{"spanish", `"index": 0`, `"text": "hello"`, "JSON array"} {
		if !strings.Contains(prompt, want) {
			t.Errorf("prompt missing %q:\n%s", want, prompt)
		}
	}
}

func TestParseResults(t *testing.T) {
	results, err := parseResults("```json\n[{\"index\":0,\"text\":\"hola\"}]\n```", 1)
	if err != nil {
		t.Fatalf("parseResults failed: %v", err)
	}
	if results[0].Text != "hola" {
		t.Errorf("unexpected result: %+v", results[0])
	}

	if _, err := parseResults(`[{"index":0,"text":"hola"}]`, 2); err == nil {
		t.Error("count mismatch must fail")
	}
	if _, err := parseResults("not json", 1); err == nil {
		t.Error("invalid JSON must fail")
	}
}

func TestInBatches(t *testing.T) {
	cues := make([]Cue, 7)
	for i := range cues {
		cues[i] = Cue{Index: i, Text: fmt.Sprintf("cue %d", i)}
	}

	var calls int
	results, err := inBatches(context.Background(), cues, 3,
		func(_ context.Context, batch []Cue) ([]Result, error) {
			calls++
			out := make([]Result, len(batch))
			for i, c := range batch {
				out[i] = Result{Index: c.Index, Text: "t:" + c.Text}
			}
			return out, nil
		})
	if err != nil {
		t.Fatalf("inBatches failed: %v", err)
	}
	if calls != 3 {
		t.Errorf("expected 3 batches, got %d", calls)
	}
	if len(results) != 7 {
		t.Fatalf("expected 7 results, got %d", len(results))
	}
	for i, r := range results {
		if r.Index != i {
			t.Errorf("results out of order at %d: %+v", i, r)
		}
	}
}

type fakeTranslator struct{}

func (fakeTranslator) Translate(_ context.Context, cues []Cue) ([]Result, error) {
	out := make([]Result, len(cues))
	for i, c := range cues {
		out[i] = Result{Index: c.Index, Text: "[" + c.Text + "]"}
	}
	return out, nil
}

func TestFill(t *testing.T) {
	items := []subtitle.Item{
		{Start: 1, Text: "one"},
		{Start: 2, Text: "two"},
	}
	out, err := Fill(context.Background(), fakeTranslator{}, items)
	if err != nil {
		t.Fatalf("Fill failed: %v", err)
	}
	if out[1].Translation != "[two]" {
		t.Errorf("translation not filled: %+v", out[1])
	}
	if items[0].Translation != "" {
		t.Error("Fill must not mutate its input")
	}
}
