package translate

import (
	"context"
	"encoding/json"
	"fmt"
	"regexp"
	"sort"
	"strings"

	"github.com/snapvo/snapvo/internal/subtitle"
)

// single cue text sent to a provider
type Cue struct {
	Index int    `json:"index"`
	Text  string `json:"text"`
}

// translated cue text returned by a provider
type Result struct {
	Index int    `json:"index"`
	Text  string `json:"text"`
}

// interface for cue translation
type Translator interface {
	Translate(ctx context.Context, cues []Cue) ([]Result, error)
}

// translation service provider
type Provider string

const (
	ProviderOpenAI    Provider = "openai"
	ProviderAnthropic Provider = "anthropic"
	ProviderGemini    Provider = "gemini"
)

const DefaultBatchSize = 50

type Options struct {
	TargetLanguage string
	Model          string
	BatchSize      int // cues per API request (default 50)
}

func (o Options) batchSize() int {
	if o.BatchSize > 0 {
		return o.BatchSize
	}
	return DefaultBatchSize
}

// creates a Translator for the given provider
func Factory(ctx context.Context, provider Provider, apiKey string, opts Options) (Translator, error) {
	if opts.TargetLanguage == "" {
		return nil, fmt.Errorf("target language is required")
	}

	switch provider {
	case ProviderOpenAI:
		return NewOpenAITranslator(apiKey, opts)
	case ProviderAnthropic:
		return NewAnthropicTranslator(apiKey, opts)
	case ProviderGemini:
		return NewGeminiTranslator(ctx, apiKey, opts)
	default:
		return nil, fmt.Errorf("unsupported translation provider: %s", provider)
	}
}

// Fill translates every item's text and stores the results in the
// Translation field, leaving the originals untouched.
func Fill(ctx context.Context, t Translator, items []subtitle.Item) ([]subtitle.Item, error) {
	if len(items) == 0 {
		return items, nil
	}

	cues := make([]Cue, len(items))
	for i, it := range items {
		cues[i] = Cue{Index: i, Text: it.Text}
	}

	results, err := t.Translate(ctx, cues)
	if err != nil {
		return nil, err
	}

	out := make([]subtitle.Item, len(items))
	copy(out, items)
	for _, r := range results {
		if r.Index >= 0 && r.Index < len(out) {
			out[r.Index].Translation = r.Text
		}
	}
	return out, nil
}

// buildPrompt creates the translation prompt shared by all providers. The
// response contract is a bare JSON array mirroring the input indices.
func buildPrompt(opts Options, cues []Cue) string {
	var sb strings.Builder

	fmt.Fprintf(&sb, "Translate the following subtitle texts to %s.\n\n", opts.TargetLanguage)
	sb.WriteString("IMPORTANT INSTRUCTIONS:\n")
	sb.WriteString("1. Translate ONLY the text content, preserving the meaning.\n")
	sb.WriteString("2. Return ONLY a JSON array with the same structure.\n")
	sb.WriteString("3. Each object must have 'index' and 'text' fields.\n")
	sb.WriteString("4. The 'index' values must match the input indices exactly.\n")
	sb.WriteString("5. Do not add any explanation or markdown formatting.\n\n")
	sb.WriteString("Input JSON:\n")

	inputJSON, _ := json.MarshalIndent(cues, "", "  ")
	sb.Write(inputJSON)
	sb.WriteString("\n\nOutput the translated JSON array only:")

	return sb.String()
}

// inBatches runs fn per batch and reassembles the results in index order.
func inBatches(ctx context.Context, cues []Cue, size int,
	fn func(context.Context, []Cue) ([]Result, error)) ([]Result, error) {
	if len(cues) == 0 {
		return []Result{}, nil
	}
	if len(cues) <= size {
		return fn(ctx, cues)
	}

	var all []Result
	for i := 0; i < len(cues); i += size {
		end := i + size
		if end > len(cues) {
			end = len(cues)
		}
		results, err := fn(ctx, cues[i:end])
		if err != nil {
			return nil, fmt.Errorf("batch %d failed: %w", i/size, err)
		}
		all = append(all, results...)
	}

	sort.Slice(all, func(i, j int) bool { return all[i].Index < all[j].Index })
	return all, nil
}

var jsonFenceRegex = regexp.MustCompile("```(?:json)?\\s*")

// cleanJSONResponse strips markdown code fences models wrap around JSON.
func cleanJSONResponse(s string) string {
	s = jsonFenceRegex.ReplaceAllString(strings.TrimSpace(s), "")
	s = strings.ReplaceAll(s, "```", "")
	return strings.TrimSpace(s)
}

// parseResults decodes the JSON-array response and checks the cue count.
func parseResults(responseText string, expected int) ([]Result, error) {
	responseText = cleanJSONResponse(responseText)

	var results []Result
	if err := json.Unmarshal([]byte(responseText), &results); err != nil {
		return nil, fmt.Errorf("failed to parse JSON response: %w (response: %s)",
			err, truncateString(responseText, 200))
	}
	if len(results) != expected {
		return nil, fmt.Errorf("expected %d results, got %d", expected, len(results))
	}
	return results, nil
}

func truncateString(s string, max int) string {
	if len(s) <= max {
		return s
	}
	return s[:max] + "..."
}
