package cli

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/snapvo/snapvo/internal/subtitle"
	"github.com/snapvo/snapvo/internal/translate"
)

var translateCmd = &cobra.Command{
	Use:   "translate [subtitle_file]",
	Short: "Translate subtitles for bilingual frame cards",
	Long: `Translate fills the translation field of every cue using an AI
provider and writes the result as a JSON subtitle file, which the render
command accepts directly. Card modes draw the translation under the
original text.

Examples:
  snapvo translate lecture.srt --to spanish -o lecture.es.json
  snapvo translate talk.vtt --to german --provider anthropic
  snapvo translate clip.srt --to french --provider gemini --model gemini-2.5-pro`,
	Args: cobra.ExactArgs(1),
	RunE: runTranslate,
}

func init() {
	rootCmd.AddCommand(translateCmd)

	translateCmd.Flags().String("to", "", "Target language (required)")
	translateCmd.Flags().StringP("provider", "p", "openai",
		"Translation provider (openai, anthropic, gemini)")
	translateCmd.Flags().StringP("api-key", "k", "",
		"Provider API key (or OPENAI_API_KEY / ANTHROPIC_API_KEY / GEMINI_API_KEY)")
	translateCmd.Flags().String("model", "", "Provider model override")
	translateCmd.Flags().Int("batch-size", 0, "Cues per API request")
	translateCmd.Flags().StringP("output", "o", "", "Output JSON path (default: stdout)")
}

func runTranslate(cmd *cobra.Command, args []string) error {
	ctx := context.Background()

	target, _ := cmd.Flags().GetString("to")
	if target == "" {
		return fmt.Errorf("--to is required")
	}
	providerName, _ := cmd.Flags().GetString("provider")
	model, _ := cmd.Flags().GetString("model")
	batchSize, _ := cmd.Flags().GetInt("batch-size")

	apiKey, _ := cmd.Flags().GetString("api-key")
	if apiKey == "" {
		apiKey = apiKeyFromEnv(translate.Provider(providerName))
	}

	items, err := loadSubtitles(args[0])
	if err != nil {
		return err
	}

	translator, err := translate.Factory(ctx, translate.Provider(providerName), apiKey, translate.Options{
		TargetLanguage: target,
		Model:          model,
		BatchSize:      batchSize,
	})
	if err != nil {
		return err
	}

	logger.Infow("translating subtitles", "cues", len(items),
		"provider", providerName, "to", target)
	translated, err := translate.Fill(ctx, translator, items)
	if err != nil {
		return fmt.Errorf("translation failed: %w", err)
	}

	return writeItemsJSON(cmd, translated)
}

func apiKeyFromEnv(provider translate.Provider) string {
	switch provider {
	case translate.ProviderAnthropic:
		return os.Getenv("ANTHROPIC_API_KEY")
	case translate.ProviderGemini:
		return os.Getenv("GEMINI_API_KEY")
	default:
		return os.Getenv("OPENAI_API_KEY")
	}
}

// cue shape of the JSON subtitle format the render command reads back
type jsonCue struct {
	Start       float64 `json:"start"`
	Duration    float64 `json:"duration,omitempty"`
	Text        string  `json:"text"`
	Translation string  `json:"translation,omitempty"`
}

func writeItemsJSON(cmd *cobra.Command, items []subtitle.Item) error {
	cues := make([]jsonCue, len(items))
	for i, it := range items {
		cues[i] = jsonCue{
			Start:       it.Start,
			Duration:    it.Duration,
			Text:        it.Text,
			Translation: it.Translation,
		}
	}

	data, err := json.MarshalIndent(cues, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode subtitles: %w", err)
	}
	data = append(data, '\n')

	output, _ := cmd.Flags().GetString("output")
	if output == "" {
		_, err = os.Stdout.Write(data)
		return err
	}
	if err := os.WriteFile(output, data, 0644); err != nil {
		return fmt.Errorf("failed to write output file: %w", err)
	}
	logger.Infow("translated subtitles written", "output", output, "cues", len(cues))
	return nil
}
