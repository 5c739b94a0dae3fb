package cli

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/snapvo/snapvo/internal/logging"
)

func TestLoadSubtitlesDetectsFormat(t *testing.T) {
	logger = logging.NewLogger(false)

	tests := []struct {
		name    string
		file    string
		content string
		cues    int
	}{
		{
			name: "srt by extension",
			file: "a.srt",
			content: `1
00:00:01,000 --> 00:00:02,000
Hello
`,
			cues: 1,
		},
		{
			name: "vtt by extension",
			file: "b.vtt",
			content: `WEBVTT

00:00:01.000 --> 00:00:02.000
Hello
`,
			cues: 1,
		},
		{
			name:    "json by extension",
			file:    "c.json",
			content: `[{"start": 1, "text": "Hello"}, {"start": 2, "text": "World"}]`,
			cues:    2,
		},
		{
			name:    "sniffed srt with odd extension",
			file:    "d.sub",
			content: "1\n00:00:01,000 --> 00:00:02,000\nHello\n",
			cues:    1,
		},
		{
			name:    "plain text fallback",
			file:    "e.txt",
			content: "one\ntwo\nthree\n",
			cues:    3,
		},
	}

	tmpDir := t.TempDir()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(tmpDir, tt.file)
			if err := os.WriteFile(path, []byte(tt.content), 0644); err != nil {
				t.Fatalf("failed to write test file: %v", err)
			}

			items, err := loadSubtitles(path)
			if err != nil {
				t.Fatalf("loadSubtitles failed: %v", err)
			}
			if len(items) != tt.cues {
				t.Errorf("expected %d cues, got %d", tt.cues, len(items))
			}
		})
	}
}

func TestLoadSubtitlesMissingFile(t *testing.T) {
	logger = logging.NewLogger(false)
	if _, err := loadSubtitles(filepath.Join(t.TempDir(), "missing.srt")); err == nil {
		t.Error("expected error for missing file")
	}
}
