package cli

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/cobra"

	"github.com/snapvo/snapvo/internal/render"
	"github.com/snapvo/snapvo/internal/subtitle"
	"github.com/snapvo/snapvo/internal/video"
)

var renderCmd = &cobra.Command{
	Use:   "render [video_file] [subtitle_file]",
	Short: "Render a subtitle frame image",
	Long: `Render captures the frame at the given timestamp and composes it with
the subtitles covering that moment.

Examples:
  snapvo render lecture.mp4 lecture.srt --at 63 -o frame.png
  snapvo render talk.mkv talk.vtt --at 125 --mode card --title "Conference Talk"
  snapvo render clip.mp4 clip.srt --at 30 --mode stitch --cues 4 --scale 2`,
	Args: cobra.ExactArgs(2),
	RunE: runRender,
}

func init() {
	rootCmd.AddCommand(renderCmd)

	renderCmd.Flags().Float64P("at", "t", 0, "Timestamp in seconds to capture")
	renderCmd.Flags().StringP("mode", "m", render.ModeOverlay,
		"Display mode (overlay, separated, card, elegant, stitch)")
	renderCmd.Flags().StringP("output", "o", "frame.png", "Output PNG path")
	renderCmd.Flags().IntP("cues", "n", 1, "Number of consecutive cues to include")
	renderCmd.Flags().Float64("scale", 1, "Device pixel ratio for the backing store")
	renderCmd.Flags().String("title", "", "Video title for card footers (defaults to the container title tag)")
	renderCmd.Flags().Float64("font-size", 16, "Subtitle font size")
	renderCmd.Flags().String("position", render.PositionBottom, "Subtitle position (top, bottom)")
	renderCmd.Flags().String("background", render.BackgroundTranslucent,
		"Subtitle backdrop (translucent, solid, none)")
	renderCmd.Flags().String("separator", render.SeparatorWhite,
		"Stitch separator style (none, white, black)")
	renderCmd.Flags().Float64("separator-width", 2, "Stitch separator width in pixels")
	renderCmd.Flags().Float64("crop-ratio", 0.18, "Stitch bottom-crop ratio per cue")
	renderCmd.Flags().Bool("timestamp", true, "Show the timestamp in card footers")
}

func runRender(cmd *cobra.Command, args []string) error {
	videoPath, subsPath := args[0], args[1]
	ctx := context.Background()

	at, _ := cmd.Flags().GetFloat64("at")
	mode, _ := cmd.Flags().GetString("mode")
	output, _ := cmd.Flags().GetString("output")
	cueCount, _ := cmd.Flags().GetInt("cues")
	scale, _ := cmd.Flags().GetFloat64("scale")

	if !render.IsModeAvailable(mode) {
		logger.Warnw("unknown mode, overlay will be used", "mode", mode)
	}

	items, err := loadSubtitles(subsPath)
	if err != nil {
		return err
	}
	selected := subtitle.Window(items, at, cueCount)
	if len(selected) == 0 {
		return fmt.Errorf("no subtitles found in %s", subsPath)
	}

	capturer := video.NewCapturer()

	title, _ := cmd.Flags().GetString("title")
	if title == "" {
		if info, err := capturer.GetInfo(ctx, videoPath); err == nil {
			title = info.Title
		}
	}

	logger.Debugw("capturing frame", "video", videoPath, "at", at)
	frame, err := capturer.ExtractFrame(ctx, videoPath, time.Duration(at*float64(time.Second)))
	if err != nil {
		return err
	}

	cfg := renderConfig(cmd, mode, title, at)

	surface, err := render.NewSurface(render.WithPixelRatio(scale))
	if err != nil {
		return err
	}
	if err := render.RenderOnce(cfg, surface, frame, selected); err != nil {
		return fmt.Errorf("render failed: %w", err)
	}

	out, err := os.Create(output)
	if err != nil {
		return fmt.Errorf("failed to create output file: %w", err)
	}
	defer out.Close()

	if err := surface.EncodePNG(out); err != nil {
		return fmt.Errorf("failed to encode PNG: %w", err)
	}

	w, h := surface.LogicalSize()
	logger.Infow("frame rendered", "output", output, "mode", cfg.DisplayMode,
		"size", fmt.Sprintf("%dx%d", w, h), "cues", len(selected))
	return nil
}

func renderConfig(cmd *cobra.Command, mode, title string, at float64) render.Config {
	fontSize, _ := cmd.Flags().GetFloat64("font-size")
	position, _ := cmd.Flags().GetString("position")
	background, _ := cmd.Flags().GetString("background")
	separator, _ := cmd.Flags().GetString("separator")
	separatorWidth, _ := cmd.Flags().GetFloat64("separator-width")
	cropRatio, _ := cmd.Flags().GetFloat64("crop-ratio")
	showTimestamp, _ := cmd.Flags().GetBool("timestamp")

	cfg := render.DefaultConfig()
	cfg.DisplayMode = mode
	cfg.VideoTitle = title
	cfg.SubtitleStyle = render.SubtitleStyle{
		Position:   position,
		Background: background,
		FontSize:   fontSize,
	}
	cfg.StitchSeparator = separator
	cfg.StitchSeparatorWidth = separatorWidth
	cfg.StitchCropRatio = cropRatio
	cfg.CardOptions = &render.CardOptions{
		ShowTimestamp: showTimestamp,
		Timestamp:     at,
	}
	return cfg
}

func loadSubtitles(path string) ([]subtitle.Item, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read subtitle file: %w", err)
	}
	src := string(data)

	format := subtitle.DetectByExtension(filepath.Ext(path))
	if format == subtitle.FormatPlain {
		// extension was no help; sniff the content
		format = subtitle.Detect(src)
	}

	items, err := subtitle.Parse(src, format)
	if err != nil {
		return nil, err
	}
	logger.Debugw("subtitles parsed", "path", path, "format", format, "cues", len(items))
	return items, nil
}
