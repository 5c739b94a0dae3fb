package video

import (
	"bytes"
	"context"
	"fmt"
	"image"
	"os"
	"time"

	"github.com/tidwall/gjson"
	ffmpeg "github.com/u2takey/ffmpeg-go"

	// frame decoding for the formats ffmpeg may hand back
	_ "image/jpeg"
	_ "image/png"
)

// video file information
type Info struct {
	Path     string
	Duration time.Duration
	Width    int
	Height   int
	Title    string
}

// defines interface for frame capture operations
type Capturer interface {
	// decodes the frame closest to the given offset
	ExtractFrame(ctx context.Context, videoPath string, at time.Duration) (image.Image, error)

	// retrieves container information
	GetInfo(ctx context.Context, videoPath string) (*Info, error)
}

// default implementation using ffmpeg
type FFmpegCapturer struct{}

func NewCapturer() *FFmpegCapturer {
	return &FFmpegCapturer{}
}

// ExtractFrame seeks to the offset and decodes a single frame, piped out as
// PNG so no temp file is needed.
func (c *FFmpegCapturer) ExtractFrame(
	ctx context.Context,
	videoPath string,
	at time.Duration,
) (image.Image, error) {
	if _, err := os.Stat(videoPath); os.IsNotExist(err) {
		return nil, fmt.Errorf("video file not found: %s", videoPath)
	}

	var buf bytes.Buffer
	err := ffmpeg.Input(videoPath, ffmpeg.KwArgs{
		"ss": fmt.Sprintf("%.3f", at.Seconds()),
	}).
		Output("pipe:", ffmpeg.KwArgs{
			"vframes": 1,
			"format":  "image2",
			"vcodec":  "png",
		}).
		WithOutput(&buf).
		Silent(true).
		Run()
	if err != nil {
		return nil, fmt.Errorf("ffmpeg frame extraction failed: %w", err)
	}

	img, _, err := image.Decode(&buf)
	if err != nil {
		return nil, fmt.Errorf("failed to decode extracted frame: %w", err)
	}
	return img, nil
}

// GetInfo probes the container for dimensions, duration and the title tag.
func (c *FFmpegCapturer) GetInfo(
	ctx context.Context,
	videoPath string,
) (*Info, error) {
	if _, err := os.Stat(videoPath); os.IsNotExist(err) {
		return nil, fmt.Errorf("video file not found: %s", videoPath)
	}

	probe, err := ffmpeg.Probe(videoPath)
	if err != nil {
		return nil, fmt.Errorf("ffprobe failed: %w", err)
	}

	info := &Info{Path: videoPath}
	if d := gjson.Get(probe, "format.duration"); d.Exists() {
		info.Duration = time.Duration(d.Float() * float64(time.Second))
	}
	info.Title = gjson.Get(probe, "format.tags.title").String()

	// first video stream wins
	gjson.Get(probe, "streams").ForEach(func(_, stream gjson.Result) bool {
		if stream.Get("codec_type").String() != "video" {
			return true
		}
		info.Width = int(stream.Get("width").Int())
		info.Height = int(stream.Get("height").Int())
		return false
	})

	if info.Width == 0 || info.Height == 0 {
		return nil, fmt.Errorf("no video stream found in %s", videoPath)
	}
	return info, nil
}
