package media

import (
	"bytes"
	"errors"
	"fmt"
	"image"
	"image/gif"
	_ "image/jpeg"
	_ "image/png"
	"os"
	"time"

	"golang.org/x/image/draw"

	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"
)

// ErrEmptyAnimation indicates a GIF without frames.
var ErrEmptyAnimation = errors.New("animation has no frames")

// DefaultFrameDelay replaces zero GIF frame delays, matching common viewers.
const DefaultFrameDelay = 100 * time.Millisecond

// Media is a decoded still image or animation.
type Media struct {
	Path   string
	Format string
	Frames []image.Image
	Delays []time.Duration
	// LoopCount follows image/gif: 0 loops forever, -1 plays once,
	// n > 0 plays n+1 times.
	LoopCount int
}

// Animated reports whether there is more than one frame to play.
func (media *Media) Animated() bool {
	return media != nil && len(media.Frames) > 1
}

// First returns the first frame.
func (media *Media) First() image.Image {
	if media == nil || len(media.Frames) == 0 {
		return nil
	}
	return media.Frames[0]
}

// Size returns the pixel size of the first frame.
func (media *Media) Size() image.Point {
	first := media.First()
	if first == nil {
		return image.Point{}
	}
	return first.Bounds().Size()
}

// Load decodes the file at path. The format is detected from content.
func Load(path string) (*Media, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read image %s: %w", path, err)
	}
	media, err := Decode(data)
	if err != nil {
		return nil, fmt.Errorf("decode image %s: %w", path, err)
	}
	media.Path = path
	return media, nil
}

// Decode decodes an encoded image held in memory.
func Decode(data []byte) (*Media, error) {
	_, format, err := image.DecodeConfig(bytes.NewReader(data))
	if err != nil {
		return nil, err
	}
	if format == "gif" {
		return decodeGIF(data)
	}

	img, format, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, err
	}
	return &Media{
		Format: format,
		Frames: []image.Image{img},
		Delays: []time.Duration{0},
	}, nil
}

func decodeGIF(data []byte) (*Media, error) {
	animation, err := gif.DecodeAll(bytes.NewReader(data))
	if err != nil {
		return nil, err
	}
	if len(animation.Image) == 0 {
		return nil, ErrEmptyAnimation
	}

	bounds := image.Rect(0, 0, animation.Config.Width, animation.Config.Height)
	if bounds.Empty() {
		bounds = animation.Image[0].Bounds()
	}

	media := &Media{
		Format:    "gif",
		Frames:    make([]image.Image, 0, len(animation.Image)),
		Delays:    make([]time.Duration, 0, len(animation.Image)),
		LoopCount: animation.LoopCount,
	}

	screen := image.NewRGBA(bounds)
	for i, frame := range animation.Image {
		disposal := byte(gif.DisposalNone)
		if i < len(animation.Disposal) {
			disposal = animation.Disposal[i]
		}

		var previous *image.RGBA
		if disposal == gif.DisposalPrevious {
			previous = cloneRGBA(screen)
		}

		draw.Draw(screen, frame.Bounds(), frame, frame.Bounds().Min, draw.Over)
		media.Frames = append(media.Frames, cloneRGBA(screen))
		media.Delays = append(media.Delays, frameDelay(animation, i))

		switch disposal {
		case gif.DisposalBackground:
			draw.Draw(screen, frame.Bounds(), image.Transparent, image.Point{}, draw.Src)
		case gif.DisposalPrevious:
			screen = previous
		}
	}
	return media, nil
}

func frameDelay(animation *gif.GIF, index int) time.Duration {
	if index >= len(animation.Delay) || animation.Delay[index] <= 0 {
		return DefaultFrameDelay
	}
	return time.Duration(animation.Delay[index]) * 10 * time.Millisecond
}

func cloneRGBA(src *image.RGBA) *image.RGBA {
	dst := image.NewRGBA(src.Bounds())
	copy(dst.Pix, src.Pix)
	return dst
}
