package media

import (
	"bytes"
	"image"
	"image/color"
	"image/gif"
	"image/png"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/image/bmp"
)

func writeFile(t *testing.T, name string, data []byte) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, data, 0o644))
	return path
}

func solid(width, height int, fill color.Color) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, width, height))
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			img.Set(x, y, fill)
		}
	}
	return img
}

func TestLoadPNG(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, solid(4, 3, color.White)))
	path := writeFile(t, "still.png", buf.Bytes())

	media, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, path, media.Path)
	assert.Equal(t, "png", media.Format)
	assert.False(t, media.Animated())
	assert.Equal(t, image.Pt(4, 3), media.Size())
}

func TestLoadIgnoresExtension(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, bmp.Encode(&buf, solid(2, 2, color.Black)))
	path := writeFile(t, "actually-bmp.png", buf.Bytes())

	media, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "bmp", media.Format)
}

func TestLoadAnimatedGIF(t *testing.T) {
	colors := color.Palette{color.Transparent, color.RGBA{R: 255, A: 255}, color.RGBA{B: 255, A: 255}}
	red := image.NewPaletted(image.Rect(0, 0, 4, 4), colors)
	blue := image.NewPaletted(image.Rect(1, 1, 3, 3), colors)
	for y := 0; y < 4; y++ {
		for x := 0; x < 4; x++ {
			red.Set(x, y, color.RGBA{R: 255, A: 255})
		}
	}
	for y := 1; y < 3; y++ {
		for x := 1; x < 3; x++ {
			blue.Set(x, y, color.RGBA{B: 255, A: 255})
		}
	}

	var buf bytes.Buffer
	require.NoError(t, gif.EncodeAll(&buf, &gif.GIF{
		Image:     []*image.Paletted{red, blue},
		Delay:     []int{5, 0},
		Disposal:  []byte{gif.DisposalNone, gif.DisposalNone},
		LoopCount: 2,
	}))
	path := writeFile(t, "anim.gif", buf.Bytes())

	media, err := Load(path)
	require.NoError(t, err)
	require.True(t, media.Animated())
	require.Len(t, media.Frames, 2)
	assert.Equal(t, []time.Duration{50 * time.Millisecond, DefaultFrameDelay}, media.Delays)
	assert.Equal(t, 2, media.LoopCount)

	// The second frame is composed over the first.
	second := media.Frames[1]
	assert.Equal(t, image.Pt(4, 4), second.Bounds().Size())
	r, _, _, _ := second.At(0, 0).RGBA()
	assert.Equal(t, uint32(0xffff), r)
	_, _, b, _ := second.At(1, 1).RGBA()
	assert.Equal(t, uint32(0xffff), b)
}

func TestLoadErrors(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.png"))
	require.Error(t, err)
	assert.ErrorIs(t, err, os.ErrNotExist)

	path := writeFile(t, "junk.png", []byte("not an image"))
	_, err = Load(path)
	require.Error(t, err)
	assert.ErrorIs(t, err, image.ErrFormat)
	assert.Contains(t, err.Error(), path)
}

func TestNilMedia(t *testing.T) {
	var media *Media
	assert.False(t, media.Animated())
	assert.Nil(t, media.First())
	assert.Equal(t, image.Point{}, media.Size())
}
