package scene

import (
	"errors"
	"image"
	"image/color"
	"image/jpeg"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// writePNG encodes img to a file under dir and returns the path.
func writePNG(t *testing.T, dir, name string, img image.Image) string {
	t.Helper()
	path := filepath.Join(dir, name)
	f, err := os.Create(path)
	require.NoError(t, err)
	defer f.Close()
	require.NoError(t, png.Encode(f, img))
	return path
}

func writeJPEG(t *testing.T, dir, name string, img image.Image) string {
	t.Helper()
	path := filepath.Join(dir, name)
	f, err := os.Create(path)
	require.NoError(t, err)
	defer f.Close()
	require.NoError(t, jpeg.Encode(f, img, nil))
	return path
}

func solidNRGBA(w, h int, c color.NRGBA) *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.SetNRGBA(x, y, c)
		}
	}
	return img
}

func TestDecodeImagePNGHasFourChannels(t *testing.T) {
	path := writePNG(t, t.TempDir(), "rgba.png", solidNRGBA(2, 2, color.NRGBA{10, 20, 30, 255}))

	img, err := DecodeImage(path)
	require.NoError(t, err)
	assert.Equal(t, 4, img.Channels)
	assert.Equal(t, 2, img.Width)
	assert.Equal(t, 2, img.Height)
	assert.Len(t, img.Pixels, 2*2*4)
	assert.Equal(t, []byte{10, 20, 30, 255}, img.Pixels[:4])
}

func TestDecodeImageJPEGHasThreeChannels(t *testing.T) {
	path := writeJPEG(t, t.TempDir(), "rgb.jpg", solidNRGBA(4, 4, color.NRGBA{200, 100, 50, 255}))

	img, err := DecodeImage(path)
	require.NoError(t, err)
	assert.Equal(t, 3, img.Channels)
	assert.Len(t, img.Pixels, 4*4*3)
}

func TestDecodeImageRejectsGrayscale(t *testing.T) {
	gray := image.NewGray(image.Rect(0, 0, 2, 2))
	path := writePNG(t, t.TempDir(), "gray.png", gray)

	_, err := DecodeImage(path)
	require.Error(t, err)
	var chErr *UnsupportedChannelsError
	require.ErrorAs(t, err, &chErr)
	assert.Equal(t, 1, chErr.Channels)
}

func TestDecodeImageMissingFile(t *testing.T) {
	_, err := DecodeImage(filepath.Join(t.TempDir(), "nope.png"))
	assert.Error(t, err)
}

func TestDecodeImageFlipsRows(t *testing.T) {
	// Top row red, bottom row blue in the file: after decode the bottom row
	// must come first.
	img := image.NewNRGBA(image.Rect(0, 0, 1, 2))
	img.SetNRGBA(0, 0, color.NRGBA{255, 0, 0, 255}) // top
	img.SetNRGBA(0, 1, color.NRGBA{0, 0, 255, 255}) // bottom
	path := writePNG(t, t.TempDir(), "flip.png", img)

	got, err := DecodeImage(path)
	require.NoError(t, err)
	assert.Equal(t, []byte{0, 0, 255, 255}, got.Pixels[:4], "row 0 should be the bottom of the file")
	assert.Equal(t, []byte{255, 0, 0, 255}, got.Pixels[4:8], "row 1 should be the top of the file")
}

func TestDecodeImageErrorUnwraps(t *testing.T) {
	_, err := DecodeImage(filepath.Join(t.TempDir(), "absent.png"))
	assert.True(t, errors.Is(err, os.ErrNotExist))
}

func TestSolidPixels(t *testing.T) {
	img := SolidPixels(1, 2, 3, 4)
	assert.Equal(t, 1, img.Width)
	assert.Equal(t, 1, img.Height)
	assert.Equal(t, 4, img.Channels)
	assert.Equal(t, []byte{1, 2, 3, 4}, img.Pixels)
}

func TestCheckerPixels(t *testing.T) {
	c1 := [4]uint8{255, 255, 255, 255}
	c2 := [4]uint8{0, 0, 0, 255}
	img := CheckerPixels(16, c1, c2)
	assert.Equal(t, 16, img.Width)
	assert.Equal(t, 16, img.Height)
	assert.Len(t, img.Pixels, 16*16*4)
	// First block is c1, the next block over is c2.
	assert.Equal(t, c1[0], img.Pixels[0])
	assert.Equal(t, c2[0], img.Pixels[2*4])
}
