package scene

import (
	"fmt"
	"image"
	_ "image/jpeg"
	_ "image/png"
	"os"

	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"
)

// ImageData is a decoded image: tightly packed pixel rows, bottom row first
// (matching texture coordinate convention), 3 bytes per pixel for RGB and
// 4 for RGBA.
type ImageData struct {
	Pixels   []byte
	Width    int
	Height   int
	Channels int
}

// UnsupportedChannelsError reports an image whose channel count the texture
// pipeline cannot upload (anything other than 3 or 4).
type UnsupportedChannelsError struct {
	Path     string
	Channels int
}

func (e *UnsupportedChannelsError) Error() string {
	return fmt.Sprintf("image %q has %d channels, want 3 or 4", e.Path, e.Channels)
}

// DecodeImage reads and decodes an image file into ImageData. Rows are
// flipped vertically during packing so v=0 is the bottom of the image.
// Grayscale (1- or 2-channel) images are rejected with
// *UnsupportedChannelsError.
func DecodeImage(path string) (*ImageData, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open image %q: %w", path, err)
	}
	defer f.Close()

	img, _, err := image.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("decode image %q: %w", path, err)
	}

	channels := channelCount(img)
	if channels != 3 && channels != 4 {
		return nil, &UnsupportedChannelsError{Path: path, Channels: channels}
	}

	bounds := img.Bounds()
	w := bounds.Dx()
	h := bounds.Dy()
	pixels := make([]byte, w*h*channels)

	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		// Flip: source row y lands at output row h-1-y.
		row := h - 1 - (y - bounds.Min.Y)
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			r, g, b, a := img.At(x, y).RGBA()
			idx := (row*w + (x - bounds.Min.X)) * channels
			pixels[idx] = uint8(r >> 8)
			pixels[idx+1] = uint8(g >> 8)
			pixels[idx+2] = uint8(b >> 8)
			if channels == 4 {
				pixels[idx+3] = uint8(a >> 8)
			}
		}
	}

	return &ImageData{
		Pixels:   pixels,
		Width:    w,
		Height:   h,
		Channels: channels,
	}, nil
}

// channelCount maps the decoded image representation to the channel count
// the original file carried: JPEG decodes to YCbCr (3), grayscale formats
// to Gray (1), everything with an alpha plane counts as 4.
func channelCount(img image.Image) int {
	switch img.(type) {
	case *image.Gray, *image.Gray16:
		return 1
	case *image.YCbCr, *image.CMYK:
		return 3
	default:
		return 4
	}
}

// SolidPixels builds a 1x1 RGBA image of the given color bytes. Useful as a
// stand-in when an asset file is missing.
func SolidPixels(r, g, b, a uint8) *ImageData {
	return &ImageData{
		Pixels:   []byte{r, g, b, a},
		Width:    1,
		Height:   1,
		Channels: 4,
	}
}

// CheckerPixels builds a size x size RGBA checkerboard of two colors with
// 8 blocks per side.
func CheckerPixels(size int, c1, c2 [4]uint8) *ImageData {
	if size < 1 {
		size = 1
	}
	blockSize := size / 8
	if blockSize < 1 {
		blockSize = 1
	}
	pixels := make([]byte, size*size*4)
	for y := 0; y < size; y++ {
		for x := 0; x < size; x++ {
			idx := (y*size + x) * 4
			c := c1
			if ((x/blockSize)+(y/blockSize))%2 == 1 {
				c = c2
			}
			pixels[idx] = c[0]
			pixels[idx+1] = c[1]
			pixels[idx+2] = c[2]
			pixels[idx+3] = c[3]
		}
	}
	return &ImageData{Pixels: pixels, Width: size, Height: size, Channels: 4}
}
