package opengl

import (
	"fmt"

	gl "github.com/go-gl/gl/v4.1-core/gl"

	"desk-scene/scene"
)

// TextureDevice implements scene.TextureDevice on the GL context.
type TextureDevice struct{}

// CreateTexture uploads decoded pixels as a 2D texture with repeat wrapping
// and linear filtering on both axes, then generates mipmaps. Accepts 3
// (RGB) or 4 (RGBA) channel images.
func (TextureDevice) CreateTexture(img *scene.ImageData) (uint32, error) {
	if img == nil || len(img.Pixels) == 0 {
		return 0, fmt.Errorf("no pixel data")
	}

	var format int32
	var pixelFormat uint32
	switch img.Channels {
	case 3:
		format = gl.RGB8
		pixelFormat = gl.RGB
	case 4:
		format = gl.RGBA8
		pixelFormat = gl.RGBA
	default:
		return 0, fmt.Errorf("unsupported channel count %d", img.Channels)
	}

	var id uint32
	gl.GenTextures(1, &id)
	gl.BindTexture(gl.TEXTURE_2D, id)

	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_S, gl.REPEAT)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_T, gl.REPEAT)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MIN_FILTER, gl.LINEAR)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MAG_FILTER, gl.LINEAR)

	if img.Channels == 3 {
		// RGB rows are not 4-byte aligned for odd widths.
		gl.PixelStorei(gl.UNPACK_ALIGNMENT, 1)
		defer gl.PixelStorei(gl.UNPACK_ALIGNMENT, 4)
	}

	gl.TexImage2D(
		gl.TEXTURE_2D,
		0,
		format,
		int32(img.Width),
		int32(img.Height),
		0,
		pixelFormat,
		gl.UNSIGNED_BYTE,
		gl.Ptr(img.Pixels),
	)
	gl.GenerateMipmap(gl.TEXTURE_2D)
	gl.BindTexture(gl.TEXTURE_2D, 0)

	return id, nil
}

// BindUnit binds the texture to the given texture unit.
func (TextureDevice) BindUnit(unit int, id uint32) {
	gl.ActiveTexture(gl.TEXTURE0 + uint32(unit))
	gl.BindTexture(gl.TEXTURE_2D, id)
}

// DeleteTexture frees the GPU texture.
func (TextureDevice) DeleteTexture(id uint32) {
	if id == 0 {
		return
	}
	gl.DeleteTextures(1, &id)
}
