package scene

import (
	"errors"
	"fmt"

	"desk-scene/core"
)

// MaxTextures is the number of texture slots available to a scene. The slot
// index doubles as the GL texture unit number, so the bound is fixed.
const MaxTextures = 16

// ErrTextureCapacity is returned by Load when all slots are occupied.
var ErrTextureCapacity = errors.New("texture registry full")

// TextureDevice is the GPU side of the registry. The OpenGL implementation
// lives in internal/opengl; tests substitute a recording fake.
type TextureDevice interface {
	// CreateTexture uploads the image and returns the GPU texture handle.
	CreateTexture(img *ImageData) (uint32, error)
	// BindUnit binds the texture to the given texture unit.
	BindUnit(unit int, id uint32)
	// DeleteTexture releases the GPU texture.
	DeleteTexture(id uint32)
}

// TextureEntry associates a tag with an uploaded GPU texture. The entry's
// index in the registry is its slot (and texture unit).
type TextureEntry struct {
	Tag string
	ID  uint32
}

// TextureRegistry loads images into GPU texture slots and maps string tags
// to slots. Populated once during scene preparation, read-only afterwards.
// Not safe for concurrent use; all calls belong on the GL thread.
type TextureRegistry struct {
	device  TextureDevice
	log     core.Logger
	entries []TextureEntry
}

func NewTextureRegistry(device TextureDevice, log core.Logger) *TextureRegistry {
	if log == nil {
		log = core.NewNopLogger()
	}
	return &TextureRegistry{
		device:  device,
		log:     log,
		entries: make([]TextureEntry, 0, MaxTextures),
	}
}

// Load decodes the image at path and registers it under tag at the next free
// slot. On any failure no slot is consumed and the reason is logged as well
// as returned. Images must have 3 (RGB) or 4 (RGBA) channels.
func (r *TextureRegistry) Load(path, tag string) error {
	img, err := DecodeImage(path)
	if err != nil {
		r.log.Warnf("texture %q: %v", tag, err)
		return err
	}
	if err := r.LoadPixels(img, tag); err != nil {
		return err
	}
	r.log.Infof("loaded texture %q from %s (%dx%d, %d channels)",
		tag, path, img.Width, img.Height, img.Channels)
	return nil
}

// LoadPixels registers an already-decoded image under tag. Fails closed when
// the registry is at capacity or the tag is already present.
func (r *TextureRegistry) LoadPixels(img *ImageData, tag string) error {
	if len(r.entries) >= MaxTextures {
		err := fmt.Errorf("texture %q: %w (%d slots)", tag, ErrTextureCapacity, MaxTextures)
		r.log.Warnf("%v", err)
		return err
	}
	if r.FindSlot(tag) >= 0 {
		err := fmt.Errorf("texture tag %q already registered", tag)
		r.log.Warnf("%v", err)
		return err
	}

	id, err := r.device.CreateTexture(img)
	if err != nil {
		r.log.Warnf("texture %q: upload: %v", tag, err)
		return fmt.Errorf("texture %q: upload: %w", tag, err)
	}

	r.entries = append(r.entries, TextureEntry{Tag: tag, ID: id})
	return nil
}

// BindAll binds every loaded texture to the texture unit matching its slot
// index. Call once after all Load calls and before the first textured draw.
func (r *TextureRegistry) BindAll() {
	for i, e := range r.entries {
		r.device.BindUnit(i, e.ID)
	}
}

// FindSlot returns the slot index for tag, or -1 when the tag is not
// registered. First match in insertion order wins.
func (r *TextureRegistry) FindSlot(tag string) int {
	for i, e := range r.entries {
		if e.Tag == tag {
			return i
		}
	}
	return -1
}

// FindID returns the GPU texture handle for tag.
func (r *TextureRegistry) FindID(tag string) (uint32, bool) {
	for _, e := range r.entries {
		if e.Tag == tag {
			return e.ID, true
		}
	}
	return 0, false
}

// Len returns the number of loaded textures.
func (r *TextureRegistry) Len() int {
	return len(r.entries)
}

// Entries returns a copy of the registered entries in slot order.
func (r *TextureRegistry) Entries() []TextureEntry {
	out := make([]TextureEntry, len(r.entries))
	copy(out, r.entries)
	return out
}

// ReleaseAll frees the GPU textures for every entry and empties the registry.
func (r *TextureRegistry) ReleaseAll() {
	for _, e := range r.entries {
		r.device.DeleteTexture(e.ID)
	}
	r.entries = r.entries[:0]
}
