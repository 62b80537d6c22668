package scene

import (
	"github.com/go-gl/mathgl/mgl32"

	"desk-scene/core"
)

// Material describes Phong lighting-material properties for a drawn object.
type Material struct {
	Tag       string
	Diffuse   mgl32.Vec3
	Specular  mgl32.Vec3
	Shininess float32
}

// MaterialRegistry maps string tags to materials. Append-only; populated
// during scene preparation and read-only afterwards.
type MaterialRegistry struct {
	log       core.Logger
	materials []Material
}

func NewMaterialRegistry(log core.Logger) *MaterialRegistry {
	if log == nil {
		log = core.NewNopLogger()
	}
	return &MaterialRegistry{log: log}
}

// Define appends a material. Tags are expected unique but not enforced;
// Find returns the first match in insertion order.
func (r *MaterialRegistry) Define(tag string, diffuse, specular mgl32.Vec3, shininess float32) {
	if _, ok := r.Find(tag); ok {
		r.log.Warnf("material tag %q defined more than once; first definition wins", tag)
	}
	r.materials = append(r.materials, Material{
		Tag:       tag,
		Diffuse:   diffuse,
		Specular:  specular,
		Shininess: shininess,
	})
}

// Find returns the material for tag. The bool is true only when the tag
// actually matched an entry.
func (r *MaterialRegistry) Find(tag string) (Material, bool) {
	for _, m := range r.materials {
		if m.Tag == tag {
			return m, true
		}
	}
	return Material{}, false
}

// Len returns the number of defined materials.
func (r *MaterialRegistry) Len() int {
	return len(r.materials)
}

// Tags returns the defined tags in insertion order.
func (r *MaterialRegistry) Tags() []string {
	tags := make([]string, len(r.materials))
	for i, m := range r.materials {
		tags[i] = m.Tag
	}
	return tags
}
