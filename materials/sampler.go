package materials

import "sort"

// SamplerRegistry maps sampler uniform names to fixed texture units. It is
// read-only after construction and shared by every material, so a sampler
// name resolves to the same unit in every program.
type SamplerRegistry struct {
	units   map[string]int32
	ordered []samplerEntry
}

type samplerEntry struct {
	name string
	unit int32
}

// defaultSamplerUnits is the unit convention shared by the lightmapping shaders.
var defaultSamplerUnits = map[string]int32{
	"diffuseTexture": 0,
	"bumpMap":        1,
	"normalMap":      1,
	"lightmap0":      2,
	"lightmap1":      3,
	"lightmap2":      4,
	"environmentMap": 5,
	"detailMap":      6,
	"detailMap2":     7,
	"detailMap3":     8,
	"blendMap":       9,
}

var defaultSamplers = NewSamplerRegistry(defaultSamplerUnits)

// DefaultSamplers returns the process-wide registry.
func DefaultSamplers() *SamplerRegistry { return defaultSamplers }

// NewSamplerRegistry copies units into a new registry.
func NewSamplerRegistry(units map[string]int32) *SamplerRegistry {
	r := &SamplerRegistry{units: make(map[string]int32, len(units))}
	for name, unit := range units {
		r.units[name] = unit
		r.ordered = append(r.ordered, samplerEntry{name, unit})
	}
	sort.Slice(r.ordered, func(i, j int) bool {
		a, b := r.ordered[i], r.ordered[j]
		if a.unit != b.unit {
			return a.unit < b.unit
		}
		return a.name < b.name
	})
	return r
}

// Unit returns the texture unit assigned to a sampler name.
func (r *SamplerRegistry) Unit(name string) (int32, bool) {
	u, ok := r.units[name]
	return u, ok
}

// Each visits every entry ordered by unit, then name.
func (r *SamplerRegistry) Each(fn func(name string, unit int32)) {
	for _, e := range r.ordered {
		fn(e.name, e.unit)
	}
}

// Len is the number of registered sampler names.
func (r *SamplerRegistry) Len() int { return len(r.ordered) }
