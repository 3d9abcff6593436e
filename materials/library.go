package materials

import (
	"fmt"
	"path/filepath"
	"sort"

	"go.uber.org/zap"
)

// DefaultMaterialName is the library entry used when a mesh names a material
// that was never loaded.
const DefaultMaterialName = "default"

// Library owns every loaded material by name. Meshes keep pointers into it,
// so a material is shared rather than copied.
type Library struct {
	loader    *Loader
	materials map[string]*Material
	unmatched map[string]struct{}
}

// NewLibrary returns an empty library that loads through l.
func NewLibrary(l *Loader) *Library {
	return &Library{
		loader:    l,
		materials: make(map[string]*Material),
		unmatched: make(map[string]struct{}),
	}
}

// Load builds the material at path and registers it under its description
// name, falling back to the file stem when the name attribute is empty.
func (lib *Library) Load(path string) *Material {
	m := lib.loader.Load(path)
	name := m.Name
	if name == "" {
		name = stem(path)
		m.Name = name
	}
	lib.Add(m)
	return m
}

// LoadDir loads every *.xml file in dir in lexical order and returns how many
// produced a valid material.
func (lib *Library) LoadDir(dir string) (int, error) {
	paths, err := filepath.Glob(filepath.Join(dir, "*.xml"))
	if err != nil {
		return 0, fmt.Errorf("materials: scan %q: %w", dir, err)
	}
	sort.Strings(paths)
	valid := 0
	for _, p := range paths {
		if lib.Load(p).Valid() {
			valid++
		}
	}
	lib.loader.log().Info("materials loaded",
		zap.String("dir", dir), zap.Int("files", len(paths)), zap.Int("valid", valid),
		zap.Int("textures", lib.loader.Cache.Len()))
	return valid, nil
}

// Add registers m, replacing any material of the same name.
func (lib *Library) Add(m *Material) {
	lib.materials[m.Name] = m
}

// Get returns the named material.
func (lib *Library) Get(name string) (*Material, bool) {
	m, ok := lib.materials[name]
	return m, ok
}

// Resolve returns the named material, or fallback when there is none.
// Each unmatched name is logged once.
func (lib *Library) Resolve(name string, fallback *Material) *Material {
	if m, ok := lib.materials[name]; ok {
		return m
	}
	if _, seen := lib.unmatched[name]; !seen {
		lib.unmatched[name] = struct{}{}
		lib.loader.log().Warn("no material for mesh, using fallback", zap.String("material", name))
	}
	return fallback
}

// Names lists material names in sorted order.
func (lib *Library) Names() []string {
	names := make([]string, 0, len(lib.materials))
	for n := range lib.materials {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}

// Each visits materials in name order.
func (lib *Library) Each(fn func(*Material)) {
	for _, n := range lib.Names() {
		fn(lib.materials[n])
	}
}

// EnvironmentMap returns the first loaded cubemap, visiting materials in
// name order.
func (lib *Library) EnvironmentMap() (uint32, bool) {
	for _, n := range lib.Names() {
		for _, t := range lib.materials[n].Textures {
			if t.Cubemap && t.Handle != 0 {
				return t.Handle, true
			}
		}
	}
	return 0, false
}

// Len is the number of registered materials.
func (lib *Library) Len() int { return len(lib.materials) }

func stem(path string) string {
	base := filepath.Base(path)
	return base[:len(base)-len(filepath.Ext(base))]
}
