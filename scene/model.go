package scene

import (
	"fmt"
	"path/filepath"
	"strings"
)

// LoadModel picks an importer by file extension. Builtin model names
// (BuiltinPlane, BuiltinSphere) are generated instead of read.
func LoadModel(path string) ([]*Mesh, error) {
	if meshes, ok := builtinModel(path); ok {
		return meshes, nil
	}
	switch strings.ToLower(filepath.Ext(path)) {
	case ".gltf", ".glb":
		return LoadGLTF(path)
	case ".obj":
		return LoadOBJ(path)
	}
	return nil, fmt.Errorf("unsupported model format %q", path)
}

// IsBuiltinModel reports whether name is generated rather than loaded.
func IsBuiltinModel(name string) bool {
	_, ok := builtinModel(name)
	return ok
}
