package textures

import (
	"fmt"
	"strings"
)

// BuiltinPrefix names textures that exist without a file, e.g. "builtin:white".
// Builtin paths are never joined with an asset root.
const BuiltinPrefix = "builtin:"

var builtins = map[string][4]uint8{
	"white": {255, 255, 255, 255},
	"black": {0, 0, 0, 255},
	// Unperturbed tangent-space normal (0, 0, 1).
	"flat-normal": {128, 128, 255, 255},
}

// IsBuiltin reports whether path uses the builtin: scheme.
func IsBuiltin(path string) bool {
	return strings.HasPrefix(path, BuiltinPrefix)
}

// Builtin returns the named builtin texture.
func Builtin(path string) (*Image, bool) {
	c, ok := builtins[strings.TrimPrefix(path, BuiltinPrefix)]
	if !ok {
		return nil, false
	}
	return NewSolid(path, c[0], c[1], c[2], c[3]), true
}

// Open is Load with builtin textures resolved first.
func Open(path string) (*Image, error) {
	if IsBuiltin(path) {
		if img, ok := Builtin(path); ok {
			return img, nil
		}
		return nil, fmt.Errorf("%w: %q", ErrFormat, path)
	}
	return Load(path)
}
