package materials

import (
	"strings"
)

// Features are shader capabilities implied by the textures a material declares.
// They are resolved once at load time and injected into the fragment source as
// preprocessor defines.
type Features uint32

const (
	FeatureEnvironmentMap Features = 1 << iota
	FeatureBumpMap
	FeatureDetailMap
	FeatureBlendMap
)

var featureDefines = []struct {
	flag   Features
	define string
}{
	{FeatureEnvironmentMap, "HAS_ENVIRONMENT_MAP"},
	{FeatureBumpMap, "HAS_BUMP_MAP"},
	{FeatureDetailMap, "HAS_DETAIL_MAP"},
	{FeatureBlendMap, "HAS_BLEND_MAP"},
}

// DefaultGLSLVersion is prepended to sources that carry no #version line.
const DefaultGLSLVersion = "#version 410 core"

// Has reports whether every bit of f2 is set.
func (f Features) Has(f2 Features) bool { return f&f2 == f2 }

// Defines lists the define names for the set bits in a fixed order.
func (f Features) Defines() []string {
	var out []string
	for _, fd := range featureDefines {
		if f.Has(fd.flag) {
			out = append(out, fd.define)
		}
	}
	return out
}

// FeaturesFor derives the capability set from declared textures.
// Any cubemap counts as an environment map.
func FeaturesFor(textures []Texture) Features {
	var f Features
	for _, t := range textures {
		switch {
		case t.Cubemap || t.Type == "environmentMap":
			f |= FeatureEnvironmentMap
		case t.Type == "bumpMap" || t.Type == "normalMap":
			f |= FeatureBumpMap
		case strings.HasPrefix(t.Type, "detailMap"):
			f |= FeatureDetailMap
		case t.Type == "blendMap":
			f |= FeatureBlendMap
		}
	}
	return f
}

// InjectDefines inserts one "#define NAME" line per entry directly after the
// #version line. A source without one gets DefaultGLSLVersion prepended first.
func InjectDefines(src string, defines []string) string {
	if len(defines) == 0 {
		return src
	}
	var block strings.Builder
	for _, d := range defines {
		block.WriteString("#define ")
		block.WriteString(d)
		block.WriteByte('\n')
	}

	start := versionLine(src)
	if start < 0 {
		return DefaultGLSLVersion + "\n" + block.String() + src
	}
	end := strings.IndexByte(src[start:], '\n')
	if end < 0 {
		return src + "\n" + block.String()
	}
	end += start + 1
	return src[:end] + block.String() + src[end:]
}

// versionLine returns the offset of the first line whose first token is
// #version, or -1.
func versionLine(src string) int {
	off := 0
	for off <= len(src) {
		line := src[off:]
		if i := strings.IndexByte(line, '\n'); i >= 0 {
			line = line[:i]
		}
		if strings.HasPrefix(strings.TrimSpace(line), "#version") {
			return off
		}
		next := strings.IndexByte(src[off:], '\n')
		if next < 0 {
			break
		}
		off += next + 1
	}
	return -1
}
