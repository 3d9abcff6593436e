package materials

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/go-gl/mathgl/mgl32"
)

// ParamKind tags the value held by a Param.
type ParamKind int

const (
	KindFloat ParamKind = iota
	KindInt
	KindVec3
)

func (k ParamKind) String() string {
	switch k {
	case KindFloat:
		return "float"
	case KindInt:
		return "int"
	case KindVec3:
		return "vec3"
	}
	return fmt.Sprintf("ParamKind(%d)", int(k))
}

// Param is a typed uniform value carried by a material.
type Param struct {
	Kind  ParamKind
	Float float32
	Int   int32
	Vec3  mgl32.Vec3
}

func Float(v float32) Param { return Param{Kind: KindFloat, Float: v} }
func Int(v int32) Param { return Param{Kind: KindInt, Int: v} }
func Vec3(v mgl32.Vec3) Param { return Param{Kind: KindVec3, Vec3: v} }

func (p Param) String() string {
	switch p.Kind {
	case KindInt:
		return strconv.Itoa(int(p.Int))
	case KindVec3:
		return fmt.Sprintf("%g %g %g", p.Vec3[0], p.Vec3[1], p.Vec3[2])
	}
	return strconv.FormatFloat(float64(p.Float), 'g', -1, 32)
}

// upload writes the value to loc on the active program.
func (p Param) upload(pl Pipeline, loc int32) {
	switch p.Kind {
	case KindFloat:
		pl.Uniform1f(loc, p.Float)
	case KindInt:
		pl.Uniform1i(loc, p.Int)
	case KindVec3:
		pl.Uniform3f(loc, p.Vec3)
	}
}

// ParseParam parses a literal according to its declared type name:
// "float" (decimal), "int" (integer) or "vec3" (three whitespace-separated decimals).
func ParseParam(kind, literal string) (Param, error) {
	literal = strings.TrimSpace(literal)
	switch kind {
	case "float":
		f, err := strconv.ParseFloat(literal, 32)
		if err != nil {
			return Param{}, fmt.Errorf("%w: float %q", ErrParamValue, literal)
		}
		return Float(float32(f)), nil
	case "int":
		i, err := strconv.ParseInt(literal, 10, 32)
		if err != nil {
			return Param{}, fmt.Errorf("%w: int %q", ErrParamValue, literal)
		}
		return Int(int32(i)), nil
	case "vec3":
		fields := strings.Fields(literal)
		if len(fields) != 3 {
			return Param{}, fmt.Errorf("%w: vec3 %q needs 3 components", ErrParamValue, literal)
		}
		var v mgl32.Vec3
		for i, s := range fields {
			f, err := strconv.ParseFloat(s, 32)
			if err != nil {
				return Param{}, fmt.Errorf("%w: vec3 component %q", ErrParamValue, s)
			}
			v[i] = float32(f)
		}
		return Vec3(v), nil
	}
	return Param{}, fmt.Errorf("%w: %q", ErrParamType, kind)
}
