package materials

import (
	"encoding/xml"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
)

var (
	ErrNoRoot       = errors.New("material: no <material> root element")
	ErrCubemapFaces = errors.New("material: cubemap needs exactly 6 faces")
	ErrParamType    = errors.New("material: unknown parameter type")
	ErrParamValue   = errors.New("material: bad parameter value")
	ErrAttrValue    = errors.New("material: bad attribute value")
)

// Description is the declarative form of a material as authored on disk:
//
//	<material name="metal_floor">
//	  <textures>
//	    <texture unit="0" type="diffuseTexture" path="textures/floor.png">
//	      <tiling u="4" v="4"/>
//	    </texture>
//	    <cubemap unit="5" type="environmentMap">
//	      <face path="cubemaps/right.tga"/> ... six faces
//	    </cubemap>
//	  </textures>
//	  <parameters>
//	    <parameter name="shininess" type="float" value="32.0"/>
//	  </parameters>
//	  <blending enabled="true" srcFactor="GL_SRC_ALPHA" dstFactor="GL_ONE" equation="GL_FUNC_ADD"/>
//	  <shader vertex="shaders/rnm.vert" fragment="shaders/rnm.frag"/>
//	</material>
//
// Every child section is optional.
type Description struct {
	XMLName    xml.Name
	Name       string        `xml:"name,attr"`
	Textures   *TexturesDecl `xml:"textures"`
	Parameters *ParamsDecl   `xml:"parameters"`
	Blending   *BlendDecl    `xml:"blending"`
	Shader     *ShaderDecl   `xml:"shader"`
}

// TexturesDecl keeps <texture> and <cubemap> children in document order.
type TexturesDecl struct {
	Items []TextureDecl `xml:",any"`
}

// TextureDecl is a <texture> or <cubemap> element; XMLName tells which.
// Numeric attributes stay strings so one bad value cannot fail the document.
type TextureDecl struct {
	XMLName xml.Name
	Unit    string      `xml:"unit,attr"`
	Type    string      `xml:"type,attr"`
	Path    string      `xml:"path,attr"`
	Tiling  *TilingDecl `xml:"tiling"`
	Faces   []FaceDecl  `xml:"face"`
}

// IsCubemap reports whether the element was a <cubemap>.
func (d TextureDecl) IsCubemap() bool { return d.XMLName.Local == "cubemap" }

type TilingDecl struct {
	U string `xml:"u,attr"`
	V string `xml:"v,attr"`
}

type FaceDecl struct {
	Path string `xml:"path,attr"`
}

type ParamsDecl struct {
	Items []ParamDecl `xml:"parameter"`
}

type ParamDecl struct {
	Name  string `xml:"name,attr"`
	Type  string `xml:"type,attr"`
	Value string `xml:"value,attr"`
}

type BlendDecl struct {
	Enabled   string `xml:"enabled,attr"`
	SrcFactor string `xml:"srcFactor,attr"`
	DstFactor string `xml:"dstFactor,attr"`
	Equation  string `xml:"equation,attr"`
}

type ShaderDecl struct {
	Vertex   string `xml:"vertex,attr"`
	Fragment string `xml:"fragment,attr"`
}

// DecodeDescription parses a material description document.
func DecodeDescription(r io.Reader) (*Description, error) {
	var d Description
	if err := xml.NewDecoder(r).Decode(&d); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, ErrNoRoot
		}
		return nil, fmt.Errorf("material: parse: %w", err)
	}
	if d.XMLName.Local != "material" {
		return nil, ErrNoRoot
	}
	return &d, nil
}

// unit returns the declared texture unit. A missing or malformed value is
// unit 0; the error reports the malformed one.
func (d TextureDecl) unit() (uint32, error) {
	s := strings.TrimSpace(d.Unit)
	if s == "" {
		return 0, nil
	}
	u, err := strconv.ParseUint(s, 10, 32)
	if err != nil {
		return 0, fmt.Errorf("%w: unit %q", ErrAttrValue, d.Unit)
	}
	return uint32(u), nil
}

// tiling returns the declared UV scale. Each missing or malformed axis is 1;
// the error reports the malformed ones.
func (d TextureDecl) tiling() ([2]float32, error) {
	t := [2]float32{1, 1}
	if d.Tiling == nil {
		return t, nil
	}
	var errs []error
	for i, attr := range [2]string{d.Tiling.U, d.Tiling.V} {
		s := strings.TrimSpace(attr)
		if s == "" {
			continue
		}
		f, err := strconv.ParseFloat(s, 32)
		if err != nil {
			errs = append(errs, fmt.Errorf("%w: tiling %q", ErrAttrValue, attr))
			continue
		}
		t[i] = float32(f)
	}
	return t, errors.Join(errs...)
}

// blend resolves the declaration against DefaultBlend. Absent attributes keep
// the default; unrecognised tokens fall back as ParseBlendFactor/Equation do.
func (d *BlendDecl) blend() BlendState {
	b := DefaultBlend()
	if d == nil {
		return b
	}
	b.Enabled, _ = strconv.ParseBool(d.Enabled)
	if d.SrcFactor != "" {
		b.Src = ParseBlendFactor(d.SrcFactor)
	}
	if d.DstFactor != "" {
		b.Dst = ParseBlendFactor(d.DstFactor)
	}
	if d.Equation != "" {
		b.Equation = ParseBlendEquation(d.Equation)
	}
	return b
}
