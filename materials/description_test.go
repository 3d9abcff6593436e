package materials

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecodeDescriptionKeepsTextureOrder(t *testing.T) {
	d, err := DecodeDescription(strings.NewReader(`<?xml version="1.0"?>
<material name="wall">
  <textures>
    <cubemap unit="5" type="environmentMap"><face path="f0"/></cubemap>
    <texture unit="0" type="diffuseTexture" path="wall.png"><tiling v="4"/></texture>
  </textures>
</material>`))
	require.NoError(t, err)
	assert.Equal(t, "wall", d.Name)
	require.NotNil(t, d.Textures)
	require.Len(t, d.Textures.Items, 2)

	assert.True(t, d.Textures.Items[0].IsCubemap())
	assert.Len(t, d.Textures.Items[0].Faces, 1)
	assert.False(t, d.Textures.Items[1].IsCubemap())
	tiling, err := d.Textures.Items[1].tiling()
	require.NoError(t, err)
	assert.Equal(t, [2]float32{1, 4}, tiling)
	assert.Nil(t, d.Parameters)
	assert.Nil(t, d.Shader)
}

func TestDecodeDescriptionToleratesBadNumbers(t *testing.T) {
	d, err := DecodeDescription(strings.NewReader(`<material name="m">
  <textures>
    <texture unit="two" type="diffuseTexture" path="a.png"><tiling u="abc" v="2"/></texture>
    <texture unit=" 3 " type="lightmap1" path="b.png"/>
  </textures>
</material>`))
	require.NoError(t, err)
	require.Len(t, d.Textures.Items, 2)

	bad := d.Textures.Items[0]
	unit, err := bad.unit()
	assert.ErrorIs(t, err, ErrAttrValue)
	assert.Zero(t, unit)
	tiling, err := bad.tiling()
	assert.ErrorIs(t, err, ErrAttrValue)
	assert.Equal(t, [2]float32{1, 2}, tiling)

	unit, err = d.Textures.Items[1].unit()
	require.NoError(t, err)
	assert.Equal(t, uint32(3), unit)
}

func TestDecodeDescriptionErrors(t *testing.T) {
	_, err := DecodeDescription(strings.NewReader(""))
	assert.True(t, errors.Is(err, ErrNoRoot))

	_, err = DecodeDescription(strings.NewReader("<shader/>"))
	assert.True(t, errors.Is(err, ErrNoRoot))

	_, err = DecodeDescription(strings.NewReader("<material><textures></material>"))
	require.Error(t, err)
	assert.False(t, errors.Is(err, ErrNoRoot))
}

func TestBlendDeclDefaults(t *testing.T) {
	var d *BlendDecl
	assert.Equal(t, DefaultBlend(), d.blend())

	d = &BlendDecl{Enabled: "yes-please"}
	assert.False(t, d.blend().Enabled)

	d = &BlendDecl{Enabled: "1", DstFactor: "GL_ONE_MINUS_SRC_ALPHA"}
	assert.Equal(t, BlendState{Enabled: true, Src: FactorOne, Dst: FactorOneMinusSrcAlpha}, d.blend())
}
