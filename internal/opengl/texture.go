package opengl

import (
	"fmt"

	gl "github.com/go-gl/gl/v4.1-core/gl"
	"go.uber.org/zap"

	"lightmap-viewer/textures"
)

// LoadTexture2D decodes path and uploads it as a mipmapped, repeating 2D
// texture. builtin: paths are served without touching the filesystem.
// On failure the handle is 0.
func (d *Device) LoadTexture2D(path string) (uint32, error) {
	img, err := textures.Open(path)
	if err != nil {
		return 0, err
	}
	id := d.upload2D(img)
	d.log.Debug("texture uploaded", zap.String("path", path),
		zap.Int("width", img.Width), zap.Int("height", img.Height))
	return id, nil
}

// LoadCubemap uploads six faces in +X, -X, +Y, -Y, +Z, -Z order.
func (d *Device) LoadCubemap(faces [6]string) (uint32, error) {
	imgs, err := textures.CubeFaces(faces)
	if err != nil {
		return 0, fmt.Errorf("cubemap %q: %w", faces[0], err)
	}

	var id uint32
	gl.GenTextures(1, &id)
	gl.BindTexture(gl.TEXTURE_CUBE_MAP, id)
	for i, img := range imgs {
		gl.TexImage2D(
			gl.TEXTURE_CUBE_MAP_POSITIVE_X+uint32(i),
			0,
			gl.RGBA,
			int32(img.Width),
			int32(img.Height),
			0,
			gl.RGBA,
			gl.UNSIGNED_BYTE,
			gl.Ptr(img.Pixels),
		)
	}
	gl.TexParameteri(gl.TEXTURE_CUBE_MAP, gl.TEXTURE_MIN_FILTER, gl.LINEAR)
	gl.TexParameteri(gl.TEXTURE_CUBE_MAP, gl.TEXTURE_MAG_FILTER, gl.LINEAR)
	gl.TexParameteri(gl.TEXTURE_CUBE_MAP, gl.TEXTURE_WRAP_S, gl.CLAMP_TO_EDGE)
	gl.TexParameteri(gl.TEXTURE_CUBE_MAP, gl.TEXTURE_WRAP_T, gl.CLAMP_TO_EDGE)
	gl.TexParameteri(gl.TEXTURE_CUBE_MAP, gl.TEXTURE_WRAP_R, gl.CLAMP_TO_EDGE)
	gl.BindTexture(gl.TEXTURE_CUBE_MAP, 0)

	d.textures = append(d.textures, id)
	d.log.Debug("cubemap uploaded", zap.String("path", faces[0]), zap.Int("size", imgs[0].Width))
	return id, nil
}

func (d *Device) upload2D(img *textures.Image) uint32 {
	var id uint32
	gl.GenTextures(1, &id)
	gl.BindTexture(gl.TEXTURE_2D, id)

	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_S, gl.REPEAT)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_T, gl.REPEAT)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MIN_FILTER, gl.LINEAR_MIPMAP_LINEAR)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MAG_FILTER, gl.LINEAR)

	gl.TexImage2D(
		gl.TEXTURE_2D,
		0,
		gl.RGBA,
		int32(img.Width),
		int32(img.Height),
		0,
		gl.RGBA,
		gl.UNSIGNED_BYTE,
		gl.Ptr(img.Pixels),
	)
	gl.GenerateMipmap(gl.TEXTURE_2D)
	gl.BindTexture(gl.TEXTURE_2D, 0)

	d.textures = append(d.textures, id)
	return id
}
