package textures

import (
	"fmt"

	"github.com/anthonynsimon/bild/transform"
)

// CubeFaces loads six cubemap faces in +X, -X, +Y, -Y, +Z, -Z order and
// resizes any face that differs from the largest one so every face is the
// same square size, as GL requires for a complete cubemap.
func CubeFaces(paths [6]string) ([6]*Image, error) {
	var faces [6]*Image
	size := 0
	for i, p := range paths {
		img, err := Open(p)
		if err != nil {
			return faces, fmt.Errorf("cubemap face %d: %w", i, err)
		}
		faces[i] = img
		size = max(size, img.Width, img.Height)
	}

	for i, f := range faces {
		if f.Width == size && f.Height == size {
			continue
		}
		resized := transform.Resize(f.RGBA(), size, size, transform.Linear)
		faces[i] = FromImage(f.Name, resized)
	}
	return faces, nil
}
