//go:build !tinygo && cgo

package gymscene

import (
	"fmt"
	"image"

	"github.com/go-gl/gl/v4.6-core/gl"
	"github.com/soypat/glgl/v4.6-core/glgl"
)

// GLTextureUploader implements [TexUploader] on the current GL context.
// Textures are stored with REPEAT wrapping and linear filtering plus
// mipmaps, matching how the scene tiles its surface textures.
type GLTextureUploader struct{}

func (GLTextureUploader) Upload(img *image.RGBA, hasAlpha bool) (uint32, error) {
	var id uint32
	gl.GenTextures(1, &id)
	gl.BindTexture(gl.TEXTURE_2D, id)

	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_S, gl.REPEAT)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_T, gl.REPEAT)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MIN_FILTER, gl.LINEAR_MIPMAP_LINEAR)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MAG_FILTER, gl.LINEAR)

	// Pixels are always tightly packed RGBA; the internal format drops the
	// alpha channel for opaque sources.
	internal := int32(gl.RGB8)
	if hasAlpha {
		internal = gl.RGBA8
	}
	w, h := int32(img.Bounds().Dx()), int32(img.Bounds().Dy())
	gl.TexImage2D(gl.TEXTURE_2D, 0, internal, w, h, 0, gl.RGBA, gl.UNSIGNED_BYTE, gl.Ptr(img.Pix))
	gl.GenerateMipmap(gl.TEXTURE_2D)
	gl.BindTexture(gl.TEXTURE_2D, 0)

	if err := glgl.Err(); err != nil {
		gl.DeleteTextures(1, &id)
		return 0, fmt.Errorf("uploading %dx%d texture: %w", w, h, err)
	}
	return id, nil
}

func (GLTextureUploader) Bind(unit int, id uint32) error {
	gl.ActiveTexture(uint32(gl.TEXTURE0 + unit))
	gl.BindTexture(gl.TEXTURE_2D, id)
	return glgl.Err()
}

func (GLTextureUploader) Delete(ids []uint32) {
	if len(ids) == 0 {
		return
	}
	gl.DeleteTextures(int32(len(ids)), &ids[0])
}
