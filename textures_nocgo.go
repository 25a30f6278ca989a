//go:build tinygo || !cgo

package gymscene

import (
	"errors"
	"image"
)

var errNoCGO = errors.New("GPU texture upload requires CGo and is not supported on TinyGo")

// GLTextureUploader is unavailable without CGo.
type GLTextureUploader struct{}

func (GLTextureUploader) Upload(img *image.RGBA, hasAlpha bool) (uint32, error) {
	return 0, errNoCGO
}

func (GLTextureUploader) Bind(unit int, id uint32) error { return errNoCGO }

func (GLTextureUploader) Delete(ids []uint32) {}
