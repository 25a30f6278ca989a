// Package gymscene renders a fixed gym layout (atlas-stone tables, lifting
// benches, a dumbbell rack) as a flat list of primitive placements fed into
// an OpenGL pipeline. The scene itself is data: see Objects. The supporting
// pieces are a texture registry, a material/light table and a transform
// helper, all keyed by string tags.
package gymscene

import (
	"errors"
	"fmt"
	"image"
	"image/draw"
	"os"
	"path/filepath"

	// Decoders for the texture formats accepted by the registry.
	_ "image/jpeg"
	_ "image/png"

	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
)

// MaxTextureSlots caps how many textures BindAll may map to texture units.
// It matches the minimum sampler count guaranteed by the GL version in use.
const MaxTextureSlots = 16

var (
	// ErrUnsupportedChannels reports an image whose pixel layout is neither
	// 3-channel opaque color nor 4-channel color+alpha.
	ErrUnsupportedChannels = errors.New("unsupported image channel layout")
	// ErrDuplicateTag reports a texture or material tag registered twice.
	ErrDuplicateTag = errors.New("duplicate tag")
)

// TextureEntry records one loaded texture. Entries are immutable once
// created; Slot is the texture unit BindAll assigns.
type TextureEntry struct {
	Tag      string
	ID       uint32
	Slot     int
	HasAlpha bool
	Width    int
	Height   int
}

// TexUploader is the GPU side of the registry. The GL implementation is
// [GLTextureUploader]; tests substitute an in-memory fake.
type TexUploader interface {
	// Upload transfers pixels to the GPU and returns the texture handle.
	// hasAlpha selects an alpha-carrying internal format.
	Upload(img *image.RGBA, hasAlpha bool) (uint32, error)
	// Bind attaches a previously uploaded texture to a texture unit.
	Bind(unit int, id uint32) error
	// Delete releases the given texture handles.
	Delete(ids []uint32)
}

// Registry loads image files and maps string tags to texture slots. It grows
// as needed; the only hard limit is MaxTextureSlots at bind time.
//
// Registry is not safe for concurrent use. All scene work happens on the
// rendering thread.
type Registry struct {
	up      TexUploader
	entries []TextureEntry
	index   map[string]int
}

// NewRegistry returns an empty registry backed by the given uploader.
func NewRegistry(up TexUploader) *Registry {
	return &Registry{up: up, index: make(map[string]int)}
}

// Load decodes the image file and uploads it, registering the result under
// tag. Images with unsupported channel layouts are rejected before any GPU
// allocation. Duplicate tags are an error rather than a silent shadow.
func (r *Registry) Load(path, tag string) error {
	if _, exists := r.index[tag]; exists {
		return fmt.Errorf("texture %q: %w", tag, ErrDuplicateTag)
	}
	fp, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("texture %q: %w", tag, err)
	}
	defer fp.Close()
	img, _, err := image.Decode(fp)
	if err != nil {
		return fmt.Errorf("texture %q: decoding %s: %w", tag, path, err)
	}
	channels := channelCount(img)
	if channels != 3 && channels != 4 {
		return fmt.Errorf("texture %q (%s): %d channels: %w", tag, path, channels, ErrUnsupportedChannels)
	}
	hasAlpha := channels == 4
	rgba := flipToRGBA(img)
	id, err := r.up.Upload(rgba, hasAlpha)
	if err != nil {
		return fmt.Errorf("texture %q: %w", tag, err)
	}
	entry := TextureEntry{
		Tag:      tag,
		ID:       id,
		Slot:     len(r.entries),
		HasAlpha: hasAlpha,
		Width:    img.Bounds().Dx(),
		Height:   img.Bounds().Dy(),
	}
	r.index[tag] = entry.Slot
	r.entries = append(r.entries, entry)
	Logger().Info("loaded texture",
		"tag", tag, "path", path,
		"width", entry.Width, "height", entry.Height,
		"channels", channels, "slot", entry.Slot)
	return nil
}

// sceneTextures names the image files the gym scene expects under the
// texture directory, with the tags the object table references.
var sceneTextures = []struct {
	File string
	Tag  string
}{
	{"asphalt-floor.png", "floor"},
	{"concrete-stones.png", "atlas-stone"},
	{"concrete-walls.png", "walls"},
	{"rubber-bench.png", "bench"},
	{"metal-beams.png", "metal"},
	{"wood-base.png", "wood"},
	{"dumbbells.png", "dbell"},
}

// LoadAll loads the scene's texture set from dir. A failed texture is logged
// and skipped so the scene still renders best-effort; the joined errors are
// returned for the caller to surface.
func (r *Registry) LoadAll(dir string) error {
	var errs []error
	for _, st := range sceneTextures {
		if err := r.Load(filepath.Join(dir, st.File), st.Tag); err != nil {
			Logger().Warn("skipping texture", "tag", st.Tag, "err", err)
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

// Slot returns the texture unit assigned to tag by BindAll.
func (r *Registry) Slot(tag string) (int, bool) {
	i, ok := r.index[tag]
	return i, ok
}

// ID returns the GPU handle registered under tag.
func (r *Registry) ID(tag string) (uint32, bool) {
	i, ok := r.index[tag]
	if !ok {
		return 0, false
	}
	return r.entries[i].ID, true
}

// Len returns the number of loaded textures.
func (r *Registry) Len() int { return len(r.entries) }

// Entries returns the loaded textures in slot order.
func (r *Registry) Entries() []TextureEntry { return r.entries }

// BindAll binds every loaded texture to the texture unit matching its slot.
func (r *Registry) BindAll() error {
	if len(r.entries) > MaxTextureSlots {
		return fmt.Errorf("%d textures loaded, only %d texture units available", len(r.entries), MaxTextureSlots)
	}
	for _, e := range r.entries {
		if err := r.up.Bind(e.Slot, e.ID); err != nil {
			return fmt.Errorf("binding texture %q to unit %d: %w", e.Tag, e.Slot, err)
		}
	}
	return nil
}

// Free releases every texture handle and empties the registry.
func (r *Registry) Free() {
	if len(r.entries) == 0 {
		return
	}
	ids := make([]uint32, len(r.entries))
	for i, e := range r.entries {
		ids[i] = e.ID
	}
	r.up.Delete(ids)
	r.entries = r.entries[:0]
	clear(r.index)
}

// channelCount classifies a decoded image the way stb-style loaders report
// channels: opaque truecolor counts as 3, color+alpha as 4, anything else
// (grayscale, paletted, CMYK) is unsupported.
func channelCount(img image.Image) int {
	switch img.(type) {
	case *image.RGBA, *image.RGBA64, *image.YCbCr:
		return 3
	case *image.NRGBA, *image.NRGBA64:
		return 4
	case *image.Gray, *image.Gray16:
		return 1
	default:
		return 0
	}
}

// flipToRGBA converts img to tightly packed RGBA with rows flipped
// vertically, since image files store the top row first while GL expects
// the first row at V=0.
func flipToRGBA(img image.Image) *image.RGBA {
	b := img.Bounds()
	rgba := image.NewRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))
	draw.Draw(rgba, rgba.Bounds(), img, b.Min, draw.Src)
	stride := rgba.Stride
	tmp := make([]uint8, stride)
	for top, bot := 0, b.Dy()-1; top < bot; top, bot = top+1, bot-1 {
		rowT := rgba.Pix[top*stride : top*stride+stride]
		rowB := rgba.Pix[bot*stride : bot*stride+stride]
		copy(tmp, rowT)
		copy(rowT, rowB)
		copy(rowB, tmp)
	}
	return rgba
}
