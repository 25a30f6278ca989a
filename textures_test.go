package gymscene

import (
	"errors"
	"fmt"
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"
)

// fakeUploader records uploads in memory so registry logic can run without
// a GL context.
type fakeUploader struct {
	uploads []uploadCall
	bound   map[int]uint32
	deleted []uint32
	nextID  uint32
	failUp  error
}

type uploadCall struct {
	img      *image.RGBA
	hasAlpha bool
}

func newFakeUploader() *fakeUploader {
	return &fakeUploader{bound: make(map[int]uint32)}
}

func (f *fakeUploader) Upload(img *image.RGBA, hasAlpha bool) (uint32, error) {
	if f.failUp != nil {
		return 0, f.failUp
	}
	f.uploads = append(f.uploads, uploadCall{img, hasAlpha})
	f.nextID++
	return f.nextID, nil
}

func (f *fakeUploader) Bind(unit int, id uint32) error {
	f.bound[unit] = id
	return nil
}

func (f *fakeUploader) Delete(ids []uint32) {
	f.deleted = append(f.deleted, ids...)
}

// writePNG encodes img to dir/name and returns the full path.
func writePNG(t *testing.T, dir, name string, img image.Image) string {
	t.Helper()
	path := filepath.Join(dir, name)
	fp, err := os.Create(path)
	if err != nil {
		t.Fatal(err)
	}
	defer fp.Close()
	if err := png.Encode(fp, img); err != nil {
		t.Fatal(err)
	}
	return path
}

func opaqueImage(w, h int, c color.RGBA) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.SetRGBA(x, y, c)
		}
	}
	return img
}

func TestRegistryLoad(t *testing.T) {
	dir := t.TempDir()
	up := newFakeUploader()
	reg := NewRegistry(up)

	path := writePNG(t, dir, "floor.png", opaqueImage(4, 2, color.RGBA{80, 80, 80, 255}))
	if err := reg.Load(path, "floor"); err != nil {
		t.Fatalf("Load: %v", err)
	}
	if reg.Len() != 1 {
		t.Fatalf("Len = %d, want 1", reg.Len())
	}
	slot, ok := reg.Slot("floor")
	if !ok || slot != 0 {
		t.Fatalf("Slot(floor) = %d, %v", slot, ok)
	}
	id, ok := reg.ID("floor")
	if !ok || id == 0 {
		t.Fatalf("ID(floor) = %d, %v", id, ok)
	}
	if len(up.uploads) != 1 || up.uploads[0].hasAlpha {
		t.Fatalf("opaque PNG uploaded with hasAlpha=%v", up.uploads[0].hasAlpha)
	}
	e := reg.Entries()[0]
	if e.Width != 4 || e.Height != 2 || e.HasAlpha {
		t.Fatalf("entry = %+v", e)
	}
}

func TestRegistryLoadAlpha(t *testing.T) {
	dir := t.TempDir()
	up := newFakeUploader()
	reg := NewRegistry(up)

	img := image.NewNRGBA(image.Rect(0, 0, 2, 2))
	for y := 0; y < 2; y++ {
		for x := 0; x < 2; x++ {
			img.SetNRGBA(x, y, color.NRGBA{200, 100, 50, 128})
		}
	}
	path := writePNG(t, dir, "glass.png", img)
	if err := reg.Load(path, "glass"); err != nil {
		t.Fatalf("Load: %v", err)
	}
	if len(up.uploads) != 1 || !up.uploads[0].hasAlpha {
		t.Fatal("translucent PNG not uploaded with alpha format")
	}
	if e := reg.Entries()[0]; !e.HasAlpha {
		t.Fatalf("entry = %+v, want HasAlpha", e)
	}
}

func TestRegistryRejectsGrayscale(t *testing.T) {
	dir := t.TempDir()
	up := newFakeUploader()
	reg := NewRegistry(up)

	gray := image.NewGray(image.Rect(0, 0, 2, 2))
	path := writePNG(t, dir, "gray.png", gray)
	err := reg.Load(path, "gray")
	if !errors.Is(err, ErrUnsupportedChannels) {
		t.Fatalf("err = %v, want ErrUnsupportedChannels", err)
	}
	if len(up.uploads) != 0 {
		t.Fatal("rejected image reached the uploader")
	}
	if reg.Len() != 0 {
		t.Fatal("rejected image registered")
	}
}

func TestRegistryDuplicateTag(t *testing.T) {
	dir := t.TempDir()
	reg := NewRegistry(newFakeUploader())

	path := writePNG(t, dir, "a.png", opaqueImage(1, 1, color.RGBA{255, 0, 0, 255}))
	if err := reg.Load(path, "metal"); err != nil {
		t.Fatalf("first Load: %v", err)
	}
	if err := reg.Load(path, "metal"); !errors.Is(err, ErrDuplicateTag) {
		t.Fatalf("second Load err = %v, want ErrDuplicateTag", err)
	}
	if reg.Len() != 1 {
		t.Fatalf("Len = %d after duplicate, want 1", reg.Len())
	}
}

func TestRegistryMissingFile(t *testing.T) {
	reg := NewRegistry(newFakeUploader())
	err := reg.Load(filepath.Join(t.TempDir(), "absent.png"), "absent")
	if err == nil {
		t.Fatal("expected error for missing file")
	}
	if _, ok := reg.Slot("absent"); ok {
		t.Fatal("failed load registered a slot")
	}
}

func TestRegistryFlipsRows(t *testing.T) {
	dir := t.TempDir()
	up := newFakeUploader()
	reg := NewRegistry(up)

	img := image.NewRGBA(image.Rect(0, 0, 1, 2))
	img.SetRGBA(0, 0, color.RGBA{255, 0, 0, 255}) // top row red
	img.SetRGBA(0, 1, color.RGBA{0, 255, 0, 255}) // bottom row green
	path := writePNG(t, dir, "flip.png", img)
	if err := reg.Load(path, "flip"); err != nil {
		t.Fatalf("Load: %v", err)
	}
	got := up.uploads[0].img
	if got.RGBAAt(0, 0) != (color.RGBA{0, 255, 0, 255}) {
		t.Errorf("first uploaded row = %v, want bottom row of source", got.RGBAAt(0, 0))
	}
	if got.RGBAAt(0, 1) != (color.RGBA{255, 0, 0, 255}) {
		t.Errorf("second uploaded row = %v, want top row of source", got.RGBAAt(0, 1))
	}
}

func TestRegistrySlotsAreConsecutive(t *testing.T) {
	dir := t.TempDir()
	reg := NewRegistry(newFakeUploader())
	tags := []string{"floor", "walls", "wood", "metal"}
	for i, tag := range tags {
		c := color.RGBA{uint8(40 * i), 128, 128, 255}
		path := writePNG(t, dir, tag+".png", opaqueImage(2, 2, c))
		if err := reg.Load(path, tag); err != nil {
			t.Fatalf("Load %s: %v", tag, err)
		}
	}
	for want, tag := range tags {
		if slot, ok := reg.Slot(tag); !ok || slot != want {
			t.Errorf("Slot(%s) = %d, want %d", tag, slot, want)
		}
	}
}

func TestRegistryBindAll(t *testing.T) {
	dir := t.TempDir()
	up := newFakeUploader()
	reg := NewRegistry(up)
	for i := 0; i < 3; i++ {
		name := fmt.Sprintf("t%d.png", i)
		path := writePNG(t, dir, name, opaqueImage(1, 1, color.RGBA{0, 0, 0, 255}))
		if err := reg.Load(path, name); err != nil {
			t.Fatalf("Load: %v", err)
		}
	}
	if err := reg.BindAll(); err != nil {
		t.Fatalf("BindAll: %v", err)
	}
	if len(up.bound) != 3 {
		t.Fatalf("bound %d units, want 3", len(up.bound))
	}
	for _, e := range reg.Entries() {
		if up.bound[e.Slot] != e.ID {
			t.Errorf("unit %d bound to %d, want %d", e.Slot, up.bound[e.Slot], e.ID)
		}
	}
}

func TestRegistryFree(t *testing.T) {
	dir := t.TempDir()
	up := newFakeUploader()
	reg := NewRegistry(up)
	path := writePNG(t, dir, "a.png", opaqueImage(1, 1, color.RGBA{0, 0, 0, 255}))
	if err := reg.Load(path, "a"); err != nil {
		t.Fatalf("Load: %v", err)
	}
	id, _ := reg.ID("a")
	reg.Free()
	if reg.Len() != 0 {
		t.Fatalf("Len = %d after Free", reg.Len())
	}
	if _, ok := reg.Slot("a"); ok {
		t.Fatal("tag still resolves after Free")
	}
	if len(up.deleted) != 1 || up.deleted[0] != id {
		t.Fatalf("deleted = %v, want [%d]", up.deleted, id)
	}
	// Free on an empty registry is a no-op.
	reg.Free()
	if len(up.deleted) != 1 {
		t.Fatal("second Free deleted again")
	}
}

func TestRegistryLoadAllPartialFailure(t *testing.T) {
	dir := t.TempDir()
	up := newFakeUploader()
	reg := NewRegistry(up)
	// Provide only two of the expected files.
	writePNG(t, dir, "asphalt-floor.png", opaqueImage(2, 2, color.RGBA{90, 90, 90, 255}))
	writePNG(t, dir, "wood-base.png", opaqueImage(2, 2, color.RGBA{160, 120, 60, 255}))

	err := reg.LoadAll(dir)
	if err == nil {
		t.Fatal("expected joined errors for missing files")
	}
	if reg.Len() != 2 {
		t.Fatalf("Len = %d, want 2 loaded", reg.Len())
	}
	if _, ok := reg.Slot("floor"); !ok {
		t.Error("floor not loaded")
	}
	if _, ok := reg.Slot("wood"); !ok {
		t.Error("wood not loaded")
	}
	if _, ok := reg.Slot("metal"); ok {
		t.Error("missing texture registered anyway")
	}
}
