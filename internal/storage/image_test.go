package storage

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"io"
	"testing"
)

func TestCheckImage(t *testing.T) {
	img := image.NewRGBA(image.Rect(0, 0, 2, 2))
	img.Set(0, 0, color.White)
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		t.Fatalf("encode: %v", err)
	}

	r := bytes.NewReader(buf.Bytes())
	format, err := CheckImage(r)
	if err != nil || format != "png" {
		t.Fatalf("CheckImage = %q, %v", format, err)
	}

	// o leitor volta ao início para a gravação completa
	rest, _ := io.ReadAll(r)
	if len(rest) != buf.Len() {
		t.Errorf("reader not rewound: read %d of %d", len(rest), buf.Len())
	}

	if _, err := CheckImage(bytes.NewReader([]byte("%PDF-1.4"))); err != ErrNotImage {
		t.Errorf("expected ErrNotImage, got %v", err)
	}
}

func TestIsPhotoExtension(t *testing.T) {
	for _, ext := range []string{".jpg", ".jpeg", ".png", ".webp"} {
		if !IsPhotoExtension(ext) {
			t.Errorf("%s rejected", ext)
		}
	}
	if IsPhotoExtension(".pdf") {
		t.Error(".pdf accepted as photo")
	}
}
