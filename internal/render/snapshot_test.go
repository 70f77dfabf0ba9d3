package render

import (
	"bytes"
	"image/color"
	"image/png"
	"testing"
)

func TestWritePNG(t *testing.T) {
	cells := []uint8{1, 0, 0, 1, 1, 0}
	var buf bytes.Buffer
	if err := WritePNG(&buf, cells, 3, 2, color.White, color.Black); err != nil {
		t.Fatalf("WritePNG: %v", err)
	}
	img, err := png.Decode(&buf)
	if err != nil {
		t.Fatalf("decoding output: %v", err)
	}
	if b := img.Bounds(); b.Dx() != 3 || b.Dy() != 2 {
		t.Fatalf("image is %dx%d, want 3x2", b.Dx(), b.Dy())
	}
}

func TestWritePNGRejectsSizeMismatch(t *testing.T) {
	var buf bytes.Buffer
	if err := WritePNG(&buf, []uint8{1, 0}, 3, 2, color.White, color.Black); err == nil {
		t.Fatal("expected error for short cell buffer")
	}
}

func TestGIFRecorder(t *testing.T) {
	rec := NewGIFRecorder(2, 2, 2, color.White, color.Black)
	if err := rec.Encode(&bytes.Buffer{}); err == nil {
		t.Fatal("expected error encoding zero frames")
	}

	if err := rec.AddFrame([]uint8{1, 0, 0, 1}); err != nil {
		t.Fatalf("AddFrame: %v", err)
	}
	if err := rec.AddFrame([]uint8{0, 1, 1, 0}); err != nil {
		t.Fatalf("AddFrame: %v", err)
	}
	if rec.Frames() != 2 {
		t.Fatalf("Frames() = %d, want 2", rec.Frames())
	}
	if err := rec.AddFrame([]uint8{1}); err == nil {
		t.Fatal("expected error for short frame")
	}

	var buf bytes.Buffer
	if err := rec.Encode(&buf); err != nil {
		t.Fatalf("Encode: %v", err)
	}
	if buf.Len() == 0 {
		t.Fatal("encoded GIF is empty")
	}
}
