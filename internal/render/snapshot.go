package render

import (
	"fmt"
	"image"
	"image/color"
	"image/gif"
	"image/png"
	"io"
)

// WritePNG encodes binary cell data as a PNG image, one pixel per cell.
func WritePNG(w io.Writer, cells []uint8, width, height int, on, off color.Color) error {
	if len(cells) != width*height {
		return fmt.Errorf("cell buffer has %d values, want %d", len(cells), width*height)
	}
	img := image.NewRGBA(image.Rect(0, 0, width, height))
	fillBinaryRGBA(img.Pix, cells, on, off)
	return png.Encode(w, img)
}

// GIFRecorder accumulates lattice snapshots into an animated GIF.
type GIFRecorder struct {
	w, h    int
	delay   int
	palette color.Palette
	frames  []*image.Paletted
}

// NewGIFRecorder creates a recorder for frames of the given size. Delay is in
// hundredths of a second per frame.
func NewGIFRecorder(width, height, delay int, on, off color.Color) *GIFRecorder {
	if delay <= 0 {
		delay = 2
	}
	return &GIFRecorder{
		w:       width,
		h:       height,
		delay:   delay,
		palette: color.Palette{off, on},
	}
}

// AddFrame copies the current cell values into a new paletted frame.
func (r *GIFRecorder) AddFrame(cells []uint8) error {
	if len(cells) != r.w*r.h {
		return fmt.Errorf("frame has %d values, want %d", len(cells), r.w*r.h)
	}
	frame := image.NewPaletted(image.Rect(0, 0, r.w, r.h), r.palette)
	for i, c := range cells {
		if c != 0 {
			frame.Pix[i] = 1
		}
	}
	r.frames = append(r.frames, frame)
	return nil
}

// Frames reports how many frames have been recorded.
func (r *GIFRecorder) Frames() int { return len(r.frames) }

// Encode writes the accumulated frames as a looping animated GIF.
func (r *GIFRecorder) Encode(w io.Writer) error {
	if len(r.frames) == 0 {
		return fmt.Errorf("no frames recorded")
	}
	anim := &gif.GIF{LoopCount: 0}
	for _, frame := range r.frames {
		anim.Image = append(anim.Image, frame)
		anim.Delay = append(anim.Delay, r.delay)
	}
	return gif.EncodeAll(w, anim)
}
