package renderer

import (
	"bufio"
	"fmt"
	"image"
	"image/color"
	"image/png"
	"io"
	"math"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/image/bmp"
	"golang.org/x/image/tiff"

	"github.com/lseper/raytracer/types"
)

// Frame holds the sum of all radiance samples for every pixel. Row 0 of the
// accumulation buffer is the bottom row of the image.
type Frame struct {
	Width  int
	Height int

	accum   []types.Vec3
	samples uint32
}

// Create an empty frame.
func NewFrame(width, height int) *Frame {
	return &Frame{
		Width:  width,
		Height: height,
		accum:  make([]types.Vec3, width*height),
	}
}

// Merge an accumulation buffer holding the given number of samples per
// pixel into the frame.
func (f *Frame) Add(accum []types.Vec3, samples uint32) error {
	if len(accum) != len(f.accum) {
		return ErrFrameSize
	}
	for idx := range accum {
		f.accum[idx] = f.accum[idx].Add(accum[idx])
	}
	f.samples += samples
	return nil
}

// Get the number of samples per pixel accumulated into the frame.
func (f *Frame) Samples() uint32 {
	return f.samples
}

// Get the tone-mapped 8-bit color of a pixel. Row y=0 is the bottom row.
func (f *Frame) Pixel(x, y int) (r, g, b uint8) {
	var scale float32
	if f.samples > 0 {
		scale = 1.0 / float32(f.samples)
	}
	c := f.accum[y*f.Width+x]
	return toneMap(c[0], scale), toneMap(c[1], scale), toneMap(c[2], scale)
}

// Average the accumulated value, apply gamma 2 and quantize to [0, 255].
func toneMap(v, scale float32) uint8 {
	c := math.Sqrt(float64(v * scale))
	if !(c > 0) {
		c = 0
	} else if c > 0.999 {
		c = 0.999
	}
	return uint8(256 * c)
}

// Write the frame as a plain-text PPM image. Rows are written from the top
// of the image down.
func (f *Frame) WritePPM(out io.Writer) error {
	w := bufio.NewWriter(out)
	fmt.Fprintf(w, "P3\n%d %d\n255\n", f.Width, f.Height)
	for y := f.Height - 1; y >= 0; y-- {
		for x := 0; x < f.Width; x++ {
			r, g, b := f.Pixel(x, y)
			fmt.Fprintf(w, "%d %d %d\n", r, g, b)
		}
	}
	return w.Flush()
}

// Get the tone-mapped frame as an image. Image row 0 is the top row.
func (f *Frame) Image() *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, f.Width, f.Height))
	for y := 0; y < f.Height; y++ {
		for x := 0; x < f.Width; x++ {
			r, g, b := f.Pixel(x, f.Height-1-y)
			img.SetRGBA(x, y, color.RGBA{r, g, b, 255})
		}
	}
	return img
}

// Encode the frame using the format that matches the file extension
// (.ppm, .png, .bmp, .tif or .tiff).
func (f *Frame) Encode(out io.Writer, ext string) error {
	switch strings.ToLower(ext) {
	case ".ppm":
		return f.WritePPM(out)
	case ".png":
		return png.Encode(out, f.Image())
	case ".bmp":
		return bmp.Encode(out, f.Image())
	case ".tif", ".tiff":
		return tiff.Encode(out, f.Image(), &tiff.Options{Compression: tiff.Deflate})
	}
	return fmt.Errorf("renderer: unsupported image format %q", ext)
}

// Write the frame to a file. A filename of "-" writes a PPM image to stdout.
func (f *Frame) WriteFile(filename string) error {
	if filename == "-" {
		return f.WritePPM(os.Stdout)
	}

	ext := filepath.Ext(filename)
	file, err := os.Create(filename)
	if err != nil {
		return err
	}

	if err = f.Encode(file, ext); err != nil {
		file.Close()
		os.Remove(filename)
		return err
	}
	return file.Close()
}
