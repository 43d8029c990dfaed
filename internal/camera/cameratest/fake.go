// Package cameratest provides an in-memory camera for tests.
package cameratest

import (
	"image"
	"image/color"
	"sync"

	"github.com/mark3labs/trainer/internal/camera"
)

// Opener hands out fake devices and counts how many are open.
type Opener struct {
	mu      sync.Mutex
	Err     error       // returned by Open when set
	Frame   image.Image // served by every device; nil yields Gradient(8, 4)
	ReadErr error       // returned by every Read when set
	opens   int
	closes  int
	holding int
}

// Open implements camera.Opener.
func (o *Opener) Open(int) (camera.Device, error) {
	o.mu.Lock()
	defer o.mu.Unlock()
	if o.Err != nil {
		return nil, o.Err
	}
	o.opens++
	o.holding++
	frame := o.Frame
	if frame == nil {
		frame = Gradient(8, 4)
	}
	return &device{o: o, frame: frame, err: o.ReadErr}, nil
}

// Counts returns the number of opens, closes and currently held devices.
func (o *Opener) Counts() (opens, closes, holding int) {
	o.mu.Lock()
	defer o.mu.Unlock()
	return o.opens, o.closes, o.holding
}

type device struct {
	o     *Opener
	frame image.Image
	err   error
}

func (d *device) Read() (image.Image, error) {
	if d.err != nil {
		return nil, d.err
	}
	return d.frame, nil
}

func (d *device) Close() error {
	d.o.mu.Lock()
	defer d.o.mu.Unlock()
	d.o.closes++
	d.o.holding--
	return nil
}

// Gradient returns a w x h image whose left column is black and right
// column is white, so mirroring is observable.
func Gradient(w, h int) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			v := uint8(x * 255 / max(w-1, 1))
			img.Set(x, y, color.RGBA{R: v, G: v, B: v, A: 0xff})
		}
	}
	return img
}
