//go:build gocv

package camera

import (
	"fmt"
	"image"

	"gocv.io/x/gocv"
)

type gocvDevice struct {
	vc  *gocv.VideoCapture
	mat gocv.Mat
}

// DefaultOpener opens devices through OpenCV.
func DefaultOpener() Opener {
	return OpenerFunc(func(index int) (Device, error) {
		vc, err := gocv.OpenVideoCapture(index)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrNoCamera, err)
		}
		if !vc.IsOpened() {
			_ = vc.Close()
			return nil, ErrNoCamera
		}
		return &gocvDevice{vc: vc, mat: gocv.NewMat()}, nil
	})
}

func (d *gocvDevice) Read() (image.Image, error) {
	if ok := d.vc.Read(&d.mat); !ok || d.mat.Empty() {
		return nil, ErrNoFrame
	}
	img, err := d.mat.ToImage()
	if err != nil {
		return nil, fmt.Errorf("converting frame: %w", err)
	}
	return img, nil
}

func (d *gocvDevice) Close() error {
	_ = d.mat.Close()
	return d.vc.Close()
}
