//go:build !gocv

package camera

// DefaultOpener reports that no camera is available. Build with the gocv
// tag to capture from a real device.
func DefaultOpener() Opener {
	return OpenerFunc(func(int) (Device, error) { return nil, ErrNoCamera })
}
