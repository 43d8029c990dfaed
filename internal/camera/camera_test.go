package camera_test

import (
	"bytes"
	"errors"
	"image"
	"image/color"
	"image/jpeg"
	"testing"

	"github.com/charmbracelet/x/ansi"
	"github.com/mark3labs/trainer/internal/camera"
	"github.com/mark3labs/trainer/internal/camera/cameratest"
	"github.com/stretchr/testify/require"
)

func TestManager_OneDeviceAtATime(t *testing.T) {
	op := &cameratest.Opener{}
	m := camera.NewManager(op, 0)

	first, err := m.Open()
	require.NoError(t, err)
	second, err := m.Open()
	require.NoError(t, err)

	opens, closes, holding := op.Counts()
	require.Equal(t, 2, opens)
	require.Equal(t, 1, closes, "opening again releases the previous device")
	require.Equal(t, 1, holding)

	_, err = first.Frame()
	require.ErrorIs(t, err, camera.ErrClosed)
	_, err = second.Frame()
	require.NoError(t, err)

	require.NoError(t, m.Close())
	_, _, holding = op.Counts()
	require.Zero(t, holding)
	require.False(t, m.Active())
}

func TestSession_CloseIsIdempotent(t *testing.T) {
	op := &cameratest.Opener{}
	m := camera.NewManager(op, 0)
	s, err := m.Open()
	require.NoError(t, err)
	require.True(t, m.Active())

	require.NoError(t, s.Close())
	require.NoError(t, s.Close())
	require.NoError(t, m.Close())

	_, closes, holding := op.Counts()
	require.Equal(t, 1, closes)
	require.Zero(t, holding)
	require.False(t, m.Active())
}

func TestSession_CaptureReleasesDevice(t *testing.T) {
	op := &cameratest.Opener{Frame: cameratest.Gradient(16, 8)}
	m := camera.NewManager(op, 0)
	s, err := m.Open()
	require.NoError(t, err)

	img, err := s.Capture()
	require.NoError(t, err)
	require.Equal(t, camera.CaptureFilename, img.Filename)
	require.Equal(t, "image/jpeg", img.ContentType)

	decoded, err := jpeg.Decode(bytes.NewReader(img.Data))
	require.NoError(t, err)
	require.Equal(t, image.Rect(0, 0, 16, 8), decoded.Bounds())

	// Left edge stays dark: the capture is never mirrored.
	r, _, _, _ := decoded.At(0, 4).RGBA()
	require.Less(t, r>>8, uint32(64))

	_, _, holding := op.Counts()
	require.Zero(t, holding)
	require.False(t, m.Active())

	_, err = s.Capture()
	require.ErrorIs(t, err, camera.ErrClosed)
}

func TestSession_CaptureFailureStillReleases(t *testing.T) {
	op := &cameratest.Opener{ReadErr: camera.ErrNoFrame}
	m := camera.NewManager(op, 0)
	s, err := m.Open()
	require.NoError(t, err)

	_, err = s.Capture()
	require.ErrorIs(t, err, camera.ErrNoFrame)

	_, _, holding := op.Counts()
	require.Zero(t, holding)
	require.False(t, m.Active())
}

func TestManager_OpenFailure(t *testing.T) {
	op := &cameratest.Opener{Err: camera.ErrNoCamera}
	m := camera.NewManager(op, 2)

	_, err := m.Open()
	require.ErrorIs(t, err, camera.ErrNoCamera)
	require.False(t, m.Active())
	require.NoError(t, m.Close())
}

func TestDefaultOpener(t *testing.T) {
	// Without the gocv tag there is no driver.
	_, err := camera.NewManager(camera.DefaultOpener(), 0).Open()
	if err != nil {
		require.True(t, errors.Is(err, camera.ErrNoCamera))
	}
}

func TestRenderPreview(t *testing.T) {
	img := cameratest.Gradient(8, 4)

	out := camera.RenderPreview(img, 8, 2, false)
	require.Equal(t, "▀▀▀▀▀▀▀▀\n▀▀▀▀▀▀▀▀", ansi.Strip(out))

	// Wide frames are letterboxed to keep their aspect ratio.
	wide := camera.RenderPreview(cameratest.Gradient(16, 2), 8, 8, false)
	require.Equal(t, "▀▀▀▀▀▀▀▀", ansi.Strip(wide))
}

func TestRenderPreview_Mirror(t *testing.T) {
	img := image.NewRGBA(image.Rect(0, 0, 2, 2))
	img.Set(0, 0, color.RGBA{R: 255, A: 255})
	img.Set(0, 1, color.RGBA{R: 255, A: 255})
	img.Set(1, 0, color.RGBA{B: 255, A: 255})
	img.Set(1, 1, color.RGBA{B: 255, A: 255})

	plain := camera.RenderPreview(img, 2, 1, false)
	mirrored := camera.RenderPreview(img, 2, 1, true)
	require.NotEqual(t, plain, mirrored)
	require.Equal(t, camera.RenderPreview(img, 2, 1, true), mirrored)
}

func TestRenderPreview_Degenerate(t *testing.T) {
	require.Empty(t, camera.RenderPreview(nil, 10, 10, false))
	require.Empty(t, camera.RenderPreview(cameratest.Gradient(4, 4), 0, 10, false))
	require.Empty(t, camera.RenderPreview(image.NewRGBA(image.Rectangle{}), 10, 10, false))
}
