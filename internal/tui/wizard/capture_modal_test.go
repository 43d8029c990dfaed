package wizard

import (
	"bytes"
	"image/jpeg"
	"testing"

	"github.com/mark3labs/trainer/internal/camera"
	"github.com/mark3labs/trainer/internal/camera/cameratest"
	"github.com/mark3labs/trainer/internal/tui/testfixtures"
	"github.com/stretchr/testify/require"
)

func TestCaptureModal_CloseReleasesDevice(t *testing.T) {
	op := &cameratest.Opener{}
	m := NewCaptureModal(camera.NewManager(op, 0), true)

	m.Open()
	require.True(t, m.Holding())

	_, ok := testfixtures.Find[ModalClosedMsg](feed(t, m, testfixtures.Press("esc")))
	require.True(t, ok)
	require.False(t, m.Holding())
	_, _, holding := op.Counts()
	require.Zero(t, holding)
}

func TestCaptureModal_ReopenHoldsOneDevice(t *testing.T) {
	op := &cameratest.Opener{}
	m := NewCaptureModal(camera.NewManager(op, 0), false)

	m.Open()
	m.Open()
	opens, _, holding := op.Counts()
	require.Equal(t, 2, opens)
	require.Equal(t, 1, holding)
	m.Close()
	_, _, holding = op.Counts()
	require.Zero(t, holding)
}

func TestCaptureModal_CaptureProducesJPEGAndReleases(t *testing.T) {
	op := &cameratest.Opener{Frame: cameratest.Gradient(32, 16)}
	m := NewCaptureModal(camera.NewManager(op, 0), true)
	m.Open()

	msgs := feed(t, m, testfixtures.Press("space"))
	shot, ok := testfixtures.Find[PhotoCapturedMsg](msgs)
	require.True(t, ok)
	require.Equal(t, camera.CaptureFilename, shot.Image.Filename)

	img, err := jpeg.Decode(bytes.NewReader(shot.Image.Data))
	require.NoError(t, err)
	r, _, _, _ := img.At(0, 8).RGBA()
	require.Less(t, r>>8, uint32(64), "captured photo is not mirrored")

	_, _, holding := op.Counts()
	require.Zero(t, holding)
	require.False(t, m.Holding())

	// Shutter without a session does nothing.
	require.Empty(t, feed(t, m, testfixtures.Press("enter")))
}

func TestCaptureModal_CaptureFailureReleases(t *testing.T) {
	op := &cameratest.Opener{ReadErr: camera.ErrNoFrame}
	m := NewCaptureModal(camera.NewManager(op, 0), false)
	m.Open()

	require.Empty(t, feed(t, m, testfixtures.Press("space")))
	require.Contains(t, testfixtures.Plain(m.View()), "camera returned no frame")
	_, _, holding := op.Counts()
	require.Zero(t, holding)
}

func TestCaptureModal_OpenFailureShownInline(t *testing.T) {
	m := NewCaptureModal(camera.NewManager(&cameratest.Opener{Err: camera.ErrNoCamera}, 0), false)
	require.Nil(t, m.Open())
	require.False(t, m.Holding())
	require.Contains(t, testfixtures.Plain(m.View()), "Could not access the camera")

	noCamera := NewCaptureModal(nil, false)
	noCamera.Open()
	require.False(t, noCamera.Holding())
}

func TestCaptureModal_PreviewFrames(t *testing.T) {
	op := &cameratest.Opener{}
	m := NewCaptureModal(camera.NewManager(op, 0), false)
	m.Open()
	require.Contains(t, testfixtures.Plain(m.View()), "Starting camera")

	require.NotNil(t, m.Update(previewFrameMsg{session: m.session, frame: "FRAME"}))
	require.Contains(t, testfixtures.Plain(m.View()), "FRAME")

	// Frames from an earlier session are dropped.
	stale := m.session
	m.Open()
	require.Nil(t, m.Update(previewFrameMsg{session: stale, frame: "OLD"}))
	require.NotContains(t, testfixtures.Plain(m.View()), "OLD")
	m.Close()
}

func TestCaptureModal_MirrorToggle(t *testing.T) {
	m := NewCaptureModal(camera.NewManager(&cameratest.Opener{}, 0), true)
	m.Open()
	defer m.Close()

	feed(t, m, testfixtures.Press("m"))
	require.False(t, m.Mirrored())
	require.Contains(t, testfixtures.Plain(m.View()), "mirror: off")
}
