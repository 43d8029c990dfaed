// Package camera acquires a capture device for photographing an InBody
// sheet. At most one device is held at a time; a Session releases it on
// Capture or Close.
package camera

import (
	"bytes"
	"errors"
	"fmt"
	"image"
	"image/jpeg"
	"sync"

	"github.com/mark3labs/trainer/internal/logger"
	"github.com/mark3labs/trainer/internal/service"
)

// CaptureFilename is the name given to captured photos.
const CaptureFilename = "captured_inbody.jpg"

// JPEGQuality is the encoder quality for captured photos.
const JPEGQuality = 90

var (
	// ErrNoCamera is returned when no capture device can be opened.
	ErrNoCamera = errors.New("no camera available")
	// ErrNoFrame is returned when the device produced no image.
	ErrNoFrame = errors.New("camera returned no frame")
	// ErrClosed is returned by a Session after Capture or Close.
	ErrClosed = errors.New("camera session closed")
)

// Device is an open capture device.
type Device interface {
	Read() (image.Image, error)
	Close() error
}

// Opener opens the device at index.
type Opener interface {
	Open(index int) (Device, error)
}

// OpenerFunc adapts a function to Opener.
type OpenerFunc func(index int) (Device, error)

func (f OpenerFunc) Open(index int) (Device, error) { return f(index) }

// Manager hands out sessions on a single device index.
type Manager struct {
	opener Opener
	index  int

	mu      sync.Mutex
	current *Session
}

// NewManager creates a manager for the device at index.
func NewManager(opener Opener, index int) *Manager {
	return &Manager{opener: opener, index: index}
}

// Open acquires the device, releasing any session still held first.
func (m *Manager) Open() (*Session, error) {
	m.mu.Lock()
	prev := m.current
	m.current = nil
	m.mu.Unlock()

	if prev != nil {
		if err := prev.Close(); err != nil {
			logger.Warn("releasing previous camera session: %v", err)
		}
	}

	dev, err := m.opener.Open(m.index)
	if err != nil {
		logger.Warn("opening camera %d: %v", m.index, err)
		return nil, fmt.Errorf("opening camera %d: %w", m.index, err)
	}
	logger.Debug("camera %d opened", m.index)

	s := &Session{dev: dev, mgr: m}
	m.mu.Lock()
	m.current = s
	m.mu.Unlock()
	return s, nil
}

// Active reports whether a session currently holds the device.
func (m *Manager) Active() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.current != nil
}

// Close releases the current session, if any.
func (m *Manager) Close() error {
	m.mu.Lock()
	s := m.current
	m.current = nil
	m.mu.Unlock()
	if s == nil {
		return nil
	}
	return s.Close()
}

func (m *Manager) release(s *Session) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.current == s {
		m.current = nil
	}
}

// Session is a scoped hold on a device.
type Session struct {
	mu     sync.Mutex
	dev    Device
	mgr    *Manager
	closed bool
}

// Frame reads the current frame.
func (s *Session) Frame() (image.Image, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return nil, ErrClosed
	}
	img, err := s.dev.Read()
	if err != nil {
		return nil, err
	}
	if img == nil || img.Bounds().Empty() {
		return nil, ErrNoFrame
	}
	return img, nil
}

// PreviewFrame reads a frame and renders it for a cols x rows cell area.
func (s *Session) PreviewFrame(cols, rows int, mirror bool) (string, error) {
	img, err := s.Frame()
	if err != nil {
		return "", err
	}
	return RenderPreview(img, cols, rows, mirror), nil
}

// Capture encodes the current frame as a JPEG. The device is released
// whether or not a frame could be read.
// The photo is never mirrored, whatever the preview shows.
func (s *Session) Capture() (service.Image, error) {
	defer func() {
		if err := s.Close(); err != nil {
			logger.Warn("releasing camera after capture: %v", err)
		}
	}()
	img, err := s.Frame()
	if err != nil {
		return service.Image{}, err
	}
	data, err := EncodeJPEG(img)
	if err != nil {
		return service.Image{}, err
	}
	return service.Image{Filename: CaptureFilename, ContentType: "image/jpeg", Data: data}, nil
}

// Close releases the device. Closing twice is a no-op.
func (s *Session) Close() error {
	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		return nil
	}
	s.closed = true
	err := s.dev.Close()
	s.mu.Unlock()

	if s.mgr != nil {
		s.mgr.release(s)
	}
	logger.Debug("camera released")
	return err
}

// EncodeJPEG encodes img at JPEGQuality.
func EncodeJPEG(img image.Image) ([]byte, error) {
	var buf bytes.Buffer
	if err := jpeg.Encode(&buf, img, &jpeg.Options{Quality: JPEGQuality}); err != nil {
		return nil, fmt.Errorf("encoding capture: %w", err)
	}
	return buf.Bytes(), nil
}
