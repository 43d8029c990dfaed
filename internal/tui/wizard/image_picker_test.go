package wizard

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/mark3labs/trainer/internal/tui/testfixtures"
	"github.com/stretchr/testify/require"
)

func pickerDir(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "sheet.PNG"), []byte("\x89PNG\r\n\x1a\n"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "notes.txt"), []byte("x"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".hidden.jpg"), []byte("x"), 0o644))
	require.NoError(t, os.Mkdir(filepath.Join(dir, "photos"), 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "photos", "scan.jpg"), []byte("jpeg"), 0o644))
	return dir
}

func names(p *ImagePicker) []string {
	out := make([]string, 0, len(p.items))
	for _, it := range p.items {
		out = append(out, it.name)
	}
	return out
}

func TestImagePicker_ListsOnlyImagesAndDirs(t *testing.T) {
	p := NewImagePicker(pickerDir(t))
	require.Equal(t, []string{"..", "photos", "sheet.PNG"}, names(p))
}

func TestImagePicker_SelectFile(t *testing.T) {
	p := NewImagePicker(pickerDir(t))

	msgs := feed(t, p, keys("down", "down", "enter")...)
	sel, ok := testfixtures.Find[ImageSelectedMsg](msgs)
	require.True(t, ok)
	require.Equal(t, "sheet.PNG", sel.Image.Filename)
	require.Equal(t, "image/png", sel.Image.ContentType)
	require.NotEmpty(t, sel.Image.Data)
}

func TestImagePicker_NavigateDirectories(t *testing.T) {
	dir := pickerDir(t)
	p := NewImagePicker(dir)

	require.Empty(t, feed(t, p, keys("j", "enter")...))
	require.Equal(t, filepath.Join(dir, "photos"), p.Dir())
	require.Equal(t, []string{"..", "scan.jpg"}, names(p))

	feed(t, p, testfixtures.Press("backspace"))
	require.Equal(t, dir, p.Dir())
}

func TestImagePicker_Cancel(t *testing.T) {
	p := NewImagePicker(pickerDir(t))
	_, ok := testfixtures.Find[ModalClosedMsg](feed(t, p, testfixtures.Press("esc")))
	require.True(t, ok)
}

func TestImagePicker_EmptyDirectory(t *testing.T) {
	p := NewImagePicker(t.TempDir())
	require.Contains(t, testfixtures.Plain(p.View()), "No images here")
}
