package wizard

import (
	"os"
	"path/filepath"
	"sort"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"
	"github.com/mark3labs/trainer/internal/service"
	"github.com/mark3labs/trainer/internal/tui/theme"
)

// fileItem is a file or directory in the image picker.
type fileItem struct {
	name  string
	path  string
	isDir bool
}

func (f fileItem) render(width int) string {
	icon := "🖼 "
	if f.isDir {
		icon = "📁"
	}
	display := icon + " " + f.name
	if width > 8 && lipgloss.Width(display) > width-2 {
		r := []rune(display)
		display = string(r[:max(width-5, 1)]) + "..."
	}
	return display
}

// ImagePicker browses the filesystem for an InBody photo. Only directories
// and supported image files are listed.
type ImagePicker struct {
	dir      string
	items    []fileItem
	selected int
	offset   int
	err      string
	width    int
	height   int
}

// NewImagePicker opens a picker rooted at dir, or the working directory
// when dir is empty.
func NewImagePicker(dir string) *ImagePicker {
	if dir == "" {
		if cwd, err := os.Getwd(); err == nil {
			dir = cwd
		} else {
			dir = "."
		}
	}
	p := &ImagePicker{width: 60, height: 12}
	if err := p.load(dir); err != nil {
		p.dir = dir
		p.err = err.Error()
	}
	return p
}

func (p *ImagePicker) load(path string) error {
	entries, err := os.ReadDir(path)
	if err != nil {
		return err
	}

	p.items = p.items[:0]
	if abs, err := filepath.Abs(path); err == nil && abs != filepath.Dir(abs) {
		p.items = append(p.items, fileItem{name: "..", path: filepath.Dir(abs), isDir: true})
	}

	var dirs, files []fileItem
	for _, e := range entries {
		if strings.HasPrefix(e.Name(), ".") {
			continue
		}
		full := filepath.Join(path, e.Name())
		switch {
		case e.IsDir():
			dirs = append(dirs, fileItem{name: e.Name(), path: full, isDir: true})
		case service.IsAllowedImage(e.Name()):
			files = append(files, fileItem{name: e.Name(), path: full})
		}
	}
	byName := func(items []fileItem) func(i, j int) bool {
		return func(i, j int) bool { return strings.ToLower(items[i].name) < strings.ToLower(items[j].name) }
	}
	sort.Slice(dirs, byName(dirs))
	sort.Slice(files, byName(files))

	p.items = append(append(p.items, dirs...), files...)
	p.dir = path
	p.selected = 0
	p.offset = 0
	p.err = ""
	return nil
}

func (p *ImagePicker) SetSize(width, height int) {
	p.width = width
	p.height = max(height, 3)
}

// Dir returns the directory being listed.
func (p *ImagePicker) Dir() string { return p.dir }

// Update handles navigation. Choosing a file reads it and sends
// ImageSelectedMsg; esc sends ModalClosedMsg.
func (p *ImagePicker) Update(msg tea.Msg) tea.Cmd {
	key, ok := msg.(tea.KeyPressMsg)
	if !ok {
		return nil
	}
	switch key.String() {
	case "esc":
		return func() tea.Msg { return ModalClosedMsg{} }
	case "up", "k":
		if p.selected > 0 {
			p.selected--
		}
	case "down", "j":
		if p.selected < len(p.items)-1 {
			p.selected++
		}
	case "backspace":
		if parent := filepath.Dir(p.dir); parent != p.dir {
			if err := p.load(parent); err != nil {
				p.err = err.Error()
			}
		}
	case "enter":
		if p.selected >= len(p.items) {
			return nil
		}
		item := p.items[p.selected]
		if item.isDir {
			if err := p.load(item.path); err != nil {
				p.err = err.Error()
			}
			return nil
		}
		img, err := service.LoadImage(item.path)
		if err != nil {
			p.err = err.Error()
			return nil
		}
		return func() tea.Msg { return ImageSelectedMsg{Image: img} }
	}
	p.scroll()
	return nil
}

func (p *ImagePicker) scroll() {
	if p.selected < p.offset {
		p.offset = p.selected
	}
	if p.selected >= p.offset+p.height {
		p.offset = p.selected - p.height + 1
	}
}

func (p *ImagePicker) View() string {
	st := theme.Current().S()
	var b strings.Builder
	b.WriteString(st.Muted.Render(p.dir))
	b.WriteString("\n\n")

	hasFiles := false
	for _, it := range p.items {
		if !it.isDir {
			hasFiles = true
			break
		}
	}

	end := min(p.offset+p.height, len(p.items))
	for i := p.offset; i < end; i++ {
		line := p.items[i].render(p.width)
		if i == p.selected {
			line = st.Selected.Render("▸ " + line)
		} else {
			line = "  " + line
		}
		b.WriteString(line + "\n")
	}
	if !hasFiles {
		b.WriteString(st.Muted.Render("No images here (" + strings.Join(service.AllowedExtensions, " ") + ")"))
		b.WriteString("\n")
	}
	if p.err != "" {
		b.WriteString(st.Error.Render("✗ " + p.err))
		b.WriteString("\n")
	}
	b.WriteString("\n")
	b.WriteString(renderHintBar(
		"↑↓/j/k", "navigate",
		"enter", "select",
		"backspace", "up",
		"esc", "cancel",
	))
	return b.String()
}
