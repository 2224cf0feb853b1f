// Package viewer shows rendered diagrams in a scrollable, read-only terminal pager.
package viewer

import (
	"asciimaid/logging"
	"fmt"
	"strings"

	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"
)

var statusStyle = tcell.StyleDefault.Reverse(true)

// Viewer pages through lines of text on a tcell screen.
type Viewer struct {
	screen  tcell.Screen
	title   string
	lines   []string
	widest  int
	offsetX int
	offsetY int
}

// New creates a viewer for content. The screen must already be initialized.
func New(screen tcell.Screen, content, title string) *Viewer {
	lines := strings.Split(strings.TrimRight(content, "\n"), "\n")
	widest := 0
	for _, line := range lines {
		widest = max(widest, runewidth.StringWidth(line))
	}
	return &Viewer{screen: screen, title: title, lines: lines, widest: widest}
}

// Show opens the terminal, pages content until the user quits and restores
// the terminal.
func Show(content, title string) error {
	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("opening terminal: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("initializing terminal: %w", err)
	}
	defer screen.Fini()

	return Run(screen, content, title)
}

// Run draws content on an initialized screen and handles events until a
// quit key arrives or the screen is finalized.
func Run(screen tcell.Screen, content, title string) error {
	v := New(screen, content, title)
	for {
		v.Draw()
		ev := screen.PollEvent()
		if ev == nil {
			return nil
		}
		if v.HandleEvent(ev) {
			return nil
		}
	}
}

// Offset returns the column and row of the top-left visible cell.
func (v *Viewer) Offset() (x, y int) {
	return v.offsetX, v.offsetY
}

// viewHeight is the number of rows available for content; the last row
// holds the status line.
func (v *Viewer) viewHeight() int {
	_, h := v.screen.Size()
	return max(h-1, 1)
}

// Scroll moves the view, clamped to the content.
func (v *Viewer) Scroll(dx, dy int) {
	w, _ := v.screen.Size()
	maxX := max(v.widest-w, 0)
	maxY := max(len(v.lines)-v.viewHeight(), 0)

	v.offsetX = min(max(v.offsetX+dx, 0), maxX)
	v.offsetY = min(max(v.offsetY+dy, 0), maxY)
}

// ScrollToTop returns to the first line and column.
func (v *Viewer) ScrollToTop() {
	v.offsetX, v.offsetY = 0, 0
}

// ScrollToBottom shows the last page.
func (v *Viewer) ScrollToBottom() {
	v.Scroll(0, len(v.lines))
}

// HandleEvent applies one event and reports whether the viewer should quit.
func (v *Viewer) HandleEvent(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventResize:
		v.screen.Sync()
		v.Scroll(0, 0)
		w, h := ev.Size()
		logging.Logger.WithField("width", w).WithField("height", h).Debug("viewer resized")
	case *tcell.EventKey:
		return v.handleKey(ev)
	}
	return false
}

func (v *Viewer) handleKey(ev *tcell.EventKey) bool {
	page := v.viewHeight()

	switch ev.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return true
	case tcell.KeyUp:
		v.Scroll(0, -1)
	case tcell.KeyDown:
		v.Scroll(0, 1)
	case tcell.KeyLeft:
		v.Scroll(-1, 0)
	case tcell.KeyRight:
		v.Scroll(1, 0)
	case tcell.KeyPgUp, tcell.KeyCtrlB:
		v.Scroll(0, -page)
	case tcell.KeyPgDn, tcell.KeyCtrlF:
		v.Scroll(0, page)
	case tcell.KeyHome:
		v.ScrollToTop()
	case tcell.KeyEnd:
		v.ScrollToBottom()
	case tcell.KeyRune:
		switch ev.Rune() {
		case 'q':
			return true
		case 'k':
			v.Scroll(0, -1)
		case 'j':
			v.Scroll(0, 1)
		case 'h':
			v.Scroll(-1, 0)
		case 'l':
			v.Scroll(1, 0)
		case ' ':
			v.Scroll(0, page)
		case 'g':
			v.ScrollToTop()
		case 'G':
			v.ScrollToBottom()
		}
	}
	return false
}

// Draw paints the visible window and the status line.
func (v *Viewer) Draw() {
	v.screen.Clear()
	w, _ := v.screen.Size()
	rows := v.viewHeight()

	for row := 0; row < rows; row++ {
		i := v.offsetY + row
		if i >= len(v.lines) {
			break
		}
		col := 0
		for _, r := range v.lines[i] {
			rw := runewidth.RuneWidth(r)
			x := col - v.offsetX
			if x >= w {
				break
			}
			if x >= 0 {
				v.screen.SetContent(x, row, r, nil, tcell.StyleDefault)
			}
			col += rw
		}
	}

	status := fmt.Sprintf(" %s  %d-%d/%d  q:quit", v.title, v.offsetY+1,
		min(v.offsetY+rows, len(v.lines)), len(v.lines))
	for x := 0; x < w; x++ {
		v.screen.SetContent(x, rows, ' ', nil, statusStyle)
	}
	x := 0
	for _, r := range status {
		if x >= w {
			break
		}
		v.screen.SetContent(x, rows, r, nil, statusStyle)
		x += runewidth.RuneWidth(r)
	}

	v.screen.Show()
}
