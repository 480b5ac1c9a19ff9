package viewer

import (
	"fmt"

	"github.com/gdamore/tcell/v2"

	"github.com/keyscope/keyscope/internal/config"
	"github.com/keyscope/keyscope/internal/keynames"
	"github.com/keyscope/keyscope/internal/metrics"
	"github.com/keyscope/keyscope/internal/session"
)

// Viewer is the interactive terminal table over the event log.
//
// Keys: q or Escape quits, c clears the log (and the decoder's pending
// sequence state through the clear hook), 3-7 cycle the display format
// of the corresponding column, arrows and PgUp/PgDn scroll.
type Viewer struct {
	screen  tcell.Screen
	log     *session.Log
	metrics *metrics.Metrics

	formats *config.ColumnFormats
	scan    *keynames.ScanTable
	vk      *keynames.VKTable

	// onClear resets decoder state alongside the log.
	onClear func()

	// offset is the index of the first visible row.
	offset int

	// follow keeps the view pinned to the newest events.
	follow bool
}

// New creates a viewer over the given log. The formats pointer is
// shared with the caller so format changes made in the viewer persist
// with the rest of the settings.
func New(log *session.Log, formats *config.ColumnFormats, m *metrics.Metrics, onClear func()) (*Viewer, error) {
	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, fmt.Errorf("creating screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return nil, fmt.Errorf("initializing screen: %w", err)
	}

	return &Viewer{
		screen:  screen,
		log:     log,
		metrics: m,
		formats: formats,
		scan:    keynames.DefaultScanTable(),
		vk:      keynames.DefaultVKTable(),
		onClear: onClear,
		follow:  true,
	}, nil
}

// eventSettings carries reloaded settings into the event loop.
type eventSettings struct {
	tcell.EventTime
	formats config.ColumnFormats
}

// ApplySettings hands updated settings to the viewer. It is safe to
// call from another goroutine; the update lands on the event loop.
func (v *Viewer) ApplySettings(s config.Settings) {
	ev := &eventSettings{formats: s.Columns}
	ev.SetEventNow()
	_ = v.screen.PostEvent(ev)
}

// Run drives the viewer until the user quits.
func (v *Viewer) Run() error {
	defer v.screen.Fini()

	for {
		v.draw()

		switch ev := v.screen.PollEvent().(type) {
		case *tcell.EventResize:
			v.screen.Sync()
		case *tcell.EventKey:
			if v.handleKey(ev) {
				return nil
			}
		case *eventSettings:
			*v.formats = ev.formats
		case nil:
			return nil
		}
	}
}

// handleKey processes one key press, returning true to quit.
func (v *Viewer) handleKey(ev *tcell.EventKey) bool {
	switch ev.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return true
	case tcell.KeyUp:
		v.scrollBy(-1)
	case tcell.KeyDown:
		v.scrollBy(1)
	case tcell.KeyPgUp:
		v.scrollBy(-v.pageSize())
	case tcell.KeyPgDn:
		v.scrollBy(v.pageSize())
	case tcell.KeyHome:
		v.offset = 0
		v.follow = false
	case tcell.KeyEnd:
		v.follow = true
	case tcell.KeyRune:
		switch r := ev.Rune(); r {
		case 'q':
			return true
		case 'c':
			v.log.Clear()
			v.offset = 0
			v.follow = true
			if v.onClear != nil {
				v.onClear()
			}
		case '3', '4', '5', '6', '7':
			cycleFormat(ColVKey+int(r-'3'), v.formats)
		}
	}
	return false
}

func (v *Viewer) pageSize() int {
	_, height := v.screen.Size()
	if height <= 3 {
		return 1
	}
	return height - 3
}

func (v *Viewer) scrollBy(delta int) {
	v.follow = false
	v.offset += delta
	max := v.log.Len() - v.pageSize()
	if v.offset > max {
		v.offset = max
		v.follow = true
	}
	if v.offset < 0 {
		v.offset = 0
	}
}

func (v *Viewer) draw() {
	v.screen.Clear()
	width, height := v.screen.Size()
	page := v.pageSize()

	if v.follow {
		v.offset = v.log.Len() - page
		if v.offset < 0 {
			v.offset = 0
		}
	}

	headerStyle := tcell.StyleDefault.Bold(true).Underline(true)
	x := 2
	for col, title := range columnTitles {
		drawText(v.screen, x, 0, headerStyle, title)
		x += columnWidths[col]
	}

	f := &formatter{scan: v.scan, vk: v.vk, formats: *v.formats}
	for i := 0; i < page && v.offset+i < v.log.Len(); i++ {
		v.drawRow(1+i, f.Render(v.log.At(v.offset+i)))
	}

	v.drawStatus(width, height)
	v.screen.Show()
}

func (v *Viewer) drawRow(y int, row Row) {
	marker := '-'
	if row.Down {
		marker = '+'
	}
	v.screen.SetContent(0, y, marker, nil, tcell.StyleDefault)

	x := 2
	for col, cell := range row.Cells {
		style := tcell.StyleDefault
		if row.Emphasis[col] {
			style = style.Bold(true)
		}
		drawText(v.screen, x, y, style, truncate(cell, columnWidths[col]-1))
		x += columnWidths[col]
	}
}

func (v *Viewer) drawStatus(width, height int) {
	snap := v.metrics.Snapshot()
	status := fmt.Sprintf(" %d events  (%d discarded, %d adjusted, %d filtered)  |  c clear  3-7 format  q quit",
		snap.Emitted, snap.Discarded, snap.Adjusted, snap.Filtered)

	style := tcell.StyleDefault.Reverse(true)
	drawText(v.screen, 0, height-1, style, pad(status, width))
}

func drawText(s tcell.Screen, x, y int, style tcell.Style, text string) {
	for _, r := range text {
		s.SetContent(x, y, r, nil, style)
		x++
	}
}

func truncate(s string, max int) string {
	if max >= 0 && len(s) > max {
		return s[:max]
	}
	return s
}

func pad(s string, width int) string {
	for len(s) < width {
		s += " "
	}
	return s
}
