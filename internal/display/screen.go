package display

import (
	"context"
	"strings"
	"sync"
	"unicode/utf8"

	"github.com/gdamore/tcell/v2"
)

// Renderer is the terminal surface the poll loop draws on. The core only
// asks for geometry and hands over finished frames; cursor control and
// color mechanics stay behind this interface.
type Renderer interface {
	Size() (width, height int)
	Render(frame *Frame)
	Close()
}

// Screen renders frames on a tcell full-screen terminal.
type Screen struct {
	screen    tcell.Screen
	closeOnce sync.Once
}

var (
	styleDefault  = tcell.StyleDefault
	styleHeader   = tcell.StyleDefault.Foreground(tcell.ColorWhite).Background(tcell.ColorNavy).Bold(true)
	styleSummary  = tcell.StyleDefault.Foreground(tcell.ColorYellow).Bold(true)
	styleError    = tcell.StyleDefault.Foreground(tcell.ColorRed).Bold(true)
	styleChrome   = tcell.StyleDefault.Foreground(tcell.ColorWhite).Bold(true)
	styleNormal   = tcell.StyleDefault.Foreground(tcell.ColorGreen)
	styleWarning  = tcell.StyleDefault.Foreground(tcell.ColorYellow).Bold(true)
	styleCritical = tcell.StyleDefault.Foreground(tcell.ColorRed).Bold(true)
)

func severityStyle(severity Severity) tcell.Style {
	switch severity {
	case SeverityCritical:
		return styleCritical
	case SeverityWarning:
		return styleWarning
	default:
		return styleNormal
	}
}

// NewScreen initializes the terminal in full-screen mode with the cursor
// hidden. Callers must Close it on every exit path to restore the terminal.
func NewScreen() (*Screen, error) {
	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, err
	}
	if err := screen.Init(); err != nil {
		return nil, err
	}
	screen.HideCursor()
	screen.Clear()
	return &Screen{screen: screen}, nil
}

func (s *Screen) Size() (int, int) {
	return s.screen.Size()
}

// WatchInput consumes terminal events until the screen is closed, invoking
// cancel on Ctrl+C, q or Escape. Run it in its own goroutine; Fini unblocks
// the poll with a nil event.
func (s *Screen) WatchInput(ctx context.Context, cancel context.CancelFunc) {
	for {
		event := s.screen.PollEvent()
		if event == nil {
			return
		}
		select {
		case <-ctx.Done():
			return
		default:
		}
		switch ev := event.(type) {
		case *tcell.EventKey:
			if ev.Key() == tcell.KeyCtrlC || ev.Key() == tcell.KeyEscape ||
				(ev.Key() == tcell.KeyRune && ev.Rune() == 'q') {
				cancel()
				return
			}
		case *tcell.EventResize:
			s.screen.Sync()
		}
	}
}

func (s *Screen) Render(frame *Frame) {
	s.screen.Clear()
	width, _ := s.screen.Size()

	y := 0
	s.drawLine(y, centered(frame.Header, width), styleHeader)
	y += 2

	if frame.Error != "" {
		s.drawLine(y, frame.Error, styleError)
		s.screen.Show()
		return
	}

	s.drawLine(y, frame.Summary, styleSummary)
	y += 2

	s.drawLine(y, frame.Separator, styleChrome)
	y++
	s.drawLine(y, frame.HeaderRow, styleChrome)
	y++
	s.drawLine(y, frame.Separator, styleChrome)
	y++

	for _, row := range frame.Rows {
		s.drawRow(y, row)
		y++
	}

	s.drawLine(y, frame.Separator, styleChrome)
	y++
	if frame.Omitted > 0 {
		s.drawLine(y, omittedLine(frame.Omitted), styleDefault)
		y++
	}
	y++
	s.drawLine(y, frame.Footer, styleDefault)

	s.screen.Show()
}

// drawRow draws one channel line, coloring the depth cell by severity.
func (s *Screen) drawRow(y int, row Row) {
	x := s.drawText(0, y, "| "+row.Name+" | ", styleDefault)
	x = s.drawText(x, y, row.Depth, severityStyle(row.Severity))
	x = s.drawText(x, y, " | "+row.InFlight+" | ", styleDefault)
	x = s.drawText(x, y, row.RateSec, styleDefault)
	s.drawText(x, y, " | "+row.RateMin+" |", styleDefault)
}

// Close restores the terminal. Safe to call more than once; only the first
// call runs Fini.
func (s *Screen) Close() {
	s.closeOnce.Do(func() {
		s.screen.Fini()
	})
}

func (s *Screen) drawLine(y int, text string, style tcell.Style) {
	s.drawText(0, y, text, style)
}

func (s *Screen) drawText(x, y int, text string, style tcell.Style) int {
	for _, r := range text {
		s.screen.SetContent(x, y, r, nil, style)
		x++
	}
	return x
}

// centered pads text to width, counting runes so non-ASCII header content
// does not skew the placement.
func centered(text string, width int) string {
	length := utf8.RuneCountInString(text)
	if length >= width {
		return text
	}
	pad := (width - length) / 2
	return strings.Repeat(" ", pad) + text + strings.Repeat(" ", width-length-pad)
}

func omittedLine(omitted int) string {
	return "... and " + formatCount(int64(omitted)) + " more channels"
}
