// Package output owns the terminal's output log and the typewriter reveal of
// each line.
package output

import (
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"ghostterm.arpa/term/interpreter"
)

const DefaultRevealInterval = 10 * time.Millisecond

// RevealMsg advances the reveal of a single line by one character.
type RevealMsg struct {
	LineID int
}

// Line is one rendered entry. Each line carries its own reveal counter, so
// several lines may be revealing at once without affecting each other.
type Line struct {
	ID       int
	Category interpreter.Category
	text     []rune
	revealed int
	stopped  bool
}

// Text returns the full text of the line.
func (l *Line) Text() string {
	return string(l.text)
}

// Visible returns the part of the text revealed so far.
func (l *Line) Visible() string {
	if l.stopped {
		return string(l.text)
	}
	return string(l.text[:l.revealed])
}

// Done reports whether the reveal has finished or was cancelled.
func (l *Line) Done() bool {
	return l.stopped || l.revealed >= len(l.text)
}

// Log is the append-only output log. The only removal is Clear, which drops
// every line at once.
type Log struct {
	lines    []*Line
	nextID   int
	interval time.Duration
}

// NewLog returns an empty log revealing one character per interval.
func NewLog(interval time.Duration) *Log {
	return &Log{interval: interval}
}

// SetInterval changes the tick used by reveals scheduled from now on.
func (l *Log) SetInterval(interval time.Duration) {
	l.interval = interval
}

// Interval is the current per-character reveal tick.
func (l *Log) Interval() time.Duration {
	return l.interval
}

// Render appends a line and returns the command driving its reveal. It never
// blocks. A SPECIAL response with no text clears the log instead.
func (l *Log) Render(text string, category interpreter.Category) tea.Cmd {
	if category == interpreter.CategorySpecial && text == "" {
		l.Clear()
		return nil
	}

	line := &Line{
		ID:       l.nextID,
		Category: category,
		text:     []rune(strings.TrimSpace(text)),
	}
	l.nextID++
	l.lines = append(l.lines, line)

	if l.interval <= 0 {
		line.revealed = len(line.text)
	}
	if line.Done() {
		return nil
	}
	return l.tick(line.ID)
}

// Reveal shows one more character of the addressed line and schedules the
// next tick until the line is complete. Ticks for lines that were cleared or
// cancelled are dropped.
func (l *Log) Reveal(msg RevealMsg) tea.Cmd {
	line := l.find(msg.LineID)
	if line == nil || line.Done() {
		return nil
	}
	line.revealed++
	if line.Done() {
		return nil
	}
	return l.tick(line.ID)
}

// Cancel stops the reveal of a line and shows it in full.
func (l *Log) Cancel(id int) bool {
	line := l.find(id)
	if line == nil || line.Done() {
		return false
	}
	line.stopped = true
	return true
}

// Clear truncates the log. Line ids keep increasing so pending ticks of the
// removed lines cannot address new ones.
func (l *Log) Clear() {
	l.lines = nil
}

// Len is the number of lines currently in the log.
func (l *Log) Len() int {
	return len(l.lines)
}

// Lines returns the current lines in display order.
func (l *Log) Lines() []*Line {
	out := make([]*Line, len(l.lines))
	copy(out, l.lines)
	return out
}

// Revealing counts the lines still being typed out.
func (l *Log) Revealing() int {
	var n int
	for _, line := range l.lines {
		if !line.Done() {
			n++
		}
	}
	return n
}

// PlainText returns every line in full, one per row, without styling.
func (l *Log) PlainText() string {
	rows := make([]string, 0, len(l.lines))
	for _, line := range l.lines {
		rows = append(rows, line.Text())
	}
	return strings.Join(rows, "\n")
}

func (l *Log) find(id int) *Line {
	for _, line := range l.lines {
		if line.ID == id {
			return line
		}
	}
	return nil
}

func (l *Log) tick(id int) tea.Cmd {
	return tea.Tick(l.interval, func(time.Time) tea.Msg {
		return RevealMsg{LineID: id}
	})
}
