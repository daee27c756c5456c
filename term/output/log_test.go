package output

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"ghostterm.arpa/term/interpreter"
)

// revealAll feeds reveal ticks for the line until it stops scheduling them.
func revealAll(t *testing.T, l *Log, id int) int {
	t.Helper()
	ticks := 0
	for cmd := l.Reveal(RevealMsg{LineID: id}); ; cmd = l.Reveal(RevealMsg{LineID: id}) {
		ticks++
		if cmd == nil {
			return ticks
		}
		require.Less(t, ticks, 10_000, "reveal never finished")
	}
}

func TestLog_RenderAppendsTrimmedLine(t *testing.T) {
	l := NewLog(DefaultRevealInterval)

	cmd := l.Render("  // HELLO  \n", interpreter.CategoryInfo)
	require.NotNil(t, cmd)
	require.Equal(t, 1, l.Len())

	line := l.Lines()[0]
	assert.Equal(t, "// HELLO", line.Text())
	assert.Equal(t, "", line.Visible())
	assert.Equal(t, interpreter.CategoryInfo, line.Category)
	assert.False(t, line.Done())
}

func TestLog_RevealOneCharacterPerTick(t *testing.T) {
	l := NewLog(DefaultRevealInterval)
	l.Render("ABC", interpreter.CategoryInfo)
	line := l.Lines()[0]

	require.NotNil(t, l.Reveal(RevealMsg{LineID: line.ID}))
	assert.Equal(t, "A", line.Visible())

	require.NotNil(t, l.Reveal(RevealMsg{LineID: line.ID}))
	assert.Equal(t, "AB", line.Visible())

	assert.Nil(t, l.Reveal(RevealMsg{LineID: line.ID}), "last character ends the reveal")
	assert.Equal(t, "ABC", line.Visible())
	assert.True(t, line.Done())

	assert.Nil(t, l.Reveal(RevealMsg{LineID: line.ID}), "extra ticks are ignored")
	assert.Equal(t, "ABC", line.Visible())
}

func TestLog_RevealCountsRunes(t *testing.T) {
	l := NewLog(DefaultRevealInterval)
	l.Render("ÄΩ→", interpreter.CategoryInfo)
	line := l.Lines()[0]

	assert.Equal(t, 3, revealAll(t, l, line.ID))
	assert.Equal(t, "ÄΩ→", line.Visible())
}

func TestLog_TickCommandDeliversRevealMsg(t *testing.T) {
	l := NewLog(time.Millisecond)
	cmd := l.Render("X", interpreter.CategoryInfo)
	require.NotNil(t, cmd)

	msg := cmd()
	assert.Equal(t, RevealMsg{LineID: l.Lines()[0].ID}, msg)
}

func TestLog_InterleavedRevealsStayIndependent(t *testing.T) {
	l := NewLog(DefaultRevealInterval)
	l.Render("first line", interpreter.CategoryInput)
	l.Render("second", interpreter.CategoryAnalysis)
	first, second := l.Lines()[0], l.Lines()[1]

	for i := 0; i < 3; i++ {
		l.Reveal(RevealMsg{LineID: second.ID})
		l.Reveal(RevealMsg{LineID: first.ID})
		l.Reveal(RevealMsg{LineID: second.ID})
	}

	assert.Equal(t, "fir", first.Visible())
	assert.Equal(t, "second", second.Visible())
	assert.Equal(t, 1, l.Revealing())

	revealAll(t, l, first.ID)
	assert.Equal(t, "first line", first.Visible())
	assert.Equal(t, "second", second.Visible())
	assert.Equal(t, 0, l.Revealing())
}

func TestLog_ClearOnSpecialEmpty(t *testing.T) {
	l := NewLog(DefaultRevealInterval)
	l.Render("one", interpreter.CategoryInfo)
	l.Render("two", interpreter.CategoryError)

	cmd := l.Render("", interpreter.CategorySpecial)

	assert.Nil(t, cmd)
	assert.Equal(t, 0, l.Len())
	assert.Equal(t, "", l.PlainText())
}

func TestLog_SpecialWithTextIsAppended(t *testing.T) {
	l := NewLog(DefaultRevealInterval)

	cmd := l.Render("// OVERRIDE", interpreter.CategorySpecial)

	assert.NotNil(t, cmd)
	assert.Equal(t, 1, l.Len())
}

func TestLog_StaleTicksAfterClearAreDropped(t *testing.T) {
	l := NewLog(DefaultRevealInterval)
	l.Render("old", interpreter.CategoryInfo)
	oldID := l.Lines()[0].ID

	l.Clear()
	l.Render("new", interpreter.CategoryInfo)
	fresh := l.Lines()[0]
	require.NotEqual(t, oldID, fresh.ID)

	assert.Nil(t, l.Reveal(RevealMsg{LineID: oldID}))
	assert.Equal(t, "", fresh.Visible())
}

func TestLog_Cancel(t *testing.T) {
	l := NewLog(DefaultRevealInterval)
	l.Render("interrupted", interpreter.CategoryInfo)
	line := l.Lines()[0]
	l.Reveal(RevealMsg{LineID: line.ID})

	assert.True(t, l.Cancel(line.ID))
	assert.True(t, line.Done())
	assert.Equal(t, "interrupted", line.Visible())
	assert.Nil(t, l.Reveal(RevealMsg{LineID: line.ID}))

	assert.False(t, l.Cancel(line.ID), "already finished")
	assert.False(t, l.Cancel(9999), "unknown line")
}

func TestLog_ZeroIntervalRevealsImmediately(t *testing.T) {
	l := NewLog(0)

	cmd := l.Render("instant", interpreter.CategorySuccess)

	assert.Nil(t, cmd)
	assert.Equal(t, "instant", l.Lines()[0].Visible())
}

func TestLog_EmptyLineNeedsNoTicks(t *testing.T) {
	l := NewLog(DefaultRevealInterval)

	assert.Nil(t, l.Render("   ", interpreter.CategoryInfo))
	assert.Equal(t, 1, l.Len())
}

func TestLog_SetInterval(t *testing.T) {
	l := NewLog(DefaultRevealInterval)
	l.SetInterval(25 * time.Millisecond)

	assert.Equal(t, 25*time.Millisecond, l.Interval())
}

func TestLog_PlainText(t *testing.T) {
	l := NewLog(DefaultRevealInterval)
	l.Render(">_ COMMAND RECEIVED: help", interpreter.CategoryInput)
	l.Render("// DONE", interpreter.CategoryInfo)

	assert.Equal(t, ">_ COMMAND RECEIVED: help\n// DONE", l.PlainText())
}

func TestLog_ViewMarksAlertCategories(t *testing.T) {
	l := NewLog(0)
	l.Render("all good", interpreter.CategoryInfo)
	l.Render("bad thing", interpreter.CategoryError)

	rows := strings.Split(l.View(0), "\n")
	require.Len(t, rows, 2)
	assert.NotContains(t, rows[0], strings.TrimSpace(alertMarker))
	assert.Contains(t, rows[0], "all good")
	assert.Contains(t, rows[1], strings.TrimSpace(alertMarker))
	assert.Contains(t, rows[1], "bad thing")
}

func TestLog_ViewShowsOnlyRevealedText(t *testing.T) {
	l := NewLog(DefaultRevealInterval)
	l.Render("SECRET", interpreter.CategoryReport)
	id := l.Lines()[0].ID
	l.Reveal(RevealMsg{LineID: id})
	l.Reveal(RevealMsg{LineID: id})

	view := l.View(40)
	assert.Contains(t, view, "SE")
	assert.NotContains(t, view, "SECRET")
}
