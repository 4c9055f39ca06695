package tui

import (
	"strings"
	"testing"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/whack-a-mole/board"
	"github.com/lixenwraith/whack-a-mole/status"
)

type testClock struct{ t time.Time }

func (c *testClock) Now() time.Time { return c.t }

func newTestBoard(t *testing.T) (*Board, *testClock, *int) {
	t.Helper()
	screen := tcell.NewSimulationScreen("UTF-8")
	clock := &testClock{t: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)}
	quits := 0

	b, err := New(Options{
		Screen:  screen,
		Keys:    []rune("123"),
		Hold:    100 * time.Millisecond,
		Metrics: status.NewRegistry(),
		OnQuit:  func() { quits++ },
		Now:     clock.Now,
	})
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	screen.SetSize(60, 24)
	t.Cleanup(b.Close)
	return b, clock, &quits
}

func keyRune(r rune) *tcell.EventKey {
	return tcell.NewEventKey(tcell.KeyRune, r, tcell.ModNone)
}

func rowText(s tcell.Screen, y int) string {
	w, _ := s.Size()
	var sb strings.Builder
	for x := 0; x < w; x++ {
		r, _, _, _ := s.GetContent(x, y)
		if r == 0 {
			r = ' '
		}
		sb.WriteRune(r)
	}
	return strings.TrimRight(sb.String(), " ")
}

func TestNewRejectsWrongKeyCount(t *testing.T) {
	_, err := New(Options{Screen: tcell.NewSimulationScreen("UTF-8"), Keys: []rune("12")})
	if err == nil {
		t.Fatal("expected error for two keys")
	}
}

func TestKeyHoldsButtonLow(t *testing.T) {
	b, clock, _ := newTestBoard(t)

	for i := 0; i < 3; i++ {
		if !b.Read(i) {
			t.Fatalf("button %d should idle high", i)
		}
	}

	if !b.HandleEvent(keyRune('2')) {
		t.Fatal("bound key not handled")
	}
	if b.Read(1) {
		t.Error("button 1 should read low while held")
	}
	if !b.Read(0) || !b.Read(2) {
		t.Error("other buttons should stay high")
	}

	clock.t = clock.t.Add(99 * time.Millisecond)
	if b.Read(1) {
		t.Error("hold released early")
	}
	clock.t = clock.t.Add(time.Millisecond)
	if !b.Read(1) {
		t.Error("hold should end after the hold duration")
	}
}

func TestKeyRepeatExtendsHold(t *testing.T) {
	b, clock, _ := newTestBoard(t)

	b.HandleEvent(keyRune('1'))
	clock.t = clock.t.Add(80 * time.Millisecond)
	b.HandleEvent(keyRune('1'))
	clock.t = clock.t.Add(80 * time.Millisecond)
	if b.Read(0) {
		t.Error("repeat should have extended the hold")
	}
}

func TestUnboundKeyIgnored(t *testing.T) {
	b, _, quits := newTestBoard(t)

	if b.HandleEvent(keyRune('x')) {
		t.Error("unbound key reported as handled")
	}
	if b.HandleEvent(tcell.NewEventKey(tcell.KeyTab, 0, tcell.ModNone)) {
		t.Error("tab reported as handled")
	}
	if *quits != 0 {
		t.Error("quit fired for unbound key")
	}
}

func TestQuitKeys(t *testing.T) {
	b, _, quits := newTestBoard(t)

	b.HandleEvent(keyRune('q'))
	b.HandleEvent(tcell.NewEventKey(tcell.KeyEscape, 0, tcell.ModNone))
	b.HandleEvent(tcell.NewEventKey(tcell.KeyCtrlC, 0, tcell.ModCtrl))

	if *quits != 3 {
		t.Errorf("quits = %d, want 3", *quits)
	}
}

func TestTargetDrawn(t *testing.T) {
	b, _, _ := newTestBoard(t)

	b.Set(1, true)
	r, _, _, _ := b.screen.GetContent(targetX(1)+2, rowTargets)
	if r != '●' {
		t.Errorf("lit target rune = %q, want ●", r)
	}
	r, _, _, _ = b.screen.GetContent(targetX(0)+2, rowTargets)
	if r != '○' {
		t.Errorf("dark target rune = %q, want ○", r)
	}

	b.Set(1, false)
	r, _, _, _ = b.screen.GetContent(targetX(1)+2, rowTargets)
	if r != '○' {
		t.Errorf("cleared target rune = %q, want ○", r)
	}
}

func TestDigitSegmentsStyled(t *testing.T) {
	b, _, _ := newTestBoard(t)

	// 1 lights only segments b and c
	b.RenderDigit(board.DisplayUnits, '1')
	x := digitX(int(board.DisplayUnits))

	_, _, style, _ := b.screen.GetContent(x+3, rowDigits+1)
	if style != styleSegOn {
		t.Error("segment b should be lit for 1")
	}
	_, _, style, _ = b.screen.GetContent(x+1, rowDigits)
	if style != styleDim {
		t.Error("segment a should be dim for 1")
	}

	b.ClearAll()
	_, _, style, _ = b.screen.GetContent(x+3, rowDigits+1)
	if style != styleDim {
		t.Error("segment b should be dim after ClearAll")
	}
}

func TestTensDrawnLeftOfUnits(t *testing.T) {
	if digitX(int(board.DisplayTens)) >= digitX(int(board.DisplayUnits)) {
		t.Error("tens display should sit left of units")
	}
}

func TestInvalidDigitLeavesDisplay(t *testing.T) {
	b, _, _ := newTestBoard(t)

	b.RenderDigit(board.DisplayTens, '8')
	b.RenderDigit(board.DisplayTens, 'x')

	if b.digits[board.DisplayTens] == 0 {
		t.Error("invalid digit should not change the display")
	}
	last := b.lines[len(b.lines)-1]
	if !strings.Contains(last, "invalid digit") {
		t.Errorf("console line = %q, want invalid digit report", last)
	}
}

func TestConsoleKeepsRecentLines(t *testing.T) {
	b, _, _ := newTestBoard(t)

	for i := 0; i < 20; i++ {
		b.Println(strings.Repeat("x", i%5+1))
	}
	b.Println("Hit! +1 (total: 1)")

	if got := rowText(b.screen, rowConsole+len(b.lines)-1); !strings.Contains(got, "Hit! +1 (total: 1)") {
		t.Errorf("last console row = %q", got)
	}
	if len(b.lines) > 6 {
		t.Errorf("console holds %d lines", len(b.lines))
	}
}

func TestStatusLineFromMetrics(t *testing.T) {
	b, _, _ := newTestBoard(t)

	b.metrics.Ints.Get(status.KeyPhase).Store(2)
	b.metrics.Ints.Get(status.KeyLives).Store(3)
	b.metrics.Ints.Get(status.KeyBudgetMs).Store(2500)
	b.metrics.Ints.Get(status.KeyThreshold).Store(10)
	b.Refresh()

	got := rowText(b.screen, rowStatus)
	for _, want := range []string{"phase 2", "budget 2500ms", "next 10", "♥♥♥"} {
		if !strings.Contains(got, want) {
			t.Errorf("status row %q missing %q", got, want)
		}
	}
}

func TestResizeRedraws(t *testing.T) {
	b, _, _ := newTestBoard(t)
	b.Set(0, true)

	if !b.HandleEvent(tcell.NewEventResize(80, 30)) {
		t.Fatal("resize not handled")
	}
	r, _, _, _ := b.screen.GetContent(targetX(0)+2, rowTargets)
	if r != '●' {
		t.Error("board not redrawn after resize")
	}
}
