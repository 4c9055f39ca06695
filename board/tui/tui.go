// Package tui is a terminal rendition of the game board on tcell.
// LEDs and seven-segment digits are drawn on screen; keyboard keys stand in for buttons.
package tui

import (
	"fmt"
	"sync"
	"time"

	"github.com/gdamore/tcell/v2"
	"go.uber.org/zap"

	"github.com/lixenwraith/whack-a-mole/board"
	"github.com/lixenwraith/whack-a-mole/constants"
	"github.com/lixenwraith/whack-a-mole/segment"
	"github.com/lixenwraith/whack-a-mole/status"
)

// Options configures a Board
type Options struct {
	// Screen defaults to tcell.NewScreen()
	Screen tcell.Screen

	// Keys maps runes to buttons in order; must hold TargetCount runes
	Keys []rune

	// Hold is how long a key press keeps its button line low
	Hold time.Duration

	Metrics *status.Registry
	Logger  *zap.Logger

	// OnQuit runs on Esc, Ctrl-C or q, from the event goroutine
	OnQuit func()

	// Now defaults to time.Now
	Now func() time.Time
}

// Board implements board.Board on a terminal screen
// Game calls and the event goroutine share state under mu
type Board struct {
	mu     sync.Mutex
	screen tcell.Screen

	keys      [constants.TargetCount]rune
	hold      time.Duration
	heldUntil [constants.TargetCount]time.Time

	leds   [constants.TargetCount]bool
	digits [constants.DisplayCount]segment.Pattern
	lines  []string

	metrics *status.Registry
	log     *zap.Logger
	onQuit  func()
	now     func() time.Time

	closeOnce sync.Once
	done      chan struct{}
}

var _ board.Board = (*Board)(nil)

// New initializes the screen and returns a Board
func New(opts Options) (*Board, error) {
	if len(opts.Keys) != constants.TargetCount {
		return nil, fmt.Errorf("need %d keys, got %d", constants.TargetCount, len(opts.Keys))
	}
	if opts.Hold <= 0 {
		opts.Hold = constants.KeyHoldDuration
	}
	if opts.Metrics == nil {
		opts.Metrics = status.NewRegistry()
	}
	if opts.Logger == nil {
		opts.Logger = zap.NewNop()
	}
	if opts.OnQuit == nil {
		opts.OnQuit = func() {}
	}
	if opts.Now == nil {
		opts.Now = time.Now
	}

	screen := opts.Screen
	if screen == nil {
		var err error
		if screen, err = tcell.NewScreen(); err != nil {
			return nil, fmt.Errorf("create screen: %w", err)
		}
	}
	if err := screen.Init(); err != nil {
		return nil, fmt.Errorf("init screen: %w", err)
	}
	screen.HideCursor()
	screen.SetStyle(styleDefault)

	b := &Board{
		screen:  screen,
		hold:    opts.Hold,
		metrics: opts.Metrics,
		log:     opts.Logger,
		onQuit:  opts.OnQuit,
		now:     opts.Now,
		done:    make(chan struct{}),
	}
	copy(b.keys[:], opts.Keys)

	b.mu.Lock()
	b.draw()
	b.mu.Unlock()
	return b, nil
}

// Start launches the event pump goroutine
// crash runs if the pump panics, after which the process is expected to exit
func (b *Board) Start(crash func(r any)) {
	go func() {
		defer func() {
			if r := recover(); r != nil && crash != nil {
				crash(r)
			}
		}()

		for {
			ev := b.screen.PollEvent()
			if ev == nil {
				// Screen finalized
				return
			}
			b.HandleEvent(ev)
		}
	}()
}

// Close restores the terminal; safe to call more than once
func (b *Board) Close() {
	b.closeOnce.Do(func() {
		close(b.done)
		b.screen.Fini()
	})
}

// Done is closed by Close
func (b *Board) Done() <-chan struct{} {
	return b.done
}

// HandleEvent applies one terminal event
// Returns false for events the board ignores
func (b *Board) HandleEvent(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		if ev.Key() == tcell.KeyEscape || ev.Key() == tcell.KeyCtrlC ||
			(ev.Key() == tcell.KeyRune && ev.Rune() == 'q') {
			b.log.Debug("quit requested")
			b.onQuit()
			return true
		}
		if ev.Key() != tcell.KeyRune {
			return false
		}
		return b.press(ev.Rune())

	case *tcell.EventResize:
		b.mu.Lock()
		defer b.mu.Unlock()
		b.screen.Sync()
		b.draw()
		return true
	}
	return false
}

// press holds the button bound to r low for the hold duration
// Terminals deliver key repeats while a key is held, which extends the hold
func (b *Board) press(r rune) bool {
	b.mu.Lock()
	defer b.mu.Unlock()

	for i, k := range b.keys {
		if k == r {
			b.heldUntil[i] = b.now().Add(b.hold)
			b.draw()
			return true
		}
	}
	return false
}

// Read implements board.Buttons: low while a key hold is active
func (b *Board) Read(button int) bool {
	b.mu.Lock()
	defer b.mu.Unlock()
	return !b.now().Before(b.heldUntil[button])
}

// Set implements board.Targets
func (b *Board) Set(target int, on bool) {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.leds[target] == on {
		return
	}
	b.leds[target] = on
	b.draw()
}

// RenderDigit implements board.Display
func (b *Board) RenderDigit(id board.DisplayID, digit rune) {
	p, err := segment.Decode(digit)

	b.mu.Lock()
	defer b.mu.Unlock()

	if err != nil {
		b.log.Warn("digit ignored", zap.Stringer("display", id), zap.Error(err))
		b.appendLine(fmt.Sprintf("display %s: %v", id, err))
		b.draw()
		return
	}
	if id < 0 || int(id) >= constants.DisplayCount {
		b.log.Warn("unknown display", zap.Int("display", int(id)))
		return
	}
	b.digits[id] = p
	b.draw()
}

// ClearAll implements board.Display
func (b *Board) ClearAll() {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.digits = [constants.DisplayCount]segment.Pattern{}
	b.draw()
}

// Println implements board.Console
func (b *Board) Println(line string) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.appendLine(line)
	b.draw()
}

// Refresh redraws from current state, used after metrics change outside a board call
func (b *Board) Refresh() {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.draw()
}

func (b *Board) appendLine(line string) {
	b.lines = append(b.lines, line)
	if over := len(b.lines) - constants.ConsoleLines; over > 0 {
		b.lines = append(b.lines[:0], b.lines[over:]...)
	}
}

