package engine

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/lixenwraith/whack-a-mole/board"
	"github.com/lixenwraith/whack-a-mole/constants"
	"github.com/lixenwraith/whack-a-mole/engine/fsm"
	"github.com/lixenwraith/whack-a-mole/status"
)

// Loop states
const (
	StateCountdown fsm.StateID = iota + 1
	StateActive
	StatePhaseTransitioning
	StateGameOver
)

// Loop events
const (
	EventCountdownDone fsm.EventType = iota + 1
	EventPhaseAdvance
	EventPhaseReady
	EventGameOver
)

// Options wires a Game to its collaborators
// Only Board is required
type Options struct {
	Board   board.Board
	Clock   TimeProvider
	Random  RandomSource
	Logger  *zap.Logger
	Metrics *status.Registry
	Tick    time.Duration
	Session string
}

// Game is the cooperative single-threaded driver of one session
type Game struct {
	state    GameState
	debounce DebounceTable

	board   board.Board
	leds    *ledBank
	clock   TimeProvider
	rng     RandomSource
	log     *zap.Logger
	metrics *status.Registry
	tick    time.Duration
	session string

	machine *fsm.Machine[*Game]
}

// NewGame creates a session in the Countdown state
func NewGame(opts Options) *Game {
	if opts.Board == nil {
		panic("engine: Options.Board is required")
	}
	if opts.Clock == nil {
		opts.Clock = NewMonotonicTimeProvider()
	}
	if opts.Random == nil {
		opts.Random = NewRandomSource(0)
	}
	if opts.Logger == nil {
		opts.Logger = zap.NewNop()
	}
	if opts.Metrics == nil {
		opts.Metrics = status.NewRegistry()
	}
	if opts.Tick <= 0 {
		opts.Tick = constants.TickInterval
	}

	g := &Game{
		state:   NewGameState(),
		board:   opts.Board,
		leds:    &ledBank{out: opts.Board},
		clock:   opts.Clock,
		rng:     opts.Random,
		log:     opts.Logger.With(zap.String("session", opts.Session)),
		metrics: opts.Metrics,
		tick:    opts.Tick,
		session: opts.Session,
	}
	g.machine = newLoopMachine()
	return g
}

func newLoopMachine() *fsm.Machine[*Game] {
	m := fsm.NewMachine[*Game]()
	m.AddState(StateCountdown, "countdown")
	m.AddState(StateActive, "active")
	m.AddState(StatePhaseTransitioning, "phase_transition")
	m.AddState(StateGameOver, "game_over").Terminal = true
	m.InitialStateID = StateCountdown

	links := []struct {
		from  fsm.StateID
		event fsm.EventType
		to    fsm.StateID
		guard fsm.GuardFunc[*Game]
	}{
		{StateCountdown, EventCountdownDone, StateActive, isRunning},
		{StateActive, EventPhaseAdvance, StatePhaseTransitioning, isRunning},
		{StateActive, EventGameOver, StateGameOver, nil},
		{StatePhaseTransitioning, EventPhaseReady, StateActive, isRunning},
	}
	for _, l := range links {
		if err := m.AddTransition(l.from, l.event, l.to, l.guard); err != nil {
			panic(fmt.Sprintf("engine: loop machine: %v", err))
		}
	}

	for _, id := range []fsm.StateID{StateCountdown, StateActive, StatePhaseTransitioning, StateGameOver} {
		m.OnEnter(id, (*Game).enterState)
	}
	// Game over mutates state on entry; the blink sequence runs from the loop
	m.OnEnter(StateGameOver, func(g *Game) {
		EndGame(&g.state)
		g.publish()
	})
	return m
}

func isRunning(g *Game) bool {
	return g.state.Running
}

func (g *Game) enterState() {
	name := g.machine.CurrentName()
	g.metrics.Strings.Get(status.KeyState).Store(name)
	g.log.Debug("loop state", zap.String("state", name))
}

// State returns a copy of the current game state
func (g *Game) State() GameState {
	return g.state
}

// LoopState returns the loop machine state
func (g *Game) LoopState() fsm.StateID {
	return g.machine.Current()
}

// Run plays one session to completion
// Returns nil after game over, ctx.Err() when cancelled at a tick checkpoint
// Animations and countdowns are never interrupted
func (g *Game) Run(ctx context.Context) error {
	if err := g.machine.Init(g); err != nil {
		return fmt.Errorf("init loop machine: %w", err)
	}
	g.metrics.Strings.Get(status.KeySession).Store(g.session)
	g.publish()

	for {
		if err := ctx.Err(); err != nil && g.machine.Current() != StateGameOver {
			g.abort()
			return err
		}

		switch g.machine.Current() {
		case StateCountdown:
			g.runStartCountdown()
			g.machine.HandleEvent(g, EventCountdownDone)

		case StateActive:
			g.step()
			if g.machine.Current() == StateActive && g.state.Running {
				g.clock.Sleep(g.tick)
				g.machine.Update(g.tick)
			}

		case StatePhaseTransitioning:
			g.runPhaseTransition()
			g.machine.HandleEvent(g, EventPhaseReady)

		case StateGameOver:
			g.runGameOver()
			return nil

		default:
			return fmt.Errorf("loop machine in unknown state %d", g.machine.Current())
		}
	}
}

// step runs one Active tick: timeout check first, then sampling and evaluation
// A tick where the timeout fires ends there; a press seen in the same tick is not evaluated
func (g *Game) step() {
	now := g.clock.Now()

	if TimedOut(g.state, now) {
		missed := g.state.ActiveTarget
		tr := ApplyTimeout(&g.state)
		g.publish()
		g.board.Println(fmt.Sprintf("Time's up! Lives left: %d", g.state.Lives))
		g.log.Info("target timed out",
			zap.Int("target", missed),
			zap.Int("lives", g.state.Lives),
			zap.Int64("budget_ms", g.state.ReactionBudget.Milliseconds()))
		g.apply(tr)
		return
	}

	button, pressed := Poll(g.board, &g.debounce, now)
	target := g.state.ActiveTarget
	outcome, tr := Evaluate(&g.state, button, pressed)

	switch outcome {
	case OutcomeHit:
		g.publish()
		ShowScore(g.board, g.state.Score)
		g.board.Println(fmt.Sprintf("Hit! +%d (total: %d)", constants.HitPoints, g.state.Score))
		g.log.Info("target hit",
			zap.Int("target", target),
			zap.Int("score", g.state.Score),
			zap.Duration("reaction", now.Sub(g.state.TargetActivatedAt)))
	case OutcomeMiss:
		g.publish()
		g.board.Println(fmt.Sprintf("Wrong button! Lives: %d", g.state.Lives))
		g.log.Info("wrong button",
			zap.Int("target", target),
			zap.Int("button", button),
			zap.Int("lives", g.state.Lives))
	}

	g.apply(tr)
}

// apply executes an evaluator transition
func (g *Game) apply(tr Transition) {
	switch tr {
	case TransitionNewRound:
		g.activate()
	case TransitionPhaseAdvance:
		g.log.Debug("phase cleared", zap.Duration("active_for", g.machine.TimeInState()))
		g.machine.HandleEvent(g, EventPhaseAdvance)
	case TransitionGameOver:
		g.machine.HandleEvent(g, EventGameOver)
	}
}

func (g *Game) activate() {
	target := ActivateNewTarget(&g.state, g.leds, g.rng, g.clock.Now())
	g.log.Debug("target lit", zap.Int("target", target))
}

// runStartCountdown is the Countdown state body: banner, 3-2-1, score, first target
func (g *Game) runStartCountdown() {
	g.board.ClearAll()
	g.leds.setAll(false)

	g.board.Println("WHACK THE MOLE!")
	g.board.Println("Press the button under the lit target before it goes dark.")
	g.board.Println(fmt.Sprintf("Wrong button or too slow costs a life; %d lives per phase.", constants.StartingLives))
	if g.session != "" {
		g.board.Println("Session " + g.session)
	}
	g.announcePhase()

	g.board.Println("Get ready...")
	g.countdown()

	ShowScore(g.board, g.state.Score)
	g.clock.Sleep(constants.ReadyPause)

	g.activate()
	g.log.Info("game started",
		zap.Int("phase", g.state.Phase),
		zap.Int64("budget_ms", g.state.ReactionBudget.Milliseconds()))
}

// runPhaseTransition is the PhaseTransitioning state body
func (g *Game) runPhaseTransition() {
	g.state.ActiveTarget = NoTarget

	for i := 0; i < constants.PhaseFlashCycles; i++ {
		g.leds.setAll(true)
		g.board.ClearAll()
		g.clock.Sleep(constants.PhaseFlashPause)
		g.leds.setAll(false)
		ShowScore(g.board, g.state.Score)
		g.clock.Sleep(constants.PhaseFlashPause)
	}

	AdvancePhase(&g.state)
	g.publish()
	g.log.Info("phase advanced",
		zap.Int("phase", g.state.Phase),
		zap.Int("score", g.state.Score),
		zap.Int64("budget_ms", g.state.ReactionBudget.Milliseconds()),
		zap.Int("threshold", g.state.NextPhaseThreshold))
	g.announcePhase()

	g.board.Println("Next phase starting in...")
	g.countdown()

	g.leds.setAll(false)
	g.board.ClearAll()
	ShowScore(g.board, g.state.Score)
	g.clock.Sleep(constants.ReadyPause)

	g.activate()
}

// runGameOver plays the end sequence; state was already stopped on entry
func (g *Game) runGameOver() {
	g.leds.setAll(false)

	g.board.Println("--- GAME OVER ---")
	g.board.Println(fmt.Sprintf("Final score: %d", g.state.Score))
	g.log.Info("game over",
		zap.Int("score", g.state.Score),
		zap.Int("phase", g.state.Phase))

	ShowScore(g.board, g.state.Score)
	g.clock.Sleep(constants.GameOverHold)

	for i := 0; i < constants.GameOverBlinkCycles; i++ {
		g.leds.toggleAll()
		g.board.ClearAll()
		g.clock.Sleep(constants.GameOverBlinkPause)
		ShowScore(g.board, g.state.Score)
		g.clock.Sleep(constants.GameOverBlinkPause)
	}

	g.leds.setAll(false)
	g.board.ClearAll()
}

// abort ends the session from outside without the game over sequence
func (g *Game) abort() {
	EndGame(&g.state)
	g.publish()
	g.leds.setAll(false)
	g.board.ClearAll()
	g.log.Info("game aborted", zap.Int("score", g.state.Score))
}

func (g *Game) announcePhase() {
	g.board.Println(fmt.Sprintf("--- PHASE %d ---", g.state.Phase))
	g.board.Println(fmt.Sprintf("Reaction time: %d ms", g.state.ReactionBudget.Milliseconds()))
	g.board.Println(fmt.Sprintf("Next phase at %d points", g.state.NextPhaseThreshold))
}

// countdown shows 3-2-1 on both displays, one digit per step
func (g *Game) countdown() {
	for i := constants.CountdownFrom; i > 0; i-- {
		g.board.Println(fmt.Sprintf("%d...", i))
		ShowOnBoth(g.board, i)
		g.clock.Sleep(constants.CountdownStep)
	}
}

// publish copies the state into the metrics registry
func (g *Game) publish() {
	ints := g.metrics.Ints
	ints.Get(status.KeyScore).Store(int64(g.state.Score))
	ints.Get(status.KeyLives).Store(int64(g.state.Lives))
	ints.Get(status.KeyPhase).Store(int64(g.state.Phase))
	ints.Get(status.KeyBudgetMs).Store(g.state.ReactionBudget.Milliseconds())
	ints.Get(status.KeyThreshold).Store(int64(g.state.NextPhaseThreshold))
	g.metrics.Bools.Get(status.KeyRunning).Store(g.state.Running)
}
