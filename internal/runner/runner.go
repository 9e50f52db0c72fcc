package runner

import (
	"context"
	"log/slog"
	"sync"
	"sync/atomic"
	"time"

	"ceosim/internal/game"
)

// Session holds the single live GameState, replaced atomically on every
// transition. Readers get the current pointer and treat it as immutable;
// transitions go through Apply.
type Session struct {
	mu    sync.Mutex
	state *game.GameState
}

func NewSession(initial *game.GameState) *Session {
	return &Session{state: initial}
}

func (s *Session) State() *game.GameState {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

// Apply runs fn against the current state and installs the result. fn must
// not mutate its argument; the game transitions already honor that.
func (s *Session) Apply(fn func(*game.GameState) *game.GameState) *game.GameState {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state = fn(s.state)
	return s.state
}

// Runner drives turn advancement: the auto-turn ticker while delegation is
// active, and single-flight manual advances otherwise. Stopping lets an
// in-flight turn finish.
type Runner struct {
	log     *slog.Logger
	engine  *game.Engine
	session *Session

	interval    time.Duration
	manualDelay time.Duration

	inFlight atomic.Bool

	mu       sync.Mutex
	cancel   context.CancelFunc
	done     chan struct{}
	onUpdate func(*game.GameState)
}

func New(engine *game.Engine, session *Session, interval, manualDelay time.Duration, logger *slog.Logger) *Runner {
	if logger == nil {
		logger = slog.Default()
	}
	return &Runner{
		log:         logger,
		engine:      engine,
		session:     session,
		interval:    interval,
		manualDelay: manualDelay,
	}
}

// SetOnUpdate registers a callback invoked with the new state after every
// advance the runner performs. Set it before Start.
func (r *Runner) SetOnUpdate(fn func(*game.GameState)) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.onUpdate = fn
}

// Start launches the auto-turn loop. A second Start while running is a no-op.
func (r *Runner) Start() {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.cancel != nil {
		return
	}
	ctx, cancel := context.WithCancel(context.Background())
	r.cancel = cancel
	r.done = make(chan struct{})
	go r.loop(ctx, r.done)
	r.log.Info("auto-turn runner started", "every", r.interval.String())
}

// Stop halts the auto-turn loop and waits for it to exit. A turn already
// resolving completes before the loop returns.
func (r *Runner) Stop() {
	r.mu.Lock()
	cancel, done := r.cancel, r.done
	r.cancel = nil
	r.done = nil
	r.mu.Unlock()
	if cancel == nil {
		return
	}
	cancel()
	<-done
	r.log.Info("auto-turn runner stopped")
}

// Running reports whether the auto-turn loop is active.
func (r *Runner) Running() bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.cancel != nil
}

func (r *Runner) loop(ctx context.Context, done chan struct{}) {
	defer close(done)
	ticker := time.NewTicker(r.interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			st, ok := r.AdvanceOnce()
			if !ok {
				continue
			}
			if st.IsGameOver || !st.IsDelegated {
				go r.Stop()
				return
			}
		}
	}
}

// AdvanceOnce resolves one turn unless another advance is already in flight,
// in which case it reports false and leaves the state alone.
func (r *Runner) AdvanceOnce() (*game.GameState, bool) {
	if !r.inFlight.CompareAndSwap(false, true) {
		r.log.Warn("turn advance skipped, previous turn still resolving")
		return r.session.State(), false
	}
	defer r.inFlight.Store(false)

	st := r.session.Apply(r.engine.AdvanceTurn)
	r.notify(st)
	return st, true
}

// AdvanceManual is AdvanceOnce with the short player-facing delay that keeps
// manual turns from feeling instantaneous.
func (r *Runner) AdvanceManual() (*game.GameState, bool) {
	if r.manualDelay > 0 {
		time.Sleep(r.manualDelay)
	}
	return r.AdvanceOnce()
}

// SetDelegated flips delegation on the session state and starts or stops the
// auto-turn loop to match.
func (r *Runner) SetDelegated(delegated bool) *game.GameState {
	st := r.session.Apply(func(gs *game.GameState) *game.GameState {
		return r.engine.SetDelegated(gs, delegated)
	})
	r.notify(st)
	if st.IsDelegated && !st.IsGameOver {
		r.Start()
	} else if !st.IsDelegated {
		go r.Stop()
	}
	return st
}

func (r *Runner) notify(st *game.GameState) {
	r.mu.Lock()
	fn := r.onUpdate
	r.mu.Unlock()
	if fn != nil {
		fn(st)
	}
}
