package game

import (
	"context"
	"io"
	"sync"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-skyfall/internal/config"
	"github.com/vovakirdan/tui-skyfall/internal/core"
)

// nominalTick is the reference tick the simulation constants are tuned for.
// Real elapsed time is normalized against it so motion rate is independent
// of frame cadence.
const nominalTick = 16 * time.Millisecond

// Engine owns the authoritative session and runs the two real-time drivers:
// a throttled tick driver for the physics/spawn/collision pipeline and a
// one-second driver for the countdown. Timed effect expiries fire as
// deferred callbacks guarded by a session epoch, so an expiry armed in a
// previous life can never corrupt a restarted session.
type Engine struct {
	mu      sync.Mutex
	cfg     config.Config
	session Session
	factory *Factory
	epoch   uint64
	pending map[*time.Timer]struct{}

	logger   *log.Logger
	tickRate int
	cancel   context.CancelFunc
	wg       sync.WaitGroup
}

// NewEngine creates an engine with a fresh default session.
// A zero seed is replaced with the current time; a nil logger discards.
func NewEngine(cfg config.Config, rt core.RuntimeConfig, logger *log.Logger) *Engine {
	seed := rt.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	tickRate := rt.TickRate
	if tickRate <= 0 {
		tickRate = 60
	}
	if logger == nil {
		logger = log.New(io.Discard)
	}

	e := &Engine{
		cfg:      cfg,
		pending:  make(map[*time.Timer]struct{}),
		logger:   logger,
		tickRate: tickRate,
	}
	e.factory = NewFactory(&e.cfg, seed)
	e.session = NewSession(&e.cfg)
	return e
}

// Config returns a copy of the engine's tuning parameters.
func (e *Engine) Config() config.Config {
	return e.cfg
}

// Start launches the tick and countdown drivers. They run until the context
// is canceled or Stop is called.
func (e *Engine) Start(ctx context.Context) {
	ctx, e.cancel = context.WithCancel(ctx)

	e.wg.Add(2)
	go e.tickLoop(ctx)
	go e.countdownLoop(ctx)

	e.logger.Info("session started", "tick_rate", e.tickRate, "time", e.cfg.Timer.Start)
}

// Stop cancels both drivers, waits for them to exit, and renders any
// in-flight effect expiry inert.
func (e *Engine) Stop() {
	if e.cancel != nil {
		e.cancel()
	}
	e.wg.Wait()

	e.mu.Lock()
	e.epoch++
	for t := range e.pending {
		t.Stop()
		delete(e.pending, t)
	}
	e.mu.Unlock()

	e.logger.Info("session stopped")
}

// tickLoop drives the simulation pipeline. The ticker fires at the
// configured rate but a tick is only evaluated once at least the nominal
// interval of real time has elapsed; elapsed time scales motion rather
// than being discretized.
func (e *Engine) tickLoop(ctx context.Context) {
	defer e.wg.Done()

	interval := time.Second / time.Duration(e.tickRate)
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	last := time.Now()
	for {
		select {
		case <-ctx.Done():
			return
		case now := <-ticker.C:
			elapsed := now.Sub(last)
			if elapsed < nominalTick {
				continue
			}
			last = now
			e.step(float64(elapsed) / float64(nominalTick))
		}
	}
}

// countdownLoop decrements the timer once per real-time second.
func (e *Engine) countdownLoop(ctx context.Context) {
	defer e.wg.Done()

	ticker := time.NewTicker(time.Second)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			e.mu.Lock()
			e.session.TickSecond()
			e.mu.Unlock()
		}
	}
}

// step evaluates one tick and schedules expiries for any armed effects.
func (e *Engine) step(timeScale float64) {
	e.mu.Lock()
	wasOver := e.session.Over
	armed := e.session.Advance(timeScale, &e.cfg, e.factory)
	for _, eff := range armed {
		e.armLocked(eff)
	}
	over := e.session.Over
	score := e.session.Score
	e.mu.Unlock()

	if over && !wasOver {
		e.logger.Info("game over", "score", score)
	}
}

// armLocked schedules the real-time expiry for an effect. Re-collecting the
// same boost arms an independent expiry that does not extend the first: the
// earliest one to fire clears the flag. Callers must hold e.mu.
func (e *Engine) armLocked(eff Effect) {
	var d time.Duration
	switch eff {
	case EffectDoublePoints:
		d = time.Duration(e.cfg.Effects.DoublePointsMS) * time.Millisecond
	case EffectShield:
		d = time.Duration(e.cfg.Effects.ShieldMS) * time.Millisecond
	}

	epoch := e.epoch
	var t *time.Timer
	t = time.AfterFunc(d, func() {
		e.expire(eff, epoch, t)
	})
	e.pending[t] = struct{}{}

	e.logger.Debug("effect armed", "effect", eff, "duration", d)
}

// expire clears an effect flag on the current session. Expiries from a
// superseded session (restart or teardown bumped the epoch) are no-ops.
func (e *Engine) expire(eff Effect, epoch uint64, t *time.Timer) {
	e.mu.Lock()
	defer e.mu.Unlock()

	delete(e.pending, t)
	if epoch != e.epoch {
		e.logger.Debug("stale effect expiry ignored", "effect", eff)
		return
	}

	switch eff {
	case EffectDoublePoints:
		e.session.Player.DoublePoints = false
	case EffectShield:
		e.session.Player.Invincible = false
	}
	e.logger.Debug("effect expired", "effect", eff)
}

// Apply dispatches a semantic input action to the session. Restart is only
// honored after game over; quit is the caller's concern.
func (e *Engine) Apply(a core.Action) {
	switch a {
	case core.ActionJump:
		e.Jump()
	case core.ActionPause:
		e.TogglePause()
	case core.ActionRestart:
		if e.Snapshot().Over {
			e.Restart()
		}
	}
}

// Jump applies the jump impulse to the current session.
func (e *Engine) Jump() {
	e.mu.Lock()
	e.session.Jump(&e.cfg)
	e.mu.Unlock()
}

// TogglePause flips the paused state.
func (e *Engine) TogglePause() {
	e.mu.Lock()
	e.session.TogglePause()
	paused := e.session.Paused
	e.mu.Unlock()

	e.logger.Debug("pause toggled", "paused", paused)
}

// Restart replaces the session with a fresh default one and invalidates
// every pending effect expiry.
func (e *Engine) Restart() {
	e.mu.Lock()
	e.epoch++
	for t := range e.pending {
		t.Stop()
		delete(e.pending, t)
	}
	e.session = NewSession(&e.cfg)
	e.mu.Unlock()

	e.logger.Info("session restarted")
}

// Snapshot returns a deep copy of the current session for read-only use.
func (e *Engine) Snapshot() Session {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.session.Clone()
}
