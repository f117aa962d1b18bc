package game

import (
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/lixenwraith/flapdot/render"
	"github.com/lixenwraith/flapdot/vmath"
)

// State of the simulation loop.
type State int

const (
	Running State = iota
	// Ended is terminal: the loop stops rescheduling itself and taps
	// become no-ops
	Ended
)

func (s State) String() string {
	if s == Ended {
		return "ended"
	}
	return "running"
}

// Surface is the drawing side of the platform layer.
type Surface interface {
	Clear()
	// FillCircle draws a filled circle at playfield coords with the given
	// diameter in playfield units
	FillCircle(x, y float64, diameter int, color render.Color)
	SetStatus(text string)
	Present()
}

// Scheduler registers one-shot callbacks. Fire and forget: there is no
// cancellation path, ending the game simply stops registering.
type Scheduler interface {
	After(d time.Duration, fn func())
}

// Sim owns the mutable game state: one bird and an insertion-ordered slice
// of balls, oldest first. Every method must run on the platform loop's
// single goroutine; ticks and taps never overlap, so no locking is needed.
//
// The bird and balls are plain unfrozen vectors for their whole lifetime.
// They are never hashed, so vmath.ErrFrozen is unreachable here; hitting it
// would mean an aliasing bug, which is why mutation failures panic instead
// of being swallowed.
type Sim struct {
	cfg  Config
	bird *vmath.Vec2
	// balls is bounded by cfg.Capacity, oldest first
	balls []*vmath.Vec2

	state   State
	started bool
	score   int

	rng   vmath.Rand
	sched Scheduler
	surf  Surface
	log   *zap.Logger

	// OnFlap and OnCrash are optional observers, used for sound
	OnFlap  func()
	OnCrash func()
}

// NewSim wires a simulation with its collaborators. A nil logger is
// replaced with a nop logger.
func NewSim(cfg Config, rng vmath.Rand, sched Scheduler, surf Surface, log *zap.Logger) *Sim {
	if log == nil {
		log = zap.NewNop()
	}
	return &Sim{
		cfg:   cfg,
		bird:  vmath.New(0, 0),
		balls: make([]*vmath.Vec2, 0, cfg.Capacity+1),
		rng:   rng,
		sched: sched,
		surf:  surf,
		log:   log,
	}
}

// Start arms the first tick. In immediate mode the tick is scheduled right
// away; otherwise the first tap starts the loop.
func (s *Sim) Start() {
	if s.cfg.Immediate && !s.started {
		s.started = true
		s.log.Info("simulation started", zap.String("mode", "immediate"))
		s.sched.After(s.cfg.Tick(), s.Advance)
	}
}

// Tap handles a pointer event. The coordinates only trigger; the applied
// displacement is the fixed upward lift. The first tap in tap-start mode
// arms the loop instead of lifting. Taps after the game has ended are
// ignored, not errors.
func (s *Sim) Tap(x, y float64) {
	if s.state == Ended {
		return
	}
	if !s.started {
		s.started = true
		s.log.Info("simulation started",
			zap.String("mode", "tap"),
			zap.Float64("x", x),
			zap.Float64("y", y),
		)
		s.sched.After(0, s.Advance)
		return
	}
	s.must(s.bird.Move(vmath.New(0, s.cfg.LiftStep)))
	if s.OnFlap != nil {
		s.OnFlap()
	}
}

// Advance runs one tick: gravity, drift, spawn, collision, eviction,
// render, reschedule. No-op once ended, so a timer firing after the crash
// tick is harmless.
func (s *Sim) Advance() {
	if s.state == Ended {
		return
	}

	s.must(s.bird.Move(vmath.New(0, -s.cfg.GravityStep)))

	drift := vmath.New(-s.cfg.DriftStep, 0)
	for _, ball := range s.balls {
		s.must(ball.Move(drift))
	}

	if s.rng.IntRange(0, s.cfg.SpawnDenom) == 0 {
		s.spawn()
	}

	// Every ball must pass the distance test, even after the first failure
	alive := s.inside(s.bird)
	for _, ball := range s.balls {
		dodge := vmath.Dist(ball, s.bird) > s.cfg.CollisionRadius
		alive = alive && dodge
	}

	if len(s.balls) > s.cfg.Capacity {
		s.evictOldest()
	}

	s.draw(alive)

	if alive {
		s.score++
		s.sched.After(s.cfg.Tick(), s.Advance)
		return
	}

	s.state = Ended
	s.log.Info("game over",
		zap.Int("score", s.score),
		zap.Int("balls", len(s.balls)),
		zap.Float64("bird_x", s.bird.X()),
		zap.Float64("bird_y", s.bird.Y()),
	)
	if s.OnCrash != nil {
		s.OnCrash()
	}
}

func (s *Sim) spawn() {
	span := int(s.cfg.HalfExtent)
	y := s.rng.IntRange(-span+1, span-1)
	ball := vmath.New(s.cfg.SpawnX, float64(y))
	s.balls = append(s.balls, ball)
	s.log.Debug("ball spawned",
		zap.Float64("y", ball.Y()),
		zap.Int("count", len(s.balls)),
	)
}

// evictOldest drops the front ball. The copy keeps the backing array from
// pinning evicted vectors.
func (s *Sim) evictOldest() {
	n := copy(s.balls, s.balls[1:])
	s.balls[n] = nil
	s.balls = s.balls[:n]
}

// inside reports whether p lies strictly within the playfield box.
// Positions on the boundary are out.
func (s *Sim) inside(p *vmath.Vec2) bool {
	e := s.cfg.HalfExtent
	return -e < p.X() && p.X() < e && -e < p.Y() && p.Y() < e
}

func (s *Sim) draw(alive bool) {
	s.surf.Clear()
	for _, ball := range s.balls {
		s.surf.FillCircle(ball.X(), ball.Y(), s.cfg.BallDiameter, render.Black)
	}
	birdColor := render.Green
	if !alive {
		birdColor = render.Red
	}
	s.surf.FillCircle(s.bird.X(), s.bird.Y(), s.cfg.BirdDiameter, birdColor)
	status := fmt.Sprintf(" score %d", s.score)
	if !alive {
		status += "  game over"
	}
	s.surf.SetStatus(status)
	s.surf.Present()
}

// must surfaces an impossible mutation failure. Sim vectors are never
// hashed, so a frozen error here is an aliasing bug and fatal to the
// session per the loop's failure contract.
func (s *Sim) must(err error) {
	if err != nil {
		s.log.Error("sim vector mutation failed", zap.Error(err))
		panic(fmt.Errorf("game: sim vector mutation failed: %w", err))
	}
}

// State returns the loop state.
func (s *Sim) State() State { return s.state }

// Score returns the number of ticks survived.
func (s *Sim) Score() int { return s.score }

// Bird returns the bird position. Callers must not retain it across ticks.
func (s *Sim) Bird() *vmath.Vec2 { return s.bird }

// Balls returns the ball positions, oldest first.
func (s *Sim) Balls() []*vmath.Vec2 { return s.balls }
