package game

import (
	"math/rand"
	"time"

	"github.com/charmbracelet/log"

	"github.com/jecht83/Flappy-Swift/internal/clock"
	"github.com/jecht83/Flappy-Swift/internal/config"
	"github.com/jecht83/Flappy-Swift/internal/core"
	"github.com/jecht83/Flappy-Swift/internal/logging"
	"github.com/jecht83/Flappy-Swift/internal/physics"
)

// State is the phase of a session.
type State int

const (
	StateStarting State = iota
	StatePlaying
	StateEnded
)

// String returns the state name.
func (s State) String() string {
	switch s {
	case StateStarting:
		return "starting"
	case StatePlaying:
		return "playing"
	case StateEnded:
		return "ended"
	default:
		return "unknown"
	}
}

// Option configures a Session.
type Option func(*Session)

// WithLogger sets the session logger. The default discards everything.
func WithLogger(l *log.Logger) Option {
	return func(s *Session) {
		if l != nil {
			s.log = l
		}
	}
}

// WithSeed sets the session seed. The first run lays out obstacles from
// this seed; later runs use seeds derived from it.
func WithSeed(seed int64) Option {
	return func(s *Session) {
		s.seed = seed
	}
}

// Session is one play session: the Starting -> Playing -> Ended -> Starting
// state machine and everything it owns.
type Session struct {
	cfg   config.FlappyConfig
	log   *log.Logger
	seed  int64
	rules RuleTable

	arena    *Arena
	phys     *physics.World
	world    *ScrollingWorld
	player   *Player
	score    ScoreTracker
	resolver *Resolver
	gen      *Generator
	seeder   *rand.Rand

	sched *clock.Scheduler
	frame clock.FrameTimer
	now   time.Duration

	state  State
	prompt bool

	spawnTask   *clock.Task
	restartTask *clock.Task

	run     int
	runSeed int64
}

// NewSession builds a session in the Starting state.
func NewSession(cfg config.FlappyConfig, opts ...Option) *Session {
	s := &Session{
		cfg:   cfg,
		log:   logging.Discard(),
		rules: DefaultRules(cfg),
		arena: NewArena(),
		phys:  physics.NewWorld(core.Vec2{Y: cfg.Physics.Gravity}),
		sched: clock.NewScheduler(),
	}
	for _, opt := range opts {
		opt(s)
	}

	s.phys.SetBounds(core.NewBox(0, cfg.World.FloorOffset, cfg.World.Width, cfg.PlayableBand()))
	s.world = NewScrollingWorld(cfg, s.arena, s.phys, s.rules)
	s.resolver = NewResolver(s.rules)
	s.seeder = rand.New(rand.NewSource(s.seed))
	s.runSeed = s.seed
	s.gen = NewGenerator(s.runSeed, cfg)
	s.run = 1
	s.build()
	return s
}

// build creates a fresh player and background and shows the prompt.
func (s *Session) build() {
	s.world.BuildTiles()
	s.player = newPlayer(s.cfg, s.arena, s.phys, s.rules, s.sched, s.now)
	s.prompt = true
	s.state = StateStarting
}

// Tick advances the session to now. Timestamps must not decrease; a stale
// timestamp simulates a zero-length frame.
func (s *Session) Tick(now time.Duration) {
	if now > s.now {
		s.now = now
	}
	s.sched.Run(s.now)
	dt := s.frame.Delta(now).Seconds()

	if s.state != StateEnded {
		s.world.Advance(dt)
		s.player.Integrate()
	} else {
		s.player.rotation = FallenRotation
	}

	s.phys.Step(dt)
	s.Resolve(s.phys.Drain())
	s.syncPlayer()
}

func (s *Session) syncPlayer() {
	if e := s.arena.Get(s.player.ID()); e != nil {
		e.Box = s.player.Box()
		e.Texture = s.player.Texture()
	}
}

// PrimaryInput handles a tap: it starts the run from Starting and flaps
// while Playing. Ended ignores it.
func (s *Session) PrimaryInput() {
	switch s.state {
	case StateStarting:
		s.state = StatePlaying
		s.prompt = false
		s.player.EnableGravity()
		s.player.Flap()
		s.spawnTask = s.sched.Every(s.now, s.cfg.Timing.SpawnInterval, s.spawn)
		s.log.Debug("state", "to", s.state, "run", s.run, "at", s.now)
	case StatePlaying:
		s.player.Flap()
	}
}

func (s *Session) spawn() {
	t := s.gen.Next(s.world.Origin())
	s.world.AddObstacle(t)
	s.log.Debug("spawn", "lower", t.Lower.H, "upper", t.Upper.H, "obstacles", len(s.world.obstacles))
}

// Resolve applies contacts reported by the physics collaborator.
func (s *Session) Resolve(contacts []physics.Contact) {
	if len(contacts) == 0 {
		return
	}
	out := s.resolver.Resolve(contacts, s.player.Position().Y)
	for i := 0; i < out.Points; i++ {
		s.score.Increment()
	}
	if out.Points > 0 {
		s.log.Debug("score", "score", s.score.Value())
	}
	if out.GameOver {
		s.gameOver()
	}
}

// gameOver ends the run. It is a no-op while already Ended, so at most one
// restart task is ever pending.
func (s *Session) gameOver() {
	if s.state == StateEnded {
		return
	}
	s.state = StateEnded
	s.player.Fall()
	s.spawnTask.Cancel()
	s.spawnTask = nil
	s.restartTask = s.sched.After(s.now, s.cfg.Timing.RestartDelay, s.Restart)
	s.log.Debug("state", "to", s.state, "run", s.run, "score", s.score.Value(), "at", s.now)
}

// Restart discards the current run and rebuilds the session in Starting.
// A pending delayed restart is cancelled.
func (s *Session) Restart() {
	s.restartTask.Cancel()
	s.restartTask = nil
	s.spawnTask.Cancel()
	s.spawnTask = nil

	s.player.remove(s.arena, s.phys)
	s.world.Clear()
	s.score.Reset()
	s.frame.Reset()

	s.run++
	s.runSeed = s.seeder.Int63()
	s.gen.Reseed(s.runSeed)

	s.build()
	s.log.Debug("restart", "run", s.run, "seed", s.runSeed, "at", s.now)
}

// State returns the current phase.
func (s *Session) State() State { return s.state }

// Score returns the current score.
func (s *Session) Score() int { return s.score.Value() }

// Player returns the current player. It is replaced on every restart.
func (s *Session) Player() *Player { return s.player }

// PromptVisible reports whether the "tap to start" prompt shows.
func (s *Session) PromptVisible() bool { return s.prompt }

// Now returns the latest tick timestamp.
func (s *Session) Now() time.Duration { return s.now }

// Run returns the 1-based number of the current run.
func (s *Session) Run() int { return s.run }

// RunSeed returns the obstacle seed of the current run.
func (s *Session) RunSeed() int64 { return s.runSeed }

// Obstacles returns the obstacles spawned in the current run.
func (s *Session) Obstacles() []Obstacle { return s.world.Obstacles() }

// Entity returns an entity of the current run, or nil.
func (s *Session) Entity(id EntityID) *Entity { return s.arena.Get(id) }

// Entities returns the number of live entities.
func (s *Session) Entities() int { return s.arena.Len() }

// SpawnPending reports whether the spawn cadence runs.
func (s *Session) SpawnPending() bool { return s.spawnTask.Pending() }

// RestartPending reports whether a delayed restart is scheduled.
func (s *Session) RestartPending() bool { return s.restartTask.Pending() }

// Config returns the session configuration.
func (s *Session) Config() config.FlappyConfig { return s.cfg }
