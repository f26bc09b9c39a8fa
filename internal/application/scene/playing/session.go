package playing

import (
	"go.uber.org/zap"

	"github.com/younwookim/motionctl/internal/application/presentation"
	"github.com/younwookim/motionctl/internal/application/replay"
	"github.com/younwookim/motionctl/internal/domain/entity"
	"github.com/younwookim/motionctl/internal/domain/motion"
	"github.com/younwookim/motionctl/internal/infrastructure/config"
)

// Session is one controlled character on one stage. It has no ebiten
// dependencies at runtime, so replays can run it headless.
type Session struct {
	cfg      *config.MotionConfig
	stage    *entity.Stage
	backend  string
	body     physicsBody
	input    *motion.InputState
	ctrl     *motion.Controller
	animator *presentation.Animator
	camera   *presentation.Camera
	log      *zap.Logger
	frame    int
	respawns int
}

// NewSession spawns the player and wires controller, physics and presentation
func NewSession(cfg *config.MotionConfig, stage *entity.Stage, backend string, log *zap.Logger) (*Session, error) {
	if log == nil {
		log = zap.NewNop()
	}
	if backend == "" {
		backend = cfg.Physics.Backend
	}
	if backend == "" {
		backend = config.BackendTile
	}

	tuning, err := cfg.Tuning()
	if err != nil {
		return nil, err
	}

	camera := presentation.NewCamera(cfg.Display.ScreenWidth, cfg.Display.ScreenHeight, stage.PixelWidth(), stage.PixelHeight())
	s := &Session{
		cfg:      cfg,
		stage:    stage,
		backend:  backend,
		input:    &motion.InputState{},
		animator: presentation.NewAnimator(camera, log),
		camera:   camera,
		log:      log,
	}
	if err := s.spawn(tuning); err != nil {
		return nil, err
	}

	log.Info("session started",
		zap.String("backend", backend),
		zap.Int("spawnX", stage.SpawnX),
		zap.Int("spawnY", stage.SpawnY))
	return s, nil
}

// spawn places a fresh body and controller at the stage spawn point
func (s *Session) spawn(tuning motion.Tuning) error {
	body, err := newPhysicsBody(s.cfg, s.stage, s.backend, s.log)
	if err != nil {
		return err
	}

	*s.input = motion.InputState{}
	s.animator.Reset()
	ctrl, err := motion.New(tuning, s.input, body, s.animator, motion.WithLogger(s.log))
	if err != nil {
		return err
	}

	if s.body != nil {
		s.body.Detach()
	}
	s.body = body
	s.ctrl = ctrl
	s.camera.Follow(body.Position())
	return nil
}

// Respawn puts the player back at the spawn point with a fresh controller
func (s *Session) Respawn() error {
	if err := s.spawn(s.ctrl.Tuning()); err != nil {
		return err
	}
	s.respawns++
	s.log.Info("respawned", zap.Int("count", s.respawns))
	return nil
}

// Step runs one frame: controller, then physics, then presentation
func (s *Session) Step(in motion.InputState, dt float64) error {
	*s.input = in
	if err := s.ctrl.Tick(dt); err != nil {
		return err
	}

	s.body.Step(dt)
	s.frame++
	if s.OnHazard() {
		return s.Respawn()
	}
	s.camera.Follow(s.body.Position())

	if ended := s.animator.Update(dt); ended == presentation.ClipAttack {
		s.ctrl.FinishAttack()
	}
	return nil
}

// Play applies one recorded frame: a respawn marker or a regular step
func (s *Session) Play(fi replay.FrameInput, dt float64) error {
	if fi.Rsp {
		return s.Respawn()
	}
	return s.Step(fi.State(), dt)
}

// ApplyConfig swaps in new tuning without resetting controller state
func (s *Session) ApplyConfig(cfg *config.MotionConfig) error {
	tuning, err := cfg.Tuning()
	if err != nil {
		return err
	}
	if err := s.ctrl.SetTuning(tuning); err != nil {
		return err
	}
	s.cfg = cfg
	return nil
}

// OnHazard reports whether the player's hitbox touches a hazard tile
func (s *Session) OnHazard() bool {
	pos := s.body.Position()
	hb := s.cfg.Player.Hitbox
	r := float64(min(hb.Width, hb.Height)) / 2
	return s.stage.OverlapsCircle(pos.X, -pos.Y, r, entity.LayerHazard)
}

func (s *Session) Controller() *motion.Controller { return s.ctrl }
func (s *Session) Animator() *presentation.Animator { return s.animator }
func (s *Session) Camera() *presentation.Camera { return s.camera }
func (s *Session) Body() motion.PhysicsBody { return s.body }
func (s *Session) Backend() string { return s.backend }
func (s *Session) Frame() int { return s.frame }
func (s *Session) Respawns() int { return s.respawns }
func (s *Session) Snapshot() motion.State { return s.ctrl.Snapshot() }
