// Package playing provides the main gameplay scene.
package playing

import (
	"image/color"
	"path/filepath"
	"strings"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"go.uber.org/zap"

	"github.com/younwookim/motionctl/internal/application/presentation"
	"github.com/younwookim/motionctl/internal/application/scene"
	"github.com/younwookim/motionctl/internal/application/state"
	"github.com/younwookim/motionctl/internal/application/system"
	"github.com/younwookim/motionctl/internal/domain/entity"
	"github.com/younwookim/motionctl/internal/infrastructure/config"
)

// Colors for rendering
var (
	colorWall     = color.RGBA{80, 80, 100, 255}
	colorPlatform = color.RGBA{110, 90, 70, 255}
	colorSpike    = color.RGBA{200, 50, 50, 255}
	colorBG       = color.RGBA{26, 26, 46, 255}
	colorPlayer   = color.RGBA{100, 200, 100, 255}
	colorDash     = color.RGBA{120, 200, 255, 255}
	colorAttack   = color.RGBA{255, 200, 100, 255}
	colorFacing   = color.RGBA{240, 240, 240, 255}
)

// LevelSetter is implemented by loggers whose level can change at runtime
type LevelSetter interface {
	SetLevel(name string) error
}

// Options configures the playing scene
type Options struct {
	// Backend overrides the physics backend from the motion config
	Backend string
	// RecordPath enables input recording when not empty
	RecordPath string
	// StageName is the stage file name used for hot reload
	StageName string

	// Loader and Watcher enable hot reload when both are set
	Loader  *config.Loader
	Watcher *config.Watcher

	Logger *zap.Logger
	Levels LevelSetter
}

// Playing is the main gameplay scene
type Playing struct {
	cfg      *config.MotionConfig
	stageCfg *config.StageConfig
	stage    *entity.Stage
	state    state.GameState
	session  *Session

	inputSystem *system.InputSystem
	hud         *presentation.HUD

	loader    *config.Loader
	watcher   *config.Watcher
	stageName string
	levels    LevelSetter
	log       *zap.Logger

	screenW  int
	screenH  int
	tileSize int

	// Input recording
	recorder       *Recorder
	recordFilename string
}

// New creates a new Playing scene
func New(cfg *config.MotionConfig, stageCfg *config.StageConfig, stage *entity.Stage, opts Options) (*Playing, error) {
	log := opts.Logger
	if log == nil {
		log = zap.NewNop()
	}

	session, err := NewSession(cfg, stage, opts.Backend, log)
	if err != nil {
		return nil, err
	}

	stageName := opts.StageName
	if stageName == "" {
		stageName = stageCfg.ID
	}

	p := &Playing{
		cfg:            cfg,
		stageCfg:       stageCfg,
		stage:          stage,
		state:          state.StateLoading,
		session:        session,
		inputSystem:    system.NewInputSystem(cfg.Input),
		hud:            presentation.NewHUD(),
		loader:         opts.Loader,
		watcher:        opts.Watcher,
		stageName:      stageName,
		levels:         opts.Levels,
		log:            log,
		screenW:        cfg.Display.ScreenWidth,
		screenH:        cfg.Display.ScreenHeight,
		tileSize:       stage.TileSize,
		recordFilename: opts.RecordPath,
	}

	if opts.RecordPath != "" {
		p.recorder = NewRecorder(stageName, session.Backend(), cfg.Display.Framerate)
		log.Info("recording enabled", zap.String("path", opts.RecordPath))
	}

	return p, nil
}

// Update proceeds the game state (implements scene.Scene)
func (p *Playing) Update(dt float64) (scene.Scene, error) {
	p.reloadChanged()

	switch p.state {
	case state.StatePlaying:
		if err := p.updatePlaying(dt); err != nil {
			p.state = state.StateFailed
			p.log.Error("controller stopped", zap.Error(err))
			p.saveRecording()
			return nil, err
		}
	case state.StatePaused:
		if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
			p.state = state.StatePlaying
		}
	}

	return nil, nil // nil = stay on this scene
}

func (p *Playing) updatePlaying(dt float64) error {
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		p.state = state.StatePaused
		return nil
	}

	// F5: Save recording manually
	if inpututil.IsKeyJustPressed(ebiten.KeyF5) && p.recorder != nil {
		p.saveRecording()
	}

	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		return p.respawn()
	}

	return p.step(p.inputSystem.Poll(), dt)
}

// respawn resets the player and marks the recording so replays reset too
func (p *Playing) respawn() error {
	if err := p.session.Respawn(); err != nil {
		return err
	}
	if p.recorder != nil {
		p.recorder.RecordRespawn()
	}
	return nil
}

// step feeds one frame of raw keys through input smoothing, recording and the session
func (p *Playing) step(raw system.RawKeys, dt float64) error {
	input := p.inputSystem.Read(raw, dt)

	if p.recorder != nil {
		p.recorder.RecordFrame(input)
	}

	return p.session.Step(input, dt)
}

// saveRecording saves the current recording to file
func (p *Playing) saveRecording() {
	if p.recorder == nil {
		return
	}

	filename := p.recordFilename
	if filename == "" {
		filename = GenerateFilename()
	}

	if err := p.recorder.Save(filename); err != nil {
		p.log.Warn("failed to save recording", zap.Error(err))
	} else {
		p.log.Info("recording saved", zap.String("path", filename), zap.Int("frames", p.recorder.FrameCount()))
	}
}

// reloadChanged applies config files changed on disk since the last frame
func (p *Playing) reloadChanged() {
	if p.watcher == nil || p.loader == nil {
		return
	}

	for _, path := range p.watcher.Drain() {
		base := filepath.Base(path)
		switch {
		case strings.HasPrefix(base, "motion."):
			p.reloadMotion()
		case strings.HasPrefix(base, p.stageName+"."):
			p.reloadStage()
		}
	}
}

func (p *Playing) reloadMotion() {
	cfg, err := p.loader.LoadMotion()
	if err != nil {
		p.log.Warn("motion config reload failed", zap.Error(err))
		return
	}
	if err := p.session.ApplyConfig(cfg); err != nil {
		p.log.Warn("motion config rejected", zap.Error(err))
		return
	}

	p.cfg = cfg
	p.inputSystem.SetConfig(cfg.Input)
	if p.levels != nil {
		if err := p.levels.SetLevel(cfg.Logging.Level); err != nil {
			p.log.Warn("bad log level", zap.String("level", cfg.Logging.Level), zap.Error(err))
		}
	}
	p.log.Info("motion config reloaded")
}

func (p *Playing) reloadStage() {
	stageCfg, err := p.loader.LoadStage(p.stageName)
	if err != nil {
		p.log.Warn("stage reload failed", zap.Error(err))
		return
	}
	stage, err := system.LoadStage(stageCfg)
	if err != nil {
		p.log.Warn("stage rejected", zap.Error(err))
		return
	}
	session, err := NewSession(p.cfg, stage, p.session.Backend(), p.log)
	if err != nil {
		p.log.Warn("stage respawn failed", zap.Error(err))
		return
	}

	p.stageCfg = stageCfg
	p.stage = stage
	p.tileSize = stage.TileSize
	p.session = session
	p.log.Info("stage reloaded", zap.String("stage", p.stageName))

	// earlier frames were played on the old stage
	if p.recorder != nil {
		p.recorder = NewRecorder(p.stageName, session.Backend(), p.cfg.Display.Framerate)
		p.log.Info("recording restarted")
	}
}

// Draw renders the game screen
func (p *Playing) Draw(screen *ebiten.Image) {
	screen.Fill(colorBG)

	cam := p.session.Camera()
	p.drawTiles(screen, cam)
	p.drawPlayer(screen, cam)
	p.session.Animator().DrawEffects(screen)

	p.hud.Draw(screen, p.session.Snapshot(), p.session.Animator().Clip())

	switch p.state {
	case state.StatePaused:
		p.hud.DrawBanner(screen, "PAUSED - ESC to resume")
	case state.StateFailed:
		p.hud.DrawBanner(screen, "CONTROLLER STOPPED")
	}
}

func (p *Playing) drawTiles(screen *ebiten.Image, cam *presentation.Camera) {
	camX, camY := int(cam.X), int(cam.Y)
	startTileX := camX / p.tileSize
	startTileY := camY / p.tileSize
	endTileX := (camX+p.screenW)/p.tileSize + 1
	endTileY := (camY+p.screenH)/p.tileSize + 1

	ts := float32(p.tileSize)
	for ty := startTileY; ty <= endTileY && ty < p.stage.Height; ty++ {
		for tx := startTileX; tx <= endTileX && tx < p.stage.Width; tx++ {
			if tx < 0 || ty < 0 {
				continue
			}
			tile := p.stage.GetTile(tx, ty)

			var c color.Color
			switch tile.Type {
			case entity.TileWall:
				c = colorWall
			case entity.TilePlatform:
				c = colorPlatform
			case entity.TileSpike:
				c = colorSpike
			default:
				continue
			}

			x := float32(tx*p.tileSize - camX)
			y := float32(ty*p.tileSize - camY)
			vector.FillRect(screen, x, y, ts, ts, c, false)
		}
	}
}

func (p *Playing) drawPlayer(screen *ebiten.Image, cam *presentation.Camera) {
	body := p.session.Body()
	hb := p.cfg.Player.Hitbox
	cx, cy := cam.WorldToScreen(body.Position())
	w, h := float32(hb.Width), float32(hb.Height)
	x, y := float32(cx)-w/2, float32(cy)-h/2

	c := colorPlayer
	switch p.session.Animator().Clip() {
	case presentation.ClipDash:
		c = colorDash
	case presentation.ClipAttack:
		c = colorAttack
	}
	vector.FillRect(screen, x, y, w, h, c, false)

	// Facing marker on the leading edge
	fx := x + w - 3
	if body.Facing() < 0 {
		fx = x + 1
	}
	vector.FillRect(screen, fx, y+4, 2, 4, colorFacing, false)

	if p.session.Controller().Snapshot().Attacking || p.session.Animator().Clip() == presentation.ClipAttack {
		dir := p.session.Controller().LastAttack()
		const reach = 14
		vector.StrokeLine(screen, float32(cx), float32(cy),
			float32(cx+dir.X*reach), float32(cy-dir.Y*reach), 2, colorAttack, true)
	}
}

// OnEnter is called when entering this scene
func (p *Playing) OnEnter() {
	p.state = state.StatePlaying
}

// OnExit is called when leaving this scene
func (p *Playing) OnExit() {
	p.saveRecording()
}

// Layout implements scene.Layouter
func (p *Playing) Layout(outsideWidth, outsideHeight int) (int, int) {
	return p.screenW, p.screenH
}

// State returns the scene state
func (p *Playing) State() state.GameState {
	return p.state
}

// Session returns the running session
func (p *Playing) Session() *Session {
	return p.session
}
