package main

import (
	"flag"
	"fmt"
	"io/fs"
	"log"
	"os"
	"path/filepath"

	"github.com/hajimehoshi/ebiten/v2"
	"go.uber.org/zap"

	"github.com/younwookim/motionctl/internal/application/game"
	"github.com/younwookim/motionctl/internal/application/replay"
	"github.com/younwookim/motionctl/internal/application/scene/playing"
	"github.com/younwookim/motionctl/internal/application/system"
	"github.com/younwookim/motionctl/internal/domain/entity"
	"github.com/younwookim/motionctl/internal/infrastructure/config"
	"github.com/younwookim/motionctl/internal/infrastructure/logging"
)

func main() {
	if err := run(os.Args[1:]); err != nil {
		log.Fatal(err)
	}
}

// run parses flags and runs the game or a headless replay. Every resource is
// released through defers before it returns.
func run(args []string) error {
	// Parse command line flags
	flags := flag.NewFlagSet("game", flag.ContinueOnError)
	configDir := flags.String("config", "", "Config directory (default: embedded configs)")
	stageName := flags.String("stage", "demo", "Stage to load from <config>/stages")
	recordFlag := flags.String("record", "", "Record input to file (e.g., -record replay.json)")
	replayFlag := flags.String("replay", "", "Replay a recording headless and print the final state")
	backendFlag := flags.String("backend", "", "Physics backend: tile or chipmunk (default: from config)")
	watchFlag := flags.Bool("watch", false, "Reload config files when they change (requires -config)")
	if err := flags.Parse(args); err != nil {
		return err
	}

	// Load configurations from a directory or the embedded filesystem
	var loader *config.Loader
	if *configDir != "" {
		loader = config.NewLoader(*configDir)
	} else {
		fsys, err := fs.Sub(configFS, "configs")
		if err != nil {
			return fmt.Errorf("config subfs: %w", err)
		}
		loader = config.NewFSLoader(fsys, "configs")
	}

	cfg, err := loader.LoadAll(*stageName)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	logger, err := logging.New(cfg.Motion.Logging)
	if err != nil {
		return fmt.Errorf("create logger: %w", err)
	}
	defer func() { _ = logger.Sync() }()

	stage, err := system.LoadStage(cfg.Stage)
	if err != nil {
		return fmt.Errorf("load stage %s: %w", *stageName, err)
	}

	if *replayFlag != "" {
		return runReplayFile(*replayFlag, *stageName, *backendFlag, cfg.Motion, stage, logger.Logger)
	}

	opts := playing.Options{
		Backend:    *backendFlag,
		RecordPath: *recordFlag,
		StageName:  *stageName,
		Logger:     logger.Logger,
		Levels:     logger,
	}
	if *watchFlag {
		if *configDir == "" {
			logger.Warn("-watch needs -config; hot reload disabled")
		} else {
			watcher, err := config.NewWatcher(*configDir, filepath.Join(*configDir, "stages"))
			if err != nil {
				return fmt.Errorf("watch configs: %w", err)
			}
			defer watcher.Close()
			opts.Loader = loader
			opts.Watcher = watcher
		}
	}

	scene, err := playing.New(cfg.Motion, cfg.Stage, stage, opts)
	if err != nil {
		return fmt.Errorf("start session: %w", err)
	}

	display := cfg.Motion.Display
	g := game.New(scene, display.ScreenWidth, display.ScreenHeight,
		game.WithTickRate(display.Framerate),
		game.WithLogger(logger.Logger))
	defer g.Close()

	// Set up ebiten
	ebiten.SetWindowSize(display.ScreenWidth*display.Scale, display.ScreenHeight*display.Scale)
	ebiten.SetWindowTitle("Motion Controller")
	ebiten.SetTPS(display.Framerate)

	// Run game
	if err := ebiten.RunGame(g); err != nil {
		return fmt.Errorf("game stopped: %w", err)
	}
	return nil
}

// runReplayFile replays a recording headless and logs the final state
func runReplayFile(path, stageName, backend string, cfg *config.MotionConfig, stage *entity.Stage, logger *zap.Logger) error {
	data, err := replay.LoadReplay(path)
	if err != nil {
		return err
	}
	if data.Stage != "" && data.Stage != stageName {
		logger.Warn("replay was recorded on another stage",
			zap.String("recorded", data.Stage), zap.String("stage", stageName))
	}

	res, err := RunReplay(cfg, stage, data, backend, logger)
	if err != nil {
		return err
	}
	logger.Info("replay finished",
		zap.Int("frames", res.Frames),
		zap.String("backend", res.Backend),
		zap.Float64("x", res.Position.X),
		zap.Float64("y", res.Position.Y),
		zap.Bool("grounded", res.State.Grounded),
		zap.Stringer("phase", res.State.Phase),
		zap.Int("respawns", res.Respawns))
	return nil
}
