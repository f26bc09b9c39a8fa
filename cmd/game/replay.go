package main

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/younwookim/motionctl/internal/application/replay"
	"github.com/younwookim/motionctl/internal/application/scene/playing"
	"github.com/younwookim/motionctl/internal/domain/entity"
	"github.com/younwookim/motionctl/internal/domain/motion"
	"github.com/younwookim/motionctl/internal/infrastructure/config"
)

// ReplayResult is the state of a session after replaying every frame
type ReplayResult struct {
	Frames   int
	Backend  string
	Position motion.Vec2
	Velocity motion.Vec2
	State    motion.State
	Respawns int
}

// RunReplay feeds recorded input through a headless session, applying
// recorded respawns. The backend argument overrides the one stored in the
// replay.
func RunReplay(cfg *config.MotionConfig, stage *entity.Stage, data *replay.ReplayData, backend string, log *zap.Logger) (ReplayResult, error) {
	if log == nil {
		log = zap.NewNop()
	}
	if backend == "" {
		backend = data.Backend
	}

	session, err := playing.NewSession(cfg, stage, backend, log)
	if err != nil {
		return ReplayResult{}, err
	}

	replayer := replay.NewReplayer(*data)
	dt := data.DT()
	for {
		fi, ok := replayer.Next()
		if !ok {
			break
		}
		if err := session.Play(fi, dt); err != nil {
			return ReplayResult{}, fmt.Errorf("replay frame %d: %w", replayer.CurrentFrame()-1, err)
		}
	}

	body := session.Body()
	return ReplayResult{
		Frames:   session.Frame(),
		Backend:  session.Backend(),
		Position: body.Position(),
		Velocity: body.Velocity(),
		State:    session.Snapshot(),
		Respawns: session.Respawns(),
	}, nil
}
