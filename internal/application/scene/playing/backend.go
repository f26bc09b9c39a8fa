package playing

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/younwookim/motionctl/internal/application/system"
	"github.com/younwookim/motionctl/internal/domain/entity"
	"github.com/younwookim/motionctl/internal/domain/motion"
	"github.com/younwookim/motionctl/internal/infrastructure/config"
	"github.com/younwookim/motionctl/internal/infrastructure/physics/chipmunk"
)

// physicsBody is a controller body that can also advance its own simulation
type physicsBody interface {
	motion.PhysicsBody
	motion.Checker
	Step(dt float64)
	Detach()
}

type chipmunkBody struct {
	*chipmunk.Body
	world *chipmunk.World
}

func (b chipmunkBody) Step(dt float64) {
	b.world.Step(dt)
}

// newPhysicsBody spawns the player on stage using the configured backend
func newPhysicsBody(cfg *config.MotionConfig, stage *entity.Stage, backend string, log *zap.Logger) (physicsBody, error) {
	hb := cfg.Player.Hitbox
	hitbox := entity.HitboxRect{
		OffsetX: hb.OffsetX,
		OffsetY: hb.OffsetY,
		Width:   hb.Width,
		Height:  hb.Height,
	}

	switch backend {
	case config.BackendTile, "":
		body := entity.NewBody(stage.SpawnX, stage.SpawnY, hitbox)
		return system.NewTileBody(body, system.NewPhysicsSystem(cfg.Physics, stage)), nil
	case config.BackendChipmunk:
		world := chipmunk.NewWorld(cfg.Physics, stage, log)
		cx := float64(stage.SpawnX+hitbox.OffsetX) + float64(hitbox.Width)/2
		cy := float64(stage.SpawnY+hitbox.OffsetY) + float64(hitbox.Height)/2
		body := world.AddBody(cx, -cy, float64(hitbox.Width), float64(hitbox.Height))
		return chipmunkBody{Body: body, world: world}, nil
	default:
		return nil, fmt.Errorf("unknown physics backend %q", backend)
	}
}
