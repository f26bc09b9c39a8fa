package config

import (
	"os"
	"path/filepath"
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/younwookim/motionctl/internal/domain/entity"
	"github.com/younwookim/motionctl/internal/domain/motion"
)

func TestLoader_LoadMotion(t *testing.T) {
	loader := NewLoader("../../../cmd/game/configs")

	cfg, err := loader.LoadMotion()
	require.NoError(t, err)

	assert.Equal(t, 320, cfg.Display.ScreenWidth)
	assert.Equal(t, 240, cfg.Display.ScreenHeight)
	assert.Equal(t, 60, cfg.Display.Framerate)
	assert.Equal(t, BackendTile, cfg.Physics.Backend)
	assert.Equal(t, 800.0, cfg.Physics.Gravity)
	assert.Equal(t, 0.3, cfg.Dash.Duration)
	assert.Equal(t, 0.15, cfg.Dash.ArmingDelay)
	assert.Equal(t, []string{"ground"}, cfg.Ground.Layers)
	assert.Equal(t, "info", cfg.Logging.Level)
}

func TestLoader_LoadStage(t *testing.T) {
	loader := NewLoader("../../../cmd/game/configs")

	cfg, err := loader.LoadStage("demo")
	require.NoError(t, err)

	assert.Equal(t, "demo", cfg.ID)
	assert.Equal(t, 640, cfg.Size.Width)
	assert.Equal(t, 240, cfg.Size.Height)
	assert.Equal(t, 16, cfg.Size.TileSize)
	assert.Equal(t, 48, cfg.PlayerSpawn.X)
	assert.Equal(t, 200, cfg.PlayerSpawn.Y)
	assert.Len(t, cfg.Layers.Collision, 15)

	wall, ok := cfg.TileMapping["#"]
	require.True(t, ok)
	assert.True(t, wall.Solid)
	assert.Equal(t, "wall", wall.Type)
	assert.Equal(t, "ground", wall.Layer)
}

func TestLoader_LoadAll(t *testing.T) {
	loader := NewLoader("../../../cmd/game/configs")

	cfg, err := loader.LoadAll("demo")
	require.NoError(t, err)

	assert.NotNil(t, cfg.Motion)
	assert.NotNil(t, cfg.Stage)
}

func TestLoader_Formats(t *testing.T) {
	t.Run("yaml overrides defaults", func(t *testing.T) {
		fsys := fstest.MapFS{
			"motion.yaml": {Data: []byte("dash:\n  speed: 55\njump:\n  force: 12.5\n")},
		}
		loader := NewFSLoader(fsys, ".")

		cfg, err := loader.LoadMotion()
		require.NoError(t, err)

		assert.Equal(t, 55.0, cfg.Dash.Speed)
		assert.Equal(t, 12.5, cfg.Jump.Force)
		// untouched fields keep defaults
		assert.Equal(t, 0.3, cfg.Dash.Duration)
		assert.Equal(t, 2.5, cfg.Jump.FallMultiplier)
	})

	t.Run("json wins over yaml", func(t *testing.T) {
		fsys := fstest.MapFS{
			"motion.json": {Data: []byte(`{"movement":{"walkSpeed":7}}`)},
			"motion.yml":  {Data: []byte("movement:\n  walkSpeed: 9\n")},
		}
		loader := NewFSLoader(fsys, ".")

		cfg, err := loader.LoadMotion()
		require.NoError(t, err)

		assert.Equal(t, 7.0, cfg.Movement.WalkSpeed)
	})

	t.Run("missing file", func(t *testing.T) {
		loader := NewFSLoader(fstest.MapFS{}, ".")

		_, err := loader.LoadMotion()
		assert.ErrorIs(t, err, os.ErrNotExist)
	})

	t.Run("malformed file", func(t *testing.T) {
		fsys := fstest.MapFS{
			"motion.json": {Data: []byte(`{"movement":`)},
		}
		loader := NewFSLoader(fsys, ".")

		_, err := loader.LoadMotion()
		assert.ErrorContains(t, err, "failed to parse motion.json")
	})

	t.Run("yaml stage", func(t *testing.T) {
		fsys := fstest.MapFS{
			"stages/tiny.yml": {Data: []byte(`
id: tiny
size: {width: 32, height: 16, tileSize: 16}
layers:
  collision: ["##"]
tileMapping:
  "#": {type: wall, solid: true, layer: ground}
`)},
		}
		loader := NewFSLoader(fsys, ".")

		cfg, err := loader.LoadStage("tiny")
		require.NoError(t, err)

		assert.Equal(t, "tiny", cfg.ID)
		assert.Equal(t, "ground", cfg.TileMapping["#"].Layer)
	})
}

func TestLoader_DirReadsFreshData(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "motion.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"dash":{"speed":10}}`), 0o644))

	loader := NewLoader(dir)
	cfg, err := loader.LoadMotion()
	require.NoError(t, err)
	require.Equal(t, 10.0, cfg.Dash.Speed)

	require.NoError(t, os.WriteFile(path, []byte(`{"dash":{"speed":20}}`), 0o644))
	cfg, err = loader.LoadMotion()
	require.NoError(t, err)
	assert.Equal(t, 20.0, cfg.Dash.Speed)
	assert.Equal(t, dir, loader.BasePath())
}

func TestDecode(t *testing.T) {
	var v struct {
		A int `json:"a" yaml:"a"`
	}

	require.NoError(t, Decode("x.JSON", []byte(`{"a":1}`), &v))
	assert.Equal(t, 1, v.A)

	require.NoError(t, Decode("x.yaml", []byte("a: 2"), &v))
	assert.Equal(t, 2, v.A)

	assert.Error(t, Decode("x.toml", []byte("a = 3"), &v))
}

func TestIsConfigFile(t *testing.T) {
	assert.True(t, IsConfigFile("motion.json"))
	assert.True(t, IsConfigFile("dir/motion.YML"))
	assert.False(t, IsConfigFile("motion.json~"))
	assert.False(t, IsConfigFile("README.md"))
}

func TestMotionConfig_Tuning(t *testing.T) {
	t.Run("defaults are valid", func(t *testing.T) {
		cfg := Default()

		tuning, err := cfg.Tuning()
		require.NoError(t, err)
		require.NoError(t, tuning.Validate())

		assert.Equal(t, 120.0, tuning.WalkSpeed)
		assert.Equal(t, 300.0, tuning.JumpForce)
		assert.Equal(t, 400.0, tuning.DashSpeed)
		assert.Equal(t, motion.Vec2{Y: -12}, tuning.GroundOffset)
		assert.Equal(t, motion.LayerMask(entity.LayerGround), tuning.GroundMask)
		assert.False(t, tuning.LockAttackUntilFinished)
	})

	t.Run("combines layers", func(t *testing.T) {
		cfg := Default()
		cfg.Ground.Layers = []string{"ground", "hazard"}
		cfg.Attack.LockUntilFinished = true

		tuning, err := cfg.Tuning()
		require.NoError(t, err)

		assert.Equal(t, motion.LayerMask(entity.LayerGround|entity.LayerHazard), tuning.GroundMask)
		assert.True(t, tuning.LockAttackUntilFinished)
	})

	t.Run("unknown layer", func(t *testing.T) {
		cfg := Default()
		cfg.Ground.Layers = []string{"lava"}

		_, err := cfg.Tuning()
		assert.ErrorContains(t, err, "ground layers")
	})
}
