package playing

import (
	"github.com/younwookim/motionctl/internal/domain/entity"
	"github.com/younwookim/motionctl/internal/infrastructure/config"
)

// createTestConfig creates a minimal config for testing
func createTestConfig() *config.MotionConfig {
	cfg := config.Default()
	return &cfg
}

// createTestStageConfig creates a minimal stage config for testing
func createTestStageConfig() *config.StageConfig {
	return &config.StageConfig{
		ID:   "test",
		Name: "test",
		Size: config.StageSizeConfig{
			Width:    160,
			Height:   96,
			TileSize: 16,
		},
		PlayerSpawn: config.PositionConfig{X: 24, Y: 32},
	}
}

// createTestStage creates a test stage with ground at y=5
func createTestStage() *entity.Stage {
	stage := &entity.Stage{
		Width:    10,
		Height:   6,
		TileSize: 16,
		SpawnX:   24,
		SpawnY:   32,
		Tiles:    make([][]entity.Tile, 6),
	}
	for y := 0; y < 6; y++ {
		stage.Tiles[y] = make([]entity.Tile, 10)
		for x := 0; x < 10; x++ {
			if y == 5 {
				stage.Tiles[y][x] = entity.Tile{Type: entity.TileWall, Solid: true, Layer: entity.LayerGround}
			}
		}
	}
	return stage
}

// createHazardStage puts a spike on the spawn point
func createHazardStage() *entity.Stage {
	stage := createTestStage()
	stage.Tiles[2][1] = entity.Tile{Type: entity.TileSpike, Layer: entity.LayerHazard}
	return stage
}
