package system

import (
	"fmt"

	"github.com/younwookim/motionctl/internal/domain/entity"
	"github.com/younwookim/motionctl/internal/infrastructure/config"
)

// LoadStage converts a StageConfig into a Stage entity
func LoadStage(cfg *config.StageConfig) (*entity.Stage, error) {
	if cfg.Size.TileSize <= 0 {
		return nil, fmt.Errorf("stage %s: tile size must be positive", cfg.ID)
	}
	tileWidth := cfg.Size.Width / cfg.Size.TileSize
	tileHeight := len(cfg.Layers.Collision)

	tiles := make([][]entity.Tile, tileHeight)
	for y, row := range cfg.Layers.Collision {
		tiles[y] = make([]entity.Tile, tileWidth)
		for x, char := range row {
			if x >= tileWidth {
				break
			}
			mapping, ok := cfg.TileMapping[string(char)]
			if !ok {
				tiles[y][x] = entity.Tile{Type: entity.TileEmpty}
				continue
			}

			var tileType entity.TileType
			switch mapping.Type {
			case "wall":
				tileType = entity.TileWall
			case "platform":
				tileType = entity.TilePlatform
			case "spike":
				tileType = entity.TileSpike
			default:
				tileType = entity.TileEmpty
			}

			var layer entity.Layer
			if mapping.Layer != "" {
				l, err := entity.ParseLayer(mapping.Layer)
				if err != nil {
					return nil, fmt.Errorf("stage %s tile %q: %w", cfg.ID, string(char), err)
				}
				layer = l
			} else if mapping.Solid {
				layer = entity.LayerDefault
			}

			tiles[y][x] = entity.Tile{
				Type:  tileType,
				Solid: mapping.Solid,
				Layer: layer,
			}
		}
	}

	return &entity.Stage{
		Width:    tileWidth,
		Height:   tileHeight,
		TileSize: cfg.Size.TileSize,
		Tiles:    tiles,
		SpawnX:   cfg.PlayerSpawn.X,
		SpawnY:   cfg.PlayerSpawn.Y,
	}, nil
}
