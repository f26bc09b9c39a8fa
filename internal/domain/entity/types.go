package entity

import (
	"fmt"
	"math"
	"strings"
)

// TileType represents the type of a tile
type TileType int

const (
	TileEmpty TileType = iota
	TileWall
	TilePlatform
	TileSpike
)

// Layer is a collision layer bit. Layers combine into masks.
type Layer uint32

const (
	LayerDefault Layer = 1 << iota
	LayerGround
	LayerHazard
	LayerPlayer
)

var layerNames = map[string]Layer{
	"default": LayerDefault,
	"ground":  LayerGround,
	"hazard":  LayerHazard,
	"player":  LayerPlayer,
}

// ParseLayer returns the layer for a name such as "ground"
func ParseLayer(name string) (Layer, error) {
	l, ok := layerNames[strings.ToLower(strings.TrimSpace(name))]
	if !ok {
		return 0, fmt.Errorf("unknown layer %q", name)
	}
	return l, nil
}

// ParseMask combines layer names into a mask
func ParseMask(names []string) (Layer, error) {
	var mask Layer
	for _, n := range names {
		l, err := ParseLayer(n)
		if err != nil {
			return 0, err
		}
		mask |= l
	}
	return mask, nil
}

// Tile represents a single tile in the stage
type Tile struct {
	Type  TileType
	Solid bool
	Layer Layer
}

// Stage represents the current stage's tile data
type Stage struct {
	Width    int
	Height   int
	TileSize int
	Tiles    [][]Tile
	SpawnX   int
	SpawnY   int
}

// GetTile returns the tile at the given tile coordinates.
// Everything outside the stage is solid ground.
func (s *Stage) GetTile(tx, ty int) Tile {
	if tx < 0 || tx >= s.Width || ty < 0 || ty >= s.Height {
		return Tile{Type: TileWall, Solid: true, Layer: LayerGround}
	}
	return s.Tiles[ty][tx]
}

// GetTileAtPixel returns the tile at the given pixel coordinates
func (s *Stage) GetTileAtPixel(px, py int) Tile {
	tx := floorDiv(px, s.TileSize)
	ty := floorDiv(py, s.TileSize)
	return s.GetTile(tx, ty)
}

// IsSolidAt checks if the tile at pixel coordinates is solid
func (s *Stage) IsSolidAt(px, py int) bool {
	return s.GetTileAtPixel(px, py).Solid
}

// PixelWidth returns the stage width in pixels
func (s *Stage) PixelWidth() int {
	return s.Width * s.TileSize
}

// PixelHeight returns the stage height in pixels
func (s *Stage) PixelHeight() int {
	return s.Height * s.TileSize
}

// OverlapsCircle reports whether a circle in pixel coordinates touches any
// tile whose layer is in mask. Tile edges count as touching.
func (s *Stage) OverlapsCircle(cx, cy, r float64, mask Layer) bool {
	ts := float64(s.TileSize)
	startTX := int(math.Floor((cx - r) / ts))
	endTX := int(math.Floor((cx + r) / ts))
	startTY := int(math.Floor((cy - r) / ts))
	endTY := int(math.Floor((cy + r) / ts))

	for ty := startTY; ty <= endTY; ty++ {
		for tx := startTX; tx <= endTX; tx++ {
			tile := s.GetTile(tx, ty)
			if tile.Layer&mask == 0 {
				continue
			}
			// closest point of the tile rect to the circle center
			nx := clamp(cx, float64(tx)*ts, float64(tx+1)*ts)
			ny := clamp(cy, float64(ty)*ts, float64(ty+1)*ts)
			dx, dy := cx-nx, cy-ny
			if dx*dx+dy*dy <= r*r {
				return true
			}
		}
	}
	return false
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

func floorDiv(a, b int) int {
	q := a / b
	if (a%b != 0) && ((a < 0) != (b < 0)) {
		q--
	}
	return q
}
