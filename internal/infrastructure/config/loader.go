package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path"
	"strings"

	"gopkg.in/yaml.v3"
)

// GameConfig holds all loaded configurations
type GameConfig struct {
	Motion *MotionConfig
	Stage  *StageConfig
}

// Loader loads configuration from JSON or YAML files using fs.FS interface
type Loader struct {
	fsys     fs.FS
	basePath string
}

// NewLoader creates a new config loader from filesystem path
func NewLoader(basePath string) *Loader {
	return &Loader{
		fsys:     os.DirFS(basePath),
		basePath: basePath,
	}
}

// NewFSLoader creates a new config loader from fs.FS
func NewFSLoader(fsys fs.FS, basePath string) *Loader {
	return &Loader{
		fsys:     fsys,
		basePath: basePath,
	}
}

// BasePath returns the directory the loader reads from
func (l *Loader) BasePath() string {
	return l.basePath
}

var extensions = []string{".json", ".yaml", ".yml"}

// LoadMotion loads motion.json, motion.yaml or motion.yml, in that order
func (l *Loader) LoadMotion() (*MotionConfig, error) {
	cfg := Default()
	if err := l.loadFirst("motion", &cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// LoadStage loads a stage file from stages/
func (l *Loader) LoadStage(name string) (*StageConfig, error) {
	var cfg StageConfig
	if err := l.loadFirst("stages/"+name, &cfg); err != nil {
		return nil, fmt.Errorf("stage %s: %w", name, err)
	}
	return &cfg, nil
}

// LoadAll loads the motion config and the named stage
func (l *Loader) LoadAll(stage string) (*GameConfig, error) {
	motionCfg, err := l.LoadMotion()
	if err != nil {
		return nil, err
	}

	stageCfg, err := l.LoadStage(stage)
	if err != nil {
		return nil, err
	}

	return &GameConfig{
		Motion: motionCfg,
		Stage:  stageCfg,
	}, nil
}

func (l *Loader) loadFirst(base string, v any) error {
	for _, ext := range extensions {
		name := base + ext
		data, err := fs.ReadFile(l.fsys, name)
		if errors.Is(err, fs.ErrNotExist) {
			continue
		}
		if err != nil {
			return fmt.Errorf("failed to read %s: %w", name, err)
		}
		if err := Decode(name, data, v); err != nil {
			return err
		}
		return nil
	}
	return fmt.Errorf("failed to read %s: no %s file: %w", base, strings.Join(extensions, "/"), fs.ErrNotExist)
}

// Decode parses data as JSON or YAML depending on the file extension
func Decode(name string, data []byte, v any) error {
	switch strings.ToLower(path.Ext(name)) {
	case ".json":
		if err := json.Unmarshal(data, v); err != nil {
			return fmt.Errorf("failed to parse %s: %w", name, err)
		}
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, v); err != nil {
			return fmt.Errorf("failed to parse %s: %w", name, err)
		}
	default:
		return fmt.Errorf("unsupported config format %q", name)
	}
	return nil
}

// IsConfigFile reports whether the path has a config extension
func IsConfigFile(name string) bool {
	ext := strings.ToLower(path.Ext(name))
	for _, e := range extensions {
		if ext == e {
			return true
		}
	}
	return false
}
