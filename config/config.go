// Package config loads the tunables of the tactics core from YAML. Every
// field defaults to the named constant of the package that owns it, so a
// config file only lists what it changes.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/nstehr/vimy/vimy-tactics/cluster"
	"github.com/nstehr/vimy/vimy-tactics/rules"
	"github.com/nstehr/vimy/vimy-tactics/skirmish"
	"github.com/nstehr/vimy/vimy-tactics/squad"
	"github.com/nstehr/vimy/vimy-tactics/targeting"
)

type Cluster struct {
	Eps    int `yaml:"eps"`
	MinPts int `yaml:"min_pts"`
}

type Config struct {
	Cluster   Cluster           `yaml:"cluster"`
	Skirmish  skirmish.Options  `yaml:"skirmish"`
	Targeting targeting.Weights `yaml:"targeting"`
	Squad     squad.Config      `yaml:"squad"`
	Doctrine  rules.Doctrine    `yaml:"doctrine"`
	// Doctrines are alternatives the strategist may switch to, by name.
	Doctrines []rules.Doctrine `yaml:"doctrines"`
	// Reactions maps an agent event kind to the doctrine it switches to.
	Reactions map[string]string `yaml:"reactions"`
	// DrawForces sends steering vectors to the telemetry sink.
	DrawForces bool `yaml:"draw_forces"`
	// DrawInGame forwards telemetry frames to the bridge for in-game display.
	DrawInGame bool `yaml:"draw_in_game"`
}

func Default() Config {
	return Config{
		Cluster:   Cluster{Eps: cluster.DefaultEps, MinPts: cluster.DefaultMinPts},
		Skirmish:  skirmish.DefaultOptions(),
		Targeting: targeting.DefaultWeights(),
		Squad:     squad.DefaultConfig(),
		Doctrine:  rules.DefaultDoctrine(),
	}
}

// Load reads path over the defaults. An empty path or a missing file yields
// Default.
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}
	b, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		slog.Warn("config file not found, using defaults", "path", path)
		return cfg, nil
	}
	if err != nil {
		return Config{}, fmt.Errorf("read config %s: %w", path, err)
	}
	if err := yaml.Unmarshal(b, &cfg); err != nil {
		return Config{}, fmt.Errorf("parse config %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, fmt.Errorf("config %s: %w", path, err)
	}
	slog.Info("config loaded", "path", path, "doctrine", cfg.Doctrine.Name)
	return cfg, nil
}

// Validate rejects settings the core cannot run with and clamps the doctrine.
func (c *Config) Validate() error {
	var errs []error
	if c.Cluster.Eps <= 0 {
		errs = append(errs, fmt.Errorf("cluster.eps must be positive, got %d", c.Cluster.Eps))
	}
	if c.Cluster.MinPts < 1 {
		errs = append(errs, fmt.Errorf("cluster.min_pts must be at least 1, got %d", c.Cluster.MinPts))
	}
	s := c.Skirmish
	if s.Frames <= 0 {
		errs = append(errs, fmt.Errorf("skirmish.frames must be positive, got %d", s.Frames))
	}
	if s.FrameSkip < 1 {
		errs = append(errs, fmt.Errorf("skirmish.frame_skip must be at least 1, got %d", s.FrameSkip))
	}
	if s.OverrunCap < s.Frames {
		errs = append(errs, fmt.Errorf("skirmish.overrun_cap %d is below frames %d", s.OverrunCap, s.Frames))
	}
	if s.Workers < 0 {
		errs = append(errs, fmt.Errorf("skirmish.workers must not be negative, got %d", s.Workers))
	}
	if c.Squad.EngageBuffer < 0 || c.Squad.BaseDangerRadius <= 0 {
		errs = append(errs, errors.New("squad distances must be positive"))
	}
	c.Doctrine.Validate()
	names := map[string]bool{c.Doctrine.Name: true}
	for i := range c.Doctrines {
		c.Doctrines[i].Validate()
		names[c.Doctrines[i].Name] = true
	}
	for kind, name := range c.Reactions {
		if !names[name] {
			errs = append(errs, fmt.Errorf("reaction %s names unknown doctrine %q", kind, name))
		}
	}
	return errors.Join(errs...)
}
