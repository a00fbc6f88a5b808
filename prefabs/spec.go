package prefabs

import (
	"errors"
	"fmt"
	"image/color"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/milk9111/boxplatformer/common"
	"github.com/milk9111/boxplatformer/input"
	"github.com/milk9111/boxplatformer/physics"
	"golang.org/x/image/colornames"
	"gopkg.in/yaml.v3"
)

const DefaultWorld = "world.yaml"

var ErrInvalidSpec = errors.New("prefabs: invalid world spec")

// LoadSpec decodes a prefab as TOML when the name ends in .toml, YAML otherwise.
func LoadSpec[T any](filename string) (T, error) {
	var spec T
	if err := decodeSpec(filename, &spec); err != nil {
		var zero T
		return zero, err
	}
	return spec, nil
}

// decodeSpec unmarshals over whatever out already holds, so fields the file
// omits keep their current values.
func decodeSpec(filename string, out any) error {
	data, err := Load(filename)
	if err != nil {
		return fmt.Errorf("prefabs: load %s: %w", filename, err)
	}

	if strings.EqualFold(filepath.Ext(filename), ".toml") {
		err = toml.Unmarshal(data, out)
	} else {
		err = yaml.Unmarshal(data, out)
	}
	if err != nil {
		return fmt.Errorf("prefabs: unmarshal %s: %w", filename, err)
	}
	return nil
}

type WorldSpec struct {
	Name      string         `yaml:"name" toml:"name"`
	Width     float64        `yaml:"width" toml:"width"`
	Friction  float64        `yaml:"friction" toml:"friction"`
	Gravity   float64        `yaml:"gravity" toml:"gravity"`
	TPS       int            `yaml:"tps" toml:"tps"`
	Player    PlayerSpec     `yaml:"player" toml:"player"`
	Walls     WallSpec       `yaml:"walls" toml:"walls"`
	Obstacles []RectSpec     `yaml:"obstacles" toml:"obstacles"`
	Colors    ColorSpec      `yaml:"colors" toml:"colors"`
	Keys      input.Bindings `yaml:"keys" toml:"keys"`
	Terminal  TerminalSpec   `yaml:"terminal" toml:"terminal"`
}

type PlayerSpec struct {
	Width  float64  `yaml:"width" toml:"width"`
	Height float64  `yaml:"height" toml:"height"`
	Speed  float64  `yaml:"speed" toml:"speed"`
	StartX *float64 `yaml:"start_x" toml:"start_x"`
	StartY *float64 `yaml:"start_y" toml:"start_y"`
}

// WallSpec generates the four border walls. Loaded prefabs must set a
// positive thickness.
type WallSpec struct {
	Thickness float64 `yaml:"thickness" toml:"thickness"`
}

// RectSpec is an obstacle. With FromBottom set, Y is measured up from the
// bottom edge of the world to the obstacle's top edge.
type RectSpec struct {
	X          float64 `yaml:"x" toml:"x"`
	Y          float64 `yaml:"y" toml:"y"`
	Width      float64 `yaml:"width" toml:"width"`
	Height     float64 `yaml:"height" toml:"height"`
	FromBottom bool    `yaml:"from_bottom" toml:"from_bottom"`
}

type ColorSpec struct {
	Background *YAMLColor `yaml:"background" toml:"background"`
	Obstacle   *YAMLColor `yaml:"obstacle" toml:"obstacle"`
	Player     *YAMLColor `yaml:"player" toml:"player"`
}

type TerminalSpec struct {
	HoldTicks int `yaml:"hold_ticks" toml:"hold_ticks"`
}

// LoadWorldSpec loads and validates a world prefab. Keys the file omits keep
// their defaults; keys it sets, zero included, are taken as given.
func LoadWorldSpec(name string) (*WorldSpec, error) {
	if name == "" {
		name = DefaultWorld
	}
	spec := baseWorldSpec()
	if err := decodeSpec(name, spec); err != nil {
		return nil, err
	}
	spec.fillColors()
	if err := spec.Validate(); err != nil {
		return nil, fmt.Errorf("prefabs: %s: %w", name, err)
	}
	return spec, nil
}

// DefaultWorldSpec is the built-in world without reading any file.
func DefaultWorldSpec() *WorldSpec {
	spec := baseWorldSpec()
	spec.Name = "default"
	spec.Walls.Thickness = common.WallThickness
	spec.Obstacles = []RectSpec{{X: 0, Y: 20, Width: 20, Height: 2, FromBottom: true}}
	return spec
}

// baseWorldSpec holds the defaults a prefab is decoded over. It has no walls
// or obstacles; those come from the file.
func baseWorldSpec() *WorldSpec {
	spec := &WorldSpec{
		Width:    common.WorldWidth,
		Friction: common.Friction,
		Gravity:  common.Gravity,
		TPS:      common.TPS,
		Player: PlayerSpec{
			Width:  common.PlayerSize,
			Height: common.PlayerSize,
			Speed:  common.PlayerSpeed,
		},
		Keys:     input.DefaultBindings(),
		Terminal: TerminalSpec{HoldTicks: common.TerminalHoldTicks},
	}
	spec.fillColors()
	return spec
}

// fillColors restores colors a prefab cleared with null.
func (s *WorldSpec) fillColors() {
	if s.Colors.Background == nil {
		s.Colors.Background = &YAMLColor{colornames.White}
	}
	if s.Colors.Obstacle == nil {
		s.Colors.Obstacle = &YAMLColor{colornames.Black}
	}
	if s.Colors.Player == nil {
		s.Colors.Player = &YAMLColor{colornames.Red}
	}
}

func (s *WorldSpec) Validate() error {
	switch {
	case s.Width <= 0:
		return fmt.Errorf("%w: width %v", ErrInvalidSpec, s.Width)
	case s.Friction <= 0 || s.Friction >= 1:
		return fmt.Errorf("%w: friction %v outside (0,1)", ErrInvalidSpec, s.Friction)
	case s.TPS <= 0:
		return fmt.Errorf("%w: tps %d", ErrInvalidSpec, s.TPS)
	case s.Terminal.HoldTicks <= 0:
		return fmt.Errorf("%w: terminal hold_ticks %d", ErrInvalidSpec, s.Terminal.HoldTicks)
	case s.Walls.Thickness <= 0:
		return fmt.Errorf("%w: wall thickness %v, the world needs its bounds", ErrInvalidSpec, s.Walls.Thickness)
	case len(s.Obstacles) == 0:
		return fmt.Errorf("%w: no obstacles, the world needs at least one platform", ErrInvalidSpec)
	}
	if _, err := s.Body(); err != nil {
		return fmt.Errorf("%w: player: %w", ErrInvalidSpec, err)
	}
	if _, err := s.Shapes(); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidSpec, err)
	}
	return nil
}

// Height is always half the width.
func (s *WorldSpec) Height() float64 {
	return s.Width * common.AspectRatio
}

func (s *WorldSpec) Integrator() physics.Integrator {
	return physics.Integrator{Friction: s.Friction, Gravity: s.Gravity}
}

// Body builds the player at its configured start, defaulting to the middle of
// the bottom edge.
func (s *WorldSpec) Body() (physics.Entity, error) {
	x := s.Width / 2
	y := s.Height() - s.Player.Height
	if s.Player.StartX != nil {
		x = *s.Player.StartX
	}
	if s.Player.StartY != nil {
		y = *s.Player.StartY
	}
	return physics.NewEntity(x, y, s.Player.Width, s.Player.Height, s.Player.Speed)
}

// Shapes returns the obstacle list in resolution order: left, bottom, right
// and top walls, then the configured obstacles.
func (s *WorldSpec) Shapes() ([]physics.Shape, error) {
	w, h, t := s.Width, s.Height(), s.Walls.Thickness
	var shapes []physics.Shape
	if t > 0 {
		shapes = append(shapes,
			physics.Shape{X: 0, Y: 0, Width: t, Height: h},
			physics.Shape{X: 0, Y: h - t, Width: w, Height: t},
			physics.Shape{X: w - t, Y: 0, Width: t, Height: h},
			physics.Shape{X: 0, Y: 0, Width: w, Height: t},
		)
	}
	for i, r := range s.Obstacles {
		y := r.Y
		if r.FromBottom {
			y = h - r.Y
		}
		shape, err := physics.NewShape(r.X, y, r.Width, r.Height)
		if err != nil {
			return nil, fmt.Errorf("obstacle %d: %w", i, err)
		}
		shapes = append(shapes, shape)
	}
	return shapes, nil
}

type YAMLColor struct {
	color.Color
}

func (c *YAMLColor) UnmarshalYAML(value *yaml.Node) error {
	if value.Kind != yaml.ScalarNode {
		return fmt.Errorf("color must be a string")
	}
	return c.UnmarshalText([]byte(value.Value))
}

// UnmarshalText parses #rrggbb or #rrggbbaa, or a CSS color name.
func (c *YAMLColor) UnmarshalText(text []byte) error {
	raw := string(text)
	if named, ok := colornames.Map[strings.ToLower(raw)]; ok {
		c.Color = named
		return nil
	}

	s := strings.TrimPrefix(raw, "#")

	if len(s) != 6 && len(s) != 8 {
		return fmt.Errorf("invalid color format: %s", raw)
	}

	parse := func(start int) (uint8, error) {
		v, err := strconv.ParseUint(s[start:start+2], 16, 8)
		return uint8(v), err
	}

	r, err := parse(0)
	if err != nil {
		return err
	}
	g, err := parse(2)
	if err != nil {
		return err
	}
	b, err := parse(4)
	if err != nil {
		return err
	}

	a := uint8(255)
	if len(s) == 8 {
		a, err = parse(6)
		if err != nil {
			return err
		}
	}

	c.Color = color.NRGBA{R: r, G: g, B: b, A: a}
	return nil
}
