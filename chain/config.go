// SPDX-License-Identifier: MIT

package chain

import (
	"errors"
	"fmt"
	"io"
	"math"
	"os"

	"go.uber.org/zap"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/isometry/isometry"
	"github.com/katalvlaran/isometry/matrix"
	"github.com/katalvlaran/isometry/vector"
)

// Angle units accepted in Config.Units.
const (
	UnitsRadians = "radians"
	UnitsDegrees = "degrees"
)

// Config is the YAML form of a pipeline.
type Config struct {
	Name   string       `yaml:"name"`
	Units  string       `yaml:"units,omitempty"`
	Steps  []StepConfig `yaml:"steps"`
	Points [][]float64  `yaml:"points,omitempty"`
}

// StepConfig describes one step. Exactly one of Translate, Rotate, Euler and
// Isometry must be set.
type StepConfig struct {
	Translate []float64       `yaml:"translate,omitempty"`
	Rotate    *RotateConfig   `yaml:"rotate,omitempty"`
	Euler     *EulerConfig    `yaml:"euler,omitempty"`
	Isometry  *IsometryConfig `yaml:"isometry,omitempty"`
	Invert    bool            `yaml:"invert,omitempty"`
}

// RotateConfig is an axis-angle rotation.
type RotateConfig struct {
	Axis  []float64 `yaml:"axis"`
	Angle float64   `yaml:"angle"`
}

// EulerConfig is Rx(roll) ∘ Ry(pitch) ∘ Rz(yaw).
type EulerConfig struct {
	Roll  float64 `yaml:"roll"`
	Pitch float64 `yaml:"pitch"`
	Yaw   float64 `yaml:"yaw"`
}

// IsometryConfig is a raw rotation matrix (rows) plus translation.
// A missing rotation means identity.
type IsometryConfig struct {
	Translation []float64   `yaml:"translation,omitempty"`
	Rotation    [][]float64 `yaml:"rotation,omitempty"`
}

// LoadYAML decodes a Config from r. The stream must hold at most one
// document; an empty stream yields the identity chain.
func LoadYAML(r io.Reader) (*Config, error) {
	var c Config
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&c); err != nil {
		if errors.Is(err, io.EOF) {
			return &c, nil
		}
		return nil, fmt.Errorf("chain: decode yaml: %w", err)
	}

	var extra yaml.Node
	switch err := dec.Decode(&extra); {
	case errors.Is(err, io.EOF):
		return &c, nil
	case err != nil:
		return nil, fmt.Errorf("chain: decode yaml: %w", err)
	default:
		return nil, fmt.Errorf("chain: decode yaml: line %d: %w", extra.Line, ErrExtraDocument)
	}
}

// LoadFile opens path and decodes it with LoadYAML.
func LoadFile(path string) (*Config, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	return LoadYAML(f)
}

// Build validates c and constructs its Pipeline.
func (c *Config) Build(opts ...Option) (*Pipeline, error) {
	o := gatherOptions(opts...)

	scale, err := c.angleScale(o.degrees)
	if err != nil {
		return nil, err
	}

	steps := make([]Step, 0, len(c.Steps))
	for i, sc := range c.Steps {
		st, err := sc.build(scale)
		if err != nil {
			return nil, stepErrorf(i, err)
		}
		o.logger.Debug("chain step",
			zap.String("chain", c.Name),
			zap.Int("index", i),
			zap.String("kind", st.Kind),
			zap.Bool("inverted", sc.Invert),
			zap.Stringer("isometry", st.Isometry),
		)
		steps = append(steps, st)
	}

	return newPipeline(c.Name, steps, o), nil
}

// PointVectors converts Points into vectors.
func (c *Config) PointVectors() ([]vector.Vector3, error) {
	out := make([]vector.Vector3, len(c.Points))
	for i, p := range c.Points {
		v, err := toVector(p)
		if err != nil {
			return nil, fmt.Errorf("point %d: %w", i, err)
		}
		out[i] = v
	}

	return out, nil
}

// angleScale returns the factor converting configured angles into radians.
func (c *Config) angleScale(defaultDegrees bool) (float64, error) {
	switch c.Units {
	case UnitsRadians:
		return 1, nil
	case UnitsDegrees:
		return math.Pi / 180, nil
	case "":
		if defaultDegrees {
			return math.Pi / 180, nil
		}
		return 1, nil
	default:
		return 0, fmt.Errorf("%q: %w", c.Units, ErrBadUnits)
	}
}

// build turns one StepConfig into a Step.
func (sc StepConfig) build(angleScale float64) (Step, error) {
	set := 0
	for _, ok := range []bool{sc.Translate != nil, sc.Rotate != nil, sc.Euler != nil, sc.Isometry != nil} {
		if ok {
			set++
		}
	}
	if set != 1 {
		return Step{}, ErrBadStep
	}

	var (
		st  Step
		err error
	)
	switch {
	case sc.Translate != nil:
		st.Kind = KindTranslate
		var t vector.Vector3
		if t, err = toVector(sc.Translate); err != nil {
			return Step{}, fmt.Errorf("translate: %w", err)
		}
		st.Isometry = isometry.FromTranslation(t)

	case sc.Rotate != nil:
		st.Kind = KindRotate
		var axis vector.Vector3
		if axis, err = toVector(sc.Rotate.Axis); err != nil {
			return Step{}, fmt.Errorf("rotate axis: %w", err)
		}
		if n := axis.Norm(); !(n > 0) || math.IsInf(n, 0) {
			return Step{}, fmt.Errorf("axis %v: %w", axis, ErrZeroAxis)
		}
		st.Isometry = isometry.RotateAround(axis, sc.Rotate.Angle*angleScale)

	case sc.Euler != nil:
		st.Kind = KindEuler
		e := sc.Euler
		st.Isometry = isometry.FromEulerAngles(e.Roll*angleScale, e.Pitch*angleScale, e.Yaw*angleScale)

	default:
		st.Kind = KindIsometry
		if st.Isometry, err = sc.Isometry.build(); err != nil {
			return Step{}, err
		}
	}

	if sc.Invert {
		if st.Isometry, err = st.Isometry.Inverse(); err != nil {
			return Step{}, err
		}
	}

	return st, nil
}

func (ic IsometryConfig) build() (isometry.Isometry, error) {
	var (
		t   vector.Vector3
		err error
	)
	if ic.Translation != nil {
		if t, err = toVector(ic.Translation); err != nil {
			return isometry.Isometry{}, fmt.Errorf("isometry translation: %w", err)
		}
	}
	if ic.Rotation == nil {
		return isometry.FromTranslation(t), nil
	}
	if len(ic.Rotation) != matrix.Size {
		return isometry.Isometry{}, fmt.Errorf("isometry rotation has %d rows: %w", len(ic.Rotation), ErrBadVector)
	}

	var rows [matrix.Size]vector.Vector3
	for i, row := range ic.Rotation {
		if rows[i], err = toVector(row); err != nil {
			return isometry.Isometry{}, fmt.Errorf("isometry rotation row %d: %w", i, err)
		}
	}

	return isometry.New(t, matrix.FromRows(rows[0], rows[1], rows[2])), nil
}

// toVector converts a 3-element slice.
func toVector(s []float64) (vector.Vector3, error) {
	if len(s) != vector.Size {
		return vector.Vector3{}, fmt.Errorf("got %d: %w", len(s), ErrBadVector)
	}

	return vector.New(s[0], s[1], s[2]), nil
}
