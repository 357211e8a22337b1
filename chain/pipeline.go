// SPDX-License-Identifier: MIT

package chain

import (
	"context"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/isometry/isometry"
	"github.com/katalvlaran/isometry/vector"
)

// Step kinds.
const (
	KindTranslate = "translate"
	KindRotate    = "rotate"
	KindEuler     = "euler"
	KindIsometry  = "isometry"
)

// Step is one resolved transform of a pipeline.
type Step struct {
	Kind     string
	Isometry isometry.Isometry
}

// Pipeline is an immutable sequence of steps together with their composition.
// It is safe for concurrent use.
type Pipeline struct {
	name  string
	steps []Step
	total isometry.Isometry
	opts  options
}

// New builds a pipeline from isometries listed in application order.
func New(name string, steps []isometry.Isometry, opts ...Option) *Pipeline {
	ss := make([]Step, len(steps))
	for i, s := range steps {
		ss[i] = Step{Kind: KindIsometry, Isometry: s}
	}

	return newPipeline(name, ss, gatherOptions(opts...))
}

func newPipeline(name string, steps []Step, o options) *Pipeline {
	total := isometry.Identity()
	for _, s := range steps {
		total = s.Isometry.Compose(total) // later steps act after earlier ones
	}

	return &Pipeline{name: name, steps: steps, total: total, opts: o}
}

// Name returns the pipeline name.
func (p *Pipeline) Name() string { return p.name }

// Len returns the number of steps.
func (p *Pipeline) Len() int { return len(p.steps) }

// Steps returns a copy of the steps.
func (p *Pipeline) Steps() []Step { return append([]Step(nil), p.steps...) }

// Isometry returns the composed transform Sn ∘ ... ∘ S1.
func (p *Pipeline) Isometry() isometry.Isometry { return p.total }

// Transform applies the pipeline to a single point.
func (p *Pipeline) Transform(v vector.Vector3) vector.Vector3 { return p.total.Transform(v) }

// Inverse returns the pipeline that undoes p: inverted steps in reverse order.
func (p *Pipeline) Inverse() (*Pipeline, error) {
	steps := make([]Step, len(p.steps))
	for i, s := range p.steps {
		inv, err := s.Isometry.Inverse()
		if err != nil {
			return nil, stepErrorf(i, err)
		}
		steps[len(p.steps)-1-i] = Step{Kind: s.Kind, Isometry: inv}
	}

	return newPipeline(p.name, steps, p.opts), nil
}

// TransformAll applies the pipeline to every point. The output keeps input
// order. Work is split into contiguous chunks run on at most the configured
// number of goroutines. It returns ctx.Err() if ctx is cancelled first.
func (p *Pipeline) TransformAll(ctx context.Context, points []vector.Vector3) ([]vector.Vector3, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	out := make([]vector.Vector3, len(points))
	if len(points) == 0 {
		return out, nil
	}

	workers := p.opts.workers
	if workers > len(points) {
		workers = len(points)
	}
	chunk := (len(points) + workers - 1) / workers

	p.opts.logger.Debug("transform batch",
		zap.String("chain", p.name),
		zap.Int("points", len(points)),
		zap.Int("workers", workers),
		zap.Int("chunk", chunk),
	)

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)
	total := p.total
	for lo := 0; lo < len(points); lo += chunk {
		hi := min(lo+chunk, len(points))
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			for i := lo; i < hi; i++ {
				out[i] = total.Transform(points[i])
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	return out, nil
}
