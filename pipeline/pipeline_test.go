package pipeline_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/suite"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/katalvlaran/lvfeat/diag"
	"github.com/katalvlaran/lvfeat/grid"
	"github.com/katalvlaran/lvfeat/match"
	"github.com/katalvlaran/lvfeat/pipeline"
)

// PipelineSuite runs the detector end to end on synthetic frames.
type PipelineSuite struct {
	suite.Suite
	base *grid.Grid[float64] // 70×70 random 4×4 blocks
}

func TestPipelineSuite(t *testing.T) {
	suite.Run(t, new(PipelineSuite))
}

// SetupSuite builds the blocky texture both frames are cropped from.
func (s *PipelineSuite) SetupSuite() {
	rng := rand.New(rand.NewSource(42))
	levels := make([]float64, 18*18)
	for i := range levels {
		levels[i] = float64(rng.Intn(256))
	}
	g, err := grid.New[float64](70, 70)
	s.Require().NoError(err)
	g.Apply(func(i, j int, _ float64) float64 { return levels[(i/4)*18+j/4] })
	s.base = g
}

// crop returns the h×w block of base at (y0, x0).
func (s *PipelineSuite) crop(y0, x0, h, w int) *grid.Grid[float64] {
	data, err := s.base.Window(y0, x0, h, w, nil)
	s.Require().NoError(err)
	g, err := grid.FromSlice(h, w, data)
	s.Require().NoError(err)

	return g
}

func (s *PipelineSuite) newPipeline(mut func(*pipeline.Config), opts ...pipeline.Option) *pipeline.Pipeline {
	cfg := pipeline.DefaultConfig()
	cfg.NumKeypoints = 50
	cfg.SuppressionRadius = 4
	cfg.PatchRadius = 4
	if mut != nil {
		mut(&cfg)
	}
	p, err := pipeline.New(cfg, opts...)
	s.Require().NoError(err)

	return p
}

// TestDetect_Impulse finds the single bright pixel first.
func (s *PipelineSuite) TestDetect_Impulse() {
	img, _ := grid.New[float64](21, 21)
	s.Require().NoError(img.Set(10, 10, 255))
	p := s.newPipeline(func(c *pipeline.Config) {
		c.PatchSize = 3
		c.NumKeypoints = 1
		c.PatchRadius = 9
	})

	f, err := p.Detect(img)
	s.Require().NoError(err)
	s.Require().Len(f.Keypoints, 1)
	s.Equal(10, f.Keypoints[0].X)
	s.Equal(10, f.Keypoints[0].Y)
	s.Require().Equal(1, f.Descriptors.Len())
	s.Len(f.Descriptors.Descriptors[0], 19*19)
	s.Equal(255.0, f.Descriptors.Descriptors[0][19*19/2])
}

// TestDetect_Lockstep keeps descriptors aligned with surviving keypoints.
func (s *PipelineSuite) TestDetect_Lockstep() {
	p := s.newPipeline(func(c *pipeline.Config) { c.PatchRadius = 12; c.Workers = 4 })
	f, err := p.Detect(s.crop(0, 0, 60, 60))
	s.Require().NoError(err)

	s.NotEmpty(f.Keypoints)
	s.Len(f.Descriptors.Descriptors, f.Descriptors.Len())
	excluded := 0
	for _, e := range f.Diagnostics {
		if e.Kind == diag.BoundaryExclusion {
			excluded++
		}
	}
	s.Equal(len(f.Keypoints), f.Descriptors.Len()+excluded)
}

// TestDetect_Diagnostics reports a suboptimal window without failing.
func (s *PipelineSuite) TestDetect_Diagnostics() {
	p := s.newPipeline(func(c *pipeline.Config) { c.PatchSize = 4 })
	f, err := p.Detect(s.crop(0, 0, 30, 30))
	s.Require().NoError(err)

	warnings := 0
	for _, e := range f.Diagnostics {
		if e.Kind == diag.ConfigWarning {
			warnings++
		}
	}
	s.Equal(2, warnings) // below Sobel footprint, even radius
}

// TestTrack_RecoversShift matches a crop against a shifted crop of the same texture.
func (s *PipelineSuite) TestTrack_RecoversShift() {
	a := s.crop(0, 0, 60, 60)
	b := s.crop(2, 3, 60, 60) // b(y, x) = a(y+2, x+3)

	steps, err := s.newPipeline(nil).Track([]*grid.Grid[float64]{a, b})
	s.Require().NoError(err)
	s.Require().Len(steps, 2)
	s.Empty(steps[0].Matches)

	ms := steps[1].Matches
	s.Require().NotEmpty(ms)
	q, db := steps[1].Frame.Descriptors, steps[0].Frame.Descriptors
	for _, m := range ms {
		s.Zero(m.Distance)
		s.Equal(db.Keypoints[m.Database].X-3, q.Keypoints[m.Query].X)
		s.Equal(db.Keypoints[m.Database].Y-2, q.Keypoints[m.Query].Y)
	}
	s.Equal(len(ms), steps[1].Stats.Count)
}

// TestTrack_BlankFrame logs and continues when a frame has no descriptors.
func (s *PipelineSuite) TestTrack_BlankFrame() {
	core, logs := observer.New(zapcore.InfoLevel)
	p := s.newPipeline(nil, pipeline.WithLogger(zap.New(core)))
	blank, _ := grid.New[float64](60, 60)

	steps, err := p.Track([]*grid.Grid[float64]{s.crop(0, 0, 60, 60), blank, s.crop(0, 0, 60, 60)})
	s.Require().NoError(err)
	s.Require().Len(steps, 3)
	s.Empty(steps[1].Matches)
	s.Empty(steps[2].Matches)
	s.Equal(2, logs.FilterMessage("no descriptors to match").Len())
}

// TestMatch_Errors covers nil frames and the matcher's own errors.
func (s *PipelineSuite) TestMatch_Errors() {
	p := s.newPipeline(nil)
	_, err := p.Match(nil, &pipeline.Frame{})
	s.ErrorIs(err, pipeline.ErrNilFrame)

	blank, _ := grid.New[float64](20, 20)
	f, err := p.Detect(blank)
	s.Require().NoError(err)
	_, err = p.Match(f, f)
	s.ErrorIs(err, match.ErrEmptyInput)

	_, err = p.Detect(nil)
	s.Error(err)
}
