package pipeline

import (
	"errors"
	"fmt"

	"go.uber.org/zap"

	"github.com/katalvlaran/lvfeat/corner"
	"github.com/katalvlaran/lvfeat/descriptor"
	"github.com/katalvlaran/lvfeat/diag"
	"github.com/katalvlaran/lvfeat/grid"
	"github.com/katalvlaran/lvfeat/keypoint"
	"github.com/katalvlaran/lvfeat/match"
)

// ErrNilFrame indicates a nil frame passed to Match.
var ErrNilFrame = errors.New("pipeline: nil frame")

// Option mutates a Pipeline under construction.
type Option func(*Pipeline)

// WithLogger sets the logger diagnostics and progress are written to.
func WithLogger(l *zap.Logger) Option {
	return func(p *Pipeline) {
		if l != nil {
			p.logger = l
		}
	}
}

// Pipeline runs detection and matching with a fixed, validated Config.
// It holds no per-call state and is safe for concurrent use.
type Pipeline struct {
	cfg       Config
	method    corner.Method
	weighting corner.Weighting
	logger    *zap.Logger
}

// Frame is everything Detect derives from one image.
//   - Keypoints: the NMS selection, before boundary filtering.
//   - Descriptors: the keypoints that survived filtering, with their patches.
type Frame struct {
	Response    *grid.Grid[float64]
	Keypoints   []keypoint.Keypoint
	Descriptors *descriptor.Set
	Diagnostics []diag.Entry
}

// Step is one frame of a tracked sequence. Matches pair this frame's
// descriptors (query) with the previous frame's (database); the first step
// has none.
type Step struct {
	Index   int
	Frame   *Frame
	Matches []match.Match
	Stats   Stats
}

// New validates cfg and returns a Pipeline.
func New(cfg Config, opts ...Option) (*Pipeline, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	// Validate already parsed both names.
	m, _ := corner.ParseMethod(cfg.Method)
	w, _ := corner.ParseWeighting(cfg.Weighting)
	p := &Pipeline{cfg: cfg, method: m, weighting: w, logger: zap.NewNop()}
	for _, fn := range opts {
		if fn != nil {
			fn(p)
		}
	}

	return p, nil
}

// Config returns the configuration p was built with.
func (p *Pipeline) Config() Config { return p.cfg }

// Detect computes the response, selects keypoints and describes them.
func (p *Pipeline) Detect(img *grid.Grid[float64]) (*Frame, error) {
	rep := diag.NewReport(p.logger)

	resp, err := corner.ComputeResponse(img, p.cfg.PatchSize,
		corner.WithMethod(p.method),
		corner.WithKappa(p.cfg.Kappa),
		corner.WithWeighting(p.weighting),
		corner.WithSigma(p.cfg.Sigma),
		corner.WithDiagnostics(rep),
	)
	if err != nil {
		return nil, fmt.Errorf("Detect: %w", err)
	}

	kps, err := keypoint.Select(resp, p.cfg.NumKeypoints, p.cfg.SuppressionRadius)
	if err != nil {
		return nil, fmt.Errorf("Detect: %w", err)
	}

	set, err := descriptor.Describe(img, kps, p.cfg.PatchRadius,
		descriptor.WithWorkers(p.cfg.Workers),
		descriptor.WithDiagnostics(rep),
	)
	if err != nil {
		return nil, fmt.Errorf("Detect: %w", err)
	}

	p.logger.Debug("frame detected",
		zap.Int("width", img.Cols()),
		zap.Int("height", img.Rows()),
		zap.Int("keypoints", len(kps)),
		zap.Int("described", set.Len()),
		zap.Int("diagnostics", rep.Len()),
	)

	return &Frame{Response: resp, Keypoints: kps, Descriptors: set, Diagnostics: rep.Entries()}, nil
}

// Match pairs the described keypoints of query with those of database.
// Match indices refer to query.Descriptors and database.Descriptors.
func (p *Pipeline) Match(query, database *Frame) ([]match.Match, error) {
	if query == nil || database == nil || query.Descriptors == nil || database.Descriptors == nil {
		return nil, ErrNilFrame
	}
	opts := []match.Option{match.WithUnique(p.cfg.Unique)}
	if p.cfg.NonZeroAnchor {
		opts = append(opts, match.WithNonZeroAnchor())
	}
	ms, err := match.MatchDescriptors(query.Descriptors.Descriptors, database.Descriptors.Descriptors,
		p.cfg.DistanceRatio, opts...)
	if err != nil {
		return nil, fmt.Errorf("Match: %w", err)
	}
	p.logger.Debug("frames matched",
		zap.Int("query", query.Descriptors.Len()),
		zap.Int("database", database.Descriptors.Len()),
		zap.Int("matches", len(ms)),
	)

	return ms, nil
}

// Track detects every image and matches each frame against its predecessor.
// A frame left with no descriptors yields a step without matches instead of
// an error, so one blank frame does not end the sequence.
func (p *Pipeline) Track(images []*grid.Grid[float64]) ([]Step, error) {
	steps := make([]Step, 0, len(images))
	var prev *Frame
	for i, img := range images {
		f, err := p.Detect(img)
		if err != nil {
			return steps, fmt.Errorf("Track: frame %d: %w", i, err)
		}
		step := Step{Index: i, Frame: f}
		switch {
		case prev == nil:
		case f.Descriptors.Len() == 0 || prev.Descriptors.Len() == 0:
			p.logger.Info("no descriptors to match", zap.Int("frame", i))
		default:
			if step.Matches, err = p.Match(f, prev); err != nil {
				return steps, fmt.Errorf("Track: frame %d: %w", i, err)
			}
			step.Stats = Summarize(step.Matches)
		}
		steps = append(steps, step)
		prev = f
	}

	return steps, nil
}
