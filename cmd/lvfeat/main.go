// Command lvfeat detects, describes and matches corner features.
//
//	lvfeat -query a.png -database b.png [-config cfg.yaml] [-out dir] [-max-side n] [-v]
//	lvfeat -track [-config cfg.yaml] [-out dir] frame0.png frame1.png ...
//
// It prints keypoint counts and match statistics, and writes keypoint and
// match overlays to -out when given.
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"go.uber.org/zap"

	"github.com/katalvlaran/lvfeat/grid"
	"github.com/katalvlaran/lvfeat/imageio"
	"github.com/katalvlaran/lvfeat/pipeline"
	"github.com/katalvlaran/lvfeat/plot"
)

func main() {
	if err := run(os.Args[1:], os.Stdout); err != nil {
		fmt.Fprintln(os.Stderr, "lvfeat:", err)
		os.Exit(1)
	}
}

// cli holds the parsed command line.
type cli struct {
	query, database string
	config, out     string
	maxSide         int
	verbose, track  bool
	frames          []string
}

func parse(args []string) (cli, error) {
	var c cli
	fs := flag.NewFlagSet("lvfeat", flag.ContinueOnError)
	fs.StringVar(&c.query, "query", "", "query image")
	fs.StringVar(&c.database, "database", "", "database image")
	fs.StringVar(&c.config, "config", "", "YAML config file (defaults when empty)")
	fs.StringVar(&c.out, "out", "", "directory for PNG overlays")
	fs.IntVar(&c.maxSide, "max-side", 0, "downscale images whose longer side exceeds n pixels")
	fs.BoolVar(&c.verbose, "v", false, "debug logging")
	fs.BoolVar(&c.track, "track", false, "track the positional image sequence")
	if err := fs.Parse(args); err != nil {
		return c, err
	}
	c.frames = fs.Args()
	switch {
	case c.track && len(c.frames) < 2:
		return c, errors.New("-track needs at least two images")
	case !c.track && (c.query == "" || c.database == ""):
		return c, errors.New("-query and -database are required")
	}

	return c, nil
}

func newLogger(verbose bool) (*zap.Logger, error) {
	if verbose {
		return zap.NewDevelopment()
	}
	return zap.NewProduction()
}

func run(args []string, stdout io.Writer) error {
	c, err := parse(args)
	if err != nil {
		return err
	}
	logger, err := newLogger(c.verbose)
	if err != nil {
		return err
	}
	defer func() { _ = logger.Sync() }()

	cfg := pipeline.DefaultConfig()
	if c.config != "" {
		if cfg, err = pipeline.LoadConfig(c.config); err != nil {
			return err
		}
	}
	p, err := pipeline.New(cfg, pipeline.WithLogger(logger))
	if err != nil {
		return err
	}
	if c.out != "" {
		if err = os.MkdirAll(c.out, 0o755); err != nil {
			return err
		}
	}

	if c.track {
		return runTrack(p, c, stdout)
	}

	return runPair(p, c, stdout)
}

func runPair(p *pipeline.Pipeline, c cli, stdout io.Writer) error {
	qImg, err := imageio.Load(c.query, imageio.WithMaxSide(c.maxSide))
	if err != nil {
		return err
	}
	dbImg, err := imageio.Load(c.database, imageio.WithMaxSide(c.maxSide))
	if err != nil {
		return err
	}
	q, err := p.Detect(qImg)
	if err != nil {
		return err
	}
	db, err := p.Detect(dbImg)
	if err != nil {
		return err
	}
	ms, err := p.Match(q, db)
	if err != nil {
		return err
	}

	fmt.Fprintf(stdout, "query:    %d keypoints, %d described\n", len(q.Keypoints), q.Descriptors.Len())
	fmt.Fprintf(stdout, "database: %d keypoints, %d described\n", len(db.Keypoints), db.Descriptors.Len())
	fmt.Fprintln(stdout, pipeline.Summarize(ms))
	for _, m := range ms {
		a, b := q.Descriptors.Keypoints[m.Query], db.Descriptors.Keypoints[m.Database]
		fmt.Fprintf(stdout, "(%d,%d) -> (%d,%d) %.1f\n", a.X, a.Y, b.X, b.Y, m.Distance)
	}

	if c.out == "" {
		return nil
	}
	if err = plot.Keypoints(qImg, q.Keypoints, filepath.Join(c.out, "query_keypoints.png")); err != nil {
		return err
	}
	if err = plot.Keypoints(dbImg, db.Keypoints, filepath.Join(c.out, "database_keypoints.png")); err != nil {
		return err
	}

	return plot.Matches(qImg, q.Descriptors.Keypoints, db.Descriptors.Keypoints, ms, filepath.Join(c.out, "matches.png"))
}

func runTrack(p *pipeline.Pipeline, c cli, stdout io.Writer) error {
	images := make([]*grid.Grid[float64], len(c.frames))
	for i, path := range c.frames {
		img, err := imageio.Load(path, imageio.WithMaxSide(c.maxSide))
		if err != nil {
			return err
		}
		images[i] = img
	}
	steps, err := p.Track(images)
	if err != nil {
		return err
	}
	for i, s := range steps {
		fmt.Fprintf(stdout, "frame %d: %d keypoints, %s\n", s.Index, len(s.Frame.Keypoints), s.Stats)
		if c.out == "" || i == 0 {
			continue
		}
		name := filepath.Join(c.out, fmt.Sprintf("matches_%04d.png", s.Index))
		err = plot.Matches(images[i], s.Frame.Descriptors.Keypoints, steps[i-1].Frame.Descriptors.Keypoints, s.Matches, name)
		if err != nil {
			return err
		}
	}

	return nil
}
