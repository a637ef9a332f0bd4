// SPDX-License-Identifier: MIT

// Package corner: functional configuration for the response engine.
// This file defines:
//   - Method / Weighting enums,
//   - documented defaults (constants),
//   - WithX constructors (panic only on nonsensical programmer values),
//   - gatherOptions helper that resolves the effective configuration.
package corner

import (
	"fmt"

	"github.com/katalvlaran/lvfeat/diag"
)

// Method selects the scoring function.
type Method int

const (
	// Harris scores det(M) − κ·trace(M)².
	Harris Method = iota
	// ShiTomasi scores the smaller eigenvalue of M.
	ShiTomasi
)

// String returns the config name of m ("harris", "shi_tomasi").
func (m Method) String() string {
	switch m {
	case Harris:
		return "harris"
	case ShiTomasi:
		return "shi_tomasi"
	default:
		return fmt.Sprintf("method(%d)", int(m))
	}
}

// ParseMethod maps a config name to a Method.
func ParseMethod(s string) (Method, error) {
	switch s {
	case "harris", "":
		return Harris, nil
	case "shi_tomasi", "shi-tomasi", "shitomasi":
		return ShiTomasi, nil
	default:
		return 0, fmt.Errorf("corner: unknown method %q", s)
	}
}

// Weighting selects how gradient products are aggregated over the window.
type Weighting int

const (
	// Box sums the window with unit weights.
	Box Weighting = iota
	// Gaussian weights the window with a normalized Gaussian.
	Gaussian
)

// String returns the config name of w ("box", "gaussian").
func (w Weighting) String() string {
	switch w {
	case Box:
		return "box"
	case Gaussian:
		return "gaussian"
	default:
		return fmt.Sprintf("weighting(%d)", int(w))
	}
}

// ParseWeighting maps a config name to a Weighting.
func ParseWeighting(s string) (Weighting, error) {
	switch s {
	case "box", "":
		return Box, nil
	case "gaussian":
		return Gaussian, nil
	default:
		return 0, fmt.Errorf("corner: unknown weighting %q", s)
	}
}

// ---------- Defaults (single source of truth) ----------

const (
	// DefaultKappa is the empirically well-investigated Harris constant.
	DefaultKappa = 0.06

	// DefaultMethod is Harris.
	DefaultMethod = Harris

	// DefaultWeighting is a plain box sum.
	DefaultWeighting = Box

	// DefaultSigma lets the Gaussian derive sigma from the window size.
	DefaultSigma = 0.0
)

const (
	panicMethodInvalid    = "corner: WithMethod: unknown method"
	panicWeightingInvalid = "corner: WithWeighting: unknown weighting"
)

// Option mutates Options.
type Option func(*Options)

// Options is the effective configuration after applying Option setters.
type Options struct {
	method    Method
	kappa     float64
	weighting Weighting
	sigma     float64
	report    *diag.Report
}

func defaultOptions() Options {
	return Options{
		method:    DefaultMethod,
		kappa:     DefaultKappa,
		weighting: DefaultWeighting,
		sigma:     DefaultSigma,
	}
}

// WithMethod selects Harris or ShiTomasi. Panics on an unknown value.
func WithMethod(m Method) Option {
	if m != Harris && m != ShiTomasi {
		panic(panicMethodInvalid)
	}
	return func(o *Options) { o.method = m }
}

// WithKappa sets the Harris constant. Validated by ComputeResponse
// (ErrBadKappa), since it usually comes from user configuration.
func WithKappa(k float64) Option {
	return func(o *Options) { o.kappa = k }
}

// WithWeighting selects Box or Gaussian aggregation. Panics on an unknown value.
func WithWeighting(w Weighting) Option {
	if w != Box && w != Gaussian {
		panic(panicWeightingInvalid)
	}
	return func(o *Options) { o.weighting = w }
}

// WithSigma sets the Gaussian sigma; <= 0 derives it from the window size.
func WithSigma(s float64) Option {
	return func(o *Options) { o.sigma = s }
}

// WithDiagnostics attaches a report that receives ConfigWarning entries.
func WithDiagnostics(r *diag.Report) Option {
	return func(o *Options) { o.report = r }
}

func gatherOptions(opts []Option) Options {
	o := defaultOptions()
	for _, fn := range opts {
		if fn != nil {
			fn(&o)
		}
	}

	return o
}
