// SPDX-License-Identifier: MIT

// Package bitmatrix: functional configuration for constructors.
// This file defines:
//   - Option / Options (functional options with internal state),
//   - documented defaults (constants),
//   - WithX constructors,
//   - gatherOptions helper (internal).
//
// Notes:
//   - WithSelfLinking and WithNames only affect Graph constructors; Matrix
//     constructors accept them for call-site symmetry and ignore them.
//   - WithBuffer copies its argument; a Matrix never aliases caller memory.

package bitmatrix

// Defaults (single source of truth).
const (
	// DefaultForceSymmetry keeps matrices directed unless asked otherwise.
	DefaultForceSymmetry = false

	// DefaultSelfLinking allows diagonal bits (nodes linked to themselves).
	DefaultSelfLinking = true
)

// Axis selects the copy direction of MakeSymmetric.
type Axis uint8

const (
	// UpperToLower copies (x,y) into (y,x) for x < y. Default repair.
	UpperToLower Axis = iota
	// LowerToUpper copies (y,x) into (x,y) for x < y.
	LowerToUpper
)

// String implements fmt.Stringer.
func (a Axis) String() string {
	switch a {
	case UpperToLower:
		return "upper-to-lower"
	case LowerToUpper:
		return "lower-to-upper"
	default:
		return "unknown"
	}
}

const panicAxisInvalid = "bitmatrix: WithSymmetryAxis: unknown axis"

// Option mutates internal options.
type Option func(*Options)

// Options stores the effective configuration after applying Option setters.
type Options struct {
	buffer        []byte
	hasBuffer     bool
	forceSymmetry bool
	axis          Axis
	selfLinking   bool
	names         map[int]string
}

// WithBuffer seeds the matrix with a packed payload. The slice is copied,
// truncated or zero-padded to ceil(N²/8) bytes.
func WithBuffer(buf []byte) Option {
	return func(o *Options) {
		o.buffer = buf
		o.hasBuffer = true
	}
}

// WithForceSymmetry enables the undirected policy: the matrix is repaired to
// be symmetric at construction and on every Enforce call.
func WithForceSymmetry(enabled bool) Option {
	return func(o *Options) { o.forceSymmetry = enabled }
}

// WithSymmetryAxis selects which triangle wins when force-symmetry repairs
// the matrix. Panics on an unknown Axis (programmer error).
func WithSymmetryAxis(axis Axis) Option {
	if axis != UpperToLower && axis != LowerToUpper {
		panic(panicAxisInvalid)
	}

	return func(o *Options) { o.axis = axis }
}

// WithSelfLinking sets the Graph self-linking policy (default true).
func WithSelfLinking(enabled bool) Option {
	return func(o *Options) { o.selfLinking = enabled }
}

// WithNames attaches descriptive node labels to a Graph. The map is copied.
func WithNames(names map[int]string) Option {
	return func(o *Options) {
		o.names = make(map[int]string, len(names))
		for k, v := range names {
			o.names[k] = v
		}
	}
}

// gatherOptions applies opts over the defaults.
func gatherOptions(opts ...Option) Options {
	o := Options{
		forceSymmetry: DefaultForceSymmetry,
		axis:          UpperToLower,
		selfLinking:   DefaultSelfLinking,
	}
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}

	return o
}
