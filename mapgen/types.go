package mapgen

import "errors"

// Sentinel errors for map generation.
var (
	// ErrBadDimensions indicates Rows or Cols below one.
	ErrBadDimensions = errors.New("mapgen: rows and cols must be at least 1")
	// ErrBadSpacing indicates a non-positive grid spacing.
	ErrBadSpacing = errors.New("mapgen: spacing must be positive")
	// ErrBadJitter indicates a negative jitter amplitude.
	ErrBadJitter = errors.New("mapgen: jitter must be non-negative")
)

// Connectivity selects how many neighbors each grid node links to.
type Connectivity int

const (
	// Conn4 links orthogonal neighbors only.
	Conn4 Connectivity = iota
	// Conn8 additionally links diagonal neighbors.
	Conn8
)

// Options parameterizes Generate. The zero value is invalid; start from
// DefaultOptions and override.
type Options struct {
	Rows, Cols   int          // grid dimensions, each ≥ 1
	Spacing      float64      // lattice step between adjacent grid points, > 0
	Jitter       float64      // max per-axis displacement from the lattice point, ≥ 0
	Connectivity Connectivity // Conn4 or Conn8
	Seed         int64        // RNG seed; equal seeds give equal maps
}

// DefaultOptions returns a small deterministic map: 8×8, spacing 10,
// jitter 2.5, orthogonal links, seed 1.
func DefaultOptions() Options {
	return Options{
		Rows:         8,
		Cols:         8,
		Spacing:      10,
		Jitter:       2.5,
		Connectivity: Conn4,
		Seed:         1,
	}
}

func (o Options) validate() error {
	if o.Rows < 1 || o.Cols < 1 {
		return ErrBadDimensions
	}
	if o.Spacing <= 0 {
		return ErrBadSpacing
	}
	if o.Jitter < 0 {
		return ErrBadJitter
	}

	return nil
}
