package lidar

import (
	"bufio"
	"io"
	"math/rand"
	"os"
	"time"
)

// Points are generated strictly inside their grid cell, cellInset away
// from the cell edges, so no point lands on a cell boundary.
const cellInset = 0.01

// UniformConfig generates points sampled uniformly over a bounding box.
// Seed 0 picks a time based seed; any other value makes runs reproducible.
type UniformConfig struct {
	Count   int
	X, Y, Z Interval
	Seed    int64
}

// DefaultUniformConfig returns the reference fixture parameters
// (100k points over a 500x500 area with z in 50..100).
func DefaultUniformConfig() UniformConfig {
	return UniformConfig{
		Count: 100000,
		X:     Interval{Min: 0.01, Max: 499.99},
		Y:     Interval{Min: 0.01, Max: 499.99},
		Z:     Interval{Min: 50, Max: 100},
	}
}

// Generate writes the header and Count point lines to w. A non-positive
// Count produces a header-only file.
func (c UniformConfig) Generate(w io.Writer) error {
	min := Point{X: c.X.Min, Y: c.Y.Min, Z: c.Z.Min}
	max := Point{X: c.X.Max, Y: c.Y.Max, Z: c.Z.Max}
	if err := writeTxtHeader(w, min, max); err != nil {
		return err
	}
	rng := newRand(c.Seed)
	bw := bufio.NewWriter(w)
	for i := 0; i < c.Count; i++ {
		if err := writePoint(bw, c.X.sample(rng), c.Y.sample(rng), c.Z.sample(rng)); err != nil {
			return err
		}
	}
	return bw.Flush()
}

// GenerateFile writes the fixture to path, creating or truncating it.
func (c UniformConfig) GenerateFile(path string) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	return c.Generate(f)
}

// GridConfig generates BucketSize points per cell of a
// 2^Resolution x 2^Resolution grid of unit cells on the XY plane. Z is
// sampled from the global Z interval regardless of cell.
type GridConfig struct {
	Resolution int
	BucketSize int
	Z          Interval
	Seed       int64
}

// DefaultGridConfig returns the reference fixture parameters
// (16x16 grid, 8 points per cell, z in 50..100).
func DefaultGridConfig() GridConfig {
	return GridConfig{
		Resolution: 4,
		BucketSize: 8,
		Z:          Interval{Min: 50, Max: 100},
	}
}

// Cells returns the number of unit cells per axis.
func (c GridConfig) Cells() int {
	if c.Resolution < 0 {
		return 0
	}
	return 1 << uint(c.Resolution)
}

// Bounds returns the declared bounding box: the grid domain, not the
// slightly inset extent of the generated points.
func (c GridConfig) Bounds() (min, max Point) {
	n := float64(c.Cells())
	min = Point{Z: c.Z.Min}
	max = Point{X: n, Y: n, Z: c.Z.Max}
	return
}

// Generate writes the header and BucketSize*Cells^2 point lines to w.
// Cells are emitted row-major, x-cell outer and y-cell inner; consumers
// rely on nearby lines being spatially close, so the order is part of the
// file contract.
func (c GridConfig) Generate(w io.Writer) error {
	min, max := c.Bounds()
	if err := writeTxtHeader(w, min, max); err != nil {
		return err
	}
	rng := newRand(c.Seed)
	bw := bufio.NewWriter(w)
	cells := c.Cells()
	for i := 0; i < cells; i++ {
		for j := 0; j < cells; j++ {
			xr := Interval{Min: float64(i) + cellInset, Max: float64(i) + 1 - cellInset}
			yr := Interval{Min: float64(j) + cellInset, Max: float64(j) + 1 - cellInset}
			for k := 0; k < c.BucketSize; k++ {
				if err := writePoint(bw, xr.sample(rng), yr.sample(rng), c.Z.sample(rng)); err != nil {
					return err
				}
			}
		}
	}
	return bw.Flush()
}

// GenerateFile writes the fixture to path, creating or truncating it.
func (c GridConfig) GenerateFile(path string) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	return c.Generate(f)
}

func (iv Interval) sample(rng *rand.Rand) float64 {
	return iv.Min + rng.Float64()*(iv.Max-iv.Min)
}

func newRand(seed int64) *rand.Rand {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return rand.New(rand.NewSource(seed))
}
