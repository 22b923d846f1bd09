package lidar

import (
	"math"

	"github.com/seqsense/pcgol/mat"
	"github.com/seqsense/pcgol/pc"
)

// Point is a single measurement. Coordinates are kept as float64 and are
// rounded to two decimals only when written out.
type Point struct {
	X, Y, Z float64
}

// Interval is a closed range on one axis.
type Interval struct {
	Min, Max float64
}

// Cloud is a decoded lidar txt file: the bounding box declared by the file
// header plus the point lines in file order. For gridded fixtures the
// declared box is the grid domain, which is slightly wider than the true
// point extent.
type Cloud struct {
	Min, Max Point
	Points   []Point
}

func (c *Cloud) AddPoint(pt Point) {
	c.Points = append(c.Points, pt)
}

// Cloud satisfies pc.Vec3RandomAccessor so decoded fixtures can be fed
// straight into pcgol consumers.
var _ pc.Vec3RandomAccessor = (*Cloud)(nil)

func (c *Cloud) Len() int {
	return len(c.Points)
}

func (c *Cloud) Vec3At(i int) mat.Vec3 {
	p := c.Points[i]
	return mat.Vec3{float32(p.X), float32(p.Y), float32(p.Z)}
}

func vec3Min(a, b mat.Vec3) mat.Vec3 {
	var out mat.Vec3
	for i := range out {
		if a[i] < b[i] {
			out[i] = a[i]
		} else {
			out[i] = b[i]
		}
	}
	return out
}

func vec3Max(a, b mat.Vec3) mat.Vec3 {
	var out mat.Vec3
	for i := range out {
		if a[i] > b[i] {
			out[i] = a[i]
		} else {
			out[i] = b[i]
		}
	}
	return out
}

// Extent returns the true min and max over the points, ignoring the
// declared header bounds. Zero vectors for an empty cloud.
func (c *Cloud) Extent() (min, max mat.Vec3) {
	if len(c.Points) == 0 {
		return
	}
	min = c.Vec3At(0)
	max = min
	for i := 1; i < len(c.Points); i++ {
		v := c.Vec3At(i)
		min = vec3Min(min, v)
		max = vec3Max(max, v)
	}
	return
}

// CoverageXY reports the area covered on the XY plane when it is cut into
// cellSize x cellSize cells and each cell holding at least one point counts
// in full.
func (c *Cloud) CoverageXY(cellSize float64) float64 {
	occupied := map[[2]int]struct{}{}
	for _, p := range c.Points {
		cell := [2]int{
			int(math.Floor(p.X / cellSize)),
			int(math.Floor(p.Y / cellSize)),
		}
		occupied[cell] = struct{}{}
	}
	return float64(len(occupied)) * cellSize * cellSize
}
