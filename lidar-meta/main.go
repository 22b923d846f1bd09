// Command lidar-meta reports statistics for lidar txt fixtures. It reads
// one JSON request per line from stdin and writes one JSON result per line
// to stdout, so a test harness can keep a single process open and query
// many files.
package main

import (
	"encoding/json"
	"errors"
	"io"
	"os"

	"lidargen/pkg/lidar"

	"github.com/seqsense/pcgol/mat"
)

type Request struct {
	TxtFile  string
	CellSize float64 // XY coverage cell size, defaults to 1
}

type Result struct {
	Error          string `json:",omitempty"`
	PointCount     int
	DeclaredMin    [3]float64
	DeclaredMax    [3]float64
	ExtentMin      mat.Vec3
	ExtentMax      mat.Vec3
	WithinDeclared bool
	CoverageXY     float64
}

func main() {
	Cal(os.Stdin, os.Stdout)
}

func Cal(r io.Reader, w io.Writer) {
	decoder := json.NewDecoder(r)
	encoder := json.NewEncoder(w)
	for {
		var req Request
		err := decoder.Decode(&req)
		if err != nil {
			if !errors.Is(err, io.EOF) {
				// A syntax error poisons the decoder, so report it and
				// stop rather than spin on the same error.
				encoder.Encode(Result{Error: err.Error()})
			}
			return
		}
		encoder.Encode(stat(req))
	}
}

func stat(req Request) (res Result) {
	f, err := os.Open(req.TxtFile)
	if err != nil {
		res.Error = err.Error()
		return
	}
	defer f.Close()
	cloud, err := lidar.DecodeTxt(f)
	if err != nil {
		res.Error = err.Error()
		return
	}

	res.PointCount = cloud.Len()
	res.DeclaredMin = [3]float64{cloud.Min.X, cloud.Min.Y, cloud.Min.Z}
	res.DeclaredMax = [3]float64{cloud.Max.X, cloud.Max.Y, cloud.Max.Z}
	res.ExtentMin, res.ExtentMax = cloud.Extent()
	res.WithinDeclared = withinDeclared(cloud)
	cell := req.CellSize
	if cell <= 0 {
		cell = 1
	}
	res.CoverageXY = cloud.CoverageXY(cell)
	return
}

func withinDeclared(c *lidar.Cloud) bool {
	for _, p := range c.Points {
		if p.X < c.Min.X || p.X > c.Max.X ||
			p.Y < c.Min.Y || p.Y > c.Max.Y ||
			p.Z < c.Min.Z || p.Z > c.Max.Z {
			return false
		}
	}
	return true
}
