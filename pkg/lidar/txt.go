// Package lidar reads, writes and synthesizes lidar point clouds in the
// plain text format produced by LAStools' las2txt:
//
//	% min x y z          0.01 0.01 50
//	% max x y z          499.99 499.99 100
//	37.53 467.79 62.40
//	...
//
// Each point line carries three space separated coordinates with two
// fractional digits and a trailing space.
package lidar

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
)

var (
	ErrInvalidTxtHeader = errors.New("invalid lidar txt header")
	ErrInvalidTxtPoint  = errors.New("invalid lidar txt point line")
)

// DecodeTxt reads a lidar txt file. Any number of leading '%' header lines
// is accepted; the "min x y z" and "max x y z" lines set the declared
// bounds and unrecognized header lines are skipped. Every remaining
// non-blank line must hold exactly three numbers.
func DecodeTxt(r io.Reader) (*Cloud, error) {
	bio := bufio.NewReader(r)
	cloud := &Cloud{Points: []Point{}}
	for {
		line, rerr := bio.ReadString('\n')
		l := strings.TrimSuffix(line, "\n")
		if strings.TrimSpace(l) != "" {
			var err error
			if strings.HasPrefix(l, "%") {
				err = cloud.parseHeaderLine(l)
			} else {
				err = cloud.parsePointLine(l)
			}
			if err != nil {
				return nil, err
			}
		}
		if rerr != nil {
			if errors.Is(rerr, io.EOF) {
				return cloud, nil
			}
			return nil, rerr
		}
	}
}

func (c *Cloud) parseHeaderLine(l string) error {
	fs := strings.Fields(l)
	if len(fs) != 8 || fs[2] != "x" || fs[3] != "y" || fs[4] != "z" {
		// Tolerated, as in las2txt consumers: unknown header lines are
		// comments.
		return nil
	}
	var p Point
	for i, v := range []*float64{&p.X, &p.Y, &p.Z} {
		f, err := strconv.ParseFloat(fs[5+i], 64)
		if err != nil {
			return fmt.Errorf("%w: %q", ErrInvalidTxtHeader, l)
		}
		*v = f
	}
	switch fs[1] {
	case "min":
		c.Min = p
	case "max":
		c.Max = p
	}
	return nil
}

func (c *Cloud) parsePointLine(l string) error {
	fs := strings.Fields(l)
	if len(fs) != 3 {
		return fmt.Errorf("%w: %q", ErrInvalidTxtPoint, l)
	}
	var p Point
	for i, v := range []*float64{&p.X, &p.Y, &p.Z} {
		f, err := strconv.ParseFloat(fs[i], 64)
		if err != nil {
			return fmt.Errorf("%w: %q", ErrInvalidTxtPoint, l)
		}
		*v = f
	}
	c.AddPoint(p)
	return nil
}

// Encode writes the cloud back out in lidar txt form, declared bounds
// first.
func (c *Cloud) Encode(w io.Writer) error {
	if err := writeTxtHeader(w, c.Min, c.Max); err != nil {
		return err
	}
	bw := bufio.NewWriter(w)
	for _, p := range c.Points {
		if err := writePoint(bw, p.X, p.Y, p.Z); err != nil {
			return err
		}
	}
	return bw.Flush()
}

// Header values use the shortest decimal form, so integral bounds print
// without a fractional part. The padding after "z" is part of the format.
func writeTxtHeader(w io.Writer, min, max Point) error {
	if _, err := fmt.Fprintf(w, "%% min x y z          %s %s %s\n",
		ftoa(min.X), ftoa(min.Y), ftoa(min.Z)); err != nil {
		return err
	}
	_, err := fmt.Fprintf(w, "%% max x y z          %s %s %s\n",
		ftoa(max.X), ftoa(max.Y), ftoa(max.Z))
	return err
}

func writePoint(w io.Writer, x, y, z float64) error {
	_, err := fmt.Fprintf(w, "%.2f %.2f %.2f \n", x, y, z)
	return err
}

func ftoa(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
