package main

import (
	"fmt"
	"lidargen/pkg/lidar"

	"github.com/spf13/cobra"
)

var cfg struct {
	count      int
	xMin, xMax float64
	yMin, yMax float64
	zMin, zMax float64
	seed       int64
	out        string
}

var cmd = &cobra.Command{
	Use:   "rand-lidar",
	Short: "generate a lidar txt fixture with uniformly random points",
	RunE: func(cmd *cobra.Command, args []string) (err error) {
		return genUniform()
	},
}

func init() {
	def := lidar.DefaultUniformConfig()
	cmd.PersistentFlags().IntVarP(&cfg.count, "count", "n", def.Count, "number of points")
	cmd.PersistentFlags().Float64Var(&cfg.xMin, "x-min", def.X.Min, "x range min")
	cmd.PersistentFlags().Float64Var(&cfg.xMax, "x-max", def.X.Max, "x range max")
	cmd.PersistentFlags().Float64Var(&cfg.yMin, "y-min", def.Y.Min, "y range min")
	cmd.PersistentFlags().Float64Var(&cfg.yMax, "y-max", def.Y.Max, "y range max")
	cmd.PersistentFlags().Float64Var(&cfg.zMin, "z-min", def.Z.Min, "z range min")
	cmd.PersistentFlags().Float64Var(&cfg.zMax, "z-max", def.Z.Max, "z range max")
	cmd.PersistentFlags().Int64Var(&cfg.seed, "seed", 0, "random seed (0 picks a time based seed)")
	cmd.PersistentFlags().StringVarP(&cfg.out, "out", "o", "rand.txt", "output file")
}

func main() {
	if err := cmd.Execute(); err != nil {
		panic(err)
	}
}

func genUniform() error {
	c := lidar.UniformConfig{
		Count: cfg.count,
		X:     lidar.Interval{Min: cfg.xMin, Max: cfg.xMax},
		Y:     lidar.Interval{Min: cfg.yMin, Max: cfg.yMax},
		Z:     lidar.Interval{Min: cfg.zMin, Max: cfg.zMax},
		Seed:  cfg.seed,
	}
	if err := c.GenerateFile(cfg.out); err != nil {
		return err
	}
	fmt.Printf("GenerateUniform %d points => %s\n", c.Count, cfg.out)
	return nil
}
