// This defines a basic executable that prints a generated maze.
package main

import (
	"flag"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/beka-birhanu/mazegen/config"
	logger "github.com/beka-birhanu/mazegen/infrastruture/log"
	"github.com/beka-birhanu/mazegen/maze"
)

func run(args []string, stdout, stderr io.Writer) int {
	var width, height int
	var seed int64
	var seedSet bool
	var algorithm string

	flags := flag.NewFlagSet("mazegen", flag.ContinueOnError)
	flags.SetOutput(stderr)
	flags.StringVar(&algorithm, "algorithm", maze.SideWinderName,
		"The generator to use: "+strings.Join(maze.AlgorithmNames(), ", ")+".")
	flags.IntVar(&width, "width", 10, "The width of the maze, in cells.")
	flags.IntVar(&height, "height", 10, "The height of the maze, in cells.")
	flags.Func("seed", "If set, the random seed to use (any int64).",
		func(s string) error {
			v, err := strconv.ParseInt(s, 10, 64)
			if err != nil {
				return err
			}
			seed, seedSet = v, true
			return nil
		})
	if err := flags.Parse(args); err != nil {
		return 1
	}

	cliLogger, err := logger.New("MAZEGEN", config.ColorMagenta, stderr)
	if err != nil {
		fmt.Fprintf(stderr, "creating logger: %s\n", err)
		return 1
	}

	if width < 1 || height < 1 {
		cliLogger.Error("width and height must be at least 1")
		return 1
	}

	var opts []maze.Option
	if seedSet {
		opts = append(opts, maze.WithSeed(seed))
	}
	m, err := maze.Create(algorithm, width, height, opts...)
	if err != nil {
		cliLogger.Error(fmt.Sprintf("generating maze: %s", err))
		return 1
	}

	fmt.Fprint(stdout, m)
	cliLogger.Info(fmt.Sprintf("carved with seed %d", m.Seed()))
	return 0
}

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}
