/*
Command pimquery loads a point file, builds a distributed R-tree index over it
and answers one point-membership query, both on the host and on the
execution units.

	pimquery -points gaussian_data_points_1M.csv -x 4792855 -y 6027188 -units 8

By default the record budget of an execution unit is unbounded; -maxnodes
sets a limit, and assignment fails if a unit's share of the tree exceeds it.

_________________________________________________________________________

# BSD 3-Clause License

# Copyright (c) Norbert Pillmayer

Please refer to the LICENSE file for details.
*/
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/fatih/color"
	"github.com/npillmayer/pimrtree"
	"github.com/npillmayer/pimrtree/flat"
	"github.com/npillmayer/pimrtree/geom"
	"github.com/npillmayer/pimrtree/pointfile"
	"github.com/npillmayer/pimrtree/rtree"
	"github.com/npillmayer/pimrtree/unit"
	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
	"golang.org/x/term"
)

type options struct {
	points   string
	max      int
	query    geom.Point
	units    int
	workers  int
	policy   string
	capacity int
	maxNodes int
	timeout  time.Duration
	dot      string
	dump     bool
	verbose  bool
}

func main() {
	opts := parseFlags()
	if err := run(opts); err != nil {
		fmt.Fprintf(os.Stderr, "pimquery: %v\n", err)
		os.Exit(1)
	}
}

func parseFlags() options {
	var opts options
	bindFlags(flag.CommandLine, &opts)
	flag.Parse()
	if opts.points == "" {
		flag.Usage()
		os.Exit(2)
	}
	return opts
}

// bindFlags declares all command line flags on fs, storing into opts.
func bindFlags(fs *flag.FlagSet, opts *options) {
	fs.StringVar(&opts.points, "points", "", "point file, one \"x, y\" per line (required)")
	fs.IntVar(&opts.max, "max", 1_000_000, "maximum number of points to read, 0 for all")
	fs.Float64Var(&opts.query.X, "x", 0, "x coordinate of the query point")
	fs.Float64Var(&opts.query.Y, "y", 0, "y coordinate of the query point")
	fs.IntVar(&opts.units, "units", pimrtree.DefaultUnits, "number of execution units")
	fs.IntVar(&opts.workers, "workers", pimrtree.DefaultWorkers, "workers per execution unit")
	fs.StringVar(&opts.policy, "policy", rtree.PolicyBounded.String(), "split policy: bounded or uniform")
	fs.IntVar(&opts.capacity, "capacity", flat.DefaultCapacity, "entry slots per flat record")
	fs.IntVar(&opts.maxNodes, "maxnodes", 0, "record budget per execution unit, 0 for no bound")
	fs.DurationVar(&opts.timeout, "timeout", 0, "time to wait for execution units, 0 waits indefinitely")
	fs.StringVar(&opts.dot, "dot", "", "write the host tree in Graphviz DOT format to this file")
	fs.BoolVar(&opts.dump, "dump", false, "print host tree and flat unit trees")
	fs.BoolVar(&opts.verbose, "v", false, "trace pipeline steps")
}

func run(opts options) error {
	color.NoColor = !term.IsTerminal(int(os.Stdout.Fd()))
	found := color.New(color.FgGreen).SprintFunc()
	notFound := color.New(color.FgRed).SprintFunc()
	timing := color.New(color.FgBlue).PrintfFunc()
	if opts.verbose {
		gtrace.CoreTracer.SetTraceLevel(tracing.LevelInfo)
	}
	//
	points, err := pointfile.Load(opts.points, opts.max)
	if err != nil {
		return err
	}
	cfg, err := configure(opts)
	if err != nil {
		return err
	}
	//
	start := time.Now()
	ix, err := pimrtree.New(points, cfg)
	if err != nil {
		return err
	}
	timing("R-tree construction time: %v\n", time.Since(start))
	fmt.Printf("%d points, %v\n", ix.Len(), rtree.Describe(ix.Root()))
	if opts.dot != "" {
		if err := writeDot(opts.dot, ix.Root()); err != nil {
			return err
		}
	}
	if opts.dump {
		if err := rtree.Dump(os.Stdout, ix.Root()); err != nil {
			return err
		}
	}
	//
	start = time.Now()
	onHost := ix.Contains(opts.query)
	elapsed := time.Since(start)
	if onHost {
		fmt.Printf("Query point %v %s in R-tree on host\n", opts.query, found("FOUND"))
	}
	timing("Time taken to search the point on host: %v\n", elapsed)
	//
	assignments, err := ix.Assign()
	if err != nil {
		return err
	}
	fmt.Printf("Allocated %d execution unit(s)\n", len(assignments))
	if opts.dump {
		if err := dumpAssignments(assignments); err != nil {
			return err
		}
	}
	start = time.Now()
	answer, err := ix.Query(context.Background(), opts.query, unit.LocalExecutor{})
	if err != nil {
		return err
	}
	timing("Execution unit time: %v\n", time.Since(start))
	for _, id := range answer.Units {
		fmt.Printf("Query point %v %s in R-tree on unit %d\n", opts.query, found("FOUND"), id)
	}
	if !answer.Found {
		fmt.Printf("Query point %v %s\n", opts.query, notFound("NOT FOUND"))
	}
	if answer.Found != onHost {
		return fmt.Errorf("host and execution units disagree for %v (run %s)", opts.query, answer.Run)
	}
	return nil
}

// configure maps command line options onto an index configuration.
func configure(opts options) (pimrtree.Config, error) {
	policy, err := rtree.ParsePolicy(opts.policy)
	if err != nil {
		return pimrtree.Config{}, err
	}
	cfg := pimrtree.DefaultConfig()
	cfg.Tree.Policy = policy
	cfg.Flat.Capacity = opts.capacity
	cfg.Flat.MaxNodes = opts.maxNodes
	cfg.Units = opts.units
	cfg.Workers = opts.workers
	cfg.UnitTimeout = opts.timeout
	return cfg, cfg.Validate()
}

func writeDot(path string, root rtree.Node) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := rtree.ToDot(f, root); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

func dumpAssignments(assignments []pimrtree.Assignment) error {
	for _, a := range assignments {
		if a.Idle() {
			fmt.Printf("Unit %d: idle\n", a.Unit)
			continue
		}
		fmt.Printf("Unit %d: subtrees at %v, %d records, %d bytes\n", a.Unit, a.Positions, a.Nodes, len(a.Blob))
		ft, err := flat.Decode(a.Blob)
		if err != nil {
			return err
		}
		if err := ft.Dump(os.Stdout); err != nil {
			return err
		}
	}
	return nil
}
