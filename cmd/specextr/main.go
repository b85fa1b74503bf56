// Command specextr runs box extraction and profile trend fitting on a
// synthetic long-slit spectrum and prints the result.
//
// Usage:
//
//	specextr [flags]
//
// Examples:
//
//	specextr
//	specextr -nwave 200 -nx 40 -x1 10 -x2 30 -bad 12 -interp
//	specextr -deg 3 -plot profile.png -log debug
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"text/tabwriter"

	"go.uber.org/zap"

	"github.com/cwbudde/algo-spectro/internal/diag"
	"github.com/cwbudde/algo-spectro/internal/logger"
	"github.com/cwbudde/algo-spectro/spectro/core"
	"github.com/cwbudde/algo-spectro/spectro/extract"
	"github.com/cwbudde/algo-spectro/spectro/trend"
)

type options struct {
	nwave, nx int
	x1, x2    int
	deg       int
	bad       int
	seed      int64
	interp    bool
	col       int
	rows      int
	plot      string
	verbose   int
}

var errNoRows = errors.New("specextr: nothing to print, -rows must be > 0")

func main() {
	var o options
	flag.IntVar(&o.nwave, "nwave", 100, "number of wavelength rows")
	flag.IntVar(&o.nx, "nx", 50, "number of spatial columns")
	flag.IntVar(&o.x1, "x1", 10, "first column of the extraction window")
	flag.IntVar(&o.x2, "x2", 40, "end column (exclusive) of the extraction window")
	flag.IntVar(&o.deg, "deg", trend.DefaultDegree, "degree of the profile trend polynomial")
	flag.IntVar(&o.bad, "bad", 8, "number of hot pixels to inject")
	flag.Int64Var(&o.seed, "seed", 1, "random seed for noise and hot pixels")
	flag.BoolVar(&o.interp, "interp", false, "interpolate over bad pixels before summing")
	flag.IntVar(&o.col, "col", -1, "spatial column whose profile is fitted (default: window centre)")
	flag.IntVar(&o.rows, "rows", 10, "number of evenly spaced rows to print")
	flag.StringVar(&o.plot, "plot", "", "write a plot of the profile fit to this file (png, svg, pdf)")
	flag.IntVar(&o.verbose, "v", 1, "verbosity of the summary (0 = table only)")
	level := flag.String("log", "warn", "log level (debug, info, warn, error)")
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: specextr [flags]\n\n")
		fmt.Fprintf(os.Stderr, "Box-extracts a synthetic long-slit spectrum and fits the spatial profile trend.\n\n")
		fmt.Fprintf(os.Stderr, "Flags:\n")
		flag.PrintDefaults()
	}
	flag.Parse()

	log, err := logger.New(logger.LogLevel(*level))
	if err != nil {
		diag.Fatal(fmt.Errorf("build logger: %w", err), os.Stderr)
	}
	defer func() { _ = log.Sync() }()

	if err := run(o, os.Stdout, log.Sugar()); err != nil {
		_ = log.Sync()
		diag.Fatal(err, os.Stderr)
	}
}

func run(o options, w io.Writer, log *zap.SugaredLogger) error {
	if o.rows <= 0 {
		return errNoRows
	}
	if o.col < 0 {
		o.col = (o.x1 + o.x2) / 2
	}
	if o.col < 0 || o.col >= o.nx || o.nwave <= 0 {
		return fmt.Errorf("%w: column %d outside image of %d x %d",
			core.ErrInvalidBounds, o.col, o.nwave, o.nx)
	}

	log.Debugf("building scene %dx%d with %d hot pixels (seed %d)", o.nwave, o.nx, o.bad, o.seed)
	sc := newScene(o.nwave, o.nx, o.bad, o.seed)

	stdspec, stdvar, err := extract.Box(sc.data, o.x1, o.x2,
		extract.WithVariance(sc.variance),
		extract.WithMask(sc.mask),
		extract.WithInterpolation(o.interp),
	)
	if err != nil {
		return fmt.Errorf("box extraction: %w", err)
	}
	log.Infof("extracted %d rows over columns [%d, %d)", len(stdspec), o.x1, o.x2)

	xvals := make([]float64, o.nwave)
	for i := range xvals {
		xvals[i] = float64(i)
	}
	data, variance := sc.column(o.col)

	est, coeff, err := trend.Fit(xvals, data, variance, stdspec, o.deg)
	if err != nil {
		return fmt.Errorf("profile fit: %w", err)
	}
	log.Infof("profile column %d coefficients %v", o.col, coeff)

	fiteval, err := trend.Evaluate(xvals, coeff, data, variance, stdspec)
	if err != nil {
		return fmt.Errorf("profile evaluation: %w", err)
	}

	if err := diag.Print(w, o.verbose, summary(o, coeff, variance), 0); err != nil {
		return err
	}
	if err := printTable(w, o.rows, stdspec, stdvar, core.Ratio(nil, data, stdspec), fiteval); err != nil {
		return err
	}

	if o.plot != "" {
		if err := savePlot(o.plot, o.col, xvals, core.Ratio(nil, data, stdspec), est); err != nil {
			return err
		}
		log.Infof("wrote %s", o.plot)
	}

	return nil
}

func summary(o options, coeff, variance []float64) string {
	masked := 0
	for _, v := range variance {
		if v == 0 {
			masked++
		}
	}
	return fmt.Sprintf("Box extraction of a %d x %d image over columns [%d, %d), interpolation %t.\n"+
		"Profile of column %d fitted with a degree %d polynomial %v; %d masked samples keep their raw ratio.",
		o.nwave, o.nx, o.x1, o.x2, o.interp, o.col, o.deg, coeff, masked)
}

func printTable(w io.Writer, rows int, stdspec, stdvar, ratio, fiteval []float64) error {
	step := len(stdspec) / rows
	if step < 1 {
		step = 1
	}

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	if _, err := fmt.Fprintf(tw, "Row\tFlux\tVariance\tData/Spec\tTrend\n---\t----\t--------\t---------\t-----\n"); err != nil {
		return fmt.Errorf("write header: %w", err)
	}
	for i := 0; i < len(stdspec); i += step {
		if _, err := fmt.Fprintf(tw, "%d\t%.4f\t%.4f\t%.6f\t%.6f\n", i, stdspec[i], stdvar[i], ratio[i], fiteval[i]); err != nil {
			return fmt.Errorf("write row: %w", err)
		}
	}
	return tw.Flush()
}
