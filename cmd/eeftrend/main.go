// Command eeftrend extracts a smooth trend from a CSV time series.
//
// Usage:
//
//	eeftrend [flags] [input.csv]
//
// The input is a headerless CSV with either one column (values over
// unit-step coordinates) or two columns (coordinate, value). Without an
// input file it reads stdin. The output is a four-column CSV
// x,y,trend,diff on stdout.
//
// Examples:
//
//	eeftrend series.csv
//	eeftrend -method partition -levels 5 series.csv
//	eeftrend -depend second-deriv -order 2 series.csv
//	eeftrend -stats series.csv > detrended.csv
package main

import (
	"encoding/csv"
	"flag"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/cwbudde/algo-trend/measure/residual"
	"github.com/cwbudde/algo-trend/trend/eef"
)

var dependNames = map[string]eef.DependOn{
	"value":            eef.DependValue,
	"first-deriv":      eef.DependFirstDeriv,
	"second-deriv":     eef.DependSecondDeriv,
	"abs-value":        eef.DependAbsValue,
	"abs-first-deriv":  eef.DependAbsFirstDeriv,
	"abs-second-deriv": eef.DependAbsSecondDeriv,
}

func main() {
	method := flag.String("method", "extrema", "selection method: extrema or partition")
	depend := flag.String("depend", "", "driving signal (default: first-deriv, or abs-first-deriv for partition)")
	levels := flag.Int("levels", 4, "split depth for the partition method")
	order := flag.Int("order", 3, "polynomial order of the trend, 0..4")
	stats := flag.Bool("stats", false, "print residual statistics to stderr")
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: eeftrend [flags] [input.csv]\n\n")
		fmt.Fprintf(os.Stderr, "Extracts a smooth trend from a one- or two-column CSV series\n")
		fmt.Fprintf(os.Stderr, "and writes x,y,trend,diff CSV to stdout.\n\n")
		fmt.Fprintf(os.Stderr, "Flags:\n")
		flag.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nExamples:\n")
		fmt.Fprintf(os.Stderr, "  eeftrend series.csv\n")
		fmt.Fprintf(os.Stderr, "  eeftrend -method partition -levels 5 series.csv\n")
		fmt.Fprintf(os.Stderr, "  eeftrend -depend second-deriv -order 2 series.csv\n")
	}
	flag.Parse()

	in := os.Stdin
	if flag.NArg() > 0 {
		f, err := os.Open(flag.Arg(0))
		if err != nil {
			fatal(err)
		}
		defer f.Close()
		in = f
	}

	xs, ys, err := readSeries(in)
	if err != nil {
		fatal(err)
	}

	opts := []eef.Option{eef.WithPolyOrder(*order)}
	if *depend != "" {
		d, ok := dependNames[*depend]
		if !ok {
			fatal(fmt.Errorf("unknown -depend value %q", *depend))
		}
		opts = append(opts, eef.WithDependOn(d))
	}

	var res eef.Result
	switch *method {
	case "extrema":
		res, err = eef.Extrema(xs, ys, opts...)
	case "partition":
		res, err = eef.Partition(xs, ys, *levels, opts...)
	default:
		err = fmt.Errorf("unknown -method value %q", *method)
	}
	if err != nil {
		fatal(err)
	}

	if err := writeSeries(os.Stdout, xs, ys, res); err != nil {
		fatal(err)
	}

	if *stats {
		printStats(ys, res.Diff)
	}
}

// readSeries parses a headerless one- or two-column CSV. For one column
// it returns nil coordinates, selecting unit-step mode.
func readSeries(r io.Reader) (xs, ys []float64, err error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1

	records, err := cr.ReadAll()
	if err != nil {
		return nil, nil, fmt.Errorf("reading CSV: %w", err)
	}

	for i, rec := range records {
		switch len(rec) {
		case 1:
			v, err := strconv.ParseFloat(rec[0], 64)
			if err != nil {
				return nil, nil, fmt.Errorf("line %d: %w", i+1, err)
			}
			ys = append(ys, v)
		case 2:
			x, err := strconv.ParseFloat(rec[0], 64)
			if err != nil {
				return nil, nil, fmt.Errorf("line %d: %w", i+1, err)
			}
			y, err := strconv.ParseFloat(rec[1], 64)
			if err != nil {
				return nil, nil, fmt.Errorf("line %d: %w", i+1, err)
			}
			xs = append(xs, x)
			ys = append(ys, y)
		default:
			return nil, nil, fmt.Errorf("line %d: expected 1 or 2 columns, got %d", i+1, len(rec))
		}
	}

	if len(xs) > 0 && len(xs) != len(ys) {
		return nil, nil, fmt.Errorf("mixed column counts in input")
	}

	return xs, ys, nil
}

func writeSeries(w io.Writer, xs, ys []float64, res eef.Result) error {
	cw := csv.NewWriter(w)

	for i := range ys {
		x := float64(i)
		if xs != nil {
			x = xs[i]
		}

		rec := []string{
			strconv.FormatFloat(x, 'g', -1, 64),
			strconv.FormatFloat(ys[i], 'g', -1, 64),
			strconv.FormatFloat(res.Trend[i], 'g', -1, 64),
			strconv.FormatFloat(res.Diff[i], 'g', -1, 64),
		}

		if err := cw.Write(rec); err != nil {
			return err
		}
	}

	cw.Flush()

	return cw.Error()
}

func printStats(ys, diff []float64) {
	s := residual.Analyze(diff)

	fmt.Fprintf(os.Stderr, "samples:        %d\n", s.Length)
	fmt.Fprintf(os.Stderr, "residual mean:  %.6g\n", s.Mean)
	fmt.Fprintf(os.Stderr, "residual RMS:   %.6g (%.2f dB)\n", s.RMS, s.RMS_dB)
	fmt.Fprintf(os.Stderr, "residual peak:  %.6g (%.2f dB)\n", s.Peak, s.Peak_dB)
	fmt.Fprintf(os.Stderr, "zero crossings: %d\n", s.ZeroCrossings)

	if ratio, err := residual.TrendRatio(ys, diff); err == nil {
		fmt.Fprintf(os.Stderr, "residual/signal RMS: %.4f\n", ratio)
	}
}

func fatal(err error) {
	fmt.Fprintf(os.Stderr, "error: %v\n", err)
	os.Exit(1)
}
