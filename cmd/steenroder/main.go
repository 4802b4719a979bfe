// SPDX-License-Identifier: MIT

// Command steenroder computes the persistent barcode of Sq^k on degree-d
// cohomology for a filtered cell complex, per spec.md §6: it reads a
// boundary matrix (ASCII or binary; ASCII input may be pre-dualized), runs the
// steenroder pipeline, and writes the resulting cohomology and Steenrod
// barcodes (ASCII or binary).
package main

import (
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/rs/zerolog"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/steenroder/ioformat"
	"github.com/katalvlaran/steenroder/matrix"
	"github.com/katalvlaran/steenroder/steenroder"
)

var log = zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339}).With().Timestamp().Logger()

func main() {
	if err := run(os.Args[1:]); err != nil {
		log.Error().Err(err).Msg("steenroder failed")
		os.Exit(1)
	}
}

// options holds the resolved CLI configuration, recorded verbatim into the
// run manifest when -r is set.
type options struct {
	InputPath    string `yaml:"input_path"`
	OutputPrefix string `yaml:"output_prefix"`
	Dim          int    `yaml:"dim"`
	K            int    `yaml:"k"`
	Binary       bool   `yaml:"binary"`
	Dual         bool   `yaml:"dual"`
	Reps         bool   `yaml:"reps"`
	NCells       int    `yaml:"n_cells"`
	NDimensions  int    `yaml:"n_dimensions"`
	CohomBars    int    `yaml:"cohomology_bars"`
	SteenrodBars int    `yaml:"steenrod_bars"`
}

func run(args []string) error {
	fs := flag.NewFlagSet("steenroder", flag.ContinueOnError)
	dim := fs.Int("d", 1, "degree d")
	fs.IntVar(dim, "dim", 1, "degree d")
	k := fs.Int("k", 1, "Steenrod index k")
	reps := fs.Bool("r", false, "emit representatives and a run manifest")
	fs.BoolVar(reps, "reps", false, "emit representatives and a run manifest")
	binary := fs.Bool("binary", false, "read/write the binary wire format instead of ASCII")
	dual := fs.Bool("dual", false, "interpret ASCII input as already anti-transposed (ignored with -binary)")
	help := fs.Bool("h", false, "usage")
	fs.BoolVar(help, "help", false, "usage")

	if err := fs.Parse(args); err != nil {
		return err
	}
	if *help {
		fs.Usage()
		return nil
	}

	positional := fs.Args()
	if len(positional) < 2 {
		fs.Usage()
		return fmt.Errorf("steenroder: expected input path and output prefix, got %d positional args", len(positional))
	}

	opts := options{
		InputPath:    positional[0],
		OutputPrefix: positional[1],
		Dim:          *dim,
		K:            *k,
		Binary:       *binary,
		Dual:         *dual,
		Reps:         *reps,
	}

	return execute(opts)
}

func execute(opts options) error {
	in, err := os.Open(opts.InputPath)
	if err != nil {
		return fmt.Errorf("steenroder: open input %q: %w", opts.InputPath, err)
	}
	defer in.Close()

	log.Info().Str("path", opts.InputPath).Bool("binary", opts.Binary).Bool("dual", opts.Dual).Msg("loading boundary matrix")

	boundary, err := readBoundary(in, opts)
	if err != nil {
		return fmt.Errorf("steenroder: load boundary matrix: %w", err)
	}
	opts.NCells = boundary.NColumns()
	opts.NDimensions = int(boundary.NDimensions())

	log.Info().Int("cells", opts.NCells).Int8("dimensions", boundary.NDimensions()).Msg("computing barcodes")

	result, err := steenroder.Compute(boundary, int8(opts.Dim), int8(opts.K))
	if err != nil {
		return fmt.Errorf("steenroder: compute: %w", err)
	}
	result.Cohomology.Dualize(result.NCells)
	result.SteenrodBars.Dualize(result.NCells)
	opts.CohomBars = result.Cohomology.NBars()
	opts.SteenrodBars = result.SteenrodBars.NBars()

	log.Info().Int("cohomology_bars", opts.CohomBars).Int("steenrod_bars", opts.SteenrodBars).Msg("done")

	if err := writeBars(opts, result); err != nil {
		return fmt.Errorf("steenroder: write output: %w", err)
	}
	if opts.Reps {
		if err := writeRepresentatives(opts, result); err != nil {
			return fmt.Errorf("steenroder: write representatives: %w", err)
		}
		if err := writeManifest(opts); err != nil {
			return fmt.Errorf("steenroder: write manifest: %w", err)
		}
	}

	return nil
}

func readBoundary(in *os.File, opts options) (*matrix.Matrix, error) {
	switch {
	case opts.Binary:
		return ioformat.ReadMatrixBinary(in)
	case opts.Dual:
		return ioformat.ReadMatrixASCIIDual(in)
	default:
		return ioformat.ReadMatrixASCII(in)
	}
}

func writeBars(opts options, result *steenroder.Result) error {
	cohomPath := opts.OutputPrefix + "_cohomology" + extFor(opts)
	cohomFile, err := os.Create(cohomPath)
	if err != nil {
		return fmt.Errorf("create %q: %w", cohomPath, err)
	}
	defer cohomFile.Close()

	// result.Cohomology has already been Dualize()'d back into primal
	// birth/death labels, but its Dim() still reports the relative
	// (D-1-dim) dimension it was extracted with — flip it here so the
	// on-disk "# dim D" grouping matches the primal complex's own
	// dimensions.
	absDim := func(i int) int8 { return int8(opts.NDimensions) - 1 - result.Cohomology.Dim(i) }
	if opts.Binary {
		err = ioformat.WriteBarsBinary(cohomFile, result.Cohomology, absDim)
	} else {
		err = ioformat.WriteBarsASCII(cohomFile, result.Cohomology, absDim)
	}
	if err != nil {
		return err
	}

	steenrodPath := opts.OutputPrefix + "_steenrod" + extFor(opts)
	steenrodFile, err := os.Create(steenrodPath)
	if err != nil {
		return fmt.Errorf("create %q: %w", steenrodPath, err)
	}
	defer steenrodFile.Close()

	steenrodAbsDim := int8(opts.Dim+opts.K) // d+k, the degree every Steenrod bar shares
	dimOf := func(int) int8 { return steenrodAbsDim }
	if opts.Binary {
		return ioformat.WriteBarsBinary(steenrodFile, result.SteenrodBars, dimOf)
	}

	return ioformat.WriteBarsASCII(steenrodFile, result.SteenrodBars, dimOf)
}

// writeRepresentatives dumps each bar's persistent representative cycle as
// an auxiliary diagnostic matrix (spec.md §6's "<prefix>_<stage>.dat"),
// one column per bar, gated behind -r since most runs only want barcodes.
func writeRepresentatives(opts options, result *steenroder.Result) error {
	cohomDims := make([]int8, result.Cohomology.NBars())
	cohomMatrix := matrix.New(result.Cohomology.NBars())
	for i := 0; i < result.Cohomology.NBars(); i++ {
		cohomDims[i] = result.Cohomology.Dim(i)
		cohomMatrix.Append(result.Cohomology.Representative(i), cohomDims[i])
	}
	if err := dumpMatrix(opts, "cohomology_reps", cohomMatrix, matrix.NewView(cohomDims)); err != nil {
		return err
	}

	steenDims := make([]int8, result.SteenrodBars.NBars())
	steenMatrix := matrix.New(result.SteenrodBars.NBars())
	for i := 0; i < result.SteenrodBars.NBars(); i++ {
		steenDims[i] = result.SteenrodBars.Dim()
		steenMatrix.Append(result.SteenrodBars.Representative(i), steenDims[i])
	}

	return dumpMatrix(opts, "steenrod_reps", steenMatrix, matrix.NewView(steenDims))
}

func dumpMatrix(opts options, stage string, m *matrix.Matrix, view *matrix.View) error {
	path := opts.OutputPrefix + "_" + stage + extFor(opts)
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %q: %w", path, err)
	}
	defer f.Close()

	if opts.Binary {
		return ioformat.WriteMatrixBinary(f, m)
	}

	return ioformat.WriteMatrixASCII(f, m, view)
}

func writeManifest(opts options) error {
	manifestPath := opts.OutputPrefix + "_manifest.yaml"
	f, err := os.Create(manifestPath)
	if err != nil {
		return fmt.Errorf("create %q: %w", manifestPath, err)
	}
	defer f.Close()

	enc := yaml.NewEncoder(f)
	defer enc.Close()

	return enc.Encode(opts)
}

func extFor(opts options) string {
	if opts.Binary {
		return ".bin"
	}

	return ".txt"
}
