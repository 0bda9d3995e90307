// Command matcalc evaluates one matrix job file and prints the result.
//
//	matcalc [-config file] <job-file>
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/katalvlaran/densemat/internal/config"
	"github.com/katalvlaran/densemat/internal/job"
	"github.com/katalvlaran/densemat/internal/render"
)

var errUsage = errors.New("usage: matcalc [-config file] <job-file>")

func main() {
	log.SetFlags(0)
	log.SetPrefix("matcalc: ")

	if err := run(os.Args[1:], os.Stdout); err != nil {
		if errors.Is(err, errUsage) || errors.Is(err, flag.ErrHelp) {
			os.Exit(2)
		}
		log.Fatal(err)
	}
}

// run parses args, evaluates the job and writes the rendered result to stdout.
// Errors carry the failing stage as prefix: "config: ...", "load: ...", "run: ...".
func run(args []string, stdout io.Writer) error {
	fs := flag.NewFlagSet("matcalc", flag.ContinueOnError)
	cfgPath := fs.String("config", "", "config file (default $MATCALC_CONFIG or ~/.config/matcalc/config)")
	fs.Usage = func() {
		fmt.Fprintln(fs.Output(), errUsage)
		fs.PrintDefaults()
	}
	if err := fs.Parse(args); err != nil {
		return err
	}
	if fs.NArg() != 1 {
		fs.Usage()
		return errUsage
	}

	cfg, err := config.Load(*cfgPath)
	if err != nil {
		return fmt.Errorf("config: %w", err)
	}

	j, err := job.Load(fs.Arg(0))
	if err != nil {
		return fmt.Errorf("load: %w", err)
	}

	res, err := j.Run()
	if err != nil {
		return fmt.Errorf("run: %w", err)
	}

	switch res.Kind {
	case job.KindScalar:
		_, err = fmt.Fprintln(stdout, render.Scalar(string(j.Op), res.Scalar, cfg.Display))
	case job.KindBool:
		_, err = fmt.Fprintln(stdout, render.Bool(string(j.Op), res.Bool, cfg.Display))
	default:
		_, err = fmt.Fprintln(stdout, render.Matrix(res.Matrix, cfg.Display))
	}

	return err
}
