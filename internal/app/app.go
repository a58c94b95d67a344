// Package app wires cli, config, core and output into an argv → exit-code
// runner, so tests and main share one entry point.
package app

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"headloop-core/headloop"
	"headloop-core/seq"
	"headloop-core/thermo"
	"headloop/internal/cli"
	"headloop/internal/config"
	"headloop/internal/logx"
	"headloop/internal/output"
	"headloop/internal/pretty"
)

// Exit codes, teacher-style: 0 ok, 1 internal error, 2 bad usage or input,
// 3 output write failure.
const (
	ExitOK    = 0
	ExitError = 1
	ExitUsage = 2
	ExitWrite = 3
)

type exitErr struct {
	code int
	err  error
}

func (e *exitErr) Error() string { return e.err.Error() }
func (e *exitErr) Unwrap() error { return e.err }

// RunContext executes the CLI with the given argv and streams.
func RunContext(parent context.Context, argv []string, stdout, stderr io.Writer) int {
	cmd := cli.NewRootCmd(func(c *cobra.Command, opts *cli.Options) error {
		return runDesign(c, opts, stdout, stderr)
	})
	cmd.SetArgs(argv)
	cmd.SetOut(stdout)
	cmd.SetErr(stderr)

	if err := cmd.ExecuteContext(parent); err != nil {
		_, _ = fmt.Fprintln(stderr, "headloop:", err)
		var ee *exitErr
		if errors.As(err, &ee) {
			return ee.code
		}
		return ExitUsage // flag parsing / missing required flags
	}
	return ExitOK
}

// Run is RunContext with a background context.
func Run(argv []string, stdout, stderr io.Writer) int {
	return RunContext(context.Background(), argv, stdout, stderr)
}

func runDesign(cmd *cobra.Command, opts *cli.Options, stdout, stderr io.Writer) error {
	log := logx.New(stderr, opts.Quiet)

	v, err := config.New(opts.ConfigFile)
	if err != nil {
		return &exitErr{ExitUsage, err}
	}
	if err := cli.BindSettings(v, cmd); err != nil {
		return &exitErr{ExitError, err}
	}
	settings, err := config.Load(v)
	if err != nil {
		return &exitErr{ExitUsage, err}
	}

	cond, err := settings.Conditions()
	if err != nil {
		return &exitErr{ExitUsage, err}
	}
	orient, err := headloop.ParseOrientation(opts.Orientation)
	if err != nil {
		return &exitErr{ExitUsage, err}
	}
	cfg := settings.DesignConfig()

	log.Debug().
		Stringer("orientation", orient).
		Int("tag_length", cfg.TagLength).
		Int("offset_shift", cfg.OffsetShift).
		Float64("tolerance_c", cfg.ToleranceC).
		Msg("design parameters")

	res, err := headloop.Design(opts.Forward, opts.Reverse, opts.Guide, orient,
		cfg, headloop.NNOracle(cond))
	if err != nil {
		code := ExitError
		if isInputError(err) {
			code = ExitUsage
		}
		return &exitErr{code, err}
	}

	log.Info().
		Str("forward_tag", res.Forward.Tag.Seq).
		Float64("forward_diff_c", res.Forward.Tag.DiffC).
		Bool("forward_ok", res.Forward.Tag.WithinTolerance).
		Str("reverse_tag", res.Reverse.Tag.Seq).
		Float64("reverse_diff_c", res.Reverse.Tag.DiffC).
		Bool("reverse_ok", res.Reverse.Tag.WithinTolerance).
		Msg("design complete")

	format := settings.Output
	switch format {
	case "", "text", "json", "fasta":
	default:
		return &exitErr{ExitUsage, fmt.Errorf("unknown output format %q (want text|json|fasta)", format)}
	}

	rep := output.Report{Orientation: orient, Config: cfg, Result: res}
	if err := write(stdout, rep, format, opts); err != nil {
		return &exitErr{ExitWrite, err}
	}
	for _, side := range []struct {
		name string
		tag  headloop.TagResult
	}{{"forward", res.Forward.Tag}, {"reverse", res.Reverse.Tag}} {
		if w := pretty.Warning(side.name, side.tag, cfg.ToleranceC); w != "" {
			log.Warn().Msg(w)
		}
	}
	return nil
}

func write(w io.Writer, rep output.Report, format string, opts *cli.Options) error {
	switch format {
	case "", "text":
		if opts.Pretty {
			tol := rep.Config.ToleranceC
			if _, err := io.WriteString(w, pretty.Side("forward", rep.Result.Forward, tol)); err != nil {
				return err
			}
			_, err := io.WriteString(w, pretty.Side("reverse", rep.Result.Reverse, tol))
			return err
		}
		return output.WriteTSV(w, rep, !opts.NoHeader)
	case "json":
		return output.WriteJSON(w, rep)
	case "fasta":
		return output.WriteFASTA(w, rep)
	default:
		return fmt.Errorf("unknown output format %q", format)
	}
}

func isInputError(err error) bool {
	return errors.Is(err, seq.ErrInvalidSequence) ||
		errors.Is(err, headloop.ErrInvalidOrientation) ||
		errors.Is(err, headloop.ErrInsufficientContext) ||
		errors.Is(err, thermo.ErrTooShort)
}
