// Package cli defines the cobra command surface for the headloop binary.
package cli

import (
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"headloop/internal/version"
)

// Options holds all CLI flags.
type Options struct {
	// Inputs
	Forward     string
	Reverse     string
	Guide       string
	Orientation string

	// Design parameters (also settable via headloop.yaml / HEADLOOP_*)
	TagLength   int
	OffsetShift int
	Tolerance   float64

	// Reaction conditions
	PrimerConc string
	Na         string
	Mg         string

	// Output
	Output   string
	Pretty   bool
	NoHeader bool

	// Misc
	ConfigFile string
	Quiet      bool
}

// NewRootCmd builds the root command. run receives the parsed options once
// cobra has validated required flags.
func NewRootCmd(run func(cmd *cobra.Command, opts *Options) error) *cobra.Command {
	opts := &Options{}
	cmd := &cobra.Command{
		Use:   "headloop",
		Short: "Design headloop suppression PCR tags for a primer pair",
		Long: `Design headloop tags from a guide sequence plus flanking context and
prepend them to a PCR primer pair, so first-round amplicons of a known
haplotype fold back and suppress their own re-amplification.

The primer on the guide strand receives a reverse-complemented tag; the
opposite primer receives an offset tag. Tags are chosen by frameshift
search, minimizing the Tm difference against each primer.`,
		Example: `  headloop -f CTGGTCCAGTGCGTTATTGG -r AGCCAAATGCTTCTTGCTCTTTT \
      -g CTACAGGACGTACCTGCACCCGGATTCACCAGCGCCCG -o reverse
  headloop -f ... -r ... -g ... -o sense --output json`,
		Version:       version.Version,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd, opts)
		},
	}

	f := cmd.Flags()
	f.StringVarP(&opts.Forward, "forward", "f", "", "forward (sense) primer, 5'→3' [*]")
	f.StringVarP(&opts.Reverse, "reverse", "r", "", "reverse (antisense) primer, 5'→3' [*]")
	f.StringVarP(&opts.Guide, "guide", "g", "", "guide sequence plus >= 15 nt flanking context [*]")
	f.StringVarP(&opts.Orientation, "orientation", "o", "", "guide strand: forward|sense or reverse|antisense [*]")

	f.IntVar(&opts.TagLength, "tag-length", 0, "candidate tag length in nt [20]")
	f.IntVar(&opts.OffsetShift, "offset-shift", 0, "context bases skipped before offset-tag windows [12]")
	f.Float64Var(&opts.Tolerance, "tolerance", 0, "max |ΔTm| in °C for a matched tag [3]")

	f.StringVar(&opts.PrimerConc, "primer-conc", "", "total primer concentration [1uM]")
	f.StringVar(&opts.Na, "na", "", "monovalent cation concentration [50mM]")
	f.StringVar(&opts.Mg, "mg", "", "Mg2+ concentration [1.5mM]")

	f.StringVar(&opts.Output, "output", "", "output format: text | json | fasta [text]")
	f.BoolVar(&opts.Pretty, "pretty", false, "annotated per-primer block instead of TSV (text) [false]")
	f.BoolVar(&opts.NoHeader, "no-header", false, "suppress header line in text/TSV [false]")

	f.StringVar(&opts.ConfigFile, "config", "", "settings file (default ./headloop.yaml if present)")
	f.BoolVarP(&opts.Quiet, "quiet", "q", false, "log errors only [false]")

	for _, name := range []string{"forward", "reverse", "guide", "orientation"} {
		_ = cmd.MarkFlagRequired(name)
	}
	return cmd
}

// BindSettings overlays changed flags onto the viper settings, so flags win
// over file and environment values.
func BindSettings(v *viper.Viper, cmd *cobra.Command) error {
	binds := map[string]string{
		"design.tag-length":    "tag-length",
		"design.offset-shift":  "offset-shift",
		"design.tolerance":     "tolerance",
		"reaction.primer-conc": "primer-conc",
		"reaction.na":          "na",
		"reaction.mg":          "mg",
		"output":               "output",
	}
	for key, flag := range binds {
		pf := cmd.Flags().Lookup(flag)
		if pf == nil {
			continue
		}
		if pf.Changed {
			if err := v.BindPFlag(key, pf); err != nil {
				return err
			}
		}
	}
	return nil
}
