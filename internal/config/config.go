// Package config holds app-wide settings unmarshalled from Viper: built-in
// defaults, then an optional headloop.yaml, then HEADLOOP_* environment
// variables, then any bound flags.
package config

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"

	"headloop-core/headloop"
	"headloop-core/thermo"
)

// DesignSettings are the tag-search parameters.
type DesignSettings struct {
	// nucleotide length of every candidate tag
	TagLength int `mapstructure:"tag-length"`

	// context bases skipped before offset-tag windows
	OffsetShift int `mapstructure:"offset-shift"`

	// max Tm difference (°C) for a tag to count as matched
	ToleranceC float64 `mapstructure:"tolerance"`
}

// ReactionSettings are the wet-lab conditions fed to the Tm model.
// Concentrations accept unit suffixes: "1uM", "50mM", "1.5mM".
type ReactionSettings struct {
	PrimerConc string `mapstructure:"primer-conc"`
	Na         string `mapstructure:"na"`
	Mg         string `mapstructure:"mg"`
}

// Settings is the root-level settings struct.
type Settings struct {
	Design   DesignSettings   `mapstructure:"design"`
	Reaction ReactionSettings `mapstructure:"reaction"`

	// output format: text | json | fasta
	Output string `mapstructure:"output"`
}

// New returns a viper instance with defaults, env and optional file merged.
func New(cfgFile string) (*viper.Viper, error) {
	v := viper.New()

	v.SetDefault("design.tag-length", headloop.DefaultTagLength)
	v.SetDefault("design.offset-shift", headloop.DefaultOffsetShift)
	v.SetDefault("design.tolerance", headloop.DefaultToleranceC)
	v.SetDefault("reaction.primer-conc", "1uM")
	v.SetDefault("reaction.na", "50mM")
	v.SetDefault("reaction.mg", "1.5mM")
	v.SetDefault("output", "text")

	v.SetEnvPrefix("HEADLOOP")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	v.AutomaticEnv()

	if cfgFile != "" {
		v.SetConfigFile(cfgFile)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("config: read %s: %w", cfgFile, err)
		}
	} else {
		v.SetConfigName("headloop")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		if err := v.ReadInConfig(); err != nil {
			if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
				return nil, fmt.Errorf("config: %w", err)
			}
		}
	}
	return v, nil
}

// Load unmarshals the merged settings.
func Load(v *viper.Viper) (Settings, error) {
	var s Settings
	if err := v.Unmarshal(&s); err != nil {
		return s, fmt.Errorf("config: unmarshal: %w", err)
	}
	return s, nil
}

// DesignConfig converts settings to the core design parameters.
func (s Settings) DesignConfig() headloop.Config {
	return headloop.Config{
		TagLength:   s.Design.TagLength,
		OffsetShift: s.Design.OffsetShift,
		ToleranceC:  s.Design.ToleranceC,
	}
}

// Conditions parses the reaction concentrations.
func (s Settings) Conditions() (thermo.Conditions, error) {
	ct, err := thermo.ParseConc(s.Reaction.PrimerConc)
	if err != nil {
		return thermo.Conditions{}, fmt.Errorf("primer-conc: %w", err)
	}
	na, err := thermo.ParseConc(s.Reaction.Na)
	if err != nil {
		return thermo.Conditions{}, fmt.Errorf("na: %w", err)
	}
	mg, err := thermo.ParseConc(s.Reaction.Mg)
	if err != nil {
		return thermo.Conditions{}, fmt.Errorf("mg: %w", err)
	}
	return thermo.Conditions{PrimerTotalM: ct, NaM: na, MgM: mg}, nil
}
