/*
Copyright © 2024 the DWCPN authors.
This file is part of DWCPN.

DWCPN is free software: you can redistribute it and/or modify
it under the terms of the GNU General Public License as published by
the Free Software Foundation, either version 3 of the License, or
(at your option) any later version.

DWCPN is distributed in the hope that it will be useful,
but WITHOUT ANY WARRANTY; without even the implied warranty of
MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
GNU General Public License for more details.

You should have received a copy of the GNU General Public License
along with DWCPN.  If not, see <http://www.gnu.org/licenses/>.
*/

// Package dwcputil provides the command-line interface and batch driver
// for the DWCPN primary production model.
package dwcputil

import (
	"fmt"
	"strings"

	"github.com/spatialmodel/dwcpn"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// Cfg holds configuration information.
var Cfg *viper.Viper

var options []struct {
	name, usage, shorthand string
	defaultVal             interface{}
	flagsets               []*pflag.FlagSet
}

func init() {
	// Options are the configuration options available to DWCPN.
	options = []struct {
		name, usage, shorthand string
		defaultVal             interface{}
		flagsets               []*pflag.FlagSet
	}{
		{
			name: "config",
			usage: `
              config specifies the configuration file location.`,
			defaultVal: "",
			flagsets:   []*pflag.FlagSet{Root.PersistentFlags()},
		},
		{
			name: "LogLevel",
			usage: `
              LogLevel specifies the minimum level of messages that are
              logged: one of panic, fatal, error, warn, info, debug or trace.`,
			defaultVal: "info",
			flagsets:   []*pflag.FlagSet{Root.PersistentFlags()},
		},
		{
			name: "InputFile",
			usage: `
              InputFile is the path to a TOML file holding one [[Column]]
              record for each water column to be calculated. It can include
              environment variables.`,
			shorthand:  "i",
			defaultVal: "",
			flagsets:   []*pflag.FlagSet{runCmd.Flags(), profileCmd.Flags()},
		},
		{
			name: "OutputFile",
			usage: `
              OutputFile is the path to the file where results are
              written. Files ending in .xlsx are written as Excel
              workbooks; all others as CSV. It can include environment
              variables.`,
			shorthand:  "o",
			defaultVal: "dwcpn_output.csv",
			flagsets:   []*pflag.FlagSet{runCmd.Flags()},
		},
		{
			name: "Settings.MLDOnly",
			usage: `
              Settings.MLDOnly specifies that chlorophyll is uniform with
              depth instead of following a shifted Gaussian profile below
              the mixed layer.`,
			defaultVal: false,
			flagsets:   []*pflag.FlagSet{runCmd.Flags(), profileCmd.Flags()},
		},
		{
			name: "Settings.IOMOnly",
			usage: `
              Settings.IOMOnly specifies that only the noon maximum
              irradiance is calculated.`,
			defaultVal: false,
			flagsets:   []*pflag.FlagSet{runCmd.Flags()},
		},
		{
			name: "Settings.Pico.Enabled",
			usage: `
              Settings.Pico.Enabled turns on the picophytoplankton sub-model.`,
			defaultVal: false,
			flagsets:   []*pflag.FlagSet{runCmd.Flags(), profileCmd.Flags()},
		},
		{
			name: "Settings.Pico.SMax",
			usage: `
              Settings.Pico.SMax is the maximum chlorophyll [mg m⁻³] of the
              surface picophytoplankton population.`,
			defaultVal: 0.2,
			flagsets:   []*pflag.FlagSet{runCmd.Flags(), profileCmd.Flags()},
		},
		{
			name: "Settings.Pico.KS",
			usage: `
              Settings.Pico.KS is the light scale of the surface
              picophytoplankton population as a fraction of surface PAR.`,
			defaultVal: 0.1,
			flagsets:   []*pflag.FlagSet{runCmd.Flags(), profileCmd.Flags()},
		},
		{
			name: "Settings.Pico.DMax",
			usage: `
              Settings.Pico.DMax is the maximum chlorophyll [mg m⁻³] of the
              subsurface picophytoplankton population.`,
			defaultVal: 0.3,
			flagsets:   []*pflag.FlagSet{runCmd.Flags(), profileCmd.Flags()},
		},
		{
			name: "Settings.Pico.KD",
			usage: `
              Settings.Pico.KD is the fraction of surface PAR at which the
              subsurface picophytoplankton population peaks.`,
			defaultVal: 0.05,
			flagsets:   []*pflag.FlagSet{runCmd.Flags(), profileCmd.Flags()},
		},
		{
			name: "Settings.Pico.TruncateAtEuphotic",
			usage: `
              Settings.Pico.TruncateAtEuphotic specifies whether
              picophytoplankton production is integrated only down to the
              euphotic depth instead of to the bottom.`,
			defaultVal: true,
			flagsets:   []*pflag.FlagSet{runCmd.Flags(), profileCmd.Flags()},
		},
		{
			name: "record",
			usage: `
              record is the index of the [[Column]] record in InputFile to
              plot.`,
			shorthand:  "r",
			defaultVal: 0,
			flagsets:   []*pflag.FlagSet{profileCmd.Flags()},
		},
		{
			name: "plotfile",
			usage: `
              plotfile is the path where the PNG depth profile plot is saved.`,
			defaultVal: "profile.png",
			flagsets:   []*pflag.FlagSet{profileCmd.Flags()},
		},
	}

	Cfg = viper.New()

	// Set the prefix for configuration environment variables.
	Cfg.SetEnvPrefix("DWCPN")
	Cfg.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	Cfg.AutomaticEnv()

	for _, option := range options {
		for i, set := range option.flagsets {
			if i != 0 { // We don't want to create the same flag twice.
				set.AddFlag(option.flagsets[0].Lookup(option.name))
				continue
			}
			switch v := option.defaultVal.(type) {
			case string:
				set.StringP(option.name, option.shorthand, v, option.usage)
			case bool:
				set.BoolP(option.name, option.shorthand, v, option.usage)
			case int:
				set.IntP(option.name, option.shorthand, v, option.usage)
			case float64:
				set.Float64P(option.name, option.shorthand, v, option.usage)
			default:
				panic("invalid argument type")
			}
			Cfg.BindPFlag(option.name, set.Lookup(option.name))
		}
	}
}

func init() {
	// Link the commands together.
	Root.AddCommand(versionCmd)
	Root.AddCommand(runCmd)
	Root.AddCommand(profileCmd)
}

// setConfig finds and reads in the configuration file, if there is one.
func setConfig() error {
	if cfgpath := Cfg.GetString("config"); cfgpath != "" {
		Cfg.SetConfigFile(expandPath(cfgpath))
		if err := Cfg.ReadInConfig(); err != nil {
			return fmt.Errorf("dwcpn: problem reading configuration file: %v", err)
		}
	}
	return nil
}

// Root is the main command.
var Root = &cobra.Command{
	Use:   "dwcpn",
	Short: "A depth- and wavelength-resolved ocean primary production model.",
	Long: `DWCPN calculates daily water-column primary production from
chlorophyll, photosynthesis parameters and surface light.
Use the subcommands specified below to access the model functionality.

Refer to the subcommand documentation for configuration options and default settings.
Configuration can be changed by using a configuration file (and providing the
path to the file using the --config flag), by using command-line arguments,
or by setting environment variables in the format 'DWCPN_var' where 'var' is the
name of the variable to be set. File paths are allowed to contain environment
variables. Refer to https://github.com/spf13/viper for additional configuration
information.`,
	DisableAutoGenTag: true,
	PersistentPreRunE: func(*cobra.Command, []string) error { return setConfig() },
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number",
	Long:  "version prints the version number of this version of DWCPN.",
	Run: func(cmd *cobra.Command, args []string) {
		cmd.Printf("DWCPN v%s\n", dwcpn.Version)
	},
	DisableAutoGenTag: true,
}

// runCmd is a command that calculates production for a batch of columns.
var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Calculate production for a batch of water columns.",
	Long: `run calculates daily primary production for every [[Column]] record
in InputFile and writes one row per record to OutputFile, as CSV or, if
OutputFile ends in .xlsx, as an Excel workbook. Records that fail are written
with an error kind instead of results.

	Output columns:
	lat, lon, day: Location and day of year, copied from the input
	pp: Daily column production [mg C m⁻² d⁻¹]
	euphotic_depth: Maximum euphotic depth over the day [m]
	spectral_i_star: Mean light-saturation diagnostic
	iom: Noon maximum surface PAR [einstein m⁻² h⁻¹]
	pico_pp: Daily picophytoplankton production [mg C m⁻² d⁻¹]
	error: Empty, or the kind of error for failed records`,
	RunE: func(cmd *cobra.Command, args []string) error {
		log, err := newLogger(cmd, Cfg.GetString("LogLevel"))
		if err != nil {
			return err
		}
		s, err := SettingsConfig(Cfg)
		if err != nil {
			return err
		}
		inputFile, err := checkInputFile(Cfg.GetString("InputFile"))
		if err != nil {
			return err
		}
		outputFile, err := checkOutputFile(Cfg.GetString("OutputFile"))
		if err != nil {
			return err
		}
		return Run(inputFile, outputFile, s, log)
	},
	DisableAutoGenTag: true,
}

// profileCmd is a command that plots the noon depth profile of one column.
var profileCmd = &cobra.Command{
	Use:   "profile",
	Short: "Plot the noon depth profile of a water column.",
	Long: `profile calculates production for the [[Column]] record in InputFile
selected by --record and saves a plot of the PAR and production profiles at
the last time step before noon to plotfile.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		log, err := newLogger(cmd, Cfg.GetString("LogLevel"))
		if err != nil {
			return err
		}
		s, err := SettingsConfig(Cfg)
		if err != nil {
			return err
		}
		inputFile, err := checkInputFile(Cfg.GetString("InputFile"))
		if err != nil {
			return err
		}
		plotFile, err := checkOutputFile(Cfg.GetString("plotfile"))
		if err != nil {
			return err
		}
		return Profile(inputFile, Cfg.GetInt("record"), plotFile, s, log)
	},
	DisableAutoGenTag: true,
}
