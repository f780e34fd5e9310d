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

package dwcputil

import (
	"bufio"
	"fmt"
	"io/ioutil"
	"os"
	"path/filepath"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/sirupsen/logrus"
	"github.com/spatialmodel/dwcpn"
	"github.com/spatialmodel/dwcpn/science/production"
	"github.com/spf13/cast"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// Batch holds the water columns in an input file.
type Batch struct {
	// Column holds one set of model inputs per water column.
	Column []dwcpn.ModelInputs
}

// ReadColumns reads the [[Column]] records from the TOML file at filename.
func ReadColumns(filename string) ([]dwcpn.ModelInputs, error) {
	file, err := os.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("the input file you have specified, %v, does not "+
			"appear to exist. Please check the file name and location and "+
			"try again", filename)
	}
	defer file.Close()
	b, err := ioutil.ReadAll(bufio.NewReader(file))
	if err != nil {
		return nil, fmt.Errorf("dwcpn: problem reading input file: %v", err)
	}

	batch := new(Batch)
	if _, err = toml.Decode(string(b), batch); err != nil {
		return nil, fmt.Errorf("dwcpn: there has been an error parsing the input file: %v", err)
	}
	if len(batch.Column) == 0 {
		return nil, fmt.Errorf("dwcpn: input file %s has no [[Column]] records", filename)
	}
	return batch.Column, nil
}

// SettingsConfig unmarshals the model settings from a viper configuration.
func SettingsConfig(cfg *viper.Viper) (dwcpn.ModelSettings, error) {
	s := dwcpn.ModelSettings{
		MLDOnly: cfg.GetBool("Settings.MLDOnly"),
		IOMOnly: cfg.GetBool("Settings.IOMOnly"),
	}
	if !cfg.GetBool("Settings.Pico.Enabled") {
		return s, nil
	}
	var vals [4]float64
	for i, name := range []string{"Settings.Pico.SMax", "Settings.Pico.KS", "Settings.Pico.DMax", "Settings.Pico.KD"} {
		v, err := cast.ToFloat64E(cfg.Get(name))
		if err != nil {
			return s, fmt.Errorf("dwcpn: parsing %s: %v", name, err)
		}
		vals[i] = v
	}
	s.Pico = &dwcpn.PicoSettings{
		PicoParams: production.PicoParams{
			SMax: vals[0],
			KS:   vals[1],
			DMax: vals[2],
			KD:   vals[3],
		},
		TruncateAtEuphotic: cfg.GetBool("Settings.Pico.TruncateAtEuphotic"),
	}
	return s, nil
}

// expandPath expands environment variables in a file path.
func expandPath(f string) string { return os.ExpandEnv(f) }

// checkInputFile makes sure that the input file is specified and expands
// any environment variables.
func checkInputFile(f string) (string, error) {
	if f == "" {
		return "", fmt.Errorf(`you need to specify an input file configuration variable (for example: InputFile="columns.toml")`)
	}
	return expandPath(f), nil
}

// checkOutputFile makes sure that the output file is specified and its
// directory exists, and expands any environment variables.
func checkOutputFile(f string) (string, error) {
	if f == "" {
		return "", fmt.Errorf(`you need to specify an output file configuration variable (for example: OutputFile="output.csv")`)
	}
	f = expandPath(f)
	outdir := filepath.Dir(f)
	if _, err := os.Stat(outdir); err != nil {
		return f, fmt.Errorf("dwcpn: the output file directory doesn't exist: %v", err)
	}
	return f, nil
}

// newLogger returns a logger that writes to the error output of cmd at
// the given level.
func newLogger(cmd *cobra.Command, level string) (*logrus.Logger, error) {
	lvl, err := logrus.ParseLevel(level)
	if err != nil {
		return nil, fmt.Errorf("dwcpn: invalid LogLevel: %v", err)
	}
	log := logrus.New()
	log.SetLevel(lvl)
	log.SetOutput(cmd.ErrOrStderr())
	log.SetFormatter(&logrus.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: time.RFC3339,
		DisableSorting:  true,
	})
	return log, nil
}
