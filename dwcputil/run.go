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
	"errors"
	"fmt"

	"github.com/sirupsen/logrus"
	"github.com/spatialmodel/dwcpn"
	"github.com/spf13/cast"
)

var outputHeader = []string{"lat", "lon", "day", "pp", "euphotic_depth", "spectral_i_star", "iom", "pico_pp", "error"}

// errorKind returns a short description of the kind of err.
func errorKind(err error) string {
	switch {
	case err == nil:
		return ""
	case errors.Is(err, dwcpn.ErrInvalidInput):
		return "invalid_input"
	case errors.Is(err, dwcpn.ErrDegenerateDay):
		return "degenerate_day"
	case errors.Is(err, dwcpn.ErrImplausibleProduction):
		return "implausible_production"
	default:
		return "error"
	}
}

// Run calculates production for every water column in inputFile using
// settings s and writes the results to outputFile in CSV format, or as
// an Excel workbook if outputFile ends in ".xlsx".
// Columns that fail are logged and written with an error kind; they do
// not stop the run.
func Run(inputFile, outputFile string, s dwcpn.ModelSettings, log logrus.FieldLogger) error {
	columns, err := ReadColumns(inputFile)
	if err != nil {
		return err
	}
	w, err := newRecordWriter(outputFile)
	if err != nil {
		return err
	}
	if err = w.Write(outputHeader); err != nil {
		w.Close()
		return fmt.Errorf("dwcpn: writing output file: %v", err)
	}

	m := &dwcpn.Model{Log: log}
	var failed int
	for i, c := range columns {
		clog := log.WithFields(logrus.Fields{
			"lat": c.Lat,
			"lon": c.Lon,
			"day": c.Day,
		})
		record := []string{cast.ToString(c.Lat), cast.ToString(c.Lon), cast.ToString(c.Day)}

		o, err := m.CalcPP(c, s)
		if err != nil {
			failed++
			clog.WithError(err).Warn("dwcpn: column failed")
			record = append(record, "", "", "", "", "", errorKind(err))
		} else {
			var picoPP string
			if o.Pico != nil {
				picoPP = cast.ToString(o.Pico.PP)
			}
			record = append(record,
				cast.ToString(o.PP),
				cast.ToString(o.EuphoticDepth),
				cast.ToString(o.SpectralIStar),
				cast.ToString(o.IOM),
				picoPP,
				"",
			)
			clog.WithField("record", i).Debugf("dwcpn: PP = %g mg C m⁻² d⁻¹", o.PP)
		}
		if err = w.Write(record); err != nil {
			w.Close()
			return fmt.Errorf("dwcpn: writing output file: %v", err)
		}
	}
	if err = w.Close(); err != nil {
		return fmt.Errorf("dwcpn: writing output file: %v", err)
	}
	log.WithFields(logrus.Fields{
		"columns": len(columns),
		"failed":  failed,
	}).Info("dwcpn: run complete")
	return nil
}
