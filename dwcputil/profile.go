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
	"fmt"
	"image/color"

	"github.com/sirupsen/logrus"
	"github.com/spatialmodel/dwcpn"
	"github.com/spatialmodel/dwcpn/grid"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
)

// profileDepthFactor is how far below the euphotic depth the profile plot
// extends, as a multiple of the euphotic depth.
const profileDepthFactor = 1.5

// Profile calculates production for the column with index record in
// inputFile and saves a plot of its noon PAR and production profiles to
// plotFile. The format of the plot is determined by the file extension.
func Profile(inputFile string, record int, plotFile string, s dwcpn.ModelSettings, log logrus.FieldLogger) error {
	if s.IOMOnly {
		return fmt.Errorf("dwcpn: profiles are not calculated when Settings.IOMOnly is true")
	}
	columns, err := ReadColumns(inputFile)
	if err != nil {
		return err
	}
	if record < 0 || record >= len(columns) {
		return fmt.Errorf("dwcpn: record %d out of range; %s has %d records", record, inputFile, len(columns))
	}
	c := columns[record]
	m := &dwcpn.Model{Log: log}
	o, err := m.CalcPP(c, s)
	if err != nil {
		return err
	}
	if o.NoonProfile == nil {
		return fmt.Errorf("dwcpn: no valid time steps for record %d", record)
	}

	p, err := profilePlot(o)
	if err != nil {
		return err
	}
	p.Title.Text = fmt.Sprintf("lat %g, lon %g, day %d: %.4g mg C m⁻² d⁻¹", c.Lat, c.Lon, c.Day, o.PP)
	if err := p.Save(4*vg.Inch, 6*vg.Inch, plotFile); err != nil {
		return fmt.Errorf("dwcpn: saving profile plot: %v", err)
	}
	log.WithFields(logrus.Fields{
		"record": record,
		"file":   plotFile,
	}).Info("dwcpn: saved profile plot")
	return nil
}

// profileXYs returns the values of v against negative depth from the
// surface to maxDepth, scaled to percent of the largest value.
func profileXYs(v []float64, maxDepth float64) plotter.XYs {
	n := grid.DepthIndex(maxDepth) + 1
	scale := floats.Max(v[:n])
	if scale == 0 {
		scale = 1
	}
	xy := make(plotter.XYs, n)
	for i := range xy {
		xy[i].X = 100 * v[i] / scale
		xy[i].Y = -grid.DepthStep * float64(i)
	}
	return xy
}

// profilePlot plots the PAR and production profiles of the noon time step.
func profilePlot(o *dwcpn.ModelOutputs) (*plot.Plot, error) {
	np := o.NoonProfile
	maxDepth := profileDepthFactor * np.EuphoticDepth

	p := plot.New()
	p.X.Label.Text = "% of maximum"
	p.Y.Label.Text = "Depth (m)"
	p.Legend.Top = true

	par, err := plotter.NewLine(profileXYs(np.PAR[:], maxDepth))
	if err != nil {
		return nil, fmt.Errorf("dwcpn: plotting PAR: %v", err)
	}
	par.Color = color.NRGBA{0, 0, 255, 255}

	pp, err := plotter.NewLine(profileXYs(np.PP[:], maxDepth))
	if err != nil {
		return nil, fmt.Errorf("dwcpn: plotting production: %v", err)
	}
	pp.Color = color.NRGBA{0, 127, 0, 255}

	euph, err := plotter.NewLine(plotter.XYs{{X: 0, Y: -np.EuphoticDepth}, {X: 100, Y: -np.EuphoticDepth}})
	if err != nil {
		return nil, fmt.Errorf("dwcpn: plotting euphotic depth: %v", err)
	}
	euph.Color = color.NRGBA{127, 127, 127, 255}
	euph.Dashes = []vg.Length{vg.Points(4), vg.Points(2)}

	p.Add(par, pp, euph)
	p.Legend.Add("PAR", par)
	p.Legend.Add("Production", pp)
	p.Legend.Add("Euphotic depth", euph)

	if o.Pico != nil {
		pico := make([]float64, grid.DepthCount)
		for i := range pico {
			pico[i] = o.Pico.Surface[i] + o.Pico.Subsurface[i]
		}
		l, err := plotter.NewLine(profileXYs(pico, maxDepth))
		if err != nil {
			return nil, fmt.Errorf("dwcpn: plotting picophytoplankton: %v", err)
		}
		l.Color = color.NRGBA{255, 0, 0, 255}
		p.Add(l)
		p.Legend.Add("Picophytoplankton chl", l)
	}
	p.X.Min = 0
	p.X.Max = 100
	return p, nil
}
