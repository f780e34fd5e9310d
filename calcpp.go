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

package dwcpn

import (
	"errors"
	"fmt"
	"math"

	"github.com/sirupsen/logrus"
	"github.com/spatialmodel/dwcpn/grid"
	"github.com/spatialmodel/dwcpn/science/atmos"
	"github.com/spatialmodel/dwcpn/science/chlprofile"
	"github.com/spatialmodel/dwcpn/science/light"
	"github.com/spatialmodel/dwcpn/science/production"
	"github.com/spatialmodel/dwcpn/science/solar"
)

const (
	// startZenith [degrees] is the solar zenith angle at which the
	// calculation starts.
	startZenith = 80.0

	// maxZenith [degrees] is the largest zenith angle for which a time
	// step is calculated.
	maxZenith = 80.00005
)

// Model calculates primary production.
type Model struct {
	// Log receives diagnostic messages. If nil, the logrus standard
	// logger is used.
	Log logrus.FieldLogger
}

func (m *Model) log() logrus.FieldLogger {
	if m == nil || m.Log == nil {
		return logrus.StandardLogger()
	}
	return m.Log
}

// CalcPP calculates daily primary production for the water column
// described by in, using the default Model.
func CalcPP(in ModelInputs, s ModelSettings) (*ModelOutputs, error) {
	var m Model
	return m.CalcPP(in, s)
}

// CalcPP calculates daily primary production for the water column
// described by in. Time steps where no euphotic depth can be found
// contribute no production. An error is returned if the inputs are
// invalid, if the sun does not reach 80° zenith before noon, or if the
// result is implausible.
func (m *Model) CalcPP(in ModelInputs, s ModelSettings) (*ModelOutputs, error) {
	in = in.WithDefaultOptics()
	if err := in.Validate(s); err != nil {
		return nil, err
	}

	depths, chl := chlprofile.Generate(chlprofile.Params{
		Chl:     in.Chl,
		MLD:     in.MLD,
		ZM:      in.ZM,
		Rho:     in.Rho,
		Sigma:   in.Sigma,
		ZBottom: in.ZBottom,
		Uniform: s.MLDOnly,
	})

	sunrise, declination, latRad := solar.Sunrise(in.Day, in.Lat)
	if solar.Degenerate(sunrise) {
		return nil, fmt.Errorf("dwcpn: %w: sunrise at %g h on day %d at latitude %g", ErrDegenerateDay, sunrise, in.Day, in.Lat)
	}
	startTime := solar.ZenithTime(declination, latRad, startZenith)
	if math.IsNaN(startTime) {
		return nil, fmt.Errorf("dwcpn: %w: day %d at latitude %g", ErrDegenerateDay, in.Day, in.Lat)
	}
	times, Δt := solar.TimeArray(startTime)
	zenith, zenithDeg := solar.ZenithArray(times, declination, latRad)

	day := atmos.Day{
		SolarCorrection: atmos.SolarCorrection(in.Day),
		Sunrise:         sunrise,
		Cloud:           in.Cloud,
	}
	water := light.Water{YelSub: in.YelSub, AY: in.AY, BBR: in.BBR, BW: in.BW}

	o := new(ModelOutputs)
	var pp, picoPP [grid.Timesteps]float64
	var iStarSum float64
	var valid int
	first := -1
	var deltaPrestart float64
	if s.Pico != nil {
		o.Pico = new(PicoOutputs)
	}

	for t := range times {
		o.Steps[t] = Timestep{Time: times[t], ZenithDeg: zenithDeg[t]}
		if zenithDeg[t] >= maxZenith {
			continue
		}
		if first < 0 {
			first = t
			day.DayLength = 2 * (12 - sunrise)
			day.IOM = in.PAR * math.Pi / (2 * day.DayLength)
			deltaPrestart = startTime - sunrise
			o.IOM = day.IOM
			if s.IOMOnly {
				return &ModelOutputs{IOM: day.IOM}, nil
			}
		}
		o.Steps[t].SurfacePAR = day.SurfacePAR(times[t])

		direct, diffuse, err := atmos.Components(zenith[t], zenithDeg[t])
		if err != nil {
			return nil, fmt.Errorf("dwcpn: time step %d: %w", t, err)
		}
		direct, diffuse = atmos.Calibrate(direct, diffuse, day, zenith[t], times[t])

		iAlpha, par, err := light.DecayProfile(chl, direct, diffuse, zenith[t], in.AlphaB, water)
		if err != nil {
			return nil, fmt.Errorf("dwcpn: time step %d: %w", t, err)
		}

		p, err := production.Compute(chl, depths, iAlpha, par, in.PMB, in.ZBottom)
		if errors.Is(err, production.ErrNoEuphoticDepth) {
			m.log().WithFields(logrus.Fields{
				"timestep": t,
				"zenith":   zenithDeg[t],
			}).Debug("dwcpn: no euphotic depth; time step skipped")
			continue
		} else if err != nil {
			return nil, fmt.Errorf("dwcpn: time step %d: %w", t, err)
		}

		pp[t] = p.ColumnProduction()
		o.Steps[t].PP = pp[t]
		o.Steps[t].EuphoticDepth = p.EuphoticDepth
		o.Steps[t].Valid = true
		if p.EuphoticDepth > o.EuphoticDepth {
			o.EuphoticDepth = p.EuphoticDepth
		}
		iStarSum += p.SpectralIStar / float64(max(p.EuphoticIndex, 1))
		valid++
		o.NoonProfile = p

		if s.Pico != nil {
			surface, subsurface := production.Pico(par, s.Pico.PicoParams)
			for z := range surface {
				o.Pico.Surface[z] += surface[z]
				o.Pico.Subsurface[z] += subsurface[z]
			}
			picoPP[t] = p.PicoProduction(chl, surface, subsurface, s.Pico.TruncateAtEuphotic, in.ZBottom)
		}
	}
	if first < 0 {
		return nil, fmt.Errorf("dwcpn: %w: sun below %g° zenith all morning", ErrDegenerateDay, maxZenith)
	}

	o.PP = integrateDay(pp, first, Δt, deltaPrestart)
	if valid > 0 {
		o.SpectralIStar = iStarSum / float64(valid)
	}
	if o.Pico != nil {
		o.Pico.PP = integrateDay(picoPP, first, Δt, deltaPrestart)
		if valid > 0 {
			for z := range o.Pico.Surface {
				o.Pico.Surface[z] /= float64(valid)
				o.Pico.Subsurface[z] /= float64(valid)
			}
		}
	}

	if math.IsNaN(o.PP) || o.PP > maxProduction {
		return nil, fmt.Errorf("dwcpn: %w: %g mg C m⁻² d⁻¹", ErrImplausibleProduction, o.PP)
	}
	return o, nil
}

// integrateDay integrates the hourly production values pp over the day
// using the trapezoidal rule. pp holds values from the first valid time
// step (index first) to noon at intervals of Δt [hours]; deltaPrestart
// is the time between sunrise and the first valid time step, when
// production is assumed to rise linearly from zero. The result is
// doubled to account for the afternoon.
func integrateDay(pp [grid.Timesteps]float64, first int, Δt, deltaPrestart float64) float64 {
	sum := pp[first] * deltaPrestart / 2
	for t := first; t < len(pp)-1; t++ {
		sum += (pp[t] + pp[t+1]) * Δt / 2
	}
	return 2 * sum
}
