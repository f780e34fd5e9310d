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

package production

import (
	"math"

	"github.com/spatialmodel/dwcpn/grid"
)

// PicoParams holds the parameters of the picophytoplankton light response.
type PicoParams struct {
	// SMax is the maximum chlorophyll [mg m⁻³] of the surface population.
	SMax float64

	// KS is the light scale of the surface population, as a fraction of
	// surface PAR.
	KS float64

	// DMax is the maximum chlorophyll [mg m⁻³] of the subsurface population.
	DMax float64

	// KD is the fraction of surface PAR at which the subsurface population
	// peaks.
	KD float64
}

// Pico returns the chlorophyll of the surface and subsurface
// picophytoplankton populations at each depth given the PAR profile.
func Pico(par [grid.DepthCount]float64, p PicoParams) (surface, subsurface [grid.DepthCount]float64) {
	if !(par[0] > 0) {
		return
	}
	norm := 1 - math.Exp(-1/p.KS)
	for z := range par {
		f := par[z] / par[0]
		surface[z] = math.Max(p.SMax*(1-math.Exp(-f/p.KS))/norm, 0)
		subsurface[z] = math.Max(p.DMax*(f/p.KD)*math.Exp(1-f/p.KD), 0)
	}
	return
}

// PicoProduction returns the column production [mg C m⁻² h⁻¹] of the
// picophytoplankton populations, taken as the share of production at each
// depth given by their fraction of total chlorophyll. If truncate is true
// the integral stops at the euphotic depth, otherwise it continues to the
// bottom depth zBottom or the end of the grid.
func (p *Profile) PicoProduction(chl, surface, subsurface [grid.DepthCount]float64, truncate bool, zBottom float64) float64 {
	var pp [grid.DepthCount]float64
	for z := range pp {
		if !(chl[z] > 0) {
			continue
		}
		pp[z] = p.PP[z] * math.Min(1, (surface[z]+subsurface[z])/chl[z])
	}
	if truncate {
		return column(&pp, p.EuphoticIndex, p.EuphoticDepth)
	}
	zb := math.Min(math.Abs(zBottom), grid.DepthStep*(grid.DepthCount-1))
	return column(&pp, grid.DepthIndex(zb), zb)
}
