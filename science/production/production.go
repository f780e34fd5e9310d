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

// Package production converts underwater light into a photosynthesis
// profile and locates the euphotic depth.
package production

import (
	"errors"
	"math"

	"github.com/spatialmodel/dwcpn/grid"
)

// euphoticFraction is the fraction of surface PAR that defines the base
// of the euphotic zone.
const euphoticFraction = 0.01

// ErrNoEuphoticDepth is returned when PAR never falls below the euphotic
// threshold within the depth grid.
var ErrNoEuphoticDepth = errors.New("production: no euphotic depth found")

// Profile is the production profile for a single time step.
type Profile struct {
	// PP is the production [mg C m⁻³ h⁻¹] at each depth.
	PP [grid.DepthCount]float64

	// PAR is the photosynthetically active radiation at each depth.
	PAR [grid.DepthCount]float64

	// EuphoticDepth [m] is the depth at which PAR is 1% of its surface value,
	// limited to the bottom depth.
	EuphoticDepth float64

	// EuphoticIndex is the index of the deepest sample above EuphoticDepth.
	EuphoticIndex int

	// SpectralIStar is the sum of i_alpha down to the euphotic threshold,
	// divided by P_mB.
	SpectralIStar float64
}

// Compute calculates production at each depth from the chlorophyll,
// i_alpha and PAR profiles using a saturating P-vs-I response with
// maximum rate pmb, and locates the euphotic depth by log-linear
// interpolation between the samples bracketing the 1% light level. If the
// euphotic depth is below the bottom depth zBottom, it is set to the
// bottom depth and the index to grid.DepthIndex(|zBottom|), the deepest
// sample in the water column. This is not the last index of the depth
// grid unless the bottom is at or below 250 m; clamping to the last grid
// index would make the partial layer in ColumnProduction negative.
// ErrNoEuphoticDepth is returned if PAR never reaches the threshold.
func Compute(chl, depths, iAlpha, par [grid.DepthCount]float64, pmb, zBottom float64) (*Profile, error) {
	p := &Profile{PAR: par}
	for z := range p.PP {
		p.PP[z] = chl[z] * pmb * (1 - math.Exp(-iAlpha[z]/pmb))
	}

	threshold := euphoticFraction * par[0]
	var iAlphaSum float64
	found := false
	for z := range par {
		iAlphaSum += iAlpha[z]
		if z == 0 || par[z] >= threshold {
			continue
		}
		i := z - 1
		p.EuphoticIndex = i
		if par[z] > 0 {
			p.EuphoticDepth = depths[i] + grid.DepthStep*math.Log(par[i]/threshold)/math.Log(par[i]/par[z])
		} else {
			p.EuphoticDepth = depths[i]
		}
		found = true
		break
	}
	if !found {
		return nil, ErrNoEuphoticDepth
	}
	p.SpectralIStar = iAlphaSum / pmb

	if zb := math.Abs(zBottom); p.EuphoticDepth > zb {
		p.EuphoticIndex = grid.DepthIndex(zb)
		p.EuphoticDepth = zb
	}
	return p, nil
}

// ColumnProduction returns production [mg C m⁻² h⁻¹] integrated from the
// surface to the euphotic depth.
func (p *Profile) ColumnProduction() float64 {
	return column(&p.PP, p.EuphoticIndex, p.EuphoticDepth)
}

// column integrates v with the trapezoidal rule down to sample index and
// adds the remaining partial layer down to depth.
func column(v *[grid.DepthCount]float64, index int, depth float64) float64 {
	if index == 0 {
		index = 1
	}
	var sum float64
	for z := 0; z < index; z++ {
		sum += grid.DepthStep * (v[z] + v[z+1]) / 2
	}
	return sum + v[index]*(depth-float64(index-1)*grid.DepthStep)
}
