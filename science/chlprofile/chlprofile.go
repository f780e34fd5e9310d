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

// Package chlprofile builds vertical profiles of chlorophyll concentration
// from surface chlorophyll and mixed-layer parameters.
package chlprofile

import (
	"math"

	"github.com/spatialmodel/dwcpn/grid"
)

// Params holds the parameters of a chlorophyll profile.
type Params struct {
	// Chl is the chlorophyll concentration [mg m⁻³] in the mixed layer.
	Chl float64

	// MLD is the mixed-layer depth [m].
	MLD float64

	// ZM is the depth [m] of the deep chlorophyll maximum.
	ZM float64

	// Rho is the height of the deep chlorophyll maximum relative to Chl.
	Rho float64

	// Sigma is the width [m] of the deep chlorophyll maximum.
	Sigma float64

	// ZBottom is the bottom depth [m]. Its sign is ignored.
	ZBottom float64

	// Uniform specifies that the profile is the mixed-layer value at
	// all depths.
	Uniform bool
}

// Generate returns the depth [m] and chlorophyll concentration [mg m⁻³]
// at every sample of the depth grid. Within the mixed layer the
// concentration is Chl; below it the profile is a shifted Gaussian
// centered at ZM. Samples below the bottom take the value of the deepest
// sample in the water column.
func Generate(p Params) (depths, chl [grid.DepthCount]float64) {
	depths = grid.Depths()
	zBottom := math.Abs(p.ZBottom)
	last := 0
	for z, d := range depths {
		if d > zBottom {
			chl[z] = chl[last]
			continue
		}
		last = z
		chl[z] = p.at(d)
	}
	return
}

func (p Params) at(z float64) float64 {
	if p.Uniform || z <= p.MLD {
		return p.Chl
	}
	dz := z - p.ZM
	c := p.Chl * (1 + p.Rho*math.Exp(-dz*dz/(2*p.Sigma*p.Sigma)))
	if c < 0 || math.IsNaN(c) {
		return 0
	}
	return c
}
