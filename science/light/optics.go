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

package light

import (
	"math"

	"github.com/spatialmodel/dwcpn/grid"
)

// PureWaterScattering returns the scattering coefficient of pure
// seawater [m⁻¹] at each working wavelength.
func PureWaterScattering() []float64 {
	const bw500 = 0.00288 // scattering at 500 nm
	o := make([]float64, grid.WLCount)
	for i, wl := range grid.Wavelengths {
		o[i] = bw500 * math.Pow(wl/500.0, -4.3)
	}
	return o
}

// BackscatterRatio returns the backscattering coefficient of pure seawater
// [m⁻¹] at each working wavelength.
func BackscatterRatio() []float64 {
	const br488 = 0.00027
	o := make([]float64, grid.WLCount)
	for i, wl := range grid.Wavelengths {
		o[i] = 0.5 * br488 * math.Pow(wl/488.0, -5.3)
	}
	return o
}

// YellowSubstanceAbsorption returns the spectral shape of yellow substance
// absorption, normalized to 1 at 440 nm.
func YellowSubstanceAbsorption() []float64 {
	o := make([]float64, grid.WLCount)
	for i, wl := range grid.Wavelengths {
		o[i] = math.Exp(-0.014 * (wl - 440.0))
	}
	return o
}
