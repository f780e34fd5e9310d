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

package atmos

import (
	"math"

	"github.com/spatialmodel/dwcpn/grid"
)

// Day holds the daily quantities that are needed to calibrate the
// modeled spectrum at any time of day.
type Day struct {
	// SolarCorrection is the solar irradiance [W m⁻²] for the day of
	// year, as returned by SolarCorrection.
	SolarCorrection float64

	// IOM is the noon maximum of surface PAR [einstein m⁻² h⁻¹].
	IOM float64

	// DayLength [hours].
	DayLength float64

	// Sunrise [hours].
	Sunrise float64

	// Cloud is the cloud cover [%].
	Cloud float64
}

// SurfacePAR returns the PAR [einstein m⁻² h⁻¹] just above the sea surface
// at time t [hours], assuming PAR follows a half sine wave between sunrise
// and sunset that peaks at IOM.
func (d Day) SurfacePAR(t float64) float64 {
	return d.IOM * math.Sin(math.Pi*(t-d.Sunrise)/d.DayLength)
}

// Reflection returns the Fresnel reflectance of the sea surface for
// direct light at the given zenith angle [radians].
func Reflection(zenith float64) float64 {
	zw := math.Asin(math.Sin(zenith) / 1.333)
	r := 0.5 * math.Pow(math.Sin(zenith-zw), 2) / math.Pow(math.Sin(zenith+zw), 2)
	r += 0.5 * math.Pow(math.Tan(zenith-zw), 2) / math.Pow(math.Tan(zenith+zw), 2)
	if math.IsNaN(r) {
		// Normal incidence.
		return math.Pow((1.333-1)/(1.333+1), 2)
	}
	return r
}

// diffuseTransmission is the fraction of diffuse light that passes
// through the sea surface.
const diffuseTransmission = 0.945

// Calibrate rescales the clear-sky direct and diffuse spectra returned by
// Components at time t [hours] and zenith angle [radians] so that they
// account for the day of year and cloud cover, converts them to quantum
// units [einstein m⁻² h⁻¹ nm⁻¹] just below the surface, and finally
// scales them so that the total before surface losses matches
// d.SurfacePAR(t).
//
// The last step anchors the modeled spectrum to the observed daily PAR,
// so the absolute magnitude of the clear-sky spectrum does not carry
// through to the result; only its shape and its direct/diffuse split do.
func Calibrate(direct, diffuse [grid.WLCount]float64, d Day, zenith, t float64) (directC, diffuseC [grid.WLCount]float64) {
	cosZ := math.Cos(zenith)

	var directInt, diffuseInt float64
	for l := range direct {
		directC[l] = direct[l] * d.SolarCorrection / referenceSolarConstant
		diffuseC[l] = diffuse[l] * d.SolarCorrection / referenceSolarConstant
		directInt += direct[l] * cosZ
		diffuseInt += diffuse[l]
	}
	surface := directInt + diffuseInt

	// Cloud effect.
	albedo := 0.28 / (1.0 + 6.43*cosZ)
	cc := d.Cloud / 100.0
	idir := directInt * (1.0 - cc)
	flux := ((1.0 - 0.5*cc) * (0.82 - albedo*(1.0-cc)) * cosZ) / ((0.82 - albedo) * cosZ)
	idif := surface*flux - idir
	dirDiv := idir / directInt
	difDiv := idif / diffuseInt
	for l := range directC {
		directC[l] *= dirDiv
		diffuseC[l] *= difDiv
	}

	// Convert W m⁻² µm⁻¹ to einstein m⁻² h⁻¹ nm⁻¹ and remove the light
	// reflected at the surface.
	reflection := Reflection(zenith)
	surface = 0
	for l, wl := range grid.Wavelengths {
		c := wl * 36.0 / (19.87 * 6.022 * 10e6)
		directC[l] *= c * cosZ
		diffuseC[l] *= c
		surface += directC[l] + diffuseC[l]
		directC[l] *= 1.0 - reflection
		diffuseC[l] *= diffuseTransmission
	}
	surface *= grid.DeltaLambda

	adjustment := d.SurfacePAR(t) / surface
	for l := range directC {
		directC[l] *= adjustment
		diffuseC[l] *= adjustment
	}
	return
}
