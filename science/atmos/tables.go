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

// TransmittanceWLCount is the number of wavelengths in the reference grid
// of the transmittance tables. All of the tables below share this grid.
const TransmittanceWLCount = 24

// TransmittanceWavelengths is the reference wavelength grid [nm].
var TransmittanceWavelengths = [TransmittanceWLCount]float64{
	400.000, 410.000, 420.000, 430.000, 440.000, 450.000, 460.000, 470.000, 480.000, 490.000,
	500.000, 510.000, 520.000, 530.000, 540.000, 550.000, 570.000, 593.000, 610.000, 630.000,
	656.000, 667.600, 690.000, 710.000,
}

// ozoneAbsorption holds ozone absorption coefficients.
var ozoneAbsorption = [TransmittanceWLCount]float64{
	0.000, 0.000, 0.000, 0.000, 0.000, 0.003, 0.006, 0.009, 0.014, 0.021, 0.030, 0.040, 0.048,
	0.063, 0.075, 0.095, 0.120, 0.119, 0.132, 0.120, 0.065, 0.060, 0.028, 0.018,
}

// waterVapourAbsorption holds water vapour absorption coefficients.
var waterVapourAbsorption = [TransmittanceWLCount]float64{
	0.000, 0.000, 0.000, 0.000, 0.000, 0.000, 0.000, 0.000, 0.000, 0.000, 0.000, 0.000, 0.000,
	0.000, 0.000, 0.000, 0.000, 0.075, 0.000, 0.000, 0.000, 0.000, 0.016, 0.0125,
}

// etIrradiance is the extra-terrestrial spectral irradiance.
var etIrradiance = [TransmittanceWLCount]float64{
	1479.1, 1701.3, 1740.4, 1587.2, 1837.0, 2005.0, 2043.0, 1987.0, 2027.0, 1896.0, 1909.0, 1927.0,
	1831.0, 1891.0, 1898.0, 1892.0, 1840.0, 1768.0, 1728.0, 1658.0, 1524.0, 1531.0, 1420.0, 1399.0,
}

const (
	// precipitableWater is the water vapour amount used in the
	// transmittance calculation.
	precipitableWater = 2.0

	// Aerosol transmittance coefficients below (alpha1, beta1) and above
	// (alpha2, beta2) 500 nm.
	alpha1 = 1.0274
	beta1  = 0.1324
	alpha2 = 1.206
	beta2  = 0.117

	// aerosolSplit is the index of the first reference wavelength that
	// uses the second set of aerosol coefficients.
	aerosolSplit = 10

	// tuAlbedoIndex and tuDiffuseIndex are the reference-grid indices at
	// which the uniformly-mixed gas transmittance is applied to the air
	// albedo and direct irradiance, and to the diffuse irradiance.
	tuAlbedoIndex  = 23
	tuDiffuseIndex = 22

	// initialAirmass is the air mass used to estimate the air albedo.
	initialAirmass = 1.90
)

// diffuseCorrection holds correction factors for diffuse irradiance at 5
// reference wavelengths (rows) for the 7 zenith angles in
// diffuseCorrectionZenith.
var diffuseCorrection = [7][5]float64{
	{1.11, 1.04, 1.15, 1.12, 1.32},
	{1.13, 1.05, 1.00, 0.96, 1.12},
	{1.18, 1.09, 1.00, 0.96, 1.07},
	{1.24, 1.11, 0.99, 0.94, 1.02},
	{1.46, 1.24, 1.06, 0.99, 1.10},
	{1.70, 1.34, 1.07, 0.96, 0.90},
	{2.61, 1.72, 1.22, 1.04, 0.80},
}

// diffuseCorrectionZenith holds the zenith angles [degrees] of the rows of
// diffuseCorrection.
var diffuseCorrectionZenith = [7]float64{0., 37., 48.19, 60., 70., 75., 80.}

// diffuseMidpoint is the reference-grid index (550 nm) that separates the
// two segments of the diffuse correction interpolation.
const diffuseMidpoint = 15

// Thekaekara solar irradiance [W m⁻²] through the year.
var (
	thekaekaraDays = []float64{
		0., 3., 31., 42., 59., 78., 90., 93., 120., 133., 151., 170., 181., 183., 206., 212., 243.,
		265., 273., 277., 304., 306., 334., 355., 365.,
	}
	thekaekaraIrradiance = []float64{
		1399., 1399., 1393., 1389., 1378., 1364., 1355., 1353., 1332., 1324., 1316., 1310., 1309.,
		1309., 1312., 1313., 1329., 1344., 1350., 1353., 1347., 1375., 1392., 1398., 1399.,
	}
)

// referenceSolarConstant is the solar irradiance [W m⁻²] that the
// extra-terrestrial spectrum is scaled to.
const referenceSolarConstant = 1353.0
